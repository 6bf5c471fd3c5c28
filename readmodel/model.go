package readmodel

import (
	"database/sql"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"altman-tracker/log"
)

// TableModel is a refreshable snapshot of a single table, suitable for
// display in a grid. Column order is the table's declaration order, surrogate
// key included (a view may hide it, the model does not omit it). Views index
// rows by display position; deletion resolves positions back to primary keys
// through the current snapshot, never through raw storage order.
type TableModel struct {
	db      *sql.DB
	table   string
	idCol   int
	columns []string
	rows    [][]any
}

// Bind builds a model over the named table, loaded with its current contents.
func Bind(db *sql.DB, table string) (*TableModel, error) {
	m := &TableModel{db: db, table: table}
	if err := m.Refresh(); err != nil {
		return nil, err
	}
	return m, nil
}

// Refresh re-queries the table and replaces the snapshot. On failure the
// previous snapshot is kept.
func (m *TableModel) Refresh() error {
	// the table name cannot be a bind parameter
	rows, err := m.db.Query("SELECT * FROM " + m.table)
	if err != nil {
		return errors.Wrapf(err, "query %s", m.table)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return errors.Wrap(err, "read columns")
	}

	idCol := -1
	for i, c := range columns {
		if c == "id" {
			idCol = i
			break
		}
	}

	var data [][]any
	for rows.Next() {
		values := make([]any, len(columns))
		scan := make([]any, len(columns))
		for i := range values {
			scan[i] = &values[i]
		}
		if err := rows.Scan(scan...); err != nil {
			return errors.Wrap(err, "scan row")
		}
		for i, v := range values {
			// the driver hands TEXT columns back as raw bytes
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		data = append(data, values)
	}
	if err := rows.Err(); err != nil {
		return errors.Wrap(err, "iterate rows")
	}

	m.columns = columns
	m.idCol = idCol
	m.rows = data
	return nil
}

func (m *TableModel) Columns() []string {
	return m.columns
}

func (m *TableModel) ColumnCount() int {
	return len(m.columns)
}

func (m *TableModel) RowCount() int {
	return len(m.rows)
}

// At returns the value at a display position, nil when out of range.
func (m *TableModel) At(row, col int) any {
	if row < 0 || row >= len(m.rows) || col < 0 || col >= len(m.columns) {
		return nil
	}
	return m.rows[row][col]
}

func (m *TableModel) Row(row int) []any {
	if row < 0 || row >= len(m.rows) {
		return nil
	}
	return m.rows[row]
}

// RowID resolves a display position to the underlying row's primary key.
func (m *TableModel) RowID(row int) (int64, error) {
	if m.idCol < 0 {
		return 0, errors.Errorf("table %s has no id column", m.table)
	}
	if row < 0 || row >= len(m.rows) {
		return 0, errors.Errorf("row %d out of range", row)
	}
	id, ok := m.rows[row][m.idCol].(int64)
	if !ok {
		return 0, errors.Errorf("row %d: id is %T, not an integer", row, m.rows[row][m.idCol])
	}
	return id, nil
}

// DeleteRows removes the rows at the selected display positions, one DELETE
// per row with no transaction around the set. A failing row is logged and
// skipped, the rest of the selection still goes through. The snapshot is
// refreshed afterwards either way.
func (m *TableModel) DeleteRows(selected []int) error {
	var errs *multierror.Error

	for _, pos := range selected {
		id, err := m.RowID(pos)
		if err != nil {
			log.Errorf("delete from %s: %s", m.table, err)
			errs = multierror.Append(errs, err)
			continue
		}

		_, err = m.db.Exec(fmt.Sprintf("DELETE FROM %s WHERE id = ?", m.table), id)
		if err != nil {
			log.Errorf("delete from %s id=%d: %s", m.table, id, err)
			errs = multierror.Append(errs, errors.Wrapf(err, "delete id %d", id))
		}
	}

	if err := m.Refresh(); err != nil {
		errs = multierror.Append(errs, err)
	}
	return errs.ErrorOrNil()
}
