package form

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"altman-tracker/database"
	"altman-tracker/readmodel"
	"altman-tracker/store"
)

func newTestController(t *testing.T) (*Controller, *readmodel.TableModel) {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.sqlite"))
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	m, err := readmodel.Bind(db, "altman_refined_table")
	if err != nil {
		t.Fatalf("binding table model: %v", err)
	}

	c := NewController(store.New(db), m)
	c.now = func() time.Time {
		return time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	}
	c.Reset()
	return c, m
}

func TestCommitStoresRecomputedSummary(t *testing.T) {
	c, m := newTestController(t)

	for i, v := range []int{0, 2, 0, 3, 0} {
		if err := c.SetAnswer(i, v); err != nil {
			t.Fatalf("setting answer %d: %v", i, err)
		}
	}

	sub, err := c.Commit()
	if err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	if sub.Summary != 5 {
		t.Errorf("summary = %d, want 5 (zero answers excluded)", sub.Summary)
	}
	if sub.Date != "2024-01-01" || sub.Time != "10:00" {
		t.Errorf("stamp = %s %s, want 2024-01-01 10:00", sub.Date, sub.Time)
	}

	if m.RowCount() != 1 {
		t.Fatalf("model rows after commit = %d, want 1", m.RowCount())
	}
	if got := m.At(0, 8); got != int64(5) {
		t.Errorf("stored summary = %v, want 5", got)
	}
}

func TestCommitAllZeroAnswers(t *testing.T) {
	c, m := newTestController(t)

	sub, err := c.Commit()
	if err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	if sub.Summary != 0 {
		t.Errorf("summary = %d, want 0", sub.Summary)
	}
	if got := m.At(0, 8); got != int64(0) {
		t.Errorf("stored summary = %v, want 0", got)
	}
}

func TestCommitResetsTheForm(t *testing.T) {
	c, _ := newTestController(t)

	if err := c.SetAnswer(2, 4); err != nil {
		t.Fatal(err)
	}
	c.NextPage()

	if _, err := c.Commit(); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	if c.Summary() != 0 {
		t.Errorf("summary after reset = %d, want 0", c.Summary())
	}
	if c.Page() != 0 {
		t.Errorf("page after reset = %d, want 0", c.Page())
	}
}

func TestSetAnswerRefusesOutOfRange(t *testing.T) {
	c, _ := newTestController(t)

	if err := c.SetAnswer(0, 5); err == nil {
		t.Error("expected error for value above range")
	}
	if err := c.SetAnswer(0, -1); err == nil {
		t.Error("expected error for value below range")
	}
	if err := c.SetAnswer(7, 2); err == nil {
		t.Error("expected error for unknown question")
	}
}

func TestPageNavigationWraps(t *testing.T) {
	c, _ := newTestController(t)

	c.PrevPage()
	if c.Page() != len(Questions)-1 {
		t.Errorf("prev from first page = %d, want %d", c.Page(), len(Questions)-1)
	}
	c.NextPage()
	if c.Page() != 0 {
		t.Errorf("next from last page = %d, want 0", c.Page())
	}
	c.NextPage()
	c.NextPage()
	c.Home()
	if c.Page() != 0 {
		t.Errorf("home = %d, want 0", c.Page())
	}
}

func TestSessionAnswerAndCommit(t *testing.T) {
	c, m := newTestController(t)

	in := strings.NewReader("2\n3\n0\n1\n4\nc\nq\n")
	var out strings.Builder
	if err := c.Run(in, &out); err != nil {
		t.Fatalf("session failed: %v", err)
	}

	if m.RowCount() != 1 {
		t.Fatalf("rows after session = %d, want 1", m.RowCount())
	}
	if got := m.At(0, 8); got != int64(10) {
		t.Errorf("stored summary = %v, want 10", got)
	}
	if !strings.Contains(out.String(), "saved 2024-01-01 10:00, summary 10") {
		t.Errorf("session output missing confirmation:\n%s", out.String())
	}
}

func TestSessionDeleteSelectedRows(t *testing.T) {
	c, m := newTestController(t)

	for i := 0; i < 3; i++ {
		if _, err := c.Commit(); err != nil {
			t.Fatalf("seeding commit %d: %v", i+1, err)
		}
	}

	in := strings.NewReader("d 2\nq\n")
	var out strings.Builder
	if err := c.Run(in, &out); err != nil {
		t.Fatalf("session failed: %v", err)
	}

	if m.RowCount() != 2 {
		t.Fatalf("rows after delete = %d, want 2", m.RowCount())
	}
	ids := []int64{}
	for i := 0; i < m.RowCount(); i++ {
		id, err := m.RowID(i)
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}
	if ids[0] != 1 || ids[1] != 3 {
		t.Errorf("remaining ids = %v, want [1 3]", ids)
	}
}

func TestParseSelection(t *testing.T) {
	got, err := parseSelection("1, 3 5")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := []int{0, 2, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("parseSelection = %v, want %v", got, want)
		}
	}

	if _, err := parseSelection("zero"); err == nil {
		t.Error("expected error for non-numeric selection")
	}
	if _, err := parseSelection(""); err == nil {
		t.Error("expected error for empty selection")
	}
}
