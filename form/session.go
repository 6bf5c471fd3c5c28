package form

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"altman-tracker/log"
)

// Run drives an interactive exam session until the input ends or the user
// quits. One question shows per page; a bare number 0-4 answers it and moves
// on. Commands:
//
//	n, p, h   next / previous / first page
//	t         print the submission table
//	d N[,N…]  delete the listed table rows
//	c         commit the current answers
//	q         quit
func (c *Controller) Run(r io.Reader, w io.Writer) error {
	in := bufio.NewScanner(r)

	c.printPage(w)
	for {
		fmt.Fprint(w, "> ")
		if !in.Scan() {
			return in.Err()
		}

		line := strings.TrimSpace(in.Text())
		switch {
		case line == "":
			// keep prompting

		case line == "q":
			return nil

		case line == "n":
			c.NextPage()
			c.printPage(w)
		case line == "p":
			c.PrevPage()
			c.printPage(w)
		case line == "h":
			c.Home()
			c.printPage(w)

		case line == "t":
			c.printTable(w)

		case line == "c":
			sub, err := c.Commit()
			if err != nil {
				log.Errorf("form.commit: %s", err)
				fmt.Fprintln(w, "could not save the exam, see the log")
				continue
			}
			fmt.Fprintf(w, "saved %s %s, summary %d\n", sub.Date, sub.Time, sub.Summary)
			c.printPage(w)

		case strings.HasPrefix(line, "d "):
			selected, err := parseSelection(line[2:])
			if err != nil {
				fmt.Fprintln(w, err)
				continue
			}
			if err := c.Delete(selected); err != nil {
				log.Errorf("form.delete: %s", err)
				fmt.Fprintln(w, "some rows were not deleted, see the log")
			}
			c.printTable(w)

		default:
			v, err := strconv.Atoi(line)
			if err != nil || c.SetAnswer(c.page, v) != nil {
				fmt.Fprintf(w, "enter a value %d-%d, or one of n p h t d c q\n", MinAnswer, MaxAnswer)
				continue
			}
			c.NextPage()
			c.printPage(w)
		}
	}
}

func (c *Controller) printPage(w io.Writer) {
	fmt.Fprintf(w, "\n[%d/%d] %s (%d-%d, current %d, summary %d)\n",
		c.page+1, len(Questions), Questions[c.page],
		MinAnswer, MaxAnswer, c.answers[c.page], c.Summary())
}

func (c *Controller) printTable(w io.Writer) {
	fmt.Fprintln(w, "  #\t"+strings.Join(c.model.Columns(), "\t"))
	for i := 0; i < c.model.RowCount(); i++ {
		cells := make([]string, 0, c.model.ColumnCount())
		for _, v := range c.model.Row(i) {
			cells = append(cells, fmt.Sprint(v))
		}
		fmt.Fprintf(w, "%3d\t%s\n", i+1, strings.Join(cells, "\t"))
	}
}

// parseSelection turns a list of 1-based display row numbers into zero-based
// positions.
func parseSelection(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})

	selected := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 {
			return nil, errors.Errorf("bad row number %q", f)
		}
		selected = append(selected, n-1)
	}
	if len(selected) == 0 {
		return nil, errors.New("no rows selected")
	}
	return selected, nil
}
