package form

import (
	"time"

	"github.com/pkg/errors"

	"altman-tracker/model"
	"altman-tracker/readmodel"
	"altman-tracker/store"
)

// Questions of the Altman self-rating mania scale, one page each.
var Questions = [5]string{
	"Cheerfulness / positive mood",
	"Self-confidence",
	"Need for sleep",
	"Amount of talking",
	"Activity level",
}

const (
	MinAnswer = 0
	MaxAnswer = 4
)

// Controller collects the answers of one exam run and commits them as a
// Submission. Date and time stamp the moment the form was last (re)set,
// matching a date/time widget initialized when the exam page comes up.
type Controller struct {
	store *store.Store
	model *readmodel.TableModel

	date      string
	timeOfDay string
	answers   [5]int
	page      int

	now func() time.Time
}

func NewController(s *store.Store, m *readmodel.TableModel) *Controller {
	c := &Controller{store: s, model: m, now: time.Now}
	c.Reset()
	return c
}

// Reset clears all answers, restamps date and time and returns to the first
// page.
func (c *Controller) Reset() {
	t := c.now()
	c.date = t.Format("2006-01-02")
	c.timeOfDay = t.Format("15:04")
	c.answers = [5]int{}
	c.page = 0
}

// SetAnswer stores a slider value for question i (zero-based). Values outside
// the slider range are refused the way the widget would refuse them.
func (c *Controller) SetAnswer(i, v int) error {
	if i < 0 || i >= len(c.answers) {
		return errors.Errorf("no question %d", i)
	}
	if v < MinAnswer || v > MaxAnswer {
		return errors.Errorf("answer %d outside range %d-%d", v, MinAnswer, MaxAnswer)
	}
	c.answers[i] = v
	return nil
}

func (c *Controller) Answer(i int) int {
	return c.answers[i]
}

// Summary recomputes the derived value from the current answers.
func (c *Controller) Summary() int {
	return model.SummaryOf(c.answers[:]...)
}

// Commit recomputes the summary, writes one row, refreshes the bound model
// and resets the form for the next exam run.
func (c *Controller) Commit() (model.Submission, error) {
	sub := model.Submission{
		Date:    c.date,
		Time:    c.timeOfDay,
		Answer1: c.answers[0],
		Answer2: c.answers[1],
		Answer3: c.answers[2],
		Answer4: c.answers[3],
		Answer5: c.answers[4],
		Summary: c.Summary(),
	}

	if err := c.store.InsertSubmission(sub); err != nil {
		return sub, err
	}
	if err := c.model.Refresh(); err != nil {
		return sub, err
	}

	c.Reset()
	return sub, nil
}

// Delete removes the rows at the given display positions from the bound
// model's table.
func (c *Controller) Delete(selected []int) error {
	return c.model.DeleteRows(selected)
}

func (c *Controller) NextPage() {
	c.page = (c.page + 1) % len(Questions)
}

func (c *Controller) PrevPage() {
	c.page = (c.page + len(Questions) - 1) % len(Questions)
}

func (c *Controller) Home() {
	c.page = 0
}

func (c *Controller) Page() int {
	return c.page
}
