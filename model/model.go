package model

// Submission is one Altman questionnaire response, fields in table column
// order. The zero ID marks a record not yet persisted; storage assigns it.
type Submission struct {
	ID      int
	Date    string
	Time    string
	Answer1 int
	Answer2 int
	Answer3 int
	Answer4 int
	Answer5 int
	Summary int
}

func (s Submission) Answers() [5]int {
	return [5]int{s.Answer1, s.Answer2, s.Answer3, s.Answer4, s.Answer5}
}

// SummaryOf sums the answers whose value is greater than zero. Zero-valued
// answers are skipped rather than added as zero contributions.
func SummaryOf(answers ...int) (sum int) {
	for _, v := range answers {
		if v > 0 {
			sum += v
		}
	}
	return
}
