package form

// Answers maps a question id to the current raw value entered for it.
// A missing key means the question was never touched; an empty value means it was touched and cleared.
type Answers map[int64]string

// Get returns the value stored for the question and whether the question was ever answered.
func (a Answers) Get(id int64) (string, bool) {
	v, ok := a[id]
	return v, ok
}

// Value returns the stored value or an empty string for unanswered questions.
func (a Answers) Value(id int64) string {
	return a[id]
}

// Errors maps a question id to its current validation message. An empty message means the field is valid.
type Errors map[int64]string

// Has reports whether the question currently carries a non-empty error message.
func (e Errors) Has(id int64) bool {
	return e[id] != ""
}

// Failing returns the number of questions with a non-empty error message.
func (e Errors) Failing() int {
	n := 0

	for _, msg := range e {
		if msg != "" {
			n++
		}
	}

	return n
}

func (e Errors) clone() Errors {
	c := make(Errors, len(e))
	for k, v := range e {
		c[k] = v
	}

	return c
}
