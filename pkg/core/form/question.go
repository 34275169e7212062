package form

// Kind is the declared input type of a question.
type Kind string

const (
	KindText     Kind = "text"
	KindTextarea Kind = "textarea"
	KindNumber   Kind = "number"
	KindEmail    Kind = "email"
	KindPhone    Kind = "tel"
)

// Question is a single survey question as served by the backend. Questions are read-only for the lifetime of a session.
type Question struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	InputType   Kind   `json:"input_type"`
	Field       string `json:"field"`
	ID          int64  `json:"id"`
}

// AnswerEntry is one element of the submitted answer list.
type AnswerEntry struct {
	Answer     string `json:"answer"`
	QuestionID int64  `json:"question_id"`
}
