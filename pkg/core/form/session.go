package form

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
)

var (
	ErrNoQuestions         = errors.New("no questions to answer")
	ErrUnknownQuestion     = errors.New("unknown question")
	ErrFirstPage           = errors.New("already on the first page")
	ErrLastPage            = errors.New("already on the last page")
	ErrValidationFailed    = errors.New("validation failed")
	ErrMandatoryIncomplete = errors.New("mandatory fields are incomplete")
	ErrBusy                = errors.New("submission already in progress")
	ErrSubmitted           = errors.New("answers already submitted")
)

// State is the submission state of a form session.
type State int32

const (
	StateEditing State = iota
	StateSubmitting
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Action is the primary navigation action offered on the active page.
type Action string

const (
	ActionNext   Action = "next"
	ActionSubmit Action = "submit"
)

// PageError is returned when the active page cannot be left because some of its fields are invalid.
type PageError struct {
	Err error
	Key string
}

func (e *PageError) Error() string {
	if errors.Is(e.Err, ErrMandatoryIncomplete) {
		return fmt.Sprintf("Please complete all %s fields before proceeding.", e.Key)
	}

	return "Please fix any validation errors before proceeding. Optional fields can be left empty."
}

func (e *PageError) Unwrap() error {
	return e.Err
}

// Session holds the state of one pass through the questionnaire: the loaded questions, the answers and
// errors entered so far, the active page and the submission state.
// Answers and errors are only changed through the Session methods.
type Session struct {
	answers   Answers
	errors    Errors
	byID      map[int64]Question
	mandatory string
	questions []Question
	pager     Pager
	state     atomic.Int32
}

// NewSession creates a form session over the questions. Questions whose field equals mandatoryGroup must be answered.
// It returns ErrNoQuestions if the list is empty.
func NewSession(questions []Question, mandatoryGroup string) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	byID := make(map[int64]Question, len(questions))
	for _, q := range questions {
		if _, ok := byID[q.ID]; ok {
			return nil, fmt.Errorf("duplicate question id %d", q.ID)
		}

		byID[q.ID] = q
	}

	qs := make([]Question, len(questions))
	copy(qs, questions)

	return &Session{
		questions: qs,
		byID:      byID,
		mandatory: mandatoryGroup,
		answers:   make(Answers),
		errors:    make(Errors),
		pager:     NewPager(qs),
	}, nil
}

// Questions returns the loaded questions in their original order.
func (s *Session) Questions() []Question {
	qs := make([]Question, len(s.questions))
	copy(qs, s.questions)

	return qs
}

// MandatoryGroup returns the field whose questions must be answered.
func (s *Session) MandatoryGroup() string {
	return s.mandatory
}

// IsMandatory reports whether the question belongs to the mandatory group.
func (s *Session) IsMandatory(q Question) bool {
	return q.Field == s.mandatory
}

// Page returns the active page.
func (s *Session) Page() Page {
	return s.pager.Current()
}

// Pages returns all pages in display order.
func (s *Session) Pages() []Page {
	return s.pager.Pages()
}

// PrimaryAction returns ActionSubmit on the terminal page and ActionNext elsewhere.
func (s *Session) PrimaryAction() Action {
	if s.pager.Current().IsLast() {
		return ActionSubmit
	}

	return ActionNext
}

// State returns the current submission state.
func (s *Session) State() State {
	return State(s.state.Load())
}

// Answer returns the stored value of a question and whether it was ever answered.
func (s *Session) Answer(id int64) (string, bool) {
	return s.answers.Get(id)
}

// Error returns the current error message of a question, empty if the field is valid.
func (s *Session) Error(id int64) string {
	return s.errors[id]
}

// Answers returns a copy of the answer store.
func (s *Session) Answers() Answers {
	c := make(Answers, len(s.answers))
	for k, v := range s.answers {
		c[k] = v
	}

	return c
}

// Errors returns a copy of the error store.
func (s *Session) Errors() Errors {
	return s.errors.clone()
}

// SetAnswer records an edit of a question. A pending error on the field is cleared until the field is validated again.
func (s *Session) SetAnswer(id int64, value string) error {
	if _, ok := s.byID[id]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownQuestion, id)
	}

	s.answers[id] = value

	if s.errors.Has(id) {
		s.errors[id] = ""
	}

	return nil
}

// Blur validates a single field after the user leaves it and stores the resulting message, which is returned.
func (s *Session) Blur(id int64) (string, error) {
	q, ok := s.byID[id]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownQuestion, id)
	}

	msg := s.validate(q)
	s.errors[id] = msg

	return msg, nil
}

// ValidatePage re-validates every question of the active page, replacing their entries in the error store.
// It reports whether the page is free of errors.
func (s *Session) ValidatePage() bool {
	valid := true

	for _, q := range s.pager.Current().Questions {
		delete(s.errors, q.ID)

		if msg := s.validate(q); msg != "" {
			s.errors[q.ID] = msg
			valid = false
		}
	}

	return valid
}

// Advance moves to the next page once every field on the active page is valid.
// On failure the page index is unchanged and a *PageError wrapping ErrMandatoryIncomplete or ErrValidationFailed is returned.
// ErrLastPage is returned on the terminal page where the primary action is submit.
func (s *Session) Advance() error {
	page := s.pager.Current()
	if page.IsLast() {
		return ErrLastPage
	}

	if !s.ValidatePage() {
		cause := ErrValidationFailed
		if page.Key == s.mandatory {
			cause = ErrMandatoryIncomplete
		}

		return &PageError{Key: page.Key, Err: cause}
	}

	s.pager.forward()

	return nil
}

// Retreat moves to the previous page without any validation. On the first page it does nothing and returns ErrFirstPage.
func (s *Session) Retreat() error {
	if !s.pager.back() {
		return ErrFirstPage
	}

	return nil
}

// ValidateAll validates every loaded question regardless of the active page.
// When any question fails, the error store is replaced with the failing messages. The failing messages are returned.
func (s *Session) ValidateAll() Errors {
	failing := make(Errors)

	for _, q := range s.questions {
		if msg := s.validate(q); msg != "" {
			failing[q.ID] = msg
		}
	}

	if len(failing) > 0 {
		s.errors = failing.clone()
	}

	return failing
}

// MissingMandatory returns the mandatory questions that have no non-blank answer.
func (s *Session) MissingMandatory() []Question {
	var missing []Question

	for _, q := range s.questions {
		if !s.IsMandatory(q) {
			continue
		}

		if strings.TrimSpace(s.answers[q.ID]) == "" {
			missing = append(missing, q)
		}
	}

	return missing
}

// Entries builds the submission payload: one entry per loaded question in load order, with an empty answer for
// questions that were never answered.
func (s *Session) Entries() []AnswerEntry {
	entries := make([]AnswerEntry, len(s.questions))
	for i, q := range s.questions {
		entries[i] = AnswerEntry{
			QuestionID: q.ID,
			Answer:     s.answers[q.ID],
		}
	}

	return entries
}

// Prepare runs the full pre-submission checks and returns the payload to send.
// Format and required errors across all pages are checked first (ErrValidationFailed), then the mandatory group is
// checked for completeness on its own (ErrMandatoryIncomplete).
func (s *Session) Prepare() ([]AnswerEntry, error) {
	if failing := s.ValidateAll(); len(failing) > 0 {
		return nil, ErrValidationFailed
	}

	// Overlaps with the required check above; kept as an independent pass over the mandatory group.
	if missing := s.MissingMandatory(); len(missing) > 0 {
		return nil, ErrMandatoryIncomplete
	}

	return s.Entries(), nil
}

// BeginSubmit marks the session as submitting. It fails with ErrBusy while another submission is in flight and with
// ErrSubmitted once the answers were accepted.
func (s *Session) BeginSubmit() error {
	if s.state.CompareAndSwap(int32(StateEditing), int32(StateSubmitting)) {
		return nil
	}

	if s.State() == StateSubmitted {
		return ErrSubmitted
	}

	return ErrBusy
}

// EndSubmit clears the submitting flag. A successful submission moves the session to StateSubmitted, otherwise it
// returns to StateEditing so the user can correct and resubmit.
func (s *Session) EndSubmit(ok bool) {
	next := StateEditing
	if ok {
		next = StateSubmitted
	}

	s.state.CompareAndSwap(int32(StateSubmitting), int32(next))
}

func (s *Session) validate(q Question) string {
	return Validate(q.InputType, s.answers[q.ID], s.IsMandatory(q))
}
