package store

import (
	"context"
	"database/sql"
	"fmt"
)

// SaveAnswers stores the answers of a user in a single transaction and returns the stored rows.
// Entries without a question id are skipped.
func (db *DB) SaveAnswers(ctx context.Context, userID int64, answers []Answer) ([]Response, error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() { _ = tx.Rollback() }()

	query := db.rebind(`INSERT INTO responses (user_id, question_id, answer) VALUES (?, ?, ?)
		RETURNING id, user_id, question_id, answer, created_at`)

	stored := make([]Response, 0, len(answers))

	for _, a := range answers {
		if a.QuestionID == 0 {
			continue
		}

		var (
			r    Response
			text sql.NullString
		)

		row := tx.QueryRowContext(ctx, query, userID, a.QuestionID, a.Text)
		if err := row.Scan(&r.ID, &r.UserID, &r.QuestionID, &text, timestamp{&r.CreatedAt}); err != nil {
			if isForeignKeyViolation(err) {
				return nil, fmt.Errorf("%w: %d", ErrUnknownQuestion, a.QuestionID)
			}

			return nil, fmt.Errorf("failed to insert answer: %w", err)
		}

		r.Answer = text.String
		stored = append(stored, r)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit answers: %w", err)
	}

	return stored, nil
}

// ListUserAnswers returns the answers of a user joined with their questions, ordered by question id.
func (db *DB) ListUserAnswers(ctx context.Context, userID int64) ([]UserAnswer, error) {
	rows, err := db.conn.QueryContext(ctx, db.rebind(`
		SELECT r.id, r.user_id, r.question_id, r.answer, r.created_at,
			q.title, q.description, q.input_type, q.field
		FROM responses r
		JOIN questions q ON r.question_id = q.id
		WHERE r.user_id = ?
		ORDER BY q.id, r.id`), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query answers: %w", err)
	}

	defer func() { _ = rows.Close() }()

	answers := make([]UserAnswer, 0)

	for rows.Next() {
		var (
			a          UserAnswer
			text, desc sql.NullString
		)

		err := rows.Scan(&a.ID, &a.UserID, &a.QuestionID, &text, timestamp{&a.CreatedAt},
			&a.Title, &desc, &a.InputType, &a.Field)
		if err != nil {
			return nil, fmt.Errorf("failed to scan answer: %w", err)
		}

		a.Answer = text.String
		a.Description = desc.String
		answers = append(answers, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate answers: %w", err)
	}

	return answers, nil
}
