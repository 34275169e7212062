package store

import (
	"context"
	"database/sql"
	"fmt"
)

const (
	fieldPersonal    = "Personal Information"
	fieldDemographic = "Demographic Information"
	fieldHealth      = "Health Information"
	fieldFinancial   = "Financial Information"
)

// DefaultQuestions returns the built-in questionnaire.
func DefaultQuestions() []Question {
	return []Question{
		{Title: "Name", Description: "Please provide your full name.", InputType: "text", Field: fieldPersonal},
		{Title: "Age", Description: "Please provide your age in years.", InputType: "number", Field: fieldPersonal},
		{Title: "Email Address", Description: "Please provide your email address.", InputType: "email", Field: fieldPersonal},
		{Title: "Phone Number", Description: "Please provide your phone number.", InputType: "tel", Field: fieldPersonal},
		{Title: "Address", Description: "Please provide your address.", InputType: "text", Field: fieldPersonal},

		{Title: "Gender", Description: "Please select your gender.", InputType: "text", Field: fieldDemographic},
		{Title: "Ethnicity", Description: "Please select your ethnicity.", InputType: "text", Field: fieldDemographic},
		{Title: "Country of Residence", Description: "Please select your country of residence.", InputType: "text", Field: fieldDemographic},
		{Title: "Highest Education", Description: "Please select your highest level of education.", InputType: "text", Field: fieldDemographic},
		{Title: "Employment Status", Description: "Please select your employment status.", InputType: "text", Field: fieldDemographic},

		{Title: "General Health Status", Description: "Please select your general health status.", InputType: "text", Field: fieldHealth},
		{Title: "Chronic Conditions", Description: "Please list any chronic conditions you have.", InputType: "text", Field: fieldHealth},
		{Title: "Primary Health Provider", Description: "Please list your primary health care provider.", InputType: "text", Field: fieldHealth},
		{Title: "Medications", Description: "Please list any medications you are currently taking.", InputType: "text", Field: fieldHealth},
		{Title: "Physical Activity Level", Description: "Please describe your physical activity level.", InputType: "text", Field: fieldHealth},

		{Title: "Income Level", Description: "Please describe your income level.", InputType: "text", Field: fieldFinancial},
		{Title: "Healthcare Debt", Description: "Please describe your healthcare debt situation.", InputType: "text", Field: fieldFinancial},
		{Title: "FICA and Medicare Savings", Description: "Please describe your FICA and Medicare savings.", InputType: "text", Field: fieldFinancial},
		{
			Title:       "Access to Financial Resources",
			Description: "Do you have any health insurance? If yes, please specify the insurance details.",
			InputType:   "text",
			Field:       fieldFinancial,
		},
	}
}

// SeedQuestions inserts the questions when the questions table is empty. It does nothing otherwise.
func (db *DB) SeedQuestions(ctx context.Context, questions []Question) error {
	var count int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count questions: %w", err)
	}

	if count > 0 {
		return nil
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() { _ = tx.Rollback() }()

	query := db.rebind(`INSERT INTO questions (title, description, input_type, field) VALUES (?, ?, ?, ?)`)

	for _, q := range questions {
		if _, err := tx.ExecContext(ctx, query, q.Title, q.Description, q.InputType, q.Field); err != nil {
			return fmt.Errorf("failed to insert question %q: %w", q.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit questions: %w", err)
	}

	return nil
}

// ListQuestions returns all questions ordered by id.
func (db *DB) ListQuestions(ctx context.Context) ([]Question, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, title, description, input_type, field, created_at FROM questions ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}

	defer func() { _ = rows.Close() }()

	questions := make([]Question, 0)

	for rows.Next() {
		var (
			q    Question
			desc sql.NullString
		)

		if err := rows.Scan(&q.ID, &q.Title, &desc, &q.InputType, &q.Field, timestamp{&q.CreatedAt}); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}

		q.Description = desc.String
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate questions: %w", err)
	}

	return questions, nil
}
