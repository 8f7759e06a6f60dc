package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Conversion statuses.
const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

type Conversion struct {
	ID         string    `json:"id"`
	InputPath  string    `json:"input_path"`
	OutputPath string    `json:"output_path"`
	Title      string    `json:"title"`
	SlideCount int       `json:"slide_count"`
	Summary    string    `json:"summary"`
	Status     string    `json:"status"`
	Error      string    `json:"error"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Slides     []Slide   `json:"slides,omitempty"`
}

type Slide struct {
	SlideNum int      `json:"slide_number"`
	Title    string   `json:"title"`
	Content  []string `json:"content"`
}

// SaveConversion stores a conversion and its slides in one transaction.
func SaveConversion(ctx context.Context, db *sql.DB, c *Conversion) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO conversions (id, input_path, output_path, title, slide_count, summary, status, error, started_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, c.ID, c.InputPath, c.OutputPath, c.Title, c.SlideCount, c.Summary, c.Status, c.Error, c.StartedAt, c.FinishedAt)
	if err != nil {
		return fmt.Errorf("insert conversion: %w", err)
	}

	for _, s := range c.Slides {
		content := s.Content
		if content == nil {
			content = []string{}
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO conversion_slides (conversion_id, slide_number, title, content)
			VALUES ($1, $2, $3, $4)
		`, c.ID, s.SlideNum, s.Title, pq.Array(content))
		if err != nil {
			return fmt.Errorf("insert slide %d: %w", s.SlideNum, err)
		}
	}

	return tx.Commit()
}

// GetConversion loads a conversion with its slides in slide order.
func GetConversion(ctx context.Context, db *sql.DB, id string) (*Conversion, error) {
	var c Conversion
	err := db.QueryRowContext(ctx, `
		SELECT id, input_path, output_path, title, slide_count, summary, status, error, started_at, finished_at
		FROM conversions WHERE id = $1
	`, id).Scan(&c.ID, &c.InputPath, &c.OutputPath, &c.Title, &c.SlideCount, &c.Summary, &c.Status, &c.Error, &c.StartedAt, &c.FinishedAt)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT slide_number, title, content
		FROM conversion_slides WHERE conversion_id = $1 ORDER BY slide_number
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s Slide
		if err := rows.Scan(&s.SlideNum, &s.Title, pq.Array(&s.Content)); err != nil {
			return nil, err
		}
		c.Slides = append(c.Slides, s)
	}
	return &c, rows.Err()
}

// ListConversions returns the most recent conversions without slides.
func ListConversions(ctx context.Context, db *sql.DB, limit int) ([]Conversion, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, input_path, output_path, title, slide_count, summary, status, error, started_at, finished_at
		FROM conversions ORDER BY started_at DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Conversion
	for rows.Next() {
		var c Conversion
		if err := rows.Scan(&c.ID, &c.InputPath, &c.OutputPath, &c.Title, &c.SlideCount, &c.Summary, &c.Status, &c.Error, &c.StartedAt, &c.FinishedAt); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// ClearConversions deletes the whole conversion log.
func ClearConversions(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, "TRUNCATE conversions CASCADE")
	return err
}
