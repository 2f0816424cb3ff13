package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/blogem/workout-tracker/models"
)

// AuditRepository handles audit log persistence
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLogEntry) error
	Recent(ctx context.Context, limit int) ([]models.AuditLogEntry, error)
}

type sqliteAuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB) AuditRepository {
	return &sqliteAuditRepository{db: db}
}

// Create inserts a new audit log entry
func (r *sqliteAuditRepository) Create(ctx context.Context, entry *models.AuditLogEntry) error {
	query := `
		INSERT INTO audit_log (timestamp, user_id, method, path, form_data, user_agent, ip_address)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	result, err := r.db.ExecContext(ctx,
		query,
		entry.Timestamp,
		entry.UserID,
		entry.Method,
		entry.Path,
		entry.FormData,
		entry.UserAgent,
		entry.IPAddress,
	)
	if err != nil {
		return fmt.Errorf("failed to create audit log entry: %w", err)
	}

	entry.ID, err = result.LastInsertId()
	return err
}

// Recent returns the latest entries, newest first
func (r *sqliteAuditRepository) Recent(ctx context.Context, limit int) ([]models.AuditLogEntry, error) {
	query := `
		SELECT id, timestamp, user_id, method, path, form_data, user_agent, ip_address
		FROM audit_log
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}
	defer rows.Close()

	var entries []models.AuditLogEntry
	for rows.Next() {
		var entry models.AuditLogEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.Timestamp,
			&entry.UserID,
			&entry.Method,
			&entry.Path,
			&entry.FormData,
			&entry.UserAgent,
			&entry.IPAddress,
		); err != nil {
			return nil, fmt.Errorf("failed to scan audit log entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
