package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// AuditPostgres persists audit events to PostgreSQL so they stay queryable
// after the JSON-lines files rotate away.
type AuditPostgres struct {
	db *sql.DB
}

const auditSchema = `
CREATE TABLE IF NOT EXISTS audit_events (
	id           TEXT PRIMARY KEY,
	timestamp    TIMESTAMPTZ NOT NULL,
	event_type   TEXT NOT NULL,
	severity     TEXT NOT NULL,
	user_id      TEXT,
	username     TEXT,
	ip_address   TEXT,
	action       TEXT NOT NULL,
	resource     TEXT,
	status       TEXT NOT NULL,
	details      JSONB,
	user_agent   TEXT,
	request_id   TEXT,
	block_height BIGINT
);
CREATE INDEX IF NOT EXISTS idx_audit_events_timestamp ON audit_events (timestamp);
CREATE INDEX IF NOT EXISTS idx_audit_events_event_type ON audit_events (event_type);
CREATE INDEX IF NOT EXISTS idx_audit_events_user_id ON audit_events (user_id);
`

// NewAuditPostgres connects to PostgreSQL and ensures the audit schema exists
func NewAuditPostgres(dsn string) (*AuditPostgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	// Connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	if _, err := db.ExecContext(ctx, auditSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create audit schema: %w", err)
	}

	return &AuditPostgres{db: db}, nil
}

// InsertEvent writes one audit event
func (ap *AuditPostgres) InsertEvent(ctx context.Context, event AuditEvent) error {
	var details []byte
	if event.Details != nil {
		var err error
		details, err = json.Marshal(event.Details)
		if err != nil {
			return fmt.Errorf("failed to marshal details: %w", err)
		}
	}

	query := `
		INSERT INTO audit_events (
			id, timestamp, event_type, severity, user_id, username,
			ip_address, action, resource, status, details, user_agent,
			request_id, block_height
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := ap.db.ExecContext(ctx, query,
		uuid.New().String(),
		event.Timestamp,
		event.EventType,
		event.Severity,
		nullString(event.UserID),
		nullString(event.Username),
		nullString(event.IPAddress),
		event.Action,
		nullString(event.Resource),
		event.Status,
		details,
		nullString(event.UserAgent),
		nullString(event.RequestID),
		event.BlockHeight,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit event: %w", err)
	}

	return nil
}

// Ping checks database connectivity
func (ap *AuditPostgres) Ping(ctx context.Context) error {
	return ap.db.PingContext(ctx)
}

// Close closes the database connection
func (ap *AuditPostgres) Close() error {
	return ap.db.Close()
}

// nullString converts empty strings to SQL NULL
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
