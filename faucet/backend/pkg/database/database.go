package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // postgres driver
	log "github.com/sirupsen/logrus"
)

// DB wraps the postgres connection pool
type DB struct {
	conn *sql.DB
}

// Request represents a faucet request record
type Request struct {
	ID        int64     `json:"id"`
	Recipient string    `json:"recipient"`
	IPAddress string    `json:"ip_address"`
	Amount    int64     `json:"amount"`
	Status    string    `json:"status"` // pending, success, failed
	TxHash    string    `json:"tx_hash"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Statistics represents aggregate faucet statistics
type Statistics struct {
	TotalRequests    int64 `json:"total_requests"`
	TotalDistributed int64 `json:"total_distributed"`
	UniqueRecipients int64 `json:"unique_recipients"`
	RequestsLast24h  int64 `json:"requests_last_24h"`
	RequestsLastHour int64 `json:"requests_last_hour"`
}

// NewPostgresDB connects to postgres and verifies the connection
func NewPostgresDB(databaseURL string) (*DB, error) {
	conn, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(5 * time.Minute)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Close closes the connection pool
func (db *DB) Close() error {
	return db.conn.Close()
}

// Migrate creates the faucet schema if it does not exist
func (db *DB) Migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS faucet_requests (
		id BIGSERIAL PRIMARY KEY,
		recipient TEXT NOT NULL,
		ip_address TEXT NOT NULL,
		amount BIGINT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		tx_hash TEXT NOT NULL DEFAULT '',
		error TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_faucet_requests_recipient ON faucet_requests (recipient);
	CREATE INDEX IF NOT EXISTS idx_faucet_requests_created_at ON faucet_requests (created_at);
	CREATE INDEX IF NOT EXISTS idx_faucet_requests_status ON faucet_requests (status);
	`

	if _, err := db.conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations completed")
	return nil
}

// CreateRequest inserts a new pending request and returns it
func (db *DB) CreateRequest(recipient, ipAddress string, amount int64) (*Request, error) {
	req := &Request{
		Recipient: recipient,
		IPAddress: ipAddress,
		Amount:    amount,
		Status:    "pending",
	}

	err := db.conn.QueryRow(`
		INSERT INTO faucet_requests (recipient, ip_address, amount, status)
		VALUES ($1, $2, $3, 'pending')
		RETURNING id, created_at, updated_at`,
		recipient, ipAddress, amount,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert request: %w", err)
	}

	return req, nil
}

// UpdateRequestSuccess marks a request as successful with its transaction hash
func (db *DB) UpdateRequestSuccess(id int64, txHash string) error {
	result, err := db.conn.Exec(`
		UPDATE faucet_requests
		SET status = 'success', tx_hash = $2, updated_at = NOW()
		WHERE id = $1`,
		id, txHash,
	)
	if err != nil {
		return fmt.Errorf("failed to update request %d: %w", id, err)
	}

	return checkRowsAffected(result, id)
}

// UpdateRequestFailed marks a request as failed with an error message
func (db *DB) UpdateRequestFailed(id int64, errMsg string) error {
	result, err := db.conn.Exec(`
		UPDATE faucet_requests
		SET status = 'failed', error = $2, updated_at = NOW()
		WHERE id = $1`,
		id, errMsg,
	)
	if err != nil {
		return fmt.Errorf("failed to update request %d: %w", id, err)
	}

	return checkRowsAffected(result, id)
}

// GetRecentRequests returns the most recent successful requests
func (db *DB) GetRecentRequests(limit int) ([]Request, error) {
	rows, err := db.conn.Query(`
		SELECT id, recipient, ip_address, amount, status, tx_hash, error, created_at, updated_at
		FROM faucet_requests
		WHERE status = 'success'
		ORDER BY created_at DESC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent requests: %w", err)
	}
	defer rows.Close()

	return scanRequests(rows)
}

// GetRequestsByAddress returns requests for an address created after the given time
func (db *DB) GetRequestsByAddress(address string, since time.Time) ([]Request, error) {
	rows, err := db.conn.Query(`
		SELECT id, recipient, ip_address, amount, status, tx_hash, error, created_at, updated_at
		FROM faucet_requests
		WHERE recipient = $1 AND created_at >= $2 AND status = 'success'
		ORDER BY created_at DESC`,
		address, since,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query requests by address: %w", err)
	}
	defer rows.Close()

	return scanRequests(rows)
}

// GetStatistics returns aggregate statistics over all requests
func (db *DB) GetStatistics() (*Statistics, error) {
	stats := &Statistics{}

	err := db.conn.QueryRow(`
		SELECT
			COUNT(*),
			COALESCE(SUM(amount) FILTER (WHERE status = 'success'), 0),
			COUNT(DISTINCT recipient) FILTER (WHERE status = 'success'),
			COUNT(*) FILTER (WHERE created_at >= NOW() - INTERVAL '24 hours'),
			COUNT(*) FILTER (WHERE created_at >= NOW() - INTERVAL '1 hour')
		FROM faucet_requests`,
	).Scan(
		&stats.TotalRequests,
		&stats.TotalDistributed,
		&stats.UniqueRecipients,
		&stats.RequestsLast24h,
		&stats.RequestsLastHour,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query statistics: %w", err)
	}

	return stats, nil
}

func scanRequests(rows *sql.Rows) ([]Request, error) {
	requests := []Request{}
	for rows.Next() {
		var req Request
		err := rows.Scan(
			&req.ID, &req.Recipient, &req.IPAddress, &req.Amount,
			&req.Status, &req.TxHash, &req.Error, &req.CreatedAt, &req.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan request row: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func checkRowsAffected(result sql.Result, id int64) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return nil
	}
	if affected == 0 {
		return fmt.Errorf("request %d not found", id)
	}
	return nil
}
