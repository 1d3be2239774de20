package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrStaleJob is returned when a conditional status transition matched no
// row, i.e. the job left the required status between read and write.
var ErrStaleJob = errors.New("job status changed concurrently")

// Migrate creates/updates the schema from the row models. The unique indexes
// on bids, job_unlocks, assignments, reviews and subscriptions are the
// correctness backstop for concurrent requests and must exist in every store.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&jobModel{},
		&bidModel{},
		&assignmentModel{},
		&unlockModel{},
		&subscriptionModel{},
		&signoffModel{},
		&reviewModel{},
	)
}

// IsUniqueViolation reports whether err is a unique-constraint violation
// from Postgres (SQLSTATE 23505) or SQLite.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	s := err.Error()
	return strings.Contains(s, "UNIQUE constraint failed") ||
		strings.Contains(s, "duplicate key value violates unique constraint") ||
		strings.Contains(s, "23505")
}
