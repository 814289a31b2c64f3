package persistence

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// isDuplicateKey reports whether the error is a unique constraint
// violation. Covers postgres (SQLSTATE 23505) and sqlite, which is
// used by the in-memory test suites.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
