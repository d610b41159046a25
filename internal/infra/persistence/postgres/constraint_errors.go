package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// constraintDetails classifies an engine rejection for the storage error's
// details field. The commit itself always surfaces as a storage error; the
// classification only tells callers which constraint bit back.
func constraintDetails(err error) string {
	switch {
	case isUniqueConstraintViolation(err):
		return "unique constraint violation"
	case isForeignKeyConstraintViolation(err):
		return "foreign key constraint violation"
	case isNotNullConstraintViolation(err):
		return "not-null constraint violation"
	default:
		return "commit rejected by storage engine"
	}
}

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}
