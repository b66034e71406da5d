package postgres

import (
	"fmt"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/database"
)

// mapConstraintError turns integrity violations and rejected values into domain
// errors, keeping the driver error in the chain for logging. Other errors pass
// through untouched.
func mapConstraintError(err error) error {
	switch {
	case err == nil:
		return nil
	case database.IsUniqueViolation(err):
		return fmt.Errorf("%w: %w", domain.ErrConflict, err)
	case database.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %w", domain.ErrInvalidReference, err)
	case database.IsIntegrityViolation(err), database.IsDataException(err):
		return fmt.Errorf("%w: %w", domain.ErrInvalidData, err)
	default:
		return err
	}
}
