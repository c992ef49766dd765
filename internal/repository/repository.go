package repository

import (
	"errors"

	"health-insurance-backend/internal/service"

	"gorm.io/gorm"
)

// translateError maps gorm errors onto the service error taxonomy. Requires
// the connection to be opened with TranslateError so driver uniqueness
// violations arrive as gorm.ErrDuplicatedKey.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return service.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return service.ErrConflict
	}
	return err
}
