package persistent

import (
	"errors"

	"vidtube/pkg/apperr"

	"gorm.io/gorm"
)

// translate maps storage errors onto the shared taxonomy.
func translate(err error, notFound string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(notFound)
	}
	return apperr.Internal(err)
}
