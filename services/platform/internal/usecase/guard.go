package usecase

import (
	"fmt"

	"vidtube/pkg/apperr"

	"github.com/google/uuid"
)

// Resource is anything with a single owning identity.
type Resource interface {
	OwnedBy() string
	Kind() string
}

// Authorize allows a mutation only when actorID owns the resource.
func Authorize(actorID string, resource Resource, action string) error {
	if actorID == "" || resource.OwnedBy() != actorID {
		return apperr.Forbidden(fmt.Sprintf("You are not authorized to %s this %s", action, resource.Kind()))
	}
	return nil
}

// validateID rejects anything that is not a well-formed identifier.
func validateID(id, what string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperr.Validation(fmt.Sprintf("Invalid %s ID", what))
	}
	return nil
}
