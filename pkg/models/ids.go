package models

import "github.com/google/uuid"

// newID returns a time-ordered identifier; v7 keeps ids sortable by creation.
func newID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.New().String()
}
