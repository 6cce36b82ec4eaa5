// internal/services/errors.go
package services

import (
	"errors"
	"fmt"
)

// Sentinel errors the handlers translate into HTTP statuses.
var (
	ErrPropertyNotFound  = errors.New("property not found")
	ErrPropertyBlocked   = errors.New("property is blocked")
	ErrNotOwner          = errors.New("not the owner of this property")
	ErrFavoriteExists    = errors.New("property already in favorites")
	ErrFavoriteNotFound  = errors.New("favorite not found")
	ErrListingTypeFrozen = errors.New("listing type cannot be changed")
)

// WrongListingTypeError marks a lookup that found the property under the
// other listing type. It carries enough for the client to redirect instead
// of rendering a dead end.
type WrongListingTypeError struct {
	ListingType string
	Path        string
}

func (e *WrongListingTypeError) Error() string {
	return fmt.Sprintf("property belongs to listing type %q", e.ListingType)
}

// ValidationError is a single bad field on a create or update request,
// beyond what struct tags can express.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StateError reports an operation that conflicts with the resource's
// current lifecycle state, like blocking an already-blocked listing.
type StateError struct {
	Message string
}

func (e *StateError) Error() string {
	return e.Message
}
