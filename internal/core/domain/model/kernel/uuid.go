package kernel

import (
	"fmt"

	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not created through one of
// the constructor functions. Validate returns it for the zero value, which is
// also the nil UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID or UUIDFromString")

// UUID is a value object wrapping github.com/google/uuid. The storefront keys
// every per-user record (current order, history, toasts) by the string form of
// a UUID taken from the X-User-Id header.
//
// The zero value of UUID is invalid. Build one with NewUUID, UUIDFromString or
// UUIDFromGoogle; all of them reject the nil UUID.
//
// UUID is immutable and safe for concurrent use.
//
// Example usage:
//
//	// Parse the user id sent by the storefront client
//	user, err := kernel.UUIDFromString("7a6b5c4d-3e2f-4a1b-8c9d-0e1f2a3b4c5d")
//	if err != nil {
//	    return err
//	}
//
//	// Use its string form as the user key of the order store
//	current, err := store.ReadCurrentOrder(ctx, user.String())
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4).
//
// Example:
//
//	id := kernel.NewUUID()
//	fmt.Println(id.String()) // e.g., "550e8400-e29b-41d4-a716-446655440000"
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses a UUID from its string representation.
// It accepts the formats of uuid.Parse, including:
//   - "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//   - "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"
//   - "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//
// Parameters:
//   - s: the textual UUID
//
// Returns:
//   - the parsed UUID
//   - an "invalid UUID format" error when s does not parse
//   - ErrUUIDIsNotConstructed when s is the nil UUID
//
// Example:
//
//	user, err := kernel.UUIDFromString(r.Header.Get("X-User-Id"))
//	if err != nil {
//	    return fmt.Errorf("invalid user id: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}

	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}

// UUIDFromGoogle adopts an already parsed uuid.UUID, such as a header bound by
// the generated HTTP server.
//
// Parameters:
//   - id: the parsed identifier
//
// Returns:
//   - the wrapped UUID
//   - ErrUUIDIsNotConstructed when id is uuid.Nil
//
// Example:
//
//	user, err := kernel.UUIDFromGoogle(params.XUserId)
//	if err != nil {
//	    return errs.NewValueIsInvalidErrorWithCause("X-User-Id", err)
//	}
func UUIDFromGoogle(id uuid.UUID) (UUID, error) {
	wrapped := UUID{id: id}
	if err := wrapped.Validate(); err != nil {
		return UUID{}, err
	}
	return wrapped, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form in
// lower case. Stores use it as the user key.
func (u UUID) String() string {
	return u.id.String()
}

// Google returns the wrapped uuid.UUID.
func (u UUID) Google() uuid.UUID {
	return u.id
}

// IsEqual reports whether both UUIDs hold the same identifier.
//
// Example:
//
//	a, _ := kernel.UUIDFromString("7a6b5c4d-3e2f-4a1b-8c9d-0e1f2a3b4c5d")
//	b, _ := kernel.UUIDFromString("{7A6B5C4D-3E2F-4A1B-8C9D-0E1F2A3B4C5D}")
//	a.IsEqual(b) // true
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate reports whether the UUID was built by a constructor.
//
// Returns:
//   - nil for a constructed UUID
//   - ErrUUIDIsNotConstructed for the zero value
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
