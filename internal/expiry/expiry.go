package expiry

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// DefaultExpiryDays applies when no configuration row is active.
const DefaultExpiryDays = 365

var ErrNotFound = errors.New("points expiry configuration not found")

// Default is a named points-lifetime configuration. At most one row is
// active at a time: activating a row deactivates all others in the same
// transaction.
type Default struct {
	ID         uuid.UUID
	Name       string
	ExpiryDays int
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
}
