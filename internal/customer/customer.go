package customer

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound       = errors.New("customer not found")
	ErrDuplicateEmail = errors.New("a customer with this email already exists")
)

type Customer struct {
	ID               uuid.UUID
	Email            string
	FullName         string
	ProfileCompleted bool
	CreatedAt        time.Time
	UpdatedAt        *time.Time
	DeletedAt        *time.Time
}

// Measurement holds the garment measurements collected during profile
// completion. One row per customer; fields arrive piecemeal.
type Measurement struct {
	CustomerID uuid.UUID
	Length     *decimal.Decimal
	Width      *decimal.Decimal
	Waist      *decimal.Decimal
	Hip        *decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// Complete reports whether every measurement has been provided.
func (m *Measurement) Complete() bool {
	return m.Length != nil && m.Width != nil && m.Waist != nil && m.Hip != nil
}
