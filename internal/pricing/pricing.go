package pricing

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound      = errors.New("price point rule not found")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidRule   = errors.New("invalid price point rule")
)

// Rule converts monetary value into points: every UnitValue of spend earns
// PointsPerUnit points. Only the most recently created rule is authoritative.
type Rule struct {
	ID            uuid.UUID
	PointsPerUnit int64
	UnitValue     decimal.Decimal
	CreatedAt     time.Time
	DeletedAt     *time.Time
}
