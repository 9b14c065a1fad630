package entity

import (
	"time"

	"github.com/google/uuid"
)

// TokenAccount is the available token balance for one owner.
type TokenAccount struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TokenReservation is a hold on an owner's balance tied to one job.
type TokenReservation struct {
	ID             uuid.UUID  `json:"id"`
	OwnerID        uuid.UUID  `json:"owner_id"`
	JobID          uuid.UUID  `json:"job_id"`
	AmountReserved int64      `json:"amount_reserved"`
	AmountConsumed int64      `json:"amount_consumed"`
	CreatedAt      time.Time  `json:"created_at"`
	ReleasedAt     *time.Time `json:"released_at,omitempty"`
}

// Remaining returns the unconsumed part of the reservation.
func (r *TokenReservation) Remaining() int64 {
	return r.AmountReserved - r.AmountConsumed
}

// Open reports whether the reservation has not been released yet.
func (r *TokenReservation) Open() bool {
	return r.ReleasedAt == nil
}
