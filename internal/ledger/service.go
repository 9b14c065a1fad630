// Package ledger implements token-cost accounting for sync jobs: a
// reservation is placed against the owner's balance when a job is created,
// consumed item by item as processing succeeds, and any remainder is
// released exactly once when the job reaches a terminal state.
package ledger

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/optipix/imagesync/internal/entity"
	"github.com/optipix/imagesync/internal/repository"
)

var (
	// ErrInsufficientFunds means the owner's available balance cannot cover
	// the requested reservation. Nothing is debited when this is returned.
	ErrInsufficientFunds = errors.New("insufficient token balance")

	// ErrOverConsumption means a consume would exceed the reservation's
	// remaining amount, or the reservation is already released.
	ErrOverConsumption = errors.New("consume exceeds reserved amount")

	// ErrInvalidAmount rejects non-positive reserve/consume amounts.
	ErrInvalidAmount = errors.New("amount must be positive")
)

// Service is the token ledger. All balance arithmetic happens in the
// repository's single atomic statements; the service sequences them and
// keeps the conservation guarantee: available + open remainders + consumed
// never changes except through external top-ups.
type Service struct {
	repo   repository.LedgerRepository
	logger *slog.Logger
}

func NewService(repo repository.LedgerRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Reserve debits amount from the owner's available balance into a new open
// reservation tied to jobID. Debit and reservation-create commit in one
// repository transaction: a failed reserve leaves the balance untouched, and
// two concurrent reservations cannot jointly overdraw an owner.
func (s *Service) Reserve(ctx context.Context, ownerID, jobID uuid.UUID, amount int64) (*entity.TokenReservation, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	res, ok, err := s.repo.ReserveIfAvailable(ctx, ownerID, jobID, amount)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.logger.Warn("reservation refused", "owner_id", ownerID, "job_id", jobID, "amount", amount)
		return nil, ErrInsufficientFunds
	}
	return res, nil
}

// Consume moves amount from reserved to permanently spent.
func (s *Service) Consume(ctx context.Context, reservationID uuid.UUID, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	ok, err := s.repo.ConsumeIfWithin(ctx, reservationID, amount)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOverConsumption
	}
	return nil
}

// Release returns any unconsumed remainder to the owner's balance.
// Idempotent: releasing an already-released reservation is a no-op.
func (s *Service) Release(ctx context.Context, reservationID uuid.UUID) error {
	remainder, released, err := s.repo.ReleaseOnce(ctx, reservationID)
	if err != nil {
		return err
	}
	if released {
		s.logger.Info("reservation released", "reservation_id", reservationID, "remainder", remainder)
	}
	return nil
}

// Balance reports the owner's available (unreserved, unspent) tokens.
func (s *Service) Balance(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	acc, err := s.repo.GetAccount(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	return acc.Balance, nil
}

// OpenReservationForJob finds the job's open reservation, if any.
func (s *Service) OpenReservationForJob(ctx context.Context, jobID uuid.UUID) (*entity.TokenReservation, error) {
	return s.repo.OpenReservationByJob(ctx, jobID)
}
