package repository

import (
	"context"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/optipix/imagesync/gen/ent"
	"github.com/optipix/imagesync/gen/ent/predicate"
	"github.com/optipix/imagesync/gen/ent/tokenaccount"
	"github.com/optipix/imagesync/gen/ent/tokenreservation"
	"github.com/optipix/imagesync/internal/common"
	"github.com/optipix/imagesync/internal/entity"
	"github.com/optipix/imagesync/internal/utils"
)

// LedgerRepository holds the primitive atomic operations the token ledger is
// built on. Balance moves only through single conditional statements (or the
// locked release transaction), so concurrent reservations for one owner can
// never jointly overdraw.
type LedgerRepository interface {
	GetAccount(ctx context.Context, ownerID uuid.UUID) (*entity.TokenAccount, error)
	Credit(ctx context.Context, ownerID uuid.UUID, amount int64) error

	ReserveIfAvailable(ctx context.Context, ownerID, jobID uuid.UUID, amount int64) (*entity.TokenReservation, bool, error)
	GetReservation(ctx context.Context, id uuid.UUID) (*entity.TokenReservation, error)
	OpenReservationByJob(ctx context.Context, jobID uuid.UUID) (*entity.TokenReservation, error)
	ConsumeIfWithin(ctx context.Context, reservationID uuid.UUID, amount int64) (bool, error)
	ReleaseOnce(ctx context.Context, reservationID uuid.UUID) (int64, bool, error)
}

type ledgerRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewLedgerRepository(entc *ent.Client, log *slog.Logger) LedgerRepository {
	return &ledgerRepo{ent: entc, log: log}
}

func (r *ledgerRepo) GetAccount(ctx context.Context, ownerID uuid.UUID) (*entity.TokenAccount, error) {
	acc, err := r.ent.TokenAccount.Query().
		Where(tokenaccount.OwnerID(ownerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return utils.ToAccount(acc), nil
}

func (r *ledgerRepo) Credit(ctx context.Context, ownerID uuid.UUID, amount int64) error {
	n, err := r.ent.TokenAccount.Update().
		Where(tokenaccount.OwnerID(ownerID)).
		AddBalance(amount).
		Save(ctx)
	if err != nil {
		r.log.Error("balance credit failed", "owner_id", ownerID, "amount", amount, "error", err)
		return err
	}
	if n == 0 {
		// credit to an owner we have never seen; open the account with it
		_, err = r.ent.TokenAccount.Create().
			SetOwnerID(ownerID).
			SetBalance(amount).
			Save(ctx)
		if err != nil {
			r.log.Error("account create on credit failed", "owner_id", ownerID, "error", err)
			return err
		}
	}
	return nil
}

// ReserveIfAvailable debits the owner's balance and opens the reservation in
// one transaction. The debit is conditional on the balance covering the full
// amount; any failure rolls back both sides, so the debit can never commit
// without its reservation. Refuses a second open reservation for the same job.
func (r *ledgerRepo) ReserveIfAvailable(ctx context.Context, ownerID, jobID uuid.UUID, amount int64) (*entity.TokenReservation, bool, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, false, err
	}

	exists, err := tx.TokenReservation.Query().
		Where(
			tokenreservation.JobID(jobID),
			tokenreservation.ReleasedAtIsNil(),
		).
		Exist(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, false, err
	}
	if exists {
		_ = tx.Rollback()
		return nil, false, common.NewAppError("RESERVATION_EXISTS", "job already has an open reservation", common.ErrInvalidInput)
	}

	n, err := tx.TokenAccount.Update().
		Where(
			tokenaccount.OwnerID(ownerID),
			tokenaccount.BalanceGTE(amount),
		).
		AddBalance(-amount).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.log.Error("balance debit failed", "owner_id", ownerID, "amount", amount, "error", err)
		return nil, false, err
	}
	if n == 0 {
		_ = tx.Rollback()
		return nil, false, nil
	}

	res, err := tx.TokenReservation.Create().
		SetOwnerID(ownerID).
		SetJobID(jobID).
		SetAmountReserved(amount).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.log.Error("reservation create failed", "job_id", jobID, "error", err)
		return nil, false, err
	}
	if err := tx.Commit(); err != nil {
		return nil, false, err
	}

	r.log.Info("tokens reserved", "job_id", jobID, "owner_id", ownerID, "amount", amount)
	return utils.ToReservation(res), true, nil
}

func (r *ledgerRepo) GetReservation(ctx context.Context, id uuid.UUID) (*entity.TokenReservation, error) {
	res, err := r.ent.TokenReservation.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return utils.ToReservation(res), nil
}

func (r *ledgerRepo) OpenReservationByJob(ctx context.Context, jobID uuid.UUID) (*entity.TokenReservation, error) {
	res, err := r.ent.TokenReservation.Query().
		Where(
			tokenreservation.JobID(jobID),
			tokenreservation.ReleasedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return utils.ToReservation(res), nil
}

// ConsumeIfWithin moves amount from reserved to spent only while the
// reservation is open and has that much left.
func (r *ledgerRepo) ConsumeIfWithin(ctx context.Context, reservationID uuid.UUID, amount int64) (bool, error) {
	withinBudget := predicate.TokenReservation(func(s *entsql.Selector) {
		s.Where(entsql.P(func(b *entsql.Builder) {
			b.Ident(tokenreservation.FieldAmountConsumed).
				WriteString(" + ").
				Arg(amount).
				WriteString(" <= ").
				Ident(tokenreservation.FieldAmountReserved)
		}))
	})

	n, err := r.ent.TokenReservation.Update().
		Where(
			tokenreservation.ID(reservationID),
			tokenreservation.ReleasedAtIsNil(),
			withinBudget,
		).
		AddAmountConsumed(amount).
		Save(ctx)
	if err != nil {
		r.log.Error("reservation consume failed", "reservation_id", reservationID, "amount", amount, "error", err)
		return false, err
	}
	return n > 0, nil
}

// ReleaseOnce returns the unconsumed remainder to the owner's balance and
// marks the reservation released, at most once. A second call finds the
// released_at already set and does nothing.
func (r *ledgerRepo) ReleaseOnce(ctx context.Context, reservationID uuid.UUID) (int64, bool, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return 0, false, err
	}

	res, err := tx.TokenReservation.Query().
		Where(tokenreservation.ID(reservationID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		_ = tx.Rollback()
		if ent.IsNotFound(err) {
			return 0, false, common.ErrNotFound
		}
		return 0, false, err
	}
	if res.ReleasedAt != nil {
		_ = tx.Rollback()
		return 0, false, nil
	}

	remainder := res.AmountReserved - res.AmountConsumed
	if _, err := tx.TokenReservation.UpdateOneID(reservationID).
		SetReleasedAt(time.Now()).
		Save(ctx); err != nil {
		_ = tx.Rollback()
		return 0, false, err
	}
	if remainder > 0 {
		n, err := tx.TokenAccount.Update().
			Where(tokenaccount.OwnerID(res.OwnerID)).
			AddBalance(remainder).
			Save(ctx)
		if err != nil {
			_ = tx.Rollback()
			return 0, false, err
		}
		if n == 0 {
			if _, err := tx.TokenAccount.Create().
				SetOwnerID(res.OwnerID).
				SetBalance(remainder).
				Save(ctx); err != nil {
				_ = tx.Rollback()
				return 0, false, err
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, false, err
	}

	r.log.Info("reservation released", "reservation_id", reservationID, "remainder", remainder)
	return remainder, true, nil
}
