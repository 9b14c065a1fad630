package ledger

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optipix/imagesync/internal/common"
	"github.com/optipix/imagesync/internal/entity"
)

// memLedgerRepo implements repository.LedgerRepository with the same
// conditional-update semantics as the database-backed one.
type memLedgerRepo struct {
	mu           sync.Mutex
	balances     map[uuid.UUID]int64
	reservations map[uuid.UUID]*entity.TokenReservation
}

func newMemLedgerRepo() *memLedgerRepo {
	return &memLedgerRepo{
		balances:     make(map[uuid.UUID]int64),
		reservations: make(map[uuid.UUID]*entity.TokenReservation),
	}
}

func (m *memLedgerRepo) GetAccount(_ context.Context, ownerID uuid.UUID) (*entity.TokenAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bal, ok := m.balances[ownerID]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &entity.TokenAccount{OwnerID: ownerID, Balance: bal}, nil
}

func (m *memLedgerRepo) Credit(_ context.Context, ownerID uuid.UUID, amount int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[ownerID] += amount
	return nil
}

func (m *memLedgerRepo) ReserveIfAvailable(_ context.Context, ownerID, jobID uuid.UUID, amount int64) (*entity.TokenReservation, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.reservations {
		if r.JobID == jobID && r.ReleasedAt == nil {
			return nil, false, errors.New("job already has an open reservation")
		}
	}
	if m.balances[ownerID] < amount {
		return nil, false, nil
	}
	m.balances[ownerID] -= amount
	res := &entity.TokenReservation{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		JobID:          jobID,
		AmountReserved: amount,
		CreatedAt:      time.Now(),
	}
	m.reservations[res.ID] = res
	return cloneReservation(res), true, nil
}

func (m *memLedgerRepo) GetReservation(_ context.Context, id uuid.UUID) (*entity.TokenReservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res, ok := m.reservations[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return cloneReservation(res), nil
}

func (m *memLedgerRepo) OpenReservationByJob(_ context.Context, jobID uuid.UUID) (*entity.TokenReservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.reservations {
		if r.JobID == jobID && r.ReleasedAt == nil {
			return cloneReservation(r), nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *memLedgerRepo) ConsumeIfWithin(_ context.Context, reservationID uuid.UUID, amount int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res, ok := m.reservations[reservationID]
	if !ok || res.ReleasedAt != nil {
		return false, nil
	}
	if res.AmountConsumed+amount > res.AmountReserved {
		return false, nil
	}
	res.AmountConsumed += amount
	return true, nil
}

func (m *memLedgerRepo) ReleaseOnce(_ context.Context, reservationID uuid.UUID) (int64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res, ok := m.reservations[reservationID]
	if !ok {
		return 0, false, common.ErrNotFound
	}
	if res.ReleasedAt != nil {
		return 0, false, nil
	}
	now := time.Now()
	res.ReleasedAt = &now
	remainder := res.AmountReserved - res.AmountConsumed
	m.balances[res.OwnerID] += remainder
	return remainder, true, nil
}

func cloneReservation(r *entity.TokenReservation) *entity.TokenReservation {
	c := *r
	return &c
}

// conserved returns available + open remainders + consumed for one owner.
func (m *memLedgerRepo) conserved(ownerID uuid.UUID) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := m.balances[ownerID]
	for _, r := range m.reservations {
		if r.OwnerID != ownerID {
			continue
		}
		total += r.AmountConsumed
		if r.ReleasedAt == nil {
			total += r.AmountReserved - r.AmountConsumed
		}
	}
	return total
}

func newTestService(t *testing.T) (*Service, *memLedgerRepo) {
	t.Helper()
	repo := newMemLedgerRepo()
	return NewService(repo, nil), repo
}

func TestReserveDebitsBalance(t *testing.T) {
	svc, repo := newTestService(t)
	owner := uuid.New()
	require.NoError(t, repo.Credit(context.Background(), owner, 10))

	res, err := svc.Reserve(context.Background(), owner, uuid.New(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), res.AmountReserved)
	assert.Equal(t, int64(0), res.AmountConsumed)

	bal, err := svc.Balance(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, int64(0), bal)
}

func TestReserveInsufficientFunds(t *testing.T) {
	svc, repo := newTestService(t)
	owner := uuid.New()
	require.NoError(t, repo.Credit(context.Background(), owner, 3))

	_, err := svc.Reserve(context.Background(), owner, uuid.New(), 10)
	require.ErrorIs(t, err, ErrInsufficientFunds)

	// nothing was debited
	bal, err := svc.Balance(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, int64(3), bal)
}

// A reserve that fails after the balance check must not leave a debit
// behind: debit and reservation-create commit together or not at all.
func TestReserveFailureDestroysNoTokens(t *testing.T) {
	svc, repo := newTestService(t)
	owner := uuid.New()
	jobID := uuid.New()
	require.NoError(t, repo.Credit(context.Background(), owner, 100))

	_, err := svc.Reserve(context.Background(), owner, jobID, 40)
	require.NoError(t, err)

	// second hold for the same job is refused inside the reserve
	_, err = svc.Reserve(context.Background(), owner, jobID, 40)
	require.Error(t, err)

	bal, err := svc.Balance(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, int64(60), bal)
	assert.Equal(t, int64(100), repo.conserved(owner))
}

func TestReserveRejectsNonPositiveAmount(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Reserve(context.Background(), uuid.New(), uuid.New(), 0)
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestConsumeWithinBudget(t *testing.T) {
	svc, repo := newTestService(t)
	owner := uuid.New()
	require.NoError(t, repo.Credit(context.Background(), owner, 10))
	res, err := svc.Reserve(context.Background(), owner, uuid.New(), 10)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		require.NoError(t, svc.Consume(context.Background(), res.ID, 1))
	}
	require.ErrorIs(t, svc.Consume(context.Background(), res.ID, 1), ErrOverConsumption)
}

func TestReleaseIdempotent(t *testing.T) {
	svc, repo := newTestService(t)
	owner := uuid.New()
	require.NoError(t, repo.Credit(context.Background(), owner, 10))
	res, err := svc.Reserve(context.Background(), owner, uuid.New(), 10)
	require.NoError(t, err)
	require.NoError(t, svc.Consume(context.Background(), res.ID, 4))

	require.NoError(t, svc.Release(context.Background(), res.ID))
	bal, err := svc.Balance(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, int64(6), bal)

	// second release is a no-op, not an error, and does not double-credit
	require.NoError(t, svc.Release(context.Background(), res.ID))
	bal, err = svc.Balance(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, int64(6), bal)
}

func TestConsumeAfterReleaseRejected(t *testing.T) {
	svc, repo := newTestService(t)
	owner := uuid.New()
	require.NoError(t, repo.Credit(context.Background(), owner, 5))
	res, err := svc.Reserve(context.Background(), owner, uuid.New(), 5)
	require.NoError(t, err)

	require.NoError(t, svc.Release(context.Background(), res.ID))
	require.ErrorIs(t, svc.Consume(context.Background(), res.ID, 1), ErrOverConsumption)
}

// Conservation: available + open remainders + consumed stays equal to the
// initial balance under randomized interleavings of the three operations.
func TestConservationUnderRandomizedOps(t *testing.T) {
	svc, repo := newTestService(t)
	owner := uuid.New()
	const initial = int64(1000)
	require.NoError(t, repo.Credit(context.Background(), owner, initial))

	rng := rand.New(rand.NewSource(42))
	var open []uuid.UUID

	for i := 0; i < 2000; i++ {
		switch rng.Intn(3) {
		case 0:
			amount := int64(rng.Intn(50) + 1)
			res, err := svc.Reserve(context.Background(), owner, uuid.New(), amount)
			if err == nil {
				open = append(open, res.ID)
			} else {
				require.ErrorIs(t, err, ErrInsufficientFunds)
			}
		case 1:
			if len(open) > 0 {
				id := open[rng.Intn(len(open))]
				err := svc.Consume(context.Background(), id, int64(rng.Intn(10)+1))
				if err != nil {
					require.ErrorIs(t, err, ErrOverConsumption)
				}
			}
		case 2:
			if len(open) > 0 {
				idx := rng.Intn(len(open))
				require.NoError(t, svc.Release(context.Background(), open[idx]))
				open = append(open[:idx], open[idx+1:]...)
			}
		}
		require.Equal(t, initial, repo.conserved(owner), "conservation violated at op %d", i)
	}
}

// Concurrent reservations for one owner must never jointly overdraw.
func TestConcurrentReservationsNeverOverdraw(t *testing.T) {
	svc, repo := newTestService(t)
	owner := uuid.New()
	const initial = int64(100)
	require.NoError(t, repo.Credit(context.Background(), owner, initial))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		reserved int64
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := svc.Reserve(context.Background(), owner, uuid.New(), 10)
			if err == nil {
				mu.Lock()
				reserved += res.AmountReserved
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, reserved, initial)
	assert.Equal(t, initial, repo.conserved(owner))
}
