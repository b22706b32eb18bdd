package transaction

import (
	"context"
	"sort"
	"time"

	"github.com/amirhossein-jamali/family-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/family-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/family-ledger/internal/domain/port/persistence"
)

// Hand-rolled fakes for the transaction service's ports.

type stubTimeProvider struct {
	now time.Time
}

func (s *stubTimeProvider) Now() time.Time                  { return s.now }
func (s *stubTimeProvider) Since(t time.Time) time.Duration { return s.now.Sub(t) }

type nopLogger struct {
	level coreport.LogLevel
}

func (l *nopLogger) SetLevel(level coreport.LogLevel) { l.level = level }
func (l *nopLogger) GetLevel() coreport.LogLevel      { return l.level }
func (l *nopLogger) Debug(string, map[string]any)     {}
func (l *nopLogger) Info(string, map[string]any)      {}
func (l *nopLogger) Warn(string, map[string]any)      {}
func (l *nopLogger) Error(string, map[string]any)     {}
func (l *nopLogger) Flush() error                     { return nil }

type fakeTransactionRepo struct {
	rows   []*entity.Transaction
	nextID uint64
}

func (r *fakeTransactionRepo) GetByIDAndOwner(_ context.Context, id, ownerID uint64) (*entity.Transaction, error) {
	for _, tx := range r.rows {
		if tx.ID == id && tx.UserID == ownerID {
			copied := *tx
			return &copied, nil
		}
	}
	return nil, errs.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) ListVisible(_ context.Context, userID uint64, familyID *uint64, filter persistence.BillFilter) ([]entity.Transaction, error) {
	visible := []entity.Transaction{}
	for _, tx := range r.rows {
		personal := tx.UserID == userID && !tx.IsFamilyBill
		family := familyID != nil && tx.FamilyID != nil && *tx.FamilyID == *familyID

		var keep bool
		switch filter {
		case persistence.FilterPersonal:
			keep = personal
		case persistence.FilterFamily:
			keep = family
		default:
			keep = personal || family
		}
		if keep {
			visible = append(visible, *tx)
		}
	}
	sort.Slice(visible, func(i, j int) bool {
		if !visible[i].Date.Equal(visible[j].Date) {
			return visible[i].Date.After(visible[j].Date)
		}
		return visible[i].ID > visible[j].ID
	})
	return visible, nil
}

func (r *fakeTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	r.nextID++
	transaction.ID = r.nextID
	copied := *transaction
	r.rows = append(r.rows, &copied)
	return nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, transaction *entity.Transaction) error {
	for i, tx := range r.rows {
		if tx.ID == transaction.ID {
			copied := *transaction
			r.rows[i] = &copied
			return nil
		}
	}
	return errs.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id uint64) error {
	for i, tx := range r.rows {
		if tx.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return errs.ErrTransactionNotFound
}

// fakeMembershipRepo implements only the read paths the transaction service
// uses; the rest return ErrMembershipNotFound
type fakeMembershipRepo struct {
	rows []*entity.Membership
}

func (r *fakeMembershipRepo) GetActiveByUser(_ context.Context, userID uint64) (*entity.Membership, error) {
	for _, m := range r.rows {
		if m.UserID == userID && m.IsActive {
			copied := *m
			return &copied, nil
		}
	}
	return nil, errs.ErrMembershipNotFound
}

func (r *fakeMembershipRepo) GetByUserAndFamily(_ context.Context, userID, familyID uint64) (*entity.Membership, error) {
	for _, m := range r.rows {
		if m.UserID == userID && m.FamilyID == familyID {
			copied := *m
			return &copied, nil
		}
	}
	return nil, errs.ErrMembershipNotFound
}

func (r *fakeMembershipRepo) GetActiveByUserAndFamily(_ context.Context, userID, familyID uint64) (*entity.Membership, error) {
	for _, m := range r.rows {
		if m.UserID == userID && m.FamilyID == familyID && m.IsActive {
			copied := *m
			return &copied, nil
		}
	}
	return nil, errs.ErrMembershipNotFound
}

func (r *fakeMembershipRepo) ListActiveByFamily(context.Context, uint64) ([]entity.FamilyMemberProfile, error) {
	return nil, nil
}

func (r *fakeMembershipRepo) CountActiveAdmins(context.Context, uint64) (int64, error) {
	return 0, nil
}

func (r *fakeMembershipRepo) Create(_ context.Context, membership *entity.Membership) error {
	copied := *membership
	r.rows = append(r.rows, &copied)
	return nil
}

func (r *fakeMembershipRepo) Update(context.Context, *entity.Membership) error { return nil }

func (r *fakeMembershipRepo) DeleteByFamily(context.Context, uint64) error { return nil }

func (r *fakeMembershipRepo) addActive(userID, familyID uint64, role entity.FamilyRole) {
	r.rows = append(r.rows, &entity.Membership{
		ID:       uint64(len(r.rows) + 1),
		UserID:   userID,
		FamilyID: familyID,
		Role:     role,
		IsActive: true,
	})
}

type testHarness struct {
	service         *Service
	transactionRepo *fakeTransactionRepo
	membershipRepo  *fakeMembershipRepo
	clock           *stubTimeProvider
}

func newTestHarness() *testHarness {
	transactionRepo := &fakeTransactionRepo{}
	membershipRepo := &fakeMembershipRepo{}
	clock := &stubTimeProvider{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	service := NewService(transactionRepo, membershipRepo, clock, &nopLogger{})
	return &testHarness{
		service:         service,
		transactionRepo: transactionRepo,
		membershipRepo:  membershipRepo,
		clock:           clock,
	}
}
