package family

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/family-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/family-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/family-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/family-ledger/internal/domain/port/persistence"
)

// Hand-rolled fakes for the family service's ports.

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

type fakeFamilyRepo struct {
	families map[uint64]*entity.Family
	nextID   uint64

	// failCreates makes the next N Create calls report a uniqueness
	// collision, exercising the invitation-code retry loop
	failCreates int

	// aborted mirrors postgres: after a failed statement every further
	// statement errors until the transaction rolls back to a savepoint
	aborted bool
}

func newFakeFamilyRepo() *fakeFamilyRepo {
	return &fakeFamilyRepo{families: map[uint64]*entity.Family{}}
}

func (r *fakeFamilyRepo) GetByID(_ context.Context, id uint64) (*entity.Family, error) {
	family, ok := r.families[id]
	if !ok {
		return nil, errs.ErrFamilyNotFound
	}
	copied := *family
	return &copied, nil
}

func (r *fakeFamilyRepo) GetByInvitationCode(_ context.Context, code string) (*entity.Family, error) {
	for _, family := range r.families {
		if family.InvitationCode == code {
			copied := *family
			return &copied, nil
		}
	}
	return nil, errs.ErrInvitationNotFound
}

func (r *fakeFamilyRepo) Create(_ context.Context, family *entity.Family) error {
	if r.aborted {
		return errs.ErrDatabaseConnection
	}
	if r.failCreates > 0 {
		r.failCreates--
		r.aborted = true
		return errs.ErrConstraintViolation
	}
	for _, existing := range r.families {
		if existing.InvitationCode == family.InvitationCode {
			r.aborted = true
			return errs.ErrConstraintViolation
		}
	}
	r.nextID++
	family.ID = r.nextID
	copied := *family
	r.families[family.ID] = &copied
	return nil
}

func (r *fakeFamilyRepo) Delete(_ context.Context, id uint64) error {
	if _, ok := r.families[id]; !ok {
		return errs.ErrFamilyNotFound
	}
	delete(r.families, id)
	return nil
}

type fakeMembershipRepo struct {
	rows   []*entity.Membership
	users  map[uint64]entity.PublicProfile
	nextID uint64
}

func newFakeMembershipRepo() *fakeMembershipRepo {
	return &fakeMembershipRepo{users: map[uint64]entity.PublicProfile{}}
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

func (r *fakeMembershipRepo) ListActiveByFamily(_ context.Context, familyID uint64) ([]entity.FamilyMemberProfile, error) {
	profiles := []entity.FamilyMemberProfile{}
	for _, m := range r.rows {
		if m.FamilyID == familyID && m.IsActive {
			profiles = append(profiles, entity.FamilyMemberProfile{
				PublicProfile:  r.users[m.UserID],
				IsAdmin:        m.IsAdmin(),
				FamilyMemberID: m.ID,
			})
		}
	}
	return profiles, nil
}

func (r *fakeMembershipRepo) CountActiveAdmins(_ context.Context, familyID uint64) (int64, error) {
	var count int64
	for _, m := range r.rows {
		if m.FamilyID == familyID && m.IsActive && m.IsAdmin() {
			count++
		}
	}
	return count, nil
}

func (r *fakeMembershipRepo) Create(_ context.Context, membership *entity.Membership) error {
	for _, m := range r.rows {
		if m.UserID == membership.UserID && m.IsActive && membership.IsActive {
			return errs.ErrAlreadyInFamily
		}
	}
	r.nextID++
	membership.ID = r.nextID
	copied := *membership
	r.rows = append(r.rows, &copied)
	return nil
}

func (r *fakeMembershipRepo) Update(_ context.Context, membership *entity.Membership) error {
	for i, m := range r.rows {
		if m.ID == membership.ID {
			copied := *membership
			r.rows[i] = &copied
			return nil
		}
	}
	return errs.ErrMembershipNotFound
}

func (r *fakeMembershipRepo) DeleteByFamily(_ context.Context, familyID uint64) error {
	kept := r.rows[:0]
	for _, m := range r.rows {
		if m.FamilyID != familyID {
			kept = append(kept, m)
		}
	}
	r.rows = kept
	return nil
}

// fakeUnitOfWork hands back the shared fakes; Begin/Commit/Rollback only
// count calls since the fakes are not transactional. RollbackTo clears the
// family repo's aborted state, matching what a savepoint rollback restores.
type fakeUnitOfWork struct {
	familyRepo     *fakeFamilyRepo
	membershipRepo *fakeMembershipRepo
	commits        int
	rollbacks      int
	savepoints     int
	rollbackTos    int
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }

func (u *fakeUnitOfWork) Commit(context.Context) error {
	u.commits++
	return nil
}

func (u *fakeUnitOfWork) Rollback(context.Context) error {
	u.rollbacks++
	return nil
}

func (u *fakeUnitOfWork) SavePoint(context.Context, string) error {
	u.savepoints++
	return nil
}

func (u *fakeUnitOfWork) RollbackTo(context.Context, string) error {
	u.rollbackTos++
	u.familyRepo.aborted = false
	return nil
}

func (u *fakeUnitOfWork) GetFamilyRepository(context.Context) persistence.FamilyRepository {
	return u.familyRepo
}

func (u *fakeUnitOfWork) GetMembershipRepository(context.Context) persistence.MembershipRepository {
	return u.membershipRepo
}

type testHarness struct {
	service        *Service
	familyRepo     *fakeFamilyRepo
	membershipRepo *fakeMembershipRepo
	uow            *fakeUnitOfWork
}

func newTestHarness() *testHarness {
	familyRepo := newFakeFamilyRepo()
	membershipRepo := newFakeMembershipRepo()
	uow := &fakeUnitOfWork{familyRepo: familyRepo, membershipRepo: membershipRepo}
	service := NewService(
		familyRepo,
		membershipRepo,
		uow,
		&stubTimeProvider{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
		&nopLogger{},
	)
	return &testHarness{
		service:        service,
		familyRepo:     familyRepo,
		membershipRepo: membershipRepo,
		uow:            uow,
	}
}
