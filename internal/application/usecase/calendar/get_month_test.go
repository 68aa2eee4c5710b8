// Package calendar contains calendar view use cases.
package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/billwise/backend/internal/application/adapter"
	"github.com/billwise/backend/internal/domain/entity"
	"github.com/billwise/backend/internal/domain/valueobject"
)

type fakeBillRepo struct {
	bills       []*entity.Bill
	filterCalls int
}

func (r *fakeBillRepo) Create(ctx context.Context, b *entity.Bill) error { return nil }

func (r *fakeBillRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	for _, b := range r.bills {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (r *fakeBillRepo) FindByFilter(ctx context.Context, filter adapter.BillFilter) ([]*entity.Bill, error) {
	r.filterCalls++
	return r.bills, nil
}

func (r *fakeBillRepo) FindDueWithin(ctx context.Context, from, to time.Time) ([]*entity.Bill, error) {
	return nil, nil
}

func (r *fakeBillRepo) Update(ctx context.Context, b *entity.Bill) error { return nil }

func (r *fakeBillRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeBillRepo) AddPayment(ctx context.Context, p *entity.Payment) error { return nil }

func (r *fakeBillRepo) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	return 0, nil
}

type fakeUserRepo struct {
	user *entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, u *entity.User) error { return nil }

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.user, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.user, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *entity.User) error { return nil }

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.user != nil, nil
}

type fakeCalendarCache struct {
	entries map[string][]byte
}

func newFakeCalendarCache() *fakeCalendarCache {
	return &fakeCalendarCache{entries: make(map[string][]byte)}
}

func (c *fakeCalendarCache) Get(ctx context.Context, userID uuid.UUID, view string) ([]byte, error) {
	return c.entries[userID.String()+":"+view], nil
}

func (c *fakeCalendarCache) Set(ctx context.Context, userID uuid.UUID, view string, payload []byte) error {
	c.entries[userID.String()+":"+view] = payload
	return nil
}

func (c *fakeCalendarCache) InvalidateUser(ctx context.Context, userID uuid.UUID) error {
	c.entries = make(map[string][]byte)
	return nil
}

func monthViewFixture() (*fakeBillRepo, *fakeUserRepo, *entity.Bill) {
	user := entity.NewUser("ana@example.com", "Ana", "hash")
	b := billDue("Internet", 99.90, time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC))
	b.UserID = user.ID
	return &fakeBillRepo{bills: []*entity.Bill{b}}, &fakeUserRepo{user: user}, b
}

func TestGetMonthUseCase_ReferenceDateKeysCache(t *testing.T) {
	billRepo, userRepo, _ := monthViewFixture()
	uc := NewGetMonthUseCase(billRepo, userRepo, newFakeCalendarCache())

	month := valueobject.NewMonth(2024, time.February)
	userID := userRepo.user.ID

	first, err := uc.Execute(context.Background(), GetMonthInput{
		UserID: userID,
		Month:  month,
		AsOf:   time.Date(2024, time.February, 13, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Execute() asOf=Feb 13 error = %v", err)
	}
	got := first.BillsByDay[15][0]
	if got.Status != entity.BillStatusDueSoon || got.DaysToDue != 2 {
		t.Fatalf("asOf=Feb 13: status = %s, daysToDue = %d, want due_soon, 2", got.Status, got.DaysToDue)
	}

	// A later reference date must not be answered with the earlier view.
	second, err := uc.Execute(context.Background(), GetMonthInput{
		UserID: userID,
		Month:  month,
		AsOf:   time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Execute() asOf=Feb 20 error = %v", err)
	}
	got = second.BillsByDay[15][0]
	if got.Status != entity.BillStatusOverdue || got.DaysToDue != -5 {
		t.Fatalf("asOf=Feb 20: status = %s, daysToDue = %d, want overdue, -5", got.Status, got.DaysToDue)
	}
}

func TestGetMonthUseCase_SameReferenceDateServedFromCache(t *testing.T) {
	billRepo, userRepo, _ := monthViewFixture()
	uc := NewGetMonthUseCase(billRepo, userRepo, newFakeCalendarCache())

	input := GetMonthInput{
		UserID: userRepo.user.ID,
		Month:  valueobject.NewMonth(2024, time.February),
		AsOf:   time.Date(2024, time.February, 13, 0, 0, 0, 0, time.UTC),
	}

	if _, err := uc.Execute(context.Background(), input); err != nil {
		t.Fatalf("first Execute() error = %v", err)
	}
	cached, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("second Execute() error = %v", err)
	}

	if billRepo.filterCalls != 1 {
		t.Errorf("FindByFilter calls = %d, want 1 (second request served from cache)", billRepo.filterCalls)
	}
	got := cached.BillsByDay[15][0]
	if got.Status != entity.BillStatusDueSoon || got.DaysToDue != 2 {
		t.Errorf("cached view: status = %s, daysToDue = %d, want due_soon, 2", got.Status, got.DaysToDue)
	}
}

func TestGetMonthUseCase_CacheDisabled(t *testing.T) {
	billRepo, userRepo, _ := monthViewFixture()
	uc := NewGetMonthUseCase(billRepo, userRepo, nil)

	input := GetMonthInput{
		UserID: userRepo.user.ID,
		Month:  valueobject.NewMonth(2024, time.February),
		AsOf:   time.Date(2024, time.February, 13, 0, 0, 0, 0, time.UTC),
	}

	if _, err := uc.Execute(context.Background(), input); err != nil {
		t.Fatalf("first Execute() error = %v", err)
	}
	if _, err := uc.Execute(context.Background(), input); err != nil {
		t.Fatalf("second Execute() error = %v", err)
	}
	if billRepo.filterCalls != 2 {
		t.Errorf("FindByFilter calls = %d, want 2 with no cache wired", billRepo.filterCalls)
	}
}
