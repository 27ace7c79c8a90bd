package usecase_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/iho/fraudmini/internal/domain"
	"github.com/iho/fraudmini/internal/usecase"
	"github.com/iho/fraudmini/internal/usecase/mocks"
)

func TestRuleRepository_LoadFollowsPages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockRuleStore(ctrl)
	gomock.InOrder(
		store.EXPECT().Scan(gomock.Any(), "", usecase.RulePageSize).Return([]domain.Rule{
			{ID: domain.RuleAmountThreshold, Weight: 50},
			{ID: domain.RuleNewDevice, Weight: 30},
		}, "R3", nil),
		store.EXPECT().Scan(gomock.Any(), "R3", usecase.RulePageSize).Return([]domain.Rule{
			{ID: domain.RuleVelocity, Weight: 20},
		}, "", nil),
	)

	repo := usecase.NewRuleRepository(store, zerolog.Nop())

	rules, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rules) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(rules))
	}
	if rules[domain.RuleVelocity].Weight != 20 {
		t.Errorf("expected R4 weight 20, got %d", rules[domain.RuleVelocity].Weight)
	}
}

func TestRuleRepository_LoadIsMemoized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockRuleStore(ctrl)
	store.EXPECT().Scan(gomock.Any(), "", gomock.Any()).Return([]domain.Rule{
		{ID: domain.RuleAmountThreshold, Weight: 50},
	}, "", nil).Times(1)

	repo := usecase.NewRuleRepository(store, zerolog.Nop())

	for i := 0; i < 3; i++ {
		rules, err := repo.Load(context.Background())
		if err != nil {
			t.Fatalf("load %d: %v", i, err)
		}
		if len(rules) != 1 {
			t.Fatalf("load %d: expected 1 rule, got %d", i, len(rules))
		}
	}
}

func TestRuleRepository_FailureIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockRuleStore(ctrl)
	gomock.InOrder(
		store.EXPECT().Scan(gomock.Any(), "", gomock.Any()).Return(nil, "", errors.New("connection refused")),
		store.EXPECT().Scan(gomock.Any(), "", gomock.Any()).Return([]domain.Rule{
			{ID: domain.RuleAmountThreshold, Weight: 50},
		}, "", nil),
	)

	repo := usecase.NewRuleRepository(store, zerolog.Nop())

	_, err := repo.Load(context.Background())
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if errors.Is(err, domain.ErrValidation) {
		t.Fatal("store failure must not be a validation error")
	}

	rules, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}
}

type countingRuleStore struct {
	calls   atomic.Int32
	release chan struct{}
}

func (s *countingRuleStore) Scan(ctx context.Context, after string, limit int) ([]domain.Rule, string, error) {
	s.calls.Add(1)
	<-s.release
	return []domain.Rule{{ID: domain.RuleAmountThreshold, Weight: 50}}, "", nil
}

func TestRuleRepository_ConcurrentLoadsShareOneScan(t *testing.T) {
	store := &countingRuleStore{release: make(chan struct{})}
	repo := usecase.NewRuleRepository(store, zerolog.Nop())

	const callers = 8

	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Load(context.Background())
			errs <- err
		}()
	}

	close(store.release)
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// Goroutines that arrive after the first scan finished hit the cache, so
	// the store is scanned exactly once either way.
	if got := store.calls.Load(); got != 1 {
		t.Fatalf("expected 1 scan, got %d", got)
	}
}
