package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/geniusdynamics/alumate-sub010/internal/model"
	"github.com/geniusdynamics/alumate-sub010/internal/store"
)

// Reconciled summarises one drift sweep.
type Reconciled struct {
	Celebrations int
	Fundraisers  int
	Corrected    int
	Failed       int
}

// CounterService recomputes aggregate counters from their source rows.
type CounterService interface {
	RecountCelebration(ctx context.Context, celebrationID int64) (model.Recount, error)
	RecountFundraiser(ctx context.Context, fundraiserID int64) (model.Recount, error)
	// ReconcileDrift recounts up to limit drifted rows of each counter.
	ReconcileDrift(ctx context.Context, limit int32) (Reconciled, error)
}

type counterService struct {
	txRunner     TxRunner
	celebrations store.CelebrationStore
	fundraisers  store.FundraiserStore
}

func NewCounterService(txRunner TxRunner, celebrations store.CelebrationStore, fundraisers store.FundraiserStore) CounterService {
	return &counterService{
		txRunner:     txRunner,
		celebrations: celebrations,
		fundraisers:  fundraisers,
	}
}

func (s *counterService) RecountCelebration(ctx context.Context, celebrationID int64) (model.Recount, error) {
	var recount model.Recount

	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		var err error
		recount, err = sp.Celebrations().RecountCongratulations(ctx, celebrationID)
		if err != nil {
			return notFound(err, ErrCelebrationNotFound, "recounting congratulations")
		}
		return nil
	})
	if err != nil {
		return model.Recount{}, err
	}

	logRecount(ctx, "congratulations_count", recount)
	return recount, nil
}

func (s *counterService) RecountFundraiser(ctx context.Context, fundraiserID int64) (model.Recount, error) {
	var recount model.Recount

	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		var err error
		recount, err = sp.Fundraisers().RecountRaised(ctx, fundraiserID)
		if err != nil {
			return notFound(err, ErrFundraiserNotFound, "recounting raised amount")
		}
		return nil
	})
	if err != nil {
		return model.Recount{}, err
	}

	logRecount(ctx, "raised_amount", recount)
	return recount, nil
}

func (s *counterService) ReconcileDrift(ctx context.Context, limit int32) (Reconciled, error) {
	var result Reconciled

	celebrationIDs, err := s.celebrations.ListDrifted(ctx, limit)
	if err != nil {
		return result, fmt.Errorf("listing drifted celebrations: %w", err)
	}
	fundraiserIDs, err := s.fundraisers.ListDrifted(ctx, limit)
	if err != nil {
		return result, fmt.Errorf("listing drifted fundraisers: %w", err)
	}

	var errs []error
	tally := func(recount model.Recount, err error) {
		switch {
		case errors.Is(err, ErrResourceNotFound):
			// deleted between listing and recounting
		case err != nil:
			result.Failed++
			errs = append(errs, err)
		case recount.Drifted():
			result.Corrected++
		}
	}

	for _, celebrationID := range celebrationIDs {
		result.Celebrations++
		tally(s.RecountCelebration(ctx, celebrationID))
	}
	for _, fundraiserID := range fundraiserIDs {
		result.Fundraisers++
		tally(s.RecountFundraiser(ctx, fundraiserID))
	}

	slog.InfoContext(ctx, "counter drift reconciled",
		"celebrations", result.Celebrations,
		"fundraisers", result.Fundraisers,
		"corrected", result.Corrected,
		"failed", result.Failed)

	return result, errors.Join(errs...)
}

func logRecount(ctx context.Context, counter string, recount model.Recount) {
	if recount.Drifted() {
		slog.WarnContext(ctx, "counter drift corrected",
			"counter", counter,
			"id", recount.ID,
			"previous", recount.Previous,
			"current", recount.Current)
		return
	}
	slog.DebugContext(ctx, "counter consistent", "counter", counter, "id", recount.ID, "value", recount.Current)
}
