package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/alexanderramin/heatmap/internal/contract"
	"github.com/alexanderramin/heatmap/internal/domain"
	"github.com/alexanderramin/heatmap/internal/generation"
	"github.com/alexanderramin/heatmap/internal/grid"
	"github.com/google/uuid"
)

type heatmapService struct {
	observer UseCaseObserver
}

// NewHeatmapService returns a stateless HeatmapService. Every call builds its
// own random source, so one service can be shared across goroutines.
func NewHeatmapService(observers ...UseCaseObserver) HeatmapService {
	return &heatmapService{
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *heatmapService) Build(ctx context.Context, req contract.HeatmapRequest) (resp *contract.HeatmapResponse, err error) {
	startedAt := time.Now().UTC()
	runID := uuid.New().String()
	fields := map[string]any{
		"input_records": len(req.Records),
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "build-heatmap",
			RunID:     runID,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	now := requestNow(req.Now)
	period, err := resolvePeriod(req.Period, now)
	if err != nil {
		return nil, toHeatmapError(err)
	}

	records := slices.Clone(req.Records)
	mock := len(records) == 0
	if mock {
		records, err = generation.Generate(
			generation.Options{Period: period, Realistic: req.Realistic},
			sourceFor(req.Seed),
		)
		if err != nil {
			return nil, toHeatmapError(err)
		}
	}
	fields["mock"] = mock

	weeks, err := grid.BucketIntoWeeks(records)
	if err != nil {
		return nil, toHeatmapError(err)
	}
	months, err := grid.SegmentMonths(weeks, period)
	if err != nil {
		return nil, toHeatmapError(err)
	}
	active := grid.ActiveDays(records, period)
	fields["weeks"] = len(weeks)
	fields["months"] = len(months)
	fields["active_days"] = active

	return &contract.HeatmapResponse{
		RunID:       runID,
		GeneratedAt: now.UTC(),
		Period:      period,
		Mock:        mock,
		ActiveDays:  active,
		Records:     records,
		Weeks:       weeks,
		Months:      months,
	}, nil
}

func (s *heatmapService) Generate(ctx context.Context, req contract.GenerateRequest) (resp *contract.GenerateResponse, err error) {
	startedAt := time.Now().UTC()
	runID := uuid.New().String()
	fields := map[string]any{
		"realistic": req.Realistic,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "generate-mock-data",
			RunID:     runID,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	period, err := resolvePeriod(req.Period, requestNow(req.Now))
	if err != nil {
		return nil, toHeatmapError(err)
	}

	records, err := generation.Generate(
		generation.Options{Period: period, Realistic: req.Realistic},
		sourceFor(req.Seed),
	)
	if err != nil {
		return nil, toHeatmapError(err)
	}
	fields["records"] = len(records)

	return &contract.GenerateResponse{
		RunID:   runID,
		Period:  period,
		Records: records,
	}, nil
}

func requestNow(now *time.Time) time.Time {
	if now != nil {
		return *now
	}
	return time.Now()
}

func resolvePeriod(p *domain.Period, now time.Time) (domain.Period, error) {
	if p == nil {
		return domain.DefaultPeriodEnding(domain.DateOf(now)), nil
	}
	if err := p.Validate(); err != nil {
		return domain.Period{}, err
	}
	return *p, nil
}

func sourceFor(seed *uint64) generation.Source {
	if seed != nil {
		return generation.NewSource(*seed)
	}
	return generation.NewRandomSource()
}

func toHeatmapError(err error) error {
	switch {
	case errors.Is(err, domain.ErrDuplicateDate):
		return &contract.HeatmapError{Code: contract.ErrDuplicateDate, Message: err.Error(), Err: err}
	case errors.Is(err, domain.ErrInvalidArgument):
		return &contract.HeatmapError{Code: contract.ErrInvalidArgument, Message: err.Error(), Err: err}
	default:
		return &contract.HeatmapError{Code: contract.ErrInternalError, Message: fmt.Sprintf("building heatmap: %v", err), Err: err}
	}
}
