package service

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/heatmap/internal/contract"
	"github.com/alexanderramin/heatmap/internal/domain"
	"github.com/alexanderramin/heatmap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func seed(v uint64) *uint64 { return &v }

func TestBuild_WithRecords(t *testing.T) {
	svc := NewHeatmapService()
	period := testutil.NewTestPeriod(t, "2024-01-01", "2024-01-07")

	req := contract.NewHeatmapRequest()
	req.Records = testutil.RecordsBetween("2024-01-01", "2024-01-07")
	req.Records[2] = testutil.NewTestRecord("2024-01-03", testutil.WithCount(4))
	req.Period = &period

	resp, err := svc.Build(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, resp.Mock)
	assert.NotEmpty(t, resp.RunID)
	assert.Len(t, resp.Weeks, 2)
	assert.Equal(t, []domain.MonthSpan{{Label: "Jan", Span: 2}}, resp.Months)
	assert.Equal(t, 1, resp.ActiveDays)
	assert.Equal(t, req.Records, resp.Records)
	assert.Equal(t, period, resp.Period)
}

func TestBuild_DefaultPeriodFromNow(t *testing.T) {
	svc := NewHeatmapService()
	now := time.Date(2025, 10, 19, 15, 0, 0, 0, time.UTC)

	req := contract.NewHeatmapRequest()
	req.Now = &now
	req.Seed = seed(1)

	resp, err := svc.Build(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.Mock)
	assert.Equal(t, "2024-10-20", resp.Period.Start.String())
	assert.Equal(t, "2025-10-19", resp.Period.End.String())
	assert.Len(t, resp.Records, 365)

	total := 0
	for _, m := range resp.Months {
		total += m.Span
	}
	assert.Equal(t, len(resp.Weeks), total)
}

func TestBuild_MockIsDeterministicWithSeed(t *testing.T) {
	svc := NewHeatmapService()
	period := testutil.NewTestPeriod(t, "2024-01-01", "2024-06-30")

	req := contract.NewHeatmapRequest()
	req.Period = &period
	req.Realistic = true
	req.Seed = seed(99)

	a, err := svc.Build(context.Background(), req)
	require.NoError(t, err)
	b, err := svc.Build(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, a.Weeks, b.Weeks)
	assert.Equal(t, a.Months, b.Months)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestBuild_DoesNotMutateRequestRecords(t *testing.T) {
	svc := NewHeatmapService()
	req := contract.NewHeatmapRequest()
	req.Records = []domain.DayRecord{
		testutil.NewTestRecord("2024-02-10", testutil.WithCount(3)),
		testutil.NewTestRecord("2024-02-01", testutil.WithCount(1)),
	}
	before := append([]domain.DayRecord(nil), req.Records...)

	resp, err := svc.Build(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, before, req.Records)

	resp.Records[0].Count = 100
	assert.Equal(t, 3, req.Records[0].Count, "response must not alias the request slice")
}

func TestBuild_DuplicateDateError(t *testing.T) {
	svc := NewHeatmapService()
	req := contract.NewHeatmapRequest()
	req.Records = []domain.DayRecord{
		testutil.NewTestRecord("2024-02-10", testutil.WithCount(3)),
		testutil.NewTestRecord("2024-02-10", testutil.WithCount(1)),
	}

	_, err := svc.Build(context.Background(), req)
	require.Error(t, err)

	var herr *contract.HeatmapError
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, contract.ErrDuplicateDate, herr.Code)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestBuild_InvertedPeriodError(t *testing.T) {
	svc := NewHeatmapService()
	req := contract.NewHeatmapRequest()
	req.Period = &domain.Period{Start: domain.MustParseDate("2024-03-01"), End: domain.MustParseDate("2024-02-01")}

	_, err := svc.Build(context.Background(), req)
	var herr *contract.HeatmapError
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, contract.ErrInvalidArgument, herr.Code)
	assert.Contains(t, err.Error(), "INVALID_ARGUMENT")
}

func TestBuild_NegativeCountError(t *testing.T) {
	svc := NewHeatmapService()
	req := contract.NewHeatmapRequest()
	req.Records = []domain.DayRecord{{Date: domain.MustParseDate("2024-02-10"), Count: -2}}

	_, err := svc.Build(context.Background(), req)
	var herr *contract.HeatmapError
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, contract.ErrInvalidArgument, herr.Code)
}

func TestBuild_ObserverReceivesEvent(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewHeatmapService(obs)
	period := testutil.NewTestPeriod(t, "2024-01-01", "2024-01-31")

	req := contract.NewHeatmapRequest()
	req.Period = &period
	req.Seed = seed(5)
	resp, err := svc.Build(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, obs.events, 1)
	ev := obs.events[0]
	assert.Equal(t, "build-heatmap", ev.Name)
	assert.Equal(t, resp.RunID, ev.RunID)
	assert.True(t, ev.Success)
	assert.Equal(t, true, ev.Fields["mock"])
	assert.Equal(t, len(resp.Weeks), ev.Fields["weeks"])
}

func TestBuild_ObserverSeesFailure(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewHeatmapService(obs)
	req := contract.NewHeatmapRequest()
	req.Records = []domain.DayRecord{{Date: domain.MustParseDate("2024-02-10"), Level: 9}}

	_, err := svc.Build(context.Background(), req)
	require.Error(t, err)
	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
	assert.Equal(t, err, obs.events[0].Err)
}

func TestBuild_ConcurrentCallsAreIndependent(t *testing.T) {
	svc := NewHeatmapService()
	period := testutil.NewTestPeriod(t, "2024-01-01", "2024-12-31")

	req := contract.NewHeatmapRequest()
	req.Period = &period
	req.Seed = seed(7)
	want, err := svc.Build(context.Background(), req)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*contract.HeatmapResponse, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := svc.Build(context.Background(), req)
			if err == nil {
				results[i] = resp
			}
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		require.NotNil(t, got, "call %d failed", i)
		assert.Equal(t, want.Weeks, got.Weeks)
	}
}

func TestGenerate_ReturnsPeriodRecords(t *testing.T) {
	svc := NewHeatmapService()
	period := testutil.NewTestPeriod(t, "2024-02-01", "2024-02-29")

	resp, err := svc.Generate(context.Background(), contract.GenerateRequest{Period: &period, Realistic: true, Seed: seed(3)})
	require.NoError(t, err)
	require.Len(t, resp.Records, 29)
	assert.Equal(t, "2024-02-01", resp.Records[0].Date.String())
	assert.Equal(t, "2024-02-29", resp.Records[28].Date.String())
}

func TestLogUseCaseObserver_WritesStructuredRecord(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "build-heatmap",
		RunID:    "run-1",
		Duration: 3 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"weeks": 53},
	})

	out := buf.String()
	assert.Contains(t, out, "msg=service_use_case")
	assert.Contains(t, out, "use_case=build-heatmap")
	assert.Contains(t, out, "run_id=run-1")
	assert.Contains(t, out, "weeks=53")
	assert.Contains(t, out, "level=INFO")
}

func TestLogUseCaseObserver_ErrorsLogAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "build-heatmap", Err: errors.New("boom")})

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestNewLogUseCaseObserver_NilWriterIsNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}
