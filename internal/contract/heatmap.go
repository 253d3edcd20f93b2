package contract

import (
	"time"

	"github.com/alexanderramin/heatmap/internal/domain"
)

type HeatmapRequest struct {
	// Records is the caller's activity data. When empty, mock data is
	// generated over Period instead.
	Records []domain.DayRecord
	// Period bounds the display window. Nil means the last year ending on Now.
	Period    *domain.Period
	Now       *time.Time
	Realistic bool
	Seed      *uint64
}

func NewHeatmapRequest() HeatmapRequest {
	return HeatmapRequest{}
}

type HeatmapResponse struct {
	RunID       string             `json:"run_id"`
	GeneratedAt time.Time          `json:"generated_at"`
	Period      domain.Period      `json:"period"`
	Mock        bool               `json:"mock"`
	ActiveDays  int                `json:"active_days"`
	Records     []domain.DayRecord `json:"records"`
	Weeks       []domain.Week      `json:"weeks"`
	Months      []domain.MonthSpan `json:"months"`
}

type GenerateRequest struct {
	Period    *domain.Period
	Now       *time.Time
	Realistic bool
	Seed      *uint64
}

type GenerateResponse struct {
	RunID   string             `json:"run_id"`
	Period  domain.Period      `json:"period"`
	Records []domain.DayRecord `json:"records"`
}

type HeatmapErrorCode string

const (
	ErrInvalidArgument HeatmapErrorCode = "INVALID_ARGUMENT"
	ErrDuplicateDate   HeatmapErrorCode = "DUPLICATE_DATE"
	ErrInternalError   HeatmapErrorCode = "INTERNAL_ERROR"
)

type HeatmapError struct {
	Code    HeatmapErrorCode
	Message string
	Err     error
}

func (e *HeatmapError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *HeatmapError) Unwrap() error {
	return e.Err
}
