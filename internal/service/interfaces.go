package service

import (
	"context"

	"github.com/alexanderramin/heatmap/internal/contract"
)

type HeatmapService interface {
	// Build buckets the request's records (or mock data when none are given)
	// into weeks and month header spans.
	Build(ctx context.Context, req contract.HeatmapRequest) (*contract.HeatmapResponse, error)
	// Generate produces mock records over the requested period.
	Generate(ctx context.Context, req contract.GenerateRequest) (*contract.GenerateResponse, error)
}
