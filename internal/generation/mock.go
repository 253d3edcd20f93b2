package generation

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/alexanderramin/heatmap/internal/domain"
	"github.com/alexanderramin/heatmap/internal/intensity"
)

const (
	uniformMaxCount = 15 // exclusive

	weekdayBase   = 8
	weekendBase   = 2
	summerPenalty = 3

	idleProbability  = 0.3
	spikeThreshold   = 0.95
	spikeMaxExcluded = 10
)

// Source is the randomness a generator draws from. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// NewSource returns a deterministic source for seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandomSource returns a source seeded from the process-level generator.
// Only the outermost caller should need this.
func NewRandomSource() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Options selects the generated period and data profile.
type Options struct {
	Period    domain.Period
	Realistic bool
}

// Generate produces exactly one record per day of opts.Period, ascending.
func Generate(opts Options, src Source) ([]domain.DayRecord, error) {
	if err := opts.Period.Validate(); err != nil {
		return nil, fmt.Errorf("generating mock data: %w", err)
	}
	if src == nil {
		return nil, fmt.Errorf("generating mock data: %w: random source is required", domain.ErrInvalidArgument)
	}

	days := opts.Period.Days()
	records := make([]domain.DayRecord, 0, days)
	for i := 0; i < days; i++ {
		d := opts.Period.Start.AddDays(i)
		if opts.Realistic {
			records = append(records, realisticDay(d, src))
		} else {
			records = append(records, uniformDay(d, src))
		}
	}
	return records, nil
}

func uniformDay(d domain.Date, src Source) domain.DayRecord {
	count := src.IntN(uniformMaxCount)
	return domain.DayRecord{Date: d, Count: count, Level: intensity.Uniform.ClassifyClamped(count)}
}

func realisticDay(d domain.Date, src Source) domain.DayRecord {
	base := BaseCount(d)

	r := src.Float64()
	count := 0
	if r > idleProbability && base > 0 {
		count = src.IntN(base)
	}
	if r > spikeThreshold {
		count += src.IntN(spikeMaxExcluded)
	}

	return domain.DayRecord{Date: d, Count: count, Level: intensity.Realistic.ClassifyClamped(count)}
}

// BaseCount is the realistic profile's expected-count ceiling for d: lower
// on weekends and during June through August.
func BaseCount(d domain.Date) int {
	base := weekdayBase
	if IsWeekend(d) {
		base = weekendBase
	}
	if IsSummerMonth(d.Month()) {
		base = max(0, base-summerPenalty)
	}
	return base
}

func IsWeekend(d domain.Date) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func IsSummerMonth(m time.Month) bool {
	return m >= time.June && m <= time.August
}
