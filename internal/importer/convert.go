package importer

import (
	"fmt"

	"github.com/alexanderramin/heatmap/internal/domain"
	"github.com/alexanderramin/heatmap/internal/intensity"
)

// Converted is a validated record file ready for the grid pipeline.
type Converted struct {
	Period  *domain.Period
	Records []domain.DayRecord
}

// Convert transforms a validated RecordFile into domain records.
// Call ValidateRecordFile first; Convert assumes the file is valid.
//
// A record without a level is classified with the file's policy, or with
// fallback when the file names none. A provided level is kept as is.
func Convert(file *RecordFile, fallback intensity.Policy) (*Converted, error) {
	policy := fallback
	if file.Policy != "" {
		p, err := intensity.PolicyByName(file.Policy)
		if err != nil {
			return nil, err
		}
		policy = p
	}

	out := &Converted{}
	if file.Period != nil {
		start, err := domain.ParseDate(file.Period.Start)
		if err != nil {
			return nil, fmt.Errorf("parsing period.start: %w", err)
		}
		end, err := domain.ParseDate(file.Period.End)
		if err != nil {
			return nil, fmt.Errorf("parsing period.end: %w", err)
		}
		period, err := domain.NewPeriod(start, end)
		if err != nil {
			return nil, err
		}
		out.Period = &period
	}

	out.Records = make([]domain.DayRecord, 0, len(file.Records))
	for i, r := range file.Records {
		date, err := domain.ParseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("parsing records[%d].date: %w", i, err)
		}

		count := 0
		if r.Count != nil {
			count = *r.Count
		}

		var level domain.Level
		if r.Level != nil {
			level = domain.Level(*r.Level)
		} else {
			level, err = policy.Classify(count)
			if err != nil {
				return nil, fmt.Errorf("classifying records[%d]: %w", i, err)
			}
		}

		out.Records = append(out.Records, domain.DayRecord{Date: date, Count: count, Level: level})
	}

	return out, nil
}
