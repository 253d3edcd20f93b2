package importer

import (
	"fmt"

	"github.com/alexanderramin/heatmap/internal/domain"
	"github.com/alexanderramin/heatmap/internal/intensity"
)

// ValidateRecordFile checks the file for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateRecordFile(file *RecordFile) []error {
	var errs []error

	errs = append(errs, validatePeriod(file.Period)...)
	if file.Policy != "" {
		if _, err := intensity.PolicyByName(file.Policy); err != nil {
			errs = append(errs, fmt.Errorf("policy: invalid value %q", file.Policy))
		}
	}
	errs = append(errs, validateRecords(file.Records)...)

	return errs
}

func validatePeriod(p *PeriodImport) []error {
	if p == nil {
		return nil
	}
	var errs []error

	start, startErr := domain.ParseDate(p.Start)
	if startErr != nil {
		errs = append(errs, fmt.Errorf("period.start: invalid date format %q (expected YYYY-MM-DD)", p.Start))
	}
	end, endErr := domain.ParseDate(p.End)
	if endErr != nil {
		errs = append(errs, fmt.Errorf("period.end: invalid date format %q (expected YYYY-MM-DD)", p.End))
	}
	if startErr == nil && endErr == nil && start.After(end) {
		errs = append(errs, fmt.Errorf("period.end %q must not be before period.start %q", p.End, p.Start))
	}

	return errs
}

func validateRecords(records []RecordImport) []error {
	var errs []error
	seen := make(map[string]int, len(records))

	for i, r := range records {
		prefix := fmt.Sprintf("records[%d]", i)

		if r.Date == "" {
			errs = append(errs, fmt.Errorf("%s.date is required", prefix))
		} else if _, err := domain.ParseDate(r.Date); err != nil {
			errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", prefix, r.Date))
		} else if first, dup := seen[r.Date]; dup {
			errs = append(errs, fmt.Errorf("%s.date: duplicate date %q (first seen at records[%d])", prefix, r.Date, first))
		} else {
			seen[r.Date] = i
		}

		if r.Count == nil {
			errs = append(errs, fmt.Errorf("%s.count is required", prefix))
		} else if *r.Count < 0 {
			errs = append(errs, fmt.Errorf("%s.count must be non-negative, got %d", prefix, *r.Count))
		}

		if r.Level != nil && !domain.Level(*r.Level).Valid() {
			errs = append(errs, fmt.Errorf("%s.level must be between 0 and 4, got %d", prefix, *r.Level))
		}
	}

	return errs
}
