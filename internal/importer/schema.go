package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// RecordFile is the top-level JSON structure for activity import. A bare
// JSON array of records is also accepted and decodes into Records.
type RecordFile struct {
	Period  *PeriodImport  `json:"period,omitempty"`
	Policy  string         `json:"policy,omitempty"`
	Records []RecordImport `json:"records"`
}

// PeriodImport optionally pins the display window in the file.
type PeriodImport struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// RecordImport is one day's activity. Level is classified from Count when omitted.
type RecordImport struct {
	Date  string `json:"date"`
	Count *int   `json:"count"`
	Level *int   `json:"level,omitempty"`
}

// LoadRecordFile reads and parses an activity JSON file.
func LoadRecordFile(path string) (*RecordFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeRecordFile(f)
}

// DecodeRecordFile parses an activity document from r.
func DecodeRecordFile(r io.Reader) (*RecordFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}

	var file RecordFile
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &file.Records)
	} else {
		err = json.Unmarshal(trimmed, &file)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &file, nil
}
