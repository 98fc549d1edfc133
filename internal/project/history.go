package project

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kdriggs/binpack2d/internal/model"
)

// DefaultHistoryPath returns the default path for the append-only run
// history file, alongside the persisted config (see DefaultConfigDir).
func DefaultHistoryPath() string {
	return filepath.Join(DefaultConfigDir(), "history.jsonl")
}

// AppendRunRecord appends one JSON-encoded record as a line to the history
// file at path, creating the file and its parent directory if needed.
// Existing lines are never rewritten — the store is append-only by
// construction.
func AppendRunRecord(path string, record model.RunRecord) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("project: creating history directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("project: opening history file: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("project: marshal run record: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("project: appending run record: %w", err)
	}
	return nil
}

// LoadRunHistory reads every record from the history file at path, in
// append order. A missing file is reported as an empty, error-free history.
func LoadRunHistory(path string) ([]model.RunRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("project: opening history file: %w", err)
	}
	defer f.Close()

	var records []model.RunRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var record model.RunRecord
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, fmt.Errorf("project: parsing history record: %w", err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("project: reading history file: %w", err)
	}
	return records, nil
}
