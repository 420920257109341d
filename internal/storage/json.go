package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"bundletest/internal/config"
	"bundletest/internal/domain"
)

// JSONStorage stores runs in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

// Save appends the record to the history, trimming it to the configured limit.
func (s *JSONStorage) Save(record *domain.RunRecord) error {
	output, err := s.load()
	if err != nil && !errors.Is(err, ErrNoRuns) {
		return err
	}
	if output == nil {
		output = &domain.RunHistoryOutput{}
	}

	output.History = tail(append(output.History, *record), s.cfg.Storage.HistoryLimit)
	output.Last = record

	return s.write(output)
}

// Last returns the most recently saved record.
func (s *JSONStorage) Last() (*domain.RunRecord, error) {
	output, err := s.load()
	if err != nil {
		return nil, err
	}
	if output.Last == nil {
		return nil, ErrNoRuns
	}
	return output.Last, nil
}

// History returns up to limit stored records, oldest first.
func (s *JSONStorage) History(limit int) ([]domain.RunRecord, error) {
	output, err := s.load()
	if errors.Is(err, ErrNoRuns) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return tail(output.History, limit), nil
}

func (s *JSONStorage) load() (*domain.RunHistoryOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoRuns
	}
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.RunHistoryOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

func (s *JSONStorage) write(output *domain.RunHistoryOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
