package storage

import (
	"errors"
	"fmt"

	"bundletest/internal/config"
	"bundletest/internal/domain"
)

// ErrNoRuns is returned by Last when nothing has been stored yet
var ErrNoRuns = errors.New("no stored runs")

// Storage persists and loads run records (e.g. for the last and history commands).
type Storage interface {
	Save(record *domain.RunRecord) error
	Last() (*domain.RunRecord, error)
	// History returns up to limit records, oldest first.
	History(limit int) ([]domain.RunRecord, error)
}

// New returns the storage backend selected by the config
func New(cfg *config.Config) (Storage, error) {
	switch cfg.Storage.Backend {
	case config.StorageJSON, "":
		return NewJSONStorage(cfg), nil
	case config.StorageMySQL:
		return NewMySQLStorage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// tail returns the last limit records; limit <= 0 means all
func tail(records []domain.RunRecord, limit int) []domain.RunRecord {
	if limit <= 0 || len(records) <= limit {
		return records
	}
	return records[len(records)-limit:]
}
