package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"bundletest/internal/config"
	"bundletest/internal/domain"
)

const runsTable = "bundletest_runs"

const createRunsTable = "CREATE TABLE IF NOT EXISTS `" + runsTable + "` (" +
	"`seq` BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY," +
	"`id` CHAR(36) NOT NULL," +
	"`artifact` VARCHAR(1024) NOT NULL," +
	"`entry_point` VARCHAR(255) NOT NULL," +
	"`passed` INT NOT NULL," +
	"`fail` INT NOT NULL," +
	"`error` INT NOT NULL," +
	"`exit_status` INT NOT NULL," +
	"`modules` TEXT NOT NULL," +
	"`import_failures` TEXT NOT NULL," +
	"`duration` VARCHAR(64) NOT NULL," +
	"`duration_seconds` DOUBLE NOT NULL," +
	"`started_at` VARCHAR(40) NOT NULL," +
	"UNIQUE KEY `uniq_id` (`id`)," +
	"KEY `idx_started_at` (`started_at`))"

// seq gives runs saved within the same second a stable order
const selectRuns = "SELECT `id`, `artifact`, `entry_point`, `passed`, `fail`, `error`, `exit_status`, " +
	"`modules`, `import_failures`, `duration`, `duration_seconds`, `started_at` FROM `" + runsTable + "` " +
	"ORDER BY `seq` DESC LIMIT ?"

const insertRun = "INSERT INTO `" + runsTable + "` (`id`, `artifact`, `entry_point`, `passed`, `fail`, `error`, " +
	"`exit_status`, `modules`, `import_failures`, `duration`, `duration_seconds`, `started_at`) " +
	"VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"

// MySQLStorage keeps the run history in a MySQL table shared by CI jobs.
type MySQLStorage struct {
	cfg     *config.Config
	db      *sql.DB
	prepped bool
}

// NewMySQLStorage opens (but does not dial) the database named in the config DSN.
func NewMySQLStorage(cfg *config.Config) (*MySQLStorage, error) {
	if cfg.Storage.DSN == "" {
		return nil, errors.New("mysql storage requires a DSN")
	}
	dsn, err := mysql.ParseDSN(cfg.Storage.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	if dsn.DBName == "" {
		return nil, errors.New("mysql DSN must name a database")
	}

	db, err := sql.Open("mysql", dsn.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database server: %w", err)
	}
	return newMySQLStorage(cfg, db), nil
}

func newMySQLStorage(cfg *config.Config, db *sql.DB) *MySQLStorage {
	return &MySQLStorage{cfg: cfg, db: db}
}

// Close releases the connection pool
func (s *MySQLStorage) Close() error {
	return s.db.Close()
}

func (s *MySQLStorage) ensureTable() error {
	if s.prepped {
		return nil
	}
	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database server: %w", err)
	}
	if _, err := s.db.Exec(createRunsTable); err != nil {
		return fmt.Errorf("create %s: %w", runsTable, err)
	}
	s.prepped = true
	return nil
}

// Save inserts the record.
func (s *MySQLStorage) Save(record *domain.RunRecord) error {
	if err := s.ensureTable(); err != nil {
		return err
	}
	modules, err := encodeList(record.Modules)
	if err != nil {
		return err
	}
	failures, err := encodeList(record.ImportFailures)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(insertRun,
		record.ID, record.Artifact, record.EntryPoint,
		record.Result.Passed, record.Result.Fail, record.Result.Error,
		record.ExitStatus, modules, failures,
		record.Duration, record.DurationSecs, record.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", record.ID, err)
	}
	return nil
}

// Last returns the newest record.
func (s *MySQLStorage) Last() (*domain.RunRecord, error) {
	records, err := s.History(1)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoRuns
	}
	return &records[0], nil
}

// History returns up to limit records, oldest first.
func (s *MySQLStorage) History(limit int) ([]domain.RunRecord, error) {
	if err := s.ensureTable(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.cfg.Storage.HistoryLimit
	}

	rows, err := s.db.Query(selectRuns, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var records []domain.RunRecord
	for rows.Next() {
		var (
			r                 domain.RunRecord
			modules, failures string
		)
		if err := rows.Scan(&r.ID, &r.Artifact, &r.EntryPoint,
			&r.Result.Passed, &r.Result.Fail, &r.Result.Error,
			&r.ExitStatus, &modules, &failures,
			&r.Duration, &r.DurationSecs, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if r.Modules, err = decodeList(modules); err != nil {
			return nil, err
		}
		if r.ImportFailures, err = decodeList(failures); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	// newest first from the query; callers expect oldest first
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

func encodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode list: %w", err)
	}
	return string(data), nil
}

func decodeList(data string) ([]string, error) {
	if data == "" {
		return nil, nil
	}
	var items []string
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items, nil
}
