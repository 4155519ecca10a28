package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sushitest/internal/domain"
	"sushitest/internal/logging"
	"sushitest/internal/ports"
)

const maxRetries = 3

// SQLiteRepository implements ports.RunRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.RunRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the sushitest logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		logging.Logger.Error("gorm query error", "error", err, "duration", elapsed, "sql", sql, "rows", rows)
	case elapsed > 200*time.Millisecond:
		logging.Logger.Warn("slow query", "duration", elapsed, "sql", sql, "rows", rows)
	default:
		logging.Logger.Debug("gorm query", "duration", elapsed, "sql", sql, "rows", rows)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("SUSHITEST_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (creating if needed) the history database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Pragmas go in the DSN so every pooled connection gets them; suite cases
	// finish concurrently and writers must wait on each other
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&RunModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate runs schema: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("History database opened", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Save implements RunRecorder.Save. Records without an ID get a fresh one.
func (r *SQLiteRepository) Save(ctx context.Context, record domain.RunRecord) error {
	model := domainToRunModel(record)
	if model.ID == "" {
		model.ID = uuid.New().String()
	}
	if model.StartedAt.IsZero() {
		model.StartedAt = time.Now().UTC()
	}

	return withRetry(func() error {
		if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to save run %s: %w", model.ID, err)
		}
		return nil
	}, maxRetries)
}

// Get implements RunReader.Get
func (r *SQLiteRepository) Get(ctx context.Context, id string) (*domain.RunRecord, error) {
	var model RunModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	}, maxRetries)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("run %s: %w", id, domain.ErrRunNotFound)
		}
		return nil, err
	}

	record := runModelToDomain(model)
	return &record, nil
}

// List implements RunReader.List, newest first
func (r *SQLiteRepository) List(ctx context.Context, filter domain.RunFilter) ([]domain.RunRecord, error) {
	var models []RunModel
	err := withRetry(func() error {
		query := r.db.WithContext(ctx).Model(&RunModel{})
		if filter.Suite != "" {
			query = query.Where("suite = ?", filter.Suite)
		}
		if filter.Case != "" {
			query = query.Where("case_name = ?", filter.Case)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", string(filter.Status))
		}
		if filter.Limit > 0 {
			query = query.Limit(filter.Limit)
		}
		return query.Order("started_at DESC").Order("id").Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	records := make([]domain.RunRecord, 0, len(models))
	for _, m := range models {
		records = append(records, runModelToDomain(m))
	}
	return records, nil
}

// Prune deletes runs started before olderThan
func (r *SQLiteRepository) Prune(ctx context.Context, olderThan time.Time) (int64, error) {
	var removed int64
	err := withRetry(func() error {
		result := r.db.WithContext(ctx).Where("started_at < ?", olderThan.UTC()).Delete(&RunModel{})
		if result.Error != nil {
			return result.Error
		}
		removed = result.RowsAffected
		return nil
	}, maxRetries)
	if err != nil {
		return 0, fmt.Errorf("failed to prune runs: %w", err)
	}
	return removed, nil
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		if isBusy(err) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}

func isBusy(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked)
}
