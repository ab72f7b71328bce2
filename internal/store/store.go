package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store is the device-durable home of statistics, topic progress and wrong
// answers. The ephemeral quiz session is never written here.
type Store struct {
	db *gorm.DB
}

// Open connects to the SQLite database at path and runs auto-migration.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(
		&DailyStatRow{},
		&TopicProgressRow{},
		&WrongQuestionRow{},
	); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// OpenInMemory opens a throwaway in-memory database, for tests.
func OpenInMemory() (*Store, error) {
	return Open(":memory:")
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// DefaultDBPath resolves the database file path in priority order:
// 1. LINGO_DB environment variable
// 2. $XDG_DATA_HOME/lingo/lingo.db
// 3. ~/.local/share/lingo/lingo.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("LINGO_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "lingo", "lingo.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
