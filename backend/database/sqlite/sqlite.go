package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/PressureTank/idiomatic/backend/user"
)

// DefaultDSN is a shared in-memory database; nothing is written to disk.
const DefaultDSN = "file::memory:?cache=shared"

const schema = `
CREATE TABLE IF NOT EXISTS users (
	username TEXT PRIMARY KEY,
	email TEXT NOT NULL
)`

type SQLiteDB struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewSQLiteDB(db *sql.DB, logger *zap.Logger) *SQLiteDB {
	return &SQLiteDB{
		db:     db,
		logger: logger,
	}
}

// Open connects to dsn and creates the users table if it does not exist.
func Open(dsn string, logger *zap.Logger) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		logger.Error("Error opening database", zap.Error(err))
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	// an in-memory database lives as long as its connection
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		logger.Error("Error creating users table", zap.Error(err))
		return nil, multierr.Append(fmt.Errorf("create users table: %w", err), db.Close())
	}

	return NewSQLiteDB(db, logger), nil
}

func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

func (s *SQLiteDB) GetUserByUsername(username string) (*user.User, error) {
	row := s.db.QueryRow("SELECT username, email FROM users WHERE username=?", username)
	var u user.User
	err := row.Scan(&u.Username, &u.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		s.logger.Error("Error fetching user from database", zap.Error(err))
		return nil, err
	}
	return &u, nil
}

func (s *SQLiteDB) CreateUser(u *user.User) error {
	_, err := s.db.Exec("INSERT INTO users (username, email) VALUES (?, ?)", u.Username, u.Email)
	if isUniqueViolation(err) {
		return user.ErrUserExists
	}
	if err != nil {
		s.logger.Error("Error inserting user into database", zap.Error(err))
		return err
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
