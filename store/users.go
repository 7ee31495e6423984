// Package store persists users and tasks. Every task query is scoped to its
// owner; a row that exists but belongs to someone else is indistinguishable
// from a row that does not exist.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/aidriven/todo-backend/models"
	"github.com/aidriven/todo-backend/utils"
)

var (
	// ErrNotFound indicates the record is absent or not owned by the caller.
	ErrNotFound = errors.New("record not found")
	// ErrEmailTaken indicates a registration conflict on the email column.
	ErrEmailTaken = errors.New("email already registered")
)

// UserStore persists user identities and their password hashes.
type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts a new user. The email must be unused; the caller supplies
// an already-hashed password, never the plaintext.
func (s *UserStore) Create(ctx context.Context, email, passwordHash, name string) (models.User, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", email,
	).Scan(&exists)
	if err != nil {
		return models.User{}, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return models.User{}, ErrEmailTaken
	}

	user := models.User{
		ID:           utils.NewUserID(),
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		CreatedAt:    now(),
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO users (id, email, password_hash, name, created_at) VALUES ($1, $2, $3, $4, $5)",
		user.ID, user.Email, user.PasswordHash, user.Name, toMillis(user.CreatedAt),
	)
	if err != nil {
		// the exists check races with concurrent registrations; the unique
		// constraint is the authority
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// ByEmail looks a user up by email for credential verification.
func (s *UserStore) ByEmail(ctx context.Context, email string) (models.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		"SELECT id, email, password_hash, name, created_at FROM users WHERE email = $1", email,
	))
}

// ByID looks a user up by its identifier.
func (s *UserStore) ByID(ctx context.Context, id string) (models.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		"SELECT id, email, password_hash, name, created_at FROM users WHERE id = $1", id,
	))
}

func (s *UserStore) scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	var createdAt int64
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Name, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("scan user: %w", err)
	}
	user.CreatedAt = fromMillis(createdAt)
	return user, nil
}

// isUniqueViolation matches unique-constraint errors from both pgx
// ("duplicate key value violates unique constraint") and SQLite
// ("UNIQUE constraint failed").
func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate key")
}
