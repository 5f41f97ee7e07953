package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"workstream/internal/core/domain"
	"workstream/internal/core/ports"
)

const getUserQuery = `
SELECT email, first_name, last_name, location, photo, active_team
FROM users
WHERE email = ?;
`

const listUserTeamIDsQuery = `
SELECT team_id
FROM team_members
WHERE email = ?
ORDER BY join_seq;
`

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	Email      string         `db:"email"`
	FirstName  string         `db:"first_name"`
	LastName   string         `db:"last_name"`
	Location   sql.NullString `db:"location"`
	Photo      string         `db:"photo"`
	ActiveTeam string         `db:"active_team"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetUser(ctx context.Context, email string) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, getUserQuery, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	user := mapUserRowToDomainUser(row)
	user.Teams = []string{}
	if err := r.db.SelectContext(ctx, &user.Teams, listUserTeamIDsQuery, email); err != nil {
		return domain.User{}, fmt.Errorf("list user teams: %w", err)
	}

	return user, nil
}

// ListUsers returns the users in the order of emails. Emails without a user
// record are skipped.
func (r *UserRepository) ListUsers(ctx context.Context, emails []string) ([]domain.User, error) {
	users := make([]domain.User, 0, len(emails))
	for _, email := range emails {
		user, err := r.GetUser(ctx, email)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				zap.L().Debug("skipping member without user record", zap.String("email", email))
				continue
			}
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user domain.User) error {
	now := time.Now().UTC()
	activeTeam := user.ActiveTeam
	if activeTeam == "" {
		activeTeam = domain.NoTeam
	}

	if _, err := r.db.ExecContext(
		ctx,
		`INSERT INTO users (email, first_name, last_name, location, photo, active_team, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		user.Email, user.FirstName, user.LastName, nullString(user.Location), user.Photo, activeTeam, now, now,
	); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	if _, err := r.db.ExecContext(
		ctx,
		`UPDATE users
SET first_name = ?, last_name = ?, location = ?, photo = ?, updated_at = ?
WHERE email = ?`,
		user.FirstName, user.LastName, nullString(user.Location), user.Photo, time.Now().UTC(), user.Email,
	); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *UserRepository) SetActiveTeam(ctx context.Context, email, teamID string) error {
	if _, err := r.db.ExecContext(
		ctx, "UPDATE users SET active_team = ? WHERE email = ?", teamID, email,
	); err != nil {
		return fmt.Errorf("update active team: %w", err)
	}
	return nil
}

func mapUserRowToDomainUser(row userRow) domain.User {
	user := domain.User{
		Email:      row.Email,
		FirstName:  row.FirstName,
		LastName:   row.LastName,
		Photo:      row.Photo,
		ActiveTeam: row.ActiveTeam,
	}

	if row.Location.Valid {
		value := row.Location.String
		user.Location = &value
	}

	return user
}
