package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"workstream/internal/core/domain"
	"workstream/internal/core/ports"
)

const listMemberTeamsQuery = `
SELECT t.id, t.name, t.admin_email, t.photo
FROM teams t
JOIN team_members m ON m.team_id = t.id
WHERE m.email = ?
ORDER BY m.join_seq;
`

const nextSectionPositionQuery = `SELECT COALESCE(MAX(position), -1) + 1 FROM team_sections WHERE team_id = ?`

const nextMemberPositionQuery = `SELECT COALESCE(MAX(position), -1) + 1 FROM team_members WHERE team_id = ?`

const nextJoinSeqQuery = `SELECT COALESCE(MAX(join_seq), -1) + 1 FROM team_members WHERE email = ?`

const insertMemberQuery = `
INSERT INTO team_members (team_id, email, position, join_seq, joined_at)
VALUES (?, ?, ?, ?, ?);
`

// claimActiveTeamQuery selects the team for a user who has none yet.
const claimActiveTeamQuery = `UPDATE users SET active_team = ? WHERE email = ? AND active_team = ?`

// reassignActiveTeamQuery moves users whose active team is gone to their
// earliest remaining team.
const reassignActiveTeamQuery = `
UPDATE users
SET active_team = COALESCE(
  (SELECT m.team_id FROM team_members m WHERE m.email = users.email ORDER BY m.join_seq LIMIT 1),
  ?
)
WHERE active_team = ?`

type TeamRepository struct {
	db *sqlx.DB
}

type teamRow struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	AdminEmail string `db:"admin_email"`
	Photo      string `db:"photo"`
}

var _ ports.TeamRepository = (*TeamRepository)(nil)

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetTeam(ctx context.Context, teamID string) (domain.Team, error) {
	var row teamRow
	err := r.db.GetContext(ctx, &row, "SELECT id, name, admin_email, photo FROM teams WHERE id = ?", teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Team{}, domain.ErrTeamNotFound
		}
		return domain.Team{}, err
	}

	return r.loadTeam(ctx, row)
}

// ListMemberTeams returns the teams of email in the order they were joined.
func (r *TeamRepository) ListMemberTeams(ctx context.Context, email string) ([]domain.Team, error) {
	var rows []teamRow
	if err := r.db.SelectContext(ctx, &rows, listMemberTeamsQuery, email); err != nil {
		return nil, err
	}

	teams := make([]domain.Team, 0, len(rows))
	for _, row := range rows {
		team, err := r.loadTeam(ctx, row)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}

	return teams, nil
}

func (r *TeamRepository) loadTeam(ctx context.Context, row teamRow) (domain.Team, error) {
	team := domain.Team{
		ID:    row.ID,
		Name:  row.Name,
		Admin: row.AdminEmail,
		Photo: row.Photo,
	}

	if err := r.db.SelectContext(
		ctx, &team.Sections, "SELECT name FROM team_sections WHERE team_id = ? ORDER BY position", row.ID,
	); err != nil {
		return domain.Team{}, fmt.Errorf("list team sections: %w", err)
	}

	if err := r.db.SelectContext(
		ctx, &team.Members, "SELECT email FROM team_members WHERE team_id = ? ORDER BY position", row.ID,
	); err != nil {
		return domain.Team{}, fmt.Errorf("list team members: %w", err)
	}

	return team, nil
}

// CreateTeam stores the team with its sections and members. Members without
// an active team get this one.
func (r *TeamRepository) CreateTeam(ctx context.Context, team domain.Team) error {
	now := time.Now().UTC()

	return withRetryTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(
			ctx,
			"INSERT INTO teams (id, name, admin_email, photo, created_at) VALUES (?, ?, ?, ?, ?)",
			team.ID, team.Name, team.Admin, team.Photo, now,
		); err != nil {
			return fmt.Errorf("insert team: %w", err)
		}

		for position, section := range team.Sections {
			if _, err := tx.ExecContext(
				ctx,
				"INSERT INTO team_sections (team_id, name, position) VALUES (?, ?, ?)",
				team.ID, section, position,
			); err != nil {
				return fmt.Errorf("insert team section: %w", err)
			}
		}

		for position, email := range team.Members {
			if err := insertMember(ctx, tx, team.ID, email, position, now); err != nil {
				return err
			}
		}

		return nil
	})
}

// DeleteTeam removes the team together with its sections, memberships,
// tasks, task history and chats. Users who had it as active team move to
// their next team.
func (r *TeamRepository) DeleteTeam(ctx context.Context, teamID string) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := deleteTeamRows(ctx, tx, teamID); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, reassignActiveTeamQuery, domain.NoTeam, teamID); err != nil {
			return fmt.Errorf("reassign active teams: %w", err)
		}
		return nil
	})
}

// AddMember appends email to the team. Existing members are left alone.
func (r *TeamRepository) AddMember(ctx context.Context, teamID, email string) error {
	return withRetryTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var count int
		if err := tx.GetContext(
			ctx, &count, "SELECT COUNT(*) FROM team_members WHERE team_id = ? AND email = ?", teamID, email,
		); err != nil {
			return fmt.Errorf("check team member: %w", err)
		}
		if count > 0 {
			return nil
		}

		var position int
		if err := tx.GetContext(ctx, &position, nextMemberPositionQuery, teamID); err != nil {
			return fmt.Errorf("next member position: %w", err)
		}

		return insertMember(ctx, tx, teamID, email, position, time.Now().UTC())
	})
}

// RemoveMember drops email from the team in a single transaction. The admin
// role passes to the next member, the team is deleted once nobody is left
// and the active team of email moves on.
func (r *TeamRepository) RemoveMember(ctx context.Context, teamID, email string) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, "DELETE FROM team_members WHERE team_id = ? AND email = ?", teamID, email)
		if err != nil {
			return fmt.Errorf("delete team member: %w", err)
		}
		if err := expectAffected(result, domain.ErrNotTeamMember); err != nil {
			return err
		}

		var remaining []string
		if err := tx.SelectContext(
			ctx, &remaining, "SELECT email FROM team_members WHERE team_id = ? ORDER BY position", teamID,
		); err != nil {
			return fmt.Errorf("list team members: %w", err)
		}

		if len(remaining) == 0 {
			if err := deleteTeamRows(ctx, tx, teamID); err != nil {
				return err
			}
		} else if _, err := tx.ExecContext(
			ctx,
			"UPDATE teams SET admin_email = ? WHERE id = ? AND admin_email = ?",
			remaining[0], teamID, email,
		); err != nil {
			return fmt.Errorf("transfer admin: %w", err)
		}

		if _, err := tx.ExecContext(
			ctx, reassignActiveTeamQuery+" AND email = ?", domain.NoTeam, teamID, email,
		); err != nil {
			return fmt.Errorf("reassign active team: %w", err)
		}
		return nil
	})
}

// AddSection appends a section, failing with ErrSectionExists when the name
// is taken, also by a concurrent writer.
func (r *TeamRepository) AddSection(ctx context.Context, teamID, section string) error {
	return withRetryTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var count int
		if err := tx.GetContext(
			ctx, &count, "SELECT COUNT(*) FROM team_sections WHERE team_id = ? AND name = ?", teamID, section,
		); err != nil {
			return fmt.Errorf("check team section: %w", err)
		}
		if count > 0 {
			return domain.ErrSectionExists
		}

		var position int
		if err := tx.GetContext(ctx, &position, nextSectionPositionQuery, teamID); err != nil {
			return fmt.Errorf("next section position: %w", err)
		}

		if _, err := tx.ExecContext(
			ctx,
			"INSERT INTO team_sections (team_id, name, position) VALUES (?, ?, ?)",
			teamID, section, position,
		); err != nil {
			return fmt.Errorf("insert team section: %w", err)
		}
		return nil
	})
}

// RemoveSection leaves tasks of the section untouched: they keep the stale
// section name.
func (r *TeamRepository) RemoveSection(ctx context.Context, teamID, section string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM team_sections WHERE team_id = ? AND name = ?", teamID, section)
	if err != nil {
		return fmt.Errorf("delete team section: %w", err)
	}
	return expectAffected(result, domain.ErrSectionNotFound)
}

func insertMember(ctx context.Context, tx *sqlx.Tx, teamID, email string, position int, joinedAt time.Time) error {
	var joinSeq int
	if err := tx.GetContext(ctx, &joinSeq, nextJoinSeqQuery, email); err != nil {
		return fmt.Errorf("next join seq: %w", err)
	}

	if _, err := tx.ExecContext(ctx, insertMemberQuery, teamID, email, position, joinSeq, joinedAt); err != nil {
		return fmt.Errorf("insert team member: %w", err)
	}

	if _, err := tx.ExecContext(ctx, claimActiveTeamQuery, teamID, email, domain.NoTeam); err != nil {
		return fmt.Errorf("claim active team: %w", err)
	}
	return nil
}

func deleteTeamRows(ctx context.Context, tx *sqlx.Tx, teamID string) error {
	statements := []string{
		"DELETE FROM task_history WHERE task_id IN (SELECT id FROM tasks WHERE team_id = ?)",
		"DELETE FROM tasks WHERE team_id = ?",
		"DELETE FROM chat_reads WHERE team_id = ?",
		"DELETE FROM chat_messages WHERE team_id = ?",
		"DELETE FROM team_sections WHERE team_id = ?",
		"DELETE FROM team_members WHERE team_id = ?",
	}
	for _, statement := range statements {
		if _, err := tx.ExecContext(ctx, statement, teamID); err != nil {
			return fmt.Errorf("delete team: %w", err)
		}
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM teams WHERE id = ?", teamID)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	return expectAffected(result, domain.ErrTeamNotFound)
}
