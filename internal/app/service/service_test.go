package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"workstream/internal/adapter/db"
	"workstream/internal/core/domain"
)

type fixture struct {
	tasks *TaskService
	teams *TeamService
	users *UserService
	chats *ChatService
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	conn, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
	})

	return newFixtureWithDB(conn)
}

func newFixtureWithDB(conn *sqlx.DB) fixture {
	taskRepository := db.NewTaskRepository(conn)
	teamRepository := db.NewTeamRepository(conn)
	userRepository := db.NewUserRepository(conn)
	chatRepository := db.NewChatRepository(conn)

	sequence := 0
	newID := func() string {
		sequence++
		return fmt.Sprintf("id-%d", sequence)
	}
	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	tasks := NewTaskService(taskRepository, teamRepository)
	tasks.newID = newID
	tasks.now = func() time.Time { return clock }

	teams := NewTeamService(teamRepository, userRepository, taskRepository, "https://invite.test/")
	teams.newID = newID

	chats := NewChatService(chatRepository, teamRepository)
	chats.newID = newID
	chats.now = func() time.Time { return clock }

	return fixture{
		tasks: tasks,
		teams: teams,
		users: NewUserService(userRepository, taskRepository),
		chats: chats,
	}
}

func (f fixture) signIn(t *testing.T, email, firstName string) domain.User {
	t.Helper()

	user, _, err := f.users.SignIn(context.Background(), domain.SignInInput{Email: email, FirstName: firstName, LastName: "Test"})
	require.NoError(t, err)
	return user
}

// teamOf creates a team administered by admin and joined by the others.
func (f fixture) teamOf(t *testing.T, admin string, others ...string) domain.Team {
	t.Helper()
	ctx := context.Background()

	team, err := f.teams.CreateTeam(ctx, admin, domain.CreateTeamInput{Name: "Core"})
	require.NoError(t, err)
	for _, email := range others {
		team, err = f.teams.JoinTeam(ctx, email, team.ID)
		require.NoError(t, err)
	}
	return team
}
