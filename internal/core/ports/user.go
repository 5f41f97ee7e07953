package ports

import (
	"context"

	"workstream/internal/core/domain"
	"workstream/internal/core/kpi"
)

type UserRepository interface {
	GetUser(ctx context.Context, email string) (domain.User, error)
	ListUsers(ctx context.Context, emails []string) ([]domain.User, error)
	CreateUser(ctx context.Context, user domain.User) error
	UpdateUser(ctx context.Context, user domain.User) error
	SetActiveTeam(ctx context.Context, email, teamID string) error
}

type UserService interface {
	SignIn(ctx context.Context, input domain.SignInInput) (domain.User, bool, error)
	GetUser(ctx context.Context, email string) (domain.User, error)
	UpdateProfile(ctx context.Context, email string, input domain.UpdateProfileInput) (domain.User, error)
	SetActiveTeam(ctx context.Context, email, teamID string) (domain.User, error)
	PersonalKPIs(ctx context.Context, email string) (kpi.Personal, error)
}
