package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"workstream/internal/core/domain"
	"workstream/internal/core/kpi"
	"workstream/internal/core/ports"
)

type UserService struct {
	userRepository ports.UserRepository
	taskRepository ports.TaskRepository
}

func NewUserService(userRepository ports.UserRepository, taskRepository ports.TaskRepository) *UserService {
	return &UserService{userRepository: userRepository, taskRepository: taskRepository}
}

// SignIn loads the user behind an authenticated email, creating it on first
// sign-in. The boolean result reports whether the user was created.
func (s *UserService) SignIn(ctx context.Context, input domain.SignInInput) (domain.User, bool, error) {
	user, err := s.GetUser(ctx, input.Email)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, false, err
	}

	user = domain.User{
		Email:      input.Email,
		FirstName:  strings.TrimSpace(input.FirstName),
		LastName:   strings.TrimSpace(input.LastName),
		Photo:      input.Photo,
		Teams:      []string{},
		ActiveTeam: domain.NoTeam,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.User{}, false, fmt.Errorf("create user: %w", err)
	}

	zap.L().Info("user created", zap.String("email", user.Email))
	return user, true, nil
}

func (s *UserService) GetUser(ctx context.Context, email string) (domain.User, error) {
	user, err := s.userRepository.GetUser(ctx, email)
	if err != nil {
		return domain.User{}, err
	}

	user.ActiveTeam = resolveActiveTeam(user)
	return user, nil
}

// resolveActiveTeam falls back to the first team when the stored active team
// is unset or no longer one of the user's teams.
func resolveActiveTeam(user domain.User) string {
	if slices.Contains(user.Teams, user.ActiveTeam) {
		return user.ActiveTeam
	}
	if len(user.Teams) > 0 {
		return user.Teams[0]
	}
	return domain.NoTeam
}

func (s *UserService) UpdateProfile(ctx context.Context, email string, input domain.UpdateProfileInput) (domain.User, error) {
	user, err := s.GetUser(ctx, email)
	if err != nil {
		return domain.User{}, err
	}

	if input.FirstName != nil {
		user.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		user.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.LocationSet {
		user.Location = input.Location
	}
	if input.Photo != nil {
		user.Photo = *input.Photo
	}

	if user.FirstName == "" || user.LastName == "" {
		return domain.User{}, domain.ErrInvalidProfile
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.User{}, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *UserService) SetActiveTeam(ctx context.Context, email, teamID string) (domain.User, error) {
	user, err := s.GetUser(ctx, email)
	if err != nil {
		return domain.User{}, err
	}
	if !slices.Contains(user.Teams, teamID) {
		return domain.User{}, domain.ErrNotTeamMember
	}

	if err := s.userRepository.SetActiveTeam(ctx, email, teamID); err != nil {
		return domain.User{}, fmt.Errorf("set active team: %w", err)
	}

	user.ActiveTeam = teamID
	return user, nil
}

// PersonalKPIs summarizes the user's tasks in the active team.
func (s *UserService) PersonalKPIs(ctx context.Context, email string) (kpi.Personal, error) {
	user, err := s.GetUser(ctx, email)
	if err != nil {
		return kpi.Personal{}, err
	}
	if !user.HasActiveTeam() {
		return kpi.ComputePersonal(nil, user), nil
	}

	tasks, err := s.taskRepository.ListTeamTasks(ctx, user.ActiveTeam)
	if err != nil {
		return kpi.Personal{}, fmt.Errorf("list team tasks: %w", err)
	}
	return kpi.ComputePersonal(tasks, user), nil
}

var _ ports.UserService = (*UserService)(nil)
