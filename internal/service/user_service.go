package service

import (
	"context"
	"errors"
	"strings"

	"campus-cafeteria/internal/domain"
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *UserService) Save(ctx context.Context, user *domain.User) error {
	if strings.TrimSpace(user.ID) == "" {
		return domain.InvalidStatef("user id is required")
	}
	return s.repo.SaveUser(ctx, user)
}

func (s *UserService) UpdateAllergies(ctx context.Context, id string, allergies []string) (*domain.User, error) {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if allergies == nil {
		allergies = []string{}
	}
	user.Allergies = domain.Some(allergies)
	if err := s.repo.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DietaryProfile tolerates a missing user: nothing recorded.
func (s *UserService) DietaryProfile(ctx context.Context, id string) (domain.DietaryProfile, error) {
	user, err := s.repo.GetUser(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DietaryProfile{}, nil
	}
	if err != nil {
		return domain.DietaryProfile{}, err
	}
	return user.DietaryProfile(), nil
}

var _ UserServiceInterface = (*UserService)(nil)
