package service

import (
	"github.com/A-Shalchian/api-key-vault/internal/constants"
	"github.com/A-Shalchian/api-key-vault/internal/dto"
	"github.com/A-Shalchian/api-key-vault/internal/model"
	"github.com/A-Shalchian/api-key-vault/internal/repository"
)

// UserService handles the identity provider's signup callback and profile reads
type UserService struct {
	userRepo   repository.UserRepository
	secretRepo repository.SecretRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repository.UserRepository, secretRepo repository.SecretRepository) *UserService {
	return &UserService{
		userRepo:   userRepo,
		secretRepo: secretRepo,
	}
}

// CreateUser records a user after external signup. The id comes from the
// identity provider and is immutable afterwards.
func (s *UserService) CreateUser(id, email, firstName, lastName string) (*dto.User, error) {
	if id == "" {
		return nil, constants.ErrUserIDRequired
	}
	if email == "" {
		return nil, constants.ErrEmailRequired
	}
	if firstName == "" {
		return nil, constants.ErrFirstNameRequired
	}
	if lastName == "" {
		return nil, constants.ErrLastNameRequired
	}

	existing, err := s.userRepo.GetUserByUUID(id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, constants.ErrUserExists
	}
	existing, err = s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, constants.ErrUserExists
	}

	user := &model.User{
		UUID:      id,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, err
	}

	return s.modelToDTO(user), nil
}

// GetUserWithKeys returns a user profile plus key names and timestamps.
// Secret values are never included here; retrieval goes through the vault.
func (s *UserService) GetUserWithKeys(id string) (*dto.UserWithKeys, error) {
	user, err := s.userRepo.GetUserByUUID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, constants.ErrUserNotFound
	}

	secrets, err := s.secretRepo.ListSecretsByUser(id)
	if err != nil {
		return nil, err
	}

	keys := make([]dto.KeySummary, 0, len(secrets))
	for _, secret := range secrets {
		keys = append(keys, dto.KeySummary{
			ID:        secret.UUID,
			Name:      secret.Name,
			CreatedAt: secret.CreatedAt,
		})
	}

	return &dto.UserWithKeys{
		User: *s.modelToDTO(user),
		Keys: keys,
	}, nil
}

// Mapping functions
func (s *UserService) modelToDTO(user *model.User) *dto.User {
	if user == nil {
		return nil
	}

	return &dto.User{
		ID:        user.UUID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
	}
}
