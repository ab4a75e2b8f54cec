package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	userRepo "ayursutra/database/repository/user"
	"ayursutra/models"
	"ayursutra/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
)

// RegisterInput carries the fields for a new account.
type RegisterInput struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	PhoneNumber    string `json:"phoneNumber,omitempty"`
	Role           string `json:"role"`
	Specialization string `json:"specialization,omitempty"`
}

// AuthResult is returned on successful registration or sign-in.
type AuthResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// UserService manages accounts and credential resolution.
type UserService interface {
	Register(input RegisterInput) (*AuthResult, error)
	Authenticate(email, password string) (*AuthResult, error)
	GetByID(id string) (*models.User, error)
	ListPractitioners() ([]models.User, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func (s *DefaultUserService) Register(input RegisterInput) (*AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.FullName == "" || input.Email == "" || input.Password == "" {
		return nil, errors.New("fullName, email and password are required")
	}
	if input.Role != models.RolePatient && input.Role != models.RolePractitioner {
		return nil, fmt.Errorf("role must be %q or %q", models.RolePatient, models.RolePractitioner)
	}

	if existing, err := s.Repo.GetByEmail(input.Email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:             uuid.New().String(),
		FullName:       input.FullName,
		Email:          input.Email,
		PasswordHash:   string(hash),
		PhoneNumber:    input.PhoneNumber,
		Role:           input.Role,
		Specialization: input.Specialization,
		CreatedAt:      time.Now(),
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}

	return s.issueToken(u)
}

func (s *DefaultUserService) Authenticate(email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(u)
}

func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	return s.Repo.GetByID(id)
}

// ListPractitioners returns every practitioner account, so patients can pick
// one when booking a therapy course.
func (s *DefaultUserService) ListPractitioners() ([]models.User, error) {
	return s.Repo.GetByRole(models.RolePractitioner)
}

func (s *DefaultUserService) issueToken(u *models.User) (*AuthResult, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, u.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &AuthResult{User: u, Token: token}, nil
}
