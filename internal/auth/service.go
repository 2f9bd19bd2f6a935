package auth

import (
	"context"
	"errors"
	"time"

	"ClinicBook/internal/notification"

	"go.uber.org/zap"
)

var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

type userStore interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	FindAll(ctx context.Context) ([]*User, error)
	CreateUser(ctx context.Context, user *User) error
	DeleteUser(ctx context.Context, userID string) error
}

type UserService struct {
	repo userStore
	log  *zap.Logger
}

func NewUserService(repo *UserRepository, log *zap.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// RegisterUser creates a patient account. Doctor and admin privileges are
// only ever granted later, through the doctor approval workflow or by hand.
func (s *UserService) RegisterUser(ctx context.Context, req SignupRequest) error {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return errors.New("name, email and password are required")
	}

	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}

	hashPassword, err := HashPassword(req.Password)
	if err != nil {
		return err
	}

	now := time.Now()
	user := &User{
		Name:                req.Name,
		Email:               req.Email,
		Password:            hashPassword,
		UnseenNotifications: []notification.Notification{},
		SeenNotifications:   []notification.Notification{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return err
	}
	s.log.Info("user registered", zap.String("email", user.Email))
	return nil
}

// AuthenticateUser checks the credentials and issues a session token.
func (s *UserService) AuthenticateUser(ctx context.Context, cred Credential) (string, error) {
	user, err := s.repo.FindByEmail(ctx, cred.Email)
	if err != nil {
		return "", err
	}
	if user == nil || !CheckPasswordHash(cred.Password, user.Password) {
		return "", ErrInvalidCredentials
	}

	token, err := GenerateJWT(user, time.Hour*24)
	if err != nil {
		return "", errors.New("token not generated")
	}
	return token, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	user.Password = ""
	return user, nil
}

// ListUsers returns the admin projection of every account.
func (s *UserService) ListUsers(ctx context.Context) ([]UserSummary, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, UserSummary{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
			IsAdmin:   user.IsAdmin,
			IsDoctor:  user.IsDoctor,
		})
	}
	return summaries, nil
}

// DeleteUser removes the account along with its doctor record and the
// appointments booked against it.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.log.Info("user deleted", zap.String("userId", id))
	return nil
}
