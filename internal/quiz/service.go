package quiz

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"quiz-master/internal/opentdb"
)

type QuestionsFetcher func(ctx context.Context, amount int) ([]opentdb.RawQuestion, error)

// AdminAccount is the well-known administrator seeded on first start.
type AdminAccount struct {
	Username string
	Password string
	FullName string
}

type Service struct {
	store     Store
	passwords PasswordHasher
	admin     AdminAccount
	fetcher   QuestionsFetcher
	validate  *validator.Validate
	now       func() time.Time
}

func NewService(store Store, passwords PasswordHasher, admin AdminAccount, fetcher QuestionsFetcher) *Service {
	if passwords == nil {
		passwords = PlainPasswords{}
	}
	return &Service{
		store:     store,
		passwords: passwords,
		admin:     admin,
		fetcher:   fetcher,
		validate:  newValidator(),
		now:       time.Now,
	}
}

// Bootstrap seeds the administrator account. It is safe to call on every start.
func (s *Service) Bootstrap(ctx context.Context) error {
	username := strings.TrimSpace(s.admin.Username)
	if username == "" || s.admin.Password == "" {
		return errors.New("admin username and password are required")
	}

	stored, err := s.passwords.Hash(s.admin.Password)
	if err != nil {
		return err
	}

	return s.store.EnsureUser(ctx, User{
		Username: username,
		Password: stored,
		FullName: s.admin.FullName,
		Role:     RoleAdmin,
	})
}

type RegisterInput struct {
	Username        string `form:"username" validate:"required"`
	Password        string `form:"password" validate:"required"`
	ConfirmPassword string `form:"confirm_password"`
	FullName        string `form:"full_name"`
	Email           string `form:"email"`
}

func (s *Service) Register(ctx context.Context, input RegisterInput) (User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = strings.TrimSpace(input.Email)
	if err := s.check(input); err != nil {
		return User{}, err
	}
	if input.Password != input.ConfirmPassword {
		return User{}, &ValidationError{
			Field:   "confirm_password",
			Message: ErrPasswordMismatch.Error(),
			Err:     ErrPasswordMismatch,
		}
	}

	stored, err := s.passwords.Hash(input.Password)
	if err != nil {
		return User{}, err
	}

	user := User{
		Username: input.Username,
		Password: stored,
		FullName: input.FullName,
		Email:    input.Email,
		Role:     RoleUser,
	}
	id, err := s.store.CreateUser(ctx, user)
	if err != nil {
		return User{}, err
	}
	user.ID = id
	return user, nil
}

// ValidateLogin returns the stored role when username and password match.
func (s *Service) ValidateLogin(ctx context.Context, username, password string) (Role, error) {
	user, err := s.authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// Login authenticates and records the login time.
func (s *Service) Login(ctx context.Context, username, password string) (User, error) {
	user, err := s.authenticate(ctx, username, password)
	if err != nil {
		return User{}, err
	}

	now := s.now()
	if err := s.store.TouchLastLogin(ctx, user.ID, now); err != nil {
		return User{}, err
	}
	user.LastLogin = now.Truncate(time.Second)
	return user, nil
}

func (s *Service) authenticate(ctx context.Context, username, password string) (User, error) {
	user, err := s.store.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if !s.passwords.Matches(user.Password, password) {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}

// IsAdmin reads the role from storage on every call so role changes apply
// to live sessions immediately.
func (s *Service) IsAdmin(ctx context.Context, username string) (bool, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.IsAdmin(), nil
}

func (s *Service) GetUser(ctx context.Context, id int64) (User, error) {
	return s.store.GetUser(ctx, id)
}

func (s *Service) GetUserByUsername(ctx context.Context, username string) (User, error) {
	return s.store.GetUserByUsername(ctx, username)
}

func (s *Service) isSeededAdmin(user User) bool {
	return user.Username == strings.TrimSpace(s.admin.Username)
}
