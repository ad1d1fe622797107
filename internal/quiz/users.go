package quiz

import (
	"context"
	"strings"
)

// UserInput is what an administrator may change on an account. The username
// is immutable once created.
type UserInput struct {
	FullName      string `form:"full_name"`
	Qualification string `form:"qualification"`
	DateOfBirth   string `form:"dob" validate:"omitempty,datetime=2006-01-02"`
	Email         string `form:"email"`
	Role          Role   `form:"role" validate:"oneof=user admin"`
}

// ProfileInput is the self-service subset of UserInput plus an optional
// password change.
type ProfileInput struct {
	FullName        string `form:"full_name"`
	Qualification   string `form:"qualification"`
	DateOfBirth     string `form:"dob" validate:"omitempty,datetime=2006-01-02"`
	Email           string `form:"email"`
	NewPassword     string `form:"new_password"`
	ConfirmPassword string `form:"confirm_password"`
}

func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	return s.store.ListUsers(ctx)
}

func (s *Service) UpdateUser(ctx context.Context, id int64, input UserInput) error {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Qualification = strings.TrimSpace(input.Qualification)
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.Email = strings.TrimSpace(input.Email)
	if err := s.check(input); err != nil {
		return err
	}

	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if s.isSeededAdmin(user) && input.Role != RoleAdmin {
		return invalid("role", "the built-in admin account must keep the admin role")
	}

	user.FullName = input.FullName
	user.Qualification = input.Qualification
	user.DateOfBirth = input.DateOfBirth
	user.Email = input.Email
	user.Role = input.Role
	return s.store.UpdateUser(ctx, user)
}

// DeleteUser refuses admin accounts and users with recorded attempts.
func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if user.IsAdmin() || s.isSeededAdmin(user) {
		return ErrProtectedAccount
	}
	return s.store.DeleteUser(ctx, id)
}

// UpdateProfile changes the caller's own profile; an empty NewPassword keeps
// the current password.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, input ProfileInput) (User, error) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Qualification = strings.TrimSpace(input.Qualification)
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.Email = strings.TrimSpace(input.Email)
	if err := s.check(input); err != nil {
		return User{}, err
	}
	if input.NewPassword != "" && input.NewPassword != input.ConfirmPassword {
		return User{}, &ValidationError{
			Field:   "confirm_password",
			Message: ErrPasswordMismatch.Error(),
			Err:     ErrPasswordMismatch,
		}
	}

	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return User{}, err
	}
	user.FullName = input.FullName
	user.Qualification = input.Qualification
	user.DateOfBirth = input.DateOfBirth
	user.Email = input.Email
	if err := s.store.UpdateUser(ctx, user); err != nil {
		return User{}, err
	}

	if input.NewPassword != "" {
		stored, err := s.passwords.Hash(input.NewPassword)
		if err != nil {
			return User{}, err
		}
		if err := s.store.UpdatePassword(ctx, userID, stored); err != nil {
			return User{}, err
		}
		user.Password = stored
	}
	return user, nil
}
