package sqlite

import (
	"context"
	"database/sql"
	"time"

	"quiz-master/internal/quiz"
)

const userColumns = `id, username, password, full_name, qualification, dob, role, email, last_login`

func (s *SQLiteStore) CreateUser(ctx context.Context, user quiz.User) (int64, error) {
	result, err := s.db.ExecContext(
		ctx,
		`INSERT INTO users (username, password, full_name, qualification, dob, role, email)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user.Username,
		user.Password,
		user.FullName,
		user.Qualification,
		nullable(user.DateOfBirth),
		string(roleOrDefault(user.Role)),
		user.Email,
	)
	if err != nil {
		return 0, insertError(err, quiz.ErrDuplicateUser)
	}
	return result.LastInsertId()
}

func (s *SQLiteStore) EnsureUser(ctx context.Context, user quiz.User) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT OR IGNORE INTO users (username, password, full_name, role) VALUES (?, ?, ?, ?)`,
		user.Username,
		user.Password,
		user.FullName,
		string(roleOrDefault(user.Role)),
	)
	return err
}

func (s *SQLiteStore) GetUser(ctx context.Context, id int64) (quiz.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	user, err := scanUser(row)
	if err != nil {
		return quiz.User{}, notFound(err)
	}
	return user, nil
}

func (s *SQLiteStore) GetUserByUsername(ctx context.Context, username string) (quiz.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	user, err := scanUser(row)
	if err != nil {
		return quiz.User{}, notFound(err)
	}
	return user, nil
}

func (s *SQLiteStore) ListUsers(ctx context.Context) ([]quiz.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]quiz.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (s *SQLiteStore) UpdateUser(ctx context.Context, user quiz.User) error {
	result, err := s.db.ExecContext(
		ctx,
		`UPDATE users SET full_name = ?, qualification = ?, dob = ?, email = ?, role = ? WHERE id = ?`,
		user.FullName,
		user.Qualification,
		nullable(user.DateOfBirth),
		user.Email,
		string(roleOrDefault(user.Role)),
		user.ID,
	)
	if err != nil {
		return err
	}
	return expectAffected(result)
}

func (s *SQLiteStore) UpdatePassword(ctx context.Context, id int64, password string) error {
	result, err := s.db.ExecContext(ctx, `UPDATE users SET password = ? WHERE id = ?`, password, id)
	if err != nil {
		return err
	}
	return expectAffected(result)
}

func (s *SQLiteStore) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	result, err := s.db.ExecContext(ctx, `UPDATE users SET last_login = ? WHERE id = ?`, formatTimestamp(at), id)
	if err != nil {
		return err
	}
	return expectAffected(result)
}

func (s *SQLiteStore) DeleteUser(ctx context.Context, id int64) error {
	return s.deleteGuarded(ctx, `DELETE FROM users WHERE id = ?`, "user", id, dependentCheck{
		countQuery: `SELECT COUNT(*) FROM scores WHERE user_id = ?`,
		dependents: "quiz attempts",
	})
}

func scanUser(row rowScanner) (quiz.User, error) {
	var (
		user          quiz.User
		fullName      sql.NullString
		qualification sql.NullString
		dob           sql.NullString
		role          string
		email         sql.NullString
		lastLogin     sql.NullString
	)
	if err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&fullName,
		&qualification,
		&dob,
		&role,
		&email,
		&lastLogin,
	); err != nil {
		return quiz.User{}, err
	}

	user.FullName = fullName.String
	user.Qualification = qualification.String
	user.DateOfBirth = dob.String
	user.Role = quiz.Role(role)
	user.Email = email.String
	user.LastLogin = parseTimestamp(lastLogin)
	return user, nil
}

func roleOrDefault(role quiz.Role) quiz.Role {
	if role == "" {
		return quiz.RoleUser
	}
	return role
}
