package quiz

import (
	"context"
	"time"
)

type UserRepository interface {
	// CreateUser returns ErrDuplicateUser when the username is taken.
	CreateUser(ctx context.Context, user User) (int64, error)
	// EnsureUser inserts user unless the username already exists.
	EnsureUser(ctx context.Context, user User) error
	GetUser(ctx context.Context, id int64) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
	ListUsers(ctx context.Context) ([]User, error)
	UpdateUser(ctx context.Context, user User) error
	UpdatePassword(ctx context.Context, id int64, password string) error
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
	// DeleteUser returns a *DependentsError when scores reference the user.
	DeleteUser(ctx context.Context, id int64) error
}

// CatalogRepository covers the subject > chapter > quiz > question hierarchy.
// Every Delete* returns a *DependentsError while child rows exist.
type CatalogRepository interface {
	ListSubjects(ctx context.Context) ([]Subject, error)
	GetSubject(ctx context.Context, id int64) (Subject, error)
	CreateSubject(ctx context.Context, subject Subject) (int64, error)
	UpdateSubject(ctx context.Context, subject Subject) error
	DeleteSubject(ctx context.Context, id int64) error

	ListChapters(ctx context.Context, subjectID int64) ([]Chapter, error)
	ChapterOptions(ctx context.Context) ([]Option, error)
	GetChapter(ctx context.Context, id int64) (Chapter, error)
	CreateChapter(ctx context.Context, chapter Chapter) (int64, error)
	UpdateChapter(ctx context.Context, chapter Chapter) error
	DeleteChapter(ctx context.Context, id int64) error

	ListQuizzes(ctx context.Context, chapterID int64) ([]Quiz, error)
	ListActiveQuizzes(ctx context.Context) ([]Quiz, error)
	QuizOptions(ctx context.Context, activeOnly bool) ([]Option, error)
	GetQuiz(ctx context.Context, id int64) (Quiz, error)
	CreateQuiz(ctx context.Context, quiz Quiz) (int64, error)
	UpdateQuiz(ctx context.Context, quiz Quiz) error
	DeleteQuiz(ctx context.Context, id int64) error

	ListQuestions(ctx context.Context, quizID int64) ([]Question, error)
	GetQuestion(ctx context.Context, id int64) (Question, error)
	CreateQuestion(ctx context.Context, question Question) (int64, error)
	UpdateQuestion(ctx context.Context, question Question) error
	DeleteQuestion(ctx context.Context, id int64) error
}

type ScoreRepository interface {
	HasAttempt(ctx context.Context, userID, quizID int64) (bool, error)
	// CreateScore returns ErrAlreadyAttempted when (user_id, quiz_id) already has a row.
	CreateScore(ctx context.Context, score Score) (int64, error)
	ListUserScores(ctx context.Context, userID int64) ([]Score, error)
	ListScores(ctx context.Context) ([]Score, error)
	QuizStatistics(ctx context.Context) ([]QuizStats, error)
	UserStatistics(ctx context.Context) ([]UserStats, error)
}

// Store is the full persistence surface the service needs.
type Store interface {
	UserRepository
	CatalogRepository
	ScoreRepository
}
