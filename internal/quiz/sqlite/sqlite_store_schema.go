package sqlite

import (
	"context"
)

func (s *SQLiteStore) initSchema(ctx context.Context) error {
	// Child tables RESTRICT parent deletes; the application still counts
	// children first so the caller gets a descriptive error.
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			full_name TEXT,
			qualification TEXT,
			dob TEXT,
			role TEXT NOT NULL DEFAULT 'user',
			email TEXT,
			last_login TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS subjects (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			description TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS chapters (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			subject_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			FOREIGN KEY(subject_id) REFERENCES subjects(id) ON DELETE RESTRICT
		);`,
		`CREATE TABLE IF NOT EXISTS quizzes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			chapter_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			date_of_quiz TEXT,
			time_duration TEXT,
			is_active BOOLEAN NOT NULL DEFAULT 1,
			FOREIGN KEY(chapter_id) REFERENCES chapters(id) ON DELETE RESTRICT
		);`,
		`CREATE TABLE IF NOT EXISTS questions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			quiz_id INTEGER NOT NULL,
			question_statement TEXT NOT NULL,
			option1 TEXT NOT NULL,
			option2 TEXT NOT NULL,
			option3 TEXT,
			option4 TEXT,
			correct_option INTEGER NOT NULL CHECK (correct_option BETWEEN 1 AND 4),
			FOREIGN KEY(quiz_id) REFERENCES quizzes(id) ON DELETE RESTRICT
		);`,
		`CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			quiz_id INTEGER NOT NULL,
			user_id INTEGER NOT NULL,
			time_stamp TEXT NOT NULL,
			total_scored INTEGER NOT NULL,
			total_questions INTEGER NOT NULL,
			FOREIGN KEY(quiz_id) REFERENCES quizzes(id) ON DELETE RESTRICT,
			FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE RESTRICT
		);`,
		// One attempt per user and quiz.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_scores_user_quiz ON scores(user_id, quiz_id);`,
		`CREATE INDEX IF NOT EXISTS idx_chapters_subject ON chapters(subject_id);`,
		`CREATE INDEX IF NOT EXISTS idx_quizzes_chapter ON quizzes(chapter_id);`,
		`CREATE INDEX IF NOT EXISTS idx_questions_quiz ON questions(quiz_id);`,
		`CREATE INDEX IF NOT EXISTS idx_scores_quiz ON scores(quiz_id);`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
