package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"quiz-master/internal/quiz"
)

func (s *SQLiteStore) HasAttempt(ctx context.Context, userID, quizID int64) (bool, error) {
	var found int
	err := s.db.QueryRowContext(
		ctx,
		`SELECT 1 FROM scores WHERE user_id = ? AND quiz_id = ? LIMIT 1`,
		userID,
		quizID,
	).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CreateScore relies on idx_scores_user_quiz: when two submissions race past
// HasAttempt, the second insert fails here and nothing is written.
func (s *SQLiteStore) CreateScore(ctx context.Context, score quiz.Score) (int64, error) {
	result, err := s.db.ExecContext(
		ctx,
		`INSERT INTO scores (quiz_id, user_id, time_stamp, total_scored, total_questions)
		 VALUES (?, ?, ?, ?, ?)`,
		score.QuizID,
		score.UserID,
		formatTimestamp(score.TimeStamp),
		score.TotalScored,
		score.TotalQuestions,
	)
	if err != nil {
		return 0, insertError(err, quiz.ErrAlreadyAttempted)
	}
	return result.LastInsertId()
}

const scoreSelect = `SELECT s.id, s.quiz_id, s.user_id, q.name, u.username, s.time_stamp, s.total_scored, s.total_questions
	FROM scores s
	JOIN quizzes q ON s.quiz_id = q.id
	JOIN users u ON s.user_id = u.id`

func (s *SQLiteStore) ListUserScores(ctx context.Context, userID int64) ([]quiz.Score, error) {
	return s.queryScores(ctx, scoreSelect+` WHERE s.user_id = ? ORDER BY s.time_stamp DESC, s.id DESC`, userID)
}

func (s *SQLiteStore) ListScores(ctx context.Context) ([]quiz.Score, error) {
	return s.queryScores(ctx, scoreSelect+` ORDER BY s.id ASC`)
}

func (s *SQLiteStore) queryScores(ctx context.Context, query string, args ...any) ([]quiz.Score, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scores := make([]quiz.Score, 0)
	for rows.Next() {
		var (
			score     quiz.Score
			timeStamp sql.NullString
		)
		if err := rows.Scan(
			&score.ID,
			&score.QuizID,
			&score.UserID,
			&score.QuizName,
			&score.Username,
			&timeStamp,
			&score.TotalScored,
			&score.TotalQuestions,
		); err != nil {
			return nil, err
		}
		score.TimeStamp = parseTimestamp(timeStamp)
		scores = append(scores, score)
	}
	return scores, rows.Err()
}

// Percentages are computed per row before aggregating, so AVG is the mean of
// attempt percentages rather than a ratio of sums.
const percentExpr = `(s.total_scored * 100.0 / s.total_questions)`

func (s *SQLiteStore) QuizStatistics(ctx context.Context) ([]quiz.QuizStats, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT q.id, q.name, COUNT(s.id),
			AVG(`+percentExpr+`), MAX(`+percentExpr+`), MIN(`+percentExpr+`)
		 FROM scores s
		 JOIN quizzes q ON s.quiz_id = q.id
		 GROUP BY q.id, q.name
		 ORDER BY q.id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]quiz.QuizStats, 0)
	for rows.Next() {
		var (
			row            quiz.QuizStats
			avg, high, low sql.NullFloat64
		)
		if err := rows.Scan(&row.QuizID, &row.QuizName, &row.Attempts, &avg, &high, &low); err != nil {
			return nil, err
		}
		row.AvgScore, row.HighScore, row.LowScore = avg.Float64, high.Float64, low.Float64
		stats = append(stats, row)
	}
	return stats, rows.Err()
}

func (s *SQLiteStore) UserStatistics(ctx context.Context) ([]quiz.UserStats, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT u.id, u.username, u.full_name, COUNT(s.id),
			AVG(`+percentExpr+`), MAX(`+percentExpr+`), MIN(`+percentExpr+`)
		 FROM scores s
		 JOIN users u ON s.user_id = u.id
		 GROUP BY u.id, u.username, u.full_name
		 ORDER BY u.id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]quiz.UserStats, 0)
	for rows.Next() {
		var (
			row            quiz.UserStats
			fullName       sql.NullString
			avg, high, low sql.NullFloat64
		)
		if err := rows.Scan(&row.UserID, &row.Username, &fullName, &row.Attempts, &avg, &high, &low); err != nil {
			return nil, err
		}
		row.FullName = fullName.String
		row.AvgScore, row.HighScore, row.LowScore = avg.Float64, high.Float64, low.Float64
		stats = append(stats, row)
	}
	return stats, rows.Err()
}
