package sqlite

import (
	"context"
	"database/sql"

	"quiz-master/internal/quiz"
)

// Subjects

func (s *SQLiteStore) ListSubjects(ctx context.Context) ([]quiz.Subject, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, description FROM subjects ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subjects := make([]quiz.Subject, 0)
	for rows.Next() {
		subject, err := scanSubject(rows)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}
	return subjects, rows.Err()
}

func (s *SQLiteStore) GetSubject(ctx context.Context, id int64) (quiz.Subject, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, name, description FROM subjects WHERE id = ?`, id)
	subject, err := scanSubject(row)
	if err != nil {
		return quiz.Subject{}, notFound(err)
	}
	return subject, nil
}

func (s *SQLiteStore) CreateSubject(ctx context.Context, subject quiz.Subject) (int64, error) {
	result, err := s.db.ExecContext(
		ctx,
		`INSERT INTO subjects (name, description) VALUES (?, ?)`,
		subject.Name,
		subject.Description,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (s *SQLiteStore) UpdateSubject(ctx context.Context, subject quiz.Subject) error {
	result, err := s.db.ExecContext(
		ctx,
		`UPDATE subjects SET name = ?, description = ? WHERE id = ?`,
		subject.Name,
		subject.Description,
		subject.ID,
	)
	if err != nil {
		return err
	}
	return expectAffected(result)
}

func (s *SQLiteStore) DeleteSubject(ctx context.Context, id int64) error {
	return s.deleteGuarded(ctx, `DELETE FROM subjects WHERE id = ?`, "subject", id, dependentCheck{
		countQuery: `SELECT COUNT(*) FROM chapters WHERE subject_id = ?`,
		dependents: "chapters",
	})
}

func scanSubject(row rowScanner) (quiz.Subject, error) {
	var (
		subject     quiz.Subject
		description sql.NullString
	)
	if err := row.Scan(&subject.ID, &subject.Name, &description); err != nil {
		return quiz.Subject{}, err
	}
	subject.Description = description.String
	return subject, nil
}

// Chapters

const chapterSelect = `SELECT c.id, c.subject_id, s.name, c.name, c.description
	FROM chapters c
	JOIN subjects s ON c.subject_id = s.id`

func (s *SQLiteStore) ListChapters(ctx context.Context, subjectID int64) ([]quiz.Chapter, error) {
	rows, err := s.db.QueryContext(ctx, chapterSelect+` WHERE c.subject_id = ? ORDER BY c.id ASC`, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	chapters := make([]quiz.Chapter, 0)
	for rows.Next() {
		chapter, err := scanChapter(rows)
		if err != nil {
			return nil, err
		}
		chapters = append(chapters, chapter)
	}
	return chapters, rows.Err()
}

func (s *SQLiteStore) ChapterOptions(ctx context.Context) ([]quiz.Option, error) {
	return s.options(ctx, `SELECT c.id, s.name || ' - ' || c.name
		FROM chapters c
		JOIN subjects s ON c.subject_id = s.id
		ORDER BY c.id ASC`)
}

func (s *SQLiteStore) GetChapter(ctx context.Context, id int64) (quiz.Chapter, error) {
	row := s.db.QueryRowContext(ctx, chapterSelect+` WHERE c.id = ?`, id)
	chapter, err := scanChapter(row)
	if err != nil {
		return quiz.Chapter{}, notFound(err)
	}
	return chapter, nil
}

func (s *SQLiteStore) CreateChapter(ctx context.Context, chapter quiz.Chapter) (int64, error) {
	result, err := s.db.ExecContext(
		ctx,
		`INSERT INTO chapters (subject_id, name, description) VALUES (?, ?, ?)`,
		chapter.SubjectID,
		chapter.Name,
		chapter.Description,
	)
	if err != nil {
		return 0, insertError(err, nil)
	}
	return result.LastInsertId()
}

func (s *SQLiteStore) UpdateChapter(ctx context.Context, chapter quiz.Chapter) error {
	result, err := s.db.ExecContext(
		ctx,
		`UPDATE chapters SET subject_id = ?, name = ?, description = ? WHERE id = ?`,
		chapter.SubjectID,
		chapter.Name,
		chapter.Description,
		chapter.ID,
	)
	if err != nil {
		return insertError(err, nil)
	}
	return expectAffected(result)
}

func (s *SQLiteStore) DeleteChapter(ctx context.Context, id int64) error {
	return s.deleteGuarded(ctx, `DELETE FROM chapters WHERE id = ?`, "chapter", id, dependentCheck{
		countQuery: `SELECT COUNT(*) FROM quizzes WHERE chapter_id = ?`,
		dependents: "quizzes",
	})
}

func scanChapter(row rowScanner) (quiz.Chapter, error) {
	var (
		chapter     quiz.Chapter
		description sql.NullString
	)
	if err := row.Scan(&chapter.ID, &chapter.SubjectID, &chapter.SubjectName, &chapter.Name, &description); err != nil {
		return quiz.Chapter{}, err
	}
	chapter.Description = description.String
	return chapter, nil
}

// Quizzes

const quizSelect = `SELECT q.id, q.chapter_id, s.name, c.name, q.name, q.description,
		q.date_of_quiz, q.time_duration, q.is_active
	FROM quizzes q
	JOIN chapters c ON q.chapter_id = c.id
	JOIN subjects s ON c.subject_id = s.id`

func (s *SQLiteStore) ListQuizzes(ctx context.Context, chapterID int64) ([]quiz.Quiz, error) {
	return s.queryQuizzes(ctx, quizSelect+` WHERE q.chapter_id = ? ORDER BY q.id ASC`, chapterID)
}

func (s *SQLiteStore) ListActiveQuizzes(ctx context.Context) ([]quiz.Quiz, error) {
	return s.queryQuizzes(ctx, quizSelect+` WHERE q.is_active = 1 ORDER BY q.date_of_quiz ASC, q.id ASC`)
}

func (s *SQLiteStore) QuizOptions(ctx context.Context, activeOnly bool) ([]quiz.Option, error) {
	return s.options(ctx, `SELECT q.id, s.name || ' - ' || c.name || ' - ' || q.name
		FROM quizzes q
		JOIN chapters c ON q.chapter_id = c.id
		JOIN subjects s ON c.subject_id = s.id
		WHERE (? = 0 OR q.is_active = 1)
		ORDER BY q.id ASC`, activeOnly)
}

func (s *SQLiteStore) GetQuiz(ctx context.Context, id int64) (quiz.Quiz, error) {
	row := s.db.QueryRowContext(ctx, quizSelect+` WHERE q.id = ?`, id)
	item, err := scanQuiz(row)
	if err != nil {
		return quiz.Quiz{}, notFound(err)
	}
	return item, nil
}

func (s *SQLiteStore) CreateQuiz(ctx context.Context, item quiz.Quiz) (int64, error) {
	result, err := s.db.ExecContext(
		ctx,
		`INSERT INTO quizzes (chapter_id, name, description, date_of_quiz, time_duration, is_active)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		item.ChapterID,
		item.Name,
		item.Description,
		item.DateOfQuiz,
		item.TimeDuration,
		item.IsActive,
	)
	if err != nil {
		return 0, insertError(err, nil)
	}
	return result.LastInsertId()
}

func (s *SQLiteStore) UpdateQuiz(ctx context.Context, item quiz.Quiz) error {
	result, err := s.db.ExecContext(
		ctx,
		`UPDATE quizzes
		 SET chapter_id = ?, name = ?, description = ?, date_of_quiz = ?, time_duration = ?, is_active = ?
		 WHERE id = ?`,
		item.ChapterID,
		item.Name,
		item.Description,
		item.DateOfQuiz,
		item.TimeDuration,
		item.IsActive,
		item.ID,
	)
	if err != nil {
		return insertError(err, nil)
	}
	return expectAffected(result)
}

// DeleteQuiz is blocked by questions and by recorded scores.
func (s *SQLiteStore) DeleteQuiz(ctx context.Context, id int64) error {
	return s.deleteGuarded(ctx, `DELETE FROM quizzes WHERE id = ?`, "quiz", id,
		dependentCheck{
			countQuery: `SELECT COUNT(*) FROM questions WHERE quiz_id = ?`,
			dependents: "questions",
		},
		dependentCheck{
			countQuery: `SELECT COUNT(*) FROM scores WHERE quiz_id = ?`,
			dependents: "recorded attempts",
		},
	)
}

func (s *SQLiteStore) queryQuizzes(ctx context.Context, query string, args ...any) ([]quiz.Quiz, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quizzes := make([]quiz.Quiz, 0)
	for rows.Next() {
		item, err := scanQuiz(rows)
		if err != nil {
			return nil, err
		}
		quizzes = append(quizzes, item)
	}
	return quizzes, rows.Err()
}

func scanQuiz(row rowScanner) (quiz.Quiz, error) {
	var (
		item         quiz.Quiz
		description  sql.NullString
		dateOfQuiz   sql.NullString
		timeDuration sql.NullString
	)
	if err := row.Scan(
		&item.ID,
		&item.ChapterID,
		&item.SubjectName,
		&item.ChapterName,
		&item.Name,
		&description,
		&dateOfQuiz,
		&timeDuration,
		&item.IsActive,
	); err != nil {
		return quiz.Quiz{}, err
	}
	item.Description = description.String
	item.DateOfQuiz = dateOfQuiz.String
	item.TimeDuration = timeDuration.String
	return item, nil
}

// Questions

const questionSelect = `SELECT id, quiz_id, question_statement, option1, option2, option3, option4, correct_option
	FROM questions`

func (s *SQLiteStore) ListQuestions(ctx context.Context, quizID int64) ([]quiz.Question, error) {
	rows, err := s.db.QueryContext(ctx, questionSelect+` WHERE quiz_id = ? ORDER BY id ASC`, quizID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := make([]quiz.Question, 0)
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}
	return questions, rows.Err()
}

func (s *SQLiteStore) GetQuestion(ctx context.Context, id int64) (quiz.Question, error) {
	row := s.db.QueryRowContext(ctx, questionSelect+` WHERE id = ?`, id)
	question, err := scanQuestion(row)
	if err != nil {
		return quiz.Question{}, notFound(err)
	}
	return question, nil
}

func (s *SQLiteStore) CreateQuestion(ctx context.Context, question quiz.Question) (int64, error) {
	result, err := s.db.ExecContext(
		ctx,
		`INSERT INTO questions (quiz_id, question_statement, option1, option2, option3, option4, correct_option)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		question.QuizID,
		question.Statement,
		question.Option1,
		question.Option2,
		nullable(question.Option3),
		nullable(question.Option4),
		question.CorrectOption,
	)
	if err != nil {
		return 0, insertError(err, nil)
	}
	return result.LastInsertId()
}

func (s *SQLiteStore) UpdateQuestion(ctx context.Context, question quiz.Question) error {
	result, err := s.db.ExecContext(
		ctx,
		`UPDATE questions
		 SET quiz_id = ?, question_statement = ?, option1 = ?, option2 = ?, option3 = ?, option4 = ?, correct_option = ?
		 WHERE id = ?`,
		question.QuizID,
		question.Statement,
		question.Option1,
		question.Option2,
		nullable(question.Option3),
		nullable(question.Option4),
		question.CorrectOption,
		question.ID,
	)
	if err != nil {
		return insertError(err, nil)
	}
	return expectAffected(result)
}

func (s *SQLiteStore) DeleteQuestion(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return expectAffected(result)
}

func scanQuestion(row rowScanner) (quiz.Question, error) {
	var (
		question quiz.Question
		option3  sql.NullString
		option4  sql.NullString
	)
	if err := row.Scan(
		&question.ID,
		&question.QuizID,
		&question.Statement,
		&question.Option1,
		&question.Option2,
		&option3,
		&option4,
		&question.CorrectOption,
	); err != nil {
		return quiz.Question{}, err
	}
	question.Option3 = option3.String
	question.Option4 = option4.String
	return question, nil
}

func (s *SQLiteStore) options(ctx context.Context, query string, args ...any) ([]quiz.Option, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	options := make([]quiz.Option, 0)
	for rows.Next() {
		var option quiz.Option
		if err := rows.Scan(&option.ID, &option.Label); err != nil {
			return nil, err
		}
		options = append(options, option)
	}
	return options, rows.Err()
}
