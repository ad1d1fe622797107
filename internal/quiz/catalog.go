package quiz

import (
	"context"
	"errors"
	"strings"
)

type SubjectInput struct {
	Name        string `form:"name" validate:"required"`
	Description string `form:"description"`
}

type ChapterInput struct {
	SubjectID   int64  `form:"subject_id" validate:"gt=0"`
	Name        string `form:"name" validate:"required"`
	Description string `form:"description"`
}

type QuizInput struct {
	ChapterID    int64  `form:"chapter_id" validate:"gt=0"`
	Name         string `form:"name" validate:"required"`
	Description  string `form:"description"`
	DateOfQuiz   string `form:"date_of_quiz" validate:"required,datetime=2006-01-02"`
	TimeDuration string `form:"time_duration" validate:"required"`
	IsActive     bool   `form:"is_active"`
}

type QuestionInput struct {
	QuizID        int64  `form:"quiz_id" validate:"gt=0"`
	Statement     string `form:"question_statement" validate:"required"`
	Option1       string `form:"option1" validate:"required"`
	Option2       string `form:"option2" validate:"required"`
	Option3       string `form:"option3"`
	Option4       string `form:"option4"`
	CorrectOption int    `form:"correct_option" validate:"oneof=1 2 3 4"`
}

func (in *SubjectInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
}

func (in *ChapterInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
}

func (in *QuizInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.DateOfQuiz = strings.TrimSpace(in.DateOfQuiz)
	in.TimeDuration = strings.TrimSpace(in.TimeDuration)
}

func (in *QuestionInput) normalize() {
	in.Statement = strings.TrimSpace(in.Statement)
	in.Option1 = strings.TrimSpace(in.Option1)
	in.Option2 = strings.TrimSpace(in.Option2)
	in.Option3 = strings.TrimSpace(in.Option3)
	in.Option4 = strings.TrimSpace(in.Option4)
}

// missingParent turns ErrNotFound from a parent lookup into a field error.
func missingParent(err error, field, message string) error {
	if errors.Is(err, ErrNotFound) {
		return invalid(field, message)
	}
	return err
}

// Subjects

func (s *Service) ListSubjects(ctx context.Context) ([]Subject, error) {
	return s.store.ListSubjects(ctx)
}

func (s *Service) GetSubject(ctx context.Context, id int64) (Subject, error) {
	return s.store.GetSubject(ctx, id)
}

func (s *Service) CreateSubject(ctx context.Context, input SubjectInput) (int64, error) {
	input.normalize()
	if err := s.check(input); err != nil {
		return 0, err
	}
	return s.store.CreateSubject(ctx, Subject{Name: input.Name, Description: input.Description})
}

func (s *Service) UpdateSubject(ctx context.Context, id int64, input SubjectInput) error {
	input.normalize()
	if err := s.check(input); err != nil {
		return err
	}
	return s.store.UpdateSubject(ctx, Subject{ID: id, Name: input.Name, Description: input.Description})
}

func (s *Service) DeleteSubject(ctx context.Context, id int64) error {
	return s.store.DeleteSubject(ctx, id)
}

// Chapters

func (s *Service) ListChapters(ctx context.Context, subjectID int64) ([]Chapter, error) {
	return s.store.ListChapters(ctx, subjectID)
}

// ChapterOptions labels every chapter as "Subject - Chapter".
func (s *Service) ChapterOptions(ctx context.Context) ([]Option, error) {
	return s.store.ChapterOptions(ctx)
}

func (s *Service) GetChapter(ctx context.Context, id int64) (Chapter, error) {
	return s.store.GetChapter(ctx, id)
}

func (s *Service) CreateChapter(ctx context.Context, input ChapterInput) (int64, error) {
	chapter, err := s.chapterFromInput(ctx, input)
	if err != nil {
		return 0, err
	}
	return s.store.CreateChapter(ctx, chapter)
}

func (s *Service) UpdateChapter(ctx context.Context, id int64, input ChapterInput) error {
	chapter, err := s.chapterFromInput(ctx, input)
	if err != nil {
		return err
	}
	chapter.ID = id
	return s.store.UpdateChapter(ctx, chapter)
}

func (s *Service) chapterFromInput(ctx context.Context, input ChapterInput) (Chapter, error) {
	input.normalize()
	if err := s.check(input); err != nil {
		return Chapter{}, err
	}
	if _, err := s.store.GetSubject(ctx, input.SubjectID); err != nil {
		return Chapter{}, missingParent(err, "subject_id", "subject does not exist")
	}
	return Chapter{
		SubjectID:   input.SubjectID,
		Name:        input.Name,
		Description: input.Description,
	}, nil
}

func (s *Service) DeleteChapter(ctx context.Context, id int64) error {
	return s.store.DeleteChapter(ctx, id)
}

// Quizzes

func (s *Service) ListQuizzes(ctx context.Context, chapterID int64) ([]Quiz, error) {
	return s.store.ListQuizzes(ctx, chapterID)
}

// QuizOptions labels quizzes as "Subject - Chapter - Quiz".
func (s *Service) QuizOptions(ctx context.Context, activeOnly bool) ([]Option, error) {
	return s.store.QuizOptions(ctx, activeOnly)
}

func (s *Service) GetQuiz(ctx context.Context, id int64) (Quiz, error) {
	return s.store.GetQuiz(ctx, id)
}

// CreateQuiz stores a new quiz; new quizzes always start active.
func (s *Service) CreateQuiz(ctx context.Context, input QuizInput) (int64, error) {
	input.IsActive = true
	quiz, err := s.quizFromInput(ctx, input, "")
	if err != nil {
		return 0, err
	}
	return s.store.CreateQuiz(ctx, quiz)
}

// UpdateQuiz only applies the not-past rule when the date changes, so a quiz
// whose date has gone by can still be edited or deactivated.
func (s *Service) UpdateQuiz(ctx context.Context, id int64, input QuizInput) error {
	stored, err := s.store.GetQuiz(ctx, id)
	if err != nil {
		return err
	}
	quiz, err := s.quizFromInput(ctx, input, stored.DateOfQuiz)
	if err != nil {
		return err
	}
	quiz.ID = id
	return s.store.UpdateQuiz(ctx, quiz)
}

func (s *Service) quizFromInput(ctx context.Context, input QuizInput, storedDate string) (Quiz, error) {
	input.normalize()
	if err := s.check(input); err != nil {
		return Quiz{}, err
	}
	if input.DateOfQuiz != storedDate {
		if err := s.checkNotPast("date_of_quiz", input.DateOfQuiz); err != nil {
			return Quiz{}, err
		}
	}
	if _, _, err := ParseDuration(input.TimeDuration); err != nil {
		return Quiz{}, err
	}
	if _, err := s.store.GetChapter(ctx, input.ChapterID); err != nil {
		return Quiz{}, missingParent(err, "chapter_id", "chapter does not exist")
	}
	return Quiz{
		ChapterID:    input.ChapterID,
		Name:         input.Name,
		Description:  input.Description,
		DateOfQuiz:   input.DateOfQuiz,
		TimeDuration: input.TimeDuration,
		IsActive:     input.IsActive,
	}, nil
}

func (s *Service) DeleteQuiz(ctx context.Context, id int64) error {
	return s.store.DeleteQuiz(ctx, id)
}

// Questions

func (s *Service) ListQuestions(ctx context.Context, quizID int64) ([]Question, error) {
	return s.store.ListQuestions(ctx, quizID)
}

func (s *Service) GetQuestion(ctx context.Context, id int64) (Question, error) {
	return s.store.GetQuestion(ctx, id)
}

func (s *Service) CreateQuestion(ctx context.Context, input QuestionInput) (int64, error) {
	question, err := s.questionFromInput(ctx, input)
	if err != nil {
		return 0, err
	}
	return s.store.CreateQuestion(ctx, question)
}

func (s *Service) UpdateQuestion(ctx context.Context, id int64, input QuestionInput) error {
	question, err := s.questionFromInput(ctx, input)
	if err != nil {
		return err
	}
	question.ID = id
	return s.store.UpdateQuestion(ctx, question)
}

func (s *Service) questionFromInput(ctx context.Context, input QuestionInput) (Question, error) {
	input.normalize()
	if err := s.check(input); err != nil {
		return Question{}, err
	}

	question := Question{
		QuizID:        input.QuizID,
		Statement:     input.Statement,
		Option1:       input.Option1,
		Option2:       input.Option2,
		Option3:       input.Option3,
		Option4:       input.Option4,
		CorrectOption: input.CorrectOption,
	}
	if question.Slots()[question.CorrectOption-1] == "" {
		return Question{}, invalid("correct_option", "correct option must point at a filled-in option")
	}

	if _, err := s.store.GetQuiz(ctx, input.QuizID); err != nil {
		return Question{}, missingParent(err, "quiz_id", "quiz does not exist")
	}
	return question, nil
}

// DeleteQuestion removes a question. Questions have no dependent rows.
func (s *Service) DeleteQuestion(ctx context.Context, id int64) error {
	return s.store.DeleteQuestion(ctx, id)
}
