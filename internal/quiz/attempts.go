package quiz

import (
	"context"
	"fmt"
	"time"
)

// Grade awards one point per question whose chosen option text maps to the
// correct slot. Missing answers count as the first rendered option.
func Grade(questions []Question, answers map[int64]string) int {
	score := 0
	for _, question := range questions {
		answer, ok := answers[question.ID]
		if !ok {
			if rendered := question.RenderedOptions(); len(rendered) > 0 {
				answer = rendered[0]
			}
		}
		if question.OptionIndex(answer) == question.CorrectOption {
			score++
		}
	}
	return score
}

func (s *Service) ListActiveQuizzes(ctx context.Context) ([]Quiz, error) {
	return s.store.ListActiveQuizzes(ctx)
}

// StartAttempt loads a quiz for userID to answer. It fails with
// ErrAlreadyAttempted before any question is returned if a score exists.
func (s *Service) StartAttempt(ctx context.Context, userID, quizID int64) (AttemptSheet, error) {
	quiz, err := s.store.GetQuiz(ctx, quizID)
	if err != nil {
		return AttemptSheet{}, err
	}
	if !quiz.IsActive {
		return AttemptSheet{}, fmt.Errorf("%w: quiz is not active", ErrQuizUnavailable)
	}

	taken, err := s.store.HasAttempt(ctx, userID, quizID)
	if err != nil {
		return AttemptSheet{}, err
	}
	if taken {
		return AttemptSheet{}, ErrAlreadyAttempted
	}

	questions, err := s.store.ListQuestions(ctx, quizID)
	if err != nil {
		return AttemptSheet{}, err
	}
	if len(questions) == 0 {
		return AttemptSheet{}, fmt.Errorf("%w: this quiz has no questions yet", ErrQuizUnavailable)
	}

	return AttemptSheet{Quiz: quiz, Questions: questions}, nil
}

// SubmitAttempt grades answers (question id -> chosen option text) against
// freshly loaded questions and records exactly one score. A concurrent
// second submission is rejected by storage with ErrAlreadyAttempted.
func (s *Service) SubmitAttempt(ctx context.Context, userID, quizID int64, answers map[int64]string) (Score, error) {
	sheet, err := s.StartAttempt(ctx, userID, quizID)
	if err != nil {
		return Score{}, err
	}

	score := Score{
		QuizID:         quizID,
		UserID:         userID,
		QuizName:       sheet.Quiz.Name,
		TimeStamp:      s.now().Truncate(time.Second),
		TotalScored:    Grade(sheet.Questions, answers),
		TotalQuestions: len(sheet.Questions),
	}

	id, err := s.store.CreateScore(ctx, score)
	if err != nil {
		return Score{}, err
	}
	score.ID = id
	return score, nil
}

// MyScores lists userID's attempts newest first with summary figures.
func (s *Service) MyScores(ctx context.Context, userID int64) (ScoreSummary, error) {
	scores, err := s.store.ListUserScores(ctx, userID)
	if err != nil {
		return ScoreSummary{}, err
	}

	summary := ScoreSummary{Scores: scores, TotalAttempts: len(scores)}
	if len(scores) == 0 {
		return summary, nil
	}

	total := 0.0
	for idx, score := range scores {
		pct := score.Percentage()
		total += pct
		if idx == 0 || pct > summary.BestScore {
			summary.BestScore = pct
		}
	}
	summary.AvgScore = total / float64(len(scores))
	return summary, nil
}
