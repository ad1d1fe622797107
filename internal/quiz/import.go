package quiz

import (
	"context"
	"errors"
	"html"
	"math/rand"

	"quiz-master/internal/opentdb"
)

const maxOptionSlots = 4

// ImportQuestions fetches amount trivia questions and stores them under
// quizID. Questions that do not fit 2..4 option slots are skipped.
func (s *Service) ImportQuestions(ctx context.Context, quizID int64, amount int) (int, error) {
	if s.fetcher == nil {
		return 0, errors.New("question fetcher is not configured")
	}
	if _, err := s.store.GetQuiz(ctx, quizID); err != nil {
		return 0, missingParent(err, "quiz_id", "quiz does not exist")
	}

	raw, err := s.fetcher(ctx, amount)
	if err != nil {
		return 0, err
	}

	imported := 0
	for _, item := range raw {
		input, ok := BuildQuestionInput(quizID, item, rand.Shuffle)
		if !ok {
			continue
		}
		if _, err := s.CreateQuestion(ctx, input); err != nil {
			if errors.Is(err, ErrValidation) {
				continue
			}
			return imported, err
		}
		imported++
	}
	return imported, nil
}

// BuildQuestionInput unescapes a trivia question and shuffles its answers
// into option slots, recording which slot holds the correct answer.
func BuildQuestionInput(quizID int64, raw opentdb.RawQuestion, shuffle func(n int, swap func(i, j int))) (QuestionInput, bool) {
	type choice struct {
		text      string
		isCorrect bool
	}

	choices := make([]choice, 0, len(raw.IncorrectAnswers)+1)
	for _, incorrect := range raw.IncorrectAnswers {
		choices = append(choices, choice{text: html.UnescapeString(incorrect)})
	}
	choices = append(choices, choice{
		text:      html.UnescapeString(raw.CorrectAnswer),
		isCorrect: true,
	})
	if len(choices) < 2 || len(choices) > maxOptionSlots {
		return QuestionInput{}, false
	}

	if shuffle != nil {
		shuffle(len(choices), func(i, j int) {
			choices[i], choices[j] = choices[j], choices[i]
		})
	}

	var slots [maxOptionSlots]string
	correct := 0
	for idx, candidate := range choices {
		slots[idx] = candidate.text
		if candidate.isCorrect {
			correct = idx + 1
		}
	}

	return QuestionInput{
		QuizID:        quizID,
		Statement:     html.UnescapeString(raw.Question),
		Option1:       slots[0],
		Option2:       slots[1],
		Option3:       slots[2],
		Option4:       slots[3],
		CorrectOption: correct,
	}, true
}
