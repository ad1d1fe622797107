package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"quiz-master/internal/quiz"
)

type fakeTaker struct {
	quizzes   []quiz.Quiz
	sheet     quiz.AttemptSheet
	loginErr  error
	startErr  error
	submitted map[int64]string
}

func (f *fakeTaker) Login(_ context.Context, username, password string) (quiz.User, error) {
	if f.loginErr != nil {
		return quiz.User{}, f.loginErr
	}
	if username != "alice" || password != "pw" {
		return quiz.User{}, quiz.ErrInvalidCredentials
	}
	return quiz.User{ID: 7, Username: "alice", FullName: "Alice"}, nil
}

func (f *fakeTaker) ListActiveQuizzes(context.Context) ([]quiz.Quiz, error) {
	return f.quizzes, nil
}

func (f *fakeTaker) StartAttempt(_ context.Context, userID, quizID int64) (quiz.AttemptSheet, error) {
	if f.startErr != nil {
		return quiz.AttemptSheet{}, f.startErr
	}
	if userID != 7 || quizID != f.sheet.Quiz.ID {
		return quiz.AttemptSheet{}, quiz.ErrNotFound
	}
	return f.sheet, nil
}

func (f *fakeTaker) SubmitAttempt(_ context.Context, _ int64, _ int64, answers map[int64]string) (quiz.Score, error) {
	f.submitted = answers
	score := quiz.Score{TotalQuestions: len(f.sheet.Questions)}
	for _, question := range f.sheet.Questions {
		if question.OptionIndex(answers[question.ID]) == question.CorrectOption {
			score.TotalScored++
		}
	}
	return score, nil
}

func newFakeTaker() *fakeTaker {
	return &fakeTaker{
		quizzes: []quiz.Quiz{
			{ID: 3, SubjectName: "Math", ChapterName: "Algebra", Name: "Quiz1", DateOfQuiz: "2030-01-02", TimeDuration: "00:10"},
			{ID: 4, SubjectName: "Math", ChapterName: "Algebra", Name: "Quiz2", DateOfQuiz: "2030-01-03", TimeDuration: "00:20"},
		},
		sheet: quiz.AttemptSheet{
			Quiz: quiz.Quiz{ID: 4, Name: "Quiz2", TimeDuration: "00:20"},
			Questions: []quiz.Question{
				{ID: 10, Statement: "Two plus two?", Option1: "3", Option2: "4", Option3: "5", CorrectOption: 2},
				{ID: 11, Statement: "Capital of France?", Option1: "Paris", Option2: "Rome", CorrectOption: 1},
			},
		},
	}
}

func TestRunTakesChosenQuiz(t *testing.T) {
	taker := newFakeTaker()
	var out bytes.Buffer

	input := "alice\npw\n2\nb\nz\nA\n"
	if err := Run(context.Background(), taker, strings.NewReader(input), &out); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if taker.submitted[10] != "4" || taker.submitted[11] != "Paris" {
		t.Fatalf("unexpected submitted answers: %v", taker.submitted)
	}
	for _, fragment := range []string{"Welcome, Alice!", "2. Math - Algebra - Quiz2", "C. 5", "Invalid input. Please enter a letter A-B.", "Final score: 2/2 (100.0%)"} {
		if !strings.Contains(out.String(), fragment) {
			t.Fatalf("output missing %q:\n%s", fragment, out.String())
		}
	}
}

func TestRunRecordsFirstOptionWhenInputRunsOut(t *testing.T) {
	taker := newFakeTaker()
	var out bytes.Buffer

	if err := Run(context.Background(), taker, strings.NewReader("alice\npw\n2\nc\n"), &out); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if taker.submitted[11] != "Paris" {
		t.Fatalf("expected unanswered question to record the first option, got %v", taker.submitted)
	}
	if !strings.Contains(out.String(), "Final score: 1/2 (50.0%)") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestRunStopsOnServiceErrors(t *testing.T) {
	taker := newFakeTaker()
	err := Run(context.Background(), taker, strings.NewReader("alice\nwrong\n"), io.Discard)
	if !errors.Is(err, quiz.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	taker.startErr = quiz.ErrAlreadyAttempted
	err = Run(context.Background(), taker, strings.NewReader("alice\npw\n1\n"), io.Discard)
	if !errors.Is(err, quiz.ErrAlreadyAttempted) {
		t.Fatalf("expected ErrAlreadyAttempted, got %v", err)
	}
	if taker.submitted != nil {
		t.Fatalf("nothing should be submitted when the attempt is blocked")
	}
}

func TestRunWithoutQuizzes(t *testing.T) {
	taker := newFakeTaker()
	taker.quizzes = nil
	var out bytes.Buffer

	if err := Run(context.Background(), taker, strings.NewReader("alice\npw\n"), &out); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "No quizzes are available right now.") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestGetAnswer(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		count  int
		want   int
		wantOK bool
	}{
		{name: "lowercase letter", input: "c\n", count: 4, want: 2, wantOK: true},
		{name: "retry after invalid", input: "x\n\nB\n", count: 2, want: 1, wantOK: true},
		{name: "out of range exhausts attempts", input: "C\nD\nE\n", count: 2, want: -1},
		{name: "no options", input: "A\n", count: 0, want: -1},
		{name: "last line without newline", input: "a", count: 2, want: 0, wantOK: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := getAnswer(bufio.NewReader(strings.NewReader(tc.input)), io.Discard, tc.count)
			if got != tc.want || ok != tc.wantOK {
				t.Fatalf("getAnswer = (%d, %v), want (%d, %v)", got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestGetChoice(t *testing.T) {
	got, ok := getChoice(bufio.NewReader(strings.NewReader("0\nabc\n2\n")), io.Discard, 2)
	if !ok || got != 1 {
		t.Fatalf("getChoice = (%d, %v), want (1, true)", got, ok)
	}
	if _, ok := getChoice(bufio.NewReader(strings.NewReader("")), io.Discard, 2); ok {
		t.Fatalf("expected no choice on empty input")
	}
}
