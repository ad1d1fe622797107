package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"quiz-master/internal/quiz"
)

const maxAttempts = 3

// QuizTaker is the part of the quiz service the terminal runner needs.
type QuizTaker interface {
	Login(ctx context.Context, username, password string) (quiz.User, error)
	ListActiveQuizzes(ctx context.Context) ([]quiz.Quiz, error)
	StartAttempt(ctx context.Context, userID, quizID int64) (quiz.AttemptSheet, error)
	SubmitAttempt(ctx context.Context, userID, quizID int64, answers map[int64]string) (quiz.Score, error)
}

// Run logs a user in, lets them pick one active quiz, walks through its
// questions and records the graded attempt.
func Run(ctx context.Context, service QuizTaker, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	username, err := prompt(reader, out, "Username: ")
	if err != nil {
		return err
	}
	password, err := prompt(reader, out, "Password: ")
	if err != nil {
		return err
	}

	user, err := service.Login(ctx, username, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nWelcome, %s!\n", displayName(user))

	quizzes, err := service.ListActiveQuizzes(ctx)
	if err != nil {
		return err
	}
	if len(quizzes) == 0 {
		fmt.Fprintln(out, "No quizzes are available right now.")
		return nil
	}

	printQuizzes(out, quizzes)
	choice, ok := getChoice(reader, out, len(quizzes))
	if !ok {
		return errors.New("no quiz selected")
	}
	selected := quizzes[choice]

	sheet, err := service.StartAttempt(ctx, user.ID, selected.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%s (time limit %s)\n", sheet.Quiz.Name, sheet.Quiz.TimeDuration)

	answers := make(map[int64]string, len(sheet.Questions))
	for idx, question := range sheet.Questions {
		options := question.RenderedOptions()
		printQuestion(out, idx+1, question.Statement, options)

		chosenIndex, ok := getAnswer(reader, out, len(options))
		if !ok {
			chosenIndex = 0
			fmt.Fprintf(out, "\nNo valid answer, recording A.\n")
		}
		if len(options) > 0 {
			answers[question.ID] = options[chosenIndex]
		}
	}

	score, err := service.SubmitAttempt(ctx, user.ID, sheet.Quiz.ID, answers)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nFinal score: %d/%d (%.1f%%)\n", score.TotalScored, score.TotalQuestions, score.Percentage())
	return nil
}

func prompt(reader *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func displayName(user quiz.User) string {
	if user.FullName != "" {
		return user.FullName
	}
	return user.Username
}

func printQuizzes(out io.Writer, quizzes []quiz.Quiz) {
	fmt.Fprintln(out, "\nAvailable quizzes:")
	for idx, q := range quizzes {
		fmt.Fprintf(out, "%d. %s - %s - %s (%s, %s)\n", idx+1, q.SubjectName, q.ChapterName, q.Name, q.DateOfQuiz, q.TimeDuration)
	}
	fmt.Fprint(out, "\nChoose a quiz: ")
}

func printQuestion(out io.Writer, number int, statement string, options []string) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Q%d: %s\n\n", number, statement)
	for idx, option := range options {
		fmt.Fprintf(out, "%c. %s\n", 'A'+idx, option)
	}
	fmt.Fprintln(out)
}

// getChoice reads a 1-based list number and returns it 0-based.
func getChoice(reader *bufio.Reader, out io.Writer, count int) (int, bool) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return -1, false
		}

		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && n >= 1 && n <= count {
			return n - 1, true
		}

		if attempt < maxAttempts {
			fmt.Fprintf(out, "\nInvalid input. Please enter a number 1-%d.\n", count)
		}
	}

	return -1, false
}

func getAnswer(reader *bufio.Reader, out io.Writer, optionCount int) (int, bool) {
	if optionCount < 1 {
		return -1, false
	}

	maxLetter := byte('A' + optionCount - 1)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		userAnswer, err := reader.ReadString('\n')
		if err != nil && userAnswer == "" {
			return -1, false
		}

		userAnswer = strings.ToUpper(strings.TrimSpace(userAnswer))
		if len(userAnswer) == 1 {
			letter := userAnswer[0]
			if letter >= 'A' && letter <= maxLetter {
				return int(letter - 'A'), true
			}
		}

		if attempt < maxAttempts {
			fmt.Fprintf(out, "\nInvalid input. Please enter a letter A-%c.\n", maxLetter)
		}
	}

	return -1, false
}
