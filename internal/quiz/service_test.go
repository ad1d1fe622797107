package quiz_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"quiz-master/internal/opentdb"
	"quiz-master/internal/quiz"
	"quiz-master/internal/quiz/sqlite"
)

var testAdmin = quiz.AdminAccount{Username: "admin", Password: "admin123", FullName: "Admin User"}

func newTestService(t *testing.T, fetcher quiz.QuestionsFetcher) *quiz.Service {
	t.Helper()
	svc, _ := newTestServiceWithStore(t, fetcher)
	return svc
}

func newTestServiceWithStore(t *testing.T, fetcher quiz.QuestionsFetcher) (*quiz.Service, *sqlite.SQLiteStore) {
	t.Helper()

	store, err := sqlite.NewSQLiteStore(filepath.Join(t.TempDir(), "service.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	svc := quiz.NewService(store, nil, testAdmin, fetcher)
	if err := svc.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}
	return svc, store
}

func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format(quiz.DateLayout)
}

// seedQuiz builds Math > Algebra > Quiz1 with one "2+2=?" question.
func seedQuiz(t *testing.T, svc *quiz.Service) int64 {
	t.Helper()
	ctx := context.Background()

	subjectID, err := svc.CreateSubject(ctx, quiz.SubjectInput{Name: "Math"})
	if err != nil {
		t.Fatalf("CreateSubject failed: %v", err)
	}
	chapterID, err := svc.CreateChapter(ctx, quiz.ChapterInput{SubjectID: subjectID, Name: "Algebra"})
	if err != nil {
		t.Fatalf("CreateChapter failed: %v", err)
	}
	quizID, err := svc.CreateQuiz(ctx, quiz.QuizInput{
		ChapterID:    chapterID,
		Name:         "Quiz1",
		DateOfQuiz:   futureDate(),
		TimeDuration: "00:10",
	})
	if err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}
	if _, err := svc.CreateQuestion(ctx, quiz.QuestionInput{
		QuizID:        quizID,
		Statement:     "2+2=?",
		Option1:       "3",
		Option2:       "4",
		Option3:       "5",
		Option4:       "6",
		CorrectOption: 2,
	}); err != nil {
		t.Fatalf("CreateQuestion failed: %v", err)
	}
	return quizID
}

func registerUser(t *testing.T, svc *quiz.Service, username string) quiz.User {
	t.Helper()
	user, err := svc.Register(context.Background(), quiz.RegisterInput{
		Username:        username,
		Password:        "pw",
		ConfirmPassword: "pw",
		FullName:        "Test " + username,
	})
	if err != nil {
		t.Fatalf("Register(%s) failed: %v", username, err)
	}
	return user
}

func TestEndToEndQuizAttempt(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	role, err := svc.ValidateLogin(ctx, "admin", "admin123")
	if err != nil || role != quiz.RoleAdmin {
		t.Fatalf("admin login = (%q, %v)", role, err)
	}

	quizID := seedQuiz(t, svc)
	alice := registerUser(t, svc, "alice")

	role, err = svc.ValidateLogin(ctx, "alice", "pw")
	if err != nil || role != quiz.RoleUser {
		t.Fatalf("user login = (%q, %v)", role, err)
	}

	active, err := svc.ListActiveQuizzes(ctx)
	if err != nil {
		t.Fatalf("ListActiveQuizzes failed: %v", err)
	}
	if len(active) != 1 || active[0].ID != quizID || !active[0].IsActive {
		t.Fatalf("unexpected active quizzes: %+v", active)
	}

	sheet, err := svc.StartAttempt(ctx, alice.ID, quizID)
	if err != nil {
		t.Fatalf("StartAttempt failed: %v", err)
	}
	if len(sheet.Questions) != 1 {
		t.Fatalf("expected one question, got %d", len(sheet.Questions))
	}

	score, err := svc.SubmitAttempt(ctx, alice.ID, quizID, map[int64]string{sheet.Questions[0].ID: "4"})
	if err != nil {
		t.Fatalf("SubmitAttempt failed: %v", err)
	}
	if score.TotalScored != 1 || score.TotalQuestions != 1 || score.Percentage() != 100 {
		t.Fatalf("unexpected score: %+v", score)
	}

	if _, err := svc.StartAttempt(ctx, alice.ID, quizID); !errors.Is(err, quiz.ErrAlreadyAttempted) {
		t.Fatalf("expected ErrAlreadyAttempted on retake, got %v", err)
	}
	if _, err := svc.SubmitAttempt(ctx, alice.ID, quizID, nil); !errors.Is(err, quiz.ErrAlreadyAttempted) {
		t.Fatalf("expected ErrAlreadyAttempted on resubmit, got %v", err)
	}

	summary, err := svc.MyScores(ctx, alice.ID)
	if err != nil {
		t.Fatalf("MyScores failed: %v", err)
	}
	if summary.TotalAttempts != 1 || summary.AvgScore != 100 || summary.BestScore != 100 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.Scores[0].QuizName != "Quiz1" {
		t.Fatalf("unexpected quiz name: %q", summary.Scores[0].QuizName)
	}
}

func TestLoginRecordsLastLogin(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()
	registerUser(t, svc, "alice")

	if _, err := svc.Login(ctx, "alice", "wrong"); !errors.Is(err, quiz.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, "ghost", "pw"); !errors.Is(err, quiz.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}

	user, err := svc.Login(ctx, "alice", "pw")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	stored, err := svc.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if stored.LastLogin.IsZero() || !stored.LastLogin.Equal(user.LastLogin) {
		t.Fatalf("last login not recorded: stored=%v returned=%v", stored.LastLogin, user.LastLogin)
	}
}

func TestRegisterRejectsDuplicatesAndMismatches(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()
	registerUser(t, svc, "alice")

	_, err := svc.Register(ctx, quiz.RegisterInput{Username: "alice", Password: "x", ConfirmPassword: "x"})
	if !errors.Is(err, quiz.ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}

	_, err = svc.Register(ctx, quiz.RegisterInput{Username: "bob", Password: "x", ConfirmPassword: "y"})
	if !errors.Is(err, quiz.ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
	if _, err := svc.GetUserByUsername(ctx, "bob"); !errors.Is(err, quiz.ErrNotFound) {
		t.Fatalf("mismatched registration must not create a user, got %v", err)
	}

	_, err = svc.Register(ctx, quiz.RegisterInput{Username: "  ", Password: "x", ConfirmPassword: "x"})
	if !errors.Is(err, quiz.ErrValidation) {
		t.Fatalf("expected validation error for blank username, got %v", err)
	}
}

func TestAdminAccountIsProtected(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	admin, err := svc.GetUserByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("seeded admin missing: %v", err)
	}
	if err := svc.DeleteUser(ctx, admin.ID); !errors.Is(err, quiz.ErrProtectedAccount) {
		t.Fatalf("expected ErrProtectedAccount, got %v", err)
	}

	err = svc.UpdateUser(ctx, admin.ID, quiz.UserInput{FullName: "Admin User", Role: quiz.RoleUser})
	if !errors.Is(err, quiz.ErrValidation) {
		t.Fatalf("expected demotion of seeded admin to be rejected, got %v", err)
	}

	// A second bootstrap leaves the single admin in place.
	if err := svc.Bootstrap(ctx); err != nil {
		t.Fatalf("second Bootstrap failed: %v", err)
	}
	users, err := svc.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected one user after double bootstrap, got %d", len(users))
	}
}

func TestRoleChangesApplyImmediately(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")

	isAdmin, err := svc.IsAdmin(ctx, "alice")
	if err != nil || isAdmin {
		t.Fatalf("IsAdmin before promotion = (%v, %v)", isAdmin, err)
	}
	if err := svc.UpdateUser(ctx, alice.ID, quiz.UserInput{FullName: "Alice", Role: quiz.RoleAdmin}); err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}
	isAdmin, err = svc.IsAdmin(ctx, "alice")
	if err != nil || !isAdmin {
		t.Fatalf("IsAdmin after promotion = (%v, %v)", isAdmin, err)
	}

	if err := svc.DeleteUser(ctx, alice.ID); !errors.Is(err, quiz.ErrProtectedAccount) {
		t.Fatalf("promoted admin must not be deletable, got %v", err)
	}
}

func TestDeleteUserWithAttemptsBlocked(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()
	quizID := seedQuiz(t, svc)
	alice := registerUser(t, svc, "alice")
	bob := registerUser(t, svc, "bob")

	if _, err := svc.SubmitAttempt(ctx, alice.ID, quizID, nil); err != nil {
		t.Fatalf("SubmitAttempt failed: %v", err)
	}
	if err := svc.DeleteUser(ctx, alice.ID); !errors.Is(err, quiz.ErrHasDependents) {
		t.Fatalf("expected ErrHasDependents, got %v", err)
	}
	if err := svc.DeleteUser(ctx, bob.ID); err != nil {
		t.Fatalf("DeleteUser(bob) failed: %v", err)
	}
}

func TestCatalogValidation(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()
	quizID := seedQuiz(t, svc)

	quizItem, err := svc.GetQuiz(ctx, quizID)
	if err != nil {
		t.Fatalf("GetQuiz failed: %v", err)
	}

	base := quiz.QuizInput{ChapterID: quizItem.ChapterID, Name: "Quiz2", DateOfQuiz: futureDate(), TimeDuration: "00:10"}

	bad := base
	bad.TimeDuration = "25:00"
	if _, err := svc.CreateQuiz(ctx, bad); !errors.Is(err, quiz.ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration, got %v", err)
	}

	bad = base
	bad.DateOfQuiz = time.Now().AddDate(0, 0, -2).Format(quiz.DateLayout)
	if _, err := svc.CreateQuiz(ctx, bad); !errors.Is(err, quiz.ErrValidation) {
		t.Fatalf("expected past date to be rejected, got %v", err)
	}

	bad = base
	bad.ChapterID = 999
	var vErr *quiz.ValidationError
	if _, err := svc.CreateQuiz(ctx, bad); !errors.As(err, &vErr) || vErr.Field != "chapter_id" {
		t.Fatalf("expected chapter_id error, got %v", err)
	}

	if _, err := svc.CreateChapter(ctx, quiz.ChapterInput{SubjectID: 999, Name: "Orphan"}); !errors.As(err, &vErr) || vErr.Field != "subject_id" {
		t.Fatalf("expected subject_id error, got %v", err)
	}

	_, err = svc.CreateQuestion(ctx, quiz.QuestionInput{
		QuizID:        quizID,
		Statement:     "Pick three",
		Option1:       "1",
		Option2:       "2",
		CorrectOption: 3,
	})
	if !errors.As(err, &vErr) || vErr.Field != "correct_option" {
		t.Fatalf("expected correct_option error for empty slot, got %v", err)
	}

	if _, err := svc.CreateSubject(ctx, quiz.SubjectInput{Name: "   "}); !errors.Is(err, quiz.ErrValidation) {
		t.Fatalf("expected blank subject name to be rejected, got %v", err)
	}
}

func TestUpdateQuizCanDeactivate(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()
	quizID := seedQuiz(t, svc)
	alice := registerUser(t, svc, "alice")

	quizItem, err := svc.GetQuiz(ctx, quizID)
	if err != nil {
		t.Fatalf("GetQuiz failed: %v", err)
	}
	err = svc.UpdateQuiz(ctx, quizID, quiz.QuizInput{
		ChapterID:    quizItem.ChapterID,
		Name:         "Quiz1 renamed",
		DateOfQuiz:   quizItem.DateOfQuiz,
		TimeDuration: "01:00",
		IsActive:     false,
	})
	if err != nil {
		t.Fatalf("UpdateQuiz failed: %v", err)
	}

	if _, err := svc.StartAttempt(ctx, alice.ID, quizID); !errors.Is(err, quiz.ErrQuizUnavailable) {
		t.Fatalf("expected ErrQuizUnavailable for inactive quiz, got %v", err)
	}
	active, err := svc.ListActiveQuizzes(ctx)
	if err != nil || len(active) != 0 {
		t.Fatalf("inactive quiz listed: %+v (%v)", active, err)
	}
}

func TestPastQuizCanBeDeactivatedButNotMovedIntoThePast(t *testing.T) {
	svc, store := newTestServiceWithStore(t, nil)
	ctx := context.Background()
	quizID := seedQuiz(t, svc)

	current, err := svc.GetQuiz(ctx, quizID)
	if err != nil {
		t.Fatalf("GetQuiz failed: %v", err)
	}
	pastID, err := store.CreateQuiz(ctx, quiz.Quiz{
		ChapterID:    current.ChapterID,
		Name:         "Old quiz",
		DateOfQuiz:   "2020-01-01",
		TimeDuration: "00:10",
		IsActive:     true,
	})
	if err != nil {
		t.Fatalf("store.CreateQuiz failed: %v", err)
	}

	err = svc.UpdateQuiz(ctx, pastID, quiz.QuizInput{
		ChapterID:    current.ChapterID,
		Name:         " Old quiz ",
		DateOfQuiz:   "2020-01-01",
		TimeDuration: "00:10",
		IsActive:     false,
	})
	if err != nil {
		t.Fatalf("deactivating a past quiz failed: %v", err)
	}
	past, err := svc.GetQuiz(ctx, pastID)
	if err != nil {
		t.Fatalf("GetQuiz failed: %v", err)
	}
	if past.IsActive || past.DateOfQuiz != "2020-01-01" {
		t.Fatalf("unexpected quiz after update: %+v", past)
	}

	err = svc.UpdateQuiz(ctx, quizID, quiz.QuizInput{
		ChapterID:    current.ChapterID,
		Name:         current.Name,
		DateOfQuiz:   time.Now().AddDate(0, 0, -3).Format(quiz.DateLayout),
		TimeDuration: current.TimeDuration,
		IsActive:     true,
	})
	var vErr *quiz.ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "date_of_quiz" {
		t.Fatalf("expected date_of_quiz error when moving a quiz into the past, got %v", err)
	}
	unchanged, err := svc.GetQuiz(ctx, quizID)
	if err != nil || unchanged.DateOfQuiz != current.DateOfQuiz {
		t.Fatalf("rejected update changed the quiz: %+v (%v)", unchanged, err)
	}

	err = svc.UpdateQuiz(ctx, 999, quiz.QuizInput{ChapterID: current.ChapterID, Name: "Ghost", DateOfQuiz: futureDate(), TimeDuration: "00:10"})
	if !errors.Is(err, quiz.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a missing quiz, got %v", err)
	}
}

func TestLoginTrimsUsername(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()
	registerUser(t, svc, " bob ")

	user, err := svc.Login(ctx, " bob ", "pw")
	if err != nil {
		t.Fatalf("Login with padded username failed: %v", err)
	}
	if user.Username != "bob" {
		t.Fatalf("stored username = %q, want %q", user.Username, "bob")
	}
	if role, err := svc.ValidateLogin(ctx, "bob\t", "pw"); err != nil || role != quiz.RoleUser {
		t.Fatalf("ValidateLogin = (%q, %v), want (%q, nil)", role, err, quiz.RoleUser)
	}
}

func TestEmptyQuizCannotBeStarted(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")

	subjectID, _ := svc.CreateSubject(ctx, quiz.SubjectInput{Name: "Science"})
	chapterID, _ := svc.CreateChapter(ctx, quiz.ChapterInput{SubjectID: subjectID, Name: "Physics"})
	quizID, err := svc.CreateQuiz(ctx, quiz.QuizInput{ChapterID: chapterID, Name: "Empty", DateOfQuiz: futureDate(), TimeDuration: "00:05"})
	if err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}

	if _, err := svc.SubmitAttempt(ctx, alice.ID, quizID, nil); !errors.Is(err, quiz.ErrQuizUnavailable) {
		t.Fatalf("expected ErrQuizUnavailable, got %v", err)
	}
	summary, err := svc.MyScores(ctx, alice.ID)
	if err != nil || summary.TotalAttempts != 0 {
		t.Fatalf("no score should be recorded: %+v (%v)", summary, err)
	}
}

func TestUpdateProfile(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")

	_, err := svc.UpdateProfile(ctx, alice.ID, quiz.ProfileInput{FullName: "Alice", NewPassword: "a", ConfirmPassword: "b"})
	if !errors.Is(err, quiz.ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
	if _, err := svc.ValidateLogin(ctx, "alice", "pw"); err != nil {
		t.Fatalf("password must be unchanged after mismatch: %v", err)
	}

	updated, err := svc.UpdateProfile(ctx, alice.ID, quiz.ProfileInput{
		FullName:        "Alice Liddell",
		Qualification:   "MSc",
		DateOfBirth:     "1999-12-31",
		Email:           "alice@example.com",
		NewPassword:     "newpw",
		ConfirmPassword: "newpw",
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if updated.FullName != "Alice Liddell" || updated.Role != quiz.RoleUser {
		t.Fatalf("unexpected updated user: %+v", updated)
	}
	if _, err := svc.ValidateLogin(ctx, "alice", "newpw"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
	if _, err := svc.ValidateLogin(ctx, "alice", "pw"); !errors.Is(err, quiz.ErrInvalidCredentials) {
		t.Fatalf("old password still accepted: %v", err)
	}
}

func TestReportsAndCSV(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()
	quizID := seedQuiz(t, svc)
	alice := registerUser(t, svc, "alice")
	bob := registerUser(t, svc, "bob")
	registerUser(t, svc, "carol")

	sheet, err := svc.StartAttempt(ctx, alice.ID, quizID)
	if err != nil {
		t.Fatalf("StartAttempt failed: %v", err)
	}
	questionID := sheet.Questions[0].ID
	if _, err := svc.SubmitAttempt(ctx, alice.ID, quizID, map[int64]string{questionID: "4"}); err != nil {
		t.Fatalf("alice submit failed: %v", err)
	}
	if _, err := svc.SubmitAttempt(ctx, bob.ID, quizID, map[int64]string{questionID: "3"}); err != nil {
		t.Fatalf("bob submit failed: %v", err)
	}

	quizStats, err := svc.QuizStatistics(ctx)
	if err != nil {
		t.Fatalf("QuizStatistics failed: %v", err)
	}
	if len(quizStats) != 1 || quizStats[0].Attempts != 2 || quizStats[0].AvgScore != 50 {
		t.Fatalf("unexpected quiz stats: %+v", quizStats)
	}

	userStats, err := svc.UserStatistics(ctx)
	if err != nil {
		t.Fatalf("UserStatistics failed: %v", err)
	}
	if len(userStats) != 2 {
		t.Fatalf("expected carol to be excluded, got %+v", userStats)
	}

	var buf bytes.Buffer
	if err := svc.WriteScoresCSV(ctx, &buf); err != nil {
		t.Fatalf("WriteScoresCSV failed: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("scores csv unreadable: %v", err)
	}
	if len(records) != 3 || records[0][0] != "quiz" || records[1][1] != "alice" || records[1][4] != "100.00" || records[2][4] != "0.00" {
		t.Fatalf("unexpected scores csv: %v", records)
	}

	buf.Reset()
	if err := svc.WriteUserStatsCSV(ctx, &buf); err != nil {
		t.Fatalf("WriteUserStatsCSV failed: %v", err)
	}
	records, err = csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("user stats csv unreadable: %v", err)
	}
	if len(records) != 3 || records[0][0] != "username" || records[1][0] != "alice" || records[1][2] != "1" {
		t.Fatalf("unexpected user stats csv: %v", records)
	}
}

func TestImportQuestions(t *testing.T) {
	var requested int
	fetcher := func(ctx context.Context, amount int) ([]opentdb.RawQuestion, error) {
		requested = amount
		return []opentdb.RawQuestion{
			{Question: "Capital of France?", CorrectAnswer: "Paris", IncorrectAnswers: []string{"Rome", "Berlin", "Madrid"}},
			{Question: "Too many", CorrectAnswer: "a", IncorrectAnswers: []string{"b", "c", "d", "e"}},
			{Question: "True?", CorrectAnswer: "Yes", IncorrectAnswers: []string{"No"}},
		}, nil
	}
	svc := newTestService(t, fetcher)
	ctx := context.Background()
	quizID := seedQuiz(t, svc)

	imported, err := svc.ImportQuestions(ctx, quizID, 3)
	if err != nil {
		t.Fatalf("ImportQuestions failed: %v", err)
	}
	if requested != 3 || imported != 2 {
		t.Fatalf("requested=%d imported=%d, want 3 and 2", requested, imported)
	}

	questions, err := svc.ListQuestions(ctx, quizID)
	if err != nil {
		t.Fatalf("ListQuestions failed: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	for _, question := range questions[1:] {
		slots := question.Slots()
		correct := slots[question.CorrectOption-1]
		if correct != "Paris" && correct != "Yes" {
			t.Fatalf("correct slot points at %q in %+v", correct, question)
		}
	}

	if _, err := svc.ImportQuestions(ctx, 999, 3); !errors.Is(err, quiz.ErrValidation) {
		t.Fatalf("expected missing quiz to be rejected, got %v", err)
	}

	withoutFetcher := newTestService(t, nil)
	if _, err := withoutFetcher.ImportQuestions(ctx, quizID, 3); err == nil {
		t.Fatalf("expected error without a fetcher")
	}
}

func TestBcryptServiceLogin(t *testing.T) {
	store, err := sqlite.NewSQLiteStore(filepath.Join(t.TempDir(), "bcrypt.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	defer store.Close()

	svc := quiz.NewService(store, quiz.BcryptPasswords{Cost: 4}, testAdmin, nil)
	ctx := context.Background()
	if err := svc.Bootstrap(ctx); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}

	admin, err := svc.GetUserByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("GetUserByUsername failed: %v", err)
	}
	if admin.Password == "admin123" {
		t.Fatalf("password stored in plaintext")
	}
	if role, err := svc.ValidateLogin(ctx, "admin", "admin123"); err != nil || role != quiz.RoleAdmin {
		t.Fatalf("bcrypt admin login = (%q, %v)", role, err)
	}
}
