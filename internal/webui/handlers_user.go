package webui

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"quiz-master/internal/quiz"
	"quiz-master/internal/session"
)

// answerPrefix namespaces the radio group of each question on the quiz form.
const answerPrefix = "q_"

type userView func(r *http.Request, v viewer) (map[string]any, error)

func (a *App) handleUserHome(w http.ResponseWriter, r *http.Request, v viewer) {
	http.Redirect(w, r, v.sess.UserMenu.Path(), http.StatusSeeOther)
}

func (a *App) handleUserMenu(w http.ResponseWriter, r *http.Request, v viewer) {
	menu, ok := session.ParseUserMenu(r.PathValue("menu"))
	if !ok {
		a.renderError(w, v, http.StatusNotFound, "Page not found.")
		return
	}
	a.sessions.Update(v.sess.ID, func(s *session.Session) {
		s.Page = session.PageUserDashboard
		s.UserMenu = menu
	})
	a.renderUser(w, r, v, menu, http.StatusOK, "")
}

func (a *App) renderUser(w http.ResponseWriter, r *http.Request, v viewer, menu session.UserMenu, status int, message string) {
	view, ok := a.userViews[menu]
	if !ok {
		a.fail(w, r, fmt.Errorf("no view registered for user menu %q", menu.Slug()))
		return
	}

	data, err := view(r, v)
	if err != nil {
		viewStatus, viewMessage, recoverable := statusForError(err)
		if !recoverable || data == nil {
			a.fail(w, r, err)
			return
		}
		if message == "" {
			status, message = viewStatus, viewMessage
		}
	}

	p := a.pageFor(v, menu.Title())
	p.Nav = userNav(menu)
	p.Error = message
	p.Data = data
	a.render(w, status, "user_"+menu.Slug(), p)
}

func (a *App) userResult(w http.ResponseWriter, r *http.Request, v viewer, menu session.UserMenu, err error, location, flash string) {
	if err == nil {
		a.redirectWithFlash(w, r, v.sess.ID, location, flash)
		return
	}
	status, message, ok := statusForError(err)
	if !ok {
		a.fail(w, r, err)
		return
	}
	a.renderUser(w, r, v, menu, status, message)
}

func (a *App) availableQuizzesView(r *http.Request, _ viewer) (map[string]any, error) {
	quizzes, err := a.service.ListActiveQuizzes(r.Context())
	if err != nil {
		return nil, err
	}
	return map[string]any{"Quizzes": quizzes}, nil
}

// takeQuizView renders the quiz picker and, once a quiz is chosen, its
// questions. A blocked attempt still returns the picker data.
func (a *App) takeQuizView(r *http.Request, v viewer) (map[string]any, error) {
	options, err := a.service.QuizOptions(r.Context(), true)
	if err != nil {
		return nil, err
	}
	selected := formInt64(r, "quiz_id")
	data := map[string]any{
		"Quizzes":      options,
		"SelectedQuiz": selected,
	}
	if selected <= 0 {
		return data, nil
	}

	sheet, err := a.service.StartAttempt(r.Context(), v.user.ID, selected)
	if err != nil {
		return data, err
	}
	data["Sheet"] = sheet
	return data, nil
}

func (a *App) handleSubmitQuiz(w http.ResponseWriter, r *http.Request, v viewer) {
	quizID, err := pathID(r, "quiz_id")
	var score quiz.Score
	if err == nil {
		score, err = a.service.SubmitAttempt(r.Context(), v.user.ID, quizID, collectAnswers(r))
	}
	flash := fmt.Sprintf("Quiz submitted! Your score: %s", scoreMessage(score))
	a.userResult(w, r, v, session.UserTakeQuiz, err, session.UserMyScores.Path(), flash)
}

// collectAnswers maps question id to the chosen option text.
func collectAnswers(r *http.Request) map[int64]string {
	answers := make(map[int64]string)
	if err := r.ParseForm(); err != nil {
		return answers
	}
	for key, values := range r.PostForm {
		if !strings.HasPrefix(key, answerPrefix) || len(values) == 0 {
			continue
		}
		id, err := strconv.ParseInt(strings.TrimPrefix(key, answerPrefix), 10, 64)
		if err != nil {
			continue
		}
		answers[id] = values[0]
	}
	return answers
}

func scoreMessage(score quiz.Score) string {
	return fmt.Sprintf("%d/%d (%.1f%%)", score.TotalScored, score.TotalQuestions, score.Percentage())
}

func (a *App) myScoresView(r *http.Request, v viewer) (map[string]any, error) {
	summary, err := a.service.MyScores(r.Context(), v.user.ID)
	if err != nil {
		return nil, err
	}
	return map[string]any{"Summary": summary}, nil
}

func (a *App) profileView(_ *http.Request, v viewer) (map[string]any, error) {
	return map[string]any{"Profile": v.user}, nil
}

func (a *App) handleUpdateProfile(w http.ResponseWriter, r *http.Request, v viewer) {
	_, err := a.service.UpdateProfile(r.Context(), v.user.ID, quiz.ProfileInput{
		FullName:        r.FormValue("full_name"),
		Qualification:   r.FormValue("qualification"),
		DateOfBirth:     r.FormValue("dob"),
		Email:           r.FormValue("email"),
		NewPassword:     r.FormValue("new_password"),
		ConfirmPassword: r.FormValue("confirm_password"),
	})
	a.userResult(w, r, v, session.UserProfile, err, session.UserProfile.Path(), "Profile updated.")
}
