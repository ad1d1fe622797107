package webui

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"quiz-master/internal/quiz"
	"quiz-master/internal/session"
)

const sessionCookie = "quiz_session"

type navItem struct {
	Title  string
	Path   string
	Active bool
}

// page is the data every template receives. Data holds the view-specific
// values.
type page struct {
	Title   string
	User    *quiz.User
	IsAdmin bool
	Nav     []navItem
	Flash   string
	Error   string
	Data    map[string]any
}

func (a *App) render(w http.ResponseWriter, status int, name string, p page) {
	tmpl, ok := a.pages[name]
	if !ok {
		a.logger.Printf("render failed page=%s err=template not found", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", p); err != nil {
		a.logger.Printf("render failed page=%s err=%v", name, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// fail is the hard stop for errors the user cannot fix from a form.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error) {
	a.logger.Printf("request failed method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	a.render(w, http.StatusInternalServerError, "error", page{
		Title: "Error",
		Error: "Something went wrong. Please try again later.",
	})
}

func (a *App) renderError(w http.ResponseWriter, v viewer, status int, message string) {
	user := v.user
	a.render(w, status, "error", page{
		Title:   http.StatusText(status),
		User:    &user,
		IsAdmin: user.IsAdmin(),
		Error:   message,
	})
}

// statusForError maps recoverable service errors to an HTTP status and an
// inline message. ok is false for anything that should be a hard stop.
func statusForError(err error) (status int, message string, ok bool) {
	var validationErr *quiz.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusUnprocessableEntity, validationErr.Message, true
	case errors.Is(err, quiz.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid username or password.", true
	case errors.Is(err, quiz.ErrDuplicateUser),
		errors.Is(err, quiz.ErrHasDependents),
		errors.Is(err, quiz.ErrProtectedAccount),
		errors.Is(err, quiz.ErrAlreadyAttempted),
		errors.Is(err, quiz.ErrQuizUnavailable):
		return http.StatusConflict, err.Error(), true
	case errors.Is(err, quiz.ErrNotFound):
		return http.StatusNotFound, "The requested record no longer exists.", true
	default:
		return 0, "", false
	}
}

func (a *App) pageFor(v viewer, title string) page {
	user := v.user
	return page{
		Title:   title,
		User:    &user,
		IsAdmin: user.IsAdmin(),
		Flash:   a.sessions.PopFlash(v.sess.ID),
	}
}

func adminNav(active session.AdminMenu) []navItem {
	items := make([]navItem, 0, len(session.AdminMenus()))
	for _, menu := range session.AdminMenus() {
		items = append(items, navItem{Title: menu.Title(), Path: menu.Path(), Active: menu == active})
	}
	return items
}

func userNav(active session.UserMenu) []navItem {
	items := make([]navItem, 0, len(session.UserMenus()))
	for _, menu := range session.UserMenus() {
		items = append(items, navItem{Title: menu.Title(), Path: menu.Path(), Active: menu == active})
	}
	return items
}

// redirectWithFlash finishes a successful POST by redirecting, so a reload
// does not resubmit the form.
func (a *App) redirectWithFlash(w http.ResponseWriter, r *http.Request, sessionID, location, flash string) {
	if flash != "" {
		a.sessions.Update(sessionID, func(s *session.Session) {
			s.Flash = flash
		})
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}

func setSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// pathID reads a positive id path segment. Malformed ids are reported as
// ErrNotFound.
func pathID(r *http.Request, key string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(r.PathValue(key)), 10, 64)
	if err != nil || id <= 0 {
		return 0, quiz.ErrNotFound
	}
	return id, nil
}

// formInt64 returns 0 for missing or malformed values; validation reports
// the field.
func formInt64(r *http.Request, key string) int64 {
	value, err := strconv.ParseInt(strings.TrimSpace(r.FormValue(key)), 10, 64)
	if err != nil {
		return 0
	}
	return value
}

func formInt(r *http.Request, key string) int {
	value, err := strconv.Atoi(strings.TrimSpace(r.FormValue(key)))
	if err != nil {
		return 0
	}
	return value
}

func formBool(r *http.Request, key string) bool {
	value := strings.ToLower(strings.TrimSpace(r.FormValue(key)))
	return value == "1" || value == "true" || value == "on" || value == "yes"
}

func withQuery(location, key string, id int64) string {
	if id <= 0 {
		return location
	}
	return location + "?" + key + "=" + strconv.FormatInt(id, 10)
}
