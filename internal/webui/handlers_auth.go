package webui

import (
	"errors"
	"net/http"

	"quiz-master/internal/quiz"
	"quiz-master/internal/session"
)

// HandleRoot sends the browser to the screen its session was last on.
func (a *App) HandleRoot(w http.ResponseWriter, r *http.Request) {
	v, ok, err := a.currentViewer(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, v.sess.Location(), http.StatusSeeOther)
}

func (a *App) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	p := page{Title: "Login"}
	if r.URL.Query().Get("registered") == "1" {
		p.Flash = "Registration successful. Please log in."
	}
	a.render(w, http.StatusOK, "login", p)
}

func (a *App) HandleLogin(w http.ResponseWriter, r *http.Request) {
	user, err := a.service.Login(r.Context(), r.FormValue("username"), r.FormValue("password"))
	if err != nil {
		status, message, ok := statusForError(err)
		if !ok {
			a.fail(w, r, err)
			return
		}
		a.render(w, status, "login", page{
			Title: "Login",
			Error: message,
			Data:  map[string]any{"Username": r.FormValue("username")},
		})
		return
	}

	sess := a.sessions.Create(user.ID, user.Username)
	setSessionCookie(w, sess.ID)
	http.Redirect(w, r, sess.Location(), http.StatusSeeOther)
}

func (a *App) HandleRegisterPage(w http.ResponseWriter, r *http.Request) {
	a.render(w, http.StatusOK, "register", page{Title: "Register"})
}

func (a *App) HandleRegister(w http.ResponseWriter, r *http.Request) {
	input := quiz.RegisterInput{
		Username:        r.FormValue("username"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm_password"),
		FullName:        r.FormValue("full_name"),
		Email:           r.FormValue("email"),
	}
	if _, err := a.service.Register(r.Context(), input); err != nil {
		status, message, ok := statusForError(err)
		if !ok {
			a.fail(w, r, err)
			return
		}
		if errors.Is(err, quiz.ErrDuplicateUser) {
			message = "Username already exists."
		}
		a.render(w, status, "register", page{
			Title: "Register",
			Error: message,
			Data: map[string]any{
				"Username": input.Username,
				"FullName": input.FullName,
				"Email":    input.Email,
			},
		})
		return
	}
	http.Redirect(w, r, "/login?registered=1", http.StatusSeeOther)
}

func (a *App) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		a.sessions.Delete(cookie.Value)
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (a *App) handleDashboard(w http.ResponseWriter, r *http.Request, v viewer) {
	a.sessions.Update(v.sess.ID, func(s *session.Session) {
		s.Page = session.PageDashboard
	})

	p := a.pageFor(v, "Dashboard")
	p.Data = map[string]any{
		"HomeTitle": "User Dashboard",
		"HomePath":  "/user",
	}
	if p.IsAdmin {
		p.Data["HomeTitle"] = "Admin Dashboard"
		p.Data["HomePath"] = "/admin"
	}
	a.render(w, http.StatusOK, "dashboard", p)
}
