package webui

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"time"

	"quiz-master/internal/quiz"
)

const maxLogBytes = 512

// statusRecorder captures the status code, byte count and the head of the
// response body for the request log.
type statusRecorder struct {
	http.ResponseWriter
	statusCode   int
	maxLogBytes  int
	logBody      bytes.Buffer
	bytesWritten int
	truncated    bool
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if room := r.maxLogBytes - r.logBody.Len(); room > 0 {
		if len(p) > room {
			r.logBody.Write(p[:room])
			r.truncated = true
		} else {
			r.logBody.Write(p)
		}
	} else if len(p) > 0 {
		r.truncated = true
	}

	n, err := r.ResponseWriter.Write(p)
	r.bytesWritten += n
	return n, err
}

func logRequests(logger *log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
			maxLogBytes:    maxLogBytes,
		}

		next.ServeHTTP(recorder, r)

		if recorder.statusCode >= http.StatusInternalServerError {
			suffix := ""
			if recorder.truncated {
				suffix = "..."
			}
			logger.Printf("method=%s path=%s status=%d bytes=%d duration=%s body=%q%s",
				r.Method, r.URL.Path, recorder.statusCode, recorder.bytesWritten,
				time.Since(start).Round(time.Millisecond), recorder.logBody.String(), suffix)
			return
		}
		logger.Printf("method=%s path=%s status=%d bytes=%d duration=%s",
			r.Method, r.URL.Path, recorder.statusCode, recorder.bytesWritten,
			time.Since(start).Round(time.Millisecond))
	})
}

type viewerHandler func(w http.ResponseWriter, r *http.Request, v viewer)

// requireSession resolves the session cookie and reloads the user on every
// request; a missing or stale session goes back to the login page.
func (a *App) requireSession(next viewerHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, ok, err := a.currentViewer(r)
		if err != nil {
			a.fail(w, r, err)
			return
		}
		if !ok {
			clearSessionCookie(w)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r, v)
	}
}

// requireAdmin re-reads the stored role for every request, so a demotion
// takes effect on the next click.
func (a *App) requireAdmin(next viewerHandler) http.HandlerFunc {
	return a.requireSession(func(w http.ResponseWriter, r *http.Request, v viewer) {
		isAdmin, err := a.service.IsAdmin(r.Context(), v.user.Username)
		if err != nil {
			a.fail(w, r, err)
			return
		}
		if !isAdmin {
			a.renderError(w, v, http.StatusForbidden, "Administrator access required.")
			return
		}
		next(w, r, v)
	})
}

func (a *App) currentViewer(r *http.Request) (viewer, bool, error) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		return viewer{}, false, nil
	}
	sess, ok := a.sessions.Get(cookie.Value)
	if !ok {
		return viewer{}, false, nil
	}

	user, err := a.service.GetUser(r.Context(), sess.UserID)
	if err != nil {
		if errors.Is(err, quiz.ErrNotFound) {
			a.sessions.Delete(sess.ID)
			return viewer{}, false, nil
		}
		return viewer{}, false, err
	}
	return viewer{sess: sess, user: user}, true, nil
}
