package webui

import (
	"net/http"
)

func NewRouter(app *App) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", app.HandleRoot)
	mux.HandleFunc("GET /login", app.HandleLoginPage)
	mux.HandleFunc("POST /login", app.HandleLogin)
	mux.HandleFunc("GET /register", app.HandleRegisterPage)
	mux.HandleFunc("POST /register", app.HandleRegister)
	mux.HandleFunc("POST /logout", app.HandleLogout)
	mux.HandleFunc("GET /dashboard", app.requireSession(app.handleDashboard))

	mux.HandleFunc("GET /admin", app.requireAdmin(app.handleAdminHome))
	mux.HandleFunc("GET /admin/{menu}", app.requireAdmin(app.handleAdminMenu))

	mux.HandleFunc("POST /admin/subjects", app.requireAdmin(app.handleCreateSubject))
	mux.HandleFunc("POST /admin/subjects/{id}", app.requireAdmin(app.handleUpdateSubject))
	mux.HandleFunc("POST /admin/subjects/{id}/delete", app.requireAdmin(app.handleDeleteSubject))

	mux.HandleFunc("POST /admin/chapters", app.requireAdmin(app.handleCreateChapter))
	mux.HandleFunc("POST /admin/chapters/{id}", app.requireAdmin(app.handleUpdateChapter))
	mux.HandleFunc("POST /admin/chapters/{id}/delete", app.requireAdmin(app.handleDeleteChapter))

	mux.HandleFunc("POST /admin/quizzes", app.requireAdmin(app.handleCreateQuiz))
	mux.HandleFunc("POST /admin/quizzes/{id}", app.requireAdmin(app.handleUpdateQuiz))
	mux.HandleFunc("POST /admin/quizzes/{id}/delete", app.requireAdmin(app.handleDeleteQuiz))

	mux.HandleFunc("POST /admin/questions", app.requireAdmin(app.handleCreateQuestion))
	mux.HandleFunc("POST /admin/questions/import", app.requireAdmin(app.handleImportQuestions))
	mux.HandleFunc("POST /admin/questions/{id}", app.requireAdmin(app.handleUpdateQuestion))
	mux.HandleFunc("POST /admin/questions/{id}/delete", app.requireAdmin(app.handleDeleteQuestion))

	mux.HandleFunc("POST /admin/users/{id}", app.requireAdmin(app.handleUpdateUser))
	mux.HandleFunc("POST /admin/users/{id}/delete", app.requireAdmin(app.handleDeleteUser))

	mux.HandleFunc("GET /admin/reports/quiz-results.csv", app.requireAdmin(app.handleScoresCSV))
	mux.HandleFunc("GET /admin/reports/user-stats.csv", app.requireAdmin(app.handleUserStatsCSV))

	mux.HandleFunc("GET /user", app.requireSession(app.handleUserHome))
	mux.HandleFunc("GET /user/{menu}", app.requireSession(app.handleUserMenu))
	mux.HandleFunc("POST /user/take/{quiz_id}", app.requireSession(app.handleSubmitQuiz))
	mux.HandleFunc("POST /user/profile", app.requireSession(app.handleUpdateProfile))

	return logRequests(app.logger, mux)
}
