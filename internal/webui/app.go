package webui

import (
	"html/template"
	"log"

	"quiz-master/internal/quiz"
	"quiz-master/internal/session"
)

type App struct {
	service    *quiz.Service
	sessions   *session.Store
	logger     *log.Logger
	pages      map[string]*template.Template
	adminViews map[session.AdminMenu]adminView
	userViews  map[session.UserMenu]userView
}

func NewApp(service *quiz.Service, sessions *session.Store, logger *log.Logger) (*App, error) {
	if sessions == nil {
		sessions = session.NewStore(session.DefaultTTL)
	}
	if logger == nil {
		logger = log.Default()
	}

	pages, err := parsePages()
	if err != nil {
		return nil, err
	}

	app := &App{
		service:  service,
		sessions: sessions,
		logger:   logger,
		pages:    pages,
	}
	app.adminViews = map[session.AdminMenu]adminView{
		session.AdminSubjects:  app.subjectsView,
		session.AdminChapters:  app.chaptersView,
		session.AdminQuizzes:   app.quizzesView,
		session.AdminQuestions: app.questionsView,
		session.AdminUsers:     app.usersView,
		session.AdminReports:   app.reportsView,
	}
	app.userViews = map[session.UserMenu]userView{
		session.UserAvailableQuizzes: app.availableQuizzesView,
		session.UserTakeQuiz:         app.takeQuizView,
		session.UserMyScores:         app.myScoresView,
		session.UserProfile:          app.profileView,
	}
	return app, nil
}

// viewer is the signed-in caller of a request.
type viewer struct {
	sess session.Session
	user quiz.User
}
