package webui

import (
	"fmt"
	"net/http"

	"quiz-master/internal/quiz"
	"quiz-master/internal/session"
)

const defaultImportAmount = 10

type adminView func(r *http.Request) (map[string]any, error)

func (a *App) handleAdminHome(w http.ResponseWriter, r *http.Request, v viewer) {
	http.Redirect(w, r, v.sess.AdminMenu.Path(), http.StatusSeeOther)
}

func (a *App) handleAdminMenu(w http.ResponseWriter, r *http.Request, v viewer) {
	menu, ok := session.ParseAdminMenu(r.PathValue("menu"))
	if !ok {
		a.renderError(w, v, http.StatusNotFound, "Page not found.")
		return
	}
	a.sessions.Update(v.sess.ID, func(s *session.Session) {
		s.Page = session.PageAdminDashboard
		s.AdminMenu = menu
	})
	a.renderAdmin(w, r, v, menu, http.StatusOK, "")
}

func (a *App) renderAdmin(w http.ResponseWriter, r *http.Request, v viewer, menu session.AdminMenu, status int, message string) {
	view, ok := a.adminViews[menu]
	if !ok {
		a.fail(w, r, fmt.Errorf("no view registered for admin menu %q", menu.Slug()))
		return
	}

	data, err := view(r)
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
	p.Nav = adminNav(menu)
	p.Error = message
	p.Data = data
	a.render(w, status, "admin_"+menu.Slug(), p)
}

// adminResult finishes a mutating admin request. Recoverable errors re-render
// the menu with an inline message; anything else is a hard stop.
func (a *App) adminResult(w http.ResponseWriter, r *http.Request, v viewer, menu session.AdminMenu, err error, location, flash string) {
	if err == nil {
		a.redirectWithFlash(w, r, v.sess.ID, location, flash)
		return
	}
	status, message, ok := statusForError(err)
	if !ok {
		a.fail(w, r, err)
		return
	}
	a.renderAdmin(w, r, v, menu, status, message)
}

// Subjects

func (a *App) subjectsView(r *http.Request) (map[string]any, error) {
	subjects, err := a.service.ListSubjects(r.Context())
	if err != nil {
		return nil, err
	}
	return map[string]any{"Subjects": subjects}, nil
}

func subjectInput(r *http.Request) quiz.SubjectInput {
	return quiz.SubjectInput{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
	}
}

func (a *App) handleCreateSubject(w http.ResponseWriter, r *http.Request, v viewer) {
	_, err := a.service.CreateSubject(r.Context(), subjectInput(r))
	a.adminResult(w, r, v, session.AdminSubjects, err, session.AdminSubjects.Path(), "Subject added.")
}

func (a *App) handleUpdateSubject(w http.ResponseWriter, r *http.Request, v viewer) {
	id, err := pathID(r, "id")
	if err == nil {
		err = a.service.UpdateSubject(r.Context(), id, subjectInput(r))
	}
	a.adminResult(w, r, v, session.AdminSubjects, err, session.AdminSubjects.Path(), "Subject updated.")
}

func (a *App) handleDeleteSubject(w http.ResponseWriter, r *http.Request, v viewer) {
	id, err := pathID(r, "id")
	if err == nil {
		err = a.service.DeleteSubject(r.Context(), id)
	}
	a.adminResult(w, r, v, session.AdminSubjects, err, session.AdminSubjects.Path(), "Subject deleted.")
}

// Chapters

func (a *App) chaptersView(r *http.Request) (map[string]any, error) {
	subjects, err := a.service.ListSubjects(r.Context())
	if err != nil {
		return nil, err
	}
	selected := formInt64(r, "subject_id")
	data := map[string]any{
		"Subjects":        subjects,
		"SelectedSubject": selected,
		"Chapters":        []quiz.Chapter{},
	}
	if selected > 0 {
		chapters, err := a.service.ListChapters(r.Context(), selected)
		if err != nil {
			return nil, err
		}
		data["Chapters"] = chapters
	}
	return data, nil
}

func chapterInput(r *http.Request) quiz.ChapterInput {
	return quiz.ChapterInput{
		SubjectID:   formInt64(r, "subject_id"),
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
	}
}

func chaptersLocation(r *http.Request) string {
	return withQuery(session.AdminChapters.Path(), "subject_id", formInt64(r, "subject_id"))
}

func (a *App) handleCreateChapter(w http.ResponseWriter, r *http.Request, v viewer) {
	_, err := a.service.CreateChapter(r.Context(), chapterInput(r))
	a.adminResult(w, r, v, session.AdminChapters, err, chaptersLocation(r), "Chapter added.")
}

func (a *App) handleUpdateChapter(w http.ResponseWriter, r *http.Request, v viewer) {
	id, err := pathID(r, "id")
	if err == nil {
		err = a.service.UpdateChapter(r.Context(), id, chapterInput(r))
	}
	a.adminResult(w, r, v, session.AdminChapters, err, chaptersLocation(r), "Chapter updated.")
}

func (a *App) handleDeleteChapter(w http.ResponseWriter, r *http.Request, v viewer) {
	id, err := pathID(r, "id")
	if err == nil {
		err = a.service.DeleteChapter(r.Context(), id)
	}
	a.adminResult(w, r, v, session.AdminChapters, err, chaptersLocation(r), "Chapter deleted.")
}

// Quizzes

func (a *App) quizzesView(r *http.Request) (map[string]any, error) {
	chapters, err := a.service.ChapterOptions(r.Context())
	if err != nil {
		return nil, err
	}
	selected := formInt64(r, "chapter_id")
	data := map[string]any{
		"Chapters":        chapters,
		"SelectedChapter": selected,
		"Quizzes":         []quiz.Quiz{},
	}
	if selected > 0 {
		quizzes, err := a.service.ListQuizzes(r.Context(), selected)
		if err != nil {
			return nil, err
		}
		data["Quizzes"] = quizzes
	}
	return data, nil
}

func quizInput(r *http.Request) quiz.QuizInput {
	return quiz.QuizInput{
		ChapterID:    formInt64(r, "chapter_id"),
		Name:         r.FormValue("name"),
		Description:  r.FormValue("description"),
		DateOfQuiz:   r.FormValue("date_of_quiz"),
		TimeDuration: r.FormValue("time_duration"),
		IsActive:     formBool(r, "is_active"),
	}
}

func quizzesLocation(r *http.Request) string {
	return withQuery(session.AdminQuizzes.Path(), "chapter_id", formInt64(r, "chapter_id"))
}

func (a *App) handleCreateQuiz(w http.ResponseWriter, r *http.Request, v viewer) {
	_, err := a.service.CreateQuiz(r.Context(), quizInput(r))
	a.adminResult(w, r, v, session.AdminQuizzes, err, quizzesLocation(r), "Quiz added.")
}

func (a *App) handleUpdateQuiz(w http.ResponseWriter, r *http.Request, v viewer) {
	id, err := pathID(r, "id")
	if err == nil {
		err = a.service.UpdateQuiz(r.Context(), id, quizInput(r))
	}
	a.adminResult(w, r, v, session.AdminQuizzes, err, quizzesLocation(r), "Quiz updated.")
}

func (a *App) handleDeleteQuiz(w http.ResponseWriter, r *http.Request, v viewer) {
	id, err := pathID(r, "id")
	if err == nil {
		err = a.service.DeleteQuiz(r.Context(), id)
	}
	a.adminResult(w, r, v, session.AdminQuizzes, err, quizzesLocation(r), "Quiz deleted.")
}

// Questions

func (a *App) questionsView(r *http.Request) (map[string]any, error) {
	quizzes, err := a.service.QuizOptions(r.Context(), true)
	if err != nil {
		return nil, err
	}
	selected := formInt64(r, "quiz_id")
	data := map[string]any{
		"Quizzes":       quizzes,
		"SelectedQuiz":  selected,
		"Questions":     []quiz.Question{},
		"ImportAmount":  defaultImportAmount,
		"OptionNumbers": []int{1, 2, 3, 4},
	}
	if selected > 0 {
		questions, err := a.service.ListQuestions(r.Context(), selected)
		if err != nil {
			return nil, err
		}
		data["Questions"] = questions
	}
	return data, nil
}

func questionInput(r *http.Request) quiz.QuestionInput {
	return quiz.QuestionInput{
		QuizID:        formInt64(r, "quiz_id"),
		Statement:     r.FormValue("question_statement"),
		Option1:       r.FormValue("option1"),
		Option2:       r.FormValue("option2"),
		Option3:       r.FormValue("option3"),
		Option4:       r.FormValue("option4"),
		CorrectOption: formInt(r, "correct_option"),
	}
}

func questionsLocation(r *http.Request) string {
	return withQuery(session.AdminQuestions.Path(), "quiz_id", formInt64(r, "quiz_id"))
}

func (a *App) handleCreateQuestion(w http.ResponseWriter, r *http.Request, v viewer) {
	_, err := a.service.CreateQuestion(r.Context(), questionInput(r))
	a.adminResult(w, r, v, session.AdminQuestions, err, questionsLocation(r), "Question added.")
}

func (a *App) handleUpdateQuestion(w http.ResponseWriter, r *http.Request, v viewer) {
	id, err := pathID(r, "id")
	if err == nil {
		err = a.service.UpdateQuestion(r.Context(), id, questionInput(r))
	}
	a.adminResult(w, r, v, session.AdminQuestions, err, questionsLocation(r), "Question updated.")
}

func (a *App) handleDeleteQuestion(w http.ResponseWriter, r *http.Request, v viewer) {
	id, err := pathID(r, "id")
	if err == nil {
		err = a.service.DeleteQuestion(r.Context(), id)
	}
	a.adminResult(w, r, v, session.AdminQuestions, err, questionsLocation(r), "Question deleted.")
}

func (a *App) handleImportQuestions(w http.ResponseWriter, r *http.Request, v viewer) {
	amount := formInt(r, "amount")
	imported, err := a.service.ImportQuestions(r.Context(), formInt64(r, "quiz_id"), amount)
	if err != nil {
		if _, _, ok := statusForError(err); !ok {
			a.logger.Printf("question import failed quiz_id=%d err=%v", formInt64(r, "quiz_id"), err)
			a.renderAdmin(w, r, v, session.AdminQuestions, http.StatusBadGateway, "Failed to fetch questions. Please try again.")
			return
		}
	}
	a.adminResult(w, r, v, session.AdminQuestions, err, questionsLocation(r), fmt.Sprintf("Imported %d questions.", imported))
}

// Users

func (a *App) usersView(r *http.Request) (map[string]any, error) {
	users, err := a.service.ListUsers(r.Context())
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"Users": users,
		"Roles": []quiz.Role{quiz.RoleUser, quiz.RoleAdmin},
	}, nil
}

func (a *App) handleUpdateUser(w http.ResponseWriter, r *http.Request, v viewer) {
	id, err := pathID(r, "id")
	if err == nil {
		err = a.service.UpdateUser(r.Context(), id, quiz.UserInput{
			FullName:      r.FormValue("full_name"),
			Qualification: r.FormValue("qualification"),
			DateOfBirth:   r.FormValue("dob"),
			Email:         r.FormValue("email"),
			Role:          quiz.Role(r.FormValue("role")),
		})
	}
	a.adminResult(w, r, v, session.AdminUsers, err, session.AdminUsers.Path(), "User updated.")
}

func (a *App) handleDeleteUser(w http.ResponseWriter, r *http.Request, v viewer) {
	id, err := pathID(r, "id")
	if err == nil {
		err = a.service.DeleteUser(r.Context(), id)
	}
	a.adminResult(w, r, v, session.AdminUsers, err, session.AdminUsers.Path(), "User deleted.")
}
