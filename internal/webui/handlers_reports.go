package webui

import (
	"bytes"
	"context"
	"io"
	"net/http"
)

func (a *App) reportsView(r *http.Request) (map[string]any, error) {
	quizStats, err := a.service.QuizStatistics(r.Context())
	if err != nil {
		return nil, err
	}
	userStats, err := a.service.UserStatistics(r.Context())
	if err != nil {
		return nil, err
	}
	scores, err := a.service.ScoreDetails(r.Context())
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"QuizStats": quizStats,
		"UserStats": userStats,
		"Scores":    scores,
	}, nil
}

func (a *App) handleScoresCSV(w http.ResponseWriter, r *http.Request, _ viewer) {
	a.writeCSV(w, r, "quiz_results.csv", a.service.WriteScoresCSV)
}

func (a *App) handleUserStatsCSV(w http.ResponseWriter, r *http.Request, _ viewer) {
	a.writeCSV(w, r, "user_statistics.csv", a.service.WriteUserStatsCSV)
}

// writeCSV buffers the whole export so a storage failure never leaves a
// half-written download behind.
func (a *App) writeCSV(w http.ResponseWriter, r *http.Request, filename string, write func(context.Context, io.Writer) error) {
	var buf bytes.Buffer
	if err := write(r.Context(), &buf); err != nil {
		a.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
