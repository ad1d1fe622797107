package quiz

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
)

// QuizStatistics aggregates every score per quiz. Quizzes without scores are
// not listed.
func (s *Service) QuizStatistics(ctx context.Context) ([]QuizStats, error) {
	return s.store.QuizStatistics(ctx)
}

// UserStatistics aggregates every score per user. Users without scores are
// not listed.
func (s *Service) UserStatistics(ctx context.Context) ([]UserStats, error) {
	return s.store.UserStatistics(ctx)
}

// ScoreDetails returns every score joined with quiz name and username.
func (s *Service) ScoreDetails(ctx context.Context) ([]Score, error) {
	return s.store.ListScores(ctx)
}

func (s *Service) WriteScoresCSV(ctx context.Context, w io.Writer) error {
	scores, err := s.store.ListScores(ctx)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"quiz", "username", "total_scored", "total_questions", "percentage", "time_stamp"}); err != nil {
		return err
	}
	for _, score := range scores {
		record := []string{
			score.QuizName,
			score.Username,
			strconv.Itoa(score.TotalScored),
			strconv.Itoa(score.TotalQuestions),
			formatPercent(score.Percentage()),
			score.TimeStamp.Format(TimestampLayout),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func (s *Service) WriteUserStatsCSV(ctx context.Context, w io.Writer) error {
	stats, err := s.store.UserStatistics(ctx)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"username", "full_name", "attempts", "avg_score", "high_score", "low_score"}); err != nil {
		return err
	}
	for _, row := range stats {
		record := []string{
			row.Username,
			row.FullName,
			strconv.Itoa(row.Attempts),
			formatPercent(row.AvgScore),
			formatPercent(row.HighScore),
			formatPercent(row.LowScore),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatPercent(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
