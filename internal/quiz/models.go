package quiz

import "time"

const (
	// DateLayout is the storage and form layout for calendar dates.
	DateLayout = "2006-01-02"
	// TimestampLayout is the storage layout for last_login and score timestamps.
	TimestampLayout = "2006-01-02 15:04:05"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID            int64
	Username      string
	Password      string
	FullName      string
	Qualification string
	DateOfBirth   string
	Role          Role
	Email         string
	LastLogin     time.Time
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type Subject struct {
	ID          int64
	Name        string
	Description string
}

type Chapter struct {
	ID          int64
	SubjectID   int64
	SubjectName string
	Name        string
	Description string
}

type Quiz struct {
	ID           int64
	ChapterID    int64
	SubjectName  string
	ChapterName  string
	Name         string
	Description  string
	DateOfQuiz   string
	TimeDuration string
	IsActive     bool
}

// Question holds up to four option slots; Option3 and Option4 may be empty.
type Question struct {
	ID            int64
	QuizID        int64
	Statement     string
	Option1       string
	Option2       string
	Option3       string
	Option4       string
	CorrectOption int
}

// Slots returns the four option slots in positional order, empty ones included.
func (q Question) Slots() [4]string {
	return [4]string{q.Option1, q.Option2, q.Option3, q.Option4}
}

// RenderedOptions returns the populated options in the order they are shown
// to a quiz taker.
func (q Question) RenderedOptions() []string {
	options := make([]string, 0, 4)
	for _, option := range q.Slots() {
		if option != "" {
			options = append(options, option)
		}
	}
	return options
}

// OptionIndex recovers the 1-based slot holding text. Duplicate option text
// resolves to the first matching slot; 0 means no slot matched.
func (q Question) OptionIndex(text string) int {
	for idx, option := range q.Slots() {
		if option != "" && option == text {
			return idx + 1
		}
	}
	return 0
}

// Option is a selector entry: an id plus a display label.
type Option struct {
	ID    int64
	Label string
}

type Score struct {
	ID             int64
	QuizID         int64
	UserID         int64
	QuizName       string
	Username       string
	TimeStamp      time.Time
	TotalScored    int
	TotalQuestions int
}

func (s Score) Percentage() float64 {
	return percentage(s.TotalScored, s.TotalQuestions)
}

func percentage(scored, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(scored) * 100.0 / float64(total)
}

type QuizStats struct {
	QuizID    int64
	QuizName  string
	Attempts  int
	AvgScore  float64
	HighScore float64
	LowScore  float64
}

type UserStats struct {
	UserID    int64
	Username  string
	FullName  string
	Attempts  int
	AvgScore  float64
	HighScore float64
	LowScore  float64
}

// ScoreSummary is the per-user view of their own attempts.
type ScoreSummary struct {
	Scores        []Score
	AvgScore      float64
	BestScore     float64
	TotalAttempts int
}

// AttemptSheet is everything needed to render a quiz form for one user.
type AttemptSheet struct {
	Quiz      Quiz
	Questions []Question
}
