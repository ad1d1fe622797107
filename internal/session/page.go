package session

// Page is the top-level screen a session is on.
type Page int

const (
	PageLogin Page = iota
	PageRegister
	PageDashboard
	PageAdminDashboard
	PageUserDashboard
)

var pageNames = [...]string{
	PageLogin:          "login",
	PageRegister:       "register",
	PageDashboard:      "dashboard",
	PageAdminDashboard: "admin_dashboard",
	PageUserDashboard:  "user_dashboard",
}

func (p Page) String() string {
	if p < 0 || int(p) >= len(pageNames) {
		return "unknown"
	}
	return pageNames[p]
}

func ParsePage(value string) (Page, bool) {
	for idx, name := range pageNames {
		if name == value {
			return Page(idx), true
		}
	}
	return 0, false
}

// AdminMenu selects the section shown inside the admin dashboard.
type AdminMenu int

const (
	AdminSubjects AdminMenu = iota
	AdminChapters
	AdminQuizzes
	AdminQuestions
	AdminUsers
	AdminReports
)

var adminMenus = [...]struct{ slug, title string }{
	AdminSubjects:  {"subjects", "Subjects"},
	AdminChapters:  {"chapters", "Chapters"},
	AdminQuizzes:   {"quizzes", "Quizzes"},
	AdminQuestions: {"questions", "Questions"},
	AdminUsers:     {"users", "Users"},
	AdminReports:   {"reports", "Reports"},
}

// AdminMenus lists every admin section in display order.
func AdminMenus() []AdminMenu {
	menus := make([]AdminMenu, len(adminMenus))
	for idx := range adminMenus {
		menus[idx] = AdminMenu(idx)
	}
	return menus
}

func (m AdminMenu) Slug() string {
	if m < 0 || int(m) >= len(adminMenus) {
		return ""
	}
	return adminMenus[m].slug
}

func (m AdminMenu) Title() string {
	if m < 0 || int(m) >= len(adminMenus) {
		return ""
	}
	return adminMenus[m].title
}

func (m AdminMenu) Path() string {
	return "/admin/" + m.Slug()
}

func ParseAdminMenu(slug string) (AdminMenu, bool) {
	for idx, item := range adminMenus {
		if item.slug == slug {
			return AdminMenu(idx), true
		}
	}
	return 0, false
}

// UserMenu selects the section shown inside the user dashboard.
type UserMenu int

const (
	UserAvailableQuizzes UserMenu = iota
	UserTakeQuiz
	UserMyScores
	UserProfile
)

var userMenus = [...]struct{ slug, title string }{
	UserAvailableQuizzes: {"quizzes", "Available Quizzes"},
	UserTakeQuiz:         {"take", "Take Quiz"},
	UserMyScores:         {"scores", "My Scores"},
	UserProfile:          {"profile", "Profile"},
}

func UserMenus() []UserMenu {
	menus := make([]UserMenu, len(userMenus))
	for idx := range userMenus {
		menus[idx] = UserMenu(idx)
	}
	return menus
}

func (m UserMenu) Slug() string {
	if m < 0 || int(m) >= len(userMenus) {
		return ""
	}
	return userMenus[m].slug
}

func (m UserMenu) Title() string {
	if m < 0 || int(m) >= len(userMenus) {
		return ""
	}
	return userMenus[m].title
}

func (m UserMenu) Path() string {
	return "/user/" + m.Slug()
}

func ParseUserMenu(slug string) (UserMenu, bool) {
	for idx, item := range userMenus {
		if item.slug == slug {
			return UserMenu(idx), true
		}
	}
	return 0, false
}
