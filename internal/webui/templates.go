package webui

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"time"

	"quiz-master/internal/quiz"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

var templateFuncs = template.FuncMap{
	"percent": func(value float64) string {
		return fmt.Sprintf("%.1f%%", value)
	},
	"barStyle": func(value float64) template.CSS {
		if value < 0 {
			value = 0
		}
		if value > 100 {
			value = 100
		}
		return template.CSS(fmt.Sprintf("width: %.1f%%", value))
	},
	"timestamp": func(at time.Time) string {
		if at.IsZero() {
			return "never"
		}
		return at.Format(quiz.TimestampLayout)
	},
	"inc": func(n int) int {
		return n + 1
	},
}

// parsePages clones the layout once per page file so every page can define
// its own "content" block.
func parsePages() (map[string]*template.Template, error) {
	layout, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(templateFS, layoutFile)
	if err != nil {
		return nil, err
	}

	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		if file == layoutFile {
			continue
		}
		clone, err := layout.Clone()
		if err != nil {
			return nil, err
		}
		page, err := clone.ParseFS(templateFS, file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		pages[strings.TrimSuffix(path.Base(file), ".html")] = page
	}
	return pages, nil
}
