package classify

import (
	"strings"

	"github.com/mwantia/resorter/pkg/resume"
)

const (
	DefaultThreshold = 1

	SuitableColor    = "#2ecc71"
	NotSuitableColor = "#e74c3c"
)

// DefaultKeywords are matched against the lowercased resume text
var DefaultKeywords = []string{
	"python", "sql", "django", "flask", "fastapi",
	"html", "css", "javascript", "java", "c++", "c#",
	"hr", "менеджер", "аналитик", "разработчик", "программист",
	"тестировщик", "дизайнер", "маркетолог", "продавец",
	"опыт работы", "образование", "университет", "курсы",
	"коммуникабельность", "ответственность", "целеустремленность",
}

// Result describes how a text was classified
type Result struct {
	Category resume.Category `json:"category"`
	Color    string          `json:"color"`
	Matches  []string        `json:"matches"`
}

// Classifier labels a resume as suitable when enough distinct keywords occur in it
type Classifier struct {
	keywords  []string
	threshold int
}

func New(keywords []string, threshold int) *Classifier {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	if threshold < 1 {
		threshold = DefaultThreshold
	}

	normalized := make([]string, 0, len(keywords))
	seen := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		normalized = append(normalized, kw)
	}

	return &Classifier{
		keywords:  normalized,
		threshold: threshold,
	}
}

func (c *Classifier) Threshold() int {
	return c.threshold
}

func (c *Classifier) Classify(text string) Result {
	text = strings.ToLower(text)

	matches := make([]string, 0)
	for _, kw := range c.keywords {
		if strings.Contains(text, kw) {
			matches = append(matches, kw)
		}
	}

	if len(matches) >= c.threshold {
		return Result{Category: resume.Suitable, Color: SuitableColor, Matches: matches}
	}
	return Result{Category: resume.NotSuitable, Color: NotSuitableColor, Matches: matches}
}

// Apply classifies the text and attaches the outcome to the candidate
func (c *Classifier) Apply(candidate *resume.Candidate, text string) Result {
	result := c.Classify(text)
	candidate.Classify(result.Category, result.Color)
	return result
}
