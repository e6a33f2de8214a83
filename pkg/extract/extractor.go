package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mwantia/resorter/pkg/resume"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	nameScanLines = 6
	maxAge        = 120
	ellipsis      = "..."
)

var (
	nameLabelPattern = regexp.MustCompile(`(?:^|[^\p{L}])(?:фио|fio|full\s*name)[:\s]*([^:\n]+)`)
	nameLinePattern  = regexp.MustCompile(`^\p{L}{2,}(?:-\p{L}+)?\s+\p{L}{2,}(?:-\p{L}+)?\s+\p{L}{2,}(?:-\p{L}+)?$`)

	birthYearSuffixPattern = regexp.MustCompile(`(\d{4})\s*(?:года?\s*рождения|г\.\s*р\.?|д\.\s*р\.?|year\s*of\s*birth|d\.\s*o\.\s*b\.?)(?:[^\p{L}]|$)`)
	birthYearPrefixPattern = regexp.MustCompile(`(?:born|date\s*of\s*birth|дата\s*рождения|родил(?:ся|ась))[\s:]*(?:(?:in|on|в)\s+)?(?:\d{1,2}[./-]\d{1,2}[./-])?(\d{4})`)
	ageLabelPattern        = regexp.MustCompile(`(?:^|[^\p{L}])(?:возраста?|age)\s*:\s*(\d{1,3})(?:\D|$)`)

	experiencePattern = regexp.MustCompile(`(?:стаж|опыт\s*работы|work\s*experience|experience)[\s:]*(\d{1,3})(?:\D|$)`)
	salaryPattern     = regexp.MustCompile(`(?:^|[^\p{L}])(?:зарплат[аы]|зп|salary)[\s:]*(\d{1,3}(?:[ ,]\d{3})+|\d+)`)

	summaryPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:^|[^\p{L}])о\s*себе[:\s]*([^.?!]{20,})`),
		regexp.MustCompile(`(?:^|[^\p{L}])личные\s*качества[:\s]*([^.?!]{20,})`),
		regexp.MustCompile(`(?:^|[^\p{L}])about\s*me[:\s]*([^.?!]{20,})`),
		regexp.MustCompile(`(?:^|[^\p{L}])personal\s*qualities[:\s]*([^.?!]{20,})`),
	}
)

// educationRules are ordered by precedence, the first match wins
var educationRules = []struct {
	level   resume.EducationLevel
	pattern *regexp.Regexp
}{
	{resume.EducationDoctoral, regexp.MustCompile(`(?:^|[^\p{L}])ph\.?\s?d(?:[^\p{L}]|$)|доктор|doctor|аспирантур|послевузов`)},
	{resume.EducationMaster, regexp.MustCompile(`магистр|master`)},
	{resume.EducationBachelor, regexp.MustCompile(`бакалавр|bachelor`)},
	{resume.EducationSecondary, regexp.MustCompile(`среднее|колледж|college|secondary`)},
}

// Extractor converts plain resume text into a candidate using ordered pattern rules
type Extractor struct {
	referenceYear int
	now           func() time.Time
}

type Option func(*Extractor)

// WithReferenceYear pins the year ages are computed against; 0 uses the clock
func WithReferenceYear(year int) Option {
	return func(e *Extractor) {
		e.referenceYear = year
	}
}

func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		e.now = now
	}
}

func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ReferenceYear returns the year used to turn a birth year into an age
func (e *Extractor) ReferenceYear() int {
	if e.referenceYear > 0 {
		return e.referenceYear
	}
	return e.now().Year()
}

// Extract never fails: fields that cannot be found keep their defaults.
func (e *Extractor) Extract(text string) resume.Candidate {
	text = Normalize(text)

	c := resume.New()
	c.FullName = e.extractName(text)
	c.Age = e.extractAge(text)
	c.Experience = extractExperience(text)
	c.Education = extractEducation(text)
	c.Salary = extractSalary(text)
	c.Summary = extractSummary(text)

	return c
}

// Normalize lowercases the text and folds non-breaking spaces
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ToLower(text)
}

func (e *Extractor) extractName(text string) string {
	if m := nameLabelPattern.FindStringSubmatch(text); m != nil {
		if name := strings.TrimSpace(m[1]); name != "" {
			return titleCase(name)
		}
	}

	lines := strings.Split(text, "\n")
	if len(lines) > nameScanLines {
		lines = lines[:nameScanLines]
	}
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if nameLinePattern.MatchString(line) {
			return titleCase(line)
		}
	}

	return resume.DefaultName
}

func (e *Extractor) extractAge(text string) int {
	reference := e.ReferenceYear()

	for _, pattern := range []*regexp.Regexp{birthYearSuffixPattern, birthYearPrefixPattern} {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		year, err := strconv.Atoi(m[1])
		if err != nil || year > reference || reference-year > maxAge {
			continue
		}
		return reference - year
	}

	if m := ageLabelPattern.FindStringSubmatch(text); m != nil {
		return atoi(m[1])
	}

	return 0
}

func extractExperience(text string) int {
	if m := experiencePattern.FindStringSubmatch(text); m != nil {
		return atoi(m[1])
	}
	return 0
}

func extractEducation(text string) resume.EducationLevel {
	for _, rule := range educationRules {
		if rule.pattern.MatchString(text) {
			return rule.level
		}
	}
	return resume.EducationUnspecified
}

func extractSalary(text string) int {
	if m := salaryPattern.FindStringSubmatch(text); m != nil {
		digits := strings.NewReplacer(" ", "", ",", "").Replace(m[1])
		return atoi(digits)
	}
	return 0
}

func extractSummary(text string) string {
	for _, pattern := range summaryPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		summary := strings.TrimSpace(m[1])
		if utf8.RuneCountInString(summary) < 20 {
			continue
		}
		return truncate(summary, resume.MaxSummaryLength)
	}
	return ""
}

// truncate keeps the result within limit runes, ellipsis included
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:limit-len(ellipsis)])) + ellipsis
}

func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
