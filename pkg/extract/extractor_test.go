package extract

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/mwantia/resorter/pkg/resume"
)

func newTestExtractor() *Extractor {
	return NewExtractor(WithReferenceYear(2025))
}

func TestExtractDefaults(t *testing.T) {
	texts := []string{
		"",
		"hello world\nnothing to see here today\n12345",
		"lorem ipsum dolor sit amet, consectetur adipiscing elit",
	}

	for _, text := range texts {
		c := newTestExtractor().Extract(text)

		if c.FullName != resume.DefaultName {
			t.Errorf("Expected default name for %q, got '%s'", text, c.FullName)
		}
		if c.Age != 0 || c.Experience != 0 || c.Salary != 0 {
			t.Errorf("Expected zero numeric fields for %q, got age=%d experience=%d salary=%d", text, c.Age, c.Experience, c.Salary)
		}
		if c.Education != resume.EducationUnspecified {
			t.Errorf("Expected unspecified education for %q, got %d", text, c.Education)
		}
		if c.Summary != "" {
			t.Errorf("Expected empty summary for %q, got '%s'", text, c.Summary)
		}
	}
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"russian label", "резюме\nфио: иванов иван иванович\nвозраст: 30", "Иванов Иван Иванович"},
		{"english label", "full name: john ronald tolkien\nage: 40", "John Ronald Tolkien"},
		{"label stops at colon", "фио петров петр: инженер", "Петров Петр"},
		{"three words line", "резюме\nсидоров сидор сидорович\nопыт работы 5 лет", "Сидоров Сидор Сидорович"},
		{"three words line beyond scan window", "a\nb\nc\nd\ne\nf\nсидоров сидор сидорович", resume.DefaultName},
		{"uppercase input", "ФИО: ПЕТРОВА АННА СЕРГЕЕВНА", "Петрова Анна Сергеевна"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newTestExtractor().Extract(tt.text).FullName
			if got != tt.want {
				t.Errorf("Expected name '%s', got '%s'", tt.want, got)
			}
		})
	}
}

func TestExtractAge(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"born prefix", "born 1990", 35},
		{"born in", "born in 1985 in london", 40},
		{"date of birth with day", "date of birth: 12.03.2000", 25},
		{"russian suffix", "1995 год рождения", 30},
		{"russian abbreviation", "1980 г.р.", 45},
		{"russian abbreviation at end", "1980 г.р", 45},
		{"birth date abbreviation", "1988 д.р., москва", 37},
		{"year before a verb", "иванов иван иванович\nс 2018 г. работал программистом", 0},
		{"year before another verb", "2019 г. руководил отделом продаж", 0},
		{"year of birth suffix", "1992 year of birth", 33},
		{"dob suffix", "1970 d.o.b.", 55},
		{"age label", "age: 27", 27},
		{"russian age label", "возраст: 31 год", 31},
		{"birth year wins over label", "age: 20\nborn 1990", 35},
		{"future birth year ignored", "born 2030\nage: 22", 22},
		{"language is not age", "language: 2 languages", 0},
		{"absent", "no age here", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newTestExtractor().Extract(tt.text).Age
			if got != tt.want {
				t.Errorf("Expected age %d, got %d", tt.want, got)
			}
		})
	}
}

func TestExtractAgeUsesClock(t *testing.T) {
	e := NewExtractor(WithClock(func() time.Time {
		return time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	}))

	if got := e.Extract("born 2000").Age; got != 30 {
		t.Errorf("Expected age 30 against clock year 2030, got %d", got)
	}
	if e.ReferenceYear() != 2030 {
		t.Errorf("Expected reference year 2030, got %d", e.ReferenceYear())
	}
}

func TestExtractExperience(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"стаж: 7 лет", 7},
		{"опыт работы 3 года", 3},
		{"work experience: 12 years", 12},
		{"experience 2015-2020", 0},
		{"no markers", 0},
	}

	for _, tt := range tests {
		if got := newTestExtractor().Extract(tt.text).Experience; got != tt.want {
			t.Errorf("Expected experience %d for %q, got %d", tt.want, tt.text, got)
		}
	}
}

func TestExtractEducationPrecedence(t *testing.T) {
	tests := []struct {
		text string
		want resume.EducationLevel
	}{
		{"doctoral degree (phd), bachelor of science", resume.EducationDoctoral},
		{"бакалавр, затем доктор наук", resume.EducationDoctoral},
		{"master of arts, bachelor of arts", resume.EducationMaster},
		{"бакалавр экономики, колледж", resume.EducationBachelor},
		{"среднее специальное", resume.EducationSecondary},
		{"graduated from college", resume.EducationSecondary},
		{"self taught", resume.EducationUnspecified},
	}

	for _, tt := range tests {
		if got := newTestExtractor().Extract(tt.text).Education; got != tt.want {
			t.Errorf("Expected education %d for %q, got %d", tt.want, tt.text, got)
		}
	}
}

func TestExtractSalary(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"salary: 120000", 120000},
		{"желаемая зарплата: 90 000 руб", 90000},
		{"зп 150000", 150000},
		{"salary 1,500,000", 1500000},
		{"no pay expectations", 0},
	}

	for _, tt := range tests {
		if got := newTestExtractor().Extract(tt.text).Salary; got != tt.want {
			t.Errorf("Expected salary %d for %q, got %d", tt.want, tt.text, got)
		}
	}
}

func TestExtractSummary(t *testing.T) {
	text := "о себе: ответственный, коммуникабельный, быстро обучаюсь. хобби: шахматы"
	want := "ответственный, коммуникабельный, быстро обучаюсь"

	if got := newTestExtractor().Extract(text).Summary; got != want {
		t.Errorf("Expected summary '%s', got '%s'", want, got)
	}

	if got := newTestExtractor().Extract("about me: short.").Summary; got != "" {
		t.Errorf("Expected empty summary for short section, got '%s'", got)
	}

	if got := newTestExtractor().Extract("personal qualities: patient, curious and very thorough!").Summary; got != "patient, curious and very thorough" {
		t.Errorf("Unexpected summary from personal qualities section: '%s'", got)
	}

	if got := newTestExtractor().Extract("по себе знаю, что работа в команде важна для всех.").Summary; got != "" {
		t.Errorf("Expected no summary inside another word, got '%s'", got)
	}
}

func TestExtractSummaryTruncation(t *testing.T) {
	long := strings.Repeat("я люблю писать код ", 40)
	got := newTestExtractor().Extract("о себе: " + long + ".").Summary

	if n := utf8.RuneCountInString(got); n > resume.MaxSummaryLength {
		t.Errorf("Expected summary at most %d runes, got %d", resume.MaxSummaryLength, n)
	}
	if !strings.HasSuffix(got, ellipsis) {
		t.Errorf("Expected truncated summary to end with ellipsis, got '%s'", got)
	}
}

func TestExtractFullDocument(t *testing.T) {
	text := `Резюме
ФИО: Кузнецова Мария Андреевна
1993 год рождения
Опыт работы: 6 лет
Образование: магистр, МГУ
Зарплата: 180000
О себе: аналитик данных, люблю sql и python, работаю в команде.`

	c := newTestExtractor().Extract(text)

	if c.FullName != "Кузнецова Мария Андреевна" {
		t.Errorf("Unexpected name '%s'", c.FullName)
	}
	if c.Age != 32 {
		t.Errorf("Expected age 32, got %d", c.Age)
	}
	if c.Experience != 6 {
		t.Errorf("Expected experience 6, got %d", c.Experience)
	}
	if c.Education != resume.EducationMaster {
		t.Errorf("Expected master education, got %d", c.Education)
	}
	if c.Salary != 180000 {
		t.Errorf("Expected salary 180000, got %d", c.Salary)
	}
	if c.Summary != "аналитик данных, люблю sql и python, работаю в команде" {
		t.Errorf("Unexpected summary '%s'", c.Summary)
	}
	if c.Category != resume.NotSuitable || c.Color != resume.DefaultColor {
		t.Errorf("Expected unclassified defaults, got %s/%s", c.Category, c.Color)
	}
}
