package resume

import "time"

const (
	DefaultName  = "name not specified"
	DefaultColor = "#7f8c8d"

	MaxSummaryLength = 300
)

// Category is the classification label attached to a candidate
type Category string

const (
	Suitable    Category = "Suitable"
	NotSuitable Category = "Not suitable"
)

// Categories returns all known category labels in display order
func Categories() []Category {
	return []Category{Suitable, NotSuitable}
}

func (c Category) Valid() bool {
	return c == Suitable || c == NotSuitable
}

// Candidate represents one parsed resume
type Candidate struct {
	FullName   string         `json:"full_name"  yaml:"full_name"`
	Age        int            `json:"age"        yaml:"age"`
	Experience int            `json:"experience" yaml:"experience"`
	Education  EducationLevel `json:"education"  yaml:"education"`
	Salary     int            `json:"salary"     yaml:"salary"`
	Summary    string         `json:"summary"    yaml:"summary"`

	Filename   string   `json:"filename"    yaml:"filename"`
	SourcePath string   `json:"source_path" yaml:"source_path"`
	Category   Category `json:"category"    yaml:"category"`
	Color      string   `json:"color"       yaml:"color"`

	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// New returns a candidate with every field set to its documented default
func New() Candidate {
	return Candidate{
		FullName: DefaultName,
		Category: NotSuitable,
		Color:    DefaultColor,
	}
}

// Classify attaches the category and its display color
func (c *Candidate) Classify(category Category, color string) {
	c.Category = category
	c.Color = color
}
