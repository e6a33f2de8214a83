package render

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/mwantia/resorter/pkg/resume"
)

const (
	Placeholder = "No candidates match"
	EmptyValue  = "—"

	placeholderColor = "#e74c3c"
)

// Card is the display-ready form of a candidate
type Card struct {
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Color       string `json:"color"`
	Details     string `json:"details,omitempty"`
	Summary     string `json:"summary,omitempty"`
	Placeholder bool   `json:"placeholder,omitempty"`
}

// Cards maps candidates to cards; an empty input yields a single placeholder card.
func Cards(candidates []resume.Candidate) []Card {
	if len(candidates) == 0 {
		return []Card{PlaceholderCard(Placeholder)}
	}

	cards := make([]Card, 0, len(candidates))
	for _, c := range candidates {
		cards = append(cards, NewCard(c))
	}
	return cards
}

func PlaceholderCard(message string) Card {
	return Card{
		Name:        message,
		Color:       placeholderColor,
		Placeholder: true,
	}
}

func NewCard(c resume.Candidate) Card {
	summary := c.Summary
	if summary == "" {
		summary = EmptyValue
	}

	return Card{
		Name:     c.FullName,
		Category: string(c.Category),
		Color:    c.Color,
		Details: fmt.Sprintf("Age: %d | Experience: %d yrs | Education: %s | Salary: %s",
			c.Age, c.Experience, c.Education, FormatSalary(c.Salary)),
		Summary: summary,
	}
}

// FormatSalary renders an unspecified salary as an em-dash
func FormatSalary(salary int) string {
	if salary <= 0 {
		return EmptyValue
	}
	return humanize.Comma(int64(salary))
}

func parseHex(hex string) (r, g, b uint8, ok bool) {
	if len(hex) == 4 && hex[0] == '#' {
		hex = string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
	}
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}
