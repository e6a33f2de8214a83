package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

// WriteTerminal prints cards with the category color of each candidate
func WriteTerminal(w io.Writer, cards []Card) error {
	for i, card := range cards {
		if card.Placeholder {
			if _, err := fmt.Fprintln(w, pterm.Red(card.Name)); err != nil {
				return err
			}
			continue
		}

		color := colorize(card.Color)
		lines := []string{
			color(strings.Repeat("─", 4)) + " " + pterm.Bold.Sprint(card.Name),
			"     " + color(card.Category),
			"     " + card.Details,
			"     " + pterm.Gray("About: "+card.Summary),
		}
		if i < len(cards)-1 {
			lines = append(lines, "")
		}

		if _, err := fmt.Fprintln(w, strings.Join(lines, "\n")); err != nil {
			return err
		}
	}
	return nil
}

func colorize(hex string) func(string) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return func(s string) string {
			return s
		}
	}
	rgb := pterm.NewRGB(r, g, b)
	return func(s string) string {
		return rgb.Sprint(s)
	}
}
