package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/mwantia/resorter/pkg/resume"
)

func testCandidate() resume.Candidate {
	c := resume.New()
	c.FullName = "Иванов Иван Иванович"
	c.Age = 30
	c.Experience = 5
	c.Education = resume.EducationMaster
	c.Salary = 120000
	c.Summary = "ответственный и внимательный"
	c.Classify(resume.Suitable, "#2ecc71")
	return c
}

func TestCardsPlaceholder(t *testing.T) {
	cards := Cards(nil)

	if len(cards) != 1 {
		t.Fatalf("Expected a single placeholder card, got %d", len(cards))
	}
	if !cards[0].Placeholder || cards[0].Name != Placeholder {
		t.Errorf("Unexpected placeholder card %+v", cards[0])
	}
}

func TestNewCard(t *testing.T) {
	card := NewCard(testCandidate())

	if card.Name != "Иванов Иван Иванович" || card.Category != "Suitable" || card.Color != "#2ecc71" {
		t.Errorf("Unexpected card header %+v", card)
	}
	want := "Age: 30 | Experience: 5 yrs | Education: Master | Salary: 120,000"
	if card.Details != want {
		t.Errorf("Expected details '%s', got '%s'", want, card.Details)
	}
}

func TestNewCardEmptyValues(t *testing.T) {
	c := resume.New()
	card := NewCard(c)

	if card.Summary != EmptyValue {
		t.Errorf("Expected em-dash summary, got '%s'", card.Summary)
	}
	if !strings.HasSuffix(card.Details, "Salary: "+EmptyValue) {
		t.Errorf("Expected em-dash salary, got '%s'", card.Details)
	}
	if !strings.Contains(card.Details, "Education: "+EmptyValue) {
		t.Errorf("Expected em-dash education, got '%s'", card.Details)
	}
}

func TestWriteHTML(t *testing.T) {
	other := testCandidate()
	other.FullName = "Петров <b>Пётр</b>"
	other.Summary = ""

	var buf bytes.Buffer
	if err := WriteHTML(&buf, Cards([]resume.Candidate{testCandidate(), other})); err != nil {
		t.Fatalf("Failed to render HTML: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatalf("Failed to parse HTML: %v", err)
	}

	cards := doc.Find("div.card")
	if cards.Length() != 2 {
		t.Fatalf("Expected 2 cards, got %d", cards.Length())
	}
	if name := cards.First().Find("h3").Text(); name != "Иванов Иван Иванович" {
		t.Errorf("Unexpected first card name '%s'", name)
	}
	if name := cards.Last().Find("h3").Text(); name != "Петров <b>Пётр</b>" {
		t.Errorf("Expected escaped markup to survive as text, got '%s'", name)
	}
	if cards.Last().Find("h3 b").Length() != 0 {
		t.Error("Expected candidate name to be escaped")
	}
	if summary := cards.Last().Find("p.summary").Text(); summary != "About: "+EmptyValue {
		t.Errorf("Unexpected summary '%s'", summary)
	}
	if style, _ := cards.First().Attr("style"); !strings.Contains(style, "#2ecc71") {
		t.Errorf("Expected category color in card style, got '%s'", style)
	}
}

func TestWriteHTMLPlaceholder(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, Cards(nil)); err != nil {
		t.Fatalf("Failed to render HTML: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatalf("Failed to parse HTML: %v", err)
	}

	if doc.Find("div.card").Length() != 0 {
		t.Error("Expected no cards")
	}
	if text := strings.TrimSpace(doc.Find("div.placeholder").Text()); text != Placeholder {
		t.Errorf("Expected placeholder text, got '%s'", text)
	}
}

func TestWriteTerminal(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTerminal(&buf, Cards([]resume.Candidate{testCandidate()})); err != nil {
		t.Fatalf("Failed to render terminal output: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Иванов Иван Иванович", "Suitable", "Salary: 120,000", "ответственный и внимательный"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected terminal output to contain '%s', got:\n%s", want, out)
		}
	}
}

func TestParseHex(t *testing.T) {
	if r, g, b, ok := parseHex("#2ecc71"); !ok || r != 0x2e || g != 0xcc || b != 0x71 {
		t.Errorf("Unexpected parse result %d %d %d %v", r, g, b, ok)
	}
	if r, g, b, ok := parseHex("#888"); !ok || r != 0x88 || g != 0x88 || b != 0x88 {
		t.Errorf("Unexpected short parse result %d %d %d %v", r, g, b, ok)
	}
	if _, _, _, ok := parseHex("red"); ok {
		t.Error("Expected invalid color to fail")
	}
}
