package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/cognicore/entail/pkg/entail"
	"github.com/cognicore/entail/pkg/entail/cards"
	"github.com/cognicore/entail/pkg/entail/judgment"
	"github.com/cognicore/entail/pkg/entail/saliency"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// Terminal renders x as coloured text for a terminal. Token backgrounds
// need the hex palette format; other formats fall back to brackets.
func Terminal(x *entail.Explanation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", headingStyle.Render("Summary:"), x.Judgment.Summary())
	fmt.Fprintf(&b, "  %-14s %s\n", "Entailment", judgment.FormatProb(x.Probs.Entailment))
	fmt.Fprintf(&b, "  %-14s %s\n", "Contradiction", judgment.FormatProb(x.Probs.Contradiction))
	fmt.Fprintf(&b, "  %-14s %s\n", "Neutral", judgment.FormatProb(x.Probs.Neutral))
	fmt.Fprintf(&b, "  ternary point: x=%.3f y=%.3f\n", x.Point.X, x.Point.Y)

	if !x.Interpreted() {
		b.WriteString(mutedStyle.Render("No interpretation yet."))
		b.WriteString("\n")
		return b.String()
	}
	fmt.Fprintf(&b, "%s %s\n", headingStyle.Render(fmt.Sprintf("Premise (top %d):", x.PremiseTopK)), Tokens(x.Premise))
	fmt.Fprintf(&b, "%s %s\n", headingStyle.Render(fmt.Sprintf("Hypothesis (top %d):", x.HypothesisTopK)), Tokens(x.Hypothesis))
	return b.String()
}

// Tokens renders a coloured token run separated by spaces.
func Tokens(tokens []saliency.ColoredToken) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = token(tok)
	}
	return strings.Join(parts, " ")
}

func token(tok saliency.ColoredToken) string {
	if !tok.Highlighted {
		return tok.Token
	}
	bg, err := colorful.Hex(tok.Background)
	if err != nil {
		return "[" + tok.Token + "]"
	}
	// Dark backgrounds get light text.
	fg := "#000000"
	if l, _, _ := bg.Lab(); l < 0.5 {
		fg = "#ffffff"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(tok.Background)).
		Foreground(lipgloss.Color(fg)).
		Render(tok.Token)
}

// Card renders a stored-explanation digest.
func Card(c cards.Card) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", mutedStyle.Render(c.ID), headingStyle.Render(c.Title))
	for _, bullet := range c.Bullets {
		fmt.Fprintf(&b, "  • %s\n", bullet)
	}
	for _, label := range []judgment.Label{judgment.Entailment, judgment.Contradiction, judgment.Neutral} {
		fmt.Fprintf(&b, "  %s: %s\n", label, judgment.FormatProb(c.Scores[label.String()]))
	}
	return b.String()
}
