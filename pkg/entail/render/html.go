// Package render draws explanations as HTML reports and terminal text.
package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/cognicore/entail/pkg/entail"
	"github.com/cognicore/entail/pkg/entail/colormap"
	"github.com/cognicore/entail/pkg/entail/judgment"
	"github.com/cognicore/entail/pkg/entail/prediction"
	"github.com/cognicore/entail/pkg/entail/saliency"
)

const pageStyle = `
body { font-family: sans-serif; max-width: 960px; margin: 2em auto; }
.te-graph { position: relative; width: 224px; height: 194px; border-bottom: 1px solid #ccc; }
.te-graph__point { position: absolute; width: 10px; height: 10px; margin: -5px 0 0 -5px; border-radius: 50%; background: #2085bc; }
.saliency span { padding: 1px; margin: 1px; display: inline-block; border-radius: 3px; }
.heatmap td { width: 2.5em; height: 1.5em; }
.placeholder { color: #7c7c7c; }
`

// HTML writes a standalone report page for x. Heatmap cells use cfg's
// palette in hex regardless of cfg.Format.
func HTML(w io.Writer, x *entail.Explanation, cfg colormap.Config) error {
	body, err := reportBody(x, cfg)
	if err != nil {
		return err
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root := el(atom.Html)
	head := el(atom.Head)
	head.AppendChild(el(atom.Meta, attr("charset", "utf-8")))
	head.AppendChild(withText(el(atom.Title), "Textual Entailment"))
	head.AppendChild(withText(el(atom.Style), pageStyle))
	root.AppendChild(head)
	root.AppendChild(body)
	doc.AppendChild(root)

	return html.Render(w, doc)
}

// Saliency writes just the coloured token run.
func Saliency(w io.Writer, tokens []saliency.ColoredToken) error {
	return html.Render(w, saliencyNode(tokens))
}

func reportBody(x *entail.Explanation, cfg colormap.Config) (*html.Node, error) {
	body := el(atom.Body)
	body.AppendChild(withText(el(atom.H1), "Textual Entailment"))

	pair := el(atom.Dl)
	pair.AppendChild(withText(el(atom.Dt), "Premise"))
	pair.AppendChild(withText(el(atom.Dd), x.Request.Premise))
	pair.AppendChild(withText(el(atom.Dt), "Hypothesis"))
	pair.AppendChild(withText(el(atom.Dd), x.Request.Hypothesis))
	body.AppendChild(pair)

	body.AppendChild(withText(el(atom.H2), "Summary"))
	body.AppendChild(withText(el(atom.P), x.Judgment.Summary()))

	body.AppendChild(graphNode(x.Point))
	body.AppendChild(probTable(x.Probs))

	body.AppendChild(withText(el(atom.H2), "Interpretation Visualization"))
	body.AppendChild(saliencySection("Premise", x.Premise, x.PremiseTopK, x.Interpreted()))
	body.AppendChild(saliencySection("Hypothesis", x.Hypothesis, x.HypothesisTopK, x.Interpreted()))

	hexCfg := cfg
	hexCfg.Format = colormap.FormatHex
	palette, err := colormap.Generate(hexCfg)
	if err != nil {
		return nil, err
	}

	body.AppendChild(withText(el(atom.H2), "Premise to Hypothesis Attention"))
	body.AppendChild(withText(el(atom.P),
		"For every premise word, the model computes an attention over the hypothesis words. Each row is normalized."))
	p2h, err := x.Prediction.PremiseToHypothesis()
	body.AppendChild(heatmapNode(p2h, err, palette))

	body.AppendChild(withText(el(atom.H2), "Hypothesis to Premise Attention"))
	body.AppendChild(withText(el(atom.P),
		"For every hypothesis word, the model computes an attention over the premise words. Each row is normalized."))
	h2p, err := x.Prediction.HypothesisToPremise()
	body.AppendChild(heatmapNode(h2p, err, palette))

	return body, nil
}

func graphNode(pt judgment.Point) *html.Node {
	left, top := pt.Plot(judgment.PlotWidth, judgment.PlotHeight)
	graph := el(atom.Div, attr("class", "te-graph"))
	graph.AppendChild(el(atom.Div,
		attr("class", "te-graph__point"),
		attr("style", fmt.Sprintf("left: %dpx; top: %dpx;", left, top)),
	))
	return graph
}

func probTable(p judgment.Probs) *html.Node {
	table := el(atom.Table, attr("class", "te-table"))
	thead := el(atom.Thead)
	tr := el(atom.Tr)
	tr.AppendChild(withText(el(atom.Th), "Judgment"))
	tr.AppendChild(withText(el(atom.Th), "Probability"))
	thead.AppendChild(tr)
	table.AppendChild(thead)

	tbody := el(atom.Tbody)
	rows := []struct {
		label string
		p     float64
	}{
		{"Entailment", p.Entailment},
		{"Contradiction", p.Contradiction},
		{"Neutral", p.Neutral},
	}
	for _, row := range rows {
		tr := el(atom.Tr)
		tr.AppendChild(withText(el(atom.Td), row.label))
		tr.AppendChild(withText(el(atom.Td), judgment.FormatProb(row.p)))
		tbody.AppendChild(tr)
	}
	table.AppendChild(tbody)
	return table
}

func saliencySection(name string, tokens []saliency.ColoredToken, k int, interpreted bool) *html.Node {
	div := el(atom.Div)
	heading := el(atom.P)
	heading.AppendChild(withText(el(atom.Strong), fmt.Sprintf("Saliency Map for %s (top %d):", name, k)))
	div.AppendChild(heading)
	if !interpreted {
		div.AppendChild(withText(el(atom.P, attr("class", "placeholder")),
			fmt.Sprintf("Interpret the prediction to show the %s interpretation", strings.ToLower(name))))
		return div
	}
	div.AppendChild(saliencyNode(tokens))
	return div
}

func saliencyNode(tokens []saliency.ColoredToken) *html.Node {
	div := el(atom.Div, attr("class", "saliency"))
	for _, tok := range tokens {
		attrs := []html.Attribute{attr("style", "background-color: "+tok.Background)}
		if tok.Highlighted {
			attrs = append(attrs, attr("title", tok.Annotation))
		}
		div.AppendChild(withText(el(atom.Span, attrs...), tok.Token))
	}
	return div
}

func heatmapNode(hm prediction.Heatmap, shapeErr error, palette []string) *html.Node {
	if shapeErr != nil {
		return withText(el(atom.P, attr("class", "placeholder")), "Attention unavailable: "+shapeErr.Error())
	}

	table := el(atom.Table, attr("class", "heatmap"))
	header := el(atom.Tr)
	header.AppendChild(el(atom.Th))
	for _, col := range hm.ColLabels {
		header.AppendChild(withText(el(atom.Th), col))
	}
	table.AppendChild(header)

	last := float64(len(palette) - 1)
	for i, row := range hm.Data {
		tr := el(atom.Tr)
		tr.AppendChild(withText(el(atom.Th), hm.RowLabels[i]))
		for _, v := range row {
			idx := int(math.Round(math.Max(0, math.Min(1, v)) * last))
			tr.AppendChild(el(atom.Td,
				attr("style", "background-color: "+palette[idx]),
				attr("title", strconv.FormatFloat(v, 'f', 3, 64)),
			))
		}
		table.AppendChild(tr)
	}
	return table
}

func el(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func withText(n *html.Node, s string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: s})
	return n
}
