package console

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/charmbracelet/glamour"
)

const marketTemplate = `## Market (tick {{ .Tick }})

| Symbol | Price | Change % | High | Low |
|:---|---:|---:|---:|---:|
{{- range .Quotes }}
| {{ .Symbol }} | {{ .Price.Display }} | {{ signed .ChangePercent }}% | {{ .High }} | {{ .Low }} |
{{- end }}

Gainers **{{ .Summary.Gainers }}**, losers **{{ .Summary.Losers }}**, unchanged {{ .Summary.Unchanged }}. Total market value {{ .Summary.TotalValue.Display }}.
`

const portfolioTemplate = `## Portfolio

{{- if .Positions }}

| Symbol | Shares | Price | Value |
|:---|---:|---:|---:|
{{- range .Positions }}
| {{ .Symbol }} | {{ .Shares }} | {{ .Price.Display }} | {{ .Value.Display }} |
{{- end }}
| **Total** | | | **{{ .PortfolioValue.Display }}** |
{{- else }}

_No positions._
{{- end }}

Cash **{{ .Cash.Display }}**, net worth **{{ .NetWorth.Display }}**, P/L {{ .ProfitLoss.Display }} ({{ signed .ProfitLossPercent }}%).
`

const historyTemplate = `## Trades

{{- if .Trades }}

| Time | Side | Symbol | Qty | Price | Total |
|:---|:---|:---|---:|---:|---:|
{{- range .Trades }}
| {{ .ExecutedAt.Format "15:04:05" }} | {{ .Side }} | {{ .Symbol }} | {{ .Quantity }} | {{ .Price.Display }} | {{ .Total.Display }} |
{{- end }}
{{- else }}

_No trades yet._
{{- end }}
`

var templates = template.Must(
	template.New("console").
		Funcs(template.FuncMap{"signed": signed}).
		Parse(`{{ define "market" }}` + marketTemplate + `{{ end }}` +
			`{{ define "portfolio" }}` + portfolioTemplate + `{{ end }}` +
			`{{ define "history" }}` + historyTemplate + `{{ end }}`),
)

func signed(s string) string {
	if strings.HasPrefix(s, "-") {
		return s
	}
	return "+" + s
}

func renderMarkdown(name string, view any) (string, error) {
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, name, view); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return b.String(), nil
}

// Renderer turns a markdown document into terminal output.
type Renderer interface {
	Render(markdown string) (string, error)
}

// PlainRenderer writes the markdown as is.
type PlainRenderer struct{}

func (PlainRenderer) Render(md string) (string, error) { return md, nil }

// NewStyledRenderer renders markdown with glamour using the given standard
// style ("dark", "light", "notty", ...).
func NewStyledRenderer(style string, width int) (Renderer, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("glamour renderer: %w", err)
	}
	return r, nil
}
