// Package renderer turns processed commands and stored records into
// markdown, suitable for terminal rendering by the cmd package.
package renderer

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Rhymond/go-money"
	"github.com/lindacli/linda"
)

// timeFormat for timestamps in reports.
const timeFormat = "2006-01-02 15:04:05"

// Amount formats a tax amount, taken as minor units of the given currency.
func Amount(tax int, currency string) string {
	return money.New(int64(tax), currency).Display()
}

// commandView is the data for the command template.
type commandView struct {
	Tokens    []linda.Token
	CreatedAt string
	Order     bool
	Kind      linda.OrderKind
	Record    *linda.Record
}

const commandTemplate = `# Command

Created at {{.CreatedAt}}.

| # | Kind | Value |
|---|------|-------|
{{range $i, $t := .Tokens}}| {{$i}} | {{$t.Kind}} | {{$t}} |
{{end}}
{{- if .Order}}
Classified as **{{.Kind}}**.
{{if .Record}}
Record: tax {{.Record.Tax}}, category "{{.Record.Category}}".
{{- else}}
No producer exists for {{.Kind}} orders yet; nothing will be persisted.
{{- end}}
{{- else}}
This line does not match the order shape [marker, number, text]: no operation.
{{- end}}
`

// Command renders the outcome of processing one command line: its tokens,
// its classification, and the record it produced, if any.
func Command(cmd *linda.Command, c linda.Classified, rec *linda.Record) string {
	v := commandView{
		Tokens:    cmd.Tokens(),
		CreatedAt: cmd.CreatedAt().Format(timeFormat),
		Order:     c.IsOrder(),
		Kind:      c.Kind(),
		Record:    rec,
	}
	return render("command", commandTemplate, v)
}

// recordsView is the data for the records template.
type recordsView struct {
	Records  []linda.Record
	Currency string
}

const recordsTemplate = `# Records
{{if .Records}}
| Created | Amount | Category |
|---------|--------|----------|
{{range .Records}}| {{.CreatedAt.Format "2006-01-02 15:04:05"}} | {{amount .Tax $.Currency}} | {{.Category}} |
{{end}}
{{- else}}
No records yet.
{{- end}}
`

// Records renders stored records as a markdown table, amounts displayed in
// the given currency.
func Records(records []linda.Record, currency string) string {
	return render("records", recordsTemplate, recordsView{Records: records, Currency: currency})
}

var funcs = template.FuncMap{
	"amount": Amount,
}

// render executes a template over its data. Templates and data are fully
// under this package's control, so a failure here is a programming error
// reported in the output.
func render(name, src string, data any) string {
	t := template.Must(template.New(name).Funcs(funcs).Parse(src))
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return fmt.Sprintf("rendering %s: %v", name, err)
	}
	return b.String()
}
