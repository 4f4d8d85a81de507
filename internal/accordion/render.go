package accordion

import (
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"
)

// Style carries the presentation tokens a skin applies to the accordion. The
// values are passed through to the markup as-is.
type Style struct {
	List     string // class on the list container
	Item     string // class on each entry
	Header   string // class on the clickable question
	Marker   string // class on the expand marker
	Body     string // class on the answer
	Collapse string // marker text when collapsed, "+" if empty
	Expand   string // marker text when expanded, the collapse marker if empty
}

func (s Style) markers() (collapsed, expanded string) {
	collapsed = s.Collapse
	if collapsed == "" {
		collapsed = "+"
	}
	expanded = s.Expand
	if expanded == "" {
		expanded = collapsed
	}
	return collapsed, expanded
}

// QueryParam is the URL query key that carries the expanded index.
const QueryParam = "faq"

// Query encodes s as a query value; empty when everything is collapsed.
func (s State) Query() string {
	if !s.valid {
		return ""
	}
	return strconv.Itoa(s.open)
}

// ParseQuery decodes a value produced by Query. Anything unparseable yields
// the collapsed state.
func ParseQuery(v string) State {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return State{}
	}
	return Opened(n)
}

// Href returns the link a header points at to reach s, anchored on entry i.
// The parameter is always present so the collapsed state is still
// distinguishable from a first visit.
func (s State) Href(i int) string {
	return fmt.Sprintf("?%s=%s#faq-%d", QueryParam, s.Query(), i)
}

type htmlData struct {
	Style     Style
	Items     []Item
	Collapsed string
	Expanded  string
}

var htmlTemplate = template.Must(template.New("accordion").Funcs(template.FuncMap{
	"href": func(it Item) string { return it.Next.Href(it.Index) },
}).Parse(`<div class="accordion {{.Style.List}}" data-accordion>
{{- range .Items}}
  <div class="accordion-item {{$.Style.Item}}{{if .Expanded}} is-open{{end}}" id="faq-{{.Index}}" data-index="{{.Index}}">
    <a class="accordion-header {{$.Style.Header}}" href="{{href .}}" role="button" aria-expanded="{{.Expanded}}" aria-controls="faq-body-{{.Index}}" data-toggle="{{.Index}}">
      <span class="accordion-question">{{.Entry.Question}}</span>
      <span class="accordion-marker {{$.Style.Marker}}" data-collapsed="{{$.Collapsed}}" data-expanded="{{$.Expanded}}">{{if .Expanded}}{{$.Expanded}}{{else}}{{$.Collapsed}}{{end}}</span>
    </a>
    <div class="accordion-body {{$.Style.Body}}" id="faq-body-{{.Index}}"{{if not .Expanded}} hidden{{end}}>
      <div class="accordion-answer"><p>{{.Entry.Answer}}</p></div>
    </div>
  </div>
{{- end}}
</div>
`))

// RenderHTML writes the accordion markup for entries under state. Every
// answer is emitted so client-side toggling can reveal it; collapsed ones
// carry the hidden attribute, which the stylesheet animates in both
// directions.
func RenderHTML(w io.Writer, entries []Entry, state State, style Style) error {
	collapsed, expanded := style.markers()
	return htmlTemplate.Execute(w, htmlData{
		Style:     style,
		Items:     Items(entries, state),
		Collapsed: collapsed,
		Expanded:  expanded,
	})
}

// HTML is RenderHTML into a template.HTML value for embedding in a page.
func HTML(entries []Entry, state State, style Style) (template.HTML, error) {
	var b strings.Builder
	if err := RenderHTML(&b, entries, state, style); err != nil {
		return "", err
	}
	return template.HTML(b.String()), nil
}

// RenderText renders the accordion the way the terminal skin does: "[+]" or
// "[-]" before each question, the answer indented under the open one. cursor
// marks the focused row; pass -1 for none.
func RenderText(items []Item, cursor int) string {
	var b strings.Builder
	for _, it := range items {
		pointer := "  "
		if it.Index == cursor {
			pointer = "> "
		}
		marker := "[+]"
		if it.Expanded {
			marker = "[-]"
		}
		fmt.Fprintf(&b, "%s%s %s\n", pointer, marker, it.Entry.Question)
		if it.Expanded {
			fmt.Fprintf(&b, "      │ %s\n", it.Entry.Answer)
		}
	}
	return b.String()
}
