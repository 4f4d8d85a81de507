package site

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	texttemplate "text/template"

	"github.com/ziadkadry99/synthesis/internal/accordion"
	"github.com/ziadkadry99/synthesis/internal/content"
)

// PageOptions says where a rendered page finds its shared files. The static
// export and the preview server lay these out differently.
type PageOptions struct {
	Assets    string // prefix for style.css and script.js
	Home      string // link back to the skin chooser
	BootURL   string // boot frames: a ws path when served, boot.json when static
	SkipBoot  bool   // render the briefing unlocked
	Canonical string // absolute page URL, empty when no base_url is set
	Live      bool   // served by the preview server
}

// StaticOptions returns the options for a page written at <skin>/index.html.
func StaticOptions(baseURL, skinID string) PageOptions {
	return PageOptions{
		Assets:    "../",
		Home:      "../index.html",
		BootURL:   "../boot.json",
		Canonical: canonical(baseURL, skinID+"/"),
	}
}

// LiveOptions returns the options for a page served at /<skin>.
func LiveOptions(baseURL, skinID string) PageOptions {
	return PageOptions{
		Assets:    "/assets/",
		Home:      "/",
		BootURL:   "/ws/boot",
		Canonical: canonical(baseURL, skinID),
		Live:      true,
	}
}

func canonical(baseURL, path string) string {
	if baseURL == "" {
		return ""
	}
	return strings.TrimRight(baseURL, "/") + "/" + path
}

type pageData struct {
	Skin     Skin
	Content  *content.Content
	FAQ      template.HTML
	Sections []NavItem
	Marquee  []string
	Opts     PageOptions
}

type indexEntry struct {
	Skin Skin
	Href string
}

type indexData struct {
	Content *content.Content
	Entries []indexEntry
	Opts    PageOptions
}

var funcs = template.FuncMap{
	"md":    content.Inline,
	"lower": strings.ToLower,
	"inc":   func(i int) int { return i + 1 },
	"pad2":  func(i int) string { return fmt.Sprintf("%02d", i) },
}

// Renderer renders pages from parsed templates. It is safe for concurrent
// use.
type Renderer struct {
	page  *template.Template
	index *template.Template
	css   *texttemplate.Template
}

// NewRenderer parses the page templates.
func NewRenderer() (*Renderer, error) {
	page, err := template.New("page").Funcs(funcs).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	index, err := template.New("index").Funcs(funcs).Parse(indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing index template: %w", err)
	}
	css, err := texttemplate.New("css").Parse(skinVarsTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing stylesheet template: %w", err)
	}
	return &Renderer{page: page, index: index, css: css}, nil
}

// Page renders one skin with the FAQ accordion in the given state.
func (r *Renderer) Page(w io.Writer, skin Skin, c *content.Content, state accordion.State, opts PageOptions) error {
	faq, err := accordion.HTML(c.FAQ.Items, state.Clamp(len(c.FAQ.Items)), skin.FAQ)
	if err != nil {
		return fmt.Errorf("rendering faq: %w", err)
	}
	data := pageData{
		Skin:     skin,
		Content:  c,
		FAQ:      faq,
		Sections: Sections,
		Opts:     opts,
	}
	if skin.Features.Marquee {
		for i := 0; i < 4; i++ {
			data.Marquee = append(data.Marquee, c.Hero.Catchphrase, c.Prizes.Total+" IN PRIZES")
		}
	}
	if err := r.page.Execute(w, data); err != nil {
		return fmt.Errorf("rendering %s page: %w", skin.ID, err)
	}
	return nil
}

// Index renders the skin chooser. link maps a skin id to its page URL.
func (r *Renderer) Index(w io.Writer, c *content.Content, opts PageOptions, link func(id string) string) error {
	data := indexData{Content: c, Opts: opts}
	for _, s := range skins {
		data.Entries = append(data.Entries, indexEntry{Skin: s, Href: link(s.ID)})
	}
	if err := r.index.Execute(w, data); err != nil {
		return fmt.Errorf("rendering index: %w", err)
	}
	return nil
}

// Stylesheet writes the shared stylesheet: per-skin variables followed by
// the rules every skin uses.
func (r *Renderer) Stylesheet(w io.Writer) error {
	if err := r.css.Execute(w, skins); err != nil {
		return fmt.Errorf("rendering stylesheet: %w", err)
	}
	_, err := io.WriteString(w, cssContent)
	return err
}

// Script writes the client script.
func (r *Renderer) Script(w io.Writer) error {
	_, err := io.WriteString(w, jsContent)
	return err
}
