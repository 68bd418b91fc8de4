// Copyright (c) 2026 Keymaster Team
// Keyreport - authorized_keys inventory report
// This source code is licensed under the MIT license found in the LICENSE file.

// Package report renders a parsed corpus into a single static HTML page.
package report // import "github.com/toeirei/keyreport/internal/report"

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/toeirei/keyreport/internal/i18n"
	"github.com/toeirei/keyreport/internal/model"
	"github.com/toeirei/keyreport/internal/sshkey"
	"github.com/yuin/goldmark"
)

//go:embed templates/report.html.tmpl
var templatesFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templatesFS, "templates/report.html.tmpl"))

// Renderer turns a Corpus into HTML. Text comes from the active i18n locale.
type Renderer struct {
	// InputDir and Suffix only feed the hint shown when there is no data.
	InputDir string
	Suffix   string
	// Fingerprints adds a SHA256 fingerprint below each decodable key.
	Fingerprints bool
}

type page struct {
	Lang       string
	Title      string
	Intro      template.HTML
	NoDataHint template.HTML
	Labels     labels
	Hosts      []hostSection
}

type labels struct {
	NoData, Host, NoUsers, User, Type, Data, Comment, NoKeys string
}

type hostSection struct {
	Name  string
	Users []userSection
}

type userSection struct {
	Name string
	Keys []keyRow
}

type keyRow struct {
	Type, Data, Comment, Fingerprint string
}

// Render writes the HTML document for c to w. Hosts and users appear in
// ascending name order and keys in parse order, so equal input gives equal
// output.
func (r *Renderer) Render(w io.Writer, c model.Corpus) error {
	if err := pageTmpl.Execute(w, r.build(c)); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	return nil
}

// Bytes renders c into memory.
func (r *Renderer) Bytes(c model.Corpus) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) build(c model.Corpus) page {
	p := page{
		Lang:       pageLang(),
		Title:      i18n.T("html.title"),
		Intro:      renderMarkdown(i18n.T("html.intro")),
		NoDataHint: renderMarkdown(i18n.T("html.no_data_hint", r.InputDir, r.Suffix)),
		Labels: labels{
			NoData:  i18n.T("html.no_data"),
			Host:    i18n.T("html.host"),
			NoUsers: i18n.T("html.no_users"),
			User:    i18n.T("html.user"),
			Type:    i18n.T("html.col_type"),
			Data:    i18n.T("html.col_data"),
			Comment: i18n.T("html.col_comment"),
			NoKeys:  i18n.T("html.no_keys"),
		},
	}
	for _, host := range c.Hosts() {
		users := c[host]
		hs := hostSection{Name: host}
		for _, user := range users.Users() {
			us := userSection{Name: user}
			for _, k := range users[user] {
				us.Keys = append(us.Keys, r.row(k))
			}
			hs.Users = append(hs.Users, us)
		}
		p.Hosts = append(p.Hosts, hs)
	}
	return p
}

func (r *Renderer) row(k model.KeyRecord) keyRow {
	row := keyRow{Type: k.Type, Data: k.Data, Comment: k.Comment}
	if r.Fingerprints {
		if fp, ok := sshkey.Fingerprint(k.Data); ok {
			row.Fingerprint = fp
		}
	}
	return row
}

func pageLang() string {
	lang := i18n.GetLang()
	if _, ok := i18n.GetAvailableLocales()[lang]; ok {
		return lang
	}
	return "en"
}

// renderMarkdown converts locale markdown to HTML. goldmark escapes raw HTML
// by default, so interpolated paths are safe.
func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}
