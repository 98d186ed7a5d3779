// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
)

//go:embed templates/*.html
var files embed.FS

// Page template names
const (
	IndexPage   = "index.html"
	DetailPage  = "detail.html"
	ResultsPage = "results.html"
)

// Renderer writes a named page with the given data and status code.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data any) error
}

// HTML renders the embedded html/template pages.
type HTML struct {
	templates *template.Template
	now       func() time.Time
}

type Option func(*HTML)

// WithClock sets the instant relative times ("3 days ago") are measured
// from. Pass the same clock the page data was filtered with.
func WithClock(now func() time.Time) Option {
	return func(h *HTML) { h.now = now }
}

// New parses the embedded templates. It panics on a parse error since the
// templates ship with the binary.
func New(opts ...Option) *HTML {
	h := &HTML{now: time.Now}
	for _, opt := range opts {
		opt(h)
	}

	funcs := template.FuncMap{
		"since":     h.since,
		"plural":    plural,
		"isoformat": func(t time.Time) string { return t.Format(time.RFC3339) },
	}
	h.templates = template.Must(template.New("").Funcs(funcs).ParseFS(files, "templates/*.html"))
	return h
}

func (h *HTML) since(t time.Time) string {
	return humanize.RelTime(t, h.now(), "ago", "from now")
}

var _ Renderer = (*HTML)(nil)

// Render executes into a buffer first so a template error never leaves a
// half-written 200 behind.
func (h *HTML) Render(w http.ResponseWriter, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

func plural(n int, singular, many string) string {
	if n == 1 {
		return singular
	}
	return many
}
