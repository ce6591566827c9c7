package view

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/tdewolff/minify/v2"
	minhtml "github.com/tdewolff/minify/v2/html"
)

//go:embed templates/*.html
var embedded embed.FS

const extension = ".html"

var ErrLayoutsUnsupported = errors.New("view: layouts are not supported")

// Options configure an Engine.
type Options struct {
	// Dir, when set, loads templates from disk instead of the embedded set.
	Dir string
	// Reload re-parses templates before every render.
	Reload bool
	// Minify compacts rendered HTML.
	Minify bool
}

// Engine renders html/template pages and satisfies fiber.Views.
type Engine struct {
	fsys     fs.FS
	reload   bool
	minifier *minify.M

	mu   sync.RWMutex
	tmpl *template.Template
}

var _ fiber.Views = (*Engine)(nil)

// New builds an Engine from opts. Templates are parsed lazily by Load.
func New(opts Options) (*Engine, error) {
	var fsys fs.FS
	if opts.Dir != "" {
		fsys = os.DirFS(opts.Dir)
	} else {
		sub, err := fs.Sub(embedded, "templates")
		if err != nil {
			return nil, fmt.Errorf("view: embedded templates: %w", err)
		}
		fsys = sub
	}
	return NewFS(fsys, opts), nil
}

// NewFS builds an Engine over an arbitrary file system; opts.Dir is ignored.
func NewFS(fsys fs.FS, opts Options) *Engine {
	e := &Engine{fsys: fsys, reload: opts.Reload}
	if opts.Minify {
		m := minify.New()
		m.AddFunc("text/html", minhtml.Minify)
		e.minifier = m
	}
	return e
}

// Load parses every *.html file at the root of the engine's file system.
func (e *Engine) Load() error {
	tmpl, err := template.ParseFS(e.fsys, "*"+extension)
	if err != nil {
		return fmt.Errorf("view: parse templates: %w", err)
	}

	e.mu.Lock()
	e.tmpl = tmpl
	e.mu.Unlock()
	return nil
}

// Render executes the template called name (the .html suffix is optional) with binding.
func (e *Engine) Render(w io.Writer, name string, binding interface{}, layouts ...string) error {
	if len(layouts) > 0 {
		return ErrLayoutsUnsupported
	}

	e.mu.RLock()
	loaded := e.tmpl != nil
	e.mu.RUnlock()
	if e.reload || !loaded {
		if err := e.Load(); err != nil {
			return err
		}
	}

	if path.Ext(name) == "" {
		name += extension
	}
	name = strings.TrimPrefix(name, "/")

	e.mu.RLock()
	t := e.tmpl.Lookup(name)
	e.mu.RUnlock()
	if t == nil {
		return fmt.Errorf("view: template %q not found", name)
	}

	if e.minifier == nil {
		return t.Execute(w, binding)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, binding); err != nil {
		return err
	}
	return e.minifier.Minify("text/html", w, &buf)
}
