// Package site keeps the pages of an htmlnode site in registration order.
//
// A page is a path and a function that builds its tree from a
// template.Context. The server renders pages on request, the publisher
// renders all of them, and both read the same Site.
package site

import (
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/vango-dev/htmlnode/internal/errors"
	"github.com/vango-dev/htmlnode/pkg/node"
	"github.com/vango-dev/htmlnode/pkg/template"
)

// ErrPageNotFound is returned for paths without a registered page.
var ErrPageNotFound = errors.Sentinel(errors.CodePageNotFound)

// PageFunc builds the tree of a page.
type PageFunc func(ctx template.Context) (node.Node, error)

// Page is one registered page.
type Page struct {
	Path  string
	Build PageFunc
}

// Site is an ordered set of pages plus the context shared by all of
// them. It is safe for concurrent use.
type Site struct {
	mu       sync.RWMutex
	pages    []Page
	index    map[string]int
	defaults template.Context
	watchers []func(path string)
}

// New creates an empty site. defaults is merged under the context of
// every build.
func New(defaults template.Context) *Site {
	return &Site{
		index:    make(map[string]int),
		defaults: defaults.Clone(),
	}
}

// CleanPath normalizes p: a leading slash, no trailing slash, no dot
// segments. The empty path is "/".
func CleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

// Handle registers build under p, replacing an earlier page with the same
// path in place. Watchers are notified.
func (s *Site) Handle(p string, build PageFunc) {
	p = CleanPath(p)

	s.mu.Lock()
	if i, ok := s.index[p]; ok {
		s.pages[i].Build = build
	} else {
		s.index[p] = len(s.pages)
		s.pages = append(s.pages, Page{Path: p, Build: build})
	}
	watchers := slices.Clone(s.watchers)
	s.mu.Unlock()

	for _, fn := range watchers {
		fn(p)
	}
}

// Watch registers fn to be called after every Handle.
func (s *Site) Watch(fn func(path string)) {
	s.mu.Lock()
	s.watchers = append(s.watchers, fn)
	s.mu.Unlock()
}

// Page returns the page registered under p.
func (s *Site) Page(p string) (Page, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[CleanPath(p)]
	if !ok {
		return Page{}, false
	}
	return s.pages[i], true
}

// Pages returns the pages in registration order.
func (s *Site) Pages() []Page {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Page(nil), s.pages...)
}

// Paths returns the registered paths in registration order.
func (s *Site) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	paths := make([]string, len(s.pages))
	for i, p := range s.pages {
		paths[i] = p.Path
	}
	return paths
}

// Defaults returns a copy of the shared context.
func (s *Site) Defaults() template.Context {
	return s.defaults.Clone()
}

// Build builds the page at p. ctx is merged over the site defaults, and
// the "path" key is always set to the cleaned path.
func (s *Site) Build(p string, ctx template.Context) (node.Node, error) {
	p = CleanPath(p)
	page, ok := s.Page(p)
	if !ok || page.Build == nil {
		return nil, errors.New(errors.CodePageNotFound).
			WithDetailf("no page registered for %s", p)
	}
	merged := template.Merge(s.defaults, ctx, template.Context{"path": p})
	return page.Build(merged)
}
