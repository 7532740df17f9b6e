package routes

import (
	"errors"
	"fmt"
	"strings"
)

// View names served by the two apps.
const (
	ViewHome     = "home"
	ViewProfile  = "profile"
	ViewLogin    = "login"
	ViewRegister = "register"
	ViewContact  = "contact"
	ViewCV       = "cv"
)

// CatchAll matches any path when placed in a table.
const CatchAll = "**"

// maxRedirects bounds redirect chains so a misconfigured table cannot loop.
const maxRedirects = 8

var (
	ErrNoRoute      = errors.New("no route matches path")
	ErrRedirectLoop = errors.New("too many redirects")
	ErrUnknownApp   = errors.New("unknown app")
)

// Route maps a path to a view, or redirects to another path.
// Exactly one of View and RedirectTo is set.
type Route struct {
	Path       string
	View       string
	Title      string
	RedirectTo string
}

// Table is an ordered list of routes; the first match wins.
type Table []Route

// Resolution is the outcome of resolving a path.
type Resolution struct {
	View       string `json:"view"`
	Title      string `json:"title,omitempty"`
	Path       string `json:"path"`
	Redirected bool   `json:"redirected,omitempty"`
}

// Normalize trims surrounding slashes so "/cv/", "cv" and "/cv" are the same
// path and "/" is the root "".
func Normalize(path string) string {
	return strings.Trim(path, "/")
}

// Resolve finds the view for path, following redirect entries until a view
// entry is reached.
func (t Table) Resolve(path string) (Resolution, error) {
	p := Normalize(path)
	redirected := false
	for hops := 0; hops <= maxRedirects; hops++ {
		r, ok := t.match(p)
		if !ok {
			return Resolution{}, fmt.Errorf("%w: /%s", ErrNoRoute, p)
		}
		if r.RedirectTo == "" {
			return Resolution{View: r.View, Title: r.Title, Path: "/" + p, Redirected: redirected}, nil
		}
		p = Normalize(r.RedirectTo)
		redirected = true
	}
	return Resolution{}, fmt.Errorf("%w: resolving %s", ErrRedirectLoop, path)
}

func (t Table) match(p string) (Route, bool) {
	for _, r := range t {
		if r.Path == CatchAll || Normalize(r.Path) == p {
			return r, true
		}
	}
	return Route{}, false
}

// Paths returns the concrete paths of the table, each with a leading slash.
// Catch-all entries are skipped.
func (t Table) Paths() []string {
	out := make([]string, 0, len(t))
	for _, r := range t {
		if r.Path == CatchAll {
			continue
		}
		out = append(out, "/"+Normalize(r.Path))
	}
	return out
}

// CatalogRoutes is the route table of the real-estate app.
func CatalogRoutes() Table {
	return Table{
		{Path: "", View: ViewHome, Title: "Home page"},
		{Path: "profile", View: ViewProfile},
		{Path: "login", View: ViewLogin},
		{Path: "register", View: ViewRegister},
		{Path: "contact", View: ViewContact},
	}
}

// CVRoutes is the route table of the CV app.
func CVRoutes() Table {
	return Table{
		{Path: "cv", View: ViewCV},
		{Path: "contact", View: ViewContact},
		{Path: "", RedirectTo: "/cv"},
	}
}

// ForApp returns the route table of the named app.
func ForApp(app string) (Table, error) {
	switch app {
	case "catalog":
		return CatalogRoutes(), nil
	case "cv":
		return CVRoutes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownApp, app)
	}
}
