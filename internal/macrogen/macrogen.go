// Package macrogen renders the C preprocessor PP_MAP facility: an argument
// counter, an Nth-argument selector, one APPLYF macro per arity and the
// dispatching PP_MAP entry point.
package macrogen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"text/template"
)

const (
	// DefaultLimit is the arity limit used when none is given.
	DefaultLimit = 69

	// DefaultPrefix namespaces every emitted identifier.
	DefaultPrefix = "VISIT_STRUCT"

	// DefaultGroupSize is the number of list elements per continuation line
	// in the selector and counter macros.
	DefaultGroupSize = 10
)

var (
	// ErrNegativeLimit is returned when the limit is below zero.
	ErrNegativeLimit = errors.New("limit must be a non-negative integer")

	// ErrInvalidPrefix is returned when the prefix is not a C identifier.
	ErrInvalidPrefix = errors.New("prefix must be a valid C identifier")

	// ErrNegativeGroupSize is returned when the group size is below zero.
	ErrNegativeGroupSize = errors.New("group size must be a non-negative integer")

	// ErrInvalidConstDecl is returned when the declaration spans lines.
	ErrInvalidConstDecl = errors.New("const decl must be a single line")
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Options controls what the generator emits.
type Options struct {
	// Limit is the maximum number of variadic arguments PP_MAP supports.
	Limit int
	// Prefix is prepended (with an underscore) to every macro name.
	Prefix string
	// ConstDecl spells the declaration of max_visitable_members.
	// Empty means "static <Prefix>_CONSTEXPR const int".
	ConstDecl string
	// GroupSize is how many list elements go on one line. Zero disables wrapping.
	GroupSize int
}

// DefaultOptions returns the options matching the stock visit_struct header.
func DefaultOptions() Options {
	return Options{
		Limit:     DefaultLimit,
		Prefix:    DefaultPrefix,
		GroupSize: DefaultGroupSize,
	}
}

// Validate checks the options without generating anything.
func (o Options) Validate() error {
	if o.Limit < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeLimit, o.Limit)
	}
	if !identRe.MatchString(o.Prefix) {
		return fmt.Errorf("%w: got %q", ErrInvalidPrefix, o.Prefix)
	}
	if o.GroupSize < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeGroupSize, o.GroupSize)
	}
	if strings.ContainsAny(o.ConstDecl, "\r\n") {
		return fmt.Errorf("%w: got %q", ErrInvalidConstDecl, o.ConstDecl)
	}
	return nil
}

// EffectiveConstDecl returns ConstDecl, or the prefix-derived default.
func (o Options) EffectiveConstDecl() string {
	if strings.TrimSpace(o.ConstDecl) != "" {
		return o.ConstDecl
	}
	return fmt.Sprintf("static %s_CONSTEXPR const int", o.Prefix)
}

// templateData holds the data for template rendering.
type templateData struct {
	Prefix         string
	ConstDecl      string
	Limit          int
	SelectorParams string
	Sentinels      string
	Applies        []string
}

// Generator renders the PP_MAP block for a fixed set of options.
type Generator struct {
	opts Options
	tmpl *template.Template
}

// New validates opts and returns a Generator for them.
func New(opts Options) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	tmpl, err := template.New("pp_map.h").Parse(PPMapTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PP_MAP template: %w", err)
	}

	return &Generator{opts: opts, tmpl: tmpl}, nil
}

// Generate renders the block into memory.
func (g *Generator) Generate() ([]byte, error) {
	var buf bytes.Buffer
	if err := g.tmpl.Execute(&buf, g.buildContext()); err != nil {
		return nil, fmt.Errorf("failed to render PP_MAP template: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteTo renders the block and writes it to w in a single call, so a
// rendering failure never leaves partial output behind.
func (g *Generator) WriteTo(w io.Writer) (int64, error) {
	content, err := g.Generate()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(content)
	if err != nil {
		return int64(n), fmt.Errorf("failed to write generated macros: %w", err)
	}
	return int64(n), nil
}

// Lines returns the rendered block split into physical lines, without
// trailing newlines.
func (g *Generator) Lines() ([]string, error) {
	content, err := g.Generate()
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimSuffix(string(content), "\n"), "\n"), nil
}

func (g *Generator) buildContext() *templateData {
	p := g.opts.Prefix
	n := g.opts.Limit

	applies := make([]string, 0, n+1)
	for k := 0; k <= n; k++ {
		applies = append(applies, ApplyMacro(p, k))
	}

	return &templateData{
		Prefix:         p,
		ConstDecl:      g.opts.EffectiveConstDecl(),
		Limit:          n,
		SelectorParams: selectorParams(n, g.opts.GroupSize),
		Sentinels:      sentinels(n, g.opts.GroupSize),
		Applies:        applies,
	}
}

// Generate renders the default block for limit.
func Generate(limit int) ([]string, error) {
	opts := DefaultOptions()
	opts.Limit = limit

	g, err := New(opts)
	if err != nil {
		return nil, err
	}
	return g.Lines()
}
