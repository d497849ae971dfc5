package reportdoc

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rod-americo/reportdoc/internal/assets"
	"github.com/rod-americo/reportdoc/internal/fileutil"
)

// Defaults for service construction.
const (
	DefaultStyle     = "report"
	DefaultNavScript = "assets/nav-links.js"
)

// DefaultSourceCandidates is the ordered list of paths Build probes when the
// caller supplies none: the primary location first, then the nested one.
var DefaultSourceCandidates = []string{"report.md", "docs/report.md"}

// Service compiles report markdown into a complete HTML page.
type Service struct {
	cfg serviceConfig
}

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	styleName string // embedded style to resolve when styleCSS is empty
	styleCSS  string
	navScript string
}

// Option configures a Service.
type Option func(*serviceConfig)

// WithStyle selects an embedded stylesheet by name.
// NewService fails with assets.ErrStyleNotFound if the name is unknown.
func WithStyle(name string) Option {
	return func(c *serviceConfig) {
		c.styleName = name
		c.styleCSS = ""
	}
}

// WithStyleSheet supplies a raw stylesheet body, bypassing embedded assets.
func WithStyleSheet(css string) Option {
	return func(c *serviceConfig) {
		c.styleCSS = css
	}
}

// WithNavScript sets the relative path of the external navigation renderer
// referenced by the generated page.
func WithNavScript(path string) Option {
	return func(c *serviceConfig) {
		c.navScript = path
	}
}

// NewService creates a Service with the default embedded style and nav
// script path, then applies options. Embedded style names are resolved
// after all options run, so the last style option wins.
func NewService(opts ...Option) (*Service, error) {
	cfg := serviceConfig{styleName: DefaultStyle, navScript: DefaultNavScript}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.styleCSS == "" {
		css, err := assets.LoadStyle(cfg.styleName)
		if err != nil {
			return nil, err
		}
		cfg.styleCSS = css
	}

	return &Service{cfg: cfg}, nil
}

// CompileResult contains the compiled page and the intermediate structures
// for callers that want to inspect them.
type CompileResult struct {
	HTML       string
	Document   Document
	References []Reference
}

// Compile turns raw report markdown into a self-contained HTML page.
// Compilation is deterministic: identical input yields byte-identical HTML.
func (s *Service) Compile(markdown string) (CompileResult, error) {
	if strings.TrimSpace(markdown) == "" {
		return CompileResult{}, ErrEmptySource
	}

	doc := Segment(markdown)
	return CompileResult{
		HTML:       AssemblePage(doc, PageOptions{StyleCSS: s.cfg.styleCSS, NavScript: s.cfg.navScript}),
		Document:   doc,
		References: ParseReferences(doc.ReferencesRaw),
	}, nil
}

// BuildInput configures a filesystem build.
type BuildInput struct {
	// Candidates are probed in order for the source document.
	// Empty means DefaultSourceCandidates.
	Candidates []string
	// OutputPath overrides the destination. Empty means the sibling .html
	// of the resolved source.
	OutputPath string
}

// BuildResult reports what a Build read and wrote.
type BuildResult struct {
	SourcePath string
	OutputPath string
}

// Build resolves the source document, compiles it, and writes the output
// beside it, fully overwriting any previous file. The write is plain, not
// atomic: concurrent builds targeting one output path are last-writer-wins,
// and that is an accepted property of a single-invocation build step.
func (s *Service) Build(ctx context.Context, in BuildInput) (BuildResult, error) {
	if err := ctx.Err(); err != nil {
		return BuildResult{}, err
	}

	srcPath, err := resolveSource(in.Candidates)
	if err != nil {
		return BuildResult{}, err
	}

	data, err := os.ReadFile(srcPath) // #nosec G304 -- source path comes from the caller's candidate list
	if err != nil {
		return BuildResult{}, fmt.Errorf("%w: %v", ErrReadSource, err)
	}

	result, err := s.Compile(string(data))
	if err != nil {
		return BuildResult{}, err
	}

	if err := ctx.Err(); err != nil {
		return BuildResult{}, err
	}

	outPath := in.OutputPath
	if outPath == "" {
		outPath = siblingHTMLPath(srcPath)
	}

	if err := os.WriteFile(outPath, []byte(result.HTML), 0o644); err != nil { // #nosec G306 -- generated page is world-readable web content
		return BuildResult{}, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	return BuildResult{SourcePath: srcPath, OutputPath: outPath}, nil
}

// resolveSource returns the first existing candidate path.
func resolveSource(candidates []string) (string, error) {
	if len(candidates) == 0 {
		candidates = DefaultSourceCandidates
	}

	for _, path := range candidates {
		if fileutil.FileExists(path) {
			return path, nil
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrSourceNotFound, strings.Join(candidates, ", "))
}

// siblingHTMLPath swaps the source extension for .html.
func siblingHTMLPath(srcPath string) string {
	if idx := strings.LastIndex(srcPath, "."); idx > strings.LastIndexAny(srcPath, `/\`) {
		return srcPath[:idx] + ".html"
	}
	return srcPath + ".html"
}
