package sveltebuild

import (
	"context"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/sveltebuild/sveltebuild/internal/compile"
	"github.com/sveltebuild/sveltebuild/internal/config"
	"github.com/sveltebuild/sveltebuild/internal/logging"
	"github.com/sveltebuild/sveltebuild/internal/options"
	"github.com/sveltebuild/sveltebuild/pkg/types"
)

// FileKind classifies a source file for the plugin.
type FileKind int

// File kinds.
const (
	KindNone      FileKind = iota // not handled by this plugin
	KindComponent                 // full component: markup, script, style
	KindModule                    // plain script module
)

var (
	defaultComponentPatterns = []string{"**/*.svelte"}
	defaultModulePatterns    = []string{"**/*.svelte.js", "**/*.svelte.ts"}
)

// Loader is re-exported so hosts can inject their own config loading
// mechanism without importing internal packages.
type Loader = config.Loader

// ValidationError is the typed error returned for structurally invalid
// plugin options.
type ValidationError = options.ValidationError

// Resolver computes the effective compile options for build invocations.
// A Resolver keeps no per-invocation state and is safe for concurrent use.
type Resolver struct {
	loader            config.Loader
	log               zerolog.Logger
	dir               string
	componentPatterns []string
	modulePatterns    []string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLoader replaces the default file-based project config loader.
func WithLoader(l config.Loader) Option {
	return func(r *Resolver) { r.loader = l }
}

// WithLogger directs diagnostics to log instead of the library default.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Resolver) { r.log = log }
}

// WithDir sets the directory searched for project config files.
// Defaults to the current working directory.
func WithDir(dir string) Option {
	return func(r *Resolver) { r.dir = dir }
}

// WithComponentPatterns overrides the globs classifying component files.
func WithComponentPatterns(patterns ...string) Option {
	return func(r *Resolver) { r.componentPatterns = patterns }
}

// WithModulePatterns overrides the globs classifying module files.
func WithModulePatterns(patterns ...string) Option {
	return func(r *Resolver) { r.modulePatterns = patterns }
}

// New returns a Resolver ready for use.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		log:               logging.Logger,
		dir:               ".",
		componentPatterns: defaultComponentPatterns,
		modulePatterns:    defaultModulePatterns,
	}
	for _, o := range opts {
		o(r)
	}
	if r.loader == nil {
		r.loader = &config.FileLoader{Log: r.log}
	}
	return r
}

// Resolve validates raw plugin options, merges them over the project
// config, and builds the compile options for a full component. A nil raw
// value means the caller supplied no options; anything else must be a
// *types.Options, types.Options, or map[string]any.
//
// Only a *ValidationError aborts; config load problems degrade to defaults
// with a warning.
func (r *Resolver) Resolve(ctx context.Context, raw any, bctx types.BuildContext) (*types.CompileOptions, error) {
	merged, err := r.resolveOptions(ctx, raw)
	if err != nil {
		return nil, err
	}
	return compile.Build(merged, bctx), nil
}

// ResolveModule is the sibling of Resolve for plain script modules.
func (r *Resolver) ResolveModule(ctx context.Context, raw any, bctx types.BuildContext) (*types.ModuleCompileOptions, error) {
	merged, err := r.resolveOptions(ctx, raw)
	if err != nil {
		return nil, err
	}
	return compile.BuildModule(merged, bctx), nil
}

func (r *Resolver) resolveOptions(ctx context.Context, raw any) (*types.Options, error) {
	plugin := &types.Options{}
	if raw != nil {
		var err error
		plugin, err = options.Validate(raw)
		if err != nil {
			return nil, err
		}
	}

	project, err := r.loader.Load(ctx, r.dir)
	if err != nil {
		return nil, fmt.Errorf("load project config: %w", err)
	}
	return options.Merge(project, plugin), nil
}

// Classify reports how path should be compiled. Module patterns are checked
// before component patterns so *.svelte.ts files never fall through to
// component handling under custom pattern sets.
func (r *Resolver) Classify(path string) FileKind {
	// Bundlers hand over platform-native separators; match on slashes.
	p := strings.ReplaceAll(path, `\`, "/")
	for _, pat := range r.modulePatterns {
		if ok, _ := doublestar.Match(pat, p); ok {
			return KindModule
		}
	}
	for _, pat := range r.componentPatterns {
		if ok, _ := doublestar.Match(pat, p); ok {
			return KindComponent
		}
	}
	return KindNone
}

// CSSHash returns the stable svelte-<hash> scoping identifier for a piece
// of style content, identical to the function bound on resolved compile
// options.
func CSSHash(css string) string {
	return compile.ScopeName(css)
}
