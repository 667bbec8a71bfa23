package compile

import (
	"github.com/sveltebuild/sveltebuild/internal/hash"
	"github.com/sveltebuild/sveltebuild/pkg/types"
)

// ScopeName returns the stable scoping identifier embedded in generated
// output for a piece of style content.
func ScopeName(css string) string {
	return "svelte-" + hash.Hash(css)
}

// Build produces the option record for compiling a full component.
func Build(opts *types.Options, bctx types.BuildContext) *types.CompileOptions {
	if opts == nil {
		opts = &types.Options{}
	}

	flags, requested := minifyFlags(bctx.Minify)

	out := &types.CompileOptions{
		CSS:                types.CSSExternal,
		Generate:           ResolveSide(opts, bctx),
		Dev:                opts.Development != nil && *opts.Development,
		PreserveWhitespace: !flags.Whitespace,
		PreserveComments:   !requested,
		CSSHash:            ScopeName,
	}

	if c := opts.Compiler; c != nil {
		out.CustomElement = c.CustomElement
		out.Runes = c.Runes
		out.ModernAST = c.ModernAST
		out.Namespace = c.Namespace
		if len(c.Experimental) > 0 {
			out.Experimental = make(map[string]any, len(c.Experimental))
			for k, v := range c.Experimental {
				out.Experimental[k] = v
			}
		}
	}
	// Top-level runes applies when the compiler sub-object doesn't set it.
	if out.Runes == nil {
		out.Runes = opts.Runes
	}
	return out
}

// BuildModule produces the option record for compiling a plain script
// module. Only the dev flag and the generation side apply.
func BuildModule(opts *types.Options, bctx types.BuildContext) *types.ModuleCompileOptions {
	dev := false
	if opts != nil && opts.Development != nil {
		dev = *opts.Development
	}
	return &types.ModuleCompileOptions{
		Dev:      dev,
		Generate: ResolveSide(opts, bctx),
	}
}

// minifyFlags translates the bundler's minification intent into per-feature
// switches, plus whether minification was requested at all. The structured
// form counts as requested regardless of its field values; the syntax and
// identifiers flags are carried but deliberately not attached to any output
// field, matching the compiler contract.
func minifyFlags(m types.MinifyMode) (types.MinifyFlags, bool) {
	switch {
	case m.Enabled != nil:
		on := *m.Enabled
		return types.MinifyFlags{Whitespace: on, Syntax: on, Identifiers: on}, on
	case m.Flags != nil:
		return *m.Flags, true
	}
	return types.MinifyFlags{}, false
}
