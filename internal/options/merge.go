package options

import (
	"github.com/sveltebuild/sveltebuild/pkg/types"
)

// Merge combines project-level defaults with per-invocation plugin options.
// Plugin options win for every top-level field; compiler options are merged
// field-by-field with the same precedence. Neither input is mutated and the
// result never shares its compiler-option record with either input.
func Merge(project, plugin *types.Options) *types.Options {
	if project == nil {
		project = &types.Options{}
	}
	if plugin == nil {
		plugin = &types.Options{}
	}

	out := &types.Options{
		ForceSide:   project.ForceSide,
		Development: project.Development,
		Runes:       project.Runes,
	}
	if plugin.ForceSide != types.SideNone {
		out.ForceSide = plugin.ForceSide
	}
	if plugin.Development != nil {
		out.Development = plugin.Development
	}
	if plugin.Runes != nil {
		out.Runes = plugin.Runes
	}
	out.Compiler = mergeCompiler(project.Compiler, plugin.Compiler)
	return out
}

func mergeCompiler(base, override *types.CompilerOptions) *types.CompilerOptions {
	out := &types.CompilerOptions{}
	for _, src := range []*types.CompilerOptions{base, override} {
		if src == nil {
			continue
		}
		if src.CustomElement != nil {
			out.CustomElement = src.CustomElement
		}
		if src.Runes != nil {
			out.Runes = src.Runes
		}
		if src.ModernAST != nil {
			out.ModernAST = src.ModernAST
		}
		if src.Namespace != "" {
			out.Namespace = src.Namespace
		}
		for k, v := range src.Experimental {
			if out.Experimental == nil {
				out.Experimental = make(map[string]any)
			}
			out.Experimental[k] = v
		}
	}
	return out
}
