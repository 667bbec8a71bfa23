// Package sveltebuild resolves the effective compile configuration a
// bundler plugin hands to the Svelte compiler for one build invocation.
//
// Three sources of intent are merged, in rising precedence: a project
// config file (svelte.config.json/jsonc/yaml), caller-supplied plugin
// options, and the ambient bundler configuration (target platform and
// minification mode). The result is a validated option record for either a
// full component or a plain script module.
//
//	r := sveltebuild.New(sveltebuild.WithDir(cwd))
//	opts, err := r.Resolve(ctx, pluginOptions, types.BuildContext{
//		Target: types.TargetBrowser,
//		Minify: types.MinifyAll(true),
//	})
//
// Resolution rules:
//
//   - Plugin options override project config field by field; the
//     compilerOptions sub-object is merged with the same precedence.
//   - An explicit forceSide wins over target inference; otherwise browser
//     builds generate client code and node/bun builds generate server
//     code. Unknown targets leave the side unresolved for the compiler to
//     default.
//   - A boolean minify sets whitespace, syntax, and identifier
//     minification uniformly; the structured form carries each flag
//     independently. Whitespace and comments are preserved exactly when
//     minification does not claim them.
//   - Component styles are always emitted as an external artifact, scoped
//     with a deterministic svelte-<hash> identifier that is bit-compatible
//     with the compiler's own CSS-scoping hash.
//
// Only structurally invalid plugin options fail a build. Config files that
// are missing or broken degrade to defaults with a warning diagnostic, and
// an unrecognized build target degrades to an unresolved side.
package sveltebuild
