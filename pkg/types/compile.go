package types

// CSSExternal is the only CSS mode this library emits: component styles are
// always handed to the host pipeline as a separate artifact, never inlined.
const CSSExternal = "external"

// CompileOptions is the option record handed to the compiler for a full
// component (markup, script, style). Constructed once per invocation and
// consumed immediately; not cached across builds.
type CompileOptions struct {
	// CSS is always CSSExternal.
	CSS string

	// Generate selects client or server code generation. SideNone leaves
	// the choice to the compiler's default.
	Generate Side

	// Dev enables development-mode compilation.
	Dev bool

	PreserveWhitespace bool
	PreserveComments   bool

	// Pass-through compiler settings; nil/empty means omitted.
	CustomElement *bool
	Runes         *bool
	ModernAST     *bool
	Namespace     string
	Experimental  map[string]any

	// CSSHash derives the stable scoping identifier for a piece of style
	// content. Deterministic across calls, processes, and builds.
	CSSHash func(css string) string
}

// ModuleCompileOptions is the smaller sibling of CompileOptions used for
// plain script modules with no markup or style.
type ModuleCompileOptions struct {
	Dev      bool
	Generate Side
}
