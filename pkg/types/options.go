package types

// Side is the execution context code is generated for.
type Side string

// Sides. The zero value means the side could not be resolved and the
// compiler should apply its own default.
const (
	SideNone   Side = ""
	SideClient Side = "client"
	SideServer Side = "server"
)

// Target identifies the platform the host bundler is building for.
type Target string

// Targets recognized for side inference. Any other value is treated as
// unknown.
const (
	TargetBrowser Target = "browser"
	TargetNode    Target = "node"
	TargetBun     Target = "bun"
)

// Options is the caller-level plugin configuration. The same shape is used
// for project config files, which act as lower-precedence defaults.
// Compatible with the JSON/JSONC/YAML project config formats.
type Options struct {
	// Force code generation for one side regardless of build target.
	ForceSide Side `json:"forceSide,omitempty" yaml:"forceSide"`

	// Compile in development mode.
	Development *bool `json:"development,omitempty" yaml:"development"`

	// Runes mode, passed through to the compiler.
	Runes *bool `json:"runes,omitempty" yaml:"runes"`

	// Compiler holds options handed to the compiler verbatim.
	Compiler *CompilerOptions `json:"compilerOptions,omitempty" yaml:"compilerOptions"`
}

// CompilerOptions are pass-through compiler settings. This library does not
// interpret them; it only merges and forwards them.
type CompilerOptions struct {
	CustomElement *bool          `json:"customElement,omitempty" yaml:"customElement"`
	Runes         *bool          `json:"runes,omitempty" yaml:"runes"`
	ModernAST     *bool          `json:"modernAst,omitempty" yaml:"modernAst"`
	Namespace     string         `json:"namespace,omitempty" yaml:"namespace"`
	Experimental  map[string]any `json:"experimental,omitempty" yaml:"experimental"`
}

// Clone returns a deep copy. A nil receiver yields nil.
func (c *CompilerOptions) Clone() *CompilerOptions {
	if c == nil {
		return nil
	}
	out := *c
	if c.Experimental != nil {
		out.Experimental = make(map[string]any, len(c.Experimental))
		for k, v := range c.Experimental {
			out.Experimental[k] = v
		}
	}
	return &out
}

// MinifyFlags are the per-feature minification switches understood by the
// compiler. Each field is authoritative when the structured form is used.
type MinifyFlags struct {
	Whitespace  bool `json:"whitespace"`
	Syntax      bool `json:"syntax"`
	Identifiers bool `json:"identifiers"`
}

// MinifyMode captures the host bundler's minification intent, which is
// either a single on/off switch or independent per-feature flags. At most
// one of the two fields is set; the zero value means minification was not
// requested.
type MinifyMode struct {
	Enabled *bool
	Flags   *MinifyFlags
}

// MinifyAll returns the uniform boolean form.
func MinifyAll(on bool) MinifyMode {
	return MinifyMode{Enabled: &on}
}

// MinifyWith returns the structured per-feature form.
func MinifyWith(flags MinifyFlags) MinifyMode {
	return MinifyMode{Flags: &flags}
}

// BuildContext is the slice of the host bundler's configuration this
// library consumes. Nothing else from the bundler config may leak in here.
type BuildContext struct {
	Target Target
	Minify MinifyMode
}
