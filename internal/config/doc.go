// Package config discovers and loads project-level plugin defaults.
//
// The Load function tries a fixed, ordered list of conventional config
// filenames in the working directory and returns the first one that exists
// and parses:
//
//  1. svelte.config.json
//  2. svelte.config.jsonc
//  3. svelte.config.yaml
//  4. svelte.config.yml
//
// # Supported formats
//
// JSON and JSONC (comments stripped with tidwall/jsonc) share the same
// decoder; YAML is decoded with gopkg.in/yaml.v3. All formats produce the
// same types.Options record, which acts as lower-precedence defaults under
// caller-supplied plugin options.
//
// # Failure isolation
//
// A candidate that exists but fails to read or parse is logged at warn
// level and skipped, and the next candidate is still tried. When no
// candidate loads, Load returns empty options and a nil error: a broken or
// missing config file degrades the build to defaults, it never blocks it.
//
// # Injection
//
// The Loader interface is the seam between the resolution pipeline and any
// particular loading mechanism. Hosts that can evaluate script-based config
// files (svelte.config.js and friends) may supply their own Loader; tests
// use in-memory fakes.
package config
