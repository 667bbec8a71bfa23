// Package options validates and merges plugin-level configuration.
package options

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/sveltebuild/sveltebuild/pkg/types"
)

// ValidationError reports a structurally invalid option bag. It is the only
// error in the library that aborts a build.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid plugin options: " + e.Message
	}
	return fmt.Sprintf("invalid plugin option %q: %s", e.Field, e.Message)
}

// Validate checks the shape of caller-supplied options and narrows them to
// a typed record. Callers may pass a *types.Options / types.Options
// directly, or the untyped map a bundler hands its plugins. No semantic
// transformation is performed and there are no side effects.
func Validate(raw any) (*types.Options, error) {
	switch v := raw.(type) {
	case nil:
		return nil, &ValidationError{Message: "expected an object, got nil"}
	case *types.Options:
		if v == nil {
			return nil, &ValidationError{Message: "expected an object, got nil"}
		}
		if err := checkSide(v.ForceSide); err != nil {
			return nil, err
		}
		return v, nil
	case types.Options:
		if err := checkSide(v.ForceSide); err != nil {
			return nil, err
		}
		return &v, nil
	case map[string]any:
		return fromMap(v)
	default:
		return nil, &ValidationError{Message: fmt.Sprintf("expected an object, got %T", raw)}
	}
}

func checkSide(side types.Side) error {
	switch side {
	case types.SideNone, types.SideClient, types.SideServer:
		return nil
	}
	return &ValidationError{
		Field:   "forceSide",
		Message: fmt.Sprintf(`must be %q or %q, got %q`, types.SideClient, types.SideServer, side),
	}
}

// fromMap shape-checks the fields this library owns, then decodes the whole
// bag. Fields beyond the known set are ignored rather than rejected.
func fromMap(m map[string]any) (*types.Options, error) {
	if v, ok := m["forceSide"]; ok {
		s, isString := v.(string)
		if !isString {
			return nil, &ValidationError{
				Field:   "forceSide",
				Message: fmt.Sprintf("expected string, got %T", v),
			}
		}
		if err := checkSide(types.Side(s)); err != nil {
			return nil, err
		}
	}
	if v, ok := m["compilerOptions"]; ok && v != nil {
		if _, isMap := v.(map[string]any); !isMap {
			return nil, &ValidationError{
				Field:   "compilerOptions",
				Message: fmt.Sprintf("expected object, got %T", v),
			}
		}
	}

	var opts types.Options
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &opts,
		TagName: "json",
	})
	if err != nil {
		return nil, fmt.Errorf("build option decoder: %w", err)
	}
	if err := dec.Decode(m); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	return &opts, nil
}
