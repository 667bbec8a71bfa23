package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/sveltebuild/sveltebuild/internal/logging"
	"github.com/sveltebuild/sveltebuild/pkg/types"
)

// Candidate project config filenames, tried in order. The first candidate
// that exists and parses wins.
var candidates = []string{
	"svelte.config.json",
	"svelte.config.jsonc",
	"svelte.config.yaml",
	"svelte.config.yml",
}

// Loader loads project-level option defaults for the resolver.
// Implementations must treat an absent configuration as empty options, not
// an error, so a missing config file never blocks a build.
type Loader interface {
	Load(ctx context.Context, dir string) (*types.Options, error)
}

// FileLoader reads the project configuration from conventional config files
// in the working directory.
type FileLoader struct {
	Log zerolog.Logger
}

// NewFileLoader returns a FileLoader using the library logger.
func NewFileLoader() *FileLoader {
	return &FileLoader{Log: logging.Logger}
}

// Load tries each candidate filename in dir and returns the first one that
// loads. A candidate that exists but fails to parse is recorded as a
// warning and skipped so later candidates are still tried; when nothing
// loads the result is empty defaults.
func (l *FileLoader) Load(ctx context.Context, dir string) (*types.Options, error) {
	for _, name := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				l.Log.Warn().Str("path", path).Err(err).Msg("skipping unreadable svelte config")
			}
			continue
		}

		opts, err := parse(name, data)
		if err != nil {
			l.Log.Warn().Str("path", path).Err(err).Msg("skipping invalid svelte config")
			continue
		}
		l.Log.Debug().Str("path", path).Msg("loaded svelte config")
		return opts, nil
	}
	return &types.Options{}, nil
}

func parse(name string, data []byte) (*types.Options, error) {
	var opts types.Options
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return nil, fmt.Errorf("parse yaml config: %w", err)
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(data), &opts); err != nil {
			return nil, fmt.Errorf("parse json config: %w", err)
		}
	}
	return &opts, nil
}
