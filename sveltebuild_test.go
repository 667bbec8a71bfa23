package sveltebuild

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sveltebuild/sveltebuild/pkg/types"
)

// fakeLoader returns fixed project defaults without touching the filesystem.
type fakeLoader struct {
	opts *types.Options
	err  error
}

func (f *fakeLoader) Load(ctx context.Context, dir string) (*types.Options, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.opts == nil {
		return &types.Options{}, nil
	}
	return f.opts, nil
}

func TestResolveNoConfigBrowserBuild(t *testing.T) {
	r := New(WithDir(t.TempDir()))

	out, err := r.Resolve(context.Background(), map[string]any{}, types.BuildContext{
		Target: types.TargetBrowser,
		Minify: types.MinifyAll(false),
	})
	require.NoError(t, err)

	assert.Equal(t, types.SideClient, out.Generate)
	assert.True(t, out.PreserveWhitespace)
	assert.True(t, out.PreserveComments)
	assert.Equal(t, types.CSSExternal, out.CSS)
	assert.False(t, out.Dev)
}

func TestResolveExplicitSideWinsOverTarget(t *testing.T) {
	r := New(WithLoader(&fakeLoader{}))

	out, err := r.Resolve(context.Background(), map[string]any{"forceSide": "server"}, types.BuildContext{
		Target: types.TargetBrowser,
	})
	require.NoError(t, err)
	assert.Equal(t, types.SideServer, out.Generate)
}

func TestResolveInvalidOptionsAbort(t *testing.T) {
	r := New(WithLoader(&fakeLoader{}))

	_, err := r.Resolve(context.Background(), map[string]any{"forceSide": "edge"}, types.BuildContext{})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "forceSide", verr.Field)
}

func TestResolveNilOptionsUseProjectDefaults(t *testing.T) {
	dev := true
	r := New(WithLoader(&fakeLoader{opts: &types.Options{
		ForceSide:   types.SideServer,
		Development: &dev,
	}}))

	out, err := r.Resolve(context.Background(), nil, types.BuildContext{Target: types.TargetBrowser})
	require.NoError(t, err)

	// No caller options supplied, so project config decides.
	assert.Equal(t, types.SideServer, out.Generate)
	assert.True(t, out.Dev)
}

func TestResolvePluginOverridesProjectConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := `{"forceSide": "client", "compilerOptions": {"runes": true}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "svelte.config.json"), []byte(cfg), 0644))

	r := New(WithDir(dir))
	out, err := r.Resolve(context.Background(), map[string]any{
		"forceSide":       "server",
		"compilerOptions": map[string]any{"namespace": "svg"},
	}, types.BuildContext{Target: types.TargetBrowser})
	require.NoError(t, err)

	assert.Equal(t, types.SideServer, out.Generate)
	// Nested merge keeps the project's runes while taking the plugin's
	// namespace.
	require.NotNil(t, out.Runes)
	assert.True(t, *out.Runes)
	assert.Equal(t, "svg", out.Namespace)
}

func TestResolveMinifiedBunBuild(t *testing.T) {
	r := New(WithLoader(&fakeLoader{}))

	out, err := r.Resolve(context.Background(), map[string]any{}, types.BuildContext{
		Target: types.TargetBun,
		Minify: types.MinifyWith(types.MinifyFlags{Whitespace: true, Syntax: true}),
	})
	require.NoError(t, err)

	assert.Equal(t, types.SideServer, out.Generate)
	assert.False(t, out.PreserveWhitespace)
	assert.False(t, out.PreserveComments)
}

func TestResolveModule(t *testing.T) {
	r := New(WithLoader(&fakeLoader{}))

	out, err := r.ResolveModule(context.Background(), map[string]any{"development": true}, types.BuildContext{
		Target: types.TargetNode,
	})
	require.NoError(t, err)

	assert.True(t, out.Dev)
	assert.Equal(t, types.SideServer, out.Generate)
}

func TestResolveLoaderFailurePropagates(t *testing.T) {
	r := New(WithLoader(&fakeLoader{err: context.DeadlineExceeded}))

	_, err := r.Resolve(context.Background(), nil, types.BuildContext{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClassify(t *testing.T) {
	r := New(WithLoader(&fakeLoader{}))

	tests := []struct {
		path string
		want FileKind
	}{
		{"App.svelte", KindComponent},
		{"src/routes/app/App.svelte", KindComponent},
		{"lib/state.svelte.ts", KindModule},
		{"src/stores/counter.svelte.js", KindModule},
		{"main.go", KindNone},
		{"style.css", KindNone},
		{"component.svelte.bak", KindNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Classify(tt.path), "path %q", tt.path)
	}
}

func TestClassifyWindowsPaths(t *testing.T) {
	r := New(WithLoader(&fakeLoader{}))
	assert.Equal(t, KindComponent, r.Classify(`src\routes\App.svelte`))
}

func TestClassifyCustomPatterns(t *testing.T) {
	r := New(
		WithLoader(&fakeLoader{}),
		WithComponentPatterns("widgets/**/*.svelte"),
		WithModulePatterns("widgets/**/*.svelte.ts"),
	)

	assert.Equal(t, KindComponent, r.Classify("widgets/nav/Nav.svelte"))
	assert.Equal(t, KindModule, r.Classify("widgets/nav/state.svelte.ts"))
	assert.Equal(t, KindNone, r.Classify("src/App.svelte"))
}

func TestCSSHashStableIdentifier(t *testing.T) {
	css := ".foo { color: red; }"
	assert.Equal(t, "svelte-1vtufk0", CSSHash(css))
	assert.Equal(t, CSSHash(css), CSSHash(css))
	assert.NotEqual(t, CSSHash(css), CSSHash(".bar { color: red; }"))
}

func TestResolverConcurrentUse(t *testing.T) {
	r := New(WithLoader(&fakeLoader{}))
	done := make(chan struct{})

	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 50; j++ {
				_, err := r.Resolve(context.Background(), map[string]any{"forceSide": "client"}, types.BuildContext{
					Target: types.TargetBrowser,
					Minify: types.MinifyAll(true),
				})
				assert.NoError(t, err)
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
