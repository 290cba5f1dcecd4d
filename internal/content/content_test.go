package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vforvitorio/portfolio/internal/portfolio"
)

const minimalYAML = `
name: Test Person
projects:
  - id: alpha
    title: Alpha
  - id: beta
    title: Beta
    details:
      description: beta details
      key_features: [one, two]
highlights:
  - text: Go
    color: "#00add8"
`

func TestDefaultContent(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)

	assert.NotEmpty(t, b.Site.Name)
	assert.Equal(t, 3, b.Catalog.Len())
	for _, id := range []string{"openvino", "geti", "anomalib"} {
		p, ok := b.Catalog.Lookup(id)
		require.True(t, ok, id)
		assert.True(t, p.HasDetails(), id)
	}
	assert.Contains(t, string(b.Highlighter.Highlight("F1")), "<span")
	assert.Len(t, b.Site.Contact.Links, 3)
}

func TestParseMinimal(t *testing.T) {
	b, err := Parse([]byte(minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, "Test Person", b.Site.Name)
	alpha, _ := b.Catalog.Lookup("alpha")
	assert.False(t, alpha.HasDetails())
	beta, _ := b.Catalog.Lookup("beta")
	require.True(t, beta.HasDetails())
	assert.Equal(t, []string{"one", "two"}, beta.Details.KeyFeatures)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("projects: [unterminated"))
	assert.Error(t, err)

	_, err = Parse([]byte("projects:\n  - id: a\n  - id: a\n"))
	assert.True(t, errors.Is(err, portfolio.ErrDuplicateProjectID))

	_, err = Parse([]byte("highlights:\n  - text: x\n    color: \"red;x\"\n"))
	assert.True(t, errors.Is(err, portfolio.ErrInvalidKeyword))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestStoreReloadKeepsPreviousOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalYAML), 0o644))

	s, err := NewStore(path, nil)
	require.NoError(t, err)
	require.Equal(t, 2, s.Current().Catalog.Len())

	require.NoError(t, os.WriteFile(path, []byte("projects:\n  - id: ''\n"), 0o644))
	assert.Error(t, s.Reload())
	assert.Equal(t, 2, s.Current().Catalog.Len())

	require.NoError(t, os.WriteFile(path, []byte("projects:\n  - id: solo\n"), 0o644))
	require.NoError(t, s.Reload())
	assert.Equal(t, 1, s.Current().Catalog.Len())
}

func TestStoreWatchRequiresPath(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)

	assert.Error(t, NewStaticStore(b).Watch(context.Background()))
}

func TestStoreWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalYAML), 0o644))

	s, err := NewStore(path, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Watch(ctx) }()

	// Keep rewriting until the watcher has been registered and picks it up.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("projects:\n  - id: solo\n"), 0o644)
		return s.Current().Catalog.Len() == 1
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
