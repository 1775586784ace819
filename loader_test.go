package shuriken

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEmitter(t *testing.T, base, name, body string) {
	t.Helper()
	dir := filepath.Join(base, "emitters")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(body), 0o644))
}

const smokeYAML = `
spawn_rate: 10
max_particles: 16
start_color: {mode: constant, constant: [0.5, 0.5, 0.5, 1]}
start_size: {mode: constant, constant: 2}
start_rotation: {mode: constant, constant: 0}
start_lifetime: {mode: constant, constant: 4}
`

func TestLoader_LoadAndCache(t *testing.T) {
	base := t.TempDir()
	writeEmitter(t, base, "smoke", smokeYAML)
	l := NewLoader(base, nil)

	doc, err := l.Load("smoke")
	require.NoError(t, err)
	assert.Equal(t, "smoke", doc.Config.Name, "name falls back to file name")
	assert.Equal(t, 16, doc.Settings.MaxParticles)

	// Cached: removing the file does not matter until Invalidate.
	require.NoError(t, os.Remove(l.EmitterPath("smoke")))
	again, err := l.Load("smoke")
	require.NoError(t, err)
	assert.Same(t, doc.Config, again.Config)

	l.Invalidate()
	_, err = l.Load("smoke")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_InvalidFile(t *testing.T) {
	base := t.TempDir()
	writeEmitter(t, base, "broken", "start_color: {mode: constant}\n")
	_, err := NewLoader(base, nil).Load("broken")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoader_ListAndNewSystem(t *testing.T) {
	base := t.TempDir()
	writeEmitter(t, base, "smoke", smokeYAML)
	writeEmitter(t, base, "dust", smokeYAML)
	require.NoError(t, os.WriteFile(filepath.Join(base, "emitters", "notes.txt"), []byte("x"), 0o644))

	l := NewLoader(base, nil)
	names, err := l.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"dust", "smoke"}, names)

	ps, err := l.NewSystem("dust", constSource(0.5))
	require.NoError(t, err)
	assert.Equal(t, "dust", ps.Emitter().Name)
	assert.NotEmpty(t, ps.Id)
}

func TestLoader_BundledAssets(t *testing.T) {
	l := NewLoader("assets", nil)
	names, err := l.List()
	require.NoError(t, err)
	require.NotEmpty(t, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			doc, err := l.Load(name)
			require.NoError(t, err)

			state := NewRandomState(doc.Settings.Seed)
			r := NewResolver(nil)
			var out SpawnOutput
			for i := 0; i <= 10; i++ {
				require.NoError(t, r.Resolve(doc.Config, doc.Settings.RenderMode, float32(i)/10, &state, &out))
				assert.Greater(t, out.Lifetime, float32(0))
			}
		})
	}
}
