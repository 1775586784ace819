package shuriken

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// EmitterDocument is one converted emitter file.
type EmitterDocument struct {
	Config   *EmitterConfig
	Settings EmitterSettings
}

// Loader reads emitter documents from <base>/emitters/<name>.yaml and caches
// the converted result.
type Loader struct {
	baseDir string
	logger  Logger

	mu    sync.RWMutex
	cache map[string]EmitterDocument
}

func NewLoader(baseDir string, logger Logger) *Loader {
	return &Loader{
		baseDir: baseDir,
		logger:  orNop(logger),
		cache:   make(map[string]EmitterDocument),
	}
}

func (l *Loader) EmitterPath(name string) string {
	return filepath.Join(l.baseDir, "emitters", name+".yaml")
}

// Load returns the named emitter, reading and validating it on first use.
func (l *Loader) Load(name string) (EmitterDocument, error) {
	l.mu.RLock()
	doc, ok := l.cache[name]
	l.mu.RUnlock()
	if ok {
		return doc, nil
	}

	path := l.EmitterPath(name)
	b, err := os.ReadFile(path)
	if err != nil {
		return EmitterDocument{}, fmt.Errorf("read emitter %q: %w", name, err)
	}
	cfg, settings, err := DecodeEmitter(b)
	if err != nil {
		return EmitterDocument{}, fmt.Errorf("load %s: %w", path, err)
	}
	if cfg.Name == "" {
		cfg.Name = name
	}
	doc = EmitterDocument{Config: cfg, Settings: settings}

	l.mu.Lock()
	l.cache[name] = doc
	l.mu.Unlock()
	l.logger.Debugf("loaded emitter %q from %s", name, path)
	return doc, nil
}

// List returns the names of all emitter files under the base directory.
func (l *Loader) List() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(l.baseDir, "emitters"))
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}

// Invalidate clears the cache. Call after authoring data changes on disk.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]EmitterDocument)
}

// NewSystem loads the named emitter and builds a particle system from it.
func (l *Loader) NewSystem(name string, ambient AmbientSource) (*ParticleSystem, error) {
	doc, err := l.Load(name)
	if err != nil {
		return nil, err
	}
	return NewParticleSystem(doc.Config, doc.Settings, ambient, l.logger)
}
