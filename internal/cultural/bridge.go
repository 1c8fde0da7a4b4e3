// Package cultural provides culturally-informed guidance for
// end-of-life communication. Profiles describe tendencies of a
// tradition, never certainties; every piece of guidance is a starting
// point for asking the family, not a prescription.
package cultural

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"embed"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
)

var (
	// ErrInvalidProfile indicates a profile failed validation.
	ErrInvalidProfile = errors.New("invalid cultural profile")

	// ErrInvalidTOML indicates a profile file could not be parsed.
	ErrInvalidTOML = errors.New("invalid profile TOML")
)

//go:embed profiles/*.toml
var builtinProfiles embed.FS

// Bridge holds the cultural profile registry and generates
// communication guidance from it.
type Bridge struct {
	logger *zap.Logger

	mu       sync.RWMutex
	profiles map[string]Profile
}

// New creates a Bridge seeded with the built-in profiles.
func New(logger *zap.Logger) (*Bridge, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &Bridge{
		logger:   logger,
		profiles: make(map[string]Profile),
	}

	entries, err := builtinProfiles.ReadDir("profiles")
	if err != nil {
		return nil, fmt.Errorf("reading built-in profiles: %w", err)
	}
	for _, entry := range entries {
		data, err := builtinProfiles.ReadFile("profiles/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading built-in profile %s: %w", entry.Name(), err)
		}
		key := profileKey(entry.Name())
		p, err := parseProfile(data)
		if err != nil {
			return nil, fmt.Errorf("built-in profile %s: %w", entry.Name(), err)
		}
		b.profiles[key] = p
	}

	return b, nil
}

// LoadDir loads additional profiles from *.toml files in dir. The
// profile key is the file name without extension. Later loads replace
// earlier profiles under the same key; built-ins can be overridden.
// A missing directory is not an error.
func (b *Bridge) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading profile directory: %w", err)
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading profile %s: %w", path, err)
		}
		p, err := parseProfile(data)
		if err != nil {
			b.logger.Warn("skipping invalid profile",
				zap.String("path", path),
				zap.Error(err),
			)
			continue
		}

		key := profileKey(entry.Name())
		b.mu.Lock()
		b.profiles[key] = p
		b.mu.Unlock()
		loaded++
	}

	b.logger.Info("loaded cultural profiles",
		zap.String("dir", dir),
		zap.Int("count", loaded),
	)
	return nil
}

// Lookup returns the profile registered under key, if any. Keys are
// case-insensitive.
func (b *Bridge) Lookup(key string) (Profile, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	p, ok := b.profiles[strings.ToLower(key)]
	return p, ok
}

// Keys lists registered profile keys in sorted order.
func (b *Bridge) Keys() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	keys := make([]string, 0, len(b.profiles))
	for k := range b.profiles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// UniversalQuestions lists questions worth asking any family before
// assuming cultural patterns.
func (b *Bridge) UniversalQuestions() []string {
	return []string{
		"How does your family prefer to make important medical decisions together?",
		"Who would you like to be included in discussions about your loved one's care?",
		"Are there cultural, religious, or spiritual practices that are important to your family?",
		"How much information would you/your family like about what to expect?",
		"Are there specific things that would bring comfort or have meaning for your family?",
		"Is there anything about your family's beliefs about illness or death we should understand?",
		"How can we best support you during this time?",
	}
}

// HumilityReminders lists the limits of cultural knowledge.
func (b *Bridge) HumilityReminders() []string {
	return []string{
		"Cultural profiles describe tendencies, not certainties",
		"Individual variation within cultures exceeds between-culture variation",
		"Second/third generation immigrants may hold different views than parents",
		"Assuming cultural patterns without asking can cause harm",
		"Building trust relationship enables better cultural navigation",
		"When uncertain, ask - most families appreciate the effort",
		"Our own cultural lens affects how we perceive others",
	}
}

func parseProfile(data []byte) (Profile, error) {
	var p Profile
	if err := toml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrInvalidTOML, err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func profileKey(filename string) string {
	return strings.ToLower(strings.TrimSuffix(filename, filepath.Ext(filename)))
}
