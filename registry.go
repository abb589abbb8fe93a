package glot

import (
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/pkg/errors"
)

// ErrDuplicateName is returned by Register for a name that is already
// taken.
var ErrDuplicateName = errors.New("language configuration name already registered")

// Registry keeps language configurations by name and maps file
// extensions to them. Plain construction of configurations leaves name
// uniqueness as a caller obligation; the registry upgrades it to a
// checked invariant.
type Registry struct {
	mu          sync.RWMutex
	byName      map[string]*LanguageConfiguration
	byExtension map[string]*LanguageConfiguration
	names       []string
}

func NewRegistry() *Registry {
	return &Registry{
		byName:      make(map[string]*LanguageConfiguration),
		byExtension: make(map[string]*LanguageConfiguration),
	}
}

// Register adds l under its name, optionally mapping file extensions
// (".go" style, leading dot) to it. A duplicate name fails with
// ErrDuplicateName; a duplicate extension silently rebinds, matching how
// editors let a later language claim an extension.
func (r *Registry) Register(l *LanguageConfiguration, extensions ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byName[l.Name]; taken {
		return errors.Wrap(ErrDuplicateName, l.Name)
	}
	r.byName[l.Name] = l
	r.names = append(r.names, l.Name)
	for _, ext := range extensions {
		r.byExtension[ext] = l
	}
	return nil
}

// Lookup returns the configuration registered under name.
func (r *Registry) Lookup(name string) (*LanguageConfiguration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.byName[name]
	return l, ok
}

// ForFile returns the configuration claiming path's extension, falling
// back to PlainText when no language claims it.
func (r *Registry) ForFile(path string) *LanguageConfiguration {
	ext := path
	if i := strings.LastIndex(path, "."); i >= 0 {
		ext = path[i:]
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if l, ok := r.byExtension[ext]; ok {
		return l
	}
	return PlainText()
}

// Names lists registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.names...)
}

// Search fuzzy-matches query against registered names and returns them
// best first.
func (r *Registry) Search(query string) []string {
	r.mu.RLock()
	ranks := fuzzy.RankFindNormalizedFold(query, r.names)
	r.mu.RUnlock()
	sort.Sort(ranks)
	names := make([]string, 0, len(ranks))
	for _, rank := range ranks {
		names = append(names, rank.Target)
	}
	return names
}
