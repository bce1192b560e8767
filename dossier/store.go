package dossier

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store is an immutable set of dossiers read from a directory.
type Store struct {
	dossiers map[string]*Dossier
	names    []string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{dossiers: map[string]*Dossier{}}
}

// Open reads every .yml and .yaml file under root. Every file holds one
// dossier, the first malformed file fails the open.
func Open(root string) (*Store, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("can't read dossiers %s: %s", root, err.Error())
	}

	store := &Store{dossiers: map[string]*Dossier{}}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yml" && ext != ".yaml" {
			continue
		}

		path := filepath.Join(root, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("can't read dossier %s: %s", path, err.Error())
		}

		dossier := &Dossier{}
		if err := yaml.Unmarshal(data, dossier); err != nil {
			return nil, fmt.Errorf("%s: %s", path, err.Error())
		}
		if err := dossier.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %s", path, err.Error())
		}
		if _, has := store.dossiers[dossier.Name]; has {
			return nil, fmt.Errorf("%s: duplicate dossier '%s'", path, dossier.Name)
		}

		store.dossiers[dossier.Name] = dossier
		store.names = append(store.names, dossier.Name)
	}

	// Priority ascending, unprioritized last, name breaks ties
	sort.SliceStable(store.names, func(i, j int) bool {
		pi := store.rank(store.names[i])
		pj := store.rank(store.names[j])
		if pi != pj {
			return pi < pj
		}
		return store.names[i] < store.names[j]
	})
	return store, nil
}

func (store *Store) rank(name string) int {
	priority := store.dossiers[name].Priority
	if priority <= 0 {
		return int(^uint(0) >> 1)
	}
	return priority
}

// Names returns the dossier names in priority order.
func (store *Store) Names() []string {
	names := make([]string, len(store.names))
	copy(names, store.names)
	return names
}

// Has reports whether a dossier exists for the indication.
func (store *Store) Has(name string) bool {
	_, has := store.dossiers[name]
	return has
}

// Get returns the dossier for the indication.
func (store *Store) Get(name string) (*Dossier, error) {
	dossier, has := store.dossiers[name]
	if !has {
		return nil, fmt.Errorf("dossier '%s' not found", name)
	}
	return dossier, nil
}

// Len returns the number of dossiers.
func (store *Store) Len() int {
	return len(store.names)
}
