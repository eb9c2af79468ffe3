// Package catalog describes the entity kinds the console manages: one
// collection per kind, with its export filename, display field and
// foreign-key-style reference fields. The default registry is embedded;
// deployments can override it with their own kinds file.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed kinds.yaml
var defaultKindsYAML []byte

// Kind describes one entity kind.
type Kind struct {
	// Name is the collection name, e.g. "kalaam".
	Name string `yaml:"name"`

	// Title is the human-readable name shown in the console.
	Title string `yaml:"title"`

	// ExportFile is the fixed filename exports of this collection use.
	ExportFile string `yaml:"exportFile"`

	// DisplayField is the field shown when a record is referenced from
	// elsewhere.
	DisplayField string `yaml:"displayField"`

	// References maps a field name on this kind to the kind it points at,
	// e.g. poetId -> poets. Resolution is read-only display sugar; nothing
	// enforces referential integrity.
	References map[string]string `yaml:"references,omitempty"`
}

// CacheKey is the name of the cache entry this kind owns.
func (k Kind) CacheKey() string {
	return "cache." + k.Name
}

// Registry is the ordered set of known kinds.
type Registry struct {
	kinds  []Kind
	byName map[string]Kind
}

type kindsFile struct {
	Kinds []Kind `yaml:"kinds"`
}

// Load parses a kinds file.
func Load(r io.Reader) (*Registry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read kinds: %w", err)
	}
	var f kindsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse kinds: %w", err)
	}
	if len(f.Kinds) == 0 {
		return nil, fmt.Errorf("kinds file declares no kinds")
	}

	reg := &Registry{byName: make(map[string]Kind, len(f.Kinds))}
	for _, k := range f.Kinds {
		if k.Name == "" {
			return nil, fmt.Errorf("kind with empty name")
		}
		if _, dup := reg.byName[k.Name]; dup {
			return nil, fmt.Errorf("duplicate kind %q", k.Name)
		}
		if k.ExportFile == "" {
			k.ExportFile = k.Name + ".json"
		}
		reg.kinds = append(reg.kinds, k)
		reg.byName[k.Name] = k
	}
	return reg, nil
}

// LoadFile loads a kinds file from disk.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open kinds: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the embedded registry. Panics only if the embedded file is
// corrupt, which a unit test pins.
func Default() *Registry {
	reg, err := Load(bytes.NewReader(defaultKindsYAML))
	if err != nil {
		panic(fmt.Sprintf("embedded kinds.yaml: %v", err))
	}
	return reg
}

// Kinds returns all kinds in declaration order.
func (r *Registry) Kinds() []Kind {
	return append([]Kind(nil), r.kinds...)
}

// Lookup returns the kind with the given collection name.
func (r *Registry) Lookup(name string) (Kind, bool) {
	k, ok := r.byName[name]
	return k, ok
}
