package modeline

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed mappings.toml
var defaultMappings []byte

// Mappings translate editor-specific language names to language ids.
type Mappings struct {
	Vim   map[string]string `toml:"vim"`
	Emacs map[string]string `toml:"emacs"`
	Kate  map[string]string `toml:"kate"`
}

// DefaultMappings returns the built-in mappings.
func DefaultMappings() *Mappings {
	m, err := ParseMappings(defaultMappings)
	if err != nil {
		panic(fmt.Sprintf("modeline: built-in mappings: %v", err))
	}
	return m
}

// LoadMappings reads a TOML mappings file with [vim], [emacs] and [kate]
// tables.
func LoadMappings(r io.Reader) (*Mappings, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading mappings: %w", err)
	}
	return ParseMappings(data)
}

// LoadMappingsFile reads mappings from path.
func LoadMappingsFile(path string) (*Mappings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mappings: %w", err)
	}
	defer f.Close()
	return LoadMappings(f)
}

// ParseMappings decodes TOML mappings. Names are matched case-insensitively.
func ParseMappings(data []byte) (*Mappings, error) {
	var m Mappings
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing mappings: %w", err)
	}
	m.Vim = lowerKeys(m.Vim)
	m.Emacs = lowerKeys(m.Emacs)
	m.Kate = lowerKeys(m.Kate)
	return &m, nil
}

// Merge returns a copy of m with entries from other taking precedence.
func (m *Mappings) Merge(other *Mappings) *Mappings {
	out := &Mappings{
		Vim:   merge(m.Vim, other.Vim),
		Emacs: merge(m.Emacs, other.Emacs),
		Kate:  merge(m.Kate, other.Kate),
	}
	return out
}

func lowerKeys(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[strings.ToLower(k)] = v
	}
	return out
}

func merge(a, b map[string]string) map[string]string {
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// resolve maps name through table; unmapped names lower-case to the id.
func resolve(table map[string]string, name string) string {
	name = strings.ToLower(name)
	if id, ok := table[name]; ok {
		return id
	}
	return name
}
