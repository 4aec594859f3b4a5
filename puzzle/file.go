package puzzle

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/crillab/knights/logic"
)

// File is the YAML representation of a puzzle.
type File struct {
	Name string `yaml:"name"`
	// Symbols associates aliases, usable in constraints, with symbol names.
	Symbols     SymbolTable `yaml:"symbols"`
	Constraints []string    `yaml:"constraints"`
	// Candidates are aliases of the symbols to check.
	// If empty, all symbols are checked, in their order of declaration.
	Candidates []string `yaml:"candidates,omitempty"`
}

// A SymbolTable is an ordered list of aliases and the symbols they stand for.
type SymbolTable []SymbolEntry

// A SymbolEntry associates an alias with a symbol name.
type SymbolEntry struct {
	Alias string
	Name  string
}

// UnmarshalYAML decodes a mapping from aliases to names, keeping the order of the keys.
func (t *SymbolTable) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: symbols must be a mapping from aliases to names", value.Line)
	}
	res := make(SymbolTable, 0, len(value.Content)/2)
	seen := make(map[string]bool)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var entry SymbolEntry
		if err := value.Content[i].Decode(&entry.Alias); err != nil {
			return err
		}
		if err := value.Content[i+1].Decode(&entry.Name); err != nil {
			return err
		}
		if seen[entry.Alias] {
			return fmt.Errorf("line %d: duplicate symbol alias %q", value.Content[i].Line, entry.Alias)
		}
		seen[entry.Alias] = true
		if entry.Name == "" {
			entry.Name = entry.Alias
		}
		res = append(res, entry)
	}
	*t = res
	return nil
}

// MarshalYAML encodes the table as a mapping, keeping the order of the entries.
func (t SymbolTable) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, entry := range t {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: entry.Alias},
			&yaml.Node{Kind: yaml.ScalarNode, Value: entry.Name})
	}
	return node, nil
}

// Load reads a puzzle from its YAML representation.
func Load(r io.Reader) (Puzzle, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return Puzzle{}, fmt.Errorf("could not decode puzzle: %w", err)
	}
	return f.Puzzle()
}

// LoadFile reads a puzzle from the YAML file at path.
// If the puzzle has no name, the path is used instead.
func LoadFile(path string) (Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return Puzzle{}, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	p, err := Load(f)
	if err != nil {
		return Puzzle{}, fmt.Errorf("could not load %q: %w", path, err)
	}
	if p.Name == "" {
		p.Name = path
	}
	return p, nil
}

// Puzzle builds the puzzle described by f.
func (f File) Puzzle() (Puzzle, error) {
	table := make(map[string]logic.Symbol, len(f.Symbols))
	for _, entry := range f.Symbols {
		table[entry.Alias] = logic.Symbol(entry.Name)
	}
	constraints := make([]logic.Sentence, 0, len(f.Constraints))
	for i, c := range f.Constraints {
		s, err := logic.ParseString(c, logic.WithSymbols(table))
		if err != nil {
			return Puzzle{}, fmt.Errorf("could not parse constraint #%d %q: %w", i+1, c, err)
		}
		constraints = append(constraints, s)
	}
	p := Puzzle{Name: f.Name, Knowledge: logic.And(constraints...)}
	if len(f.Candidates) == 0 {
		for _, entry := range f.Symbols {
			p.Candidates = append(p.Candidates, table[entry.Alias])
		}
		return p, nil
	}
	for _, alias := range f.Candidates {
		sym, ok := table[alias]
		if !ok {
			return Puzzle{}, fmt.Errorf("unknown candidate %q", alias)
		}
		p.Candidates = append(p.Candidates, sym)
	}
	return p, nil
}
