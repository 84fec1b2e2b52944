// Package store persists the glossary as a single YAML document on disk.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/choplin/acronym/internal/glossary"
)

// FileStore reads and writes the glossary file at a fixed path.
type FileStore struct {
	path   string
	logger *zap.Logger
}

// New returns a FileStore for path. A nil logger disables logging.
func New(path string, logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStore{
		path:   path,
		logger: logger.Named("store"),
	}
}

// Path returns the location of the glossary file.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the glossary, creating the file with an empty mapping when it does not exist yet.
func (s *FileStore) Load() (glossary.Glossary, error) {
	if err := s.ensureFile(); err != nil {
		return nil, err
	}

	//nolint:gosec // G304: path comes from process configuration
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, s.storageError("load", err)
	}

	raw, err := decode(data)
	if err != nil {
		return nil, s.storageError("load", fmt.Errorf("invalid glossary document: %w", err))
	}

	// Hand-edited files may carry lowercase keys.
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	g := make(glossary.Glossary, len(raw))
	for _, name := range names {
		g.Put(name, raw[name])
	}

	s.logger.Debug("loaded glossary", zap.String("path", s.path), zap.Int("entries", len(g)))
	return g, nil
}

// decode parses a glossary document. Every entry must be a mapping holding
// string full_name and description fields.
func decode(data []byte) (map[string]glossary.Entry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	raw := map[string]glossary.Entry{}
	if len(doc.Content) == 0 {
		return raw, nil
	}

	root := resolveAlias(doc.Content[0])
	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return raw, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of acronyms", root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode := root.Content[i]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: acronym must be a string", keyNode.Line)
		}

		entry, err := decodeEntry(resolveAlias(root.Content[i+1]))
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", keyNode.Value, err)
		}
		raw[keyNode.Value] = entry
	}
	return raw, nil
}

func decodeEntry(node *yaml.Node) (glossary.Entry, error) {
	if node.Kind != yaml.MappingNode {
		return glossary.Entry{}, fmt.Errorf("line %d: expected full_name and description", node.Line)
	}

	var entry glossary.Entry
	var hasFullName, hasDescription bool
	for i := 0; i+1 < len(node.Content); i += 2 {
		field := node.Content[i].Value
		value := resolveAlias(node.Content[i+1])

		var target *string
		switch field {
		case "full_name":
			target, hasFullName = &entry.FullName, true
		case "description":
			target, hasDescription = &entry.Description, true
		default:
			continue
		}

		if value.Kind != yaml.ScalarNode || value.ShortTag() != "!!str" {
			return glossary.Entry{}, fmt.Errorf("line %d: %s must be a string", value.Line, field)
		}
		*target = value.Value
	}

	switch {
	case !hasFullName:
		return glossary.Entry{}, fmt.Errorf("line %d: full_name is required", node.Line)
	case !hasDescription:
		return glossary.Entry{}, fmt.Errorf("line %d: description is required", node.Line)
	}
	return entry, nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

// Save replaces the glossary file with the full contents of g. The previous
// file is left intact if any step fails.
func (s *FileStore) Save(g glossary.Glossary) error {
	if g == nil {
		g = glossary.Glossary{}
	}

	data, err := encode(g)
	if err != nil {
		return s.storageError("save", fmt.Errorf("failed to encode glossary: %w", err))
	}

	if err := writeFileAtomic(s.path, data); err != nil {
		return s.storageError("save", err)
	}

	s.logger.Debug("saved glossary", zap.String("path", s.path), zap.Int("entries", len(g)))
	return nil
}

// encode renders g as a YAML mapping with keys in lexicographic order.
func encode(g glossary.Glossary) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range g.Keys() {
		var value yaml.Node
		if err := value.Encode(g[key]); err != nil {
			return nil, err
		}
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&value,
		)
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *FileStore) ensureFile() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return s.storageError("load", fmt.Errorf("failed to create glossary directory: %w", err))
	}

	_, err := os.Stat(s.path)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		s.logger.Debug("initialising empty glossary", zap.String("path", s.path))
		return s.Save(glossary.Glossary{})
	default:
		return s.storageError("load", err)
	}
}

func (s *FileStore) storageError(op string, err error) error {
	return &glossary.StorageError{Op: op, Path: s.path, Err: err}
}

// writeFileAtomic writes data to a temp file next to path and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		cleanup()
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
