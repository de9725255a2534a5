package configstore

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jobmill-project/jobmill/pkg/errclass"
	"github.com/jobmill-project/jobmill/pkg/fsutil"
)

// Marshal renders the store as a flat YAML mapping with sorted keys, so
// that saving the same store always produces the same bytes.
func (s *Store) Marshal() ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, name := range s.Names() {
		value := s.values[name]
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
		valNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
		root.Content = append(root.Content, keyNode, valNode)
	}

	data, err := yaml.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("marshal store: %w", err)
	}
	return data, nil
}

// Unmarshal parses a flat YAML mapping of scalars into the store,
// replacing its current contents. Scalar values of any YAML type (bool,
// int, string) are kept in their literal string form.
func (s *Store) Unmarshal(data []byte) error {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("parse store: %w", err)
	}

	values := make(map[string]string)
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		mapping := root.Content[0]
		if mapping.Kind != yaml.MappingNode {
			return fmt.Errorf("parse store: document is not a mapping")
		}
		for i := 0; i+1 < len(mapping.Content); i += 2 {
			key := mapping.Content[i]
			val := mapping.Content[i+1]
			if key.Kind != yaml.ScalarNode || val.Kind != yaml.ScalarNode {
				return fmt.Errorf("parse store: option %q is not a scalar", key.Value)
			}
			values[key.Value] = val.Value
		}
	}

	s.values = values
	return nil
}

// LoadFile reads a YAML job configuration from path. A missing file yields an
// empty store, mirroring "no options set".
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return New(), nil
	}
	if err != nil {
		return nil, errclass.ErrConfigRead.WithMessagef("read %s: %v", path, err)
	}

	s := New()
	if err := s.Unmarshal(data); err != nil {
		return nil, errclass.ErrConfigRead.WithMessagef("%s: %v", path, err)
	}
	return s, nil
}

// SaveFile atomically writes the store as YAML to path.
func (s *Store) SaveFile(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return errclass.ErrConfigWrite.WithMessagef("%s: %v", path, err)
	}
	if err := fsutil.AtomicWrite(path, data, 0644); err != nil {
		return errclass.ErrConfigWrite.WithMessagef("%s: %v", path, err)
	}
	return nil
}
