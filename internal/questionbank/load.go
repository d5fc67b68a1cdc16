package questionbank

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// bankFile is the on-disk YAML layout of a question bank.
type bankFile struct {
	Sections []Section `yaml:"sections"`
}

// Load reads and validates a YAML question bank from path.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Parse decodes a YAML question bank. Unknown fields are rejected.
func Parse(data []byte) (*Bank, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f bankFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}
	return New(f.Sections)
}

// Marshal encodes the bank as YAML in the format accepted by Parse.
func (b *Bank) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(bankFile{Sections: b.sections}); err != nil {
		return nil, fmt.Errorf("encode bank: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode bank: %w", err)
	}
	return buf.Bytes(), nil
}
