package provider

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the YAML representation of a provider.
type Document struct {
	Name      string   `yaml:"name"`
	Calendars []string `yaml:"calendars"`
	Locales   []string `yaml:"locales"`
}

// UnknownCalendarError reports a calendar id outside the known set.
type UnknownCalendarError struct {
	ID string
}

func (e *UnknownCalendarError) Error() string {
	return fmt.Sprintf("unknown calendar %q", e.ID)
}

// InvalidLocaleError reports a locale tag that does not parse.
type InvalidLocaleError struct {
	Tag string
	Err error
}

func (e *InvalidLocaleError) Error() string {
	return fmt.Sprintf("invalid locale %q: %v", e.Tag, e.Err)
}

func (e *InvalidLocaleError) Unwrap() error {
	return e.Err
}

// ParseError reports a document that could not be decoded or validated.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "provider document: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError reports a document that could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseYAML decodes a provider document. Malformed YAML, unknown fields,
// unknown calendars and unparsable locales yield a *ParseError.
func ParseYAML(content []byte) (*Static, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, &ParseError{Err: err}
	}
	if doc.Name == "" {
		doc.Name = "yaml"
	}
	s, err := NewStatic(doc.Name, doc.Calendars, doc.Locales)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return s, nil
}

// LoadFile reads and decodes a provider document from disk.
func LoadFile(path string) (*Static, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	return ParseYAML(content)
}

// Marshal encodes s as a YAML document.
func Marshal(s *Static) ([]byte, error) {
	return yaml.Marshal(Document{
		Name:      s.Name(),
		Calendars: s.Calendars(),
		Locales:   s.Locales(),
	})
}
