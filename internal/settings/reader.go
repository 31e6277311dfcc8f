package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is used when no settings path is given.
const DefaultFileName = "export-settings.json"

// ErrEmpty is returned for a settings document without content.
var ErrEmpty = errors.New("export settings are empty")

// ReadFile reads and decodes the settings file at path.
func ReadFile(path string) (*ExportSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s, err := Read(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Read decodes settings from data. UTF-8 and UTF-16 input with a byte order mark is
// accepted, as is JSON with trailing commas.
func Read(data []byte) (*ExportSettings, error) {
	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return nil, fmt.Errorf("decode export settings: %w", err)
	}

	if len(bytes.TrimSpace(decoded)) == 0 {
		return nil, ErrEmpty
	}

	var s ExportSettings
	if err := yaml.Unmarshal(decoded, &s); err != nil {
		return nil, fmt.Errorf("parse export settings: %w", err)
	}

	s.applyDefaults()

	return &s, nil
}

// Marshal encodes s as indented JSON.
func Marshal(s *ExportSettings) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(data, '\n'), nil
}

// WriteFile writes s as JSON to path.
func WriteFile(path string, s *ExportSettings) error {
	data, err := Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

func (s *ExportSettings) applyDefaults() {
	s.Title = strings.TrimSpace(s.Title)

	for _, defs := range []*AttributeDefinitions{s.RequirementAttributeDefinitions, s.SpecificationAttributeDefinitions} {
		if defs == nil {
			continue
		}

		defs.TextAttributeDefinitionID = strings.TrimSpace(defs.TextAttributeDefinitionID)
		defs.ForeignDeletedAttributeDefinitionID = strings.TrimSpace(defs.ForeignDeletedAttributeDefinitionID)
		defs.ForeignModifiedOnAttributeDefinitionID = strings.TrimSpace(defs.ForeignModifiedOnAttributeDefinitionID)
		defs.NameAttributeDefinitionID = strings.TrimSpace(defs.NameAttributeDefinitionID)
	}

	for i := range s.ExternalIdentifierMap.Correspondence {
		c := &s.ExternalIdentifierMap.Correspondence[i]
		c.ExternalID = strings.TrimSpace(c.ExternalID)
	}
}
