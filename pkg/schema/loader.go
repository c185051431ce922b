package schema

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// document is a single-model schema file.
type document struct {
	Attributes map[string]any `yaml:"attributes"`
}

// modelsDocument holds several named models in one file.
type modelsDocument struct {
	Models map[string]document `yaml:"models"`
}

// ParseYAML decodes a schema document of the form
//
//	attributes:
//	  name: string
//	  email:
//	    type: email
//	    required: true
//
// A scalar attribute value is shorthand for {type: <value>}.
func ParseYAML(data []byte) (Definitions, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrParseSchema, err)
	}
	if doc.Attributes == nil {
		return nil, fmt.Errorf("%w: missing attributes section", ErrParseSchema)
	}
	return definitionsFrom(doc.Attributes)
}

// ParseModelsYAML decodes a document with a top-level models section,
// each model carrying its own attributes.
func ParseModelsYAML(data []byte) (map[string]Definitions, error) {
	var doc modelsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrParseSchema, err)
	}
	if len(doc.Models) == 0 {
		return nil, fmt.Errorf("%w: no models declared", ErrParseSchema)
	}

	models := make(map[string]Definitions, len(doc.Models))
	for name, model := range doc.Models {
		if model.Attributes == nil {
			return nil, fmt.Errorf("%w: model %q has no attributes", ErrParseSchema, name)
		}
		defs, err := definitionsFrom(model.Attributes)
		if err != nil {
			return nil, fmt.Errorf("model %q: %w", name, err)
		}
		models[name] = defs
	}
	return models, nil
}

// LoadFile reads and parses a single-model schema file.
func LoadFile(path string) (Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadSchema, err)
	}
	return ParseYAML(data)
}

// LoadModelsFile reads and parses a multi-model schema file.
func LoadModelsFile(path string) (map[string]Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadSchema, err)
	}
	return ParseModelsYAML(data)
}

func definitionsFrom(raw map[string]any) (Definitions, error) {
	defs := make(Definitions, len(raw))
	for attr, value := range raw {
		switch v := value.(type) {
		case string:
			defs[attr] = Definition{RuleType: v}
		case map[string]any:
			defs[attr] = Definition(v)
		case nil:
			defs[attr] = Definition{}
		default:
			return nil, fmt.Errorf("%w: attribute %q: expected a type name or a mapping, got %T",
				ErrParseSchema, attr, value)
		}
	}
	return defs, nil
}
