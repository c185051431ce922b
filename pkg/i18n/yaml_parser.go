package i18n

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a catalog keyed by language:
//
//	en:
//	  validation:
//	    email: "%{field} must be a valid email address"
//	es:
//	  validation:
//	    email: "%{field} debe ser un correo válido"
func ParseYAML(data []byte) (map[string]map[string]any, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: no languages found", ErrFailedToParseYAML)
	}

	result := make(map[string]map[string]any, len(raw))
	for lang, val := range raw {
		entries, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected mapping, got %T", ErrFailedToParseYAML, lang, val)
		}
		result[lang] = entries
	}
	return result, nil
}
