package i18n

import "errors"

var (
	ErrNilAdapter          = errors.New("i18n: adapter is nil")
	ErrInvalidTranslations = errors.New("i18n: invalid translations")
	ErrFailedToParseYAML   = errors.New("i18n: failed to parse YAML content")
	ErrFailedToReadFile    = errors.New("i18n: failed to read translation file")
)
