package i18n

import "errors"

var (
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrInvalidCatalog    = errors.New("invalid translation catalog")
	ErrFailedToReadFile  = errors.New("failed to read translation file")
)
