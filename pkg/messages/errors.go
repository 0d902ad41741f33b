package messages

import "errors"

var (
	ErrParsingCancelled  = errors.New("catalog parsing cancelled")
	ErrFailedToParseYAML = errors.New("failed to parse YAML catalog")
	ErrFailedToParseJSON = errors.New("failed to parse JSON catalog")
	ErrInvalidCatalog    = errors.New("invalid catalog structure")

	ErrUnsupportedFile = errors.New("unsupported catalog file extension")
	ErrFailedToRead    = errors.New("failed to read catalog file")
	ErrEmptyCatalog    = errors.New("catalog has no languages")
)
