package zoo

import "github.com/pkg/errors"

// Error kinds surfaced by the codecs. Callers match them with errors.Is;
// the codecs wrap them with path and position context.
var (
	ErrIO               = errors.New("io-error")
	ErrInvalidHeader    = errors.New("invalid-header")
	ErrInvalidLine      = errors.New("invalid-line")
	ErrInvalidCharacter = errors.New("invalid-character")
	ErrUnexpectedEOF    = errors.New("unexpected-eof")
)
