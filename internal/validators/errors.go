package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
	ErrInvalidDocument = errors.New("invalid document")
	ErrInvalidPatch    = errors.New("patch changes no fields")
)
