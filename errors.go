package lingua

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped) by the engines and the registry.
var (
	ErrInvalidCategoryValue  = errors.New("invalid category value")
	ErrUnconjugableForm      = errors.New("unconjugable form")
	ErrUndeclinableForm      = errors.New("undeclinable form")
	ErrUnsupportedDerivation = errors.New("unsupported derivation")
	ErrUnknownScheme         = errors.New("unknown scheme")
	ErrUnknownLanguage       = errors.New("unknown language")
	ErrMalformedData         = errors.New("malformed data")
)

// CategoryError reports an option value outside its enumeration.
type CategoryError struct {
	Category string
	Value    string
}

func (e *CategoryError) Error() string {
	return fmt.Sprintf("%s: %q is not a valid %s", ErrInvalidCategoryValue, e.Value, e.Category)
}

func (e *CategoryError) Unwrap() error { return ErrInvalidCategoryValue }

// DataError reports a malformed line in a language data file.
type DataError struct {
	File string
	Line int
	Msg  string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

func (e *DataError) Unwrap() error { return ErrMalformedData }
