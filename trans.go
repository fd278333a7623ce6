package lingua

import "fmt"

// Trans is the transliteration service of one language.
type Trans interface {
	// AvailableMethods lists the scheme names in declaration order.
	AvailableMethods() []string
	// CurrentMethod returns the scheme used by Transliterate.
	CurrentMethod() string
	// SetCurrentMethod selects a scheme; unknown names leave the current
	// one unchanged and fail with ErrUnknownScheme.
	SetCurrentMethod(name string) error
	// Transliterate converts native-script text with the current scheme.
	Transliterate(text string) string
	// Untransliterate converts text back to the native script.
	Untransliterate(text string) string
}

// Transliterator implements Trans over a shared, read-only SchemeSet. The
// current scheme is per instance and unsynchronized: goroutines should
// each use their own instance, or the stateless *With methods.
type Transliterator struct {
	set     *SchemeSet
	current *Scheme
}

var _ Trans = (*Transliterator)(nil)

// NewTransliterator returns an instance positioned on the first scheme.
func NewTransliterator(set *SchemeSet) *Transliterator {
	return &Transliterator{set: set, current: set.schemes[0]}
}

// Code returns the language code.
func (t *Transliterator) Code() string {
	return t.set.Code
}

// AvailableMethods implements Trans.
func (t *Transliterator) AvailableMethods() []string {
	return t.set.Names()
}

// CurrentMethod implements Trans.
func (t *Transliterator) CurrentMethod() string {
	return t.current.Name
}

// SetCurrentMethod implements Trans.
func (t *Transliterator) SetCurrentMethod(name string) error {
	s, err := t.scheme(name)
	if err != nil {
		return err
	}
	t.current = s
	return nil
}

// Transliterate implements Trans.
func (t *Transliterator) Transliterate(text string) string {
	return t.current.Forward(text)
}

// Untransliterate implements Trans.
func (t *Transliterator) Untransliterate(text string) string {
	return t.current.Reverse(text)
}

// TransliterateWith converts text with the named scheme without touching
// the current one. An empty name means the current scheme.
func (t *Transliterator) TransliterateWith(name, text string) (string, error) {
	s, err := t.schemeOrCurrent(name)
	if err != nil {
		return "", err
	}
	return s.Forward(text), nil
}

// UntransliterateWith is the reverse of TransliterateWith.
func (t *Transliterator) UntransliterateWith(name, text string) (string, error) {
	s, err := t.schemeOrCurrent(name)
	if err != nil {
		return "", err
	}
	return s.Reverse(text), nil
}

// Lossless reports whether the named scheme round-trips.
func (t *Transliterator) Lossless(name string) (bool, error) {
	s, err := t.schemeOrCurrent(name)
	if err != nil {
		return false, err
	}
	return s.Lossless, nil
}

func (t *Transliterator) schemeOrCurrent(name string) (*Scheme, error) {
	if name == "" {
		return t.current, nil
	}
	return t.scheme(name)
}

func (t *Transliterator) scheme(name string) (*Scheme, error) {
	s, ok := t.set.Scheme(name)
	if !ok {
		return nil, fmt.Errorf("%s scheme %q: %w", t.set.Code, name, ErrUnknownScheme)
	}
	return s, nil
}
