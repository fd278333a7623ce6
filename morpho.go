package lingua

// Morpho is the morphology service of one language.
type Morpho interface {
	// Conjugate inflects a verb for the requested categories.
	Conjugate(verb string, c Categories) (string, error)
	// DeclenseNoun inflects a noun for number, case and gender.
	DeclenseNoun(noun string, c Categories) (string, error)
	// Derivate turns a word of part of speech src into one of dst.
	Derivate(word string, src, dst PartOfSpeech) (string, error)
	// Stem strips inflectional affixes. It never fails.
	Stem(word string) string
	// Lemmatize returns the dictionary form of word. It never fails.
	Lemmatize(word string) string
}

// Inflector implements Morpho on top of a MorphTable. It has no mutable
// state and is safe for concurrent use.
type Inflector struct {
	table *MorphTable
}

var _ Morpho = (*Inflector)(nil)

// NewInflector returns an engine backed by t.
func NewInflector(t *MorphTable) *Inflector {
	return &Inflector{table: t}
}

// Code returns the language code of the underlying table.
func (in *Inflector) Code() string {
	return in.table.Code
}

// Table returns the underlying read-only table.
func (in *Inflector) Table() *MorphTable {
	return in.table
}

// Conjugate implements Morpho.
func (in *Inflector) Conjugate(verb string, c Categories) (string, error) {
	inf, err := in.Resolve(KindConjugation, verb, c)
	if err != nil {
		return "", err
	}
	return inf.Form, nil
}

// DeclenseNoun implements Morpho.
func (in *Inflector) DeclenseNoun(noun string, c Categories) (string, error) {
	inf, err := in.Resolve(KindDeclension, noun, c)
	if err != nil {
		return "", err
	}
	return inf.Form, nil
}
