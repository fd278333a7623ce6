package lingua

// Source tells where an inflected form came from.
type Source string

const (
	SourceIrregular Source = "irregular"
	SourceRule      Source = "rule"
)

// Inflection is a resolved inflected form together with how it was found.
type Inflection struct {
	// Word is the base word as given (after normalization).
	Word string
	// Form is the inflected surface form.
	Form string
	// Key is the canonical key of the request, defaults applied, over the
	// categories of the paradigm.
	Key string
	// Source is SourceIrregular or SourceRule.
	Source Source
	// Selector is the canonical key of the entry that produced Form.
	Selector string
}

// Paradigm kinds accepted by Inflector.Resolve.
const (
	KindConjugation = Verb
	KindDeclension  = Noun
)
