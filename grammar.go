package lingua

import "strings"

// PartOfSpeech is the grammatical class of a word.
type PartOfSpeech uint8

const (
	Noun PartOfSpeech = 1 + iota
	Verb
	Adjective
	Adverb
	Preposition
	Pronoun
)

// Tense locates an event in time.
type Tense uint8

const (
	Past Tense = 1 + iota
	Present
	Future
)

// Aspect describes the internal temporal structure of an event.
type Aspect uint8

const (
	Simple Aspect = 1 + iota
	Continuous
	Perfect
	PerfectContinuous
)

// Mood expresses the speaker's attitude toward the event.
type Mood uint8

const (
	Indicative Mood = 1 + iota
	Subjunctive
	Conditional
	Optative
	Imperative
	Jussive
	Potential
	Hypothetical
	Inferential
)

// Voice relates the participants to the action.
type Voice uint8

const (
	Active Voice = 1 + iota
	Passive
	Middle
)

// Number is grammatical number.
type Number uint8

const (
	Singular Number = 1 + iota
	Dual
	Plural
)

// Person is grammatical person.
type Person uint8

const (
	First Person = 1 + iota
	Second
	Third
)

// Gender is grammatical gender, for languages that model it.
type Gender uint8

const (
	Masculine Gender = 1 + iota
	Feminine
	Neuter
)

// Case is grammatical case.
type Case uint8

const (
	Nominative Case = 1 + iota
	Accusative
	Genitive
	Dative
	Prepositional
	Ablative
	Instrumental
	Vocative
)

// Category names one of the grammatical dimensions of a Categories record.
// The declaration order is the canonical key order.
type Category uint8

const (
	CategoryTense Category = 1 + iota
	CategoryAspect
	CategoryMood
	CategoryVoice
	CategoryNumber
	CategoryPerson
	CategoryGender
	CategoryCase
)

// allCategories lists the categories in canonical key order.
var allCategories = []Category{
	CategoryTense,
	CategoryAspect,
	CategoryMood,
	CategoryVoice,
	CategoryNumber,
	CategoryPerson,
	CategoryGender,
	CategoryCase,
}

// paradigmCategories lists, in canonical order, the categories each
// paradigm inflects for. Other categories of a request are ignored.
var paradigmCategories = map[PartOfSpeech][]Category{
	Verb: {CategoryTense, CategoryAspect, CategoryMood, CategoryVoice, CategoryNumber, CategoryPerson, CategoryGender},
	Noun: {CategoryNumber, CategoryGender, CategoryCase},
}

var allPartsOfSpeech = map[string]PartOfSpeech{
	"noun":        Noun,
	"verb":        Verb,
	"adjective":   Adjective,
	"adverb":      Adverb,
	"preposition": Preposition,
	"pronoun":     Pronoun,
}

var allTenses = map[string]Tense{
	"past":    Past,
	"present": Present,
	"future":  Future,
}

var allAspects = map[string]Aspect{
	"simple":             Simple,
	"continuous":         Continuous,
	"perfect":            Perfect,
	"perfect-continuous": PerfectContinuous,
}

var allMoods = map[string]Mood{
	"indicative":   Indicative,
	"subjunctive":  Subjunctive,
	"conditional":  Conditional,
	"optative":     Optative,
	"imperative":   Imperative,
	"jussive":      Jussive,
	"potential":    Potential,
	"hypothetical": Hypothetical,
	"inferential":  Inferential,
}

var allVoices = map[string]Voice{
	"active":  Active,
	"passive": Passive,
	"middle":  Middle,
}

var allNumbers = map[string]Number{
	"singular": Singular,
	"dual":     Dual,
	"plural":   Plural,
}

var allPersons = map[string]Person{
	"first":  First,
	"second": Second,
	"third":  Third,
	"1":      First,
	"2":      Second,
	"3":      Third,
}

var allGenders = map[string]Gender{
	"masculine": Masculine,
	"feminine":  Feminine,
	"neuter":    Neuter,
}

var allCases = map[string]Case{
	"nominative":    Nominative,
	"accusative":    Accusative,
	"genitive":      Genitive,
	"dative":        Dative,
	"prepositional": Prepositional,
	"ablative":      Ablative,
	"instrumental":  Instrumental,
	"vocative":      Vocative,
}

var allCategoryNames = map[string]Category{
	"tense":  CategoryTense,
	"aspect": CategoryAspect,
	"mood":   CategoryMood,
	"voice":  CategoryVoice,
	"number": CategoryNumber,
	"person": CategoryPerson,
	"gender": CategoryGender,
	"case":   CategoryCase,
}

var (
	allPartsOfSpeechRev = reverse(allPartsOfSpeech)
	allTensesRev        = reverse(allTenses)
	allAspectsRev       = reverse(allAspects)
	allMoodsRev         = reverse(allMoods)
	allVoicesRev        = reverse(allVoices)
	allNumbersRev       = reverse(allNumbers)
	allPersonsRev       = map[Person]string{First: "first", Second: "second", Third: "third"}
	allGendersRev       = reverse(allGenders)
	allCasesRev         = reverse(allCases)
	allCategoryNamesRev = reverse(allCategoryNames)
)

func reverse[T comparable](m map[string]T) map[T]string {
	out := make(map[T]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

func lookup[T any](m map[string]T, s string) (T, bool) {
	v, ok := m[strings.ToLower(strings.TrimSpace(s))]
	return v, ok
}

func (p PartOfSpeech) String() string { return allPartsOfSpeechRev[p] }
func (t Tense) String() string        { return allTensesRev[t] }
func (a Aspect) String() string       { return allAspectsRev[a] }
func (m Mood) String() string         { return allMoodsRev[m] }
func (v Voice) String() string        { return allVoicesRev[v] }
func (n Number) String() string       { return allNumbersRev[n] }
func (p Person) String() string       { return allPersonsRev[p] }
func (g Gender) String() string       { return allGendersRev[g] }
func (c Case) String() string         { return allCasesRev[c] }
func (c Category) String() string     { return allCategoryNamesRev[c] }

// ParsePartOfSpeech parses a part-of-speech name such as "noun".
func ParsePartOfSpeech(s string) (PartOfSpeech, error) {
	p, ok := lookup(allPartsOfSpeech, s)
	if !ok {
		return 0, &CategoryError{Category: "pos", Value: s}
	}
	return p, nil
}

// ParseCategory parses a category name such as "tense".
func ParseCategory(s string) (Category, bool) {
	return lookup(allCategoryNames, s)
}

// AllCategories returns every category in canonical key order.
func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// Values returns the canonical value names of category c, sorted by
// enumeration order.
func (c Category) Values() []string {
	var n int
	var name func(i int) string
	switch c {
	case CategoryTense:
		n, name = len(allTensesRev), func(i int) string { return Tense(i).String() }
	case CategoryAspect:
		n, name = len(allAspectsRev), func(i int) string { return Aspect(i).String() }
	case CategoryMood:
		n, name = len(allMoodsRev), func(i int) string { return Mood(i).String() }
	case CategoryVoice:
		n, name = len(allVoicesRev), func(i int) string { return Voice(i).String() }
	case CategoryNumber:
		n, name = len(allNumbersRev), func(i int) string { return Number(i).String() }
	case CategoryPerson:
		n, name = len(allPersonsRev), func(i int) string { return Person(i).String() }
	case CategoryGender:
		n, name = len(allGendersRev), func(i int) string { return Gender(i).String() }
	case CategoryCase:
		n, name = len(allCasesRev), func(i int) string { return Case(i).String() }
	default:
		return nil
	}
	out := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, name(i))
	}
	return out
}
