package lingua

import (
	"fmt"
	"slices"
)

// Rule maps a category selector to the op producing the inflected form.
type Rule struct {
	// Selector is the partial assignment the rule applies to.
	Selector Categories
	// Op builds the form from the base word.
	Op *Op
	// order is the declaration index, used to break specificity ties.
	order int
}

// Paradigm is the ordered rule table for one part of speech.
type Paradigm struct {
	// Kind is the part of speech the paradigm inflects.
	Kind PartOfSpeech
	// rules is kept sorted by specificity (descending) then declaration order.
	rules []*Rule
	// keys holds the canonical keys already declared.
	keys map[string]bool
}

func newParadigm(kind PartOfSpeech) *Paradigm {
	return &Paradigm{Kind: kind, keys: make(map[string]bool)}
}

// add appends a rule. Each canonical key may be declared at most once.
func (p *Paradigm) add(sel Categories, op *Op) error {
	key := sel.Key()
	if p.keys[key] {
		return fmt.Errorf("%s paradigm: duplicate selector %q", p.Kind, sel)
	}
	p.keys[key] = true
	r := &Rule{Selector: sel, Op: op, order: len(p.rules)}
	p.rules = append(p.rules, r)
	slices.SortStableFunc(p.rules, byPriority)
	return nil
}

// Len returns the number of rules.
func (p *Paradigm) Len() int {
	return len(p.rules)
}

// candidates returns the rules whose selector matches req, most specific first.
func (p *Paradigm) candidates(req Categories) []*Rule {
	var out []*Rule
	for _, r := range p.rules {
		if r.Selector.Matches(req) {
			out = append(out, r)
		}
	}
	return out
}

func byPriority(a, b *Rule) int {
	if sa, sb := a.Selector.Specificity(), b.Selector.Specificity(); sa != sb {
		return sb - sa
	}
	return a.order - b.order
}

// Irreg is an exception form for one word under a selector.
type Irreg struct {
	// Word is the base word the exception belongs to.
	Word string
	// Selector is the category assignment the exception covers.
	Selector Categories
	// Form is the exception, a literal or a template.
	Form  *Op
	order int
}

// irregTable indexes exceptions by base word.
type irregTable struct {
	byWord map[string][]*Irreg
}

func newIrregTable() *irregTable {
	return &irregTable{byWord: make(map[string][]*Irreg)}
}

func (t *irregTable) add(word string, sel Categories, form *Op) error {
	key := sel.Key()
	for _, ir := range t.byWord[word] {
		if ir.Selector.Key() == key {
			return fmt.Errorf("irregular %q: duplicate selector %q", word, sel)
		}
	}
	ir := &Irreg{Word: word, Selector: sel, Form: form, order: len(t.byWord[word])}
	t.byWord[word] = append(t.byWord[word], ir)
	return nil
}

// lookup returns the most specific exception of word matching req.
func (t *irregTable) lookup(word string, req Categories) *Irreg {
	var best *Irreg
	for _, ir := range t.byWord[word] {
		if !ir.Selector.Matches(req) {
			continue
		}
		if best == nil || ir.Selector.Specificity() > best.Selector.Specificity() {
			best = ir
		}
	}
	return best
}

// posPair keys derivation tables.
type posPair struct {
	src, dst PartOfSpeech
}

// MorphTable holds everything a language needs for morphology. It is built
// once by the loader and never mutated afterwards.
type MorphTable struct {
	// Code is the ISO 639-2 language code.
	Code string
	// Defaults fills the categories a request leaves unspecified.
	Defaults Categories

	conj *Paradigm
	decl *Paradigm

	conjIrregs *irregTable
	declIrregs *irregTable

	// forms maps a named auxiliary form to its rule.
	forms map[string]*Op
	// formIrregs maps form name → word → exception.
	formIrregs map[string]map[string]string

	derivs      map[posPair]*Op
	derivIrregs map[posPair]map[string]string

	// norms are applied, all of them, before stemming and lemmatization.
	norms []alternative
	// stemAlts are the stemming alternatives, see Inflector.Stem.
	stemAlts []alternative
	// minStem is the shortest stem, in runes, stemming may produce.
	minStem int
	// lemOps are tried in order by Lemmatize.
	lemOps []*Op

	lex *Lexicon
}

func newMorphTable(code string) *MorphTable {
	return &MorphTable{
		Code:        code,
		conj:        newParadigm(Verb),
		decl:        newParadigm(Noun),
		conjIrregs:  newIrregTable(),
		declIrregs:  newIrregTable(),
		forms:       make(map[string]*Op),
		formIrregs:  make(map[string]map[string]string),
		derivs:      make(map[posPair]*Op),
		derivIrregs: make(map[posPair]map[string]string),
		minStem:     2,
		lex:         newLexicon(),
	}
}

// Conjugation returns the verb paradigm.
func (t *MorphTable) Conjugation() *Paradigm { return t.conj }

// Declension returns the noun paradigm.
func (t *MorphTable) Declension() *Paradigm { return t.decl }

// Lexicon returns the word list attached to the table.
func (t *MorphTable) Lexicon() *Lexicon { return t.lex }

// form implements resolver. Per-word exceptions win over the form rule.
func (t *MorphTable) form(name, word string) (string, bool) {
	if f, ok := t.formIrregs[name][word]; ok {
		return f, true
	}
	op, ok := t.forms[name]
	if !ok {
		return "", false
	}
	return op.apply(word, t)
}

// hasClass implements resolver.
func (t *MorphTable) hasClass(class, word string) bool {
	return t.lex.inClass(class, word)
}
