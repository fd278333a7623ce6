package lingua

import "fmt"

// Resolve inflects word with the paradigm of the given kind
// (KindConjugation or KindDeclension) and reports how the form was found.
//
// Resolution order: the request is validated, completed with the
// language defaults and cut down to the categories of the paradigm; words the lexicon excludes from the paradigm fail;
// the word's exception table is consulted (most specific matching
// selector); then the generative rules, most specific first, declaration
// order breaking ties. The first applicable entry wins.
func (in *Inflector) Resolve(kind PartOfSpeech, word string, c Categories) (Inflection, error) {
	t := in.table

	var (
		paradigm *Paradigm
		irregs   *irregTable
		fail     error
		verb     string
	)
	switch kind {
	case KindConjugation:
		paradigm, irregs, fail, verb = t.conj, t.conjIrregs, ErrUnconjugableForm, "conjugate"
	case KindDeclension:
		paradigm, irregs, fail, verb = t.decl, t.declIrregs, ErrUndeclinableForm, "declense"
	default:
		return Inflection{}, &CategoryError{Category: "pos", Value: kind.String()}
	}

	if err := c.Validate(); err != nil {
		return Inflection{}, err
	}

	word = normalizeWord(word)
	req := c.WithDefaults(t.Defaults).only(paradigmCategories[kind])
	inf := Inflection{Word: word, Key: req.Key()}

	if word == "" {
		return inf, fmt.Errorf("%s: empty word: %w", verb, fail)
	}
	if kind == KindDeclension && t.lex.Invariant(word) {
		return inf, fmt.Errorf("%s %q: word does not inflect: %w", verb, word, fail)
	}
	if !t.lex.admits(word, kind) {
		return inf, fmt.Errorf("%s %q: not a %s: %w", verb, word, kind, fail)
	}

	if ir := irregs.lookup(word, req); ir != nil {
		if form, ok := ir.Form.apply(word, t); ok {
			inf.Form = form
			inf.Source = SourceIrregular
			inf.Selector = ir.Selector.String()
			return inf, nil
		}
	}

	for _, r := range paradigm.candidates(req) {
		if form, ok := r.Op.apply(word, t); ok {
			inf.Form = form
			inf.Source = SourceRule
			inf.Selector = r.Selector.String()
			return inf, nil
		}
	}

	return inf, fmt.Errorf("%s %q [%s]: %w", verb, word, inf.Key, fail)
}

// Derivate implements Morpho. A per-word exception for the (src, dst) pair
// wins over the pair's rule; src == dst returns the word unchanged.
func (in *Inflector) Derivate(word string, src, dst PartOfSpeech) (string, error) {
	if src.String() == "" {
		return "", &CategoryError{Category: "pos", Value: fmt.Sprint(uint8(src))}
	}
	if dst.String() == "" {
		return "", &CategoryError{Category: "pos", Value: fmt.Sprint(uint8(dst))}
	}

	t := in.table
	word = normalizeWord(word)
	if word == "" {
		return "", fmt.Errorf("derivate %s→%s: empty word: %w", src, dst, ErrUnsupportedDerivation)
	}
	if src == dst {
		return word, nil
	}

	pair := posPair{src: src, dst: dst}
	if f, ok := t.derivIrregs[pair][word]; ok {
		return f, nil
	}
	op, ok := t.derivs[pair]
	if !ok {
		return "", fmt.Errorf("derivate %q %s→%s: no rule for %s: %w", word, src, dst, t.Code, ErrUnsupportedDerivation)
	}
	form, ok := op.apply(word, t)
	if !ok {
		return "", fmt.Errorf("derivate %q %s→%s: rule does not apply: %w", word, src, dst, ErrUnsupportedDerivation)
	}
	return form, nil
}

// Derivations lists the (src, dst) pairs the language can derive, in
// part-of-speech order.
func (in *Inflector) Derivations() [][2]PartOfSpeech {
	var out [][2]PartOfSpeech
	for src := Noun; src <= Pronoun; src++ {
		for dst := Noun; dst <= Pronoun; dst++ {
			if _, ok := in.table.derivs[posPair{src, dst}]; ok {
				out = append(out, [2]PartOfSpeech{src, dst})
			}
		}
	}
	return out
}
