package lingua

import "strings"

// Stem strips inflectional affixes from word with the language's stemming
// alternatives, repeating until none applies. An alternative applies only
// when it makes the word strictly shorter and leaves at least the minimum
// stem length, so stemming terminates and Stem(Stem(x)) == Stem(x).
// Words no alternative touches are returned unchanged (after
// normalization).
func (in *Inflector) Stem(word string) string {
	t := in.table
	w := applyNorms(t.norms, normalizeWord(word))
	for {
		next, ok := in.stemOnce(w)
		if !ok {
			return w
		}
		w = next
	}
}

// stemOnce applies the first admissible stemming alternative.
func (in *Inflector) stemOnce(w string) (string, bool) {
	t := in.table
	n := runeLen(w)
	for _, a := range t.stemAlts {
		if !a.matches(w, w, t) {
			continue
		}
		s := a.replace(w)
		if l := runeLen(s); l < n && l >= t.minStem {
			return s, true
		}
	}
	return "", false
}

// Lemmatize maps an inflected form to its dictionary form: the lexicon
// (explicit lemma entries, then every irregular form declared in the
// tables) first, retried in lower case for capitalized words; then the
// language's lemmatization ops, the first one that changes the word
// winning; finally the stem.
func (in *Inflector) Lemmatize(word string) string {
	t := in.table
	w := normalizeWord(word)
	if w == "" {
		return ""
	}
	if lemma, ok := in.lookupLemma(w); ok {
		return lemma
	}

	n := applyNorms(t.norms, w)
	if n != w {
		if lemma, ok := in.lookupLemma(n); ok {
			return lemma
		}
	}

	for _, op := range t.lemOps {
		if f, ok := op.apply(n, t); ok && f != "" && f != n {
			return f
		}
	}
	return in.Stem(n)
}

func (in *Inflector) lookupLemma(w string) (string, bool) {
	lex := in.table.lex
	if lemma, ok := lex.Lemma(w); ok {
		return lemma, true
	}
	// sentence-initial capital
	if lower := strings.ToLower(w); lower != w {
		return lex.Lemma(lower)
	}
	return "", false
}
