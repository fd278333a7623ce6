package lingua

import (
	"slices"
	"strings"
)

// Lexicon holds per-word facts that rules cannot infer from spelling:
// known parts of speech, non-inflecting words, lexical classes and
// canonical dictionary forms.
type Lexicon struct {
	// pos maps a word to the parts of speech it is known to have.
	pos map[string][]PartOfSpeech
	// invariant lists nouns that never inflect.
	invariant map[string]bool
	// classes maps class name → member words.
	classes map[string]map[string]bool
	// lemmas maps a surface form to its dictionary form. Explicit entries
	// are registered before irregular forms so they take precedence.
	lemmas map[string]string
}

func newLexicon() *Lexicon {
	return &Lexicon{
		pos:       make(map[string][]PartOfSpeech),
		invariant: make(map[string]bool),
		classes:   make(map[string]map[string]bool),
		lemmas:    make(map[string]string),
	}
}

// PartsOfSpeech returns the known parts of speech of word, nil if unknown.
func (l *Lexicon) PartsOfSpeech(word string) []PartOfSpeech {
	return l.pos[word]
}

// Known reports whether word has a part-of-speech entry.
func (l *Lexicon) Known(word string) bool {
	_, ok := l.pos[word]
	return ok
}

// admits reports whether word may be used as p: unknown words are
// admitted, known words only if listed with p.
func (l *Lexicon) admits(word string, p PartOfSpeech) bool {
	list, ok := l.pos[word]
	if !ok {
		return true
	}
	return slices.Contains(list, p)
}

// Invariant reports whether word is marked as non-inflecting.
func (l *Lexicon) Invariant(word string) bool {
	return l.invariant[word]
}

// Lemma returns the registered dictionary form of a surface form.
func (l *Lexicon) Lemma(form string) (string, bool) {
	lemma, ok := l.lemmas[form]
	return lemma, ok
}

func (l *Lexicon) inClass(class, word string) bool {
	return l.classes[class][word]
}

func (l *Lexicon) addPOS(word string, p PartOfSpeech) {
	if !slices.Contains(l.pos[word], p) {
		l.pos[word] = append(l.pos[word], p)
	}
}

func (l *Lexicon) addClass(class, word string) {
	m, ok := l.classes[class]
	if !ok {
		m = make(map[string]bool)
		l.classes[class] = m
	}
	m[word] = true
}

// addLemma registers form → lemma unless form already has an entry.
// Multi-word forms ("will go") are skipped: lemmatization works on words.
func (l *Lexicon) addLemma(form, lemma string) {
	if form == "" || strings.ContainsRune(form, ' ') {
		return
	}
	if _, ok := l.lemmas[form]; ok {
		return
	}
	l.lemmas[form] = lemma
}
