package lingua

import (
	"fmt"
	"strings"
	"unicode"
)

// mapping is one declared correspondence of a scheme.
type mapping struct {
	src, dst string
	// fwd and rev tell which directions the mapping takes part in.
	fwd, rev bool
}

// Scheme is a named transliteration table between a native script and a
// target script.
type Scheme struct {
	// Name identifies the scheme within its language.
	Name string
	// Lossless marks schemes whose reverse mapping is meant to recover
	// every input made of the graphemes the forward mapping covers. Loading
	// rejects a lossless scheme when two two-way mappings share a target or
	// when two covered sources in a row do not read back. Longer runs are
	// not checked.
	Lossless bool

	mappings []mapping
	sources  map[string]bool
	forward  *trie
	reverse  *trie
}

func newScheme(name string) *Scheme {
	return &Scheme{Name: name, sources: make(map[string]bool)}
}

// add declares a mapping. A source may have only one forward target.
func (s *Scheme) add(m mapping) error {
	if m.src == "" || m.dst == "" {
		return fmt.Errorf("scheme %s: empty sequence in %q→%q", s.Name, m.src, m.dst)
	}
	if m.fwd {
		if s.sources[m.src] {
			return fmt.Errorf("scheme %s: source %q mapped twice", s.Name, m.src)
		}
		s.sources[m.src] = true
	}
	s.mappings = append(s.mappings, m)
	return nil
}

// geminate adds, for every forward mapping whose target starts with a
// consonant letter not listed in exclude, a mapping of marker+source to the
// target with its first letter doubled (っか → kka).
func (s *Scheme) geminate(marker, exclude string) {
	for _, m := range s.snapshot() {
		if !m.fwd || strings.HasPrefix(m.src, marker) {
			continue
		}
		first := []rune(m.dst)[0]
		if first > unicode.MaxASCII || !unicode.IsLetter(first) ||
			strings.ContainsRune("aeiou", unicode.ToLower(first)) ||
			strings.ContainsRune(exclude, first) {
			continue
		}
		s.addGenerated(mapping{src: marker + m.src, dst: string(first) + m.dst, fwd: true, rev: m.rev})
	}
}

// moraic adds, for every forward mapping whose target starts with one of
// the trigger runes, a mapping of marker+source to prefix+target
// (んあ → n'a), keeping the marker distinguishable before vowels.
func (s *Scheme) moraic(marker, prefix, triggers string) {
	for _, m := range s.snapshot() {
		if !m.fwd || m.src == marker {
			continue
		}
		if !strings.ContainsRune(triggers, []rune(m.dst)[0]) {
			continue
		}
		s.addGenerated(mapping{src: marker + m.src, dst: prefix + m.dst, fwd: true, rev: m.rev})
	}
}

// katakana adds a forward-only mapping for the katakana spelling of every
// all-hiragana source.
func (s *Scheme) katakana() {
	for _, m := range s.snapshot() {
		if !m.fwd {
			continue
		}
		kata, ok := toKatakana(m.src)
		if !ok {
			continue
		}
		s.addGenerated(mapping{src: kata, dst: m.dst, fwd: true})
	}
}

// addGenerated adds a generated mapping unless its source is already taken.
func (s *Scheme) addGenerated(m mapping) {
	if s.sources[m.src] {
		return
	}
	_ = s.add(m)
}

func (s *Scheme) snapshot() []mapping {
	out := make([]mapping, len(s.mappings))
	copy(out, s.mappings)
	return out
}

// build compiles the declared mappings into the lookup tries.
func (s *Scheme) build() error {
	if len(s.mappings) == 0 {
		return fmt.Errorf("scheme %s: no mappings", s.Name)
	}
	s.forward = newTrie()
	s.reverse = newTrie()
	for _, m := range s.mappings {
		if m.fwd {
			s.forward.insert(m.src, m.dst)
		}
		if m.fwd && m.rev {
			s.reverse.insert(m.dst, m.src)
		}
	}
	// reverse-only entries rank after the two-way ones
	for _, m := range s.mappings {
		if m.rev && !m.fwd {
			s.reverse.insert(m.dst, m.src)
		}
	}
	if s.Lossless {
		seen := make(map[string]string)
		for _, m := range s.mappings {
			if !m.fwd || !m.rev {
				continue
			}
			if prev, ok := seen[m.dst]; ok {
				return fmt.Errorf("lossless scheme %s: %q is the target of both %q and %q", s.Name, m.dst, prev, m.src)
			}
			seen[m.dst] = m.src
		}
		return s.checkBoundaries()
	}
	return nil
}

// checkBoundaries round-trips every pair of two-way sources whose first
// target is a proper prefix of a longer reverse key: with a, b and ab all
// targets, reading back a then b would take ab.
func (s *Scheme) checkBoundaries() error {
	var twoWay []mapping
	for _, m := range s.mappings {
		if m.fwd && m.rev {
			twoWay = append(twoWay, m)
		}
	}
	for _, first := range twoWay {
		if !s.reverse.extends(first.dst) {
			continue
		}
		for _, next := range twoWay {
			src := first.src + next.src
			if back := s.reverse.convert(s.forward.convert(src)); back != src {
				return fmt.Errorf("lossless scheme %s: %q reads back as %q", s.Name, src, back)
			}
		}
	}
	return nil
}

// Len returns the number of mappings, generated ones included.
func (s *Scheme) Len() int {
	return len(s.mappings)
}

// Forward converts text from the native script.
func (s *Scheme) Forward(text string) string {
	return s.forward.convert(Normalize(text))
}

// Reverse converts text back to the native script. Where a target
// sequence has several sources, the first declared one is chosen.
func (s *Scheme) Reverse(text string) string {
	return s.reverse.convert(Normalize(text))
}

// Candidates returns every source declared for target, in priority order.
func (s *Scheme) Candidates(target string) []string {
	n := s.reverse.find(Normalize(target))
	if n == nil {
		return nil
	}
	out := make([]string, len(n.values))
	copy(out, n.values)
	return out
}

func toKatakana(s string) (string, bool) {
	rs := []rune(s)
	for i, r := range rs {
		if r < 'ぁ' || r > 'ゖ' {
			return "", false
		}
		rs[i] = r + ('ァ' - 'ぁ')
	}
	return string(rs), true
}

// ---- trie ---------------------------------------------------------------

type trieNode struct {
	children map[rune]*trieNode
	// values holds the mapped sequences; only values[0] is used for
	// conversion, the rest are reverse-mapping alternatives.
	values []string
}

type trie struct {
	root *trieNode
}

func newTrie() *trie {
	return &trie{root: &trieNode{}}
}

func (t *trie) insert(key, value string) {
	n := t.root
	for _, r := range key {
		if n.children == nil {
			n.children = make(map[rune]*trieNode)
		}
		c, ok := n.children[r]
		if !ok {
			c = &trieNode{}
			n.children[r] = c
		}
		n = c
	}
	n.values = append(n.values, value)
}

func (t *trie) find(key string) *trieNode {
	n := t.root
	for _, r := range key {
		n = n.children[r]
		if n == nil {
			return nil
		}
	}
	if len(n.values) == 0 {
		return nil
	}
	return n
}

// extends reports whether some key is longer than key and starts with it.
func (t *trie) extends(key string) bool {
	n := t.root
	for _, r := range key {
		if n = n.children[r]; n == nil {
			return false
		}
	}
	return len(n.children) > 0
}

// longest returns the value of the longest key that starts at rs[i] and
// its length in runes, or 0 when no key matches.
func (t *trie) longest(rs []rune, i int) (string, int) {
	var (
		best    string
		bestLen int
	)
	n := t.root
	for j := i; j < len(rs); j++ {
		n = n.children[rs[j]]
		if n == nil {
			break
		}
		if len(n.values) > 0 {
			best, bestLen = n.values[0], j-i+1
		}
	}
	return best, bestLen
}

// convert scans text left to right, replacing the longest key found at
// each position; runes starting no key are copied through.
func (t *trie) convert(text string) string {
	rs := []rune(text)
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(rs); {
		if v, n := t.longest(rs, i); n > 0 {
			b.WriteString(v)
			i += n
			continue
		}
		b.WriteRune(rs[i])
		i++
	}
	return b.String()
}

// SchemeSet is the ordered list of schemes of one language.
type SchemeSet struct {
	// Code is the ISO 639-2 language code.
	Code    string
	schemes []*Scheme
	byName  map[string]*Scheme
}

func newSchemeSet(code string) *SchemeSet {
	return &SchemeSet{Code: code, byName: make(map[string]*Scheme)}
}

func (ss *SchemeSet) add(s *Scheme) error {
	if _, ok := ss.byName[s.Name]; ok {
		return fmt.Errorf("scheme %s declared twice", s.Name)
	}
	if err := s.build(); err != nil {
		return err
	}
	ss.schemes = append(ss.schemes, s)
	ss.byName[s.Name] = s
	return nil
}

// Names returns the scheme names in declaration order.
func (ss *SchemeSet) Names() []string {
	out := make([]string, len(ss.schemes))
	for i, s := range ss.schemes {
		out[i] = s.Name
	}
	return out
}

// Scheme returns the named scheme.
func (ss *SchemeSet) Scheme(name string) (*Scheme, bool) {
	s, ok := ss.byName[name]
	return s, ok
}
