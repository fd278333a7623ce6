package lingua

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Lang is the general language service of one language.
type Lang interface {
	// PronounceNumber spells n out in words.
	PronounceNumber(n int) string
}

// numberRange is a condition on an integer, optionally taken modulo mod.
type numberRange struct {
	mod    uint64
	lo, hi uint64
}

var anyNumber = numberRange{hi: math.MaxUint64}

func (r numberRange) contains(v uint64) bool {
	if r.mod > 0 {
		v %= r.mod
	}
	return v >= r.lo && v <= r.hi
}

// parseNumberRange parses "*", "N", "A-B", "A-" or any of them prefixed
// by "%M=" to test the value modulo M.
func parseNumberRange(s string) (numberRange, error) {
	if s == "*" {
		return anyNumber, nil
	}
	var r numberRange
	if rest, ok := strings.CutPrefix(s, "%"); ok {
		m, cond, ok := strings.Cut(rest, "=")
		if !ok {
			return r, fmt.Errorf("invalid number range %q", s)
		}
		mod, err := strconv.ParseUint(m, 10, 64)
		if err != nil || mod < 2 {
			return r, fmt.Errorf("invalid number range %q", s)
		}
		r, err = parseNumberRange(cond)
		if err != nil {
			return r, fmt.Errorf("invalid number range %q", s)
		}
		r.mod = mod
		return r, nil
	}

	lo, hi, isSpan := strings.Cut(s, "-")
	var err error
	if r.lo, err = strconv.ParseUint(lo, 10, 64); err != nil {
		return r, fmt.Errorf("invalid number range %q", s)
	}
	switch {
	case !isSpan:
		r.hi = r.lo
	case hi == "":
		r.hi = math.MaxUint64
	default:
		if r.hi, err = strconv.ParseUint(hi, 10, 64); err != nil || r.hi < r.lo {
			return r, fmt.Errorf("invalid number range %q", s)
		}
	}
	return r, nil
}

// scaleRule spells a number n = q*scale + r. Head builds the q*scale part
// from {q} (q spelled out) and {qs} (the word for q*scale); Join appends the
// remainder with {h} (the head) and {r} (r spelled out). Join is skipped
// when r is zero.
type scaleRule struct {
	Q, R       numberRange
	Head, Join string
}

type numberScale struct {
	value uint64
	rules []scaleRule
}

// NumberTable implements Lang from the number words and composition rules
// of lang.txt. It is read-only once loaded.
type NumberTable struct {
	// Code is the language code.
	Code string

	words  map[uint64]string
	scales []*numberScale // ascending
	minus  string
	fixes  []alternative
}

var _ Lang = (*NumberTable)(nil)

func newNumberTable(code string) *NumberTable {
	return &NumberTable{
		Code:  code,
		words: make(map[uint64]string),
		minus: "-{n}",
	}
}

// PronounceNumber implements Lang.
func (t *NumberTable) PronounceNumber(n int) string {
	var s string
	if n < 0 {
		// -(n+1) cannot overflow, even for math.MinInt
		s = strings.ReplaceAll(t.minus, "{n}", t.spell(uint64(-(n+1))+1))
	} else {
		s = t.spell(uint64(n))
	}
	return applyNorms(t.fixes, s)
}

// spell uses the word of n when there is one, else the rule of the
// largest scale not above n. Both q and r are smaller than n, so the
// recursion ends.
func (t *NumberTable) spell(n uint64) string {
	if w, ok := t.words[n]; ok {
		return w
	}
	sc := t.scaleFor(n)
	if sc == nil {
		return strconv.FormatUint(n, 10)
	}
	q, r := n/sc.value, n%sc.value
	for _, rule := range sc.rules {
		if !rule.Q.contains(q) || !rule.R.contains(r) {
			continue
		}
		head := t.expand(rule.Head, q, sc.value, 0, "")
		if r == 0 {
			return head
		}
		return t.expand(rule.Join, q, sc.value, r, head)
	}
	return strconv.FormatUint(n, 10)
}

func (t *NumberTable) scaleFor(n uint64) *numberScale {
	for i := len(t.scales) - 1; i >= 0; i-- {
		if t.scales[i].value <= n {
			return t.scales[i]
		}
	}
	return nil
}

// word returns the declared word of n, or its digits.
func (t *NumberTable) word(n uint64) string {
	if w, ok := t.words[n]; ok {
		return w
	}
	return strconv.FormatUint(n, 10)
}

func (t *NumberTable) expand(tmpl string, q, scale, r uint64, head string) string {
	var pairs []string
	if strings.Contains(tmpl, "{qs}") {
		pairs = append(pairs, "{qs}", t.word(q*scale))
	}
	if strings.Contains(tmpl, "{q}") {
		pairs = append(pairs, "{q}", t.spell(q))
	}
	if strings.Contains(tmpl, "{h}") {
		pairs = append(pairs, "{h}", head)
	}
	if strings.Contains(tmpl, "{r}") {
		pairs = append(pairs, "{r}", t.spell(r))
	}
	if pairs == nil {
		return tmpl
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// addScale appends a rule to the scale of value, creating it if needed.
func (t *NumberTable) addScale(value uint64, rule scaleRule) {
	i, found := slices.BinarySearchFunc(t.scales, value, func(s *numberScale, v uint64) int {
		return cmp.Compare(s.value, v)
	})
	if !found {
		t.scales = slices.Insert(t.scales, i, &numberScale{value: value})
	}
	t.scales[i].rules = append(t.scales[i].rules, rule)
}

// Scales returns the declared scale values in ascending order.
func (t *NumberTable) Scales() []uint64 {
	out := make([]uint64, len(t.scales))
	for i, s := range t.scales {
		out[i] = s.value
	}
	return out
}
