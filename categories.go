package lingua

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Categories is a (possibly partial) assignment of grammatical categories.
// A zero field is unspecified: inflection requests take the language
// default for it, paradigm selectors leave it unconstrained.
type Categories struct {
	Tense  Tense
	Aspect Aspect
	Mood   Mood
	Voice  Voice
	Number Number
	Person Person
	Gender Gender
	Case   Case
}

// ParseCategories builds a Categories record from free-form options such as
// query parameters. Unrecognized keys are ignored; a recognized key with a
// value outside its enumeration fails with ErrInvalidCategoryValue. Empty
// values are treated as omitted.
func ParseCategories(opts map[string]string) (Categories, error) {
	var c Categories
	// canonical order keeps the reported error stable
	for _, cat := range allCategories {
		raw, ok := opts[cat.String()]
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		v, ok := parseValue(cat, raw)
		if !ok {
			return Categories{}, &CategoryError{Category: cat.String(), Value: raw}
		}
		c.set(cat, v)
	}
	return c, nil
}

// ParseSelector parses a canonical key ("tense=past,person=first") back
// into a Categories record. "*" and "" denote the empty selector.
// Unlike ParseCategories, unknown category names are rejected.
func ParseSelector(s string) (Categories, error) {
	var c Categories
	s = strings.TrimSpace(s)
	if s == "" || s == "*" {
		return c, nil
	}
	for _, part := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			return Categories{}, fmt.Errorf("selector %q: missing '=' in %q", s, part)
		}
		cat, ok := ParseCategory(k)
		if !ok {
			return Categories{}, fmt.Errorf("selector %q: unknown category %q", s, k)
		}
		val, ok := parseValue(cat, v)
		if !ok {
			return Categories{}, &CategoryError{Category: cat.String(), Value: v}
		}
		if c.value(cat) != 0 {
			return Categories{}, fmt.Errorf("selector %q: category %s repeated", s, cat)
		}
		c.set(cat, val)
	}
	return c, nil
}

// Validate reports the first field holding a value outside its enumeration.
func (c Categories) Validate() error {
	for _, cat := range allCategories {
		v := c.value(cat)
		if v != 0 && valueName(cat, v) == "" {
			return &CategoryError{Category: cat.String(), Value: strconv.Itoa(int(v))}
		}
	}
	return nil
}

// WithDefaults returns c with every unspecified field taken from d.
func (c Categories) WithDefaults(d Categories) Categories {
	for _, cat := range allCategories {
		if c.value(cat) == 0 {
			c.set(cat, d.value(cat))
		}
	}
	return c
}

// only returns c with every category outside cats cleared.
func (c Categories) only(cats []Category) Categories {
	var out Categories
	for _, cat := range cats {
		out.set(cat, c.value(cat))
	}
	return out
}

// foreign returns the first category c sets that is not in cats.
func (c Categories) foreign(cats []Category) (Category, bool) {
	for _, cat := range allCategories {
		if c.value(cat) != 0 && !slices.Contains(cats, cat) {
			return cat, true
		}
	}
	return 0, false
}

// Key returns the canonical encoding of the assignment: set categories in
// canonical order as "name=value", comma separated.
func (c Categories) Key() string {
	var b strings.Builder
	for _, cat := range allCategories {
		v := c.value(cat)
		if v == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(cat.String())
		b.WriteByte('=')
		b.WriteString(valueName(cat, v))
	}
	return b.String()
}

func (c Categories) String() string {
	if k := c.Key(); k != "" {
		return k
	}
	return "*"
}

// Specificity is the number of constrained categories.
func (c Categories) Specificity() int {
	n := 0
	for _, cat := range allCategories {
		if c.value(cat) != 0 {
			n++
		}
	}
	return n
}

// Matches reports whether every category constrained by selector c has the
// same value in req.
func (c Categories) Matches(req Categories) bool {
	for _, cat := range allCategories {
		if v := c.value(cat); v != 0 && v != req.value(cat) {
			return false
		}
	}
	return true
}

// Get returns the value name of category cat, or "" when unspecified.
func (c Categories) Get(cat Category) string {
	return valueName(cat, c.value(cat))
}

func (c Categories) value(cat Category) uint8 {
	switch cat {
	case CategoryTense:
		return uint8(c.Tense)
	case CategoryAspect:
		return uint8(c.Aspect)
	case CategoryMood:
		return uint8(c.Mood)
	case CategoryVoice:
		return uint8(c.Voice)
	case CategoryNumber:
		return uint8(c.Number)
	case CategoryPerson:
		return uint8(c.Person)
	case CategoryGender:
		return uint8(c.Gender)
	case CategoryCase:
		return uint8(c.Case)
	}
	return 0
}

func (c *Categories) set(cat Category, v uint8) {
	switch cat {
	case CategoryTense:
		c.Tense = Tense(v)
	case CategoryAspect:
		c.Aspect = Aspect(v)
	case CategoryMood:
		c.Mood = Mood(v)
	case CategoryVoice:
		c.Voice = Voice(v)
	case CategoryNumber:
		c.Number = Number(v)
	case CategoryPerson:
		c.Person = Person(v)
	case CategoryGender:
		c.Gender = Gender(v)
	case CategoryCase:
		c.Case = Case(v)
	}
}

func valueName(cat Category, v uint8) string {
	if v == 0 {
		return ""
	}
	switch cat {
	case CategoryTense:
		return Tense(v).String()
	case CategoryAspect:
		return Aspect(v).String()
	case CategoryMood:
		return Mood(v).String()
	case CategoryVoice:
		return Voice(v).String()
	case CategoryNumber:
		return Number(v).String()
	case CategoryPerson:
		return Person(v).String()
	case CategoryGender:
		return Gender(v).String()
	case CategoryCase:
		return Case(v).String()
	}
	return ""
}

func parseValue(cat Category, s string) (uint8, bool) {
	var v uint8
	var ok bool
	switch cat {
	case CategoryTense:
		var t Tense
		t, ok = lookup(allTenses, s)
		v = uint8(t)
	case CategoryAspect:
		var a Aspect
		a, ok = lookup(allAspects, s)
		v = uint8(a)
	case CategoryMood:
		var m Mood
		m, ok = lookup(allMoods, s)
		v = uint8(m)
	case CategoryVoice:
		var vo Voice
		vo, ok = lookup(allVoices, s)
		v = uint8(vo)
	case CategoryNumber:
		var n Number
		n, ok = lookup(allNumbers, s)
		v = uint8(n)
	case CategoryPerson:
		var p Person
		p, ok = lookup(allPersons, s)
		v = uint8(p)
	case CategoryGender:
		var g Gender
		g, ok = lookup(allGenders, s)
		v = uint8(g)
	case CategoryCase:
		var cs Case
		cs, ok = lookup(allCases, s)
		v = uint8(cs)
	}
	return v, ok
}
