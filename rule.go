package lingua

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jinzhu/inflection"
)

// builtins are named word transformations usable as "@name" op stages.
var builtins = map[string]func(string) string{
	"plural":   inflection.Plural,
	"singular": inflection.Singular,
	"lower":    strings.ToLower,
}

const pipeSep = " | "

// resolver gives ops access to the rest of a language's tables.
type resolver interface {
	// form computes the named auxiliary form of word.
	form(name, word string) (string, bool)
	// hasClass reports whether word belongs to the lexical class.
	hasClass(class, word string) bool
}

// Op is a compiled inflection operation: a pipeline of stages separated by
// " | ", each applied to the previous stage's output.
//
//	re>repl;re>repl     rewrite, first matching alternative wins
//	<class>re>repl      alternative guarded by a lexical class (<!class> negates)
//	=text {w} {name}    template; {w} is the current value, {name} a named form
//	@name               builtin
//
// An op that cannot apply reports ok == false.
type Op struct {
	src    string
	stages []stage
}

type stage interface {
	apply(word, cur string, r resolver) (string, bool)
}

// String returns the source text the op was compiled from.
func (o *Op) String() string { return o.src }

// apply runs the op on word.
func (o *Op) apply(word string, r resolver) (string, bool) {
	cur := word
	for _, st := range o.stages {
		next, ok := st.apply(word, cur, r)
		if !ok {
			return "", false
		}
		cur = next
	}
	return cur, true
}

// refs returns the named forms referenced by the op's templates.
func (o *Op) refs() []string {
	var out []string
	for _, st := range o.stages {
		t, ok := st.(template)
		if !ok {
			continue
		}
		for _, p := range t.parts {
			if p.ref != "" && p.ref != "w" {
				out = append(out, p.ref)
			}
		}
	}
	return out
}

// literal reports whether the op always yields the same text.
func (o *Op) literal() (string, bool) {
	if len(o.stages) != 1 {
		return "", false
	}
	t, ok := o.stages[0].(template)
	if !ok || len(t.parts) != 1 || t.parts[0].ref != "" {
		return "", false
	}
	return t.parts[0].text, true
}

// ParseOp compiles an op from its textual form.
func ParseOp(s string) (*Op, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty op")
	}
	op := &Op{src: s}
	for _, part := range strings.Split(s, pipeSep) {
		st, err := parseStage(part)
		if err != nil {
			return nil, fmt.Errorf("op %q: %w", s, err)
		}
		op.stages = append(op.stages, st)
	}
	return op, nil
}

// literalOp returns an op that always yields s. Irregular forms are
// literals unless written as templates.
func literalOp(s string) *Op {
	return &Op{src: s, stages: []stage{template{parts: []tplPart{{text: s}}}}}
}

// parseForm compiles an irregular form: "=..." is a template, anything
// else is taken literally.
func parseForm(s string) (*Op, error) {
	if strings.HasPrefix(s, "=") {
		return ParseOp(s)
	}
	return literalOp(s), nil
}

func parseStage(s string) (stage, error) {
	switch {
	case strings.HasPrefix(s, "="):
		return parseTemplate(s[1:])
	case strings.HasPrefix(s, "@"):
		name := s[1:]
		fn, ok := builtins[name]
		if !ok {
			return nil, fmt.Errorf("unknown builtin %q", name)
		}
		return builtin{name: name, fn: fn}, nil
	default:
		return parseRewrite(s)
	}
}

// ---- rewrite ------------------------------------------------------------

type rewrite struct {
	alts []alternative
}

type alternative struct {
	class  string
	negate bool
	re     *regexp.Regexp
	repl   string
}

func parseRewrite(s string) (rewrite, error) {
	var rw rewrite
	for _, a := range strings.Split(s, ";") {
		alt, err := parseAlternative(a)
		if err != nil {
			return rewrite{}, err
		}
		rw.alts = append(rw.alts, alt)
	}
	return rw, nil
}

func parseAlternative(s string) (alternative, error) {
	var alt alternative
	if strings.HasPrefix(s, "<") {
		end := strings.Index(s, ">")
		if end < 0 {
			return alt, fmt.Errorf("unterminated class guard in %q", s)
		}
		alt.class = s[1:end]
		if strings.HasPrefix(alt.class, "!") {
			alt.negate = true
			alt.class = alt.class[1:]
		}
		s = s[end+1:]
	}
	pattern, repl, ok := strings.Cut(s, ">")
	if !ok {
		return alt, fmt.Errorf("missing '>' in rewrite %q", s)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return alt, err
	}
	alt.re = re
	alt.repl = repl
	return alt, nil
}

// matches reports whether the alternative is allowed for word and its
// pattern matches cur.
func (a alternative) matches(word, cur string, r resolver) bool {
	if a.class != "" && r.hasClass(a.class, word) == a.negate {
		return false
	}
	return a.re.MatchString(cur)
}

func (a alternative) replace(cur string) string {
	return a.re.ReplaceAllString(cur, a.repl)
}

func (rw rewrite) apply(word, cur string, r resolver) (string, bool) {
	for _, a := range rw.alts {
		if a.matches(word, cur, r) {
			return a.replace(cur), true
		}
	}
	return "", false
}

// ---- template -----------------------------------------------------------

type tplPart struct {
	text string
	ref  string // placeholder name, empty for literal text
}

type template struct {
	parts []tplPart
}

func parseTemplate(s string) (template, error) {
	var t template
	for s != "" {
		open := strings.IndexByte(s, '{')
		if open < 0 {
			t.parts = append(t.parts, tplPart{text: s})
			break
		}
		if open > 0 {
			t.parts = append(t.parts, tplPart{text: s[:open]})
		}
		end := strings.IndexByte(s[open:], '}')
		if end < 0 {
			return template{}, fmt.Errorf("unterminated placeholder in %q", s)
		}
		name := s[open+1 : open+end]
		if name == "" {
			return template{}, fmt.Errorf("empty placeholder in %q", s)
		}
		t.parts = append(t.parts, tplPart{ref: name})
		s = s[open+end+1:]
	}
	return t, nil
}

func (t template) apply(word, cur string, r resolver) (string, bool) {
	var b strings.Builder
	for _, p := range t.parts {
		switch p.ref {
		case "":
			b.WriteString(p.text)
		case "w":
			b.WriteString(cur)
		default:
			f, ok := r.form(p.ref, word)
			if !ok {
				return "", false
			}
			b.WriteString(f)
		}
	}
	return b.String(), true
}

// ---- builtin ------------------------------------------------------------

type builtin struct {
	name string
	fn   func(string) string
}

func (b builtin) apply(_, cur string, _ resolver) (string, bool) {
	return b.fn(cur), true
}
