package lingua

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Data file names inside a language directory.
const (
	infoFile   = "info.txt"
	morphoFile = "morpho.txt"
	transFile  = "trans.txt"
	langFile   = "lang.txt"
)

// langData is everything loaded for one code.
type langData struct {
	info    Info
	morpho  *MorphTable
	schemes *SchemeSet
	numbers *NumberTable
}

// scanFile calls fn for every meaningful line of name: blank lines and
// lines starting with "!" are skipped. Errors are reported with the file
// name and line number.
func scanFile(fsys fs.FS, name string, fn func(ln int, line string) error) error {
	f, err := fsys.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		if err := fn(ln, line); err != nil {
			var de *DataError
			if errors.As(err, &de) {
				return err
			}
			return &DataError{File: name, Line: ln, Msg: err.Error()}
		}
	}
	if err := sc.Err(); err != nil {
		return &DataError{File: name, Line: ln, Msg: err.Error()}
	}
	return nil
}

// fields splits s into exactly n colon-separated fields, the last one
// taking the remainder.
func fields(s string, n int) ([]string, error) {
	parts := strings.SplitN(s, ":", n)
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d fields in %q", n, s)
	}
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
		if parts[i] == "" {
			return nil, fmt.Errorf("empty field %d in %q", i+1, s)
		}
	}
	return parts, nil
}

func wordList(s string) []string {
	var out []string
	for _, w := range strings.Split(s, ",") {
		if w = Normalize(strings.TrimSpace(w)); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// loadLanguage reads the data directory of one language. info.txt is
// required; a missing morpho.txt, trans.txt or lang.txt leaves the service
// out.
func loadLanguage(fsys fs.FS, dir string) (*langData, error) {
	code, err := NormalizeCode(dir)
	if err != nil {
		return nil, err
	}
	lang := &langData{}
	if lang.info, err = loadInfo(fsys, path.Join(dir, infoFile), code); err != nil {
		return nil, err
	}
	lang.morpho, err = loadMorpho(fsys, path.Join(dir, morphoFile), code)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	lang.schemes, err = loadTrans(fsys, path.Join(dir, transFile), code)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	lang.numbers, err = loadLang(fsys, path.Join(dir, langFile), code)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return lang, nil
}

// paradigmSelector parses a selector of the paradigm of kind, which may
// only constrain the categories that paradigm inflects for.
func paradigmSelector(kind PartOfSpeech, s string) (Categories, error) {
	sel, err := ParseSelector(s)
	if err != nil {
		return sel, err
	}
	if cat, ok := sel.foreign(paradigmCategories[kind]); ok {
		return sel, fmt.Errorf("category %s does not apply to %s paradigm", cat, kind)
	}
	return sel, nil
}

// ---- info.txt -------------------------------------------------------------

// loadInfo reads "field:value" lines.
func loadInfo(fsys fs.FS, name, code string) (Info, error) {
	info := newInfo(code)
	err := scanFile(fsys, name, func(_ int, line string) error {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return fmt.Errorf("missing ':' in %q", line)
		}
		return info.set(strings.TrimSpace(key), Normalize(strings.TrimSpace(value)))
	})
	if err != nil {
		return Info{}, err
	}
	if info.Name == "" {
		return Info{}, &DataError{File: name, Msg: "missing name"}
	}
	if info.OrigName == "" {
		info.OrigName = info.Name
	}
	return info, nil
}

// ---- morpho.txt -----------------------------------------------------------

// morphoLoader accumulates a MorphTable from morpho.txt directives:
//
//	default:<selector>                 language defaults
//	minstem:<n>                        shortest stem
//	conj:<selector>:<op>               verb rule
//	decl:<selector>:<op>               noun rule
//	irreg:verb|noun:<word>:<selector>:<form>
//	form:<name>:<op>                   named auxiliary form
//	formirreg:<name>:<word>:<form>
//	der:<src>:<dst>:<op>               derivation rule
//	derirreg:<src>:<dst>:<word>:<form>
//	invariant:<word,word>              nouns that never inflect
//	lex:<word>:<pos,pos>               known parts of speech
//	class:<name>:<word,word>           lexical class for guarded alternatives
//	norm:<re>><repl>                   normalization before stemming
//	stem:<re>><repl>;...               stemming alternatives
//	lemma:<form>:<lemma>               explicit lemma entry
//	lem:<op>                           lemmatization rule
//
// A selector is "*" or comma-separated category=value pairs.
type morphoLoader struct {
	file string
	t    *MorphTable
	// irregular literal forms, registered as lemmas once explicit entries
	// are all known
	irregLemmas [][2]string
	ops         []opAt
	formLines   map[string]int
}

type opAt struct {
	line int
	op   *Op
}

func loadMorpho(fsys fs.FS, name, code string) (*MorphTable, error) {
	ml := &morphoLoader{
		file:      name,
		t:         newMorphTable(code),
		formLines: make(map[string]int),
	}
	if err := scanFile(fsys, name, ml.directive); err != nil {
		return nil, err
	}
	if err := ml.finish(); err != nil {
		return nil, err
	}
	return ml.t, nil
}

func (ml *morphoLoader) directive(ln int, line string) error {
	t := ml.t
	dir, rest, _ := strings.Cut(line, ":")
	rest = strings.TrimSpace(rest)

	switch dir {
	case "default":
		sel, err := ParseSelector(rest)
		if err != nil {
			return err
		}
		t.Defaults = sel

	case "minstem":
		n, err := strconv.Atoi(rest)
		if err != nil || n < 1 {
			return fmt.Errorf("minstem must be a positive integer, got %q", rest)
		}
		t.minStem = n

	case "conj", "decl":
		f, err := fields(rest, 2)
		if err != nil {
			return err
		}
		p, kind := t.conj, KindConjugation
		if dir == "decl" {
			p, kind = t.decl, KindDeclension
		}
		sel, err := paradigmSelector(kind, f[0])
		if err != nil {
			return err
		}
		op, err := ml.op(ln, f[1])
		if err != nil {
			return err
		}
		return p.add(sel, op)

	case "irreg":
		f, err := fields(rest, 4)
		if err != nil {
			return err
		}
		var (
			table *irregTable
			kind  PartOfSpeech
		)
		switch f[0] {
		case "verb":
			table, kind = t.conjIrregs, KindConjugation
		case "noun":
			table, kind = t.declIrregs, KindDeclension
		default:
			return fmt.Errorf("irregular kind must be verb or noun, got %q", f[0])
		}
		word := Normalize(f[1])
		sel, err := paradigmSelector(kind, f[2])
		if err != nil {
			return err
		}
		form, err := ml.form(ln, f[3])
		if err != nil {
			return err
		}
		if lit, ok := form.literal(); ok {
			ml.irregLemmas = append(ml.irregLemmas, [2]string{lit, word})
		}
		return table.add(word, sel, form)

	case "form":
		f, err := fields(rest, 2)
		if err != nil {
			return err
		}
		if _, ok := t.forms[f[0]]; ok {
			return fmt.Errorf("form %q declared twice", f[0])
		}
		if f[0] == "w" {
			return fmt.Errorf("form name %q is reserved", f[0])
		}
		op, err := ml.op(ln, f[1])
		if err != nil {
			return err
		}
		t.forms[f[0]] = op
		ml.formLines[f[0]] = ln

	case "formirreg":
		f, err := fields(rest, 3)
		if err != nil {
			return err
		}
		m, ok := t.formIrregs[f[0]]
		if !ok {
			m = make(map[string]string)
			t.formIrregs[f[0]] = m
		}
		word, form := Normalize(f[1]), Normalize(f[2])
		if _, dup := m[word]; dup {
			return fmt.Errorf("form %q of %q declared twice", f[0], word)
		}
		m[word] = form
		ml.irregLemmas = append(ml.irregLemmas, [2]string{form, word})

	case "der":
		f, err := fields(rest, 3)
		if err != nil {
			return err
		}
		pair, err := parsePair(f[0], f[1])
		if err != nil {
			return err
		}
		if _, ok := t.derivs[pair]; ok {
			return fmt.Errorf("derivation %s→%s declared twice", pair.src, pair.dst)
		}
		op, err := ml.op(ln, f[2])
		if err != nil {
			return err
		}
		t.derivs[pair] = op

	case "derirreg":
		f, err := fields(rest, 4)
		if err != nil {
			return err
		}
		pair, err := parsePair(f[0], f[1])
		if err != nil {
			return err
		}
		m, ok := t.derivIrregs[pair]
		if !ok {
			m = make(map[string]string)
			t.derivIrregs[pair] = m
		}
		word := Normalize(f[2])
		if _, dup := m[word]; dup {
			return fmt.Errorf("derivation %s→%s of %q declared twice", f[0], f[1], word)
		}
		m[word] = Normalize(f[3])

	case "invariant":
		for _, w := range wordList(rest) {
			t.lex.invariant[w] = true
		}

	case "lex":
		f, err := fields(rest, 2)
		if err != nil {
			return err
		}
		word := Normalize(f[0])
		for _, s := range strings.Split(f[1], ",") {
			p, err := ParsePartOfSpeech(s)
			if err != nil {
				return err
			}
			t.lex.addPOS(word, p)
		}

	case "class":
		f, err := fields(rest, 2)
		if err != nil {
			return err
		}
		for _, w := range wordList(f[1]) {
			t.lex.addClass(f[0], w)
		}

	case "norm", "stem":
		rw, err := parseRewrite(Normalize(rest))
		if err != nil {
			return err
		}
		for _, a := range rw.alts {
			if a.class != "" {
				return fmt.Errorf("%s alternatives cannot be class-guarded", dir)
			}
		}
		if dir == "norm" {
			t.norms = append(t.norms, rw.alts...)
		} else {
			t.stemAlts = append(t.stemAlts, rw.alts...)
		}

	case "lemma":
		f, err := fields(rest, 2)
		if err != nil {
			return err
		}
		t.lex.addLemma(Normalize(f[0]), Normalize(f[1]))

	case "lem":
		op, err := ml.op(ln, rest)
		if err != nil {
			return err
		}
		t.lemOps = append(t.lemOps, op)

	default:
		return fmt.Errorf("unknown directive %q", dir)
	}
	return nil
}

// op compiles a rule op and remembers it for the reference check.
func (ml *morphoLoader) op(ln int, s string) (*Op, error) {
	op, err := ParseOp(Normalize(s))
	if err != nil {
		return nil, err
	}
	ml.ops = append(ml.ops, opAt{line: ln, op: op})
	return op, nil
}

// form compiles an irregular form.
func (ml *morphoLoader) form(ln int, s string) (*Op, error) {
	op, err := parseForm(Normalize(s))
	if err != nil {
		return nil, err
	}
	ml.ops = append(ml.ops, opAt{line: ln, op: op})
	return op, nil
}

// finish checks that every referenced form exists and that forms do not
// reference themselves, then indexes the irregular forms for
// lemmatization.
func (ml *morphoLoader) finish() error {
	t := ml.t
	if err := t.Defaults.Validate(); err != nil {
		return &DataError{File: ml.file, Msg: err.Error()}
	}
	for _, o := range ml.ops {
		for _, ref := range o.op.refs() {
			if _, ok := t.forms[ref]; ok {
				continue
			}
			if _, ok := t.formIrregs[ref]; ok {
				continue
			}
			return &DataError{File: ml.file, Line: o.line, Msg: fmt.Sprintf("unknown form {%s}", ref)}
		}
	}

	const (
		visiting = 1
		done     = 2
	)
	state := make(map[string]int)
	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case visiting:
			return &DataError{File: ml.file, Line: ml.formLines[name], Msg: fmt.Sprintf("form {%s} depends on itself", name)}
		case done:
			return nil
		}
		state[name] = visiting
		if op, ok := t.forms[name]; ok {
			for _, ref := range op.refs() {
				if err := visit(ref); err != nil {
					return err
				}
			}
		}
		state[name] = done
		return nil
	}
	for name := range t.forms {
		if err := visit(name); err != nil {
			return err
		}
	}

	for _, fl := range ml.irregLemmas {
		t.lex.addLemma(fl[0], fl[1])
	}
	// an irregular base word is its own lemma
	for _, fl := range ml.irregLemmas {
		t.lex.addLemma(fl[1], fl[1])
	}
	return nil
}

func parsePair(src, dst string) (posPair, error) {
	s, err := ParsePartOfSpeech(src)
	if err != nil {
		return posPair{}, err
	}
	d, err := ParsePartOfSpeech(dst)
	if err != nil {
		return posPair{}, err
	}
	return posPair{src: s, dst: d}, nil
}

// ---- trans.txt ------------------------------------------------------------

// loadTrans reads scheme blocks. Each block starts with "scheme:<Name>"
// and holds the directives
//
//	lossless:true|false
//	map:<src>:<dst>                   both directions
//	fwd:<src>:<dst>                   forward only
//	rev:<dst>:<src>                   reverse only
//	geminate:<marker>[:<exclude>]     doubled consonants
//	moraic:<marker>:<prefix>:<before> disambiguated moraic nasal
//	katakana                          katakana spellings of hiragana sources
//
// Fields accept the escapes \s (space), \t, \c (colon) and \\.
func loadTrans(fsys fs.FS, name, code string) (*SchemeSet, error) {
	set := newSchemeSet(code)
	var (
		cur     *Scheme
		curLine int
	)
	flush := func() error {
		if cur == nil {
			return nil
		}
		if err := set.add(cur); err != nil {
			return &DataError{File: name, Line: curLine, Msg: err.Error()}
		}
		cur = nil
		return nil
	}

	err := scanFile(fsys, name, func(ln int, line string) error {
		dir, rest, _ := strings.Cut(line, ":")
		if dir == "scheme" {
			if err := flush(); err != nil {
				return err
			}
			rest = strings.TrimSpace(rest)
			if rest == "" {
				return fmt.Errorf("scheme without a name")
			}
			cur, curLine = newScheme(rest), ln
			return nil
		}
		if cur == nil {
			return fmt.Errorf("%s outside of a scheme block", dir)
		}
		return transDirective(cur, dir, rest)
	})
	if err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(set.schemes) == 0 {
		return nil, &DataError{File: name, Msg: "no scheme declared"}
	}
	return set, nil
}

func transDirective(s *Scheme, dir, rest string) error {
	switch dir {
	case "lossless":
		b, err := strconv.ParseBool(strings.TrimSpace(rest))
		if err != nil {
			return err
		}
		s.Lossless = b

	case "map", "fwd", "rev":
		f, err := fields(rest, 2)
		if err != nil {
			return err
		}
		a, b := unescape(f[0]), unescape(f[1])
		switch dir {
		case "map":
			return s.add(mapping{src: a, dst: b, fwd: true, rev: true})
		case "fwd":
			return s.add(mapping{src: a, dst: b, fwd: true})
		default:
			return s.add(mapping{src: b, dst: a, rev: true})
		}

	case "geminate":
		marker, exclude, _ := strings.Cut(rest, ":")
		if marker = unescape(strings.TrimSpace(marker)); marker == "" {
			return fmt.Errorf("geminate needs a marker")
		}
		s.geminate(marker, unescape(exclude))

	case "moraic":
		f, err := fields(rest, 3)
		if err != nil {
			return err
		}
		s.moraic(unescape(f[0]), unescape(f[1]), unescape(f[2]))

	case "katakana":
		s.katakana()

	default:
		return fmt.Errorf("unknown directive %q", dir)
	}
	return nil
}

// ---- lang.txt -------------------------------------------------------------

// loadLang reads number spelling tables:
//
//	num:<n>:<word>                          word of one number
//	scale:<value>:<q>:<r>:<head>:<join>     composition of q*value + r
//	minus:<template>                        negative numbers, {n} = |n|
//	fix:<re>><repl>;...                     rewrites of the final text
//
// Scale rules are tried in declaration order; <q> and <r> are number
// ranges ("*", "3", "2-6", "11-", "%100=3-10"). Templates accept the
// escapes of trans.txt.
func loadLang(fsys fs.FS, name, code string) (*NumberTable, error) {
	t := newNumberTable(code)
	err := scanFile(fsys, name, func(_ int, line string) error {
		return langDirective(t, line)
	})
	if err != nil {
		return nil, err
	}
	if _, ok := t.words[0]; !ok {
		return nil, &DataError{File: name, Msg: "no word for 0"}
	}
	for _, sc := range t.scales {
		last := sc.rules[len(sc.rules)-1]
		if last.Q != anyNumber || last.R != anyNumber {
			return nil, &DataError{File: name, Msg: fmt.Sprintf("scale %d must end with a *:* rule", sc.value)}
		}
	}
	return t, nil
}

var placeholderRe = regexp.MustCompile(`\{[^{}]*\}`)

// checkPlaceholders rejects any {name} in tmpl not listed in allowed.
func checkPlaceholders(tmpl string, allowed ...string) error {
	for _, p := range placeholderRe.FindAllString(tmpl, -1) {
		if !slices.Contains(allowed, p) {
			return fmt.Errorf("placeholder %s not allowed in %q", p, tmpl)
		}
	}
	return nil
}

func langDirective(t *NumberTable, line string) error {
	dir, rest, _ := strings.Cut(line, ":")
	rest = strings.TrimSpace(rest)

	switch dir {
	case "num":
		f, err := fields(rest, 2)
		if err != nil {
			return err
		}
		n, err := strconv.ParseUint(f[0], 10, 64)
		if err != nil {
			return fmt.Errorf("number %q: %w", f[0], err)
		}
		if _, dup := t.words[n]; dup {
			return fmt.Errorf("number %d declared twice", n)
		}
		t.words[n] = unescape(f[1])

	case "scale":
		f, err := fields(rest, 5)
		if err != nil {
			return err
		}
		value, err := strconv.ParseUint(f[0], 10, 64)
		if err != nil || value < 2 {
			return fmt.Errorf("scale must be an integer above 1, got %q", f[0])
		}
		var rule scaleRule
		if rule.Q, err = parseNumberRange(f[1]); err != nil {
			return err
		}
		if rule.R, err = parseNumberRange(f[2]); err != nil {
			return err
		}
		rule.Head, rule.Join = unescape(f[3]), unescape(f[4])
		if err := checkPlaceholders(rule.Head, "{q}", "{qs}"); err != nil {
			return err
		}
		if err := checkPlaceholders(rule.Join, "{q}", "{qs}", "{h}", "{r}"); err != nil {
			return err
		}
		t.addScale(value, rule)

	case "minus":
		tmpl := unescape(rest)
		if !strings.Contains(tmpl, "{n}") {
			return fmt.Errorf("minus template %q lacks {n}", tmpl)
		}
		if err := checkPlaceholders(tmpl, "{n}"); err != nil {
			return err
		}
		t.minus = tmpl

	case "fix":
		rw, err := parseRewrite(Normalize(rest))
		if err != nil {
			return err
		}
		for _, a := range rw.alts {
			if a.class != "" {
				return fmt.Errorf("fix alternatives cannot be class-guarded")
			}
		}
		t.fixes = append(t.fixes, rw.alts...)

	default:
		return fmt.Errorf("unknown directive %q", dir)
	}
	return nil
}
