package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cours-de-latin/lingua"
	"github.com/cours-de-latin/lingua/internal/app"
)

// ---- JSON response types ------------------------------------------------

type languagesResponse struct {
	Service   string   `json:"service"`
	Languages []string `json:"languages"`
}

type inflectionResponse struct {
	Word     string `json:"word"`
	Form     string `json:"form"`
	Key      string `json:"key"`
	Source   string `json:"source,omitempty"`
	Selector string `json:"selector,omitempty"`
}

type derivationResponse struct {
	Word string `json:"word"`
	Src  string `json:"src"`
	Dst  string `json:"dst"`
	Form string `json:"form"`
}

type stemResponse struct {
	Word string `json:"word"`
	Stem string `json:"stem"`
}

type lemmaResponse struct {
	Word  string `json:"word"`
	Lemma string `json:"lemma"`
}

type numberResponse struct {
	N    int    `json:"n"`
	Text string `json:"text"`
}

type schemeJSON struct {
	Name     string `json:"name"`
	Lossless bool   `json:"lossless"`
}

type schemesResponse struct {
	Lang    string       `json:"lang"`
	Schemes []schemeJSON `json:"schemes"`
}

type transRequest struct {
	Scheme string `json:"scheme"`
	Text   string `json:"text"`
}

type transResponse struct {
	Scheme string `json:"scheme"`
	Text   string `json:"text"`
	Result string `json:"result"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Languages int    `json:"languages"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeLinguaError maps library errors onto HTTP statuses.
func writeLinguaError(w http.ResponseWriter, err error) {
	writeError(w, statusFor(err), err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, lingua.ErrInvalidCategoryValue):
		return http.StatusBadRequest
	case errors.Is(err, lingua.ErrUnknownLanguage),
		errors.Is(err, lingua.ErrUnknownScheme):
		return http.StatusNotFound
	case errors.Is(err, lingua.ErrUnconjugableForm),
		errors.Is(err, lingua.ErrUndeclinableForm),
		errors.Is(err, lingua.ErrUnsupportedDerivation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// queryOptions flattens the query string into category options.
func queryOptions(r *http.Request) map[string]string {
	q := r.URL.Query()
	opts := make(map[string]string, len(q))
	for k := range q {
		opts[k] = q.Get(k)
	}
	return opts
}

// requireWord reads the mandatory "word" query parameter.
func requireWord(w http.ResponseWriter, r *http.Request) (string, bool) {
	word := r.URL.Query().Get("word")
	if word == "" {
		writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
		return "", false
	}
	return word, true
}

// resolver is implemented by engines that report where a form came from.
type resolver interface {
	Resolve(kind lingua.PartOfSpeech, word string, c lingua.Categories) (lingua.Inflection, error)
}

// ---- routes -------------------------------------------------------------

func newRouter(reg *lingua.Registry) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", handleHealth(reg))
	mux.HandleFunc("GET /api/languages", handleLanguages(reg))
	mux.HandleFunc("GET /api/{lang}/info", handleInfo(reg))
	mux.HandleFunc("GET /api/{lang}/conjugate", handleInflect(reg, lingua.KindConjugation))
	mux.HandleFunc("GET /api/{lang}/declense", handleInflect(reg, lingua.KindDeclension))
	mux.HandleFunc("GET /api/{lang}/derivate", handleDerivate(reg))
	mux.HandleFunc("GET /api/{lang}/stem", handleStem(reg))
	mux.HandleFunc("GET /api/{lang}/lemmatize", handleLemmatize(reg))
	mux.HandleFunc("GET /api/{lang}/number", handleNumber(reg))
	mux.HandleFunc("GET /api/{lang}/schemes", handleSchemes(reg))
	mux.HandleFunc("POST /api/{lang}/transliterate", handleTrans(reg, false))
	mux.HandleFunc("POST /api/{lang}/untransliterate", handleTrans(reg, true))
	return mux
}

// ---- handlers -----------------------------------------------------------

func handleHealth(reg *lingua.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			Status:    "ok",
			Version:   app.BuildVersion(),
			Languages: len(reg.Languages(lingua.ServiceInfo)),
		})
	}
}

func handleLanguages(reg *lingua.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		service := r.URL.Query().Get("service")
		if service == "" {
			service = lingua.ServiceInfo
		}
		langs := reg.Languages(service)
		if langs == nil {
			langs = []string{}
		}
		writeJSON(w, http.StatusOK, languagesResponse{Service: service, Languages: langs})
	}
}

func handleInfo(reg *lingua.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := reg.Info(r.PathValue("lang"))
		if err != nil {
			writeLinguaError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, info)
	}
}

func handleInflect(reg *lingua.Registry, kind lingua.PartOfSpeech) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := reg.Morpho(r.PathValue("lang"))
		if err != nil {
			writeLinguaError(w, err)
			return
		}
		word, ok := requireWord(w, r)
		if !ok {
			return
		}
		c, err := lingua.ParseCategories(queryOptions(r))
		if err != nil {
			writeLinguaError(w, err)
			return
		}

		if res, ok := m.(resolver); ok {
			inf, err := res.Resolve(kind, word, c)
			if err != nil {
				writeLinguaError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, inflectionResponse{
				Word:     inf.Word,
				Form:     inf.Form,
				Key:      inf.Key,
				Source:   string(inf.Source),
				Selector: inf.Selector,
			})
			return
		}

		var form string
		if kind == lingua.KindConjugation {
			form, err = m.Conjugate(word, c)
		} else {
			form, err = m.DeclenseNoun(word, c)
		}
		if err != nil {
			writeLinguaError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, inflectionResponse{Word: word, Form: form, Key: c.Key()})
	}
}

func handleDerivate(reg *lingua.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := reg.Morpho(r.PathValue("lang"))
		if err != nil {
			writeLinguaError(w, err)
			return
		}
		word, ok := requireWord(w, r)
		if !ok {
			return
		}
		q := r.URL.Query()
		src, err := lingua.ParsePartOfSpeech(q.Get("src"))
		if err != nil {
			writeLinguaError(w, err)
			return
		}
		dst, err := lingua.ParsePartOfSpeech(q.Get("dst"))
		if err != nil {
			writeLinguaError(w, err)
			return
		}
		form, err := m.Derivate(word, src, dst)
		if err != nil {
			writeLinguaError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, derivationResponse{
			Word: word, Src: src.String(), Dst: dst.String(), Form: form,
		})
	}
}

func handleStem(reg *lingua.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := reg.Morpho(r.PathValue("lang"))
		if err != nil {
			writeLinguaError(w, err)
			return
		}
		word, ok := requireWord(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, stemResponse{Word: word, Stem: m.Stem(word)})
	}
}

func handleLemmatize(reg *lingua.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := reg.Morpho(r.PathValue("lang"))
		if err != nil {
			writeLinguaError(w, err)
			return
		}
		word, ok := requireWord(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, lemmaResponse{Word: word, Lemma: m.Lemmatize(word)})
	}
}

func handleNumber(reg *lingua.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang, err := reg.Lang(r.PathValue("lang"))
		if err != nil {
			writeLinguaError(w, err)
			return
		}
		n, err := strconv.Atoi(r.URL.Query().Get("n"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "'n' must be an integer")
			return
		}
		writeJSON(w, http.StatusOK, numberResponse{N: n, Text: lang.PronounceNumber(n)})
	}
}

func handleSchemes(reg *lingua.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := r.PathValue("lang")
		tr, err := reg.Trans(lang)
		if err != nil {
			writeLinguaError(w, err)
			return
		}
		names := tr.AvailableMethods()
		out := make([]schemeJSON, 0, len(names))
		for _, name := range names {
			lossless, err := tr.Lossless(name)
			if err != nil {
				writeLinguaError(w, err)
				return
			}
			out = append(out, schemeJSON{Name: name, Lossless: lossless})
		}
		writeJSON(w, http.StatusOK, schemesResponse{Lang: tr.Code(), Schemes: out})
	}
}

func handleTrans(reg *lingua.Registry, reverse bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tr, err := reg.Trans(r.PathValue("lang"))
		if err != nil {
			writeLinguaError(w, err)
			return
		}
		var body transRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "body must be JSON with a 'text' field")
			return
		}

		convert := tr.TransliterateWith
		if reverse {
			convert = tr.UntransliterateWith
		}
		result, err := convert(body.Scheme, body.Text)
		if err != nil {
			writeLinguaError(w, err)
			return
		}

		scheme := body.Scheme
		if scheme == "" {
			scheme = tr.CurrentMethod()
		}
		writeJSON(w, http.StatusOK, transResponse{Scheme: scheme, Text: body.Text, Result: result})
	}
}
