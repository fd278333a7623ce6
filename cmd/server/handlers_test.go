package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cours-de-latin/lingua"
	"github.com/cours-de-latin/lingua/internal/config"
	"github.com/cours-de-latin/lingua/internal/middleware"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	reg, err := lingua.Default()
	require.NoError(t, err)
	cfg := &config.Config{CORS: config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST"}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newHandler(reg, cfg, logger)
}

// do runs one request and decodes the JSON response into out.
func do(t *testing.T, h http.Handler, method, target, body string, out any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), "body: %s", rec.Body.String())
	}
	return rec
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)

	var resp healthResponse
	rec := do(t, h, http.MethodGet, "/healthz", "", &resp)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 4, resp.Languages)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestLanguages(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		query string
		want  languagesResponse
	}{
		{"", languagesResponse{Service: "Info", Languages: []string{"ara", "eng", "fra", "jpn"}}},
		{"?service=Morpho", languagesResponse{Service: "Morpho", Languages: []string{"ara", "eng", "fra", "jpn"}}},
		{"?service=Trans", languagesResponse{Service: "Trans", Languages: []string{"ara", "eng", "fra", "jpn"}}},
		{"?service=Lang", languagesResponse{Service: "Lang", Languages: []string{"ara", "eng", "fra", "jpn"}}},
		{"?service=Speech", languagesResponse{Service: "Speech", Languages: []string{}}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var resp languagesResponse
			rec := do(t, h, http.MethodGet, "/api/languages"+tt.query, "", &resp)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, resp)
		})
	}
}

func TestInfo(t *testing.T) {
	h := newTestHandler(t)

	var info struct {
		Code     string `json:"code"`
		Name     string `json:"name"`
		OrigName string `json:"orig_name"`
		Dir      string `json:"dir"`
		Tag      string `json:"tag"`
	}
	rec := do(t, h, http.MethodGet, "/api/ar/info", "", &info)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ara", info.Code)
	assert.Equal(t, "Arabic", info.Name)
	assert.Equal(t, "العربية", info.OrigName)
	assert.Equal(t, "rtl", info.Dir)
	assert.Equal(t, "ar", info.Tag)

	var e errorResponse
	rec = do(t, h, http.MethodGet, "/api/deu/info", "", &e)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, e.Error, "unknown language")
}

func TestConjugate(t *testing.T) {
	h := newTestHandler(t)

	var resp inflectionResponse
	rec := do(t, h, http.MethodGet, "/api/eng/conjugate?word=walk&tense=present&number=singular&person=third", "", &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "walk", resp.Word)
	assert.Equal(t, "walks", resp.Form)
	assert.Equal(t, "rule", resp.Source)
	assert.Contains(t, resp.Key, "tense=present")

	rec = do(t, h, http.MethodGet, "/api/en/conjugate?word=be&tense=past&person=first", "", &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "was", resp.Form)
	assert.Equal(t, "irregular", resp.Source)
}

func TestDeclense(t *testing.T) {
	h := newTestHandler(t)

	var resp inflectionResponse
	rec := do(t, h, http.MethodGet, "/api/eng/declense?word=child&number=plural&case=genitive", "", &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "children's", resp.Form)

	var e errorResponse
	rec = do(t, h, http.MethodGet, "/api/eng/declense?word=information&number=plural", "", &e)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, e.Error, "undeclinable")
}

func TestDerivate(t *testing.T) {
	h := newTestHandler(t)

	var resp derivationResponse
	rec := do(t, h, http.MethodGet, "/api/eng/derivate?word=good&src=adjective&dst=adverb", "", &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, derivationResponse{Word: "good", Src: "adjective", Dst: "adverb", Form: "well"}, resp)

	var e errorResponse
	rec = do(t, h, http.MethodGet, "/api/eng/derivate?word=table&src=noun&dst=verb", "", &e)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/eng/derivate?word=table&src=thing&dst=verb", "", &e)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStemAndLemmatize(t *testing.T) {
	h := newTestHandler(t)

	var lemma lemmaResponse
	rec := do(t, h, http.MethodGet, "/api/eng/lemmatize?word=children", "", &lemma)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, lemmaResponse{Word: "children", Lemma: "child"}, lemma)

	var stem stemResponse
	rec = do(t, h, http.MethodGet, "/api/eng/stem?word=happiness", "", &stem)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "happiness", stem.Word)
	assert.NotEmpty(t, stem.Stem)
	assert.Less(t, len(stem.Stem), len("happiness"))
}

func TestNumber(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		lang string
		n    string
		want numberResponse
	}{
		{"eng", "103987", numberResponse{N: 103987, Text: "one hundred three thousand nine hundred eighty-seven"}},
		{"fr", "103987", numberResponse{N: 103987, Text: "cent trois mille neuf cent quatre-vingt-sept"}},
		{"ara", "103987", numberResponse{N: 103987, Text: "مائة وثلاثة آلاف وتسعمائة وسبعة وثمانون"}},
		{"jpn", "103987", numberResponse{N: 103987, Text: "十万三千九百八十七"}},
		{"eng", "-12", numberResponse{N: -12, Text: "minus twelve"}},
	}
	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.n, func(t *testing.T) {
			var resp numberResponse
			rec := do(t, h, http.MethodGet, "/api/"+tt.lang+"/number?n="+tt.n, "", &resp)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, resp)
		})
	}
}

func TestSchemes(t *testing.T) {
	h := newTestHandler(t)

	var resp schemesResponse
	rec := do(t, h, http.MethodGet, "/api/jpn/schemes", "", &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jpn", resp.Lang)
	assert.Equal(t, []schemeJSON{
		{Name: "Hepburn", Lossless: false},
		{Name: "NihonShiki", Lossless: true},
		{Name: "KunreiShiki", Lossless: false},
	}, resp.Schemes)
}

func TestTransliterate(t *testing.T) {
	h := newTestHandler(t)

	var resp transResponse
	rec := do(t, h, http.MethodPost, "/api/eng/transliterate", `{"scheme":"Morse","text":"sos"}`, &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, transResponse{Scheme: "Morse", Text: "sos", Result: "... --- ... "}, resp)

	rec = do(t, h, http.MethodPost, "/api/eng/untransliterate", `{"scheme":"Morse","text":"... --- ... "}`, &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sos", resp.Result)

	rec = do(t, h, http.MethodPost, "/api/jpn/transliterate", `{"text":"きゃ"}`, &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hepburn", resp.Scheme, "first scheme by default")
	assert.Equal(t, "kya", resp.Result)
}

func TestTransliterateErrors(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name   string
		target string
		body   string
		status int
	}{
		{"unknown scheme", "/api/eng/transliterate", `{"scheme":"Semaphore","text":"a"}`, http.StatusNotFound},
		{"unknown language", "/api/deu/transliterate", `{"text":"a"}`, http.StatusNotFound},
		{"bad body", "/api/eng/transliterate", `not json`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e errorResponse
			rec := do(t, h, http.MethodPost, tt.target, tt.body, &e)
			assert.Equal(t, tt.status, rec.Code)
			assert.NotEmpty(t, e.Error)
		})
	}
}

func TestBadRequests(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"missing word", "/api/eng/conjugate?tense=past", http.StatusBadRequest},
		{"invalid category", "/api/eng/conjugate?word=walk&tense=someday", http.StatusBadRequest},
		{"unknown language", "/api/deu/conjugate?word=gehen", http.StatusNotFound},
		{"unconjugable", "/api/ara/conjugate?mood=imperative&person=first&word=" + url.QueryEscape("كتب"), http.StatusUnprocessableEntity},
		{"missing stem word", "/api/fra/stem", http.StatusBadRequest},
		{"missing lemma word", "/api/fra/lemmatize", http.StatusBadRequest},
		{"missing number", "/api/eng/number", http.StatusBadRequest},
		{"number not an integer", "/api/eng/number?n=twelve", http.StatusBadRequest},
		{"number of unknown language", "/api/deu/number?n=1", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e errorResponse
			rec := do(t, h, http.MethodGet, tt.target, "", &e)
			assert.Equal(t, tt.status, rec.Code)
			assert.NotEmpty(t, e.Error)
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)
	rec := do(t, h, http.MethodGet, "/api/eng/transliterate", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORSHeaders(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/languages", nil)
	req.Header.Set("Origin", "https://app.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&lingua.CategoryError{Category: "tense", Value: "x"}, http.StatusBadRequest},
		{fmt.Errorf("wrap: %w", lingua.ErrUnknownLanguage), http.StatusNotFound},
		{lingua.ErrUnknownScheme, http.StatusNotFound},
		{lingua.ErrUnconjugableForm, http.StatusUnprocessableEntity},
		{lingua.ErrUndeclinableForm, http.StatusUnprocessableEntity},
		{lingua.ErrUnsupportedDerivation, http.StatusUnprocessableEntity},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}

func TestLoadRegistry(t *testing.T) {
	reg, err := loadRegistry("")
	require.NoError(t, err)
	def, err := lingua.Default()
	require.NoError(t, err)
	assert.Same(t, def, reg)

	_, err = loadRegistry(t.TempDir())
	assert.Error(t, err, "empty directory has no language")
}
