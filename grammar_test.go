package lingua

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePartOfSpeech(t *testing.T) {
	tests := []struct {
		in   string
		want PartOfSpeech
	}{
		{"noun", Noun},
		{"Verb", Verb},
		{" adjective ", Adjective},
		{"ADVERB", Adverb},
		{"preposition", Preposition},
		{"pronoun", Pronoun},
	}
	for _, tt := range tests {
		got, err := ParsePartOfSpeech(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
		assert.NotEmpty(t, got.String())
	}

	_, err := ParsePartOfSpeech("gerund")
	require.ErrorIs(t, err, ErrInvalidCategoryValue)
	var ce *CategoryError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "pos", ce.Category)
	assert.Equal(t, "gerund", ce.Value)
}

func TestCategoryValues(t *testing.T) {
	assert.Equal(t, []string{"past", "present", "future"}, CategoryTense.Values())
	assert.Equal(t, []string{"simple", "continuous", "perfect", "perfect-continuous"}, CategoryAspect.Values())
	assert.Equal(t, []string{"singular", "dual", "plural"}, CategoryNumber.Values())
	assert.Equal(t, []string{"first", "second", "third"}, CategoryPerson.Values())
	assert.Len(t, CategoryMood.Values(), 9)
	assert.Len(t, CategoryCase.Values(), 8)
	assert.Nil(t, Category(0).Values())

	assert.Len(t, AllCategories(), 8)
	for _, c := range AllCategories() {
		got, ok := ParseCategory(c.String())
		require.True(t, ok, c.String())
		assert.Equal(t, c, got)
	}
}

func TestParseCategories(t *testing.T) {
	c, err := ParseCategories(map[string]string{
		"tense":  "past",
		"person": "3",
		"number": "Plural",
		"case":   "",
		"word":   "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, Categories{Tense: Past, Person: Third, Number: Plural}, c)

	_, err = ParseCategories(map[string]string{"tense": "pluperfect"})
	require.ErrorIs(t, err, ErrInvalidCategoryValue)
	assert.Contains(t, err.Error(), "pluperfect")
}

func TestParseSelector(t *testing.T) {
	tests := []struct {
		in      string
		want    Categories
		wantErr bool
	}{
		{in: "*", want: Categories{}},
		{in: "", want: Categories{}},
		{in: "tense=past", want: Categories{Tense: Past}},
		{in: "person=first, number=plural", want: Categories{Person: First, Number: Plural}},
		{in: "tense=past,tense=present", wantErr: true},
		{in: "tense", wantErr: true},
		{in: "colour=red", wantErr: true},
		{in: "tense=yesterday", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSelector(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoriesKey(t *testing.T) {
	c := Categories{Case: Genitive, Number: Plural, Tense: Future}
	assert.Equal(t, "tense=future,number=plural,case=genitive", c.Key())
	assert.Equal(t, "*", Categories{}.String())

	// the key is canonical whatever the selector order
	a, err := ParseSelector("number=plural,person=first")
	require.NoError(t, err)
	b, err := ParseSelector("person=first,number=plural")
	require.NoError(t, err)
	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, "first", a.Get(CategoryPerson))
	assert.Equal(t, "", a.Get(CategoryTense))
}

func TestCategoriesMatching(t *testing.T) {
	req := Categories{Tense: Present, Person: Third, Number: Singular, Mood: Indicative}

	assert.True(t, Categories{}.Matches(req))
	assert.True(t, Categories{Person: Third}.Matches(req))
	assert.False(t, Categories{Person: First}.Matches(req))
	assert.False(t, Categories{Voice: Passive}.Matches(req))

	assert.Equal(t, 0, Categories{}.Specificity())
	assert.Equal(t, 4, req.Specificity())
}

func TestCategoriesWithDefaults(t *testing.T) {
	defaults := Categories{Tense: Present, Number: Singular, Person: Third}
	got := Categories{Tense: Past}.WithDefaults(defaults)
	assert.Equal(t, Categories{Tense: Past, Number: Singular, Person: Third}, got)
}

func TestCategoriesValidate(t *testing.T) {
	require.NoError(t, Categories{Tense: Future, Case: Vocative}.Validate())

	err := Categories{Mood: Mood(42)}.Validate()
	require.ErrorIs(t, err, ErrInvalidCategoryValue)
	var ce *CategoryError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "mood", ce.Category)
}
