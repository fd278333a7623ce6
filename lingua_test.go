package lingua

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dataDir = "data"

func TestLoadDir(t *testing.T) {
	reg, err := LoadDir(dataDir)
	require.NoError(t, err)

	def, err := Default()
	require.NoError(t, err)
	assert.Equal(t, def.Languages(ServiceInfo), reg.Languages(ServiceInfo))

	m, err := reg.Morpho("eng")
	require.NoError(t, err)
	got, err := m.Conjugate("walk", Categories{Tense: Present, Number: Singular, Person: Third})
	require.NoError(t, err)
	assert.Equal(t, "walks", got)

	_, err = LoadDir("does-not-exist")
	assert.Error(t, err)
}

func TestEverySchemeTransliteratesEveryLanguage(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	samples := map[string]string{
		"eng": "hello",
		"fra": "bonjour",
		"ara": "مرحبا",
		"jpn": "こんにちは",
	}
	for _, lang := range reg.Languages(ServiceTrans) {
		tr, err := reg.Trans(lang)
		require.NoError(t, err)
		require.NotEmpty(t, tr.AvailableMethods())
		for _, name := range tr.AvailableMethods() {
			require.NoError(t, tr.SetCurrentMethod(name))
			out := tr.Transliterate(samples[lang])
			assert.NotEqual(t, samples[lang], out, "%s/%s", lang, name)
			assert.NotEmpty(t, tr.Untransliterate(out))
		}
	}
}
