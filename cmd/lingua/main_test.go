package main

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cours-de-latin/lingua"
)

// run executes the CLI with args and returns its standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"langs", []string{"langs"}, "ara\neng\nfra\njpn\n"},
		{"langs by service", []string{"langs", "--service", "Trans"}, "ara\neng\nfra\njpn\n"},
		{"langs unknown service", []string{"langs", "--service", "Speech"}, ""},
		{"conjugate", []string{"conjugate", "-l", "eng", "--tense", "present", "--number", "singular", "--person", "third", "walk"}, "walks\n"},
		{"conjugate irregular", []string{"conjugate", "-l", "en", "--tense", "past", "--person", "first", "be"}, "was\n"},
		{"declense", []string{"declense", "--number", "plural", "--case", "genitive", "child"}, "children's\n"},
		{"derivate", []string{"derivate", "--src", "adjective", "--dst", "adverb", "good"}, "well\n"},
		{"lemmatize", []string{"lemmatize", "children", "better"}, "child\ngood\n"},
		{"langs with numbers", []string{"langs", "--service", "Lang"}, "ara\neng\nfra\njpn\n"},
		{"number", []string{"number", "-l", "fr", "21", "80", "200"}, "vingt et un\nquatre-vingts\ndeux cents\n"},
		{"number negative", []string{"number", "-l", "jpn", "--", "-10000"}, "マイナス一万\n"},
		{"schemes", []string{"schemes", "-l", "jpn"}, "Hepburn\tlossy\nNihonShiki\tlossless\nKunreiShiki\tlossy\n"},
		{"trans", []string{"trans", "-l", "jpn", "きゃ"}, "kya\n"},
		{"trans scheme", []string{"trans", "-s", "Morse", "sos"}, "... --- ... \n"},
		{"trans reverse", []string{"trans", "-s", "Morse", "-r", "... --- ... "}, "sos\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info", "ar")
	require.NoError(t, err)
	assert.Contains(t, out, "code:   ara\n")
	assert.Contains(t, out, "name:   Arabic\n")
	assert.Contains(t, out, "dir:    rtl\n")
}

func TestStem(t *testing.T) {
	reg, err := lingua.Default()
	require.NoError(t, err)
	m, err := reg.Morpho("eng")
	require.NoError(t, err)

	out, err := run(t, "stem", "running", "happiness")
	require.NoError(t, err)
	assert.Equal(t, m.Stem("running")+"\n"+m.Stem("happiness")+"\n", out)
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"unknown language", []string{"stem", "-l", "deu", "gehen"}, lingua.ErrUnknownLanguage},
		{"invalid category", []string{"conjugate", "--tense", "someday", "walk"}, lingua.ErrInvalidCategoryValue},
		{"unconjugable", []string{"conjugate", "table"}, lingua.ErrUnconjugableForm},
		{"unsupported derivation", []string{"derivate", "--src", "noun", "--dst", "verb", "table"}, lingua.ErrUnsupportedDerivation},
		{"unknown scheme", []string{"trans", "-s", "Semaphore", "sos"}, lingua.ErrUnknownScheme},
		{"number not an integer", []string{"number", "twelve"}, strconv.ErrSyntax},
		{"unknown part of speech", []string{"derivate", "--src", "thing", "--dst", "verb", "table"}, lingua.ErrInvalidCategoryValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUsageErrors(t *testing.T) {
	_, err := run(t, "conjugate")
	assert.Error(t, err, "missing word")

	_, err = run(t, "derivate", "good")
	assert.Error(t, err, "missing --src and --dst")

	_, err = run(t, "langs", "extra")
	assert.Error(t, err)
}

func TestDataDir(t *testing.T) {
	_, err := run(t, "--data", t.TempDir(), "langs")
	assert.ErrorIs(t, err, lingua.ErrMalformedData)
}
