package parser_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/sqlkit/pkg/dialect"
	_ "github.com/leapstack-labs/sqlkit/pkg/dialects/all"
	"github.com/leapstack-labs/sqlkit/pkg/parser"
)

// corpusCase is one entry of a testdata/*.yaml file. A case either
// round-trips in every listed dialect or, when Error is set, fails in
// every listed dialect with a message containing Error.
type corpusCase struct {
	Name      string   `yaml:"name"`
	Dialects  []string `yaml:"dialects"`
	SQL       string   `yaml:"sql"`
	Canonical string   `yaml:"canonical"`
	Error     string   `yaml:"error"`
}

func loadCorpus(t *testing.T) map[string][]corpusCase {
	t.Helper()
	files, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	corpus := make(map[string][]corpusCase, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		require.NoError(t, err)
		var cases []corpusCase
		require.NoError(t, yaml.Unmarshal(data, &cases), f)
		corpus[strings.TrimSuffix(filepath.Base(f), ".yaml")] = cases
	}
	return corpus
}

// ---------- Corpus Tests ----------

func TestCorpus(t *testing.T) {
	for file, cases := range loadCorpus(t) {
		t.Run(file, func(t *testing.T) {
			for _, tc := range cases {
				require.NotEmpty(t, tc.Dialects, "%s: no dialects", tc.Name)
				for _, name := range tc.Dialects {
					t.Run(tc.Name+"/"+name, func(t *testing.T) {
						d, err := dialect.Lookup(name)
						require.NoError(t, err)

						if tc.Error != "" {
							_, err := parser.Parse(d, tc.SQL)
							require.Error(t, err)
							assert.Contains(t, err.Error(), tc.Error)
							return
						}

						got := roundTrip(t, d, tc.SQL)
						if tc.Canonical != "" {
							assert.Equal(t, tc.Canonical, got)
						}
					})
				}
			}
		})
	}
}

// TestCorpusCanonicalIsStable feeds each canonical form back in as input:
// canonical output must itself be canonical.
func TestCorpusCanonicalIsStable(t *testing.T) {
	for _, cases := range loadCorpus(t) {
		for _, tc := range cases {
			if tc.Canonical == "" {
				continue
			}
			d, err := dialect.Lookup(tc.Dialects[0])
			require.NoError(t, err)
			assert.Equal(t, tc.Canonical, roundTrip(t, d, tc.Canonical), tc.Name)
		}
	}
}
