package formatter

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/jsonscout/internal/models"
)

func sampleResult() models.ScanResult {
	return models.ScanResult{
		SearchedRoot: "/tmp/scan",
		Keys:         []string{"token", "email", "zzz"},
		Results: map[string]models.FileResults{
			"/tmp/scan/a.json": {
				"token": {"/token", "/nested/token"},
				"email": {"/user/email"},
			},
			"/tmp/scan/b.json": {
				"token": {"/token"},
			},
		},
		MissingKeys: []string{"zzz"},
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	f := NewFormatter()
	result := sampleResult()

	var buf bytes.Buffer
	require.NoError(t, f.JSON(&buf, result))

	var reparsed models.ScanResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &reparsed))

	assert.Equal(t, result.SearchedRoot, reparsed.SearchedRoot)
	assert.Equal(t, result.Keys, reparsed.Keys)
	assert.Equal(t, result.Results, reparsed.Results)
	assert.Equal(t, result.MissingKeys, reparsed.MissingKeys)
	assert.Equal(t, result.CaseSensitive, reparsed.CaseSensitive)
	assert.Equal(t, result.KeysOnly, reparsed.KeysOnly)
	assert.Equal(t, result.ValuesOnly, reparsed.ValuesOnly)
}

func TestJSON_EmptyResultMarshalsEmptyCollections(t *testing.T) {
	f := NewFormatter()

	var buf bytes.Buffer
	require.NoError(t, f.JSON(&buf, models.ScanResult{SearchedRoot: "/x"}))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.Equal(t, map[string]any{}, raw["results"])
	assert.Equal(t, []any{}, raw["missing_keys"])
	assert.Equal(t, []any{}, raw["keys"])
}

func TestPretty(t *testing.T) {
	f := NewFormatter()

	var buf bytes.Buffer
	require.NoError(t, f.Pretty(&buf, sampleResult()))
	out := buf.String()

	assert.Contains(t, out, "Searched: /tmp/scan")
	assert.Contains(t, out, "Keys (case-insensitive): token, email, zzz")
	assert.Contains(t, out, "Mode: keys + values")
	assert.Contains(t, out, "File: /tmp/scan/a.json")
	assert.Contains(t, out, "token ✅  (2 matches)")
	assert.Contains(t, out, "    - /nested/token")
	assert.Contains(t, out, "email ✅  (1 matches)")
	// Terms with no hits in a file get an explicit no-match line.
	assert.Contains(t, out, "  zzz —")
	assert.Contains(t, out, "Missing keys (not found anywhere):")
	assert.Contains(t, out, "  zzz ❌")

	// Files are listed sorted by path.
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("a.json")), bytes.Index(buf.Bytes(), []byte("b.json")))
}

func TestPretty_ModeLines(t *testing.T) {
	f := NewFormatter()

	var keysOnly bytes.Buffer
	require.NoError(t, f.Pretty(&keysOnly, models.ScanResult{Keys: []string{"a"}, KeysOnly: true, MissingKeys: []string{"a"}}))
	assert.Contains(t, keysOnly.String(), "Mode: keys-only")

	var valuesOnly bytes.Buffer
	require.NoError(t, f.Pretty(&valuesOnly, models.ScanResult{Keys: []string{"a"}, ValuesOnly: true, MissingKeys: []string{"a"}}))
	assert.Contains(t, valuesOnly.String(), "Mode: values-only")

	var caseSensitive bytes.Buffer
	require.NoError(t, f.Pretty(&caseSensitive, models.ScanResult{Keys: []string{"a"}, CaseSensitive: true, MissingKeys: []string{"a"}}))
	assert.Contains(t, caseSensitive.String(), "Keys (case-sensitive): a")
}

func TestPretty_NoMatchesAndAllFound(t *testing.T) {
	f := NewFormatter()

	var none bytes.Buffer
	require.NoError(t, f.Pretty(&none, models.ScanResult{Keys: []string{"a"}, MissingKeys: []string{"a"}}))
	assert.Contains(t, none.String(), "No matches found in provided files.")

	var allFound bytes.Buffer
	require.NoError(t, f.Pretty(&allFound, models.ScanResult{
		Keys:        []string{"a"},
		Results:     map[string]models.FileResults{"x.json": {"a": {"/a"}}},
		MissingKeys: []string{},
	}))
	assert.Contains(t, allFound.String(), "All keys were found at least once. 🎉")
}
