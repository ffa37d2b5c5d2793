package pjson

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mcncl/pjson/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogger(level slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})), &buf
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDecode_Document(t *testing.T) {
	v, err := Decode(strings.NewReader(`{"b": [1, -2, 3.5], "a": {"nested": null}, "c": "s"}`))
	require.NoError(t, err)

	want := FromObject(objectOf(
		"a", map[string]any{"nested": nil},
		"b", []any{uint64(1), int64(-2), 3.5},
		"c", "s",
	))
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("Decode mismatch (-want +got):\n%s", diff)
	}
}

func TestDecoder_DuplicateKeys(t *testing.T) {
	logger, buf := captureLogger(slog.LevelDebug)
	d, err := NewDecoder(WithLogger(logger))
	require.NoError(t, err)

	v, err := d.DecodeString(`{"a": 1, "a": 2}`)
	require.NoError(t, err)
	assert.True(t, v.Index(Key("a")).Equal(FromUint64(2)))

	out := buf.String()
	assert.Contains(t, out, `msg="duplicate key collapsed" key=a`)
	assert.Contains(t, out, `msg="decode finished" type=Object len=1`)

	strict, err := NewDecoder(WithDuplicateKeys(DuplicateReject))
	require.NoError(t, err)
	_, err = strict.DecodeString(`{"a": 1, "a": 2}`)
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestDecoder_MaxDepth(t *testing.T) {
	d, err := NewDecoder(WithMaxDepth(2))
	require.NoError(t, err)

	_, err = d.DecodeString(`[[1]]`)
	assert.NoError(t, err)
	_, err = d.DecodeString(`[[[1]]]`)
	assert.ErrorIs(t, err, ErrMaxDepth)

	unlimited, err := NewDecoder(WithMaxDepth(0))
	require.NoError(t, err)
	_, err = unlimited.DecodeString(strings.Repeat("[", 600) + strings.Repeat("]", 600))
	assert.NoError(t, err)

	// the default limit still applies
	_, err = DecodeString(strings.Repeat("[", 600) + strings.Repeat("]", 600))
	assert.ErrorIs(t, err, ErrMaxDepth)
}

func TestNewDecoder_InvalidOptions(t *testing.T) {
	_, err := NewDecoder(WithDuplicateKeys("sometimes"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewDecoder(WithMaxDepth(-1))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewDecoder(WithConfigFile(filepath.Join(t.TempDir(), "missing.yml")))
	require.Error(t, err)
	assert.ErrorIs(t, err, &AppError{Type: errors.ErrorTypeConfig})
}

func TestDecoder_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "strict.yml", "decode:\n  duplicate_keys: reject\n  max_depth: 3\n")

	d, err := NewDecoder(WithConfigFile(path))
	require.NoError(t, err)

	_, err = d.DecodeString(`{"k": 1, "k": 1}`)
	assert.ErrorIs(t, err, ErrDuplicateKey)
	_, err = d.DecodeString(`[[[[0]]]]`)
	assert.ErrorIs(t, err, ErrMaxDepth)

	// later options win
	d, err = NewDecoder(WithConfigFile(path), WithDuplicateKeys(DuplicateLastWins))
	require.NoError(t, err)
	_, err = d.DecodeString(`{"k": 1, "k": 1}`)
	assert.NoError(t, err)
}

func TestDecoder_DiscoveredConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".pjson.yml", "decode:\n  duplicate_keys: reject\n")
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	t.Chdir(nested)

	d, err := NewDecoder(WithDiscoveredConfig())
	require.NoError(t, err)
	_, err = d.DecodeString(`{"k": 1, "k": 2}`)
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestDecoder_DiscoveredConfigAbsent(t *testing.T) {
	t.Chdir(t.TempDir())

	d, err := NewDecoder(WithDiscoveredConfig())
	require.NoError(t, err)
	_, err = d.DecodeString(`{"k": 1, "k": 2}`)
	assert.NoError(t, err)
}

func TestDecoder_VerboseLogsAtInfo(t *testing.T) {
	path := writeFile(t, t.TempDir(), "verbose.yml", "dev:\n  verbose: true\n")
	logger, buf := captureLogger(slog.LevelInfo)

	d, err := NewDecoder(WithConfigFile(path), WithLogger(logger))
	require.NoError(t, err)
	_, err = d.DecodeString(`[1, 2, 3]`)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `level=INFO msg="decode finished" type=Array len=3`)
}

func TestDecoder_DecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "doc.json", `{"product": "Laptop", "price": 1200.50}`)

	d, err := NewDecoder()
	require.NoError(t, err)

	v, err := d.DecodeFile(path)
	require.NoError(t, err)
	assert.True(t, v.Index(Key("product")).Equal(FromString("Laptop")))
	assert.True(t, v.Index(Key("price")).Equal(mustFloat(1200.5)))

	_, err = d.DecodeFile(filepath.Join(dir, "nope.json"))
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = d.DecodeFile(writeFile(t, dir, "empty.json", ""))
	assert.ErrorIs(t, err, ErrFileEmpty)
}

func TestDecode_Errors(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want error
	}{
		{"Empty", "", ErrEmptyInput},
		{"Whitespace", "  \n", ErrEmptyInput},
		{"Malformed", `{"a": }`, ErrInvalidJSON},
		{"Multiple", `1 2`, ErrMultipleJSON},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeString(tc.text)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDecoder_DecodeFileFixture(t *testing.T) {
	d, err := NewDecoder()
	require.NoError(t, err)

	v, err := d.DecodeFile(filepath.Join("testdata", "user.json"))
	require.NoError(t, err)

	user := v.Index(Key("user"))
	obj, ok := user.AsObject()
	require.True(t, ok)
	assert.Equal(t, []string{
		"active", "created_at", "email", "id", "name",
		"preferences", "profile", "roles", "stats",
	}, keysOf(&obj))

	assert.True(t, user.Index(Key("roles")).Index(Pos(0)).Equal(FromString("admin")))
	assert.True(t, user.Index(Key("profile")).Index(Key("social")).Index(Key("linkedin")).IsNull())
	assert.True(t, user.Index(Key("preferences")).Index(Key("notifications")).Index(Key("push")).Equal(FromBool(false)))

	stats := user.Index(Key("stats"))
	id, _ := user.Index(Key("id")).AsNumber()
	assert.Equal(t, PosInt, id.Kind())
	posts, _ := stats.Index(Key("posts")).AsNumber()
	assert.Equal(t, NegInt, posts.Kind())
	score, _ := stats.Index(Key("score")).AsNumber()
	assert.Equal(t, Float, score.Kind())
}

func TestDecoder_ConfigFileKeepsEarlierOptions(t *testing.T) {
	dir := t.TempDir()
	depthOnly := writeFile(t, dir, "depth.yml", "decode:\n  max_depth: 3\n")
	dupOnly := writeFile(t, dir, "dup.yml", "decode:\n  duplicate_keys: last_wins\n")
	unlimited := writeFile(t, dir, "unlimited.yml", "decode:\n  max_depth: 0\n")

	t.Run("PolicySurvivesDepthFile", func(t *testing.T) {
		d, err := NewDecoder(WithDuplicateKeys(DuplicateReject), WithConfigFile(depthOnly))
		require.NoError(t, err)

		_, err = d.DecodeString(`{"k": 1, "k": 2}`)
		assert.ErrorIs(t, err, ErrDuplicateKey)
		_, err = d.DecodeString(`[[[[0]]]]`)
		assert.ErrorIs(t, err, ErrMaxDepth)
	})

	t.Run("DepthSurvivesPolicyFile", func(t *testing.T) {
		d, err := NewDecoder(WithMaxDepth(2), WithConfigFile(dupOnly))
		require.NoError(t, err)

		_, err = d.DecodeString(`[[[1]]]`)
		assert.ErrorIs(t, err, ErrMaxDepth)
	})

	t.Run("FileZeroDepthIsUnlimited", func(t *testing.T) {
		d, err := NewDecoder(WithConfigFile(unlimited))
		require.NoError(t, err)

		_, err = d.DecodeString(strings.Repeat("[", 600) + strings.Repeat("]", 600))
		assert.NoError(t, err)
	})
}
