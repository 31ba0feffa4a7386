package lint

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k2d222/twwe-sub000/internal/diagnostic"
	"github.com/k2d222/twwe-sub000/internal/lexer"
)

// brief is a lint reduced to what tests compare.
type brief struct {
	Line   int
	Level  diagnostic.Level
	Reason string
}

func briefs(d diagnostic.List) []brief {
	res := make([]brief, 0, d.Len())
	for _, l := range d.Lints {
		res = append(res, brief{l.Line, l.Level, l.Reason})
	}

	return res
}

func TestLint_ValidFile(t *testing.T) {
	t.Parallel()

	text := `# corners
[grass]
NoLayerCopy
Index 1 XFLIP ROTATE
Pos 0 -1 EMPTY
Pos -1 0 NOTINDEX 1 OR 2 NONE OR 3 XFLIP YFLIP
Random 25%
NoDefaultRule
Pos 0 0 FULL

NewRun
Index 4
Random 3

[walls]
Index 2
Random 0.5
`
	d := Lint(text)
	assert.Empty(t, d.Lints, spew.Sdump(d.Lints))
}

func TestLint_MissingTileID(t *testing.T) {
	t.Parallel()

	d := Lint("[cfg]\nIndex abc\n")

	require.True(t, d.HasErrors())

	errs := d.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].Line)
	assert.Equal(t, lexer.Range{Start: 6, End: 9}, errs[0].Range)
	assert.Contains(t, errs[0].Reason, "tile id")
}

func TestLint_Cases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		expected []brief
	}{
		{
			name: "missing header",
			text: "Index 1\n",
			expected: []brief{
				{0, diagnostic.Error, "expected header"},
			},
		},
		{
			name: "unterminated header",
			text: "[cfg\nIndex 1\n",
			expected: []brief{
				{0, diagnostic.Error, "unterminated header"},
			},
		},
		{
			name: "empty config",
			text: "[a]\n[b]\nIndex 1\n",
			expected: []brief{
				{0, diagnostic.Warning, "config is empty"},
			},
		},
		{
			name: "empty last config",
			text: "[a]\nIndex 1\n[b]\nNoLayerCopy\n",
			expected: []brief{
				{2, diagnostic.Warning, "config is empty"},
			},
		},
		{
			name: "duplicate config name",
			text: "[a]\nIndex 1\n[a]\nIndex 2\n",
			expected: []brief{
				{2, diagnostic.Warning, `duplicate config name "a"`},
			},
		},
		{
			name: "pos before index",
			text: "[a]\nPos 0 0 EMPTY\nIndex 1\n",
			expected: []brief{
				{1, diagnostic.Error, `unexpected "Pos"`},
			},
		},
		{
			name: "new run resets allowed directives",
			text: "[a]\nIndex 1\nNewRun\nRandom 2\nIndex 2\n",
			expected: []brief{
				{3, diagnostic.Error, `unexpected "Random"`},
			},
		},
		{
			name: "unknown directive",
			text: "[a]\nIndex 1\nRotate 1\n",
			expected: []brief{
				{2, diagnostic.Error, `unexpected "Rotate"`},
			},
		},
		{
			name: "duplicate index flag",
			text: "[a]\nIndex 1 XFLIP ROTATE XFLIP\n",
			expected: []brief{
				{1, diagnostic.Warning, "duplicate flag XFLIP"},
			},
		},
		{
			name: "missing offsets",
			text: "[a]\nIndex 1\nPos 0\nPos\n",
			expected: []brief{
				{2, diagnostic.Error, "expected y offset"},
				{3, diagnostic.Error, "expected x offset"},
			},
		},
		{
			name: "bad selector",
			text: "[a]\nIndex 1\nPos 0 1\nPos 0 1 ANY\n",
			expected: []brief{
				{2, diagnostic.Error, "expected selector"},
				{3, diagnostic.Error, `unknown selector "ANY"`},
			},
		},
		{
			name: "missing state ids",
			text: "[a]\nIndex 1\nPos 0 1 INDEX\nPos 0 1 INDEX 2 OR\n",
			expected: []brief{
				{2, diagnostic.Error, "expected tile id"},
				{3, diagnostic.Error, "expected tile id"},
			},
		},
		{
			name: "conflicting flags",
			text: "[a]\nIndex 1\nPos 0 1 INDEX 2 NONE XFLIP OR 3 ROTATE NONE OR 4 YFLIP YFLIP OR 5 NONE NONE\n",
			expected: []brief{
				{2, diagnostic.Warning, "XFLIP conflicts with NONE"},
				{2, diagnostic.Warning, "NONE conflicts with earlier flags"},
				{2, diagnostic.Warning, "duplicate flag YFLIP"},
				{2, diagnostic.Warning, "duplicate flag NONE"},
			},
		},
		{
			name: "random",
			text: "[a]\nIndex 1\nRandom\nRandom 0\nRandom 150%\nRandom often\n",
			expected: []brief{
				{2, diagnostic.Error, "expected probability"},
				{3, diagnostic.Error, "random value must be positive"},
				{4, diagnostic.Warning, "probability above 100% always matches"},
				{5, diagnostic.Error, `expected probability, got "often"`},
			},
		},
		{
			name: "duplicate switches",
			text: "[a]\nNoLayerCopy\nNoLayerCopy\nIndex 1\nNoDefaultRule\nNoDefaultRule\nIndex 2\nNoDefaultRule\n",
			expected: []brief{
				{2, diagnostic.Warning, "duplicate NoLayerCopy"},
				{5, diagnostic.Warning, "duplicate NoDefaultRule"},
			},
		},
		{
			name: "trailing tokens",
			text: "[a] x\nIndex 1 junk\nPos 0 0 EMPTY 12\nNewRun now\n",
			expected: []brief{
				{0, diagnostic.Warning, "expected end of line"},
				{1, diagnostic.Warning, "expected end of line"},
				{2, diagnostic.Warning, "expected end of line"},
				{3, diagnostic.Warning, "expected end of line"},
			},
		},
		{
			name: "invalid number",
			text: "[a]\nIndex 1x\nIndex 2\nPos 0 1.2.3 EMPTY\n",
			expected: []brief{
				{1, diagnostic.Error, "invalid number"},
				{3, diagnostic.Error, "invalid number"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := Lint(tt.text)
			assert.Equal(t, tt.expected, briefs(d), spew.Sdump(d.Lints))
		})
	}
}

func TestLint_TrailingRange(t *testing.T) {
	t.Parallel()

	d := Lint("[a]\nIndex 1   junk more\n")

	require.Len(t, d.Lints, 1)
	assert.Equal(t, lexer.Range{Start: 10, End: 19}, d.Lints[0].Range)
}

func TestLint_AllowedSetInNote(t *testing.T) {
	t.Parallel()

	d := Lint("[a]\nPos 0 0 EMPTY\n")

	require.Len(t, d.Lints, 2)
	assert.Equal(t, "expected one of: NoLayerCopy, Index", d.Lints[0].Note)
	assert.Equal(t, "config is empty", d.Lints[1].Reason)
}

func TestLint_NeverPanics(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"\n\n\n",
		"[",
		"]",
		"[]",
		"[a]\nIndex",
		"[a]\nIndex 1\nPos",
		"[a]\nIndex 1\nPos 1 1 NOTINDEX 1 OR OR OR",
		"[a]\nIndex 1\nRandom %",
		"[a]\nIndex 1\nRandom -",
		"[a]\nIndex [1]\n",
		"[a]\nIndex [1\n",
		"\t[a]\t\r\n\tIndex\t1\r\n",
		"+\n-\n.\n%\n",
	}

	for _, text := range inputs {
		t.Run(text, func(t *testing.T) {
			t.Parallel()

			assert.NotPanics(t, func() { Lint(text) })
		})
	}
}
