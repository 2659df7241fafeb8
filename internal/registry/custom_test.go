package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fyrsmithlabs/coinscan/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomCurrency_Compile(t *testing.T) {
	cp, err := CustomCurrency{Name: "Example Coin", Symbol: "EXC", Pattern: "EXC[0-9a-f]{8}"}.Compile()
	require.NoError(t, err)

	assert.Equal(t, "EXC", cp.Symbol)
	assert.Equal(t, "Custom: Example Coin", cp.Description)
	assert.Equal(t, validator.FamilyGeneric, cp.Family)
	assert.Equal(t, CustomMinLength, cp.MinLength)
	assert.Equal(t, CustomMaxLength, cp.MaxLength)
	assert.False(t, cp.HasChecksum)
	assert.Zero(t, cp.Bias)
	assert.True(t, cp.Custom)

	require.Len(t, cp.Patterns, 2)
	assert.True(t, cp.Patterns[0].Strict)
	assert.False(t, cp.Patterns[1].Strict)

	assert.Equal(t, "EXC0123abcd", cp.Patterns[0].Expr.FindString("id EXC0123abcd end"))
	assert.Empty(t, cp.Patterns[0].Expr.FindString("idEXC0123abcdend"))
	assert.Equal(t, "EXC0123abcd", cp.Patterns[1].Expr.FindString("idEXC0123abcdend"))
}

func TestCustomCurrency_CompileGroupsAlternation(t *testing.T) {
	cp, err := CustomCurrency{Name: "Alt", Symbol: "ALT", Pattern: "AAA[0-9]{4}|BBB[0-9]{4}"}.Compile()
	require.NoError(t, err)

	strictExpr := cp.Patterns[0].Expr
	assert.Equal(t, "BBB1234", strictExpr.FindString("x BBB1234 y"))
	assert.Empty(t, strictExpr.FindString("xBBB1234 y"))
	assert.Empty(t, strictExpr.FindString("AAA1234y"))
}

func TestCustomCurrency_CompileErrors(t *testing.T) {
	tests := []struct {
		name    string
		custom  CustomCurrency
		wantErr error
	}{
		{"bad symbol", CustomCurrency{Name: "X", Symbol: "a/b", Pattern: "x+"}, ErrInvalidSymbol},
		{"no name", CustomCurrency{Symbol: "X", Pattern: "x+"}, ErrInvalidName},
		{"empty pattern", CustomCurrency{Name: "X", Symbol: "X"}, ErrInvalidPattern},
		{"bad regex", CustomCurrency{Name: "X", Symbol: "X", Pattern: "[unclosed"}, ErrInvalidPattern},
		{"matches empty", CustomCurrency{Name: "X", Symbol: "X", Pattern: "a*"}, ErrInvalidPattern},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.custom.Compile()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegisterCustom(t *testing.T) {
	r := NewDefault()

	err := r.RegisterCustom(
		CustomCurrency{Name: "Example Coin", Symbol: "EXC", Pattern: "EXC[0-9]{6}"},
		CustomCurrency{Name: "Other", Symbol: "OTH", Pattern: "OTH[0-9]{6}"},
	)
	require.NoError(t, err)
	assert.Equal(t, 14, r.Len())

	c, err := r.Resolve("exc")
	require.NoError(t, err)
	assert.True(t, c.Custom)

	err = r.RegisterCustom(CustomCurrency{Name: "Fake Bitcoin", Symbol: "BTC", Pattern: "B[0-9]+"})
	assert.ErrorIs(t, err, ErrDuplicateSymbol)
}

func TestRegisterCustom_AliasSymbol(t *testing.T) {
	r := NewDefault()

	err := r.RegisterCustom(CustomCurrency{Name: "Ripple Points", Symbol: "RIPPLE", Pattern: "RP[0-9]{6}"})
	require.ErrorIs(t, err, ErrDuplicateSymbol)
	c, err := r.Resolve("ripple")
	require.NoError(t, err)
	assert.Equal(t, "XRP", c.Symbol)

	err = r.RegisterCustom(CustomCurrency{Name: "Ripple Points", Symbol: "RIPPLE", Pattern: "RP[0-9]{6}", ReplaceAlias: true})
	require.NoError(t, err)
	c, err = r.Resolve("ripple")
	require.NoError(t, err)
	assert.True(t, c.Custom)
	assert.NotContains(t, r.Aliases(), "RIPPLE")
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadCustomFile(t *testing.T) {
	path := writeFile(t, `
[[currency]]
name = "Example Coin"
symbol = "EXC"
pattern = "EXC[0-9a-f]{32}"

[[currency]]
name = "Other Coin"
symbol = "OTH"
pattern = 'OTH\d{10}'
`)

	customs, err := LoadCustomFile(path)
	require.NoError(t, err)
	require.Len(t, customs, 2)
	assert.Equal(t, CustomCurrency{Name: "Example Coin", Symbol: "EXC", Pattern: "EXC[0-9a-f]{32}"}, customs[0])
	assert.Equal(t, `OTH\d{10}`, customs[1].Pattern)

	r := NewDefault()
	require.NoError(t, r.RegisterCustom(customs...))
}

func TestLoadCustomFile_ReplaceAlias(t *testing.T) {
	path := writeFile(t, `
[[currency]]
name = "Tron Energy"
symbol = "TRON"
pattern = "TE[0-9]{8}"
replace_alias = true
`)

	customs, err := LoadCustomFile(path)
	require.NoError(t, err)
	require.Len(t, customs, 1)
	assert.True(t, customs[0].ReplaceAlias)

	r := NewDefault()
	require.NoError(t, r.RegisterCustom(customs...))
	c, err := r.Resolve("TRON")
	require.NoError(t, err)
	assert.Equal(t, "Tron Energy", c.Name)
}

func TestLoadCustomFile_Errors(t *testing.T) {
	t.Run("unknown key", func(t *testing.T) {
		path := writeFile(t, "[[currency]]\nname = \"X\"\nsymbol = \"X\"\nregex = \"x+\"\n")
		_, err := LoadCustomFile(path)
		assert.ErrorIs(t, err, ErrInvalidTOML)
	})

	t.Run("malformed", func(t *testing.T) {
		path := writeFile(t, "[[currency]\nname = ")
		_, err := LoadCustomFile(path)
		assert.ErrorIs(t, err, ErrInvalidTOML)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := LoadCustomFile(t.TempDir())
		assert.ErrorIs(t, err, ErrInvalidTOML)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := LoadCustomFile(filepath.Join(t.TempDir(), "missing.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
