package macrogen

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const limitThreeOutput = `/*** Generated code ***/

static VISIT_STRUCT_CONSTEXPR const int max_visitable_members = 3;

#define VISIT_STRUCT_EXPAND(x) x
#define VISIT_STRUCT_PP_ARG_N( \
        _1, _2, _3, N, ...) N
#define VISIT_STRUCT_PP_NARG(...) VISIT_STRUCT_EXPAND(VISIT_STRUCT_PP_ARG_N(__VA_ARGS__,  \
        3, 2, 1, 0))

/* need extra level to force extra eval */
#define VISIT_STRUCT_CONCAT_(a,b) a ## b
#define VISIT_STRUCT_CONCAT(a,b) VISIT_STRUCT_CONCAT_(a,b)

#define VISIT_STRUCT_APPLYF0(f)
#define VISIT_STRUCT_APPLYF1(f,_1) f(_1)
#define VISIT_STRUCT_APPLYF2(f,_1,_2) f(_1) f(_2)
#define VISIT_STRUCT_APPLYF3(f,_1,_2,_3) f(_1) f(_2) f(_3)

#define VISIT_STRUCT_APPLY_F_(M, ...) VISIT_STRUCT_EXPAND(M(__VA_ARGS__))
#define VISIT_STRUCT_PP_MAP(f, ...) VISIT_STRUCT_EXPAND(VISIT_STRUCT_APPLY_F_(VISIT_STRUCT_CONCAT(VISIT_STRUCT_APPLYF, VISIT_STRUCT_PP_NARG(__VA_ARGS__)), f, __VA_ARGS__))

/*** End generated code ***/
`

var applyDefRe = regexp.MustCompile(`(?m)^#define VISIT_STRUCT_APPLYF(\d+)\(`)

func render(t *testing.T, opts Options) string {
	t.Helper()
	g, err := New(opts)
	require.NoError(t, err)
	out, err := g.Generate()
	require.NoError(t, err)
	return string(out)
}

func withLimit(limit int) Options {
	opts := DefaultOptions()
	opts.Limit = limit
	return opts
}

func TestGenerate_LimitThreeExact(t *testing.T) {
	assert.Equal(t, limitThreeOutput, render(t, withLimit(3)))
}

func TestGenerate_LimitZero(t *testing.T) {
	out := render(t, withLimit(0))

	assert.Contains(t, out, "max_visitable_members = 0;")
	assert.Contains(t, out, "#define VISIT_STRUCT_PP_ARG_N(  N, ...) N\n")
	assert.Contains(t, out, "VISIT_STRUCT_PP_ARG_N(__VA_ARGS__, 0))\n")

	matches := applyDefRe.FindAllStringSubmatch(out, -1)
	require.Len(t, matches, 1)
	assert.Equal(t, "0", matches[0][1])
	assert.Contains(t, out, "\n#define VISIT_STRUCT_APPLYF0(f)\n")
}

func TestGenerate_ApplyMacroCount(t *testing.T) {
	for _, limit := range []int{0, 1, 2, 9, 10, 11, 25, 69, 128} {
		t.Run(fmt.Sprintf("limit=%d", limit), func(t *testing.T) {
			out := render(t, withLimit(limit))

			matches := applyDefRe.FindAllStringSubmatch(out, -1)
			require.Len(t, matches, limit+1)
			for k, m := range matches {
				assert.Equal(t, fmt.Sprint(k), m[1], "apply macros must be in increasing arity order")
			}
			assert.Contains(t, out, fmt.Sprintf("max_visitable_members = %d;", limit))
		})
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	first := render(t, DefaultOptions())
	second := render(t, DefaultOptions())
	assert.Equal(t, first, second)
}

func TestGenerate_Monotonic(t *testing.T) {
	for k := 0; k < 15; k++ {
		smaller := render(t, withLimit(k))
		larger := render(t, withLimit(k+1))

		smallApplies := applyDefRe.FindAllString(smaller, -1)
		largeApplies := applyDefRe.FindAllString(larger, -1)
		require.Len(t, largeApplies, len(smallApplies)+1)

		for a := 0; a <= k; a++ {
			assert.Contains(t, larger, ApplyMacro(DefaultPrefix, a)+"\n")
		}
		assert.Contains(t, larger, ApplyMacro(DefaultPrefix, k+1)+"\n")
		assert.NotContains(t, smaller, ApplyMacro(DefaultPrefix, k+1)+"\n")
	}
}

func TestGenerate_SelectorAndCounterGrowByOne(t *testing.T) {
	for k := 0; k < 25; k++ {
		smallSel := strings.Fields(strings.ReplaceAll(selectorParams(k, DefaultGroupSize), "\\", ""))
		largeSel := strings.Fields(strings.ReplaceAll(selectorParams(k+1, DefaultGroupSize), "\\", ""))
		assert.Len(t, largeSel, len(smallSel)+1)

		smallSen := strings.Fields(strings.ReplaceAll(sentinels(k, DefaultGroupSize), "\\", ""))
		largeSen := strings.Fields(strings.ReplaceAll(sentinels(k+1, DefaultGroupSize), "\\", ""))
		assert.Len(t, largeSen, len(smallSen)+1)
	}
}

func TestGenerate_DefaultLimitWrapsInTens(t *testing.T) {
	out := render(t, DefaultOptions())

	assert.Contains(t, out, "max_visitable_members = 69;")
	assert.Contains(t, out, "        _61, _62, _63, _64, _65, _66, _67, _68, _69, N, ...) N\n")
	assert.Contains(t, out, "        _1, _2, _3, _4, _5, _6, _7, _8, _9, _10,\\\n")
	assert.Contains(t, out, "        69, 68, 67, 66, 65, 64, 63, 62, 61, 60,  \\\n")
	assert.Contains(t, out, "        9, 8, 7, 6, 5, 4, 3, 2, 1, 0))\n")
}

func TestGenerate_GroupSizeZeroSingleLine(t *testing.T) {
	opts := withLimit(3)
	opts.GroupSize = 0
	out := render(t, opts)

	assert.Contains(t, out, "#define VISIT_STRUCT_PP_ARG_N(  _1, _2, _3, N, ...) N\n")
	assert.Contains(t, out, "VISIT_STRUCT_PP_ARG_N(__VA_ARGS__, 3, 2, 1, 0))\n")
	assert.NotContains(t, out, "\\")
}

func TestGenerate_CustomPrefixIsUniform(t *testing.T) {
	opts := withLimit(5)
	opts.Prefix = "MY_LIB"
	out := render(t, opts)

	assert.NotContains(t, out, "VISIT_STRUCT")
	assert.Contains(t, out, "static MY_LIB_CONSTEXPR const int max_visitable_members = 5;")

	defineRe := regexp.MustCompile(`(?m)^#define (\w+)`)
	defs := defineRe.FindAllStringSubmatch(out, -1)
	require.NotEmpty(t, defs)
	for _, d := range defs {
		assert.True(t, strings.HasPrefix(d[1], "MY_LIB_"), "identifier %q lacks prefix", d[1])
	}
}

func TestGenerate_CustomConstDecl(t *testing.T) {
	opts := withLimit(2)
	opts.ConstDecl = "constexpr int"
	out := render(t, opts)

	assert.Contains(t, out, "\nconstexpr int max_visitable_members = 2;\n")
}

func TestGenerate_BlockOrder(t *testing.T) {
	lines, err := Generate(4)
	require.NoError(t, err)

	order := []string{
		"/*** Generated code ***/",
		"static VISIT_STRUCT_CONSTEXPR const int max_visitable_members = 4;",
		"#define VISIT_STRUCT_EXPAND(x) x",
		"#define VISIT_STRUCT_PP_ARG_N(",
		"#define VISIT_STRUCT_PP_NARG(...)",
		"/* need extra level to force extra eval */",
		"#define VISIT_STRUCT_CONCAT_(a,b) a ## b",
		"#define VISIT_STRUCT_CONCAT(a,b)",
		"#define VISIT_STRUCT_APPLYF0(f)",
		"#define VISIT_STRUCT_APPLYF4(f,_1,_2,_3,_4)",
		"#define VISIT_STRUCT_APPLY_F_(M, ...)",
		"#define VISIT_STRUCT_PP_MAP(f, ...)",
		"/*** End generated code ***/",
	}

	pos := -1
	for _, want := range order {
		found := -1
		for i := pos + 1; i < len(lines); i++ {
			if strings.HasPrefix(lines[i], want) {
				found = i
				break
			}
		}
		require.NotEqual(t, -1, found, "missing or out of order: %q", want)
		pos = found
	}
	assert.Equal(t, "/*** End generated code ***/", lines[len(lines)-1])
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr error
	}{
		{"negative limit", func(o *Options) { o.Limit = -1 }, ErrNegativeLimit},
		{"empty prefix", func(o *Options) { o.Prefix = "" }, ErrInvalidPrefix},
		{"prefix with space", func(o *Options) { o.Prefix = "MY LIB" }, ErrInvalidPrefix},
		{"prefix starting with digit", func(o *Options) { o.Prefix = "1LIB" }, ErrInvalidPrefix},
		{"negative group size", func(o *Options) { o.GroupSize = -3 }, ErrNegativeGroupSize},
		{"const decl with newline", func(o *Options) { o.ConstDecl = "int\n#define X 1\nint" }, ErrInvalidConstDecl},
		{"const decl with carriage return", func(o *Options) { o.ConstDecl = "int\r" }, ErrInvalidConstDecl},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)

			g, err := New(opts)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestGenerate_NegativeLimit(t *testing.T) {
	lines, err := Generate(-5)
	require.ErrorIs(t, err, ErrNegativeLimit)
	assert.Nil(t, lines)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWriteTo(t *testing.T) {
	g, err := New(withLimit(3))
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := g.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len(limitThreeOutput)), n)
	assert.Equal(t, limitThreeOutput, buf.String())

	_, err = g.WriteTo(failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}

func TestEffectiveConstDecl(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, "static VISIT_STRUCT_CONSTEXPR const int", opts.EffectiveConstDecl())

	opts.ConstDecl = "   "
	assert.Equal(t, "static VISIT_STRUCT_CONSTEXPR const int", opts.EffectiveConstDecl())

	opts.ConstDecl = "inline constexpr int"
	assert.Equal(t, "inline constexpr int", opts.EffectiveConstDecl())
}
