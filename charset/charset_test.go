package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetMembership(t *testing.T) {
	t.Parallel()

	var s Set
	assert.True(t, s.IsEmpty())
	assert.False(t, s.Contains('a'))

	s.Insert('a')
	assert.True(t, s.Contains('a'))
	assert.False(t, s.Contains('b'))
	assert.True(t, s.NonEmpty())

	s.Set('a', false)
	assert.True(t, s.IsEmpty())
}

func TestRange(t *testing.T) {
	t.Parallel()

	s := Range('a', 'z')
	for c := 'a'; c <= 'z'; c++ {
		assert.True(t, s.Contains(byte(c)))
	}
	assert.False(t, s.Contains('A'))
	assert.False(t, s.Contains('a'-1))
	assert.False(t, s.Contains('z'+1))

	// Inverted ranges are empty.
	assert.True(t, Range('z', 'a').IsEmpty())
}

func TestFull(t *testing.T) {
	t.Parallel()

	full := Full()
	for i := 0; i <= 0xFF; i++ {
		assert.True(t, full.Contains(byte(i)))
	}
}

func TestSetLaws(t *testing.T) {
	t.Parallel()

	a := Range('a', 'm').Union(Singleton('0'))
	full := Full()

	assert.Equal(t, a, a.Union(a))
	assert.Equal(t, a, a.Intersect(a))
	assert.True(t, a.Difference(a).IsEmpty())
	assert.Equal(t, a, a.Negated().Negated())
	assert.Equal(t, full, a.Union(a.Negated()))
	assert.True(t, a.Intersect(a.Negated()).IsEmpty())
}

func TestDifference(t *testing.T) {
	t.Parallel()

	s := Range('a', 'f').Difference(Range('c', 'd'))
	assert.Equal(t, Range('a', 'b').Union(Range('e', 'f')), s)
}

func TestEscape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input byte
		want  string
	}{
		{'a', "a"},
		{' ', " "},
		{'~', "~"},
		{'\\', `\\`},
		{'\t', `\t`},
		{'\r', `\r`},
		{'\n', `\n`},
		{0x00, `\u0`},
		{0x0B, `\uB`},
		{0x1F, `\u1F`},
		{0x7F, `\u7F`},
		{0xFF, `\uFF`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Escape(tt.input))
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		set  Set
		want string
	}{
		{"empty", Set{}, ""},
		{"singleton", Singleton('a'), "'a'"},
		{"adjacent pair", Singleton('a').Union(Singleton('b')), "'a' - 'b'"},
		{"range", Range('a', 'c'), "'a' - 'c'"},
		{"two ranges", Range('A', 'Z').Union(Range('a', 'z')), "'A' - 'Z', 'a' - 'z'"},
		{"dash and letter", Singleton('-').Union(Singleton('a')), "'-', 'a'"},
		{"escaped members", Singleton('\n').Union(Singleton('\t')), `'\t' - '\n'`},
		{"low byte range", Range(0x00, 0x08), `'\u0' - '\u8'`},
		{
			"whitespace complement",
			Range('\t', '\r').Union(Singleton(' ')).Negated(),
			`'\u0' - '\u8', '\uE' - '\u1F', '!' - '\uFF'`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.set.String())
		})
	}
}
