package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTables(t *testing.T) {
	t.Run("attributes", func(t *testing.T) {
		tests := []struct {
			name string
			want Attribute
		}{
			{"none", AttrNone},
			{"unchanged", AttrNone},
			{"default", AttrReset},
			{"bold", AttrBold},
			{"dark", AttrDim},
			{"italic", AttrItalic},
			{"underline", AttrUnderline},
			{"blink", AttrBlink},
			{"rapidblink", AttrRapidBlink},
			{"reverse", AttrReverse},
			{"concealed", AttrHidden},
			{"strikethrough", AttrStrikethrough},
			{"BOLD", AttrBold},
		}
		for _, tt := range tests {
			got, ok := ResolveAttribute(tt.name)
			assert.True(t, ok, tt.name)
			assert.Equal(t, tt.want, got, tt.name)
		}
		_, ok := ResolveAttribute("red")
		assert.False(t, ok)
	})

	t.Run("foregrounds", func(t *testing.T) {
		got, ok := ResolveForeground("Red")
		require.True(t, ok)
		assert.Equal(t, FgRed, got)

		got, ok = ResolveForeground("bright_white")
		require.True(t, ok)
		assert.Equal(t, Foreground(97), got)

		_, ok = ResolveForeground("on_red")
		assert.False(t, ok)
		assert.Len(t, foregroundTable, 16)
	})

	t.Run("backgrounds", func(t *testing.T) {
		got, ok := ResolveBackground("ON_BLUE")
		require.True(t, ok)
		assert.Equal(t, BgBlue, got)

		got, ok = ResolveBackground("on_bright_black")
		require.True(t, ok)
		assert.Equal(t, Background(100), got)

		_, ok = ResolveBackground("blue")
		assert.False(t, ok)
		assert.Len(t, backgroundTable, 16)
	})
}

func TestResetCodes(t *testing.T) {
	tests := []struct {
		attr Attribute
		want int
	}{
		{AttrBold, 21},
		{AttrDim, 22},
		{AttrItalic, 23},
		{AttrUnderline, 24},
		{AttrBlink, 25},
		{AttrRapidBlink, 26},
		{AttrReverse, 27},
		{AttrHidden, 28},
		{AttrStrikethrough, 28},
		{AttrReset, 0},
		{AttrNone, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.attr.ResetCode(), tt.attr.String())
	}
}

func TestColorSpecSequences(t *testing.T) {
	tests := []struct {
		name           string
		group          string
		wantActivate   string
		wantDeactivate string
	}{
		{
			name:           "red bold",
			group:          "red bold",
			wantActivate:   "\x1b[31;49;1m",
			wantDeactivate: "\x1b[39;49;21m",
		},
		{
			name:           "plain color",
			group:          "green",
			wantActivate:   "\x1b[32;49m",
			wantDeactivate: "\x1b[39;49m",
		},
		{
			name:           "background and attributes sorted",
			group:          "underline on_blue bright_yellow bold",
			wantActivate:   "\x1b[93;44;1;4m",
			wantDeactivate: "\x1b[39;49;21;24m",
		},
		{
			name:           "default reset goes first",
			group:          "default cyan",
			wantActivate:   "\x1b[0;36;49m",
			wantDeactivate: "\x1b[39;49m",
		},
		{
			name:           "unknown tokens dropped",
			group:          "sparkly red",
			wantActivate:   "\x1b[31;49m",
			wantDeactivate: "\x1b[39;49m",
		},
		{
			name:           "empty group",
			group:          "",
			wantActivate:   "\x1b[39;49m",
			wantDeactivate: "\x1b[39;49m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := ParseSpec(tt.group)
			assert.Equal(t, tt.wantActivate, spec.Activate())
			assert.Equal(t, tt.wantDeactivate, spec.Deactivate())
		})
	}
}

func TestParseSpecLastColorWins(t *testing.T) {
	spec := ParseSpec("red blue on_green on_white")
	assert.Equal(t, FgBlue, spec.Foreground())
	assert.Equal(t, BgWhite, spec.Background())
}

func TestParseSpecNone(t *testing.T) {
	assert.True(t, ParseSpec("none").IsNone())
	assert.True(t, ParseSpec("Unchanged red").IsNone())
	assert.False(t, ParseSpec("default").IsNone())
	assert.False(t, ParseSpec("red").IsNone())
}

func TestParseSpecList(t *testing.T) {
	specs := ParseSpecList("default,bold red,,none")
	require.Len(t, specs, 4)

	assert.True(t, specs[0].HasAttribute(AttrReset))
	assert.Equal(t, FgRed, specs[1].Foreground())
	assert.Equal(t, FgDefault, specs[2].Foreground())
	assert.Empty(t, specs[2].Attributes())
	assert.True(t, specs[3].IsNone())
}

func TestSpecStringRoundTrip(t *testing.T) {
	inputs := []string{
		"bold red",
		"on_bright_blue underline white",
		"none",
		"",
		"default,green,bold on_red",
	}

	for _, in := range inputs {
		specs := ParseSpecList(in)
		again := ParseSpecList(FormatSpecList(specs))
		require.Len(t, again, len(specs), in)
		for i := range specs {
			assert.Equal(t, specs[i].Activate(), again[i].Activate(), in)
			assert.Equal(t, specs[i].Deactivate(), again[i].Deactivate(), in)
			assert.Equal(t, specs[i].IsNone(), again[i].IsNone(), in)
		}
	}

	assert.Equal(t, "bold red", ParseSpec("RED bold").String())
	assert.Equal(t, []string{"underline", "white", "on_bright_blue"}, ParseSpec("on_bright_blue underline white").Tokens())
	assert.Equal(t, []string{}, ParseSpec("").Tokens())
}

func TestAttributesReturnsCopy(t *testing.T) {
	spec := ParseSpec("bold underline")
	attrs := spec.Attributes()
	attrs[0] = AttrBlink
	assert.Equal(t, AttrBold, spec.Attributes()[0])
}
