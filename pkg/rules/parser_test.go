package rules

import (
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/cgrc/pkg/colors"
	"github.com/arthur-debert/cgrc/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SingleRule(t *testing.T) {
	rs, err := Parse("regexp=error\ncolours=red bold\n\n")
	require.NoError(t, err)
	require.Equal(t, 1, rs.Len())

	rule := rs.Rule(0)
	assert.Equal(t, "error", rule.Pattern())
	assert.Equal(t, 1, rule.NumColors())
	assert.False(t, rule.Skip())
	assert.Equal(t, CountMore, rule.Count())

	spec, ok := rule.Color(0)
	require.True(t, ok)
	assert.Equal(t, colors.FgRed, spec.Foreground())
	assert.True(t, spec.HasAttribute(colors.AttrBold))

	_, ok = rule.Color(1)
	assert.False(t, ok)
}

func TestParse_NoTrailingBlankLine(t *testing.T) {
	rs, err := Parse("regexp=foo\ncolours=green")
	require.NoError(t, err)
	assert.Equal(t, []string{"foo"}, rs.Patterns())
}

func TestParse_MultipleBlocks(t *testing.T) {
	conf := strings.Join([]string{
		"desc=Ping output",
		"regexp=(\\d+) bytes",
		"colours=default,bold yellow",
		"",
		"# a separator comment",
		"regexp=time=([\\d.]+)",
		"colours=default,green",
		"count=once",
		"======",
		"regexp=^PING",
		"skip=yes",
	}, "\n")

	rs, err := Parse(conf)
	require.NoError(t, err)
	require.Equal(t, 3, rs.Len())

	desc, ok := rs.Description()
	assert.True(t, ok)
	assert.Equal(t, "Ping output", desc)

	assert.Equal(t, []string{`(\d+) bytes`, `time=([\d.]+)`, `^PING`}, rs.Patterns())
	assert.Equal(t, 2, rs.Rule(0).NumColors())
	assert.Equal(t, CountOnce, rs.Rule(1).Count())
	assert.True(t, rs.Rule(2).Skip())
}

func TestParse_KeywordsCaseInsensitivePatternPreserved(t *testing.T) {
	rs, err := Parse("REGEXP=ERROR [A-Z]+\nColours=RED\nSKIP=No\nCount=STOP\n")
	require.NoError(t, err)
	require.Equal(t, 1, rs.Len())

	rule := rs.Rule(0)
	assert.Equal(t, "ERROR [A-Z]+", rule.Pattern())
	assert.False(t, rule.Skip())
	assert.Equal(t, CountStop, rule.Count())

	ok, err := rule.Regexp().MatchString("ERROR ABC")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = rule.Regexp().MatchString("error abc")
	require.NoError(t, err)
	assert.False(t, ok, "pattern must stay case-sensitive")
}

func TestParse_SkipValues(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"yes", true},
		{"YES", true},
		{"Yes", true},
		{"no", false},
		{"true", false},
		{"", false},
	}
	for _, tt := range tests {
		rs, err := Parse("regexp=x\nskip=" + tt.value + "\n")
		require.NoError(t, err, tt.value)
		assert.Equal(t, tt.want, rs.Rule(0).Skip(), tt.value)
	}
}

func TestParse_CountModes(t *testing.T) {
	for _, name := range []string{"once", "more", "stop", "previous", "block", "unblock"} {
		rs, err := Parse("regexp=x\ncount=" + name + "\n")
		require.NoError(t, err, name)
		assert.Equal(t, name, rs.Rule(0).Count().String())
	}
}

func TestParse_InvalidCountMode(t *testing.T) {
	_, err := ParseWithOptions(strings.NewReader("regexp=x\ncount=twice\n"), Options{Source: "test.conf"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	assert.Contains(t, err.Error(), "test.conf:2")
	assert.Contains(t, err.Error(), "twice")
	assert.Equal(t, 2, errors.GetErrorDetails(err)["line"])
}

func TestParse_InvalidRegexp(t *testing.T) {
	_, err := Parse("desc=broken\nregexp=(unclosed\ncolours=red\n")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	assert.Contains(t, err.Error(), "<input>:2")
	assert.Contains(t, err.Error(), "regexp=(unclosed")
}

func TestParse_LookAround(t *testing.T) {
	rs, err := Parse(`regexp=(?<=id=)\d+(?!\d)` + "\ncolours=cyan\n")
	require.NoError(t, err)

	m, err := rs.Rule(0).Regexp().FindStringMatch("user id=42 ok")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "42", m.String())
}

func TestParse_BlockWithoutRegexp(t *testing.T) {
	tests := []struct {
		name string
		conf string
	}{
		{"colours only", "colours=red\n\nregexp=x\n"},
		{"skip only at eof", "regexp=x\n\nskip=yes"},
		{"count only", "count=once\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.conf)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
			assert.Contains(t, err.Error(), "no regexp")
		})
	}
}

func TestParse_EmptyAndCommentOnly(t *testing.T) {
	for _, conf := range []string{"", "\n\n", "# nothing here\n", "desc=only a description"} {
		rs, err := Parse(conf)
		require.NoError(t, err, conf)
		assert.Equal(t, 0, rs.Len(), conf)
	}

	rs, err := Parse("desc=only a description")
	require.NoError(t, err)
	desc, ok := rs.Description()
	assert.True(t, ok)
	assert.Equal(t, "only a description", desc)

	rs, err = Parse("")
	require.NoError(t, err)
	_, ok = rs.Description()
	assert.False(t, ok)
}

func TestParse_LastDescriptionWins(t *testing.T) {
	rs, err := Parse("desc=first\ndesc=Second One\n")
	require.NoError(t, err)
	desc, _ := rs.Description()
	assert.Equal(t, "Second One", desc)
}

func TestParse_CRLF(t *testing.T) {
	rs, err := Parse("regexp=foo$\r\ncolours=red\r\n\r\nregexp=bar\r\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"foo$", "bar"}, rs.Patterns())
}

func TestParse_ColoursAccumulate(t *testing.T) {
	rs, err := Parse("regexp=(a)(b)(c)\ncolours=red,green\ncolours=blue\n")
	require.NoError(t, err)
	rule := rs.Rule(0)
	require.Equal(t, 3, rule.NumColors())
	spec, _ := rule.Color(2)
	assert.Equal(t, colors.FgBlue, spec.Foreground())
}

func TestParse_ColorsSpelling(t *testing.T) {
	rs, err := Parse("regexp=a\ncolors=magenta\n")
	require.NoError(t, err)
	spec, _ := rs.Rule(0).Color(0)
	assert.Equal(t, colors.FgMagenta, spec.Foreground())
}

func TestParse_ValueKeepsEqualsSigns(t *testing.T) {
	rs, err := Parse("regexp=key=(\\w+)\n")
	require.NoError(t, err)
	assert.Equal(t, `key=(\w+)`, rs.Rule(0).Pattern())
}

func TestParse_Options(t *testing.T) {
	rs, err := ParseWithOptions(strings.NewReader("regexp=a+\n"), Options{
		Source:       "embedded:ping",
		MatchTimeout: 250 * time.Millisecond,
	})
	require.NoError(t, err)
	assert.Equal(t, "embedded:ping", rs.Source())
	assert.Equal(t, 250*time.Millisecond, rs.Rule(0).Regexp().MatchTimeout)
}

func TestParse_Deterministic(t *testing.T) {
	conf := "regexp=(\\d+)\ncolours=default,green\n\nregexp=\\d+\ncolours=red\ncount=stop\n\nregexp=foo\n"

	first, err := Parse(conf)
	require.NoError(t, err)
	second, err := ParseReader(strings.NewReader(conf))
	require.NoError(t, err)

	assert.Equal(t, first.Len(), second.Len())
	assert.Equal(t, first.Patterns(), second.Patterns())
}

func TestRuleSetAccessorsReturnCopies(t *testing.T) {
	rs, err := Parse("regexp=a\ncolours=red\n\nregexp=b\n")
	require.NoError(t, err)

	list := rs.Rules()
	list[0] = nil
	assert.NotNil(t, rs.Rule(0))

	cols := rs.Rule(0).Colors()
	cols[0] = colors.ParseSpec("blue")
	spec, _ := rs.Rule(0).Color(0)
	assert.Equal(t, colors.FgRed, spec.Foreground())
}

func TestParseCountMode(t *testing.T) {
	mode, ok := ParseCountMode(" Once ")
	assert.True(t, ok)
	assert.Equal(t, CountOnce, mode)

	_, ok = ParseCountMode("sometimes")
	assert.False(t, ok)

	assert.Equal(t, "unknown", CountMode(99).String())
}
