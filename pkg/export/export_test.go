package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/arthur-debert/cgrc/pkg/errors"
	"github.com/arthur-debert/cgrc/pkg/rules"
	"github.com/beevik/etree"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sample = `desc=Sample rules
regexp=(\d+) bytes
colours=default,bold yellow

regexp=^#
skip=yes

regexp=error
colours=red on_white underline,none
count=stop
`

func parse(t *testing.T, conf string) *rules.RuleSet {
	t.Helper()
	rs, err := rules.ParseWithOptions(strings.NewReader(conf), rules.Options{Source: "sample"})
	require.NoError(t, err)
	return rs
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("ini")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "conf, yaml, json, toml, xml")
}

func TestConfRoundTrip(t *testing.T) {
	original := parse(t, sample)
	again := parse(t, Conf(original))

	require.Equal(t, original.Len(), again.Len())
	desc, _ := again.Description()
	assert.Equal(t, "Sample rules", desc)

	for i := 0; i < original.Len(); i++ {
		a, b := original.Rule(i), again.Rule(i)
		assert.Equal(t, a.Pattern(), b.Pattern())
		assert.Equal(t, a.Skip(), b.Skip())
		assert.Equal(t, a.Count(), b.Count())
		require.Equal(t, a.NumColors(), b.NumColors())
		for j, spec := range a.Colors() {
			other, _ := b.Color(j)
			assert.Equal(t, spec.Activate(), other.Activate())
			assert.Equal(t, spec.IsNone(), other.IsNone())
		}
	}
}

func TestConfOutput(t *testing.T) {
	rs := parse(t, "regexp=a\ncolours=Bold RED\n\nregexp=b\ncount=once\n")

	assert.Equal(t, "regexp=a\ncolours=bold red\n\nregexp=b\ncount=once\n", Conf(rs))
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, parse(t, sample), FormatYAML, Options{}))

	var doc Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "sample", doc.Source)
	assert.Equal(t, "Sample rules", doc.Description)
	require.Len(t, doc.Rules, 3)
	assert.Equal(t, []string{"default", "bold yellow"}, doc.Rules[0].Colours)
	assert.True(t, doc.Rules[1].Skip)
	assert.Equal(t, "stop", doc.Rules[2].Count)
	assert.Equal(t, []string{"underline red on_white", "none"}, doc.Rules[2].Colours)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, parse(t, sample), FormatJSON, Options{}))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Rules, 3)
	assert.Equal(t, `(\d+) bytes`, doc.Rules[0].Regexp)
	assert.Equal(t, "more", doc.Rules[0].Count)

	buf.Reset()
	require.NoError(t, Write(&buf, parse(t, sample), FormatJSON, Options{Color: true}))
	assert.Contains(t, buf.String(), "regexp")
	assert.Contains(t, buf.String(), "Sample rules")
}

func TestWriteTOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, parse(t, sample), FormatTOML, Options{}))

	var doc Document
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Rules, 3)
	assert.Equal(t, "^#", doc.Rules[1].Regexp)
	assert.Empty(t, doc.Rules[1].Colours)
}

func TestWriteXML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, parse(t, sample), FormatXML, Options{}))

	x := etree.NewDocument()
	require.NoError(t, x.ReadFromBytes(buf.Bytes()))

	root := x.SelectElement("ruleset")
	require.NotNil(t, root)
	assert.Equal(t, "sample", root.SelectAttrValue("source", ""))
	assert.Equal(t, "Sample rules", root.SelectElement("description").Text())

	ruleEls := root.SelectElements("rule")
	require.Len(t, ruleEls, 3)
	assert.Equal(t, "yes", ruleEls[1].SelectAttrValue("skip", "no"))
	assert.Equal(t, "error", ruleEls[2].SelectElement("regexp").Text())

	groups := ruleEls[0].SelectElement("colours").SelectElements("group")
	require.Len(t, groups, 2)
	assert.Equal(t, "1", groups[1].SelectAttrValue("index", ""))
	assert.Equal(t, "bold yellow", groups[1].Text())
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, parse(t, sample), Format("ini"), Options{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
