// Package export writes a parsed RuleSet in several formats. The conf
// format is the rule file grammar itself and parses back to the same rules.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/TylerBrock/colorjson"
	"github.com/arthur-debert/cgrc/pkg/colors"
	"github.com/arthur-debert/cgrc/pkg/errors"
	"github.com/arthur-debert/cgrc/pkg/rules"
	"github.com/beevik/etree"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is an output format
type Format string

const (
	FormatConf Format = "conf"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatXML  Format = "xml"
)

// Formats lists every supported format
var Formats = []Format{FormatConf, FormatYAML, FormatJSON, FormatTOML, FormatXML}

// ParseFormat parses a format name, ignoring case
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	names := make([]string, len(Formats))
	for i, known := range Formats {
		names[i] = string(known)
	}
	return "", errors.Newf(errors.ErrInvalidInput,
		"unknown format %q (want one of %s)", s, strings.Join(names, ", "))
}

// Options tunes the output
type Options struct {
	// Color highlights JSON output
	Color bool
}

// Document is the structured form of a RuleSet
type Document struct {
	Source      string    `json:"source" yaml:"source" toml:"source"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Rules       []RuleDoc `json:"rules" yaml:"rules" toml:"rules"`
}

// RuleDoc is one rule of a Document. Colours hold one spec per capture
// group in rule file syntax.
type RuleDoc struct {
	Regexp  string   `json:"regexp" yaml:"regexp" toml:"regexp"`
	Colours []string `json:"colours" yaml:"colours" toml:"colours"`
	Skip    bool     `json:"skip" yaml:"skip" toml:"skip"`
	Count   string   `json:"count" yaml:"count" toml:"count"`
}

// NewDocument converts rs
func NewDocument(rs *rules.RuleSet) Document {
	doc := Document{Source: rs.Source(), Rules: make([]RuleDoc, 0, rs.Len())}
	if desc, ok := rs.Description(); ok {
		doc.Description = desc
	}
	for _, r := range rs.Rules() {
		rd := RuleDoc{
			Regexp:  r.Pattern(),
			Colours: make([]string, 0, r.NumColors()),
			Skip:    r.Skip(),
			Count:   r.Count().String(),
		}
		for _, spec := range r.Colors() {
			rd.Colours = append(rd.Colours, spec.String())
		}
		doc.Rules = append(doc.Rules, rd)
	}
	return doc
}

// Write renders rs to w in format
func Write(w io.Writer, rs *rules.RuleSet, format Format, opts Options) error {
	var (
		out []byte
		err error
	)

	switch format {
	case FormatConf:
		out = []byte(Conf(rs))
	case FormatYAML:
		out, err = marshalYAML(NewDocument(rs))
	case FormatJSON:
		out, err = marshalJSON(NewDocument(rs), opts.Color)
	case FormatTOML:
		out, err = toml.Marshal(NewDocument(rs))
	case FormatXML:
		out, err = marshalXML(NewDocument(rs))
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown format %q", format)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrExport, "failed to render %s", format)
	}

	if _, err := w.Write(out); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write export")
	}
	return nil
}

// Conf renders rs in rule file syntax
func Conf(rs *rules.RuleSet) string {
	var b strings.Builder
	if desc, ok := rs.Description(); ok {
		fmt.Fprintf(&b, "desc=%s\n", desc)
	}
	for _, r := range rs.Rules() {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "regexp=%s\n", r.Pattern())
		if r.NumColors() > 0 {
			fmt.Fprintf(&b, "colours=%s\n", colors.FormatSpecList(r.Colors()))
		}
		if r.Skip() {
			b.WriteString("skip=yes\n")
		}
		if r.Count() != rules.CountMore {
			fmt.Fprintf(&b, "count=%s\n", r.Count())
		}
	}
	return b.String()
}

func marshalYAML(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshalJSON(doc Document, color bool) ([]byte, error) {
	plain, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	if !color {
		return append(plain, '\n'), nil
	}

	// colorjson works on generic values
	var generic map[string]interface{}
	if err := json.Unmarshal(plain, &generic); err != nil {
		return nil, err
	}
	f := colorjson.NewFormatter()
	f.Indent = 2
	out, err := f.Marshal(generic)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

func marshalXML(doc Document) ([]byte, error) {
	x := etree.NewDocument()
	x.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := x.CreateElement("ruleset")
	root.CreateAttr("source", doc.Source)
	if doc.Description != "" {
		root.CreateElement("description").SetText(doc.Description)
	}

	for _, r := range doc.Rules {
		el := root.CreateElement("rule")
		el.CreateAttr("count", r.Count)
		if r.Skip {
			el.CreateAttr("skip", "yes")
		}
		el.CreateElement("regexp").SetText(r.Regexp)
		cols := el.CreateElement("colours")
		for i, c := range r.Colours {
			g := cols.CreateElement("group")
			g.CreateAttr("index", fmt.Sprint(i))
			g.SetText(c)
		}
	}

	x.Indent(2)
	var buf bytes.Buffer
	if _, err := x.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
