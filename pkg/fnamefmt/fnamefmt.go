// Package fnamefmt implements the output filename templates of the
// pipeline configuration.
//
// A template is literal text with named placeholders:
//
//	AVHRR-GAC_FDR_{processing_level}_{platform}_{start_time:%Y%m%dT%H%M%SZ}_...
//
// A placeholder is either "{name}" for a string or integer field, or
// "{name:LAYOUT}" for a timestamp field, where LAYOUT is built from
// strftime directives.  Literal braces are written "{{" and "}}".
package fnamefmt

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Fields maps placeholder names to their values.  Supported value types
// are string, int, and time.Time (which requires the placeholder to carry
// a time layout).
type Fields map[string]interface{}

// Template is a parsed filename template.
type Template struct {
	src   string
	parts []part
}

// part is either a literal (name == "") or a placeholder.
type part struct {
	literal string
	name    string
	layout  string // Go time layout; "" for non-time placeholders
}

// Parse parses a filename template.
func Parse(src string) (*Template, error) {
	tmpl := &Template{src: src}
	literal := new(strings.Builder)
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '{':
			if i+1 < len(src) && src[i+1] == '{' {
				literal.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(src[i:], '}')
			if end < 0 {
				return nil, fmt.Errorf("parse filename template %q: unclosed %q at index %d", src, "{", i)
			}
			end += i
			name := src[i+1 : end]
			layout := ""
			if colon := strings.IndexByte(name, ':'); colon >= 0 {
				var err error
				layout, err = timeLayout(name[colon+1:])
				if err != nil {
					return nil, fmt.Errorf("parse filename template %q: placeholder %q: %w", src, name, err)
				}
				name = name[:colon]
			}
			if name == "" {
				return nil, fmt.Errorf("parse filename template %q: empty placeholder name at index %d", src, i)
			}
			if literal.Len() > 0 {
				tmpl.parts = append(tmpl.parts, part{literal: literal.String()})
				literal.Reset()
			}
			tmpl.parts = append(tmpl.parts, part{name: name, layout: layout})
			i = end
		case '}':
			if i+1 < len(src) && src[i+1] == '}' {
				literal.WriteByte('}')
				i++
				continue
			}
			return nil, fmt.Errorf("parse filename template %q: unmatched %q at index %d", src, "}", i)
		default:
			literal.WriteByte(src[i])
		}
	}
	if literal.Len() > 0 {
		tmpl.parts = append(tmpl.parts, part{literal: literal.String()})
	}
	return tmpl, nil
}

// String returns the template source.
func (t *Template) String() string {
	return t.src
}

// Placeholders returns the distinct placeholder names, sorted.
func (t *Template) Placeholders() []string {
	seen := make(map[string]bool)
	var names []string
	for _, p := range t.parts {
		if p.name != "" && !seen[p.name] {
			seen[p.name] = true
			names = append(names, p.name)
		}
	}
	sort.Strings(names)
	return names
}

// Render renders the template with the given fields.  Time fields are
// rendered in UTC.
func (t *Template) Render(fields Fields) (string, error) {
	ret := new(strings.Builder)
	for _, p := range t.parts {
		if p.name == "" {
			ret.WriteString(p.literal)
			continue
		}
		value, ok := fields[p.name]
		if !ok {
			return "", fmt.Errorf("render filename template: no value for placeholder %q", p.name)
		}
		switch value := value.(type) {
		case string:
			if p.layout != "" {
				return "", fmt.Errorf("render filename template: placeholder %q has a time layout but a %T value",
					p.name, value)
			}
			ret.WriteString(value)
		case int:
			if p.layout != "" {
				return "", fmt.Errorf("render filename template: placeholder %q has a time layout but a %T value",
					p.name, value)
			}
			ret.WriteString(strconv.Itoa(value))
		case time.Time:
			if p.layout == "" {
				return "", fmt.Errorf("render filename template: placeholder %q needs a time layout for a %T value",
					p.name, value)
			}
			ret.WriteString(value.UTC().Format(p.layout))
		default:
			return "", fmt.Errorf("render filename template: placeholder %q has unsupported value type %T",
				p.name, value)
		}
	}
	return ret.String(), nil
}

// Glob returns a filepath.Match pattern matching any rendering of the
// template, for scanning an archive directory.
func (t *Template) Glob() string {
	ret := new(strings.Builder)
	for _, p := range t.parts {
		if p.name == "" {
			ret.WriteString(strings.NewReplacer("*", "\\*", "?", "\\?", "[", "\\[", "\\", "\\\\").
				Replace(p.literal))
		} else {
			ret.WriteString("*")
		}
	}
	return ret.String()
}

// strftime directives accepted in time layouts.
var strftimeDirectives = map[byte]string{
	'Y': "2006",
	'm': "01",
	'd': "02",
	'H': "15",
	'M': "04",
	'S': "05",
	'j': "002",
	'%': "%",
}

// timeLayout converts a strftime-style layout to a Go reference-time
// layout.
func timeLayout(strftime string) (string, error) {
	layout := new(strings.Builder)
	for i := 0; i < len(strftime); i++ {
		if strftime[i] != '%' {
			layout.WriteByte(strftime[i])
			continue
		}
		if i+1 >= len(strftime) {
			return "", fmt.Errorf("trailing %q in time layout %q", "%", strftime)
		}
		i++
		directive, ok := strftimeDirectives[strftime[i]]
		if !ok {
			return "", fmt.Errorf("unsupported directive %%%c in time layout %q", strftime[i], strftime)
		}
		layout.WriteString(directive)
	}
	return layout.String(), nil
}

// VersionInt formats a dotted product version for the version_int
// placeholder: dots are dropped and the result is left-padded with zeros
// to four digits ("1.0.0" becomes "0100").
func VersionInt(version string) (string, error) {
	digits := strings.ReplaceAll(version, ".", "")
	if digits == "" {
		return "", fmt.Errorf("invalid product version: %q", version)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("invalid product version: %q", version)
		}
	}
	for len(digits) < 4 {
		digits = "0" + digits
	}
	return digits, nil
}
