package scanner

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/awantoch/iconflow/model"
)

var (
	tagNamePattern = regexp.MustCompile(`^<\s*[^\s/>]+`)
	attrPattern    = regexp.MustCompile(`([^\s=/>]+)\s*=\s*(?:"([^"]*)"|'([^']*)')`)
	entityPattern  = regexp.MustCompile(`<!ENTITY\s+([^\s%;]+)\s+(?:"([^"]*)"|'([^']*)')\s*>`)

	byteOrderMark = []byte("\xef\xbb\xbf")
)

// ParseSVG checks that raw is a well-formed XML document whose root element is
// svg and returns the root attributes and inner markup exactly as written.
// Prolog, doctype and comments outside the root are not part of the result.
// General entities declared in the doctype are expanded in the result.
func ParseSVG(raw []byte) (model.SVGInfo, error) {
	var info model.SVGInfo
	raw = bytes.TrimPrefix(raw, byteOrderMark)
	dec := xml.NewDecoder(bytes.NewReader(raw))
	dec.Strict = true

	var (
		depth      int
		rootSeen   bool
		rootClosed bool
		innerStart int64
	)
	for {
		before := dec.InputOffset()
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return info, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				if rootClosed {
					return info, errors.New("multiple root elements")
				}
				if t.Name.Local != "svg" {
					return info, fmt.Errorf("root element is <%s>, want <svg>", t.Name.Local)
				}
				rootSeen = true
				after := dec.InputOffset()
				startTag := string(raw[before:after])
				info.Attrs = parseAttrs(startTag)
				info.SelfClosing = strings.HasSuffix(strings.TrimSpace(startTag), "/>")
				innerStart = after
			}
			depth++
		case xml.EndElement:
			depth--
			if depth == 0 {
				rootClosed = true
				if !info.SelfClosing {
					info.Inner = string(raw[innerStart:before])
				}
			}
		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(t)) > 0 {
				return info, errors.New("text outside the root element")
			}
		case xml.Directive:
			if !rootSeen {
				dec.Entity = declaredEntities(t)
			}
		}
	}
	if !rootSeen {
		return info, errors.New("no root element")
	}
	if len(dec.Entity) > 0 {
		expandEntities(&info, dec.Entity)
	}
	return info, nil
}

// declaredEntities returns the general entities of a doctype's internal subset.
func declaredEntities(directive xml.Directive) map[string]string {
	matches := entityPattern.FindAllSubmatch(directive, -1)
	if len(matches) == 0 {
		return nil
	}
	entities := make(map[string]string, len(matches))
	for _, m := range matches {
		value := m[2]
		if m[2] == nil {
			value = m[3]
		}
		entities[string(m[1])] = string(value)
	}
	return entities
}

func expandEntities(info *model.SVGInfo, entities map[string]string) {
	pairs := make([]string, 0, 2*len(entities))
	for name, value := range entities {
		pairs = append(pairs, "&"+name+";", value)
	}
	r := strings.NewReplacer(pairs...)
	for i := range info.Attrs {
		info.Attrs[i].Value = r.Replace(info.Attrs[i].Value)
	}
	info.Inner = r.Replace(info.Inner)
}

// parseAttrs extracts attributes from a start tag in source order, keeping
// their values as written.
func parseAttrs(startTag string) []model.Attr {
	body := tagNamePattern.ReplaceAllString(startTag, "")
	matches := attrPattern.FindAllStringSubmatch(body, -1)
	attrs := make([]model.Attr, 0, len(matches))
	for _, m := range matches {
		value := m[2]
		if value == "" && m[3] != "" {
			value = m[3]
		}
		attrs = append(attrs, model.Attr{Name: m[1], Value: value})
	}
	return attrs
}
