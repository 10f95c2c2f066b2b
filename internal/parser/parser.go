// Package parser decodes an outputs document with an explicit walk over
// JSON value kinds, keeping object member order as written in the source.
package parser

import (
	"github.com/valyala/fastjson"

	"cdk2env/internal/errors"
	"cdk2env/internal/interfaces"
	"cdk2env/internal/models"
)

// Parser implements the DocumentParser interface
type Parser struct {
	pool fastjson.ParserPool
}

// NewParser creates a new outputs document parser
func NewParser() interfaces.DocumentParser {
	return &Parser{}
}

// Parse decodes data and collects every string entry of every object group.
//
// The root must be an object. Group values that are not objects and entry
// values that are not strings are recorded in doc.Skipped and left out.
func (p *Parser) Parse(data []byte) (*models.OutputDocument, error) {
	// ParseBytes tolerates some malformed input, so validate strictly first
	if err := fastjson.ValidateBytes(data); err != nil {
		return nil, errors.InvalidJSON(err).
			WithSuggestion("Check that the file is complete output of 'cdk deploy --outputs-file'")
	}

	jp := p.pool.Get()
	defer p.pool.Put(jp)

	root, err := jp.ParseBytes(data)
	if err != nil {
		return nil, errors.InvalidJSON(err)
	}

	if root.Type() != fastjson.TypeObject {
		return nil, errors.InvalidRootShape(Kind(root)).
			WithSuggestion("The document must map stack names to objects of outputs")
	}

	// root and its children belong to jp; everything kept is copied into strings
	groups, _ := root.Object()
	doc := &models.OutputDocument{}

	for _, group := range members(groups) {
		if group.value.Type() != fastjson.TypeObject {
			doc.SkipGroup(group.key, Kind(group.value))
			continue
		}

		entries, _ := group.value.Object()
		g := models.Group{Name: group.key}

		for _, entry := range members(entries) {
			if entry.value.Type() != fastjson.TypeString {
				doc.SkipEntry(group.key, entry.key, Kind(entry.value))
				continue
			}

			value, err := entry.value.StringBytes()
			if err != nil {
				return nil, errors.InvalidJSON(err)
			}
			g.Entries = append(g.Entries, models.Entry{Key: entry.key, Value: string(value)})
		}

		doc.Groups = append(doc.Groups, g)
	}

	return doc, nil
}

type member struct {
	key   string
	value *fastjson.Value
}

// members lists object members in source order. A repeated key takes the
// last value but keeps the position of its first occurrence.
func members(o *fastjson.Object) []member {
	var out []member
	index := make(map[string]int, o.Len())

	o.Visit(func(key []byte, v *fastjson.Value) {
		k := string(key)
		if i, ok := index[k]; ok {
			out[i].value = v
			return
		}
		index[k] = len(out)
		out = append(out, member{key: k, value: v})
	})

	return out
}

// Kind names the JSON type of v
func Kind(v *fastjson.Value) string {
	switch v.Type() {
	case fastjson.TypeObject:
		return "object"
	case fastjson.TypeArray:
		return "array"
	case fastjson.TypeString:
		return "string"
	case fastjson.TypeNumber:
		return "number"
	case fastjson.TypeTrue, fastjson.TypeFalse:
		return "boolean"
	default:
		return "null"
	}
}
