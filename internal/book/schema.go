package book

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"booksapi/internal/errs"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	typeString  = "string"
	typeInteger = "integer"
	typeObject  = "object"
)

// scalar is a validated property value.
type scalar struct {
	str string
	num int
}

type property struct {
	name string
	typ  string
	set  func(b *Book, v scalar)
}

// Schema is an ordered list of required, typed properties. Properties not
// listed are accepted and ignored.
type Schema struct {
	properties []property
}

var bookProperties = []property{
	{"isbn", typeString, func(b *Book, v scalar) { b.ISBN = v.str }},
	{"amazon_url", typeString, func(b *Book, v scalar) { b.AmazonURL = v.str }},
	{"author", typeString, func(b *Book, v scalar) { b.Author = v.str }},
	{"language", typeString, func(b *Book, v scalar) { b.Language = v.str }},
	{"pages", typeInteger, func(b *Book, v scalar) { b.Pages = v.num }},
	{"publisher", typeString, func(b *Book, v scalar) { b.Publisher = v.str }},
	{"title", typeString, func(b *Book, v scalar) { b.Title = v.str }},
	{"year", typeInteger, func(b *Book, v scalar) { b.Year = v.num }},
}

var (
	// CreateSchema requires every Book field.
	CreateSchema = Schema{properties: bookProperties}
	// UpdateSchema requires every field except isbn, which comes from the path.
	UpdateSchema = CreateSchema.without("isbn")
)

func (s Schema) without(name string) Schema {
	props := make([]property, 0, len(s.properties))
	for _, p := range s.properties {
		if p.name != name {
			props = append(props, p)
		}
	}
	return Schema{properties: props}
}

// Decode validates a JSON body against s and returns the book it describes.
//
// An empty body is treated as {}. Malformed JSON yields a bad-request
// error; schema failures yield a validation error listing every violation,
// missing properties first and then type mismatches, each in property order.
func (s Schema) Decode(body []byte) (Book, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}
	if !json.Valid(body) {
		return Book{}, errs.NewBadRequestError("malformed JSON body", nil)
	}
	if jsonType(body) != typeObject {
		return Book{}, errs.NewValidationError([]string{typeViolation("", typeObject)})
	}

	var fields map[string]jsoniter.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return Book{}, errs.NewBadRequestError("malformed JSON body", err)
	}

	var b Book
	if violations := s.validate(fields, &b); len(violations) > 0 {
		return Book{}, errs.NewValidationError(violations)
	}
	return b, nil
}

func (s Schema) validate(fields map[string]jsoniter.RawMessage, b *Book) []string {
	var missing, mistyped []string
	for _, p := range s.properties {
		raw, ok := fields[p.name]
		if !ok {
			missing = append(missing, fmt.Sprintf("instance requires property %q", p.name))
			continue
		}
		v, ok := parseScalar(raw, p.typ)
		if !ok {
			mistyped = append(mistyped, typeViolation(p.name, p.typ))
			continue
		}
		p.set(b, v)
	}
	return append(missing, mistyped...)
}

func typeViolation(field, typ string) string {
	if field == "" {
		return fmt.Sprintf("instance is not of a type(s) %s", typ)
	}
	return fmt.Sprintf("instance.%s is not of a type(s) %s", field, typ)
}

func parseScalar(raw []byte, typ string) (scalar, bool) {
	switch typ {
	case typeString:
		if jsonType(raw) != typeString {
			return scalar{}, false
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return scalar{}, false
		}
		return scalar{str: s}, true
	case typeInteger:
		if jsonType(raw) != "number" {
			return scalar{}, false
		}
		f, err := strconv.ParseFloat(string(bytes.TrimSpace(raw)), 64)
		if err != nil || math.IsInf(f, 0) || f != math.Trunc(f) {
			return scalar{}, false
		}
		return scalar{num: int(f)}, true
	}
	return scalar{}, false
}

// jsonType names the JSON type of a valid encoded value from its first byte.
func jsonType(raw []byte) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch c := raw[0]; {
	case c == '"':
		return typeString
	case c == '{':
		return typeObject
	case c == '[':
		return "array"
	case c == 't' || c == 'f':
		return "boolean"
	case c == 'n':
		return "null"
	default:
		return "number"
	}
}
