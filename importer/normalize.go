package importer

import (
	"strconv"
	"strings"
)

type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindEnum
)

// FieldSpec declares how one canonical field is pulled out of a raw row:
// its accepted header spellings in precedence order (programmatic camelCase
// first, then snake_case, then the Title Case display name), the coercion
// kind, the default used when every spelling is absent, and for KindEnum
// the allowed value set.
type FieldSpec struct {
	Field   string
	Keys    []string
	Kind    Kind
	Default string
	Allowed []string
}

// Values holds the normalized output of one row, keyed by canonical field.
type Values map[string]any

func (v Values) String(field string) string {
	s, _ := v[field].(string)
	return s
}

func (v Values) Int(field string) int {
	n, _ := v[field].(int)
	return n
}

func (v Values) Float(field string) float64 {
	f, _ := v[field].(float64)
	return f
}

func (v Values) Bool(field string) bool {
	b, _ := v[field].(bool)
	return b
}

// Normalize interprets a field table against one raw row. Coercion rules:
//   - strings: first non-empty match wins, else the default;
//   - ints/floats: base-10 parse of the match, non-numeric content
//     coerces to the field's default;
//   - bools: true iff the value equals "1" or case-insensitive "true";
//     a field whose default is true stays true only when every accepted
//     header is wholly absent from the row;
//   - enums: lowercased match must be in the allowed set, else the default.
func Normalize(specs []FieldSpec, row RawRow) Values {
	out := make(Values, len(specs))
	for _, spec := range specs {
		raw, present, filled := probe(row, spec.Keys)
		switch spec.Kind {
		case KindString:
			if filled {
				out[spec.Field] = raw
			} else {
				out[spec.Field] = spec.Default
			}
		case KindInt:
			out[spec.Field] = parseInt(raw, filled, spec.Default)
		case KindFloat:
			out[spec.Field] = parseFloat(raw, filled, spec.Default)
		case KindBool:
			if !present {
				out[spec.Field] = spec.Default == "true"
			} else {
				out[spec.Field] = truthy(raw)
			}
		case KindEnum:
			value := strings.ToLower(raw)
			if filled && allowed(value, spec.Allowed) {
				out[spec.Field] = value
			} else {
				out[spec.Field] = spec.Default
			}
		}
	}
	return out
}

// probe walks the accepted spellings in order. present reports whether any
// spelling exists as a header at all; filled reports whether the winning
// match carried a non-empty value.
func probe(row RawRow, keys []string) (value string, present bool, filled bool) {
	for _, key := range keys {
		v, ok := row[key]
		if !ok {
			continue
		}
		present = true
		if v != "" {
			return v, true, true
		}
	}
	return "", present, false
}

func truthy(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func allowed(value string, set []string) bool {
	for _, s := range set {
		if value == s {
			return true
		}
	}
	return false
}

func parseInt(raw string, filled bool, fallback string) int {
	if filled {
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
	}
	n, _ := strconv.Atoi(fallback)
	return n
}

func parseFloat(raw string, filled bool, fallback string) float64 {
	if filled {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	}
	f, _ := strconv.ParseFloat(fallback, 64)
	return f
}
