package hl

import (
	"strconv"
	"strings"
)

// FieldColor binds a field position to a color. Negative positions are
// accepted but never match a field.
type FieldColor struct {
	Field int
	Color Color
}

// ParseFieldColor parses a FIELD:COLOR binding. Only the first colon
// separates the two halves.
func ParseFieldColor(input string) (FieldColor, error) {
	field, colorText, ok := strings.Cut(input, ":")
	if !ok {
		return FieldColor{}, ErrMissingColon
	}
	idx, err := strconv.Atoi(field)
	if err != nil {
		return FieldColor{}, &IntParseError{Input: field, Err: err}
	}
	c, err := ParseColor(colorText)
	if err != nil {
		return FieldColor{}, err
	}
	return FieldColor{Field: idx, Color: c}, nil
}

// DuplicateField describes a binding that can never apply because an
// earlier binding targets the same field.
type DuplicateField struct {
	Field  int
	Input  string
	Shadow string
}

// ParseFieldColors parses every binding in order. Bindings shadowed by an
// earlier one on the same field are kept and reported in dups.
func ParseFieldColors(inputs []string) (fields []FieldColor, dups []DuplicateField, err error) {
	seen := make(map[int]string, len(inputs))
	for _, input := range inputs {
		fc, err := ParseFieldColor(input)
		if err != nil {
			return nil, nil, err
		}
		if prev, ok := seen[fc.Field]; ok {
			dups = append(dups, DuplicateField{Field: fc.Field, Input: input, Shadow: prev})
		} else {
			seen[fc.Field] = input
		}
		fields = append(fields, fc)
	}
	return fields, dups, nil
}
