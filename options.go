package hl

import (
	"errors"
)

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() *Options {
	return &Options{
		Delimiter:  " ",
		RedSize:    DefaultRedSize,
		YellowSize: DefaultYellowSize,
	}
}

// Options configure how lines are highlighted. They are built once and
// not modified while scanning.
type Options struct {
	Fields     []FieldColor
	Delimiter  string
	Skip       *string
	RedSize    uint64
	YellowSize uint64
}

func (o *Options) Validate() error {
	if o.Delimiter == "" {
		return errors.New("delimiter can't be empty")
	}
	return nil
}

// fieldColor returns the first binding for field i.
func (o *Options) fieldColor(i int) (FieldColor, bool) {
	for _, fc := range o.Fields {
		if fc.Field >= 0 && fc.Field == i {
			return fc, true
		}
	}
	return FieldColor{}, false
}
