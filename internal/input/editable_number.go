// Package input holds display and validation options for editable numeric
// inputs.
package input

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrBelowMin = errors.New("value below minimum")
	ErrAboveMax = errors.New("value above maximum")
	ErrZero     = errors.New("value must be non-zero")
)

// EditableNumberSettings configures one editable number. Min and Max are nil
// when unbounded. UpdateFunction and AfterUpdate are optional.
type EditableNumberSettings struct {
	Name               string
	KeepCapitalization bool
	Value              float64
	Min                *float64
	Max                *float64
	NonZero            bool
	Suffix             string
	UpdateFunction     func(ctx context.Context, value float64) error
	AfterUpdate        func(ctx context.Context) error
}

// Bound is a helper for the optional Min/Max fields.
func Bound(v float64) *float64 {
	return &v
}

// Label is Name with its first letter upper-cased unless KeepCapitalization
// is set.
func (s EditableNumberSettings) Label() string {
	if s.KeepCapitalization || s.Name == "" {
		return s.Name
	}
	r, size := utf8.DecodeRuneInString(s.Name)
	return string(unicode.ToUpper(r)) + s.Name[size:]
}

func (s EditableNumberSettings) Validate(v float64) error {
	if s.NonZero && v == 0 {
		return fmt.Errorf("%s: %w", s.Label(), ErrZero)
	}
	if s.Min != nil && v < *s.Min {
		return fmt.Errorf("%s: %w (%s)", s.Label(), ErrBelowMin, s.Display(*s.Min))
	}
	if s.Max != nil && v > *s.Max {
		return fmt.Errorf("%s: %w (%s)", s.Label(), ErrAboveMax, s.Display(*s.Max))
	}
	return nil
}

// Display formats v with the configured suffix.
func (s EditableNumberSettings) Display(v float64) string {
	formatted := strconv.FormatFloat(v, 'f', -1, 64)
	if s.Suffix == "" {
		return formatted
	}
	if strings.HasPrefix(s.Suffix, "%") || strings.HasPrefix(s.Suffix, "°") {
		return formatted + s.Suffix
	}
	return formatted + " " + s.Suffix
}
