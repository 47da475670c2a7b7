// Package converters provides ready-made conversion functions for descriptor
// ToJSON/FromJSON overrides. All converters treat nil as absent and return
// nil unchanged, so sparse inputs convert without special-casing.
package converters

import (
	"strings"

	"github.com/Station-Manager/errors"
)

// TrimString trims surrounding whitespace from string field values.
func TrimString(src any) (any, error) {
	const op errors.Op = "converters.TrimString"
	if src == nil {
		return nil, nil
	}
	srcVal, err := CheckString(src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	return strings.TrimSpace(srcVal), nil
}

// UpperString uppercases string field values.
func UpperString(src any) (any, error) {
	const op errors.Op = "converters.UpperString"
	if src == nil {
		return nil, nil
	}
	srcVal, err := CheckString(src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	return strings.ToUpper(srcVal), nil
}

// LowerString lowercases string field values.
func LowerString(src any) (any, error) {
	const op errors.Op = "converters.LowerString"
	if src == nil {
		return nil, nil
	}
	srcVal, err := CheckString(src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	return strings.ToLower(srcVal), nil
}
