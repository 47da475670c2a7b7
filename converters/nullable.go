package converters

import (
	"time"

	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
	"github.com/goccy/go-json"
)

// Converters for entities built from DB models: nullable wrapper values
// unwrap to plain document values and back. Invalid wrappers become nil so
// sparse rows convert without special-casing.

// FromNullString unwraps a null.String into a plain string. Plain strings
// pass through.
func FromNullString(src any) (any, error) {
	const op errors.Op = "converters.FromNullString"
	switch v := src.(type) {
	case nil:
		return nil, nil
	case null.String:
		if !v.Valid {
			return nil, nil
		}
		return v.String, nil
	case string:
		return v, nil
	}
	return nil, errors.New(op).Errorf("Given parameter not a null.String, got %T", src)
}

// ToNullString wraps a plain string into a null.String; nil becomes the
// invalid wrapper.
func ToNullString(src any) (any, error) {
	const op errors.Op = "converters.ToNullString"
	switch v := src.(type) {
	case nil:
		return null.String{}, nil
	case string:
		return null.StringFrom(v), nil
	case null.String:
		return v, nil
	}
	return nil, errors.New(op).Errorf("Given parameter not a string, got %T", src)
}

// FromNullTime unwraps a null.Time into a plain time.Time.
func FromNullTime(src any) (any, error) {
	const op errors.Op = "converters.FromNullTime"
	switch v := src.(type) {
	case nil:
		return nil, nil
	case null.Time:
		if !v.Valid {
			return nil, nil
		}
		return v.Time, nil
	case time.Time:
		return v, nil
	}
	return nil, errors.New(op).Errorf("Given parameter not a null.Time, got %T", src)
}

// FromNullFloat64 unwraps a null.Float64 into a plain float64.
func FromNullFloat64(src any) (any, error) {
	const op errors.Op = "converters.FromNullFloat64"
	switch v := src.(type) {
	case nil:
		return nil, nil
	case null.Float64:
		if !v.Valid {
			return nil, nil
		}
		return v.Float64, nil
	case float64:
		return v, nil
	}
	return nil, errors.New(op).Errorf("Given parameter not a null.Float64, got %T", src)
}

// JSONToDocument unmarshals a null.JSON or types.JSON column value into a
// plain map document value. Empty or invalid JSON wrappers become nil.
func JSONToDocument(src any) (any, error) {
	const op errors.Op = "converters.JSONToDocument"
	var raw []byte
	switch v := src.(type) {
	case nil:
		return nil, nil
	case null.JSON:
		if !v.Valid {
			return nil, nil
		}
		raw = v.JSON
	case boilertypes.JSON:
		if len(v) == 0 {
			return nil, nil
		}
		raw = v
	default:
		return nil, errors.New(op).Errorf("Given parameter not a JSON column value, got %T", src)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.New(op).Err(err)
	}
	return out, nil
}

// DocumentToJSON marshals a plain map document value into a null.JSON
// column value. Nil becomes the invalid wrapper.
func DocumentToJSON(src any) (any, error) {
	const op errors.Op = "converters.DocumentToJSON"
	if src == nil {
		return null.JSON{}, nil
	}
	raw, err := json.Marshal(src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	return null.JSONFrom(raw), nil
}
