package converters

import (
	"time"

	"github.com/Station-Manager/errors"
)

// CompactDateToISO converts a "20060102" entity date to the "2006-01-02"
// document form.
func CompactDateToISO(src any) (any, error) {
	const op errors.Op = "converters.CompactDateToISO"
	if src == nil {
		return nil, nil
	}
	srcVal, err := CheckString(src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	t, err := time.Parse("20060102", srcVal)
	if err != nil {
		return nil, errors.New(op).Err(err).Msg(ErrMsgBadDateFormat)
	}
	return t.Format("2006-01-02"), nil
}

// ISODateToCompact converts a "2006-01-02" document date to the "20060102"
// entity form.
func ISODateToCompact(src any) (any, error) {
	const op errors.Op = "converters.ISODateToCompact"
	if src == nil {
		return nil, nil
	}
	srcVal, err := CheckString(src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	t, err := time.Parse("2006-01-02", srcVal)
	if err != nil {
		return nil, errors.New(op).Err(err).Msg(ErrMsgBadDateFormat)
	}
	return t.Format("20060102"), nil
}
