package converters

const (
	ErrMsgParamEmpty    = "Parameter cannot be empty."
	ErrMsgBadDateFormat = "Bad date format, expected YYYYMMDD or YYYY-MM-DD"
)
