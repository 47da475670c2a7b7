package timecodec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUTC_NormalizesOffsets(t *testing.T) {
	inst, err := UTC.ParseUTC("2016-03-09T08:00:00-04:00")
	require.NoError(t, err)
	assert.Equal(t, "2016-03-09T12:00:00Z", inst.Format())
}

func TestParseUTC_ZonelessLayoutsReadAsUTC(t *testing.T) {
	inst, err := UTC.ParseUTC("2016-03-09T08:00:00")
	require.NoError(t, err)
	assert.Equal(t, "2016-03-09T08:00:00Z", inst.Format())

	inst, err = UTC.ParseUTC("2016-03-09")
	require.NoError(t, err)
	assert.Equal(t, "2016-03-09T00:00:00Z", inst.Format())
}

func TestParseUTC_RejectsGarbage(t *testing.T) {
	_, err := UTC.ParseUTC("not a timestamp")
	assert.Error(t, err)
}

func TestZeroCodec_RejectsEverything(t *testing.T) {
	_, err := Codec{}.ParseUTC("2016-03-09T08:00:00Z")
	assert.Error(t, err)
}

func TestNew_CustomLayouts(t *testing.T) {
	c := New("20060102")
	inst, err := c.ParseUTC("20160309")
	require.NoError(t, err)
	assert.Equal(t, "2016-03-09T00:00:00Z", inst.Format())

	_, err = c.ParseUTC("2016-03-09")
	assert.Error(t, err)
}

func TestTime_EqualComparesInstants(t *testing.T) {
	east := From(time.Date(2016, 3, 9, 8, 0, 0, 0, time.FixedZone("EDT", -4*3600)))
	utc := From(time.Date(2016, 3, 9, 12, 0, 0, 0, time.UTC))
	assert.True(t, east.Equal(utc))
	assert.Equal(t, east.Format(), utc.Format())
}

func TestTime_StdReturnsUnderlyingValue(t *testing.T) {
	now := time.Now()
	assert.True(t, From(now).Std().Equal(now))
}
