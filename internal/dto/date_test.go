package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateAcceptsDateOnlyAndTimestamps(t *testing.T) {
	var payload struct {
		A *Date `json:"a"`
		B *Date `json:"b"`
		C *Date `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"2024-01-10","b":"2024-01-10T23:30:00Z","c":null}`), &payload))
	want := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	require.Equal(t, want, payload.A.Time)
	require.Equal(t, want, payload.B.Time)
	require.Nil(t, payload.C.TimePtr())
	require.True(t, payload.C.OrZero().IsZero())
}

func TestDateRejectsGarbage(t *testing.T) {
	var d Date
	require.Error(t, json.Unmarshal([]byte(`"10/01/2024"`), &d))
}

func TestDateMarshalsAsDateOnly(t *testing.T) {
	out, err := json.Marshal(NewDate(time.Date(2024, 2, 5, 15, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	require.Equal(t, `"2024-02-05"`, string(out))
}
