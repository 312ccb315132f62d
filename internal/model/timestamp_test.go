package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializedTimestamp_RoundTrip(t *testing.T) {
	original := time.Date(2025, 6, 1, 18, 30, 42, 123456789, time.UTC)

	st := NewSerializedTimestamp(original)
	restored := st.Time()

	assert.Equal(t, original.Truncate(time.Second).Unix(), restored.Truncate(time.Second).Unix())
	assert.True(t, original.Equal(restored))
}

func TestSerializedTimestamp_JSONRoundTrip(t *testing.T) {
	original := time.Unix(1748802642, 500).UTC()

	raw, err := json.Marshal(NewSerializedTimestamp(original))
	require.NoError(t, err)

	var decoded SerializedTimestamp
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, original.Unix(), decoded.Time().Unix())
}
