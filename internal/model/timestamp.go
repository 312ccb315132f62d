package model

import "time"

// SerializedTimestamp is the transmittable form of a comment timestamp:
// a plain seconds/nanoseconds pair that survives JSON round-trips.
type SerializedTimestamp struct {
	Seconds     int64 `json:"seconds"`
	Nanoseconds int32 `json:"nanoseconds"`
}

func NewSerializedTimestamp(t time.Time) SerializedTimestamp {
	return SerializedTimestamp{
		Seconds:     t.Unix(),
		Nanoseconds: int32(t.Nanosecond()),
	}
}

func (st SerializedTimestamp) Time() time.Time {
	return time.Unix(st.Seconds, int64(st.Nanoseconds))
}
