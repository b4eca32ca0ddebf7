package models

import (
	"encoding/json"
	"time"
)

// localDateTime is an ISO-8601 date-time without a UTC offset.
const localDateTime = "2006-01-02T15:04:05.999999999"

// Timestamp is a date-time as accepted in request bodies. It takes RFC 3339
// values, and ISO-8601 date-times without an offset, which are read as UTC.
type Timestamp time.Time

// Time returns ts as a time.Time.
func (ts Timestamp) Time() time.Time {
	return time.Time(ts)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return time.Time(ts).MarshalJSON()
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		var localErr error
		if t, localErr = time.ParseInLocation(localDateTime, raw, time.UTC); localErr != nil {
			return err
		}
	}
	*ts = Timestamp(t)
	return nil
}
