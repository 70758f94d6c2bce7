package dbx

import (
	"fmt"
	"time"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// Timestamp scans a time column into Time whether the driver returns it as
// time.Time or as SQLite text.
type Timestamp struct {
	Time *time.Time
}

func (ts Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*ts.Time = time.Time{}
		return nil
	case time.Time:
		*ts.Time = v
		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	}
	return fmt.Errorf("unsupported timestamp type %T", src)
}

func (ts Timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*ts.Time = t
			return nil
		}
	}
	return fmt.Errorf("cannot parse timestamp %q", s)
}
