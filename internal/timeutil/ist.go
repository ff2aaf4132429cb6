package timeutil

import (
	"time"
)

// IST is the Indian Standard Time location (UTC+5:30)
var IST *time.Location

func init() {
	var err error
	IST, err = time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// Fallback: create fixed zone if Asia/Kolkata not available
		IST = time.FixedZone("IST", 5*60*60+30*60) // UTC+5:30
	}
}

// Now returns the current time in IST
func Now() time.Time {
	return time.Now().In(IST)
}

// Today returns the current IST calendar date as YYYY-MM-DD. Collection-day
// comparisons (daily incentive reset) use this, not timestamps.
func Today() string {
	return Now().Format(DateLayout)
}

// DateOf returns the IST calendar date of t as YYYY-MM-DD.
func DateOf(t time.Time) string {
	return t.In(IST).Format(DateLayout)
}

// Common layouts for IST formatting
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
	DisplayLayout  = "02 Jan 2006, 03:04 PM"
)
