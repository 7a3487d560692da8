package utils

import "time"

// India time location (IST, +05:30)
var istLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Kolkata"); err == nil {
		return loc
	}
	return time.FixedZone("IST", 5*3600+1800)
}()

func NowIST() time.Time { return time.Now().In(istLoc) }

// FormatRFC3339IST renders a timestamp as the string form stored in the
// itineraries table. Zero time renders empty to let callers decide.
func FormatRFC3339IST(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(istLoc).Format(time.RFC3339)
}

// ParseRFC3339 parses a stored timestamp back. Returns zero time on empty
// or malformed input rather than failing the read.
func ParseRFC3339(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
