package utils

import "time"

const ISODateLayout = "2006-01-02"

// FormatISODate renders a time as the upstream's yyyy-mm-dd date form.
func FormatISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}
