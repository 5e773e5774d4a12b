package submission

import "time"

// reportLocation is the timezone in which "today" is resolved for
// submission dates. Defaults to the server's local zone.
var reportLocation = time.Local

// SetReportLocation overrides the report timezone. Call once at startup,
// before requests are served.
func SetReportLocation(loc *time.Location) {
	if loc != nil {
		reportLocation = loc
	}
}

// Today returns midnight of the current date in the report timezone.
func Today() time.Time {
	now := time.Now().In(reportLocation)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
