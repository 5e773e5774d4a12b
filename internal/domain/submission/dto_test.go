package submission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmit(date string) SubmitRequest {
	return SubmitRequest{
		WorkText:   "morning work",
		ClientName: "Acme",
		WorkType:   "Poster",
		Date:       date,
	}
}

func TestValidate_AcceptsTodayEastOfUTC(t *testing.T) {
	// Kiritimati is a full day ahead of UTC for part of every day.
	zone := time.FixedZone("UTC+14", 14*60*60)
	SetReportLocation(zone)
	defer SetReportLocation(time.Local)

	req := validSubmit(time.Now().In(zone).Format("2006-01-02"))
	require.NoError(t, req.Validate())
}

func TestValidate_RejectsFutureDateInReportZone(t *testing.T) {
	zone := time.FixedZone("UTC-11", -11*60*60)
	SetReportLocation(zone)
	defer SetReportLocation(time.Local)

	req := validSubmit(time.Now().In(zone).AddDate(0, 0, 2).Format("2006-01-02"))
	err := req.Validate()
	require.Error(t, err)
}

func TestToday_FollowsReportLocation(t *testing.T) {
	zone := time.FixedZone("UTC+14", 14*60*60)
	SetReportLocation(zone)
	defer SetReportLocation(time.Local)

	assert.Equal(t, time.Now().In(zone).Format("2006-01-02"), DateKey(Today()))
}
