package render

import (
	"fmt"
	"time"
)

const localTimeLayout = "Jan 2, 2006 3:04:05 PM"

// formatDuration renders a total-seconds value as "<minutes>m <seconds>s".
func formatDuration(totalSeconds int) string {
	return fmt.Sprintf("%dm %ds", totalSeconds/60, totalSeconds%60)
}

// formatLocalTime converts an API timestamp to the invoking process's local
// time. Unparseable values pass through unchanged.
func formatLocalTime(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return s
	}
	return t.Local().Format(localTimeLayout)
}

// formatSeriesTime converts an epoch-seconds value from a time series into
// an ISO-8601 timestamp.
func formatSeriesTime(epochSeconds float64) string {
	return time.Unix(int64(epochSeconds), 0).UTC().Format(time.RFC3339)
}
