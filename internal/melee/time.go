package melee

import (
	"fmt"
	"strings"
	"time"
)

// FramesPerSecond is the fixed simulation rate of a Melee replay.
const FramesPerSecond = 60

// DefaultTimestampLayout renders dates like "Jun 22, 2018 7:52 AM".
const DefaultTimestampLayout = "Jan 2, 2006 3:04 PM"

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Clock formats replay durations and timestamps.
type Clock struct {
	Location *time.Location
	Layout   string
}

// NewClock creates a Clock rendering in loc (local time when nil).
func NewClock(loc *time.Location, layout string) *Clock {
	if loc == nil {
		loc = time.Local
	}
	if layout == "" {
		layout = DefaultTimestampLayout
	}
	return &Clock{Location: loc, Layout: layout}
}

// FormatDuration converts a frame count into "m:ss".
func (c *Clock) FormatDuration(frames int) string {
	return FrameCountToDuration(frames)
}

// FormatTimestamp renders a raw timestamp; missing or unparsable input yields "".
func (c *Clock) FormatTimestamp(raw string) string {
	t, err := ParseTimestamp(raw)
	if err != nil {
		return ""
	}
	return t.In(c.Location).Format(c.Layout)
}

// FrameCountToDuration converts a frame count into "m:ss". Negative counts are
// treated as zero.
func FrameCountToDuration(frames int) string {
	if frames < 0 {
		frames = 0
	}
	totalSeconds := frames / FramesPerSecond
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}

// ParseTimestamp parses the timestamp forms found in replay metadata.
func ParseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}
