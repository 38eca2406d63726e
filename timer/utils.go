package timer

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatTime converts a number of seconds into a mm:ss string format.
func FormatTime(sec int64) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}

// MaxDurationSeconds is 99:59, the longest time FormatTime shows in two
// minute digits.
const MaxDurationSeconds = 99*60 + 59

// ParseDuration accepts "mm:ss" or a plain number of seconds, up to 99:59.
func ParseDuration(input string) (time.Duration, error) {
	input = strings.TrimSpace(input)
	var val int
	var err error
	if strings.Contains(input, ":") {
		parts := strings.Split(input, ":")
		if len(parts) != 2 {
			return 0, fmt.Errorf("invalid time format %q", input)
		}
		var min, sec int
		if min, err = strconv.Atoi(parts[0]); err != nil {
			return 0, fmt.Errorf("invalid minutes in %q: %w", input, err)
		}
		if sec, err = strconv.Atoi(parts[1]); err != nil {
			return 0, fmt.Errorf("invalid seconds in %q: %w", input, err)
		}
		if min < 0 || sec < 0 || sec >= 60 {
			return 0, fmt.Errorf("invalid seconds in %q (must be 0-59)", input)
		}
		if min > MaxDurationSeconds/60 {
			return 0, fmt.Errorf("duration %q exceeds 99:59", input)
		}
		val = min*60 + sec
	} else {
		if val, err = strconv.Atoi(input); err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", input, err)
		}
	}

	if val <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %q", input)
	}
	if val > MaxDurationSeconds {
		return 0, fmt.Errorf("duration %q exceeds 99:59", input)
	}
	return time.Duration(val) * time.Second, nil
}
