package media

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatDuration normalises a video duration to a "minutes:seconds"
// display string with zero-padded seconds. The input is either an
// ISO-8601 duration token as returned by the Data API (e.g. "PT3M33S")
// or a raw integer seconds count. Hours fold into the minutes
// component; a token with no minutes component is rendered as zero
// minutes. Unparseable input yields nil.
func FormatDuration(raw string) *string {
	if raw == "" {
		return nil
	}

	if totalSeconds, err := strconv.Atoi(raw); err == nil {
		if totalSeconds < 0 {
			return nil
		}

		return minutesSeconds(totalSeconds/60, totalSeconds%60)
	}

	token, found := strings.CutPrefix(raw, "PT")
	if !found {
		return nil
	}

	minutes, seconds := 0, 0
	if hourIdx := strings.Index(token, "H"); hourIdx != -1 {
		hours, ok := parseComponent(token[:hourIdx])
		if !ok {
			return nil
		}

		minutes = hours * 60
		token = token[hourIdx+1:]
	}

	if minuteIdx := strings.Index(token, "M"); minuteIdx != -1 {
		m, ok := parseComponent(token[:minuteIdx])
		if !ok {
			return nil
		}

		minutes += m
		token = token[minuteIdx+1:]
	}

	if secondIdx := strings.Index(token, "S"); secondIdx != -1 {
		s, ok := parseComponent(token[:secondIdx])
		if !ok {
			return nil
		}

		seconds = s
		token = token[secondIdx+1:]
	}

	if token != "" {
		return nil
	}

	return minutesSeconds(minutes, seconds)
}

func minutesSeconds(minutes int, seconds int) *string {
	formatted := fmt.Sprintf("%d:%02d", minutes, seconds)
	return &formatted
}

func parseComponent(component string) (int, bool) {
	value, err := strconv.Atoi(component)
	if err != nil || value < 0 {
		return 0, false
	}

	return value, true
}
