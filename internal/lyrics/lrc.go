package lyrics

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"chorus/internal/catalog"
)

// FilterTimed strips every line that does not begin with '[' followed by a
// digit. This removes LRC metadata tags like [ar:...] and [ti:...] as well
// as blank lines, leaving only timestamped lyric lines.
func FilterTimed(content string) string {
	var kept []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if len(line) < 2 {
			continue
		}
		if line[0] == '[' && line[1] >= '0' && line[1] <= '9' {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// Parse parses LRC content into timestamped lines ordered by start time.
// The content should already be filtered to timestamped lines (FilterTimed).
// A line may carry several timestamps, each producing its own entry.
func Parse(content string) ([]catalog.LyricLine, error) {
	var lines []catalog.LyricLine

	for _, raw := range strings.Split(content, "\n") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		times, text, err := splitLine(raw)
		if err != nil {
			return nil, err
		}
		for _, ts := range times {
			lines = append(lines, catalog.LyricLine{StartTime: ts, Text: text})
		}
	}

	sort.SliceStable(lines, func(i, j int) bool { return lines[i].StartTime < lines[j].StartTime })

	return lines, nil
}

// splitLine separates the leading timestamp tags from the lyric text.
func splitLine(line string) ([]int64, string, error) {
	var times []int64

	rest := line
	for strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, "", fmt.Errorf("unterminated timestamp tag in %q", line)
		}

		ts, err := parseTimestamp(rest[1:end])
		if err != nil {
			return nil, "", err
		}
		times = append(times, ts)
		rest = rest[end+1:]
	}

	if len(times) == 0 {
		return nil, "", fmt.Errorf("line %q has no timestamp tag", line)
	}

	return times, strings.TrimSpace(rest), nil
}

// parseTimestamp converts "mm:ss", "mm:ss.xx" or "mm:ss.xxx" to milliseconds.
func parseTimestamp(tag string) (int64, error) {
	minSec := strings.SplitN(tag, ":", 2)
	if len(minSec) != 2 {
		return 0, fmt.Errorf("malformed timestamp %q", tag)
	}

	minutes, err := strconv.ParseInt(minSec[0], 10, 64)
	if err != nil || minutes < 0 {
		return 0, fmt.Errorf("malformed minutes in timestamp %q", tag)
	}

	secPart := minSec[1]
	fracPart := ""
	if dot := strings.IndexByte(secPart, '.'); dot >= 0 {
		fracPart = secPart[dot+1:]
		secPart = secPart[:dot]
	}

	seconds, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil || seconds < 0 || seconds > 59 {
		return 0, fmt.Errorf("malformed seconds in timestamp %q", tag)
	}

	var millis int64
	if fracPart != "" {
		// Normalize to exactly three digits: ".5" is 500ms, ".50" also.
		if len(fracPart) > 3 {
			fracPart = fracPart[:3]
		}
		for len(fracPart) < 3 {
			fracPart += "0"
		}
		millis, err = strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed fraction in timestamp %q", tag)
		}
	}

	return (minutes*60+seconds)*1000 + millis, nil
}
