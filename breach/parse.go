package breach

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// FindSuffix scans SUFFIX:COUNT records for the suffix, ignoring case.
// Records that are malformed, or that carry a zero count (padding), are
// skipped. Only a failure of the reader itself is returned as an error.
func FindSuffix(r io.Reader, suffix string) (BreachInfo, error) {
	reader := bufio.NewReader(r)

	for {
		line, err := reader.ReadString('\n')

		if count, ok := parseRecord(line, suffix); ok {
			return BreachInfo{IsPwned: true, OccurrenceCount: count}, nil
		}

		if err == io.EOF {
			return BreachInfo{}, nil
		}

		if err != nil {
			return BreachInfo{}, err
		}
	}
}

func parseRecord(line string, suffix string) (int64, bool) {
	recordSuffix, rawCount, found := strings.Cut(strings.TrimSpace(line), ":")
	if !found {
		return 0, false
	}

	if !strings.EqualFold(strings.TrimSpace(recordSuffix), suffix) {
		return 0, false
	}

	count, err := strconv.ParseInt(strings.TrimSpace(rawCount), 10, 64)
	if err != nil || count <= 0 {
		return 0, false
	}

	return count, true
}
