package catalog

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var (
	isoDateRe    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	usDashDateRe = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{4})$`)
	slashDateRe  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
)

// ParseDate converts an authored date string into a UTC midnight timestamp
// for sorting. Accepted formats: YYYY-MM-DD, MM-DD-YYYY, and M/D/YYYY. Any
// other shape falls through to a generic parser. Unparseable dates resolve to
// the Unix epoch so a single malformed file sorts last instead of breaking
// the listing; the displayed string stays exactly as authored.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Unix(0, 0).UTC()
	}

	if isoDateRe.MatchString(s) {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			return t.UTC()
		}
	}

	if m := usDashDateRe.FindStringSubmatch(s); m != nil {
		return utcMidnight(m[3], m[1], m[2])
	}
	if m := slashDateRe.FindStringSubmatch(s); m != nil {
		return utcMidnight(m[3], m[1], m[2])
	}

	if t, err := dateparse.ParseAny(s); err == nil {
		return t.UTC()
	}
	return time.Unix(0, 0).UTC()
}

func utcMidnight(year, month, day string) time.Time {
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}
