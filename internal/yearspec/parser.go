package yearspec

import (
	"fmt"
	"strconv"
	"strings"
)

// Range restricts an analysis run to ceremonies held within a span of
// years. A zero bound means that end of the range is open.
type Range struct {
	Since int // earliest year included, 0 = no lower bound
	Until int // latest year included, 0 = no upper bound
}

// IsZero reports whether the range places no restriction at all.
func (r Range) IsZero() bool {
	return r.Since == 0 && r.Until == 0
}

// Contains reports whether year falls inside the range (bounds inclusive).
func (r Range) Contains(year int) bool {
	if r.Since != 0 && year < r.Since {
		return false
	}
	if r.Until != 0 && year > r.Until {
		return false
	}
	return true
}

func (r Range) String() string {
	switch {
	case r.IsZero():
		return "all years"
	case r.Since == 0:
		return fmt.Sprintf("-%d", r.Until)
	case r.Until == 0:
		return fmt.Sprintf("%d-", r.Since)
	case r.Since == r.Until:
		return strconv.Itoa(r.Since)
	default:
		return fmt.Sprintf("%d-%d", r.Since, r.Until)
	}
}

// Parse parses a single four-digit ceremony year such as "2019".
func Parse(spec string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(spec))
	if err != nil || year < 1000 || year > 9999 {
		return 0, fmt.Errorf("invalid year: %q (use a four-digit year like '2019')", spec)
	}
	return year, nil
}

// ParseRange parses a year-range specification into a Range.
// Supports four formats:
//   - "2019-2024": both bounds, inclusive
//   - "2019-":     lower bound only
//   - "-2024":     upper bound only
//   - "2019":      a single year (since == until)
//
// An empty specification returns the zero Range (no restriction).
// Validates that since <= until when both bounds are given.
func ParseRange(spec string) (Range, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Range{}, nil
	}

	var r Range
	var err error

	before, after, found := strings.Cut(spec, "-")
	if !found {
		year, err := Parse(spec)
		if err != nil {
			return Range{}, err
		}
		return Range{Since: year, Until: year}, nil
	}

	if before != "" {
		r.Since, err = Parse(before)
		if err != nil {
			return Range{}, err
		}
	}
	if after != "" {
		r.Until, err = Parse(after)
		if err != nil {
			return Range{}, err
		}
	}
	if r.IsZero() {
		return Range{}, fmt.Errorf("invalid year range: %q (use a form like '2019-2024')", spec)
	}

	if r.Since != 0 && r.Until != 0 && r.Since > r.Until {
		return Range{}, fmt.Errorf("year range start %d is after end %d", r.Since, r.Until)
	}

	return r, nil
}
