package calendar

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// IndefinitelyLong marks durations that should read as "forever". Divided by
// 100 so arithmetic on it cannot overflow when converted to finer units.
const IndefinitelyLong = math.MaxInt32 / 100

// PrintClippedDuration renders a duration in its single largest whole unit.
func PrintClippedDuration(turns int) string {
	if turns >= IndefinitelyLong {
		return "forever"
	}
	switch {
	case turns < Minutes(1):
		return pluralUnit(turns*TurnSeconds, "second")
	case turns < Hours(1):
		return pluralUnit(turns/Minutes(1), "minute")
	case turns < Days(1):
		return pluralUnit(turns/Hours(1), "hour")
	default:
		return pluralUnit(turns/Days(1), "day")
	}
}

// PrintDuration renders a duration with one level of remainder, such as
// "2 days and 5 hours".
func PrintDuration(turns int) string {
	divider := 0
	if turns > Minutes(1) && turns < IndefinitelyLong {
		switch {
		case turns < Hours(1):
			divider = Minutes(1)
		case turns < Days(1):
			divider = Hours(1)
		default:
			divider = Days(1)
		}
	}

	if divider != 0 {
		if remainder := turns % divider; remainder != 0 {
			return fmt.Sprintf("%s and %s",
				PrintClippedDuration(turns), PrintClippedDuration(remainder))
		}
	}
	return PrintClippedDuration(turns)
}

// PrintApproxDuration rounds a duration to a friendly estimate: values near
// a whole unit snap to it, anything else reads as "more than" or "less
// than". Minutes and seconds are short enough to report exactly.
func PrintApproxDuration(turns int) string {
	divider, vicinity := 0, 0
	switch {
	case turns > Days(1):
		divider, vicinity = Days(1), Hours(2)
	case turns > Hours(1):
		divider, vicinity = Hours(1), Minutes(5)
	}

	if divider != 0 {
		remainder := turns % divider
		switch {
		case remainder >= divider-vicinity:
			turns += divider
		case remainder > vicinity:
			if remainder < divider/2 {
				return "more than " + PrintClippedDuration(turns)
			}
			return "less than " + PrintClippedDuration(turns+divider)
		}
	}
	return "about " + PrintClippedDuration(turns)
}

func pluralUnit(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%s %ss", humanize.Comma(int64(n)), unit)
}
