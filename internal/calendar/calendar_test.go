package calendar

import "testing"

func newTestCalendar(t *testing.T, seasonDays int) Calendar {
	t.Helper()
	c, err := New(seasonDays)
	if err != nil {
		t.Fatalf("new calendar: %v", err)
	}
	return c
}

func TestNewRejectsInvalidSeasonLength(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Fatalf("expected error for zero-day seasons")
	}
	if _, err := New(-3); err == nil {
		t.Fatalf("expected error for negative season length")
	}
}

func TestTurnBreakdown(t *testing.T) {
	c := newTestCalendar(t, 14).Advance(Days(3) + Hours(7) + Minutes(10))

	if c.Day() != 3 {
		t.Fatalf("day = %d, want 3", c.Day())
	}
	if c.Hour() != 7 || c.Minute() != 10 || c.Second() != 0 {
		t.Fatalf("time = %02d:%02d:%02d, want 07:10:00", c.Hour(), c.Minute(), c.Second())
	}
	if c.Season() != Spring {
		t.Fatalf("season = %s, want spring", c.Season())
	}
	if c.Year() != 0 {
		t.Fatalf("year = %d, want 0", c.Year())
	}
}

func TestSeasonAndYearCycling(t *testing.T) {
	c := newTestCalendar(t, 14)

	seasons := []Season{Spring, Summer, Autumn, Winter, Spring}
	for i, want := range seasons {
		at := c.Advance(i * c.SeasonTurns())
		if got := at.Season(); got != want {
			t.Fatalf("season %d = %s, want %s", i, got, want)
		}
	}

	if got := c.Advance(c.YearTurns()).Year(); got != 1 {
		t.Fatalf("year after one full cycle = %d, want 1", got)
	}
}

func TestSunriseAnchorsAtSeasonStart(t *testing.T) {
	c := newTestCalendar(t, 14)

	cases := []struct {
		season  Season
		sunrise int
		sunset  int
	}{
		{Spring, Hours(7), Hours(19)},
		{Summer, Hours(5), Hours(20)},
		{Autumn, Hours(7), Hours(19)},
		{Winter, Hours(8), Hours(17)},
	}
	for _, tc := range cases {
		at := c.Advance(int(tc.season) * c.SeasonTurns())
		if got := at.Sunrise(); got != tc.sunrise {
			t.Fatalf("%s sunrise = %d turns, want %d", tc.season, got, tc.sunrise)
		}
		if got := at.Sunset(); got != tc.sunset {
			t.Fatalf("%s sunset = %d turns, want %d", tc.season, got, tc.sunset)
		}
	}
}

func TestSunriseInterpolatesWithinSeason(t *testing.T) {
	c := newTestCalendar(t, 14)

	start := c.Sunrise()
	mid := c.Advance(Days(7)).Sunrise()
	if mid >= start {
		t.Fatalf("spring sunrise should creep earlier: start %d, mid %d", start, mid)
	}
	if mid <= Hours(5) {
		t.Fatalf("mid-spring sunrise %d passed the summer anchor", mid)
	}
}

func TestPartOfDay(t *testing.T) {
	c := newTestCalendar(t, 14)

	cases := []struct {
		at   int
		want DayPhase
	}{
		{0, Night},
		{Hours(6) + Minutes(30), Dawn},
		{Hours(12), Day},
		{Hours(19) + Minutes(30), Dusk},
		{Hours(23), Night},
	}
	for _, tc := range cases {
		at := c.Advance(tc.at)
		if got := at.PartOfDay(); got != tc.want {
			t.Fatalf("phase at %02d:%02d = %s, want %s", at.Hour(), at.Minute(), got, tc.want)
		}
	}

	noon := c.Advance(Hours(12))
	if !noon.IsDay() || noon.IsNight() {
		t.Fatalf("noon misclassified: day=%v night=%v", noon.IsDay(), noon.IsNight())
	}
}

func TestDaylightLevelSeasonalSwing(t *testing.T) {
	c := newTestCalendar(t, 14)

	if got := c.DaylightLevel(); got != 100 {
		t.Fatalf("equinox daylight = %g, want 100", got)
	}
	summer := c.Advance(c.SeasonTurns()).DaylightLevel()
	if summer != 125 {
		t.Fatalf("summer solstice daylight = %g, want 125", summer)
	}
	winter := c.Advance(3 * c.SeasonTurns()).DaylightLevel()
	if winter != 75 {
		t.Fatalf("winter solstice daylight = %g, want 75", winter)
	}
}

func TestSunlightDayVersusNight(t *testing.T) {
	c := newTestCalendar(t, 14)

	day := c.Advance(Hours(12)).Sunlight()
	night := c.Advance(Hours(1)).Sunlight()
	if day <= night {
		t.Fatalf("daylight %g not above night light %g", day, night)
	}
	if night <= 0 {
		t.Fatalf("night should keep a sliver of light, got %g", night)
	}
}

func TestMoonCycleStartsNewAndHoldsOvernight(t *testing.T) {
	c := newTestCalendar(t, 14)

	if got := c.Moon(); got != MoonNew {
		t.Fatalf("opening moon = %s, want new moon", got)
	}

	// Phase changes at noon, so dusk and the following small hours agree.
	dusk := c.Advance(Days(4) + Hours(20))
	later := c.Advance(Days(5) + Hours(2))
	if dusk.Moon() != later.Moon() {
		t.Fatalf("moon changed overnight: %s then %s", dusk.Moon(), later.Moon())
	}
}

func TestMoonQuartersLitSymmetry(t *testing.T) {
	if MoonFull.QuartersLit() != 4 || MoonNew.QuartersLit() != 0 {
		t.Fatalf("full/new quarters wrong: %d/%d", MoonFull.QuartersLit(), MoonNew.QuartersLit())
	}
	if MoonWaxingCrescent.QuartersLit() != MoonWaningCrescent.QuartersLit() {
		t.Fatalf("crescent phases should match")
	}
	if MoonWaxingGibbous.QuartersLit() != MoonWaningGibbous.QuartersLit() {
		t.Fatalf("gibbous phases should match")
	}
}

func TestPrintClippedDuration(t *testing.T) {
	cases := []struct {
		turns int
		want  string
	}{
		{5, "30 seconds"},
		{TurnsPerMinute, "1 minute"},
		{Minutes(5), "5 minutes"},
		{Hours(3), "3 hours"},
		{Days(2) + Hours(20), "2 days"},
		{IndefinitelyLong, "forever"},
	}
	for _, tc := range cases {
		if got := PrintClippedDuration(tc.turns); got != tc.want {
			t.Fatalf("clipped(%d) = %q, want %q", tc.turns, got, tc.want)
		}
	}
}

func TestPrintDurationIncludesRemainder(t *testing.T) {
	got := PrintDuration(Hours(3) + Minutes(11))
	if got != "3 hours and 11 minutes" {
		t.Fatalf("duration = %q", got)
	}
	if got := PrintDuration(Hours(2)); got != "2 hours" {
		t.Fatalf("exact duration = %q", got)
	}
}

func TestPrintApproxDuration(t *testing.T) {
	cases := []struct {
		turns int
		want  string
	}{
		{Hours(2) + Minutes(2), "about 2 hours"},
		{Hours(2) + Minutes(58), "about 3 hours"},
		{Hours(2) + Minutes(20), "more than 2 hours"},
		{Hours(2) + Minutes(40), "less than 3 hours"},
		{Minutes(7), "about 7 minutes"},
	}
	for _, tc := range cases {
		if got := PrintApproxDuration(tc.turns); got != tc.want {
			t.Fatalf("approx(%d) = %q, want %q", tc.turns, got, tc.want)
		}
	}
}
