package recurring

import "time"

// advance computes the generation date following from according to
// the pattern's frequency rule. It preserves from's time of day.
func advance(p *Pattern, from time.Time) time.Time {
	interval := p.IntervalValue
	if interval < 1 {
		interval = 1
	}

	switch p.Frequency {
	case FrequencyWeekly:
		return nextWeekly(from, p.DaysOfWeek, interval)
	case FrequencyMonthly:
		return nextMonthly(from, int(p.DayOfMonth.Int64), interval)
	default:
		// daily and custom are both plain day offsets.
		return from.AddDate(0, 0, interval)
	}
}

// initialDate aligns a binding's first generation date with the
// pattern. A start date that already satisfies the rule is kept, so a
// weekly Mon/Wed/Fri pattern started on a Wednesday fires that
// Wednesday.
func initialDate(p *Pattern, start time.Time) time.Time {
	switch p.Frequency {
	case FrequencyWeekly:
		if len(p.DaysOfWeek) == 0 || p.DaysOfWeek.Contains(start.Weekday()) {
			return start
		}
		return nextWeekly(start, p.DaysOfWeek, 1)
	case FrequencyMonthly:
		day := int(p.DayOfMonth.Int64)
		if day < 1 {
			return start
		}
		cand := atDayOfMonth(start.Year(), start.Month(), day, start)
		if cand.Before(start) {
			return nextMonthly(start, day, 1)
		}
		return cand
	default:
		return start
	}
}

// nextWeekly advances to the next matching weekday after from within
// the same week, wrapping to the first match intervalWeeks ahead when
// no weekday remains this week. Weeks start on Monday.
func nextWeekly(from time.Time, days DaysOfWeek, intervalWeeks int) time.Time {
	if len(days) == 0 {
		return from.AddDate(0, 0, 7*intervalWeeks)
	}

	week := startOfWeek(from)
	for d := 1; d <= 7; d++ {
		cand := from.AddDate(0, 0, d)
		if !startOfWeek(cand).Equal(week) {
			break
		}
		if days.Contains(cand.Weekday()) {
			return cand
		}
	}

	base := week.AddDate(0, 0, 7*intervalWeeks)
	base = time.Date(base.Year(), base.Month(), base.Day(),
		from.Hour(), from.Minute(), from.Second(), from.Nanosecond(), from.Location())
	for d := 0; d < 7; d++ {
		cand := base.AddDate(0, 0, d)
		if days.Contains(cand.Weekday()) {
			return cand
		}
	}
	return base
}

// nextMonthly advances intervalMonths months to dayOfMonth, clamped
// to the last day when the target month is shorter.
func nextMonthly(from time.Time, dayOfMonth, intervalMonths int) time.Time {
	if dayOfMonth < 1 {
		dayOfMonth = from.Day()
	}
	y, m, _ := from.AddDate(0, intervalMonths, -(from.Day() - 1)).Date()
	return atDayOfMonth(y, m, dayOfMonth, from)
}

func atDayOfMonth(year int, month time.Month, day int, clock time.Time) time.Time {
	if last := daysIn(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day,
		clock.Hour(), clock.Minute(), clock.Second(), clock.Nanosecond(), clock.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	d := t.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}
