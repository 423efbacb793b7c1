// Package budget derives the minute and percent breakdown of a day log.
// Nothing here is stored; every value is recomputed from the log.
package budget

import "github.com/Kravtmk/whoami-app/internal/model"

type Summary struct {
	Sleep   int
	Buffer  int
	Tracked int
	Other   int
}

func TrackedMinutes(log *model.DayLog) int {
	total := 0
	for _, s := range log.Segments {
		total += s.Minutes
	}
	return total
}

func UsedMinutes(log *model.DayLog) int {
	return log.SleepMinutes + log.BufferMinutes + TrackedMinutes(log)
}

// OtherMinutes floors at zero, an overallocated day reports 0.
func OtherMinutes(log *model.DayLog) int {
	return max(0, model.MinutesPerDay-UsedMinutes(log))
}

// Overallocated reports whether the remainder has floored to zero while the
// declared minutes still exceed the day.
func Overallocated(log *model.DayLog) bool {
	return OtherMinutes(log) == 0 && UsedMinutes(log) > model.MinutesPerDay
}

// PercentOf rounds minutes*100/1440 half away from zero.
func PercentOf(minutes int) int {
	n := minutes * 100
	half := model.MinutesPerDay / 2
	if n < 0 {
		return -((-n + half) / model.MinutesPerDay)
	}
	return (n + half) / model.MinutesPerDay
}

// Summarize rounds every bucket on its own, so the four values may not add
// up to exactly 100.
func Summarize(log *model.DayLog) Summary {
	return Summary{
		Sleep:   PercentOf(log.SleepMinutes),
		Buffer:  PercentOf(log.BufferMinutes),
		Tracked: PercentOf(TrackedMinutes(log)),
		Other:   PercentOf(OtherMinutes(log)),
	}
}

func (s Summary) Total() int {
	return s.Sleep + s.Buffer + s.Tracked + s.Other
}
