package timetable

import "time"

// TimeSlot is one of the seven fixed daily teaching periods with its
// wall-clock bounds converted to minutes since midnight.
type TimeSlot struct {
	Number       int    `json:"number"`
	Start        string `json:"start"`
	End          string `json:"end"`
	StartMinutes int    `json:"startMinutes"`
	EndMinutes   int    `json:"endMinutes"`
}

// Slots is the fixed daily timetable. Ranges do not overlap, so at most
// one slot can contain any given minute.
var Slots = []TimeSlot{
	{Number: 1, Start: "09:00", End: "10:30", StartMinutes: 9*60 + 0, EndMinutes: 10*60 + 30},
	{Number: 2, Start: "10:40", End: "12:10", StartMinutes: 10*60 + 40, EndMinutes: 12*60 + 10},
	{Number: 3, Start: "12:20", End: "13:50", StartMinutes: 12*60 + 20, EndMinutes: 13*60 + 50},
	{Number: 4, Start: "14:30", End: "16:00", StartMinutes: 14*60 + 30, EndMinutes: 16*60 + 0},
	{Number: 5, Start: "16:10", End: "17:40", StartMinutes: 16*60 + 10, EndMinutes: 17*60 + 40},
	{Number: 6, Start: "17:50", End: "19:20", StartMinutes: 17*60 + 50, EndMinutes: 19*60 + 20},
	{Number: 7, Start: "19:30", End: "21:00", StartMinutes: 19*60 + 30, EndMinutes: 21*60 + 0},
}

// SlotByNumber looks up a slot from the fixed table.
func SlotByNumber(number int) (TimeSlot, bool) {
	for _, slot := range Slots {
		if slot.Number == number {
			return slot, true
		}
	}
	return TimeSlot{}, false
}

// SlotStatus resolves a wall-clock minute against the fixed table. Nil
// fields mean "none": between slots or outside the table's span for
// CurrentSlot, past the last slot's start for NextSlot.
type SlotStatus struct {
	CurrentSlot      *int `json:"currentSlot"`
	NextSlot         *int `json:"nextSlot"`
	MinutesUntilNext *int `json:"minutesUntilNext"`
}

// SlotStatusAt resolves the given minutes-since-midnight value. The
// current slot's [start, end] range is inclusive on both ends; the next
// slot is the first whose start exceeds the given minute.
func SlotStatusAt(minutes int) SlotStatus {
	var status SlotStatus

	for i := range Slots {
		slot := Slots[i]
		if minutes >= slot.StartMinutes && minutes <= slot.EndMinutes {
			status.CurrentSlot = &slot.Number
		}
		if minutes < slot.StartMinutes && status.NextSlot == nil {
			status.NextSlot = &slot.Number
			until := slot.StartMinutes - minutes
			status.MinutesUntilNext = &until
		}
	}

	return status
}

// MinutesOfDay converts a wall-clock time to minutes since midnight.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// ModelDayNumber remaps the platform weekday (0 = Sunday) to the data
// model's numbering where the week starts at 1 (Monday) and ends at
// 7 (Sunday). Applied at every boundary where a day index enters or
// leaves the model.
func ModelDayNumber(weekday time.Weekday) int {
	if weekday == time.Sunday {
		return 7
	}
	return int(weekday)
}
