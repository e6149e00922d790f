// Package availability derives display status and dashboard aggregates from
// doctors' weekly availability records. Everything here is a pure function of
// already-fetched data.
package availability

import "MediSlot/models"

type Status string

const (
	Available   Status = "Available"
	AlmostFull  Status = "Almost Full"
	Full        Status = "Full"
	Unavailable Status = "Unavailable"
	Inactive    Status = "Inactive"
)

// AlmostFullPercent is the booked share at which a day turns "Almost Full".
const AlmostFullPercent = 80

var Statuses = []Status{Available, AlmostFull, Full, Unavailable, Inactive}

var tones = map[Status]string{
	Available:   "success",
	AlmostFull:  "warning",
	Full:        "danger",
	Unavailable: "secondary",
	Inactive:    "muted",
}

// Tone is the badge style the consoles render the status with.
func (s Status) Tone() string {
	if t, ok := tones[s]; ok {
		return t
	}
	return "muted"
}

// Bookable reports whether a patient could still get a token.
func (s Status) Bookable() bool {
	return s == Available || s == AlmostFull
}

// Tokens returns the capacity and the number of booked tokens across all
// slots of the record.
func Tokens(record models.Availability) (total, booked int) {
	for _, slot := range record.Slots {
		total += slot.TokenCount
		booked += len(slot.BookedTokens)
	}
	return total, booked
}

/*
* Inactive and unavailable records win over occupancy
* booked >= total is Full, which also makes an empty day (0/0) Full
* The almost-full share is only looked at when there is capacity
 */
func Classify(record models.Availability) Status {
	if !record.IsActive {
		return Inactive
	}
	if !record.IsAvailable {
		return Unavailable
	}
	total, booked := Tokens(record)
	if booked >= total {
		return Full
	}
	if total > 0 && booked*100 >= AlmostFullPercent*total {
		return AlmostFull
	}
	return Available
}

// DoctorAvailable reports whether any of the doctor's days still takes
// bookings.
func DoctorAvailable(records []models.Availability) bool {
	for _, r := range records {
		if Classify(r).Bookable() {
			return true
		}
	}
	return false
}

func TotalSlots(records []models.Availability) int {
	n := 0
	for _, r := range records {
		n += len(r.Slots)
	}
	return n
}

// TotalHours sums the hoursAvailable entered on each slot. The value is
// taken as entered, it is not derived from start and end time.
func TotalHours(records []models.Availability) float64 {
	h := 0.0
	for _, r := range records {
		for _, s := range r.Slots {
			h += s.HoursAvailable
		}
	}
	return h
}

func GroupByDoctor(records []models.Availability) map[string][]models.Availability {
	out := make(map[string][]models.Availability)
	for _, r := range records {
		out[r.DoctorId] = append(out[r.DoctorId], r)
	}
	return out
}
