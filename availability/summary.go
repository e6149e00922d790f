package availability

import (
	"sort"

	"MediSlot/models"
)

type DoctorCounts struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Unavailable int `json:"unavailable"`
}

// Summary is the hospital-wide block on the admin dashboard.
type Summary struct {
	Doctors      DoctorCounts   `json:"doctors"`
	TotalSlots   int            `json:"totalSlots"`
	TotalHours   float64        `json:"totalHours"`
	StatusCounts map[Status]int `json:"statusCounts"`
}

// RecordView is an availability record together with what it evaluates to.
type RecordView struct {
	models.Availability
	Status       Status `json:"status"`
	Tone         string `json:"tone"`
	TotalTokens  int    `json:"totalTokens"`
	BookedTokens int    `json:"bookedTokens"`
}

// DoctorWeek is one doctor's week as shown on the availability page.
type DoctorWeek struct {
	DoctorId   string       `json:"doctorId"`
	Available  bool         `json:"available"`
	TotalSlots int          `json:"totalSlots"`
	TotalHours float64      `json:"totalHours"`
	Days       []RecordView `json:"days"`
}

func View(record models.Availability) RecordView {
	total, booked := Tokens(record)
	status := Classify(record)
	return RecordView{
		Availability: record,
		Status:       status,
		Tone:         status.Tone(),
		TotalTokens:  total,
		BookedTokens: booked,
	}
}

func Views(records []models.Availability) []RecordView {
	out := make([]RecordView, 0, len(records))
	for _, r := range records {
		out = append(out, View(r))
	}
	return out
}

// Week builds the weekly view of one doctor, days ordered Sunday first.
func Week(doctorId string, records []models.Availability) DoctorWeek {
	days := Views(records)
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].DayOfWeek < days[j].DayOfWeek
	})
	return DoctorWeek{
		DoctorId:   doctorId,
		Available:  DoctorAvailable(records),
		TotalSlots: TotalSlots(records),
		TotalHours: TotalHours(records),
		Days:       days,
	}
}

// CountDoctors counts every doctor once; doctors without any record are
// unavailable.
func CountDoctors(doctors []models.Doctor, records []models.Availability) DoctorCounts {
	byDoctor := GroupByDoctor(records)
	counts := DoctorCounts{Total: len(doctors)}
	for _, d := range doctors {
		if DoctorAvailable(byDoctor[d.Key()]) {
			counts.Available++
		} else {
			counts.Unavailable++
		}
	}
	return counts
}

func StatusCounts(records []models.Availability) map[Status]int {
	counts := make(map[Status]int, len(Statuses))
	for _, s := range Statuses {
		counts[s] = 0
	}
	for _, r := range records {
		counts[Classify(r)]++
	}
	return counts
}

func Summarize(doctors []models.Doctor, records []models.Availability) Summary {
	return Summary{
		Doctors:      CountDoctors(doctors, records),
		TotalSlots:   TotalSlots(records),
		TotalHours:   TotalHours(records),
		StatusCounts: StatusCounts(records),
	}
}
