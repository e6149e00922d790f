package availability

import (
	"errors"
	"fmt"
	"time"

	"MediSlot/constants"
	"MediSlot/models"
	"MediSlot/validation"

	"github.com/go-playground/validator/v10"
)

// Draft is the add-slot form state. It is a value: every change goes
// through Reduce and yields a new Draft.
type Draft struct {
	DayOfWeek      int
	StartTime      string
	EndTime        string
	HoursAvailable float64
	TokenCount     int
}

type Action interface {
	apply(Draft) Draft
}

type (
	SetDay    int
	SetStart  string
	SetEnd    string
	SetHours  float64
	SetTokens int
	Reset     struct{}
)

func (a SetDay) apply(d Draft) Draft {
	d.DayOfWeek = int(a)
	return d
}

func (a SetStart) apply(d Draft) Draft {
	d.StartTime = string(a)
	return d
}

func (a SetEnd) apply(d Draft) Draft {
	d.EndTime = string(a)
	return d
}

func (a SetHours) apply(d Draft) Draft {
	d.HoursAvailable = float64(a)
	return d
}

func (a SetTokens) apply(d Draft) Draft {
	d.TokenCount = int(a)
	return d
}

func (Reset) apply(Draft) Draft { return NewDraft() }

// NewDraft starts on Monday, Sunday being a holiday.
func NewDraft() Draft {
	return Draft{DayOfWeek: int(time.Monday)}
}

func Reduce(d Draft, actions ...Action) Draft {
	for _, a := range actions {
		d = a.apply(d)
	}
	return d
}

func DraftFromRequest(req models.SlotRequest) Draft {
	return Reduce(NewDraft(),
		SetDay(req.DayOfWeek),
		SetStart(req.StartTime),
		SetEnd(req.EndTime),
		SetHours(req.HoursAvailable),
		SetTokens(req.TokenCount),
	)
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", constants.ErrInvalidInput, msg)
}

/*
* Day has to be a weekday other than Sunday
* Times are HH:MM and start comes before end
* At least one token, hours not negative
 */
func (d Draft) Validate() error {
	if d.DayOfWeek < 0 || d.DayOfWeek > 6 {
		return invalid(constants.INVALID_DAY_OF_WEEK)
	}
	if d.DayOfWeek == int(time.Sunday) {
		return invalid(constants.SUNDAY_IS_HOLIDAY)
	}
	if err := validation.Validator().Struct(d.Slot()); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			switch verrs[0].Field() {
			case "StartTime", "EndTime":
				return invalid(constants.INVALID_TIME_FORMAT)
			case "HoursAvailable":
				return invalid(constants.HOURS_MUST_NOT_BE_NEGATIVE)
			case "TokenCount":
				return invalid(constants.TOKEN_COUNT_MUST_BE_POSITIVE)
			}
		}
		return invalid(err.Error())
	}
	start, _ := validation.ParseClock(d.StartTime)
	end, _ := validation.ParseClock(d.EndTime)
	if !start.Before(end) {
		return invalid(constants.START_TIME_MUST_BE_BEFORE_END)
	}
	if d.TokenCount < 1 {
		return invalid(constants.TOKEN_COUNT_MUST_BE_POSITIVE)
	}
	return nil
}

func (d Draft) Slot() models.Slot {
	return models.Slot{
		StartTime:      d.StartTime,
		EndTime:        d.EndTime,
		HoursAvailable: d.HoursAvailable,
		TokenCount:     d.TokenCount,
		BookedTokens:   []int{},
	}
}

// AppendTo returns the day's full slot list with the drafted slot last.
// The caller replaces the stored day with it, last writer wins.
func (d Draft) AppendTo(existing []models.Slot) []models.Slot {
	out := make([]models.Slot, 0, len(existing)+1)
	out = append(out, existing...)
	return append(out, d.Slot())
}
