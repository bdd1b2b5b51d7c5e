package validation

import (
	"fmt"
	"time"

	"github.com/shoaibmiaan/gramorx-planner/internal/constants"
	"github.com/shoaibmiaan/gramorx-planner/internal/models"
	"github.com/shoaibmiaan/gramorx-planner/internal/utils"
)

// ErrorKind identifies the violated constraint so callers can render a
// field-level message.
type ErrorKind string

const (
	ErrInvalidUser    ErrorKind = "invalid_user"
	ErrInvalidDay     ErrorKind = "invalid_day"
	ErrDuplicateDay   ErrorKind = "duplicate_day"
	ErrInvalidMinutes ErrorKind = "invalid_minutes"
	ErrInvalidBand    ErrorKind = "invalid_band"
	ErrInvalidDate    ErrorKind = "invalid_date"
)

// Error is a structural validation failure. Generation aborts on the first
// violation; no partial plan is ever produced.
type Error struct {
	Kind    ErrorKind
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Validator validates raw plan requests.
type Validator struct{}

// New creates a new Validator.
func New() *Validator {
	return &Validator{}
}

// Validate checks a raw request and returns its normalized form: dates
// truncated to midnight UTC, availability keyed by weekday. It returns a
// *Error describing the first structural violation found.
func (v *Validator) Validate(req models.PlanRequest) (models.ValidatedRequest, error) {
	var out models.ValidatedRequest

	if req.UserID == "" {
		return out, &Error{Kind: ErrInvalidUser, Field: "user_id", Message: "user id is required"}
	}
	out.UserID = req.UserID

	if req.TargetBand < constants.MinTargetBand || req.TargetBand > constants.MaxTargetBand {
		return out, &Error{
			Kind:    ErrInvalidBand,
			Field:   "target_band",
			Message: fmt.Sprintf("target band %.1f outside [%.1f, %.1f]", req.TargetBand, constants.MinTargetBand, constants.MaxTargetBand),
		}
	}
	out.TargetBand = req.TargetBand

	out.Minutes = make(map[time.Weekday]int, len(req.Availability))
	for _, slot := range req.Availability {
		wd, err := utils.ParseWeekday(slot.Day)
		if err != nil {
			return out, &Error{Kind: ErrInvalidDay, Field: "availability", Message: err.Error()}
		}
		if _, seen := out.Minutes[wd]; seen {
			return out, &Error{
				Kind:    ErrDuplicateDay,
				Field:   "availability",
				Message: fmt.Sprintf("duplicate availability entry for %s", wd),
			}
		}
		if slot.Minutes < constants.MinSlotMinutes || slot.Minutes > constants.MaxSlotMinutes {
			return out, &Error{
				Kind:    ErrInvalidMinutes,
				Field:   "availability",
				Message: fmt.Sprintf("%s: %d minutes outside [%d, %d]", wd, slot.Minutes, constants.MinSlotMinutes, constants.MaxSlotMinutes),
			}
		}
		out.Minutes[wd] = slot.Minutes
	}

	if req.StartISO == "" {
		out.Start = utils.TodayUTC()
	} else {
		start, err := utils.ParseDateUTC(req.StartISO)
		if err != nil {
			return out, &Error{Kind: ErrInvalidDate, Field: "start_iso", Message: err.Error()}
		}
		out.Start = start
	}

	exam, err := utils.ParseDateUTC(req.ExamDateISO)
	if err != nil {
		return out, &Error{Kind: ErrInvalidDate, Field: "exam_date_iso", Message: err.Error()}
	}
	out.Exam = exam

	// Weakness labels are cosmetic; cap rather than reject.
	weaknesses := req.Weaknesses
	if len(weaknesses) > constants.MaxWeaknesses {
		weaknesses = weaknesses[:constants.MaxWeaknesses]
	}
	if len(weaknesses) > 0 {
		out.Weaknesses = append([]string(nil), weaknesses...)
	}

	return out, nil
}
