package timeclock

import (
	"time"

	"github.com/cmlabs-hris/timebank-backend-go/internal/pkg/validator"
)

// ========================================
// CLOCK DTOs
// ========================================

type ClockPunchRequest struct {
	EmployeeID string   `json:"-"`
	Date       *string  `json:"date,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`

	ParsedDate *time.Time `json:"-"`
}

func (r *ClockPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Date != nil {
		if date, ok := validator.IsValidDate(*r.Date); ok {
			r.ParsedDate = &date
		} else {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	errs = append(errs, validateCoordinates(r.Latitude, r.Longitude)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Coordinates returns the submitted location, or nil when none was sent.
func (r *ClockPunchRequest) Coordinates() *Coordinates {
	if r.Latitude == nil || r.Longitude == nil {
		return nil
	}
	return &Coordinates{Latitude: *r.Latitude, Longitude: *r.Longitude}
}

type ClockPunchResponse struct {
	RecordID    string `json:"record_id"`
	Date        string `json:"date"`
	Stage       Stage  `json:"stage"`
	FilledCount int    `json:"filled_count"`
	Remaining   int    `json:"remaining"`
	PunchedAt   string `json:"punched_at"`
	Message     string `json:"message"`
}

// ========================================
// STATUS DTOs
// ========================================

type DayStatusRequest struct {
	EmployeeID string
	Date       *string

	ParsedDate *time.Time
}

func (r *DayStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Date != nil {
		if date, ok := validator.IsValidDate(*r.Date); ok {
			r.ParsedDate = &date
		} else {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DayStatusResponse struct {
	EmployeeID  string  `json:"employee_id"`
	Date        string  `json:"date"`
	FilledCount int     `json:"filled_count"`
	Remaining   int     `json:"remaining"`
	NextStage   *Stage  `json:"next_stage"`
	Arrival     *string `json:"arrival"`
	LunchStart  *string `json:"lunch_start"`
	LunchEnd    *string `json:"lunch_end"`
	Departure   *string `json:"departure"`
	Message     string  `json:"message"`
}

// ========================================
// MANUAL ENTRY DTOs
// ========================================

// CreateManualPunchRequest carries wall-clock times ("HH:MM") for one day.
type CreateManualPunchRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Arrival    string  `json:"arrival"`
	LunchStart *string `json:"lunch_start,omitempty"`
	LunchEnd   *string `json:"lunch_end,omitempty"`
	Departure  string  `json:"departure"`
	Note       *string `json:"note,omitempty"`

	ParsedDate       time.Time      `json:"-"`
	ArrivalOffset    time.Duration  `json:"-"`
	LunchStartOffset *time.Duration `json:"-"`
	LunchEndOffset   *time.Duration `json:"-"`
	DepartureOffset  time.Duration  `json:"-"`
}

func (r *CreateManualPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if date, ok := validator.IsValidDate(r.Date); ok {
		r.ParsedDate = date
	} else {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	arrivalOK, departureOK := false, false
	if offset, ok := validator.ParseTimeOfDay(r.Arrival); ok {
		r.ArrivalOffset, arrivalOK = offset, true
	} else {
		errs = append(errs, validator.ValidationError{
			Field:   "arrival",
			Message: "arrival is required in HH:MM format",
		})
	}
	if offset, ok := validator.ParseTimeOfDay(r.Departure); ok {
		r.DepartureOffset, departureOK = offset, true
	} else {
		errs = append(errs, validator.ValidationError{
			Field:   "departure",
			Message: "departure is required in HH:MM format",
		})
	}
	if arrivalOK && departureOK && r.ArrivalOffset >= r.DepartureOffset {
		errs = append(errs, validator.ValidationError{
			Field:   "departure",
			Message: "departure must be after arrival",
		})
	}

	switch {
	case r.LunchStart == nil && r.LunchEnd == nil:
	case r.LunchStart == nil || r.LunchEnd == nil:
		errs = append(errs, validator.ValidationError{
			Field:   "lunch",
			Message: "lunch_start and lunch_end must be provided together",
		})
	default:
		start, startOK := validator.ParseTimeOfDay(*r.LunchStart)
		end, endOK := validator.ParseTimeOfDay(*r.LunchEnd)
		if !startOK {
			errs = append(errs, validator.ValidationError{
				Field:   "lunch_start",
				Message: "lunch_start must be in HH:MM format",
			})
		}
		if !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "lunch_end",
				Message: "lunch_end must be in HH:MM format",
			})
		}
		if startOK && endOK {
			if start >= end {
				errs = append(errs, validator.ValidationError{
					Field:   "lunch_end",
					Message: "lunch_end must be after lunch_start",
				})
			}
			r.LunchStartOffset, r.LunchEndOffset = &start, &end
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// LIST DTOs
// ========================================

type ListPunchRecordsRequest struct {
	EmployeeID string
	From       string
	To         string

	ParsedFrom time.Time
	ParsedTo   time.Time
}

func (r *ListPunchRecordsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	from, fromOK := validator.IsValidDate(r.From)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be in YYYY-MM-DD format",
		})
	}
	to, toOK := validator.IsValidDate(r.To)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be in YYYY-MM-DD format",
		})
	}
	if fromOK && toOK && from.After(to) {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must not be after to",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	r.ParsedFrom, r.ParsedTo = from, to
	return nil
}

type PunchRecordResponse struct {
	ID               string       `json:"id"`
	EmployeeID       string       `json:"employee_id"`
	Date             string       `json:"date"`
	Arrival          *string      `json:"arrival"`
	LunchStart       *string      `json:"lunch_start"`
	LunchEnd         *string      `json:"lunch_end"`
	Departure        *string      `json:"departure"`
	ArrivalCoords    *Coordinates `json:"arrival_coordinates,omitempty"`
	LunchStartCoords *Coordinates `json:"lunch_start_coordinates,omitempty"`
	LunchEndCoords   *Coordinates `json:"lunch_end_coordinates,omitempty"`
	DepartureCoords  *Coordinates `json:"departure_coordinates,omitempty"`
	FilledCount      int          `json:"filled_count"`
	Origin           Origin       `json:"origin"`
	Note             *string      `json:"note"`
	CreatedAt        string       `json:"created_at"`
	UpdatedAt        string       `json:"updated_at"`
}

func validateCoordinates(lat, lng *float64) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if (lat == nil) != (lng == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "coordinates",
			Message: "latitude and longitude must be provided together",
		})
		return errs
	}
	if lat != nil && !validator.IsValidLatitude(*lat) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if lng != nil && !validator.IsValidLongitude(*lng) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}
	return errs
}
