package timeclock

import (
	"time"
)

const TotalStages = 4

// Stage is one of the four daily punches, in the order they must be filled.
type Stage string

const (
	StageArrival    Stage = "arrival"
	StageLunchStart Stage = "lunch_start"
	StageLunchEnd   Stage = "lunch_end"
	StageDeparture  Stage = "departure"
)

var Stages = []Stage{StageArrival, StageLunchStart, StageLunchEnd, StageDeparture}

// Origin records which path created the punch record.
type Origin string

const (
	OriginWeb    Origin = "web"
	OriginManual Origin = "manual"
)

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PunchRecord is the single record of an employee's punches on one calendar day.
type PunchRecord struct {
	ID         string
	EmployeeID string
	Date       time.Time // midnight UTC, see utils.DateOf

	Arrival    *time.Time
	LunchStart *time.Time
	LunchEnd   *time.Time
	Departure  *time.Time

	ArrivalCoords    *Coordinates
	LunchStartCoords *Coordinates
	LunchEndCoords   *Coordinates
	DepartureCoords  *Coordinates

	Origin    Origin
	Note      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StageTime returns the time recorded for stage, or nil.
func (r PunchRecord) StageTime(stage Stage) *time.Time {
	switch stage {
	case StageArrival:
		return r.Arrival
	case StageLunchStart:
		return r.LunchStart
	case StageLunchEnd:
		return r.LunchEnd
	case StageDeparture:
		return r.Departure
	}
	return nil
}

// FilledCount counts the stages set so far.
func (r PunchRecord) FilledCount() int {
	count := 0
	for _, stage := range Stages {
		if r.StageTime(stage) != nil {
			count++
		}
	}
	return count
}

// NextStage returns the first unset stage. ok is false once the day is complete.
func (r PunchRecord) NextStage() (stage Stage, ok bool) {
	for _, s := range Stages {
		if r.StageTime(s) == nil {
			return s, true
		}
	}
	return "", false
}

// LastPunch returns the time of the latest filled stage in stage order.
func (r PunchRecord) LastPunch() *time.Time {
	var last *time.Time
	for _, s := range Stages {
		if t := r.StageTime(s); t != nil {
			last = t
		}
	}
	return last
}

// SetStage fills stage with at and the optional coordinates.
func (r *PunchRecord) SetStage(stage Stage, at time.Time, coords *Coordinates) {
	switch stage {
	case StageArrival:
		r.Arrival, r.ArrivalCoords = &at, coords
	case StageLunchStart:
		r.LunchStart, r.LunchStartCoords = &at, coords
	case StageLunchEnd:
		r.LunchEnd, r.LunchEndCoords = &at, coords
	case StageDeparture:
		r.Departure, r.DepartureCoords = &at, coords
	}
}

// AppendNote adds an entry to the append-only annotation log.
func (r *PunchRecord) AppendNote(entry string) {
	if r.Note == nil || *r.Note == "" {
		r.Note = &entry
		return
	}
	joined := *r.Note + " | " + entry
	r.Note = &joined
}

// Label is the human form of the stage used in notes and messages.
func (s Stage) Label() string {
	switch s {
	case StageArrival:
		return "arrival"
	case StageLunchStart:
		return "lunch start"
	case StageLunchEnd:
		return "lunch end"
	case StageDeparture:
		return "departure"
	}
	return string(s)
}
