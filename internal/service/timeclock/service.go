package timeclock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/timeclock"
	"github.com/cmlabs-hris/timebank-backend-go/internal/pkg/utils"
	"github.com/google/uuid"
)

type PunchClockServiceImpl struct {
	timeclock.PunchRecordRepository
	employee.EmployeeRepository
	location *time.Location
	now      func() time.Time
}

func NewPunchClockService(
	punchRecordRepo timeclock.PunchRecordRepository,
	employeeRepo employee.EmployeeRepository,
	location *time.Location,
	now func() time.Time,
) timeclock.PunchClockService {
	if location == nil {
		location = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &PunchClockServiceImpl{
		PunchRecordRepository: punchRecordRepo,
		EmployeeRepository:    employeeRepo,
		location:              location,
		now:                   now,
	}
}

// ClockPunch implements timeclock.PunchClockService.
func (s *PunchClockServiceImpl) ClockPunch(ctx context.Context, req timeclock.ClockPunchRequest) (timeclock.ClockPunchResponse, error) {
	if err := req.Validate(); err != nil {
		return timeclock.ClockPunchResponse{}, err
	}

	nowLocal := s.now().In(s.location).Truncate(time.Second)
	date := utils.DateOf(nowLocal)
	if req.ParsedDate != nil {
		date = *req.ParsedDate
	}
	// The explicit date keeps the current wall-clock time.
	stamp := time.Date(date.Year(), date.Month(), date.Day(),
		nowLocal.Hour(), nowLocal.Minute(), nowLocal.Second(), 0, s.location)

	existing, err := s.PunchRecordRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return timeclock.ClockPunchResponse{}, fmt.Errorf("failed to load punch record: %w", err)
	}

	var saved timeclock.PunchRecord
	var stage timeclock.Stage

	if existing == nil {
		stage = timeclock.StageArrival
		record := timeclock.PunchRecord{
			ID:         uuid.Must(uuid.NewV7()).String(),
			EmployeeID: req.EmployeeID,
			Date:       date,
			Origin:     timeclock.OriginWeb,
			CreatedAt:  nowLocal.UTC(),
			UpdatedAt:  nowLocal.UTC(),
		}
		record.SetStage(stage, stamp, req.Coordinates())
		record.AppendNote(stage.Label() + " via button")

		saved, err = s.PunchRecordRepository.Create(ctx, record)
		if err != nil {
			if errors.Is(err, timeclock.ErrPunchRecordExists) {
				// Another first punch for the same day won the insert.
				return timeclock.ClockPunchResponse{}, timeclock.ErrConcurrentPunch
			}
			return timeclock.ClockPunchResponse{}, fmt.Errorf("failed to create punch record: %w", err)
		}
	} else {
		next, ok := existing.NextStage()
		if !ok {
			return timeclock.ClockPunchResponse{}, timeclock.ErrDayComplete
		}
		if last := existing.LastPunch(); last != nil && !stamp.After(*last) {
			return timeclock.ClockPunchResponse{}, timeclock.ErrPunchOutOfOrder
		}

		stage = next
		filled := existing.FilledCount()
		updated := *existing
		updated.SetStage(stage, stamp, req.Coordinates())
		updated.AppendNote(stage.Label() + " via button")
		updated.UpdatedAt = nowLocal.UTC()

		saved, err = s.PunchRecordRepository.AdvanceStage(ctx, updated, filled)
		if err != nil {
			if errors.Is(err, timeclock.ErrConcurrentPunch) {
				return timeclock.ClockPunchResponse{}, err
			}
			return timeclock.ClockPunchResponse{}, fmt.Errorf("failed to advance punch record: %w", err)
		}
	}

	filled := saved.FilledCount()
	slog.InfoContext(ctx, "punch recorded",
		"employee_id", saved.EmployeeID,
		"date", saved.Date.Format(utils.DateLayout),
		"stage", stage,
		"filled", filled,
	)

	return timeclock.ClockPunchResponse{
		RecordID:    saved.ID,
		Date:        saved.Date.Format(utils.DateLayout),
		Stage:       stage,
		FilledCount: filled,
		Remaining:   timeclock.TotalStages - filled,
		PunchedAt:   stamp.Format(time.RFC3339),
		Message:     fmt.Sprintf("%s recorded at %s", capitalize(stage.Label()), stamp.Format(utils.TimeLayout)),
	}, nil
}

// DayStatus implements timeclock.PunchClockService.
func (s *PunchClockServiceImpl) DayStatus(ctx context.Context, req timeclock.DayStatusRequest) (timeclock.DayStatusResponse, error) {
	if err := req.Validate(); err != nil {
		return timeclock.DayStatusResponse{}, err
	}

	date := utils.DateOf(s.now().In(s.location))
	if req.ParsedDate != nil {
		date = *req.ParsedDate
	}

	record, err := s.PunchRecordRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return timeclock.DayStatusResponse{}, fmt.Errorf("failed to load punch record: %w", err)
	}

	response := timeclock.DayStatusResponse{
		EmployeeID: req.EmployeeID,
		Date:       date.Format(utils.DateLayout),
		Remaining:  timeclock.TotalStages,
	}
	if record == nil {
		next := timeclock.StageArrival
		response.NextStage = &next
		response.Message = "no punches yet"
		return response, nil
	}

	response.FilledCount = record.FilledCount()
	response.Remaining = timeclock.TotalStages - response.FilledCount
	response.Arrival = s.formatTime(record.Arrival)
	response.LunchStart = s.formatTime(record.LunchStart)
	response.LunchEnd = s.formatTime(record.LunchEnd)
	response.Departure = s.formatTime(record.Departure)
	if next, ok := record.NextStage(); ok {
		response.NextStage = &next
		response.Message = fmt.Sprintf("next punch: %s", next.Label())
	} else {
		response.Message = "day complete"
	}

	return response, nil
}

// CreateManualPunchRecord implements timeclock.PunchClockService.
func (s *PunchClockServiceImpl) CreateManualPunchRecord(ctx context.Context, req timeclock.CreateManualPunchRequest) (timeclock.PunchRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return timeclock.PunchRecordResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return timeclock.PunchRecordResponse{}, err
	}

	existing, err := s.PunchRecordRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, req.ParsedDate)
	if err != nil {
		return timeclock.PunchRecordResponse{}, fmt.Errorf("failed to load punch record: %w", err)
	}
	if existing != nil {
		return timeclock.PunchRecordResponse{}, timeclock.ErrPunchRecordExists
	}

	now := s.now().UTC()
	record := timeclock.PunchRecord{
		ID:         uuid.Must(uuid.NewV7()).String(),
		EmployeeID: req.EmployeeID,
		Date:       req.ParsedDate,
		Origin:     timeclock.OriginManual,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	record.SetStage(timeclock.StageArrival, utils.AtTimeOfDay(req.ParsedDate, req.ArrivalOffset, s.location), nil)
	if req.LunchStartOffset != nil && req.LunchEndOffset != nil {
		record.SetStage(timeclock.StageLunchStart, utils.AtTimeOfDay(req.ParsedDate, *req.LunchStartOffset, s.location), nil)
		record.SetStage(timeclock.StageLunchEnd, utils.AtTimeOfDay(req.ParsedDate, *req.LunchEndOffset, s.location), nil)
	}
	record.SetStage(timeclock.StageDeparture, utils.AtTimeOfDay(req.ParsedDate, req.DepartureOffset, s.location), nil)
	record.AppendNote("manual entry")
	if req.Note != nil && *req.Note != "" {
		record.AppendNote(*req.Note)
	}

	saved, err := s.PunchRecordRepository.Create(ctx, record)
	if err != nil {
		if errors.Is(err, timeclock.ErrPunchRecordExists) {
			return timeclock.PunchRecordResponse{}, err
		}
		return timeclock.PunchRecordResponse{}, fmt.Errorf("failed to create punch record: %w", err)
	}

	slog.InfoContext(ctx, "manual punch record created",
		"employee_id", saved.EmployeeID,
		"date", saved.Date.Format(utils.DateLayout),
	)

	return s.toResponse(saved), nil
}

// ListPunchRecords implements timeclock.PunchClockService.
func (s *PunchClockServiceImpl) ListPunchRecords(ctx context.Context, req timeclock.ListPunchRecordsRequest) ([]timeclock.PunchRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	records, err := s.PunchRecordRepository.ListByEmployeeAndRange(ctx, req.EmployeeID, req.ParsedFrom, req.ParsedTo)
	if err != nil {
		return nil, fmt.Errorf("failed to list punch records: %w", err)
	}

	responses := make([]timeclock.PunchRecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, s.toResponse(record))
	}
	return responses, nil
}

func (s *PunchClockServiceImpl) toResponse(r timeclock.PunchRecord) timeclock.PunchRecordResponse {
	return timeclock.PunchRecordResponse{
		ID:               r.ID,
		EmployeeID:       r.EmployeeID,
		Date:             r.Date.Format(utils.DateLayout),
		Arrival:          s.formatTime(r.Arrival),
		LunchStart:       s.formatTime(r.LunchStart),
		LunchEnd:         s.formatTime(r.LunchEnd),
		Departure:        s.formatTime(r.Departure),
		ArrivalCoords:    r.ArrivalCoords,
		LunchStartCoords: r.LunchStartCoords,
		LunchEndCoords:   r.LunchEndCoords,
		DepartureCoords:  r.DepartureCoords,
		FilledCount:      r.FilledCount(),
		Origin:           r.Origin,
		Note:             r.Note,
		CreatedAt:        r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        r.UpdatedAt.Format(time.RFC3339),
	}
}

// formatTime renders a stage time in the business timezone.
func (s *PunchClockServiceImpl) formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.In(s.location).Format(time.RFC3339)
	return &formatted
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
