package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/timebank"
	"github.com/cmlabs-hris/timebank-backend-go/internal/domain/timeclock"
	"github.com/cmlabs-hris/timebank-backend-go/internal/pkg/utils"
	"github.com/google/uuid"
)

type generator struct {
	location *time.Location
	now      time.Time
}

func (g generator) employee(role employee.Role) employee.Employee {
	name := gofakeit.Name()
	hire := gofakeit.DateRange(g.now.AddDate(-6, 0, 0), g.now.AddDate(0, -1, 0))

	return employee.Employee{
		ID:               uuid.Must(uuid.NewV7()).String(),
		FullName:         name,
		Email:            strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
		Role:             role,
		HireDate:         utils.DateOf(hire),
		EmploymentStatus: employee.EmploymentStatusActive,
		CreatedAt:        g.now,
		UpdatedAt:        g.now,
	}
}

// schedule gives most employees the default week and some a part-time one.
func (g generator) schedule(employeeID string) schedule.WeeklySchedule {
	daily := schedule.DefaultWorkdayMinutes
	if gofakeit.Number(1, 4) == 1 {
		daily = 360
	}
	return schedule.WeeklySchedule{
		ID:               uuid.Must(uuid.NewV7()).String(),
		EmployeeID:       employeeID,
		MondayMinutes:    daily,
		TuesdayMinutes:   daily,
		WednesdayMinutes: daily,
		ThursdayMinutes:  daily,
		FridayMinutes:    daily,
		CreatedAt:        g.now,
		UpdatedAt:        g.now,
	}
}

// month returns one punch record per scheduled day of competency. Days are
// sometimes skipped or left half punched.
func (g generator) month(employeeID string, sched schedule.WeeklySchedule, competency timebank.Competency) []timeclock.PunchRecord {
	var records []timeclock.PunchRecord
	for d := competency.FirstDay(); !d.After(competency.LastDay()); d = d.AddDate(0, 0, 1) {
		expected := sched.MinutesFor(d.Weekday())
		if expected == 0 || gofakeit.Number(1, 20) == 1 {
			continue
		}
		records = append(records, g.day(employeeID, d, expected))
	}
	return records
}

func (g generator) day(employeeID string, date time.Time, expectedMinutes int) timeclock.PunchRecord {
	record := timeclock.PunchRecord{
		ID:         uuid.Must(uuid.NewV7()).String(),
		EmployeeID: employeeID,
		Date:       date,
		Origin:     timeclock.OriginManual,
		CreatedAt:  g.now,
		UpdatedAt:  g.now,
	}

	arrival := utils.AtTimeOfDay(date, 8*time.Hour, g.location).Add(jitter(30))
	lunch := time.Hour
	if expectedMinutes < 480 {
		lunch = 0
	}
	lunchStart := arrival.Add(4 * time.Hour).Add(jitter(15))
	departure := arrival.Add(time.Duration(expectedMinutes)*time.Minute + lunch).Add(jitter(45))

	record.SetStage(timeclock.StageArrival, arrival, nil)
	if lunch > 0 {
		record.SetStage(timeclock.StageLunchStart, lunchStart, nil)
		record.SetStage(timeclock.StageLunchEnd, lunchStart.Add(lunch).Add(jitter(10)), nil)
	}
	// A forgotten departure leaves the day without worked time.
	if gofakeit.Number(1, 25) > 1 {
		record.SetStage(timeclock.StageDeparture, departure, nil)
	}
	record.AppendNote(fmt.Sprintf("seeded for %s", date.Format(utils.DateLayout)))
	return record
}

// jitter returns a random offset in [-maxMinutes, maxMinutes] minutes.
func jitter(maxMinutes int) time.Duration {
	return time.Duration(gofakeit.Number(-maxMinutes, maxMinutes)) * time.Minute
}
