package timeclock

import (
	"context"
)

// PunchClockService drives the four-stage punch state machine.
type PunchClockService interface {
	// ClockPunch fills the next stage of the day with the current time.
	ClockPunch(ctx context.Context, req ClockPunchRequest) (ClockPunchResponse, error)

	// DayStatus reports the punches recorded for a day.
	DayStatus(ctx context.Context, req DayStatusRequest) (DayStatusResponse, error)

	// CreateManualPunchRecord stores a full day entered by an administrator.
	CreateManualPunchRecord(ctx context.Context, req CreateManualPunchRequest) (PunchRecordResponse, error)

	// ListPunchRecords returns the stored records of an employee in a date range.
	ListPunchRecords(ctx context.Context, req ListPunchRecordsRequest) ([]PunchRecordResponse, error)
}
