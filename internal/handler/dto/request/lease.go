package request

import (
	"bus-seat-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type LockSeatsRequest struct {
	ScheduleID  int64    `json:"scheduleId" binding:"required,gt=0"`
	JourneyDate string   `json:"journeyDate" binding:"required,journeydate"`
	SeatNumbers []string `json:"seatNumbers" binding:"required,min=1,max=60,dive,seatnumber"`
	SessionID   string   `json:"sessionId" binding:"omitempty,max=128"`
}

func (r LockSeatsRequest) ToCommand(userID uuid.UUID) commands.AcquireLeaseRequest {
	return commands.AcquireLeaseRequest{
		ScheduleID:  r.ScheduleID,
		JourneyDate: r.JourneyDate,
		SeatNumbers: r.SeatNumbers,
		SessionID:   r.SessionID,
		UserID:      userID,
	}
}

type UnlockSeatsRequest struct {
	ScheduleID  int64    `json:"scheduleId" binding:"required,gt=0"`
	JourneyDate string   `json:"journeyDate" binding:"required,journeydate"`
	SeatNumbers []string `json:"seatNumbers" binding:"required,min=1,max=60,dive,seatnumber"`
	SessionID   string   `json:"sessionId" binding:"required,max=128"`
}

func (r UnlockSeatsRequest) ToCommand() commands.ReleaseLeaseRequest {
	return commands.ReleaseLeaseRequest{
		ScheduleID:  r.ScheduleID,
		JourneyDate: r.JourneyDate,
		SeatNumbers: r.SeatNumbers,
		SessionID:   r.SessionID,
	}
}

type CheckLocksQuery struct {
	ScheduleID  int64  `form:"scheduleId" binding:"required,gt=0"`
	JourneyDate string `form:"journeyDate" binding:"required,journeydate"`
}
