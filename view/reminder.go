package view

import "time"

type ReminderStatus string

const (
	ReminderStatusPending     ReminderStatus = "pending"
	ReminderStatusUnscheduled ReminderStatus = "unscheduled"
	ReminderStatusFiring      ReminderStatus = "firing"
	ReminderStatusDelivered   ReminderStatus = "delivered"
	ReminderStatusFailed      ReminderStatus = "failed"
)

type Reminder struct {
	Id        string         `json:"id"`
	UserId    string         `json:"userId"`
	Note      string         `json:"note"`
	Time      string         `json:"time"`
	DueAt     *time.Time     `json:"dueAt,omitempty"`
	Status    ReminderStatus `json:"status"`
	Details   string         `json:"details,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

type ReminderCreateReq struct {
	Note string `json:"note" validate:"required,max=1024"`
	Time string `json:"time" validate:"required,max=64"`
}

type ReminderNotification struct {
	ReminderId string    `json:"reminderId"`
	UserId     string    `json:"userId"`
	Note       string    `json:"note"`
	Time       string    `json:"time"`
	DueAt      time.Time `json:"dueAt"`
}
