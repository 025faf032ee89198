package entity

import (
	"time"

	"github.com/velora-app/velora-api/view"
)

type Reminder struct {
	tableName struct{} `pg:"reminder"`

	Id         string              `pg:"id,pk,type:varchar"`
	UserId     string              `pg:"user_id,type:varchar,notnull"`
	Note       string              `pg:"note,type:varchar,notnull"`
	Time       string              `pg:"time,type:varchar,notnull"`
	DueAt      *time.Time          `pg:"due_at,type:timestamp without time zone"`
	Status     view.ReminderStatus `pg:"status,type:varchar,notnull"`
	Details    string              `pg:"details,type:varchar"`
	ExecutorId string              `pg:"executor_id,type:varchar"`
	CreatedAt  time.Time           `pg:"created_at,type:timestamp without time zone,notnull"`
	FiredAt    *time.Time          `pg:"fired_at,type:timestamp without time zone"`
}

func MakeReminderView(ent Reminder) view.Reminder {
	return view.Reminder{
		Id:        ent.Id,
		UserId:    ent.UserId,
		Note:      ent.Note,
		Time:      ent.Time,
		DueAt:     ent.DueAt,
		Status:    ent.Status,
		Details:   ent.Details,
		CreatedAt: ent.CreatedAt,
	}
}

func MakeReminderNotification(ent Reminder) view.ReminderNotification {
	n := view.ReminderNotification{
		ReminderId: ent.Id,
		UserId:     ent.UserId,
		Note:       ent.Note,
		Time:       ent.Time,
	}
	if ent.DueAt != nil {
		n.DueAt = *ent.DueAt
	}
	return n
}
