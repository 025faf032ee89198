package entity

import (
	"time"

	"github.com/velora-app/velora-api/view"
)

type Task struct {
	tableName struct{} `pg:"task"`

	Id          string    `pg:"id,pk,type:varchar"`
	UserId      string    `pg:"user_id,type:varchar,notnull"`
	Title       string    `pg:"title,type:varchar,notnull"`
	Description string    `pg:"description,type:varchar"`
	Done        bool      `pg:"done,type:bool,use_zero"`
	CreatedAt   time.Time `pg:"created_at,type:timestamp without time zone,notnull"`
	UpdatedAt   time.Time `pg:"updated_at,type:timestamp without time zone,notnull"`
}

func MakeTaskView(ent Task) view.Task {
	return view.Task{
		Id:          ent.Id,
		UserId:      ent.UserId,
		Title:       ent.Title,
		Description: ent.Description,
		Done:        ent.Done,
		CreatedAt:   ent.CreatedAt,
		UpdatedAt:   ent.UpdatedAt,
	}
}
