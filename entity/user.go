package entity

import (
	"time"

	"github.com/velora-app/velora-api/view"
)

type User struct {
	tableName struct{} `pg:"velora_user"`

	Id           string    `pg:"id,pk,type:varchar"`
	Email        string    `pg:"email,type:varchar,notnull,unique"`
	PasswordHash string    `pg:"password_hash,type:varchar,notnull"`
	FullName     string    `pg:"full_name,type:varchar,notnull"`
	CreatedAt    time.Time `pg:"created_at,type:timestamp without time zone,notnull"`
}

func MakeUserView(ent User) view.User {
	return view.User{
		Id:        ent.Id,
		Email:     ent.Email,
		Name:      ent.FullName,
		CreatedAt: ent.CreatedAt,
	}
}
