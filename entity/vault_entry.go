package entity

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/velora-app/velora-api/strength"
	"github.com/velora-app/velora-api/view"
)

type VaultEntry struct {
	tableName struct{} `pg:"vault_entry"`

	Id        string    `pg:"id,pk,type:varchar"`
	UserId    string    `pg:"user_id,type:varchar,notnull"`
	Account   string    `pg:"account,type:varchar,notnull"`
	Username  string    `pg:"username,type:varchar"`
	Password  string    `pg:"password,type:varchar"`
	Strength  string    `pg:"strength,type:varchar,notnull"`
	CreatedAt time.Time `pg:"created_at,type:timestamp without time zone,notnull"`
	UpdatedAt time.Time `pg:"updated_at,type:timestamp without time zone,notnull"`
}

func MakeVaultEntryView(ent VaultEntry) view.VaultEntry {
	level, err := strength.ParseLevel(ent.Strength)
	if err != nil {
		log.Warnf("Vault entry %s has unexpected strength value: %v", ent.Id, err)
	}
	return view.VaultEntry{
		Id:        ent.Id,
		UserId:    ent.UserId,
		Account:   ent.Account,
		Username:  ent.Username,
		Password:  ent.Password,
		Strength:  level,
		CreatedAt: ent.CreatedAt,
		UpdatedAt: ent.UpdatedAt,
	}
}
