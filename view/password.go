package view

import (
	"time"

	"github.com/velora-app/velora-api/strength"
)

type VaultEntry struct {
	Id        string         `json:"id"`
	UserId    string         `json:"userId"`
	Account   string         `json:"account"`
	Username  string         `json:"username"`
	Password  string         `json:"password"`
	Strength  strength.Level `json:"strength"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type VaultEntryReq struct {
	Account  string `json:"account" validate:"required,max=256"`
	Username string `json:"username" validate:"max=256"`
	Password string `json:"password"`
}

type VaultEntrySaved struct {
	Message       string         `json:"message"`
	Strength      strength.Level `json:"strength"`
	StrengthLabel string         `json:"strengthLabel"`
	Suggestions   []string       `json:"suggestions"`
	Data          VaultEntry     `json:"data"`
}
