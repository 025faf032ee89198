package view

import "github.com/velora-app/velora-api/strength"

type StrengthReq struct {
	Password string `json:"password"`
}

type StrengthReport struct {
	Strength      strength.Level `json:"strength"`
	StrengthLabel string         `json:"strengthLabel"`
	Score         int            `json:"score"`
	MaxScore      int            `json:"maxScore"`
	Policy        string         `json:"policy"`
	Suggestions   []string       `json:"suggestions"`
}
