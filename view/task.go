package view

import "time"

type Task struct {
	Id          string    `json:"id"`
	UserId      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Done        bool      `json:"done"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type TaskCreateReq struct {
	Title       string `json:"title" validate:"required,max=256"`
	Description string `json:"description" validate:"max=4096"`
}

// TaskUpdateReq fields left nil keep their stored value.
type TaskUpdateReq struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=256"`
	Description *string `json:"description" validate:"omitempty,max=4096"`
	Done        *bool   `json:"done"`
}
