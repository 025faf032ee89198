package view

import "time"

const AccessTokenCookieName = "velora-access-token"

type User struct {
	Id        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type RegisterReq struct {
	Email    string `json:"email" validate:"required,email,max=320"`
	Password string `json:"password" validate:"required,max=256"`
	FullName string `json:"fullName" validate:"required,max=256"`
}

type RegisterResp struct {
	Message string `json:"message"`
	UserId  string `json:"userId"`
}

type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResp struct {
	Message   string    `json:"message"`
	UserId    string    `json:"userId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}
