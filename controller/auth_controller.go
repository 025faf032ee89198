package controller

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/velora-app/velora-api/i18n"
	"github.com/velora-app/velora-api/secctx"
	"github.com/velora-app/velora-api/service"
	"github.com/velora-app/velora-api/view"
)

type AuthController interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	GetCurrentUser(w http.ResponseWriter, r *http.Request)
}

func NewAuthController(userService service.UserService, tokenService service.TokenService, secureCookie bool) AuthController {
	return &authControllerImpl{
		userService:  userService,
		tokenService: tokenService,
		secureCookie: secureCookie,
	}
}

type authControllerImpl struct {
	userService  service.UserService
	tokenService service.TokenService
	secureCookie bool
}

func (a authControllerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req view.RegisterReq
	if !decodeAndValidate(w, r, &req) {
		return
	}
	user, err := a.userService.Register(r.Context(), req)
	if err != nil {
		respondWithError(w, "Failed to register user", err)
		return
	}
	respondWithJson(w, http.StatusCreated, view.RegisterResp{
		Message: i18n.T(getLang(r), "message.welcome"),
		UserId:  user.Id,
	})
}

func (a authControllerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req view.LoginReq
	if !decodeAndValidate(w, r, &req) {
		return
	}
	user, err := a.userService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(w, "Failed to authenticate user", err)
		return
	}
	token, err := a.tokenService.IssueToken(*user)
	if err != nil {
		respondWithError(w, "Failed to issue access token", err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     view.AccessTokenCookieName,
		Value:    token.Token,
		Path:     "/",
		Expires:  token.ExpiresAt,
		HttpOnly: true,
		Secure:   a.secureCookie,
		SameSite: http.SameSiteStrictMode,
	})
	respondWithJson(w, http.StatusOK, view.LoginResp{
		Message:   i18n.T(getLang(r), "message.login_ok"),
		UserId:    user.Id,
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
	})
}

func (a authControllerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if token := secctx.GetAuthorizationToken(r); token != "" {
		if err := a.tokenService.RevokeToken(r.Context(), token); err != nil {
			respondWithError(w, "Failed to revoke access token", err)
			return
		}
	} else {
		log.Debugf("Logout without bearer token for user %s", secctx.GetUserId(secctx.MakeUserContext(r)))
	}
	http.SetCookie(w, &http.Cookie{
		Name:     view.AccessTokenCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   a.secureCookie,
		SameSite: http.SameSiteStrictMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (a authControllerImpl) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := secctx.MakeUserContext(r)
	userId := secctx.GetUserId(ctx)
	user, err := a.userService.GetUser(ctx, userId)
	if err != nil {
		respondWithError(w, "Failed to get current user", err)
		return
	}
	if user == nil {
		respondNotFound(w, "user", userId)
		return
	}
	respondWithJson(w, http.StatusOK, user)
}
