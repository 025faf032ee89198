package secctx

import (
	"context"
	"net/http"
	"strings"

	"github.com/shaj13/go-guardian/v2/auth"
	"github.com/velora-app/velora-api/view"
)

type secCtxKey struct{}

type securityContextImpl struct {
	userId   string
	userName string
	token    string
	isSystem bool
}

func MakeUserContext(r *http.Request) context.Context {
	user := auth.User(r)
	var userId, userName string
	if user != nil {
		userId = user.GetID()
		userName = user.GetUserName()
	}
	return NewUserContext(r.Context(), userId, userName, GetAuthorizationToken(r))
}

func NewUserContext(ctx context.Context, userId, userName, token string) context.Context {
	return context.WithValue(ctx, secCtxKey{}, securityContextImpl{
		userId:   userId,
		userName: userName,
		token:    token,
		isSystem: false,
	})
}

func MakeSystemContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, secCtxKey{}, securityContextImpl{userId: "system", isSystem: true})
}

// GetAuthorizationToken returns the bearer token, falling back to the access
// token cookie. Basic credentials yield an empty token.
func GetAuthorizationToken(r *http.Request) string {
	if token := getTokenFromAuthHeader(r); token != "" {
		return token
	}
	return getTokenFromCookie(r)
}

func getTokenFromAuthHeader(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[7:])
}

func getTokenFromCookie(r *http.Request) string {
	accessTokenCookie, err := r.Cookie(view.AccessTokenCookieName)
	if err != nil {
		return ""
	}
	return accessTokenCookie.Value
}

func get(ctx context.Context) (securityContextImpl, bool) {
	val, ok := ctx.Value(secCtxKey{}).(securityContextImpl)
	return val, ok
}

func IsSystem(ctx context.Context) bool {
	val, _ := get(ctx)
	return val.isSystem
}

func GetUserId(ctx context.Context) string {
	val, _ := get(ctx)
	return val.userId
}

func GetUserName(ctx context.Context) string {
	val, _ := get(ctx)
	return val.userName
}

func GetUserToken(ctx context.Context) string {
	val, _ := get(ctx)
	return val.token
}
