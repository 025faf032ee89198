package secctx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shaj13/go-guardian/v2/auth"
	"github.com/velora-app/velora-api/view"
)

func TestMakeUserContext_BearerToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	r.Header.Set("Authorization", "Bearer abc.def.ghi")
	r = auth.RequestWithUser(auth.NewDefaultUser("ada@example.com", "u-1", nil, nil), r)

	ctx := MakeUserContext(r)
	if GetUserId(ctx) != "u-1" {
		t.Fatalf("unexpected user id %q", GetUserId(ctx))
	}
	if GetUserName(ctx) != "ada@example.com" {
		t.Fatalf("unexpected user name %q", GetUserName(ctx))
	}
	if GetUserToken(ctx) != "abc.def.ghi" {
		t.Fatalf("unexpected token %q", GetUserToken(ctx))
	}
	if IsSystem(ctx) {
		t.Fatalf("user context must not be system")
	}
}

func TestGetAuthorizationToken_CookieFallback(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	r.AddCookie(&http.Cookie{Name: view.AccessTokenCookieName, Value: "cookie-token"})
	if got := GetAuthorizationToken(r); got != "cookie-token" {
		t.Fatalf("expected cookie token, got %q", got)
	}
	r.Header.Set("Authorization", "Basic Zm9vOmJhcg==")
	if got := GetAuthorizationToken(r); got != "cookie-token" {
		t.Fatalf("basic header must not be treated as a token, got %q", got)
	}
}

func TestEmptyContext(t *testing.T) {
	ctx := context.Background()
	if GetUserId(ctx) != "" || IsSystem(ctx) {
		t.Fatalf("empty context must carry no identity")
	}
	if !IsSystem(MakeSystemContext(ctx)) {
		t.Fatalf("system context expected")
	}
}
