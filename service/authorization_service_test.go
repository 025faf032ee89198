package service

import (
	"context"
	"testing"

	"github.com/velora-app/velora-api/secctx"
)

func TestHasOwnerAccess(t *testing.T) {
	svc := NewAuthorizationService()
	userCtx := secctx.NewUserContext(context.Background(), "u1", "ada@example.com", "")

	if ok, _ := svc.HasOwnerAccess(userCtx, "u1"); !ok {
		t.Fatalf("owner must have access")
	}
	if ok, _ := svc.HasOwnerAccess(userCtx, "u2"); ok {
		t.Fatalf("other user must not have access")
	}
	if ok, _ := svc.HasOwnerAccess(context.Background(), ""); ok {
		t.Fatalf("anonymous context must not have access")
	}
	if ok, _ := svc.HasOwnerAccess(secctx.MakeSystemContext(context.Background()), "u2"); !ok {
		t.Fatalf("system context must have access")
	}
}
