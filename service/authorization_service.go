package service

import (
	"context"

	"github.com/velora-app/velora-api/secctx"
)

type AuthorizationService interface {
	HasOwnerAccess(ctx context.Context, userId string) (bool, error)
}

func NewAuthorizationService() AuthorizationService {
	return &authorizationServiceImpl{}
}

type authorizationServiceImpl struct{}

// HasOwnerAccess reports whether the caller is the owner of userId's data.
func (a authorizationServiceImpl) HasOwnerAccess(ctx context.Context, userId string) (bool, error) {
	if secctx.IsSystem(ctx) {
		return true, nil
	}
	callerId := secctx.GetUserId(ctx)
	return callerId != "" && callerId == userId, nil
}
