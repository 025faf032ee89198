// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package controller

import (
	"net/http"

	"github.com/velora-app/velora-api/secctx"
	"github.com/velora-app/velora-api/service"
)

type CleanupController interface {
	DeleteAccount(w http.ResponseWriter, r *http.Request)
}

type cleanupControllerImpl struct {
	cleanupService       service.CleanupService
	authorizationService service.AuthorizationService
	tokenService         service.TokenService
}

func NewCleanupController(cleanupService service.CleanupService, authorizationService service.AuthorizationService, tokenService service.TokenService) CleanupController {
	return &cleanupControllerImpl{
		cleanupService:       cleanupService,
		authorizationService: authorizationService,
		tokenService:         tokenService,
	}
}

func (c cleanupControllerImpl) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userId := getStringParam(r, "userId")
	if !checkOwnerAccess(w, r, c.authorizationService, userId) {
		return
	}
	ctx := secctx.MakeUserContext(r)
	if err := c.cleanupService.DeleteUserData(ctx, userId); err != nil {
		respondWithError(w, "Failed to delete account", err)
		return
	}
	if err := c.tokenService.RevokeUser(ctx, userId); err != nil {
		respondWithError(w, "Failed to revoke account credentials", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
