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

package security

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/shaj13/go-guardian/v2/auth"
	log "github.com/sirupsen/logrus"
	"github.com/velora-app/velora-api/controller"
	"github.com/velora-app/velora-api/exception"
	"github.com/velora-app/velora-api/secctx"
)

func Secure(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer recoverPanic(w)
		_, user, err := strategy.AuthenticateRequest(r)
		if err != nil {
			log.Debugf("Authorization failed(401): %+v", err)
			controller.RespondWithCustomError(w, &exception.CustomError{
				Status:  http.StatusUnauthorized,
				Message: http.StatusText(http.StatusUnauthorized),
				Debug:   fmt.Sprintf("%v", err),
			})
			return
		}
		// strategy caches validated credentials, so revocation is checked on every request
		if tkn := secctx.GetAuthorizationToken(r); tkn != "" {
			revoked, err := tokenService.IsRevoked(r.Context(), tkn)
			if err != nil {
				log.Errorf("Failed to check token revocation: %v", err)
				controller.RespondWithCustomError(w, &exception.CustomError{
					Status:  http.StatusInternalServerError,
					Message: http.StatusText(http.StatusInternalServerError),
					Debug:   err.Error(),
				})
				return
			}
			if revoked {
				controller.RespondWithCustomError(w, &exception.CustomError{
					Status:  http.StatusUnauthorized,
					Code:    exception.TokenRevoked,
					Message: exception.TokenRevokedMsg,
				})
				return
			}
		}

		userRevoked, err := tokenService.IsUserRevoked(r.Context(), user.GetID())
		if err != nil {
			log.Errorf("Failed to check account revocation: %v", err)
			controller.RespondWithCustomError(w, &exception.CustomError{
				Status:  http.StatusInternalServerError,
				Message: http.StatusText(http.StatusInternalServerError),
				Debug:   err.Error(),
			})
			return
		}
		if userRevoked {
			controller.RespondWithCustomError(w, &exception.CustomError{
				Status:  http.StatusUnauthorized,
				Code:    exception.AccountDeleted,
				Message: exception.AccountDeletedMsg,
				Params:  map[string]interface{}{"userId": user.GetID()},
			})
			return
		}

		r = auth.RequestWithUser(user, r)
		next.ServeHTTP(w, r)
	}
}

func NoSecure(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer recoverPanic(w)
		next.ServeHTTP(w, r)
	}
}

func recoverPanic(w http.ResponseWriter) {
	if err := recover(); err != nil {
		log.Errorf("Request failed with panic: %v", err)
		log.Tracef("Stacktrace: %v", string(debug.Stack()))
		controller.RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusInternalServerError,
			Message: http.StatusText(http.StatusInternalServerError),
			Debug:   fmt.Sprintf("%v", err),
		})
	}
}
