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
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shaj13/go-guardian/v2/auth"
	"github.com/shaj13/go-guardian/v2/auth/strategies/basic"
	"github.com/shaj13/go-guardian/v2/auth/strategies/token"
	"github.com/shaj13/go-guardian/v2/auth/strategies/union"
	"github.com/shaj13/libcache"
	_ "github.com/shaj13/libcache/lru"
	"github.com/velora-app/velora-api/service"
)

var strategy union.Union
var tokenService service.TokenService

func SetupGoGuardian(ts service.TokenService, userService service.UserService) error {
	if ts == nil {
		return fmt.Errorf("tokenService is nil")
	}
	if userService == nil {
		return fmt.Errorf("userService is nil")
	}
	tokenService = ts

	cache := libcache.LRU.New(1000)
	cache.SetTTL(time.Minute * 5)
	cache.RegisterOnExpired(func(key, _ interface{}) {
		cache.Delete(key)
	})

	validateToken := func(ctx context.Context, r *http.Request, tkn string) (auth.Info, time.Time, error) {
		return ts.ValidateToken(ctx, tkn)
	}
	authenticateBasic := func(ctx context.Context, r *http.Request, userName, password string) (auth.Info, error) {
		user, err := userService.Authenticate(ctx, userName, password)
		if err != nil {
			return nil, err
		}
		return auth.NewDefaultUser(user.Email, user.Id, []string{}, auth.Extensions{}), nil
	}

	bearerStrategy := token.New(validateToken, cache)
	cookieTokenStrategy := NewCookieTokenStrategy(ts)
	basicStrategy := basic.NewCached(authenticateBasic, cache)
	strategy = union.New(bearerStrategy, cookieTokenStrategy, basicStrategy)
	return nil
}
