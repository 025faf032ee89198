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

package service

import (
	"context"
	"fmt"

	"github.com/go-pg/pg/v10"
	log "github.com/sirupsen/logrus"
	"github.com/velora-app/velora-api/db"
	"github.com/velora-app/velora-api/entity"
)

type CleanupService interface {
	DeleteUserData(ctx context.Context, userId string) error
}

type cleanupServiceImpl struct {
	cp db.ConnectionProvider
}

func NewCleanupService(cp db.ConnectionProvider) CleanupService {
	return &cleanupServiceImpl{
		cp: cp,
	}
}

// DeleteUserData removes the account and everything it owns in one transaction.
func (s *cleanupServiceImpl) DeleteUserData(ctx context.Context, userId string) error {
	log.Debugf("Starting account cleanup for user %s", userId)

	return s.cp.GetConnection().RunInTransaction(ctx, func(tx *pg.Tx) error {
		res, err := tx.Model((*entity.Reminder)(nil)).
			Where("user_id = ?", userId).
			Delete()
		if err != nil {
			return fmt.Errorf("failed to delete reminder records: %w", err)
		}
		log.Debugf("Deleted %d reminder(s)", res.RowsAffected())

		res, err = tx.Model((*entity.VaultEntry)(nil)).
			Where("user_id = ?", userId).
			Delete()
		if err != nil {
			return fmt.Errorf("failed to delete vault_entry records: %w", err)
		}
		log.Debugf("Deleted %d vault entries", res.RowsAffected())

		res, err = tx.Model((*entity.Task)(nil)).
			Where("user_id = ?", userId).
			Delete()
		if err != nil {
			return fmt.Errorf("failed to delete task records: %w", err)
		}
		log.Debugf("Deleted %d task(s)", res.RowsAffected())

		_, err = tx.Model((*entity.User)(nil)).
			Where("id = ?", userId).
			Delete()
		if err != nil {
			return fmt.Errorf("failed to delete user record: %w", err)
		}

		log.Infof("Account %s deleted", userId)
		return nil
	})
}
