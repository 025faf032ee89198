package repository

import (
	"context"
	"errors"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/velora-app/velora-api/db"
	"github.com/velora-app/velora-api/entity"
	"github.com/velora-app/velora-api/view"
)

type ReminderRepository interface {
	Save(ctx context.Context, ent entity.Reminder) error
	FindById(ctx context.Context, id string) (*entity.Reminder, error)
	FindByOwner(ctx context.Context, userId string) ([]entity.Reminder, error)
	Delete(ctx context.Context, id string) error

	// ClaimDue moves up to limit pending reminders with due_at <= now into
	// the firing status, owned by executorId, and returns them.
	ClaimDue(ctx context.Context, now time.Time, executorId string, limit int) ([]entity.Reminder, error)
	UpdateStatusAndDetails(ctx context.Context, id string, status view.ReminderStatus, details string) error
	// ReleaseStale returns reminders stuck in firing since before cutoff to pending.
	ReleaseStale(ctx context.Context, cutoff time.Time) (int, error)
}

type reminderRepositoryImpl struct {
	cp db.ConnectionProvider
}

func NewReminderRepository(cp db.ConnectionProvider) ReminderRepository {
	return &reminderRepositoryImpl{cp: cp}
}

func (r *reminderRepositoryImpl) Save(ctx context.Context, ent entity.Reminder) error {
	_, err := r.cp.GetConnection().ModelContext(ctx, &ent).Insert()
	return err
}

func (r *reminderRepositoryImpl) FindById(ctx context.Context, id string) (*entity.Reminder, error) {
	var ent entity.Reminder
	err := r.cp.GetConnection().ModelContext(ctx, &ent).Where("id = ?", id).Select()
	if err != nil {
		if errors.Is(err, pg.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &ent, nil
}

func (r *reminderRepositoryImpl) FindByOwner(ctx context.Context, userId string) ([]entity.Reminder, error) {
	var reminders []entity.Reminder
	err := r.cp.GetConnection().ModelContext(ctx, &reminders).
		Where("user_id = ?", userId).
		OrderExpr("due_at ASC NULLS LAST, created_at ASC").
		Select()
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *reminderRepositoryImpl) Delete(ctx context.Context, id string) error {
	_, err := r.cp.GetConnection().ModelContext(ctx, (*entity.Reminder)(nil)).Where("id = ?", id).Delete()
	return err
}

func (r *reminderRepositoryImpl) ClaimDue(ctx context.Context, now time.Time, executorId string, limit int) ([]entity.Reminder, error) {
	var reminders []entity.Reminder

	err := r.cp.GetConnection().RunInTransaction(ctx, func(tx *pg.Tx) error {
		err := tx.ModelContext(ctx, &reminders).
			Where("status = ?", view.ReminderStatusPending).
			Where("due_at <= ?", now).
			Order("due_at ASC").
			For("UPDATE SKIP LOCKED").
			Limit(limit).
			Select()
		if err != nil {
			return err
		}
		if len(reminders) == 0 {
			return nil
		}

		ids := make([]string, 0, len(reminders))
		for _, rem := range reminders {
			ids = append(ids, rem.Id)
		}
		_, err = tx.ModelContext(ctx, (*entity.Reminder)(nil)).
			Set("status = ?", view.ReminderStatusFiring).
			Set("executor_id = ?", executorId).
			Set("fired_at = ?", now).
			Where("id IN (?)", pg.In(ids)).
			Update()
		if err != nil {
			return err
		}
		for i := range reminders {
			reminders[i].Status = view.ReminderStatusFiring
			reminders[i].ExecutorId = executorId
			reminders[i].FiredAt = &now
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *reminderRepositoryImpl) UpdateStatusAndDetails(ctx context.Context, id string, status view.ReminderStatus, details string) error {
	_, err := r.cp.GetConnection().ModelContext(ctx, (*entity.Reminder)(nil)).
		Set("status = ?", status).
		Set("details = ?", details).
		Where("id = ?", id).
		Update()
	return err
}

func (r *reminderRepositoryImpl) ReleaseStale(ctx context.Context, cutoff time.Time) (int, error) {
	res, err := r.cp.GetConnection().ModelContext(ctx, (*entity.Reminder)(nil)).
		Set("status = ?", view.ReminderStatusPending).
		Set("executor_id = NULL").
		Where("status = ?", view.ReminderStatusFiring).
		Where("fired_at < ?", cutoff).
		Update()
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}
