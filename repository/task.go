package repository

import (
	"context"
	"errors"

	"github.com/go-pg/pg/v10"
	"github.com/velora-app/velora-api/db"
	"github.com/velora-app/velora-api/entity"
)

type TaskRepository interface {
	Save(ctx context.Context, ent entity.Task) error
	Update(ctx context.Context, ent entity.Task) error
	FindById(ctx context.Context, id string) (*entity.Task, error)
	FindByOwner(ctx context.Context, userId string) ([]entity.Task, error)
	Delete(ctx context.Context, id string) error
}

type taskRepositoryImpl struct {
	cp db.ConnectionProvider
}

func NewTaskRepository(cp db.ConnectionProvider) TaskRepository {
	return &taskRepositoryImpl{cp: cp}
}

func (r *taskRepositoryImpl) Save(ctx context.Context, ent entity.Task) error {
	_, err := r.cp.GetConnection().ModelContext(ctx, &ent).Insert()
	return err
}

func (r *taskRepositoryImpl) Update(ctx context.Context, ent entity.Task) error {
	_, err := r.cp.GetConnection().ModelContext(ctx, &ent).WherePK().Update()
	return err
}

func (r *taskRepositoryImpl) FindById(ctx context.Context, id string) (*entity.Task, error) {
	var task entity.Task
	err := r.cp.GetConnection().ModelContext(ctx, &task).Where("id = ?", id).Select()
	if err != nil {
		if errors.Is(err, pg.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *taskRepositoryImpl) FindByOwner(ctx context.Context, userId string) ([]entity.Task, error) {
	var tasks []entity.Task
	err := r.cp.GetConnection().ModelContext(ctx, &tasks).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Select()
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepositoryImpl) Delete(ctx context.Context, id string) error {
	_, err := r.cp.GetConnection().ModelContext(ctx, (*entity.Task)(nil)).Where("id = ?", id).Delete()
	return err
}
