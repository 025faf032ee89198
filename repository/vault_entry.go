package repository

import (
	"context"
	"errors"

	"github.com/go-pg/pg/v10"
	"github.com/velora-app/velora-api/db"
	"github.com/velora-app/velora-api/entity"
)

type VaultEntryRepository interface {
	Save(ctx context.Context, ent entity.VaultEntry) error
	Update(ctx context.Context, ent entity.VaultEntry) error
	FindById(ctx context.Context, id string) (*entity.VaultEntry, error)
	FindByOwner(ctx context.Context, userId string) ([]entity.VaultEntry, error)
	Delete(ctx context.Context, id string) error
}

type vaultEntryRepositoryImpl struct {
	cp db.ConnectionProvider
}

func NewVaultEntryRepository(cp db.ConnectionProvider) VaultEntryRepository {
	return &vaultEntryRepositoryImpl{cp: cp}
}

func (r *vaultEntryRepositoryImpl) Save(ctx context.Context, ent entity.VaultEntry) error {
	_, err := r.cp.GetConnection().ModelContext(ctx, &ent).Insert()
	return err
}

func (r *vaultEntryRepositoryImpl) Update(ctx context.Context, ent entity.VaultEntry) error {
	_, err := r.cp.GetConnection().ModelContext(ctx, &ent).WherePK().Update()
	return err
}

func (r *vaultEntryRepositoryImpl) FindById(ctx context.Context, id string) (*entity.VaultEntry, error) {
	var ent entity.VaultEntry
	err := r.cp.GetConnection().ModelContext(ctx, &ent).Where("id = ?", id).Select()
	if err != nil {
		if errors.Is(err, pg.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &ent, nil
}

func (r *vaultEntryRepositoryImpl) FindByOwner(ctx context.Context, userId string) ([]entity.VaultEntry, error) {
	var entries []entity.VaultEntry
	err := r.cp.GetConnection().ModelContext(ctx, &entries).
		Where("user_id = ?", userId).
		Order("account ASC", "created_at ASC").
		Select()
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *vaultEntryRepositoryImpl) Delete(ctx context.Context, id string) error {
	_, err := r.cp.GetConnection().ModelContext(ctx, (*entity.VaultEntry)(nil)).Where("id = ?", id).Delete()
	return err
}
