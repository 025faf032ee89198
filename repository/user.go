package repository

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/velora-app/velora-api/db"
	"github.com/velora-app/velora-api/entity"
	"github.com/velora-app/velora-api/exception"
)

type UserRepository interface {
	Save(ctx context.Context, ent entity.User) error
	FindById(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

type userRepositoryImpl struct {
	cp db.ConnectionProvider
}

func NewUserRepository(cp db.ConnectionProvider) UserRepository {
	return &userRepositoryImpl{cp: cp}
}

func (r *userRepositoryImpl) Save(ctx context.Context, ent entity.User) error {
	_, err := r.cp.GetConnection().ModelContext(ctx, &ent).Insert()
	if err != nil {
		var pgerr pg.Error
		if errors.As(err, &pgerr) && pgerr.Field('C') == "23505" { // unique_violation on velora_user.email
			return &exception.CustomError{
				Status:  http.StatusBadRequest,
				Code:    exception.UserEmailExists,
				Message: exception.UserEmailExistsMsg,
				Params:  map[string]interface{}{"email": ent.Email},
			}
		}
		return err
	}
	return nil
}

func (r *userRepositoryImpl) FindById(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	err := r.cp.GetConnection().ModelContext(ctx, &user).Where("id = ?", id).Select()
	if err != nil {
		if errors.Is(err, pg.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepositoryImpl) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.cp.GetConnection().ModelContext(ctx, &user).Where("lower(email) = lower(?)", email).Select()
	if err != nil {
		if errors.Is(err, pg.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
