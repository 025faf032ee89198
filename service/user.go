package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/velora-app/velora-api/entity"
	"github.com/velora-app/velora-api/exception"
	"github.com/velora-app/velora-api/repository"
	"github.com/velora-app/velora-api/view"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(ctx context.Context, req view.RegisterReq) (*view.User, error)
	Authenticate(ctx context.Context, email string, password string) (*view.User, error)
	GetUser(ctx context.Context, id string) (*view.User, error)
}

func NewUserService(userRepository repository.UserRepository) UserService {
	return &userServiceImpl{userRepository: userRepository, hashCost: bcrypt.DefaultCost}
}

type userServiceImpl struct {
	userRepository repository.UserRepository
	hashCost       int
}

func (u userServiceImpl) Register(ctx context.Context, req view.RegisterReq) (*view.User, error) {
	email := strings.TrimSpace(req.Email)
	existing, err := u.userRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.UserEmailExists,
			Message: exception.UserEmailExistsMsg,
			Params:  map[string]interface{}{"email": email},
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), u.hashCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, &exception.CustomError{
				Status:  http.StatusBadRequest,
				Code:    exception.ValidationFailed,
				Message: exception.ValidationFailedMsg,
				Params:  map[string]interface{}{"fields": "password"},
				Debug:   err.Error(),
			}
		}
		return nil, err
	}
	ent := entity.User{
		Id:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(req.FullName),
		CreatedAt:    time.Now(),
	}
	if err = u.userRepository.Save(ctx, ent); err != nil {
		return nil, err
	}
	log.Infof("User %s registered", ent.Id)
	result := entity.MakeUserView(ent)
	return &result, nil
}

func (u userServiceImpl) Authenticate(ctx context.Context, email string, password string) (*view.User, error) {
	invalidCredentials := &exception.CustomError{
		Status:  http.StatusUnauthorized,
		Code:    exception.InvalidCredentials,
		Message: exception.InvalidCredentialsMsg,
	}
	ent, err := u.userRepository.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, invalidCredentials
	}
	if err = bcrypt.CompareHashAndPassword([]byte(ent.PasswordHash), []byte(password)); err != nil {
		log.Debugf("Password mismatch for user %s", ent.Id)
		return nil, invalidCredentials
	}
	result := entity.MakeUserView(*ent)
	return &result, nil
}

func (u userServiceImpl) GetUser(ctx context.Context, id string) (*view.User, error) {
	ent, err := u.userRepository.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, nil
	}
	result := entity.MakeUserView(*ent)
	return &result, nil
}
