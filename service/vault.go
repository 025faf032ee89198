package service

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/velora-app/velora-api/entity"
	"github.com/velora-app/velora-api/exception"
	"github.com/velora-app/velora-api/i18n"
	"github.com/velora-app/velora-api/repository"
	"github.com/velora-app/velora-api/view"
)

type VaultService interface {
	AddEntry(ctx context.Context, lang string, userId string, req view.VaultEntryReq) (*view.VaultEntrySaved, error)
	ListEntries(ctx context.Context, userId string) ([]view.VaultEntry, error)
	GetEntry(ctx context.Context, userId string, entryId string) (*view.VaultEntry, error)
	UpdateEntry(ctx context.Context, lang string, userId string, entryId string, req view.VaultEntryReq) (*view.VaultEntrySaved, error)
	DeleteEntry(ctx context.Context, userId string, entryId string) error
}

func NewVaultService(vaultEntryRepository repository.VaultEntryRepository, strengthService StrengthService) VaultService {
	return &vaultServiceImpl{
		vaultEntryRepository: vaultEntryRepository,
		strengthService:      strengthService,
	}
}

type vaultServiceImpl struct {
	vaultEntryRepository repository.VaultEntryRepository
	strengthService      StrengthService
}

func (v vaultServiceImpl) AddEntry(ctx context.Context, lang string, userId string, req view.VaultEntryReq) (*view.VaultEntrySaved, error) {
	report := v.strengthService.Report(lang, req.Password)
	now := time.Now()
	ent := entity.VaultEntry{
		Id:        uuid.NewString(),
		UserId:    userId,
		Account:   req.Account,
		Username:  req.Username,
		Password:  req.Password,
		Strength:  report.Strength.String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := v.vaultEntryRepository.Save(ctx, ent); err != nil {
		return nil, err
	}
	log.Debugf("Vault entry %s saved for user %s with strength %s", ent.Id, userId, ent.Strength)
	return makeVaultEntrySaved(i18n.T(lang, "message.vault_added"), report, ent), nil
}

func (v vaultServiceImpl) ListEntries(ctx context.Context, userId string) ([]view.VaultEntry, error) {
	ents, err := v.vaultEntryRepository.FindByOwner(ctx, userId)
	if err != nil {
		return nil, err
	}
	result := make([]view.VaultEntry, 0, len(ents))
	for _, ent := range ents {
		result = append(result, entity.MakeVaultEntryView(ent))
	}
	return result, nil
}

func (v vaultServiceImpl) GetEntry(ctx context.Context, userId string, entryId string) (*view.VaultEntry, error) {
	ent, err := v.findOwned(ctx, userId, entryId)
	if err != nil || ent == nil {
		return nil, err
	}
	result := entity.MakeVaultEntryView(*ent)
	return &result, nil
}

func (v vaultServiceImpl) UpdateEntry(ctx context.Context, lang string, userId string, entryId string, req view.VaultEntryReq) (*view.VaultEntrySaved, error) {
	ent, err := v.findOwned(ctx, userId, entryId)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, vaultEntryNotFound(entryId)
	}
	report := v.strengthService.Report(lang, req.Password)
	ent.Account = req.Account
	ent.Username = req.Username
	ent.Password = req.Password
	ent.Strength = report.Strength.String()
	ent.UpdatedAt = time.Now()
	if err = v.vaultEntryRepository.Update(ctx, *ent); err != nil {
		return nil, err
	}
	return makeVaultEntrySaved(i18n.T(lang, "message.vault_updated"), report, *ent), nil
}

func (v vaultServiceImpl) DeleteEntry(ctx context.Context, userId string, entryId string) error {
	ent, err := v.findOwned(ctx, userId, entryId)
	if err != nil {
		return err
	}
	if ent == nil {
		return vaultEntryNotFound(entryId)
	}
	return v.vaultEntryRepository.Delete(ctx, entryId)
}

func (v vaultServiceImpl) findOwned(ctx context.Context, userId string, entryId string) (*entity.VaultEntry, error) {
	ent, err := v.vaultEntryRepository.FindById(ctx, entryId)
	if err != nil {
		return nil, err
	}
	if ent == nil || ent.UserId != userId {
		return nil, nil
	}
	return ent, nil
}

func makeVaultEntrySaved(message string, report view.StrengthReport, ent entity.VaultEntry) *view.VaultEntrySaved {
	return &view.VaultEntrySaved{
		Message:       message,
		Strength:      report.Strength,
		StrengthLabel: report.StrengthLabel,
		Suggestions:   report.Suggestions,
		Data:          entity.MakeVaultEntryView(ent),
	}
}

func vaultEntryNotFound(entryId string) error {
	return &exception.CustomError{
		Status:  http.StatusNotFound,
		Code:    exception.EntityNotFound,
		Message: exception.EntityNotFoundMsg,
		Params:  map[string]interface{}{"entity": "vault entry", "id": entryId},
	}
}
