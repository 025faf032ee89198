package service

import (
	log "github.com/sirupsen/logrus"
	"github.com/velora-app/velora-api/i18n"
	"github.com/velora-app/velora-api/strength"
	"github.com/velora-app/velora-api/view"
)

type StrengthService interface {
	Evaluate(password string) strength.Result
	Report(lang string, password string) view.StrengthReport
	PolicyName() string
}

func NewStrengthService(policyName string) (StrengthService, error) {
	policy, err := strength.PolicyByName(policyName)
	if err != nil {
		return nil, err
	}
	log.Infof("Password strength policy: %s (%d criteria)", policy.Name, len(policy.Criteria))
	return &strengthServiceImpl{policy: policy}, nil
}

type strengthServiceImpl struct {
	policy strength.Policy
}

func (s strengthServiceImpl) Evaluate(password string) strength.Result {
	return s.policy.Evaluate(password)
}

func (s strengthServiceImpl) Report(lang string, password string) view.StrengthReport {
	res := s.policy.Evaluate(password)
	return view.StrengthReport{
		Strength:      res.Level,
		StrengthLabel: i18n.LevelLabel(lang, res.Level),
		Score:         res.Score,
		MaxScore:      len(s.policy.Criteria),
		Policy:        s.policy.Name,
		Suggestions:   i18n.Suggestions(lang, res),
	}
}

func (s strengthServiceImpl) PolicyName() string {
	return s.policy.Name
}
