package strength

import "fmt"

// Policy lists the criteria a candidate is scored against, one point each,
// and the minimal scores for the Medium and Strong tiers.
type Policy struct {
	Name        string
	Criteria    []Criterion
	MediumScore int
	StrongScore int
	Suggest     bool
}

type Result struct {
	Level       Level       `json:"level"`
	Score       int         `json:"score"`
	Unmet       []Criterion `json:"unmet"`
	Suggestions []string    `json:"suggestions"`
}

const (
	PolicyCanonical  = "canonical"
	PolicySimplified = "simplified"
)

var Canonical = Policy{
	Name:        PolicyCanonical,
	Criteria:    []Criterion{CriterionLength, CriterionUppercase, CriterionLowercase, CriterionDigit, CriterionSymbol},
	MediumScore: 3,
	StrongScore: 5,
	Suggest:     true,
}

// Simplified is the three-criterion variant: no lowercase or symbol check and
// no suggestions.
var Simplified = Policy{
	Name:        PolicySimplified,
	Criteria:    []Criterion{CriterionLength, CriterionUppercase, CriterionDigit},
	MediumScore: 2,
	StrongScore: 3,
	Suggest:     false,
}

func PolicyByName(name string) (Policy, error) {
	switch name {
	case "", PolicyCanonical:
		return Canonical, nil
	case PolicySimplified:
		return Simplified, nil
	}
	return Policy{}, fmt.Errorf("unknown strength policy %q", name)
}

func (p Policy) Evaluate(candidate string) Result {
	res := Result{
		Unmet:       make([]Criterion, 0),
		Suggestions: make([]string, 0),
	}
	for _, c := range p.Criteria {
		if c.Met(candidate) {
			res.Score++
			continue
		}
		res.Unmet = append(res.Unmet, c)
		if p.Suggest {
			res.Suggestions = append(res.Suggestions, Suggestion(c))
		}
	}
	res.Level = p.level(res.Score)
	return res
}

func (p Policy) level(score int) Level {
	switch {
	case score >= p.StrongScore:
		return Strong
	case score >= p.MediumScore:
		return Medium
	default:
		return Weak
	}
}

// Evaluate scores candidate with the canonical five-criterion policy.
func Evaluate(candidate string) (Level, []string) {
	res := Canonical.Evaluate(candidate)
	return res.Level, res.Suggestions
}
