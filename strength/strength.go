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

// Package strength classifies candidate passwords into Weak, Medium or Strong
// by counting how many independent criteria they satisfy.
package strength

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type Level int

const (
	Weak Level = iota
	Medium
	Strong
)

func (l Level) String() string {
	switch l {
	case Weak:
		return "Weak"
	case Medium:
		return "Medium"
	case Strong:
		return "Strong"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	lvl, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = lvl
	return nil
}

func ParseLevel(s string) (Level, error) {
	switch s {
	case "Weak":
		return Weak, nil
	case "Medium":
		return Medium, nil
	case "Strong":
		return Strong, nil
	}
	return Weak, fmt.Errorf("unknown strength level %q", s)
}

type Criterion string

const (
	CriterionLength    Criterion = "length"
	CriterionUppercase Criterion = "uppercase"
	CriterionLowercase Criterion = "lowercase"
	CriterionDigit     Criterion = "digit"
	CriterionSymbol    Criterion = "symbol"
)

const MinLength = 8

// Symbols is the exact set accepted by CriterionSymbol.
const Symbols = `!@#$%^&*(),.?":{}|<>`

var suggestions = map[Criterion]string{
	CriterionLength:    "Password should be at least 8 characters long.",
	CriterionUppercase: "Add at least one uppercase letter.",
	CriterionLowercase: "Add at least one lowercase letter.",
	CriterionDigit:     "Add at least one digit.",
	CriterionSymbol:    "Add at least one special character.",
}

// Suggestion returns the fixed advisory text for an unmet criterion.
func Suggestion(c Criterion) string {
	return suggestions[c]
}

func (c Criterion) Met(candidate string) bool {
	switch c {
	case CriterionLength:
		return utf8.RuneCountInString(candidate) >= MinLength
	case CriterionUppercase:
		return containsRuneIn(candidate, 'A', 'Z')
	case CriterionLowercase:
		return containsRuneIn(candidate, 'a', 'z')
	case CriterionDigit:
		return containsRuneIn(candidate, '0', '9')
	case CriterionSymbol:
		return strings.ContainsAny(candidate, Symbols)
	}
	return false
}

func containsRuneIn(s string, lo, hi rune) bool {
	for _, r := range s {
		if r >= lo && r <= hi {
			return true
		}
	}
	return false
}
