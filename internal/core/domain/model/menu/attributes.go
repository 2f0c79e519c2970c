package menu

import (
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
)

// CookedType is how a dish is prepared.
type CookedType int

const (
	CookedUnknown CookedType = iota
	Fried
	Baked
	Grilled
	Mashed
	Roasted
	Boiled
	Steamed
	Scalloped
	Soupped
)

var cookedTypeNames = map[CookedType]string{
	Fried:     "Fried",
	Baked:     "Baked",
	Grilled:   "Grilled",
	Mashed:    "Mashed",
	Roasted:   "Roasted",
	Boiled:    "Boiled",
	Steamed:   "Steamed",
	Scalloped: "Scalloped",
	Soupped:   "Soupped",
}

func (c CookedType) String() string {
	if s, ok := cookedTypeNames[c]; ok {
		return s
	}
	return "Unknown"
}

func (c CookedType) Validate() error {
	if _, ok := cookedTypeNames[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("cooked type", fmt.Errorf("%d is not a valid cooked type", c))
	}
	return nil
}

// ParseCookedType accepts the names returned by String, case-insensitively.
func ParseCookedType(s string) (CookedType, error) {
	for c, name := range cookedTypeNames {
		if strings.EqualFold(name, s) {
			return c, nil
		}
	}
	return CookedUnknown, errs.NewValueIsInvalidErrorWithCause("cooked type", fmt.Errorf("%q is not a valid cooked type", s))
}

// PotatoType is the potato variety a dish is made from.
type PotatoType int

const (
	PotatoUnknown PotatoType = iota
	Russet
	NewPotato
	YukonGold
	Kennebec
	AllBlue
	AdirondackBlue
	RedBliss
	GermanButterball
	RedThumb
	RussianBanana
	PurplePeruvian
	JapaneseSweet
	HannahSweet
	JewelYams
)

var potatoTypeNames = map[PotatoType]string{
	Russet:           "Russet",
	NewPotato:        "New",
	YukonGold:        "YukonGold",
	Kennebec:         "Kennebec",
	AllBlue:          "AllBlue",
	AdirondackBlue:   "AdirondackBlue",
	RedBliss:         "RedBliss",
	GermanButterball: "GermanButterball",
	RedThumb:         "RedThumb",
	RussianBanana:    "RussianBanana",
	PurplePeruvian:   "PurplePeruvian",
	JapaneseSweet:    "JapaneseSweet",
	HannahSweet:      "HannahSweet",
	JewelYams:        "JewelYams",
}

func (p PotatoType) String() string {
	if s, ok := potatoTypeNames[p]; ok {
		return s
	}
	return "Unknown"
}

func (p PotatoType) Validate() error {
	if _, ok := potatoTypeNames[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("potato type", fmt.Errorf("%d is not a valid potato type", p))
	}
	return nil
}

func ParsePotatoType(s string) (PotatoType, error) {
	for p, name := range potatoTypeNames {
		if strings.EqualFold(name, s) {
			return p, nil
		}
	}
	return PotatoUnknown, errs.NewValueIsInvalidErrorWithCause("potato type", fmt.Errorf("%q is not a valid potato type", s))
}
