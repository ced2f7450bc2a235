package save

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/osse101/SimpleIG_Go/internal/domain"
	"github.com/osse101/SimpleIG_Go/internal/format"
)

// Record is the persisted form of a GameState. Transient fields are not part of it.
// Pointer fields distinguish "missing" from zero values when loading.
type Record struct {
	Version              int             `json:"version"`
	Points               *string         `json:"points" validate:"required,decimal_maxdigits=120,decimal_gte=0"`
	PrestigePoints       *string         `json:"prestigePoints" validate:"required,decimal_maxdigits=120,decimal_gte=0"`
	ClickValue           *string         `json:"clickValue" validate:"required,decimal_maxdigits=120,decimal_gte=1"`
	ClickCooldown        *float64        `json:"clickCooldown" validate:"required,gte=0.1,lte=2"`
	CooldownUpgradeLevel *int            `json:"cooldownUpgradeLevel" validate:"required,min=0,max=10"`
	ButtonUpgradeLevel   *int            `json:"buttonUpgradeLevel" validate:"required,min=0,max=1000"`
	CooldownUpgradePrice *string         `json:"cooldownUpgradePrice" validate:"required,decimal_maxdigits=120,decimal_gte=5"`
	ButtonUpgradePrice   *string         `json:"buttonUpgradePrice" validate:"required,decimal_maxdigits=120,decimal_gte=2"`
	PrestigeTree         map[string]bool `json:"prestigeTree" validate:"required"`
}

// Report describes what happened while decoding a stored record.
type Report struct {
	Version   int
	Migrated  bool
	Defaulted []string
	Discarded bool
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation(TagDecimalGTE, validateDecimalGTE)
		_ = v.RegisterValidation(TagDecimalMaxDigits, validateDecimalMaxDigits)
		validate = v
	})
	return validate
}

// validateDecimalGTE checks that a string field holds a decimal >= the tag parameter.
func validateDecimalGTE(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	limit, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}
	return d.GreaterThanOrEqual(limit)
}

// validateDecimalMaxDigits bounds the integer digits of a decimal string field.
// Honest play stays far below the bound; anything past it is a tampered record.
func validateDecimalMaxDigits(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return format.IntegerDigits(d) <= limit
}

// FromState builds the current-version record for a state.
func FromState(st domain.GameState) Record {
	cooldown := st.ClickCooldown.Round(domain.CooldownPrecision).InexactFloat64()
	return Record{
		Version:              CurrentVersion,
		Points:               ptr(st.Points.String()),
		PrestigePoints:       ptr(st.PrestigePoints.String()),
		ClickValue:           ptr(st.ClickValue.String()),
		ClickCooldown:        &cooldown,
		CooldownUpgradeLevel: ptr(st.CooldownUpgradeLevel),
		ButtonUpgradeLevel:   ptr(st.ButtonUpgradeLevel),
		CooldownUpgradePrice: ptr(st.CooldownUpgradePrice.String()),
		ButtonUpgradePrice:   ptr(st.ButtonUpgradePrice.String()),
		PrestigeTree: map[string]bool{
			string(domain.UnlockTwoX):      st.PrestigeTree.TwoX,
			string(domain.UnlockOneSecond): st.PrestigeTree.OneSecond,
			string(domain.UnlockFiveX):     st.PrestigeTree.FiveX,
			string(domain.UnlockGoldBomb):  st.PrestigeTree.GoldBomb,
		},
	}
}

// Encode serialises the persistent part of a state.
func Encode(st domain.GameState) ([]byte, error) {
	data, err := json.Marshal(FromState(st))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgEncodeFailed, err)
	}
	return data, nil
}

// Decode restores a state from a stored record. The returned state is always usable:
// fields that are missing or fail validation take their default value and are listed in
// the report. A payload that cannot be read at all yields a fresh state and an error
// wrapping domain.ErrInvalidSave.
func Decode(data []byte, now time.Time) (domain.GameState, Report, error) {
	fresh := domain.NewGameState(now)

	rec, report, err := parse(data)
	if err != nil {
		report.Discarded = true
		return fresh, report, err
	}

	st := fresh
	invalid := invalidFields(rec)

	setDecimal := func(field string, src *string, dst *decimal.Decimal) {
		if invalid[field] {
			report.Defaulted = append(report.Defaulted, field)
			return
		}
		*dst = decimal.RequireFromString(*src)
	}
	setInt := func(field string, src *int, dst *int) {
		if invalid[field] {
			report.Defaulted = append(report.Defaulted, field)
			return
		}
		*dst = *src
	}

	setDecimal(FieldPoints, rec.Points, &st.Points)
	setDecimal(FieldPrestigePoints, rec.PrestigePoints, &st.PrestigePoints)
	setDecimal(FieldClickValue, rec.ClickValue, &st.ClickValue)
	setDecimal(FieldCooldownUpgradePrice, rec.CooldownUpgradePrice, &st.CooldownUpgradePrice)
	setDecimal(FieldButtonUpgradePrice, rec.ButtonUpgradePrice, &st.ButtonUpgradePrice)
	setInt(FieldCooldownUpgradeLevel, rec.CooldownUpgradeLevel, &st.CooldownUpgradeLevel)
	setInt(FieldButtonUpgradeLevel, rec.ButtonUpgradeLevel, &st.ButtonUpgradeLevel)

	if invalid[FieldClickCooldown] {
		report.Defaulted = append(report.Defaulted, FieldClickCooldown)
	} else {
		st.ClickCooldown = decimal.NewFromFloat(*rec.ClickCooldown).Round(domain.CooldownPrecision)
	}

	if invalid[FieldPrestigeTree] {
		report.Defaulted = append(report.Defaulted, FieldPrestigeTree)
	} else {
		st.PrestigeTree = treeFromRecord(rec.PrestigeTree)
	}

	sort.Strings(report.Defaulted)
	st.ResetClickTimer(now)
	return st, report, nil
}

// parse reads the payload field by field so one malformed value does not discard the rest.
func parse(data []byte) (Record, Report, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return Record{}, Report{}, fmt.Errorf("%w: %s", domain.ErrInvalidSave, ErrMsgUnparseableRecord)
	}

	var rec Record
	var report Report

	if v, ok := raw[FieldVersion]; ok {
		if err := json.Unmarshal(v, &rec.Version); err != nil {
			return Record{}, report, fmt.Errorf("%w: %s", domain.ErrInvalidSave, ErrMsgBadVersion)
		}
	}
	report.Version = rec.Version
	if rec.Version > CurrentVersion || rec.Version < 0 {
		return Record{}, report, fmt.Errorf("%w: "+ErrMsgUnsupportedVersion, domain.ErrInvalidSave, rec.Version)
	}
	report.Migrated = rec.Version < CurrentVersion

	rec.Points = decimalField(raw[FieldPoints])
	rec.PrestigePoints = decimalField(raw[FieldPrestigePoints])
	rec.ClickValue = decimalField(raw[FieldClickValue])
	rec.CooldownUpgradePrice = decimalField(raw[FieldCooldownUpgradePrice])
	rec.ButtonUpgradePrice = decimalField(raw[FieldButtonUpgradePrice])
	rec.ClickCooldown = typedField[float64](raw[FieldClickCooldown])
	rec.CooldownUpgradeLevel = typedField[int](raw[FieldCooldownUpgradeLevel])
	rec.ButtonUpgradeLevel = typedField[int](raw[FieldButtonUpgradeLevel])

	if tree := raw[FieldPrestigeTree]; tree != nil {
		var generic map[string]any
		if err := json.Unmarshal(tree, &generic); err == nil && generic != nil {
			rec.PrestigeTree = make(map[string]bool, len(generic))
			for k, v := range generic {
				if b, ok := v.(bool); ok {
					rec.PrestigeTree[k] = b
				}
			}
		}
	}

	return rec, report, nil
}

// invalidFields runs struct validation and returns the JSON names of failing fields.
func invalidFields(rec Record) map[string]bool {
	invalid := make(map[string]bool)
	if err := getValidator().Struct(rec); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, e := range errs {
				invalid[e.Field()] = true
			}
		}
	}
	return invalid
}

// decimalField accepts a decimal encoded either as a JSON string or a JSON number.
func decimalField(raw json.RawMessage) *string {
	if raw == nil {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		s = n.String()
		return &s
	}
	return nil
}

func typedField[T any](raw json.RawMessage) *T {
	if raw == nil {
		return nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}

// treeFromRecord reads unlock flags, accepting the short legacy keys. Unknown keys are ignored.
func treeFromRecord(m map[string]bool) domain.PrestigeTree {
	var tree domain.PrestigeTree
	for name, owned := range m {
		u, err := domain.ParseUnlock(name)
		if err != nil || !owned {
			continue
		}
		switch u {
		case domain.UnlockTwoX:
			tree.TwoX = true
		case domain.UnlockOneSecond:
			tree.OneSecond = true
		case domain.UnlockFiveX:
			tree.FiveX = true
		case domain.UnlockGoldBomb:
			tree.GoldBomb = true
		}
	}
	return tree
}

func ptr[T any](v T) *T {
	return &v
}
