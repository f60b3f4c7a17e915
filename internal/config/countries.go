package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v2"

	"github.com/theirongolddev/lifecost/internal/model"
)

//go:embed countries.yaml
var embeddedCountries []byte

// ErrInvalidProfile is returned when a country table fails validation.
var ErrInvalidProfile = errors.New("invalid country profile")

type countryTable struct {
	Countries []countryDoc `yaml:"countries"`
}

type countryDoc struct {
	Code           string              `yaml:"code"`
	Name           string              `yaml:"name"`
	CurrencySymbol string              `yaml:"currency_symbol"`
	Decimals       int                 `yaml:"decimals"`
	Fields         map[string]rangeDoc `yaml:"fields"`
	Extras         []extraDoc          `yaml:"extras"`
}

type rangeDoc struct {
	Default float64  `yaml:"default"`
	Min     float64  `yaml:"min"`
	Max     *float64 `yaml:"max"`
	Step    float64  `yaml:"step"`
}

type extraDoc struct {
	Key      string   `yaml:"key"`
	Category string   `yaml:"category"`
	Label    string   `yaml:"label"`
	Default  float64  `yaml:"default"`
	Min      float64  `yaml:"min"`
	Max      *float64 `yaml:"max"`
	Step     float64  `yaml:"step"`
}

// DefaultProfiles returns the built-in country table.
func DefaultProfiles() ([]model.Profile, error) {
	return parseProfiles(embeddedCountries)
}

// LoadProfiles builds the effective country table: the built-in countries,
// then the countries in extraPath (if set) added or replaced by code, then
// per-country default overrides.
func LoadProfiles(extraPath string, overrides Overrides) ([]model.Profile, error) {
	profiles, err := DefaultProfiles()
	if err != nil {
		return nil, fmt.Errorf("built-in countries: %w", err)
	}

	if extraPath != "" {
		data, err := os.ReadFile(extraPath) //nolint:gosec // user-supplied profiles file
		if err != nil {
			return nil, fmt.Errorf("reading profiles: %w", err)
		}
		extra, err := parseProfiles(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", extraPath, err)
		}
		profiles = mergeProfiles(profiles, extra)
	}

	if err := applyOverrides(profiles, overrides); err != nil {
		return nil, err
	}
	if err := validateProfiles(profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func parseProfiles(data []byte) ([]model.Profile, error) {
	var table countryTable
	if err := yaml.UnmarshalStrict(data, &table); err != nil {
		return nil, fmt.Errorf("parsing countries: %w", err)
	}

	profiles := make([]model.Profile, 0, len(table.Countries))
	for _, doc := range table.Countries {
		p, err := doc.profile()
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := validateProfiles(profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (d countryDoc) profile() (model.Profile, error) {
	p := model.Profile{
		Code:           strings.ToLower(strings.TrimSpace(d.Code)),
		Name:           strings.TrimSpace(d.Name),
		CurrencySymbol: d.CurrencySymbol,
		Decimals:       d.Decimals,
	}
	if p.Code == "" {
		return p, fmt.Errorf("%w: country without code", ErrInvalidProfile)
	}
	if p.Name == "" {
		p.Name = strings.ToUpper(p.Code)
	}

	known := StandardFieldKeys()
	for key := range d.Fields {
		if !lo.Contains(known, key) {
			return p, fmt.Errorf("%w: %s: unknown field %q", ErrInvalidProfile, p.Code, key)
		}
	}

	for _, tpl := range standardFields {
		if tpl.key == model.FieldTaxRate {
			for _, x := range d.Extras {
				p.Fields = append(p.Fields, model.Field{
					Key:     x.Key,
					Label:   x.Label,
					Section: p.Name + " Specific Expenses",
					Kind:    model.KindMoney,
					Default: x.Default,
					Min:     x.Min,
					Max:     lo.FromPtr(x.Max),
					HasMax:  x.Max != nil,
					Step:    x.Step,
				})
				p.Extras = append(p.Extras, model.ExtraExpense{Key: x.Key, Category: x.Category})
			}
		}

		r, ok := d.Fields[tpl.key]
		if !ok {
			return p, fmt.Errorf("%w: %s: missing field %q", ErrInvalidProfile, p.Code, tpl.key)
		}
		p.Fields = append(p.Fields, model.Field{
			Key:     tpl.key,
			Label:   tpl.label,
			Section: tpl.section,
			Kind:    tpl.kind,
			Default: r.Default,
			Min:     r.Min,
			Max:     lo.FromPtr(r.Max),
			HasMax:  r.Max != nil,
			Step:    r.Step,
		})
	}
	return p, nil
}

// mergeProfiles replaces base entries with same-code entries from extra and
// appends the rest.
func mergeProfiles(base, extra []model.Profile) []model.Profile {
	out := append([]model.Profile(nil), base...)
	for _, p := range extra {
		_, idx, found := lo.FindIndexOf(out, func(b model.Profile) bool { return b.Code == p.Code })
		if found {
			out[idx] = p
			continue
		}
		out = append(out, p)
	}
	return out
}

func applyOverrides(profiles []model.Profile, overrides Overrides) error {
	for code, fields := range overrides {
		_, pi, found := lo.FindIndexOf(profiles, func(p model.Profile) bool { return p.Matches(code) })
		if !found {
			return fmt.Errorf("%w: override for unknown country %q", ErrInvalidProfile, code)
		}
		for key, v := range fields {
			_, fi, ok := lo.FindIndexOf(profiles[pi].Fields, func(f model.Field) bool { return f.Key == key })
			if !ok {
				return fmt.Errorf("%w: override %s.%s: unknown field", ErrInvalidProfile, code, key)
			}
			profiles[pi].Fields[fi].Default = v
		}
	}
	return nil
}

func validateProfiles(profiles []model.Profile) error {
	dupCodes := lo.FindDuplicatesBy(profiles, func(p model.Profile) string { return p.Code })
	if len(dupCodes) > 0 {
		return fmt.Errorf("%w: duplicate country code %q", ErrInvalidProfile, dupCodes[0].Code)
	}

	for _, p := range profiles {
		if p.Decimals < 0 || p.Decimals > 4 {
			return fmt.Errorf("%w: %s: decimals %d out of range 0..4", ErrInvalidProfile, p.Code, p.Decimals)
		}

		dupKeys := lo.FindDuplicatesBy(p.Fields, func(f model.Field) string { return f.Key })
		if len(dupKeys) > 0 {
			return fmt.Errorf("%w: %s: duplicate field %q", ErrInvalidProfile, p.Code, dupKeys[0].Key)
		}
		dupCats := lo.FindDuplicatesBy(p.Extras, func(x model.ExtraExpense) string { return x.Category })
		if len(dupCats) > 0 {
			return fmt.Errorf("%w: %s: duplicate extra category %q", ErrInvalidProfile, p.Code, dupCats[0].Category)
		}
		if x, ok := lo.Find(p.Extras, func(x model.ExtraExpense) bool { return isStandardCategory(x.Category) }); ok {
			return fmt.Errorf("%w: %s: extra category %q is already a standard expense", ErrInvalidProfile, p.Code, x.Category)
		}
		for _, x := range p.Extras {
			if strings.TrimSpace(x.Key) == "" || strings.TrimSpace(x.Category) == "" {
				return fmt.Errorf("%w: %s: extra needs key and category", ErrInvalidProfile, p.Code)
			}
		}

		for _, f := range p.Fields {
			if err := validateField(f); err != nil {
				return fmt.Errorf("%w: %s.%s: %v", ErrInvalidProfile, p.Code, f.Key, err)
			}
		}

		tax, _ := p.Field(model.FieldTaxRate)
		if !tax.HasMax || tax.Max <= 0 || tax.Max >= 100 {
			return fmt.Errorf("%w: %s: tax rate max must be in (0, 100), got %g", ErrInvalidProfile, p.Code, tax.Max)
		}
	}
	return nil
}

func validateField(f model.Field) error {
	for _, v := range []float64{f.Default, f.Min, f.Max, f.Step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("non-finite number")
		}
	}
	switch {
	case f.Min < 0:
		return fmt.Errorf("min %g is negative", f.Min)
	case f.Max < 0:
		return fmt.Errorf("max %g is negative", f.Max)
	case f.HasMax && f.Max < f.Min:
		return fmt.Errorf("max %g below min %g", f.Max, f.Min)
	case f.Step <= 0:
		return fmt.Errorf("step %g must be positive", f.Step)
	case f.Default < f.Min:
		return fmt.Errorf("default %g below min %g", f.Default, f.Min)
	case f.HasMax && f.Default > f.Max:
		return fmt.Errorf("default %g above max %g", f.Default, f.Max)
	}
	return nil
}
