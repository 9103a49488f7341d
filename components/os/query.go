package os

import (
	"fmt"
	"strings"

	"github.com/DataDog/datadog-agent/pkg/util/optional"
	"github.com/samber/lo"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ListOptions filters and orders the catalog returned by List.
type ListOptions struct {
	// Types lists the top-level family records instead of variants.
	Types bool
	// TypeName keeps only records of the given family when present.
	TypeName optional.Option[TypeName]
	// Names keeps only records whose name is in the set, when non-empty.
	Names []string
	// OnlySupported keeps only records still considered current.
	OnlySupported bool
	// SortPreference pulls the named distro families to the front of
	// the listing, in the order given.
	SortPreference []string
}

// List returns the matching records in display order: grouped by
// distro family, newest release first within a family, families
// alphabetical with preferred ones up front and ungrouped records
// last. The order is exactly reproducible for fixed inputs.
func (r *Registry) List(opts ListOptions) []*Variant {
	typeFilter, hasTypeFilter := opts.TypeName.Get()

	kept := lo.Filter(r.ordered, func(v *Variant, _ int) bool {
		if v.IsType != opts.Types {
			return false
		}
		if hasTypeFilter && v.TypeName != typeFilter {
			return false
		}
		if len(opts.Names) > 0 && !slices.Contains(opts.Names, v.Name) {
			return false
		}
		if opts.OnlySupported && !v.IsSupported() {
			return false
		}
		return true
	})

	return sortVariants(kept, opts.SortPreference)
}

// sortVariants implements the catalog ordering callers depend on for
// display. Within a family we want descending sort keys, so "debian6"
// comes before "debian5"; name breaks ties so duplicate sort keys
// cannot make the order depend on input order.
func sortVariants(records []*Variant, preference []string) []*Variant {
	groups := lo.GroupBy(records, func(v *Variant) string { return v.DistroFamily })
	for _, group := range groups {
		slices.SortFunc(group, func(a, b *Variant) int {
			if c := strings.Compare(b.SortBy, a.SortBy); c != 0 {
				return c
			}
			return strings.Compare(b.Name, a.Name)
		})
	}

	families := maps.Keys(groups)
	slices.Sort(families)
	// records without a distro family always sort last
	if i := slices.Index(families, ""); i >= 0 {
		families = append(slices.Delete(families, i, i+1), "")
	}

	ordered := make([]string, 0, len(families))
	for _, family := range preference {
		if slices.Contains(families, family) && !slices.Contains(ordered, family) {
			ordered = append(ordered, family)
		}
	}
	for _, family := range families {
		if !slices.Contains(ordered, family) {
			ordered = append(ordered, family)
		}
	}

	out := make([]*Variant, 0, len(records))
	for _, family := range ordered {
		out = append(out, groups[family]...)
	}
	return out
}

// StringField names a string-valued variant attribute for resolution.
type StringField int

const (
	FieldClock StringField = iota
	FieldNetModel
	FieldDiskBus
	FieldInputType
	FieldInputBus
	FieldVideoModel
)

// BoolField names a bool-valued variant attribute for resolution.
type BoolField int

const (
	FieldThreeStageInstall BoolField = iota
	FieldACPI
	FieldAPIC
)

func (v *Variant) stringField(field StringField) Field[string] {
	switch field {
	case FieldClock:
		return v.Clock
	case FieldNetModel:
		return v.NetModel
	case FieldDiskBus:
		return v.DiskBus
	case FieldInputType:
		return v.InputType
	case FieldInputBus:
		return v.InputBus
	case FieldVideoModel:
		return v.VideoModel
	default:
		panic(fmt.Sprintf("unknown string field %d", field))
	}
}

func (v *Variant) boolField(field BoolField) Field[bool] {
	switch field {
	case FieldThreeStageInstall:
		return v.ThreeStageInstall
	case FieldACPI:
		return v.ACPI
	case FieldAPIC:
		return v.APIC
	default:
		panic(fmt.Sprintf("unknown bool field %d", field))
	}
}

// ResolveStringField resolves a variant attribute to a usable value.
// With no variant name it returns fallback without touching the
// oracle; an unknown name is an error. Unset attributes yield
// fallback, conditional ones are resolved against the oracle.
func (r *Registry) ResolveStringField(oracle CapabilityOracle, hvType string, variant optional.Option[string], field StringField, fallback string) (string, error) {
	name, ok := variant.Get()
	if !ok {
		return fallback, nil
	}
	v, ok := r.Lookup(name)
	if !ok {
		return "", fmt.Errorf("unknown OS variant %q", name)
	}
	return v.stringField(field).Resolve(oracle, hvType, fallback)
}

// ResolveBoolField is ResolveStringField for bool attributes.
func (r *Registry) ResolveBoolField(oracle CapabilityOracle, hvType string, variant optional.Option[string], field BoolField, fallback bool) (bool, error) {
	name, ok := variant.Get()
	if !ok {
		return fallback, nil
	}
	v, ok := r.Lookup(name)
	if !ok {
		return false, fmt.Errorf("unknown OS variant %q", name)
	}
	return v.boolField(field).Resolve(oracle, hvType, fallback)
}
