package os

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"dario.cat/mergo"
	"golang.org/x/exp/slices"
)

// Definition is the registration input for one OS profile. Definitions
// are supplied to NewRegistry in dependency order, parents before
// children. Attribute fields left as their zero value are inherited
// from the parent chain.
type Definition struct {
	// Name must be lowercase and unique; it is the stable lookup key.
	Name string `yaml:"name"`
	// Label is the pretty-printed display string.
	Label string `yaml:"label"`
	// IsType marks a top-level family record (linux, windows, ...) as
	// opposed to a concrete variant (fedora18, winxp, ...). Type
	// records must not declare a parent; variants must declare one.
	IsType bool `yaml:"type"`
	// Parent names an already-registered record to inherit from.
	Parent string `yaml:"parent"`
	// SortBy overrides the key used when ordering the catalog. It is
	// not inherited; it defaults to Name.
	SortBy string `yaml:"sortby"`
	// Distro groups variants of one distribution for sorting, e.g.
	// "fedora" or "debian". Inherited; ungrouped records sort last.
	Distro string `yaml:"distro"`

	Supported Field[bool] `yaml:"supported"`

	// ThreeStageInstall marks guests with a three stage install
	// process, i.e. Windows.
	ThreeStageInstall Field[bool]   `yaml:"three_stage_install"`
	ACPI              Field[bool]   `yaml:"acpi"`
	APIC              Field[bool]   `yaml:"apic"`
	Clock             Field[string] `yaml:"clock"`
	NetModel          Field[string] `yaml:"netmodel"`
	DiskBus           Field[string] `yaml:"diskbus"`
	InputType         Field[string] `yaml:"inputtype"`
	InputBus          Field[string] `yaml:"inputbus"`
	VideoModel        Field[string] `yaml:"videomodel"`
}

type DefinitionOption func(*Definition)

// TypeDefinition builds the Definition of a top-level family record.
func TypeDefinition(name, label string, options ...DefinitionOption) Definition {
	def := Definition{Name: name, Label: label, IsType: true}
	for _, opt := range options {
		opt(&def)
	}
	return def
}

// VariantDefinition builds the Definition of a concrete variant
// extending parent.
func VariantDefinition(name, label, parent string, options ...DefinitionOption) Definition {
	def := Definition{Name: name, Label: label, Parent: parent}
	for _, opt := range options {
		opt(&def)
	}
	return def
}

func WithSortBy(key string) DefinitionOption {
	return func(d *Definition) { d.SortBy = key }
}

func WithDistro(family string) DefinitionOption {
	return func(d *Definition) { d.Distro = family }
}

func WithSupported(v bool) DefinitionOption {
	return func(d *Definition) { d.Supported = ConcreteField(v) }
}

func WithThreeStageInstall(v bool) DefinitionOption {
	return func(d *Definition) { d.ThreeStageInstall = ConcreteField(v) }
}

func WithACPI(f Field[bool]) DefinitionOption {
	return func(d *Definition) { d.ACPI = f }
}

func WithAPIC(f Field[bool]) DefinitionOption {
	return func(d *Definition) { d.APIC = f }
}

func WithClock(clock string) DefinitionOption {
	return func(d *Definition) { d.Clock = ConcreteField(clock) }
}

func WithNetModel(f Field[string]) DefinitionOption {
	return func(d *Definition) { d.NetModel = f }
}

func WithDiskBus(f Field[string]) DefinitionOption {
	return func(d *Definition) { d.DiskBus = f }
}

// WithInputDevice sets the pointer device type and its bus together,
// they only ever make sense as a pair. Passing empty strings clears an
// inherited device.
func WithInputDevice(inputType, inputBus string) DefinitionOption {
	return func(d *Definition) {
		d.InputType = ConcreteField(inputType)
		d.InputBus = ConcreteField(inputBus)
	}
}

func WithVideoModel(model string) DefinitionOption {
	return func(d *Definition) { d.VideoModel = ConcreteField(model) }
}

// inheritable holds everything a variant passes down to its children.
// Values are merged from the parent's already-resolved copy, so every
// record ends up with its own fully resolved state and no query ever
// walks the chain again.
type inheritable struct {
	TypeName          TypeName
	DistroFamily      string
	Supported         Field[bool]
	ThreeStageInstall Field[bool]
	ACPI              Field[bool]
	APIC              Field[bool]
	Clock             Field[string]
	NetModel          Field[string]
	DiskBus           Field[string]
	InputType         Field[string]
	InputBus          Field[string]
	VideoModel        Field[string]
}

// Variant is one fully resolved OS profile.
type Variant struct {
	Name   string
	Label  string
	IsType bool
	SortBy string
	inheritable

	parent *Variant
}

// Parent returns the record this variant inherits from, nil for types.
func (v *Variant) Parent() *Variant {
	return v.parent
}

// IsSupported reports whether the OS is still considered current by
// its owning organization.
func (v *Variant) IsSupported() bool {
	return v.Supported.Value
}

// fieldMergeTransformer makes mergo treat Field values atomically: an
// unset field takes the parent's field wholesale, anything else stays
// untouched. Without it mergo would merge field structs member-wise
// and mistake a concrete empty value for an absent one.
type fieldMergeTransformer struct{}

func (fieldMergeTransformer) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ != reflect.TypeOf(Field[string]{}) && typ != reflect.TypeOf(Field[bool]{}) {
		return nil
	}
	return func(dst, src reflect.Value) error {
		if dst.CanSet() && FieldKind(dst.FieldByName("Kind").Int()) == Unset {
			dst.Set(src)
		}
		return nil
	}
}

func newVariant(def Definition, parent *Variant) (*Variant, error) {
	if def.Name == "" {
		return nil, errors.New("missing name")
	}
	if def.Name != strings.ToLower(def.Name) {
		return nil, fmt.Errorf("name must be lowercase, got %q", def.Name)
	}

	v := &Variant{
		Name:   def.Name,
		Label:  def.Label,
		IsType: def.IsType,
		SortBy: def.SortBy,
		parent: parent,
		inheritable: inheritable{
			DistroFamily:      def.Distro,
			Supported:         def.Supported,
			ThreeStageInstall: def.ThreeStageInstall,
			ACPI:              def.ACPI,
			APIC:              def.APIC,
			Clock:             def.Clock,
			NetModel:          def.NetModel,
			DiskBus:           def.DiskBus,
			InputType:         def.InputType,
			InputBus:          def.InputBus,
			VideoModel:        def.VideoModel,
		},
	}

	if v.IsType {
		v.TypeName = TypeName(v.Name)
	}
	if parent != nil {
		if err := mergo.Merge(&v.inheritable, parent.inheritable, mergo.WithTransformers(fieldMergeTransformer{})); err != nil {
			return nil, fmt.Errorf("inheriting from %q: %w", parent.Name, err)
		}
	}

	if !slices.Contains(approvedTypeNames, v.TypeName) {
		return nil, fmt.Errorf("type %q is not in the list of approved OS types %v", v.TypeName, approvedTypeNames)
	}

	if v.Supported.Kind == Unset {
		v.Supported = ConcreteField(false)
	}
	if v.SortBy == "" {
		v.SortBy = v.Name
	}

	return v, nil
}
