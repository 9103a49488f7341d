package os

import (
	"fmt"
	"testing"

	"github.com/DataDog/datadog-agent/pkg/util/optional"
	fuzz "github.com/google/gofuzz"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func variantNames(records []*Variant) []string {
	return lo.Map(records, func(v *Variant, _ int) string { return v.Name })
}

func TestListSortsFamiliesWithDescendingReleases(t *testing.T) {
	reg, err := NewRegistry([]Definition{
		TypeDefinition("linux", "Linux"),
		VariantDefinition("debianetch", "Debian Etch", "linux", WithDistro("debian")),
		VariantDefinition("debianlenny", "Debian Lenny", "debianetch", WithSortBy("debian5"), WithSupported(true)),
		VariantDefinition("debiansqueeze", "Debian Squeeze", "debianlenny", WithSortBy("debian6")),
	})
	require.NoError(t, err)

	got := reg.List(ListOptions{})
	assert.Equal(t, []string{"debiansqueeze", "debianlenny", "debianetch"}, variantNames(got))
}

func TestListFilters(t *testing.T) {
	reg := Builtin()

	t.Run("types and variants are listed separately", func(t *testing.T) {
		// none of the type records carry a distro family, so they land
		// in one group ordered by descending sort key
		types := reg.List(ListOptions{Types: true})
		assert.Equal(t, []string{"windows", "unix", "solaris", "other", "linux"}, variantNames(types))

		variants := reg.List(ListOptions{})
		assert.Len(t, variants, reg.Len()-len(types))
		for _, v := range variants {
			assert.False(t, v.IsType)
		}
	})

	t.Run("type name filter", func(t *testing.T) {
		windowsVariants := reg.List(ListOptions{TypeName: optional.NewOption(TypeWindows)})
		require.Len(t, windowsVariants, 7)
		for _, v := range windowsVariants {
			assert.Equal(t, TypeWindows, v.TypeName)
		}
		assert.Empty(t, reg.List(ListOptions{Types: true, TypeName: optional.NewOption(TypeName("debian"))}))
	})

	t.Run("name filter", func(t *testing.T) {
		got := reg.List(ListOptions{Names: []string{"winxp", "fedora18", "nosuchos"}})
		assert.ElementsMatch(t, []string{"winxp", "fedora18"}, variantNames(got))
	})

	t.Run("only supported", func(t *testing.T) {
		got := reg.List(ListOptions{OnlySupported: true})
		require.NotEmpty(t, got)
		for _, v := range got {
			assert.True(t, v.IsSupported(), "record %q", v.Name)
		}
		assert.NotContains(t, variantNames(got), "rhel5")
	})
}

func TestListSortPreferencePullsFamiliesToTheFront(t *testing.T) {
	reg := Builtin()

	got := reg.List(ListOptions{SortPreference: []string{"ubuntu", "debian"}})
	families := lo.Uniq(lo.Map(got, func(v *Variant, _ int) string { return v.DistroFamily }))

	require.GreaterOrEqual(t, len(families), 3)
	assert.Equal(t, []string{"ubuntu", "debian"}, families[:2])
	// the remaining named families stay alphabetical, ungrouped records last
	rest := families[2:]
	assert.Equal(t, "", rest[len(rest)-1])
	named := rest[:len(rest)-1]
	assert.IsNonDecreasing(t, named)
}

func TestSortIsDeterministicAndIdempotent(t *testing.T) {
	fuzzer := fuzz.NewWithSeed(1).NilChance(0)

	// a small family pool so groups actually collide
	families := []string{"", "alpha", "beta", "gamma"}

	defs := []Definition{TypeDefinition("linux", "Linux")}
	for i := 0; i < 60; i++ {
		var sortBy string
		fuzzer.Fuzz(&sortBy)
		name := fmt.Sprintf("os%02d", i)
		defs = append(defs, VariantDefinition(name, name, "linux", WithSortBy(sortBy), WithDistro(families[i%len(families)])))
	}
	reg, err := NewRegistry(defs)
	require.NoError(t, err)

	first := reg.List(ListOptions{SortPreference: []string{"gamma"}})
	second := reg.List(ListOptions{SortPreference: []string{"gamma"}})
	assert.Equal(t, variantNames(first), variantNames(second))

	resorted := sortVariants(first, []string{"gamma"})
	assert.Equal(t, variantNames(first), variantNames(resorted))
}

func TestResolveField(t *testing.T) {
	reg := Builtin()

	t.Run("no variant name returns the default untouched", func(t *testing.T) {
		oracle := &recordingOracle{}

		val, err := reg.ResolveStringField(oracle, "kvm", optional.NewNoneOption[string](), FieldDiskBus, "ide")
		require.NoError(t, err)
		assert.Equal(t, "ide", val)
		assert.Empty(t, oracle.calls)
	})

	t.Run("unknown variant is an error", func(t *testing.T) {
		_, err := reg.ResolveStringField(staticOracle{}, "kvm", optional.NewOption("nosuchos"), FieldDiskBus, "ide")
		assert.ErrorContains(t, err, "unknown OS variant")
	})

	t.Run("conditional disk bus falls back when the host lacks virtio", func(t *testing.T) {
		val, err := reg.ResolveStringField(staticOracle{}, "kvm", optional.NewOption("debianlenny"), FieldDiskBus, "ide")
		require.NoError(t, err)
		assert.Equal(t, "ide", val)

		val, err = reg.ResolveStringField(staticOracle{caps: map[string]bool{CapHVVirtio: true}}, "kvm", optional.NewOption("debianlenny"), FieldDiskBus, "ide")
		require.NoError(t, err)
		assert.Equal(t, "virtio", val)
	})

	t.Run("concrete values win over the default", func(t *testing.T) {
		val, err := reg.ResolveStringField(staticOracle{}, "kvm", optional.NewOption("freebsd8"), FieldNetModel, "rtl8139")
		require.NoError(t, err)
		assert.Equal(t, "e1000", val)

		// freebsd7 inherits the 6.x ne2k workaround
		val, err = reg.ResolveStringField(staticOracle{}, "kvm", optional.NewOption("freebsd7"), FieldNetModel, "rtl8139")
		require.NoError(t, err)
		assert.Equal(t, "ne2k_pci", val)
	})

	t.Run("unset attributes yield the default", func(t *testing.T) {
		val, err := reg.ResolveStringField(staticOracle{}, "kvm", optional.NewOption("generic24"), FieldClock, "utc")
		require.NoError(t, err)
		assert.Equal(t, "utc", val)
	})

	t.Run("bool attributes resolve the same way", func(t *testing.T) {
		threeStage, err := reg.ResolveBoolField(staticOracle{}, "kvm", optional.NewOption("winxp"), FieldThreeStageInstall, false)
		require.NoError(t, err)
		assert.True(t, threeStage)

		acpi, err := reg.ResolveBoolField(staticOracle{}, "kvm", optional.NewOption("msdos"), FieldACPI, true)
		require.NoError(t, err)
		assert.False(t, acpi)

		// winxp's acpi is conditional on the old-xen quirk
		acpi, err = reg.ResolveBoolField(staticOracle{caps: map[string]bool{CapHVSkipDefaultACPI: true}}, "kvm", optional.NewOption("winxp"), FieldACPI, true)
		require.NoError(t, err)
		assert.False(t, acpi)

		acpi, err = reg.ResolveBoolField(staticOracle{}, "kvm", optional.NewOption("winxp"), FieldACPI, true)
		require.NoError(t, err)
		assert.True(t, acpi)
	})
}
