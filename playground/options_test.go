package playground

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type option interface {
	~int
	fmt.Stringer
}

func assertRoundTrip[T option](t *testing.T, variants []T, parse func(string) (T, error), values []string) {
	t.Helper()

	require.Len(t, values, len(variants), "every variant needs exactly one wire string")

	seen := map[string]T{}

	for i, variant := range variants {
		rendered := variant.String()
		assert.Equal(t, values[i], rendered)

		if previous, ok := seen[rendered]; ok {
			t.Errorf("%v and %v both render as %q", previous, variant, rendered)
		}
		seen[rendered] = variant

		parsed, err := parse(rendered)
		require.NoError(t, err)
		assert.Equal(t, variant, parsed)
	}

	var zero T
	assert.Equal(t, variants[0], zero, "the first variant is the default")
}

func TestOptionRoundTrip(t *testing.T) {
	t.Run("channel", func(t *testing.T) {
		assertRoundTrip(t, []Channel{ChannelStable, ChannelBeta, ChannelNightly}, ParseChannel, ChannelValues())
	})
	t.Run("mode", func(t *testing.T) {
		assertRoundTrip(t, []Mode{ModeDebug, ModeRelease}, ParseMode, ModeValues())
	})
	t.Run("crate type", func(t *testing.T) {
		assertRoundTrip(t, []CrateType{CrateBinary, CrateLibrary}, ParseCrateType, CrateTypeValues())
	})
	t.Run("assembly flavor", func(t *testing.T) {
		assertRoundTrip(t, []AsmFlavor{FlavorATT, FlavorIntel}, ParseAsmFlavor, AsmFlavorValues())
	})
	t.Run("target", func(t *testing.T) {
		assertRoundTrip(t, []Target{TargetAsm, TargetLLVMIR, TargetMIR, TargetWasm}, ParseTarget, TargetValues())
	})
	t.Run("demangle assembly", func(t *testing.T) {
		assertRoundTrip(t, []DemangleAssembly{AsmDemangle, AsmMangle}, ParseDemangleAssembly, DemangleAssemblyValues())
	})
	t.Run("hide assembler directives", func(t *testing.T) {
		assertRoundTrip(t, []HideAssemblerDirectives{DirectivesHide, DirectivesShow},
			ParseHideAssemblerDirectives, HideAssemblerDirectivesValues())
	})
}

func TestWireStrings(t *testing.T) {
	tests := []struct {
		name string
		got  fmt.Stringer
		want string
	}{
		{name: "stable", got: ChannelStable, want: "stable"},
		{name: "nightly", got: ChannelNightly, want: "nightly"},
		{name: "release", got: ModeRelease, want: "release"},
		{name: "binary", got: CrateBinary, want: "bin"},
		{name: "library", got: CrateLibrary, want: "lib"},
		{name: "intel", got: FlavorIntel, want: "intel"},
		{name: "llvm", got: TargetLLVMIR, want: "llvm-ir"},
		{name: "wasm", got: TargetWasm, want: "wasm"},
		{name: "mangle", got: AsmMangle, want: "mangle"},
		{name: "show", got: DirectivesShow, want: "show"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.String())
		})
	}
}

func TestParseRejectsUnknownValues(t *testing.T) {
	_, err := ParseChannel("Stable")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOption))

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "channel", parseErr.Kind)
	assert.Equal(t, "Stable", parseErr.Value)
	assert.Equal(t, []string{"stable", "beta", "nightly"}, parseErr.Allowed)
	assert.Equal(t, `invalid channel "Stable" (expected one of stable, beta, nightly)`, err.Error())

	_, err = ParseTarget("")
	assert.True(t, errors.Is(err, ErrInvalidOption))
}

func TestSetKeepsValueOnFailure(t *testing.T) {
	target := TargetMIR

	require.Error(t, target.Set("bytecode"))
	assert.Equal(t, TargetMIR, target)

	require.NoError(t, target.Set("wasm"))
	assert.Equal(t, TargetWasm, target)
}

func TestOptionsMarshalAsText(t *testing.T) {
	data, err := json.Marshal(map[string]any{"channel": ChannelBeta, "crateType": CrateLibrary})
	require.NoError(t, err)
	assert.JSONEq(t, `{"channel":"beta","crateType":"lib"}`, string(data))

	var decoded struct {
		Mode Mode `json:"mode"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"mode":"release"}`), &decoded))
	assert.Equal(t, ModeRelease, decoded.Mode)

	assert.Error(t, json.Unmarshal([]byte(`{"mode":"fast"}`), &decoded))
}

func TestInvalidVariantDoesNotMarshal(t *testing.T) {
	_, err := Channel(42).MarshalText()

	assert.True(t, errors.Is(err, ErrInvalidOption))
	assert.Equal(t, "channel(42)", Channel(42).String())
}

func TestValuesReturnsCopy(t *testing.T) {
	values := ChannelValues()
	values[0] = "mutated"

	assert.Equal(t, "stable", ChannelValues()[0])
	assert.Equal(t, ChannelStable, mustParse(t, ParseChannel, "stable"))
}

func mustParse[T any](t *testing.T, parse func(string) (T, error), s string) T {
	t.Helper()

	v, err := parse(s)
	require.NoError(t, err)

	return v
}
