package rustgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vkrustgen/internal/schema"
)

func TestRenderType(t *testing.T) {
	testCases := []struct {
		name string
		in   schema.Type
		want string
	}{
		{"string", schema.Scalar{Kind: schema.String}, "String"},
		{"bool", schema.Scalar{Kind: schema.Bool}, "bool"},
		{"u32", schema.Scalar{Kind: schema.Int, Width: schema.U32}, "u32"},
		{"u64", schema.Scalar{Kind: schema.Int, Width: schema.U64}, "u64"},
		{"i64", schema.Scalar{Kind: schema.Int, Width: schema.I64}, "i64"},
		{"float", schema.Scalar{Kind: schema.Float}, "f64"},
		{"optional scalar", schema.Optional{Elem: schema.Scalar{Kind: schema.String}}, "Option<String>"},
		{"plain reference", schema.Ref{Name: "Version"}, "Version"},
		{"optional reference", schema.Optional{Elem: schema.Ref{Name: "Version"}}, "Option<Version>"},
		{"boxed reference", schema.Ref{Name: "Handle", Boxed: true}, "Option<Box<Handle>>"},
		{"optional boxed reference collapses", schema.Optional{Elem: schema.Ref{Name: "Handle", Boxed: true}}, "Option<Box<Handle>>"},
		{"sequence", schema.Sequence{Elem: schema.Ref{Name: "Param"}}, "Vec<Param>"},
		{"nested sequence", schema.Optional{Elem: schema.Sequence{Elem: schema.Scalar{Kind: schema.String}}}, "Option<Vec<String>>"},
		{"ordered map", schema.OrderedMap{Key: schema.Scalar{Kind: schema.String}, Value: schema.Ref{Name: "Extension"}}, "IndexMap<String, Extension>"},
		{"map of sequences", schema.OrderedMap{Key: schema.Scalar{Kind: schema.String}, Value: schema.Sequence{Elem: schema.Ref{Name: "Flag"}}}, "IndexMap<String, Vec<Flag>>"},
		{"numeric union", schema.NumericUnion{}, "ConstantValue"},
		{"verbatim", schema.Verbatim{Text: "Option<Vec<String>>"}, "Option<Vec<String>>"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := RenderType(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRenderType_UnknownFails(t *testing.T) {
	testCases := []struct {
		name string
		in   schema.Type
	}{
		{"bare unknown", schema.Unknown{Source: "set[str]"}},
		{"unknown inside sequence", schema.Sequence{Elem: schema.Unknown{Source: "set[str]"}}},
		{"unknown inside optional", schema.Optional{Elem: schema.Unknown{Source: "set[str]"}}},
		{"unknown map key", schema.OrderedMap{Key: schema.Unknown{Source: "bytes"}, Value: schema.Scalar{Kind: schema.String}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := RenderType(tc.in)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "no translation rule")
		})
	}
}

func TestSnakeCase(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"name", "name"},
		{"nameString", "name_string"},
		{"headerVersionComplete", "header_version_complete"},
		{"cDeclaration", "c_declaration"},
		{"sType", "s_type"},
		{"implicitExternSyncParams", "implicit_extern_sync_params"},
		{"already_snake", "already_snake"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, snakeCase(tc.in), "input %q", tc.in)
	}
}

func TestVariantName(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"NONE", "None"},
		{"none", "None"},
		{"ALWAYS", "Always"},
		{"SUBTYPE_MAYBE", "SubtypeMaybe"},
		{"depth_stencil", "DepthStencil"},
		{"BOTH", "Both"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, variantName(tc.in), "input %q", tc.in)
	}
}
