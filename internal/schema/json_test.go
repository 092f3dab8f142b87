package schema

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntWidthString(t *testing.T) {
	assert.Equal(t, "u32", U32.String())
	assert.Equal(t, "u64", U64.String())
	assert.Equal(t, "i64", I64.String())
}

func TestSchemaMarshalJSON(t *testing.T) {
	s := Schema{
		Records: []RecordSpec{
			{
				Name: "Handle",
				Fields: []FieldSpec{
					{DeclaredName: "name", Type: Scalar{Kind: String}},
					{DeclaredName: "parent", Type: Ref{Name: "Handle", Boxed: true}},
					{DeclaredName: "extensions", Type: Sequence{Elem: Scalar{Kind: String}}},
				},
			},
		},
		Enums: []EnumSpec{
			{Name: "ExternSync", Variants: []string{"NONE", "ALWAYS"}},
		},
	}

	data, err := json.Marshal(s)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"records": [
			{
				"name": "Handle",
				"fields": [
					{"name": "name", "type": {"kind": "scalar", "scalar": "string"}},
					{"name": "parent", "type": {"kind": "ref", "name": "Handle", "boxed": true}},
					{"name": "extensions", "type": {"kind": "sequence", "elem": {"kind": "scalar", "scalar": "string"}}}
				]
			}
		],
		"enums": [
			{
				"name": "ExternSync",
				"variants": [
					{"name": "NONE", "ordinal": 1},
					{"name": "ALWAYS", "ordinal": 2}
				]
			}
		]
	}`, string(data))
}

func TestTypeEnvelopeShapes(t *testing.T) {
	testCases := []struct {
		name string
		in   Type
		want string
	}{
		{"integer carries width", Scalar{Kind: Int, Width: I64}, `{"kind": "scalar", "scalar": "integer", "width": "i64"}`},
		{"optional", Optional{Elem: Scalar{Kind: Bool}}, `{"kind": "optional", "elem": {"kind": "scalar", "scalar": "boolean"}}`},
		{"map", OrderedMap{Key: Scalar{Kind: String}, Value: Ref{Name: "Flag"}}, `{"kind": "map", "key": {"kind": "scalar", "scalar": "string"}, "value": {"kind": "ref", "name": "Flag"}}`},
		{"numeric union", NumericUnion{}, `{"kind": "numeric_union"}`},
		{"verbatim", Verbatim{Text: "Option<Vec<String>>"}, `{"kind": "verbatim", "text": "Option<Vec<String>>"}`},
		{"unknown keeps source", Unknown{Source: "set[str]"}, `{"kind": "unknown", "source": "set[str]"}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(FieldSpec{DeclaredName: "f", Type: tc.in})
			require.NoError(t, err)
			assert.JSONEq(t, `{"name": "f", "type": `+tc.want+`}`, string(data))
		})
	}
}
