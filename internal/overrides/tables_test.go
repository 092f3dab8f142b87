package overrides

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vkrustgen/internal/schema"
)

func TestDeclarationOrder_NoDuplicates(t *testing.T) {
	seen := make(map[string]int, len(DeclarationOrder))
	for i, name := range DeclarationOrder {
		prev, dup := seen[name]
		assert.False(t, dup, "entry %q appears at %d and %d", name, prev, i)
		seen[name] = i
	}
}

func TestDeclarationOrder_ContainsNumericUnion(t *testing.T) {
	assert.Contains(t, DeclarationOrder, NumericUnionName)
}

func TestOverrideKeys_TargetOrderedDeclarations(t *testing.T) {
	// Every override targets a class the order table emits; a key pointing
	// at an unemitted class is dead configuration.
	ordered := make(map[string]struct{}, len(DeclarationOrder))
	for _, name := range DeclarationOrder {
		ordered[name] = struct{}{}
	}

	for key := range FieldTypes {
		assert.Contains(t, ordered, key.Class, "FieldTypes key %v", key)
	}
	for key := range BoxedFields {
		assert.Contains(t, ordered, key.Class, "BoxedFields key %v", key)
	}
	for key := range IntWidths {
		assert.Contains(t, ordered, key.Class, "IntWidths key %v", key)
	}
	for name := range ExtraDerives {
		assert.Contains(t, ordered, name, "ExtraDerives key %v", name)
	}
}

func TestIntWidths_AreValid(t *testing.T) {
	for key, width := range IntWidths {
		assert.NotEqual(t, schema.IntWidth{}, width, "IntWidths key %v", key)
	}
}

func TestFieldTypes_NumericUnionEntryMatchesStructuralRule(t *testing.T) {
	// Constant.value is annotated "int | float" in the source; its override
	// and the structural union rule must name the same target type.
	assert.Equal(t, NumericUnionName, FieldTypes[FieldKey{Class: "Constant", Field: "value"}])
}
