// Package overrides holds the compiled-in escape hatches for known
// mismatches between the source and target type systems, plus the
// authoritative declaration order. Plain data, no logic: the annotation
// parser and the emitter consult these tables, nothing mutates them.
package overrides

import "vkrustgen/internal/schema"

// FieldKey identifies one field of one declared record.
type FieldKey struct {
	Class string
	Field string
}

// FieldTypes maps fields to an explicit target type, bypassing all
// structural inference. Used where the source annotation is too loose to
// translate (a bare "list", an int that is really a string) or names the
// numeric union indirectly.
var FieldTypes = map[FieldKey]string{
	{"Flag", "aliases"}:               "Option<Vec<String>>",
	{"SyncSupport", "queues"}:         "Option<Vec<String>>",
	{"SyncSupport", "stages"}:         "Option<Vec<Flag>>",
	{"SyncEquivalent", "stages"}:      "Option<Vec<Flag>>",
	{"SyncEquivalent", "accesses"}:    "Option<Vec<Flag>>",
	{"VulkanObject", "headerVersion"}: "String",
	{"Param", "alias"}:                "Option<String>",
	{"Constant", "value"}:             "ConstantValue",
}

// BoxedFields marks fields whose reference must go behind a heap
// indirection. This is what makes recursive record graphs representable: a
// record can never contain itself by value, only through Option<Box<...>>.
var BoxedFields = map[FieldKey]struct{}{
	{"Handle", "parent"}: {},
}

// IntWidths overrides the default u32 mapping of a source "int".
var IntWidths = map[FieldKey]schema.IntWidth{
	{"EnumField", "value"}: schema.I64,
	{"Flag", "value"}:      schema.U64,
}

// ReservedKeywords are target-language keywords that cannot be used as field
// identifiers. The emitter appends a trailing underscore and serializes
// under the original name.
var ReservedKeywords = map[string]struct{}{
	"type":   {},
	"struct": {},
	"const":  {},
}

// ExtraDerives adds derives beyond the standard set for specific records.
var ExtraDerives = map[string][]string{
	"VideoStd": {"Default"},
}

// NumericUnionName is the synthetic declaration emitted for the int/float
// union. It has no source declaration; DeclarationOrder places it.
const NumericUnionName = "ConstantValue"

// DeclarationOrder is the single source of truth for which declarations are
// emitted and in what sequence. Extracted declarations absent from this list
// are silently omitted; an entry here with no extracted declaration is a
// configuration defect and fails the run.
var DeclarationOrder = []string{
	"FeatureRequirement",
	"Extension",
	"Version",
	"Legacy",
	"Handle",
	"ExternSync",
	"Param",
	"CommandScope",
	"Command",
	"Member",
	"Struct",
	"EnumField",
	"Enum",
	"Flag",
	"Bitmask",
	"Flags",
	"ConstantValue",
	"Constant",
	"FormatComponent",
	"FormatPlane",
	"Format",
	"SyncSupport",
	"SyncEquivalent",
	"SyncStage",
	"SyncAccess",
	"SyncPipelineStage",
	"SyncPipeline",
	"SpirvEnables",
	"Spirv",
	"VideoRequiredCapabilities",
	"VideoFormat",
	"VideoProfileMember",
	"VideoProfiles",
	"VideoCodec",
	"VideoStdHeader",
	"VideoStd",
	"VulkanObject",
}
