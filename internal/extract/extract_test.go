package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vkrustgen/internal/pyast"
	"vkrustgen/internal/schema"
)

func parseModule(t *testing.T, src string) *pyast.Module {
	t.Helper()
	m, err := pyast.Parse("input.py", []byte(src))
	require.NoError(t, err)
	return m
}

func TestExtract_RecordsAndEnums(t *testing.T) {
	src := `
@dataclass
class Handle:
    name: str
    parent: "Handle"
    dispatchable: bool


class ExternSync(Enum):
    NONE = auto()
    ALWAYS = auto()


class Helper:
    """Neither a dataclass nor an enum, ignored."""

    def run(self):
        pass
`
	s, errs := Extract(parseModule(t, src))
	require.Empty(t, errs)

	require.Len(t, s.Records, 1)
	require.Len(t, s.Enums, 1)

	rec := s.Records[0]
	assert.Equal(t, "Handle", rec.Name)
	require.Len(t, rec.Fields, 3)
	assert.Equal(t, "name", rec.Fields[0].DeclaredName)
	assert.Equal(t, schema.Scalar{Kind: schema.String}, rec.Fields[0].Type)
	assert.Equal(t, schema.Ref{Name: "Handle", Boxed: true}, rec.Fields[1].Type)

	enum := s.Enums[0]
	assert.Equal(t, "ExternSync", enum.Name)
	assert.Equal(t, []string{"NONE", "ALWAYS"}, enum.Variants)
}

func TestExtract_EnumValuesAreDiscarded(t *testing.T) {
	src := `
class CommandScope(Enum):
    NONE = 1
    INSIDE = 40
    OUTSIDE = auto()
`
	s, errs := Extract(parseModule(t, src))
	require.Empty(t, errs)
	require.Len(t, s.Enums, 1)
	// Ordinals come from position at emission time, not from these values.
	assert.Equal(t, []string{"NONE", "INSIDE", "OUTSIDE"}, s.Enums[0].Variants)
}

func TestExtract_CollectsAllStructuralErrors(t *testing.T) {
	src := `
@dataclass
class First:
    broken: Callable[[int], str]
    fine: str


@dataclass
class Second:
    also_broken: Mapping[str, int, bool
`
	s, errs := Extract(parseModule(t, src))
	require.Len(t, errs, 2)

	var structErr *StructuralError
	require.ErrorAs(t, errs[0], &structErr)
	assert.Equal(t, "First", structErr.Class)
	assert.Equal(t, "broken", structErr.Field)
	assert.Equal(t, "Callable[[int], str]", structErr.Source)
	assert.Equal(t, 4, structErr.Pos.Line)

	require.ErrorAs(t, errs[1], &structErr)
	assert.Equal(t, "Second", structErr.Class)
	assert.Equal(t, "also_broken", structErr.Field)

	// Valid fields still extract alongside the failures.
	require.Len(t, s.Records, 2)
	require.Len(t, s.Records[0].Fields, 1)
	assert.Equal(t, "fine", s.Records[0].Fields[0].DeclaredName)
}

func TestExtract_UnknownShapeIsNotAnExtractionError(t *testing.T) {
	// A well-formed annotation outside the translation vocabulary flows
	// through as Unknown; emission rejects it, extraction does not.
	src := `
@dataclass
class Sample:
    items: set[str]
`
	s, errs := Extract(parseModule(t, src))
	require.Empty(t, errs)
	require.Len(t, s.Records[0].Fields, 1)
	assert.Equal(t, schema.Unknown{Source: "set[str]"}, s.Records[0].Fields[0].Type)
}

func TestExtract_OverrideAppliesToUnparseableAnnotation(t *testing.T) {
	// Flag.aliases has an explicit type override, so even a bare "list"
	// annotation resolves.
	src := `
@dataclass
class Flag:
    aliases: list | None
    value: int
`
	s, errs := Extract(parseModule(t, src))
	require.Empty(t, errs)

	fields := s.Records[0].Fields
	assert.Equal(t, schema.Verbatim{Text: "Option<Vec<String>>"}, fields[0].Type)
	assert.Equal(t, schema.Scalar{Kind: schema.Int, Width: schema.U64}, fields[1].Type)
}

func TestExtract_DeclarationOrderPreserved(t *testing.T) {
	src := `
@dataclass
class B:
    x: int


@dataclass
class A:
    y: int
`
	s, errs := Extract(parseModule(t, src))
	require.Empty(t, errs)
	require.Len(t, s.Records, 2)
	assert.Equal(t, "B", s.Records[0].Name)
	assert.Equal(t, "A", s.Records[1].Name)
}
