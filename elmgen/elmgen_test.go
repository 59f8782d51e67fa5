package elmgen

import (
	"strings"
	"testing"

	"github.com/bluesky-social/spectypes/spec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const expectedImports = `import Json.Decode
import Json.Decode.Extra exposing (when)
import Json.Decode.Pipeline exposing (decode, required)
import Json.Encode
import Json.Encode.Extra`

func tt(rust, elm string) spec.TypeText {
	return spec.TypeText{Rust: rust, Elm: elm}
}

func TestRenderEmpty(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("", Render(&spec.Module{}, ModeBare))
	assert.Equal("module M exposing ()\n\n"+expectedImports, Render(&spec.Module{Name: "M"}, ModeFull))
}

func TestModeForModule(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(ModeBare, ModeForModule(""))
	assert.Equal(ModeFull, ModeForModule("Api"))

	m, err := ParseMode("FULL")
	require.NoError(t, err)
	assert.Equal(ModeFull, m)
	assert.Equal("full", m.String())

	_, err = ParseMode("auto")
	assert.Error(err)
}

func TestBareStruct(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		name     string
		fields   []spec.Field
		expected string
	}{
		{
			name: "empty",
			expected: `type alias TestStruct =
    {}

encodeTestStruct : TestStruct -> Json.Encode.Value
encodeTestStruct record =
    Json.Encode.object
        []`,
		},
		{
			name: "simple",
			fields: []spec.Field{
				{Name: "foo", Type: tt("u32", "Int")},
				{Name: "bar", Type: tt("String", "String")},
			},
			expected: `type alias TestStruct =
    { foo: Int
    , bar: String
    }

encodeTestStruct : TestStruct -> Json.Encode.Value
encodeTestStruct record =
    Json.Encode.object
        [ ("foo", Json.Encode.int <| record.foo)
        , ("bar", Json.Encode.string <| record.bar)
        ]`,
		},
		{
			name: "vec",
			fields: []spec.Field{
				{Name: "foo", Type: tt("Vec<u32>", "List Int")},
			},
			expected: `type alias TestStruct =
    { foo: (List Int)
    }

encodeTestStruct : TestStruct -> Json.Encode.Value
encodeTestStruct record =
    Json.Encode.object
        [ ("foo", Json.Encode.list <| List.map Json.Encode.int <| record.foo)
        ]`,
		},
	}

	for _, tc := range tests {
		m := &spec.Module{Types: []spec.TypeSpec{spec.Struct{Name: "TestStruct", Fields: tc.fields}}}
		assert.Equal(tc.expected, Render(m, ModeBare), tc.name)
	}
}

func TestBareEnumSimple(t *testing.T) {
	m := &spec.Module{Types: []spec.TypeSpec{spec.Enum{
		Name: "TestEnum",
		Variants: []spec.Variant{
			{Name: "Foo", Data: spec.NoData{}},
			{Name: "Bar", Data: spec.NoData{}},
			{Name: "Qux"},
		},
	}}}

	expected := `type TestEnum
    = Foo
    | Bar
    | Qux

encodeTestEnum : TestEnum -> Json.Encode.Value
encodeTestEnum var =
    case var of
        Foo ->
            Json.Encode.object
                [ ( "var", Json.Encode.string "Foo" )
                ]
        Bar ->
            Json.Encode.object
                [ ( "var", Json.Encode.string "Bar" )
                ]
        Qux ->
            Json.Encode.object
                [ ( "var", Json.Encode.string "Qux" )
                ]`
	assert.Equal(t, expected, Render(m, ModeBare))
}

func TestBareEnumComplex(t *testing.T) {
	m := &spec.Module{Types: []spec.TypeSpec{spec.Enum{
		Name: "TestEnum",
		Variants: []spec.Variant{
			{Name: "Foo", Data: spec.NoData{}},
			{Name: "Bar", Data: spec.SingleData{Type: tt("Vec<u32>", "List Int")}},
			{Name: "Qux", Data: spec.StructData{Fields: []spec.Field{
				{Name: "sub1", Type: tt("u32", "Int")},
				{Name: "sub2", Type: tt("Vec<bool>", "List Bool")},
			}}},
		},
	}}}

	expected := `type TestEnum
    = Foo
    | Bar (List Int)
    | Qux { sub1: Int, sub2: (List Bool) }

encodeTestEnum : TestEnum -> Json.Encode.Value
encodeTestEnum var =
    case var of
        Foo ->
            Json.Encode.object
                [ ( "var", Json.Encode.string "Foo" )
                ]
        Bar value ->
            Json.Encode.object
                [ ( "var", Json.Encode.string "Bar" )
                , ( "vardata", Json.Encode.list <| List.map Json.Encode.int <| value )
                ]
        Qux record ->
            Json.Encode.object
                [ ( "var", Json.Encode.string "Qux" )
                , ( "vardata", Json.Encode.object
                    [ ( "sub1", Json.Encode.int <| record.sub1 )
                    , ( "sub2", Json.Encode.list <| List.map Json.Encode.bool <| record.sub2 )
                    ] )
                ]`
	assert.Equal(t, expected, Render(m, ModeBare))
}

func TestBareEmptyEnum(t *testing.T) {
	m := &spec.Module{Types: []spec.TypeSpec{spec.Enum{Name: "Never"}}}

	expected := "type Never\n    = \n\n" +
		"encodeNever : Never -> Json.Encode.Value\n" +
		"encodeNever var =\n" +
		"    case var of"
	assert.Equal(t, expected, Render(m, ModeBare))
}

func TestFullStruct(t *testing.T) {
	m := &spec.Module{
		Name: "M",
		Types: []spec.TypeSpec{spec.Struct{Name: "Point", Fields: []spec.Field{
			{Name: "x", Type: tt("u32", "Int")},
			{Name: "y", Type: tt("u32", "Int")},
		}}},
	}

	expected := `module M exposing (Point, decodePoint, encodePoint)

` + expectedImports + `

type alias Point =
    { x: Int
    , y: Int
    }

decodePoint : Json.Decode.Decoder Point
decodePoint =
    decode Point
        |> required "x" Json.Decode.int
        |> required "y" Json.Decode.int

encodePoint : Point -> Json.Encode.Value
encodePoint record =
    Json.Encode.object
        [ ("x", Json.Encode.int <| record.x)
        , ("y", Json.Encode.int <| record.y)
        ]`
	assert.Equal(t, expected, Render(m, ModeFull))
}

func TestFullEnumWithSubsidiary(t *testing.T) {
	m := &spec.Module{
		Name: "Shapes",
		Types: []spec.TypeSpec{spec.Enum{Name: "Shape", Variants: []spec.Variant{
			{Name: "Circle", Data: spec.StructData{Fields: []spec.Field{{Name: "radius", Type: tt("f64", "Float")}}}},
			{Name: "Side", Data: spec.SingleData{Type: tt("Option<f64>", "Maybe Float")}},
			{Name: "Unit", Data: spec.NoData{}},
		}}},
	}

	expected := `module Shapes exposing (Shape(..), decodeShape, encodeShape)

` + expectedImports + `

type alias ShapeCircle =
    { radius: Float
    }

decodeShapeCircle : Json.Decode.Decoder ShapeCircle
decodeShapeCircle =
    decode ShapeCircle
        |> required "radius" Json.Decode.float

type Shape
    = Circle ShapeCircle
    | Side (Maybe Float)
    | Unit

decodeShape : Json.Decode.Decoder Shape
decodeShape =
    Json.Decode.oneOf
        [ when (Json.Decode.field "var" Json.Decode.string) ((==) "Circle") <|
            Json.Decode.map Circle (Json.Decode.field "vardata" decodeShapeCircle)
        , when (Json.Decode.field "var" Json.Decode.string) ((==) "Side") <|
            Json.Decode.map Side (Json.Decode.field "vardata" (Json.Decode.nullable Json.Decode.float))
        , when (Json.Decode.field "var" Json.Decode.string) ((==) "Unit") <|
            Json.Decode.succeed Unit
        ]

encodeShape : Shape -> Json.Encode.Value
encodeShape var =
    case var of
        Circle record ->
            Json.Encode.object
                [ ( "var", Json.Encode.string "Circle" )
                , ( "vardata", Json.Encode.object
                    [ ( "radius", Json.Encode.float <| record.radius )
                    ] )
                ]
        Side value ->
            Json.Encode.object
                [ ( "var", Json.Encode.string "Side" )
                , ( "vardata", Json.Encode.Extra.maybe Json.Encode.float <| value )
                ]
        Unit ->
            Json.Encode.object
                [ ( "var", Json.Encode.string "Unit" )
                ]`
	assert.Equal(t, expected, Render(m, ModeFull))
}

func TestFullSingleVariantHasNoSubsidiary(t *testing.T) {
	assert := assert.New(t)

	shape := spec.Enum{Name: "Shape", Variants: []spec.Variant{
		{Name: "Circle", Data: spec.SingleData{Type: tt("f64", "Float")}},
		{Name: "Unit", Data: spec.NoData{}},
	}}
	out := Render(&spec.Module{Name: "M", Types: []spec.TypeSpec{shape}}, ModeFull)

	assert.Empty(Subsidiaries(shape))
	assert.NotContains(out, "ShapeCircle")
	assert.Contains(out, "type Shape\n    = Circle Float\n    | Unit")
	assert.Equal(2, strings.Count(out, "when (Json.Decode.field \"var\" Json.Decode.string)"))
}

func TestSubsidiaryPlacement(t *testing.T) {
	assert := assert.New(t)

	e := spec.Enum{Name: "Event", Variants: []spec.Variant{
		{Name: "Moved", Data: spec.StructData{Fields: []spec.Field{{Name: "dx", Type: tt("i32", "Int")}}}},
		{Name: "Idle"},
		{Name: "Renamed", Data: spec.StructData{Fields: []spec.Field{{Name: "to", Type: tt("String", "String")}}}},
	}}
	m := &spec.Module{Name: "Events", Types: []spec.TypeSpec{
		spec.Struct{Name: "Header", Fields: []spec.Field{{Name: "id", Type: tt("u64", "Int")}}},
		e,
	}}
	out := Render(m, ModeFull)

	subs := Subsidiaries(e)
	require.Len(t, subs, 2)
	assert.Equal("EventMoved", subs[0].Name)
	assert.Equal("EventRenamed", subs[1].Name)

	for _, name := range []string{"EventMoved", "EventRenamed"} {
		assert.Equal(1, strings.Count(out, "type alias "+name+" =\n"), name)
		assert.Equal(1, strings.Count(out, "decode"+name+" =\n"), name)
		assert.NotContains(out, "encode"+name+" ")
	}

	header := strings.Index(out, "type alias Header")
	moved := strings.Index(out, "type alias EventMoved")
	renamed := strings.Index(out, "type alias EventRenamed")
	union := strings.Index(out, "type Event\n")
	assert.True(header < moved, "struct declared before later enum's subsidiaries")
	assert.True(moved < renamed, "subsidiaries follow variant order")
	assert.True(renamed < union, "subsidiaries precede the union")
	assert.Contains(out, "    = Moved EventMoved\n    | Idle\n    | Renamed EventRenamed")

	assert.Equal([]string{
		"Header", "decodeHeader", "encodeHeader",
		"Event(..)", "decodeEvent", "encodeEvent",
	}, Exports(m))
}

func TestFullEmptyEnum(t *testing.T) {
	out := Render(&spec.Module{Name: "M", Types: []spec.TypeSpec{spec.Enum{Name: "Never"}}}, ModeFull)

	assert.Contains(t, out, "type Never\n    = \n\n")
	assert.Contains(t, out, "decodeNever =\n    Json.Decode.oneOf\n        []")
}

func TestRenderDeterministic(t *testing.T) {
	m := spec.SampleModule()
	for _, mode := range []Mode{ModeBare, ModeFull} {
		assert.Equal(t, Render(m, mode), Render(m, mode), mode.String())
	}
}
