package elmgen

import (
	"fmt"
	"strings"

	"github.com/bluesky-social/spectypes/spec"
)

// Mode selects between the legacy bare output and a complete Elm module.
type Mode int

const (
	// ModeBare emits each type declaration followed by its encoder, with no
	// module header, imports or decoders.
	ModeBare Mode = iota
	// ModeFull emits a module header, export list and imports, then the
	// declaration, decoder and encoder of every type.
	ModeFull
)

func (m Mode) String() string {
	switch m {
	case ModeBare:
		return "bare"
	case ModeFull:
		return "full"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "bare":
		return ModeBare, nil
	case "full":
		return ModeFull, nil
	default:
		return 0, fmt.Errorf("unknown elm mode %q (expected bare or full)", s)
	}
}

// ModeForModule is the historical selection rule: modules without a name
// render in bare mode.
func ModeForModule(name string) Mode {
	if name == "" {
		return ModeBare
	}
	return ModeFull
}

const (
	indentUnit      = "    "
	discriminantKey = "var"
	payloadKey      = "vardata"
)

var importBlock = strings.Join([]string{
	"import Json.Decode",
	"import Json.Decode.Extra exposing (when)",
	"import Json.Decode.Pipeline exposing (decode, required)",
	"import Json.Encode",
	"import Json.Encode.Extra",
}, "\n")

func indent(depth int) string {
	return strings.Repeat(indentUnit, depth)
}

func Render(m *spec.Module, mode Mode) string {
	switch mode {
	case ModeBare:
		return renderBare(m)
	case ModeFull:
		return renderFull(m)
	default:
		panic(fmt.Sprintf("elmgen: unhandled mode %s", mode))
	}
}

func renderBare(m *spec.Module) string {
	blocks := make([]string, 0, 2*len(m.Types))
	for _, t := range m.Types {
		var decl, enc strings.Builder
		switch v := t.(type) {
		case spec.Struct:
			writeRecordAlias(&decl, v.Name, v.Fields, 1)
			writeStructEncoder(&enc, v.Name, v.Fields, 1)
		case spec.Enum:
			writeUnion(&decl, v, 1, true)
			writeEnumEncoder(&enc, v, 1)
		default:
			panic(fmt.Sprintf("elmgen: unhandled type spec %T", t))
		}
		blocks = append(blocks, decl.String(), enc.String())
	}
	return strings.Join(blocks, "\n\n")
}

func renderFull(m *spec.Module) string {
	blocks := []string{
		fmt.Sprintf("module %s exposing (%s)", m.Name, strings.Join(Exports(m), ", ")),
		importBlock,
	}
	for _, t := range m.Types {
		blocks = append(blocks, typeBlocks(t)...)
	}
	return strings.Join(blocks, "\n\n")
}

// typeBlocks returns the full-mode output for one type: subsidiary
// declarations and decoders first, then the declaration, decoder and encoder.
func typeBlocks(t spec.TypeSpec) []string {
	var out []string
	emit := func(write func(sb *strings.Builder)) {
		var sb strings.Builder
		write(&sb)
		out = append(out, sb.String())
	}

	switch v := t.(type) {
	case spec.Struct:
		emit(func(sb *strings.Builder) { writeRecordAlias(sb, v.Name, v.Fields, 1) })
		emit(func(sb *strings.Builder) { writeStructDecoder(sb, v.Name, v.Fields, 1) })
		emit(func(sb *strings.Builder) { writeStructEncoder(sb, v.Name, v.Fields, 1) })
	case spec.Enum:
		for _, sub := range Subsidiaries(v) {
			emit(func(sb *strings.Builder) { writeRecordAlias(sb, sub.Name, sub.Fields, 1) })
			emit(func(sb *strings.Builder) { writeStructDecoder(sb, sub.Name, sub.Fields, 1) })
		}
		emit(func(sb *strings.Builder) { writeUnion(sb, v, 1, false) })
		emit(func(sb *strings.Builder) { writeEnumDecoder(sb, v, 1) })
		emit(func(sb *strings.Builder) { writeEnumEncoder(sb, v, 1) })
	default:
		panic(fmt.Sprintf("elmgen: unhandled type spec %T", t))
	}
	return out
}

// Subsidiaries synthesizes one record type per struct-shaped variant, in
// variant order.
func Subsidiaries(e spec.Enum) []spec.Struct {
	var out []spec.Struct
	for _, vr := range e.Variants {
		switch d := vr.Data.(type) {
		case nil, spec.NoData, spec.SingleData:
		case spec.StructData:
			out = append(out, spec.Struct{Name: spec.SubsidiaryName(e.Name, vr.Name), Fields: d.Fields})
		default:
			panic(fmt.Sprintf("elmgen: unhandled variant data %T", vr.Data))
		}
	}
	return out
}

// Exports lists the exposed names of a full-mode module in declaration order.
// Subsidiary types are not exposed.
func Exports(m *spec.Module) []string {
	out := make([]string, 0, 3*len(m.Types))
	for _, t := range m.Types {
		switch v := t.(type) {
		case spec.Struct:
			out = append(out, v.Name)
		case spec.Enum:
			out = append(out, v.Name+"(..)")
		default:
			panic(fmt.Sprintf("elmgen: unhandled type spec %T", t))
		}
		out = append(out, decoderName(t.TypeName()), encoderName(t.TypeName()))
	}
	return out
}
