package rustgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/bluesky-social/spectypes/spec"
)

const (
	indentUnit   = "    "
	deriveHeader = "#[derive(Debug, serde::Serialize, serde::Deserialize)]"
	// must stay in sync with the discriminant keys used by elmgen
	enumTagHeader = `#[serde(tag = "var", content = "vardata")]`
)

// Render produces Rust declarations for every type in the module, separated
// by blank lines.
func Render(m *spec.Module) string {
	blocks := make([]string, 0, len(m.Types))
	for _, t := range m.Types {
		var sb strings.Builder
		writeType(&sb, t)
		blocks = append(blocks, sb.String())
	}
	return strings.Join(blocks, "\n\n")
}

func indent(depth int) string {
	return strings.Repeat(indentUnit, depth)
}

func writeType(w io.Writer, t spec.TypeSpec) {
	switch v := t.(type) {
	case spec.Struct:
		fmt.Fprintln(w, deriveHeader)
		fmt.Fprintf(w, "pub struct %s {\n", v.Name)
		writeFields(w, v.Fields, 1, true)
		fmt.Fprint(w, "}")
	case spec.Enum:
		fmt.Fprintln(w, deriveHeader)
		fmt.Fprintln(w, enumTagHeader)
		fmt.Fprintf(w, "pub enum %s {\n", v.Name)
		for _, vr := range v.Variants {
			writeVariant(w, vr, 1)
		}
		fmt.Fprint(w, "}")
	default:
		panic(fmt.Sprintf("rustgen: unhandled type spec %T", t))
	}
}

func writeFields(w io.Writer, fields []spec.Field, depth int, public bool) {
	vis := ""
	if public {
		vis = "pub "
	}
	for _, f := range fields {
		fmt.Fprintf(w, "%s%s%s: %s,\n", indent(depth), vis, f.Name, f.Type.Rust)
	}
}

func writeVariant(w io.Writer, vr spec.Variant, depth int) {
	switch d := vr.Data.(type) {
	case nil, spec.NoData:
		fmt.Fprintf(w, "%s%s,\n", indent(depth), vr.Name)
	case spec.SingleData:
		fmt.Fprintf(w, "%s%s(%s),\n", indent(depth), vr.Name, d.Type.Rust)
	case spec.StructData:
		// enum variant fields can't carry a visibility modifier
		fmt.Fprintf(w, "%s%s {\n", indent(depth), vr.Name)
		writeFields(w, d.Fields, depth+1, false)
		fmt.Fprintf(w, "%s},\n", indent(depth))
	default:
		panic(fmt.Sprintf("rustgen: unhandled variant data %T", vr.Data))
	}
}
