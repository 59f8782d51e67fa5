package elmgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/bluesky-social/spectypes/spec"
)

func writeRecordAlias(w io.Writer, name string, fields []spec.Field, depth int) {
	fmt.Fprintf(w, "type alias %s =\n", name)
	if len(fields) == 0 {
		fmt.Fprintf(w, "%s{}", indent(depth))
		return
	}
	for i, f := range fields {
		lead := ", "
		if i == 0 {
			lead = "{ "
		}
		fmt.Fprintf(w, "%s%s%s: %s\n", indent(depth), lead, f.Name, annotation(f.Type.Elm))
	}
	fmt.Fprintf(w, "%s}", indent(depth))
}

// writeUnion renders the union type. With inlineRecords set, struct-shaped
// variants carry an anonymous record (legacy bare output); otherwise they
// reference their subsidiary type.
func writeUnion(w io.Writer, e spec.Enum, depth int, inlineRecords bool) {
	fmt.Fprintf(w, "type %s\n", e.Name)
	if len(e.Variants) == 0 {
		// not valid Elm; kept for compatibility with existing output
		fmt.Fprintf(w, "%s= ", indent(depth))
		return
	}
	lines := make([]string, 0, len(e.Variants))
	for i, vr := range e.Variants {
		lead := "| "
		if i == 0 {
			lead = "= "
		}
		lines = append(lines, indent(depth)+lead+vr.Name+variantPayload(e.Name, vr, inlineRecords))
	}
	fmt.Fprint(w, strings.Join(lines, "\n"))
}

func variantPayload(enum string, vr spec.Variant, inlineRecords bool) string {
	switch d := vr.Data.(type) {
	case nil, spec.NoData:
		return ""
	case spec.SingleData:
		return " " + annotation(d.Type.Elm)
	case spec.StructData:
		if !inlineRecords {
			return " " + spec.SubsidiaryName(enum, vr.Name)
		}
		parts := make([]string, 0, len(d.Fields))
		for _, f := range d.Fields {
			parts = append(parts, f.Name+": "+annotation(f.Type.Elm))
		}
		return " { " + strings.Join(parts, ", ") + " }"
	default:
		panic(fmt.Sprintf("elmgen: unhandled variant data %T", vr.Data))
	}
}
