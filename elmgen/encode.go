package elmgen

import (
	"fmt"
	"io"

	"github.com/bluesky-social/spectypes/spec"
)

func writeStructEncoder(w io.Writer, name string, fields []spec.Field, depth int) {
	fmt.Fprintf(w, "%s : %s -> Json.Encode.Value\n", encoderName(name), name)
	fmt.Fprintf(w, "%s record =\n", encoderName(name))
	fmt.Fprintf(w, "%sJson.Encode.object\n", indent(depth))
	if len(fields) == 0 {
		fmt.Fprintf(w, "%s[]", indent(depth+1))
		return
	}
	for i, f := range fields {
		lead := ", "
		if i == 0 {
			lead = "[ "
		}
		fmt.Fprintf(w, "%s%s(\"%s\", %s <| record.%s)\n",
			indent(depth+1), lead, f.Name, encoderFor(f.Type.ElmTokens()), f.Name)
	}
	fmt.Fprintf(w, "%s]", indent(depth+1))
}

// writeEnumEncoder renders a case over the variants. Struct-shaped payloads
// are encoded inline rather than through the subsidiary type's encoder.
func writeEnumEncoder(w io.Writer, e spec.Enum, depth int) {
	fmt.Fprintf(w, "%s : %s -> Json.Encode.Value\n", encoderName(e.Name), e.Name)
	fmt.Fprintf(w, "%s var =\n", encoderName(e.Name))
	fmt.Fprintf(w, "%scase var of", indent(depth))
	for _, vr := range e.Variants {
		writeVariantBranch(w, vr, depth+1)
	}
}

func writeVariantBranch(w io.Writer, vr spec.Variant, depth int) {
	pattern := vr.Name
	switch vr.Data.(type) {
	case nil, spec.NoData:
	case spec.SingleData:
		pattern += " value"
	case spec.StructData:
		pattern += " record"
	default:
		panic(fmt.Sprintf("elmgen: unhandled variant data %T", vr.Data))
	}

	fmt.Fprintf(w, "\n%s%s ->", indent(depth), pattern)
	fmt.Fprintf(w, "\n%sJson.Encode.object", indent(depth+1))
	fmt.Fprintf(w, "\n%s[ ( \"%s\", Json.Encode.string \"%s\" )", indent(depth+2), discriminantKey, vr.Name)

	switch d := vr.Data.(type) {
	case spec.SingleData:
		fmt.Fprintf(w, "\n%s, ( \"%s\", %s <| value )", indent(depth+2), payloadKey, encoderFor(d.Type.ElmTokens()))
	case spec.StructData:
		fmt.Fprintf(w, "\n%s, ( \"%s\", Json.Encode.object", indent(depth+2), payloadKey)
		if len(d.Fields) == 0 {
			fmt.Fprint(w, " [] )")
			break
		}
		for i, f := range d.Fields {
			lead := ", "
			if i == 0 {
				lead = "[ "
			}
			fmt.Fprintf(w, "\n%s%s( \"%s\", %s <| record.%s )",
				indent(depth+3), lead, f.Name, encoderFor(f.Type.ElmTokens()), f.Name)
		}
		fmt.Fprintf(w, "\n%s] )", indent(depth+3))
	}
	fmt.Fprintf(w, "\n%s]", indent(depth+2))
}
