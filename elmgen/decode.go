package elmgen

import (
	"fmt"
	"io"

	"github.com/bluesky-social/spectypes/spec"
)

func writeDecoderSignature(w io.Writer, name string) {
	fmt.Fprintf(w, "%s : Json.Decode.Decoder %s\n", decoderName(name), name)
	fmt.Fprintf(w, "%s =\n", decoderName(name))
}

// writeStructDecoder renders a Json.Decode.Pipeline chain seeded with the
// record constructor, one `required` step per field.
func writeStructDecoder(w io.Writer, name string, fields []spec.Field, depth int) {
	writeDecoderSignature(w, name)
	fmt.Fprintf(w, "%sdecode %s", indent(depth), name)
	for _, f := range fields {
		fmt.Fprintf(w, "\n%s|> required \"%s\" %s", indent(depth+1), f.Name, argument(decoderFor(f.Type.ElmTokens())))
	}
}

// writeEnumDecoder renders a oneOf over the variants, each guarded on the
// discriminant field. The first matching alternative wins.
func writeEnumDecoder(w io.Writer, e spec.Enum, depth int) {
	writeDecoderSignature(w, e.Name)
	fmt.Fprintf(w, "%sJson.Decode.oneOf\n", indent(depth))
	if len(e.Variants) == 0 {
		fmt.Fprintf(w, "%s[]", indent(depth+1))
		return
	}
	for i, vr := range e.Variants {
		lead := ", "
		if i == 0 {
			lead = "[ "
		}
		fmt.Fprintf(w, "%s%swhen (Json.Decode.field \"%s\" Json.Decode.string) ((==) \"%s\") <|\n",
			indent(depth+1), lead, discriminantKey, vr.Name)
		fmt.Fprintf(w, "%s%s\n", indent(depth+2), variantDecoder(e.Name, vr))
	}
	fmt.Fprintf(w, "%s]", indent(depth+1))
}

func variantDecoder(enum string, vr spec.Variant) string {
	switch d := vr.Data.(type) {
	case nil, spec.NoData:
		return "Json.Decode.succeed " + vr.Name
	case spec.SingleData:
		return fmt.Sprintf("Json.Decode.map %s (Json.Decode.field \"%s\" %s)",
			vr.Name, payloadKey, argument(decoderFor(d.Type.ElmTokens())))
	case spec.StructData:
		return fmt.Sprintf("Json.Decode.map %s (Json.Decode.field \"%s\" %s)",
			vr.Name, payloadKey, decoderName(spec.SubsidiaryName(enum, vr.Name)))
	default:
		panic(fmt.Sprintf("elmgen: unhandled variant data %T", vr.Data))
	}
}
