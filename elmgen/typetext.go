package elmgen

import (
	"strings"
)

var primitives = map[string]string{
	"String": "string",
	"Int":    "int",
	"Float":  "float",
	"Bool":   "bool",
}

type composition int

const (
	// the container encoder is applied directly to the inner encoder
	prefixComposition composition = iota
	// the inner encoder is mapped over the value and the container encoder
	// consumes the result
	suffixComposition
)

type container struct {
	decoder   string
	encoder   string
	mapper    string
	direction composition
}

var containers = map[string]container{
	"List": {
		decoder:   "Json.Decode.list",
		encoder:   "Json.Encode.list",
		mapper:    "List.map",
		direction: suffixComposition,
	},
	"Maybe": {
		decoder:   "Json.Decode.nullable",
		encoder:   "Json.Encode.Extra.maybe",
		direction: prefixComposition,
	},
}

// annotation renders Elm type text for use as a field type or a variant
// payload.
func annotation(elmType string) string {
	if len(strings.Fields(elmType)) > 1 {
		return "(" + elmType + ")"
	}
	return elmType
}

func argument(expr string) string {
	if strings.Contains(expr, " ") {
		return "(" + expr + ")"
	}
	return expr
}

func decoderName(typeName string) string { return "decode" + typeName }
func encoderName(typeName string) string { return "encode" + typeName }

// decoderFor resolves tokens left to right; each leading token wraps the
// decoder of the remaining ones.
func decoderFor(toks []string) string {
	if len(toks) == 0 {
		return ""
	}
	head, rest := toks[0], toks[1:]

	var fn string
	if c, ok := containers[head]; ok {
		fn = c.decoder
	} else if p, ok := primitives[head]; ok {
		fn = "Json.Decode." + p
	} else {
		fn = decoderName(head)
	}
	if len(rest) == 0 {
		return fn
	}
	return fn + " " + argument(decoderFor(rest))
}

func leafEncoder(tok string) string {
	if p, ok := primitives[tok]; ok {
		return "Json.Encode." + p
	}
	return encoderName(tok)
}

// encoderFor renders an encoder expression meant to be applied with `<|`.
func encoderFor(toks []string) string {
	if len(toks) == 0 {
		return ""
	}
	head, rest := toks[0], toks[1:]

	c, ok := containers[head]
	if !ok {
		if len(rest) == 0 {
			return leafEncoder(head)
		}
		return leafEncoder(head) + " " + encoderArg(rest)
	}
	switch c.direction {
	case suffixComposition:
		return c.encoder + " <| " + c.mapper + " " + encoderArg(rest)
	case prefixComposition:
		return c.encoder + " " + encoderArg(rest)
	default:
		panic("elmgen: unhandled container composition")
	}
}

// encoderArg renders an encoder usable as a function argument. Suffix
// containers are rewritten into function composition since a `<|` chain is
// not a function.
func encoderArg(toks []string) string {
	if len(toks) == 0 {
		return ""
	}
	if c, ok := containers[toks[0]]; ok && c.direction == suffixComposition {
		return "(" + c.encoder + " << " + c.mapper + " " + encoderArg(toks[1:]) + ")"
	}
	return argument(encoderFor(toks))
}
