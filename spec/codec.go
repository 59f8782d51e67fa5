package spec

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown spec format %q (expected yaml or json)", s)
	}
}

// FormatForPath guesses the encoding from a file extension, falling back to
// YAML (which also accepts JSON documents).
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

func Decode(b []byte, f Format) (*Module, error) {
	var m Module
	switch f {
	case FormatJSON:
		if err := json.Unmarshal(b, &m); err != nil {
			return nil, fmt.Errorf("decoding json spec: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(b, &m); err != nil {
			return nil, fmt.Errorf("decoding yaml spec: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown spec format %q", f)
	}
	return &m, nil
}

func Encode(m *Module, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return json.MarshalIndent(m, "", "  ")
	case FormatYAML:
		return yaml.Marshal(m)
	default:
		return nil, fmt.Errorf("unknown spec format %q", f)
	}
}

const (
	kindStruct = "struct"
	kindEnum   = "enum"
	kindNone   = "none"
	kindSingle = "single"
)

// serialization helpers; sum types carry an explicit "type" discriminator
type moduleWire struct {
	Module string     `json:"module" yaml:"module"`
	Types  []typeWire `json:"types" yaml:"types"`
}

type typeWire struct {
	Type     string        `json:"type" yaml:"type"`
	Name     string        `json:"name" yaml:"name"`
	Fields   []Field       `json:"fields,omitempty" yaml:"fields,omitempty"`
	Variants []variantWire `json:"variants,omitempty" yaml:"variants,omitempty"`
}

type variantWire struct {
	Name string    `json:"name" yaml:"name"`
	Data *dataWire `json:"data,omitempty" yaml:"data,omitempty"`
}

type dataWire struct {
	Type   string    `json:"type" yaml:"type"`
	Data   *TypeText `json:"data,omitempty" yaml:"data,omitempty"`
	Fields []Field   `json:"fields,omitempty" yaml:"fields,omitempty"`
}

func (m *Module) toWire() moduleWire {
	out := moduleWire{
		Module: m.Name,
		Types:  make([]typeWire, 0, len(m.Types)),
	}
	for _, t := range m.Types {
		switch v := t.(type) {
		case Struct:
			out.Types = append(out.Types, typeWire{Type: kindStruct, Name: v.Name, Fields: v.Fields})
		case Enum:
			tw := typeWire{Type: kindEnum, Name: v.Name}
			for _, vr := range v.Variants {
				tw.Variants = append(tw.Variants, variantWire{Name: vr.Name, Data: dataToWire(vr.Data)})
			}
			out.Types = append(out.Types, tw)
		default:
			panic(fmt.Sprintf("unhandled type spec: %T", t))
		}
	}
	return out
}

func dataToWire(d VariantData) *dataWire {
	switch v := d.(type) {
	case nil, NoData:
		return &dataWire{Type: kindNone}
	case SingleData:
		tt := v.Type
		return &dataWire{Type: kindSingle, Data: &tt}
	case StructData:
		return &dataWire{Type: kindStruct, Fields: v.Fields}
	default:
		panic(fmt.Sprintf("unhandled variant data: %T", d))
	}
}

func (w *moduleWire) toModule() (*Module, error) {
	m := &Module{Name: w.Module}
	for _, tw := range w.Types {
		switch tw.Type {
		case kindStruct:
			if len(tw.Variants) > 0 {
				return nil, fmt.Errorf("struct %q must not have variants", tw.Name)
			}
			m.Types = append(m.Types, Struct{Name: tw.Name, Fields: tw.Fields})
		case kindEnum:
			if len(tw.Fields) > 0 {
				return nil, fmt.Errorf("enum %q must not have fields", tw.Name)
			}
			e := Enum{Name: tw.Name}
			for _, vw := range tw.Variants {
				d, err := vw.Data.toData()
				if err != nil {
					return nil, fmt.Errorf("variant %s.%s: %w", tw.Name, vw.Name, err)
				}
				e.Variants = append(e.Variants, Variant{Name: vw.Name, Data: d})
			}
			m.Types = append(m.Types, e)
		default:
			return nil, fmt.Errorf("unknown type spec kind %q for %q", tw.Type, tw.Name)
		}
	}
	return m, nil
}

func (dw *dataWire) toData() (VariantData, error) {
	if dw == nil {
		return NoData{}, nil
	}
	switch dw.Type {
	case kindNone:
		return NoData{}, nil
	case kindSingle:
		if dw.Data == nil {
			return nil, fmt.Errorf("single payload is missing its type text")
		}
		return SingleData{Type: *dw.Data}, nil
	case kindStruct:
		return StructData{Fields: dw.Fields}, nil
	default:
		return nil, fmt.Errorf("unknown variant payload kind %q", dw.Type)
	}
}

func (m Module) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.toWire())
}

func (m *Module) UnmarshalJSON(b []byte) error {
	var w moduleWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	out, err := w.toModule()
	if err != nil {
		return err
	}
	*m = *out
	return nil
}

func (m Module) MarshalYAML() (any, error) {
	return m.toWire(), nil
}

func (m *Module) UnmarshalYAML(value *yaml.Node) error {
	var w moduleWire
	if err := value.Decode(&w); err != nil {
		return err
	}
	out, err := w.toModule()
	if err != nil {
		return err
	}
	*m = *out
	return nil
}

// TypeText is persisted as a two-element sequence: [rust, elm].

func (t TypeText) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{t.Rust, t.Elm})
}

func (t *TypeText) UnmarshalJSON(b []byte) error {
	var parts []string
	if err := json.Unmarshal(b, &parts); err != nil {
		return err
	}
	return t.fromParts(parts)
}

func (t TypeText) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: t.Rust},
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: t.Elm},
		},
	}, nil
}

func (t *TypeText) UnmarshalYAML(value *yaml.Node) error {
	var parts []string
	if err := value.Decode(&parts); err != nil {
		return err
	}
	return t.fromParts(parts)
}

func (t *TypeText) fromParts(parts []string) error {
	if len(parts) != 2 {
		return fmt.Errorf("type text must be a [rust, elm] pair, got %d elements", len(parts))
	}
	t.Rust = parts[0]
	t.Elm = parts[1]
	return nil
}
