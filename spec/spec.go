package spec

import (
	"strings"
)

// Module is the root of a schema description: a module name and an ordered
// list of type definitions. An empty Name is legal.
type Module struct {
	Name  string
	Types []TypeSpec
}

// TypeSpec is either a Struct or an Enum.
type TypeSpec interface {
	TypeName() string
	isTypeSpec()
}

type Struct struct {
	Name   string
	Fields []Field
}

func (s Struct) TypeName() string { return s.Name }
func (Struct) isTypeSpec()         {}

type Enum struct {
	Name     string
	Variants []Variant
}

func (e Enum) TypeName() string { return e.Name }
func (Enum) isTypeSpec()         {}

// TypeText holds the already-resolved type text for each output language.
// The generators never validate these strings.
type TypeText struct {
	Rust string
	Elm  string
}

// ElmTokens splits the Elm type text on whitespace.
func (t TypeText) ElmTokens() []string {
	return strings.Fields(t.Elm)
}

type Field struct {
	Name string   `json:"name" yaml:"name"`
	Type TypeText `json:"data" yaml:"data"`
}

type Variant struct {
	Name string
	Data VariantData
}

// VariantData is the payload shape of an enum variant: NoData, SingleData or
// StructData. A nil VariantData is treated as NoData.
type VariantData interface {
	isVariantData()
}

type NoData struct{}

type SingleData struct {
	Type TypeText
}

type StructData struct {
	Fields []Field
}

func (NoData) isVariantData()     {}
func (SingleData) isVariantData() {}
func (StructData) isVariantData() {}

// SubsidiaryName is the name of the record type synthesized for a
// struct-shaped variant.
func SubsidiaryName(enum, variant string) string {
	return enum + variant
}
