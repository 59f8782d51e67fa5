package spec

// SampleModule returns the fixed spec used by the demo command.
func SampleModule() *Module {
	return &Module{
		Name: "TestTypes",
		Types: []TypeSpec{
			Struct{
				Name: "TestStruct",
				Fields: []Field{
					{Name: "foo", Type: TypeText{Rust: "u32", Elm: "Int"}},
					{Name: "bar", Type: TypeText{Rust: "String", Elm: "String"}},
					{Name: "tags", Type: TypeText{Rust: "Vec<String>", Elm: "List String"}},
					{Name: "note", Type: TypeText{Rust: "Option<String>", Elm: "Maybe String"}},
				},
			},
			Enum{
				Name: "TestEnum",
				Variants: []Variant{
					{Name: "Foo", Data: NoData{}},
					{Name: "Bar", Data: SingleData{Type: TypeText{Rust: "bool", Elm: "Bool"}}},
					{Name: "Qux", Data: StructData{Fields: []Field{
						{Name: "sub1", Type: TypeText{Rust: "u32", Elm: "Int"}},
						{Name: "sub2", Type: TypeText{Rust: "Vec<TestStruct>", Elm: "List TestStruct"}},
					}}},
				},
			},
		},
	}
}
