package spec

import (
	"errors"
	"fmt"
)

var ErrInvalidSpec = errors.New("invalid spec")

// CheckSchema reports caller mistakes that would produce colliding or
// nameless declarations. The generators do not call it; they render whatever
// they are given.
func (m *Module) CheckSchema() error {
	names := make(map[string]bool)
	for _, t := range m.Types {
		name := t.TypeName()
		if name == "" {
			return fmt.Errorf("%w: type with empty name", ErrInvalidSpec)
		}
		if names[name] {
			return fmt.Errorf("%w: duplicate type name %q", ErrInvalidSpec, name)
		}
		names[name] = true
	}

	for _, t := range m.Types {
		switch v := t.(type) {
		case Struct:
			if err := checkFields(v.Name, v.Fields); err != nil {
				return err
			}
		case Enum:
			variants := make(map[string]bool)
			for _, vr := range v.Variants {
				if vr.Name == "" {
					return fmt.Errorf("%w: enum %q has a variant with empty name", ErrInvalidSpec, v.Name)
				}
				if variants[vr.Name] {
					return fmt.Errorf("%w: enum %q has duplicate variant %q", ErrInvalidSpec, v.Name, vr.Name)
				}
				variants[vr.Name] = true

				sd, ok := vr.Data.(StructData)
				if !ok {
					continue
				}
				sub := SubsidiaryName(v.Name, vr.Name)
				if names[sub] {
					return fmt.Errorf("%w: variant %s.%s collides with type %q", ErrInvalidSpec, v.Name, vr.Name, sub)
				}
				names[sub] = true
				if err := checkFields(v.Name+"."+vr.Name, sd.Fields); err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("%w: unhandled type spec %T", ErrInvalidSpec, t)
		}
	}
	return nil
}

func checkFields(owner string, fields []Field) error {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return fmt.Errorf("%w: %s has a field with empty name", ErrInvalidSpec, owner)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: %s has duplicate field %q", ErrInvalidSpec, owner, f.Name)
		}
		seen[f.Name] = true
	}
	return nil
}

// Warnings lists legal inputs whose generated output is known to be
// degenerate.
func (m *Module) Warnings() []string {
	var out []string
	for _, t := range m.Types {
		if e, ok := t.(Enum); ok && len(e.Variants) == 0 {
			out = append(out, fmt.Sprintf("enum %q has no variants; its elm union will not compile", e.Name))
		}
	}
	return out
}
