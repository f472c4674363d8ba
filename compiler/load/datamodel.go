package load

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sauhaardac/prisma-client-go/schema"
)

// ErrUnknownType is returned for a field referencing a type that the
// datamodel does not declare.
var ErrUnknownType = errors.New("load: unknown type")

// Datamodel is the normalized datamodel document. JSON documents are
// accepted as well.
type Datamodel struct {
	Enums  []*Enum  `yaml:"enums,omitempty"`
	Models []*Model `yaml:"models,omitempty"`
	Types  []*Model `yaml:"types,omitempty"`
}

// Enum is an enum declaration.
type Enum struct {
	Name   string   `yaml:"name"`
	Values []string `yaml:"values"`
}

// Model is a model or composite type declaration. Composite types have no
// keys.
type Model struct {
	Name          string     `yaml:"name"`
	PrimaryKey    []string   `yaml:"primaryKey,omitempty"`
	UniqueIndexes [][]string `yaml:"uniqueIndexes,omitempty"`
	Fields        []*Field   `yaml:"fields"`
}

// Field is a field declaration.
type Field struct {
	Name            string   `yaml:"name"`
	Kind            string   `yaml:"kind"`
	Type            string   `yaml:"type"`
	IsList          bool     `yaml:"isList,omitempty"`
	IsRequired      bool     `yaml:"isRequired,omitempty"`
	IsUnique        bool     `yaml:"isUnique,omitempty"`
	IsID            bool     `yaml:"isId,omitempty"`
	HasDefaultValue bool     `yaml:"hasDefaultValue,omitempty"`
	RelationMethods []string `yaml:"relationMethods,omitempty"`
}

// Field kinds of the document.
const (
	KindScalar      = "scalar"
	KindEnum        = "enum"
	KindObject      = "object"
	KindRelation    = "relation"
	KindComposite   = "composite"
	KindUnsupported = "unsupported"
)

// Parse decodes a datamodel document and resolves it into a schema.
func Parse(buf []byte) (*schema.Schema, error) {
	dm, err := Decode(buf)
	if err != nil {
		return nil, err
	}
	return dm.Build()
}

// ParseFile reads and parses the datamodel document at path.
func ParseFile(path string) (*schema.Schema, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: read datamodel: %w", err)
	}
	s, err := Parse(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode decodes a datamodel document without resolving it. Unknown keys
// are rejected.
func Decode(buf []byte) (*Datamodel, error) {
	dec := yaml.NewDecoder(bytes.NewReader(buf))
	dec.KnownFields(true)
	dm := &Datamodel{}
	if err := dec.Decode(dm); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("load: empty datamodel")
		}
		return nil, fmt.Errorf("load: decode datamodel: %w", err)
	}
	return dm, nil
}

// Build resolves the declarations into schema descriptors.
func (dm *Datamodel) Build() (*schema.Schema, error) {
	var (
		enums  = make(map[string]bool)
		models = make(map[string]bool)
		types  = make(map[string]bool)
	)
	declare := func(seen map[string]bool, kind, name string) error {
		if name == "" {
			return fmt.Errorf("load: %s without a name", kind)
		}
		if enums[name] || models[name] || types[name] {
			return fmt.Errorf("load: %s %s is declared twice", kind, name)
		}
		seen[name] = true
		return nil
	}
	for _, e := range dm.Enums {
		if err := declare(enums, "enum", e.Name); err != nil {
			return nil, err
		}
	}
	for _, m := range dm.Models {
		if err := declare(models, "model", m.Name); err != nil {
			return nil, err
		}
	}
	for _, t := range dm.Types {
		if err := declare(types, "type", t.Name); err != nil {
			return nil, err
		}
	}
	r := &resolver{enums: enums, models: models, types: types}

	entities := make([]*schema.Entity, 0, len(dm.Models))
	for _, m := range dm.Models {
		fields, err := r.fields(m)
		if err != nil {
			return nil, err
		}
		e := &schema.Entity{
			Name:          m.Name,
			Fields:        fields,
			PrimaryKey:    m.PrimaryKey,
			UniqueIndexes: m.UniqueIndexes,
		}
		if err := checkKeys(e); err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	composites := make([]*schema.Composite, 0, len(dm.Types))
	for _, t := range dm.Types {
		if len(t.PrimaryKey) > 0 || len(t.UniqueIndexes) > 0 {
			return nil, fmt.Errorf("load: type %s: composite types have no keys", t.Name)
		}
		fields, err := r.fields(t)
		if err != nil {
			return nil, err
		}
		composites = append(composites, &schema.Composite{Name: t.Name, Fields: fields})
	}
	enumList := make([]*schema.Enum, len(dm.Enums))
	for i, e := range dm.Enums {
		enumList[i] = &schema.Enum{Name: e.Name, Values: e.Values}
	}
	return schema.New(entities, composites, enumList), nil
}

// resolver maps field declarations to descriptors.
type resolver struct {
	enums, models, types map[string]bool
}

func (r *resolver) fields(m *Model) ([]*schema.Field, error) {
	seen := make(map[string]bool, len(m.Fields))
	fields := make([]*schema.Field, 0, len(m.Fields))
	for _, fd := range m.Fields {
		if seen[fd.Name] {
			return nil, fmt.Errorf("load: %s.%s is declared twice", m.Name, fd.Name)
		}
		seen[fd.Name] = true
		f, err := r.field(fd)
		if err != nil {
			return nil, fmt.Errorf("load: %s.%s: %w", m.Name, fd.Name, err)
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func (r *resolver) field(fd *Field) (*schema.Field, error) {
	if fd.Name == "" {
		return nil, fmt.Errorf("field without a name")
	}
	f := &schema.Field{
		Name:            fd.Name,
		Type:            schema.ScalarType(fd.Type),
		IsUnique:        fd.IsUnique,
		IsPrimaryKey:    fd.IsID,
		HasDefault:      fd.HasDefaultValue,
		RelationMethods: fd.RelationMethods,
	}
	switch {
	case fd.IsList:
		f.Arity = schema.List
	case fd.IsRequired:
		f.Arity = schema.Required
	default:
		f.Arity = schema.Optional
	}
	switch fd.Kind {
	case KindScalar:
		if !f.Type.Builtin() {
			return nil, fmt.Errorf("scalar type %q: %w", fd.Type, ErrUnknownType)
		}
	case KindUnsupported:
		f.Type = schema.TypeUnsupported
	case KindEnum:
		if !r.enums[fd.Type] {
			return nil, fmt.Errorf("enum %q: %w", fd.Type, ErrUnknownType)
		}
		f.Enum = true
	case KindRelation:
		if !r.models[fd.Type] {
			return nil, fmt.Errorf("model %q: %w", fd.Type, ErrUnknownType)
		}
		f.Kind = schema.KindRelation
	case KindComposite:
		if !r.types[fd.Type] {
			return nil, fmt.Errorf("type %q: %w", fd.Type, ErrUnknownType)
		}
		f.Kind = schema.KindComposite
	case KindObject:
		switch {
		case r.models[fd.Type]:
			f.Kind = schema.KindRelation
		case r.types[fd.Type]:
			f.Kind = schema.KindComposite
		default:
			return nil, fmt.Errorf("object %q: %w", fd.Type, ErrUnknownType)
		}
	default:
		return nil, fmt.Errorf("unknown field kind %q", fd.Kind)
	}
	if len(f.RelationMethods) > 0 && f.Kind != schema.KindRelation {
		return nil, fmt.Errorf("relation methods on a %s field", f.Kind)
	}
	return f, nil
}

// checkKeys reports key declarations naming unknown fields.
func checkKeys(e *schema.Entity) error {
	check := func(what string, names []string) error {
		for _, n := range names {
			if _, ok := e.Field(n); !ok {
				return fmt.Errorf("load: model %s: %s names unknown field %q", e.Name, what, n)
			}
		}
		return nil
	}
	if err := check("primary key", e.PrimaryKey); err != nil {
		return err
	}
	for _, idx := range e.UniqueIndexes {
		if len(idx) == 0 {
			return fmt.Errorf("load: model %s: empty unique index", e.Name)
		}
		if err := check("unique index", idx); err != nil {
			return err
		}
	}
	return nil
}
