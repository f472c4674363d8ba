package gen

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/sauhaardac/prisma-client-go/schema"
)

// Graph holds the synthesized types of a data model.
type Graph struct {
	*Config
	// Schema is the walker the graph was built from.
	Schema schema.Walker
	// Nodes holds the entities in declaration order.
	Nodes []*Type
	// Composites holds the composite types in declaration order.
	Composites []*Type
	// Enums holds the user enums in declaration order.
	Enums []*schema.Enum
}

// entityActions are the operation methods of an entity actions value.
var entityActions = []string{
	"FindUnique", "FindFirst", "FindMany", "Count",
	"CreateOne", "CreateMany", "UpdateOne", "UpdateMany",
	"DeleteOne", "DeleteMany", "UpsertOne",
}

// NewGraph synthesizes the API of every entity and composite reachable
// through w. Types are synthesized in parallel, bounded by the configured
// number of workers, and are stored in schema order.
func NewGraph(ctx context.Context, c *Config, w schema.Walker) (*Graph, error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "config cannot be nil")
	}
	var (
		entities   = w.Entities()
		composites = w.Composites()
		g          = &Graph{
			Config:     c,
			Schema:     w,
			Nodes:      make([]*Type, len(entities)),
			Composites: make([]*Type, len(composites)),
			Enums:      w.Enums(),
		}
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(c.workers())
	for i, e := range entities {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := g.entityType(e)
			if err != nil {
				return err
			}
			g.Nodes[i] = t
			return nil
		})
	}
	for i, cp := range composites {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := g.compositeType(cp)
			if err != nil {
				return err
			}
			g.Composites[i] = t
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := g.checkNames(); err != nil {
		return nil, err
	}
	return g, nil
}

// Type returns the entity or composite type with the given name.
func (g *Graph) Type(name string) (*Type, bool) {
	for _, ts := range [][]*Type{g.Nodes, g.Composites} {
		for _, t := range ts {
			if t.Name == name {
				return t, true
			}
		}
	}
	return nil, false
}

func (g *Graph) entityType(e *schema.Entity) (*Type, error) {
	t := newType(e.Name)
	t.Entity = e
	if err := g.fields(t, e.Fields, entityActions); err != nil {
		return nil, err
	}
	if err := g.compounds(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (g *Graph) compositeType(c *schema.Composite) (*Type, error) {
	t := newType(c.Name)
	t.Composite = c
	t.Creatable = g.creatable(c.Name, map[string]bool{})
	for _, f := range c.Fields {
		if f.Kind == schema.KindRelation {
			return nil, NewSchemaError(c.Name, f.Name, "composite types cannot hold relations", nil)
		}
	}
	if err := g.fields(t, c.Fields, []string{"Create"}); err != nil {
		return nil, err
	}
	return t, nil
}

// fields synthesizes the accessors of t. Accessor names must be unique and
// must not shadow the reserved methods of the actions value.
func (g *Graph) fields(t *Type, fields []*schema.Field, reserved []string) error {
	names := make(map[string]string, len(fields)+len(reserved))
	for _, r := range reserved {
		names[r] = ""
	}
	for _, sf := range fields {
		f := &Field{
			Field:      sf,
			Owner:      t,
			Accessor:   AccessorName(sf.Name),
			Uniqueness: uniqueness(t.Entity, sf),
		}
		if prev, ok := names[f.Accessor]; ok {
			msg := fmt.Sprintf("accessor %s conflicts with method %s", f.Accessor, f.Accessor)
			if prev != "" {
				msg = fmt.Sprintf("accessor %s conflicts with field %q", f.Accessor, prev)
			}
			return NewSchemaError(t.Name, sf.Name, msg, ErrReservedName)
		}
		names[f.Accessor] = sf.Name
		f.Caps = Capabilities(sf.Kind, sf.Arity, f.Uniqueness)
		if err := g.whereVariants(f); err != nil {
			return err
		}
		if err := g.mutationVariants(f); err != nil {
			return err
		}
		t.Fields = append(t.Fields, f)
	}
	return nil
}

// compounds synthesizes the unique lookups over several fields: a compound
// primary key and every unique index of more than one column.
func (g *Graph) compounds(t *Type) error {
	e := t.Entity
	idxs := e.UniqueIndexes
	if pk := e.Key(); len(pk) > 1 {
		idxs = append([][]string{pk}, idxs...)
	}
	seen := make(map[string]bool)
	for _, idx := range idxs {
		if len(idx) < 2 {
			continue
		}
		c := &Compound{Name: strings.Join(idx, "_")}
		if seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		c.Accessor = pascal(c.Name)
		if _, ok := t.Field(c.Name); ok {
			return NewSchemaError(t.Name, c.Name, "compound unique conflicts with a field", ErrReservedName)
		}
		for _, f := range t.Fields {
			if f.Accessor == c.Accessor {
				return NewSchemaError(t.Name, c.Name, fmt.Sprintf("compound accessor %s conflicts with field %q", c.Accessor, f.Name), ErrReservedName)
			}
		}
		v := &Variant{Tag: c.Accessor + "Equals", Field: c.Name, Rule: Rule{Kind: RuleCompound}}
		for _, name := range idx {
			sf, ok := e.Field(name)
			if !ok || sf.Kind != schema.KindScalar || sf.IsList() {
				return NewSchemaError(t.Name, name, fmt.Sprintf("unique index %s needs scalar fields", c.Name), nil)
			}
			c.Fields = append(c.Fields, sf)
			v.Payload = append(v.Payload, Payload{Name: sf.Name, Type: elemRef(sf)})
		}
		if err := t.UniqueWhere.Add(v); err != nil {
			return err
		}
		c.Builder = &Builder{Name: "Equals", Variant: v, Returns: UniqueWhereParam}
		t.Compounds = append(t.Compounds, c)
	}
	return nil
}

// checkNames reports generated declarations that would collide within the
// output package.
func (g *Graph) checkNames() error {
	owners := make(map[string]string)
	claim := func(name, owner string) error {
		if prev, ok := owners[name]; ok {
			return NewSchemaError(owner, "", fmt.Sprintf("generated name %s is also declared by %s", name, prev), ErrReservedName)
		}
		owners[name] = owner
		return nil
	}
	for _, e := range g.Enums {
		names := []string{EnumTypeName(e.Name)}
		for _, v := range e.Values {
			names = append(names, EnumValueName(e.Name, v))
		}
		for _, n := range names {
			if err := claim(n, "enum "+e.Name); err != nil {
				return err
			}
		}
	}
	for _, t := range append(append([]*Type(nil), g.Nodes...), g.Composites...) {
		for _, n := range t.declNames() {
			if err := claim(n, t.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

// declNames returns the package-level names declared for t.
func (t *Type) declNames() []string {
	names := []string{t.ActionsVar(), t.ActionsType()}
	for _, e := range t.Enums() {
		names = append(names, t.ParamType(e.Kind))
		for _, v := range e.Variants() {
			names = append(names, t.VariantType(e.Kind, v.Tag))
		}
	}
	for _, f := range t.Fields {
		names = append(names, f.AccessorType())
		for _, b := range f.Builders {
			switch {
			case b.Dual:
				names = append(names, f.DualType())
			case b.Variant.Rule.Kind == RuleFetch:
				names = append(names, f.FetchType())
			}
		}
	}
	for _, c := range t.Compounds {
		names = append(names, c.AccessorType(t))
	}
	names = append(names, t.ModelType())
	if t.IsComposite() {
		return append(names, t.CreateType())
	}
	return append(names, t.ModelVar())
}

// EnumValueName returns the constant name of an enum value, e.g.
// (Role, ADMIN) => RoleAdmin.
func EnumValueName(enum, value string) string {
	return EnumTypeName(enum) + pascal(strings.ToLower(value))
}
