package gen

import (
	"github.com/sauhaardac/prisma-client-go/schema"
)

// mutationVariants synthesizes the set, order and eager-load variants of a
// field.
func (g *Graph) mutationVariants(f *Field) error {
	switch f.Kind {
	case schema.KindRelation:
		return g.relationMutation(f)
	case schema.KindComposite:
		return g.compositeMutation(f)
	default:
		return g.scalarMutation(f)
	}
}

func (g *Graph) scalarMutation(f *Field) error {
	t := f.Owner
	set := &Variant{
		Tag:     SetTag("Set", f.Name),
		Field:   f.Name,
		Payload: []Payload{{Name: "value", Type: valueRef(f.Field)}},
		Rule:    Rule{Kind: RuleValue},
	}
	if _, err := f.add(t.Set, "Set", set); err != nil {
		return err
	}
	if !f.Caps.Has(CapOrderBy) {
		return nil
	}
	order := &Variant{
		Tag:     pascal(f.Name),
		Field:   f.Name,
		Payload: []Payload{{Name: "order", Type: SortOrderRef}},
		Rule:    Rule{Kind: RuleValue},
	}
	_, err := f.add(t.OrderBy, "Order", order)
	return err
}

func (g *Graph) compositeMutation(f *Field) error {
	var (
		t         = f.Owner
		name      = string(f.Type)
		create    = CreateRef(name)
		where     = ListOf(ParamRef(name, WhereParam))
		set       = ListOf(ParamRef(name, SetParam))
		creatable = g.creatable(name, map[string]bool{})
		err       error
	)
	add := func(e *Enum, builder string, v *Variant) {
		if err == nil {
			_, err = f.add(e, builder, v)
		}
	}
	if f.Caps.Has(CapSet) && creatable {
		add(t.Set, "Set", &Variant{
			Tag:     SetTag("Set", f.Name),
			Field:   f.Name,
			Payload: []Payload{{Name: "value", Type: wrap(f.Field, create)}},
			Rule:    Rule{Kind: RuleMethod, Method: "set"},
		})
	}
	if f.Caps.Has(CapUnset) {
		add(t.Set, "Unset", &Variant{
			Tag:   SetTag("Unset", f.Name),
			Field: f.Name,
			Rule:  Rule{Kind: RuleFlag, Method: "unset"},
		})
	}
	if f.Caps.Has(CapUpdate) {
		add(t.Set, "Update", &Variant{
			Tag:     SetTag("Update", f.Name),
			Field:   f.Name,
			Payload: []Payload{{Name: "params", Type: set}},
			Rule:    Rule{Kind: RuleData, Method: "update"},
		})
	}
	if f.Caps.Has(CapUpsert) && creatable {
		add(t.Set, "Upsert", &Variant{
			Tag:   SetTag("Upsert", f.Name),
			Field: f.Name,
			Payload: []Payload{
				{Name: "create", Type: create},
				{Name: "update", Type: set},
			},
			Rule: Rule{Kind: RuleUpsert},
		})
	}
	if f.Caps.Has(CapPush) && creatable {
		add(t.Set, "Push", &Variant{
			Tag:     SetTag("Push", f.Name),
			Field:   f.Name,
			Payload: []Payload{{Name: "values", Type: ListOf(create)}},
			Rule:    Rule{Kind: RuleMethod, Method: "push"},
		})
	}
	if f.Caps.Has(CapUpdateMany) {
		add(t.Set, "UpdateMany", &Variant{
			Tag:   SetTag("UpdateMany", f.Name),
			Field: f.Name,
			Payload: []Payload{
				{Name: "where", Type: where},
				{Name: "data", Type: set},
			},
			Rule: Rule{Kind: RuleUpdateMany},
		})
	}
	if f.Caps.Has(CapDeleteMany) {
		add(t.Set, "DeleteMany", &Variant{
			Tag:     SetTag("DeleteMany", f.Name),
			Field:   f.Name,
			Payload: []Payload{{Name: "where", Type: where}},
			Rule:    Rule{Kind: RuleDeleteMany},
		})
	}
	if f.Caps.Has(CapOrderBy) {
		add(t.OrderBy, "Order", &Variant{
			Tag:     pascal(f.Name),
			Field:   f.Name,
			Payload: []Payload{{Name: "params", Type: ListOf(ParamRef(name, OrderByParam))}},
			Rule:    Rule{Kind: RuleData},
		})
	}
	return err
}

func (g *Graph) relationMutation(f *Field) error {
	var (
		t       = f.Owner
		related = f.RelatedEntity()
		unique  = ParamRef(related, UniqueWhereParam)
		err     error
	)
	add := func(e *Enum, builder string, v *Variant) {
		if err == nil {
			_, err = f.add(e, builder, v)
		}
	}
	if f.Caps.Has(CapConnect) {
		v := &Variant{
			Tag:     SetTag("Connect", f.Name),
			Field:   f.Name,
			Payload: []Payload{{Name: "params", Type: ListOf(unique)}},
			Rule:    Rule{Kind: RuleWhereEach, Method: "connect"},
		}
		if !f.IsList() {
			v.Payload[0] = Payload{Name: "param", Type: unique}
			v.Rule.Kind = RuleWhere
		}
		add(t.Set, "Connect", v)
	}
	if f.Caps.Has(CapDisconnect) {
		v := &Variant{
			Tag:     SetTag("Disconnect", f.Name),
			Field:   f.Name,
			Payload: []Payload{{Name: "params", Type: ListOf(unique)}},
			Rule:    Rule{Kind: RuleWhereEach, Method: "disconnect"},
		}
		if !f.IsList() {
			v.Payload = nil
			v.Rule.Kind = RuleFlag
		}
		add(t.Set, "Disconnect", v)
	}
	if f.Caps.Has(CapFetch) {
		v := &Variant{Tag: pascal(f.Name), Field: f.Name, Rule: Rule{Kind: RuleFetch}}
		if f.IsList() {
			v.Payload = []Payload{{Name: "params", Type: ListOf(ParamRef(related, WhereParam))}}
		}
		add(t.With, "Fetch", v)
	}
	return err
}

// creatable reports whether a create input of the named composite can be
// built: every field required on create must be representable. A composite
// that requires itself, directly or through others, is not creatable.
func (g *Graph) creatable(name string, visiting map[string]bool) bool {
	c, ok := g.Schema.Composite(name)
	if !ok || visiting[name] {
		return false
	}
	visiting[name] = true
	defer delete(visiting, name)
	for _, f := range c.Fields {
		if f.RequiredOnCreate() && !g.representable(f, visiting) {
			return false
		}
	}
	return true
}

func (g *Graph) representable(f *schema.Field, visiting map[string]bool) bool {
	switch {
	case f.Kind == schema.KindComposite:
		return g.creatable(string(f.Type), visiting)
	case f.Kind == schema.KindRelation:
		return false
	case f.Enum:
		_, ok := g.Schema.Enum(string(f.Type))
		return ok
	default:
		return f.Type.Builtin()
	}
}
