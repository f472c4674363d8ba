package gen

import (
	"fmt"

	"github.com/sauhaardac/prisma-client-go/runtime"
)

// Apply serializes the variant with the given payload values the way the
// generated code does. Parameter lists are passed already serialized, as
// []runtime.Field (or [][]runtime.Field for RuleWhereList).
func (v *Variant) Apply(args ...any) (runtime.Field, error) {
	if len(args) != len(v.Payload) {
		return runtime.Field{}, fmt.Errorf("variant %s: want %d payload values, got %d", v.Tag, len(v.Payload), len(args))
	}
	r := v.Rule
	switch r.Kind {
	case RuleIsNull:
		return runtime.IsNull(v.Field), nil
	case RuleIsSet:
		return runtime.IsSet(v.Field), nil
	case RuleFlag:
		return runtime.Flag(v.Field, r.Method), nil
	case RuleWhere:
		fs, err := fieldsArg(v, args, 0)
		if err != nil {
			return runtime.Field{}, err
		}
		return runtime.Where(v.Field, r.Method, fs), nil
	case RuleWhereList:
		groups, ok := args[0].([][]runtime.Field)
		if !ok {
			return runtime.Field{}, fmt.Errorf("variant %s: payload 0 is %T, want [][]runtime.Field", v.Tag, args[0])
		}
		return runtime.WhereList(v.Field, r.Method, groups), nil
	case RuleWhereEach:
		fs, err := fieldsArg(v, args, 0)
		if err != nil {
			return runtime.Field{}, err
		}
		return runtime.WhereEach(v.Field, r.Method, fs), nil
	case RuleMethod:
		return runtime.Method(v.Field, r.Method, args[0]), nil
	case RuleData:
		fs, err := fieldsArg(v, args, 0)
		if err != nil {
			return runtime.Field{}, err
		}
		return runtime.Data(v.Field, r.Method, fs), nil
	case RuleValue:
		return runtime.SetValue(v.Field, args[0]), nil
	case RuleUpsert:
		fs, err := fieldsArg(v, args, 1)
		if err != nil {
			return runtime.Field{}, err
		}
		return runtime.UpsertField(v.Field, args[0], fs), nil
	case RuleUpdateMany:
		where, err := fieldsArg(v, args, 0)
		if err != nil {
			return runtime.Field{}, err
		}
		data, err := fieldsArg(v, args, 1)
		if err != nil {
			return runtime.Field{}, err
		}
		return runtime.UpdateManyField(v.Field, where, data), nil
	case RuleDeleteMany:
		where, err := fieldsArg(v, args, 0)
		if err != nil {
			return runtime.Field{}, err
		}
		return runtime.DeleteManyField(v.Field, where), nil
	case RuleCompound:
		fs := make([]runtime.Field, len(args))
		for i, a := range args {
			fs[i] = runtime.SetValue(v.Payload[i].Name, a)
		}
		return runtime.Data(v.Field, "", fs), nil
	default:
		return runtime.Field{}, fmt.Errorf("variant %s: rule %s does not serialize to a field", v.Tag, r.Func())
	}
}

func fieldsArg(v *Variant, args []any, i int) ([]runtime.Field, error) {
	fs, ok := args[i].([]runtime.Field)
	if !ok {
		return nil, fmt.Errorf("variant %s: payload %d is %T, want []runtime.Field", v.Tag, i, args[i])
	}
	return fs, nil
}
