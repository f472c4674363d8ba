package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sauhaardac/prisma-client-go/runtime"
)

func TestVariantApply(t *testing.T) {
	g := newTestGraph(t, fixture())
	var (
		title = runtime.Method("title", "equals", "hello")
		geo   = runtime.Method("lat", "gt", 1.5)
	)
	tests := []struct {
		typ, field, builder string
		args                []any
		want                string
	}{
		{"User", "posts", "Some", []any{[]runtime.Field{title}}, `{"some":{"title":"hello"}}`},
		{"Post", "editor", "IsNull", nil, `null`},
		{"User", "address", "IsSet", nil, `true`},
		{"User", "addresses", "IsEmpty", nil, `{"isEmpty":true}`},
		{
			"User", "addresses", "Equals",
			[]any{[][]runtime.Field{{runtime.Method("city", "equals", "Oslo")}, {geo}}},
			`{"equals":[{"city":"Oslo"},{"lat":{"gt":1.5}}]}`,
		},
		{"User", "email", "StartsWith", []any{"a"}, `{"startsWith":"a"}`},
		{"User", "email", "Equals", []any{"a@b.c"}, `{"equals":"a@b.c"}`},
		{"User", "name", "Set", []any{(*string)(nil)}, `null`},
		{"User", "tags", "Set", []any{[]string{"a", "b"}}, `["a","b"]`},
		{"User", "address", "Unset", nil, `{"unset":true}`},
		{"User", "address", "Update", []any{[]runtime.Field{runtime.SetValue("city", "Oslo")}}, `{"update":{"city":"Oslo"}}`},
		{
			"User", "address", "Upsert",
			[]any{runtime.Object(runtime.SetValue("street", "Main")), []runtime.Field{runtime.SetValue("city", "Oslo")}},
			`{"upsert":{"set":{"street":"Main"},"update":{"city":"Oslo"}}}`,
		},
		{
			"User", "addresses", "UpdateMany",
			[]any{[]runtime.Field{runtime.Method("city", "equals", "Oslo")}, []runtime.Field{runtime.SetValue("city", "Bergen")}},
			`{"updateMany":{"where":{"city":"Oslo"},"data":{"city":"Bergen"}}}`,
		},
		{"User", "addresses", "DeleteMany", []any{[]runtime.Field{geo}}, `{"deleteMany":{"where":{"lat":{"gt":1.5}}}}`},
		{"User", "address", "Order", []any{[]runtime.Field{runtime.SetValue("city", runtime.Asc)}}, `{"city":"asc"}`},
		{"User", "name", "Order", []any{runtime.Desc}, `"desc"`},
		{"User", "posts", "Connect", []any{[]runtime.Field{runtime.Method("id", "equals", 1), runtime.Method("id", "equals", 2)}}, `{"connect":[{"id":1},{"id":2}]}`},
		{"Post", "editor", "Connect", []any{[]runtime.Field{runtime.Method("id", "equals", "u1")}}, `{"connect":{"id":"u1"}}`},
		{"Post", "editor", "Disconnect", nil, `{"disconnect":true}`},
	}
	for _, tt := range tests {
		t.Run(tt.typ+"."+tt.field+"."+tt.builder, func(t *testing.T) {
			b, ok := mustField(t, g, tt.typ, tt.field).Builder(tt.builder)
			require.True(t, ok)
			f, err := b.Variant.Apply(tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.field, f.Name)
			assert.Equal(t, tt.want, f.Value.String())
		})
	}
}

func TestCompoundApply(t *testing.T) {
	g := newTestGraph(t, fixture())
	c := mustType(t, g, "Membership").Compounds[0]
	f, err := c.Builder.Variant.Apply("u1", "g1")
	require.NoError(t, err)
	assert.Equal(t, "userId_groupId", f.Name)
	assert.Equal(t, `{"userId":"u1","groupId":"g1"}`, f.Value.String())
}

func TestVariantApplyErrors(t *testing.T) {
	g := newTestGraph(t, fixture())
	some, _ := mustField(t, g, "User", "posts").Builder("Some")
	_, err := some.Variant.Apply()
	assert.ErrorContains(t, err, "want 1 payload values, got 0")
	_, err = some.Variant.Apply("not fields")
	assert.ErrorContains(t, err, "want []runtime.Field")

	fetch, _ := mustField(t, g, "Post", "author").Builder("Fetch")
	_, err = fetch.Variant.Apply()
	assert.ErrorContains(t, err, "does not serialize to a field")
}

func TestRuleFuncs(t *testing.T) {
	for k := RuleIsNull; k <= RuleFetch; k++ {
		assert.NotEmpty(t, Rule{Kind: k}.Func(), "rule %d", k)
	}
	assert.True(t, Rule{Kind: RuleWhere}.HasMethod())
	assert.False(t, Rule{Kind: RuleValue}.HasMethod())
	assert.Equal(t, "SetValue", Rule{Kind: RuleValue}.Func())
	assert.Equal(t, "Data", Rule{Kind: RuleCompound}.Func())
	// Rule funcs share the runtime package with the query types.
	assert.Equal(t, "UpsertField", Rule{Kind: RuleUpsert}.Func())
	assert.Equal(t, "UpdateManyField", Rule{Kind: RuleUpdateMany}.Func())
	assert.Equal(t, "DeleteManyField", Rule{Kind: RuleDeleteMany}.Func())
}
