package golang

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sauhaardac/prisma-client-go/compiler/gen"
	"github.com/sauhaardac/prisma-client-go/schema"
)

func testSchema() *schema.Schema {
	str := func(name string, a schema.Arity) *schema.Field {
		return &schema.Field{Name: name, Kind: schema.KindScalar, Arity: a, Type: schema.TypeString}
	}
	return schema.New(
		[]*schema.Entity{
			{
				Name: "User",
				Fields: []*schema.Field{
					{Name: "id", Kind: schema.KindScalar, Type: schema.TypeString, IsPrimaryKey: true, HasDefault: true},
					{Name: "email", Kind: schema.KindScalar, Type: schema.TypeString, IsUnique: true},
					{Name: "nickname", Kind: schema.KindScalar, Arity: schema.Optional, Type: schema.TypeString, IsUnique: true},
					{Name: "createdAt", Kind: schema.KindScalar, Type: schema.TypeDateTime, HasDefault: true},
					{Name: "role", Kind: schema.KindScalar, Type: "Role", Enum: true},
					str("tags", schema.List),
					{Name: "address", Kind: schema.KindComposite, Arity: schema.Optional, Type: "Address"},
					{Name: "addresses", Kind: schema.KindComposite, Arity: schema.List, Type: "Address"},
					{Name: "posts", Kind: schema.KindRelation, Arity: schema.List, Type: "Post"},
				},
			},
			{
				Name: "Post",
				Fields: []*schema.Field{
					{Name: "id", Kind: schema.KindScalar, Type: schema.TypeInt, IsPrimaryKey: true},
					{Name: "meta", Kind: schema.KindScalar, Arity: schema.Optional, Type: schema.TypeJSON},
					{Name: "editor", Kind: schema.KindRelation, Arity: schema.Optional, Type: "User"},
				},
			},
			{
				Name: "Membership",
				Fields: []*schema.Field{
					str("userId", schema.Required),
					str("groupId", schema.Required),
				},
				PrimaryKey: []string{"userId", "groupId"},
			},
		},
		[]*schema.Composite{
			{Name: "Address", Fields: []*schema.Field{
				str("street", schema.Required),
				str("city", schema.Optional),
				str("lines", schema.List),
			}},
			{Name: "Tree", Fields: []*schema.Field{
				str("label", schema.Optional),
				{Name: "node", Kind: schema.KindComposite, Type: "Tree"},
			}},
		},
		[]*schema.Enum{{Name: "Role", Values: []string{"USER", "ADMIN"}}},
	)
}

// emit renders testSchema and returns the formatted source with every run
// of whitespace collapsed to one space, so that assertions do not depend on
// the column alignment gofmt applies to adjacent declarations.
func emit(t *testing.T) string {
	t.Helper()
	c := gen.MustNewConfig(gen.WithOutput("db/db_gen.go"), gen.WithEmitter(New()))
	g, err := gen.NewGraph(context.Background(), c, testSchema())
	require.NoError(t, err)
	f, err := New().Emit(g)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf), "generated source must be valid Go")
	return strings.Join(strings.Fields(buf.String()), " ")
}

func TestEmitHeader(t *testing.T) {
	src := emit(t)
	assert.Contains(t, src, "// Code generated by Prisma Client Go. DO NOT EDIT.")
	assert.Contains(t, src, "package db")
	assert.Contains(t, src, `"github.com/sauhaardac/prisma-client-go/runtime"`)
	assert.Equal(t, "golang", New().Name())
}

func TestEmitEnum(t *testing.T) {
	src := emit(t)
	assert.Contains(t, src, "type Role string")
	assert.Regexp(t, `RoleUser\s+Role = "USER"`, src)
	assert.Regexp(t, `RoleAdmin\s+Role = "ADMIN"`, src)
}

func TestEmitParams(t *testing.T) {
	src := emit(t)
	for _, want := range []string{
		"type UserWhereParam interface {",
		"type UserUniqueWhereParam interface {",
		"type UserSetParam interface {",
		"type UserOrderByParam interface {",
		"type UserWithParam interface {",
		"isUserWhereParam()",
		"func (userWhereParamEmailStartsWith) isUserWhereParam() {}",
		"func (p userWhereParamEmailStartsWith) WhereField() runtime.Field {",
		`return runtime.Method("email", "startsWith", p.value)`,
		"func (userUniqueWhereParamEmailEquals) isUserUniqueWhereParam() {}",
		"func (userUniqueWhereParamEmailEquals) isUserWhereParam() {}",
		`return runtime.Where("posts", "some", runtime.WhereFields(p.params))`,
		`return runtime.WhereList("addresses", "equals", runtime.WhereGroups(p.params))`,
		`return runtime.IsSet("address")`,
		`return runtime.Flag("address", "unset")`,
		`return runtime.SetValue("createdAt", p.value)`,
		`return runtime.UpsertField("address", p.create, runtime.SetFields(p.update))`,
		`return runtime.UpdateManyField("addresses", runtime.WhereFields(p.where), runtime.SetFields(p.data))`,
		`return runtime.WhereEach("posts", "connect", runtime.WhereFields(p.params))`,
		`return runtime.Where("editor", "connect", []runtime.Field{p.param.WhereField()})`,
		`return runtime.Flag("editor", "disconnect")`,
		`return runtime.Data("address", "", runtime.OrderByFields(p.params))`,
		"func (p userOrderByParamCreatedAt) OrderByField() runtime.Field {",
	} {
		assert.Contains(t, src, want)
	}
	assert.NotContains(t, src, "userWithParamPosts", "eager loads are emitted with their accessor")
}

func TestEmitAccessors(t *testing.T) {
	src := emit(t)
	for _, want := range []string{
		"type userEmailField struct{}",
		"func (userEmailField) Equals(value string) UserUniqueWhereParam {",
		"func (userEmailField) In(value []string) UserWhereParam {",
		"func (userEmailField) Contains(value string) UserWhereParam {",
		"func (userEmailField) Set(value string) UserSetParam {",
		"func (userEmailField) Order(order runtime.SortOrder) UserOrderByParam {",
		"func (userCreatedAtField) Gt(value time.Time) UserWhereParam {",
		"func (userRoleField) Equals(value Role) UserWhereParam {",
		"func (userTagsField) Has(value string) UserWhereParam {",
		"func (userTagsField) IsEmpty(value bool) UserWhereParam {",
		"func (userTagsField) Set(value []string) UserSetParam {",
		"func (userPostsField) Some(params ...PostWhereParam) UserWhereParam {",
		"func (userPostsField) Connect(params ...PostUniqueWhereParam) UserSetParam {",
		"func (postEditorField) Connect(param UserUniqueWhereParam) PostSetParam {",
		"func (postEditorField) IsNull() PostWhereParam {",
		"func (postMetaField) Equals(value *json.RawMessage) PostWhereParam {",
		"func (userAddressField) Set(value *AddressCreate) UserSetParam {",
		"func (userAddressField) Upsert(create AddressCreate, update ...AddressSetParam) UserSetParam {",
		"func (userAddressesField) Equals(params ...[]AddressWhereParam) UserWhereParam {",
		"func (userAddressesField) Push(values ...AddressCreate) UserSetParam {",
		"func (userAddressesField) UpdateMany(where []AddressWhereParam, data ...AddressSetParam) UserSetParam {",
	} {
		assert.Contains(t, src, want)
	}
}

func TestEmitDualEquals(t *testing.T) {
	src := emit(t)
	assert.Contains(t, src, "type UserNicknameEquals struct {")
	assert.Contains(t, src, "func (userNicknameField) Equals(value string) UserNicknameEquals {")
	assert.Contains(t, src, "func (UserNicknameEquals) isUserWhereParam() {}")
	assert.Contains(t, src, "func (UserNicknameEquals) isUserUniqueWhereParam() {}")
	assert.Contains(t, src, "func (userNicknameField) IsNull() UserWhereParam {")
	assert.NotContains(t, src, "userUniqueWhereParamNicknameEquals")
}

func TestEmitCompound(t *testing.T) {
	src := emit(t)
	assert.Contains(t, src, "type membershipUserIDGroupIDField struct{}")
	assert.Contains(t, src, "func (membershipUserIDGroupIDField) Equals(userID string, groupID string) MembershipUniqueWhereParam {")
	assert.Contains(t, src, `return runtime.Data("userId_groupId", "", []runtime.Field{runtime.SetValue("userId", p.userID), runtime.SetValue("groupId", p.groupID)})`)
	assert.Regexp(t, `UserIDGroupID\s+membershipUserIDGroupIDField`, src)
}

func TestEmitFetch(t *testing.T) {
	src := emit(t)
	for _, want := range []string{
		"type UserPostsFetch struct {",
		"func (UserPostsFetch) isUserWithParam() {}",
		"func (f UserPostsFetch) WithSelection() runtime.Selection {",
		"func (f UserPostsFetch) Where(params ...PostWhereParam) UserPostsFetch {",
		"func (f UserPostsFetch) OrderBy(params ...PostOrderByParam) UserPostsFetch {",
		"func (f UserPostsFetch) Cursor(params ...PostUniqueWhereParam) UserPostsFetch {",
		"func (f UserPostsFetch) Skip(n int64) UserPostsFetch {",
		"func (f UserPostsFetch) Take(n int64) UserPostsFetch {",
		"func (f UserPostsFetch) With(params ...PostWithParam) UserPostsFetch {",
		"func (userPostsField) Fetch(params ...PostWhereParam) UserPostsFetch {",
		`runtime.NewFetch("posts", postModel, runtime.WhereFields(params))`,
		"func (postEditorField) Fetch() PostEditorFetch {",
		`runtime.NewFetch("editor", userModel, nil)`,
	} {
		assert.Contains(t, src, want)
	}
	assert.NotContains(t, src, "func (f PostEditorFetch) Take(")
}

func TestEmitOperations(t *testing.T) {
	src := emit(t)
	for _, want := range []string{
		"var User userActions",
		"func (userActions) FindUnique(where UserUniqueWhereParam) *runtime.FindUnique[UserWithParam] {",
		"func (userActions) FindFirst(params ...UserWhereParam) *runtime.FindFirst[UserWhereParam, UserOrderByParam, UserUniqueWhereParam, UserWithParam] {",
		"func (userActions) FindMany(params ...UserWhereParam) *runtime.FindMany[UserWhereParam, UserOrderByParam, UserUniqueWhereParam, UserWithParam] {",
		"func (userActions) Count(params ...UserWhereParam) *runtime.Count[UserWhereParam, UserOrderByParam, UserUniqueWhereParam] {",
		"func (userActions) CreateOne(params ...UserSetParam) *runtime.Create[UserSetParam, UserWithParam] {",
		"func (userActions) CreateMany(rows ...[]UserSetParam) *runtime.CreateMany[UserSetParam] {",
		"return runtime.NewCreateMany[UserSetParam](userModel, runtime.SetRows(rows))",
		"func (userActions) UpdateOne(where UserUniqueWhereParam, params ...UserSetParam) *runtime.Update[UserSetParam, UserWithParam] {",
		"func (userActions) UpdateMany(where []UserWhereParam, params ...UserSetParam) *runtime.UpdateMany[UserWhereParam, UserSetParam] {",
		"func (userActions) DeleteOne(where UserUniqueWhereParam) *runtime.Delete[UserWithParam] {",
		"func (userActions) DeleteMany(params ...UserWhereParam) *runtime.DeleteMany[UserWhereParam] {",
		"func (userActions) UpsertOne(where UserUniqueWhereParam, create []UserSetParam, update []UserSetParam) *runtime.Upsert[UserSetParam, UserWithParam] {",
		"return runtime.NewFindUnique[UserWithParam](userModel, []runtime.Field{where.WhereField()})",
	} {
		assert.Contains(t, src, want)
	}
	assert.NotContains(t, src, "func (addressActions) FindMany(", "composites have no operations")
}

func TestEmitModels(t *testing.T) {
	src := emit(t)
	assert.Contains(t, src, "var userModel = runtime.Model{")
	assert.Regexp(t, `Name:\s+"address"`, src)
	assert.NotRegexp(t, `Name:\s+"posts"`, src, "relations are not selected by default")
	assert.Contains(t, src, "type UserModel struct {")
	assert.Regexp(t, "Email\\s+string\\s+`json:\"email\"`", src)
	assert.Regexp(t, "Nickname\\s+\\*string\\s+`json:\"nickname,omitempty\"`", src)
	assert.Regexp(t, "CreatedAt\\s+time.Time\\s+`json:\"createdAt\"`", src)
	assert.Regexp(t, "Posts\\s+\\[\\]PostModel\\s+`json:\"posts,omitempty\"`", src)
	assert.Regexp(t, "Editor\\s+\\*UserModel\\s+`json:\"editor,omitempty\"`", src)
	assert.Regexp(t, "Address\\s+\\*AddressModel\\s+`json:\"address,omitempty\"`", src)
	assert.Contains(t, src, "type AddressModel struct {")
}

func TestEmitCreateInput(t *testing.T) {
	src := emit(t)
	assert.Contains(t, src, "type AddressCreate struct {")
	assert.Regexp(t, `Street\s+string`, src)
	assert.Regexp(t, `City\s+\*string`, src)
	assert.Regexp(t, `Lines\s+\[\]string`, src)
	assert.Contains(t, src, "func (c AddressCreate) WireValue() runtime.Value {")
	assert.Contains(t, src, `fields = append(fields, runtime.SetValue("street", c.Street))`)
	assert.Contains(t, src, "if c.City != nil {")
	assert.Contains(t, src, "return runtime.Object(fields...)")
	assert.Contains(t, src, "func (addressActions) Create(street string) AddressCreate {")
	assert.Contains(t, src, "var Address addressActions")

	assert.Contains(t, src, "type TreeCreate struct {", "create input of a composite that cannot be created")
	assert.NotContains(t, src, "func (treeActions) Create(")
	assert.Regexp(t, "Node\\s+\\*TreeModel\\s+`json:\"node\"`", src, "self-embedding is held by pointer")
}

func TestScalar(t *testing.T) {
	for _, st := range []schema.ScalarType{
		schema.TypeString, schema.TypeInt, schema.TypeBigInt, schema.TypeFloat, schema.TypeDecimal,
		schema.TypeBoolean, schema.TypeDateTime, schema.TypeJSON, schema.TypeBytes,
	} {
		_, err := scalar(st)
		assert.NoError(t, err, st)
	}
	_, err := scalar(schema.TypeUnsupported)
	assert.Error(t, err)
}
