package seaquill_test

import (
	"testing"

	"github.com/zoobzio/seaquill"
	sqtesting "github.com/zoobzio/seaquill/testing"
)

func TestSubquery_DerivedTable(t *testing.T) {
	users := seaquill.Select().Field("Id").Field("Name").From("Users").Where("Active = 1")

	sql, err := seaquill.Select().
		Field("u.Name").
		FromSelect(users, "u").
		Join("Roles", "r", "r.Id = u.Id").
		Render()
	sqtesting.AssertNoError(t, err)
	sqtesting.AssertSQL(t,
		"select u.Name from (select Id, Name from Users where Active = 1) u inner join Roles r on r.Id = u.Id",
		sql)
}

func TestSubquery_Nested(t *testing.T) {
	level1 := seaquill.Select().Field("Id").From("Users")
	level2 := seaquill.Select().Field("Id").FromSelect(level1, "a")
	level3 := seaquill.Select().Field("Id").FromSelect(level2, "b")

	sqtesting.AssertSQL(t,
		"select Id from (select Id from (select Id from Users) a) b",
		level3.String())
}

func TestSubquery_UnionAsDerivedTable(t *testing.T) {
	both := seaquill.Select().Field("Name").From("Users").
		Union(seaquill.Select().Field("Name").From("Admins"))

	sqtesting.AssertSQL(t,
		"select count(*) from (select Name from Users union select Name from Admins) n",
		seaquill.Select().Field("count(*)").FromSelect(both, "n").String())
}

func TestSubquery_OrderedDerivedTable(t *testing.T) {
	latest := seaquill.Select().Top(3).Field("Id").From("Users").OrderBy("Id", seaquill.DESC)

	sqtesting.AssertSQL(t,
		"select * from (select top 3 Id from Users order by Id desc) l",
		seaquill.Select().FromSelect(latest, "l").String())
}

func TestSubquery_DerivedTableInOperand(t *testing.T) {
	inner := seaquill.Select().Field("Name").From("Admins")
	operand := seaquill.Select().Field("a.Name").FromSelect(inner, "a")

	sqtesting.AssertSQL(t,
		"select Name from Users union all select a.Name from (select Name from Admins) a",
		seaquill.Select().Field("Name").From("Users").UnionAll(operand).String())
}

// A rendered statement can be spliced into any fragment.
func TestSubquery_InCondition(t *testing.T) {
	admins := seaquill.Select().Field("Id").From("Admins")

	sqtesting.AssertSQL(t,
		"select Name from Users where Id in (select Id from Admins)",
		seaquill.Select().Field("Name").From("Users").Where("Id in ("+admins.String()+")").String())
}

func TestSubquery_SharedAcrossParents(t *testing.T) {
	shared := seaquill.Select().Field("Id").From("Users")

	a := seaquill.Select().FromSelect(shared, "s")
	b := seaquill.Select().Field("Id").From("Admins").Union(shared)

	sqtesting.AssertSQL(t, "select * from (select Id from Users) s", a.String())
	sqtesting.AssertSQL(t, "select Id from Admins union select Id from Users", b.String())

	shared.Where("Id > 1")
	sqtesting.AssertSQL(t, "select * from (select Id from Users where Id > 1) s", a.String())
	sqtesting.AssertSQL(t, "select Id from Admins union select Id from Users where Id > 1", b.String())
}
