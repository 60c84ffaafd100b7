// Package testing provides test utilities for seaquill.
package testing

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/zoobzio/dbml"
)

// FixtureSchema returns the schema shared by the dialect and integration
// tests: Users, Admins and Roles. Column types are portable across SQLite,
// PostgreSQL, MariaDB and SQL Server.
func FixtureSchema() *dbml.Project {
	project := dbml.NewProject("seaquill")

	users := dbml.NewTable("Users")
	users.AddColumn(dbml.NewColumn("Id", "int"))
	users.AddColumn(dbml.NewColumn("Name", "varchar(100)"))
	users.AddColumn(dbml.NewColumn("Active", "int"))
	users.AddColumn(dbml.NewColumn("RoleId", "int"))
	project.AddTable(users)

	admins := dbml.NewTable("Admins")
	admins.AddColumn(dbml.NewColumn("Id", "int"))
	admins.AddColumn(dbml.NewColumn("Name", "varchar(100)"))
	project.AddTable(admins)

	roles := dbml.NewTable("Roles")
	roles.AddColumn(dbml.NewColumn("Id", "int"))
	roles.AddColumn(dbml.NewColumn("Title", "varchar(100)"))
	project.AddTable(roles)

	return project
}

func sortedTables(project *dbml.Project) []*dbml.Table {
	tables := make([]*dbml.Table, 0, len(project.Tables))
	for _, table := range project.Tables {
		tables = append(tables, table)
	}
	sort.Slice(tables, func(i, j int) bool {
		return tables[i].Name < tables[j].Name
	})
	return tables
}

// DropTableSQL returns one DROP TABLE IF EXISTS statement per table of
// project, ordered by table name.
func DropTableSQL(project *dbml.Project) []string {
	tables := sortedTables(project)
	stmts := make([]string, 0, len(tables))
	for _, table := range tables {
		stmts = append(stmts, "drop table if exists "+table.Name)
	}
	return stmts
}

// CreateTableSQL derives one CREATE TABLE statement per table of project,
// ordered by table name.
func CreateTableSQL(project *dbml.Project) []string {
	tables := sortedTables(project)
	stmts := make([]string, 0, len(tables))
	for _, table := range tables {
		columns := make([]string, 0, len(table.Columns))
		for _, col := range table.Columns {
			columns = append(columns, col.Name+" "+col.Type)
		}
		stmts = append(stmts, "create table "+table.Name+" ("+strings.Join(columns, ", ")+")")
	}
	return stmts
}

// SeedSQL returns the fixture rows for FixtureSchema.
//
//	Users:  ada (active, owner), bob (inactive, reader), cy (active, no role)
//	Admins: ada, dee
//	Roles:  owner, reader, guest
func SeedSQL() []string {
	return []string{
		"insert into Users (Id, Name, Active, RoleId) values (1, 'ada', 1, 1), (2, 'bob', 0, 2), (3, 'cy', 1, null)",
		"insert into Admins (Id, Name) values (1, 'ada'), (4, 'dee')",
		"insert into Roles (Id, Title) values (1, 'owner'), (2, 'reader'), (3, 'guest')",
	}
}

// AssertSQL compares expected and actual SQL, reporting detailed differences.
func AssertSQL(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertErrorIs fails the test unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error %v but got nil", target)
	}
	if !errors.Is(err, target) {
		t.Errorf("Expected error %v, got: %v", target, err)
	}
}

// AssertPanics verifies that a function panics.
func AssertPanics(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic but function completed normally")
		}
	}()
	fn()
}
