package integration

import (
	"context"
	"database/sql"
	"testing"

	"github.com/zoobzio/seaquill"
	sqtesting "github.com/zoobzio/seaquill/testing"
)

// dialect is a renderer that reports what it can express.
type dialect interface {
	seaquill.Renderer
	Capabilities() seaquill.Capabilities
}

type execFunc func(ctx context.Context, stmt string) error

type countFunc func(ctx context.Context, query string) (int, error)

func dbExec(db *sql.DB) execFunc {
	return func(ctx context.Context, stmt string) error {
		_, err := db.ExecContext(ctx, stmt)
		return err
	}
}

func dbCount(db *sql.DB) countFunc {
	return func(ctx context.Context, query string) (int, error) {
		rows, err := db.QueryContext(ctx, query)
		if err != nil {
			return 0, err
		}
		defer rows.Close()

		n := 0
		for rows.Next() {
			n++
		}
		return n, rows.Err()
	}
}

// queryCase is a statement with the number of rows it returns against the
// fixture data.
type queryCase struct {
	name  string
	build func() *seaquill.Builder
	rows  int
	// requires reports whether a dialect can express the statement.
	requires func(seaquill.Capabilities) bool
}

func fixtureCases() []queryCase {
	return []queryCase{
		{
			name:  "select all",
			build: func() *seaquill.Builder { return seaquill.Select().From("Users") },
			rows:  3,
		},
		{
			name: "where",
			build: func() *seaquill.Builder {
				return seaquill.Select().Field("Name").From("Users").Where("Active = 1")
			},
			rows: 2,
		},
		{
			name: "where combined with and",
			build: func() *seaquill.Builder {
				return seaquill.Select().Field("Name").From("Users").
					Where("Active = 1").
					Where("RoleId = 1 or RoleId = 2")
			},
			rows: 1,
		},
		{
			name: "distinct",
			build: func() *seaquill.Builder {
				return seaquill.Select().Distinct().Field("Active").From("Users")
			},
			rows: 2,
		},
		{
			name: "row limit",
			build: func() *seaquill.Builder {
				return seaquill.Select().Top(2).Field("Name").From("Users").OrderBy("Name", seaquill.DESC)
			},
			rows: 2,
		},
		{
			name: "union",
			build: func() *seaquill.Builder {
				return seaquill.Select().Field("Name").From("Users").
					Union(seaquill.Select().Field("Name").From("Admins"))
			},
			rows: 4,
		},
		{
			name: "union all",
			build: func() *seaquill.Builder {
				return seaquill.Select().Field("Name").From("Users").
					UnionAll(seaquill.Select().Field("Name").From("Admins"))
			},
			rows: 5,
		},
		{
			name: "derived table",
			build: func() *seaquill.Builder {
				return seaquill.Select().Field("u.Name").
					FromSelect(seaquill.Select().Field("Name").From("Users").Where("Active = 1"), "u")
			},
			rows: 2,
		},
		{
			name: "limited derived table",
			build: func() *seaquill.Builder {
				latest := seaquill.Select().Top(2).Field("Name").From("Users").OrderBy("Name", seaquill.DESC)
				return seaquill.Select().Field("l.Name").FromSelect(latest, "l")
			},
			rows: 2,
		},
		{
			name: "left join",
			build: func() *seaquill.Builder {
				return seaquill.Select().Field("u.Name").Field("r.Title", "Role").
					From("Users", "u").
					LeftJoin("Roles", "r", "r.Id = u.RoleId")
			},
			rows: 3,
		},
		{
			name: "inner join",
			build: func() *seaquill.Builder {
				return seaquill.Select().Field("u.Name").
					From("Users", "u").
					Join("Roles", "r", "r.Id = u.RoleId")
			},
			rows: 2,
		},
		{
			name: "right join",
			build: func() *seaquill.Builder {
				return seaquill.Select().Field("r.Title").
					From("Users", "u").
					RightJoin("Roles", "r", "r.Id = u.RoleId")
			},
			rows:     3,
			requires: func(c seaquill.Capabilities) bool { return c.RightJoin },
		},
		{
			name: "full join",
			build: func() *seaquill.Builder {
				return seaquill.Select().Field("u.Name").Field("r.Title").
					From("Users", "u").
					FullJoin("Roles", "r", "r.Id = u.RoleId")
			},
			rows:     4,
			requires: func(c seaquill.Capabilities) bool { return c.FullJoin },
		},
		{
			name: "cross join",
			build: func() *seaquill.Builder {
				return seaquill.Select().Field("u.Name").
					From("Users", "u").
					CrossJoin("Roles", "r")
			},
			rows: 9,
		},
		{
			name: "group by having",
			build: func() *seaquill.Builder {
				return seaquill.Select().Field("Active").Field("count(*)", "Total").
					From("Users").
					GroupBy("Active").
					Having("count(*) > 1")
			},
			rows: 1,
		},
		{
			name: "every clause",
			build: func() *seaquill.Builder {
				recent := seaquill.Select().
					Field("Id").Field("Name").
					From("Users").
					Where("Active = 1").
					UnionAll(seaquill.Select().Field("Id").Field("Name").From("Admins"))

				return seaquill.Select().
					Distinct().
					Top(25).
					Field("x.Name").
					Field("count(*)", "Seen").
					FromSelect(recent, "x").
					LeftJoin("Roles", "r", "r.Id = x.Id").
					Where("x.Name is not null").
					Where("r.Title <> 'guest' or r.Title is null").
					GroupBy("x.Name").
					Having("count(*) > 1").
					OrderBy("Seen", seaquill.DESC).
					OrderBy("x.Name")
			},
			rows: 1,
		},
	}
}

// loadFixtures recreates the fixture tables and rows.
func loadFixtures(ctx context.Context, t *testing.T, exec execFunc) {
	t.Helper()

	schema := sqtesting.FixtureSchema()
	stmts := sqtesting.DropTableSQL(schema)
	stmts = append(stmts, sqtesting.CreateTableSQL(schema)...)
	stmts = append(stmts, sqtesting.SeedSQL()...)

	for _, stmt := range stmts {
		if err := exec(ctx, stmt); err != nil {
			t.Fatalf("Failed to execute SQL: %v\nSQL: %s", err, stmt)
		}
	}
}

// runCases renders every fixture case with d and checks the row count.
// Cases the dialect cannot express must fail to render with an
// unsupported feature error.
func runCases(t *testing.T, d dialect, count countFunc) {
	t.Helper()
	ctx := context.Background()

	for _, tc := range fixtureCases() {
		t.Run(tc.name, func(t *testing.T) {
			query, err := tc.build().RenderWith(d)
			if tc.requires != nil && !tc.requires(d.Capabilities()) {
				sqtesting.AssertErrorIs(t, err, seaquill.ErrUnsupportedFeature)
				return
			}
			sqtesting.AssertNoError(t, err)

			got, err := count(ctx, query)
			if err != nil {
				t.Fatalf("Query failed: %v\nSQL: %s", err, query)
			}
			if got != tc.rows {
				t.Errorf("Got %d rows, want %d\nSQL: %s", got, tc.rows, query)
			}
		})
	}
}
