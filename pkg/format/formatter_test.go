package format_test

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	. "github.com/pseudomuto/sqltools/pkg/format"
	"github.com/pseudomuto/sqltools/pkg/schema"
	"github.com/pseudomuto/sqltools/pkg/schemadiff"
	"github.com/pseudomuto/sqltools/pkg/utils"
	"github.com/stretchr/testify/require"
)

func base(typ schemadiff.DiffType) schemadiff.DiffBase {
	return schemadiff.DiffBase{Type: typ, Reason: "test reason"}
}

func TestFormatter_Statements(t *testing.T) {
	tests := []struct {
		name     string
		item     schemadiff.Diff
		expected []string
	}{
		{
			name: "enum create",
			item: &schemadiff.EnumCreate{
				DiffBase: base(schemadiff.DiffEnumCreate),
				Enum:     &schema.Enum{Name: "status", Values: []string{"active", "it's off"}},
			},
			expected: []string{`CREATE TYPE "status" AS ENUM ('active','it''s off');`},
		},
		{
			name:     "enum drop",
			item:     &schemadiff.EnumDrop{DiffBase: base(schemadiff.DiffEnumDrop), EnumName: "status"},
			expected: []string{`DROP TYPE "status";`},
		},
		{
			name: "database parameter set",
			item: &schemadiff.ParameterSet{
				DiffBase: base(schemadiff.DiffParameterSet),
				Parameter: &schema.Parameter{
					Name:         "search_path",
					Value:        `"$user", public`,
					Scope:        schema.ParameterScopeDatabase,
					DatabaseName: "app",
				},
			},
			expected: []string{`ALTER DATABASE "app" SET search_path TO "$user", public;`},
		},
		{
			name: "user parameter set",
			item: &schemadiff.ParameterSet{
				DiffBase:  base(schemadiff.DiffParameterSet),
				Parameter: &schema.Parameter{Name: "work_mem", Value: "'64MB'", Scope: schema.ParameterScopeUser},
			},
			expected: []string{`SET work_mem TO '64MB';`},
		},
		{
			name: "parameter reset",
			item: &schemadiff.ParameterReset{
				DiffBase:      base(schemadiff.DiffParameterReset),
				DatabaseName:  "app",
				ParameterName: "search_path",
			},
			expected: []string{`ALTER DATABASE "app" RESET "search_path";`},
		},
		{
			name: "extension create",
			item: &schemadiff.ExtensionCreate{
				DiffBase:  base(schemadiff.DiffExtensionCreate),
				Extension: &schema.Extension{Name: "uuid-ossp"},
			},
			expected: []string{`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`},
		},
		{
			name:     "extension drop",
			item:     &schemadiff.ExtensionDrop{DiffBase: base(schemadiff.DiffExtensionDrop), ExtensionName: "uuid-ossp"},
			expected: []string{`DROP EXTENSION "uuid-ossp";`},
		},
		{
			name: "function create",
			item: &schemadiff.FunctionCreate{
				DiffBase: base(schemadiff.DiffFunctionCreate),
				Function: &schema.Function{Name: "one", Expression: "CREATE OR REPLACE FUNCTION one() RETURNS integer AS $$ SELECT 1 $$;"},
			},
			expected: []string{"CREATE OR REPLACE FUNCTION one() RETURNS integer AS $$ SELECT 1 $$;"},
		},
		{
			name:     "function drop",
			item:     &schemadiff.FunctionDrop{DiffBase: base(schemadiff.DiffFunctionDrop), FunctionName: "one"},
			expected: []string{`DROP FUNCTION one;`},
		},
		{
			name: "table create",
			item: &schemadiff.TableCreate{
				DiffBase:  base(schemadiff.DiffTableCreate),
				TableName: "table1",
				Columns: []*schema.Column{
					{TableName: "table1", Name: "column1", Type: "character varying"},
				},
			},
			expected: []string{`CREATE TABLE "table1" ("column1" character varying NOT NULL);`},
		},
		{
			name: "table create with modifiers",
			item: &schemadiff.TableCreate{
				DiffBase:  base(schemadiff.DiffTableCreate),
				TableName: "users",
				Columns: []*schema.Column{
					{TableName: "users", Name: "id", Type: "integer", Identity: true},
					{TableName: "users", Name: "tags", Type: "text", IsArray: true, Nullable: true, Default: utils.Ptr("'{}'")},
					{TableName: "users", Name: "bio", Type: "text", Nullable: true, Comment: utils.Ptr("About me"), Storage: schema.StorageMain},
				},
			},
			expected: []string{
				`CREATE TABLE "users" ("id" integer NOT NULL GENERATED ALWAYS AS IDENTITY, "tags" text[] DEFAULT '{}', "bio" text);`,
				`COMMENT ON COLUMN "users"."bio" IS 'About me';`,
				`ALTER TABLE "users" ALTER COLUMN "bio" SET STORAGE MAIN;`,
			},
		},
		{
			name:     "table drop",
			item:     &schemadiff.TableDrop{DiffBase: base(schemadiff.DiffTableDrop), TableName: "users"},
			expected: []string{`DROP TABLE "users";`},
		},
		{
			name: "column add",
			item: &schemadiff.ColumnAdd{
				DiffBase: base(schemadiff.DiffColumnAdd),
				Column:   &schema.Column{TableName: "users", Name: "name", Type: "character varying", Length: utils.Ptr(100), Default: utils.Ptr("''")},
			},
			expected: []string{`ALTER TABLE "users" ADD "name" character varying(100) NOT NULL DEFAULT '';`},
		},
		{
			name:     "column drop",
			item:     &schemadiff.ColumnDrop{DiffBase: base(schemadiff.DiffColumnDrop), TableName: "users", ColumnName: "name"},
			expected: []string{`ALTER TABLE "users" DROP COLUMN "name";`},
		},
		{
			name: "column alter nullable",
			item: &schemadiff.ColumnAlter{
				DiffBase:   base(schemadiff.DiffColumnAlter),
				TableName:  "users",
				ColumnName: "name",
				Changes:    schemadiff.ColumnChanges{Nullable: utils.Ptr(false)},
			},
			expected: []string{`ALTER TABLE "users" ALTER COLUMN "name" SET NOT NULL;`},
		},
		{
			name: "column alter all changes",
			item: &schemadiff.ColumnAlter{
				DiffBase:   base(schemadiff.DiffColumnAlter),
				TableName:  "users",
				ColumnName: "name",
				Changes: schemadiff.ColumnChanges{
					Nullable: utils.Ptr(true),
					Default:  utils.Ptr("'anonymous'"),
					Storage:  schema.StorageExtended,
					Comment:  utils.Ptr("Display name"),
				},
			},
			expected: []string{
				`ALTER TABLE "users" ALTER COLUMN "name" DROP NOT NULL;`,
				`ALTER TABLE "users" ALTER COLUMN "name" SET DEFAULT 'anonymous';`,
				`ALTER TABLE "users" ALTER COLUMN "name" SET STORAGE EXTENDED;`,
				`COMMENT ON COLUMN "users"."name" IS 'Display name';`,
			},
		},
		{
			name: "column alter drops",
			item: &schemadiff.ColumnAlter{
				DiffBase:   base(schemadiff.DiffColumnAlter),
				TableName:  "users",
				ColumnName: "name",
				Changes:    schemadiff.ColumnChanges{DropDefault: true, DropComment: true},
			},
			expected: []string{
				`ALTER TABLE "users" ALTER COLUMN "name" DROP DEFAULT;`,
				`COMMENT ON COLUMN "users"."name" IS NULL;`,
			},
		},
		{
			name: "primary key add",
			item: &schemadiff.ConstraintAdd{
				DiffBase: base(schemadiff.DiffConstraintAdd),
				Constraint: &schema.PrimaryKeyConstraint{
					ConstraintBase: schema.ConstraintBase{Name: "PK_users", TableName: "users"},
					ColumnNames:    []string{"tenantId", "id"},
				},
			},
			expected: []string{`ALTER TABLE "users" ADD CONSTRAINT "PK_users" PRIMARY KEY ("tenantId", "id");`},
		},
		{
			name: "foreign key add with default actions",
			item: &schemadiff.ConstraintAdd{
				DiffBase: base(schemadiff.DiffConstraintAdd),
				Constraint: &schema.ForeignKeyConstraint{
					ConstraintBase:       schema.ConstraintBase{Name: "FK_posts", TableName: "posts"},
					ColumnNames:          []string{"authorId"},
					ReferenceTableName:   "users",
					ReferenceColumnNames: []string{"id"},
				},
			},
			expected: []string{`ALTER TABLE "posts" ADD CONSTRAINT "FK_posts" FOREIGN KEY ("authorId") REFERENCES "users" ("id") ON UPDATE NO ACTION ON DELETE NO ACTION;`},
		},
		{
			name: "foreign key add with actions",
			item: &schemadiff.ConstraintAdd{
				DiffBase: base(schemadiff.DiffConstraintAdd),
				Constraint: &schema.ForeignKeyConstraint{
					ConstraintBase:       schema.ConstraintBase{Name: "FK_posts", TableName: "posts"},
					ColumnNames:          []string{"authorId"},
					ReferenceTableName:   "users",
					ReferenceColumnNames: []string{"id"},
					OnDelete:             schema.ActionCascade,
					OnUpdate:             schema.ActionSetNull,
				},
			},
			expected: []string{`ALTER TABLE "posts" ADD CONSTRAINT "FK_posts" FOREIGN KEY ("authorId") REFERENCES "users" ("id") ON UPDATE SET NULL ON DELETE CASCADE;`},
		},
		{
			name: "unique add",
			item: &schemadiff.ConstraintAdd{
				DiffBase: base(schemadiff.DiffConstraintAdd),
				Constraint: &schema.UniqueConstraint{
					ConstraintBase: schema.ConstraintBase{Name: "UQ_email", TableName: "users"},
					ColumnNames:    []string{"email"},
				},
			},
			expected: []string{`ALTER TABLE "users" ADD CONSTRAINT "UQ_email" UNIQUE ("email");`},
		},
		{
			name: "check add",
			item: &schemadiff.ConstraintAdd{
				DiffBase: base(schemadiff.DiffConstraintAdd),
				Constraint: &schema.CheckConstraint{
					ConstraintBase: schema.ConstraintBase{Name: "CHK_age", TableName: "users"},
					Expression:     `"age" > 0`,
				},
			},
			expected: []string{`ALTER TABLE "users" ADD CONSTRAINT "CHK_age" CHECK ("age" > 0);`},
		},
		{
			name: "constraint drop",
			item: &schemadiff.ConstraintDrop{
				DiffBase:       base(schemadiff.DiffConstraintDrop),
				TableName:      "users",
				ConstraintName: "PK_users",
			},
			expected: []string{`ALTER TABLE "users" DROP CONSTRAINT "PK_users";`},
		},
		{
			name: "index create",
			item: &schemadiff.IndexCreate{
				DiffBase: base(schemadiff.DiffIndexCreate),
				Index:    &schema.Index{Name: "IDX_email", TableName: "users", ColumnNames: []string{"email"}, Using: utils.Ptr("btree")},
			},
			expected: []string{`CREATE INDEX "IDX_email" ON "users" ("email");`},
		},
		{
			name: "index create with options",
			item: &schemadiff.IndexCreate{
				DiffBase: base(schemadiff.DiffIndexCreate),
				Index: &schema.Index{
					Name:        "IDX_email",
					TableName:   "users",
					ColumnNames: []string{"email"},
					Unique:      true,
					Using:       utils.Ptr("hash"),
					With:        utils.Ptr("fillfactor = 70"),
					Where:       utils.Ptr(`"deletedAt" IS NULL`),
				},
			},
			expected: []string{`CREATE UNIQUE INDEX "IDX_email" ON "users" USING hash ("email") WITH (fillfactor = 70) WHERE "deletedAt" IS NULL;`},
		},
		{
			name: "index create with expression",
			item: &schemadiff.IndexCreate{
				DiffBase: base(schemadiff.DiffIndexCreate),
				Index: &schema.Index{
					Name:       "IDX_name_trgm",
					TableName:  "users",
					Expression: utils.Ptr("f_unaccent(name) gin_trgm_ops"),
					Using:      utils.Ptr("gin"),
				},
			},
			expected: []string{`CREATE INDEX "IDX_name_trgm" ON "users" USING gin (f_unaccent(name) gin_trgm_ops);`},
		},
		{
			name: "index create with columns and expression",
			item: &schemadiff.IndexCreate{
				DiffBase: base(schemadiff.DiffIndexCreate),
				Index: &schema.Index{
					Name:        "IDX_tenant_email",
					TableName:   "users",
					ColumnNames: []string{"tenantId"},
					Expression:  utils.Ptr(`lower("email")`),
				},
			},
			expected: []string{`CREATE INDEX "IDX_tenant_email" ON "users" ("tenantId", lower("email"));`},
		},
		{
			name:     "index drop",
			item:     &schemadiff.IndexDrop{DiffBase: base(schemadiff.DiffIndexDrop), IndexName: "IDX_email"},
			expected: []string{`DROP INDEX "IDX_email";`},
		},
		{
			name: "trigger create",
			item: &schemadiff.TriggerCreate{
				DiffBase: base(schemadiff.DiffTriggerCreate),
				Trigger: &schema.Trigger{
					Name:         "TR_audit",
					TableName:    "users",
					Timing:       schema.TimingAfter,
					Actions:      []schema.TriggerAction{schema.ActionInsert, schema.ActionDelete},
					Scope:        schema.ScopeStatement,
					FunctionName: "audit",
				},
			},
			expected: []string{"CREATE OR REPLACE TRIGGER \"TR_audit\"\n" +
				"  AFTER INSERT OR DELETE ON \"users\"\n" +
				"  FOR EACH STATEMENT\n" +
				"  EXECUTE FUNCTION audit();"},
		},
		{
			name: "trigger create with references",
			item: &schemadiff.TriggerCreate{
				DiffBase: base(schemadiff.DiffTriggerCreate),
				Trigger: &schema.Trigger{
					Name:                  "TR_audit",
					TableName:             "users",
					Timing:                schema.TimingInsteadOf,
					Actions:               []schema.TriggerAction{schema.ActionUpdate},
					Scope:                 schema.ScopeRow,
					FunctionName:          "audit",
					ReferencingOldTableAs: utils.Ptr("old_rows"),
					ReferencingNewTableAs: utils.Ptr("new_rows"),
					When:                  utils.Ptr("pg_trigger_depth() = 0"),
				},
			},
			expected: []string{"CREATE OR REPLACE TRIGGER \"TR_audit\"\n" +
				"  INSTEAD OF UPDATE ON \"users\"\n" +
				"  REFERENCING OLD TABLE AS \"old_rows\" NEW TABLE AS \"new_rows\"\n" +
				"  FOR EACH ROW\n" +
				"  WHEN (pg_trigger_depth() = 0)\n" +
				"  EXECUTE FUNCTION audit();"},
		},
		{
			name: "trigger drop",
			item: &schemadiff.TriggerDrop{
				DiffBase:    base(schemadiff.DiffTriggerDrop),
				TableName:   "users",
				TriggerName: "TR_audit",
			},
			expected: []string{`DROP TRIGGER "TR_audit" ON "users";`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, New(Defaults).Statements(tt.item))
		})
	}
}

func TestFormatter_Comments(t *testing.T) {
	items := []schemadiff.Diff{
		&schemadiff.IndexDrop{
			DiffBase:  schemadiff.DiffBase{Type: schemadiff.DiffIndexDrop, Reason: "where clause is different (a vs b)"},
			IndexName: "IDX_email",
		},
		&schemadiff.TableCreate{
			DiffBase:  schemadiff.DiffBase{Type: schemadiff.DiffTableCreate, Reason: schemadiff.ReasonMissingInTarget},
			TableName: "users",
			Columns:   []*schema.Column{{TableName: "users", Name: "bio", Type: "text", Nullable: true, Comment: utils.Ptr("About")}},
		},
	}

	require.Equal(t, []string{
		`DROP INDEX "IDX_email"; -- where clause is different (a vs b)`,
		`CREATE TABLE "users" ("bio" text); -- missing in target`,
		`COMMENT ON COLUMN "users"."bio" IS 'About'; -- missing in target`,
	}, Render(items, Options{Comments: true}))

	require.Equal(t, []string{
		`DROP INDEX "IDX_email";`,
		`CREATE TABLE "users" ("bio" text);`,
		`COMMENT ON COLUMN "users"."bio" IS 'About';`,
	}, Render(items, Defaults))
}

func TestRender_Idempotent(t *testing.T) {
	items := []schemadiff.Diff{
		&schemadiff.EnumCreate{DiffBase: base(schemadiff.DiffEnumCreate), Enum: &schema.Enum{Name: "e", Values: []string{"a"}}},
		&schemadiff.TableDrop{DiffBase: base(schemadiff.DiffTableDrop), TableName: "users"},
	}

	opts := Options{Comments: true}
	require.Equal(t, Render(items, opts), Render(items, opts))
	require.Empty(t, Render(nil, opts))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestFormat(t *testing.T) {
	items := []schemadiff.Diff{
		&schemadiff.EnumDrop{DiffBase: base(schemadiff.DiffEnumDrop), EnumName: "a"},
		&schemadiff.EnumDrop{DiffBase: base(schemadiff.DiffEnumDrop), EnumName: "b"},
	}

	var buf bytes.Buffer
	require.NoError(t, Format(&buf, Defaults, items...))
	require.Equal(t, "DROP TYPE \"a\";\nDROP TYPE \"b\";\n", buf.String())

	err := Format(failingWriter{}, Defaults, items...)
	require.ErrorContains(t, err, "failed to write statement")
}
