package schema

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/pseudomuto/sqltools/pkg/parser"
	"github.com/pseudomuto/sqltools/pkg/utils"
)

// ErrInvalidSnapshot is returned when a snapshot document is well formed YAML but
// doesn't describe a valid schema.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

type (
	snapshotDoc struct {
		Name       string         `yaml:"name"`
		Tables     []tableDoc     `yaml:"tables"`
		Enums      []enumDoc      `yaml:"enums"`
		Functions  []functionDoc  `yaml:"functions"`
		Extensions []extensionDoc `yaml:"extensions"`
		Parameters []parameterDoc `yaml:"parameters"`
	}

	tableDoc struct {
		Name        string          `yaml:"name"`
		Columns     []columnDoc     `yaml:"columns"`
		Constraints []constraintDoc `yaml:"constraints"`
		Indexes     []indexDoc      `yaml:"indexes"`
		Triggers    []triggerDoc    `yaml:"triggers"`
		Synchronize *bool           `yaml:"synchronize"`
	}

	columnDoc struct {
		Name string `yaml:"name"`
		// Type is parsed with parser.ParseColumnType (e.g. "character varying(255)[]")
		Type     string  `yaml:"type"`
		Enum     string  `yaml:"enum"`
		Length   *int    `yaml:"length"`
		Array    *bool   `yaml:"array"`
		Nullable bool    `yaml:"nullable"`
		Default  *string `yaml:"default"`
		// Value is a typed literal rendered with utils.SQLValue; ignored when Default is set
		Value       any     `yaml:"value"`
		Identity    bool    `yaml:"identity"`
		Storage     string  `yaml:"storage"`
		Comment     *string `yaml:"comment"`
		Synchronize *bool   `yaml:"synchronize"`
	}

	constraintDoc struct {
		Type        string        `yaml:"type"`
		Name        string        `yaml:"name"`
		Columns     []string      `yaml:"columns"`
		References  *referenceDoc `yaml:"references"`
		OnDelete    string        `yaml:"onDelete"`
		OnUpdate    string        `yaml:"onUpdate"`
		Expression  string        `yaml:"expression"`
		Synchronize *bool         `yaml:"synchronize"`
	}

	referenceDoc struct {
		Table   string   `yaml:"table"`
		Columns []string `yaml:"columns"`
	}

	indexDoc struct {
		Name        string   `yaml:"name"`
		Columns     []string `yaml:"columns"`
		Expression  *string  `yaml:"expression"`
		Unique      bool     `yaml:"unique"`
		Using       *string  `yaml:"using"`
		With        *string  `yaml:"with"`
		Where       *string  `yaml:"where"`
		Synchronize *bool    `yaml:"synchronize"`
	}

	triggerDoc struct {
		Name string `yaml:"name"`
		// Type is an introspected pg_trigger.tgtype bitmask, used instead of timing,
		// actions and scope when set
		Type                  *int     `yaml:"type"`
		Timing                string   `yaml:"timing"`
		Actions               []string `yaml:"actions"`
		Scope                 string   `yaml:"scope"`
		Function              string   `yaml:"function"`
		ReferencingOldTableAs *string  `yaml:"referencingOldTableAs"`
		ReferencingNewTableAs *string  `yaml:"referencingNewTableAs"`
		When                  *string  `yaml:"when"`
		Synchronize           *bool    `yaml:"synchronize"`
	}

	enumDoc struct {
		Name        string   `yaml:"name"`
		Values      []string `yaml:"values"`
		Synchronize *bool    `yaml:"synchronize"`
	}

	functionDoc struct {
		Name string `yaml:"name"`
		// Definition is a complete statement, usually read back from a database
		Definition  string   `yaml:"definition"`
		Arguments   []string `yaml:"arguments"`
		ReturnType  string   `yaml:"returnType"`
		Language    string   `yaml:"language"`
		Behavior    string   `yaml:"behavior"`
		Parallel    string   `yaml:"parallel"`
		Strict      bool     `yaml:"strict"`
		Body        string   `yaml:"body"`
		Synchronize *bool    `yaml:"synchronize"`
	}

	extensionDoc struct {
		Name        string `yaml:"name"`
		Synchronize *bool  `yaml:"synchronize"`
	}

	parameterDoc struct {
		Name        string `yaml:"name"`
		Value       string `yaml:"value"`
		Scope       string `yaml:"scope"`
		Database    string `yaml:"database"`
		Synchronize *bool  `yaml:"synchronize"`
	}
)

// LoadSnapshot decodes a YAML snapshot document from r.
//
// An empty document yields an empty schema. Entity names must be unique within their
// kind (per table for columns, constraints, indexes and triggers); duplicates and
// other structural problems return an error wrapping ErrInvalidSnapshot.
func LoadSnapshot(r io.Reader) (*Schema, error) {
	var doc snapshotDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to unmarshal snapshot")
	}

	return doc.schema()
}

// LoadSnapshotFile loads a snapshot from the YAML file at path. The schema is named
// after the file when the document doesn't name it.
func LoadSnapshotFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	s, err := LoadSnapshot(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load snapshot: %s", path)
	}

	if s.Name == "" {
		s.Name = path
	}

	return s, nil
}

func (d *snapshotDoc) schema() (*Schema, error) {
	s := &Schema{Name: d.Name}
	names := newNameSet()

	for _, td := range d.Tables {
		if err := names.add("table", td.Name); err != nil {
			return nil, err
		}

		table, err := td.table()
		if err != nil {
			return nil, err
		}
		s.Tables = append(s.Tables, table)
	}

	for _, ed := range d.Enums {
		if err := names.add("enum", ed.Name); err != nil {
			return nil, err
		}
		s.Enums = append(s.Enums, &Enum{Name: ed.Name, Values: ed.Values, Synchronize: boolOr(ed.Synchronize, true)})
	}

	for _, fd := range d.Functions {
		if err := names.add("function", fd.Name); err != nil {
			return nil, err
		}
		s.Functions = append(s.Functions, fd.function())
	}

	for _, xd := range d.Extensions {
		if err := names.add("extension", xd.Name); err != nil {
			return nil, err
		}
		s.Extensions = append(s.Extensions, &Extension{Name: xd.Name, Synchronize: boolOr(xd.Synchronize, true)})
	}

	for _, pd := range d.Parameters {
		if err := names.add("parameter", pd.Name); err != nil {
			return nil, err
		}

		param, err := pd.parameter()
		if err != nil {
			return nil, err
		}
		s.Parameters = append(s.Parameters, param)
	}

	if err := s.checkReferences(); err != nil {
		return nil, err
	}

	return s, nil
}

// checkReferences verifies that foreign keys pointing at tables in the snapshot
// reference existing columns. Tables outside the snapshot aren't checked.
func (s *Schema) checkReferences() error {
	for _, table := range s.Tables {
		for _, c := range table.Constraints {
			fk, ok := c.(*ForeignKeyConstraint)
			if !ok {
				continue
			}

			ref := s.Table(fk.ReferenceTableName)
			if ref == nil {
				continue
			}

			if err := ref.requireColumns("foreign key "+fk.Name+" reference", fk.ReferenceColumnNames); err != nil {
				return errors.Wrapf(err, "table %s", table.Name)
			}
		}
	}

	return nil
}

func (t *Table) requireColumns(owner string, names []string) error {
	for _, name := range names {
		if t.Column(name) == nil {
			return errors.Wrapf(ErrInvalidSnapshot, "%s refers to unknown column %s.%s", owner, t.Name, name)
		}
	}

	return nil
}

func constraintColumns(c Constraint) []string {
	switch c := c.(type) {
	case *PrimaryKeyConstraint:
		return c.ColumnNames
	case *ForeignKeyConstraint:
		return c.ColumnNames
	case *UniqueConstraint:
		return c.ColumnNames
	default:
		return nil
	}
}

func (d *tableDoc) table() (*Table, error) {
	t := &Table{Name: d.Name, Synchronize: boolOr(d.Synchronize, true)}
	names := newNameSet()

	for _, cd := range d.Columns {
		if err := names.add("column", cd.Name); err != nil {
			return nil, errors.Wrapf(err, "table %s", d.Name)
		}

		column, err := cd.column(d.Name)
		if err != nil {
			return nil, err
		}
		t.Columns = append(t.Columns, column)
	}

	for _, cd := range d.Constraints {
		constraint, err := cd.constraint(d.Name)
		if err != nil {
			return nil, err
		}

		if err := names.add("constraint", constraint.Base().Name); err != nil {
			return nil, errors.Wrapf(err, "table %s", d.Name)
		}
		if err := t.requireColumns("constraint "+constraint.Base().Name, constraintColumns(constraint)); err != nil {
			return nil, err
		}
		t.Constraints = append(t.Constraints, constraint)
	}

	for _, id := range d.Indexes {
		index := id.index(d.Name)
		if err := names.add("index", index.Name); err != nil {
			return nil, errors.Wrapf(err, "table %s", d.Name)
		}
		if err := t.requireColumns("index "+index.Name, index.ColumnNames); err != nil {
			return nil, err
		}
		t.Indexes = append(t.Indexes, index)
	}

	for _, trd := range d.Triggers {
		trigger, err := trd.trigger(d.Name)
		if err != nil {
			return nil, err
		}

		if err := names.add("trigger", trigger.Name); err != nil {
			return nil, errors.Wrapf(err, "table %s", d.Name)
		}
		t.Triggers = append(t.Triggers, trigger)
	}

	return t, nil
}

func (d *columnDoc) column(table string) (*Column, error) {
	if d.Type == "" {
		return nil, errors.Wrapf(ErrInvalidSnapshot, "column %s.%s has no type", table, d.Name)
	}

	ct, err := parser.ParseColumnType(d.Type)
	if err != nil {
		return nil, errors.Wrapf(err, "column %s.%s", table, d.Name)
	}

	// Length on an array column is the array size, so a type modifier on an array
	// stays part of the type name.
	typ, length := ct.Name, ct.Length
	if ct.IsArray {
		length = ct.Dimension
		if ct.Length != nil {
			typ += "(" + strconv.Itoa(*ct.Length) + ")"
		}
	}

	c := &Column{
		TableName:   table,
		Name:        d.Name,
		Type:        typ,
		EnumName:    d.Enum,
		Length:      length,
		IsArray:     ct.IsArray,
		Nullable:    d.Nullable,
		Default:     d.Default,
		Identity:    d.Identity,
		Storage:     ColumnStorage(strings.ToLower(d.Storage)),
		Comment:     d.Comment,
		Synchronize: boolOr(d.Synchronize, true),
	}

	if d.Length != nil {
		c.Length = d.Length
	}

	if d.Array != nil {
		c.IsArray = *d.Array
	}

	if c.Default == nil {
		if value, ok := utils.SQLValue(d.Value); ok {
			c.Default = &value
		}
	}

	return c, nil
}

func (d *constraintDoc) constraint(table string) (Constraint, error) {
	base := ConstraintBase{
		Name:        d.Name,
		TableName:   table,
		Synchronize: boolOr(d.Synchronize, true),
	}

	switch ConstraintType(d.Type) {
	case ConstraintPrimaryKey:
		if base.Name == "" {
			base.Name = utils.PrimaryKeyName(table, d.Columns)
		}
		return &PrimaryKeyConstraint{ConstraintBase: base, ColumnNames: d.Columns}, nil
	case ConstraintForeignKey:
		if d.References == nil || d.References.Table == "" {
			return nil, errors.Wrapf(ErrInvalidSnapshot, "foreign key on %s has no reference table", table)
		}
		if base.Name == "" {
			base.Name = utils.ForeignKeyName(table, d.Columns)
		}
		return &ForeignKeyConstraint{
			ConstraintBase:       base,
			ColumnNames:          d.Columns,
			ReferenceTableName:   d.References.Table,
			ReferenceColumnNames: d.References.Columns,
			OnDelete:             ActionType(strings.ToUpper(d.OnDelete)),
			OnUpdate:             ActionType(strings.ToUpper(d.OnUpdate)),
		}, nil
	case ConstraintUnique:
		if base.Name == "" {
			base.Name = utils.UniqueName(table, d.Columns)
		}
		return &UniqueConstraint{ConstraintBase: base, ColumnNames: d.Columns}, nil
	case ConstraintCheck:
		if base.Name == "" {
			base.Name = utils.CheckName(table, d.Expression)
		}
		return &CheckConstraint{ConstraintBase: base, Expression: d.Expression}, nil
	default:
		return nil, errors.Wrapf(ErrInvalidSnapshot, "unknown constraint type %q on %s", d.Type, table)
	}
}

func (d *indexDoc) index(table string) *Index {
	name := d.Name
	if name == "" {
		where := ""
		if d.Where != nil {
			where = *d.Where
		}
		name = utils.IndexName(table, d.Columns, where)
	}

	return &Index{
		Name:        name,
		TableName:   table,
		ColumnNames: d.Columns,
		Expression:  d.Expression,
		Unique:      d.Unique,
		Using:       d.Using,
		With:        d.With,
		Where:       d.Where,
		Synchronize: boolOr(d.Synchronize, true),
	}
}

func (d *triggerDoc) trigger(table string) (*Trigger, error) {
	t := &Trigger{
		Name:                  d.Name,
		TableName:             table,
		Timing:                TriggerTiming(strings.ToLower(d.Timing)),
		Scope:                 TriggerScope(strings.ToLower(d.Scope)),
		FunctionName:          d.Function,
		ReferencingOldTableAs: d.ReferencingOldTableAs,
		ReferencingNewTableAs: d.ReferencingNewTableAs,
		When:                  d.When,
		Synchronize:           boolOr(d.Synchronize, true),
	}

	for _, action := range d.Actions {
		t.Actions = append(t.Actions, TriggerAction(strings.ToLower(action)))
	}

	if d.Type != nil {
		tt, err := ParseTriggerType(*d.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "trigger %s on %s", d.Name, table)
		}

		t.Timing = tt.Timing
		t.Scope = tt.Scope
		t.Actions = tt.Actions
	}

	if len(t.Actions) == 0 {
		return nil, errors.Wrapf(ErrInvalidSnapshot, "trigger %s on %s has no actions", d.Name, table)
	}

	if t.Timing == "" {
		t.Timing = TimingAfter
	}

	if t.Scope == "" {
		t.Scope = ScopeStatement
	}

	if t.Name == "" {
		actions := make([]string, 0, len(t.Actions))
		for _, action := range t.Actions {
			actions = append(actions, string(action))
		}
		t.Name = utils.TriggerName(table, actions, string(t.Scope), string(t.Timing), t.FunctionName)
	}

	return t, nil
}

func (d *functionDoc) function() *Function {
	if d.Definition != "" {
		fn := FunctionFromDefinition(d.Name, d.Definition)
		fn.Synchronize = boolOr(d.Synchronize, true)
		return fn
	}

	return NewFunction(FunctionOptions{
		Name:        d.Name,
		Arguments:   d.Arguments,
		ReturnType:  d.ReturnType,
		Language:    d.Language,
		Behavior:    d.Behavior,
		Parallel:    d.Parallel,
		Strict:      d.Strict,
		Body:        d.Body,
		Synchronize: d.Synchronize,
	})
}

func (d *parameterDoc) parameter() (*Parameter, error) {
	p := &Parameter{
		Name:         d.Name,
		Value:        d.Value,
		Scope:        ParameterScope(strings.ToLower(d.Scope)),
		DatabaseName: d.Database,
		Synchronize:  boolOr(d.Synchronize, true),
	}

	if p.Scope == "" {
		p.Scope = ParameterScopeDatabase
	}

	if p.Scope == ParameterScopeDatabase && p.DatabaseName == "" {
		return nil, errors.Wrapf(ErrInvalidSnapshot, "database parameter %s has no database", d.Name)
	}

	return p, nil
}

type nameSet map[string]struct{}

func newNameSet() nameSet {
	return make(nameSet)
}

func (n nameSet) add(kind, name string) error {
	if name == "" {
		return errors.Wrapf(ErrInvalidSnapshot, "%s with no name", kind)
	}

	key := kind + ":" + name
	if _, ok := n[key]; ok {
		return errors.Wrapf(ErrInvalidSnapshot, "duplicate %s %q", kind, name)
	}

	n[key] = struct{}{}
	return nil
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}

	return *v
}
