package format

import (
	"strings"

	"github.com/pseudomuto/sqltools/pkg/schemadiff"
	"github.com/pseudomuto/sqltools/pkg/utils"
)

// triggerCreate renders a multi-line CREATE OR REPLACE TRIGGER statement, one clause
// per line.
//
// Example output:
//
//	CREATE OR REPLACE TRIGGER "TR_..."
//	  AFTER INSERT OR UPDATE ON "users"
//	  FOR EACH ROW
//	  EXECUTE FUNCTION audit();
func (f *Formatter) triggerCreate(d *schemadiff.TriggerCreate) string {
	trigger := d.Trigger

	actions := make([]string, len(trigger.Actions))
	for i, action := range trigger.Actions {
		actions[i] = strings.ToUpper(string(action))
	}

	lines := []string{
		utils.NewSQLBuilder().CreateOrReplace("TRIGGER").Name(trigger.Name).StringWithoutSemicolon(),
		utils.NewSQLBuilder().
			Raw(strings.ToUpper(string(trigger.Timing))).
			Raw(strings.Join(actions, " OR ")).
			Raw("ON").
			Name(trigger.TableName).
			StringWithoutSemicolon(),
	}

	if trigger.ReferencingOldTableAs != nil || trigger.ReferencingNewTableAs != nil {
		b := utils.NewSQLBuilder().Raw("REFERENCING")
		if trigger.ReferencingOldTableAs != nil {
			b.Raw("OLD TABLE AS").Name(*trigger.ReferencingOldTableAs)
		}
		if trigger.ReferencingNewTableAs != nil {
			b.Raw("NEW TABLE AS").Name(*trigger.ReferencingNewTableAs)
		}
		lines = append(lines, b.StringWithoutSemicolon())
	}

	if trigger.Scope != "" {
		lines = append(lines, "FOR EACH "+strings.ToUpper(string(trigger.Scope)))
	}

	if trigger.When != nil {
		lines = append(lines, utils.NewSQLBuilder().Raw("WHEN").Parens(*trigger.When).StringWithoutSemicolon())
	}

	lines = append(lines, "EXECUTE FUNCTION "+trigger.FunctionName+"();")
	return strings.Join(lines, "\n  ")
}

func (f *Formatter) triggerDrop(d *schemadiff.TriggerDrop) string {
	return utils.NewSQLBuilder().
		Drop("TRIGGER").
		Name(d.TriggerName).
		Raw("ON").
		Name(d.TableName).
		String()
}
