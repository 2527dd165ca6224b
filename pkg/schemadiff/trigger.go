package schemadiff

import (
	"github.com/pseudomuto/sqltools/pkg/compare"
	"github.com/pseudomuto/sqltools/pkg/schema"
)

// compareTriggers compares triggers by name. A changed trigger is emitted as a single
// create, which renders as CREATE OR REPLACE. The WHEN condition isn't compared.
func compareTriggers(sources, targets []*schema.Trigger) []Diff {
	return compareByName(sources, targets,
		func(t *schema.Trigger) string { return t.Name },
		func(source, target *schema.Trigger) []Diff {
			if ignored(source, target, DiffOptions{}, func(t *schema.Trigger) bool { return t.Synchronize }) {
				return nil
			}

			switch {
			case target == nil:
				return []Diff{&TriggerCreate{
					DiffBase: base(DiffTriggerCreate, ReasonMissingInTarget),
					Trigger:  source,
				}}
			case source == nil:
				return []Diff{&TriggerDrop{
					DiffBase:    base(DiffTriggerDrop, ReasonMissingInSource),
					TableName:   target.TableName,
					TriggerName: target.Name,
				}}
			}

			reason := triggerDifference(source, target)
			if reason == "" {
				return nil
			}

			return []Diff{&TriggerCreate{DiffBase: base(DiffTriggerCreate, reason), Trigger: source}}
		},
	)
}

func triggerDifference(source, target *schema.Trigger) string {
	switch {
	case source.FunctionName != target.FunctionName:
		return different("function", source.FunctionName, target.FunctionName)
	case !compare.Slices(source.Actions, target.Actions, func(a, b schema.TriggerAction) bool { return a == b }):
		return different("action", describeList(source.Actions), describeList(target.Actions))
	case source.Timing != target.Timing:
		return different("timing method", string(source.Timing), string(target.Timing))
	case source.Scope != target.Scope:
		return different("scope", string(source.Scope), string(target.Scope))
	case !compare.Pointers(source.ReferencingNewTableAs, target.ReferencingNewTableAs):
		return different("new table reference", describe(source.ReferencingNewTableAs), describe(target.ReferencingNewTableAs))
	case !compare.Pointers(source.ReferencingOldTableAs, target.ReferencingOldTableAs):
		return different("old table reference", describe(source.ReferencingOldTableAs), describe(target.ReferencingOldTableAs))
	default:
		return ""
	}
}
