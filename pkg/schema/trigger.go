package schema

import (
	"github.com/pkg/errors"
)

type (
	// TriggerTiming is when a trigger fires relative to the triggering event.
	TriggerTiming string

	// TriggerAction is an event that fires a trigger.
	TriggerAction string

	// TriggerScope is whether a trigger fires per row or per statement.
	TriggerScope string

	// Trigger is a table trigger executing a function.
	Trigger struct {
		Name      string
		TableName string
		Timing    TriggerTiming
		// Actions is never empty; the rendered trigger joins them with OR
		Actions      []TriggerAction
		Scope        TriggerScope
		FunctionName string
		// ReferencingOldTableAs and ReferencingNewTableAs name transition tables
		ReferencingOldTableAs *string
		ReferencingNewTableAs *string
		When                  *string
		Synchronize           bool
	}

	// TriggerType is the decoded form of a pg_trigger.tgtype bitmask.
	TriggerType struct {
		Scope   TriggerScope
		Timing  TriggerTiming
		Actions []TriggerAction
	}
)

const (
	TimingBefore    TriggerTiming = "before"
	TimingAfter     TriggerTiming = "after"
	TimingInsteadOf TriggerTiming = "instead of"

	ActionInsert   TriggerAction = "insert"
	ActionDelete   TriggerAction = "delete"
	ActionUpdate   TriggerAction = "update"
	ActionTruncate TriggerAction = "truncate"

	ScopeRow       TriggerScope = "row"
	ScopeStatement TriggerScope = "statement"
)

// ErrInvalidTriggerType is returned when a trigger type bitmask has no action bit set.
var ErrInvalidTriggerType = errors.New("invalid trigger type")

var (
	triggerRowMask = 1 << 0

	triggerTimingMasks = []struct {
		mask   int
		timing TriggerTiming
	}{
		{mask: 1 << 1, timing: TimingBefore},
		{mask: 1 << 6, timing: TimingInsteadOf},
	}

	triggerActionMasks = []struct {
		mask   int
		action TriggerAction
	}{
		{mask: 1 << 2, action: ActionInsert},
		{mask: 1 << 3, action: ActionDelete},
		{mask: 1 << 4, action: ActionUpdate},
		{mask: 1 << 5, action: ActionTruncate},
	}
)

// ParseTriggerType decodes the trigger type bitmask Postgres stores in pg_trigger.tgtype.
//
// Bit 0 selects row scope (statement otherwise). The before bit (1) is checked ahead of
// the instead-of bit (6), and a trigger with neither fires after. Action bits are checked
// in the order insert (2), delete (3), update (4), truncate (5) and only the first match
// is recorded.
//
// Example:
//
//	tt, err := schema.ParseTriggerType(0b0000101)
//	// tt.Scope == ScopeRow, tt.Timing == TimingAfter, tt.Actions == [ActionInsert]
//
// Returns ErrInvalidTriggerType when no action bit is set.
func ParseTriggerType(code int) (*TriggerType, error) {
	tt := &TriggerType{
		Scope:  ScopeStatement,
		Timing: TimingAfter,
	}

	if hasMask(code, triggerRowMask) {
		tt.Scope = ScopeRow
	}

	for _, m := range triggerTimingMasks {
		if hasMask(code, m.mask) {
			tt.Timing = m.timing
			break
		}
	}

	for _, m := range triggerActionMasks {
		if hasMask(code, m.mask) {
			tt.Actions = append(tt.Actions, m.action)
			break
		}
	}

	if len(tt.Actions) == 0 {
		return nil, errors.Wrapf(ErrInvalidTriggerType, "unable to parse trigger type %d", code)
	}

	return tt, nil
}

func hasMask(value, mask int) bool {
	return value&mask == mask
}
