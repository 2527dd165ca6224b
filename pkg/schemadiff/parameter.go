package schemadiff

import (
	"github.com/pseudomuto/sqltools/pkg/schema"
)

// compareParameters compares parameters by existence only; a value change is not
// detected.
func compareParameters(sources, targets []*schema.Parameter, opts DiffOptions) []Diff {
	return compareByName(sources, targets,
		func(p *schema.Parameter) string { return p.Name },
		func(source, target *schema.Parameter) []Diff {
			if ignored(source, target, opts, func(p *schema.Parameter) bool { return p.Synchronize }) {
				return nil
			}

			switch {
			case target == nil:
				return []Diff{&ParameterSet{
					DiffBase:  base(DiffParameterSet, ReasonMissingInTarget),
					Parameter: source,
				}}
			case source == nil:
				return []Diff{&ParameterReset{
					DiffBase:      base(DiffParameterReset, ReasonMissingInSource),
					DatabaseName:  target.DatabaseName,
					ParameterName: target.Name,
				}}
			default:
				return nil
			}
		},
	)
}
