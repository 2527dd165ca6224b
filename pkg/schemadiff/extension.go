package schemadiff

import (
	"github.com/pseudomuto/sqltools/pkg/schema"
)

func compareExtensions(sources, targets []*schema.Extension, opts DiffOptions) []Diff {
	return compareByName(sources, targets,
		func(e *schema.Extension) string { return e.Name },
		func(source, target *schema.Extension) []Diff {
			if ignored(source, target, opts, func(e *schema.Extension) bool { return e.Synchronize }) {
				return nil
			}

			switch {
			case target == nil:
				return []Diff{&ExtensionCreate{
					DiffBase:  base(DiffExtensionCreate, ReasonMissingInTarget),
					Extension: source,
				}}
			case source == nil:
				return []Diff{&ExtensionDrop{
					DiffBase:      base(DiffExtensionDrop, ReasonMissingInSource),
					ExtensionName: target.Name,
				}}
			default:
				return nil
			}
		},
	)
}
