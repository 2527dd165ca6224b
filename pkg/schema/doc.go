// Package schema provides the Postgres schema model compared by the diff engine.
//
// A Schema is an immutable snapshot of a database: tables (with their columns,
// constraints, indexes and triggers), enums, functions, extensions and database
// parameters. Two snapshots exist per run. The source describes the desired schema
// and the target describes what a live database currently holds. Neither is ever
// modified by this module.
//
// Every entity carries a Synchronize flag. Entities with Synchronize set to false are
// managed outside of sqltools and are ignored entirely when diffing.
//
// # Snapshots
//
// Snapshots are loaded from YAML documents:
//
//	tables:
//	  - name: users
//	    columns:
//	      - name: id
//	        type: uuid
//	        default: uuid_generate_v4()
//	      - name: email
//	        type: character varying(255)
//	      - name: status
//	        type: enum
//	        enum: user_status
//	    constraints:
//	      - type: primary-key
//	        columns: [id]
//	    indexes:
//	      - columns: [email]
//	        where: '"deletedAt" IS NULL'
//	enums:
//	  - name: user_status
//	    values: [active, disabled]
//	extensions:
//	  - name: uuid-ossp
//
// Constraint, index and trigger names are generated from their definitions when not
// given, using the same scheme as the naming helpers in pkg/utils.
//
// Usage:
//
//	source, err := schema.LoadSnapshotFile("schema/source.yaml")
//	if err != nil {
//		return err
//	}
//
// # Functions
//
// NewFunction renders a CREATE OR REPLACE FUNCTION statement with an embedded content
// hash, and FunctionFromDefinition recovers that hash from an introspected definition.
// Comparing hashes rather than statement text makes the comparison independent of how
// the database reformats the definition.
//
// # Triggers
//
// ParseTriggerType decodes the pg_trigger.tgtype bitmask reported by Postgres into a
// scope, timing and action.
package schema
