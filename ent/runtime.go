// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/scoutqa/scout/ent/providercredential"
	"github.com/scoutqa/scout/ent/schema"
	"github.com/scoutqa/scout/ent/teamstate"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	providercredentialFields := schema.ProviderCredential{}.Fields()
	_ = providercredentialFields
	// providercredentialDescUpdatedAt is the schema descriptor for updated_at field.
	providercredentialDescUpdatedAt := providercredentialFields[2].Descriptor()
	// providercredential.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	providercredential.DefaultUpdatedAt = providercredentialDescUpdatedAt.Default.(func() time.Time)
	// providercredential.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	providercredential.UpdateDefaultUpdatedAt = providercredentialDescUpdatedAt.UpdateDefault.(func() time.Time)
	teamstateFields := schema.TeamState{}.Fields()
	_ = teamstateFields
	// teamstateDescCreatedAt is the schema descriptor for created_at field.
	teamstateDescCreatedAt := teamstateFields[3].Descriptor()
	// teamstate.DefaultCreatedAt holds the default value on creation for the created_at field.
	teamstate.DefaultCreatedAt = teamstateDescCreatedAt.Default.(func() time.Time)
	// teamstateDescUpdatedAt is the schema descriptor for updated_at field.
	teamstateDescUpdatedAt := teamstateFields[4].Descriptor()
	// teamstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	teamstate.DefaultUpdatedAt = teamstateDescUpdatedAt.Default.(func() time.Time)
	// teamstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	teamstate.UpdateDefaultUpdatedAt = teamstateDescUpdatedAt.UpdateDefault.(func() time.Time)
}
