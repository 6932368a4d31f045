// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ProviderCredentialsColumns holds the columns for the "provider_credentials" table.
	ProviderCredentialsColumns = []*schema.Column{
		{Name: "team_id", Type: field.TypeString, Unique: true},
		{Name: "ciphertext", Type: field.TypeBytes},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProviderCredentialsTable holds the schema information for the "provider_credentials" table.
	ProviderCredentialsTable = &schema.Table{
		Name:       "provider_credentials",
		Columns:    ProviderCredentialsColumns,
		PrimaryKey: []*schema.Column{ProviderCredentialsColumns[0]},
	}
	// TeamStatesColumns holds the columns for the "team_states" table.
	TeamStatesColumns = []*schema.Column{
		{Name: "team_id", Type: field.TypeString, Unique: true},
		{Name: "state", Type: field.TypeJSON},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TeamStatesTable holds the schema information for the "team_states" table.
	TeamStatesTable = &schema.Table{
		Name:       "team_states",
		Columns:    TeamStatesColumns,
		PrimaryKey: []*schema.Column{TeamStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "teamstate_updated_at",
				Unique:  false,
				Columns: []*schema.Column{TeamStatesColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ProviderCredentialsTable,
		TeamStatesTable,
	}
)

func init() {
}
