package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ProviderCredential holds the schema definition for the ProviderCredential
// entity: a team's provider API keys, AES-GCM encrypted at rest. Keys are
// stored separately from TeamState so they never flow through the shared
// document.
type ProviderCredential struct {
	ent.Schema
}

// Fields of the ProviderCredential.
func (ProviderCredential) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("team_id").
			Unique().
			Immutable(),
		field.Bytes("ciphertext").
			Comment("AES-GCM sealed JSON of models.ProviderKeys (nonce-prefixed)"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
