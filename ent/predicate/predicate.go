// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ProviderCredential is the predicate function for providercredential builders.
type ProviderCredential func(*sql.Selector)

// TeamState is the predicate function for teamstate builders.
type TeamState func(*sql.Selector)
