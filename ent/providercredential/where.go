// Code generated by ent, DO NOT EDIT.

package providercredential

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/scoutqa/scout/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.FieldContainsFold(FieldID, id))
}

// Ciphertext applies equality check predicate on the "ciphertext" field. It's identical to CiphertextEQ.
func Ciphertext(v []byte) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.FieldEQ(FieldCiphertext, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.FieldEQ(FieldUpdatedAt, v))
}

// CiphertextEQ applies the EQ predicate on the "ciphertext" field.
func CiphertextEQ(v []byte) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.FieldEQ(FieldCiphertext, v))
}

// CiphertextNEQ applies the NEQ predicate on the "ciphertext" field.
func CiphertextNEQ(v []byte) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.FieldNEQ(FieldCiphertext, v))
}

// CiphertextIn applies the In predicate on the "ciphertext" field.
func CiphertextIn(vs ...[]byte) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.FieldIn(FieldCiphertext, vs...))
}

// CiphertextNotIn applies the NotIn predicate on the "ciphertext" field.
func CiphertextNotIn(vs ...[]byte) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.FieldNotIn(FieldCiphertext, vs...))
}

// CiphertextGT applies the GT predicate on the "ciphertext" field.
func CiphertextGT(v []byte) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.FieldGT(FieldCiphertext, v))
}

// CiphertextGTE applies the GTE predicate on the "ciphertext" field.
func CiphertextGTE(v []byte) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.FieldGTE(FieldCiphertext, v))
}

// CiphertextLT applies the LT predicate on the "ciphertext" field.
func CiphertextLT(v []byte) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.FieldLT(FieldCiphertext, v))
}

// CiphertextLTE applies the LTE predicate on the "ciphertext" field.
func CiphertextLTE(v []byte) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.FieldLTE(FieldCiphertext, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProviderCredential) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProviderCredential) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProviderCredential) predicate.ProviderCredential {
	return predicate.ProviderCredential(sql.NotPredicates(p))
}
