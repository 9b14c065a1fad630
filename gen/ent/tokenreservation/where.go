// Code generated by ent, DO NOT EDIT.

package tokenreservation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/optipix/imagesync/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldLTE(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldEQ(FieldOwnerID, v))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldEQ(FieldJobID, v))
}

// AmountReserved applies equality check predicate on the "amount_reserved" field. It's identical to AmountReservedEQ.
func AmountReserved(v int64) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldEQ(FieldAmountReserved, v))
}

// AmountConsumed applies equality check predicate on the "amount_consumed" field. It's identical to AmountConsumedEQ.
func AmountConsumed(v int64) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldEQ(FieldAmountConsumed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldEQ(FieldCreatedAt, v))
}

// ReleasedAt applies equality check predicate on the "released_at" field. It's identical to ReleasedAtEQ.
func ReleasedAt(v time.Time) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldEQ(FieldReleasedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uuid.UUID) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uuid.UUID) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uuid.UUID) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uuid.UUID) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldLTE(FieldOwnerID, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v uuid.UUID) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v uuid.UUID) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v uuid.UUID) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v uuid.UUID) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldLTE(FieldJobID, v))
}

// AmountReservedEQ applies the EQ predicate on the "amount_reserved" field.
func AmountReservedEQ(v int64) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldEQ(FieldAmountReserved, v))
}

// AmountReservedNEQ applies the NEQ predicate on the "amount_reserved" field.
func AmountReservedNEQ(v int64) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldNEQ(FieldAmountReserved, v))
}

// AmountReservedIn applies the In predicate on the "amount_reserved" field.
func AmountReservedIn(vs ...int64) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldIn(FieldAmountReserved, vs...))
}

// AmountReservedNotIn applies the NotIn predicate on the "amount_reserved" field.
func AmountReservedNotIn(vs ...int64) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldNotIn(FieldAmountReserved, vs...))
}

// AmountReservedGT applies the GT predicate on the "amount_reserved" field.
func AmountReservedGT(v int64) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldGT(FieldAmountReserved, v))
}

// AmountReservedGTE applies the GTE predicate on the "amount_reserved" field.
func AmountReservedGTE(v int64) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldGTE(FieldAmountReserved, v))
}

// AmountReservedLT applies the LT predicate on the "amount_reserved" field.
func AmountReservedLT(v int64) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldLT(FieldAmountReserved, v))
}

// AmountReservedLTE applies the LTE predicate on the "amount_reserved" field.
func AmountReservedLTE(v int64) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldLTE(FieldAmountReserved, v))
}

// AmountConsumedEQ applies the EQ predicate on the "amount_consumed" field.
func AmountConsumedEQ(v int64) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldEQ(FieldAmountConsumed, v))
}

// AmountConsumedNEQ applies the NEQ predicate on the "amount_consumed" field.
func AmountConsumedNEQ(v int64) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldNEQ(FieldAmountConsumed, v))
}

// AmountConsumedIn applies the In predicate on the "amount_consumed" field.
func AmountConsumedIn(vs ...int64) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldIn(FieldAmountConsumed, vs...))
}

// AmountConsumedNotIn applies the NotIn predicate on the "amount_consumed" field.
func AmountConsumedNotIn(vs ...int64) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldNotIn(FieldAmountConsumed, vs...))
}

// AmountConsumedGT applies the GT predicate on the "amount_consumed" field.
func AmountConsumedGT(v int64) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldGT(FieldAmountConsumed, v))
}

// AmountConsumedGTE applies the GTE predicate on the "amount_consumed" field.
func AmountConsumedGTE(v int64) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldGTE(FieldAmountConsumed, v))
}

// AmountConsumedLT applies the LT predicate on the "amount_consumed" field.
func AmountConsumedLT(v int64) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldLT(FieldAmountConsumed, v))
}

// AmountConsumedLTE applies the LTE predicate on the "amount_consumed" field.
func AmountConsumedLTE(v int64) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldLTE(FieldAmountConsumed, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldLTE(FieldCreatedAt, v))
}

// ReleasedAtEQ applies the EQ predicate on the "released_at" field.
func ReleasedAtEQ(v time.Time) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldEQ(FieldReleasedAt, v))
}

// ReleasedAtNEQ applies the NEQ predicate on the "released_at" field.
func ReleasedAtNEQ(v time.Time) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldNEQ(FieldReleasedAt, v))
}

// ReleasedAtIn applies the In predicate on the "released_at" field.
func ReleasedAtIn(vs ...time.Time) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldIn(FieldReleasedAt, vs...))
}

// ReleasedAtNotIn applies the NotIn predicate on the "released_at" field.
func ReleasedAtNotIn(vs ...time.Time) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldNotIn(FieldReleasedAt, vs...))
}

// ReleasedAtGT applies the GT predicate on the "released_at" field.
func ReleasedAtGT(v time.Time) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldGT(FieldReleasedAt, v))
}

// ReleasedAtGTE applies the GTE predicate on the "released_at" field.
func ReleasedAtGTE(v time.Time) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldGTE(FieldReleasedAt, v))
}

// ReleasedAtLT applies the LT predicate on the "released_at" field.
func ReleasedAtLT(v time.Time) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldLT(FieldReleasedAt, v))
}

// ReleasedAtLTE applies the LTE predicate on the "released_at" field.
func ReleasedAtLTE(v time.Time) predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldLTE(FieldReleasedAt, v))
}

// ReleasedAtIsNil applies the IsNil predicate on the "released_at" field.
func ReleasedAtIsNil() predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldIsNull(FieldReleasedAt))
}

// ReleasedAtNotNil applies the NotNil predicate on the "released_at" field.
func ReleasedAtNotNil() predicate.TokenReservation {
	return predicate.TokenReservation(sql.FieldNotNull(FieldReleasedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TokenReservation) predicate.TokenReservation {
	return predicate.TokenReservation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TokenReservation) predicate.TokenReservation {
	return predicate.TokenReservation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TokenReservation) predicate.TokenReservation {
	return predicate.TokenReservation(sql.NotPredicates(p))
}
