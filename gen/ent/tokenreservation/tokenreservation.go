// Code generated by ent, DO NOT EDIT.

package tokenreservation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the tokenreservation type in the database.
	Label = "token_reservation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldAmountReserved holds the string denoting the amount_reserved field in the database.
	FieldAmountReserved = "amount_reserved"
	// FieldAmountConsumed holds the string denoting the amount_consumed field in the database.
	FieldAmountConsumed = "amount_consumed"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldReleasedAt holds the string denoting the released_at field in the database.
	FieldReleasedAt = "released_at"
	// Table holds the table name of the tokenreservation in the database.
	Table = "token_reservation"
)

// Columns holds all SQL columns for tokenreservation fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldJobID,
	FieldAmountReserved,
	FieldAmountConsumed,
	FieldCreatedAt,
	FieldReleasedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// AmountReservedValidator is a validator for the "amount_reserved" field. It is called by the builders before save.
	AmountReservedValidator func(int64) error
	// DefaultAmountConsumed holds the default value on creation for the "amount_consumed" field.
	DefaultAmountConsumed int64
	// AmountConsumedValidator is a validator for the "amount_consumed" field. It is called by the builders before save.
	AmountConsumedValidator func(int64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the TokenReservation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByAmountReserved orders the results by the amount_reserved field.
func ByAmountReserved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmountReserved, opts...).ToFunc()
}

// ByAmountConsumed orders the results by the amount_consumed field.
func ByAmountConsumed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmountConsumed, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByReleasedAt orders the results by the released_at field.
func ByReleasedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReleasedAt, opts...).ToFunc()
}
