// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// JobItem is the predicate function for jobitem builders.
type JobItem func(*sql.Selector)

// SyncJob is the predicate function for syncjob builders.
type SyncJob func(*sql.Selector)

// TokenAccount is the predicate function for tokenaccount builders.
type TokenAccount func(*sql.Selector)

// TokenReservation is the predicate function for tokenreservation builders.
type TokenReservation func(*sql.Selector)
