// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/optipix/imagesync/gen/ent/tokenreservation"
)

// TokenReservation is the model entity for the TokenReservation schema.
type TokenReservation struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID uuid.UUID `json:"owner_id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// AmountReserved holds the value of the "amount_reserved" field.
	AmountReserved int64 `json:"amount_reserved,omitempty"`
	// AmountConsumed holds the value of the "amount_consumed" field.
	AmountConsumed int64 `json:"amount_consumed,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ReleasedAt holds the value of the "released_at" field.
	ReleasedAt   *time.Time `json:"released_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TokenReservation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tokenreservation.FieldAmountReserved, tokenreservation.FieldAmountConsumed:
			values[i] = new(sql.NullInt64)
		case tokenreservation.FieldCreatedAt, tokenreservation.FieldReleasedAt:
			values[i] = new(sql.NullTime)
		case tokenreservation.FieldID, tokenreservation.FieldOwnerID, tokenreservation.FieldJobID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TokenReservation fields.
func (_m *TokenReservation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tokenreservation.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case tokenreservation.FieldOwnerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value != nil {
				_m.OwnerID = *value
			}
		case tokenreservation.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case tokenreservation.FieldAmountReserved:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field amount_reserved", values[i])
			} else if value.Valid {
				_m.AmountReserved = value.Int64
			}
		case tokenreservation.FieldAmountConsumed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field amount_consumed", values[i])
			} else if value.Valid {
				_m.AmountConsumed = value.Int64
			}
		case tokenreservation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tokenreservation.FieldReleasedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field released_at", values[i])
			} else if value.Valid {
				_m.ReleasedAt = new(time.Time)
				*_m.ReleasedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TokenReservation.
// This includes values selected through modifiers, order, etc.
func (_m *TokenReservation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TokenReservation.
// Note that you need to call TokenReservation.Unwrap() before calling this method if this TokenReservation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TokenReservation) Update() *TokenReservationUpdateOne {
	return NewTokenReservationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TokenReservation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TokenReservation) Unwrap() *TokenReservation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TokenReservation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TokenReservation) String() string {
	var builder strings.Builder
	builder.WriteString("TokenReservation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnerID))
	builder.WriteString(", ")
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("amount_reserved=")
	builder.WriteString(fmt.Sprintf("%v", _m.AmountReserved))
	builder.WriteString(", ")
	builder.WriteString("amount_consumed=")
	builder.WriteString(fmt.Sprintf("%v", _m.AmountConsumed))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ReleasedAt; v != nil {
		builder.WriteString("released_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// TokenReservations is a parsable slice of TokenReservation.
type TokenReservations []*TokenReservation
