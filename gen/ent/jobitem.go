// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/optipix/imagesync/gen/ent/jobitem"
	"github.com/optipix/imagesync/gen/ent/syncjob"
)

// JobItem is the model entity for the JobItem schema.
type JobItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// ExternalProductID holds the value of the "external_product_id" field.
	ExternalProductID string `json:"external_product_id,omitempty"`
	// ExternalImageID holds the value of the "external_image_id" field.
	ExternalImageID string `json:"external_image_id,omitempty"`
	// OriginalURL holds the value of the "original_url" field.
	OriginalURL string `json:"original_url,omitempty"`
	// OptimizedURL holds the value of the "optimized_url" field.
	OptimizedURL *string `json:"optimized_url,omitempty"`
	// OptimizedStoragePath holds the value of the "optimized_storage_path" field.
	OptimizedStoragePath *string `json:"optimized_storage_path,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// PushAttempts holds the value of the "push_attempts" field.
	PushAttempts int `json:"push_attempts,omitempty"`
	// LastPushError holds the value of the "last_push_error" field.
	LastPushError *string `json:"last_push_error,omitempty"`
	// PushRetryable holds the value of the "push_retryable" field.
	PushRetryable bool `json:"push_retryable,omitempty"`
	// PushedAt holds the value of the "pushed_at" field.
	PushedAt *time.Time `json:"pushed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobItemQuery when eager-loading is set.
	Edges        JobItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobItemEdges holds the relations/edges for other nodes in the graph.
type JobItemEdges struct {
	// Job holds the value of the job edge.
	Job *SyncJob `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JobItemEdges) JobOrErr() (*SyncJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: syncjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*JobItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case jobitem.FieldPushRetryable:
			values[i] = new(sql.NullBool)
		case jobitem.FieldPushAttempts:
			values[i] = new(sql.NullInt64)
		case jobitem.FieldExternalProductID, jobitem.FieldExternalImageID, jobitem.FieldOriginalURL, jobitem.FieldOptimizedURL, jobitem.FieldOptimizedStoragePath, jobitem.FieldStatus, jobitem.FieldLastPushError:
			values[i] = new(sql.NullString)
		case jobitem.FieldPushedAt, jobitem.FieldCreatedAt, jobitem.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case jobitem.FieldID, jobitem.FieldJobID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JobItem fields.
func (_m *JobItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case jobitem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case jobitem.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case jobitem.FieldExternalProductID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_product_id", values[i])
			} else if value.Valid {
				_m.ExternalProductID = value.String
			}
		case jobitem.FieldExternalImageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_image_id", values[i])
			} else if value.Valid {
				_m.ExternalImageID = value.String
			}
		case jobitem.FieldOriginalURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_url", values[i])
			} else if value.Valid {
				_m.OriginalURL = value.String
			}
		case jobitem.FieldOptimizedURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field optimized_url", values[i])
			} else if value.Valid {
				_m.OptimizedURL = new(string)
				*_m.OptimizedURL = value.String
			}
		case jobitem.FieldOptimizedStoragePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field optimized_storage_path", values[i])
			} else if value.Valid {
				_m.OptimizedStoragePath = new(string)
				*_m.OptimizedStoragePath = value.String
			}
		case jobitem.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case jobitem.FieldPushAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field push_attempts", values[i])
			} else if value.Valid {
				_m.PushAttempts = int(value.Int64)
			}
		case jobitem.FieldLastPushError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_push_error", values[i])
			} else if value.Valid {
				_m.LastPushError = new(string)
				*_m.LastPushError = value.String
			}
		case jobitem.FieldPushRetryable:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field push_retryable", values[i])
			} else if value.Valid {
				_m.PushRetryable = value.Bool
			}
		case jobitem.FieldPushedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field pushed_at", values[i])
			} else if value.Valid {
				_m.PushedAt = new(time.Time)
				*_m.PushedAt = value.Time
			}
		case jobitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case jobitem.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the JobItem.
// This includes values selected through modifiers, order, etc.
func (_m *JobItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the JobItem entity.
func (_m *JobItem) QueryJob() *SyncJobQuery {
	return NewJobItemClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this JobItem.
// Note that you need to call JobItem.Unwrap() before calling this method if this JobItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *JobItem) Update() *JobItemUpdateOne {
	return NewJobItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the JobItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *JobItem) Unwrap() *JobItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: JobItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *JobItem) String() string {
	var builder strings.Builder
	builder.WriteString("JobItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("external_product_id=")
	builder.WriteString(_m.ExternalProductID)
	builder.WriteString(", ")
	builder.WriteString("external_image_id=")
	builder.WriteString(_m.ExternalImageID)
	builder.WriteString(", ")
	builder.WriteString("original_url=")
	builder.WriteString(_m.OriginalURL)
	builder.WriteString(", ")
	if v := _m.OptimizedURL; v != nil {
		builder.WriteString("optimized_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.OptimizedStoragePath; v != nil {
		builder.WriteString("optimized_storage_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("push_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.PushAttempts))
	builder.WriteString(", ")
	if v := _m.LastPushError; v != nil {
		builder.WriteString("last_push_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("push_retryable=")
	builder.WriteString(fmt.Sprintf("%v", _m.PushRetryable))
	builder.WriteString(", ")
	if v := _m.PushedAt; v != nil {
		builder.WriteString("pushed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// JobItems is a parsable slice of JobItem.
type JobItems []*JobItem
