// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/optipix/imagesync/gen/ent/syncjob"
)

// SyncJob is the model entity for the SyncJob schema.
type SyncJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID uuid.UUID `json:"owner_id,omitempty"`
	// StoreID holds the value of the "store_id" field.
	StoreID uuid.UUID `json:"store_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// StoreDomain holds the value of the "store_domain" field.
	StoreDomain string `json:"store_domain,omitempty"`
	// Folder holds the value of the "folder" field.
	Folder string `json:"folder,omitempty"`
	// TriggerType holds the value of the "trigger_type" field.
	TriggerType string `json:"trigger_type,omitempty"`
	// PresetType holds the value of the "preset_type" field.
	PresetType string `json:"preset_type,omitempty"`
	// PresetID holds the value of the "preset_id" field.
	PresetID *uuid.UUID `json:"preset_id,omitempty"`
	// CustomPrompt holds the value of the "custom_prompt" field.
	CustomPrompt *string `json:"custom_prompt,omitempty"`
	// ProductCount holds the value of the "product_count" field.
	ProductCount int `json:"product_count,omitempty"`
	// ImageCount holds the value of the "image_count" field.
	ImageCount int `json:"image_count,omitempty"`
	// ProcessedCount holds the value of the "processed_count" field.
	ProcessedCount int `json:"processed_count,omitempty"`
	// PushedCount holds the value of the "pushed_count" field.
	PushedCount int `json:"pushed_count,omitempty"`
	// FailedCount holds the value of the "failed_count" field.
	FailedCount int `json:"failed_count,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// MaxRetries holds the value of the "max_retries" field.
	MaxRetries int `json:"max_retries,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError *string `json:"last_error,omitempty"`
	// TokensUsed holds the value of the "tokens_used" field.
	TokensUsed int64 `json:"tokens_used,omitempty"`
	// NextRetryAt holds the value of the "next_retry_at" field.
	NextRetryAt *time.Time `json:"next_retry_at,omitempty"`
	// ApprovedAt holds the value of the "approved_at" field.
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SyncJobQuery when eager-loading is set.
	Edges        SyncJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SyncJobEdges holds the relations/edges for other nodes in the graph.
type SyncJobEdges struct {
	// Items holds the value of the items edge.
	Items []*JobItem `json:"items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e SyncJobEdges) ItemsOrErr() ([]*JobItem, error) {
	if e.loadedTypes[0] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SyncJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case syncjob.FieldPresetID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case syncjob.FieldProductCount, syncjob.FieldImageCount, syncjob.FieldProcessedCount, syncjob.FieldPushedCount, syncjob.FieldFailedCount, syncjob.FieldRetryCount, syncjob.FieldMaxRetries, syncjob.FieldTokensUsed:
			values[i] = new(sql.NullInt64)
		case syncjob.FieldName, syncjob.FieldStoreDomain, syncjob.FieldFolder, syncjob.FieldTriggerType, syncjob.FieldPresetType, syncjob.FieldCustomPrompt, syncjob.FieldStatus, syncjob.FieldLastError:
			values[i] = new(sql.NullString)
		case syncjob.FieldNextRetryAt, syncjob.FieldApprovedAt, syncjob.FieldCompletedAt, syncjob.FieldExpiresAt, syncjob.FieldCreatedAt, syncjob.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case syncjob.FieldID, syncjob.FieldOwnerID, syncjob.FieldStoreID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SyncJob fields.
func (_m *SyncJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case syncjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case syncjob.FieldOwnerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value != nil {
				_m.OwnerID = *value
			}
		case syncjob.FieldStoreID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field store_id", values[i])
			} else if value != nil {
				_m.StoreID = *value
			}
		case syncjob.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case syncjob.FieldStoreDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field store_domain", values[i])
			} else if value.Valid {
				_m.StoreDomain = value.String
			}
		case syncjob.FieldFolder:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field folder", values[i])
			} else if value.Valid {
				_m.Folder = value.String
			}
		case syncjob.FieldTriggerType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_type", values[i])
			} else if value.Valid {
				_m.TriggerType = value.String
			}
		case syncjob.FieldPresetType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preset_type", values[i])
			} else if value.Valid {
				_m.PresetType = value.String
			}
		case syncjob.FieldPresetID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field preset_id", values[i])
			} else if value.Valid {
				_m.PresetID = new(uuid.UUID)
				*_m.PresetID = *value.S.(*uuid.UUID)
			}
		case syncjob.FieldCustomPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field custom_prompt", values[i])
			} else if value.Valid {
				_m.CustomPrompt = new(string)
				*_m.CustomPrompt = value.String
			}
		case syncjob.FieldProductCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field product_count", values[i])
			} else if value.Valid {
				_m.ProductCount = int(value.Int64)
			}
		case syncjob.FieldImageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field image_count", values[i])
			} else if value.Valid {
				_m.ImageCount = int(value.Int64)
			}
		case syncjob.FieldProcessedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processed_count", values[i])
			} else if value.Valid {
				_m.ProcessedCount = int(value.Int64)
			}
		case syncjob.FieldPushedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pushed_count", values[i])
			} else if value.Valid {
				_m.PushedCount = int(value.Int64)
			}
		case syncjob.FieldFailedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed_count", values[i])
			} else if value.Valid {
				_m.FailedCount = int(value.Int64)
			}
		case syncjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case syncjob.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case syncjob.FieldMaxRetries:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_retries", values[i])
			} else if value.Valid {
				_m.MaxRetries = int(value.Int64)
			}
		case syncjob.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = new(string)
				*_m.LastError = value.String
			}
		case syncjob.FieldTokensUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_used", values[i])
			} else if value.Valid {
				_m.TokensUsed = value.Int64
			}
		case syncjob.FieldNextRetryAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_retry_at", values[i])
			} else if value.Valid {
				_m.NextRetryAt = new(time.Time)
				*_m.NextRetryAt = value.Time
			}
		case syncjob.FieldApprovedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field approved_at", values[i])
			} else if value.Valid {
				_m.ApprovedAt = new(time.Time)
				*_m.ApprovedAt = value.Time
			}
		case syncjob.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case syncjob.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		case syncjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case syncjob.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SyncJob.
// This includes values selected through modifiers, order, etc.
func (_m *SyncJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryItems queries the "items" edge of the SyncJob entity.
func (_m *SyncJob) QueryItems() *JobItemQuery {
	return NewSyncJobClient(_m.config).QueryItems(_m)
}

// Update returns a builder for updating this SyncJob.
// Note that you need to call SyncJob.Unwrap() before calling this method if this SyncJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SyncJob) Update() *SyncJobUpdateOne {
	return NewSyncJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SyncJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SyncJob) Unwrap() *SyncJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SyncJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SyncJob) String() string {
	var builder strings.Builder
	builder.WriteString("SyncJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnerID))
	builder.WriteString(", ")
	builder.WriteString("store_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StoreID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("store_domain=")
	builder.WriteString(_m.StoreDomain)
	builder.WriteString(", ")
	builder.WriteString("folder=")
	builder.WriteString(_m.Folder)
	builder.WriteString(", ")
	builder.WriteString("trigger_type=")
	builder.WriteString(_m.TriggerType)
	builder.WriteString(", ")
	builder.WriteString("preset_type=")
	builder.WriteString(_m.PresetType)
	builder.WriteString(", ")
	if v := _m.PresetID; v != nil {
		builder.WriteString("preset_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CustomPrompt; v != nil {
		builder.WriteString("custom_prompt=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("product_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProductCount))
	builder.WriteString(", ")
	builder.WriteString("image_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImageCount))
	builder.WriteString(", ")
	builder.WriteString("processed_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessedCount))
	builder.WriteString(", ")
	builder.WriteString("pushed_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PushedCount))
	builder.WriteString(", ")
	builder.WriteString("failed_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedCount))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	builder.WriteString("max_retries=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxRetries))
	builder.WriteString(", ")
	if v := _m.LastError; v != nil {
		builder.WriteString("last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("tokens_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensUsed))
	builder.WriteString(", ")
	if v := _m.NextRetryAt; v != nil {
		builder.WriteString("next_retry_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ApprovedAt; v != nil {
		builder.WriteString("approved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SyncJobs is a parsable slice of SyncJob.
type SyncJobs []*SyncJob
