// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// JobItemColumns holds the columns for the "job_item" table.
	JobItemColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "external_product_id", Type: field.TypeString},
		{Name: "external_image_id", Type: field.TypeString},
		{Name: "original_url", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "optimized_url", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "optimized_storage_path", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString},
		{Name: "push_attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_push_error", Type: field.TypeString, Nullable: true},
		{Name: "push_retryable", Type: field.TypeBool, Default: false},
		{Name: "pushed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// JobItemTable holds the schema information for the "job_item" table.
	JobItemTable = &schema.Table{
		Name:       "job_item",
		Columns:    JobItemColumns,
		PrimaryKey: []*schema.Column{JobItemColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_item_sync_job_items",
				Columns:    []*schema.Column{JobItemColumns[13]},
				RefColumns: []*schema.Column{SyncJobColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "jobitem_job_id_status",
				Unique:  false,
				Columns: []*schema.Column{JobItemColumns[13], JobItemColumns[6]},
			},
			{
				Name:    "jobitem_external_image_id",
				Unique:  false,
				Columns: []*schema.Column{JobItemColumns[2]},
			},
		},
	}
	// SyncJobColumns holds the columns for the "sync_job" table.
	SyncJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "store_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "store_domain", Type: field.TypeString, Nullable: true},
		{Name: "folder", Type: field.TypeString, Nullable: true},
		{Name: "trigger_type", Type: field.TypeString},
		{Name: "preset_type", Type: field.TypeString},
		{Name: "preset_id", Type: field.TypeUUID, Nullable: true},
		{Name: "custom_prompt", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "product_count", Type: field.TypeInt},
		{Name: "image_count", Type: field.TypeInt},
		{Name: "processed_count", Type: field.TypeInt, Default: 0},
		{Name: "pushed_count", Type: field.TypeInt, Default: 0},
		{Name: "failed_count", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeString},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "max_retries", Type: field.TypeInt, Default: 3},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "tokens_used", Type: field.TypeInt64, Default: 0},
		{Name: "next_retry_at", Type: field.TypeTime, Nullable: true},
		{Name: "approved_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SyncJobTable holds the schema information for the "sync_job" table.
	SyncJobTable = &schema.Table{
		Name:       "sync_job",
		Columns:    SyncJobColumns,
		PrimaryKey: []*schema.Column{SyncJobColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "syncjob_status_next_retry_at",
				Unique:  false,
				Columns: []*schema.Column{SyncJobColumns[15], SyncJobColumns[20]},
			},
			{
				Name:    "syncjob_owner_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{SyncJobColumns[1], SyncJobColumns[15], SyncJobColumns[24]},
			},
			{
				Name:    "syncjob_owner_id_folder",
				Unique:  false,
				Columns: []*schema.Column{SyncJobColumns[1], SyncJobColumns[5]},
			},
			{
				Name:    "syncjob_store_id",
				Unique:  false,
				Columns: []*schema.Column{SyncJobColumns[2]},
			},
		},
	}
	// TokenAccountColumns holds the columns for the "token_account" table.
	TokenAccountColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID, Unique: true},
		{Name: "balance", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TokenAccountTable holds the schema information for the "token_account" table.
	TokenAccountTable = &schema.Table{
		Name:       "token_account",
		Columns:    TokenAccountColumns,
		PrimaryKey: []*schema.Column{TokenAccountColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tokenaccount_owner_id",
				Unique:  true,
				Columns: []*schema.Column{TokenAccountColumns[1]},
			},
		},
	}
	// TokenReservationColumns holds the columns for the "token_reservation" table.
	TokenReservationColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "job_id", Type: field.TypeUUID},
		{Name: "amount_reserved", Type: field.TypeInt64},
		{Name: "amount_consumed", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "released_at", Type: field.TypeTime, Nullable: true},
	}
	// TokenReservationTable holds the schema information for the "token_reservation" table.
	TokenReservationTable = &schema.Table{
		Name:       "token_reservation",
		Columns:    TokenReservationColumns,
		PrimaryKey: []*schema.Column{TokenReservationColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tokenreservation_job_id",
				Unique:  false,
				Columns: []*schema.Column{TokenReservationColumns[2]},
			},
			{
				Name:    "tokenreservation_owner_id",
				Unique:  false,
				Columns: []*schema.Column{TokenReservationColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		JobItemTable,
		SyncJobTable,
		TokenAccountTable,
		TokenReservationTable,
	}
)

func init() {
	JobItemTable.ForeignKeys[0].RefTable = SyncJobTable
	JobItemTable.Annotation = &entsql.Annotation{
		Table: "job_item",
	}
	SyncJobTable.Annotation = &entsql.Annotation{
		Table: "sync_job",
	}
	TokenAccountTable.Annotation = &entsql.Annotation{
		Table: "token_account",
	}
	TokenReservationTable.Annotation = &entsql.Annotation{
		Table: "token_reservation",
	}
}
