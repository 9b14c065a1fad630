package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/optipix/imagesync/constants"
	"github.com/optipix/imagesync/db/ent/schema/utils"
)

type SyncJob struct{ ent.Schema }

func (SyncJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "sync_job"},
	}
}

func (SyncJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("owner_id", uuid.UUID{}).Immutable(),
		field.UUID("store_id", uuid.UUID{}).Immutable(),
		field.String("name").NotEmpty(),
		field.String("store_domain").Optional(),
		field.String("folder").Optional(),
		field.String("trigger_type").NotEmpty().Immutable().
			Validate(utils.EnumValidator(constants.TriggerTypes()...)),
		field.String("preset_type").NotEmpty().
			Validate(utils.EnumValidator(constants.PresetTypes()...)),
		field.UUID("preset_id", uuid.UUID{}).Optional().Nillable(),
		field.String("custom_prompt").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// immutable once the job is created
		field.Int("product_count").NonNegative().Immutable(),
		field.Int("image_count").Positive().Immutable(),
		// monotonically non-decreasing until a terminal state
		field.Int("processed_count").Default(0).NonNegative(),
		field.Int("pushed_count").Default(0).NonNegative(),
		field.Int("failed_count").Default(0).NonNegative(),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.JobStatuses()...)),
		field.Int("retry_count").Default(0).NonNegative(),
		field.Int("max_retries").Default(3).NonNegative(),
		field.String("last_error").Optional().Nillable(),
		field.Int64("tokens_used").Default(0).NonNegative(),
		field.Time("next_retry_at").Optional().Nillable(),
		field.Time("approved_at").Optional().Nillable(),
		field.Time("completed_at").Optional().Nillable(),
		field.Time("expires_at"),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (SyncJob) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE job -> MANY items; items are exclusively owned
		edge.To("items", JobItem.Type).
			Annotations(entsql.Annotation{OnDelete: entsql.Cascade}),
	}
}

func (SyncJob) Indexes() []ent.Index {
	return []ent.Index{
		// claim polling: pending/approved jobs ordered by next_retry_at
		index.Fields("status", "next_retry_at"),
		// queue projection scans
		index.Fields("owner_id", "status", "created_at"),
		index.Fields("owner_id", "folder"),
		index.Fields("store_id"),
	}
}
