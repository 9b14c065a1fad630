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

type JobItem struct{ ent.Schema }

func (JobItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "job_item"},
	}
}

func (JobItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("job_id", uuid.UUID{}).Immutable(),
		field.String("external_product_id").NotEmpty().Immutable(),
		field.String("external_image_id").NotEmpty().Immutable(),
		field.String("original_url").NotEmpty().Immutable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("optimized_url").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("optimized_storage_path").Optional().Nillable(),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.ItemStatuses()...)),
		field.Int("push_attempts").Default(0).NonNegative(),
		field.String("last_push_error").Optional().Nillable(),
		// whether the last push failure is worth another attempt
		field.Bool("push_retryable").Default(false),
		field.Time("pushed_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (JobItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", SyncJob.Type).
			Ref("items").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

func (JobItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "status"),
		index.Fields("external_image_id"),
	}
}
