package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// TokenReservation is a hold on an owner's balance for the lifetime of one
// job. At most one open (released_at IS NULL) reservation exists per job;
// the ledger enforces this at creation.
type TokenReservation struct{ ent.Schema }

func (TokenReservation) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "token_reservation"},
	}
}

func (TokenReservation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("owner_id", uuid.UUID{}).Immutable(),
		field.UUID("job_id", uuid.UUID{}).Immutable(),
		field.Int64("amount_reserved").Positive().Immutable(),
		field.Int64("amount_consumed").Default(0).NonNegative(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("released_at").Optional().Nillable(),
	}
}

func (TokenReservation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id"),
		index.Fields("owner_id"),
	}
}
