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

// TokenAccount holds the available (not reserved, not spent) token balance
// for one owner. Balances only move through the ledger's conditional
// debit/credit updates, never through plain writes.
type TokenAccount struct{ ent.Schema }

func (TokenAccount) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "token_account"},
	}
}

func (TokenAccount) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("owner_id", uuid.UUID{}).Unique().Immutable(),
		field.Int64("balance").Default(0).NonNegative(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (TokenAccount) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id").Unique(),
	}
}
