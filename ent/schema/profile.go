package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Profile is the locally stored identity of a test taker. Unlike the
// event tables it is mutable state: display name, claimed specialty and
// wallet address can change over time.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique().
			Comment("Stable identifier, generated on first run"),
		field.String("display_name").
			Default("").
			Comment("Optional human-readable name"),
		field.String("specialty").
			Default("").
			Comment("Self-declared professional specialty"),
		field.String("wallet_address").
			Default("").
			Comment("Address certifications are minted to; empty until linked"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
