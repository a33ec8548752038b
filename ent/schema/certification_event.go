package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CertificationEvent records an issued skill certification. The log is
// append-only: re-certification appends a new event rather than updating
// an old one, and confirmation of external anchoring (metadata pin,
// on-chain mint) appends a follow-up event with action "confirmed".
type CertificationEvent struct {
	ent.Schema
}

func (CertificationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CertificationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("cert_id").
			NotEmpty().
			Comment("Stable certification identifier"),
		field.String("attempt_id").
			NotEmpty().
			Comment("The passing attempt that earned this certification"),
		field.String("user_id").
			NotEmpty(),
		field.String("skill_id").
			NotEmpty(),
		field.String("skill_name").
			NotEmpty().
			Comment("Display name captured at issuance"),
		field.Int("score").
			Comment("Score achieved on the passing attempt"),
		field.String("action").
			NotEmpty().
			Comment("issued or confirmed"),
		field.String("metadata_cid").
			Default("").
			Comment("Content hash of the pinned certificate metadata"),
		field.String("token_id").
			Default("").
			Comment("Soulbound token ID once minted"),
		field.String("tx_hash").
			Default("").
			Comment("Mint transaction hash"),
		field.Bool("verified").
			Default(false).
			Comment("True once both pin and mint are confirmed"),
	}
}

func (CertificationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("cert_id"),
		index.Fields("user_id", "skill_id"),
		index.Fields("verified"),
	}
}
