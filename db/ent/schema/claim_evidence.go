package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type ClaimEvidence struct{ ent.Schema }

func (ClaimEvidence) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "claim_evidence"},
	}
}

func (ClaimEvidence) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("claim_id", uuid.UUID{}),
		field.String("file_name").NotEmpty(),
		field.String("file_type").NotEmpty(),
		field.String("file_path").NotEmpty(),
		field.Int("file_size").NonNegative(),
		field.String("evidence_type").Default("damage_photo"),
		field.Time("created_at").Default(time.Now),
	}
}

func (ClaimEvidence) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY evidence files -> ONE claim
		edge.From("claim", Claim.Type).
			Ref("evidence").
			Field("claim_id").
			Required().
			Unique(),
	}
}

func (ClaimEvidence) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("claim_id", "created_at"),
	}
}
