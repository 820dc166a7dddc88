package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/insurtech-labs/claims-adjudicator/constants"
	"github.com/insurtech-labs/claims-adjudicator/db/ent/schema/utils"
)

type Claim struct{ ent.Schema }

func (Claim) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "claims"},
	}
}

func (Claim) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("claim_number").NotEmpty().Unique(),
		field.String("policy_number").NotEmpty(),
		field.String("claimant_name").NotEmpty(),
		field.String("property_address").NotEmpty(),
		field.Time("date_of_loss").
			SchemaType(map[string]string{dialect.Postgres: "date"}).
			Immutable(),
		field.String("cause_of_loss").NotEmpty().
			Validate(utils.EnumValidator(constants.CausesOfLoss...)),
		field.String("status").
			Default(string(constants.ClaimStatusPending)).
			Validate(utils.EnumValidator(constants.ClaimStatuses...)),
		field.JSON("analysis", json.RawMessage{}).
			Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Claim) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE claim -> MANY invoices
		edge.To("invoices", ClaimInvoice.Type),
		// ONE claim -> MANY evidence files
		edge.To("evidence", ClaimEvidence.Type),
	}
}

func (Claim) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("policy_number"),
	}
}
