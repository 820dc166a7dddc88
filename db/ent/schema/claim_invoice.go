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
	"github.com/insurtech-labs/claims-adjudicator/internal/entity"
)

type ClaimInvoice struct{ ent.Schema }

func (ClaimInvoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "claim_invoices"},
	}
}

func (ClaimInvoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK for the composite indexes below
		field.UUID("claim_id", uuid.UUID{}),
		field.String("file_name").NotEmpty(),
		field.String("file_type").NotEmpty(),
		field.Int("file_size").NonNegative(),

		// extracted invoice fields, absent until OCR completes
		field.String("vendor_name").Optional().Nillable(),
		field.String("vendor_address").Optional().Nillable(),
		field.String("vendor_phone").Optional().Nillable(),
		field.String("invoice_number").Optional().Nillable(),
		field.Time("invoice_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("due_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Float("total_amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("currency").Default("USD").MinLen(3).MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.JSON("line_items", json.RawMessage{}).
			Optional(),
		field.JSON("ocr_raw_data", json.RawMessage{}).
			Optional(),
		field.Float32("ocr_confidence").Optional().Nillable(),
		field.Time("processed_at").Optional().Nillable(),

		field.String("validation_status").
			Default(string(constants.ValidationPending)).
			Validate(utils.EnumValidator(constants.ValidationStatuses...)),
		field.JSON("validation_flags", []entity.ValidationFlag{}).
			Optional(),

		field.Float("covered_amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("non_covered_amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("depreciation").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("deductible").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("recommended_payout").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("adjudication_status").Optional().Nillable(),
		field.JSON("analysis", json.RawMessage{}).
			Optional(),

		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ClaimInvoice) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY invoices -> ONE claim (FK: claim_invoices.claim_id)
		edge.From("claim", Claim.Type).
			Ref("invoices").
			Field("claim_id").
			Required().
			Unique(),
	}
}

func (ClaimInvoice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("claim_id", "created_at"),
		index.Fields("validation_status"),
	}
}
