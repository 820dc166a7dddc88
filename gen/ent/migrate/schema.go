// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ClaimsColumns holds the columns for the "claims" table.
	ClaimsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "claim_number", Type: field.TypeString, Unique: true},
		{Name: "policy_number", Type: field.TypeString},
		{Name: "claimant_name", Type: field.TypeString},
		{Name: "property_address", Type: field.TypeString},
		{Name: "date_of_loss", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "cause_of_loss", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "analysis", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ClaimsTable holds the schema information for the "claims" table.
	ClaimsTable = &schema.Table{
		Name:       "claims",
		Columns:    ClaimsColumns,
		PrimaryKey: []*schema.Column{ClaimsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "claim_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ClaimsColumns[7], ClaimsColumns[9]},
			},
			{
				Name:    "claim_policy_number",
				Unique:  false,
				Columns: []*schema.Column{ClaimsColumns[2]},
			},
		},
	}
	// ClaimEvidenceColumns holds the columns for the "claim_evidence" table.
	ClaimEvidenceColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_name", Type: field.TypeString},
		{Name: "file_type", Type: field.TypeString},
		{Name: "file_path", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "evidence_type", Type: field.TypeString, Default: "damage_photo"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "claim_id", Type: field.TypeUUID},
	}
	// ClaimEvidenceTable holds the schema information for the "claim_evidence" table.
	ClaimEvidenceTable = &schema.Table{
		Name:       "claim_evidence",
		Columns:    ClaimEvidenceColumns,
		PrimaryKey: []*schema.Column{ClaimEvidenceColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "claim_evidence_claims_evidence",
				Columns:    []*schema.Column{ClaimEvidenceColumns[7]},
				RefColumns: []*schema.Column{ClaimsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "claimevidence_claim_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ClaimEvidenceColumns[7], ClaimEvidenceColumns[6]},
			},
		},
	}
	// ClaimInvoicesColumns holds the columns for the "claim_invoices" table.
	ClaimInvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_name", Type: field.TypeString},
		{Name: "file_type", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "vendor_name", Type: field.TypeString, Nullable: true},
		{Name: "vendor_address", Type: field.TypeString, Nullable: true},
		{Name: "vendor_phone", Type: field.TypeString, Nullable: true},
		{Name: "invoice_number", Type: field.TypeString, Nullable: true},
		{Name: "invoice_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "due_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "total_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "currency", Type: field.TypeString, Size: 3, Default: "USD", SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "line_items", Type: field.TypeJSON, Nullable: true},
		{Name: "ocr_raw_data", Type: field.TypeJSON, Nullable: true},
		{Name: "ocr_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "validation_status", Type: field.TypeString, Default: "PENDING"},
		{Name: "validation_flags", Type: field.TypeJSON, Nullable: true},
		{Name: "covered_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "non_covered_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "depreciation", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "deductible", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "recommended_payout", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "adjudication_status", Type: field.TypeString, Nullable: true},
		{Name: "analysis", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "claim_id", Type: field.TypeUUID},
	}
	// ClaimInvoicesTable holds the schema information for the "claim_invoices" table.
	ClaimInvoicesTable = &schema.Table{
		Name:       "claim_invoices",
		Columns:    ClaimInvoicesColumns,
		PrimaryKey: []*schema.Column{ClaimInvoicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "claim_invoices_claims_invoices",
				Columns:    []*schema.Column{ClaimInvoicesColumns[27]},
				RefColumns: []*schema.Column{ClaimsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "claiminvoice_claim_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ClaimInvoicesColumns[27], ClaimInvoicesColumns[25]},
			},
			{
				Name:    "claiminvoice_validation_status",
				Unique:  false,
				Columns: []*schema.Column{ClaimInvoicesColumns[16]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ClaimsTable,
		ClaimEvidenceTable,
		ClaimInvoicesTable,
	}
)

func init() {
	ClaimsTable.Annotation = &entsql.Annotation{
		Table: "claims",
	}
	ClaimEvidenceTable.ForeignKeys[0].RefTable = ClaimsTable
	ClaimEvidenceTable.Annotation = &entsql.Annotation{
		Table: "claim_evidence",
	}
	ClaimInvoicesTable.ForeignKeys[0].RefTable = ClaimsTable
	ClaimInvoicesTable.Annotation = &entsql.Annotation{
		Table: "claim_invoices",
	}
}
