// Code generated by ent, DO NOT EDIT.

package claimevidence

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldLTE(FieldID, id))
}

// ClaimID applies equality check predicate on the "claim_id" field. It's identical to ClaimIDEQ.
func ClaimID(v uuid.UUID) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldEQ(FieldClaimID, v))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldEQ(FieldFileName, v))
}

// FileType applies equality check predicate on the "file_type" field. It's identical to FileTypeEQ.
func FileType(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldEQ(FieldFileType, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldEQ(FieldFilePath, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldEQ(FieldFileSize, v))
}

// EvidenceType applies equality check predicate on the "evidence_type" field. It's identical to EvidenceTypeEQ.
func EvidenceType(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldEQ(FieldEvidenceType, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldEQ(FieldCreatedAt, v))
}

// ClaimIDEQ applies the EQ predicate on the "claim_id" field.
func ClaimIDEQ(v uuid.UUID) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldEQ(FieldClaimID, v))
}

// ClaimIDNEQ applies the NEQ predicate on the "claim_id" field.
func ClaimIDNEQ(v uuid.UUID) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldNEQ(FieldClaimID, v))
}

// ClaimIDIn applies the In predicate on the "claim_id" field.
func ClaimIDIn(vs ...uuid.UUID) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldIn(FieldClaimID, vs...))
}

// ClaimIDNotIn applies the NotIn predicate on the "claim_id" field.
func ClaimIDNotIn(vs ...uuid.UUID) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldNotIn(FieldClaimID, vs...))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldContainsFold(FieldFileName, v))
}

// FileTypeEQ applies the EQ predicate on the "file_type" field.
func FileTypeEQ(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldEQ(FieldFileType, v))
}

// FileTypeNEQ applies the NEQ predicate on the "file_type" field.
func FileTypeNEQ(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldNEQ(FieldFileType, v))
}

// FileTypeIn applies the In predicate on the "file_type" field.
func FileTypeIn(vs ...string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldIn(FieldFileType, vs...))
}

// FileTypeNotIn applies the NotIn predicate on the "file_type" field.
func FileTypeNotIn(vs ...string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldNotIn(FieldFileType, vs...))
}

// FileTypeGT applies the GT predicate on the "file_type" field.
func FileTypeGT(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldGT(FieldFileType, v))
}

// FileTypeGTE applies the GTE predicate on the "file_type" field.
func FileTypeGTE(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldGTE(FieldFileType, v))
}

// FileTypeLT applies the LT predicate on the "file_type" field.
func FileTypeLT(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldLT(FieldFileType, v))
}

// FileTypeLTE applies the LTE predicate on the "file_type" field.
func FileTypeLTE(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldLTE(FieldFileType, v))
}

// FileTypeContains applies the Contains predicate on the "file_type" field.
func FileTypeContains(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldContains(FieldFileType, v))
}

// FileTypeHasPrefix applies the HasPrefix predicate on the "file_type" field.
func FileTypeHasPrefix(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldHasPrefix(FieldFileType, v))
}

// FileTypeHasSuffix applies the HasSuffix predicate on the "file_type" field.
func FileTypeHasSuffix(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldHasSuffix(FieldFileType, v))
}

// FileTypeEqualFold applies the EqualFold predicate on the "file_type" field.
func FileTypeEqualFold(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldEqualFold(FieldFileType, v))
}

// FileTypeContainsFold applies the ContainsFold predicate on the "file_type" field.
func FileTypeContainsFold(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldContainsFold(FieldFileType, v))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldContainsFold(FieldFilePath, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldLTE(FieldFileSize, v))
}

// EvidenceTypeEQ applies the EQ predicate on the "evidence_type" field.
func EvidenceTypeEQ(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldEQ(FieldEvidenceType, v))
}

// EvidenceTypeNEQ applies the NEQ predicate on the "evidence_type" field.
func EvidenceTypeNEQ(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldNEQ(FieldEvidenceType, v))
}

// EvidenceTypeIn applies the In predicate on the "evidence_type" field.
func EvidenceTypeIn(vs ...string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldIn(FieldEvidenceType, vs...))
}

// EvidenceTypeNotIn applies the NotIn predicate on the "evidence_type" field.
func EvidenceTypeNotIn(vs ...string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldNotIn(FieldEvidenceType, vs...))
}

// EvidenceTypeGT applies the GT predicate on the "evidence_type" field.
func EvidenceTypeGT(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldGT(FieldEvidenceType, v))
}

// EvidenceTypeGTE applies the GTE predicate on the "evidence_type" field.
func EvidenceTypeGTE(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldGTE(FieldEvidenceType, v))
}

// EvidenceTypeLT applies the LT predicate on the "evidence_type" field.
func EvidenceTypeLT(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldLT(FieldEvidenceType, v))
}

// EvidenceTypeLTE applies the LTE predicate on the "evidence_type" field.
func EvidenceTypeLTE(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldLTE(FieldEvidenceType, v))
}

// EvidenceTypeContains applies the Contains predicate on the "evidence_type" field.
func EvidenceTypeContains(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldContains(FieldEvidenceType, v))
}

// EvidenceTypeHasPrefix applies the HasPrefix predicate on the "evidence_type" field.
func EvidenceTypeHasPrefix(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldHasPrefix(FieldEvidenceType, v))
}

// EvidenceTypeHasSuffix applies the HasSuffix predicate on the "evidence_type" field.
func EvidenceTypeHasSuffix(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldHasSuffix(FieldEvidenceType, v))
}

// EvidenceTypeEqualFold applies the EqualFold predicate on the "evidence_type" field.
func EvidenceTypeEqualFold(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldEqualFold(FieldEvidenceType, v))
}

// EvidenceTypeContainsFold applies the ContainsFold predicate on the "evidence_type" field.
func EvidenceTypeContainsFold(v string) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldContainsFold(FieldEvidenceType, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.FieldLTE(FieldCreatedAt, v))
}

// HasClaim applies the HasEdge predicate on the "claim" edge.
func HasClaim() predicate.ClaimEvidence {
	return predicate.ClaimEvidence(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClaimTable, ClaimColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClaimWith applies the HasEdge predicate on the "claim" edge with a given conditions (other predicates).
func HasClaimWith(preds ...predicate.Claim) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(func(s *sql.Selector) {
		step := newClaimStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ClaimEvidence) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ClaimEvidence) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ClaimEvidence) predicate.ClaimEvidence {
	return predicate.ClaimEvidence(sql.NotPredicates(p))
}
