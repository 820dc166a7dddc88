// Code generated by ent, DO NOT EDIT.

package claim

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldID, id))
}

// ClaimNumber applies equality check predicate on the "claim_number" field. It's identical to ClaimNumberEQ.
func ClaimNumber(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldClaimNumber, v))
}

// PolicyNumber applies equality check predicate on the "policy_number" field. It's identical to PolicyNumberEQ.
func PolicyNumber(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldPolicyNumber, v))
}

// ClaimantName applies equality check predicate on the "claimant_name" field. It's identical to ClaimantNameEQ.
func ClaimantName(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldClaimantName, v))
}

// PropertyAddress applies equality check predicate on the "property_address" field. It's identical to PropertyAddressEQ.
func PropertyAddress(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldPropertyAddress, v))
}

// DateOfLoss applies equality check predicate on the "date_of_loss" field. It's identical to DateOfLossEQ.
func DateOfLoss(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldDateOfLoss, v))
}

// CauseOfLoss applies equality check predicate on the "cause_of_loss" field. It's identical to CauseOfLossEQ.
func CauseOfLoss(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldCauseOfLoss, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClaimNumberEQ applies the EQ predicate on the "claim_number" field.
func ClaimNumberEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldClaimNumber, v))
}

// ClaimNumberNEQ applies the NEQ predicate on the "claim_number" field.
func ClaimNumberNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldClaimNumber, v))
}

// ClaimNumberIn applies the In predicate on the "claim_number" field.
func ClaimNumberIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldClaimNumber, vs...))
}

// ClaimNumberNotIn applies the NotIn predicate on the "claim_number" field.
func ClaimNumberNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldClaimNumber, vs...))
}

// ClaimNumberGT applies the GT predicate on the "claim_number" field.
func ClaimNumberGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldClaimNumber, v))
}

// ClaimNumberGTE applies the GTE predicate on the "claim_number" field.
func ClaimNumberGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldClaimNumber, v))
}

// ClaimNumberLT applies the LT predicate on the "claim_number" field.
func ClaimNumberLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldClaimNumber, v))
}

// ClaimNumberLTE applies the LTE predicate on the "claim_number" field.
func ClaimNumberLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldClaimNumber, v))
}

// ClaimNumberContains applies the Contains predicate on the "claim_number" field.
func ClaimNumberContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldClaimNumber, v))
}

// ClaimNumberHasPrefix applies the HasPrefix predicate on the "claim_number" field.
func ClaimNumberHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldClaimNumber, v))
}

// ClaimNumberHasSuffix applies the HasSuffix predicate on the "claim_number" field.
func ClaimNumberHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldClaimNumber, v))
}

// ClaimNumberEqualFold applies the EqualFold predicate on the "claim_number" field.
func ClaimNumberEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldClaimNumber, v))
}

// ClaimNumberContainsFold applies the ContainsFold predicate on the "claim_number" field.
func ClaimNumberContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldClaimNumber, v))
}

// PolicyNumberEQ applies the EQ predicate on the "policy_number" field.
func PolicyNumberEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldPolicyNumber, v))
}

// PolicyNumberNEQ applies the NEQ predicate on the "policy_number" field.
func PolicyNumberNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldPolicyNumber, v))
}

// PolicyNumberIn applies the In predicate on the "policy_number" field.
func PolicyNumberIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldPolicyNumber, vs...))
}

// PolicyNumberNotIn applies the NotIn predicate on the "policy_number" field.
func PolicyNumberNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldPolicyNumber, vs...))
}

// PolicyNumberGT applies the GT predicate on the "policy_number" field.
func PolicyNumberGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldPolicyNumber, v))
}

// PolicyNumberGTE applies the GTE predicate on the "policy_number" field.
func PolicyNumberGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldPolicyNumber, v))
}

// PolicyNumberLT applies the LT predicate on the "policy_number" field.
func PolicyNumberLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldPolicyNumber, v))
}

// PolicyNumberLTE applies the LTE predicate on the "policy_number" field.
func PolicyNumberLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldPolicyNumber, v))
}

// PolicyNumberContains applies the Contains predicate on the "policy_number" field.
func PolicyNumberContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldPolicyNumber, v))
}

// PolicyNumberHasPrefix applies the HasPrefix predicate on the "policy_number" field.
func PolicyNumberHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldPolicyNumber, v))
}

// PolicyNumberHasSuffix applies the HasSuffix predicate on the "policy_number" field.
func PolicyNumberHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldPolicyNumber, v))
}

// PolicyNumberEqualFold applies the EqualFold predicate on the "policy_number" field.
func PolicyNumberEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldPolicyNumber, v))
}

// PolicyNumberContainsFold applies the ContainsFold predicate on the "policy_number" field.
func PolicyNumberContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldPolicyNumber, v))
}

// ClaimantNameEQ applies the EQ predicate on the "claimant_name" field.
func ClaimantNameEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldClaimantName, v))
}

// ClaimantNameNEQ applies the NEQ predicate on the "claimant_name" field.
func ClaimantNameNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldClaimantName, v))
}

// ClaimantNameIn applies the In predicate on the "claimant_name" field.
func ClaimantNameIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldClaimantName, vs...))
}

// ClaimantNameNotIn applies the NotIn predicate on the "claimant_name" field.
func ClaimantNameNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldClaimantName, vs...))
}

// ClaimantNameGT applies the GT predicate on the "claimant_name" field.
func ClaimantNameGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldClaimantName, v))
}

// ClaimantNameGTE applies the GTE predicate on the "claimant_name" field.
func ClaimantNameGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldClaimantName, v))
}

// ClaimantNameLT applies the LT predicate on the "claimant_name" field.
func ClaimantNameLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldClaimantName, v))
}

// ClaimantNameLTE applies the LTE predicate on the "claimant_name" field.
func ClaimantNameLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldClaimantName, v))
}

// ClaimantNameContains applies the Contains predicate on the "claimant_name" field.
func ClaimantNameContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldClaimantName, v))
}

// ClaimantNameHasPrefix applies the HasPrefix predicate on the "claimant_name" field.
func ClaimantNameHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldClaimantName, v))
}

// ClaimantNameHasSuffix applies the HasSuffix predicate on the "claimant_name" field.
func ClaimantNameHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldClaimantName, v))
}

// ClaimantNameEqualFold applies the EqualFold predicate on the "claimant_name" field.
func ClaimantNameEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldClaimantName, v))
}

// ClaimantNameContainsFold applies the ContainsFold predicate on the "claimant_name" field.
func ClaimantNameContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldClaimantName, v))
}

// PropertyAddressEQ applies the EQ predicate on the "property_address" field.
func PropertyAddressEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldPropertyAddress, v))
}

// PropertyAddressNEQ applies the NEQ predicate on the "property_address" field.
func PropertyAddressNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldPropertyAddress, v))
}

// PropertyAddressIn applies the In predicate on the "property_address" field.
func PropertyAddressIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldPropertyAddress, vs...))
}

// PropertyAddressNotIn applies the NotIn predicate on the "property_address" field.
func PropertyAddressNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldPropertyAddress, vs...))
}

// PropertyAddressGT applies the GT predicate on the "property_address" field.
func PropertyAddressGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldPropertyAddress, v))
}

// PropertyAddressGTE applies the GTE predicate on the "property_address" field.
func PropertyAddressGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldPropertyAddress, v))
}

// PropertyAddressLT applies the LT predicate on the "property_address" field.
func PropertyAddressLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldPropertyAddress, v))
}

// PropertyAddressLTE applies the LTE predicate on the "property_address" field.
func PropertyAddressLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldPropertyAddress, v))
}

// PropertyAddressContains applies the Contains predicate on the "property_address" field.
func PropertyAddressContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldPropertyAddress, v))
}

// PropertyAddressHasPrefix applies the HasPrefix predicate on the "property_address" field.
func PropertyAddressHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldPropertyAddress, v))
}

// PropertyAddressHasSuffix applies the HasSuffix predicate on the "property_address" field.
func PropertyAddressHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldPropertyAddress, v))
}

// PropertyAddressEqualFold applies the EqualFold predicate on the "property_address" field.
func PropertyAddressEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldPropertyAddress, v))
}

// PropertyAddressContainsFold applies the ContainsFold predicate on the "property_address" field.
func PropertyAddressContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldPropertyAddress, v))
}

// DateOfLossEQ applies the EQ predicate on the "date_of_loss" field.
func DateOfLossEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldDateOfLoss, v))
}

// DateOfLossNEQ applies the NEQ predicate on the "date_of_loss" field.
func DateOfLossNEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldDateOfLoss, v))
}

// DateOfLossIn applies the In predicate on the "date_of_loss" field.
func DateOfLossIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldDateOfLoss, vs...))
}

// DateOfLossNotIn applies the NotIn predicate on the "date_of_loss" field.
func DateOfLossNotIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldDateOfLoss, vs...))
}

// DateOfLossGT applies the GT predicate on the "date_of_loss" field.
func DateOfLossGT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldDateOfLoss, v))
}

// DateOfLossGTE applies the GTE predicate on the "date_of_loss" field.
func DateOfLossGTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldDateOfLoss, v))
}

// DateOfLossLT applies the LT predicate on the "date_of_loss" field.
func DateOfLossLT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldDateOfLoss, v))
}

// DateOfLossLTE applies the LTE predicate on the "date_of_loss" field.
func DateOfLossLTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldDateOfLoss, v))
}

// CauseOfLossEQ applies the EQ predicate on the "cause_of_loss" field.
func CauseOfLossEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldCauseOfLoss, v))
}

// CauseOfLossNEQ applies the NEQ predicate on the "cause_of_loss" field.
func CauseOfLossNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldCauseOfLoss, v))
}

// CauseOfLossIn applies the In predicate on the "cause_of_loss" field.
func CauseOfLossIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldCauseOfLoss, vs...))
}

// CauseOfLossNotIn applies the NotIn predicate on the "cause_of_loss" field.
func CauseOfLossNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldCauseOfLoss, vs...))
}

// CauseOfLossGT applies the GT predicate on the "cause_of_loss" field.
func CauseOfLossGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldCauseOfLoss, v))
}

// CauseOfLossGTE applies the GTE predicate on the "cause_of_loss" field.
func CauseOfLossGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldCauseOfLoss, v))
}

// CauseOfLossLT applies the LT predicate on the "cause_of_loss" field.
func CauseOfLossLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldCauseOfLoss, v))
}

// CauseOfLossLTE applies the LTE predicate on the "cause_of_loss" field.
func CauseOfLossLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldCauseOfLoss, v))
}

// CauseOfLossContains applies the Contains predicate on the "cause_of_loss" field.
func CauseOfLossContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldCauseOfLoss, v))
}

// CauseOfLossHasPrefix applies the HasPrefix predicate on the "cause_of_loss" field.
func CauseOfLossHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldCauseOfLoss, v))
}

// CauseOfLossHasSuffix applies the HasSuffix predicate on the "cause_of_loss" field.
func CauseOfLossHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldCauseOfLoss, v))
}

// CauseOfLossEqualFold applies the EqualFold predicate on the "cause_of_loss" field.
func CauseOfLossEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldCauseOfLoss, v))
}

// CauseOfLossContainsFold applies the ContainsFold predicate on the "cause_of_loss" field.
func CauseOfLossContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldCauseOfLoss, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Claim {
	return predicate.Claim(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Claim {
	return predicate.Claim(sql.FieldContainsFold(FieldStatus, v))
}

// AnalysisIsNil applies the IsNil predicate on the "analysis" field.
func AnalysisIsNil() predicate.Claim {
	return predicate.Claim(sql.FieldIsNull(FieldAnalysis))
}

// AnalysisNotNil applies the NotNil predicate on the "analysis" field.
func AnalysisNotNil() predicate.Claim {
	return predicate.Claim(sql.FieldNotNull(FieldAnalysis))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Claim {
	return predicate.Claim(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasInvoices applies the HasEdge predicate on the "invoices" edge.
func HasInvoices() predicate.Claim {
	return predicate.Claim(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InvoicesTable, InvoicesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInvoicesWith applies the HasEdge predicate on the "invoices" edge with a given conditions (other predicates).
func HasInvoicesWith(preds ...predicate.ClaimInvoice) predicate.Claim {
	return predicate.Claim(func(s *sql.Selector) {
		step := newInvoicesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvidence applies the HasEdge predicate on the "evidence" edge.
func HasEvidence() predicate.Claim {
	return predicate.Claim(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EvidenceTable, EvidenceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEvidenceWith applies the HasEdge predicate on the "evidence" edge with a given conditions (other predicates).
func HasEvidenceWith(preds ...predicate.ClaimEvidence) predicate.Claim {
	return predicate.Claim(func(s *sql.Selector) {
		step := newEvidenceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Claim) predicate.Claim {
	return predicate.Claim(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Claim) predicate.Claim {
	return predicate.Claim(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Claim) predicate.Claim {
	return predicate.Claim(sql.NotPredicates(p))
}
