// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/insurtech-labs/claims-adjudicator/db/ent/schema"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/claim"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/claimevidence"
	"github.com/insurtech-labs/claims-adjudicator/gen/ent/claiminvoice"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	claimFields := schema.Claim{}.Fields()
	_ = claimFields
	// claimDescClaimNumber is the schema descriptor for claim_number field.
	claimDescClaimNumber := claimFields[1].Descriptor()
	// claim.ClaimNumberValidator is a validator for the "claim_number" field. It is called by the builders before save.
	claim.ClaimNumberValidator = claimDescClaimNumber.Validators[0].(func(string) error)
	// claimDescPolicyNumber is the schema descriptor for policy_number field.
	claimDescPolicyNumber := claimFields[2].Descriptor()
	// claim.PolicyNumberValidator is a validator for the "policy_number" field. It is called by the builders before save.
	claim.PolicyNumberValidator = claimDescPolicyNumber.Validators[0].(func(string) error)
	// claimDescClaimantName is the schema descriptor for claimant_name field.
	claimDescClaimantName := claimFields[3].Descriptor()
	// claim.ClaimantNameValidator is a validator for the "claimant_name" field. It is called by the builders before save.
	claim.ClaimantNameValidator = claimDescClaimantName.Validators[0].(func(string) error)
	// claimDescPropertyAddress is the schema descriptor for property_address field.
	claimDescPropertyAddress := claimFields[4].Descriptor()
	// claim.PropertyAddressValidator is a validator for the "property_address" field. It is called by the builders before save.
	claim.PropertyAddressValidator = claimDescPropertyAddress.Validators[0].(func(string) error)
	// claimDescCauseOfLoss is the schema descriptor for cause_of_loss field.
	claimDescCauseOfLoss := claimFields[6].Descriptor()
	// claim.CauseOfLossValidator is a validator for the "cause_of_loss" field. It is called by the builders before save.
	claim.CauseOfLossValidator = func() func(string) error {
		validators := claimDescCauseOfLoss.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(cause_of_loss string) error {
			for _, fn := range fns {
				if err := fn(cause_of_loss); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// claimDescStatus is the schema descriptor for status field.
	claimDescStatus := claimFields[7].Descriptor()
	// claim.DefaultStatus holds the default value on creation for the status field.
	claim.DefaultStatus = claimDescStatus.Default.(string)
	// claim.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	claim.StatusValidator = claimDescStatus.Validators[0].(func(string) error)
	// claimDescCreatedAt is the schema descriptor for created_at field.
	claimDescCreatedAt := claimFields[9].Descriptor()
	// claim.DefaultCreatedAt holds the default value on creation for the created_at field.
	claim.DefaultCreatedAt = claimDescCreatedAt.Default.(func() time.Time)
	// claimDescUpdatedAt is the schema descriptor for updated_at field.
	claimDescUpdatedAt := claimFields[10].Descriptor()
	// claim.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	claim.DefaultUpdatedAt = claimDescUpdatedAt.Default.(func() time.Time)
	// claim.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	claim.UpdateDefaultUpdatedAt = claimDescUpdatedAt.UpdateDefault.(func() time.Time)
	// claimDescID is the schema descriptor for id field.
	claimDescID := claimFields[0].Descriptor()
	// claim.DefaultID holds the default value on creation for the id field.
	claim.DefaultID = claimDescID.Default.(func() uuid.UUID)
	claimevidenceFields := schema.ClaimEvidence{}.Fields()
	_ = claimevidenceFields
	// claimevidenceDescFileName is the schema descriptor for file_name field.
	claimevidenceDescFileName := claimevidenceFields[2].Descriptor()
	// claimevidence.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	claimevidence.FileNameValidator = claimevidenceDescFileName.Validators[0].(func(string) error)
	// claimevidenceDescFileType is the schema descriptor for file_type field.
	claimevidenceDescFileType := claimevidenceFields[3].Descriptor()
	// claimevidence.FileTypeValidator is a validator for the "file_type" field. It is called by the builders before save.
	claimevidence.FileTypeValidator = claimevidenceDescFileType.Validators[0].(func(string) error)
	// claimevidenceDescFilePath is the schema descriptor for file_path field.
	claimevidenceDescFilePath := claimevidenceFields[4].Descriptor()
	// claimevidence.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	claimevidence.FilePathValidator = claimevidenceDescFilePath.Validators[0].(func(string) error)
	// claimevidenceDescFileSize is the schema descriptor for file_size field.
	claimevidenceDescFileSize := claimevidenceFields[5].Descriptor()
	// claimevidence.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	claimevidence.FileSizeValidator = claimevidenceDescFileSize.Validators[0].(func(int) error)
	// claimevidenceDescEvidenceType is the schema descriptor for evidence_type field.
	claimevidenceDescEvidenceType := claimevidenceFields[6].Descriptor()
	// claimevidence.DefaultEvidenceType holds the default value on creation for the evidence_type field.
	claimevidence.DefaultEvidenceType = claimevidenceDescEvidenceType.Default.(string)
	// claimevidenceDescCreatedAt is the schema descriptor for created_at field.
	claimevidenceDescCreatedAt := claimevidenceFields[7].Descriptor()
	// claimevidence.DefaultCreatedAt holds the default value on creation for the created_at field.
	claimevidence.DefaultCreatedAt = claimevidenceDescCreatedAt.Default.(func() time.Time)
	// claimevidenceDescID is the schema descriptor for id field.
	claimevidenceDescID := claimevidenceFields[0].Descriptor()
	// claimevidence.DefaultID holds the default value on creation for the id field.
	claimevidence.DefaultID = claimevidenceDescID.Default.(func() uuid.UUID)
	claiminvoiceFields := schema.ClaimInvoice{}.Fields()
	_ = claiminvoiceFields
	// claiminvoiceDescFileName is the schema descriptor for file_name field.
	claiminvoiceDescFileName := claiminvoiceFields[2].Descriptor()
	// claiminvoice.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	claiminvoice.FileNameValidator = claiminvoiceDescFileName.Validators[0].(func(string) error)
	// claiminvoiceDescFileType is the schema descriptor for file_type field.
	claiminvoiceDescFileType := claiminvoiceFields[3].Descriptor()
	// claiminvoice.FileTypeValidator is a validator for the "file_type" field. It is called by the builders before save.
	claiminvoice.FileTypeValidator = claiminvoiceDescFileType.Validators[0].(func(string) error)
	// claiminvoiceDescFileSize is the schema descriptor for file_size field.
	claiminvoiceDescFileSize := claiminvoiceFields[4].Descriptor()
	// claiminvoice.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	claiminvoice.FileSizeValidator = claiminvoiceDescFileSize.Validators[0].(func(int) error)
	// claiminvoiceDescCurrency is the schema descriptor for currency field.
	claiminvoiceDescCurrency := claiminvoiceFields[12].Descriptor()
	// claiminvoice.DefaultCurrency holds the default value on creation for the currency field.
	claiminvoice.DefaultCurrency = claiminvoiceDescCurrency.Default.(string)
	// claiminvoice.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	claiminvoice.CurrencyValidator = func() func(string) error {
		validators := claiminvoiceDescCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(currency string) error {
			for _, fn := range fns {
				if err := fn(currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// claiminvoiceDescValidationStatus is the schema descriptor for validation_status field.
	claiminvoiceDescValidationStatus := claiminvoiceFields[17].Descriptor()
	// claiminvoice.DefaultValidationStatus holds the default value on creation for the validation_status field.
	claiminvoice.DefaultValidationStatus = claiminvoiceDescValidationStatus.Default.(string)
	// claiminvoice.ValidationStatusValidator is a validator for the "validation_status" field. It is called by the builders before save.
	claiminvoice.ValidationStatusValidator = claiminvoiceDescValidationStatus.Validators[0].(func(string) error)
	// claiminvoiceDescCreatedAt is the schema descriptor for created_at field.
	claiminvoiceDescCreatedAt := claiminvoiceFields[26].Descriptor()
	// claiminvoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	claiminvoice.DefaultCreatedAt = claiminvoiceDescCreatedAt.Default.(func() time.Time)
	// claiminvoiceDescUpdatedAt is the schema descriptor for updated_at field.
	claiminvoiceDescUpdatedAt := claiminvoiceFields[27].Descriptor()
	// claiminvoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	claiminvoice.DefaultUpdatedAt = claiminvoiceDescUpdatedAt.Default.(func() time.Time)
	// claiminvoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	claiminvoice.UpdateDefaultUpdatedAt = claiminvoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// claiminvoiceDescID is the schema descriptor for id field.
	claiminvoiceDescID := claiminvoiceFields[0].Descriptor()
	// claiminvoice.DefaultID holds the default value on creation for the id field.
	claiminvoice.DefaultID = claiminvoiceDescID.Default.(func() uuid.UUID)
}
