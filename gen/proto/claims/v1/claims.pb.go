// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: claims/v1/claims.proto

package claimspb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Claim struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ClaimNumber     string                 `protobuf:"bytes,2,opt,name=claim_number,json=claimNumber,proto3" json:"claim_number,omitempty"`
	PolicyNumber    string                 `protobuf:"bytes,3,opt,name=policy_number,json=policyNumber,proto3" json:"policy_number,omitempty"`
	ClaimantName    string                 `protobuf:"bytes,4,opt,name=claimant_name,json=claimantName,proto3" json:"claimant_name,omitempty"`
	PropertyAddress string                 `protobuf:"bytes,5,opt,name=property_address,json=propertyAddress,proto3" json:"property_address,omitempty"`
	DateOfLoss      string                 `protobuf:"bytes,6,opt,name=date_of_loss,json=dateOfLoss,proto3" json:"date_of_loss,omitempty"` // YYYY-MM-DD
	CauseOfLoss     string                 `protobuf:"bytes,7,opt,name=cause_of_loss,json=causeOfLoss,proto3" json:"cause_of_loss,omitempty"`
	Status          string                 `protobuf:"bytes,8,opt,name=status,proto3" json:"status,omitempty"`
	AnalysisJson    string                 `protobuf:"bytes,9,opt,name=analysis_json,json=analysisJson,proto3" json:"analysis_json,omitempty"` // latest adjuster analysis, empty if none
	CreatedAt       string                 `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`         // RFC 3339
	UpdatedAt       string                 `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Claim) Reset() {
	*x = Claim{}
	mi := &file_claims_v1_claims_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Claim) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Claim) ProtoMessage() {}

func (x *Claim) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Claim.ProtoReflect.Descriptor instead.
func (*Claim) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{0}
}

func (x *Claim) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Claim) GetClaimNumber() string {
	if x != nil {
		return x.ClaimNumber
	}
	return ""
}

func (x *Claim) GetPolicyNumber() string {
	if x != nil {
		return x.PolicyNumber
	}
	return ""
}

func (x *Claim) GetClaimantName() string {
	if x != nil {
		return x.ClaimantName
	}
	return ""
}

func (x *Claim) GetPropertyAddress() string {
	if x != nil {
		return x.PropertyAddress
	}
	return ""
}

func (x *Claim) GetDateOfLoss() string {
	if x != nil {
		return x.DateOfLoss
	}
	return ""
}

func (x *Claim) GetCauseOfLoss() string {
	if x != nil {
		return x.CauseOfLoss
	}
	return ""
}

func (x *Claim) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Claim) GetAnalysisJson() string {
	if x != nil {
		return x.AnalysisJson
	}
	return ""
}

func (x *Claim) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Claim) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ValidationFlag struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Code          string                 `protobuf:"bytes,1,opt,name=code,proto3" json:"code,omitempty"`
	Severity      string                 `protobuf:"bytes,2,opt,name=severity,proto3" json:"severity,omitempty"` // error | warning | info
	Message       string                 `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	Field         string                 `protobuf:"bytes,4,opt,name=field,proto3" json:"field,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidationFlag) Reset() {
	*x = ValidationFlag{}
	mi := &file_claims_v1_claims_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidationFlag) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidationFlag) ProtoMessage() {}

func (x *ValidationFlag) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidationFlag.ProtoReflect.Descriptor instead.
func (*ValidationFlag) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{1}
}

func (x *ValidationFlag) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *ValidationFlag) GetSeverity() string {
	if x != nil {
		return x.Severity
	}
	return ""
}

func (x *ValidationFlag) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *ValidationFlag) GetField() string {
	if x != nil {
		return x.Field
	}
	return ""
}

type Invoice struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ClaimId            string                 `protobuf:"bytes,2,opt,name=claim_id,json=claimId,proto3" json:"claim_id,omitempty"`
	FileName           string                 `protobuf:"bytes,3,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	FileType           string                 `protobuf:"bytes,4,opt,name=file_type,json=fileType,proto3" json:"file_type,omitempty"`
	FileSize           int32                  `protobuf:"varint,5,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	VendorName         string                 `protobuf:"bytes,6,opt,name=vendor_name,json=vendorName,proto3" json:"vendor_name,omitempty"`
	VendorAddress      string                 `protobuf:"bytes,7,opt,name=vendor_address,json=vendorAddress,proto3" json:"vendor_address,omitempty"`
	VendorPhone        string                 `protobuf:"bytes,8,opt,name=vendor_phone,json=vendorPhone,proto3" json:"vendor_phone,omitempty"`
	InvoiceNumber      string                 `protobuf:"bytes,9,opt,name=invoice_number,json=invoiceNumber,proto3" json:"invoice_number,omitempty"`
	InvoiceDate        string                 `protobuf:"bytes,10,opt,name=invoice_date,json=invoiceDate,proto3" json:"invoice_date,omitempty"` // YYYY-MM-DD, empty if not extracted
	DueDate            string                 `protobuf:"bytes,11,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`
	TotalAmount        string                 `protobuf:"bytes,12,opt,name=total_amount,json=totalAmount,proto3" json:"total_amount,omitempty"` // decimal string, empty if not extracted
	Currency           string                 `protobuf:"bytes,13,opt,name=currency,proto3" json:"currency,omitempty"`
	LineItemsJson      string                 `protobuf:"bytes,14,opt,name=line_items_json,json=lineItemsJson,proto3" json:"line_items_json,omitempty"`
	OcrConfidence      float32                `protobuf:"fixed32,15,opt,name=ocr_confidence,json=ocrConfidence,proto3" json:"ocr_confidence,omitempty"`
	ProcessedAt        string                 `protobuf:"bytes,16,opt,name=processed_at,json=processedAt,proto3" json:"processed_at,omitempty"` // RFC 3339, empty if not processed
	ValidationStatus   string                 `protobuf:"bytes,17,opt,name=validation_status,json=validationStatus,proto3" json:"validation_status,omitempty"`
	ValidationFlags    []*ValidationFlag      `protobuf:"bytes,18,rep,name=validation_flags,json=validationFlags,proto3" json:"validation_flags,omitempty"`
	CoveredAmount      string                 `protobuf:"bytes,19,opt,name=covered_amount,json=coveredAmount,proto3" json:"covered_amount,omitempty"`
	NonCoveredAmount   string                 `protobuf:"bytes,20,opt,name=non_covered_amount,json=nonCoveredAmount,proto3" json:"non_covered_amount,omitempty"`
	Depreciation       string                 `protobuf:"bytes,21,opt,name=depreciation,proto3" json:"depreciation,omitempty"`
	Deductible         string                 `protobuf:"bytes,22,opt,name=deductible,proto3" json:"deductible,omitempty"`
	RecommendedPayout  string                 `protobuf:"bytes,23,opt,name=recommended_payout,json=recommendedPayout,proto3" json:"recommended_payout,omitempty"`
	AdjudicationStatus string                 `protobuf:"bytes,24,opt,name=adjudication_status,json=adjudicationStatus,proto3" json:"adjudication_status,omitempty"`
	AnalysisJson       string                 `protobuf:"bytes,25,opt,name=analysis_json,json=analysisJson,proto3" json:"analysis_json,omitempty"`
	CreatedAt          string                 `protobuf:"bytes,26,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt          string                 `protobuf:"bytes,27,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Invoice) Reset() {
	*x = Invoice{}
	mi := &file_claims_v1_claims_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Invoice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Invoice) ProtoMessage() {}

func (x *Invoice) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Invoice.ProtoReflect.Descriptor instead.
func (*Invoice) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{2}
}

func (x *Invoice) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Invoice) GetClaimId() string {
	if x != nil {
		return x.ClaimId
	}
	return ""
}

func (x *Invoice) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *Invoice) GetFileType() string {
	if x != nil {
		return x.FileType
	}
	return ""
}

func (x *Invoice) GetFileSize() int32 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *Invoice) GetVendorName() string {
	if x != nil {
		return x.VendorName
	}
	return ""
}

func (x *Invoice) GetVendorAddress() string {
	if x != nil {
		return x.VendorAddress
	}
	return ""
}

func (x *Invoice) GetVendorPhone() string {
	if x != nil {
		return x.VendorPhone
	}
	return ""
}

func (x *Invoice) GetInvoiceNumber() string {
	if x != nil {
		return x.InvoiceNumber
	}
	return ""
}

func (x *Invoice) GetInvoiceDate() string {
	if x != nil {
		return x.InvoiceDate
	}
	return ""
}

func (x *Invoice) GetDueDate() string {
	if x != nil {
		return x.DueDate
	}
	return ""
}

func (x *Invoice) GetTotalAmount() string {
	if x != nil {
		return x.TotalAmount
	}
	return ""
}

func (x *Invoice) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *Invoice) GetLineItemsJson() string {
	if x != nil {
		return x.LineItemsJson
	}
	return ""
}

func (x *Invoice) GetOcrConfidence() float32 {
	if x != nil {
		return x.OcrConfidence
	}
	return 0
}

func (x *Invoice) GetProcessedAt() string {
	if x != nil {
		return x.ProcessedAt
	}
	return ""
}

func (x *Invoice) GetValidationStatus() string {
	if x != nil {
		return x.ValidationStatus
	}
	return ""
}

func (x *Invoice) GetValidationFlags() []*ValidationFlag {
	if x != nil {
		return x.ValidationFlags
	}
	return nil
}

func (x *Invoice) GetCoveredAmount() string {
	if x != nil {
		return x.CoveredAmount
	}
	return ""
}

func (x *Invoice) GetNonCoveredAmount() string {
	if x != nil {
		return x.NonCoveredAmount
	}
	return ""
}

func (x *Invoice) GetDepreciation() string {
	if x != nil {
		return x.Depreciation
	}
	return ""
}

func (x *Invoice) GetDeductible() string {
	if x != nil {
		return x.Deductible
	}
	return ""
}

func (x *Invoice) GetRecommendedPayout() string {
	if x != nil {
		return x.RecommendedPayout
	}
	return ""
}

func (x *Invoice) GetAdjudicationStatus() string {
	if x != nil {
		return x.AdjudicationStatus
	}
	return ""
}

func (x *Invoice) GetAnalysisJson() string {
	if x != nil {
		return x.AnalysisJson
	}
	return ""
}

func (x *Invoice) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Invoice) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Upload struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileName      string                 `protobuf:"bytes,1,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	MimeType      string                 `protobuf:"bytes,2,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	Content       []byte                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Upload) Reset() {
	*x = Upload{}
	mi := &file_claims_v1_claims_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Upload) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Upload) ProtoMessage() {}

func (x *Upload) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Upload.ProtoReflect.Descriptor instead.
func (*Upload) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{3}
}

func (x *Upload) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *Upload) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

func (x *Upload) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type CreateClaimRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	ClaimNumber     string                 `protobuf:"bytes,1,opt,name=claim_number,json=claimNumber,proto3" json:"claim_number,omitempty"`
	PolicyNumber    string                 `protobuf:"bytes,2,opt,name=policy_number,json=policyNumber,proto3" json:"policy_number,omitempty"`
	ClaimantName    string                 `protobuf:"bytes,3,opt,name=claimant_name,json=claimantName,proto3" json:"claimant_name,omitempty"`
	PropertyAddress string                 `protobuf:"bytes,4,opt,name=property_address,json=propertyAddress,proto3" json:"property_address,omitempty"`
	DateOfLoss      string                 `protobuf:"bytes,5,opt,name=date_of_loss,json=dateOfLoss,proto3" json:"date_of_loss,omitempty"` // YYYY-MM-DD
	CauseOfLoss     string                 `protobuf:"bytes,6,opt,name=cause_of_loss,json=causeOfLoss,proto3" json:"cause_of_loss,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CreateClaimRequest) Reset() {
	*x = CreateClaimRequest{}
	mi := &file_claims_v1_claims_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateClaimRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateClaimRequest) ProtoMessage() {}

func (x *CreateClaimRequest) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateClaimRequest.ProtoReflect.Descriptor instead.
func (*CreateClaimRequest) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{4}
}

func (x *CreateClaimRequest) GetClaimNumber() string {
	if x != nil {
		return x.ClaimNumber
	}
	return ""
}

func (x *CreateClaimRequest) GetPolicyNumber() string {
	if x != nil {
		return x.PolicyNumber
	}
	return ""
}

func (x *CreateClaimRequest) GetClaimantName() string {
	if x != nil {
		return x.ClaimantName
	}
	return ""
}

func (x *CreateClaimRequest) GetPropertyAddress() string {
	if x != nil {
		return x.PropertyAddress
	}
	return ""
}

func (x *CreateClaimRequest) GetDateOfLoss() string {
	if x != nil {
		return x.DateOfLoss
	}
	return ""
}

func (x *CreateClaimRequest) GetCauseOfLoss() string {
	if x != nil {
		return x.CauseOfLoss
	}
	return ""
}

type CreateClaimResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Claim         *Claim                 `protobuf:"bytes,1,opt,name=claim,proto3" json:"claim,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateClaimResponse) Reset() {
	*x = CreateClaimResponse{}
	mi := &file_claims_v1_claims_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateClaimResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateClaimResponse) ProtoMessage() {}

func (x *CreateClaimResponse) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateClaimResponse.ProtoReflect.Descriptor instead.
func (*CreateClaimResponse) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{5}
}

func (x *CreateClaimResponse) GetClaim() *Claim {
	if x != nil {
		return x.Claim
	}
	return nil
}

type GetClaimRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClaimId       string                 `protobuf:"bytes,1,opt,name=claim_id,json=claimId,proto3" json:"claim_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetClaimRequest) Reset() {
	*x = GetClaimRequest{}
	mi := &file_claims_v1_claims_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetClaimRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetClaimRequest) ProtoMessage() {}

func (x *GetClaimRequest) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetClaimRequest.ProtoReflect.Descriptor instead.
func (*GetClaimRequest) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{6}
}

func (x *GetClaimRequest) GetClaimId() string {
	if x != nil {
		return x.ClaimId
	}
	return ""
}

type GetClaimResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Claim         *Claim                 `protobuf:"bytes,1,opt,name=claim,proto3" json:"claim,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetClaimResponse) Reset() {
	*x = GetClaimResponse{}
	mi := &file_claims_v1_claims_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetClaimResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetClaimResponse) ProtoMessage() {}

func (x *GetClaimResponse) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetClaimResponse.ProtoReflect.Descriptor instead.
func (*GetClaimResponse) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{7}
}

func (x *GetClaimResponse) GetClaim() *Claim {
	if x != nil {
		return x.Claim
	}
	return nil
}

type ListClaimsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Page          int32                  `protobuf:"varint,1,opt,name=page,proto3" json:"page,omitempty"`                         // 1-based, defaults to 1
	PageSize      int32                  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"` // defaults to 20, capped at 100
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListClaimsRequest) Reset() {
	*x = ListClaimsRequest{}
	mi := &file_claims_v1_claims_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListClaimsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListClaimsRequest) ProtoMessage() {}

func (x *ListClaimsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListClaimsRequest.ProtoReflect.Descriptor instead.
func (*ListClaimsRequest) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{8}
}

func (x *ListClaimsRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *ListClaimsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type ListClaimsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Claims        []*Claim               `protobuf:"bytes,1,rep,name=claims,proto3" json:"claims,omitempty"`
	Total         int32                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListClaimsResponse) Reset() {
	*x = ListClaimsResponse{}
	mi := &file_claims_v1_claims_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListClaimsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListClaimsResponse) ProtoMessage() {}

func (x *ListClaimsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListClaimsResponse.ProtoReflect.Descriptor instead.
func (*ListClaimsResponse) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{9}
}

func (x *ListClaimsResponse) GetClaims() []*Claim {
	if x != nil {
		return x.Claims
	}
	return nil
}

func (x *ListClaimsResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

type UpdateClaimStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClaimId       string                 `protobuf:"bytes,1,opt,name=claim_id,json=claimId,proto3" json:"claim_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateClaimStatusRequest) Reset() {
	*x = UpdateClaimStatusRequest{}
	mi := &file_claims_v1_claims_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateClaimStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateClaimStatusRequest) ProtoMessage() {}

func (x *UpdateClaimStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateClaimStatusRequest.ProtoReflect.Descriptor instead.
func (*UpdateClaimStatusRequest) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{10}
}

func (x *UpdateClaimStatusRequest) GetClaimId() string {
	if x != nil {
		return x.ClaimId
	}
	return ""
}

func (x *UpdateClaimStatusRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type UpdateClaimStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Claim         *Claim                 `protobuf:"bytes,1,opt,name=claim,proto3" json:"claim,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateClaimStatusResponse) Reset() {
	*x = UpdateClaimStatusResponse{}
	mi := &file_claims_v1_claims_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateClaimStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateClaimStatusResponse) ProtoMessage() {}

func (x *UpdateClaimStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateClaimStatusResponse.ProtoReflect.Descriptor instead.
func (*UpdateClaimStatusResponse) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{11}
}

func (x *UpdateClaimStatusResponse) GetClaim() *Claim {
	if x != nil {
		return x.Claim
	}
	return nil
}

type ProcessDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClaimId       string                 `protobuf:"bytes,1,opt,name=claim_id,json=claimId,proto3" json:"claim_id,omitempty"`
	Invoices      []*Upload              `protobuf:"bytes,2,rep,name=invoices,proto3" json:"invoices,omitempty"`
	Evidence      []*Upload              `protobuf:"bytes,3,rep,name=evidence,proto3" json:"evidence,omitempty"`
	RunAnalysis   bool                   `protobuf:"varint,4,opt,name=run_analysis,json=runAnalysis,proto3" json:"run_analysis,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentsRequest) Reset() {
	*x = ProcessDocumentsRequest{}
	mi := &file_claims_v1_claims_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentsRequest) ProtoMessage() {}

func (x *ProcessDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ProcessDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{12}
}

func (x *ProcessDocumentsRequest) GetClaimId() string {
	if x != nil {
		return x.ClaimId
	}
	return ""
}

func (x *ProcessDocumentsRequest) GetInvoices() []*Upload {
	if x != nil {
		return x.Invoices
	}
	return nil
}

func (x *ProcessDocumentsRequest) GetEvidence() []*Upload {
	if x != nil {
		return x.Evidence
	}
	return nil
}

func (x *ProcessDocumentsRequest) GetRunAnalysis() bool {
	if x != nil {
		return x.RunAnalysis
	}
	return false
}

type ProcessDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Claim         *Claim                 `protobuf:"bytes,1,opt,name=claim,proto3" json:"claim,omitempty"`
	Invoices      []*Invoice             `protobuf:"bytes,2,rep,name=invoices,proto3" json:"invoices,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentsResponse) Reset() {
	*x = ProcessDocumentsResponse{}
	mi := &file_claims_v1_claims_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentsResponse) ProtoMessage() {}

func (x *ProcessDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ProcessDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{13}
}

func (x *ProcessDocumentsResponse) GetClaim() *Claim {
	if x != nil {
		return x.Claim
	}
	return nil
}

func (x *ProcessDocumentsResponse) GetInvoices() []*Invoice {
	if x != nil {
		return x.Invoices
	}
	return nil
}

type ReanalyzeClaimRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClaimId       string                 `protobuf:"bytes,1,opt,name=claim_id,json=claimId,proto3" json:"claim_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReanalyzeClaimRequest) Reset() {
	*x = ReanalyzeClaimRequest{}
	mi := &file_claims_v1_claims_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReanalyzeClaimRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReanalyzeClaimRequest) ProtoMessage() {}

func (x *ReanalyzeClaimRequest) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReanalyzeClaimRequest.ProtoReflect.Descriptor instead.
func (*ReanalyzeClaimRequest) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{14}
}

func (x *ReanalyzeClaimRequest) GetClaimId() string {
	if x != nil {
		return x.ClaimId
	}
	return ""
}

type ReanalyzeClaimResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Claim         *Claim                 `protobuf:"bytes,1,opt,name=claim,proto3" json:"claim,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReanalyzeClaimResponse) Reset() {
	*x = ReanalyzeClaimResponse{}
	mi := &file_claims_v1_claims_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReanalyzeClaimResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReanalyzeClaimResponse) ProtoMessage() {}

func (x *ReanalyzeClaimResponse) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReanalyzeClaimResponse.ProtoReflect.Descriptor instead.
func (*ReanalyzeClaimResponse) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{15}
}

func (x *ReanalyzeClaimResponse) GetClaim() *Claim {
	if x != nil {
		return x.Claim
	}
	return nil
}

type ListInvoicesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClaimId       string                 `protobuf:"bytes,1,opt,name=claim_id,json=claimId,proto3" json:"claim_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInvoicesRequest) Reset() {
	*x = ListInvoicesRequest{}
	mi := &file_claims_v1_claims_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInvoicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInvoicesRequest) ProtoMessage() {}

func (x *ListInvoicesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInvoicesRequest.ProtoReflect.Descriptor instead.
func (*ListInvoicesRequest) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{16}
}

func (x *ListInvoicesRequest) GetClaimId() string {
	if x != nil {
		return x.ClaimId
	}
	return ""
}

type ListInvoicesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoices      []*Invoice             `protobuf:"bytes,1,rep,name=invoices,proto3" json:"invoices,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInvoicesResponse) Reset() {
	*x = ListInvoicesResponse{}
	mi := &file_claims_v1_claims_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInvoicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInvoicesResponse) ProtoMessage() {}

func (x *ListInvoicesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInvoicesResponse.ProtoReflect.Descriptor instead.
func (*ListInvoicesResponse) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{17}
}

func (x *ListInvoicesResponse) GetInvoices() []*Invoice {
	if x != nil {
		return x.Invoices
	}
	return nil
}

type GetInvoiceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InvoiceId     string                 `protobuf:"bytes,1,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetInvoiceRequest) Reset() {
	*x = GetInvoiceRequest{}
	mi := &file_claims_v1_claims_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetInvoiceRequest) ProtoMessage() {}

func (x *GetInvoiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetInvoiceRequest.ProtoReflect.Descriptor instead.
func (*GetInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{18}
}

func (x *GetInvoiceRequest) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

type GetInvoiceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoice       *Invoice               `protobuf:"bytes,1,opt,name=invoice,proto3" json:"invoice,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetInvoiceResponse) Reset() {
	*x = GetInvoiceResponse{}
	mi := &file_claims_v1_claims_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetInvoiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetInvoiceResponse) ProtoMessage() {}

func (x *GetInvoiceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetInvoiceResponse.ProtoReflect.Descriptor instead.
func (*GetInvoiceResponse) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{19}
}

func (x *GetInvoiceResponse) GetInvoice() *Invoice {
	if x != nil {
		return x.Invoice
	}
	return nil
}

type ExportClaimRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClaimId       string                 `protobuf:"bytes,1,opt,name=claim_id,json=claimId,proto3" json:"claim_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportClaimRequest) Reset() {
	*x = ExportClaimRequest{}
	mi := &file_claims_v1_claims_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportClaimRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportClaimRequest) ProtoMessage() {}

func (x *ExportClaimRequest) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportClaimRequest.ProtoReflect.Descriptor instead.
func (*ExportClaimRequest) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{20}
}

func (x *ExportClaimRequest) GetClaimId() string {
	if x != nil {
		return x.ClaimId
	}
	return ""
}

type ExportClaimResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileName      string                 `protobuf:"bytes,1,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportClaimResponse) Reset() {
	*x = ExportClaimResponse{}
	mi := &file_claims_v1_claims_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportClaimResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportClaimResponse) ProtoMessage() {}

func (x *ExportClaimResponse) ProtoReflect() protoreflect.Message {
	mi := &file_claims_v1_claims_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportClaimResponse.ProtoReflect.Descriptor instead.
func (*ExportClaimResponse) Descriptor() ([]byte, []int) {
	return file_claims_v1_claims_proto_rawDescGZIP(), []int{21}
}

func (x *ExportClaimResponse) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *ExportClaimResponse) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

var File_claims_v1_claims_proto protoreflect.FileDescriptor

const file_claims_v1_claims_proto_rawDesc = "" +
	"\n" +
	"\x16claims/v1/claims.proto\x12\tclaims.v1\"\xf0\x02\n" +
	"\x05Claim\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12!\n" +
	"\fclaim_number\x18\x02 \x01(\tR\vclaimNumber\x12#\n" +
	"\rpolicy_number\x18\x03 \x01(\tR\fpolicyNumber\x12#\n" +
	"\rclaimant_name\x18\x04 \x01(\tR\fclaimantName\x12)\n" +
	"\x10property_address\x18\x05 \x01(\tR\x0fpropertyAddress\x12 \n" +
	"\fdate_of_loss\x18\x06 \x01(\tR\n" +
	"dateOfLoss\x12\"\n" +
	"\rcause_of_loss\x18\a \x01(\tR\vcauseOfLoss\x12\x16\n" +
	"\x06status\x18\b \x01(\tR\x06status\x12#\n" +
	"\ranalysis_json\x18\t \x01(\tR\fanalysisJson\x12\x1d\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\v \x01(\tR\tupdatedAt\"p\n" +
	"\x0eValidationFlag\x12\x12\n" +
	"\x04code\x18\x01 \x01(\tR\x04code\x12\x1a\n" +
	"\bseverity\x18\x02 \x01(\tR\bseverity\x12\x18\n" +
	"\amessage\x18\x03 \x01(\tR\amessage\x12\x14\n" +
	"\x05field\x18\x04 \x01(\tR\x05field\"\xdb\a\n" +
	"\aInvoice\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bclaim_id\x18\x02 \x01(\tR\aclaimId\x12\x1b\n" +
	"\tfile_name\x18\x03 \x01(\tR\bfileName\x12\x1b\n" +
	"\tfile_type\x18\x04 \x01(\tR\bfileType\x12\x1b\n" +
	"\tfile_size\x18\x05 \x01(\x05R\bfileSize\x12\x1f\n" +
	"\vvendor_name\x18\x06 \x01(\tR\n" +
	"vendorName\x12%\n" +
	"\x0evendor_address\x18\a \x01(\tR\rvendorAddress\x12!\n" +
	"\fvendor_phone\x18\b \x01(\tR\vvendorPhone\x12%\n" +
	"\x0einvoice_number\x18\t \x01(\tR\rinvoiceNumber\x12!\n" +
	"\finvoice_date\x18\n" +
	" \x01(\tR\vinvoiceDate\x12\x19\n" +
	"\bdue_date\x18\v \x01(\tR\adueDate\x12!\n" +
	"\ftotal_amount\x18\f \x01(\tR\vtotalAmount\x12\x1a\n" +
	"\bcurrency\x18\r \x01(\tR\bcurrency\x12&\n" +
	"\x0fline_items_json\x18\x0e \x01(\tR\rlineItemsJson\x12%\n" +
	"\x0eocr_confidence\x18\x0f \x01(\x02R\rocrConfidence\x12!\n" +
	"\fprocessed_at\x18\x10 \x01(\tR\vprocessedAt\x12+\n" +
	"\x11validation_status\x18\x11 \x01(\tR\x10validationStatus\x12D\n" +
	"\x10validation_flags\x18\x12 \x03(\v2\x19.claims.v1.ValidationFlagR\x0fvalidationFlags\x12%\n" +
	"\x0ecovered_amount\x18\x13 \x01(\tR\rcoveredAmount\x12,\n" +
	"\x12non_covered_amount\x18\x14 \x01(\tR\x10nonCoveredAmount\x12\"\n" +
	"\fdepreciation\x18\x15 \x01(\tR\fdepreciation\x12\x1e\n" +
	"\n" +
	"deductible\x18\x16 \x01(\tR\n" +
	"deductible\x12-\n" +
	"\x12recommended_payout\x18\x17 \x01(\tR\x11recommendedPayout\x12/\n" +
	"\x13adjudication_status\x18\x18 \x01(\tR\x12adjudicationStatus\x12#\n" +
	"\ranalysis_json\x18\x19 \x01(\tR\fanalysisJson\x12\x1d\n" +
	"\n" +
	"created_at\x18\x1a \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x1b \x01(\tR\tupdatedAt\"\\\n" +
	"\x06Upload\x12\x1b\n" +
	"\tfile_name\x18\x01 \x01(\tR\bfileName\x12\x1b\n" +
	"\tmime_type\x18\x02 \x01(\tR\bmimeType\x12\x18\n" +
	"\acontent\x18\x03 \x01(\fR\acontent\"\xf2\x01\n" +
	"\x12CreateClaimRequest\x12!\n" +
	"\fclaim_number\x18\x01 \x01(\tR\vclaimNumber\x12#\n" +
	"\rpolicy_number\x18\x02 \x01(\tR\fpolicyNumber\x12#\n" +
	"\rclaimant_name\x18\x03 \x01(\tR\fclaimantName\x12)\n" +
	"\x10property_address\x18\x04 \x01(\tR\x0fpropertyAddress\x12 \n" +
	"\fdate_of_loss\x18\x05 \x01(\tR\n" +
	"dateOfLoss\x12\"\n" +
	"\rcause_of_loss\x18\x06 \x01(\tR\vcauseOfLoss\"=\n" +
	"\x13CreateClaimResponse\x12&\n" +
	"\x05claim\x18\x01 \x01(\v2\x10.claims.v1.ClaimR\x05claim\",\n" +
	"\x0fGetClaimRequest\x12\x19\n" +
	"\bclaim_id\x18\x01 \x01(\tR\aclaimId\":\n" +
	"\x10GetClaimResponse\x12&\n" +
	"\x05claim\x18\x01 \x01(\v2\x10.claims.v1.ClaimR\x05claim\"D\n" +
	"\x11ListClaimsRequest\x12\x12\n" +
	"\x04page\x18\x01 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x02 \x01(\x05R\bpageSize\"T\n" +
	"\x12ListClaimsResponse\x12(\n" +
	"\x06claims\x18\x01 \x03(\v2\x10.claims.v1.ClaimR\x06claims\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x05R\x05total\"M\n" +
	"\x18UpdateClaimStatusRequest\x12\x19\n" +
	"\bclaim_id\x18\x01 \x01(\tR\aclaimId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\"C\n" +
	"\x19UpdateClaimStatusResponse\x12&\n" +
	"\x05claim\x18\x01 \x01(\v2\x10.claims.v1.ClaimR\x05claim\"\xb5\x01\n" +
	"\x17ProcessDocumentsRequest\x12\x19\n" +
	"\bclaim_id\x18\x01 \x01(\tR\aclaimId\x12-\n" +
	"\binvoices\x18\x02 \x03(\v2\x11.claims.v1.UploadR\binvoices\x12-\n" +
	"\bevidence\x18\x03 \x03(\v2\x11.claims.v1.UploadR\bevidence\x12!\n" +
	"\frun_analysis\x18\x04 \x01(\bR\vrunAnalysis\"r\n" +
	"\x18ProcessDocumentsResponse\x12&\n" +
	"\x05claim\x18\x01 \x01(\v2\x10.claims.v1.ClaimR\x05claim\x12.\n" +
	"\binvoices\x18\x02 \x03(\v2\x12.claims.v1.InvoiceR\binvoices\"2\n" +
	"\x15ReanalyzeClaimRequest\x12\x19\n" +
	"\bclaim_id\x18\x01 \x01(\tR\aclaimId\"@\n" +
	"\x16ReanalyzeClaimResponse\x12&\n" +
	"\x05claim\x18\x01 \x01(\v2\x10.claims.v1.ClaimR\x05claim\"0\n" +
	"\x13ListInvoicesRequest\x12\x19\n" +
	"\bclaim_id\x18\x01 \x01(\tR\aclaimId\"F\n" +
	"\x14ListInvoicesResponse\x12.\n" +
	"\binvoices\x18\x01 \x03(\v2\x12.claims.v1.InvoiceR\binvoices\"2\n" +
	"\x11GetInvoiceRequest\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x01 \x01(\tR\tinvoiceId\"B\n" +
	"\x12GetInvoiceResponse\x12,\n" +
	"\ainvoice\x18\x01 \x01(\v2\x12.claims.v1.InvoiceR\ainvoice\"/\n" +
	"\x12ExportClaimRequest\x12\x19\n" +
	"\bclaim_id\x18\x01 \x01(\tR\aclaimId\"L\n" +
	"\x13ExportClaimResponse\x12\x1b\n" +
	"\tfile_name\x18\x01 \x01(\tR\bfileName\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent2\xeb\x05\n" +
	"\rClaimsService\x12L\n" +
	"\vCreateClaim\x12\x1d.claims.v1.CreateClaimRequest\x1a\x1e.claims.v1.CreateClaimResponse\x12C\n" +
	"\bGetClaim\x12\x1a.claims.v1.GetClaimRequest\x1a\x1b.claims.v1.GetClaimResponse\x12I\n" +
	"\n" +
	"ListClaims\x12\x1c.claims.v1.ListClaimsRequest\x1a\x1d.claims.v1.ListClaimsResponse\x12^\n" +
	"\x11UpdateClaimStatus\x12#.claims.v1.UpdateClaimStatusRequest\x1a$.claims.v1.UpdateClaimStatusResponse\x12[\n" +
	"\x10ProcessDocuments\x12\".claims.v1.ProcessDocumentsRequest\x1a#.claims.v1.ProcessDocumentsResponse\x12U\n" +
	"\x0eReanalyzeClaim\x12 .claims.v1.ReanalyzeClaimRequest\x1a!.claims.v1.ReanalyzeClaimResponse\x12O\n" +
	"\fListInvoices\x12\x1e.claims.v1.ListInvoicesRequest\x1a\x1f.claims.v1.ListInvoicesResponse\x12I\n" +
	"\n" +
	"GetInvoice\x12\x1c.claims.v1.GetInvoiceRequest\x1a\x1d.claims.v1.GetInvoiceResponse\x12L\n" +
	"\vExportClaim\x12\x1d.claims.v1.ExportClaimRequest\x1a\x1e.claims.v1.ExportClaimResponseBKZIgithub.com/insurtech-labs/claims-adjudicator/gen/proto/claims/v1;claimspbb\x06proto3"

var (
	file_claims_v1_claims_proto_rawDescOnce sync.Once
	file_claims_v1_claims_proto_rawDescData []byte
)

func file_claims_v1_claims_proto_rawDescGZIP() []byte {
	file_claims_v1_claims_proto_rawDescOnce.Do(func() {
		file_claims_v1_claims_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_claims_v1_claims_proto_rawDesc), len(file_claims_v1_claims_proto_rawDesc)))
	})
	return file_claims_v1_claims_proto_rawDescData
}

var file_claims_v1_claims_proto_msgTypes = make([]protoimpl.MessageInfo, 22)
var file_claims_v1_claims_proto_goTypes = []any{
	(*Claim)(nil),                     // 0: claims.v1.Claim
	(*ValidationFlag)(nil),            // 1: claims.v1.ValidationFlag
	(*Invoice)(nil),                   // 2: claims.v1.Invoice
	(*Upload)(nil),                    // 3: claims.v1.Upload
	(*CreateClaimRequest)(nil),        // 4: claims.v1.CreateClaimRequest
	(*CreateClaimResponse)(nil),       // 5: claims.v1.CreateClaimResponse
	(*GetClaimRequest)(nil),           // 6: claims.v1.GetClaimRequest
	(*GetClaimResponse)(nil),          // 7: claims.v1.GetClaimResponse
	(*ListClaimsRequest)(nil),         // 8: claims.v1.ListClaimsRequest
	(*ListClaimsResponse)(nil),        // 9: claims.v1.ListClaimsResponse
	(*UpdateClaimStatusRequest)(nil),  // 10: claims.v1.UpdateClaimStatusRequest
	(*UpdateClaimStatusResponse)(nil), // 11: claims.v1.UpdateClaimStatusResponse
	(*ProcessDocumentsRequest)(nil),   // 12: claims.v1.ProcessDocumentsRequest
	(*ProcessDocumentsResponse)(nil),  // 13: claims.v1.ProcessDocumentsResponse
	(*ReanalyzeClaimRequest)(nil),     // 14: claims.v1.ReanalyzeClaimRequest
	(*ReanalyzeClaimResponse)(nil),    // 15: claims.v1.ReanalyzeClaimResponse
	(*ListInvoicesRequest)(nil),       // 16: claims.v1.ListInvoicesRequest
	(*ListInvoicesResponse)(nil),      // 17: claims.v1.ListInvoicesResponse
	(*GetInvoiceRequest)(nil),         // 18: claims.v1.GetInvoiceRequest
	(*GetInvoiceResponse)(nil),        // 19: claims.v1.GetInvoiceResponse
	(*ExportClaimRequest)(nil),        // 20: claims.v1.ExportClaimRequest
	(*ExportClaimResponse)(nil),       // 21: claims.v1.ExportClaimResponse
}
var file_claims_v1_claims_proto_depIdxs = []int32{
	1,  // 0: claims.v1.Invoice.validation_flags:type_name -> claims.v1.ValidationFlag
	0,  // 1: claims.v1.CreateClaimResponse.claim:type_name -> claims.v1.Claim
	0,  // 2: claims.v1.GetClaimResponse.claim:type_name -> claims.v1.Claim
	0,  // 3: claims.v1.ListClaimsResponse.claims:type_name -> claims.v1.Claim
	0,  // 4: claims.v1.UpdateClaimStatusResponse.claim:type_name -> claims.v1.Claim
	3,  // 5: claims.v1.ProcessDocumentsRequest.invoices:type_name -> claims.v1.Upload
	3,  // 6: claims.v1.ProcessDocumentsRequest.evidence:type_name -> claims.v1.Upload
	0,  // 7: claims.v1.ProcessDocumentsResponse.claim:type_name -> claims.v1.Claim
	2,  // 8: claims.v1.ProcessDocumentsResponse.invoices:type_name -> claims.v1.Invoice
	0,  // 9: claims.v1.ReanalyzeClaimResponse.claim:type_name -> claims.v1.Claim
	2,  // 10: claims.v1.ListInvoicesResponse.invoices:type_name -> claims.v1.Invoice
	2,  // 11: claims.v1.GetInvoiceResponse.invoice:type_name -> claims.v1.Invoice
	4,  // 12: claims.v1.ClaimsService.CreateClaim:input_type -> claims.v1.CreateClaimRequest
	6,  // 13: claims.v1.ClaimsService.GetClaim:input_type -> claims.v1.GetClaimRequest
	8,  // 14: claims.v1.ClaimsService.ListClaims:input_type -> claims.v1.ListClaimsRequest
	10, // 15: claims.v1.ClaimsService.UpdateClaimStatus:input_type -> claims.v1.UpdateClaimStatusRequest
	12, // 16: claims.v1.ClaimsService.ProcessDocuments:input_type -> claims.v1.ProcessDocumentsRequest
	14, // 17: claims.v1.ClaimsService.ReanalyzeClaim:input_type -> claims.v1.ReanalyzeClaimRequest
	16, // 18: claims.v1.ClaimsService.ListInvoices:input_type -> claims.v1.ListInvoicesRequest
	18, // 19: claims.v1.ClaimsService.GetInvoice:input_type -> claims.v1.GetInvoiceRequest
	20, // 20: claims.v1.ClaimsService.ExportClaim:input_type -> claims.v1.ExportClaimRequest
	5,  // 21: claims.v1.ClaimsService.CreateClaim:output_type -> claims.v1.CreateClaimResponse
	7,  // 22: claims.v1.ClaimsService.GetClaim:output_type -> claims.v1.GetClaimResponse
	9,  // 23: claims.v1.ClaimsService.ListClaims:output_type -> claims.v1.ListClaimsResponse
	11, // 24: claims.v1.ClaimsService.UpdateClaimStatus:output_type -> claims.v1.UpdateClaimStatusResponse
	13, // 25: claims.v1.ClaimsService.ProcessDocuments:output_type -> claims.v1.ProcessDocumentsResponse
	15, // 26: claims.v1.ClaimsService.ReanalyzeClaim:output_type -> claims.v1.ReanalyzeClaimResponse
	17, // 27: claims.v1.ClaimsService.ListInvoices:output_type -> claims.v1.ListInvoicesResponse
	19, // 28: claims.v1.ClaimsService.GetInvoice:output_type -> claims.v1.GetInvoiceResponse
	21, // 29: claims.v1.ClaimsService.ExportClaim:output_type -> claims.v1.ExportClaimResponse
	21, // [21:30] is the sub-list for method output_type
	12, // [12:21] is the sub-list for method input_type
	12, // [12:12] is the sub-list for extension type_name
	12, // [12:12] is the sub-list for extension extendee
	0,  // [0:12] is the sub-list for field type_name
}

func init() { file_claims_v1_claims_proto_init() }
func file_claims_v1_claims_proto_init() {
	if File_claims_v1_claims_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_claims_v1_claims_proto_rawDesc), len(file_claims_v1_claims_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   22,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_claims_v1_claims_proto_goTypes,
		DependencyIndexes: file_claims_v1_claims_proto_depIdxs,
		MessageInfos:      file_claims_v1_claims_proto_msgTypes,
	}.Build()
	File_claims_v1_claims_proto = out.File
	file_claims_v1_claims_proto_goTypes = nil
	file_claims_v1_claims_proto_depIdxs = nil
}
