// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.35.2
// 	protoc        (unknown)
// source: moneygate/v1/moneygate.proto

package moneygatev1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ApplyRemittanceRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	RemittanceId string                 `protobuf:"bytes,1,opt,name=remittance_id,json=remittanceId,proto3" json:"remittance_id,omitempty"`
	GateId       string                 `protobuf:"bytes,2,opt,name=gate_id,json=gateId,proto3" json:"gate_id,omitempty"`
	AmountCents  int64                  `protobuf:"varint,3,opt,name=amount_cents,json=amountCents,proto3" json:"amount_cents,omitempty"`
	OpensAt      *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=opens_at,json=opensAt,proto3" json:"opens_at,omitempty"`
	Metadata     map[string]string      `protobuf:"bytes,5,rep,name=metadata,proto3" json:"metadata,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
}

func (x *ApplyRemittanceRequest) Reset() {
	*x = ApplyRemittanceRequest{}
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplyRemittanceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplyRemittanceRequest) ProtoMessage() {}

func (x *ApplyRemittanceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplyRemittanceRequest.ProtoReflect.Descriptor instead.
func (*ApplyRemittanceRequest) Descriptor() ([]byte, []int) {
	return file_moneygate_v1_moneygate_proto_rawDescGZIP(), []int{0}
}

func (x *ApplyRemittanceRequest) GetRemittanceId() string {
	if x != nil {
		return x.RemittanceId
	}
	return ""
}

func (x *ApplyRemittanceRequest) GetGateId() string {
	if x != nil {
		return x.GateId
	}
	return ""
}

func (x *ApplyRemittanceRequest) GetAmountCents() int64 {
	if x != nil {
		return x.AmountCents
	}
	return 0
}

func (x *ApplyRemittanceRequest) GetOpensAt() *timestamppb.Timestamp {
	if x != nil {
		return x.OpensAt
	}
	return nil
}

func (x *ApplyRemittanceRequest) GetMetadata() map[string]string {
	if x != nil {
		return x.Metadata
	}
	return nil
}

type ApplyRemittanceResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	// status is "applied" or "scheduled".
	Status     string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	GateReason string `protobuf:"bytes,2,opt,name=gate_reason,json=gateReason,proto3" json:"gate_reason,omitempty"`
	// Set when status is "applied".
	LedgerEntryId string                 `protobuf:"bytes,3,opt,name=ledger_entry_id,json=ledgerEntryId,proto3" json:"ledger_entry_id,omitempty"`
	RecordedAt    *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=recorded_at,json=recordedAt,proto3" json:"recorded_at,omitempty"`
	// Set when status is "scheduled".
	ScheduledId string                 `protobuf:"bytes,5,opt,name=scheduled_id,json=scheduledId,proto3" json:"scheduled_id,omitempty"`
	OpensAt     *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=opens_at,json=opensAt,proto3" json:"opens_at,omitempty"`
}

func (x *ApplyRemittanceResponse) Reset() {
	*x = ApplyRemittanceResponse{}
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplyRemittanceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplyRemittanceResponse) ProtoMessage() {}

func (x *ApplyRemittanceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplyRemittanceResponse.ProtoReflect.Descriptor instead.
func (*ApplyRemittanceResponse) Descriptor() ([]byte, []int) {
	return file_moneygate_v1_moneygate_proto_rawDescGZIP(), []int{1}
}

func (x *ApplyRemittanceResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ApplyRemittanceResponse) GetGateReason() string {
	if x != nil {
		return x.GateReason
	}
	return ""
}

func (x *ApplyRemittanceResponse) GetLedgerEntryId() string {
	if x != nil {
		return x.LedgerEntryId
	}
	return ""
}

func (x *ApplyRemittanceResponse) GetRecordedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.RecordedAt
	}
	return nil
}

func (x *ApplyRemittanceResponse) GetScheduledId() string {
	if x != nil {
		return x.ScheduledId
	}
	return ""
}

func (x *ApplyRemittanceResponse) GetOpensAt() *timestamppb.Timestamp {
	if x != nil {
		return x.OpensAt
	}
	return nil
}

type BankLine struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Id             string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	AvailableCents int64  `protobuf:"varint,2,opt,name=available_cents,json=availableCents,proto3" json:"available_cents,omitempty"`
	// "OPEN" or "CLOSED"; empty defaults to OPEN.
	Gate string `protobuf:"bytes,3,opt,name=gate,proto3" json:"gate,omitempty"`
}

func (x *BankLine) Reset() {
	*x = BankLine{}
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BankLine) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BankLine) ProtoMessage() {}

func (x *BankLine) ProtoReflect() protoreflect.Message {
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BankLine.ProtoReflect.Descriptor instead.
func (*BankLine) Descriptor() ([]byte, []int) {
	return file_moneygate_v1_moneygate_proto_rawDescGZIP(), []int{2}
}

func (x *BankLine) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *BankLine) GetAvailableCents() int64 {
	if x != nil {
		return x.AvailableCents
	}
	return 0
}

func (x *BankLine) GetGate() string {
	if x != nil {
		return x.Gate
	}
	return ""
}

type PolicyRule struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	BucketId          string   `protobuf:"bytes,1,opt,name=bucket_id,json=bucketId,proto3" json:"bucket_id,omitempty"`
	MinBps            int64    `protobuf:"varint,2,opt,name=min_bps,json=minBps,proto3" json:"min_bps,omitempty"`
	MaxBps            int64    `protobuf:"varint,3,opt,name=max_bps,json=maxBps,proto3" json:"max_bps,omitempty"`
	CounterpartyAllow []string `protobuf:"bytes,4,rep,name=counterparty_allow,json=counterpartyAllow,proto3" json:"counterparty_allow,omitempty"`
	CounterpartyDeny  []string `protobuf:"bytes,5,rep,name=counterparty_deny,json=counterpartyDeny,proto3" json:"counterparty_deny,omitempty"`
	Gate              string   `protobuf:"bytes,6,opt,name=gate,proto3" json:"gate,omitempty"`
}

func (x *PolicyRule) Reset() {
	*x = PolicyRule{}
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PolicyRule) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PolicyRule) ProtoMessage() {}

func (x *PolicyRule) ProtoReflect() protoreflect.Message {
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PolicyRule.ProtoReflect.Descriptor instead.
func (*PolicyRule) Descriptor() ([]byte, []int) {
	return file_moneygate_v1_moneygate_proto_rawDescGZIP(), []int{3}
}

func (x *PolicyRule) GetBucketId() string {
	if x != nil {
		return x.BucketId
	}
	return ""
}

func (x *PolicyRule) GetMinBps() int64 {
	if x != nil {
		return x.MinBps
	}
	return 0
}

func (x *PolicyRule) GetMaxBps() int64 {
	if x != nil {
		return x.MaxBps
	}
	return 0
}

func (x *PolicyRule) GetCounterpartyAllow() []string {
	if x != nil {
		return x.CounterpartyAllow
	}
	return nil
}

func (x *PolicyRule) GetCounterpartyDeny() []string {
	if x != nil {
		return x.CounterpartyDeny
	}
	return nil
}

func (x *PolicyRule) GetGate() string {
	if x != nil {
		return x.Gate
	}
	return ""
}

type AccountState struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	AccountId      string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	BucketId       string `protobuf:"bytes,2,opt,name=bucket_id,json=bucketId,proto3" json:"bucket_id,omitempty"`
	RequestedCents int64  `protobuf:"varint,3,opt,name=requested_cents,json=requestedCents,proto3" json:"requested_cents,omitempty"`
	CounterpartyId string `protobuf:"bytes,4,opt,name=counterparty_id,json=counterpartyId,proto3" json:"counterparty_id,omitempty"`
	Gate           string `protobuf:"bytes,5,opt,name=gate,proto3" json:"gate,omitempty"`
}

func (x *AccountState) Reset() {
	*x = AccountState{}
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AccountState) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AccountState) ProtoMessage() {}

func (x *AccountState) ProtoReflect() protoreflect.Message {
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AccountState.ProtoReflect.Descriptor instead.
func (*AccountState) Descriptor() ([]byte, []int) {
	return file_moneygate_v1_moneygate_proto_rawDescGZIP(), []int{4}
}

func (x *AccountState) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *AccountState) GetBucketId() string {
	if x != nil {
		return x.BucketId
	}
	return ""
}

func (x *AccountState) GetRequestedCents() int64 {
	if x != nil {
		return x.RequestedCents
	}
	return 0
}

func (x *AccountState) GetCounterpartyId() string {
	if x != nil {
		return x.CounterpartyId
	}
	return ""
}

func (x *AccountState) GetGate() string {
	if x != nil {
		return x.Gate
	}
	return ""
}

type Allocation struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	AccountId      string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	BucketId       string `protobuf:"bytes,2,opt,name=bucket_id,json=bucketId,proto3" json:"bucket_id,omitempty"`
	AllocatedCents int64  `protobuf:"varint,3,opt,name=allocated_cents,json=allocatedCents,proto3" json:"allocated_cents,omitempty"`
}

func (x *Allocation) Reset() {
	*x = Allocation{}
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Allocation) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Allocation) ProtoMessage() {}

func (x *Allocation) ProtoReflect() protoreflect.Message {
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Allocation.ProtoReflect.Descriptor instead.
func (*Allocation) Descriptor() ([]byte, []int) {
	return file_moneygate_v1_moneygate_proto_rawDescGZIP(), []int{5}
}

func (x *Allocation) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *Allocation) GetBucketId() string {
	if x != nil {
		return x.BucketId
	}
	return ""
}

func (x *Allocation) GetAllocatedCents() int64 {
	if x != nil {
		return x.AllocatedCents
	}
	return 0
}

type PreviewAllocationRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Line     *BankLine       `protobuf:"bytes,1,opt,name=line,proto3" json:"line,omitempty"`
	Rules    []*PolicyRule   `protobuf:"bytes,2,rep,name=rules,proto3" json:"rules,omitempty"`
	Accounts []*AccountState `protobuf:"bytes,3,rep,name=accounts,proto3" json:"accounts,omitempty"`
}

func (x *PreviewAllocationRequest) Reset() {
	*x = PreviewAllocationRequest{}
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PreviewAllocationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PreviewAllocationRequest) ProtoMessage() {}

func (x *PreviewAllocationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PreviewAllocationRequest.ProtoReflect.Descriptor instead.
func (*PreviewAllocationRequest) Descriptor() ([]byte, []int) {
	return file_moneygate_v1_moneygate_proto_rawDescGZIP(), []int{6}
}

func (x *PreviewAllocationRequest) GetLine() *BankLine {
	if x != nil {
		return x.Line
	}
	return nil
}

func (x *PreviewAllocationRequest) GetRules() []*PolicyRule {
	if x != nil {
		return x.Rules
	}
	return nil
}

func (x *PreviewAllocationRequest) GetAccounts() []*AccountState {
	if x != nil {
		return x.Accounts
	}
	return nil
}

type PreviewAllocationResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Allocations []*Allocation `protobuf:"bytes,1,rep,name=allocations,proto3" json:"allocations,omitempty"`
	PolicyHash  string        `protobuf:"bytes,2,opt,name=policy_hash,json=policyHash,proto3" json:"policy_hash,omitempty"`
	Explain     string        `protobuf:"bytes,3,opt,name=explain,proto3" json:"explain,omitempty"`
}

func (x *PreviewAllocationResponse) Reset() {
	*x = PreviewAllocationResponse{}
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PreviewAllocationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PreviewAllocationResponse) ProtoMessage() {}

func (x *PreviewAllocationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PreviewAllocationResponse.ProtoReflect.Descriptor instead.
func (*PreviewAllocationResponse) Descriptor() ([]byte, []int) {
	return file_moneygate_v1_moneygate_proto_rawDescGZIP(), []int{7}
}

func (x *PreviewAllocationResponse) GetAllocations() []*Allocation {
	if x != nil {
		return x.Allocations
	}
	return nil
}

func (x *PreviewAllocationResponse) GetPolicyHash() string {
	if x != nil {
		return x.PolicyHash
	}
	return ""
}

func (x *PreviewAllocationResponse) GetExplain() string {
	if x != nil {
		return x.Explain
	}
	return ""
}

type CloseGateRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	GateId               string                 `protobuf:"bytes,1,opt,name=gate_id,json=gateId,proto3" json:"gate_id,omitempty"`
	Reason               string                 `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
	ActorRole            string                 `protobuf:"bytes,3,opt,name=actor_role,json=actorRole,proto3" json:"actor_role,omitempty"`
	OpensAt              *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=opens_at,json=opensAt,proto3" json:"opens_at,omitempty"`
	RequireAdminOverride bool                   `protobuf:"varint,5,opt,name=require_admin_override,json=requireAdminOverride,proto3" json:"require_admin_override,omitempty"`
}

func (x *CloseGateRequest) Reset() {
	*x = CloseGateRequest{}
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CloseGateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CloseGateRequest) ProtoMessage() {}

func (x *CloseGateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CloseGateRequest.ProtoReflect.Descriptor instead.
func (*CloseGateRequest) Descriptor() ([]byte, []int) {
	return file_moneygate_v1_moneygate_proto_rawDescGZIP(), []int{8}
}

func (x *CloseGateRequest) GetGateId() string {
	if x != nil {
		return x.GateId
	}
	return ""
}

func (x *CloseGateRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

func (x *CloseGateRequest) GetActorRole() string {
	if x != nil {
		return x.ActorRole
	}
	return ""
}

func (x *CloseGateRequest) GetOpensAt() *timestamppb.Timestamp {
	if x != nil {
		return x.OpensAt
	}
	return nil
}

func (x *CloseGateRequest) GetRequireAdminOverride() bool {
	if x != nil {
		return x.RequireAdminOverride
	}
	return false
}

type OpenGateRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	GateId    string `protobuf:"bytes,1,opt,name=gate_id,json=gateId,proto3" json:"gate_id,omitempty"`
	ActorRole string `protobuf:"bytes,2,opt,name=actor_role,json=actorRole,proto3" json:"actor_role,omitempty"`
}

func (x *OpenGateRequest) Reset() {
	*x = OpenGateRequest{}
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OpenGateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OpenGateRequest) ProtoMessage() {}

func (x *OpenGateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OpenGateRequest.ProtoReflect.Descriptor instead.
func (*OpenGateRequest) Descriptor() ([]byte, []int) {
	return file_moneygate_v1_moneygate_proto_rawDescGZIP(), []int{9}
}

func (x *OpenGateRequest) GetGateId() string {
	if x != nil {
		return x.GateId
	}
	return ""
}

func (x *OpenGateRequest) GetActorRole() string {
	if x != nil {
		return x.ActorRole
	}
	return ""
}

type SetGateOpensAtRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	GateId    string `protobuf:"bytes,1,opt,name=gate_id,json=gateId,proto3" json:"gate_id,omitempty"`
	ActorRole string `protobuf:"bytes,2,opt,name=actor_role,json=actorRole,proto3" json:"actor_role,omitempty"`
	// Clears the schedule when unset.
	OpensAt *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=opens_at,json=opensAt,proto3" json:"opens_at,omitempty"`
}

func (x *SetGateOpensAtRequest) Reset() {
	*x = SetGateOpensAtRequest{}
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetGateOpensAtRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetGateOpensAtRequest) ProtoMessage() {}

func (x *SetGateOpensAtRequest) ProtoReflect() protoreflect.Message {
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetGateOpensAtRequest.ProtoReflect.Descriptor instead.
func (*SetGateOpensAtRequest) Descriptor() ([]byte, []int) {
	return file_moneygate_v1_moneygate_proto_rawDescGZIP(), []int{10}
}

func (x *SetGateOpensAtRequest) GetGateId() string {
	if x != nil {
		return x.GateId
	}
	return ""
}

func (x *SetGateOpensAtRequest) GetActorRole() string {
	if x != nil {
		return x.ActorRole
	}
	return ""
}

func (x *SetGateOpensAtRequest) GetOpensAt() *timestamppb.Timestamp {
	if x != nil {
		return x.OpensAt
	}
	return nil
}

type GetGateRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	GateId string `protobuf:"bytes,1,opt,name=gate_id,json=gateId,proto3" json:"gate_id,omitempty"`
}

func (x *GetGateRequest) Reset() {
	*x = GetGateRequest{}
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetGateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetGateRequest) ProtoMessage() {}

func (x *GetGateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetGateRequest.ProtoReflect.Descriptor instead.
func (*GetGateRequest) Descriptor() ([]byte, []int) {
	return file_moneygate_v1_moneygate_proto_rawDescGZIP(), []int{11}
}

func (x *GetGateRequest) GetGateId() string {
	if x != nil {
		return x.GateId
	}
	return ""
}

type Gate struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Id        string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Status    string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Reason    string                 `protobuf:"bytes,3,opt,name=reason,proto3" json:"reason,omitempty"`
	OpensAt   *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=opens_at,json=opensAt,proto3" json:"opens_at,omitempty"`
	Locked    bool                   `protobuf:"varint,5,opt,name=locked,proto3" json:"locked,omitempty"`
	UpdatedAt *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
}

func (x *Gate) Reset() {
	*x = Gate{}
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Gate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Gate) ProtoMessage() {}

func (x *Gate) ProtoReflect() protoreflect.Message {
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Gate.ProtoReflect.Descriptor instead.
func (*Gate) Descriptor() ([]byte, []int) {
	return file_moneygate_v1_moneygate_proto_rawDescGZIP(), []int{12}
}

func (x *Gate) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Gate) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Gate) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

func (x *Gate) GetOpensAt() *timestamppb.Timestamp {
	if x != nil {
		return x.OpensAt
	}
	return nil
}

func (x *Gate) GetLocked() bool {
	if x != nil {
		return x.Locked
	}
	return false
}

func (x *Gate) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type GateResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Gate *Gate `protobuf:"bytes,1,opt,name=gate,proto3" json:"gate,omitempty"`
}

func (x *GateResponse) Reset() {
	*x = GateResponse{}
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GateResponse) ProtoMessage() {}

func (x *GateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GateResponse.ProtoReflect.Descriptor instead.
func (*GateResponse) Descriptor() ([]byte, []int) {
	return file_moneygate_v1_moneygate_proto_rawDescGZIP(), []int{13}
}

func (x *GateResponse) GetGate() *Gate {
	if x != nil {
		return x.Gate
	}
	return nil
}

type ListGatesRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *ListGatesRequest) Reset() {
	*x = ListGatesRequest{}
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListGatesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListGatesRequest) ProtoMessage() {}

func (x *ListGatesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListGatesRequest.ProtoReflect.Descriptor instead.
func (*ListGatesRequest) Descriptor() ([]byte, []int) {
	return file_moneygate_v1_moneygate_proto_rawDescGZIP(), []int{14}
}

type ListGatesResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Gates []*Gate `protobuf:"bytes,1,rep,name=gates,proto3" json:"gates,omitempty"`
}

func (x *ListGatesResponse) Reset() {
	*x = ListGatesResponse{}
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListGatesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListGatesResponse) ProtoMessage() {}

func (x *ListGatesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_moneygate_v1_moneygate_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListGatesResponse.ProtoReflect.Descriptor instead.
func (*ListGatesResponse) Descriptor() ([]byte, []int) {
	return file_moneygate_v1_moneygate_proto_rawDescGZIP(), []int{15}
}

func (x *ListGatesResponse) GetGates() []*Gate {
	if x != nil {
		return x.Gates
	}
	return nil
}

var File_moneygate_v1_moneygate_proto protoreflect.FileDescriptor

var file_moneygate_v1_moneygate_proto_rawDesc = []byte{
	0x0a, 0x1c, 0x6d, 0x6f, 0x6e, 0x65, 0x79, 0x67, 0x61, 0x74, 0x65, 0x2f, 0x76, 0x31, 0x2f, 0x6d,
	0x6f, 0x6e, 0x65, 0x79, 0x67, 0x61, 0x74, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x0c,
	0x6d, 0x6f, 0x6e, 0x65, 0x79, 0x67, 0x61, 0x74, 0x65, 0x2e, 0x76, 0x31, 0x1a, 0x1f, 0x67, 0x6f,
	0x6f, 0x67, 0x6c, 0x65, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2f, 0x74, 0x69,
	0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x22, 0xbd, 0x02,
	0x0a, 0x16, 0x41, 0x70, 0x70, 0x6c, 0x79, 0x52, 0x65, 0x6d, 0x69, 0x74, 0x74, 0x61, 0x6e, 0x63,
	0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x23, 0x0a, 0x0d, 0x72, 0x65, 0x6d, 0x69,
	0x74, 0x74, 0x61, 0x6e, 0x63, 0x65, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x0c, 0x72, 0x65, 0x6d, 0x69, 0x74, 0x74, 0x61, 0x6e, 0x63, 0x65, 0x49, 0x64, 0x12, 0x17, 0x0a,
	0x07, 0x67, 0x61, 0x74, 0x65, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06,
	0x67, 0x61, 0x74, 0x65, 0x49, 0x64, 0x12, 0x21, 0x0a, 0x0c, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74,
	0x5f, 0x63, 0x65, 0x6e, 0x74, 0x73, 0x18, 0x03, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0b, 0x61, 0x6d,
	0x6f, 0x75, 0x6e, 0x74, 0x43, 0x65, 0x6e, 0x74, 0x73, 0x12, 0x35, 0x0a, 0x08, 0x6f, 0x70, 0x65,
	0x6e, 0x73, 0x5f, 0x61, 0x74, 0x18, 0x04, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f,
	0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69,
	0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x07, 0x6f, 0x70, 0x65, 0x6e, 0x73, 0x41, 0x74,
	0x12, 0x4e, 0x0a, 0x08, 0x6d, 0x65, 0x74, 0x61, 0x64, 0x61, 0x74, 0x61, 0x18, 0x05, 0x20, 0x03,
	0x28, 0x0b, 0x32, 0x32, 0x2e, 0x6d, 0x6f, 0x6e, 0x65, 0x79, 0x67, 0x61, 0x74, 0x65, 0x2e, 0x76,
	0x31, 0x2e, 0x41, 0x70, 0x70, 0x6c, 0x79, 0x52, 0x65, 0x6d, 0x69, 0x74, 0x74, 0x61, 0x6e, 0x63,
	0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x2e, 0x4d, 0x65, 0x74, 0x61, 0x64, 0x61, 0x74,
	0x61, 0x45, 0x6e, 0x74, 0x72, 0x79, 0x52, 0x08, 0x6d, 0x65, 0x74, 0x61, 0x64, 0x61, 0x74, 0x61,
	0x1a, 0x3b, 0x0a, 0x0d, 0x4d, 0x65, 0x74, 0x61, 0x64, 0x61, 0x74, 0x61, 0x45, 0x6e, 0x74, 0x72,
	0x79, 0x12, 0x10, 0x0a, 0x03, 0x6b, 0x65, 0x79, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x03,
	0x6b, 0x65, 0x79, 0x12, 0x14, 0x0a, 0x05, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x18, 0x02, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x05, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x3a, 0x02, 0x38, 0x01, 0x22, 0x91, 0x02,
	0x0a, 0x17, 0x41, 0x70, 0x70, 0x6c, 0x79, 0x52, 0x65, 0x6d, 0x69, 0x74, 0x74, 0x61, 0x6e, 0x63,
	0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x16, 0x0a, 0x06, 0x73, 0x74, 0x61,
	0x74, 0x75, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x73, 0x74, 0x61, 0x74, 0x75,
	0x73, 0x12, 0x1f, 0x0a, 0x0b, 0x67, 0x61, 0x74, 0x65, 0x5f, 0x72, 0x65, 0x61, 0x73, 0x6f, 0x6e,
	0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0a, 0x67, 0x61, 0x74, 0x65, 0x52, 0x65, 0x61, 0x73,
	0x6f, 0x6e, 0x12, 0x26, 0x0a, 0x0f, 0x6c, 0x65, 0x64, 0x67, 0x65, 0x72, 0x5f, 0x65, 0x6e, 0x74,
	0x72, 0x79, 0x5f, 0x69, 0x64, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0d, 0x6c, 0x65, 0x64,
	0x67, 0x65, 0x72, 0x45, 0x6e, 0x74, 0x72, 0x79, 0x49, 0x64, 0x12, 0x3b, 0x0a, 0x0b, 0x72, 0x65,
	0x63, 0x6f, 0x72, 0x64, 0x65, 0x64, 0x5f, 0x61, 0x74, 0x18, 0x04, 0x20, 0x01, 0x28, 0x0b, 0x32,
	0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75,
	0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x0a, 0x72, 0x65, 0x63,
	0x6f, 0x72, 0x64, 0x65, 0x64, 0x41, 0x74, 0x12, 0x21, 0x0a, 0x0c, 0x73, 0x63, 0x68, 0x65, 0x64,
	0x75, 0x6c, 0x65, 0x64, 0x5f, 0x69, 0x64, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0b, 0x73,
	0x63, 0x68, 0x65, 0x64, 0x75, 0x6c, 0x65, 0x64, 0x49, 0x64, 0x12, 0x35, 0x0a, 0x08, 0x6f, 0x70,
	0x65, 0x6e, 0x73, 0x5f, 0x61, 0x74, 0x18, 0x06, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67,
	0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54,
	0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x07, 0x6f, 0x70, 0x65, 0x6e, 0x73, 0x41,
	0x74, 0x22, 0x57, 0x0a, 0x08, 0x42, 0x61, 0x6e, 0x6b, 0x4c, 0x69, 0x6e, 0x65, 0x12, 0x0e, 0x0a,
	0x02, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x02, 0x69, 0x64, 0x12, 0x27, 0x0a,
	0x0f, 0x61, 0x76, 0x61, 0x69, 0x6c, 0x61, 0x62, 0x6c, 0x65, 0x5f, 0x63, 0x65, 0x6e, 0x74, 0x73,
	0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0e, 0x61, 0x76, 0x61, 0x69, 0x6c, 0x61, 0x62, 0x6c,
	0x65, 0x43, 0x65, 0x6e, 0x74, 0x73, 0x12, 0x12, 0x0a, 0x04, 0x67, 0x61, 0x74, 0x65, 0x18, 0x03,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x67, 0x61, 0x74, 0x65, 0x22, 0xcb, 0x01, 0x0a, 0x0a, 0x50,
	0x6f, 0x6c, 0x69, 0x63, 0x79, 0x52, 0x75, 0x6c, 0x65, 0x12, 0x1b, 0x0a, 0x09, 0x62, 0x75, 0x63,
	0x6b, 0x65, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x62, 0x75,
	0x63, 0x6b, 0x65, 0x74, 0x49, 0x64, 0x12, 0x17, 0x0a, 0x07, 0x6d, 0x69, 0x6e, 0x5f, 0x62, 0x70,
	0x73, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x06, 0x6d, 0x69, 0x6e, 0x42, 0x70, 0x73, 0x12,
	0x17, 0x0a, 0x07, 0x6d, 0x61, 0x78, 0x5f, 0x62, 0x70, 0x73, 0x18, 0x03, 0x20, 0x01, 0x28, 0x03,
	0x52, 0x06, 0x6d, 0x61, 0x78, 0x42, 0x70, 0x73, 0x12, 0x2d, 0x0a, 0x12, 0x63, 0x6f, 0x75, 0x6e,
	0x74, 0x65, 0x72, 0x70, 0x61, 0x72, 0x74, 0x79, 0x5f, 0x61, 0x6c, 0x6c, 0x6f, 0x77, 0x18, 0x04,
	0x20, 0x03, 0x28, 0x09, 0x52, 0x11, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x70, 0x61, 0x72,
	0x74, 0x79, 0x41, 0x6c, 0x6c, 0x6f, 0x77, 0x12, 0x2b, 0x0a, 0x11, 0x63, 0x6f, 0x75, 0x6e, 0x74,
	0x65, 0x72, 0x70, 0x61, 0x72, 0x74, 0x79, 0x5f, 0x64, 0x65, 0x6e, 0x79, 0x18, 0x05, 0x20, 0x03,
	0x28, 0x09, 0x52, 0x10, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x70, 0x61, 0x72, 0x74, 0x79,
	0x44, 0x65, 0x6e, 0x79, 0x12, 0x12, 0x0a, 0x04, 0x67, 0x61, 0x74, 0x65, 0x18, 0x06, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x04, 0x67, 0x61, 0x74, 0x65, 0x22, 0xb0, 0x01, 0x0a, 0x0c, 0x41, 0x63, 0x63,
	0x6f, 0x75, 0x6e, 0x74, 0x53, 0x74, 0x61, 0x74, 0x65, 0x12, 0x1d, 0x0a, 0x0a, 0x61, 0x63, 0x63,
	0x6f, 0x75, 0x6e, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x61,
	0x63, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x49, 0x64, 0x12, 0x1b, 0x0a, 0x09, 0x62, 0x75, 0x63, 0x6b,
	0x65, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x62, 0x75, 0x63,
	0x6b, 0x65, 0x74, 0x49, 0x64, 0x12, 0x27, 0x0a, 0x0f, 0x72, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x65, 0x64, 0x5f, 0x63, 0x65, 0x6e, 0x74, 0x73, 0x18, 0x03, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0e,
	0x72, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x65, 0x64, 0x43, 0x65, 0x6e, 0x74, 0x73, 0x12, 0x27,
	0x0a, 0x0f, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72, 0x70, 0x61, 0x72, 0x74, 0x79, 0x5f, 0x69,
	0x64, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0e, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x65, 0x72,
	0x70, 0x61, 0x72, 0x74, 0x79, 0x49, 0x64, 0x12, 0x12, 0x0a, 0x04, 0x67, 0x61, 0x74, 0x65, 0x18,
	0x05, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x67, 0x61, 0x74, 0x65, 0x22, 0x71, 0x0a, 0x0a, 0x41,
	0x6c, 0x6c, 0x6f, 0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x1d, 0x0a, 0x0a, 0x61, 0x63, 0x63,
	0x6f, 0x75, 0x6e, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x61,
	0x63, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x49, 0x64, 0x12, 0x1b, 0x0a, 0x09, 0x62, 0x75, 0x63, 0x6b,
	0x65, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x62, 0x75, 0x63,
	0x6b, 0x65, 0x74, 0x49, 0x64, 0x12, 0x27, 0x0a, 0x0f, 0x61, 0x6c, 0x6c, 0x6f, 0x63, 0x61, 0x74,
	0x65, 0x64, 0x5f, 0x63, 0x65, 0x6e, 0x74, 0x73, 0x18, 0x03, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0e,
	0x61, 0x6c, 0x6c, 0x6f, 0x63, 0x61, 0x74, 0x65, 0x64, 0x43, 0x65, 0x6e, 0x74, 0x73, 0x22, 0xae,
	0x01, 0x0a, 0x18, 0x50, 0x72, 0x65, 0x76, 0x69, 0x65, 0x77, 0x41, 0x6c, 0x6c, 0x6f, 0x63, 0x61,
	0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x2a, 0x0a, 0x04, 0x6c,
	0x69, 0x6e, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x16, 0x2e, 0x6d, 0x6f, 0x6e, 0x65,
	0x79, 0x67, 0x61, 0x74, 0x65, 0x2e, 0x76, 0x31, 0x2e, 0x42, 0x61, 0x6e, 0x6b, 0x4c, 0x69, 0x6e,
	0x65, 0x52, 0x04, 0x6c, 0x69, 0x6e, 0x65, 0x12, 0x2e, 0x0a, 0x05, 0x72, 0x75, 0x6c, 0x65, 0x73,
	0x18, 0x02, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x18, 0x2e, 0x6d, 0x6f, 0x6e, 0x65, 0x79, 0x67, 0x61,
	0x74, 0x65, 0x2e, 0x76, 0x31, 0x2e, 0x50, 0x6f, 0x6c, 0x69, 0x63, 0x79, 0x52, 0x75, 0x6c, 0x65,
	0x52, 0x05, 0x72, 0x75, 0x6c, 0x65, 0x73, 0x12, 0x36, 0x0a, 0x08, 0x61, 0x63, 0x63, 0x6f, 0x75,
	0x6e, 0x74, 0x73, 0x18, 0x03, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x6d, 0x6f, 0x6e, 0x65,
	0x79, 0x67, 0x61, 0x74, 0x65, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x63, 0x63, 0x6f, 0x75, 0x6e, 0x74,
	0x53, 0x74, 0x61, 0x74, 0x65, 0x52, 0x08, 0x61, 0x63, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x73, 0x22,
	0x92, 0x01, 0x0a, 0x19, 0x50, 0x72, 0x65, 0x76, 0x69, 0x65, 0x77, 0x41, 0x6c, 0x6c, 0x6f, 0x63,
	0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x3a, 0x0a,
	0x0b, 0x61, 0x6c, 0x6c, 0x6f, 0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x18, 0x01, 0x20, 0x03,
	0x28, 0x0b, 0x32, 0x18, 0x2e, 0x6d, 0x6f, 0x6e, 0x65, 0x79, 0x67, 0x61, 0x74, 0x65, 0x2e, 0x76,
	0x31, 0x2e, 0x41, 0x6c, 0x6c, 0x6f, 0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x0b, 0x61, 0x6c,
	0x6c, 0x6f, 0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x12, 0x1f, 0x0a, 0x0b, 0x70, 0x6f, 0x6c,
	0x69, 0x63, 0x79, 0x5f, 0x68, 0x61, 0x73, 0x68, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0a,
	0x70, 0x6f, 0x6c, 0x69, 0x63, 0x79, 0x48, 0x61, 0x73, 0x68, 0x12, 0x18, 0x0a, 0x07, 0x65, 0x78,
	0x70, 0x6c, 0x61, 0x69, 0x6e, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x65, 0x78, 0x70,
	0x6c, 0x61, 0x69, 0x6e, 0x22, 0xcf, 0x01, 0x0a, 0x10, 0x43, 0x6c, 0x6f, 0x73, 0x65, 0x47, 0x61,
	0x74, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x17, 0x0a, 0x07, 0x67, 0x61, 0x74,
	0x65, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x67, 0x61, 0x74, 0x65,
	0x49, 0x64, 0x12, 0x16, 0x0a, 0x06, 0x72, 0x65, 0x61, 0x73, 0x6f, 0x6e, 0x18, 0x02, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x06, 0x72, 0x65, 0x61, 0x73, 0x6f, 0x6e, 0x12, 0x1d, 0x0a, 0x0a, 0x61, 0x63,
	0x74, 0x6f, 0x72, 0x5f, 0x72, 0x6f, 0x6c, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09,
	0x61, 0x63, 0x74, 0x6f, 0x72, 0x52, 0x6f, 0x6c, 0x65, 0x12, 0x35, 0x0a, 0x08, 0x6f, 0x70, 0x65,
	0x6e, 0x73, 0x5f, 0x61, 0x74, 0x18, 0x04, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f,
	0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69,
	0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x07, 0x6f, 0x70, 0x65, 0x6e, 0x73, 0x41, 0x74,
	0x12, 0x34, 0x0a, 0x16, 0x72, 0x65, 0x71, 0x75, 0x69, 0x72, 0x65, 0x5f, 0x61, 0x64, 0x6d, 0x69,
	0x6e, 0x5f, 0x6f, 0x76, 0x65, 0x72, 0x72, 0x69, 0x64, 0x65, 0x18, 0x05, 0x20, 0x01, 0x28, 0x08,
	0x52, 0x14, 0x72, 0x65, 0x71, 0x75, 0x69, 0x72, 0x65, 0x41, 0x64, 0x6d, 0x69, 0x6e, 0x4f, 0x76,
	0x65, 0x72, 0x72, 0x69, 0x64, 0x65, 0x22, 0x49, 0x0a, 0x0f, 0x4f, 0x70, 0x65, 0x6e, 0x47, 0x61,
	0x74, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x17, 0x0a, 0x07, 0x67, 0x61, 0x74,
	0x65, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x67, 0x61, 0x74, 0x65,
	0x49, 0x64, 0x12, 0x1d, 0x0a, 0x0a, 0x61, 0x63, 0x74, 0x6f, 0x72, 0x5f, 0x72, 0x6f, 0x6c, 0x65,
	0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x61, 0x63, 0x74, 0x6f, 0x72, 0x52, 0x6f, 0x6c,
	0x65, 0x22, 0x86, 0x01, 0x0a, 0x15, 0x53, 0x65, 0x74, 0x47, 0x61, 0x74, 0x65, 0x4f, 0x70, 0x65,
	0x6e, 0x73, 0x41, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x17, 0x0a, 0x07, 0x67,
	0x61, 0x74, 0x65, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x67, 0x61,
	0x74, 0x65, 0x49, 0x64, 0x12, 0x1d, 0x0a, 0x0a, 0x61, 0x63, 0x74, 0x6f, 0x72, 0x5f, 0x72, 0x6f,
	0x6c, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x61, 0x63, 0x74, 0x6f, 0x72, 0x52,
	0x6f, 0x6c, 0x65, 0x12, 0x35, 0x0a, 0x08, 0x6f, 0x70, 0x65, 0x6e, 0x73, 0x5f, 0x61, 0x74, 0x18,
	0x03, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70,
	0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d,
	0x70, 0x52, 0x07, 0x6f, 0x70, 0x65, 0x6e, 0x73, 0x41, 0x74, 0x22, 0x29, 0x0a, 0x0e, 0x47, 0x65,
	0x74, 0x47, 0x61, 0x74, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x17, 0x0a, 0x07,
	0x67, 0x61, 0x74, 0x65, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x67,
	0x61, 0x74, 0x65, 0x49, 0x64, 0x22, 0xd0, 0x01, 0x0a, 0x04, 0x47, 0x61, 0x74, 0x65, 0x12, 0x0e,
	0x0a, 0x02, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x02, 0x69, 0x64, 0x12, 0x16,
	0x0a, 0x06, 0x73, 0x74, 0x61, 0x74, 0x75, 0x73, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06,
	0x73, 0x74, 0x61, 0x74, 0x75, 0x73, 0x12, 0x16, 0x0a, 0x06, 0x72, 0x65, 0x61, 0x73, 0x6f, 0x6e,
	0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x72, 0x65, 0x61, 0x73, 0x6f, 0x6e, 0x12, 0x35,
	0x0a, 0x08, 0x6f, 0x70, 0x65, 0x6e, 0x73, 0x5f, 0x61, 0x74, 0x18, 0x04, 0x20, 0x01, 0x28, 0x0b,
	0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62,
	0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x07, 0x6f, 0x70,
	0x65, 0x6e, 0x73, 0x41, 0x74, 0x12, 0x16, 0x0a, 0x06, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x18,
	0x05, 0x20, 0x01, 0x28, 0x08, 0x52, 0x06, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x12, 0x39, 0x0a,
	0x0a, 0x75, 0x70, 0x64, 0x61, 0x74, 0x65, 0x64, 0x5f, 0x61, 0x74, 0x18, 0x06, 0x20, 0x01, 0x28,
	0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f,
	0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x09, 0x75,
	0x70, 0x64, 0x61, 0x74, 0x65, 0x64, 0x41, 0x74, 0x22, 0x36, 0x0a, 0x0c, 0x47, 0x61, 0x74, 0x65,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x26, 0x0a, 0x04, 0x67, 0x61, 0x74, 0x65,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x12, 0x2e, 0x6d, 0x6f, 0x6e, 0x65, 0x79, 0x67, 0x61,
	0x74, 0x65, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x61, 0x74, 0x65, 0x52, 0x04, 0x67, 0x61, 0x74, 0x65,
	0x22, 0x12, 0x0a, 0x10, 0x4c, 0x69, 0x73, 0x74, 0x47, 0x61, 0x74, 0x65, 0x73, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x22, 0x3d, 0x0a, 0x11, 0x4c, 0x69, 0x73, 0x74, 0x47, 0x61, 0x74, 0x65,
	0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x28, 0x0a, 0x05, 0x67, 0x61, 0x74,
	0x65, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x12, 0x2e, 0x6d, 0x6f, 0x6e, 0x65, 0x79,
	0x67, 0x61, 0x74, 0x65, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x61, 0x74, 0x65, 0x52, 0x05, 0x67, 0x61,
	0x74, 0x65, 0x73, 0x32, 0xce, 0x04, 0x0a, 0x10, 0x4d, 0x6f, 0x6e, 0x65, 0x79, 0x47, 0x61, 0x74,
	0x65, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x5e, 0x0a, 0x0f, 0x41, 0x70, 0x70, 0x6c,
	0x79, 0x52, 0x65, 0x6d, 0x69, 0x74, 0x74, 0x61, 0x6e, 0x63, 0x65, 0x12, 0x24, 0x2e, 0x6d, 0x6f,
	0x6e, 0x65, 0x79, 0x67, 0x61, 0x74, 0x65, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x70, 0x70, 0x6c, 0x79,
	0x52, 0x65, 0x6d, 0x69, 0x74, 0x74, 0x61, 0x6e, 0x63, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x1a, 0x25, 0x2e, 0x6d, 0x6f, 0x6e, 0x65, 0x79, 0x67, 0x61, 0x74, 0x65, 0x2e, 0x76, 0x31,
	0x2e, 0x41, 0x70, 0x70, 0x6c, 0x79, 0x52, 0x65, 0x6d, 0x69, 0x74, 0x74, 0x61, 0x6e, 0x63, 0x65,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x64, 0x0a, 0x11, 0x50, 0x72, 0x65, 0x76,
	0x69, 0x65, 0x77, 0x41, 0x6c, 0x6c, 0x6f, 0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x26, 0x2e,
	0x6d, 0x6f, 0x6e, 0x65, 0x79, 0x67, 0x61, 0x74, 0x65, 0x2e, 0x76, 0x31, 0x2e, 0x50, 0x72, 0x65,
	0x76, 0x69, 0x65, 0x77, 0x41, 0x6c, 0x6c, 0x6f, 0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x27, 0x2e, 0x6d, 0x6f, 0x6e, 0x65, 0x79, 0x67, 0x61, 0x74,
	0x65, 0x2e, 0x76, 0x31, 0x2e, 0x50, 0x72, 0x65, 0x76, 0x69, 0x65, 0x77, 0x41, 0x6c, 0x6c, 0x6f,
	0x63, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x47,
	0x0a, 0x09, 0x43, 0x6c, 0x6f, 0x73, 0x65, 0x47, 0x61, 0x74, 0x65, 0x12, 0x1e, 0x2e, 0x6d, 0x6f,
	0x6e, 0x65, 0x79, 0x67, 0x61, 0x74, 0x65, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x6c, 0x6f, 0x73, 0x65,
	0x47, 0x61, 0x74, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1a, 0x2e, 0x6d, 0x6f,
	0x6e, 0x65, 0x79, 0x67, 0x61, 0x74, 0x65, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x61, 0x74, 0x65, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x45, 0x0a, 0x08, 0x4f, 0x70, 0x65, 0x6e, 0x47,
	0x61, 0x74, 0x65, 0x12, 0x1d, 0x2e, 0x6d, 0x6f, 0x6e, 0x65, 0x79, 0x67, 0x61, 0x74, 0x65, 0x2e,
	0x76, 0x31, 0x2e, 0x4f, 0x70, 0x65, 0x6e, 0x47, 0x61, 0x74, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x1a, 0x1a, 0x2e, 0x6d, 0x6f, 0x6e, 0x65, 0x79, 0x67, 0x61, 0x74, 0x65, 0x2e, 0x76,
	0x31, 0x2e, 0x47, 0x61, 0x74, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x51,
	0x0a, 0x0e, 0x53, 0x65, 0x74, 0x47, 0x61, 0x74, 0x65, 0x4f, 0x70, 0x65, 0x6e, 0x73, 0x41, 0x74,
	0x12, 0x23, 0x2e, 0x6d, 0x6f, 0x6e, 0x65, 0x79, 0x67, 0x61, 0x74, 0x65, 0x2e, 0x76, 0x31, 0x2e,
	0x53, 0x65, 0x74, 0x47, 0x61, 0x74, 0x65, 0x4f, 0x70, 0x65, 0x6e, 0x73, 0x41, 0x74, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1a, 0x2e, 0x6d, 0x6f, 0x6e, 0x65, 0x79, 0x67, 0x61, 0x74,
	0x65, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x61, 0x74, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x43, 0x0a, 0x07, 0x47, 0x65, 0x74, 0x47, 0x61, 0x74, 0x65, 0x12, 0x1c, 0x2e, 0x6d,
	0x6f, 0x6e, 0x65, 0x79, 0x67, 0x61, 0x74, 0x65, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x47,
	0x61, 0x74, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1a, 0x2e, 0x6d, 0x6f, 0x6e,
	0x65, 0x79, 0x67, 0x61, 0x74, 0x65, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x61, 0x74, 0x65, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x4c, 0x0a, 0x09, 0x4c, 0x69, 0x73, 0x74, 0x47, 0x61,
	0x74, 0x65, 0x73, 0x12, 0x1e, 0x2e, 0x6d, 0x6f, 0x6e, 0x65, 0x79, 0x67, 0x61, 0x74, 0x65, 0x2e,
	0x76, 0x31, 0x2e, 0x4c, 0x69, 0x73, 0x74, 0x47, 0x61, 0x74, 0x65, 0x73, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x1a, 0x1f, 0x2e, 0x6d, 0x6f, 0x6e, 0x65, 0x79, 0x67, 0x61, 0x74, 0x65, 0x2e,
	0x76, 0x31, 0x2e, 0x4c, 0x69, 0x73, 0x74, 0x47, 0x61, 0x74, 0x65, 0x73, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x42, 0x59, 0x5a, 0x57, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62, 0x2e, 0x63,
	0x6f, 0x6d, 0x2f, 0x68, 0x61, 0x72, 0x62, 0x6f, 0x72, 0x70, 0x6f, 0x69, 0x6e, 0x74, 0x2f, 0x6d,
	0x6f, 0x6e, 0x65, 0x79, 0x67, 0x61, 0x74, 0x65, 0x2d, 0x62, 0x61, 0x63, 0x6b, 0x65, 0x6e, 0x64,
	0x2f, 0x69, 0x6e, 0x74, 0x65, 0x72, 0x6e, 0x61, 0x6c, 0x2f, 0x61, 0x64, 0x61, 0x70, 0x74, 0x65,
	0x72, 0x2f, 0x67, 0x72, 0x70, 0x63, 0x2f, 0x6d, 0x6f, 0x6e, 0x65, 0x79, 0x67, 0x61, 0x74, 0x65,
	0x2f, 0x76, 0x31, 0x3b, 0x6d, 0x6f, 0x6e, 0x65, 0x79, 0x67, 0x61, 0x74, 0x65, 0x76, 0x31, 0x62,
	0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_moneygate_v1_moneygate_proto_rawDescOnce sync.Once
	file_moneygate_v1_moneygate_proto_rawDescData = file_moneygate_v1_moneygate_proto_rawDesc
)

func file_moneygate_v1_moneygate_proto_rawDescGZIP() []byte {
	file_moneygate_v1_moneygate_proto_rawDescOnce.Do(func() {
		file_moneygate_v1_moneygate_proto_rawDescData = protoimpl.X.CompressGZIP(file_moneygate_v1_moneygate_proto_rawDescData)
	})
	return file_moneygate_v1_moneygate_proto_rawDescData
}

var file_moneygate_v1_moneygate_proto_msgTypes = make([]protoimpl.MessageInfo, 17)
var file_moneygate_v1_moneygate_proto_goTypes = []any{
	(*ApplyRemittanceRequest)(nil),    // 0: moneygate.v1.ApplyRemittanceRequest
	(*ApplyRemittanceResponse)(nil),   // 1: moneygate.v1.ApplyRemittanceResponse
	(*BankLine)(nil),                  // 2: moneygate.v1.BankLine
	(*PolicyRule)(nil),                // 3: moneygate.v1.PolicyRule
	(*AccountState)(nil),              // 4: moneygate.v1.AccountState
	(*Allocation)(nil),                // 5: moneygate.v1.Allocation
	(*PreviewAllocationRequest)(nil),  // 6: moneygate.v1.PreviewAllocationRequest
	(*PreviewAllocationResponse)(nil), // 7: moneygate.v1.PreviewAllocationResponse
	(*CloseGateRequest)(nil),          // 8: moneygate.v1.CloseGateRequest
	(*OpenGateRequest)(nil),           // 9: moneygate.v1.OpenGateRequest
	(*SetGateOpensAtRequest)(nil),     // 10: moneygate.v1.SetGateOpensAtRequest
	(*GetGateRequest)(nil),            // 11: moneygate.v1.GetGateRequest
	(*Gate)(nil),                      // 12: moneygate.v1.Gate
	(*GateResponse)(nil),              // 13: moneygate.v1.GateResponse
	(*ListGatesRequest)(nil),          // 14: moneygate.v1.ListGatesRequest
	(*ListGatesResponse)(nil),         // 15: moneygate.v1.ListGatesResponse
	nil,                               // 16: moneygate.v1.ApplyRemittanceRequest.MetadataEntry
	(*timestamppb.Timestamp)(nil),     // 17: google.protobuf.Timestamp
}
var file_moneygate_v1_moneygate_proto_depIdxs = []int32{
	17, // 0: moneygate.v1.ApplyRemittanceRequest.opens_at:type_name -> google.protobuf.Timestamp
	16, // 1: moneygate.v1.ApplyRemittanceRequest.metadata:type_name -> moneygate.v1.ApplyRemittanceRequest.MetadataEntry
	17, // 2: moneygate.v1.ApplyRemittanceResponse.recorded_at:type_name -> google.protobuf.Timestamp
	17, // 3: moneygate.v1.ApplyRemittanceResponse.opens_at:type_name -> google.protobuf.Timestamp
	2,  // 4: moneygate.v1.PreviewAllocationRequest.line:type_name -> moneygate.v1.BankLine
	3,  // 5: moneygate.v1.PreviewAllocationRequest.rules:type_name -> moneygate.v1.PolicyRule
	4,  // 6: moneygate.v1.PreviewAllocationRequest.accounts:type_name -> moneygate.v1.AccountState
	5,  // 7: moneygate.v1.PreviewAllocationResponse.allocations:type_name -> moneygate.v1.Allocation
	17, // 8: moneygate.v1.CloseGateRequest.opens_at:type_name -> google.protobuf.Timestamp
	17, // 9: moneygate.v1.SetGateOpensAtRequest.opens_at:type_name -> google.protobuf.Timestamp
	17, // 10: moneygate.v1.Gate.opens_at:type_name -> google.protobuf.Timestamp
	17, // 11: moneygate.v1.Gate.updated_at:type_name -> google.protobuf.Timestamp
	12, // 12: moneygate.v1.GateResponse.gate:type_name -> moneygate.v1.Gate
	12, // 13: moneygate.v1.ListGatesResponse.gates:type_name -> moneygate.v1.Gate
	0,  // 14: moneygate.v1.MoneyGateService.ApplyRemittance:input_type -> moneygate.v1.ApplyRemittanceRequest
	6,  // 15: moneygate.v1.MoneyGateService.PreviewAllocation:input_type -> moneygate.v1.PreviewAllocationRequest
	8,  // 16: moneygate.v1.MoneyGateService.CloseGate:input_type -> moneygate.v1.CloseGateRequest
	9,  // 17: moneygate.v1.MoneyGateService.OpenGate:input_type -> moneygate.v1.OpenGateRequest
	10, // 18: moneygate.v1.MoneyGateService.SetGateOpensAt:input_type -> moneygate.v1.SetGateOpensAtRequest
	11, // 19: moneygate.v1.MoneyGateService.GetGate:input_type -> moneygate.v1.GetGateRequest
	14, // 20: moneygate.v1.MoneyGateService.ListGates:input_type -> moneygate.v1.ListGatesRequest
	1,  // 21: moneygate.v1.MoneyGateService.ApplyRemittance:output_type -> moneygate.v1.ApplyRemittanceResponse
	7,  // 22: moneygate.v1.MoneyGateService.PreviewAllocation:output_type -> moneygate.v1.PreviewAllocationResponse
	13, // 23: moneygate.v1.MoneyGateService.CloseGate:output_type -> moneygate.v1.GateResponse
	13, // 24: moneygate.v1.MoneyGateService.OpenGate:output_type -> moneygate.v1.GateResponse
	13, // 25: moneygate.v1.MoneyGateService.SetGateOpensAt:output_type -> moneygate.v1.GateResponse
	13, // 26: moneygate.v1.MoneyGateService.GetGate:output_type -> moneygate.v1.GateResponse
	15, // 27: moneygate.v1.MoneyGateService.ListGates:output_type -> moneygate.v1.ListGatesResponse
	21, // [21:28] is the sub-list for method output_type
	14, // [14:21] is the sub-list for method input_type
	14, // [14:14] is the sub-list for extension type_name
	14, // [14:14] is the sub-list for extension extendee
	0,  // [0:14] is the sub-list for field type_name
}

func init() { file_moneygate_v1_moneygate_proto_init() }
func file_moneygate_v1_moneygate_proto_init() {
	if File_moneygate_v1_moneygate_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_moneygate_v1_moneygate_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   17,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_moneygate_v1_moneygate_proto_goTypes,
		DependencyIndexes: file_moneygate_v1_moneygate_proto_depIdxs,
		MessageInfos:      file_moneygate_v1_moneygate_proto_msgTypes,
	}.Build()
	File_moneygate_v1_moneygate_proto = out.File
	file_moneygate_v1_moneygate_proto_rawDesc = nil
	file_moneygate_v1_moneygate_proto_goTypes = nil
	file_moneygate_v1_moneygate_proto_depIdxs = nil
}
