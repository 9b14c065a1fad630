// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: sync/v1/sync.proto

package syncv1

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

type Job struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerId        string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	StoreId        string                 `protobuf:"bytes,3,opt,name=store_id,json=storeId,proto3" json:"store_id,omitempty"`
	Name           string                 `protobuf:"bytes,4,opt,name=name,proto3" json:"name,omitempty"`
	StoreDomain    string                 `protobuf:"bytes,5,opt,name=store_domain,json=storeDomain,proto3" json:"store_domain,omitempty"`
	Folder         string                 `protobuf:"bytes,6,opt,name=folder,proto3" json:"folder,omitempty"`
	TriggerType    string                 `protobuf:"bytes,7,opt,name=trigger_type,json=triggerType,proto3" json:"trigger_type,omitempty"`
	PresetType     string                 `protobuf:"bytes,8,opt,name=preset_type,json=presetType,proto3" json:"preset_type,omitempty"`
	PresetId       string                 `protobuf:"bytes,9,opt,name=preset_id,json=presetId,proto3" json:"preset_id,omitempty"`
	CustomPrompt   string                 `protobuf:"bytes,10,opt,name=custom_prompt,json=customPrompt,proto3" json:"custom_prompt,omitempty"`
	ProductCount   int32                  `protobuf:"varint,11,opt,name=product_count,json=productCount,proto3" json:"product_count,omitempty"`
	ImageCount     int32                  `protobuf:"varint,12,opt,name=image_count,json=imageCount,proto3" json:"image_count,omitempty"`
	ProcessedCount int32                  `protobuf:"varint,13,opt,name=processed_count,json=processedCount,proto3" json:"processed_count,omitempty"`
	PushedCount    int32                  `protobuf:"varint,14,opt,name=pushed_count,json=pushedCount,proto3" json:"pushed_count,omitempty"`
	FailedCount    int32                  `protobuf:"varint,15,opt,name=failed_count,json=failedCount,proto3" json:"failed_count,omitempty"`
	Status         string                 `protobuf:"bytes,16,opt,name=status,proto3" json:"status,omitempty"`
	RetryCount     int32                  `protobuf:"varint,17,opt,name=retry_count,json=retryCount,proto3" json:"retry_count,omitempty"`
	MaxRetries     int32                  `protobuf:"varint,18,opt,name=max_retries,json=maxRetries,proto3" json:"max_retries,omitempty"`
	LastError      string                 `protobuf:"bytes,19,opt,name=last_error,json=lastError,proto3" json:"last_error,omitempty"`
	TokensUsed     int64                  `protobuf:"varint,20,opt,name=tokens_used,json=tokensUsed,proto3" json:"tokens_used,omitempty"`
	NextRetryAt    string                 `protobuf:"bytes,21,opt,name=next_retry_at,json=nextRetryAt,proto3" json:"next_retry_at,omitempty"`
	ApprovedAt     string                 `protobuf:"bytes,22,opt,name=approved_at,json=approvedAt,proto3" json:"approved_at,omitempty"`
	CompletedAt    string                 `protobuf:"bytes,23,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	ExpiresAt      string                 `protobuf:"bytes,24,opt,name=expires_at,json=expiresAt,proto3" json:"expires_at,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,25,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt      string                 `protobuf:"bytes,26,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Job) Reset() {
	*x = Job{}
	mi := &file_sync_v1_sync_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Job) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Job) ProtoMessage() {}

func (x *Job) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Job.ProtoReflect.Descriptor instead.
func (*Job) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{0}
}

func (x *Job) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Job) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *Job) GetStoreId() string {
	if x != nil {
		return x.StoreId
	}
	return ""
}

func (x *Job) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Job) GetStoreDomain() string {
	if x != nil {
		return x.StoreDomain
	}
	return ""
}

func (x *Job) GetFolder() string {
	if x != nil {
		return x.Folder
	}
	return ""
}

func (x *Job) GetTriggerType() string {
	if x != nil {
		return x.TriggerType
	}
	return ""
}

func (x *Job) GetPresetType() string {
	if x != nil {
		return x.PresetType
	}
	return ""
}

func (x *Job) GetPresetId() string {
	if x != nil {
		return x.PresetId
	}
	return ""
}

func (x *Job) GetCustomPrompt() string {
	if x != nil {
		return x.CustomPrompt
	}
	return ""
}

func (x *Job) GetProductCount() int32 {
	if x != nil {
		return x.ProductCount
	}
	return 0
}

func (x *Job) GetImageCount() int32 {
	if x != nil {
		return x.ImageCount
	}
	return 0
}

func (x *Job) GetProcessedCount() int32 {
	if x != nil {
		return x.ProcessedCount
	}
	return 0
}

func (x *Job) GetPushedCount() int32 {
	if x != nil {
		return x.PushedCount
	}
	return 0
}

func (x *Job) GetFailedCount() int32 {
	if x != nil {
		return x.FailedCount
	}
	return 0
}

func (x *Job) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Job) GetRetryCount() int32 {
	if x != nil {
		return x.RetryCount
	}
	return 0
}

func (x *Job) GetMaxRetries() int32 {
	if x != nil {
		return x.MaxRetries
	}
	return 0
}

func (x *Job) GetLastError() string {
	if x != nil {
		return x.LastError
	}
	return ""
}

func (x *Job) GetTokensUsed() int64 {
	if x != nil {
		return x.TokensUsed
	}
	return 0
}

func (x *Job) GetNextRetryAt() string {
	if x != nil {
		return x.NextRetryAt
	}
	return ""
}

func (x *Job) GetApprovedAt() string {
	if x != nil {
		return x.ApprovedAt
	}
	return ""
}

func (x *Job) GetCompletedAt() string {
	if x != nil {
		return x.CompletedAt
	}
	return ""
}

func (x *Job) GetExpiresAt() string {
	if x != nil {
		return x.ExpiresAt
	}
	return ""
}

func (x *Job) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Job) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type JobItem struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Id                string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	JobId             string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	ExternalProductId string                 `protobuf:"bytes,3,opt,name=external_product_id,json=externalProductId,proto3" json:"external_product_id,omitempty"`
	ExternalImageId   string                 `protobuf:"bytes,4,opt,name=external_image_id,json=externalImageId,proto3" json:"external_image_id,omitempty"`
	OriginalUrl       string                 `protobuf:"bytes,5,opt,name=original_url,json=originalUrl,proto3" json:"original_url,omitempty"`
	OptimizedUrl      string                 `protobuf:"bytes,6,opt,name=optimized_url,json=optimizedUrl,proto3" json:"optimized_url,omitempty"`
	Status            string                 `protobuf:"bytes,7,opt,name=status,proto3" json:"status,omitempty"`
	PushAttempts      int32                  `protobuf:"varint,8,opt,name=push_attempts,json=pushAttempts,proto3" json:"push_attempts,omitempty"`
	LastPushError     string                 `protobuf:"bytes,9,opt,name=last_push_error,json=lastPushError,proto3" json:"last_push_error,omitempty"`
	PushRetryable     bool                   `protobuf:"varint,10,opt,name=push_retryable,json=pushRetryable,proto3" json:"push_retryable,omitempty"`
	PushedAt          string                 `protobuf:"bytes,11,opt,name=pushed_at,json=pushedAt,proto3" json:"pushed_at,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *JobItem) Reset() {
	*x = JobItem{}
	mi := &file_sync_v1_sync_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JobItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JobItem) ProtoMessage() {}

func (x *JobItem) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JobItem.ProtoReflect.Descriptor instead.
func (*JobItem) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{1}
}

func (x *JobItem) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *JobItem) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *JobItem) GetExternalProductId() string {
	if x != nil {
		return x.ExternalProductId
	}
	return ""
}

func (x *JobItem) GetExternalImageId() string {
	if x != nil {
		return x.ExternalImageId
	}
	return ""
}

func (x *JobItem) GetOriginalUrl() string {
	if x != nil {
		return x.OriginalUrl
	}
	return ""
}

func (x *JobItem) GetOptimizedUrl() string {
	if x != nil {
		return x.OptimizedUrl
	}
	return ""
}

func (x *JobItem) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *JobItem) GetPushAttempts() int32 {
	if x != nil {
		return x.PushAttempts
	}
	return 0
}

func (x *JobItem) GetLastPushError() string {
	if x != nil {
		return x.LastPushError
	}
	return ""
}

func (x *JobItem) GetPushRetryable() bool {
	if x != nil {
		return x.PushRetryable
	}
	return false
}

func (x *JobItem) GetPushedAt() string {
	if x != nil {
		return x.PushedAt
	}
	return ""
}

type NewJobItem struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	ExternalProductId string                 `protobuf:"bytes,1,opt,name=external_product_id,json=externalProductId,proto3" json:"external_product_id,omitempty"`
	ExternalImageId   string                 `protobuf:"bytes,2,opt,name=external_image_id,json=externalImageId,proto3" json:"external_image_id,omitempty"`
	OriginalUrl       string                 `protobuf:"bytes,3,opt,name=original_url,json=originalUrl,proto3" json:"original_url,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *NewJobItem) Reset() {
	*x = NewJobItem{}
	mi := &file_sync_v1_sync_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NewJobItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NewJobItem) ProtoMessage() {}

func (x *NewJobItem) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NewJobItem.ProtoReflect.Descriptor instead.
func (*NewJobItem) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{2}
}

func (x *NewJobItem) GetExternalProductId() string {
	if x != nil {
		return x.ExternalProductId
	}
	return ""
}

func (x *NewJobItem) GetExternalImageId() string {
	if x != nil {
		return x.ExternalImageId
	}
	return ""
}

func (x *NewJobItem) GetOriginalUrl() string {
	if x != nil {
		return x.OriginalUrl
	}
	return ""
}

type CreateJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	StoreId       string                 `protobuf:"bytes,2,opt,name=store_id,json=storeId,proto3" json:"store_id,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	StoreDomain   string                 `protobuf:"bytes,4,opt,name=store_domain,json=storeDomain,proto3" json:"store_domain,omitempty"`
	Folder        string                 `protobuf:"bytes,5,opt,name=folder,proto3" json:"folder,omitempty"`
	TriggerType   string                 `protobuf:"bytes,6,opt,name=trigger_type,json=triggerType,proto3" json:"trigger_type,omitempty"`
	PresetType    string                 `protobuf:"bytes,7,opt,name=preset_type,json=presetType,proto3" json:"preset_type,omitempty"`
	PresetId      string                 `protobuf:"bytes,8,opt,name=preset_id,json=presetId,proto3" json:"preset_id,omitempty"`
	CustomPrompt  string                 `protobuf:"bytes,9,opt,name=custom_prompt,json=customPrompt,proto3" json:"custom_prompt,omitempty"`
	ProductCount  int32                  `protobuf:"varint,10,opt,name=product_count,json=productCount,proto3" json:"product_count,omitempty"`
	Items         []*NewJobItem          `protobuf:"bytes,11,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateJobRequest) Reset() {
	*x = CreateJobRequest{}
	mi := &file_sync_v1_sync_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateJobRequest) ProtoMessage() {}

func (x *CreateJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateJobRequest.ProtoReflect.Descriptor instead.
func (*CreateJobRequest) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{3}
}

func (x *CreateJobRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *CreateJobRequest) GetStoreId() string {
	if x != nil {
		return x.StoreId
	}
	return ""
}

func (x *CreateJobRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateJobRequest) GetStoreDomain() string {
	if x != nil {
		return x.StoreDomain
	}
	return ""
}

func (x *CreateJobRequest) GetFolder() string {
	if x != nil {
		return x.Folder
	}
	return ""
}

func (x *CreateJobRequest) GetTriggerType() string {
	if x != nil {
		return x.TriggerType
	}
	return ""
}

func (x *CreateJobRequest) GetPresetType() string {
	if x != nil {
		return x.PresetType
	}
	return ""
}

func (x *CreateJobRequest) GetPresetId() string {
	if x != nil {
		return x.PresetId
	}
	return ""
}

func (x *CreateJobRequest) GetCustomPrompt() string {
	if x != nil {
		return x.CustomPrompt
	}
	return ""
}

func (x *CreateJobRequest) GetProductCount() int32 {
	if x != nil {
		return x.ProductCount
	}
	return 0
}

func (x *CreateJobRequest) GetItems() []*NewJobItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type CreateJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateJobResponse) Reset() {
	*x = CreateJobResponse{}
	mi := &file_sync_v1_sync_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateJobResponse) ProtoMessage() {}

func (x *CreateJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateJobResponse.ProtoReflect.Descriptor instead.
func (*CreateJobResponse) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{4}
}

func (x *CreateJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type GetJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobRequest) Reset() {
	*x = GetJobRequest{}
	mi := &file_sync_v1_sync_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobRequest) ProtoMessage() {}

func (x *GetJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobRequest.ProtoReflect.Descriptor instead.
func (*GetJobRequest) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{5}
}

func (x *GetJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResponse) Reset() {
	*x = GetJobResponse{}
	mi := &file_sync_v1_sync_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResponse) ProtoMessage() {}

func (x *GetJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobResponse.ProtoReflect.Descriptor instead.
func (*GetJobResponse) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{6}
}

func (x *GetJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type ListJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StoreId       string                 `protobuf:"bytes,1,opt,name=store_id,json=storeId,proto3" json:"store_id,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsRequest) Reset() {
	*x = ListJobsRequest{}
	mi := &file_sync_v1_sync_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsRequest) ProtoMessage() {}

func (x *ListJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsRequest.ProtoReflect.Descriptor instead.
func (*ListJobsRequest) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{7}
}

func (x *ListJobsRequest) GetStoreId() string {
	if x != nil {
		return x.StoreId
	}
	return ""
}

func (x *ListJobsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*Job                 `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsResponse) Reset() {
	*x = ListJobsResponse{}
	mi := &file_sync_v1_sync_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsResponse) ProtoMessage() {}

func (x *ListJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsResponse.ProtoReflect.Descriptor instead.
func (*ListJobsResponse) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{8}
}

func (x *ListJobsResponse) GetJobs() []*Job {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type ListJobItemsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobItemsRequest) Reset() {
	*x = ListJobItemsRequest{}
	mi := &file_sync_v1_sync_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobItemsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobItemsRequest) ProtoMessage() {}

func (x *ListJobItemsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobItemsRequest.ProtoReflect.Descriptor instead.
func (*ListJobItemsRequest) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{9}
}

func (x *ListJobItemsRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type ListJobItemsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*JobItem             `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobItemsResponse) Reset() {
	*x = ListJobItemsResponse{}
	mi := &file_sync_v1_sync_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobItemsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobItemsResponse) ProtoMessage() {}

func (x *ListJobItemsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobItemsResponse.ProtoReflect.Descriptor instead.
func (*ListJobItemsResponse) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{10}
}

func (x *ListJobItemsResponse) GetItems() []*JobItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type ApproveJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApproveJobRequest) Reset() {
	*x = ApproveJobRequest{}
	mi := &file_sync_v1_sync_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveJobRequest) ProtoMessage() {}

func (x *ApproveJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveJobRequest.ProtoReflect.Descriptor instead.
func (*ApproveJobRequest) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{11}
}

func (x *ApproveJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type ApproveJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApproveJobResponse) Reset() {
	*x = ApproveJobResponse{}
	mi := &file_sync_v1_sync_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveJobResponse) ProtoMessage() {}

func (x *ApproveJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveJobResponse.ProtoReflect.Descriptor instead.
func (*ApproveJobResponse) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{12}
}

func (x *ApproveJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type CancelJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Reason        string                 `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobRequest) Reset() {
	*x = CancelJobRequest{}
	mi := &file_sync_v1_sync_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobRequest) ProtoMessage() {}

func (x *CancelJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelJobRequest.ProtoReflect.Descriptor instead.
func (*CancelJobRequest) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{13}
}

func (x *CancelJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *CancelJobRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type CancelJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobResponse) Reset() {
	*x = CancelJobResponse{}
	mi := &file_sync_v1_sync_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobResponse) ProtoMessage() {}

func (x *CancelJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelJobResponse.ProtoReflect.Descriptor instead.
func (*CancelJobResponse) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{14}
}

func (x *CancelJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type RetryJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetryJobRequest) Reset() {
	*x = RetryJobRequest{}
	mi := &file_sync_v1_sync_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetryJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetryJobRequest) ProtoMessage() {}

func (x *RetryJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetryJobRequest.ProtoReflect.Descriptor instead.
func (*RetryJobRequest) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{15}
}

func (x *RetryJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type RetryJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetryJobResponse) Reset() {
	*x = RetryJobResponse{}
	mi := &file_sync_v1_sync_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetryJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetryJobResponse) ProtoMessage() {}

func (x *RetryJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetryJobResponse.ProtoReflect.Descriptor instead.
func (*RetryJobResponse) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{16}
}

func (x *RetryJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type ApplyBulkRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// One of: approve, cancel, retry.
	Action        string   `protobuf:"bytes,1,opt,name=action,proto3" json:"action,omitempty"`
	JobIds        []string `protobuf:"bytes,2,rep,name=job_ids,json=jobIds,proto3" json:"job_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApplyBulkRequest) Reset() {
	*x = ApplyBulkRequest{}
	mi := &file_sync_v1_sync_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplyBulkRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplyBulkRequest) ProtoMessage() {}

func (x *ApplyBulkRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplyBulkRequest.ProtoReflect.Descriptor instead.
func (*ApplyBulkRequest) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{17}
}

func (x *ApplyBulkRequest) GetAction() string {
	if x != nil {
		return x.Action
	}
	return ""
}

func (x *ApplyBulkRequest) GetJobIds() []string {
	if x != nil {
		return x.JobIds
	}
	return nil
}

type BulkOutcome struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Ok            bool                   `protobuf:"varint,2,opt,name=ok,proto3" json:"ok,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	Error         string                 `protobuf:"bytes,4,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BulkOutcome) Reset() {
	*x = BulkOutcome{}
	mi := &file_sync_v1_sync_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BulkOutcome) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BulkOutcome) ProtoMessage() {}

func (x *BulkOutcome) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BulkOutcome.ProtoReflect.Descriptor instead.
func (*BulkOutcome) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{18}
}

func (x *BulkOutcome) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *BulkOutcome) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

func (x *BulkOutcome) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *BulkOutcome) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type ApplyBulkResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Outcomes      []*BulkOutcome         `protobuf:"bytes,1,rep,name=outcomes,proto3" json:"outcomes,omitempty"`
	Succeeded     int32                  `protobuf:"varint,2,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Failed        int32                  `protobuf:"varint,3,opt,name=failed,proto3" json:"failed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApplyBulkResponse) Reset() {
	*x = ApplyBulkResponse{}
	mi := &file_sync_v1_sync_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplyBulkResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplyBulkResponse) ProtoMessage() {}

func (x *ApplyBulkResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplyBulkResponse.ProtoReflect.Descriptor instead.
func (*ApplyBulkResponse) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{19}
}

func (x *ApplyBulkResponse) GetOutcomes() []*BulkOutcome {
	if x != nil {
		return x.Outcomes
	}
	return nil
}

func (x *ApplyBulkResponse) GetSucceeded() int32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *ApplyBulkResponse) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

type ExportJobReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportJobReportRequest) Reset() {
	*x = ExportJobReportRequest{}
	mi := &file_sync_v1_sync_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportJobReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportJobReportRequest) ProtoMessage() {}

func (x *ExportJobReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportJobReportRequest.ProtoReflect.Descriptor instead.
func (*ExportJobReportRequest) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{20}
}

func (x *ExportJobReportRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type ExportJobReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportJobReportResponse) Reset() {
	*x = ExportJobReportResponse{}
	mi := &file_sync_v1_sync_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportJobReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportJobReportResponse) ProtoMessage() {}

func (x *ExportJobReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportJobReportResponse.ProtoReflect.Descriptor instead.
func (*ExportJobReportResponse) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{21}
}

func (x *ExportJobReportResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ExportJobReportResponse) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type QueueRow struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	JobId          string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	StoreId        string                 `protobuf:"bytes,2,opt,name=store_id,json=storeId,proto3" json:"store_id,omitempty"`
	Name           string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	StoreDomain    string                 `protobuf:"bytes,4,opt,name=store_domain,json=storeDomain,proto3" json:"store_domain,omitempty"`
	Folder         string                 `protobuf:"bytes,5,opt,name=folder,proto3" json:"folder,omitempty"`
	Status         string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	ImageCount     int32                  `protobuf:"varint,7,opt,name=image_count,json=imageCount,proto3" json:"image_count,omitempty"`
	ProcessedCount int32                  `protobuf:"varint,8,opt,name=processed_count,json=processedCount,proto3" json:"processed_count,omitempty"`
	PushedCount    int32                  `protobuf:"varint,9,opt,name=pushed_count,json=pushedCount,proto3" json:"pushed_count,omitempty"`
	FailedCount    int32                  `protobuf:"varint,10,opt,name=failed_count,json=failedCount,proto3" json:"failed_count,omitempty"`
	TokensUsed     int64                  `protobuf:"varint,11,opt,name=tokens_used,json=tokensUsed,proto3" json:"tokens_used,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,12,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *QueueRow) Reset() {
	*x = QueueRow{}
	mi := &file_sync_v1_sync_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QueueRow) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QueueRow) ProtoMessage() {}

func (x *QueueRow) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QueueRow.ProtoReflect.Descriptor instead.
func (*QueueRow) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{22}
}

func (x *QueueRow) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *QueueRow) GetStoreId() string {
	if x != nil {
		return x.StoreId
	}
	return ""
}

func (x *QueueRow) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *QueueRow) GetStoreDomain() string {
	if x != nil {
		return x.StoreDomain
	}
	return ""
}

func (x *QueueRow) GetFolder() string {
	if x != nil {
		return x.Folder
	}
	return ""
}

func (x *QueueRow) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *QueueRow) GetImageCount() int32 {
	if x != nil {
		return x.ImageCount
	}
	return 0
}

func (x *QueueRow) GetProcessedCount() int32 {
	if x != nil {
		return x.ProcessedCount
	}
	return 0
}

func (x *QueueRow) GetPushedCount() int32 {
	if x != nil {
		return x.PushedCount
	}
	return 0
}

func (x *QueueRow) GetFailedCount() int32 {
	if x != nil {
		return x.FailedCount
	}
	return 0
}

func (x *QueueRow) GetTokensUsed() int64 {
	if x != nil {
		return x.TokensUsed
	}
	return 0
}

func (x *QueueRow) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type GetQueuePageRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	OwnerId  string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Page     int32                  `protobuf:"varint,2,opt,name=page,proto3" json:"page,omitempty"`
	PageSize int32                  `protobuf:"varint,3,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	// One of: all, active, completed, failed. Empty means all.
	Group         string `protobuf:"bytes,4,opt,name=group,proto3" json:"group,omitempty"`
	StoreId       string `protobuf:"bytes,5,opt,name=store_id,json=storeId,proto3" json:"store_id,omitempty"`
	Folder        string `protobuf:"bytes,6,opt,name=folder,proto3" json:"folder,omitempty"`
	Search        string `protobuf:"bytes,7,opt,name=search,proto3" json:"search,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetQueuePageRequest) Reset() {
	*x = GetQueuePageRequest{}
	mi := &file_sync_v1_sync_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetQueuePageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetQueuePageRequest) ProtoMessage() {}

func (x *GetQueuePageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetQueuePageRequest.ProtoReflect.Descriptor instead.
func (*GetQueuePageRequest) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{23}
}

func (x *GetQueuePageRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *GetQueuePageRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *GetQueuePageRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *GetQueuePageRequest) GetGroup() string {
	if x != nil {
		return x.Group
	}
	return ""
}

func (x *GetQueuePageRequest) GetStoreId() string {
	if x != nil {
		return x.StoreId
	}
	return ""
}

func (x *GetQueuePageRequest) GetFolder() string {
	if x != nil {
		return x.Folder
	}
	return ""
}

func (x *GetQueuePageRequest) GetSearch() string {
	if x != nil {
		return x.Search
	}
	return ""
}

type GetQueuePageResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*QueueRow            `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	TotalCount    int32                  `protobuf:"varint,2,opt,name=total_count,json=totalCount,proto3" json:"total_count,omitempty"`
	TotalPages    int32                  `protobuf:"varint,3,opt,name=total_pages,json=totalPages,proto3" json:"total_pages,omitempty"`
	Page          int32                  `protobuf:"varint,4,opt,name=page,proto3" json:"page,omitempty"`
	PageSize      int32                  `protobuf:"varint,5,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetQueuePageResponse) Reset() {
	*x = GetQueuePageResponse{}
	mi := &file_sync_v1_sync_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetQueuePageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetQueuePageResponse) ProtoMessage() {}

func (x *GetQueuePageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetQueuePageResponse.ProtoReflect.Descriptor instead.
func (*GetQueuePageResponse) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{24}
}

func (x *GetQueuePageResponse) GetItems() []*QueueRow {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *GetQueuePageResponse) GetTotalCount() int32 {
	if x != nil {
		return x.TotalCount
	}
	return 0
}

func (x *GetQueuePageResponse) GetTotalPages() int32 {
	if x != nil {
		return x.TotalPages
	}
	return 0
}

func (x *GetQueuePageResponse) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *GetQueuePageResponse) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type GetQueueStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetQueueStatsRequest) Reset() {
	*x = GetQueueStatsRequest{}
	mi := &file_sync_v1_sync_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetQueueStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetQueueStatsRequest) ProtoMessage() {}

func (x *GetQueueStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetQueueStatsRequest.ProtoReflect.Descriptor instead.
func (*GetQueueStatsRequest) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{25}
}

func (x *GetQueueStatsRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

type GetQueueStatsResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	TotalCount      int32                  `protobuf:"varint,1,opt,name=total_count,json=totalCount,proto3" json:"total_count,omitempty"`
	QueuedCount     int32                  `protobuf:"varint,2,opt,name=queued_count,json=queuedCount,proto3" json:"queued_count,omitempty"`
	ProcessingCount int32                  `protobuf:"varint,3,opt,name=processing_count,json=processingCount,proto3" json:"processing_count,omitempty"`
	FailedCount     int32                  `protobuf:"varint,4,opt,name=failed_count,json=failedCount,proto3" json:"failed_count,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *GetQueueStatsResponse) Reset() {
	*x = GetQueueStatsResponse{}
	mi := &file_sync_v1_sync_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetQueueStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetQueueStatsResponse) ProtoMessage() {}

func (x *GetQueueStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetQueueStatsResponse.ProtoReflect.Descriptor instead.
func (*GetQueueStatsResponse) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{26}
}

func (x *GetQueueStatsResponse) GetTotalCount() int32 {
	if x != nil {
		return x.TotalCount
	}
	return 0
}

func (x *GetQueueStatsResponse) GetQueuedCount() int32 {
	if x != nil {
		return x.QueuedCount
	}
	return 0
}

func (x *GetQueueStatsResponse) GetProcessingCount() int32 {
	if x != nil {
		return x.ProcessingCount
	}
	return 0
}

func (x *GetQueueStatsResponse) GetFailedCount() int32 {
	if x != nil {
		return x.FailedCount
	}
	return 0
}

type GetFolderStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFolderStatsRequest) Reset() {
	*x = GetFolderStatsRequest{}
	mi := &file_sync_v1_sync_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFolderStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFolderStatsRequest) ProtoMessage() {}

func (x *GetFolderStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFolderStatsRequest.ProtoReflect.Descriptor instead.
func (*GetFolderStatsRequest) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{27}
}

func (x *GetFolderStatsRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

type FolderStats struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Folder          string                 `protobuf:"bytes,1,opt,name=folder,proto3" json:"folder,omitempty"`
	TotalCount      int32                  `protobuf:"varint,2,opt,name=total_count,json=totalCount,proto3" json:"total_count,omitempty"`
	QueuedCount     int32                  `protobuf:"varint,3,opt,name=queued_count,json=queuedCount,proto3" json:"queued_count,omitempty"`
	ProcessingCount int32                  `protobuf:"varint,4,opt,name=processing_count,json=processingCount,proto3" json:"processing_count,omitempty"`
	FailedCount     int32                  `protobuf:"varint,5,opt,name=failed_count,json=failedCount,proto3" json:"failed_count,omitempty"`
	CompletedPct    float64                `protobuf:"fixed64,6,opt,name=completed_pct,json=completedPct,proto3" json:"completed_pct,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *FolderStats) Reset() {
	*x = FolderStats{}
	mi := &file_sync_v1_sync_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FolderStats) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FolderStats) ProtoMessage() {}

func (x *FolderStats) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FolderStats.ProtoReflect.Descriptor instead.
func (*FolderStats) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{28}
}

func (x *FolderStats) GetFolder() string {
	if x != nil {
		return x.Folder
	}
	return ""
}

func (x *FolderStats) GetTotalCount() int32 {
	if x != nil {
		return x.TotalCount
	}
	return 0
}

func (x *FolderStats) GetQueuedCount() int32 {
	if x != nil {
		return x.QueuedCount
	}
	return 0
}

func (x *FolderStats) GetProcessingCount() int32 {
	if x != nil {
		return x.ProcessingCount
	}
	return 0
}

func (x *FolderStats) GetFailedCount() int32 {
	if x != nil {
		return x.FailedCount
	}
	return 0
}

func (x *FolderStats) GetCompletedPct() float64 {
	if x != nil {
		return x.CompletedPct
	}
	return 0
}

type GetFolderStatsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Folders       []*FolderStats         `protobuf:"bytes,1,rep,name=folders,proto3" json:"folders,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFolderStatsResponse) Reset() {
	*x = GetFolderStatsResponse{}
	mi := &file_sync_v1_sync_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFolderStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFolderStatsResponse) ProtoMessage() {}

func (x *GetFolderStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFolderStatsResponse.ProtoReflect.Descriptor instead.
func (*GetFolderStatsResponse) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{29}
}

func (x *GetFolderStatsResponse) GetFolders() []*FolderStats {
	if x != nil {
		return x.Folders
	}
	return nil
}

type GetTokenBalanceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTokenBalanceRequest) Reset() {
	*x = GetTokenBalanceRequest{}
	mi := &file_sync_v1_sync_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTokenBalanceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTokenBalanceRequest) ProtoMessage() {}

func (x *GetTokenBalanceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTokenBalanceRequest.ProtoReflect.Descriptor instead.
func (*GetTokenBalanceRequest) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{30}
}

func (x *GetTokenBalanceRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

type GetTokenBalanceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Balance       int64                  `protobuf:"varint,1,opt,name=balance,proto3" json:"balance,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTokenBalanceResponse) Reset() {
	*x = GetTokenBalanceResponse{}
	mi := &file_sync_v1_sync_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTokenBalanceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTokenBalanceResponse) ProtoMessage() {}

func (x *GetTokenBalanceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTokenBalanceResponse.ProtoReflect.Descriptor instead.
func (*GetTokenBalanceResponse) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{31}
}

func (x *GetTokenBalanceResponse) GetBalance() int64 {
	if x != nil {
		return x.Balance
	}
	return 0
}

var File_sync_v1_sync_proto protoreflect.FileDescriptor

const file_sync_v1_sync_proto_rawDesc = "" +
	"\n" +
	"\x12sync/v1/sync.proto\x12\async.v1\"\xb4\x06\n" +
	"\x03Job\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12\x19\n" +
	"\bstore_id\x18\x03 \x01(\tR\astoreId\x12\x12\n" +
	"\x04name\x18\x04 \x01(\tR\x04name\x12!\n" +
	"\fstore_domain\x18\x05 \x01(\tR\vstoreDomain\x12\x16\n" +
	"\x06folder\x18\x06 \x01(\tR\x06folder\x12!\n" +
	"\ftrigger_type\x18\a \x01(\tR\vtriggerType\x12\x1f\n" +
	"\vpreset_type\x18\b \x01(\tR\n" +
	"presetType\x12\x1b\n" +
	"\tpreset_id\x18\t \x01(\tR\bpresetId\x12#\n" +
	"\rcustom_prompt\x18\n" +
	" \x01(\tR\fcustomPrompt\x12#\n" +
	"\rproduct_count\x18\v \x01(\x05R\fproductCount\x12\x1f\n" +
	"\vimage_count\x18\f \x01(\x05R\n" +
	"imageCount\x12'\n" +
	"\x0fprocessed_count\x18\r \x01(\x05R\x0eprocessedCount\x12!\n" +
	"\fpushed_count\x18\x0e \x01(\x05R\vpushedCount\x12!\n" +
	"\ffailed_count\x18\x0f \x01(\x05R\vfailedCount\x12\x16\n" +
	"\x06status\x18\x10 \x01(\tR\x06status\x12\x1f\n" +
	"\vretry_count\x18\x11 \x01(\x05R\n" +
	"retryCount\x12\x1f\n" +
	"\vmax_retries\x18\x12 \x01(\x05R\n" +
	"maxRetries\x12\x1d\n" +
	"\n" +
	"last_error\x18\x13 \x01(\tR\tlastError\x12\x1f\n" +
	"\vtokens_used\x18\x14 \x01(\x03R\n" +
	"tokensUsed\x12\"\n" +
	"\rnext_retry_at\x18\x15 \x01(\tR\vnextRetryAt\x12\x1f\n" +
	"\vapproved_at\x18\x16 \x01(\tR\n" +
	"approvedAt\x12!\n" +
	"\fcompleted_at\x18\x17 \x01(\tR\vcompletedAt\x12\x1d\n" +
	"\n" +
	"expires_at\x18\x18 \x01(\tR\texpiresAt\x12\x1d\n" +
	"\n" +
	"created_at\x18\x19 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x1a \x01(\tR\tupdatedAt\"\xfd\x02\n" +
	"\aJobItem\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12.\n" +
	"\x13external_product_id\x18\x03 \x01(\tR\x11externalProductId\x12*\n" +
	"\x11external_image_id\x18\x04 \x01(\tR\x0fexternalImageId\x12!\n" +
	"\foriginal_url\x18\x05 \x01(\tR\voriginalUrl\x12#\n" +
	"\roptimized_url\x18\x06 \x01(\tR\foptimizedUrl\x12\x16\n" +
	"\x06status\x18\a \x01(\tR\x06status\x12#\n" +
	"\rpush_attempts\x18\b \x01(\x05R\fpushAttempts\x12&\n" +
	"\x0flast_push_error\x18\t \x01(\tR\rlastPushError\x12%\n" +
	"\x0epush_retryable\x18\n" +
	" \x01(\bR\rpushRetryable\x12\x1b\n" +
	"\tpushed_at\x18\v \x01(\tR\bpushedAt\"\x8b\x01\n" +
	"\n" +
	"NewJobItem\x12.\n" +
	"\x13external_product_id\x18\x01 \x01(\tR\x11externalProductId\x12*\n" +
	"\x11external_image_id\x18\x02 \x01(\tR\x0fexternalImageId\x12!\n" +
	"\foriginal_url\x18\x03 \x01(\tR\voriginalUrl\"\xed\x02\n" +
	"\x10CreateJobRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x19\n" +
	"\bstore_id\x18\x02 \x01(\tR\astoreId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12!\n" +
	"\fstore_domain\x18\x04 \x01(\tR\vstoreDomain\x12\x16\n" +
	"\x06folder\x18\x05 \x01(\tR\x06folder\x12!\n" +
	"\ftrigger_type\x18\x06 \x01(\tR\vtriggerType\x12\x1f\n" +
	"\vpreset_type\x18\a \x01(\tR\n" +
	"presetType\x12\x1b\n" +
	"\tpreset_id\x18\b \x01(\tR\bpresetId\x12#\n" +
	"\rcustom_prompt\x18\t \x01(\tR\fcustomPrompt\x12#\n" +
	"\rproduct_count\x18\n" +
	" \x01(\x05R\fproductCount\x12)\n" +
	"\x05items\x18\v \x03(\v2\x13.sync.v1.NewJobItemR\x05items\"3\n" +
	"\x11CreateJobResponse\x12\x1e\n" +
	"\x03job\x18\x01 \x01(\v2\f.sync.v1.JobR\x03job\"&\n" +
	"\rGetJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"0\n" +
	"\x0eGetJobResponse\x12\x1e\n" +
	"\x03job\x18\x01 \x01(\v2\f.sync.v1.JobR\x03job\"B\n" +
	"\x0fListJobsRequest\x12\x19\n" +
	"\bstore_id\x18\x01 \x01(\tR\astoreId\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\"4\n" +
	"\x10ListJobsResponse\x12 \n" +
	"\x04jobs\x18\x01 \x03(\v2\f.sync.v1.JobR\x04jobs\",\n" +
	"\x13ListJobItemsRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\">\n" +
	"\x14ListJobItemsResponse\x12&\n" +
	"\x05items\x18\x01 \x03(\v2\x10.sync.v1.JobItemR\x05items\"*\n" +
	"\x11ApproveJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"4\n" +
	"\x12ApproveJobResponse\x12\x1e\n" +
	"\x03job\x18\x01 \x01(\v2\f.sync.v1.JobR\x03job\"A\n" +
	"\x10CancelJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x16\n" +
	"\x06reason\x18\x02 \x01(\tR\x06reason\"3\n" +
	"\x11CancelJobResponse\x12\x1e\n" +
	"\x03job\x18\x01 \x01(\v2\f.sync.v1.JobR\x03job\"(\n" +
	"\x0fRetryJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"2\n" +
	"\x10RetryJobResponse\x12\x1e\n" +
	"\x03job\x18\x01 \x01(\v2\f.sync.v1.JobR\x03job\"C\n" +
	"\x10ApplyBulkRequest\x12\x16\n" +
	"\x06action\x18\x01 \x01(\tR\x06action\x12\x17\n" +
	"\ajob_ids\x18\x02 \x03(\tR\x06jobIds\"b\n" +
	"\vBulkOutcome\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x0e\n" +
	"\x02ok\x18\x02 \x01(\bR\x02ok\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x14\n" +
	"\x05error\x18\x04 \x01(\tR\x05error\"{\n" +
	"\x11ApplyBulkResponse\x120\n" +
	"\boutcomes\x18\x01 \x03(\v2\x14.sync.v1.BulkOutcomeR\boutcomes\x12\x1c\n" +
	"\tsucceeded\x18\x02 \x01(\x05R\tsucceeded\x12\x16\n" +
	"\x06failed\x18\x03 \x01(\x05R\x06failed\"/\n" +
	"\x16ExportJobReportRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"O\n" +
	"\x17ExportJobReportResponse\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\"\xf3\x02\n" +
	"\bQueueRow\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x19\n" +
	"\bstore_id\x18\x02 \x01(\tR\astoreId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12!\n" +
	"\fstore_domain\x18\x04 \x01(\tR\vstoreDomain\x12\x16\n" +
	"\x06folder\x18\x05 \x01(\tR\x06folder\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12\x1f\n" +
	"\vimage_count\x18\a \x01(\x05R\n" +
	"imageCount\x12'\n" +
	"\x0fprocessed_count\x18\b \x01(\x05R\x0eprocessedCount\x12!\n" +
	"\fpushed_count\x18\t \x01(\x05R\vpushedCount\x12!\n" +
	"\ffailed_count\x18\n" +
	" \x01(\x05R\vfailedCount\x12\x1f\n" +
	"\vtokens_used\x18\v \x01(\x03R\n" +
	"tokensUsed\x12\x1d\n" +
	"\n" +
	"created_at\x18\f \x01(\tR\tcreatedAt\"\xc2\x01\n" +
	"\x13GetQueuePageRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x12\n" +
	"\x04page\x18\x02 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x03 \x01(\x05R\bpageSize\x12\x14\n" +
	"\x05group\x18\x04 \x01(\tR\x05group\x12\x19\n" +
	"\bstore_id\x18\x05 \x01(\tR\astoreId\x12\x16\n" +
	"\x06folder\x18\x06 \x01(\tR\x06folder\x12\x16\n" +
	"\x06search\x18\a \x01(\tR\x06search\"\xb2\x01\n" +
	"\x14GetQueuePageResponse\x12'\n" +
	"\x05items\x18\x01 \x03(\v2\x11.sync.v1.QueueRowR\x05items\x12\x1f\n" +
	"\vtotal_count\x18\x02 \x01(\x05R\n" +
	"totalCount\x12\x1f\n" +
	"\vtotal_pages\x18\x03 \x01(\x05R\n" +
	"totalPages\x12\x12\n" +
	"\x04page\x18\x04 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x05 \x01(\x05R\bpageSize\"1\n" +
	"\x14GetQueueStatsRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\"\xa9\x01\n" +
	"\x15GetQueueStatsResponse\x12\x1f\n" +
	"\vtotal_count\x18\x01 \x01(\x05R\n" +
	"totalCount\x12!\n" +
	"\fqueued_count\x18\x02 \x01(\x05R\vqueuedCount\x12)\n" +
	"\x10processing_count\x18\x03 \x01(\x05R\x0fprocessingCount\x12!\n" +
	"\ffailed_count\x18\x04 \x01(\x05R\vfailedCount\"2\n" +
	"\x15GetFolderStatsRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\"\xdc\x01\n" +
	"\vFolderStats\x12\x16\n" +
	"\x06folder\x18\x01 \x01(\tR\x06folder\x12\x1f\n" +
	"\vtotal_count\x18\x02 \x01(\x05R\n" +
	"totalCount\x12!\n" +
	"\fqueued_count\x18\x03 \x01(\x05R\vqueuedCount\x12)\n" +
	"\x10processing_count\x18\x04 \x01(\x05R\x0fprocessingCount\x12!\n" +
	"\ffailed_count\x18\x05 \x01(\x05R\vfailedCount\x12#\n" +
	"\rcompleted_pct\x18\x06 \x01(\x01R\fcompletedPct\"H\n" +
	"\x16GetFolderStatsResponse\x12.\n" +
	"\afolders\x18\x01 \x03(\v2\x14.sync.v1.FolderStatsR\afolders\"3\n" +
	"\x16GetTokenBalanceRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\"3\n" +
	"\x17GetTokenBalanceResponse\x12\x18\n" +
	"\abalance\x18\x01 \x01(\x03R\abalance2\x84\x05\n" +
	"\x0fSyncJobsService\x12B\n" +
	"\tCreateJob\x12\x19.sync.v1.CreateJobRequest\x1a\x1a.sync.v1.CreateJobResponse\x129\n" +
	"\x06GetJob\x12\x16.sync.v1.GetJobRequest\x1a\x17.sync.v1.GetJobResponse\x12?\n" +
	"\bListJobs\x12\x18.sync.v1.ListJobsRequest\x1a\x19.sync.v1.ListJobsResponse\x12K\n" +
	"\fListJobItems\x12\x1c.sync.v1.ListJobItemsRequest\x1a\x1d.sync.v1.ListJobItemsResponse\x12E\n" +
	"\n" +
	"ApproveJob\x12\x1a.sync.v1.ApproveJobRequest\x1a\x1b.sync.v1.ApproveJobResponse\x12B\n" +
	"\tCancelJob\x12\x19.sync.v1.CancelJobRequest\x1a\x1a.sync.v1.CancelJobResponse\x12?\n" +
	"\bRetryJob\x12\x18.sync.v1.RetryJobRequest\x1a\x19.sync.v1.RetryJobResponse\x12B\n" +
	"\tApplyBulk\x12\x19.sync.v1.ApplyBulkRequest\x1a\x1a.sync.v1.ApplyBulkResponse\x12T\n" +
	"\x0fExportJobReport\x12\x1f.sync.v1.ExportJobReportRequest\x1a .sync.v1.ExportJobReportResponse2\xd4\x02\n" +
	"\fQueueService\x12K\n" +
	"\fGetQueuePage\x12\x1c.sync.v1.GetQueuePageRequest\x1a\x1d.sync.v1.GetQueuePageResponse\x12N\n" +
	"\rGetQueueStats\x12\x1d.sync.v1.GetQueueStatsRequest\x1a\x1e.sync.v1.GetQueueStatsResponse\x12Q\n" +
	"\x0eGetFolderStats\x12\x1e.sync.v1.GetFolderStatsRequest\x1a\x1f.sync.v1.GetFolderStatsResponse\x12T\n" +
	"\x0fGetTokenBalance\x12\x1f.sync.v1.GetTokenBalanceRequest\x1a .sync.v1.GetTokenBalanceResponseB7Z5github.com/optipix/imagesync/gen/proto/sync/v1;syncv1b\x06proto3"

var (
	file_sync_v1_sync_proto_rawDescOnce sync.Once
	file_sync_v1_sync_proto_rawDescData []byte
)

func file_sync_v1_sync_proto_rawDescGZIP() []byte {
	file_sync_v1_sync_proto_rawDescOnce.Do(func() {
		file_sync_v1_sync_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_sync_v1_sync_proto_rawDesc), len(file_sync_v1_sync_proto_rawDesc)))
	})
	return file_sync_v1_sync_proto_rawDescData
}

var file_sync_v1_sync_proto_msgTypes = make([]protoimpl.MessageInfo, 32)
var file_sync_v1_sync_proto_goTypes = []any{
	(*Job)(nil),                     // 0: sync.v1.Job
	(*JobItem)(nil),                 // 1: sync.v1.JobItem
	(*NewJobItem)(nil),              // 2: sync.v1.NewJobItem
	(*CreateJobRequest)(nil),        // 3: sync.v1.CreateJobRequest
	(*CreateJobResponse)(nil),       // 4: sync.v1.CreateJobResponse
	(*GetJobRequest)(nil),           // 5: sync.v1.GetJobRequest
	(*GetJobResponse)(nil),          // 6: sync.v1.GetJobResponse
	(*ListJobsRequest)(nil),         // 7: sync.v1.ListJobsRequest
	(*ListJobsResponse)(nil),        // 8: sync.v1.ListJobsResponse
	(*ListJobItemsRequest)(nil),     // 9: sync.v1.ListJobItemsRequest
	(*ListJobItemsResponse)(nil),    // 10: sync.v1.ListJobItemsResponse
	(*ApproveJobRequest)(nil),       // 11: sync.v1.ApproveJobRequest
	(*ApproveJobResponse)(nil),      // 12: sync.v1.ApproveJobResponse
	(*CancelJobRequest)(nil),        // 13: sync.v1.CancelJobRequest
	(*CancelJobResponse)(nil),       // 14: sync.v1.CancelJobResponse
	(*RetryJobRequest)(nil),         // 15: sync.v1.RetryJobRequest
	(*RetryJobResponse)(nil),        // 16: sync.v1.RetryJobResponse
	(*ApplyBulkRequest)(nil),        // 17: sync.v1.ApplyBulkRequest
	(*BulkOutcome)(nil),             // 18: sync.v1.BulkOutcome
	(*ApplyBulkResponse)(nil),       // 19: sync.v1.ApplyBulkResponse
	(*ExportJobReportRequest)(nil),  // 20: sync.v1.ExportJobReportRequest
	(*ExportJobReportResponse)(nil), // 21: sync.v1.ExportJobReportResponse
	(*QueueRow)(nil),                // 22: sync.v1.QueueRow
	(*GetQueuePageRequest)(nil),     // 23: sync.v1.GetQueuePageRequest
	(*GetQueuePageResponse)(nil),    // 24: sync.v1.GetQueuePageResponse
	(*GetQueueStatsRequest)(nil),    // 25: sync.v1.GetQueueStatsRequest
	(*GetQueueStatsResponse)(nil),   // 26: sync.v1.GetQueueStatsResponse
	(*GetFolderStatsRequest)(nil),   // 27: sync.v1.GetFolderStatsRequest
	(*FolderStats)(nil),             // 28: sync.v1.FolderStats
	(*GetFolderStatsResponse)(nil),  // 29: sync.v1.GetFolderStatsResponse
	(*GetTokenBalanceRequest)(nil),  // 30: sync.v1.GetTokenBalanceRequest
	(*GetTokenBalanceResponse)(nil), // 31: sync.v1.GetTokenBalanceResponse
}
var file_sync_v1_sync_proto_depIdxs = []int32{
	2,  // 0: sync.v1.CreateJobRequest.items:type_name -> sync.v1.NewJobItem
	0,  // 1: sync.v1.CreateJobResponse.job:type_name -> sync.v1.Job
	0,  // 2: sync.v1.GetJobResponse.job:type_name -> sync.v1.Job
	0,  // 3: sync.v1.ListJobsResponse.jobs:type_name -> sync.v1.Job
	1,  // 4: sync.v1.ListJobItemsResponse.items:type_name -> sync.v1.JobItem
	0,  // 5: sync.v1.ApproveJobResponse.job:type_name -> sync.v1.Job
	0,  // 6: sync.v1.CancelJobResponse.job:type_name -> sync.v1.Job
	0,  // 7: sync.v1.RetryJobResponse.job:type_name -> sync.v1.Job
	18, // 8: sync.v1.ApplyBulkResponse.outcomes:type_name -> sync.v1.BulkOutcome
	22, // 9: sync.v1.GetQueuePageResponse.items:type_name -> sync.v1.QueueRow
	28, // 10: sync.v1.GetFolderStatsResponse.folders:type_name -> sync.v1.FolderStats
	3,  // 11: sync.v1.SyncJobsService.CreateJob:input_type -> sync.v1.CreateJobRequest
	5,  // 12: sync.v1.SyncJobsService.GetJob:input_type -> sync.v1.GetJobRequest
	7,  // 13: sync.v1.SyncJobsService.ListJobs:input_type -> sync.v1.ListJobsRequest
	9,  // 14: sync.v1.SyncJobsService.ListJobItems:input_type -> sync.v1.ListJobItemsRequest
	11, // 15: sync.v1.SyncJobsService.ApproveJob:input_type -> sync.v1.ApproveJobRequest
	13, // 16: sync.v1.SyncJobsService.CancelJob:input_type -> sync.v1.CancelJobRequest
	15, // 17: sync.v1.SyncJobsService.RetryJob:input_type -> sync.v1.RetryJobRequest
	17, // 18: sync.v1.SyncJobsService.ApplyBulk:input_type -> sync.v1.ApplyBulkRequest
	20, // 19: sync.v1.SyncJobsService.ExportJobReport:input_type -> sync.v1.ExportJobReportRequest
	23, // 20: sync.v1.QueueService.GetQueuePage:input_type -> sync.v1.GetQueuePageRequest
	25, // 21: sync.v1.QueueService.GetQueueStats:input_type -> sync.v1.GetQueueStatsRequest
	27, // 22: sync.v1.QueueService.GetFolderStats:input_type -> sync.v1.GetFolderStatsRequest
	30, // 23: sync.v1.QueueService.GetTokenBalance:input_type -> sync.v1.GetTokenBalanceRequest
	4,  // 24: sync.v1.SyncJobsService.CreateJob:output_type -> sync.v1.CreateJobResponse
	6,  // 25: sync.v1.SyncJobsService.GetJob:output_type -> sync.v1.GetJobResponse
	8,  // 26: sync.v1.SyncJobsService.ListJobs:output_type -> sync.v1.ListJobsResponse
	10, // 27: sync.v1.SyncJobsService.ListJobItems:output_type -> sync.v1.ListJobItemsResponse
	12, // 28: sync.v1.SyncJobsService.ApproveJob:output_type -> sync.v1.ApproveJobResponse
	14, // 29: sync.v1.SyncJobsService.CancelJob:output_type -> sync.v1.CancelJobResponse
	16, // 30: sync.v1.SyncJobsService.RetryJob:output_type -> sync.v1.RetryJobResponse
	19, // 31: sync.v1.SyncJobsService.ApplyBulk:output_type -> sync.v1.ApplyBulkResponse
	21, // 32: sync.v1.SyncJobsService.ExportJobReport:output_type -> sync.v1.ExportJobReportResponse
	24, // 33: sync.v1.QueueService.GetQueuePage:output_type -> sync.v1.GetQueuePageResponse
	26, // 34: sync.v1.QueueService.GetQueueStats:output_type -> sync.v1.GetQueueStatsResponse
	29, // 35: sync.v1.QueueService.GetFolderStats:output_type -> sync.v1.GetFolderStatsResponse
	31, // 36: sync.v1.QueueService.GetTokenBalance:output_type -> sync.v1.GetTokenBalanceResponse
	24, // [24:37] is the sub-list for method output_type
	11, // [11:24] is the sub-list for method input_type
	11, // [11:11] is the sub-list for extension type_name
	11, // [11:11] is the sub-list for extension extendee
	0,  // [0:11] is the sub-list for field type_name
}

func init() { file_sync_v1_sync_proto_init() }
func file_sync_v1_sync_proto_init() {
	if File_sync_v1_sync_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_sync_v1_sync_proto_rawDesc), len(file_sync_v1_sync_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   32,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_sync_v1_sync_proto_goTypes,
		DependencyIndexes: file_sync_v1_sync_proto_depIdxs,
		MessageInfos:      file_sync_v1_sync_proto_msgTypes,
	}.Build()
	File_sync_v1_sync_proto = out.File
	file_sync_v1_sync_proto_goTypes = nil
	file_sync_v1_sync_proto_depIdxs = nil
}
