// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: sync/v1/sync.proto

package syncv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	SyncJobsService_CreateJob_FullMethodName       = "/sync.v1.SyncJobsService/CreateJob"
	SyncJobsService_GetJob_FullMethodName          = "/sync.v1.SyncJobsService/GetJob"
	SyncJobsService_ListJobs_FullMethodName        = "/sync.v1.SyncJobsService/ListJobs"
	SyncJobsService_ListJobItems_FullMethodName    = "/sync.v1.SyncJobsService/ListJobItems"
	SyncJobsService_ApproveJob_FullMethodName      = "/sync.v1.SyncJobsService/ApproveJob"
	SyncJobsService_CancelJob_FullMethodName       = "/sync.v1.SyncJobsService/CancelJob"
	SyncJobsService_RetryJob_FullMethodName        = "/sync.v1.SyncJobsService/RetryJob"
	SyncJobsService_ApplyBulk_FullMethodName       = "/sync.v1.SyncJobsService/ApplyBulk"
	SyncJobsService_ExportJobReport_FullMethodName = "/sync.v1.SyncJobsService/ExportJobReport"
)

// SyncJobsServiceClient is the client API for SyncJobsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// SyncJobsService manages the lifecycle of image sync jobs: creation with a
// token hold, operator review, and the retryable push phase.
type SyncJobsServiceClient interface {
	CreateJob(ctx context.Context, in *CreateJobRequest, opts ...grpc.CallOption) (*CreateJobResponse, error)
	GetJob(ctx context.Context, in *GetJobRequest, opts ...grpc.CallOption) (*GetJobResponse, error)
	ListJobs(ctx context.Context, in *ListJobsRequest, opts ...grpc.CallOption) (*ListJobsResponse, error)
	ListJobItems(ctx context.Context, in *ListJobItemsRequest, opts ...grpc.CallOption) (*ListJobItemsResponse, error)
	ApproveJob(ctx context.Context, in *ApproveJobRequest, opts ...grpc.CallOption) (*ApproveJobResponse, error)
	CancelJob(ctx context.Context, in *CancelJobRequest, opts ...grpc.CallOption) (*CancelJobResponse, error)
	RetryJob(ctx context.Context, in *RetryJobRequest, opts ...grpc.CallOption) (*RetryJobResponse, error)
	ApplyBulk(ctx context.Context, in *ApplyBulkRequest, opts ...grpc.CallOption) (*ApplyBulkResponse, error)
	ExportJobReport(ctx context.Context, in *ExportJobReportRequest, opts ...grpc.CallOption) (*ExportJobReportResponse, error)
}

type syncJobsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSyncJobsServiceClient(cc grpc.ClientConnInterface) SyncJobsServiceClient {
	return &syncJobsServiceClient{cc}
}

func (c *syncJobsServiceClient) CreateJob(ctx context.Context, in *CreateJobRequest, opts ...grpc.CallOption) (*CreateJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateJobResponse)
	err := c.cc.Invoke(ctx, SyncJobsService_CreateJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *syncJobsServiceClient) GetJob(ctx context.Context, in *GetJobRequest, opts ...grpc.CallOption) (*GetJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetJobResponse)
	err := c.cc.Invoke(ctx, SyncJobsService_GetJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *syncJobsServiceClient) ListJobs(ctx context.Context, in *ListJobsRequest, opts ...grpc.CallOption) (*ListJobsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListJobsResponse)
	err := c.cc.Invoke(ctx, SyncJobsService_ListJobs_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *syncJobsServiceClient) ListJobItems(ctx context.Context, in *ListJobItemsRequest, opts ...grpc.CallOption) (*ListJobItemsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListJobItemsResponse)
	err := c.cc.Invoke(ctx, SyncJobsService_ListJobItems_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *syncJobsServiceClient) ApproveJob(ctx context.Context, in *ApproveJobRequest, opts ...grpc.CallOption) (*ApproveJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ApproveJobResponse)
	err := c.cc.Invoke(ctx, SyncJobsService_ApproveJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *syncJobsServiceClient) CancelJob(ctx context.Context, in *CancelJobRequest, opts ...grpc.CallOption) (*CancelJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CancelJobResponse)
	err := c.cc.Invoke(ctx, SyncJobsService_CancelJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *syncJobsServiceClient) RetryJob(ctx context.Context, in *RetryJobRequest, opts ...grpc.CallOption) (*RetryJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RetryJobResponse)
	err := c.cc.Invoke(ctx, SyncJobsService_RetryJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *syncJobsServiceClient) ApplyBulk(ctx context.Context, in *ApplyBulkRequest, opts ...grpc.CallOption) (*ApplyBulkResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ApplyBulkResponse)
	err := c.cc.Invoke(ctx, SyncJobsService_ApplyBulk_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *syncJobsServiceClient) ExportJobReport(ctx context.Context, in *ExportJobReportRequest, opts ...grpc.CallOption) (*ExportJobReportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportJobReportResponse)
	err := c.cc.Invoke(ctx, SyncJobsService_ExportJobReport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SyncJobsServiceServer is the server API for SyncJobsService service.
// All implementations must embed UnimplementedSyncJobsServiceServer
// for forward compatibility.
//
// SyncJobsService manages the lifecycle of image sync jobs: creation with a
// token hold, operator review, and the retryable push phase.
type SyncJobsServiceServer interface {
	CreateJob(context.Context, *CreateJobRequest) (*CreateJobResponse, error)
	GetJob(context.Context, *GetJobRequest) (*GetJobResponse, error)
	ListJobs(context.Context, *ListJobsRequest) (*ListJobsResponse, error)
	ListJobItems(context.Context, *ListJobItemsRequest) (*ListJobItemsResponse, error)
	ApproveJob(context.Context, *ApproveJobRequest) (*ApproveJobResponse, error)
	CancelJob(context.Context, *CancelJobRequest) (*CancelJobResponse, error)
	RetryJob(context.Context, *RetryJobRequest) (*RetryJobResponse, error)
	ApplyBulk(context.Context, *ApplyBulkRequest) (*ApplyBulkResponse, error)
	ExportJobReport(context.Context, *ExportJobReportRequest) (*ExportJobReportResponse, error)
	mustEmbedUnimplementedSyncJobsServiceServer()
}

// UnimplementedSyncJobsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedSyncJobsServiceServer struct{}

func (UnimplementedSyncJobsServiceServer) CreateJob(context.Context, *CreateJobRequest) (*CreateJobResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateJob not implemented")
}
func (UnimplementedSyncJobsServiceServer) GetJob(context.Context, *GetJobRequest) (*GetJobResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetJob not implemented")
}
func (UnimplementedSyncJobsServiceServer) ListJobs(context.Context, *ListJobsRequest) (*ListJobsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListJobs not implemented")
}
func (UnimplementedSyncJobsServiceServer) ListJobItems(context.Context, *ListJobItemsRequest) (*ListJobItemsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListJobItems not implemented")
}
func (UnimplementedSyncJobsServiceServer) ApproveJob(context.Context, *ApproveJobRequest) (*ApproveJobResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ApproveJob not implemented")
}
func (UnimplementedSyncJobsServiceServer) CancelJob(context.Context, *CancelJobRequest) (*CancelJobResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CancelJob not implemented")
}
func (UnimplementedSyncJobsServiceServer) RetryJob(context.Context, *RetryJobRequest) (*RetryJobResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RetryJob not implemented")
}
func (UnimplementedSyncJobsServiceServer) ApplyBulk(context.Context, *ApplyBulkRequest) (*ApplyBulkResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ApplyBulk not implemented")
}
func (UnimplementedSyncJobsServiceServer) ExportJobReport(context.Context, *ExportJobReportRequest) (*ExportJobReportResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportJobReport not implemented")
}
func (UnimplementedSyncJobsServiceServer) mustEmbedUnimplementedSyncJobsServiceServer() {}
func (UnimplementedSyncJobsServiceServer) testEmbeddedByValue()                         {}

// UnsafeSyncJobsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SyncJobsServiceServer will
// result in compilation errors.
type UnsafeSyncJobsServiceServer interface {
	mustEmbedUnimplementedSyncJobsServiceServer()
}

func RegisterSyncJobsServiceServer(s grpc.ServiceRegistrar, srv SyncJobsServiceServer) {
	// If the following call panics, it indicates UnimplementedSyncJobsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&SyncJobsService_ServiceDesc, srv)
}

func _SyncJobsService_CreateJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncJobsServiceServer).CreateJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SyncJobsService_CreateJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyncJobsServiceServer).CreateJob(ctx, req.(*CreateJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SyncJobsService_GetJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncJobsServiceServer).GetJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SyncJobsService_GetJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyncJobsServiceServer).GetJob(ctx, req.(*GetJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SyncJobsService_ListJobs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListJobsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncJobsServiceServer).ListJobs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SyncJobsService_ListJobs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyncJobsServiceServer).ListJobs(ctx, req.(*ListJobsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SyncJobsService_ListJobItems_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListJobItemsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncJobsServiceServer).ListJobItems(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SyncJobsService_ListJobItems_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyncJobsServiceServer).ListJobItems(ctx, req.(*ListJobItemsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SyncJobsService_ApproveJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApproveJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncJobsServiceServer).ApproveJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SyncJobsService_ApproveJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyncJobsServiceServer).ApproveJob(ctx, req.(*ApproveJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SyncJobsService_CancelJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncJobsServiceServer).CancelJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SyncJobsService_CancelJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyncJobsServiceServer).CancelJob(ctx, req.(*CancelJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SyncJobsService_RetryJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RetryJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncJobsServiceServer).RetryJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SyncJobsService_RetryJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyncJobsServiceServer).RetryJob(ctx, req.(*RetryJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SyncJobsService_ApplyBulk_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApplyBulkRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncJobsServiceServer).ApplyBulk(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SyncJobsService_ApplyBulk_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyncJobsServiceServer).ApplyBulk(ctx, req.(*ApplyBulkRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SyncJobsService_ExportJobReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportJobReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncJobsServiceServer).ExportJobReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SyncJobsService_ExportJobReport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyncJobsServiceServer).ExportJobReport(ctx, req.(*ExportJobReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SyncJobsService_ServiceDesc is the grpc.ServiceDesc for SyncJobsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var SyncJobsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "sync.v1.SyncJobsService",
	HandlerType: (*SyncJobsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateJob",
			Handler:    _SyncJobsService_CreateJob_Handler,
		},
		{
			MethodName: "GetJob",
			Handler:    _SyncJobsService_GetJob_Handler,
		},
		{
			MethodName: "ListJobs",
			Handler:    _SyncJobsService_ListJobs_Handler,
		},
		{
			MethodName: "ListJobItems",
			Handler:    _SyncJobsService_ListJobItems_Handler,
		},
		{
			MethodName: "ApproveJob",
			Handler:    _SyncJobsService_ApproveJob_Handler,
		},
		{
			MethodName: "CancelJob",
			Handler:    _SyncJobsService_CancelJob_Handler,
		},
		{
			MethodName: "RetryJob",
			Handler:    _SyncJobsService_RetryJob_Handler,
		},
		{
			MethodName: "ApplyBulk",
			Handler:    _SyncJobsService_ApplyBulk_Handler,
		},
		{
			MethodName: "ExportJobReport",
			Handler:    _SyncJobsService_ExportJobReport_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sync/v1/sync.proto",
}

const (
	QueueService_GetQueuePage_FullMethodName    = "/sync.v1.QueueService/GetQueuePage"
	QueueService_GetQueueStats_FullMethodName   = "/sync.v1.QueueService/GetQueueStats"
	QueueService_GetFolderStats_FullMethodName  = "/sync.v1.QueueService/GetFolderStats"
	QueueService_GetTokenBalance_FullMethodName = "/sync.v1.QueueService/GetTokenBalance"
)

// QueueServiceClient is the client API for QueueService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// QueueService serves the read-side queue projection.
type QueueServiceClient interface {
	GetQueuePage(ctx context.Context, in *GetQueuePageRequest, opts ...grpc.CallOption) (*GetQueuePageResponse, error)
	GetQueueStats(ctx context.Context, in *GetQueueStatsRequest, opts ...grpc.CallOption) (*GetQueueStatsResponse, error)
	GetFolderStats(ctx context.Context, in *GetFolderStatsRequest, opts ...grpc.CallOption) (*GetFolderStatsResponse, error)
	GetTokenBalance(ctx context.Context, in *GetTokenBalanceRequest, opts ...grpc.CallOption) (*GetTokenBalanceResponse, error)
}

type queueServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewQueueServiceClient(cc grpc.ClientConnInterface) QueueServiceClient {
	return &queueServiceClient{cc}
}

func (c *queueServiceClient) GetQueuePage(ctx context.Context, in *GetQueuePageRequest, opts ...grpc.CallOption) (*GetQueuePageResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetQueuePageResponse)
	err := c.cc.Invoke(ctx, QueueService_GetQueuePage_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queueServiceClient) GetQueueStats(ctx context.Context, in *GetQueueStatsRequest, opts ...grpc.CallOption) (*GetQueueStatsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetQueueStatsResponse)
	err := c.cc.Invoke(ctx, QueueService_GetQueueStats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queueServiceClient) GetFolderStats(ctx context.Context, in *GetFolderStatsRequest, opts ...grpc.CallOption) (*GetFolderStatsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetFolderStatsResponse)
	err := c.cc.Invoke(ctx, QueueService_GetFolderStats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queueServiceClient) GetTokenBalance(ctx context.Context, in *GetTokenBalanceRequest, opts ...grpc.CallOption) (*GetTokenBalanceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetTokenBalanceResponse)
	err := c.cc.Invoke(ctx, QueueService_GetTokenBalance_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// QueueServiceServer is the server API for QueueService service.
// All implementations must embed UnimplementedQueueServiceServer
// for forward compatibility.
//
// QueueService serves the read-side queue projection.
type QueueServiceServer interface {
	GetQueuePage(context.Context, *GetQueuePageRequest) (*GetQueuePageResponse, error)
	GetQueueStats(context.Context, *GetQueueStatsRequest) (*GetQueueStatsResponse, error)
	GetFolderStats(context.Context, *GetFolderStatsRequest) (*GetFolderStatsResponse, error)
	GetTokenBalance(context.Context, *GetTokenBalanceRequest) (*GetTokenBalanceResponse, error)
	mustEmbedUnimplementedQueueServiceServer()
}

// UnimplementedQueueServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedQueueServiceServer struct{}

func (UnimplementedQueueServiceServer) GetQueuePage(context.Context, *GetQueuePageRequest) (*GetQueuePageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetQueuePage not implemented")
}
func (UnimplementedQueueServiceServer) GetQueueStats(context.Context, *GetQueueStatsRequest) (*GetQueueStatsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetQueueStats not implemented")
}
func (UnimplementedQueueServiceServer) GetFolderStats(context.Context, *GetFolderStatsRequest) (*GetFolderStatsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetFolderStats not implemented")
}
func (UnimplementedQueueServiceServer) GetTokenBalance(context.Context, *GetTokenBalanceRequest) (*GetTokenBalanceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTokenBalance not implemented")
}
func (UnimplementedQueueServiceServer) mustEmbedUnimplementedQueueServiceServer() {}
func (UnimplementedQueueServiceServer) testEmbeddedByValue()                      {}

// UnsafeQueueServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to QueueServiceServer will
// result in compilation errors.
type UnsafeQueueServiceServer interface {
	mustEmbedUnimplementedQueueServiceServer()
}

func RegisterQueueServiceServer(s grpc.ServiceRegistrar, srv QueueServiceServer) {
	// If the following call panics, it indicates UnimplementedQueueServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&QueueService_ServiceDesc, srv)
}

func _QueueService_GetQueuePage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetQueuePageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueueServiceServer).GetQueuePage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueueService_GetQueuePage_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueueServiceServer).GetQueuePage(ctx, req.(*GetQueuePageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueueService_GetQueueStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetQueueStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueueServiceServer).GetQueueStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueueService_GetQueueStats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueueServiceServer).GetQueueStats(ctx, req.(*GetQueueStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueueService_GetFolderStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetFolderStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueueServiceServer).GetFolderStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueueService_GetFolderStats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueueServiceServer).GetFolderStats(ctx, req.(*GetFolderStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueueService_GetTokenBalance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTokenBalanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueueServiceServer).GetTokenBalance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueueService_GetTokenBalance_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueueServiceServer).GetTokenBalance(ctx, req.(*GetTokenBalanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// QueueService_ServiceDesc is the grpc.ServiceDesc for QueueService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var QueueService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "sync.v1.QueueService",
	HandlerType: (*QueueServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetQueuePage",
			Handler:    _QueueService_GetQueuePage_Handler,
		},
		{
			MethodName: "GetQueueStats",
			Handler:    _QueueService_GetQueueStats_Handler,
		},
		{
			MethodName: "GetFolderStats",
			Handler:    _QueueService_GetFolderStats_Handler,
		},
		{
			MethodName: "GetTokenBalance",
			Handler:    _QueueService_GetTokenBalance_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sync/v1/sync.proto",
}
