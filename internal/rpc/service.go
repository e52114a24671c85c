package rpc

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "policydesk.admin.PartnerAdmin"

// FieldErrorsTrailer is the trailer key under which the server returns the
// JSON-encoded field errors of an InvalidArgument response.
const FieldErrorsTrailer = "x-field-errors"

const (
	ListPartnersMethod  = "/" + ServiceName + "/ListPartners"
	GetPartnerMethod    = "/" + ServiceName + "/GetPartner"
	CreatePartnerMethod = "/" + ServiceName + "/CreatePartner"
	AddPolicyMethod     = "/" + ServiceName + "/AddPolicy"
	PingMethod          = "/" + ServiceName + "/Ping"
)

type PartnerAdminServer interface {
	ListPartners(context.Context, *ListPartnersRequest) (*ListPartnersResponse, error)
	GetPartner(context.Context, *GetPartnerRequest) (*GetPartnerResponse, error)
	CreatePartner(context.Context, *CreatePartnerRequest) (*CreatePartnerResponse, error)
	AddPolicy(context.Context, *AddPolicyRequest) (*AddPolicyResponse, error)
	Ping(context.Context, *PingRequest) (*PingResponse, error)
}

func RegisterPartnerAdminServer(s grpc.ServiceRegistrar, srv PartnerAdminServer) {
	s.RegisterService(&PartnerAdminServiceDesc, srv)
}

// unary adapts a typed server method to grpc.MethodDesc's handler shape.
func unary[Req, Resp any](method string, call func(PartnerAdminServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(PartnerAdminServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(PartnerAdminServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var PartnerAdminServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PartnerAdminServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListPartners", Handler: unary(ListPartnersMethod, PartnerAdminServer.ListPartners)},
		{MethodName: "GetPartner", Handler: unary(GetPartnerMethod, PartnerAdminServer.GetPartner)},
		{MethodName: "CreatePartner", Handler: unary(CreatePartnerMethod, PartnerAdminServer.CreatePartner)},
		{MethodName: "AddPolicy", Handler: unary(AddPolicyMethod, PartnerAdminServer.AddPolicy)},
		{MethodName: "Ping", Handler: unary(PingMethod, PartnerAdminServer.Ping)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "policydesk/admin",
}

type PartnerAdminClient interface {
	ListPartners(ctx context.Context, in *ListPartnersRequest, opts ...grpc.CallOption) (*ListPartnersResponse, error)
	GetPartner(ctx context.Context, in *GetPartnerRequest, opts ...grpc.CallOption) (*GetPartnerResponse, error)
	CreatePartner(ctx context.Context, in *CreatePartnerRequest, opts ...grpc.CallOption) (*CreatePartnerResponse, error)
	AddPolicy(ctx context.Context, in *AddPolicyRequest, opts ...grpc.CallOption) (*AddPolicyResponse, error)
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
}

type partnerAdminClient struct {
	cc grpc.ClientConnInterface
}

func NewPartnerAdminClient(cc grpc.ClientConnInterface) PartnerAdminClient {
	return &partnerAdminClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *partnerAdminClient) ListPartners(ctx context.Context, in *ListPartnersRequest, opts ...grpc.CallOption) (*ListPartnersResponse, error) {
	return invoke[ListPartnersResponse](ctx, c.cc, ListPartnersMethod, in, opts)
}

func (c *partnerAdminClient) GetPartner(ctx context.Context, in *GetPartnerRequest, opts ...grpc.CallOption) (*GetPartnerResponse, error) {
	return invoke[GetPartnerResponse](ctx, c.cc, GetPartnerMethod, in, opts)
}

func (c *partnerAdminClient) CreatePartner(ctx context.Context, in *CreatePartnerRequest, opts ...grpc.CallOption) (*CreatePartnerResponse, error) {
	return invoke[CreatePartnerResponse](ctx, c.cc, CreatePartnerMethod, in, opts)
}

func (c *partnerAdminClient) AddPolicy(ctx context.Context, in *AddPolicyRequest, opts ...grpc.CallOption) (*AddPolicyResponse, error) {
	return invoke[AddPolicyResponse](ctx, c.cc, AddPolicyMethod, in, opts)
}

func (c *partnerAdminClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, PingMethod, in, opts)
}
