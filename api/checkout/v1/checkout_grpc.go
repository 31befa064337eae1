package checkoutv1

//go:generate mockgen -source=checkout_grpc.go -destination=../../../gen/mocks/grpc/checkout_grpc.go -package=grpcmocks

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	CheckoutService_Checkout_FullMethodName = "/checkout.v1.CheckoutService/Checkout"
	CheckoutService_GetOrder_FullMethodName = "/checkout.v1.CheckoutService/GetOrder"
)

type CheckoutServiceClient interface {
	Checkout(ctx context.Context, in *CheckoutRequest, opts ...grpc.CallOption) (*Receipt, error)
	GetOrder(ctx context.Context, in *GetOrderRequest, opts ...grpc.CallOption) (*Receipt, error)
}

type checkoutServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCheckoutServiceClient wraps cc in a client that sends every call with the JSON codec
// (grpc.CallContentSubtype(CodecName)). Calls made on cc directly must pass that option themselves.
func NewCheckoutServiceClient(cc grpc.ClientConnInterface) CheckoutServiceClient {
	return &checkoutServiceClient{cc}
}

func (c *checkoutServiceClient) Checkout(ctx context.Context, in *CheckoutRequest, opts ...grpc.CallOption) (*Receipt, error) {
	out := new(Receipt)
	if err := c.cc.Invoke(ctx, CheckoutService_Checkout_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *checkoutServiceClient) GetOrder(ctx context.Context, in *GetOrderRequest, opts ...grpc.CallOption) (*Receipt, error) {
	out := new(Receipt)
	if err := c.cc.Invoke(ctx, CheckoutService_GetOrder_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

type CheckoutServiceServer interface {
	Checkout(context.Context, *CheckoutRequest) (*Receipt, error)
	GetOrder(context.Context, *GetOrderRequest) (*Receipt, error)
}

// UnimplementedCheckoutServiceServer must be embedded to have forward compatible implementations.
type UnimplementedCheckoutServiceServer struct{}

func (UnimplementedCheckoutServiceServer) Checkout(context.Context, *CheckoutRequest) (*Receipt, error) {
	return nil, status.Error(codes.Unimplemented, "method Checkout not implemented")
}

func (UnimplementedCheckoutServiceServer) GetOrder(context.Context, *GetOrderRequest) (*Receipt, error) {
	return nil, status.Error(codes.Unimplemented, "method GetOrder not implemented")
}

func RegisterCheckoutServiceServer(s grpc.ServiceRegistrar, srv CheckoutServiceServer) {
	s.RegisterService(&CheckoutService_ServiceDesc, srv)
}

func _CheckoutService_Checkout_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CheckoutRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CheckoutServiceServer).Checkout(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CheckoutService_Checkout_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CheckoutServiceServer).Checkout(ctx, req.(*CheckoutRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CheckoutService_GetOrder_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetOrderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CheckoutServiceServer).GetOrder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CheckoutService_GetOrder_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CheckoutServiceServer).GetOrder(ctx, req.(*GetOrderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var CheckoutService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "checkout.v1.CheckoutService",
	HandlerType: (*CheckoutServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Checkout",
			Handler:    _CheckoutService_Checkout_Handler,
		},
		{
			MethodName: "GetOrder",
			Handler:    _CheckoutService_GetOrder_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "checkout/v1/checkout",
}
