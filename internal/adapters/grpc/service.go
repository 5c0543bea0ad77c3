// internal/adapters/grpc/service.go
package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/mahabubulhasibshawon/grpc-kiosk-cart/internal/domain"
)

const ServiceName = "kiosk.KioskService"

type Empty struct{}

type OpenTerminalResponse struct {
	TerminalID  string `json:"terminal_id"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Message     string `json:"message"`
	Type        string `json:"type"`
	Code        int32  `json:"code"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AddToCartRequest struct {
	Item  string  `json:"item"`
	Price float64 `json:"price"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

type Response struct {
	Message        string                `json:"message"`
	Type           string                `json:"type"`
	Code           int32                 `json:"code"`
	Cart           *domain.RenderedCart  `json:"cart,omitempty"`
	Contact        *domain.DisplayEntry  `json:"contact,omitempty"`
	Messages       []domain.DisplayEntry `json:"messages,omitempty"`
	ResetOrderForm bool                  `json:"reset_order_form,omitempty"`
}

type KioskServiceServer interface {
	OpenTerminal(context.Context, *Empty) (*OpenTerminalResponse, error)
	Login(context.Context, *CredentialsRequest) (*Response, error)
	Register(context.Context, *CredentialsRequest) (*Response, error)
	AddToCart(context.Context, *AddToCartRequest) (*Response, error)
	Render(context.Context, *Empty) (*Response, error)
	PlaceOrder(context.Context, *Empty) (*Response, error)
	SubmitContact(context.Context, *ContactRequest) (*Response, error)
	ListMessages(context.Context, *Empty) (*Response, error)
	CloseTerminal(context.Context, *Empty) (*Response, error)
}

func fullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

func unaryMethod[Req, Resp any](name string, call func(KioskServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(KioskServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(name)}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(KioskServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var KioskServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*KioskServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("OpenTerminal", KioskServiceServer.OpenTerminal),
		unaryMethod("Login", KioskServiceServer.Login),
		unaryMethod("Register", KioskServiceServer.Register),
		unaryMethod("AddToCart", KioskServiceServer.AddToCart),
		unaryMethod("Render", KioskServiceServer.Render),
		unaryMethod("PlaceOrder", KioskServiceServer.PlaceOrder),
		unaryMethod("SubmitContact", KioskServiceServer.SubmitContact),
		unaryMethod("ListMessages", KioskServiceServer.ListMessages),
		unaryMethod("CloseTerminal", KioskServiceServer.CloseTerminal),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "kiosk",
}

func RegisterKioskServiceServer(s grpc.ServiceRegistrar, srv KioskServiceServer) {
	s.RegisterService(&KioskServiceDesc, srv)
}

// KioskClient calls the service with the JSON codec.
type KioskClient struct {
	cc grpc.ClientConnInterface
}

func NewKioskClient(cc grpc.ClientConnInterface) *KioskClient {
	return &KioskClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, name string, in interface{}, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	if err := cc.Invoke(ctx, fullMethod(name), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *KioskClient) OpenTerminal(ctx context.Context, opts ...grpc.CallOption) (*OpenTerminalResponse, error) {
	return invoke[OpenTerminalResponse](ctx, c.cc, "OpenTerminal", &Empty{}, opts)
}

func (c *KioskClient) Login(ctx context.Context, in *CredentialsRequest, opts ...grpc.CallOption) (*Response, error) {
	return invoke[Response](ctx, c.cc, "Login", in, opts)
}

func (c *KioskClient) Register(ctx context.Context, in *CredentialsRequest, opts ...grpc.CallOption) (*Response, error) {
	return invoke[Response](ctx, c.cc, "Register", in, opts)
}

func (c *KioskClient) AddToCart(ctx context.Context, in *AddToCartRequest, opts ...grpc.CallOption) (*Response, error) {
	return invoke[Response](ctx, c.cc, "AddToCart", in, opts)
}

func (c *KioskClient) Render(ctx context.Context, opts ...grpc.CallOption) (*Response, error) {
	return invoke[Response](ctx, c.cc, "Render", &Empty{}, opts)
}

func (c *KioskClient) PlaceOrder(ctx context.Context, opts ...grpc.CallOption) (*Response, error) {
	return invoke[Response](ctx, c.cc, "PlaceOrder", &Empty{}, opts)
}

func (c *KioskClient) SubmitContact(ctx context.Context, in *ContactRequest, opts ...grpc.CallOption) (*Response, error) {
	return invoke[Response](ctx, c.cc, "SubmitContact", in, opts)
}

func (c *KioskClient) ListMessages(ctx context.Context, opts ...grpc.CallOption) (*Response, error) {
	return invoke[Response](ctx, c.cc, "ListMessages", &Empty{}, opts)
}

func (c *KioskClient) CloseTerminal(ctx context.Context, opts ...grpc.CallOption) (*Response, error) {
	return invoke[Response](ctx, c.cc, "CloseTerminal", &Empty{}, opts)
}
