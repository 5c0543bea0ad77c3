// internal/adapters/grpc/server.go
package grpc

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/mahabubulhasibshawon/grpc-kiosk-cart/internal/application"
	"github.com/mahabubulhasibshawon/grpc-kiosk-cart/internal/domain"
	"github.com/mahabubulhasibshawon/grpc-kiosk-cart/pkg/auth"
)

type terminalKey struct{}

type Server struct {
	terminals *application.TerminalService
	issuer    *auth.TokenIssuer
	logger    *zap.Logger
}

func NewServer(terminals *application.TerminalService, issuer *auth.TokenIssuer, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{terminals: terminals, issuer: issuer, logger: logger}
}

// NewGRPCServer returns a grpc.Server with the kiosk service and the
// terminal interceptor installed.
func (s *Server) NewGRPCServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.UnaryInterceptor(s.AuthInterceptor))
	grpcServer := grpc.NewServer(opts...)
	RegisterKioskServiceServer(grpcServer, s)
	return grpcServer
}

func (s *Server) OpenTerminal(ctx context.Context, _ *Empty) (*OpenTerminalResponse, error) {
	id, err := s.terminals.Open(ctx)
	if errors.Is(err, application.ErrTooManyTerminals) {
		return &OpenTerminalResponse{Message: err.Error(), Type: "error", Code: 503}, nil
	}
	if err != nil {
		return &OpenTerminalResponse{Message: err.Error(), Type: "error", Code: 500}, nil
	}
	token, err := s.issuer.GenerateToken(id)
	if err != nil {
		_ = s.terminals.Close(ctx, id)
		return &OpenTerminalResponse{Message: err.Error(), Type: "error", Code: 500}, nil
	}
	return &OpenTerminalResponse{
		TerminalID:  id,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.issuer.TTL().Seconds()),
		Message:     "Terminal opened",
		Type:        "success",
		Code:        200,
	}, nil
}

func (s *Server) Login(ctx context.Context, req *CredentialsRequest) (*Response, error) {
	return s.dispatch(ctx, application.LoginSubmitted{Username: req.Username, Password: req.Password})
}

func (s *Server) Register(ctx context.Context, req *CredentialsRequest) (*Response, error) {
	return s.dispatch(ctx, application.RegisterClicked{Username: req.Username, Password: req.Password})
}

func (s *Server) AddToCart(ctx context.Context, req *AddToCartRequest) (*Response, error) {
	return s.dispatch(ctx, application.AddToCartClicked{Item: req.Item, Price: req.Price})
}

func (s *Server) Render(ctx context.Context, _ *Empty) (*Response, error) {
	return s.dispatch(ctx, application.RenderRequested{})
}

func (s *Server) PlaceOrder(ctx context.Context, _ *Empty) (*Response, error) {
	return s.dispatch(ctx, application.OrderSubmitted{})
}

func (s *Server) SubmitContact(ctx context.Context, req *ContactRequest) (*Response, error) {
	return s.dispatch(ctx, application.ContactSubmitted{Name: req.Name, Message: req.Message})
}

func (s *Server) ListMessages(ctx context.Context, _ *Empty) (*Response, error) {
	id, err := s.terminalID(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "Unauthorized")
	}
	msgs, err := s.terminals.Messages(ctx, id)
	if err != nil {
		return errorResponse(err)
	}
	return &Response{Message: "Messages fetched", Type: "success", Code: 200, Messages: msgs}, nil
}

func (s *Server) CloseTerminal(ctx context.Context, _ *Empty) (*Response, error) {
	id, err := s.terminalID(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "Unauthorized")
	}
	if err := s.terminals.Close(ctx, id); err != nil {
		return errorResponse(err)
	}
	return &Response{Message: "Terminal closed", Type: "success", Code: 200}, nil
}

func (s *Server) dispatch(ctx context.Context, ev application.Event) (*Response, error) {
	id, err := s.terminalID(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "Unauthorized")
	}
	res, err := s.terminals.Dispatch(ctx, id, ev)
	if err != nil {
		return errorResponse(err)
	}
	return &Response{
		Message:        res.Message,
		Type:           "success",
		Code:           200,
		Cart:           res.Cart,
		Contact:        res.Contact,
		ResetOrderForm: res.ResetOrderForm,
	}, nil
}

// errorResponse turns user-correctable failures into error envelopes;
// anything else is an internal gRPC error.
func errorResponse(err error) (*Response, error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return &Response{Message: "Invalid credentials", Type: "error", Code: 400}, nil
	case errors.Is(err, domain.ErrNotLoggedIn):
		return &Response{Message: "You must log in before adding items!", Type: "error", Code: 401}, nil
	case errors.Is(err, domain.ErrEmptyCart):
		return &Response{Message: "Your cart is empty!", Type: "error", Code: 422}, nil
	case errors.Is(err, application.ErrTerminalNotFound):
		return &Response{Message: err.Error(), Type: "error", Code: 404}, nil
	default:
		return nil, status.Error(codes.Internal, err.Error())
	}
}

func (s *Server) AuthInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	defer func() {
		s.logger.Debug("rpc", zap.String("method", info.FullMethod), zap.Duration("took", time.Since(start)))
	}()

	if info.FullMethod == fullMethod("OpenTerminal") {
		return handler(ctx, req)
	}
	claims, err := s.claimsFromMetadata(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}
	ctx = context.WithValue(ctx, terminalKey{}, claims.TerminalID)
	return handler(ctx, req)
}

func (s *Server) terminalID(ctx context.Context) (string, error) {
	if id, ok := ctx.Value(terminalKey{}).(string); ok {
		return id, nil
	}
	claims, err := s.claimsFromMetadata(ctx)
	if err != nil {
		return "", err
	}
	return claims.TerminalID, nil
}

func (s *Server) claimsFromMetadata(ctx context.Context) (*auth.Claims, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, errors.New("missing metadata")
	}
	authHeader := md.Get("authorization")
	if len(authHeader) == 0 {
		return nil, errors.New("missing authorization")
	}
	token := strings.TrimPrefix(authHeader[0], "Bearer ")
	claims, err := s.issuer.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
