package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
	pb "github.com/dmitrijs2005/sessionkeeper/internal/proto"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/services"
	"google.golang.org/grpc"
)

// AuthProvider is the slice of the auth service the transport needs.
type AuthProvider interface {
	Authenticate(ctx context.Context, identityToken, metaData, publicKey, fcmToken string) (*services.AuthResult, error)
	RefreshToken(ctx context.Context, userID, loginID, metaData string) (string, error)
	Signout(ctx context.Context, userID, loginID string) error
	UpdateFcmToken(ctx context.Context, userID, fcmToken string) error
}

// UserProvider is the slice of the user query service the transport needs.
type UserProvider interface {
	GetUserLoginInfo(ctx context.Context, userID, loginID string) (*services.LoginInfo, error)
	GetUserDetails(ctx context.Context, userID string) (*models.User, error)
	GetAllUsers(ctx context.Context, excludeUserID string) ([]*models.User, error)
	GetUserLoginHistory(ctx context.Context, userID string) ([]*services.LoginInfo, error)
}

type GRPCServer struct {
	pb.UnimplementedAuthServiceServer
	pb.UnimplementedUserServiceServer
	address   string
	auth      AuthProvider
	users     UserProvider
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, as AuthProvider, us UserProvider, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		auth:      as,
		users:     us,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	// registers services
	pb.RegisterAuthServiceServer(srv, s)
	pb.RegisterUserServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
