package grpc

import (
	"context"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	pb "github.com/dmitrijs2005/sessionkeeper/internal/proto"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// protectedMethods require a valid session token in request metadata.
// Authenticate and RefreshToken stay open: one establishes the session,
// the other is validated against login_history instead.
var protectedMethods = map[string]bool{
	pb.AuthService_Signout_FullMethodName:             true,
	pb.AuthService_UpdateFcmToken_FullMethodName:      true,
	pb.UserService_GetUserLoginInfo_FullMethodName:    true,
	pb.UserService_GetUserDetails_FullMethodName:      true,
	pb.UserService_GetAllUsers_FullMethodName:         true,
	pb.UserService_GetUserLoginHistory_FullMethodName: true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if protectedMethods[info.FullMethod] {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		claims, err := auth.ParseSessionToken(accessToken, s.jwtSecret)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		ctx = context.WithValue(ctx, userIDKey, claims.UserID)
	}

	return handler(ctx, req)
}

// UserIDFromContext returns the user id the interceptor extracted from the
// session token, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}
