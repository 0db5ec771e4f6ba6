package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	pb "github.com/dmitrijs2005/sessionkeeper/internal/proto"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func passThroughHandler(called *bool, capturedCtx *context.Context) grpc.UnaryHandler {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		*called = true
		if capturedCtx != nil {
			*capturedCtx = ctx
		}
		return "ok", nil
	}
}

func TestInterceptor_OpenMethodPassesWithoutToken(t *testing.T) {
	s := newTestServer(t, nil, nil)

	called := false
	_, err := s.accessTokenInterceptor(context.Background(), nil,
		&grpc.UnaryServerInfo{FullMethod: pb.AuthService_Authenticate_FullMethodName},
		passThroughHandler(&called, nil))
	if err != nil {
		t.Fatalf("interceptor error: %v", err)
	}
	if !called {
		t.Fatal("handler not called")
	}
}

func TestInterceptor_ProtectedMethodMissingToken(t *testing.T) {
	s := newTestServer(t, nil, nil)

	called := false
	_, err := s.accessTokenInterceptor(context.Background(), nil,
		&grpc.UnaryServerInfo{FullMethod: pb.AuthService_Signout_FullMethodName},
		passThroughHandler(&called, nil))
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", err)
	}
	if called {
		t.Fatal("handler must not run without a token")
	}
}

func TestInterceptor_ProtectedMethodBadToken(t *testing.T) {
	s := newTestServer(t, nil, nil)

	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs(common.AccessTokenHeaderName, "garbage"))

	called := false
	_, err := s.accessTokenInterceptor(ctx, nil,
		&grpc.UnaryServerInfo{FullMethod: pb.UserService_GetUserDetails_FullMethodName},
		passThroughHandler(&called, nil))
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", err)
	}
	if called {
		t.Fatal("handler must not run with a bad token")
	}
}

func TestInterceptor_ProtectedMethodValidToken(t *testing.T) {
	s := newTestServer(t, nil, nil)

	token, err := auth.GenerateSessionToken("u-1", "l-1", auth.TokenTypeInitial, []byte("test-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateSessionToken error: %v", err)
	}
	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs(common.AccessTokenHeaderName, token))

	called := false
	var handlerCtx context.Context
	_, err = s.accessTokenInterceptor(ctx, nil,
		&grpc.UnaryServerInfo{FullMethod: pb.AuthService_Signout_FullMethodName},
		passThroughHandler(&called, &handlerCtx))
	if err != nil {
		t.Fatalf("interceptor error: %v", err)
	}
	if !called {
		t.Fatal("handler not called")
	}

	userID, ok := UserIDFromContext(handlerCtx)
	if !ok || userID != "u-1" {
		t.Fatalf("user id not injected: %q %v", userID, ok)
	}
}

func TestInterceptor_WrongSecret(t *testing.T) {
	s := newTestServer(t, nil, nil)

	token, err := auth.GenerateSessionToken("u-1", "l-1", auth.TokenTypeInitial, []byte("other-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateSessionToken error: %v", err)
	}
	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs(common.AccessTokenHeaderName, token))

	called := false
	_, err = s.accessTokenInterceptor(ctx, nil,
		&grpc.UnaryServerInfo{FullMethod: pb.AuthService_UpdateFcmToken_FullMethodName},
		passThroughHandler(&called, nil))
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", err)
	}
}
