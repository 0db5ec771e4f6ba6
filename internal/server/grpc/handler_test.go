package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
	pb "github.com/dmitrijs2005/sessionkeeper/internal/proto"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (l nopLogger) With(...any) logging.Logger          { return l }

type fakeAuthProvider struct {
	authOut *services.AuthResult
	authErr error

	refreshOut string
	refreshErr error

	signoutErr error

	fcmErr error
}

func (f *fakeAuthProvider) Authenticate(ctx context.Context, identityToken, metaData, publicKey, fcmToken string) (*services.AuthResult, error) {
	if f.authErr != nil {
		return nil, f.authErr
	}
	return f.authOut, nil
}

func (f *fakeAuthProvider) RefreshToken(ctx context.Context, userID, loginID, metaData string) (string, error) {
	if f.refreshErr != nil {
		return "", f.refreshErr
	}
	return f.refreshOut, nil
}

func (f *fakeAuthProvider) Signout(ctx context.Context, userID, loginID string) error {
	return f.signoutErr
}

func (f *fakeAuthProvider) UpdateFcmToken(ctx context.Context, userID, fcmToken string) error {
	return f.fcmErr
}

type fakeUserProvider struct {
	infoOut *services.LoginInfo
	infoErr error

	detailsOut *models.User
	detailsErr error

	allOut []*models.User
	allErr error

	historyOut []*services.LoginInfo
	historyErr error
}

func (f *fakeUserProvider) GetUserLoginInfo(ctx context.Context, userID, loginID string) (*services.LoginInfo, error) {
	if f.infoErr != nil {
		return nil, f.infoErr
	}
	return f.infoOut, nil
}

func (f *fakeUserProvider) GetUserDetails(ctx context.Context, userID string) (*models.User, error) {
	if f.detailsErr != nil {
		return nil, f.detailsErr
	}
	return f.detailsOut, nil
}

func (f *fakeUserProvider) GetAllUsers(ctx context.Context, excludeUserID string) ([]*models.User, error) {
	if f.allErr != nil {
		return nil, f.allErr
	}
	return f.allOut, nil
}

func (f *fakeUserProvider) GetUserLoginHistory(ctx context.Context, userID string) ([]*services.LoginInfo, error) {
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	return f.historyOut, nil
}

func newTestServer(t *testing.T, ap AuthProvider, up UserProvider) *GRPCServer {
	t.Helper()
	s, err := NewGRPCServer(":0", nopLogger{}, ap, up, "test-secret")
	if err != nil {
		t.Fatalf("NewGRPCServer error: %v", err)
	}
	return s
}

func wantCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("not a status error: %v", err)
	}
	if st.Code() != code {
		t.Fatalf("want code %v, got %v (%v)", code, st.Code(), err)
	}
}

func TestAuthenticate_LoginResponse(t *testing.T) {
	ap := &fakeAuthProvider{authOut: &services.AuthResult{
		Token:     "jwt-1",
		AuthType:  services.AuthTypeLogin,
		User:      &models.User{ID: "u-1", Name: "Alice", Email: "alice@example.com", PhotoURL: "https://p/1.png"},
		LoginID:   "l-1",
		MetaData:  `{"device":"pixel"}`,
		PublicKey: "pk-stored",
	}}
	s := newTestServer(t, ap, nil)

	resp, err := s.Authenticate(context.Background(), &pb.AuthenticateRequest{
		Token: "id-token", PublicKey: "pk", FcmToken: "fcm",
	})
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if resp.ResponseStatus != pb.ResponseStatus_SUCCESS {
		t.Fatalf("unexpected status %v", resp.ResponseStatus)
	}
	if resp.Method != pb.AuthType_LOGIN {
		t.Fatalf("want LOGIN, got %v", resp.Method)
	}
	if resp.User.Token != "jwt-1" || resp.User.PublicKey != "pk-stored" {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
	if resp.LoginInfo.LoginId != "l-1" || resp.LoginInfo.LoginMetaData != `{"device":"pixel"}` || !resp.LoginInfo.IsValid {
		t.Fatalf("unexpected login info: %+v", resp.LoginInfo)
	}
}

func TestAuthenticate_SignupResponse(t *testing.T) {
	ap := &fakeAuthProvider{authOut: &services.AuthResult{
		Token:    "jwt-2",
		AuthType: services.AuthTypeSignup,
		User:     &models.User{ID: "u-2", Name: "Bob"},
		LoginID:  "l-2",
	}}
	s := newTestServer(t, ap, nil)

	resp, err := s.Authenticate(context.Background(), &pb.AuthenticateRequest{
		Token: "id-token", PublicKey: "pk", FcmToken: "fcm",
	})
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if resp.Method != pb.AuthType_SIGNUP {
		t.Fatalf("want SIGNUP, got %v", resp.Method)
	}
	if resp.User.PublicKey != "" {
		t.Fatalf("signup must not echo a public key: %+v", resp.User)
	}
}

func TestAuthenticate_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"invalid argument", common.ErrorInvalidArgument, codes.InvalidArgument},
		{"conflict", common.ErrorConflict, codes.AlreadyExists},
		{"not found", common.ErrorNotFound, codes.NotFound},
		{"internal", common.ErrorInternal, codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, &fakeAuthProvider{authErr: tt.err}, nil)
			_, err := s.Authenticate(context.Background(), &pb.AuthenticateRequest{Token: "x"})
			wantCode(t, err, tt.code)
		})
	}
}

func TestRefreshToken_Success(t *testing.T) {
	s := newTestServer(t, &fakeAuthProvider{refreshOut: "jwt-refresh"}, nil)

	resp, err := s.RefreshToken(context.Background(), &pb.RefreshTokenRequest{
		UserId: "u-1", LoginId: "l-1",
	})
	if err != nil {
		t.Fatalf("RefreshToken error: %v", err)
	}
	if resp.Token != "jwt-refresh" || resp.ResponseStatus != pb.ResponseStatus_SUCCESS {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestRefreshToken_InvalidSession(t *testing.T) {
	s := newTestServer(t, &fakeAuthProvider{refreshErr: common.ErrInvalidSession}, nil)

	_, err := s.RefreshToken(context.Background(), &pb.RefreshTokenRequest{UserId: "u-1", LoginId: "l-1"})
	wantCode(t, err, codes.InvalidArgument)
}

func TestSignout_Responses(t *testing.T) {
	s := newTestServer(t, &fakeAuthProvider{}, nil)
	resp, err := s.Signout(context.Background(), &pb.SignoutRequest{UserId: "u-1", LoginId: "l-1"})
	if err != nil || resp.ResponseStatus != pb.ResponseStatus_SUCCESS {
		t.Fatalf("unexpected: %+v %v", resp, err)
	}

	sNF := newTestServer(t, &fakeAuthProvider{signoutErr: common.ErrorNotFound}, nil)
	_, err = sNF.Signout(context.Background(), &pb.SignoutRequest{UserId: "u-1", LoginId: "l-1"})
	wantCode(t, err, codes.NotFound)
}

func TestUpdateFcmToken_Responses(t *testing.T) {
	s := newTestServer(t, &fakeAuthProvider{}, nil)
	resp, err := s.UpdateFcmToken(context.Background(), &pb.UpdateFcmTokenRequest{UserId: "u-1", FcmToken: "f"})
	if err != nil || resp.ResponseStatus != pb.ResponseStatus_SUCCESS {
		t.Fatalf("unexpected: %+v %v", resp, err)
	}

	sIA := newTestServer(t, &fakeAuthProvider{fcmErr: common.ErrorInvalidArgument}, nil)
	_, err = sIA.UpdateFcmToken(context.Background(), &pb.UpdateFcmTokenRequest{UserId: "u-1"})
	wantCode(t, err, codes.InvalidArgument)
}

func TestGetUserLoginInfo_Success(t *testing.T) {
	created := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	up := &fakeUserProvider{infoOut: &services.LoginInfo{
		LoginID: "l-1", UserID: "u-1", MetaData: `{"device":"pixel"}`, IsValid: true, CreatedAt: created,
	}}
	s := newTestServer(t, nil, up)

	resp, err := s.GetUserLoginInfo(context.Background(), &pb.UserLoginInfoRequest{UserId: "u-1", LoginId: "l-1"})
	if err != nil {
		t.Fatalf("GetUserLoginInfo error: %v", err)
	}
	if resp.UserLoginInfo.LoginMetaData != `{"device":"pixel"}` {
		t.Fatalf("unexpected metadata: %q", resp.UserLoginInfo.LoginMetaData)
	}
	if resp.UserLoginInfo.CreatedAt != "2026-09-01T12:00:00Z" {
		t.Fatalf("unexpected created_at: %q", resp.UserLoginInfo.CreatedAt)
	}
}

func TestGetUserLoginInfo_NotFound(t *testing.T) {
	s := newTestServer(t, nil, &fakeUserProvider{infoErr: common.ErrorNotFound})

	_, err := s.GetUserLoginInfo(context.Background(), &pb.UserLoginInfoRequest{UserId: "u-1", LoginId: "l-1"})
	wantCode(t, err, codes.NotFound)
}

func TestGetUserDetails_Success(t *testing.T) {
	up := &fakeUserProvider{detailsOut: &models.User{
		ID: "u-1", Name: "Alice", Email: "alice@example.com", Description: "hi",
	}}
	s := newTestServer(t, nil, up)

	resp, err := s.GetUserDetails(context.Background(), &pb.UserDetailsRequest{UserId: "u-1"})
	if err != nil {
		t.Fatalf("GetUserDetails error: %v", err)
	}
	if resp.User.Name != "Alice" || resp.User.Description != "hi" {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
}

func TestGetAllUsers_Success(t *testing.T) {
	up := &fakeUserProvider{allOut: []*models.User{
		{ID: "u-1", Name: "Alice"},
		{ID: "u-3", Name: "Carol"},
	}}
	s := newTestServer(t, nil, up)

	resp, err := s.GetAllUsers(context.Background(), &pb.AllUsersRequest{ExcludeUserId: "u-2"})
	if err != nil {
		t.Fatalf("GetAllUsers error: %v", err)
	}
	if len(resp.Users) != 2 || resp.Users[1].Name != "Carol" {
		t.Fatalf("unexpected users: %+v", resp.Users)
	}
}

func TestGetUserLoginHistory_Success(t *testing.T) {
	up := &fakeUserProvider{historyOut: []*services.LoginInfo{
		{LoginID: "l-2", UserID: "u-1", IsValid: true},
		{LoginID: "l-1", UserID: "u-1", IsValid: false},
	}}
	s := newTestServer(t, nil, up)

	resp, err := s.GetUserLoginHistory(context.Background(), &pb.UserLoginHistoryRequest{UserId: "u-1"})
	if err != nil {
		t.Fatalf("GetUserLoginHistory error: %v", err)
	}
	if len(resp.Logins) != 2 || resp.Logins[0].LoginId != "l-2" {
		t.Fatalf("unexpected logins: %+v", resp.Logins)
	}
}
