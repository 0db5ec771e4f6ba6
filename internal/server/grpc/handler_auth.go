package grpc

import (
	"context"
	"time"

	pb "github.com/dmitrijs2005/sessionkeeper/internal/proto"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/services"
)

func (s *GRPCServer) Authenticate(ctx context.Context, req *pb.AuthenticateRequest) (*pb.AuthenticateResponse, error) {

	s.logger.Info(ctx, "Authentication request")

	result, err := s.auth.Authenticate(ctx, req.Token, req.ClientMetaData, req.PublicKey, req.FcmToken)
	if err != nil {
		s.logger.Error(ctx, "authentication failed", "error", err)
		return nil, mapError(err)
	}

	method := pb.AuthType_SIGNUP
	if result.AuthType == services.AuthTypeLogin {
		method = pb.AuthType_LOGIN
	}

	s.logger.Info(ctx, "Authenticated", "method", result.AuthType, "userId", result.User.ID)

	return &pb.AuthenticateResponse{
		ResponseStatus: pb.ResponseStatus_SUCCESS,
		Method:         method,
		User: &pb.UserInfo{
			Token:     result.Token,
			PublicKey: result.PublicKey,
			Name:      result.User.Name,
			Email:     result.User.Email,
			PhotoUrl:  result.User.PhotoURL,
			UserId:    result.User.ID,
		},
		LoginInfo: &pb.LoginInfo{
			LoginId:       result.LoginID,
			LoginMetaData: result.MetaData,
			UserId:        result.User.ID,
			IsValid:       true,
			CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	token, err := s.auth.RefreshToken(ctx, req.UserId, req.LoginId, req.ClientMetaData)
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.RefreshTokenResponse{
		ResponseStatus: pb.ResponseStatus_SUCCESS,
		Token:          token,
	}, nil
}

func (s *GRPCServer) Signout(ctx context.Context, req *pb.SignoutRequest) (*pb.SignoutResponse, error) {

	if err := s.auth.Signout(ctx, req.UserId, req.LoginId); err != nil {
		return nil, mapError(err)
	}

	s.logger.Info(ctx, "Signed out", "loginId", req.LoginId)

	return &pb.SignoutResponse{ResponseStatus: pb.ResponseStatus_SUCCESS}, nil
}

func (s *GRPCServer) UpdateFcmToken(ctx context.Context, req *pb.UpdateFcmTokenRequest) (*pb.UpdateFcmTokenResponse, error) {

	if err := s.auth.UpdateFcmToken(ctx, req.UserId, req.FcmToken); err != nil {
		return nil, mapError(err)
	}

	return &pb.UpdateFcmTokenResponse{ResponseStatus: pb.ResponseStatus_SUCCESS}, nil
}
