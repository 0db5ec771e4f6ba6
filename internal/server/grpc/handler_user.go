package grpc

import (
	"context"
	"time"

	pb "github.com/dmitrijs2005/sessionkeeper/internal/proto"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/services"
)

func toPbLoginInfo(info *services.LoginInfo) *pb.LoginInfo {
	return &pb.LoginInfo{
		LoginId:       info.LoginID,
		LoginMetaData: info.MetaData,
		UserId:        info.UserID,
		IsValid:       info.IsValid,
		CreatedAt:     info.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toPbUserDetails(u *models.User) *pb.UserDetails {
	return &pb.UserDetails{
		UserId:      u.ID,
		Name:        u.Name,
		Email:       u.Email,
		PhotoUrl:    u.PhotoURL,
		Description: u.Description,
		CreatedAt:   u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (s *GRPCServer) GetUserLoginInfo(ctx context.Context, req *pb.UserLoginInfoRequest) (*pb.UserLoginInfoResponse, error) {

	info, err := s.users.GetUserLoginInfo(ctx, req.UserId, req.LoginId)
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.UserLoginInfoResponse{
		ResponseStatus: pb.ResponseStatus_SUCCESS,
		UserLoginInfo:  toPbLoginInfo(info),
	}, nil
}

func (s *GRPCServer) GetUserDetails(ctx context.Context, req *pb.UserDetailsRequest) (*pb.UserDetailsResponse, error) {

	user, err := s.users.GetUserDetails(ctx, req.UserId)
	if err != nil {
		return nil, mapError(err)
	}

	return &pb.UserDetailsResponse{
		ResponseStatus: pb.ResponseStatus_SUCCESS,
		User:           toPbUserDetails(user),
	}, nil
}

func (s *GRPCServer) GetAllUsers(ctx context.Context, req *pb.AllUsersRequest) (*pb.AllUsersResponse, error) {

	users, err := s.users.GetAllUsers(ctx, req.ExcludeUserId)
	if err != nil {
		return nil, mapError(err)
	}

	result := make([]*pb.UserDetails, 0, len(users))
	for _, u := range users {
		result = append(result, toPbUserDetails(u))
	}

	return &pb.AllUsersResponse{
		ResponseStatus: pb.ResponseStatus_SUCCESS,
		Users:          result,
	}, nil
}

func (s *GRPCServer) GetUserLoginHistory(ctx context.Context, req *pb.UserLoginHistoryRequest) (*pb.UserLoginHistoryResponse, error) {

	logins, err := s.users.GetUserLoginHistory(ctx, req.UserId)
	if err != nil {
		return nil, mapError(err)
	}

	result := make([]*pb.LoginInfo, 0, len(logins))
	for _, info := range logins {
		result = append(result, toPbLoginInfo(info))
	}

	return &pb.UserLoginHistoryResponse{
		ResponseStatus: pb.ResponseStatus_SUCCESS,
		Logins:         result,
	}, nil
}
