package handler

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rl1809/seckill/internal/adapter/handler/pb"
	"github.com/rl1809/seckill/internal/core/domain"
	"github.com/rl1809/seckill/internal/core/service"
)

type GRPCHandler struct {
	pb.UnimplementedSeckillServiceServer
	tokens   *service.TokenService
	purchase *service.PurchaseService
	logger   *zap.Logger
}

func NewGRPCHandler(tokens *service.TokenService, purchase *service.PurchaseService, logger *zap.Logger) *GRPCHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GRPCHandler{tokens: tokens, purchase: purchase, logger: logger}
}

func (h *GRPCHandler) IssueToken(ctx context.Context, req *pb.IssueTokenRequest) (*pb.IssueTokenResponse, error) {
	token, err := h.tokens.IssueToken(ctx, req.GetItemId())
	if err != nil {
		var windowErr *domain.WindowError
		if errors.As(err, &windowErr) {
			return &pb.IssueTokenResponse{
				Exposed:   false,
				Reason:    string(windowErr.Reason),
				NowUnix:   windowErr.Now.Unix(),
				StartUnix: windowErr.StartTime.Unix(),
				EndUnix:   windowErr.EndTime.Unix(),
			}, nil
		}
		if errors.Is(err, domain.ErrItemNotFound) {
			return &pb.IssueTokenResponse{
				Exposed: false,
				Reason:  "ITEM_NOT_FOUND",
			}, nil
		}
		h.logger.Error("issue token failed", zap.String("item_id", req.GetItemId()), zap.Error(err))
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.IssueTokenResponse{
		Exposed: true,
		Token:   token.Value,
	}, nil
}

func (h *GRPCHandler) ExecutePurchase(ctx context.Context, req *pb.ExecutePurchaseRequest) (*pb.ExecutePurchaseResponse, error) {
	execution := h.purchase.Execute(ctx, req.GetItemId(), req.GetBuyerId(), req.GetToken())

	resp := &pb.ExecutePurchaseResponse{
		State:   string(execution.State),
		Message: messageForState(execution.State),
		ItemId:  execution.ItemID,
	}
	if execution.Record != nil {
		resp.BuyerId = execution.Record.BuyerID
		resp.PurchasedAtUnix = execution.Record.PurchasedAt.Unix()
	}

	return resp, nil
}
