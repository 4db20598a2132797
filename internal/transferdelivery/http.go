// Package transferdelivery manages delivery layer of transfers.
package transferdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/mem-bank/internal/domain"
	"github.com/go-petr/mem-bank/pkg/errorspkg"
	"github.com/go-petr/mem-bank/pkg/moneypkg"
	"github.com/go-petr/mem-bank/pkg/web"
)

// Service provides service layer interface needed by transfer delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transferdelivery
type Service interface {
	Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.Transfer, error)
	ListByAccount(ctx context.Context, accountID string) ([]domain.Transfer, error)
}

// Handler facilitates transfer delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transfer handler.
func NewHandler(ts Service) *Handler {
	return &Handler{
		service: ts,
	}
}

// Amount is only checked for size here: a non-positive amount is a business
// rule violation reported after both accounts are resolved.
type request struct {
	FromAccountID string           `json:"from_account_id" binding:"required"`
	ToAccountID   string           `json:"to_account_id" binding:"required"`
	Amount        *decimal.Decimal `json:"amount" binding:"required,money"`
}

// Create handles http request to create a transfer between two accounts.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req request
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusUnprocessableEntity, web.Detail(web.BindErrorMsg(err)))

		return
	}

	arg := domain.CreateTransferParams{
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Amount:        moneypkg.Normalize(*req.Amount),
	}

	result, err := h.service.Transfer(ctx, arg)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case errors.Is(err, domain.ErrInvalidAmount),
			errors.Is(err, domain.ErrInsufficientFunds),
			errors.Is(err, domain.ErrSameAccount):
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, result)
}

type accountURI struct {
	AccountID string `uri:"account_id" binding:"required"`
}

// ListByAccount handles http request to get the transfer history of an account.
func (h *Handler) ListByAccount(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req accountURI
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusUnprocessableEntity, web.Detail(web.BindErrorMsg(err)))

		return
	}

	transfers, err := h.service.ListByAccount(ctx, req.AccountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	if transfers == nil {
		transfers = []domain.Transfer{}
	}

	gctx.JSON(http.StatusOK, transfers)
}
