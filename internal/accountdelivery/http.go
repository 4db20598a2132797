// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

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

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	Create(ctx context.Context, customerID int64, initialDeposit decimal.Decimal) (domain.AccountInfo, error)
	List(ctx context.Context) ([]domain.AccountInfo, error)
	GetBalance(ctx context.Context, accountID string) (domain.Balance, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) Handler {
	return Handler{service: as}
}

type createRequest struct {
	CustomerID     *int64           `json:"customer_id" binding:"required"`
	InitialDeposit *decimal.Decimal `json:"initial_deposit" binding:"required,money,gte=0"`
}

// Create handles http request to create account.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusUnprocessableEntity, web.Detail(web.BindErrorMsg(err)))

		return
	}

	createdAccount, err := h.service.Create(ctx, *req.CustomerID, moneypkg.Normalize(*req.InitialDeposit))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCustomerNotFound),
			errors.Is(err, domain.ErrNegativeDeposit):
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, createdAccount)
}

// List handles http request to list all accounts.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	accounts, err := h.service.List(ctx)
	if err != nil {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	if accounts == nil {
		accounts = []domain.AccountInfo{}
	}

	gctx.JSON(http.StatusOK, accounts)
}

type accountURI struct {
	AccountID string `uri:"account_id" binding:"required"`
}

// GetBalance handles http request to get account balance.
func (h *Handler) GetBalance(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req accountURI
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusUnprocessableEntity, web.Detail(web.BindErrorMsg(err)))

		return
	}

	balance, err := h.service.GetBalance(ctx, req.AccountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, balance)
}
