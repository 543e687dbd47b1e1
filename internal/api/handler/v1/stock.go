package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fututaiwan/stock-portfolio-api/internal/api/handler/v1/request"
	"github.com/fututaiwan/stock-portfolio-api/internal/api/handler/v1/response"
	"github.com/fututaiwan/stock-portfolio-api/internal/domain"
	"github.com/fututaiwan/stock-portfolio-api/internal/service"
)

type StockService interface {
	GetAllStocks(ctx context.Context) ([]domain.Stock, error)
	GetStock(ctx context.Context, id uint) (domain.Stock, error)
	GetStockByCode(ctx context.Context, code string) (domain.Stock, error)
	CreateStock(ctx context.Context, stock domain.Stock) (domain.Stock, error)
	UpdateStock(ctx context.Context, id uint, patch domain.Stock) (domain.Stock, error)
	DeleteStock(ctx context.Context, id uint) error
}

type StockHandler struct {
	svc StockService
}

func NewStockHandler(svc StockService) *StockHandler {
	return &StockHandler{
		svc: svc,
	}
}

// HandleListStocks godoc
// @Summary      List all stocks
// @Tags         stocks
// @Produce      json
// @Success      200  {array}   domain.Stock
// @Failure      500  {object}  response.Err
// @Router       /stocks [get]
func (h *StockHandler) HandleListStocks(ctx *gin.Context) {
	stocks, err := h.svc.GetAllStocks(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListStocks -> h.svc.GetAllStocks -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stocks)
}

// HandleGetStock godoc
// @Summary      Get a stock by ID
// @Tags         stocks
// @Produce      json
// @Param        stockID  path      int  true  "stock ID"
// @Success      200      {object}  domain.Stock
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stocks/{stockID} [get]
func (h *StockHandler) HandleGetStock(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "stockID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	stock, err := h.svc.GetStock(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStockNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stock", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetStock -> h.svc.GetStock -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stock)
}

// HandleCreateStock godoc
// @Summary      Create a new stock
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateStockRequest  true  "request body"
// @Success      201      {object}  domain.Stock
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stocks [post]
func (h *StockHandler) HandleCreateStock(ctx *gin.Context) {
	var req request.CreateStockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	stock, err := h.svc.CreateStock(ctx.Request.Context(), domain.Stock{
		Code:     req.Code,
		Name:     req.Name,
		Industry: req.Industry,
	})
	if err != nil {
		if errors.Is(err, service.ErrStockCodeExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrStockCodeExists))
			return
		}

		err = fmt.Errorf("v1.HandleCreateStock -> h.svc.CreateStock -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, stock)
}

// HandleUpdateStock godoc
// @Summary      Update a stock
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        stockID  path      int                         true  "stock ID"
// @Param        request  body      request.UpdateStockRequest  true  "request body"
// @Success      200      {object}  domain.Stock
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stocks/{stockID} [put]
func (h *StockHandler) HandleUpdateStock(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "stockID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateStockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	stock, err := h.svc.UpdateStock(ctx.Request.Context(), id, domain.Stock{
		Code:     req.Code,
		Name:     req.Name,
		Industry: req.Industry,
	})
	if err != nil {
		if errors.Is(err, service.ErrStockNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stock", "ID", id))
			return
		}
		if errors.Is(err, service.ErrStockCodeExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrStockCodeExists))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateStock -> h.svc.UpdateStock -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stock)
}

// HandleDeleteStock godoc
// @Summary      Delete a stock
// @Tags         stocks
// @Param        stockID  path  int  true  "stock ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /stocks/{stockID} [delete]
func (h *StockHandler) HandleDeleteStock(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "stockID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteStock(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrStockNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stock", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteStock -> h.svc.DeleteStock -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleSearchStockByCode godoc
// @Summary      Find a stock by code
// @Tags         stocks
// @Produce      json
// @Param        code  query     string  true  "stock code"
// @Success      200   {object}  domain.Stock
// @Failure      400   {object}  response.Err
// @Failure      404   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /stocks/search/code [get]
func (h *StockHandler) HandleSearchStockByCode(ctx *gin.Context) {
	var req request.SearchStockByCodeRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	stock, err := h.svc.GetStockByCode(ctx.Request.Context(), req.Code)
	if err != nil {
		if errors.Is(err, service.ErrStockNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stock", "code", req.Code))
			return
		}

		err = fmt.Errorf("v1.HandleSearchStockByCode -> h.svc.GetStockByCode -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stock)
}
