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

type StockGroupService interface {
	GetAllStockGroups(ctx context.Context) ([]domain.StockGroup, error)
	GetStockGroup(ctx context.Context, id uint) (domain.StockGroup, error)
	GetStockGroupByName(ctx context.Context, name string) (domain.StockGroup, error)
	GetStockGroupsByMember(ctx context.Context, memberID uint) ([]domain.StockGroup, error)
	CreateStockGroup(ctx context.Context, group domain.StockGroup, memberID uint) (domain.StockGroup, error)
	UpdateStockGroup(ctx context.Context, id uint, patch domain.StockGroup) (domain.StockGroup, error)
	DeleteStockGroup(ctx context.Context, id uint) error
	AddStockToGroup(ctx context.Context, groupID, stockID uint) (domain.StockGroup, error)
	RemoveStockFromGroup(ctx context.Context, groupID, stockID uint) (domain.StockGroup, error)
}

type StockGroupHandler struct {
	svc StockGroupService
}

func NewStockGroupHandler(svc StockGroupService) *StockGroupHandler {
	return &StockGroupHandler{
		svc: svc,
	}
}

// HandleListStockGroups godoc
// @Summary      List all stock groups
// @Tags         stock-groups
// @Produce      json
// @Success      200  {array}   domain.StockGroup
// @Failure      500  {object}  response.Err
// @Router       /stock-groups [get]
func (h *StockGroupHandler) HandleListStockGroups(ctx *gin.Context) {
	groups, err := h.svc.GetAllStockGroups(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListStockGroups -> h.svc.GetAllStockGroups -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, groups)
}

// HandleGetStockGroup godoc
// @Summary      Get a stock group by ID
// @Tags         stock-groups
// @Produce      json
// @Param        groupID  path      int  true  "stock group ID"
// @Success      200      {object}  domain.StockGroup
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stock-groups/{groupID} [get]
func (h *StockGroupHandler) HandleGetStockGroup(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "groupID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	group, err := h.svc.GetStockGroup(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrGroupNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stock group", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetStockGroup -> h.svc.GetStockGroup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, group)
}

// HandleCreateStockGroup godoc
// @Summary      Create a stock group owned by a member
// @Tags         stock-groups
// @Accept       json
// @Produce      json
// @Param        memberID  path      int                              true  "owning member ID"
// @Param        request   body      request.CreateStockGroupRequest  true  "request body"
// @Success      201       {object}  domain.StockGroup
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      409       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /stock-groups/member/{memberID} [post]
func (h *StockGroupHandler) HandleCreateStockGroup(ctx *gin.Context) {
	memberID, respErr := parseIDParam(ctx, "memberID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateStockGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	group, err := h.svc.CreateStockGroup(ctx.Request.Context(), domain.StockGroup{
		Name:        req.Name,
		Description: req.Description,
	}, memberID)
	if err != nil {
		if errors.Is(err, service.ErrGroupNameExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrGroupNameExists))
			return
		}
		if errors.Is(err, service.ErrMemberNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("member", "ID", memberID))
			return
		}

		err = fmt.Errorf("v1.HandleCreateStockGroup -> h.svc.CreateStockGroup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, group)
}

// HandleUpdateStockGroup godoc
// @Summary      Update a stock group
// @Tags         stock-groups
// @Accept       json
// @Produce      json
// @Param        groupID  path      int                              true  "stock group ID"
// @Param        request  body      request.UpdateStockGroupRequest  true  "request body"
// @Success      200      {object}  domain.StockGroup
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stock-groups/{groupID} [put]
func (h *StockGroupHandler) HandleUpdateStockGroup(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "groupID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateStockGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	group, err := h.svc.UpdateStockGroup(ctx.Request.Context(), id, domain.StockGroup{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrGroupNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stock group", "ID", id))
			return
		}
		if errors.Is(err, service.ErrGroupNameExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrGroupNameExists))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateStockGroup -> h.svc.UpdateStockGroup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, group)
}

// HandleDeleteStockGroup godoc
// @Summary      Delete a stock group
// @Tags         stock-groups
// @Param        groupID  path  int  true  "stock group ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /stock-groups/{groupID} [delete]
func (h *StockGroupHandler) HandleDeleteStockGroup(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "groupID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteStockGroup(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrGroupNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stock group", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteStockGroup -> h.svc.DeleteStockGroup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleSearchStockGroupByName godoc
// @Summary      Find a stock group by name
// @Tags         stock-groups
// @Produce      json
// @Param        name  query     string  true  "group name"
// @Success      200   {object}  domain.StockGroup
// @Failure      400   {object}  response.Err
// @Failure      404   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /stock-groups/search/name [get]
func (h *StockGroupHandler) HandleSearchStockGroupByName(ctx *gin.Context) {
	var req request.SearchStockGroupByNameRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	group, err := h.svc.GetStockGroupByName(ctx.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrGroupNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stock group", "name", req.Name))
			return
		}

		err = fmt.Errorf("v1.HandleSearchStockGroupByName -> h.svc.GetStockGroupByName -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, group)
}

// HandleAddStockToGroup godoc
// @Summary      Add a stock to a group
// @Description  Adding a stock already in the group is a no-op.
// @Tags         stock-groups
// @Produce      json
// @Param        groupID  path      int  true  "stock group ID"
// @Param        stockID  path      int  true  "stock ID"
// @Success      200      {object}  domain.StockGroup
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stock-groups/{groupID}/stocks/{stockID} [post]
func (h *StockGroupHandler) HandleAddStockToGroup(ctx *gin.Context) {
	groupID, respErr := parseIDParam(ctx, "groupID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	stockID, respErr := parseIDParam(ctx, "stockID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	group, err := h.svc.AddStockToGroup(ctx.Request.Context(), groupID, stockID)
	if err != nil {
		if errors.Is(err, service.ErrGroupNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stock group", "ID", groupID))
			return
		}
		if errors.Is(err, service.ErrStockNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stock", "ID", stockID))
			return
		}

		err = fmt.Errorf("v1.HandleAddStockToGroup -> h.svc.AddStockToGroup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, group)
}

// HandleRemoveStockFromGroup godoc
// @Summary      Remove a stock from a group
// @Description  Removing a stock that is not in the group fails.
// @Tags         stock-groups
// @Produce      json
// @Param        groupID  path      int  true  "stock group ID"
// @Param        stockID  path      int  true  "stock ID"
// @Success      200      {object}  domain.StockGroup
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stock-groups/{groupID}/stocks/{stockID} [delete]
func (h *StockGroupHandler) HandleRemoveStockFromGroup(ctx *gin.Context) {
	groupID, respErr := parseIDParam(ctx, "groupID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	stockID, respErr := parseIDParam(ctx, "stockID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	group, err := h.svc.RemoveStockFromGroup(ctx.Request.Context(), groupID, stockID)
	if err != nil {
		if errors.Is(err, service.ErrGroupNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stock group", "ID", groupID))
			return
		}
		if errors.Is(err, service.ErrStockNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stock", "ID", stockID))
			return
		}
		if errors.Is(err, service.ErrStockNotInGroup) {
			response.RenderErr(ctx, response.ErrNotFound("stock", "ID in group", stockID))
			return
		}

		err = fmt.Errorf("v1.HandleRemoveStockFromGroup -> h.svc.RemoveStockFromGroup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, group)
}

// HandleListStocksInGroup godoc
// @Summary      List the stocks in a group
// @Tags         stock-groups
// @Produce      json
// @Param        groupID  path      int  true  "stock group ID"
// @Success      200      {array}   domain.Stock
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /stock-groups/{groupID}/stocks [get]
func (h *StockGroupHandler) HandleListStocksInGroup(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "groupID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	group, err := h.svc.GetStockGroup(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrGroupNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("stock group", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleListStocksInGroup -> h.svc.GetStockGroup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, group.Stocks)
}

// HandleListStockGroupsByMember godoc
// @Summary      List the stock groups owned by a member
// @Description  Responds 404 both for an unknown member and for a member without groups.
// @Tags         stock-groups
// @Produce      json
// @Param        memberID  path      int  true  "member ID"
// @Success      200       {array}   domain.StockGroup
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /stock-groups/member/{memberID} [get]
func (h *StockGroupHandler) HandleListStockGroupsByMember(ctx *gin.Context) {
	memberID, respErr := parseIDParam(ctx, "memberID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	groups, err := h.svc.GetStockGroupsByMember(ctx.Request.Context(), memberID)
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("member", "ID", memberID))
			return
		}

		err = fmt.Errorf("v1.HandleListStockGroupsByMember -> h.svc.GetStockGroupsByMember -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if len(groups) == 0 {
		response.RenderErr(ctx, response.ErrNotFound("stock groups", "member ID", memberID))
		return
	}

	ctx.JSON(http.StatusOK, groups)
}
