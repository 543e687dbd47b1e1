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

type MemberService interface {
	GetAllMembers(ctx context.Context) ([]domain.Member, error)
	GetMember(ctx context.Context, id uint) (domain.Member, error)
	GetMemberByEmail(ctx context.Context, email string) (domain.Member, error)
	GetMemberByPhoneNumber(ctx context.Context, phoneNumber string) (domain.Member, error)
	GetMemberByNationalIDNumber(ctx context.Context, nationalIDNumber string) (domain.Member, error)
	CreateMember(ctx context.Context, member domain.Member) (domain.Member, error)
	UpdateMember(ctx context.Context, id uint, patch domain.Member) (domain.Member, error)
	DeleteMember(ctx context.Context, id uint) error
}

type MemberHandler struct {
	svc MemberService
}

func NewMemberHandler(svc MemberService) *MemberHandler {
	return &MemberHandler{
		svc: svc,
	}
}

// HandleListMembers godoc
// @Summary      List all members
// @Tags         members
// @Produce      json
// @Success      200  {array}   domain.Member
// @Failure      500  {object}  response.Err
// @Router       /members [get]
func (h *MemberHandler) HandleListMembers(ctx *gin.Context) {
	members, err := h.svc.GetAllMembers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListMembers -> h.svc.GetAllMembers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, members)
}

// HandleGetMember godoc
// @Summary      Get a member by ID
// @Tags         members
// @Produce      json
// @Param        memberID  path      int  true  "member ID"
// @Success      200       {object}  domain.Member
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /members/{memberID} [get]
func (h *MemberHandler) HandleGetMember(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "memberID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	member, err := h.svc.GetMember(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("member", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetMember -> h.svc.GetMember -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, member)
}

// HandleCreateMember godoc
// @Summary      Create a new member
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateMemberRequest  true  "request body"
// @Success      201      {object}  domain.Member
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /members [post]
func (h *MemberHandler) HandleCreateMember(ctx *gin.Context) {
	var req request.CreateMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	member, err := h.svc.CreateMember(ctx.Request.Context(), domain.Member{
		Name:             req.Name,
		PhoneNumber:      req.PhoneNumber,
		NationalIDNumber: req.NationalIDNumber,
		DateOfBirth:      req.ParseDateOfBirth(),
		Email:            req.Email,
		PasswordHash:     req.PasswordHash,
		Gender:           req.Gender,
		Address:          req.Address,
		Role:             req.Role,
	})
	if err != nil {
		if errors.Is(err, service.ErrMemberExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrMemberExists))
			return
		}

		err = fmt.Errorf("v1.HandleCreateMember -> h.svc.CreateMember -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, member)
}

// HandleUpdateMember godoc
// @Summary      Update a member
// @Description  Overwrites every mutable field. The password hash is not updatable here.
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        memberID  path      int                          true  "member ID"
// @Param        request   body      request.UpdateMemberRequest  true  "request body"
// @Success      200       {object}  domain.Member
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      409       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /members/{memberID} [put]
func (h *MemberHandler) HandleUpdateMember(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "memberID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	member, err := h.svc.UpdateMember(ctx.Request.Context(), id, domain.Member{
		Name:             req.Name,
		PhoneNumber:      req.PhoneNumber,
		NationalIDNumber: req.NationalIDNumber,
		DateOfBirth:      req.ParseDateOfBirth(),
		Email:            req.Email,
		Gender:           req.Gender,
		Address:          req.Address,
		LastLoginDate:    req.ParseLastLoginDate(),
		IsActive:         req.IsActive,
		Role:             req.Role,
	})
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("member", "ID", id))
			return
		}
		if errors.Is(err, service.ErrMemberExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrMemberExists))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateMember -> h.svc.UpdateMember -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, member)
}

// HandleDeleteMember godoc
// @Summary      Delete a member
// @Description  Deletes the member and every stock group it owns.
// @Tags         members
// @Param        memberID  path  int  true  "member ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /members/{memberID} [delete]
func (h *MemberHandler) HandleDeleteMember(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "memberID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteMember(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("member", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteMember -> h.svc.DeleteMember -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleSearchMemberByEmail godoc
// @Summary      Find a member by email
// @Tags         members
// @Produce      json
// @Param        email  query     string  true  "email"
// @Success      200    {object}  domain.Member
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /members/search/email [get]
func (h *MemberHandler) HandleSearchMemberByEmail(ctx *gin.Context) {
	var req request.SearchMemberByEmailRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	member, err := h.svc.GetMemberByEmail(ctx.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("member", "email", req.Email))
			return
		}

		err = fmt.Errorf("v1.HandleSearchMemberByEmail -> h.svc.GetMemberByEmail -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, member)
}

// HandleSearchMemberByPhone godoc
// @Summary      Find a member by phone number
// @Tags         members
// @Produce      json
// @Param        phoneNumber  query     string  true  "phone number"
// @Success      200          {object}  domain.Member
// @Failure      400          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /members/search/phone [get]
func (h *MemberHandler) HandleSearchMemberByPhone(ctx *gin.Context) {
	var req request.SearchMemberByPhoneRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	member, err := h.svc.GetMemberByPhoneNumber(ctx.Request.Context(), req.PhoneNumber)
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("member", "phone number", req.PhoneNumber))
			return
		}

		err = fmt.Errorf("v1.HandleSearchMemberByPhone -> h.svc.GetMemberByPhoneNumber -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, member)
}

// HandleSearchMemberByNationalID godoc
// @Summary      Find a member by national ID number
// @Tags         members
// @Produce      json
// @Param        nationalIdNumber  query     string  true  "national ID number"
// @Success      200               {object}  domain.Member
// @Failure      400               {object}  response.Err
// @Failure      404               {object}  response.Err
// @Failure      500               {object}  response.Err
// @Router       /members/search/nationalId [get]
func (h *MemberHandler) HandleSearchMemberByNationalID(ctx *gin.Context) {
	var req request.SearchMemberByNationalIDRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	member, err := h.svc.GetMemberByNationalIDNumber(ctx.Request.Context(), req.NationalIDNumber)
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("member", "national ID", req.NationalIDNumber))
			return
		}

		err = fmt.Errorf("v1.HandleSearchMemberByNationalID -> h.svc.GetMemberByNationalIDNumber -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, member)
}
