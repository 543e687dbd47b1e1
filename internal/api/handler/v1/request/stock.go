package request

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
)

var stockCodeExp = regexp.MustCompile(`^[0-9A-Z]{1,10}$`)

type CreateStockRequest struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Industry string `json:"industry,omitempty"`
}

func (req *CreateStockRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Code, validation.Required, validation.Match(stockCodeExp)),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Industry, validation.Length(0, 100)),
	)
}

type UpdateStockRequest struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Industry string `json:"industry,omitempty"`
}

func (req *UpdateStockRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Code, validation.Required, validation.Match(stockCodeExp)),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Industry, validation.Length(0, 100)),
	)
}

type SearchStockByCodeRequest struct {
	Code string `form:"code"`
}

func (req *SearchStockByCodeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Code, validation.Required, validation.Match(stockCodeExp)),
	)
}
