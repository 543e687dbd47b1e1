package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateStockGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (req *CreateStockGroupRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Description, validation.Length(0, 500)),
	)
}

type UpdateStockGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (req *UpdateStockGroupRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Description, validation.Length(0, 500)),
	)
}

type SearchStockGroupByNameRequest struct {
	Name string `form:"name"`
}

func (req *SearchStockGroupByNameRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}
