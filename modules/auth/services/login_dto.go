package services

import "strings"

type LoginDTO struct {
	Email    string `json:"email" form:"email" validate:"required,email" msg:"Please enter a valid email"`
	Password string `json:"password" form:"password" validate:"required" msg:"Password is required"`
}

func (d LoginDTO) Normalize() LoginDTO {
	d.Email = strings.TrimSpace(d.Email)
	return d
}
