package register

import (
	"github.com/thalibook/thalibook-api/internal/service/auth/models"
)

type RegisterRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Role     string  `json:"role,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

func (r *RegisterRequest) ToServiceRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
		Phone:    r.Phone,
	}
}
