package register_customer

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/customers"
)

// RegisterCustomerRequest HTTP request model
type RegisterCustomerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Password string `json:"password"`
}

// CustomerResponse HTTP response model. Хеш пароля наружу не отдаётся.
type CustomerResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	RegisteredAt string `json:"registeredAt"`
}

// ToServiceInput конвертирует HTTP запрос в модель сервиса
func (r *RegisterCustomerRequest) ToServiceInput() customers.RegisterInput {
	return customers.RegisterInput{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Address:  r.Address,
		Password: r.Password,
	}
}

// FromDomainCustomer конвертирует domain модель в HTTP response
func FromDomainCustomer(c *domain.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Address:      c.Address,
		RegisteredAt: c.RegisteredAt.Format(time.RFC3339),
	}
}
