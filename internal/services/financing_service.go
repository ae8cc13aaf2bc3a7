// internal/services/financing_service.go
package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/kserge2001/AfricanEstates/internal/models"
	"github.com/kserge2001/AfricanEstates/internal/store"
)

type FinancingService struct {
	store store.Store
}

type FinancingRequestInput struct {
	FullName           string  `json:"fullName" validate:"required,min=2"`
	Email              string  `json:"email" validate:"required,email"`
	City               string  `json:"city" validate:"required"`
	Country            string  `json:"country" validate:"required"`
	Salary             float64 `json:"salary" validate:"required,gt=0"`
	JobTitle           string  `json:"jobTitle" validate:"required"`
	LoanAmount         float64 `json:"loanAmount" validate:"required,gt=0"`
	MonthlyPayment     float64 `json:"monthlyPayment" validate:"required,gt=0"`
	PreferredCurrency  string  `json:"preferredCurrency" validate:"required"`
	PhoneNumber        string  `json:"phoneNumber,omitempty"`
	AdditionalComments string  `json:"additionalComments,omitempty"`
}

type FinancingReceipt struct {
	ID      int  `json:"id"`
	Success bool `json:"success"`
}

func NewFinancingService(s store.Store) *FinancingService {
	return &FinancingService{store: s}
}

func (s *FinancingService) Submit(req *FinancingRequestInput) (FinancingReceipt, error) {
	request := models.FinancingRequest{
		FullName:           req.FullName,
		Email:              req.Email,
		City:               req.City,
		Country:            req.Country,
		Salary:             req.Salary,
		JobTitle:           req.JobTitle,
		LoanAmount:         req.LoanAmount,
		MonthlyPayment:     req.MonthlyPayment,
		PreferredCurrency:  req.PreferredCurrency,
		PhoneNumber:        req.PhoneNumber,
		AdditionalComments: req.AdditionalComments,
	}

	request, err := s.store.CreateFinancingRequest(request)
	if err != nil {
		return FinancingReceipt{}, fmt.Errorf("failed to store financing request: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"financing_id": request.ID,
		"country":      request.Country,
	}).Info("Financing request submitted")

	return FinancingReceipt{ID: request.ID, Success: true}, nil
}
