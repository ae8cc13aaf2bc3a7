// internal/models/financing.go
package models

import "time"

// FinancingRequest is a mortgage lead captured from the financing form. It is
// stored as-is; no credit decision happens in this system.
type FinancingRequest struct {
	ID                 int       `json:"id"`
	FullName           string    `json:"fullName"`
	Email              string    `json:"email"`
	City               string    `json:"city"`
	Country            string    `json:"country"`
	Salary             float64   `json:"salary"`
	JobTitle           string    `json:"jobTitle"`
	LoanAmount         float64   `json:"loanAmount"`
	MonthlyPayment     float64   `json:"monthlyPayment"`
	PreferredCurrency  string    `json:"preferredCurrency"`
	PhoneNumber        string    `json:"phoneNumber,omitempty"`
	AdditionalComments string    `json:"additionalComments,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}
