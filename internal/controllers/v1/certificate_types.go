package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/traininghub/backend/internal/models"
	"github.com/traininghub/backend/internal/types"
)

// CertificateEditable contains all fields needed to issue a certificate
type CertificateEditable struct {
	Name                string `json:"name" example:"Jane Doe"`                               // Full name of the certificate holder
	Company             string `json:"company" example:"Acme Corp"`                           // Company the holder worked for
	RoleField           string `json:"roleField" example:"Backend Development"`               // Role or field of the engagement
	JoinedDate          string `json:"joinedDate" example:"2024-01-15"`                       // First day, YYYY-MM-DD
	EndDate             string `json:"endDate" example:"2024-06-30"`                          // Last day, YYYY-MM-DD
	WorkingDays         int    `json:"workingDays" example:"120"`                             // Number of days worked
	SupervisorSignature string `json:"supervisorSignature" example:"signatures/supervisor.png"` // Reference to the supervisor's signature image
}

func (e CertificateEditable) model() models.CertificateCreate {
	return models.CertificateCreate{
		Name:                e.Name,
		Company:             e.Company,
		RoleField:           e.RoleField,
		JoinedDate:          e.JoinedDate,
		EndDate:             e.EndDate,
		WorkingDays:         e.WorkingDays,
		SupervisorSignature: e.SupervisorSignature,
	}
}

// CertificatePatchEditable contains the fields of a certificate that can be updated. Omitted fields keep their value.
type CertificatePatchEditable struct {
	Name                *string `json:"name" example:"Jane Doe"`
	Company             *string `json:"company" example:"Acme Corp"`
	RoleField           *string `json:"roleField" example:"Backend Development"`
	JoinedDate          *string `json:"joinedDate" example:"2024-01-15"`
	EndDate             *string `json:"endDate" example:"2024-06-30"`
	WorkingDays         *int    `json:"workingDays" example:"120"`
	SupervisorSignature *string `json:"supervisorSignature" example:"signatures/supervisor.png"`
}

func (e CertificatePatchEditable) model() models.CertificatePatch {
	return models.CertificatePatch{
		Name:                e.Name,
		Company:             e.Company,
		RoleField:           e.RoleField,
		JoinedDate:          e.JoinedDate,
		EndDate:             e.EndDate,
		WorkingDays:         e.WorkingDays,
		SupervisorSignature: e.SupervisorSignature,
	}
}

type CertificateLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/certificates/5e0c4f3a-2b1d-4e6f-9a8b-7c6d5e4f3a2b"` // The certificate itself
}

// Certificate is the API representation of an issued certificate.
type Certificate struct {
	models.DefaultModel
	Name                string           `json:"name" example:"Jane Doe"`
	Company             string           `json:"company" example:"Acme Corp"`
	RoleField           string           `json:"roleField" example:"Backend Development"`
	JoinedDate          types.Date       `json:"joinedDate" swaggertype:"string" example:"2024-01-15"`
	EndDate             types.Date       `json:"endDate" swaggertype:"string" example:"2024-06-30"`
	WorkingDays         int              `json:"workingDays" example:"120"`
	SupervisorSignature string           `json:"supervisorSignature" example:"signatures/supervisor.png"`
	Links               CertificateLinks `json:"links"`
}

func newCertificate(c *gin.Context, model models.Certificate) Certificate {
	url := c.GetString(string(models.DBContextURL))

	return Certificate{
		DefaultModel:        model.DefaultModel,
		Name:                model.Name,
		Company:             model.Company,
		RoleField:           model.RoleField,
		JoinedDate:          model.JoinedDate,
		EndDate:             model.EndDate,
		WorkingDays:         model.WorkingDays,
		SupervisorSignature: model.SupervisorSignature,
		Links: CertificateLinks{
			Self: fmt.Sprintf("%s/v1/certificates/%s", url, model.ID),
		},
	}
}

type CertificateResponse struct {
	Data  *Certificate `json:"data"`                                                          // Data for the certificate
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CertificateListResponse struct {
	Data  []Certificate `json:"data"`                                                          // List of certificates
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
