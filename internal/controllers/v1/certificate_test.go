package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/traininghub/backend/internal/auth"
	v1 "github.com/traininghub/backend/internal/controllers/v1"
	"github.com/traininghub/backend/internal/models"
	"github.com/traininghub/backend/test"
)

func (suite *TestSuiteStandard) createTestCertificate(body any, headers map[string]string, expectedStatus ...int) v1.CertificateResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/certificates", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var certificate v1.CertificateResponse
	test.DecodeResponse(suite.T(), &r, &certificate)

	return certificate
}

// createNamedUser creates a user with first and last name and returns its headers.
func (suite *TestSuiteStandard) createNamedUser(role auth.Role, first, last string) map[string]string {
	name := uuid.New().String()
	user, err := models.CreateUser(models.DB, models.UserCreate{
		Username:  name,
		Email:     name + "@example.com",
		Password:  "s3cret-password",
		Role:      role,
		FirstName: first,
		LastName:  last,
	})
	if err != nil {
		suite.Assert().FailNow("User could not be saved", "Error: %s", err)
	}

	return suite.bearer(user)
}

func certificateFor(name string) v1.CertificateEditable {
	return v1.CertificateEditable{
		Name:        name,
		Company:     "Acme Corp",
		RoleField:   "Backend Development",
		JoinedDate:  "2024-01-15",
		EndDate:     "2024-06-30",
		WorkingDays: 120,
	}
}

func (suite *TestSuiteStandard) TestCertificateCreate() {
	certificate := suite.createTestCertificate(certificateFor("Jane Doe"), suite.admin())

	suite.Require().NotNil(certificate.Data)
	assert.Equal(suite.T(), "Jane Doe", certificate.Data.Name)
	assert.Equal(suite.T(), "2024-01-15", certificate.Data.JoinedDate.String())
	assert.Equal(suite.T(), 120, certificate.Data.WorkingDays)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/certificates/%s", certificate.Data.ID), certificate.Data.Links.Self)

	r := test.Request(suite.T(), http.MethodOptions, certificate.Data.Links.Self, "", suite.admin())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCertificateCreateErrors() {
	_, studentHeaders := suite.createTestStudent()

	tests := []struct {
		name    string
		body    any
		headers map[string]string
		status  int
		msg     string
	}{
		{"No token", `{}`, map[string]string{}, http.StatusUnauthorized, ""},
		{"Student", certificateFor("Jane Doe"), studentHeaders, http.StatusForbidden, ""},
		{"Empty body", "", suite.admin(), http.StatusBadRequest, "the request body must not be empty"},
		{"Missing company", map[string]any{"name": "Jane Doe", "roleField": "QA", "joinedDate": "2024-01-15", "endDate": "2024-06-30", "workingDays": 10}, suite.admin(), http.StatusBadRequest, "name, company and roleField are required"},
		{"Bad joined date", map[string]any{"name": "Jane Doe", "company": "Acme", "roleField": "QA", "joinedDate": "15.01.2024", "endDate": "2024-06-30", "workingDays": 10}, suite.admin(), http.StatusBadRequest, "invalid joinedDate format. Use YYYY-MM-DD"},
		{"Zero working days", map[string]any{"name": "Jane Doe", "company": "Acme", "roleField": "QA", "joinedDate": "2024-01-15", "endDate": "2024-06-30", "workingDays": 0}, suite.admin(), http.StatusBadRequest, "workingDays must be greater than zero"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/certificates", tt.body, tt.headers)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.msg != "" {
				var response struct {
					Error string `json:"error"`
				}
				test.DecodeResponse(t, &r, &response)
				assert.Equal(t, tt.msg, response.Error)
			}
		})
	}

	var count int64
	models.DB.Model(&models.Certificate{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *TestSuiteStandard) TestCertificateHolderScope() {
	admin := suite.admin()
	own := suite.createTestCertificate(certificateFor("Jane Doe"), admin)
	other := suite.createTestCertificate(certificateFor("John Roe"), admin)

	janeHeaders := suite.createNamedUser(auth.RoleStudent, "Jane", "Doe")

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/certificates", "", janeHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.CertificateListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 1)
	assert.Equal(suite.T(), own.Data.ID, list.Data[0].ID)

	r = test.Request(suite.T(), http.MethodGet, own.Data.Links.Self, "", janeHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// Certificates of other holders look like missing ones
	r = test.Request(suite.T(), http.MethodGet, other.Data.Links.Self, "", janeHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	missing := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/certificates/%s", uuid.New()), "", janeHeaders)
	test.AssertHTTPStatus(suite.T(), &missing, http.StatusNotFound)
	assert.Equal(suite.T(), missing.Body.String(), r.Body.String())

	// Users without a name have no certificates
	_, unnamed := suite.createTestUser(auth.RoleTrainer)
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/certificates", "", unnamed)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 0)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/certificates", "", admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 2)
}

func (suite *TestSuiteStandard) TestCertificateUpdateAndDelete() {
	admin := suite.admin()
	certificate := suite.createTestCertificate(certificateFor("Jane Doe"), admin)
	janeHeaders := suite.createNamedUser(auth.RoleStudent, "Jane", "Doe")

	r := test.Request(suite.T(), http.MethodPatch, certificate.Data.Links.Self, map[string]any{"workingDays": 90}, janeHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = test.Request(suite.T(), http.MethodPatch, certificate.Data.Links.Self, map[string]any{"workingDays": 90}, admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.CertificateResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), 90, updated.Data.WorkingDays)
	assert.Equal(suite.T(), "Acme Corp", updated.Data.Company)

	r = test.Request(suite.T(), http.MethodPatch, certificate.Data.Links.Self, map[string]any{"endDate": "2023-01-01"}, admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodDelete, certificate.Data.Links.Self, "", janeHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = test.Request(suite.T(), http.MethodDelete, certificate.Data.Links.Self, "", admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, certificate.Data.Links.Self, "", admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
