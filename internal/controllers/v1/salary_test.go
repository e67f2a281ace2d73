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

func (suite *TestSuiteStandard) createTestSalary(body any, headers map[string]string, expectedStatus ...int) v1.SalaryResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/salaries", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var salary v1.SalaryResponse
	test.DecodeResponse(suite.T(), &r, &salary)

	return salary
}

func (suite *TestSuiteStandard) TestSalaryCreatePercentage() {
	trainer, _ := suite.createTestTrainer()

	salary := suite.createTestSalary(map[string]any{
		"trainerId":              trainer.ID,
		"salaryType":             "PERCENTAGE",
		"month":                  "2024-03-01",
		"paymentDate":            "2024-04-05",
		"baseAmount":             "10000.00",
		"paidAmount":             "2500",
		"completedStudentsCount": 5,
		"percentageRatio":        "12.5%",
	}, suite.admin())

	suite.Require().NotNil(salary.Data)
	assert.Equal(suite.T(), "6250.00", salary.Data.TotalAmount)
	assert.Equal(suite.T(), "3750.00", salary.Data.DueAmount)
	assert.Equal(suite.T(), "2500.00", salary.Data.PaidAmount)
	assert.Equal(suite.T(), models.SalaryPending, salary.Data.SalaryStatus)
	suite.Require().NotNil(salary.Data.PercentageRatio)
	assert.Equal(suite.T(), "12.50", *salary.Data.PercentageRatio)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/trainers/%s", trainer.ID), salary.Data.Links.Trainer)
}

func (suite *TestSuiteStandard) TestSalaryCreateFixedNullsPercentageFields() {
	trainer, _ := suite.createTestTrainer()

	salary := suite.createTestSalary(v1.SalaryEditable{
		TrainerID:              trainer.ID,
		SalaryType:             models.SalaryFixed,
		Month:                  "2024-03-01",
		PaymentDate:            "2024-03-31",
		BaseAmount:             decimalPtr("3000"),
		PaidAmount:             decimalPtr("3000"),
		CompletedStudentsCount: intPtr(4),
	}, suite.admin())

	suite.Require().NotNil(salary.Data)
	assert.Equal(suite.T(), "3000.00", salary.Data.TotalAmount)
	assert.Equal(suite.T(), "0.00", salary.Data.DueAmount)
	assert.Equal(suite.T(), models.SalaryPaid, salary.Data.SalaryStatus)
	assert.Nil(suite.T(), salary.Data.CompletedStudentsCount)
	assert.Nil(suite.T(), salary.Data.PercentageRatio)
}

func (suite *TestSuiteStandard) TestSalaryCreateErrors() {
	trainer, trainerHeaders := suite.createTestTrainer()

	tests := []struct {
		name    string
		body    any
		headers map[string]string
		status  int
		msg     string
	}{
		{"No token", `{}`, map[string]string{}, http.StatusUnauthorized, ""},
		{"Trainer", map[string]any{"trainerId": trainer.ID}, trainerHeaders, http.StatusForbidden, ""},
		{"Empty body", "", suite.admin(), http.StatusBadRequest, "the request body must not be empty"},
		{"Unknown trainer", v1.SalaryEditable{TrainerID: uuid.New(), SalaryType: models.SalaryFixed, Month: "2024-03-01", PaymentDate: "2024-03-31", BaseAmount: decimalPtr("1")}, suite.admin(), http.StatusNotFound, ""},
		{"Zero base", v1.SalaryEditable{TrainerID: trainer.ID, SalaryType: models.SalaryFixed, Month: "2024-03-01", PaymentDate: "2024-03-31", BaseAmount: decimalPtr("0")}, suite.admin(), http.StatusBadRequest, "baseAmount cannot be zero or negative"},
		{"Percentage without count", v1.SalaryEditable{TrainerID: trainer.ID, SalaryType: models.SalaryPercentage, Month: "2024-03-01", PaymentDate: "2024-03-31", BaseAmount: decimalPtr("100")}, suite.admin(), http.StatusBadRequest, "completedStudentsCount cannot be null or zero for PERCENTAGE type"},
		{"Bad month", v1.SalaryEditable{TrainerID: trainer.ID, SalaryType: models.SalaryFixed, Month: "March", PaymentDate: "2024-03-31", BaseAmount: decimalPtr("100")}, suite.admin(), http.StatusBadRequest, ""},
		{"Total too large", map[string]any{
			"trainerId":              trainer.ID,
			"salaryType":             "PERCENTAGE",
			"month":                  "2024-03-01",
			"paymentDate":            "2024-03-31",
			"baseAmount":             "99999999.99",
			"completedStudentsCount": 1000000,
			"percentageRatio":        "999.99",
		}, suite.admin(), http.StatusBadRequest, "totalAmount must not have more than 8 digits before the decimal point"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/salaries", tt.body, tt.headers)
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
}

func (suite *TestSuiteStandard) TestSalaryUpdateRecomputes() {
	trainer, _ := suite.createTestTrainer()
	admin := suite.admin()

	salary := suite.createTestSalary(v1.SalaryEditable{
		TrainerID:   trainer.ID,
		SalaryType:  models.SalaryFixed,
		Month:       "2024-03-01",
		PaymentDate: "2024-03-31",
		BaseAmount:  decimalPtr("1000"),
	}, admin)

	r := test.Request(suite.T(), http.MethodPatch, salary.Data.Links.Self, map[string]any{"paidAmount": "1000"}, admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.SalaryResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), "0.00", updated.Data.DueAmount)
	assert.Equal(suite.T(), models.SalaryPaid, updated.Data.SalaryStatus)
	assert.Equal(suite.T(), "2024-03-01", updated.Data.Month.String())
}

// Non-admin updates are rejected and leave the record untouched.
func (suite *TestSuiteStandard) TestSalaryUpdateForbiddenForTrainer() {
	trainer, trainerHeaders := suite.createTestTrainer()
	_, studentHeaders := suite.createTestStudent()

	salary := suite.createTestSalary(v1.SalaryEditable{
		TrainerID:   trainer.ID,
		SalaryType:  models.SalaryFixed,
		Month:       "2024-03-01",
		PaymentDate: "2024-03-31",
		BaseAmount:  decimalPtr("1000"),
	}, suite.admin())

	for _, headers := range []map[string]string{trainerHeaders, studentHeaders} {
		r := test.Request(suite.T(), http.MethodPatch, salary.Data.Links.Self, map[string]any{"paidAmount": "1000"}, headers)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)
	}

	stored, err := models.GetSalary(models.DB, salary.Data.ID)
	suite.Require().Nil(err)
	assert.True(suite.T(), stored.PaidAmount.IsZero())
	assert.Equal(suite.T(), models.SalaryPending, stored.SalaryStatus)
}

func (suite *TestSuiteStandard) TestSalaryTrainerScope() {
	own, ownHeaders := suite.createTestTrainer()
	other, _ := suite.createTestTrainer()
	admin := suite.admin()

	var ownSalary, otherSalary v1.SalaryResponse
	for _, t := range []struct {
		id     uuid.UUID
		target *v1.SalaryResponse
	}{{own.ID, &ownSalary}, {other.ID, &otherSalary}} {
		*t.target = suite.createTestSalary(v1.SalaryEditable{
			TrainerID:   t.id,
			SalaryType:  models.SalaryFixed,
			Month:       "2024-03-01",
			PaymentDate: "2024-03-31",
			BaseAmount:  decimalPtr("1000"),
		}, admin)
	}

	// The trainer filter is ignored for trainers
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/salaries?trainer=%s", other.ID), "", ownHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.SalaryListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 1)
	assert.Equal(suite.T(), ownSalary.Data.ID, list.Data[0].ID)

	r = test.Request(suite.T(), http.MethodGet, ownSalary.Data.Links.Self, "", ownHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// Salaries of other trainers are indistinguishable from missing ones
	r = test.Request(suite.T(), http.MethodGet, otherSalary.Data.Links.Self, "", ownHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	missing := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/salaries/%s", uuid.New()), "", ownHeaders)
	test.AssertHTTPStatus(suite.T(), &missing, http.StatusNotFound)
	assert.Equal(suite.T(), missing.Body.String(), r.Body.String())

	// Admins see everything and can filter
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/salaries", "", admin)
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 2)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/salaries?trainer=%s", other.ID), "", admin)
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 1)
	assert.Equal(suite.T(), otherSalary.Data.ID, list.Data[0].ID)
}

func (suite *TestSuiteStandard) TestSalaryListStudentForbidden() {
	_, headers := suite.createTestStudent()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/salaries", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestSalaryListTrainerWithoutProfile() {
	_, headers := suite.createTestUser(auth.RoleTrainer)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/salaries", "", headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSalaryDelete() {
	trainer, _ := suite.createTestTrainer()
	admin := suite.admin()

	salary := suite.createTestSalary(v1.SalaryEditable{
		TrainerID:   trainer.ID,
		SalaryType:  models.SalaryFixed,
		Month:       "2024-03-01",
		PaymentDate: "2024-03-31",
		BaseAmount:  decimalPtr("1000"),
	}, admin)

	r := test.Request(suite.T(), http.MethodDelete, salary.Data.Links.Self, "", admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, salary.Data.Links.Self, "", admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, salary.Data.Links.Self, "", admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
