package v1_test

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	v1 "github.com/traininghub/backend/internal/controllers/v1"
	"github.com/traininghub/backend/internal/models"
	"github.com/traininghub/backend/test"
)

func (suite *TestSuiteStandard) createTestFeeTransaction(f v1.FeeTransactionEditable, expectedStatus ...int) v1.FeeTransactionResponse {
	if f.Method == "" {
		f.Method = models.PaymentCash
	}

	if f.PaymentDate == "" {
		f.PaymentDate = "2024-02-10"
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/fee-transactions", f, suite.admin())
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var transaction v1.FeeTransactionResponse
	test.DecodeResponse(suite.T(), &r, &transaction)

	return transaction
}

func (suite *TestSuiteStandard) TestFeeTransactionCreate() {
	course := suite.createTestCourse(v1.CourseEditable{FeeAmount: decimal400()})
	student, _ := suite.createTestStudent()
	enrollment := suite.createTestEnrollment(student, course.Data.ID)

	transaction := suite.createTestFeeTransaction(v1.FeeTransactionEditable{
		EnrollmentID: enrollment.Data.ID,
		Amount:       decimalPtr("400"),
		Method:       models.PaymentBankTransfer,
		Remarks:      "Full payment",
	})

	suite.Require().NotNil(transaction.Data)
	assert.Equal(suite.T(), "400.00", transaction.Data.Amount)
	assert.Equal(suite.T(), models.PaymentBankTransfer, transaction.Data.Method)
	assert.Equal(suite.T(), "2024-02-10", transaction.Data.PaymentDate.String())
	assert.Equal(suite.T(), enrollment.Data.Links.Self, transaction.Data.Links.Enrollment)
}

func (suite *TestSuiteStandard) TestFeeTransactionExceedsFee() {
	course := suite.createTestCourse(v1.CourseEditable{FeeAmount: decimal400()})
	student, _ := suite.createTestStudent()
	enrollment := suite.createTestEnrollment(student, course.Data.ID)

	transaction := suite.createTestFeeTransaction(v1.FeeTransactionEditable{
		EnrollmentID: enrollment.Data.ID,
		Amount:       decimalPtr("500"),
	}, http.StatusBadRequest)

	assert.Equal(suite.T(), "payment amount 500.00 exceeds course fee 400.00", *transaction.Error)

	r := test.Request(suite.T(), http.MethodGet, enrollment.Data.Links.FeeTransactions, "", suite.admin())
	var list v1.FeeTransactionListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 0)
}

func (suite *TestSuiteStandard) TestFeeTransactionCreateErrors() {
	course := suite.createTestCourse(v1.CourseEditable{FeeAmount: decimal400()})
	student, studentHeaders := suite.createTestStudent()
	enrollment := suite.createTestEnrollment(student, course.Data.ID)

	tests := []struct {
		name    string
		body    any
		headers map[string]string
		status  int
	}{
		{"Student", v1.FeeTransactionEditable{EnrollmentID: enrollment.Data.ID, Amount: decimalPtr("1"), Method: models.PaymentCash, PaymentDate: "2024-02-10"}, studentHeaders, http.StatusForbidden},
		{"Unknown enrollment", v1.FeeTransactionEditable{EnrollmentID: uuid.New(), Amount: decimalPtr("1"), Method: models.PaymentCash, PaymentDate: "2024-02-10"}, suite.admin(), http.StatusNotFound},
		{"Negative amount", v1.FeeTransactionEditable{EnrollmentID: enrollment.Data.ID, Amount: decimalPtr("-1"), Method: models.PaymentCash, PaymentDate: "2024-02-10"}, suite.admin(), http.StatusBadRequest},
		{"Bad method", map[string]any{"enrollmentId": enrollment.Data.ID, "amount": "1", "method": "CHEQUE", "paymentDate": "2024-02-10"}, suite.admin(), http.StatusBadRequest},
		{"Bad amount", `{ "enrollmentId": "` + enrollment.Data.ID.String() + `", "amount": "lots" }`, suite.admin(), http.StatusBadRequest},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/fee-transactions", tt.body, tt.headers)
		test.AssertHTTPStatus(suite.T(), &r, tt.status)
	}
}

func (suite *TestSuiteStandard) TestFeeTransactionStudentScope() {
	course := suite.createTestCourse(v1.CourseEditable{FeeAmount: decimal400()})
	own, ownHeaders := suite.createTestStudent()
	other, _ := suite.createTestStudent()

	ownPayment := suite.createTestFeeTransaction(v1.FeeTransactionEditable{
		EnrollmentID: suite.createTestEnrollment(own, course.Data.ID).Data.ID,
		Amount:       decimalPtr("100"),
	})
	otherPayment := suite.createTestFeeTransaction(v1.FeeTransactionEditable{
		EnrollmentID: suite.createTestEnrollment(other, course.Data.ID).Data.ID,
		Amount:       decimalPtr("100"),
	})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/fee-transactions?student=%s", other.ID), "", ownHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.FeeTransactionListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 1)
	assert.Equal(suite.T(), ownPayment.Data.ID, list.Data[0].ID)

	r = test.Request(suite.T(), http.MethodGet, ownPayment.Data.Links.Self, "", ownHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, otherPayment.Data.Links.Self, "", ownHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	missing := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/fee-transactions/%s", uuid.New()), "", ownHeaders)
	test.AssertHTTPStatus(suite.T(), &missing, http.StatusNotFound)
	assert.Equal(suite.T(), missing.Body.String(), r.Body.String())

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/fee-transactions?student=%s", other.ID), "", suite.admin())
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 1)
	assert.Equal(suite.T(), otherPayment.Data.ID, list.Data[0].ID)
}

func (suite *TestSuiteStandard) TestFeeTransactionDelete() {
	course := suite.createTestCourse(v1.CourseEditable{FeeAmount: decimal400()})
	student, studentHeaders := suite.createTestStudent()
	admin := suite.admin()

	payment := suite.createTestFeeTransaction(v1.FeeTransactionEditable{
		EnrollmentID: suite.createTestEnrollment(student, course.Data.ID).Data.ID,
		Amount:       decimalPtr("100"),
	})

	r := test.Request(suite.T(), http.MethodDelete, payment.Data.Links.Self, "", studentHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = test.Request(suite.T(), http.MethodDelete, payment.Data.Links.Self, "", admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, payment.Data.Links.Self, "", admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
