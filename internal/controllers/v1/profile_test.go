package v1_test

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/traininghub/backend/internal/auth"
	v1 "github.com/traininghub/backend/internal/controllers/v1"
	"github.com/traininghub/backend/internal/models"
	"github.com/traininghub/backend/internal/types"
	"github.com/traininghub/backend/test"
)

func (suite *TestSuiteStandard) TestUserCRUD() {
	admin := suite.admin()

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/users", v1.UserEditable{
		Username: "jdoe",
		Email:    "JDoe@Example.com",
		Password: "correct horse battery",
		Role:     auth.RoleStudent,
	}, admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var user v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &user)
	assert.Equal(suite.T(), "jdoe@example.com", user.Data.Email)

	// Duplicate email
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/users", v1.UserEditable{
		Username: "jdoe2",
		Email:    "jdoe@example.com",
		Password: "correct horse battery",
		Role:     auth.RoleStudent,
	}, admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	r = test.Request(suite.T(), http.MethodPatch, user.Data.Links.Self, map[string]any{"firstName": "Jane"}, admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &user)
	assert.Equal(suite.T(), "Jane", user.Data.FirstName)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users?role=student", "", admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.UserListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 1)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users?role=root", "", admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodDelete, user.Data.Links.Self, "", admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestUserReadOwn() {
	own, ownHeaders := suite.createTestUser(auth.RoleStudent)
	other, _ := suite.createTestUser(auth.RoleStudent)

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/users/%s", own.ID), "", ownHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/users/%s", other.ID), "", ownHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users", "", ownHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestTrainerCRUD() {
	admin := suite.admin()
	user, _ := suite.createTestUser(auth.RoleTrainer)
	student, _ := suite.createTestUser(auth.RoleStudent)

	// The user must have the trainer role
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/trainers", v1.TrainerEditable{
		UserID:       student.ID,
		TrainerType:  models.TrainerTypeTrainer,
		SalaryMethod: models.SalaryFixed,
	}, admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/trainers", v1.TrainerEditable{
		UserID:       user.ID,
		TrainerType:  models.TrainerTypeTrainerDeveloper,
		SalaryMethod: models.SalaryPercentage,
	}, admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var trainer v1.TrainerResponse
	test.DecodeResponse(suite.T(), &r, &trainer)

	// One profile per user
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/trainers", v1.TrainerEditable{
		UserID:       user.ID,
		TrainerType:  models.TrainerTypeTrainer,
		SalaryMethod: models.SalaryFixed,
	}, admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	r = test.Request(suite.T(), http.MethodPatch, trainer.Data.Links.Self, map[string]any{"trainerType": "DEVELOPER"}, admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &trainer)
	assert.Equal(suite.T(), models.TrainerTypeDeveloper, trainer.Data.TrainerType)

	r = test.Request(suite.T(), http.MethodDelete, trainer.Data.Links.Self, "", admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestTrainerReadOwnProfile() {
	own, ownHeaders := suite.createTestTrainer()
	other, _ := suite.createTestTrainer()

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/trainers/%s", own.ID), "", ownHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/trainers/%s", other.ID), "", ownHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	missing := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/trainers/%s", uuid.New()), "", ownHeaders)
	assert.Equal(suite.T(), missing.Body.String(), r.Body.String())
}

func (suite *TestSuiteStandard) TestStudentCRUD() {
	admin := suite.admin()
	user, _ := suite.createTestUser(auth.RoleStudent)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/students", v1.StudentEditable{
		UserID:         user.ID,
		StudentType:    models.StudentTypeIntern,
		EnrollmentDate: types.NewDate(2024, 1, 8),
		JoinDate:       types.NewDate(2024, 1, 15),
		EndDate:        types.NewDate(2024, 1, 1),
	}, admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/students", v1.StudentEditable{
		UserID:         user.ID,
		StudentType:    models.StudentTypeIntern,
		EnrollmentDate: types.NewDate(2024, 1, 8),
		JoinDate:       types.NewDate(2024, 1, 15),
		EndDate:        types.NewDate(2024, 7, 15),
	}, admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var student v1.StudentResponse
	test.DecodeResponse(suite.T(), &r, &student)
	assert.Equal(suite.T(), "2024-07-15", student.Data.EndDate.String())

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/students", "", admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.StudentListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 1)

	r = test.Request(suite.T(), http.MethodDelete, student.Data.Links.Self, "", admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
