package v1_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	v1 "github.com/traininghub/backend/internal/controllers/v1"
	"github.com/traininghub/backend/internal/models"
	"github.com/traininghub/backend/internal/router"
	"github.com/traininghub/backend/test"
)

func (suite *TestSuiteStandard) TestEnrollmentCapacity() {
	course := suite.createTestCourse(v1.CourseEditable{MaxStudents: intPtr(2)})

	for i := 0; i < 2; i++ {
		student, _ := suite.createTestStudent()
		suite.createTestEnrollment(student, course.Data.ID)
	}

	student, _ := suite.createTestStudent()
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/enrollments", v1.EnrollmentEditable{
		StudentID:      student.ID,
		CourseID:       course.Data.ID,
		EnrollmentDate: "2024-02-01",
	}, suite.admin())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	var response struct {
		Error string `json:"error"`
	}
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "course is full. Maximum 2 students allowed.", response.Error)
}

func (suite *TestSuiteStandard) TestEnrollmentCapacityConcurrent() {
	course := suite.createTestCourse(v1.CourseEditable{MaxStudents: intPtr(3)})
	admin := suite.admin()

	students := make([]models.Student, 8)
	for i := range students {
		students[i], _ = suite.createTestStudent()
	}

	// One engine serves all requests so that only the handlers run concurrently
	baseURL, _ := url.Parse("http://example.com")
	engine, teardown, err := router.Config(baseURL)
	suite.Require().Nil(err)
	defer teardown()
	router.AttachRoutes(engine.Group("/"))

	var wg sync.WaitGroup
	statuses := make([]int, len(students))
	for i, s := range students {
		i, s := i, s
		wg.Add(1)
		go func() {
			defer wg.Done()

			body, _ := json.Marshal(v1.EnrollmentEditable{
				StudentID:      s.ID,
				CourseID:       course.Data.ID,
				EnrollmentDate: "2024-02-01",
			})

			req := httptest.NewRequest(http.MethodPost, "http://example.com/v1/enrollments", bytes.NewBuffer(body))
			for k, v := range admin {
				req.Header.Set(k, v)
			}

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)
			statuses[i] = w.Code
		}()
	}
	wg.Wait()

	created := 0
	for _, s := range statuses {
		if s == http.StatusCreated {
			created++
			continue
		}
		assert.Equal(suite.T(), http.StatusConflict, s)
	}
	assert.Equal(suite.T(), 3, created)
}

func (suite *TestSuiteStandard) TestEnrollmentUnlimited() {
	course := suite.createTestCourse(v1.CourseEditable{MaxStudents: intPtr(0)})

	for i := 0; i < 3; i++ {
		student, _ := suite.createTestStudent()
		suite.createTestEnrollment(student, course.Data.ID)
	}
}

func (suite *TestSuiteStandard) TestEnrollmentDroppedFreesSeat() {
	course := suite.createTestCourse(v1.CourseEditable{MaxStudents: intPtr(1)})
	admin := suite.admin()

	first, _ := suite.createTestStudent()
	enrollment := suite.createTestEnrollment(first, course.Data.ID)

	second, _ := suite.createTestStudent()
	suite.createTestEnrollment(second, course.Data.ID, http.StatusConflict)

	r := test.Request(suite.T(), http.MethodPatch, enrollment.Data.Links.Self, map[string]any{"status": "dropped"}, admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	suite.createTestEnrollment(second, course.Data.ID)
}

func (suite *TestSuiteStandard) TestEnrollmentDuplicate() {
	course := suite.createTestCourse(v1.CourseEditable{})
	student, _ := suite.createTestStudent()

	suite.createTestEnrollment(student, course.Data.ID)
	duplicate := suite.createTestEnrollment(student, course.Data.ID, http.StatusConflict)
	assert.Equal(suite.T(), "conflict: student is already enrolled in this course", *duplicate.Error)
}

func (suite *TestSuiteStandard) TestEnrollmentCreateErrors() {
	course := suite.createTestCourse(v1.CourseEditable{})
	student, studentHeaders := suite.createTestStudent()

	tests := []struct {
		name    string
		body    v1.EnrollmentEditable
		headers map[string]string
		status  int
	}{
		{"Student", v1.EnrollmentEditable{StudentID: student.ID, CourseID: course.Data.ID, EnrollmentDate: "2024-02-01"}, studentHeaders, http.StatusForbidden},
		{"Unknown student", v1.EnrollmentEditable{StudentID: uuid.New(), CourseID: course.Data.ID, EnrollmentDate: "2024-02-01"}, suite.admin(), http.StatusNotFound},
		{"Unknown course", v1.EnrollmentEditable{StudentID: student.ID, CourseID: uuid.New(), EnrollmentDate: "2024-02-01"}, suite.admin(), http.StatusNotFound},
		{"Bad date", v1.EnrollmentEditable{StudentID: student.ID, CourseID: course.Data.ID, EnrollmentDate: "02/01/2024"}, suite.admin(), http.StatusBadRequest},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/enrollments", tt.body, tt.headers)
		test.AssertHTTPStatus(suite.T(), &r, tt.status)
	}
}

func (suite *TestSuiteStandard) TestEnrollmentStudentScope() {
	course := suite.createTestCourse(v1.CourseEditable{})
	own, ownHeaders := suite.createTestStudent()
	other, _ := suite.createTestStudent()

	ownEnrollment := suite.createTestEnrollment(own, course.Data.ID)
	otherEnrollment := suite.createTestEnrollment(other, course.Data.ID)

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/enrollments?student=%s", other.ID), "", ownHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.EnrollmentListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 1)
	assert.Equal(suite.T(), ownEnrollment.Data.ID, list.Data[0].ID)

	r = test.Request(suite.T(), http.MethodGet, otherEnrollment.Data.Links.Self, "", ownHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	missing := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/enrollments/%s", uuid.New()), "", ownHeaders)
	test.AssertHTTPStatus(suite.T(), &missing, http.StatusNotFound)
	assert.Equal(suite.T(), missing.Body.String(), r.Body.String())

	r = test.Request(suite.T(), http.MethodGet, ownEnrollment.Data.Links.Self, "", ownHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	_, trainerHeaders := suite.createTestTrainer()
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/enrollments", "", trainerHeaders)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestEnrollmentListFilter() {
	first := suite.createTestCourse(v1.CourseEditable{})
	second := suite.createTestCourse(v1.CourseEditable{})
	student, _ := suite.createTestStudent()
	admin := suite.admin()

	suite.createTestEnrollment(student, first.Data.ID)
	suite.createTestEnrollment(student, second.Data.ID)

	r := test.Request(suite.T(), http.MethodGet, first.Data.Links.Enrollments, "", admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.EnrollmentListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 1)
	assert.Equal(suite.T(), first.Data.ID, list.Data[0].CourseID)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/enrollments?course=not-a-uuid", "", admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestEnrollmentUpdateAndDelete() {
	course := suite.createTestCourse(v1.CourseEditable{})
	student, _ := suite.createTestStudent()
	admin := suite.admin()

	enrollment := suite.createTestEnrollment(student, course.Data.ID)

	r := test.Request(suite.T(), http.MethodPatch, enrollment.Data.Links.Self, map[string]any{"status": "finished"}, admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, enrollment.Data.Links.Self, map[string]any{"status": "completed"}, admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.EnrollmentResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), models.EnrollmentCompleted, updated.Data.Status)

	r = test.Request(suite.T(), http.MethodDelete, enrollment.Data.Links.Self, "", admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, enrollment.Data.Links.Self, "", admin)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
