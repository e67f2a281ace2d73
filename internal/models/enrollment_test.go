package models_test

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/traininghub/backend/internal/models"
)

func (suite *TestSuiteStandard) countEnrollments(course models.Course) int64 {
	var count int64
	err := models.DB.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&count).Error
	suite.Require().Nil(err)
	return count
}

func (suite *TestSuiteStandard) TestEnroll() {
	student := suite.createTestStudent()
	course := suite.createTestCourse(models.Course{MaxStudents: 10})

	enrollment, err := models.Enroll(models.DB, models.EnrollmentCreate{
		StudentID:      student.ID,
		CourseID:       course.ID,
		EnrollmentDate: "2024-02-01",
	})
	suite.Require().Nil(err)

	assert.Equal(suite.T(), models.EnrollmentEnrolled, enrollment.Status)
	assert.Equal(suite.T(), "2024-02-01", enrollment.EnrollmentDate.String())
	assert.Nil(suite.T(), enrollment.TrainerID)
}

func (suite *TestSuiteStandard) TestEnrollDuplicate() {
	student := suite.createTestStudent()
	course := suite.createTestCourse(models.Course{MaxStudents: 10})
	first := suite.createTestEnrollment(student, course)

	// The pair is unique regardless of status
	dropped := models.EnrollmentDropped
	_, err := models.UpdateEnrollment(models.DB, first.ID, models.EnrollmentPatch{Status: &dropped})
	suite.Require().Nil(err)

	_, err = models.Enroll(models.DB, models.EnrollmentCreate{
		StudentID:      student.ID,
		CourseID:       course.ID,
		EnrollmentDate: "2024-02-02",
	})
	assert.ErrorIs(suite.T(), err, models.ErrConflict)
	assert.ErrorIs(suite.T(), err, models.ErrAlreadyEnrolled)
	assert.Equal(suite.T(), int64(1), suite.countEnrollments(course))
}

func (suite *TestSuiteStandard) TestEnrollCapacity() {
	course := suite.createTestCourse(models.Course{MaxStudents: 2})
	suite.createTestEnrollment(suite.createTestStudent(), course)
	suite.createTestEnrollment(suite.createTestStudent(), course)

	_, err := models.Enroll(models.DB, models.EnrollmentCreate{
		StudentID:      suite.createTestStudent().ID,
		CourseID:       course.ID,
		EnrollmentDate: "2024-02-01",
	})
	assert.ErrorIs(suite.T(), err, models.ErrCapacity)
	assert.Contains(suite.T(), err.Error(), "2")
	assert.EqualError(suite.T(), err, "course is full. Maximum 2 students allowed.")

	var capacityErr *models.CapacityError
	if assert.True(suite.T(), errors.As(err, &capacityErr)) {
		assert.Equal(suite.T(), 2, capacityErr.Max)
	}

	assert.Equal(suite.T(), int64(2), suite.countEnrollments(course))
}

func (suite *TestSuiteStandard) TestEnrollCapacityIgnoresFinishedEnrollments() {
	course := suite.createTestCourse(models.Course{MaxStudents: 1})
	enrollment := suite.createTestEnrollment(suite.createTestStudent(), course)

	completed := models.EnrollmentCompleted
	_, err := models.UpdateEnrollment(models.DB, enrollment.ID, models.EnrollmentPatch{Status: &completed})
	suite.Require().Nil(err)

	_, err = models.Enroll(models.DB, models.EnrollmentCreate{
		StudentID:      suite.createTestStudent().ID,
		CourseID:       course.ID,
		EnrollmentDate: "2024-02-01",
	})
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestEnrollUnlimited() {
	course := suite.createTestCourse(models.Course{MaxStudents: 0})

	for i := 0; i < 3; i++ {
		suite.createTestEnrollment(suite.createTestStudent(), course)
	}

	assert.Equal(suite.T(), int64(3), suite.countEnrollments(course))
}

func (suite *TestSuiteStandard) TestEnrollConcurrent() {
	course := suite.createTestCourse(models.Course{MaxStudents: 3})

	students := make([]models.Student, 8)
	for i := range students {
		students[i] = suite.createTestStudent()
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(students))
	for _, student := range students {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			_, err := models.Enroll(models.DB, models.EnrollmentCreate{
				StudentID:      id,
				CourseID:       course.ID,
				EnrollmentDate: "2024-02-01",
			})
			errs <- err
		}(student.ID)
	}
	wg.Wait()
	close(errs)

	var full int
	for err := range errs {
		if err != nil {
			assert.ErrorIs(suite.T(), err, models.ErrCapacity)
			full++
		}
	}

	assert.Equal(suite.T(), 5, full)
	assert.Equal(suite.T(), int64(3), suite.countEnrollments(course))
}

func (suite *TestSuiteStandard) TestEnrollErrors() {
	student := suite.createTestStudent()
	course := suite.createTestCourse(models.Course{MaxStudents: 10})
	unknown := uuid.New()

	tests := []struct {
		name string
		in   models.EnrollmentCreate
		err  error
		msg  string
	}{
		{"Unknown student", models.EnrollmentCreate{StudentID: unknown, CourseID: course.ID, EnrollmentDate: "2024-02-01"}, models.ErrResourceNotFound, "there is no student matching your query"},
		{"Unknown course", models.EnrollmentCreate{StudentID: student.ID, CourseID: unknown, EnrollmentDate: "2024-02-01"}, models.ErrResourceNotFound, "there is no course matching your query"},
		{"Bad date", models.EnrollmentCreate{StudentID: student.ID, CourseID: course.ID, EnrollmentDate: "01.02.2024"}, models.ErrValidation, "invalid enrollmentDate format. Use YYYY-MM-DD"},
		{"Unknown trainer", models.EnrollmentCreate{StudentID: student.ID, CourseID: course.ID, EnrollmentDate: "2024-02-01", TrainerID: &unknown}, models.ErrResourceNotFound, "there is no trainer matching your query"},
		{"Unknown schedule", models.EnrollmentCreate{StudentID: student.ID, CourseID: course.ID, EnrollmentDate: "2024-02-01", ScheduleID: &unknown}, models.ErrResourceNotFound, "there is no class schedule matching your query"},
	}

	for _, tt := range tests {
		_, err := models.Enroll(models.DB, tt.in)
		assert.ErrorIs(suite.T(), err, tt.err, tt.name)
		assert.EqualError(suite.T(), err, tt.msg, tt.name)
	}

	assert.Equal(suite.T(), int64(0), suite.countEnrollments(course))
}

func (suite *TestSuiteStandard) TestUpdateEnrollmentSkipsGuard() {
	full := suite.createTestCourse(models.Course{MaxStudents: 1})
	suite.createTestEnrollment(suite.createTestStudent(), full)

	other := suite.createTestCourse(models.Course{MaxStudents: 1})
	moving := suite.createTestEnrollment(suite.createTestStudent(), other)

	// Moving into a full course is allowed on update
	updated, err := models.UpdateEnrollment(models.DB, moving.ID, models.EnrollmentPatch{CourseID: &full.ID})
	suite.Require().Nil(err)
	assert.Equal(suite.T(), full.ID, updated.CourseID)
	assert.Equal(suite.T(), int64(2), suite.countEnrollments(full))
}

func (suite *TestSuiteStandard) TestUpdateEnrollmentErrors() {
	enrollment := suite.createTestEnrollment(suite.createTestStudent(), suite.createTestCourse(models.Course{MaxStudents: 5}))
	unknown := uuid.New()

	_, err := models.UpdateEnrollment(models.DB, unknown, models.EnrollmentPatch{})
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	_, err = models.UpdateEnrollment(models.DB, enrollment.ID, models.EnrollmentPatch{StudentID: &unknown})
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	_, err = models.UpdateEnrollment(models.DB, enrollment.ID, models.EnrollmentPatch{TrainerID: &unknown})
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	status := models.EnrollmentStatus("ongoing")
	_, err = models.UpdateEnrollment(models.DB, enrollment.ID, models.EnrollmentPatch{Status: &status})
	assert.ErrorIs(suite.T(), err, models.ErrValidation)
}

func (suite *TestSuiteStandard) TestListAndDeleteEnrollments() {
	course := suite.createTestCourse(models.Course{MaxStudents: 5})
	student := suite.createTestStudent()
	own := suite.createTestEnrollment(student, course)
	suite.createTestEnrollment(suite.createTestStudent(), course)

	all, err := models.ListEnrollments(models.DB, models.EnrollmentFilter{})
	suite.Require().Nil(err)
	assert.Len(suite.T(), all, 2)

	mine, err := models.ListEnrollments(models.DB, models.EnrollmentFilter{StudentID: &student.ID})
	suite.Require().Nil(err)
	suite.Require().Len(mine, 1)
	assert.Equal(suite.T(), own.ID, mine[0].ID)

	suite.Require().Nil(models.DeleteEnrollment(models.DB, own.ID))
	assert.ErrorIs(suite.T(), models.DeleteEnrollment(models.DB, own.ID), models.ErrResourceNotFound)
}
