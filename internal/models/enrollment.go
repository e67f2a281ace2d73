package models

import (
	"sync"

	"github.com/google/uuid"
	"github.com/traininghub/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EnrollmentStatus string

const (
	EnrollmentEnrolled  EnrollmentStatus = "enrolled"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentDropped   EnrollmentStatus = "dropped"

	// enrollmentOngoing is not assignable any more, but stored
	// enrollments with it still occupy a seat.
	enrollmentOngoing EnrollmentStatus = "ongoing"
)

// seatStatuses are the statuses of enrollments that occupy a seat in a course.
var seatStatuses = []EnrollmentStatus{EnrollmentEnrolled, enrollmentOngoing}

// Valid reports if the status can be assigned to an enrollment.
func (s EnrollmentStatus) Valid() bool {
	switch s {
	case EnrollmentEnrolled, EnrollmentCompleted, EnrollmentDropped:
		return true
	}
	return false
}

// Enrollment is a student taking a course.
type Enrollment struct {
	DefaultModel
	Student        Student        `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	StudentID      uuid.UUID      `gorm:"index"`
	Course         Course         `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CourseID       uuid.UUID      `gorm:"index"`
	Trainer        *Trainer       `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	TrainerID      *uuid.UUID     `gorm:"index"`
	Schedule       *ClassSchedule `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	ScheduleID     *uuid.UUID
	Status         EnrollmentStatus `gorm:"index"`
	EnrollmentDate types.Date
}

// EnrollmentCreate contains the input for a new enrollment.
type EnrollmentCreate struct {
	StudentID      uuid.UUID
	CourseID       uuid.UUID
	TrainerID      *uuid.UUID
	ScheduleID     *uuid.UUID
	EnrollmentDate string
}

// EnrollmentPatch contains the fields of an enrollment to change.
type EnrollmentPatch struct {
	StudentID      *uuid.UUID
	CourseID       *uuid.UUID
	TrainerID      *uuid.UUID
	ScheduleID     *uuid.UUID
	Status         *EnrollmentStatus
	EnrollmentDate *string
}

// EnrollmentFilter restricts the enrollments returned by ListEnrollments.
type EnrollmentFilter struct {
	StudentID *uuid.UUID
	CourseID  *uuid.UUID
}

// courseLocks serializes enrollment creation per course. Entries are
// dropped when the course is deleted.
var courseLocks sync.Map

// ResetCourseLocks drops the enrollment locks of all courses. It is used
// after all courses have been deleted.
func ResetCourseLocks() {
	courseLocks.Range(func(key, _ any) bool {
		courseLocks.Delete(key)
		return true
	})
}

func lockCourse(id uuid.UUID) func() {
	v, _ := courseLocks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// Enroll creates an enrollment if the student is not enrolled in the
// course yet and the course has a free seat.
//
// Creations for the same course are serialized and the checks run in the
// same transaction as the insert, so concurrent calls cannot overbook a course.
func Enroll(db *gorm.DB, in EnrollmentCreate) (Enrollment, error) {
	unlock := lockCourse(in.CourseID)
	defer unlock()

	var enrollment Enrollment
	err := db.Transaction(func(tx *gorm.DB) error {
		err := mustExist(tx, &Student{}, in.StudentID)
		if err != nil {
			return err
		}

		var course Course
		err = mustExist(tx, &course, in.CourseID)
		if err != nil {
			return err
		}

		var existing int64
		err = tx.Model(&Enrollment{}).Where("student_id = ? AND course_id = ?", in.StudentID, in.CourseID).Count(&existing).Error
		if err != nil {
			return err
		}

		if existing > 0 {
			enrollmentRejections.WithLabelValues("duplicate").Inc()
			return ErrAlreadyEnrolled
		}

		if course.HasSeatLimit() {
			var taken int64
			err = tx.Model(&Enrollment{}).Where("course_id = ? AND status IN ?", in.CourseID, seatStatuses).Count(&taken).Error
			if err != nil {
				return err
			}

			if taken >= int64(course.MaxStudents) {
				enrollmentRejections.WithLabelValues("capacity").Inc()
				return &CapacityError{Max: course.MaxStudents}
			}
		}

		date, err := parseDate("enrollmentDate", in.EnrollmentDate)
		if err != nil {
			return err
		}

		err = checkOptionalReferences(tx, in.TrainerID, in.ScheduleID)
		if err != nil {
			return err
		}

		enrollment = Enrollment{
			StudentID:      in.StudentID,
			CourseID:       in.CourseID,
			TrainerID:      in.TrainerID,
			ScheduleID:     in.ScheduleID,
			Status:         EnrollmentEnrolled,
			EnrollmentDate: date,
		}

		return tx.Omit(clause.Associations).Create(&enrollment).Error
	})
	if err != nil {
		return Enrollment{}, err
	}

	return enrollment, nil
}

// UpdateEnrollment reassigns an enrollment. Only the existence of
// referenced resources and the status are checked, the uniqueness and
// capacity rules of Enroll do not apply.
func UpdateEnrollment(db *gorm.DB, id uuid.UUID, p EnrollmentPatch) (Enrollment, error) {
	e, err := GetEnrollment(db, id)
	if err != nil {
		return Enrollment{}, err
	}

	if p.StudentID != nil {
		err = mustExist(db, &Student{}, *p.StudentID)
		if err != nil {
			return Enrollment{}, err
		}
		e.StudentID = *p.StudentID
	}

	if p.CourseID != nil {
		err = mustExist(db, &Course{}, *p.CourseID)
		if err != nil {
			return Enrollment{}, err
		}
		e.CourseID = *p.CourseID
	}

	err = checkOptionalReferences(db, p.TrainerID, p.ScheduleID)
	if err != nil {
		return Enrollment{}, err
	}

	if p.TrainerID != nil {
		e.TrainerID = p.TrainerID
	}

	if p.ScheduleID != nil {
		e.ScheduleID = p.ScheduleID
	}

	if p.Status != nil {
		if !p.Status.Valid() {
			return Enrollment{}, invalid("status must be one of enrolled, completed, dropped")
		}
		e.Status = *p.Status
	}

	if p.EnrollmentDate != nil {
		e.EnrollmentDate, err = parseDate("enrollmentDate", *p.EnrollmentDate)
		if err != nil {
			return Enrollment{}, err
		}
	}

	err = db.Omit(clause.Associations).Save(&e).Error
	if err != nil {
		return Enrollment{}, err
	}

	return e, nil
}

// GetEnrollment returns the enrollment with the given ID.
func GetEnrollment(db *gorm.DB, id uuid.UUID) (Enrollment, error) {
	var e Enrollment
	err := mustExist(db, &e, id)
	if err != nil {
		return Enrollment{}, err
	}

	return e, nil
}

// DeleteEnrollment deletes the enrollment with the given ID.
func DeleteEnrollment(db *gorm.DB, id uuid.UUID) error {
	e, err := GetEnrollment(db, id)
	if err != nil {
		return err
	}

	return db.Delete(&e).Error
}

// ListEnrollments returns enrollments, most recent first.
func ListEnrollments(db *gorm.DB, filter EnrollmentFilter) ([]Enrollment, error) {
	query := db.Model(&Enrollment{})

	if filter.StudentID != nil {
		query = query.Where("student_id = ?", *filter.StudentID)
	}

	if filter.CourseID != nil {
		query = query.Where("course_id = ?", *filter.CourseID)
	}

	enrollments := []Enrollment{}
	err := query.Order("enrollment_date DESC").Order("created_at DESC").Find(&enrollments).Error
	if err != nil {
		return nil, err
	}

	return enrollments, nil
}

func checkOptionalReferences(tx *gorm.DB, trainerID, scheduleID *uuid.UUID) error {
	if trainerID != nil {
		if err := mustExist(tx, &Trainer{}, *trainerID); err != nil {
			return err
		}
	}

	if scheduleID != nil {
		if err := mustExist(tx, &ClassSchedule{}, *scheduleID); err != nil {
			return err
		}
	}

	return nil
}
