package models

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/traininghub/backend/internal/types"
	"gorm.io/gorm"
)

// Certificate records a completed internship or training role. The PDF
// document is rendered elsewhere from this record.
type Certificate struct {
	DefaultModel
	Name                string `gorm:"index"`
	Company             string
	RoleField           string
	JoinedDate          types.Date
	EndDate             types.Date
	WorkingDays         int
	SupervisorSignature string
}

// CertificateCreate contains the data needed to issue a certificate.
type CertificateCreate struct {
	Name                string
	Company             string
	RoleField           string
	JoinedDate          string
	EndDate             string
	WorkingDays         int
	SupervisorSignature string
}

// CertificatePatch contains the fields of a certificate that can be changed.
// Nil fields are left untouched.
type CertificatePatch struct {
	Name                *string
	Company             *string
	RoleField           *string
	JoinedDate          *string
	EndDate             *string
	WorkingDays         *int
	SupervisorSignature *string
}

// CertificateFilter restricts the certificates returned by ListCertificates.
type CertificateFilter struct {
	Name *string
}

// BeforeSave trims whitespace and verifies the certificate.
func (c *Certificate) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Company = strings.TrimSpace(c.Company)
	c.RoleField = strings.TrimSpace(c.RoleField)
	c.SupervisorSignature = strings.TrimSpace(c.SupervisorSignature)

	if c.Name == "" || c.Company == "" || c.RoleField == "" {
		return invalid("name, company and roleField are required")
	}

	for _, f := range []struct {
		field string
		value string
		max   int
	}{
		{"name", c.Name, 100},
		{"company", c.Company, 500},
		{"roleField", c.RoleField, 500},
		{"supervisorSignature", c.SupervisorSignature, 300},
	} {
		if utf8.RuneCountInString(f.value) > f.max {
			return invalid("%s cannot be longer than %d characters", f.field, f.max)
		}
	}

	if c.JoinedDate.IsZero() {
		return invalid("joinedDate is required")
	}

	if c.EndDate.IsZero() {
		return invalid("endDate is required")
	}

	if c.EndDate.Before(c.JoinedDate) {
		return invalid("endDate must not be before joinedDate")
	}

	if c.WorkingDays <= 0 {
		return invalid("workingDays must be greater than zero")
	}

	return nil
}

// CreateCertificate validates the input and persists a new certificate.
func CreateCertificate(db *gorm.DB, in CertificateCreate) (Certificate, error) {
	c := Certificate{
		Name:                in.Name,
		Company:             in.Company,
		RoleField:           in.RoleField,
		WorkingDays:         in.WorkingDays,
		SupervisorSignature: in.SupervisorSignature,
	}

	var err error
	c.JoinedDate, err = parseDate("joinedDate", in.JoinedDate)
	if err != nil {
		return Certificate{}, err
	}

	c.EndDate, err = parseDate("endDate", in.EndDate)
	if err != nil {
		return Certificate{}, err
	}

	err = db.Create(&c).Error
	if err != nil {
		return Certificate{}, err
	}

	return c, nil
}

// UpdateCertificate merges the patch into the stored certificate.
func UpdateCertificate(db *gorm.DB, id uuid.UUID, p CertificatePatch) (Certificate, error) {
	c, err := GetCertificate(db, id)
	if err != nil {
		return Certificate{}, err
	}

	if p.JoinedDate != nil {
		c.JoinedDate, err = parseDate("joinedDate", *p.JoinedDate)
		if err != nil {
			return Certificate{}, err
		}
	}

	if p.EndDate != nil {
		c.EndDate, err = parseDate("endDate", *p.EndDate)
		if err != nil {
			return Certificate{}, err
		}
	}

	setIfPresent(&c.Name, p.Name)
	setIfPresent(&c.Company, p.Company)
	setIfPresent(&c.RoleField, p.RoleField)
	setIfPresent(&c.WorkingDays, p.WorkingDays)
	setIfPresent(&c.SupervisorSignature, p.SupervisorSignature)

	err = db.Save(&c).Error
	if err != nil {
		return Certificate{}, err
	}

	return c, nil
}

// GetCertificate returns the certificate with the given ID.
func GetCertificate(db *gorm.DB, id uuid.UUID) (Certificate, error) {
	var c Certificate
	err := mustExist(db, &c, id)
	if err != nil {
		return Certificate{}, err
	}

	return c, nil
}

// DeleteCertificate deletes the certificate with the given ID.
func DeleteCertificate(db *gorm.DB, id uuid.UUID) error {
	c, err := GetCertificate(db, id)
	if err != nil {
		return err
	}

	return db.Delete(&c).Error
}

// ListCertificates returns certificates, latest joined date first.
func ListCertificates(db *gorm.DB, filter CertificateFilter) ([]Certificate, error) {
	query := db.Model(&Certificate{})

	if filter.Name != nil {
		query = query.Where("name = ?", strings.TrimSpace(*filter.Name))
	}

	certificates := []Certificate{}
	err := query.Order("joined_date DESC").Order("created_at DESC").Find(&certificates).Error
	if err != nil {
		return nil, err
	}

	return certificates, nil
}
