package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/traininghub/backend/internal/auth"
	"gorm.io/gorm"
)

// User is an account that can log in.
type User struct {
	DefaultModel
	Username     string    `gorm:"uniqueIndex"`
	Email        string    `gorm:"uniqueIndex"`
	PasswordHash string    `json:"-"`
	Role         auth.Role `gorm:"index"`
	FirstName    string
	LastName     string
	Address      string
	Phone        string
}

// UserCreate contains the data needed to create a user.
type UserCreate struct {
	Username  string
	Email     string
	Password  string
	Role      auth.Role
	FirstName string
	LastName  string
	Address   string
	Phone     string
}

// UserPatch contains the fields of a user that can be changed.
// Nil fields are left untouched.
type UserPatch struct {
	Username  *string
	Email     *string
	Password  *string
	Role      *auth.Role
	FirstName *string
	LastName  *string
	Address   *string
	Phone     *string
}

// BeforeSave trims whitespace and verifies required fields.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)
	u.Address = strings.TrimSpace(u.Address)
	u.Phone = strings.TrimSpace(u.Phone)

	if u.Username == "" {
		return invalid("username is required")
	}

	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return invalid("a valid email address is required")
	}

	if !u.Role.Valid() {
		return invalid("role must be one of %s", strings.Join(roleNames(), ", "))
	}

	return nil
}

// UserRole returns the stored role of the user with the given ID.
// It is the role lookup used to authenticate requests.
func UserRole(id uuid.UUID) (auth.Role, error) {
	var user User
	err := DB.Select("id", "role").First(&user, "id = ?", id).Error
	if errors.Is(err, ErrResourceNotFound) {
		return "", auth.ErrUnknownUser
	} else if err != nil {
		return "", err
	}

	return user.Role, nil
}

// FullName returns first and last name of the user separated by a space.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func roleNames() []string {
	names := make([]string, 0, len(auth.Roles))
	for _, r := range auth.Roles {
		names = append(names, r.String())
	}
	return names
}

// CreateUser hashes the password and persists a new user.
func CreateUser(db *gorm.DB, in UserCreate) (User, error) {
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return User{}, invalid("%s", err.Error())
	}

	user := User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Address:      in.Address,
		Phone:        in.Phone,
	}

	err = db.Create(&user).Error
	if err != nil {
		return User{}, err
	}

	return user, nil
}

// RegisterAdmin creates the first admin user. Once any admin exists,
// ErrAdminAlreadyExists is returned.
func RegisterAdmin(db *gorm.DB, in UserCreate) (User, error) {
	var user User

	err := db.Transaction(func(tx *gorm.DB) error {
		var admins int64
		err := tx.Model(&User{}).Where("role = ?", auth.RoleAdmin).Count(&admins).Error
		if err != nil {
			return err
		}

		if admins > 0 {
			return ErrAdminAlreadyExists
		}

		in.Role = auth.RoleAdmin
		user, err = CreateUser(tx, in)
		return err
	})

	return user, err
}

// UpdateUser applies the patch to the user with the given ID.
func UpdateUser(db *gorm.DB, id uuid.UUID, p UserPatch) (User, error) {
	var user User
	err := mustExist(db, &user, id)
	if err != nil {
		return User{}, err
	}

	if p.Password != nil {
		hash, err := auth.HashPassword(*p.Password)
		if err != nil {
			return User{}, invalid("%s", err.Error())
		}
		user.PasswordHash = hash
	}

	setIfPresent(&user.Username, p.Username)
	setIfPresent(&user.Email, p.Email)
	setIfPresent(&user.Role, p.Role)
	setIfPresent(&user.FirstName, p.FirstName)
	setIfPresent(&user.LastName, p.LastName)
	setIfPresent(&user.Address, p.Address)
	setIfPresent(&user.Phone, p.Phone)

	err = db.Save(&user).Error
	if err != nil {
		return User{}, err
	}

	return user, nil
}

// Login returns the user with the given email if the password matches.
func Login(db *gorm.DB, email, password string) (User, error) {
	var user User
	err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if errors.Is(err, ErrResourceNotFound) {
		return User{}, ErrInvalidCredentials
	} else if err != nil {
		return User{}, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return User{}, ErrInvalidCredentials
	}

	return user, nil
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
