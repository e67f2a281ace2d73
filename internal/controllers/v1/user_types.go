package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/traininghub/backend/internal/auth"
	"github.com/traininghub/backend/internal/models"
)

// UserEditable contains all fields needed to create a user
type UserEditable struct {
	Username  string    `json:"username" example:"jdoe" binding:"required,max=150"`                   // Unique login name
	Email     string    `json:"email" example:"jdoe@example.com" binding:"required,email"`            // Unique email address, used to log in
	Password  string    `json:"password" example:"correct horse battery" binding:"required,min=8"`    // Plain text password, stored hashed
	Role      auth.Role `json:"role" example:"trainer" binding:"required,oneof=admin trainer student"` // Role of the user
	FirstName string    `json:"firstName" example:"Jane" default:""`
	LastName  string    `json:"lastName" example:"Doe" default:""`
	Address   string    `json:"address" example:"1 Main Street" default:""`
	Phone     string    `json:"phone" example:"+1 555 0100" default:""`
}

func (e UserEditable) model() models.UserCreate {
	return models.UserCreate{
		Username:  e.Username,
		Email:     e.Email,
		Password:  e.Password,
		Role:      e.Role,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Address:   e.Address,
		Phone:     e.Phone,
	}
}

// AdminRegistration contains the fields needed to register the first admin.
// The role is always admin.
type AdminRegistration struct {
	Username  string `json:"username" example:"root" binding:"required,max=150"`
	Email     string `json:"email" example:"root@example.com" binding:"required,email"`
	Password  string `json:"password" example:"correct horse battery" binding:"required,min=8"`
	FirstName string `json:"firstName" example:"Jane" default:""`
	LastName  string `json:"lastName" example:"Doe" default:""`
	Address   string `json:"address" example:"1 Main Street" default:""`
	Phone     string `json:"phone" example:"+1 555 0100" default:""`
}

func (e AdminRegistration) model() models.UserCreate {
	return models.UserCreate{
		Username:  e.Username,
		Email:     e.Email,
		Password:  e.Password,
		Role:      auth.RoleAdmin,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Address:   e.Address,
		Phone:     e.Phone,
	}
}

// UserPatchEditable contains the fields of a user that can be updated
type UserPatchEditable struct {
	Username  *string    `json:"username" binding:"omitempty,max=150"`
	Email     *string    `json:"email" binding:"omitempty,email"`
	Password  *string    `json:"password" binding:"omitempty,min=8"`
	Role      *auth.Role `json:"role" binding:"omitempty,oneof=admin trainer student"`
	FirstName *string    `json:"firstName"`
	LastName  *string    `json:"lastName"`
	Address   *string    `json:"address"`
	Phone     *string    `json:"phone"`
}

func (e UserPatchEditable) model() models.UserPatch {
	return models.UserPatch{
		Username:  e.Username,
		Email:     e.Email,
		Password:  e.Password,
		Role:      e.Role,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Address:   e.Address,
		Phone:     e.Phone,
	}
}

type UserLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/users/4e4f2c1a-7c3b-4d1e-9f0a-2b3c4d5e6f70"` // The user itself
}

// User is the API representation of a user. The password hash is never returned.
type User struct {
	models.DefaultModel
	Username  string    `json:"username" example:"jdoe"`
	Email     string    `json:"email" example:"jdoe@example.com"`
	Role      auth.Role `json:"role" example:"trainer"`
	FirstName string    `json:"firstName" example:"Jane"`
	LastName  string    `json:"lastName" example:"Doe"`
	Address   string    `json:"address" example:"1 Main Street"`
	Phone     string    `json:"phone" example:"+1 555 0100"`
	Links     UserLinks `json:"links"`
}

func newUser(c *gin.Context, model models.User) User {
	url := c.GetString(string(models.DBContextURL))

	return User{
		DefaultModel: model.DefaultModel,
		Username:     model.Username,
		Email:        model.Email,
		Role:         model.Role,
		FirstName:    model.FirstName,
		LastName:     model.LastName,
		Address:      model.Address,
		Phone:        model.Phone,
		Links: UserLinks{
			Self: fmt.Sprintf("%s/v1/users/%s", url, model.ID),
		},
	}
}

type UserResponse struct {
	Data  *User   `json:"data"`                                                          // Data for the user
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type UserListResponse struct {
	Data  []User  `json:"data"`                                                          // List of users
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type UserQueryFilter struct {
	Role auth.Role `form:"role"` // By role
}

// LoginEditable contains the credentials for a login
type LoginEditable struct {
	Email    string `json:"email" example:"jdoe@example.com" binding:"required"`
	Password string `json:"password" example:"correct horse battery" binding:"required"`
}

// Token is an access token together with the user it was issued for
type Token struct {
	AccessToken string `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."` // Send as "Authorization: Bearer <token>"
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresAt   string `json:"expiresAt" example:"2024-04-18T20:14:01Z"` // Expiry time of the token, RFC3339
	User        User   `json:"user"`
}

type TokenResponse struct {
	Data  *Token  `json:"data"`                                                // The access token
	Error *string `json:"error" example:"invalid email or password"` // The error, if any occurred
}
