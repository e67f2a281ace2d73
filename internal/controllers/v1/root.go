package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/traininghub/backend/internal/httputil"
	"github.com/traininghub/backend/internal/models"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Auth            string `json:"auth" example:"https://example.com/api/v1/auth"`                        // URL of the authentication endpoints
	Users           string `json:"users" example:"https://example.com/api/v1/users"`                      // URL of User collection endpoint
	Trainers        string `json:"trainers" example:"https://example.com/api/v1/trainers"`                // URL of Trainer collection endpoint
	Students        string `json:"students" example:"https://example.com/api/v1/students"`                // URL of Student collection endpoint
	Courses         string `json:"courses" example:"https://example.com/api/v1/courses"`                  // URL of Course collection endpoint
	Schedules       string `json:"schedules" example:"https://example.com/api/v1/schedules"`              // URL of Schedule collection endpoint
	TrainerCourses  string `json:"trainerCourses" example:"https://example.com/api/v1/trainer-courses"`   // URL of Trainer Course collection endpoint
	Salaries        string `json:"salaries" example:"https://example.com/api/v1/salaries"`                // URL of Salary collection endpoint
	Enrollments     string `json:"enrollments" example:"https://example.com/api/v1/enrollments"`          // URL of Enrollment collection endpoint
	FeeTransactions string `json:"feeTransactions" example:"https://example.com/api/v1/fee-transactions"` // URL of Fee Transaction collection endpoint
	Certificates    string `json:"certificates" example:"https://example.com/api/v1/certificates"`        // URL of Certificate collection endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Auth:            url + "/v1/auth",
			Users:           url + "/v1/users",
			Trainers:        url + "/v1/trainers",
			Students:        url + "/v1/students",
			Courses:         url + "/v1/courses",
			Schedules:       url + "/v1/schedules",
			TrainerCourses:  url + "/v1/trainer-courses",
			Salaries:        url + "/v1/salaries",
			Enrollments:     url + "/v1/enrollments",
			FeeTransactions: url + "/v1/fee-transactions",
			Certificates:    url + "/v1/certificates",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// RegisterRootRoutes registers the routes on the v1 root. Deleting everything
// requires authentication.
func RegisterRootRoutes(r *gin.RouterGroup, authenticate gin.HandlerFunc) {
	r.GET("", Get)
	r.OPTIONS("", Options)
	r.DELETE("", authenticate, Cleanup)
}
