package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/traininghub/backend/internal/auth"
	"github.com/traininghub/backend/internal/httputil"
	"github.com/traininghub/backend/internal/models"
)

// RegisterCertificateRoutes registers the routes for certificates with
// the RouterGroup that is passed.
func RegisterCertificateRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCertificateList)
		r.GET("", GetCertificates)
		r.POST("", CreateCertificate)
	}

	// Certificate with ID
	{
		r.OPTIONS("/:id", OptionsCertificateDetail)
		r.GET("/:id", GetCertificate)
		r.PATCH("/:id", UpdateCertificate)
		r.DELETE("/:id", DeleteCertificate)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Certificates
// @Success		204
// @Router			/v1/certificates [options]
func OptionsCertificateList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Certificates
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/certificates/{id} [options]
func OptionsCertificateDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Certificate{}, httputil.OptionsGetPatchDelete)
}

// holderName returns the name whose certificates the caller may read.
// It is nil for admins, who may read all certificates.
func holderName(identity auth.Identity) (*string, error) {
	if identity.IsAdmin() {
		return nil, nil
	}

	var user models.User
	err := models.DB.Select("id", "first_name", "last_name").First(&user, "id = ?", identity.UserID).Error
	if err != nil {
		return nil, err
	}

	name := user.FullName()
	return &name, nil
}

// @Summary		Create certificate
// @Description	Issues a certificate
// @Tags			Certificates
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		201			{object}	CertificateResponse
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		403			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			certificate	body		CertificateEditable	true	"Certificate"
// @Router			/v1/certificates [post]
func CreateCertificate(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	var editable CertificateEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		writeError(c, err)
		return
	}

	certificate, err := models.CreateCertificate(models.DB, editable.model())
	if err != nil {
		writeError(c, err)
		return
	}

	data := newCertificate(c, certificate)
	c.JSON(http.StatusCreated, CertificateResponse{Data: &data})
}

// @Summary		Get certificates
// @Description	Returns certificates, latest joined date first. Users who are not admins only see certificates issued to their full name.
// @Tags			Certificates
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	CertificateListResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/certificates [get]
func GetCertificates(c *gin.Context) {
	identity, ok := authorize(c, nil)
	if !ok {
		return
	}

	name, err := holderName(identity)
	if err != nil {
		writeError(c, err)
		return
	}

	certificates, err := models.ListCertificates(models.DB, models.CertificateFilter{Name: name})
	if err != nil {
		writeError(c, err)
		return
	}

	data := make([]Certificate, 0, len(certificates))
	for _, cert := range certificates {
		data = append(data, newCertificate(c, cert))
	}

	c.JSON(http.StatusOK, CertificateListResponse{Data: data})
}

// @Summary		Get certificate
// @Description	Returns a specific certificate. Users who are not admins can only read certificates issued to their full name.
// @Tags			Certificates
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	CertificateResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/certificates/{id} [get]
func GetCertificate(c *gin.Context) {
	identity, ok := authorize(c, nil)
	if !ok {
		return
	}

	id, ok := bindID(c)
	if !ok {
		return
	}

	certificate, err := models.GetCertificate(models.DB, id)
	if err != nil {
		writeError(c, err)
		return
	}

	name, err := holderName(identity)
	if err != nil {
		writeError(c, err)
		return
	}

	if name != nil && *name != certificate.Name {
		writeError(c, hidden("certificate"))
		return
	}

	data := newCertificate(c, certificate)
	c.JSON(http.StatusOK, CertificateResponse{Data: &data})
}

// @Summary		Update certificate
// @Description	Updates a certificate. Only values to be updated need to be specified.
// @Tags			Certificates
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200			{object}	CertificateResponse
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		403			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		URIID						true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			certificate	body		CertificatePatchEditable	true	"Certificate"
// @Router			/v1/certificates/{id} [patch]
func UpdateCertificate(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	id, ok := bindID(c)
	if !ok {
		return
	}

	var editable CertificatePatchEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		writeError(c, err)
		return
	}

	certificate, err := models.UpdateCertificate(models.DB, id, editable.model())
	if err != nil {
		writeError(c, err)
		return
	}

	data := newCertificate(c, certificate)
	c.JSON(http.StatusOK, CertificateResponse{Data: &data})
}

// @Summary		Delete certificate
// @Description	Deletes a certificate
// @Tags			Certificates
// @Security		BearerAuth
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/certificates/{id} [delete]
func DeleteCertificate(c *gin.Context) {
	if _, ok := authorize(c, auth.RequireAdmin); !ok {
		return
	}

	id, ok := bindID(c)
	if !ok {
		return
	}

	err := models.DeleteCertificate(models.DB, id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
