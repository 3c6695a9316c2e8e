package auth

import (
	"net/http"

	"github.com/franciscosanchezn/tablekeeper/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/go-oauth2/oauth2/v4"
	"github.com/sirupsen/logrus"
)

// HandleToken handles the token endpoint for the client credentials grant
// @Summary Token Endpoint
// @Description Obtain an access token using the client credentials grant
// @Tags OAuth2
// @Accept application/x-www-form-urlencoded
// @Produce json
// @Param grant_type formData string true "Grant type: client_credentials"
// @Param client_id formData string true "Client ID"
// @Param client_secret formData string true "Client Secret"
// @Param scope formData string false "Requested scope"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.OAuth2Error
// @Failure 401 {object} models.OAuth2Error
// @Router /api/oauth/token [post]
func (o *OAuthService) HandleToken(c *gin.Context) {
	if gt := c.PostForm("grant_type"); gt != oauth2.ClientCredentials.String() {
		c.JSON(http.StatusBadRequest, models.NewOAuth2Error(models.ErrUnsupportedGrantType,
			"Only the client_credentials grant is supported"))
		return
	}

	if err := o.server.HandleTokenRequest(c.Writer, c.Request); err != nil {
		logrus.WithError(err).Warn("Failed to write token response")
	}
}
