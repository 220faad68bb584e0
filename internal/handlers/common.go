package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"disease-predictor-gateway/internal/backend"
	"disease-predictor-gateway/internal/utils"
)

// upstreamError renders a backend failure: structured error messages pass
// through verbatim with their original status, anything else (transport
// failures, malformed bodies) becomes a 502 with the given fallback.
func upstreamError(c *gin.Context, err error, fallback string) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		utils.Error(c, apiErr.StatusCode, apiErr.Message)
		return
	}
	utils.BadGateway(c, fallback)
}
