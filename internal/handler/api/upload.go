package api

import (
	"net/http"

	resdto "click-collect/internal/handler/dto/response"
	"click-collect/internal/handler/httperr"
	"click-collect/internal/pkg/clock"
	"click-collect/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	signer commands.ImageSigner
	clock  clock.Clock
}

func NewUploadHandler(signer commands.ImageSigner, clk clock.Clock) *UploadHandler {
	return &UploadHandler{signer: signer, clock: clk}
}

// @Summary Image upload signature
// @Description Signed parameters for a direct Cloudinary upload
// @Tags upload
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UploadSignatureResponse
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /upload/cloudinary-signature [get]
func (h *UploadHandler) Signature(c *gin.Context) {
	sig, err := h.signer.Sign(h.clock.Now())
	if err != nil {
		httperr.Handle(c, err, "Cloudinary not configured")
		return
	}
	c.JSON(http.StatusOK, resdto.UploadSignatureResponse{
		Signature: sig.Signature,
		Timestamp: sig.Timestamp,
		CloudName: sig.CloudName,
		APIKey:    sig.APIKey,
		Folder:    sig.Folder,
	})
}
