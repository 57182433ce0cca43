package http

import (
	"github.com/gin-gonic/gin"

	"rice-leaf-detection/internal/disease"
	"rice-leaf-detection/pkg/response"
)

// Classify godoc
// @Summary     Classify a rice leaf photo
// @Description Forwards the image to the remote classifier and returns ranked predictions.
// @Description Accepts JSON with a base64 or data URL image, or multipart form field "image".
// @Tags        Classification
// @Accept      json,mpfd
// @Produce     json
// @Param       body  body     classifyReq true  "Base64 image"
// @Param       image formData file        false "Image file (multipart)"
// @Success     200   {object} classifyResp
// @Failure     400   {object} response.Resp "No image, invalid encoding or image too large"
// @Failure     429   {object} response.Resp "Too Many Requests"
// @Failure     503   {object} response.Resp "Classifier is waking up or unavailable"
// @Failure     500   {object} response.Resp "Upstream error or unexpected response format"
// @Router      /api/v1/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClassifyReq(c)
	if err != nil {
		h.l.Warnf(ctx, "classification.delivery.http.Classify: %v", err)
		response.Error(c, h.mapError(err), newRejectedResp(err))
		return
	}

	out := h.uc.Classify(ctx, req.toInput())
	if !out.Succeeded() {
		response.Error(c, h.mapOutcome(out), h.newClassifyResp(out))
		return
	}

	response.OK(c, h.newClassifyResp(out))
}

// ListDiseases godoc
// @Summary     List known leaf conditions
// @Description Returns description, treatment and severity of every condition the classifier reports.
// @Tags        Classification
// @Produce     json
// @Success     200 {object} diseasesResp
// @Router      /api/v1/diseases [GET]
func (h *handler) ListDiseases(c *gin.Context) {
	response.OK(c, newDiseasesResp(disease.All()))
}

// UpstreamStatus godoc
// @Summary     Check the remote classifier
// @Description Reports whether the Hugging Face Space answers. A sleeping Space reports 503.
// @Tags        Classification
// @Produce     json
// @Success     200 {object} upstreamStatusResp
// @Router      /api/v1/upstream/status [GET]
func (h *handler) UpstreamStatus(c *gin.Context) {
	response.OK(c, newUpstreamStatusResp(h.uc.UpstreamStatus(c.Request.Context())))
}
