package httpserver

import (
	"rice-leaf-detection/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	HealthMessage = "Rice leaf disease detection API"
	HealthVersion = "1.0.0"
	ServiceName   = "rice-leaf-detection"
)

type healthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
	Service string `json:"service"`
}

func healthResp(status string) healthStatus {
	return healthStatus{
		Status:  status,
		Message: HealthMessage,
		Version: HealthVersion,
		Service: ServiceName,
	}
}

// healthCheck
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) { response.OK(c, healthResp("healthy")) }

// readyCheck
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready to serve traffic"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) { response.OK(c, healthResp("ready")) }

// liveCheck
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) { response.OK(c, healthResp("alive")) }
