package httpserver

import (
	"context"

	classificationHTTP "rice-leaf-detection/internal/classification/delivery/http"
	"rice-leaf-detection/internal/middleware"

	"github.com/gin-gonic/gin"
)

// setupClassificationDomain registers /api/v1/classify, /api/v1/diseases
// and /api/v1/upstream/status.
func (srv HTTPServer) setupClassificationDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := classificationHTTP.New(srv.l, srv.classificationUC, srv.maxImageBytes)
	classificationHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Classification domain registered")
	return nil
}
