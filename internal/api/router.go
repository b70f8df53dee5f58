package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/userdeck/internal/pkg/requestid"
	screenHttp "github.com/nekogravitycat/userdeck/internal/screen/http"
)

// Config holds the dependencies for the router.
type Config struct {
	IsProduction  bool
	ProdOrigins   string
	ScreenHandler *screenHttp.Handler
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (Request ID, Logger, CORS) and registering routes.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Request ID: Tags every request so error logs can be correlated.
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(requestid.Middleware(), gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	config := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		config.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		config.AllowAllOrigins = true
	}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", requestid.Header}
	config.ExposeHeaders = []string{requestid.Header}
	r.Use(cors.New(config))

	r.SetHTMLTemplate(screenHttp.Templates())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// HTML page at the root, JSON API under /v1
	screenHttp.RegisterPageRoutes(r, cfg.ScreenHandler)
	v1 := r.Group("/v1")
	{
		screenHttp.RegisterRoutes(v1, cfg.ScreenHandler)
	}

	return r
}

// splitOrigins parses a comma separated origin list, skipping blanks.
func splitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
