package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/userdeck/internal/api"
	"github.com/nekogravitycat/userdeck/internal/pkg/imageproc"
	"github.com/nekogravitycat/userdeck/internal/screen"
	screenHttp "github.com/nekogravitycat/userdeck/internal/screen/http"
	"github.com/nekogravitycat/userdeck/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction  bool
	ProdOrigins   string
	RandomUserURL string
	BatchSize     int
	FetchTimeout  time.Duration
	AvatarSize    int

	// HTTPClient is used for all outbound requests. Optional.
	HTTPClient *http.Client
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
	Screen *screen.Screen
}

// NewContainer initializes all modules and returns the container.
// The screen is created but not started; callers mount it with Screen.Start.
func NewContainer(cfg Config) *Container {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.FetchTimeout}
	}

	// User Module
	userRepo := user.NewHTTPRepository(client, cfg.RandomUserURL)

	// Screen Module
	scr := screen.New(userRepo, cfg.BatchSize)
	thumbs := imageproc.NewProcessor(client)
	screenHandler := screenHttp.NewHandler(scr, thumbs, cfg.AvatarSize)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:  cfg.IsProduction,
		ProdOrigins:   cfg.ProdOrigins,
		ScreenHandler: screenHandler,
	})

	return &Container{
		Router: router,
		Screen: scr,
	}
}
