package handlers

import (
	_ "bandgap_lab/docs"
	"bandgap_lab/internal/logger"
	"bandgap_lab/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options carries the HTTP-layer settings read from config.
type Options struct {
	// ImagesDir is served under /static/images.
	ImagesDir string
	// LegacyStatusCodes reports ingestion validation failures as 500
	// instead of 400, for front-ends written against the old backend.
	LegacyStatusCodes bool
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	opts     Options
}

// NewHandler constructs a new HTTP handler with dependencies. A nil log discards output.
func NewHandler(services *service.Service, log *logger.Logger, opts Options) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	if opts.ImagesDir == "" {
		opts.ImagesDir = defaultImagesDir
	}
	return &Handler{services: services, log: log, opts: opts}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestMiddleware)
	router.SetHTMLTemplate(pageTemplates)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", h.health)

	h.registerPageRoutes(router)
	h.registerAPIRoutes(router)

	// Live band-gap feed for the graphs page
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerPageRoutes(r *gin.Engine) {
	r.GET("/", h.indexPage)
	r.GET("/readings_graphs.html", h.graphsPage)
	r.GET("/static/images/*filepath", h.serveImage)
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.POST("/log_data", h.logData)
		api.GET("/get_all_data", h.getAllData)
		api.GET("/calculate_band_gap", h.calculateBandGap)
		api.GET("/band_gap_plot.png", h.bandGapPlot)
	}
}
