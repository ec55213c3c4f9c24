package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/middleware"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/ws"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log         *logrus.Logger
	Hub         *ws.Hub
	Nodes       NodeService
	Edges       EdgeService
	Graph       GraphService
	Algorithms  AlgorithmService
	Layout      LayoutService
	Export      ExportService
	CORSOrigins []string
	Version     string
	MaxBodySize int64
}

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.MaxBodySize(deps.MaxBodySize))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		MaxAge:           1 * time.Hour,
		AllowCredentials: false,
	}))
	r.Use(middleware.PrometheusMiddleware())

	// Metrics endpoint (outside the API group, like health).
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(ctx context.Context, api *gin.RouterGroup, deps *RouterDeps) {
	log := deps.Log

	health := NewHealthHandler(deps.Hub, log, deps.Version)
	nodes := NewNodeHandler(deps.Nodes, log)
	edges := NewEdgeHandler(deps.Edges, log)
	graph := NewGraphHandler(deps.Graph, log)
	algorithms := NewAlgorithmHandler(deps.Algorithms, log)
	layout := NewLayoutHandler(deps.Layout, log)
	exportImport := NewExportImportHandler(deps.Export, log)
	stats := NewStatsHandler(deps.Graph, log)

	// Health and readiness.
	api.GET("/health", health.Liveness)
	api.GET("/ready", health.Readiness)

	// Nodes.
	api.GET("/nodes", nodes.List)
	api.POST("/nodes", nodes.Create)
	api.GET("/nodes/:id", nodes.Get)
	api.PUT("/nodes/:id", nodes.Update)
	api.DELETE("/nodes/:id", nodes.Delete)

	// Edges.
	api.GET("/edges", edges.List)
	api.POST("/edges", edges.Create)
	api.DELETE("/edges/:source/:target", edges.Delete)

	// Graph queries and mutations.
	api.GET("/graph/neighbors/:id", graph.Neighbors)
	api.GET("/graph/adjacency", graph.AdjacencyList)
	api.GET("/graph/matrix", graph.AdjacencyMatrix)
	api.GET("/graph/similarity/:a/:b", graph.Similarity)
	api.POST("/graph/random", graph.GenerateRandom)
	api.DELETE("/graph", graph.Clear)
	api.DELETE("/graph/highlights", graph.ClearHighlights)

	// Algorithms.
	api.GET("/algorithms", algorithms.List)
	api.POST("/algorithms/run", algorithms.Run)

	// Layout control.
	api.POST("/layout/start", layout.Start)
	api.POST("/layout/stop", layout.Stop)
	api.POST("/layout/reset", layout.Reset)
	api.POST("/layout/reheat", layout.Reheat)
	api.POST("/layout/step", layout.Step)
	api.GET("/layout/params", layout.GetParams)
	api.PUT("/layout/params", layout.SetParams)

	// Backup and restore.
	api.GET("/export", exportImport.Export)
	api.POST("/import", exportImport.Import)
	api.POST("/import/validate", exportImport.Validate)

	// Stats.
	api.GET("/stats", stats.GetStats)

	// WebSocket endpoint.
	api.GET("/ws", wsHandler(ctx, log, deps.Hub, deps.CORSOrigins))
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(r, deps)
	registerRoutes(ctx, r.Group("/api/v1"), deps)

	return r
}
