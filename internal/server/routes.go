package server

import (
	"github.com/gin-gonic/gin"

	"github.com/webwinghq/webwing/internal/metrics"
)

// registerRoutes sets up all endpoints.
func (s *Server) registerRoutes() {
	s.engine.GET("/health", s.handleHealth)
	s.engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := s.engine.Group("/api")

	api.POST("/search", s.handleSearch)
	api.POST("/extract", s.handleExtract)

	api.GET("/monitors", s.handleListMonitors)
	api.POST("/monitors", s.handleCreateMonitor)
	api.GET("/monitors/:id", s.handleGetMonitor)
	api.POST("/monitors/:id", s.handleUpdateMonitor)
	api.DELETE("/monitors/:id", s.handleDeleteMonitor)
	api.GET("/monitors/:id/events", s.handleListMonitorEvents)

	api.POST("/tasks", s.handleCreateTask)
	api.GET("/tasks/:id", s.handleGetTask)

	api.POST("/taskgroups", s.handleCreateTaskGroup)
	api.GET("/taskgroups/:id", s.handleGetTaskGroup)

	api.POST("/findall", s.handleCreateFindAll)
	api.GET("/findall/:id", s.handleGetFindAll)
	api.GET("/findall/:id/result", s.handleGetFindAllResult)
	api.POST("/findall/:id/cancel", s.handleCancelFindAll)
	api.POST("/findall/:id/extend", s.handleExtendFindAll)
	api.POST("/findall/:id/enrich", s.handleEnrichFindAll)

	// Local registry only; no remote call behind these.
	api.POST("/dispatch", s.handleDispatch)
	api.GET("/dispatch/:id", s.handleDispatchStatus)
	api.POST("/dispatch/:id/cancel", s.handleDispatchCancel)
}
