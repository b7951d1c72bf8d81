package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webwinghq/webwing/models"
	"github.com/webwinghq/webwing/store"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:                "healthy",
		ParallelAPIConfigured: s.cfg.Parallel.APIKey != "",
		Version:               s.version,
	})
}

func (s *Server) handleSearch(c *gin.Context) {
	var body searchBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.badRequest(c, err)
		return
	}
	if err := models.ValidateStruct(body); err != nil {
		s.badRequest(c, err)
		return
	}

	client, err := s.newClient()
	if err != nil {
		s.writeError(c, err)
		return
	}

	req := models.SearchRequest{
		Objective:     body.Objective,
		SearchQueries: body.SearchQueries,
	}
	if body.MaxResults > 0 {
		req.MaxResults = &body.MaxResults
	}
	if body.Mode != "" {
		mode := models.SearchMode(body.Mode)
		req.Mode = &mode
	}

	resp, err := client.Search(c.Request.Context(), req)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"search_id":    resp.SearchID,
		"results":      resp.Results,
		"result_count": len(resp.Results),
	})
}

func (s *Server) handleExtract(c *gin.Context) {
	var body extractBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.badRequest(c, err)
		return
	}
	if err := models.ValidateStruct(body); err != nil {
		s.badRequest(c, err)
		return
	}

	client, err := s.newClient()
	if err != nil {
		s.writeError(c, err)
		return
	}

	req := models.ExtractRequest{
		URLs:        body.URLs,
		Objective:   body.Objective,
		Excerpts:    true,
		FullContent: body.FullContent,
	}
	resp, err := client.Extract(c.Request.Context(), req)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"extract_id": resp.ExtractID,
		"results":    resp.Results,
		"errors":     resp.Errors,
	})
}

func (s *Server) handleListMonitors(c *gin.Context) {
	client, err := s.newClient()
	if err != nil {
		s.writeError(c, err)
		return
	}
	monitors, err := client.ListMonitors(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"monitors": monitors,
		"count":    len(monitors),
	})
}

func (s *Server) handleCreateMonitor(c *gin.Context) {
	var body monitorCreateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.badRequest(c, err)
		return
	}
	if err := models.ValidateStruct(body); err != nil {
		s.badRequest(c, err)
		return
	}

	client, err := s.newClient()
	if err != nil {
		s.writeError(c, err)
		return
	}

	cadence := models.CadenceDaily
	if body.Cadence != "" {
		cadence = models.MonitorCadence(body.Cadence)
	}
	req := models.CreateMonitorRequest{
		Query:   body.Query,
		Cadence: cadence,
	}
	if body.WebhookURL != nil {
		req.Webhook = &models.WebhookConfig{URL: *body.WebhookURL}
	}

	monitor, err := client.CreateMonitor(c.Request.Context(), req)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, monitor)
}

func (s *Server) handleGetMonitor(c *gin.Context) {
	client, err := s.newClient()
	if err != nil {
		s.writeError(c, err)
		return
	}
	monitor, err := client.GetMonitor(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, monitor)
}

func (s *Server) handleUpdateMonitor(c *gin.Context) {
	var body monitorUpdateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.badRequest(c, err)
		return
	}
	if err := models.ValidateStruct(body); err != nil {
		s.badRequest(c, err)
		return
	}

	client, err := s.newClient()
	if err != nil {
		s.writeError(c, err)
		return
	}

	req := models.UpdateMonitorRequest{Query: body.Query}
	if body.Cadence != nil {
		cadence := models.MonitorCadence(*body.Cadence)
		req.Cadence = &cadence
	}
	if body.Status != nil {
		status := models.MonitorStatus(*body.Status)
		req.Status = &status
	}

	monitor, err := client.UpdateMonitor(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, monitor)
}

func (s *Server) handleDeleteMonitor(c *gin.Context) {
	client, err := s.newClient()
	if err != nil {
		s.writeError(c, err)
		return
	}
	monitorID := c.Param("id")
	if err := client.DeleteMonitor(c.Request.Context(), monitorID); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true, "monitor_id": monitorID})
}

func (s *Server) handleListMonitorEvents(c *gin.Context) {
	client, err := s.newClient()
	if err != nil {
		s.writeError(c, err)
		return
	}
	events, err := client.ListMonitorEvents(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"count":  len(events),
	})
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var body taskRunBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.badRequest(c, err)
		return
	}
	if err := models.ValidateStruct(body); err != nil {
		s.badRequest(c, err)
		return
	}

	client, err := s.newClient()
	if err != nil {
		s.writeError(c, err)
		return
	}

	ctx := c.Request.Context()
	run, err := client.CreateTaskRun(ctx, models.TaskRunRequest{
		Processor: body.Processor,
		Input:     body.Input,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	wait := body.WaitForCompletion == nil || *body.WaitForCompletion
	if wait {
		run, err = client.WaitForTaskRun(ctx, run.RunID, s.waitOpts)
		if err != nil {
			s.writeError(c, err)
			return
		}
		if run.Status == models.TaskRunCompleted {
			result, err := client.GetTaskRunResult(ctx, run.RunID)
			if err != nil {
				s.writeError(c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"run_id": run.RunID,
				"status": run.Status,
				"result": result,
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"run_id":    run.RunID,
		"status":    run.Status,
		"is_active": run.IsActive,
	})
}

func (s *Server) handleGetTask(c *gin.Context) {
	client, err := s.newClient()
	if err != nil {
		s.writeError(c, err)
		return
	}

	ctx := c.Request.Context()
	run, err := client.GetTaskRun(ctx, c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	resp := gin.H{
		"run_id":      run.RunID,
		"status":      run.Status,
		"is_active":   run.IsActive,
		"processor":   run.Processor,
		"created_at":  run.CreatedAt,
		"modified_at": run.ModifiedAt,
	}
	if run.Error != nil {
		resp["error"] = run.Error
	}
	if run.Status == models.TaskRunCompleted {
		result, err := client.GetTaskRunResult(ctx, run.RunID)
		if err != nil {
			s.writeError(c, err)
			return
		}
		resp["result"] = result
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleCreateTaskGroup(c *gin.Context) {
	var body taskGroupBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.badRequest(c, err)
		return
	}
	if err := models.ValidateStruct(body); err != nil {
		s.badRequest(c, err)
		return
	}

	client, err := s.newClient()
	if err != nil {
		s.writeError(c, err)
		return
	}
	group, err := client.CreateTaskGroup(c.Request.Context(), models.TaskGroupRequest{
		Processor: body.Processor,
		Name:      body.Name,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

func (s *Server) handleGetTaskGroup(c *gin.Context) {
	client, err := s.newClient()
	if err != nil {
		s.writeError(c, err)
		return
	}
	group, err := client.GetTaskGroup(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

func (s *Server) handleCreateFindAll(c *gin.Context) {
	var body findallBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.badRequest(c, err)
		return
	}
	if err := models.ValidateStruct(body); err != nil {
		s.badRequest(c, err)
		return
	}

	client, err := s.newClient()
	if err != nil {
		s.writeError(c, err)
		return
	}

	matchLimit := body.MatchLimit
	if matchLimit == 0 {
		matchLimit = 50
	}
	generator := models.GeneratorCore
	if body.Generator != "" {
		generator = models.FindAllGenerator(body.Generator)
	}

	run, err := client.CreateFindAllRun(c.Request.Context(), models.FindAllRequest{
		Objective:       body.Objective,
		EntityType:      body.EntityType,
		MatchConditions: body.MatchConditions,
		Generator:       generator,
		MatchLimit:      matchLimit,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"findall_id": run.FindAllID,
		"status":     run.Status.Status,
		"is_active":  run.Status.IsActive,
	})
}

func (s *Server) handleGetFindAll(c *gin.Context) {
	client, err := s.newClient()
	if err != nil {
		s.writeError(c, err)
		return
	}
	run, err := client.GetFindAllRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"findall_id": run.FindAllID,
		"status":     run.Status.Status,
		"is_active":  run.Status.IsActive,
		"metrics":    run.Status.Metrics,
	})
}

func (s *Server) handleGetFindAllResult(c *gin.Context) {
	client, err := s.newClient()
	if err != nil {
		s.writeError(c, err)
		return
	}
	result, err := client.GetFindAllResult(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleCancelFindAll(c *gin.Context) {
	client, err := s.newClient()
	if err != nil {
		s.writeError(c, err)
		return
	}
	run, err := client.CancelFindAllRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"findall_id": run.FindAllID,
		"status":     run.Status.Status,
		"is_active":  run.Status.IsActive,
	})
}

func (s *Server) handleExtendFindAll(c *gin.Context) {
	var body findallExtendBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.badRequest(c, err)
		return
	}
	if body.AdditionalMatches == 0 {
		body.AdditionalMatches = 50
	}

	client, err := s.newClient()
	if err != nil {
		s.writeError(c, err)
		return
	}
	run, err := client.ExtendFindAllRun(c.Request.Context(), c.Param("id"), body.AdditionalMatches)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"findall_id": run.FindAllID,
		"status":     run.Status.Status,
		"is_active":  run.Status.IsActive,
	})
}

func (s *Server) handleEnrichFindAll(c *gin.Context) {
	var body findallEnrichBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.badRequest(c, err)
		return
	}
	if err := models.ValidateStruct(body); err != nil {
		s.badRequest(c, err)
		return
	}

	client, err := s.newClient()
	if err != nil {
		s.writeError(c, err)
		return
	}
	run, err := client.AddFindAllEnrichment(c.Request.Context(), c.Param("id"), models.EnrichmentRequest{
		EnrichmentType: body.EnrichmentType,
		Fields:         body.Fields,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"findall_id": run.FindAllID,
		"status":     run.Status.Status,
		"is_active":  run.Status.IsActive,
	})
}

func (s *Server) handleDispatch(c *gin.Context) {
	var body dispatchBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.badRequest(c, err)
		return
	}

	if body.Priority == 0 {
		body.Priority = 5
	}
	if body.TurnBudget == 0 {
		body.TurnBudget = 10
	}

	task, err := s.dispatch.Dispatch(store.DispatchRequest{
		ID:          body.ID,
		Project:     body.Project,
		Description: body.Description,
		Priority:    body.Priority,
		TurnBudget:  body.TurnBudget,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) handleDispatchStatus(c *gin.Context) {
	task, err := s.dispatch.Get(c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) handleDispatchCancel(c *gin.Context) {
	task, err := s.dispatch.Cancel(c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}
