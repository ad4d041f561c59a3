package http

import (
	"github.com/gin-gonic/gin"

	"task-intelligence/pkg/response"
)

// Analyze godoc
// @Summary     Analyze a task
// @Description Runs the full pipeline on one task: priority score, effort estimate, decomposition and due-date parsing.
// @Tags        Analysis
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Task and optional history"
// @Success     200 {object} response.Resp{data=analysis.AnalyzeOutput}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analysis/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, output)
}

// Score godoc
// @Summary     Score tasks
// @Description Computes the 0-100 weighted priority score for each task.
// @Tags        Analysis
// @Accept      json
// @Produce     json
// @Param       body body scoreReq true "Tasks to score"
// @Success     200 {object} response.Resp{data=analysis.ScoreOutput}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analysis/score [POST]
func (h *handler) Score(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScoreReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Score(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Score: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, output)
}

// Estimate godoc
// @Summary     Estimate effort
// @Description Estimates completion minutes for each task via the cascading strategy chain.
// @Tags        Analysis
// @Accept      json
// @Produce     json
// @Param       body body estimateReq true "Tasks and optional completion history"
// @Success     200 {object} response.Resp{data=analysis.EstimateOutput}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analysis/estimate [POST]
func (h *handler) Estimate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEstimateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Estimate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Estimate: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, output)
}

// Decompose godoc
// @Summary     Decompose a task
// @Description Breaks a task into ordered subtasks with two-minute extraction, consolidation and milestones.
// @Tags        Analysis
// @Accept      json
// @Produce     json
// @Param       body body decomposeReq true "Task and decomposition options"
// @Success     200 {object} response.Resp{data=analysis.DecomposeOutput}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analysis/decompose [POST]
func (h *handler) Decompose(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDecomposeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Decompose(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Decompose: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, output)
}

// DetectDependencies godoc
// @Summary     Detect dependencies
// @Description Finds explicit ordering relations between tasks from their text.
// @Tags        Dependencies
// @Accept      json
// @Produce     json
// @Param       body body tasksReq true "Tasks to inspect"
// @Success     200 {object} response.Resp{data=analysis.DependencyOutput}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analysis/dependencies/detect [POST]
func (h *handler) DetectDependencies(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTasksReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.DetectDependencies(ctx, analysisDependencyInput(req))
	if err != nil {
		h.l.Errorf(ctx, "uc.DetectDependencies: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, output)
}

// SuggestDependencies godoc
// @Summary     Suggest dependencies
// @Description Proposes likely dependencies from project deadlines and phase naming.
// @Tags        Dependencies
// @Accept      json
// @Produce     json
// @Param       body body tasksReq true "Tasks to inspect"
// @Success     200 {object} response.Resp{data=analysis.SuggestionOutput}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analysis/dependencies/suggest [POST]
func (h *handler) SuggestDependencies(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTasksReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SuggestDependencies(ctx, analysisDependencyInput(req))
	if err != nil {
		h.l.Errorf(ctx, "uc.SuggestDependencies: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, output)
}

// DetectRecurrence godoc
// @Summary     Detect recurrence
// @Description Finds repeating patterns in completed tasks and suggests recurrence settings.
// @Tags        Recurrence
// @Accept      json
// @Produce     json
// @Param       body body tasksReq true "Tasks with completion history"
// @Success     200 {object} response.Resp{data=analysis.RecurrenceOutput}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analysis/recurrence [POST]
func (h *handler) DetectRecurrence(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTasksReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.DetectRecurrence(ctx, analysisRecurrenceInput(req))
	if err != nil {
		h.l.Errorf(ctx, "uc.DetectRecurrence: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, output)
}

// Cluster godoc
// @Summary     Cluster tasks
// @Description Partitions tasks by category, project, deadline proximity, priority band and name similarity.
// @Tags        Analysis
// @Accept      json
// @Produce     json
// @Param       body body clusterReq true "Tasks to cluster"
// @Success     200 {object} response.Resp{data=analysis.ClusterOutput}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analysis/cluster [POST]
func (h *handler) Cluster(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClusterReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Cluster(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Cluster: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, output)
}

// SuggestMerge godoc
// @Summary     Suggest merges
// @Description Groups near-duplicate tasks within a category into merge candidates.
// @Tags        Analysis
// @Accept      json
// @Produce     json
// @Param       body body tasksReq true "Tasks to inspect"
// @Success     200 {object} response.Resp{data=analysis.MergeOutput}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analysis/merge [POST]
func (h *handler) SuggestMerge(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTasksReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SuggestMerge(ctx, analysisMergeInput(req))
	if err != nil {
		h.l.Errorf(ctx, "uc.SuggestMerge: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, output)
}

// ParseDate godoc
// @Summary     Parse a date
// @Description Extracts a due date from Vietnamese free text against an optional base instant.
// @Tags        Analysis
// @Accept      json
// @Produce     json
// @Param       body body parseDateReq true "Text and optional base date"
// @Success     200 {object} response.Resp{data=analysis.ParseDateOutput}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analysis/parse-date [POST]
func (h *handler) ParseDate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseDateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ParseDate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ParseDate: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, output)
}
