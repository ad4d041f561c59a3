package http

import (
	"github.com/gin-gonic/gin"
)

// processAnalyzeReq binds and validates the analyze request body.
func (h *handler) processAnalyzeReq(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processScoreReq binds and validates the score request body.
func (h *handler) processScoreReq(c *gin.Context) (scoreReq, error) {
	var req scoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processEstimateReq binds and validates the estimate request body.
func (h *handler) processEstimateReq(c *gin.Context) (estimateReq, error) {
	var req estimateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processDecomposeReq binds and validates the decompose request body.
func (h *handler) processDecomposeReq(c *gin.Context) (decomposeReq, error) {
	var req decomposeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processTasksReq binds the shared task-list body.
func (h *handler) processTasksReq(c *gin.Context) (tasksReq, error) {
	var req tasksReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processClusterReq binds and validates the cluster request body.
func (h *handler) processClusterReq(c *gin.Context) (clusterReq, error) {
	var req clusterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processParseDateReq binds and validates the parse-date request body.
func (h *handler) processParseDateReq(c *gin.Context) (parseDateReq, error) {
	var req parseDateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
