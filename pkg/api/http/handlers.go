package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	serviceName    = "SPTM ML Service"
	serviceID      = "ml-service"
	serviceVersion = "1.0.0"

	runningMessage = "SPTM ML Service is running"
)

// PingResponse is the rich health check body served on /ping
type PingResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

// HealthResponse is the short health check body served on /health
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// EtaResponse is the prediction body served on /api/v1/eta
type EtaResponse struct {
	EtaMinutes int      `json:"eta_minutes"`
	Confidence float64  `json:"confidence"`
	Factors    []string `json:"factors"`
	Timestamp  string   `json:"timestamp"`
}

// PredictEtaResponse is the prediction body served on the legacy /predict-eta
type PredictEtaResponse struct {
	EtaMinutes int     `json:"eta_minutes"`
	Confidence float64 `json:"confidence"`
	Message    string  `json:"message"`
}

// StatusResponse is the service metadata body served on /api/v1/status
type StatusResponse struct {
	Service      string `json:"service"`
	Version      string `json:"version"`
	Environment  string `json:"environment"`
	ModelsLoaded bool   `json:"models_loaded"`
}

// ErrorResponse is the envelope for 404 and 500 responses
type ErrorResponse struct {
	Error   string `json:"error"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message,omitempty"`
}

// handlePing handles rich health check requests
func (s *Server) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Status:    "OK",
		Message:   runningMessage,
		Timestamp: time.Now().Format(time.RFC3339),
		Service:   serviceID,
	})
}

// handleHealth handles short health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "OK",
		Message: runningMessage,
	})
}

// handleCalculateEta handles ETA calculation requests.
//
// The body is decoded as JSON when present but does not influence the
// result; decode failures are deliberately ignored for the same reason.
func (s *Server) handleCalculateEta(c *gin.Context) {
	inputs := s.decodeInputs(c)

	pred, err := s.predictor.Predict(c.Request.Context(), inputs)
	if err != nil {
		s.logger.Error("prediction failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Internal server error",
			Message: "Something went wrong",
		})
		return
	}
	s.metrics.RecordPrediction()

	c.JSON(http.StatusOK, EtaResponse{
		EtaMinutes: pred.EtaMinutes,
		Confidence: pred.Confidence,
		Factors:    pred.Factors,
		Timestamp:  pred.Timestamp.Format(time.RFC3339),
	})
}

// handlePredictEta handles ETA requests on the legacy route
func (s *Server) handlePredictEta(c *gin.Context) {
	inputs := s.decodeInputs(c)

	pred, err := s.predictor.Predict(c.Request.Context(), inputs)
	if err != nil {
		s.logger.Error("prediction failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Internal server error",
			Message: "Something went wrong",
		})
		return
	}
	s.metrics.RecordPrediction()

	c.JSON(http.StatusOK, PredictEtaResponse{
		EtaMinutes: pred.EtaMinutes,
		Confidence: pred.Confidence,
		Message:    "ETA prediction (placeholder)",
	})
}

// handleStatus handles service status requests
func (s *Server) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Service:      serviceName,
		Version:      serviceVersion,
		Environment:  s.env,
		ModelsLoaded: s.predictor.ModelsLoaded(),
	})
}

// handleNotFound handles requests to undefined routes
func (s *Server) handleNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Error: "Endpoint not found",
		Path:  c.Request.URL.Path,
	})
}

// decodeInputs best-effort decodes a JSON request body.
func (s *Server) decodeInputs(c *gin.Context) map[string]interface{} {
	var inputs map[string]interface{}
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&inputs); err != nil {
			s.logger.Debug("ignoring undecodable request body", zap.Error(err))
		}
	}
	return inputs
}
