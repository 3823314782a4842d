package predictor

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Placeholder estimate returned for every route until real models ship.
const (
	baseEtaMinutes = 15
	baseConfidence = 0.85
)

// defaultFactors lists the signals a trained model would weigh.
var defaultFactors = []string{"traffic", "weather", "historical_data"}

// Prediction is the result of a single ETA estimation.
type Prediction struct {
	EtaMinutes int
	Confidence float64
	Factors    []string
	Timestamp  time.Time
}

// Predictor estimates bus arrival times.
//
// This is a placeholder implementation: it accepts arbitrary request inputs
// and returns a fixed estimate. The real implementation will load trained
// models and score them against live traffic and weather feeds.
type Predictor struct {
	logger *zap.Logger
}

// New creates a Predictor. Model loading will happen here once models exist.
func New(logger *zap.Logger) *Predictor {
	return &Predictor{logger: logger}
}

// Predict returns an ETA estimate for the given request inputs.
//
// The inputs are accepted but do not influence the result; they are logged at
// debug level so request shapes can be studied before the model work starts.
func (p *Predictor) Predict(ctx context.Context, inputs map[string]interface{}) (Prediction, error) {
	if len(inputs) > 0 {
		p.logger.Debug("prediction requested", zap.Any("inputs", inputs))
	}

	return Prediction{
		EtaMinutes: baseEtaMinutes,
		Confidence: baseConfidence,
		Factors:    defaultFactors,
		Timestamp:  time.Now(),
	}, nil
}

// ModelsLoaded reports whether prediction models are available. The
// placeholder always answers true so the status endpoint stays stable.
func (p *Predictor) ModelsLoaded() bool {
	return true
}
