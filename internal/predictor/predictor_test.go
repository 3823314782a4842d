package predictor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPredictReturnsFixedEstimate(t *testing.T) {
	p := New(zap.NewNop())

	inputs := []map[string]interface{}{
		nil,
		{},
		{"route_id": "42", "stop_id": "central-7"},
		{"nested": map[string]interface{}{"a": 1.0}},
	}

	for _, in := range inputs {
		pred, err := p.Predict(context.Background(), in)
		require.NoError(t, err)

		assert.Equal(t, 15, pred.EtaMinutes)
		assert.Equal(t, 0.85, pred.Confidence)
		assert.Equal(t, []string{"traffic", "weather", "historical_data"}, pred.Factors)
	}
}

func TestPredictTimestampIsCurrent(t *testing.T) {
	p := New(zap.NewNop())

	before := time.Now()
	pred, err := p.Predict(context.Background(), nil)
	require.NoError(t, err)
	after := time.Now()

	assert.False(t, pred.Timestamp.Before(before))
	assert.False(t, pred.Timestamp.After(after))
}

func TestModelsLoaded(t *testing.T) {
	p := New(zap.NewNop())
	assert.True(t, p.ModelsLoaded())
}
