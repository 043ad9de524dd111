//go:build !integration

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/planning-service/config"
	"github.com/guttosm/planning-service/internal/circuitbreaker"
	"github.com/guttosm/planning-service/internal/metrics"
	"github.com/guttosm/planning-service/internal/repository"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestInitializeDatabase_Disabled(t *testing.T) {
	components := InitializeDatabase(config.DatabaseConfig{Enabled: false})

	assert.Nil(t, components)
	assert.NoError(t, components.Close(context.Background()))
}

func TestNewCircuitBreaker(t *testing.T) {
	cfg := config.DatabaseConfig{
		CircuitBreakerFailureThreshold: 2,
		CircuitBreakerSuccessThreshold: 1,
		CircuitBreakerTimeout:          time.Minute,
	}
	ctx := context.Background()

	tests := []struct {
		name     string
		failures []error
		state    circuitbreaker.State
	}{
		{
			name:     "database errors open the circuit",
			failures: []error{errors.New("connection refused"), errors.New("connection refused")},
			state:    circuitbreaker.StateOpen,
		},
		{
			name:     "cancelled requests do not count",
			failures: []error{context.Canceled, context.Canceled, context.Canceled},
			state:    circuitbreaker.StateClosed,
		},
		{
			name:     "plans of another domain do not count",
			failures: []error{repository.ErrForeignPlan, repository.ErrForeignPlan, repository.ErrForeignPlan},
			state:    circuitbreaker.StateClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name := "test-" + tt.name
			cb := newCircuitBreaker(cfg, name)
			assert.Equal(t, name, cb.Name())
			assert.Equal(t, 0.0, testutil.ToFloat64(metrics.CircuitBreakerState.WithLabelValues(name)))

			for _, err := range tt.failures {
				_ = cb.Execute(ctx, func() error { return err })
			}

			assert.Equal(t, tt.state, cb.State())
			assert.Equal(t, float64(tt.state), testutil.ToFloat64(metrics.CircuitBreakerState.WithLabelValues(name)))
		})
	}
}
