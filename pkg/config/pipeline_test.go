package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPipelineConfig(t *testing.T) {
	cfg := DefaultPipelineConfig()

	assert.Equal(t, 1000, cfg.BusCapacity)
	assert.Equal(t, 64, cfg.MaxConcurrentEvents)
	assert.Equal(t, 16, cfg.OracleConcurrency)
	assert.Equal(t, 60*time.Second, cfg.EventDeadline)
	assert.Equal(t, 24*time.Hour, cfg.BusRetention)
	assert.Equal(t, 30*time.Second, cfg.GracefulShutdownTimeout)
}

func TestValidatePipeline(t *testing.T) {
	tests := []struct {
		name     string
		pipeline *PipelineConfig
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid defaults",
			pipeline: DefaultPipelineConfig(),
			wantErr:  false,
		},
		{
			name:     "nil pipeline",
			pipeline: nil,
			wantErr:  true,
			errMsg:   "pipeline configuration is nil",
		},
		{
			name: "bus capacity zero",
			pipeline: func() *PipelineConfig {
				p := DefaultPipelineConfig()
				p.BusCapacity = 0
				return p
			}(),
			wantErr: true,
			errMsg:  "bus_capacity must be at least 1",
		},
		{
			name: "worker count too low",
			pipeline: func() *PipelineConfig {
				p := DefaultPipelineConfig()
				p.MaxConcurrentEvents = 0
				return p
			}(),
			wantErr: true,
			errMsg:  "max_concurrent_events must be between 1 and 1024",
		},
		{
			name: "worker count too high",
			pipeline: func() *PipelineConfig {
				p := DefaultPipelineConfig()
				p.MaxConcurrentEvents = 1025
				return p
			}(),
			wantErr: true,
			errMsg:  "max_concurrent_events must be between 1 and 1024",
		},
		{
			name: "oracle concurrency zero",
			pipeline: func() *PipelineConfig {
				p := DefaultPipelineConfig()
				p.OracleConcurrency = 0
				return p
			}(),
			wantErr: true,
			errMsg:  "oracle_concurrency must be at least 1",
		},
		{
			name: "event deadline zero",
			pipeline: func() *PipelineConfig {
				p := DefaultPipelineConfig()
				p.EventDeadline = 0
				return p
			}(),
			wantErr: true,
			errMsg:  "event_deadline must be positive",
		},
		{
			name: "bus retention zero",
			pipeline: func() *PipelineConfig {
				p := DefaultPipelineConfig()
				p.BusRetention = 0
				return p
			}(),
			wantErr: true,
			errMsg:  "bus_retention must be positive",
		},
		{
			name: "graceful shutdown timeout zero",
			pipeline: func() *PipelineConfig {
				p := DefaultPipelineConfig()
				p.GracefulShutdownTimeout = 0
				return p
			}(),
			wantErr: true,
			errMsg:  "graceful_shutdown_timeout must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Pipeline: tt.pipeline}
			v := NewValidator(cfg)
			err := v.validatePipeline()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
