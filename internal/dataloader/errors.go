package dataloader

import "github.com/born-ml/dataloader/internal/sampler"

// ConfigurationError reports an invalid or contradictory Options value.
type ConfigurationError = sampler.ConfigurationError

// Errors shared with the sampler package.
var (
	ErrConfiguration  = sampler.ErrConfiguration
	ErrPassInProgress = sampler.ErrPassInProgress
)
