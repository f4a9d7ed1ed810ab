package abibind

import "go.uber.org/zap"

// ContractOption configures a Contract.
type ContractOption func(*contractConfig)

// contractConfig holds configuration for Connect.
type contractConfig struct {
	strictChecksum bool
	logger         *zap.Logger
}

// defaultContractConfig returns the default contract configuration.
func defaultContractConfig() *contractConfig {
	return &contractConfig{
		strictChecksum: false,
		logger:         zap.NewNop(),
	}
}

// WithStrictChecksum rejects mixed-case addresses with a bad EIP-55 checksum.
// By default any casing is accepted.
func WithStrictChecksum() ContractOption {
	return func(c *contractConfig) {
		c.strictChecksum = true
	}
}

// WithLogger sets the logger used for dispatch diagnostics.
// A nil logger is ignored.
func WithLogger(logger *zap.Logger) ContractOption {
	return func(c *contractConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}
