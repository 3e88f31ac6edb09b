package ddb

import (
	"time"
)

// SourceOptions configures how tag definitions are read from DynamoDB
type SourceOptions struct {
	PageSize     int32         // Items per DynamoDB page (default: 100)
	MaxRetries   int           // Retry attempts for transient errors (default: 3)
	RetryBackoff time.Duration // Backoff between retries, grows linearly per attempt (default: 1s)
	KeyScheme    KeyScheme     // Table attribute layout (default: DefaultKeyScheme)
}

// SourceOption is a functional option for configuring a Source
type SourceOption func(*SourceOptions)

// DefaultSourceOptions returns default source options
func DefaultSourceOptions() SourceOptions {
	return SourceOptions{
		PageSize:     100,
		MaxRetries:   3,
		RetryBackoff: time.Second,
		KeyScheme:    DefaultKeyScheme,
	}
}

// WithPageSize sets the DynamoDB page size
func WithPageSize(size int32) SourceOption {
	return func(opts *SourceOptions) {
		opts.PageSize = size
	}
}

// WithMaxRetries sets the maximum retry attempts
func WithMaxRetries(retries int) SourceOption {
	return func(opts *SourceOptions) {
		opts.MaxRetries = retries
	}
}

// WithRetryBackoff sets the retry backoff duration
func WithRetryBackoff(backoff time.Duration) SourceOption {
	return func(opts *SourceOptions) {
		opts.RetryBackoff = backoff
	}
}

// WithKeyScheme sets the table attribute layout
func WithKeyScheme(scheme KeyScheme) SourceOption {
	return func(opts *SourceOptions) {
		opts.KeyScheme = scheme
	}
}
