/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the connection settings for a DynamoDB tag source
type Config struct {
	AccessKey string `env:"AWS_ACCESS_KEY,required"`
	SecretKey string `env:"AWS_SECRET_KEY,required"`
	Region    string `env:"AWS_REGION" envDefault:"us-east-1"`
	Table     string `env:"AWS_DDB_TABLE,required"`
}

// ConfigFromEnv reads the connection settings from environment variables
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing DynamoDB source config: %w", err)
	}
	return cfg, nil
}
