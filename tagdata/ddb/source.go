/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/registrystore/identifier"
	"github.com/suparena/registrystore/tagdata"
)

// NewClient creates a DynamoDB client from static credentials.
func NewClient(awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	// Load the custom AWS configuration using static credentials
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(cfg), nil
}

// Source reads the tag definitions of a single registry from a DynamoDB
// table. Items follow the source's KeyScheme: all tags of a registry share
// one partition, each item's sort key is the tag identifier, and the
// payload lives in the Replace and Values attributes.
//
// Source implements tagdata.Source.
type Source struct {
	client   *sdk.Client
	table    string
	registry identifier.Identifier
	options  SourceOptions
}

// NewSource creates a Source reading the tag definitions of the given registry.
func NewSource(client *sdk.Client, table string, registry identifier.Identifier, opts ...SourceOption) *Source {
	options := DefaultSourceOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &Source{
		client:   client,
		table:    table,
		registry: registry,
		options:  options,
	}
}

// NewSourceFromConfig creates the client from cfg and returns a Source for the given registry.
func NewSourceFromConfig(cfg Config, registry identifier.Identifier, opts ...SourceOption) (*Source, error) {
	client, err := NewClient(cfg.AccessKey, cfg.SecretKey, cfg.Region)
	if err != nil {
		return nil, err
	}
	return NewSource(client, cfg.Table, registry, opts...), nil
}

// Load pages through the registry's tag partition and decodes every item
// into a tag definition, keyed by the tag identifier from the sort key.
func (s *Source) Load(ctx context.Context) (map[identifier.Identifier]tagdata.File, error) {
	scheme := s.options.KeyScheme

	// Build query input
	input := &sdk.QueryInput{
		TableName:              aws.String(s.table),
		KeyConditionExpression: aws.String(fmt.Sprintf("%s = :pkVal", scheme.PartitionKeyName)),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pkVal": &types.AttributeValueMemberS{Value: scheme.PartitionValue(s.registry)},
		},
		Limit: aws.Int32(s.options.PageSize),
	}

	defs := make(map[identifier.Identifier]tagdata.File)

	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		if lastEvaluatedKey != nil {
			input.ExclusiveStartKey = lastEvaluatedKey
		}

		out, err := s.queryWithRetry(ctx, input)
		if err != nil {
			return nil, err
		}

		for _, item := range out.Items {
			id, file, err := s.decodeItem(item)
			if err != nil {
				return nil, err
			}
			defs[id] = file
		}

		// Check for more pages
		if out.LastEvaluatedKey == nil || len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastEvaluatedKey = out.LastEvaluatedKey
	}

	return defs, nil
}

// tagItem is the payload shape of a tag definition item. Key attributes
// are read separately so custom key schemes keep working.
type tagItem struct {
	Replace bool     `dynamodbav:"Replace"`
	Values  []string `dynamodbav:"Values"`
}

// decodeItem converts a raw DynamoDB item into a tag identifier and its definition
func (s *Source) decodeItem(item map[string]types.AttributeValue) (identifier.Identifier, tagdata.File, error) {
	scheme := s.options.KeyScheme

	sk, ok := item[scheme.SortKeyName].(*types.AttributeValueMemberS)
	if !ok {
		return identifier.Identifier{}, tagdata.File{}, fmt.Errorf("tag item missing string attribute %q", scheme.SortKeyName)
	}

	id, err := identifier.Parse(sk.Value)
	if err != nil {
		return identifier.Identifier{}, tagdata.File{}, fmt.Errorf("tag item %q: %w", sk.Value, err)
	}

	var payload tagItem
	if err := attributevalue.UnmarshalMap(item, &payload); err != nil {
		return identifier.Identifier{}, tagdata.File{}, fmt.Errorf("failed to unmarshal tag item %s: %w", id, err)
	}

	return id, tagdata.File{Replace: payload.Replace, Values: payload.Values}, nil
}

// queryWithRetry executes a query with retry logic for transient failures
func (s *Source) queryWithRetry(ctx context.Context, input *sdk.QueryInput) (*sdk.QueryOutput, error) {
	var lastErr error

	for attempt := 0; attempt <= s.options.MaxRetries; attempt++ {
		// Check context before retry
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		// Execute query
		out, err := s.client.Query(ctx, input)
		if err == nil {
			return out, nil
		}

		lastErr = err

		// Check if error is retryable
		if !isRetryableError(err) {
			return nil, err
		}

		// Don't sleep after last attempt
		if attempt < s.options.MaxRetries {
			// Linear backoff
			backoff := time.Duration(attempt+1) * s.options.RetryBackoff
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("query failed after %d retries: %w", s.options.MaxRetries, lastErr)
}

// isRetryableError determines if an error is worth retrying
func isRetryableError(err error) bool {
	// Check for specific retryable DynamoDB errors
	switch err.(type) {
	case *types.ProvisionedThroughputExceededException:
		return true
	case *types.RequestLimitExceeded:
		return true
	case *types.InternalServerError:
		return true
	}

	// Check for AWS SDK retryable errors
	if awsErr, ok := err.(interface{ IsRetryable() bool }); ok {
		return awsErr.IsRetryable()
	}

	return false
}
