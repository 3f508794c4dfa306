// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the musicbox server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the public HTTP endpoint.
//   - AWSRegion: region for the DynamoDB and S3 clients.
//   - AWSAccessKey / AWSSecretKey: optional static credentials; when empty
//     the default AWS credential chain is used.
//   - DynamoBaseEndpoint / S3BaseEndpoint: optional endpoint overrides for
//     local stacks (DynamoDB Local, MinIO).
//   - AccountsTable / SessionsTable / CatalogTable / SubscriptionsTable:
//     DynamoDB table names.
//   - ImagesBucket: S3 bucket holding catalog cover images.
//   - SessionValidityDuration: lifetime of a session token issued at login.
//   - PresignValidityDuration: lifetime of presigned image URLs.
//   - ImageHostSuffix: host suffix that marks an image reference as
//     externally hosted and eligible for presigned-URL rewriting.
type Config struct {
	EndpointAddrHTTP        string
	AWSRegion               string
	AWSAccessKey            string
	AWSSecretKey            string
	DynamoBaseEndpoint      string
	S3BaseEndpoint          string
	AccountsTable           string
	SessionsTable           string
	CatalogTable            string
	SubscriptionsTable      string
	ImagesBucket            string
	SessionValidityDuration time.Duration
	PresignValidityDuration time.Duration
	ImageHostSuffix         string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.AWSRegion = "us-east-1"
	c.AWSAccessKey = ""
	c.AWSSecretKey = ""
	c.DynamoBaseEndpoint = ""
	c.S3BaseEndpoint = ""
	c.AccountsTable = "login"
	c.SessionsTable = "sessions"
	c.CatalogTable = "music"
	c.SubscriptionsTable = "user_subscriptions"
	c.ImagesBucket = "musicbox-images"
	c.SessionValidityDuration = 1 * time.Hour
	c.PresignValidityDuration = 1 * time.Hour
	c.ImageHostSuffix = "githubusercontent.com"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
