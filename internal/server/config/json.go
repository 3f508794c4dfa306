package config

import (
	"os"

	"github.com/goccy/go-json"

	"github.com/okunev/musicbox/internal/flagx"
	"github.com/okunev/musicbox/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "1h" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied into the
// runtime Config struct which uses time.Duration.
type JsonConfig struct {
	EndpointAddrHTTP        string         `json:"endpoint_addr_http"`
	AWSRegion               string         `json:"aws_region"`
	AWSAccessKey            string         `json:"aws_access_key"`
	AWSSecretKey            string         `json:"aws_secret_key"`
	DynamoBaseEndpoint      string         `json:"dynamo_base_endpoint"`
	S3BaseEndpoint          string         `json:"s3_base_endpoint"`
	AccountsTable           string         `json:"accounts_table"`
	SessionsTable           string         `json:"sessions_table"`
	CatalogTable            string         `json:"catalog_table"`
	SubscriptionsTable      string         `json:"subscriptions_table"`
	ImagesBucket            string         `json:"images_bucket"`
	SessionValidityDuration timex.Duration `json:"session_validity_duration"`
	PresignValidityDuration timex.Duration `json:"presign_validity_duration"`
	ImageHostSuffix         string         `json:"image_host_suffix"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path is taken from the -c or -config command-line flags; when
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics.
//
// The caller is expected to merge these values with defaults and
// command-line flags as part of the full configuration process.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.AWSRegion = c.AWSRegion
	config.AWSAccessKey = c.AWSAccessKey
	config.AWSSecretKey = c.AWSSecretKey
	config.DynamoBaseEndpoint = c.DynamoBaseEndpoint
	config.S3BaseEndpoint = c.S3BaseEndpoint
	config.AccountsTable = c.AccountsTable
	config.SessionsTable = c.SessionsTable
	config.CatalogTable = c.CatalogTable
	config.SubscriptionsTable = c.SubscriptionsTable
	config.ImagesBucket = c.ImagesBucket
	config.SessionValidityDuration = c.SessionValidityDuration.Duration
	config.PresignValidityDuration = c.PresignValidityDuration.Duration
	config.ImageHostSuffix = c.ImageHostSuffix
}
