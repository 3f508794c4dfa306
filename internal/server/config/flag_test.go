package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-g", "us-west-1", "-u", "user", "-p", "password",
			"-d", "http://dynamo", "-e", "http://s3", "-b", "bucket", "-s", "30", "-i", "15", "-m", "example.com",
		}, expectPanic: false,
			expected: &Config{
				EndpointAddrHTTP:        "127.0.0.1:9090",
				AWSRegion:               "us-west-1",
				AWSAccessKey:            "user",
				AWSSecretKey:            "password",
				DynamoBaseEndpoint:      "http://dynamo",
				S3BaseEndpoint:          "http://s3",
				ImagesBucket:            "bucket",
				SessionValidityDuration: 30 * time.Minute,
				PresignValidityDuration: 15 * time.Minute,
				ImageHostSuffix:         "example.com",
			}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Equal(t, tt.expected, config)
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
