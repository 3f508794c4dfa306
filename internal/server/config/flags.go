package config

import (
	"flag"
	"os"
	"time"

	"github.com/okunev/musicbox/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-g string   AWS region
//	-u string   AWS access key (static credentials)
//	-p string   AWS secret key (static credentials)
//	-d string   DynamoDB base endpoint (e.g., "http://127.0.0.1:8000/")
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-b string   S3 images bucket name
//	-s int      session validity, minutes
//	-i int      presigned image URL validity, minutes
//	-m string   recognized external image host suffix
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes
//     using flagx.FilterArgs, avoiding collisions with other components.
//   - Duration flags are accepted as integers in minutes and then converted
//     to time.Duration values.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-u", "-p", "-d", "-e", "-b", "-s", "-i", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.AWSRegion, "g", config.AWSRegion, "AWS region")
	fs.StringVar(&config.AWSAccessKey, "u", config.AWSAccessKey, "AWS access key")
	fs.StringVar(&config.AWSSecretKey, "p", config.AWSSecretKey, "AWS secret key")
	fs.StringVar(&config.DynamoBaseEndpoint, "d", config.DynamoBaseEndpoint, "DynamoDB base endpoint")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.ImagesBucket, "b", config.ImagesBucket, "S3 images bucket")
	fs.StringVar(&config.ImageHostSuffix, "m", config.ImageHostSuffix, "external image host suffix")

	sessionValidityDuration := fs.Int("s", int(config.SessionValidityDuration.Minutes()), "session_validity_duration (in minutes)")
	presignValidityDuration := fs.Int("i", int(config.PresignValidityDuration.Minutes()), "presign_validity_duration (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionValidityDuration = time.Duration(*sessionValidityDuration) * time.Minute
	config.PresignValidityDuration = time.Duration(*presignValidityDuration) * time.Minute
}
