package config

import (
	"os"
)

// Redis configuration struct.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// Database configuration struct.
type DatabaseConfiguration struct {
	URL string
}

// Chart/score provider configuration struct.
type ProviderConfiguration struct {
	BaseURL  string
	AliasURL string
	Token    string
}

// Bucket configuration for the log uploads.
type BucketConfiguration struct {
	Region       string
	AccessKey    string
	AccessSecret string
	Endpoint     string
	LogBucket    string
}

var (
	Redis    RedisConfiguration
	Database DatabaseConfiguration
	Provider ProviderConfiguration
	Bucket   BucketConfiguration
)

// Load the variables.
func LoadEnv() {
	// Load the Redis configuration.
	Redis.Host = os.Getenv("REDIS_HOST")
	Redis.Port = os.Getenv("REDIS_PORT")
	Redis.Password = os.Getenv("REDIS_PASSWORD")

	// Load the database configuration.
	Database.URL = os.Getenv("DATABASE_URL")

	// Load the provider configuration.
	Provider.BaseURL = os.Getenv("PROVIDER_BASE_URL")
	Provider.AliasURL = os.Getenv("PROVIDER_ALIAS_URL")
	Provider.Token = os.Getenv("PROVIDER_TOKEN")

	// Load the bucket configuration.
	Bucket.Region = os.Getenv("BUCKET_REGION")
	Bucket.AccessKey = os.Getenv("BUCKET_ACCESS_KEY")
	Bucket.AccessSecret = os.Getenv("BUCKET_ACCESS_SECRET")
	Bucket.Endpoint = os.Getenv("BUCKET_ENDPOINT")
	Bucket.LogBucket = os.Getenv("BUCKET_LOG_BUCKET")
}
