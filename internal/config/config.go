package config

import (
	"github.com/spf13/viper"
)

// Config is read from environment variables. The service is expected to run
// with DB and AWS settings injected by the deployment (or docker-compose /
// LocalStack locally).
type Config struct {
	DBHost            string `mapstructure:"DB_HOST"`
	DBPort            string `mapstructure:"DB_PORT"`
	DBUser            string `mapstructure:"DB_USER"`
	DBPassword        string `mapstructure:"DB_PASSWORD"`
	DBName            string `mapstructure:"DB_NAME"`
	ServerPort        string `mapstructure:"SERVER_PORT"`
	AWSRegion         string `mapstructure:"AWS_REGION"`
	HRSQSQueueURL     string `mapstructure:"HR_SQS_QUEUE_URL"`
	EmailSQSQueueURL  string `mapstructure:"EMAIL_SQS_QUEUE_URL"`
	AWSEndpoint       string `mapstructure:"AWS_ENDPOINT"`
	HRAPIURL          string `mapstructure:"HR_API_URL"`
	OTLPEndpoint      string `mapstructure:"OTLP_ENDPOINT"`
	AreasConfigPath   string `mapstructure:"AREAS_CONFIG_PATH"`
	EmailSender       string `mapstructure:"EMAIL_SENDER"`
	WorkerConcurrency int    `mapstructure:"WORKER_CONCURRENCY"`
	IsLocalDev        bool   `mapstructure:"LOCAL_DEV"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (config Config, err error) {
	viper.SetDefault("DB_HOST", "db")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "user")
	viper.SetDefault("DB_PASSWORD", "password")
	viper.SetDefault("DB_NAME", "attendance_db")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("HR_SQS_QUEUE_URL", "http://localstack:4566/000000000000/hr-sync-queue")
	viper.SetDefault("EMAIL_SQS_QUEUE_URL", "http://localstack:4566/000000000000/email-queue")
	viper.SetDefault("AWS_ENDPOINT", "http://localstack:4566")
	viper.SetDefault("HR_API_URL", "http://localhost:8081/")
	viper.SetDefault("OTLP_ENDPOINT", "")
	// Empty path means the built-in area set is used.
	viper.SetDefault("AREAS_CONFIG_PATH", "")
	viper.SetDefault("EMAIL_SENDER", "asistencia@attendance-service.com")
	viper.SetDefault("WORKER_CONCURRENCY", 10)
	viper.SetDefault("LOCAL_DEV", false)

	// Read in environment variables that match the keys.
	viper.AutomaticEnv()

	err = viper.Unmarshal(&config)
	return
}
