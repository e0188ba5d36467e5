package utils

import (
	"os"

	"github.com/gofiber/fiber/v2/log"
	"gopkg.in/yaml.v2"
)

const DefaultConfigPath = "config.yaml"

type Config struct {
	// Server configuration
	AppPort string `yaml:"APP_PORT"`
	LogFile string `yaml:"LOG_FILE"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBTimeZone string `yaml:"DB_TIMEZONE"`

	// Password hashing
	BcryptCost string `yaml:"BCRYPT_COST"`

	// AWS S3 configuration
	AWSS3Bucket   string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region   string `yaml:"AWS_S3_REGION"`
	AWSS3Endpoint string `yaml:"AWS_S3_ENDPOINT"`
	AWSAccessKey  string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey  string `yaml:"AWS_SECRET_KEY"`
}

var defaults = Config{
	AppPort:    "8080",
	LogFile:    "./logs/app.log",
	DBPort:     "5432",
	DBTimeZone: "UTC",
}

var config = defaults

// LoadConfig reads config.yaml from the working directory. A missing or
// malformed file is logged and the defaults are kept.
func LoadConfig() {
	if err := LoadConfigFrom(DefaultConfigPath); err != nil {
		log.Warnw("config file not loaded, using defaults and environment", "path", DefaultConfigPath, "error", err)
	}
}

func LoadConfigFrom(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	loaded := defaults
	if err := yaml.Unmarshal(file, &loaded); err != nil {
		return err
	}
	fillDefaults(&loaded)
	config = loaded
	return nil
}

func fillDefaults(c *Config) {
	if c.AppPort == "" {
		c.AppPort = defaults.AppPort
	}
	if c.LogFile == "" {
		c.LogFile = defaults.LogFile
	}
	if c.DBPort == "" {
		c.DBPort = defaults.DBPort
	}
	if c.DBTimeZone == "" {
		c.DBTimeZone = defaults.DBTimeZone
	}
}

// GetConfig returns the value for key. A non-empty environment variable of
// the same name takes precedence over the file.
func GetConfig(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	switch key {
	case "APP_PORT":
		return config.AppPort
	case "LOG_FILE":
		return config.LogFile
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "DB_TIMEZONE":
		return config.DBTimeZone
	case "BCRYPT_COST":
		return config.BcryptCost
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_S3_ENDPOINT":
		return config.AWSS3Endpoint
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	default:
		return ""
	}
}
