package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Database struct {
		Driver   string `yaml:"driver"` // mysql | postgres
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
		SSLMode  string `yaml:"sslMode"`
	} `yaml:"database"`

	Minio struct {
		Endpoint   string `yaml:"endpoint"`
		AccessKey  string `yaml:"accessKey"`
		SecretKey  string `yaml:"secretKey"`
		BucketName string `yaml:"bucketName"`
		Region     string `yaml:"region"`
		UseSSL     bool   `yaml:"useSSL"`
	} `yaml:"minio"`

	Vision struct {
		Enabled        bool    `yaml:"enabled"`
		APIKey         string  `yaml:"apiKey"`
		Model          string  `yaml:"model"`
		TimeoutSeconds int     `yaml:"timeoutSeconds"`
		MinConfidence  float64 `yaml:"minConfidence"`
	} `yaml:"vision"`

	Labels struct {
		Enabled        bool    `yaml:"enabled"`
		Endpoint       string  `yaml:"endpoint"`
		APIKey         string  `yaml:"apiKey"`
		MaxLabels      int     `yaml:"maxLabels"`
		MinConfidence  float64 `yaml:"minConfidence"`
		TimeoutSeconds int     `yaml:"timeoutSeconds"`
	} `yaml:"labels"`

	Translate struct {
		Enabled bool   `yaml:"enabled"`
		Model   string `yaml:"model"`
	} `yaml:"translate"`

	Speech struct {
		Enabled bool   `yaml:"enabled"`
		Model   string `yaml:"model"`
		Voice   string `yaml:"voice"`
	} `yaml:"speech"`

	Pipeline struct {
		DefaultLanguage    string   `yaml:"defaultLanguage"`
		SupportedLanguages []string `yaml:"supportedLanguages"`
		MaxImageBytes      int64    `yaml:"maxImageBytes"`
		DemoMinConfidence  float64  `yaml:"demoMinConfidence"`
		DemoMaxConfidence  float64  `yaml:"demoMaxConfidence"`
	} `yaml:"pipeline"`
}

// Load baca file config.yaml
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "mysql"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Vision.Model == "" {
		c.Vision.Model = "gpt-4o"
	}
	if c.Vision.TimeoutSeconds <= 0 {
		c.Vision.TimeoutSeconds = 10
	}
	if c.Vision.MinConfidence <= 0 {
		c.Vision.MinConfidence = 0.5
	}
	if c.Labels.MaxLabels <= 0 {
		c.Labels.MaxLabels = 25
	}
	if c.Labels.MinConfidence <= 0 {
		c.Labels.MinConfidence = 0.5
	}
	if c.Labels.TimeoutSeconds <= 0 {
		c.Labels.TimeoutSeconds = 5
	}
	if c.Translate.Model == "" {
		c.Translate.Model = "gpt-4o-mini"
	}
	if c.Speech.Model == "" {
		c.Speech.Model = "tts-1"
	}
	if c.Speech.Voice == "" {
		c.Speech.Voice = "alloy"
	}
	if c.Pipeline.DefaultLanguage == "" {
		c.Pipeline.DefaultLanguage = "en"
	}
	if len(c.Pipeline.SupportedLanguages) == 0 {
		c.Pipeline.SupportedLanguages = []string{"en", "hi", "ta", "te", "kn", "mr", "bn", "gu", "pa"}
	}
	if c.Pipeline.MaxImageBytes <= 0 {
		c.Pipeline.MaxImageBytes = 10 << 20 // 10 MB
	}
	if c.Pipeline.DemoMinConfidence <= 0 {
		c.Pipeline.DemoMinConfidence = 0.60
	}
	if c.Pipeline.DemoMaxConfidence <= 0 {
		c.Pipeline.DemoMaxConfidence = 0.90
	}
}

// Helper untuk build DSN MySQL
func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}

// PostgresDSN untuk driver lib/pq
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// VisionTimeout per-stage timeout untuk primary analyzer.
func (c *Config) VisionTimeout() time.Duration {
	return time.Duration(c.Vision.TimeoutSeconds) * time.Second
}

// LabelsTimeout per-stage timeout untuk secondary analyzer.
func (c *Config) LabelsTimeout() time.Duration {
	return time.Duration(c.Labels.TimeoutSeconds) * time.Second
}
