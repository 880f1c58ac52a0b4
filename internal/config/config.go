package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingCredential is returned by Validate when no model API key is configured.
var ErrMissingCredential = errors.New("API key not found. Please set the GOOGLE_API_KEY environment variable")

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Qdrant   QdrantConfig
	Gemini   GeminiConfig
	Storage  StorageConfig
	Session  SessionConfig
	Speech   SpeechConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type QdrantConfig struct {
	Enabled    bool
	URL        string
	APIKey     string
	Collection string
}

type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float32
	EmbedModel  string
	TTSModel    string
	Voice       string
}

type StorageConfig struct {
	Backend     string // "local" or "s3"
	AudioPath   string
	MaxFileSize int64
	S3          S3Config
}

// S3Config points at any S3 compatible bucket. With AccountID set the
// endpoint is derived for Cloudflare R2.
type S3Config struct {
	AccountID string
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	PublicURL string
}

// SessionConfig selects the mock interview session store. In memory,
// sessions idle for longer than TTL are dropped.
type SessionConfig struct {
	Store      string // "memory" or "postgres"
	CookieName string
	TTL        time.Duration
}

// SpeechConfig controls spoken questions and feedback. Audio files are
// kept for their playback time plus Retain.
type SpeechConfig struct {
	Enabled bool
	Retain  time.Duration
}

type WorkerConfig struct {
	Concurrency int
	QueueSize   int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Enabled:  getEnvAsBool("DB_ENABLED", false),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "smart_talent"),
		},
		Qdrant: QdrantConfig{
			Enabled:    getEnvAsBool("QDRANT_ENABLED", false),
			URL:        getEnv("QDRANT_URL", "http://localhost:6334"),
			APIKey:     getEnv("QDRANT_API_KEY", ""),
			Collection: getEnv("QDRANT_COLLECTION", "interview_questions"),
		},
		Gemini: GeminiConfig{
			APIKey:      getEnv("GOOGLE_API_KEY", getEnv("GEMINI_API_KEY", "")),
			Model:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Temperature: getEnvAsFloat32("GEMINI_TEMPERATURE", 0.7),
			EmbedModel:  getEnv("GEMINI_EMBED_MODEL", "text-embedding-004"),
			TTSModel:    getEnv("GEMINI_TTS_MODEL", "gemini-2.5-flash-preview-tts"),
			Voice:       getEnv("GEMINI_VOICE", "Kore"),
		},
		Storage: StorageConfig{
			Backend:     strings.ToLower(getEnv("AUDIO_BACKEND", "local")),
			AudioPath:   getEnv("AUDIO_PATH", "./audio"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 200*1024*1024),
			S3: S3Config{
				AccountID: getEnv("R2_ACCOUNT_ID", ""),
				Endpoint:  getEnv("S3_ENDPOINT", ""),
				Region:    getEnv("S3_REGION", "auto"),
				Bucket:    getEnv("S3_BUCKET", ""),
				AccessKey: getEnv("S3_ACCESS_KEY", ""),
				SecretKey: getEnv("S3_SECRET_KEY", ""),
				PublicURL: getEnv("S3_PUBLIC_URL", ""),
			},
		},
		Session: SessionConfig{
			Store:      strings.ToLower(getEnv("SESSION_STORE", "memory")),
			CookieName: getEnv("SESSION_COOKIE", "mock_session"),
			TTL:        time.Duration(getEnvAsInt("SESSION_TTL_MINUTES", 120)) * time.Minute,
		},
		Speech: SpeechConfig{
			Enabled: getEnvAsBool("SPEECH_ENABLED", true),
			Retain:  time.Duration(getEnvAsInt("SPEECH_RETAIN_SECONDS", 60)) * time.Second,
		},
		Worker: WorkerConfig{
			Concurrency: getEnvAsInt("WORKER_CONCURRENCY", 2),
			QueueSize:   getEnvAsInt("WORKER_QUEUE_SIZE", 100),
		},
	}
}

// Validate reports configuration that prevents the server from starting.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Gemini.APIKey) == "" {
		return ErrMissingCredential
	}
	if c.Session.Store == "postgres" && !c.Database.Enabled {
		return fmt.Errorf("SESSION_STORE=postgres requires DB_ENABLED=true")
	}
	if c.Storage.Backend == "s3" && c.Storage.S3.Bucket == "" {
		return fmt.Errorf("AUDIO_BACKEND=s3 requires S3_BUCKET")
	}
	return nil
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 32); err == nil {
		return float32(value)
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
