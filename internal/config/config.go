package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSkillVocabulary is the keyword list used by the hard matcher when
// SKILL_VOCABULARY is not set.
var DefaultSkillVocabulary = []string{
	"Python", "SQL", "Machine Learning", "Data Analysis", "Tableau", "Power BI", "R", "pandas", "numpy",
}

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Qdrant   QdrantConfig
	Gemini   GeminiConfig
	Storage  StorageConfig
	Scoring  ScoringConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Driver   string // sqlite or postgres
	Path     string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type QdrantConfig struct {
	URL        string
	APIKey     string
	Collection string
}

type GeminiConfig struct {
	APIKey     string
	Model      string
	EmbedModel string
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

type ScoringConfig struct {
	Vocabulary          []string
	FuzzyThreshold      int
	HardWeight          float64
	SemanticWeight      float64
	HighThreshold       float64
	MediumThreshold     float64
	VectorIndex         string // memory or qdrant
	SemanticTimeout     time.Duration
	FeedbackTemperature float32
	FeedbackTimeout     time.Duration
}

type LogConfig struct {
	JSON  bool
	Debug bool
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
			Driver:   getEnv("DB_DRIVER", "sqlite"),
			Path:     getEnv("DB_PATH", "resume_evaluations.db"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "resume_evaluations"),
		},
		Qdrant: QdrantConfig{
			URL:        getEnv("QDRANT_URL", "http://localhost:6334"),
			APIKey:     getEnv("QDRANT_API_KEY", ""),
			Collection: getEnv("QDRANT_COLLECTION", "resume_relevance"),
		},
		Gemini: GeminiConfig{
			APIKey:     getEnv("GEMINI_API_KEY", getEnv("GOOGLE_API_KEY", "")),
			Model:      getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			EmbedModel: getEnv("GEMINI_EMBED_MODEL", "text-embedding-004"),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./temp"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Scoring: ScoringConfig{
			Vocabulary:          getEnvAsList("SKILL_VOCABULARY", DefaultSkillVocabulary),
			FuzzyThreshold:      getEnvAsInt("FUZZY_THRESHOLD", 85),
			HardWeight:          getEnvAsFloat("HARD_WEIGHT", 0.6),
			SemanticWeight:      getEnvAsFloat("SEMANTIC_WEIGHT", 0.4),
			HighThreshold:       getEnvAsFloat("HIGH_THRESHOLD", 80),
			MediumThreshold:     getEnvAsFloat("MEDIUM_THRESHOLD", 50),
			VectorIndex:         strings.ToLower(getEnv("VECTOR_INDEX", "memory")),
			SemanticTimeout:     getEnvAsDuration("SEMANTIC_TIMEOUT", "30s"),
			FeedbackTemperature: float32(getEnvAsFloat("FEEDBACK_TEMPERATURE", 0.5)),
			FeedbackTimeout:     getEnvAsDuration("FEEDBACK_TIMEOUT", "60s"),
		},
		Log: LogConfig{
			JSON:  getEnvAsBool("LOG_JSON", false),
			Debug: getEnvAsBool("LOG_DEBUG", false),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	if c.Database.Driver == "sqlite" {
		return c.Database.Path
	}

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

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
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

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

// getEnvAsList splits a comma separated value, dropping blank entries.
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return append([]string(nil), defaultValue...)
	}

	var items []string
	for _, item := range strings.Split(valueStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return append([]string(nil), defaultValue...)
	}
	return items
}
