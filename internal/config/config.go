package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host        string
	Port        string
	PublicURL   string
	CORSOrigins string
	// Mode "RO" turns every mutating request into 502.
	Mode string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type Auth struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type TMDB struct {
	APIKey    string
	BaseURL   string
	Language  string
	RateLimit float64
	Burst     int
	Timeout   time.Duration
}

// Storage points at an S3 compatible bucket. Endpoint is set for local or
// mock servers and switches the client to path style addressing.
type Storage struct {
	Bucket    string
	Prefix    string
	PublicURL string
	Endpoint  string
	Region    string
}

type Jobs struct {
	MessageCleanup time.Duration
}

type Config struct {
	Env      string
	HTTP     HTTPServer
	Redis    RedisCache
	Postgres Postgres
	Auth     Auth
	TMDB     TMDB
	Storage  Storage
	Jobs     Jobs
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := FromEnv()

	if cfg.Auth.JWTSecret == "" {
		log.Fatalf("%s JWT_SECRET must be set", logtag)
	}
	if cfg.TMDB.APIKey == "" {
		log.Printf("%s TMDB_API_KEY is empty, catalog requests will fail", logtag)
	}

	log.Printf("%s backend config : env=%s http=%+v postgres=%s@%s:%s/%s redis=%s:%s",
		logtag, cfg.Env, cfg.HTTP,
		cfg.Postgres.User, cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName,
		cfg.Redis.Host, cfg.Redis.Port)
	return cfg
}

// FromEnv builds the config from the current process environment only.
func FromEnv() *Config {
	return &Config{
		Env:      getenv("APP_ENV", "development"),
		HTTP:     *newHTTP(),
		Redis:    *newRedis(),
		Postgres: *newPostgres(),
		Auth:     *newAuth(),
		TMDB:     *newTMDB(),
		Storage:  *newStorage(),
		Jobs:     *newJobs(),
	}
}

func newHTTP() *HTTPServer {
	port := getenv("HTTP_PORT", "8080")
	return &HTTPServer{
		Port:        port,
		Host:        getenv("HTTP_HOST", "localhost"),
		PublicURL:   getenv("HTTP_PUBLIC_URL", "http://localhost:"+port),
		CORSOrigins: getenv("CORS_ORIGINS", "*"),
		Mode:        getenv("APP_MODE", "RW"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getsecret("REDIS_PASSWORD", "shared"),
		DB:       getint("REDIS_DB", 0),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getsecret("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "kinomatch"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newAuth() *Auth {
	return &Auth{
		JWTSecret: getsecret("JWT_SECRET", ""),
		TokenTTL:  getduration("JWT_TTL", 7*24*time.Hour),
	}
}

func newTMDB() *TMDB {
	return &TMDB{
		APIKey:    getsecret("TMDB_API_KEY", ""),
		BaseURL:   getenv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		Language:  getenv("TMDB_LANGUAGE", "es-ES"),
		RateLimit: getfloat("TMDB_RATE_LIMIT", 20),
		Burst:     getint("TMDB_BURST", 10),
		Timeout:   getduration("TMDB_TIMEOUT", 10*time.Second),
	}
}

func newStorage() *Storage {
	return &Storage{
		Bucket:    getenv("S3_BUCKET", "kinomatch-images"),
		Prefix:    getenv("S3_PREFIX", "uploads/"),
		PublicURL: getenv("S3_PUBLIC_URL", ""),
		Endpoint:  getenv("S3_ENDPOINT", ""),
		Region:    getenv("S3_REGION", "us-east-1"),
	}
}

func newJobs() *Jobs {
	return &Jobs{
		MessageCleanup: getduration("MESSAGE_CLEANUP_INTERVAL", time.Hour),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

// getsecret behaves like getenv but never prints the value.
func getsecret(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value\n", logtag, key)
		return defaultValue
	}
	fmt.Printf("%s %s is set\n", logtag, key)
	return val
}

func getint(key string, defaultValue int) int {
	raw := getenv(key, strconv.Itoa(defaultValue))
	v, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Printf("%s %s=%q is not an int. Using default value %d\n", logtag, key, raw, defaultValue)
		return defaultValue
	}
	return v
}

func getfloat(key string, defaultValue float64) float64 {
	raw := getenv(key, strconv.FormatFloat(defaultValue, 'f', -1, 64))
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fmt.Printf("%s %s=%q is not a number. Using default value %v\n", logtag, key, raw, defaultValue)
		return defaultValue
	}
	return v
}

func getduration(key string, defaultValue time.Duration) time.Duration {
	raw := getenv(key, defaultValue.String())
	v, err := time.ParseDuration(raw)
	if err != nil {
		fmt.Printf("%s %s=%q is not a duration. Using default value %s\n", logtag, key, raw, defaultValue)
		return defaultValue
	}
	return v
}
