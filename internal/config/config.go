// Package config предоставляет структуры и функцию для парсинга и загрузки конфига.
//
// Приоритет источников фиксированный: значения из yaml-файла читаются первыми,
// переменные окружения (env-теги) перекрывают их.
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// minSecretKeyLen минимальная длина секрета в байтах, требование HS256.
const minSecretKeyLen = 16

// Config общая структура для хранения настроек.
type Config struct {
	Env             string `yaml:"env" env:"APP_ENV" env-default:"local"`
	Storage         `yaml:"storage"`
	RedisConnection `yaml:"redis_connection"`
	HTTPServer      `yaml:"http_server"`
	JWTToken        `yaml:"jwttoken"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"HTTP_ADDRESS" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env:"HTTP_TIMEOUT" env-default:"30s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// Storage структура для выбора и настройки хранилища учётных записей.
// Тип memory использует встроенный статический справочник,
// тип postgres — таблицы users и auth_records.
type Storage struct {
	StorageType             string `yaml:"type" env:"STORAGE_TYPE" env-default:"memory"`
	StorageConnectionString string `yaml:"connection_string" env:"STORAGE_CONNECTION_STRING"`
}

// RedisConnection структура для настройки подключения к redis.
// Пустой адрес отключает кэширование записей о ролях.
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis" env:"REDIS_ADDRESS"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user" env:"REDIS_USER"`
	DB           int           `yaml:"db" env:"REDIS_DB"`
	MaxRetries   int           `yaml:"max_retries" env:"REDIS_MAX_RETRIES"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT"`
	TimeoutRedis time.Duration `yaml:"timeoutredis" env:"REDIS_TIMEOUT"`
	CacheTTL     time.Duration `yaml:"cache_ttl" env:"REDIS_CACHE_TTL" env-default:"5m"`
}

// JWTToken структура с параметрами выпуска и проверки jwt-токена.
type JWTToken struct {
	Issuer        string `yaml:"issuer" env:"JWT_ISSUER"`
	SecretKey     string `yaml:"secret_key" env:"JWT_SECRET_KEY"`
	ExpiryMinutes int    `yaml:"expiry_minutes" env:"JWT_EXPIRY_MINUTES"`
}

// MustLoad функция для загрузки конфига, путь берётся из CONFIG_PATH.
// Невалидные параметры токена фатальны: сервис не должен начинать
// обслуживание с неполной конфигурацией подписи.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	if err := cfg.validate(); err != nil {
		log.Fatalf("invalid config: %s", err)
	}
	return &cfg
}

// validate проверяет параметры, без которых выпуск токенов невозможен.
func (c *Config) validate() error {
	if c.Issuer == "" {
		return fmt.Errorf("jwttoken.issuer is required")
	}
	if len(c.SecretKey) < minSecretKeyLen {
		return fmt.Errorf("jwttoken.secret_key must be at least %d bytes", minSecretKeyLen)
	}
	if c.ExpiryMinutes <= 0 {
		return fmt.Errorf("jwttoken.expiry_minutes must be positive")
	}
	if c.StorageType == "postgres" && c.StorageConnectionString == "" {
		return fmt.Errorf("storage.connection_string is required for postgres storage")
	}
	return nil
}

// TokenTTL возвращает время жизни токена как Duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.ExpiryMinutes) * time.Minute
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"Storage:\n"+
			"  Type: %s\n"+
			"  ConnectionString: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  DB: %d\n"+
			"  CacheTTL: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"JWTToken:\n"+
			"  Issuer: %s\n"+
			"  ExpiryMinutes: %d\n",
		c.Env,
		c.StorageType,
		c.StorageConnectionString,
		c.AddressRedis,
		c.DB,
		c.CacheTTL,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.Issuer,
		c.ExpiryMinutes,
	)
}
