package config

import (
	"github.com/creatorhub/socialgraph/internal/logger"
	"github.com/creatorhub/socialgraph/internal/tracing"
)

type AppConfig struct {
	APIPort string `env:"PORT" envDefault:"8000"`
	Logger  *logger.Config
	Tracing *tracing.JaegerConfig
}

type DatabaseConfig struct {
	Host            string `env:"SOCIALGRAPH_POSTGRES_HOST,required"`
	Port            string `env:"SOCIALGRAPH_POSTGRES_PORT,required"`
	User            string `env:"SOCIALGRAPH_POSTGRES_USER,required"`
	DBName          string `env:"SOCIALGRAPH_POSTGRES_DB_NAME,required"`
	Password        string `env:"SOCIALGRAPH_POSTGRES_PASSWORD,required"`
	MaxConn         int    `env:"SOCIALGRAPH_POSTGRES_DB_MAX_CONN"`
	MaxIdleConn     int    `env:"SOCIALGRAPH_POSTGRES_DB_MAX_IDLE_CONN"`
	ConnMaxLifetime int    `env:"SOCIALGRAPH_POSTGRES_DB_CONN_MAX_LIFETIME"`
	LogLevel        string `env:"SOCIALGRAPH_POSTGRES_LOG_LEVEL" envDefault:"WARN"`
	SSLMode         string `env:"SOCIALGRAPH_POSTGRES_SSL_MODE" envDefault:"disable"`
}
