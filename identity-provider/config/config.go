package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/trocalivro/exchange-service/pkg/logger"
	"github.com/trocalivro/exchange-service/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"IDENTITY_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"IDENTITY_HTTP_PORT" default:"8081"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration
}

// ExchangeHTTPServer points at the exchange service that owns profiles.
type ExchangeHTTPServer struct {
	Host string `yaml:"host" envconfig:"EXCHANGE_HTTP_HOST" default:"localhost"`
	Port string `yaml:"port" envconfig:"EXCHANGE_HTTP_PORT" default:"8080"`
}

type Config struct {
	Server   HTTPServer         `yaml:"server"`
	Exchange ExchangeHTTPServer `yaml:"exchange"`
	Database postgres.DB        `yaml:"db"`
	Log      logger.Log         `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
