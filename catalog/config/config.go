package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/catalog-service/catalog/internal/session"
	"github.com/Astemirdum/catalog-service/pkg/kafka"
	"github.com/Astemirdum/catalog-service/pkg/logger"
	"github.com/Astemirdum/catalog-service/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"CATALOG_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"CATALOG_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

type Auth struct {
	Secret string `envconfig:"JWT_SECRET" required:"true" json:"-"`
}

type Config struct {
	Server   HTTPServer  `yaml:"server"`
	Database postgres.DB `yaml:"db"`
	Session  session.Config
	Kafka    kafka.Config
	Auth     Auth
	Log      logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	cfg.Database.Password = "***"
	cfg.Session.Password = "***"
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
