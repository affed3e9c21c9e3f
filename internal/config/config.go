package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	configFileEnv     = "CONFIG_FILE"
	defaultConfigFile = "data/config.yaml"
	envFile           = ".env"
)

var supportedDrivers = map[string]struct{}{
	"memory":   {},
	"sqlite":   {},
	"postgres": {},
}

type config struct {
	Storage   StorageConfig   `yaml:"storage"`
	App       AppConfig       `yaml:"app"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

type Service struct {
	config config
}

// New loads .env when present, then reads the YAML file named by
// CONFIG_FILE (data/config.yaml by default).
func New() (*Service, error) {
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "loading .env")
	}

	path := os.Getenv(configFileEnv)
	if path == "" {
		path = defaultConfigFile
	}
	return FromFile(path)
}

func FromFile(path string) (*Service, error) {
	rawYAML, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	return Parse(rawYAML)
}

func Parse(rawYAML []byte) (*Service, error) {
	s := &Service{}
	if err := yaml.Unmarshal(rawYAML, &s.config); err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}
	s.setDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) setDefaults() {
	s.config.Storage.setDefaults()
	s.config.App.setDefaults()
	s.config.Kafka.setDefaults()
	if s.config.Metrics.ListenAddr == "" {
		s.config.Metrics.ListenAddr = defaultMetricsAddr
	}
	if s.config.Tracing.Service == "" {
		s.config.Tracing.Service = defaultServiceName
	}
}

func (s *Service) Validate() error {
	if _, ok := supportedDrivers[s.config.Storage.DriverName]; !ok {
		return errors.Errorf("unsupported storage driver %q", s.config.Storage.DriverName)
	}
	if s.config.App.AsyncReportsEnabled && len(s.config.Kafka.BrokerList) == 0 {
		return errors.New("async reports need kafka brokers")
	}
	return nil
}

func (s *Service) Storage() *StorageConfig {
	return &s.config.Storage
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Metrics() *MetricsConfig {
	return &s.config.Metrics
}

func (s *Service) Tracing() *TracingConfig {
	return &s.config.Tracing
}
