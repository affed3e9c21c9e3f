package config

const (
	defaultMetricsAddr = ":8080"
	defaultServiceName = "expense-ledger"
)

type MetricsConfig struct {
	ListenAddr string `yaml:"addr"`
}

func (s *MetricsConfig) Addr() string {
	return s.ListenAddr
}

type TracingConfig struct {
	Service string `yaml:"service-name"`
}

func (s *TracingConfig) ServiceName() string {
	return s.Service
}
