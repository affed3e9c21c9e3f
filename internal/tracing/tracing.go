// Package tracing installs a Jaeger tracer as the global opentracing tracer.
package tracing

import (
	"fmt"
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"max.ks1230/expense-ledger/internal/logger"
)

type config interface {
	ServiceName() string
}

// Init reads the usual JAEGER_* environment variables and samples every
// span unless they say otherwise. Close the returned closer on shutdown to
// flush pending spans.
func Init(cfg config) (io.Closer, error) {
	jcfg, err := jaegercfg.FromEnv()
	if err != nil {
		return nil, errors.Wrap(err, "read jaeger env")
	}
	jcfg.ServiceName = cfg.ServiceName()
	if jcfg.Sampler.Type == "" {
		jcfg.Sampler.Type = jaeger.SamplerTypeConst
		jcfg.Sampler.Param = 1
	}

	tracer, closer, err := jcfg.NewTracer(jaegercfg.Logger(zapLogger{}))
	if err != nil {
		return nil, errors.Wrap(err, "init jaeger tracer")
	}
	opentracing.SetGlobalTracer(tracer)
	return closer, nil
}

// zapLogger routes jaeger client messages to the application logger.
type zapLogger struct{}

func (zapLogger) Error(msg string) {
	logger.Error(msg)
}

func (zapLogger) Infof(msg string, args ...interface{}) {
	logger.Debug(fmt.Sprintf(msg, args...))
}
