package engine

import (
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

const (
	traceAdapterKey = "boxer.golog"
	traceLevelKey   = "tracelevel"
)

// SetupTracing installs tracers for all packages of boxer, writing to a Go
// standard logger. Trace levels and output destination are taken from
// config. Tracers not mentioned in config.TraceLevels trace at
// config.TraceLevel.
//
// SetupTracing is meant to be called once, at application start. It returns
// a teardown function which detaches the tracers again.
func SetupTracing(config Config) (func(), error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	tracing.RegisterTraceAdapter(traceAdapterKey, gologadapter.GetAdapter(), true)
	err := trace2go.ConfigureRoot(settings{&config}, traceLevelKey, trace2go.ReplaceTracers(true))
	if err != nil {
		return nil, err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Infof("tracing to Go logger, level %s", levelOrDefault(config.TraceLevel))
	return trace2go.Teardown, nil
}

// settings presents a Config as a schuko configuration, which is what
// trace2go expects.
type settings struct {
	config *Config
}

var _ schuko.Configuration = settings{}

func (s settings) InitDefaults() {}

func (s settings) IsSet(key string) bool {
	return s.GetString(key) != ""
}

func (s settings) GetString(key string) string {
	switch key {
	case "tracing.adapter":
		return traceAdapterKey
	case "tracing.destination":
		return s.config.TraceDestination
	}
	if name := strings.TrimPrefix(key, traceLevelKey+"."); name != key {
		if level, ok := s.config.TraceLevels[name]; ok {
			return level
		}
		return levelOrDefault(s.config.TraceLevel)
	}
	return ""
}

func (s settings) GetInt(key string) int {
	return 0
}

func (s settings) GetBool(key string) bool {
	return false
}

func (s settings) IsInteractive() bool {
	return false
}

func levelOrDefault(level string) string {
	if level == "" {
		return "error"
	}
	return level
}
