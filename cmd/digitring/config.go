package main

import (
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// tracer writes to trace with key 'digitring'
func tracer() tracing.Trace {
	return tracing.Select("digitring")
}

// setupTracing configures tracing from an optional NestedText configuration
// file. A non-empty level overrides the configured levels.
func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := koanfadapter.New(nil, "digitring", []string{"nt"})
	conf.InitDefaults()
	for _, key := range []string{"tracelevel.root", "tracelevel.digitring"} {
		if !conf.IsSet(key) {
			conf.Set(key, "Error")
		}
	}
	if level != "" {
		conf.Set("tracelevel.root", level)
		conf.Set("tracelevel.digitring", level)
	}
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
