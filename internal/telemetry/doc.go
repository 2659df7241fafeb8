// Package telemetry sets up OpenTelemetry tracing for coinscan.
//
// Every run gets a TracerProvider so that log lines carry trace and span
// IDs. When Enabled is set, spans are also exported over OTLP (gRPC or
// HTTP/protobuf) to a collector.
//
// # Usage
//
//	tel, err := telemetry.New(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer tel.Shutdown(context.Background())
//
// Metrics are not exported here; extraction counters are Prometheus
// collectors written to a node-exporter textfile.
package telemetry
