// Package config loads the YAML configuration of a canonlog stack and
// assembles it: the output handler, the backend logger factory, the
// capture registry and the middleware sink.
//
// Example file:
//
//	level: info
//	format: json
//	output: file
//	file:
//	  path: ${LOG_DIR:-/var/log/app}/app.log
//	  max_size_mb: 100
//	  max_backups: 5
//	backend: zap
//	middleware:
//	  mode: canonical
//	  exclude_paths: [/healthz]
package config
