package prometheus

// Config holds Prometheus endpoint configuration. Keys are derived from the
// field names under the parent prefix, e.g. PROJECTBOARD_METRICS_PATH.
type Config struct {
	Enabled bool   `default:"true"`
	Path    string `default:"/metrics"`
}
