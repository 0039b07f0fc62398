package core

import "context"

const metricPrefix = "oauth"

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// NopMetricsRecorder discards all measurements.
type NopMetricsRecorder struct{}

func (NopMetricsRecorder) IncCounter(context.Context, string, int64, map[string]string) {}

func (NopMetricsRecorder) ObserveHistogram(context.Context, string, float64, map[string]string) {}

// counterName and histogramName yield oauth.<operation>.total and
// oauth.<operation>.duration_ms.
func counterName(operation string) string {
	return metricPrefix + "." + operation + ".total"
}

func histogramName(operation string) string {
	return metricPrefix + "." + operation + ".duration_ms"
}

func outcomeOf(err error) string {
	if err != nil {
		return outcomeFailure
	}
	return outcomeSuccess
}

func cloneTags(tags map[string]string) map[string]string {
	copied := make(map[string]string, len(tags))
	for key, value := range tags {
		copied[key] = value
	}
	return copied
}

var _ MetricsRecorder = NopMetricsRecorder{}
