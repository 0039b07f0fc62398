package core

import (
	"context"
	"sort"
	"time"
)

const (
	opGetRequestToken = "get_request_token"
	opGetAccessToken  = "get_access_token"
	opSignRequest     = "sign_request"
)

// operationEvent carries what a Service call may report. Credentials, codes
// and tokens never go in here.
type operationEvent struct {
	Operation     string
	ExchangeID    string
	Endpoint      string
	AuthScheme    ClientAuthScheme
	SignatureType SignatureType
	StatusCode    int
}

func (e operationEvent) fields() map[string]any {
	fields := map[string]any{"event_type": e.Operation}
	if e.ExchangeID != "" {
		fields["exchange_id"] = e.ExchangeID
	}
	if e.Endpoint != "" {
		fields["endpoint"] = e.Endpoint
	}
	if e.AuthScheme != "" {
		fields["auth_scheme"] = string(e.AuthScheme)
	}
	if e.SignatureType != "" {
		fields["signature_type"] = string(e.SignatureType)
	}
	if e.StatusCode != 0 {
		fields["status_code"] = e.StatusCode
	}
	return fields
}

func (e operationEvent) tags(outcome string) map[string]string {
	tags := map[string]string{
		"operation": e.Operation,
		"status":    outcome,
	}
	if e.AuthScheme != "" {
		tags["auth_scheme"] = string(e.AuthScheme)
	}
	if e.SignatureType != "" {
		tags["signature_type"] = string(e.SignatureType)
	}
	return tags
}

func (s *Service) observeOperation(ctx context.Context, startedAt time.Time, event operationEvent, err error) {
	if s == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if event.Operation == "" {
		event.Operation = "unknown"
	}
	outcome := outcomeOf(err)
	elapsed := time.Since(startedAt).Milliseconds()

	if s.metricsRecorder != nil {
		tags := event.tags(outcome)
		s.metricsRecorder.IncCounter(ctx, counterName(event.Operation), 1, cloneTags(tags))
		s.metricsRecorder.ObserveHistogram(ctx, histogramName(event.Operation), float64(elapsed), tags)
	}

	fields := event.fields()
	fields["status"] = outcome
	fields["duration_ms"] = elapsed
	if err != nil {
		fields["error"] = err.Error()
		s.log(ctx, true, event.Operation+" failed", fields)
		return
	}
	s.log(ctx, false, event.Operation+" succeeded", fields)
}

func (s *Service) log(ctx context.Context, failed bool, message string, fields map[string]any) {
	if s.logger == nil {
		return
	}
	logger := s.logger.WithContext(ctx)
	if fieldsLogger, ok := logger.(FieldsLogger); ok {
		logger = fieldsLogger.WithFields(fields)
	}
	args := sortedArgs(fields)
	if failed {
		logger.Error(message, args...)
		return
	}
	logger.Info(message, args...)
}

// sortedArgs flattens fields into key/value pairs ordered by key.
func sortedArgs(fields map[string]any) []any {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	args := make([]any, 0, len(keys)*2)
	for _, key := range keys {
		args = append(args, key, fields[key])
	}
	return args
}
