package service

import (
	"bytes"
	"encoding/json"
	"io"
	"time"

	"mymultichain/domain"
	"mymultichain/interfaces"
)

// responseNormalizer implements interfaces.ResponseNormalizer. It holds no state.
type responseNormalizer struct{}

// NewResponseNormalizer returns the normalizer used by the aggregator.
func NewResponseNormalizer() interfaces.ResponseNormalizer {
	return responseNormalizer{}
}

// Normalize builds the InstanceResult for one instance.
//
// Parameters: instanceID - value stamped as shard_id; outcome - executor result; elapsed - dispatch-to-completion time.
//
// Returns: InstanceResult with Status = outcome.Status and ElapsedSecs formatted from elapsed. Data is set only when
// the status is 2xx and Content is exactly one JSON value; a top-level array gets shard_id on each object element.
//
// Called from service.aggregator.dispatch.
func (responseNormalizer) Normalize(instanceID string, outcome domain.TransportOutcome, elapsed time.Duration) domain.InstanceResult {
	result := domain.InstanceResult{
		Status:      outcome.Status,
		ElapsedSecs: domain.FormatElapsed(elapsed),
	}
	if !domain.IsSuccess(outcome.Status) {
		return result
	}
	data, ok := parseJSON(outcome.Content)
	if !ok {
		return result
	}
	result.Data = AnnotateShardID(data, instanceID)
	return result
}

// AnnotateShardID sets shard_id = instanceID on every object element of a top-level array, overwriting
// an existing shard_id. Other elements, nested values and non-array payloads are left as they are.
//
// Parameters: data - value decoded by parseJSON (arrays are []any, objects map[string]any); instanceID - shard id.
//
// Returns: data itself (arrays are modified in place).
func AnnotateShardID(data any, instanceID string) any {
	items, ok := data.([]any)
	if !ok {
		return data
	}
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			obj[domain.ShardIDField] = instanceID
		}
	}
	return data
}

// parseJSON decodes content as exactly one JSON value, keeping numbers as json.Number so large integers
// survive re-encoding. Returns (nil, false) on invalid JSON, trailing data, empty input or a JSON null.
func parseJSON(content []byte) (any, bool) {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}
	return v, v != nil
}
