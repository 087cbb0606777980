package history

import (
	"encoding/json"
	"fmt"
)

// CurrentCodecVersion tags encoded sample payloads.
const CurrentCodecVersion = 1

type samplesEnvelope struct {
	Version int      `json:"version"`
	Samples []Sample `json:"samples"`
}

// EncodeSamples serializes samples for storage.
func EncodeSamples(samples []Sample) ([]byte, error) {
	return json.Marshal(samplesEnvelope{Version: CurrentCodecVersion, Samples: samples})
}

// DecodeSamples parses a payload written by EncodeSamples.
func DecodeSamples(payload []byte) ([]Sample, error) {
	var env samplesEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, err
	}
	if env.Version != CurrentCodecVersion {
		return nil, fmt.Errorf("unsupported samples codec version %d", env.Version)
	}
	return env.Samples, nil
}
