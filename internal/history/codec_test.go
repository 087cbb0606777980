package history

import (
	"slices"
	"testing"
)

func TestSamplesCodec(t *testing.T) {
	in := sampleRun("r").Samples
	payload, err := EncodeSamples(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := DecodeSamples(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !slices.Equal(in, out) {
		t.Fatalf("decoded %v, expected %v", out, in)
	}
}

func TestDecodeSamplesRejectsUnknownVersion(t *testing.T) {
	if _, err := DecodeSamples([]byte(`{"version":99,"samples":[]}`)); err == nil {
		t.Fatal("expected version error")
	}
	if _, err := DecodeSamples([]byte(`not json`)); err == nil {
		t.Fatal("expected parse error")
	}
}
