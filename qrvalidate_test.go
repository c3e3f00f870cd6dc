package qrvalidate

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"
)

// onePxPNG is a minimal valid 1x1 grayscale PNG, used to exercise the
// image-decode and zero-QR-content paths without a real QR fixture.
const onePxPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAAAAAA6fptVAAAACklEQVR42mNgAAAAAgAB5Sfe/AAAAABJRU5ErkJggg=="

func mustDecodeB64(t *testing.T, s string) []byte {
	t.Helper()
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		t.Fatalf("decoding fixture: %v", err)
	}
	return b
}

func TestValidate_GarbageBytes_ImageLoadError(t *testing.T) {
	_, err := Validate([]byte("not an image"))
	if err == nil {
		t.Fatal("want error, got nil")
	}
	if !errors.Is(err, ErrImageLoad) {
		t.Errorf("err = %v, want ErrImageLoad", err)
	}
}

func TestValidate_OversizedBuffer_ImageTooLargeError(t *testing.T) {
	big := make([]byte, MaxImageBytes+1)
	_, err := Validate(big)
	if !errors.Is(err, ErrImageTooLarge) {
		t.Errorf("err = %v, want ErrImageTooLarge", err)
	}
}

func TestValidate_ValidImageNoQR_DecodeFailedNotImageError(t *testing.T) {
	buf := mustDecodeB64(t, onePxPNG)
	_, err := Validate(buf)
	// A 1x1 PNG has no QR code in it, so decode failure is expected — but
	// it must fail with DecodeFailed, never ImageTooLarge or ImageLoad.
	if !errors.Is(err, ErrDecodeFailed) {
		t.Errorf("err = %v, want ErrDecodeFailed", err)
	}
}

func TestDecodeOnly_NoQRContent_DecodeFailed(t *testing.T) {
	buf := mustDecodeB64(t, onePxPNG)
	_, err := DecodeOnly(buf)
	if !errors.Is(err, ErrDecodeFailed) {
		t.Errorf("err = %v, want ErrDecodeFailed", err)
	}
}

func TestProbeBytes_ValidPNG(t *testing.T) {
	buf := mustDecodeB64(t, onePxPNG)
	p, err := ProbeBytes(buf)
	if err != nil {
		t.Fatalf("ProbeBytes: %v", err)
	}
	if p.Format != "png" || p.Width != 1 || p.Height != 1 {
		t.Errorf("Probe = %+v, want {png 1 1}", p)
	}
}

func TestProbeBytes_GarbageBytes_ImageLoadError(t *testing.T) {
	_, err := ProbeBytes([]byte("garbage"))
	if !errors.Is(err, ErrImageLoad) {
		t.Errorf("err = %v, want ErrImageLoad", err)
	}
}

func TestProbeBytes_OversizedBuffer_ImageTooLargeError(t *testing.T) {
	big := make([]byte, MaxImageBytes+1)
	_, err := ProbeBytes(big)
	if !errors.Is(err, ErrImageTooLarge) {
		t.Errorf("err = %v, want ErrImageTooLarge", err)
	}
}

func TestValidationResult_MarshalJSON_Undecodable(t *testing.T) {
	r := ValidationResult{Score: 0, Decodable: false}
	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got map[string]interface{}
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got["content"] != nil {
		t.Errorf("content = %v, want null", got["content"])
	}
	if got["metadata"] != nil {
		t.Errorf("metadata = %v, want null", got["metadata"])
	}
	sr, ok := got["stress_results"].(map[string]interface{})
	if !ok {
		t.Fatalf("stress_results missing or wrong type: %v", got["stress_results"])
	}
	for _, key := range []string{"original", "downscale_50", "downscale_25", "blur_light", "blur_medium", "low_contrast"} {
		if _, present := sr[key]; !present {
			t.Errorf("stress_results missing key %q", key)
		}
	}
}

func TestValidationResult_MarshalJSON_Decodable(t *testing.T) {
	r := ValidationResult{
		Score:     85,
		Decodable: true,
		Content:   "hello",
		Metadata: &Metadata{
			Version:         2,
			ErrorCorrection: "M",
			Modules:         25,
			DecodersSuccess: []string{"zxing"},
		},
	}
	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got map[string]interface{}
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got["content"] != "hello" {
		t.Errorf("content = %v, want hello", got["content"])
	}
	meta, ok := got["metadata"].(map[string]interface{})
	if !ok {
		t.Fatalf("metadata missing or wrong type: %v", got["metadata"])
	}
	if meta["modules"].(float64) != 25 || meta["error_correction"] != "M" {
		t.Errorf("metadata = %v, want modules 25, ecc M", meta)
	}
}

func TestMetadataInvariant_ModulesMatchesVersion(t *testing.T) {
	for v := 1; v <= 40; v++ {
		m := Metadata{Version: v, Modules: 4*v + 17}
		if m.Modules != 4*m.Version+17 {
			t.Errorf("version %d: modules invariant broken", v)
		}
	}
}
