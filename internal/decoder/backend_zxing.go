package decoder

import (
	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"

	"github.com/qrvalidate/qrvalidate/internal/pixel"
)

// zxingBackend wraps github.com/makiuchi-d/gozxing's QR reader, the
// ZXing-lineage backend (A in the spec). gozxing's reader is not declared
// safe for concurrent Decode calls sharing state, so each attempt builds a
// fresh reader — cheap relative to the bitmap scan it's about to run.
type zxingBackend struct{}

func (zxingBackend) name() Backend { return BackendZXing }

func (zxingBackend) decode(l *pixel.LumaFrame) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = failure()
		}
	}()

	img := l.ToImage()
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return failure()
	}

	reader := qrcode.NewQRCodeReader()
	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}
	result, err := reader.Decode(bmp, hints)
	if err != nil || result == nil {
		return failure()
	}

	text := result.GetText()
	ecc := eccFromMetadata(result.GetResultMetadata())
	version := minVersionForBytes(len([]byte(text)), ecc)
	return success(text, version, ecc, BackendZXing)
}

// eccFromMetadata extracts the error-correction level gozxing attaches to
// qrcode.QRCodeReader results, defaulting to M when the metadata key is
// absent or of an unrecognised shape (ECC level is advisory for this
// engine's purposes: it still must satisfy modules = 4*version+17, which
// does not depend on it). gozxing's qrcode decoder stores this value as a
// plain string (e.g. "L"), not a fmt.Stringer, so that is checked first;
// the Stringer fallback covers any metadata value that does implement one.
func eccFromMetadata(meta map[gozxing.ResultMetadataType]interface{}) EccLevel {
	v, ok := meta[gozxing.ResultMetadataType_ERROR_CORRECTION_LEVEL]
	if !ok {
		return EccM
	}
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case interface{ String() string }:
		s = t.String()
	default:
		return EccM
	}
	if s == "" {
		return EccM
	}
	switch s[:1] {
	case "L":
		return EccL
	case "M":
		return EccM
	case "Q":
		return EccQ
	case "H":
		return EccH
	default:
		return EccM
	}
}
