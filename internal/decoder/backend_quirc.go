package decoder

import (
	"github.com/liyue201/goqr"

	"github.com/qrvalidate/qrvalidate/internal/pixel"
)

// quircBackend wraps github.com/liyue201/goqr, a pure-Go port of the quirc
// decoder — the faster, Quirc-lineage backend (B in the spec). quirc's
// decoder is a synchronous, image-in/codes-out call with no handle to
// reuse across attempts, so there is no setup to share between calls.
type quircBackend struct{}

func (quircBackend) name() Backend { return BackendQuirc }

func (quircBackend) decode(l *pixel.LumaFrame) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = failure()
		}
	}()

	img := l.ToImage()
	codes, err := goqr.Recognize(img)
	if err != nil || len(codes) == 0 {
		return failure()
	}

	// A frame may contain more than one symbol; the engine only validates a
	// single target QR code, so the first recognised symbol wins.
	code := codes[0]
	content := string(code.Payload)
	ecc := eccFromQuirc(code.EccLevel)
	version := code.Version
	if version < 1 || version > 40 {
		// goqr's Version is unset (or out of range) on some inputs; fall
		// back to the same capacity-table reconstruction the zxing backend
		// uses, rather than trusting an invalid value.
		version = minVersionForBytes(len(code.Payload), ecc)
	}
	return success(content, version, ecc, BackendQuirc)
}

// eccFromQuirc maps goqr's raw quirc_data.ecc_level encoding (0=M, 1=L,
// 2=H, 3=Q — the bit pattern quirc inherits from the QR format info field,
// not alphabetical order) to this package's EccLevel. Any other value
// defaults to M, matching the zxing backend's own default-on-unknown
// behaviour.
func eccFromQuirc(level int) EccLevel {
	switch level {
	case 0:
		return EccM
	case 1:
		return EccL
	case 2:
		return EccH
	case 3:
		return EccQ
	default:
		return EccM
	}
}
