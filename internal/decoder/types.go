// Package decoder wraps the two external QR decoding libraries behind a
// single "attempt one luma frame" capability, matching the teacher's
// approach in webp.go of keeping format-specific decode functions
// (decodeLossy, decodeLossless) behind one small dispatch surface and
// never leaking the underlying library's types past that boundary — the
// only leak here, as in the spec, is the backend name string.
package decoder

// EccLevel is one of the four QR error-correction levels.
type EccLevel byte

const (
	EccL EccLevel = 'L'
	EccM EccLevel = 'M'
	EccQ EccLevel = 'Q'
	EccH EccLevel = 'H'
)

func (e EccLevel) String() string { return string(rune(e)) }

// Backend identifies which underlying decoding library produced a result.
type Backend string

const (
	// BackendZXing is the more robust, ZXing-lineage decoder (backend A).
	BackendZXing Backend = "zxing"
	// BackendQuirc is the faster, Quirc-lineage decoder (backend B).
	BackendQuirc Backend = "quirc"
)

// Metadata describes a successfully decoded QR symbol.
type Metadata struct {
	Version  int // 1-40
	Ecc      EccLevel
	Modules  int // 4*Version + 17
	Backends []Backend
}

// Outcome is the result of a single decode attempt: either a successful
// decode (Success true, Content and Meta populated) or a failure (every
// field zero).
type Outcome struct {
	Success bool
	Content string
	Meta    Metadata
}

func failure() Outcome { return Outcome{} }

func success(content string, version int, ecc EccLevel, backends ...Backend) Outcome {
	return Outcome{
		Success: true,
		Content: content,
		Meta: Metadata{
			Version:  version,
			Ecc:      ecc,
			Modules:  4*version + 17,
			Backends: append([]Backend(nil), backends...),
		},
	}
}
