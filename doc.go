// Package qrvalidate decodes QR codes embedded in visually complex images
// (stylised, logo-overlaid, low-contrast, AI-generated) and assigns each
// image a scannability score between 0 and 100 that predicts how reliably
// real-world scanners will read it.
//
// The package applies a progressive, tiered preprocessing pipeline until a
// dual-backend decoder succeeds, then re-runs the decoder on a fixed set of
// perturbed variants of the image and maps the pass/fail pattern to a
// weighted score.
//
// Basic usage:
//
//	result, err := qrvalidate.Validate(imageBytes)
//	if err != nil {
//		// ImageLoad, ImageTooLarge, or DecodeFailed — see Kind.
//	}
//	fmt.Println(result.Score, result.Decodable, result.Content)
//
// Cheaper entry points are available when the caller does not need the full
// stress-test suite: ValidateFast runs a 3-test subset, and DecodeOnly skips
// stress testing and scoring entirely.
package qrvalidate
