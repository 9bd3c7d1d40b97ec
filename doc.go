// Package lpc provides a block-adaptive linear-predictive compressor for
// 16-bit audio samples.
//
// Samples are reduced to prediction residuals and entropy coded; the
// predictor refits its coefficients once per block from the reconstructed
// signal, so encoder and decoder stay in lockstep without any side
// information. The code bytes carry no framing or header: the Config used
// to encode must be supplied, unchanged, to decode.
//
// # Basic Usage
//
// One-shot round trip:
//
//	cfg := lpc.DefaultConfig()
//	code, err := lpc.Encode(cfg, samples)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	decoded, err := lpc.Decode(cfg, code)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # API Variants
//
// The package provides two API styles:
//
// One-shot API:
//   - Encode: samples in, code bytes out
//   - Decode: code bytes in, samples out
//
// Streaming API:
//   - Encoder: Write one sample at a time; Flush and Code for the bytes.
//     Write returns the reconstruction, and Stats accumulates divergence
//     on lossy streams.
//   - Decoder: Read one sample at a time until io.EOF.
//
// NewEncoderWith and NewDecoderWith accept custom Estimator and residual
// coder implementations in place of the built-in Toeplitz estimator and
// adaptive Rice coder.
//
// # Lossy Mode
//
// Config.LossBits trades precision for bitrate: the coder keeps every
// reconstruction within half a quantization step of the input wherever
// predictions stay in range, and the encoder reports exactly what the
// decoder will see, both per sample from Write and aggregated in Stats.
//
// # Thread Safety
//
// Encoder and Decoder instances are NOT safe for concurrent use. Each
// goroutine should have its own instance; instances share no state.
package lpc
