// Package codec converts between decoded cube blocks and their on-disk byte form.
//
// A block is a dense float32 array laid out inline-major with the sample axis varying
// fastest. Encoding runs in two stages: the samples are first reduced to the file's
// precision tier, then the result passes through the byte-stage compressor from the
// compress package. Decoding reverses both stages.
//
// # Precision tiers
//
// TierLossless stores the raw IEEE 754 bits of every sample and reproduces the input
// bit-exactly, NaN payloads included.
//
// The quantized tiers (1, 2, 4, 8 and 16 bits) store a per-block minimum and maximum
// followed by one b-bit code per sample, packed most significant bit first:
//
//	┌──────────────┬──────────────┬──────────────────────────────┐
//	│ min (f32)    │ max (f32)    │ codes, ceil(n·b/8) bytes     │
//	└──────────────┴──────────────┴──────────────────────────────┘
//
// A sample x maps to q = round((x-min)/(max-min) · (2^b-1)) and decodes to
// min + q·(max-min)/(2^b-1), so the absolute error never exceeds
// (max-min) / (2·(2^b-1)). A constant block decodes exactly.
//
// The encoded size of a block is a function of its sample count and tier alone,
// which lets decoders verify a decompressed block before touching it.
package codec
