// Package spectrum implements spectral processing for AAC decoding.
//
// This includes inverse quantization, scale factor application,
// M/S stereo, intensity stereo, PNS, and TNS.
package spectrum
