// Package tables contains lookup tables for AAC decoding.
//
// This includes sample rate tables, scalefactor band tables,
// and the inverse quantization table.
package tables
