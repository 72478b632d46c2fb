package huffman

import "errors"

var (
	// ErrInvalidCodeword indicates a codeword not present in the codebook.
	ErrInvalidCodeword = errors.New("huffman: invalid codeword")

	// ErrCodewordTooLong indicates a codeword longer than the maximum length.
	ErrCodewordTooLong = errors.New("huffman: codeword exceeds maximum length")

	// ErrInvalidCodebook indicates a codebook number without spectral data.
	ErrInvalidCodebook = errors.New("huffman: invalid spectral codebook")

	// ErrEscapeTooLarge indicates an escape prefix beyond the allowed range.
	ErrEscapeTooLarge = errors.New("huffman: escape sequence out of range")
)
