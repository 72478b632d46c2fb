package tables

import "errors"

// ErrInvalidSRIndex indicates an invalid sample rate index.
var ErrInvalidSRIndex = errors.New("tables: invalid sample rate index")

// GetSWBOffset returns the scalefactor band offset table for the given
// sample rate index and window size. For long windows the table covers
// 1024 coefficients, for short windows 128.
// Returns error if srIndex >= 12.
func GetSWBOffset(srIndex uint8, isShort bool) ([]uint16, error) {
	if srIndex >= 12 {
		return nil, ErrInvalidSRIndex
	}

	if isShort {
		return SWBOffset128Window[srIndex], nil
	}
	return SWBOffset1024Window[srIndex], nil
}

// GetNumSWB returns the number of scalefactor window bands.
// Returns error if srIndex >= 12.
func GetNumSWB(srIndex uint8, isShort bool) (uint8, error) {
	if srIndex >= 12 {
		return 0, ErrInvalidSRIndex
	}

	if isShort {
		return NumSWB128Window[srIndex], nil
	}
	return NumSWB1024Window[srIndex], nil
}
