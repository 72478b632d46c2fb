// Package syntax implements AAC bitstream syntax parsing.
package syntax

// ElementID represents a syntax element identifier.
type ElementID uint8

// Syntax Element IDs.
const (
	IDSCE            ElementID = 0x0 // Single Channel Element
	IDCPE            ElementID = 0x1 // Channel Pair Element
	IDCCE            ElementID = 0x2 // Coupling Channel Element
	IDLFE            ElementID = 0x3 // LFE Channel Element
	IDDSE            ElementID = 0x4 // Data Stream Element
	IDPCE            ElementID = 0x5 // Program Config Element
	IDFIL            ElementID = 0x6 // Fill Element
	IDEND            ElementID = 0x7 // Terminating Element
	InvalidElementID ElementID = 255
)

// WindowSequence represents the window sequence type.
type WindowSequence uint8

// Window Sequences.
const (
	OnlyLongSequence   WindowSequence = 0x0
	LongStartSequence  WindowSequence = 0x1
	EightShortSequence WindowSequence = 0x2
	LongStopSequence   WindowSequence = 0x3
)

// ExtensionType represents an extension element type.
type ExtensionType uint8

// Extension Types.
const (
	ExtFil          ExtensionType = 0  // Filler extension
	ExtFillData     ExtensionType = 1  // Fill with zero bytes
	ExtDataElement  ExtensionType = 2  // Data element
	ExtDynamicRange ExtensionType = 11 // Dynamic Range Control
)

// Bit length constants for parsing.
const (
	LenSEID = 3 // Syntax element identifier length in bits
	LenTag  = 4 // Element instance tag length in bits
	LenByte = 8 // Byte length in bits
)
