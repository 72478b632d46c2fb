package syntax

// Limit constants for AAC decoding.
const (
	MaxChannels        = 64 // Maximum number of channels
	MaxSyntaxElements  = 48 // Maximum number of syntax elements
	MaxWindowGroups    = 8  // Maximum number of window groups
	MaxSFB             = 51 // Maximum number of scalefactor bands
	MaxCoupledElements = 8  // Maximum coupled elements in CCE (3 bits = 0-7, +1 loop)
)

// Frame geometry. Only the 1024-sample transform is supported.
const (
	FrameLength    = 1024 // Spectral coefficients per long window
	ShortWindowLen = 128  // Spectral coefficients per short window
)
