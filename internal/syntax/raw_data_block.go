// Package syntax: raw_data_block() parsing.
//
// The raw_data_block() is the core parsing loop that reads and
// dispatches all syntax elements (SCE, CPE, CCE, LFE, DSE, PCE, FIL)
// in an AAC frame.
package syntax

import "github.com/averten/go-aacdec/internal/bits"

// RawDataBlockConfig holds configuration for raw data block parsing.
type RawDataBlockConfig struct {
	SFIndex              uint8 // Sample rate index (0-11)
	ChannelConfiguration uint8 // Channel configuration (0-7)
}

// ChannelElement is one channel-bearing element in bitstream order.
// SCE and LFE elements fill the SCE field, CPE elements the CPE field.
type ChannelElement struct {
	ID  ElementID
	Tag uint8
	SCE *SCEResult
	CPE *CPEResult
}

// RawDataBlockResult holds the result of parsing a raw data block.
type RawDataBlockResult struct {
	NumChannels  uint8     // Total output channels in this frame
	NumElements  uint8     // Number of elements parsed
	FirstElement ElementID // First syntax element type
	HasLFE       bool      // True if an LFE element is present

	// Channel-bearing elements in bitstream order
	Elements []ChannelElement

	SCECount uint8 // Number of SCE elements
	CPECount uint8 // Number of CPE elements
	LFECount uint8 // Number of LFE elements
	CCECount uint8 // Number of CCE elements

	// Coupling elements are consumed but not applied
	CCEResults []*CCEResult

	// PCE is returned if present as the first element
	PCE *ProgramConfig
}

// ParseRawDataBlock parses a raw_data_block() from the bitstream.
// Syntax elements are read in a loop until ID_END is encountered.
func ParseRawDataBlock(r *bits.Reader, cfg *RawDataBlockConfig, drc *DRCInfo) (*RawDataBlockResult, error) {
	result := &RawDataBlockResult{
		FirstElement: InvalidElementID,
	}

	for {
		// Element ID (3 bits)
		idSynEle := ElementID(r.GetBits(LenSEID))

		if r.Error() {
			return nil, ErrBitstreamError
		}
		if idSynEle == IDEND {
			break
		}

		result.NumElements++
		if result.NumElements > MaxSyntaxElements {
			return nil, ErrTooManyElements
		}
		if result.FirstElement == InvalidElementID {
			result.FirstElement = idSynEle
		}

		switch idSynEle {
		case IDSCE:
			sceCfg := &SCEConfig{SFIndex: cfg.SFIndex}
			sceResult, err := ParseSingleChannelElement(r, result.NumChannels, sceCfg)
			if err != nil {
				return nil, err
			}
			result.Elements = append(result.Elements, ChannelElement{
				ID:  IDSCE,
				Tag: sceResult.Tag,
				SCE: sceResult,
			})
			result.SCECount++
			result.NumChannels++

		case IDCPE:
			cpeCfg := &CPEConfig{SFIndex: cfg.SFIndex}
			cpeResult, err := ParseChannelPairElement(r, result.NumChannels, cpeCfg)
			if err != nil {
				return nil, err
			}
			result.Elements = append(result.Elements, ChannelElement{
				ID:  IDCPE,
				Tag: cpeResult.Tag,
				CPE: cpeResult,
			})
			result.CPECount++
			result.NumChannels += 2

		case IDLFE:
			// LFE shares the SCE syntax
			sceCfg := &SCEConfig{SFIndex: cfg.SFIndex}
			lfeResult, err := ParseSingleChannelElement(r, result.NumChannels, sceCfg)
			if err != nil {
				return nil, err
			}
			result.Elements = append(result.Elements, ChannelElement{
				ID:  IDLFE,
				Tag: lfeResult.Tag,
				SCE: lfeResult,
			})
			result.LFECount++
			result.NumChannels++
			result.HasLFE = true

		case IDCCE:
			cceCfg := &CCEConfig{SFIndex: cfg.SFIndex}
			cceResult, err := ParseCouplingChannelElement(r, cceCfg)
			if err != nil {
				return nil, err
			}
			result.CCEResults = append(result.CCEResults, cceResult)
			result.CCECount++

		case IDDSE:
			// Data is discarded
			_ = ParseDataStreamElement(r)

		case IDPCE:
			// Only a PCE leading the frame describes it; later ones
			// are parsed and dropped.
			pce, err := ParsePCE(r)
			if err != nil {
				return nil, err
			}
			if result.NumElements == 1 {
				result.PCE = pce
			}

		case IDFIL:
			if err := ParseFillElement(r, drc); err != nil {
				return nil, err
			}

		default:
			return nil, ErrUnknownElement
		}

		if r.Error() {
			return nil, ErrBitstreamError
		}
	}

	r.ByteAlign()

	return result, nil
}
