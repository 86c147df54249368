package nutrition

import "math"

// Zone diet block sizes in grams per block. The fat value assumes hidden fat
// is counted, hence 3g rather than the 1.5g used for added fat only.
const (
	ZoneProteinGramsPerBlock = 7
	ZoneCarbGramsPerBlock    = 9
	ZoneFatGramsPerBlock     = 3
)

// ZoneBlocks expresses macro gram amounts in Zone diet block units.
type ZoneBlocks struct {
	ProteinBlocks float64 `json:"protein_blocks"`
	CarbBlocks    float64 `json:"carb_blocks"`
	FatBlocks     float64 `json:"fat_blocks"`
}

// CalculateZoneBlocks converts gram amounts into block units, each rounded to
// one decimal place.
func CalculateZoneBlocks(macros Macros) ZoneBlocks {
	return ZoneBlocks{
		ProteinBlocks: round1(float64(macros.Protein) / ZoneProteinGramsPerBlock),
		CarbBlocks:    round1(float64(macros.Carbs) / ZoneCarbGramsPerBlock),
		FatBlocks:     round1(float64(macros.Fat) / ZoneFatGramsPerBlock),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
