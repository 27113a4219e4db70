package palette

// BuildingStyle is the surface look of a skyline building type.
type BuildingStyle struct {
	Color     Color
	Emissive  Color
	Metalness float32
	Roughness float32
}

var buildingStyles = map[string]BuildingStyle{
	"skyscraper":  {Color: MustHex("#00ffff"), Emissive: MustHex("#004444"), Metalness: 0.8, Roughness: 0.2},
	"luxury":      {Color: MustHex("#ffff00"), Emissive: MustHex("#444400"), Metalness: 0.6, Roughness: 0.3},
	"premium":     {Color: MustHex("#ff00ff"), Emissive: MustHex("#440044"), Metalness: 0.4, Roughness: 0.4},
	"residential": {Color: MustHex("#00ff00"), Emissive: MustHex("#004400"), Metalness: 0.2, Roughness: 0.6},
}

// StyleFor returns the style for a building type, falling back to residential.
func StyleFor(kind string) BuildingStyle {
	if s, ok := buildingStyles[kind]; ok {
		return s
	}
	return buildingStyles["residential"]
}

// KnownBuildingType reports whether kind has its own style.
func KnownBuildingType(kind string) bool {
	_, ok := buildingStyles[kind]
	return ok
}

// GrowthIndicator colors an area's growth marker: >15% green, >10% yellow,
// otherwise orange.
func GrowthIndicator(growthPercent float32) Color {
	switch {
	case growthPercent > 15:
		return MustHex("#00ff00")
	case growthPercent > 10:
		return MustHex("#ffff00")
	default:
		return MustHex("#ff8800")
	}
}
