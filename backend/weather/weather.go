package weather

// HotThreshold is the temperature at and above which the weather is hot.
const HotThreshold = 25

const (
	Hot  = "hot"
	Cold = "cold"
)

// Classify returns Hot when temp meets or exceeds HotThreshold, otherwise Cold.
func Classify(temp float64) string {
	if temp >= HotThreshold {
		return Hot
	}
	return Cold
}
