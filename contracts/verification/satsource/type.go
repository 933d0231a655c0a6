package satsource

// Type is an enumeration of satellite imagery sources accepted by the
// verification contract.
type Type int

const (
	// Planet satellite constellation.
	Planet Type = 1

	// MODIS instrument data.
	MODIS Type = 2

	// Sentinel satellite constellation.
	Sentinel Type = 3
)

// IsValid checks if the source belongs to the accepted enumeration.
func IsValid(s Type) bool {
	return s == Planet || s == MODIS || s == Sentinel
}
