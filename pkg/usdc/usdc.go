// Package usdc defines constants for the USDC stablecoin that backs every
// vault reserve.
package usdc

const (
	Mint          = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	QuarksPerUsdc = 1000000
	Decimals      = 6
)

// ToQuarks converts whole USDC units into quarks.
func ToQuarks(units uint64) uint64 {
	return units * QuarksPerUsdc
}

// FromQuarks converts quarks into whole USDC units, truncating any dust.
func FromQuarks(quarks uint64) uint64 {
	return quarks / QuarksPerUsdc
}
