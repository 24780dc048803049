//go:build decimal_binfallback

package decimal

const defaultTier = TierBinary
