// Package instrument is the exported leaf of the sound call chain.
package instrument

import "github.com/rs/zerolog/log"

// ClarinetName is the instrument Clarinet resolves to.
const ClarinetName = "clarinet"

// Clarinet logs its call and returns ClarinetName.
func Clarinet() string {
	log.Info().Str("unit", "instrument").Msg("clarinet() called")
	return ClarinetName
}

// pvDrum is unexported; only this package may call it.
func pvDrum() string {
	log.Debug().Str("unit", "instrument").Msg("pv_drum() called")
	return "drum"
}
