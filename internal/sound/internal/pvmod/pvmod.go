// Package pvmod sits behind sound; the internal/ path keeps callers outside
// internal/sound from importing it.
package pvmod

import (
	"github.com/danmuck/ftlib/internal/sound/instrument"
	"github.com/rs/zerolog/log"
)

// PubErr logs its call and delegates to instrument.Clarinet.
func PubErr() string {
	log.Info().Str("unit", "pvmod").Msg("pv_err() called")
	return instrument.Clarinet()
}
