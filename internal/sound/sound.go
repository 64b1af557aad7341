package sound

import (
	"github.com/danmuck/ftlib/internal/sound/internal/pvmod"
	"github.com/rs/zerolog/log"
)

// PvModFn enters the private pvmod layer and returns the instrument it resolves.
func PvModFn() string {
	log.Info().Str("unit", "sound").Msg("accessed from pv_mod module")
	return pvmod.PubErr()
}
