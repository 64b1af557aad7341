// Package sound is the public entry to the instrument call chain.
//
// Ownership boundary:
// - sound: exported entry point (PvModFn)
// - sound/internal/pvmod: importable only from sound and its subpackages
// - sound/instrument: exported leaf reachable from anywhere in the module
package sound
