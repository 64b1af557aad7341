// Command pvmodimport imports pvmod from outside internal/sound and must not build.
package main

import (
	"fmt"

	"github.com/danmuck/ftlib/internal/sound/internal/pvmod"
)

func main() {
	fmt.Println(pvmod.PubErr())
}
