//go:build !ebiten

package window

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/sim"
	"github.com/sheikhrachel/go-life/utils"
)

// Run is unavailable in headless builds.
func Run(utils.Config, *sim.Simulator) error {
	return errors.New("the windowed renderer requires the ebiten build tag; rebuild with `go build -tags ebiten`")
}
