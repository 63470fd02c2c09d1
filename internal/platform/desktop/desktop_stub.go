//go:build !ebiten

package desktop

// Run reports that the desktop window is not compiled in.
func Run(Options) error {
	return ErrUnavailable
}
