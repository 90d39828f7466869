package execute

// ANSI escape codes for diagnostics; disabled with --no-color.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[91m"
	colorYellow = "\033[93m"
	colorCyan   = "\033[96m"
)

func (r *Runner) paint(color, s string) string {
	if !r.cfg.Color {
		return s
	}
	return color + s + colorReset
}
