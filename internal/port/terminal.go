package port

type Terminal interface {
	// Ask prints label and reads one line of input without the line terminator
	Ask(label string) (string, error)

	// AskSecret behaves like Ask but does not echo the input when possible
	AskSecret(label string) (string, error)

	// Say prints one line
	Say(format string, args ...any)
}
