package input

// Keyspec is a key combination specification as it appears in a config file
// or on the command line, e.g. "Control+Alt+Left".
type Keyspec string
