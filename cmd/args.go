package cmd

// CommandArgs contains parsed command arguments
type CommandArgs struct {
	// Positional arguments (command-specific)
	Args []string

	// Parsed flags
	Flags map[string]any

	// Raw unparsed arguments (for custom parsing)
	Raw []string
}

// Arg returns the positional argument at index i or fallback.
func (ca *CommandArgs) Arg(i int, fallback string) string {
	if i < len(ca.Args) {
		return ca.Args[i]
	}
	return fallback
}

func (ca *CommandArgs) Bool(name string) bool {
	v, _ := ca.Flags[name].(bool)
	return v
}

func (ca *CommandArgs) String(name string) string {
	v, _ := ca.Flags[name].(string)
	return v
}

func (ca *CommandArgs) Int(name string) int64 {
	switch v := ca.Flags[name].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	}
	return 0
}

// CommandFlagSet defines the expected flags for a command
type CommandFlagSet struct {
	Flags map[string]*CommandFlag
}

// CommandFlag represents a single command-line flag
type CommandFlag struct {
	Name        string `json:"name"`              // e.g., "recursive"
	Short       string `json:"short"`             // Single-char shorthand (e.g., "r")
	Type        string `json:"type"`              // "string", "bool", "int"
	Default     any    `json:"default,omitempty"` // Default value
	Required    bool   `json:"required"`          // Must be provided
	Description string `json:"description"`       // Help text
}
