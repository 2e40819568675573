package walker

// Mode selects how far a traversal descends.
type Mode int

const (
	// ModeSingle lists the root directory only.
	ModeSingle Mode = iota
	// ModeRecursive descends into every listed subdirectory.
	ModeRecursive
)

func (m Mode) String() string {
	if m == ModeRecursive {
		return "recursive"
	}

	return "single"
}
