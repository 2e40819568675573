package mount

type MountOptions struct {
	Auto    bool // Open the backend when mounting and close it when unmounting.
	Nesting bool // Whether the mount allows for nested mountpoints.
}

type MountOption func(*MountOptions) error

func newDefaultMountOptions() *MountOptions {
	return &MountOptions{
		Auto:    true,
		Nesting: true,
	}
}

// WithoutAuto leaves the backend lifecycle to the caller.
func WithoutAuto() MountOption {
	return func(mo *MountOptions) error {
		mo.Auto = false
		return nil
	}
}

// WithoutNesting rejects mounts below this mount point.
func WithoutNesting() MountOption {
	return func(mo *MountOptions) error {
		mo.Nesting = false
		return nil
	}
}
