package types

// StateKind enumerates what can sit at a destination path.
type StateKind int

const (
	StateAbsent StateKind = iota
	StateSymlink
	StateRegularFile
	StateDirectory
	StateOther
)

var stateKindNames = map[StateKind]string{
	StateAbsent:      "absent",
	StateSymlink:     "symlink",
	StateRegularFile: "file",
	StateDirectory:   "directory",
	StateOther:       "other",
}

func (k StateKind) String() string {
	return stateKindNames[k]
}

// DestinationState is the probed state of a destination path. It is never
// cached: every decision probes again.
type DestinationState struct {
	Kind StateKind
	// Target is the recorded link target when Kind is StateSymlink.
	Target string
}

// Absent is the state of a path that does not exist.
var Absent = DestinationState{Kind: StateAbsent}

// SymlinkTo builds the state of a symlink recording target.
func SymlinkTo(target string) DestinationState {
	return DestinationState{Kind: StateSymlink, Target: target}
}

// Exists is true for every state but absent.
func (s DestinationState) Exists() bool {
	return s.Kind != StateAbsent
}

// IsSymlink reports whether the destination is a symlink.
func (s DestinationState) IsSymlink() bool {
	return s.Kind == StateSymlink
}

func (s DestinationState) String() string {
	if s.Kind == StateSymlink {
		return "symlink -> " + s.Target
	}
	return s.Kind.String()
}
