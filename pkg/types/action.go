package types

// Category groups actions by the kind of thing being reconciled.
type Category string

const (
	CategoryLink    Category = "link"
	CategoryNonLink Category = "non-link"
	CategoryEntry   Category = "entry"
	CategoryCommand Category = "command"
)

// Detail names what happened (or would happen) to the entry.
type Detail string

const (
	DetailCreate    Detail = "create"
	DetailOverwrite Detail = "overwrite"
	DetailExists    Detail = "exists"
	DetailDelete    Detail = "delete"
	DetailAbsent    Detail = "absent"
	DetailDifferent Detail = "different"
	DetailPurge     Detail = "purge"
	DetailUnlinked  Detail = "unlinked"
	DetailRun       Detail = "run"
)

// Action is a resolved decision. It carries no behavior: mutations are
// driven by the handler that produced it.
type Action struct {
	Category    Category `json:"category" yaml:"category"`
	Detail      Detail   `json:"detail" yaml:"detail"`
	Source      string   `json:"source,omitempty" yaml:"source,omitempty"`
	Destination string   `json:"destination,omitempty" yaml:"destination,omitempty"`
}

// Mutates reports whether the action changes the filesystem when applied.
func (a Action) Mutates() bool {
	switch a.Detail {
	case DetailCreate, DetailOverwrite, DetailDelete, DetailPurge, DetailRun:
		return true
	}
	return false
}

// Key returns the "category/detail" pair used for summaries.
func (a Action) Key() string {
	return string(a.Category) + "/" + string(a.Detail)
}
