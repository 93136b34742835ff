package model

// InstallRequest describes what the user asked to add.
type InstallRequest struct {
	Names     []string // empty means prompt interactively
	Language  Language // empty means the configured default
	TargetDir string   // empty means the configured default
}

// UniqueNames returns Names without duplicates, keeping the first occurrence.
func (r InstallRequest) UniqueNames() []string {
	seen := make(map[string]struct{}, len(r.Names))
	out := make([]string, 0, len(r.Names))
	for _, n := range r.Names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// VariantDecision is the language negotiation result for one hook.
type VariantDecision struct {
	Hook        *Hook
	OK          bool
	Chosen      Language
	Alternative Language // empty when the hook has no other variant
}

// ConflictDecision is the user's answer for a target file that already exists.
type ConflictDecision string

const (
	// DecisionReplace overwrites the existing file.
	DecisionReplace ConflictDecision = "replace"
	// DecisionSkip leaves the existing file untouched.
	DecisionSkip ConflictDecision = "skip"
	// DecisionCancelAll aborts the whole add operation.
	DecisionCancelAll ConflictDecision = "cancel"
)

// Target is one approved write.
type Target struct {
	Hook     *Hook
	Language Language
	Path     string
	Existed  bool
}

// InstallOutcome is the final report of an add operation.
type InstallOutcome struct {
	Written []string // in resolution order
	Skipped []string // hook names the user chose to skip
}
