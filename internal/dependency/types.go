package dependency

// Map holds inferred ordering relations between tasks. Both maps are
// kept symmetric: every blocker edge appears in BlockedBy and in
// Blocking. No self-references, no duplicate ordered pairs.
type Map struct {
	BlockedBy map[string][]string `json:"blockedBy"`
	Blocking  map[string][]string `json:"blocking"`
}

// Suggestion is a heuristic ordering hint between two tasks: From
// should complete before To.
type Suggestion struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	Reason     string  `json:"reason"`
	Confidence float64 `json:"confidence"`
}
