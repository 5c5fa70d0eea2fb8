package extract

// Strategy ids, in fixed priority order. Score ties between candidates are
// broken by this order, then by earliest text position.
const (
	StrategyKeywordRegex   = "keyword-regex"
	StrategyLabelProximity = "label-proximity"
	StrategyPositional     = "positional"
	StrategyLineTable      = "line-table"
)

// Candidate is one strategy's proposal for a field, with its source location.
// Never mutated after creation.
type Candidate struct {
	Field    string `json:"field"`
	Raw      string `json:"raw"`
	Value    Value  `json:"value"`
	Strategy string `json:"strategy"`
	Span     Span   `json:"span"`
}

// Strategy is the single capability every extraction heuristic implements.
// Implementations must be pure: no mutation of the document, no I/O.
type Strategy interface {
	ID() string
	FindCandidates(doc *Document, spec FieldSpec) ([]Candidate, error)
}

// Registry holds the process-wide strategy table, keyed by strategy id.
// Registration is explicit; there is no runtime type inspection.
type Registry struct {
	byID     map[string]Strategy
	priority map[string]int
}

// NewRegistry builds the stock registry with all four built-in strategies.
func NewRegistry() *Registry {
	r := &Registry{
		byID:     make(map[string]Strategy),
		priority: make(map[string]int),
	}
	r.Register(&KeywordRegex{})
	r.Register(&LabelProximity{})
	r.Register(&Positional{})
	r.Register(&LineTable{})
	return r
}

// Register adds a strategy; registration order defines tie-break priority.
func (r *Registry) Register(s Strategy) {
	if _, dup := r.byID[s.ID()]; dup {
		return
	}
	r.priority[s.ID()] = len(r.byID)
	r.byID[s.ID()] = s
}

func (r *Registry) Lookup(id string) (Strategy, bool) {
	s, ok := r.byID[id]
	return s, ok
}

// Priority returns the tie-break rank for a strategy id; unknown ids sort last.
func (r *Registry) Priority(id string) int {
	if p, ok := r.priority[id]; ok {
		return p
	}
	return int(^uint(0) >> 1)
}
