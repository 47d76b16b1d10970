package request

// CreateRoundRequest is the request body for creating a round
type CreateRoundRequest struct {
	Language  string   `json:"language,omitempty"`
	GridSize  int      `json:"grid_size,omitempty"`
	WordCount int      `json:"word_count,omitempty"`
	Words     []string `json:"words,omitempty"`
}

// Cell identifies a single grid cell in a selection
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SelectionRequest is the request body for submitting a selection
type SelectionRequest struct {
	Cells []Cell `json:"cells"`
}

// HintRequest is the request body for requesting a hint
type HintRequest struct {
	Strategy string `json:"strategy,omitempty"`
}
