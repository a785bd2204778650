package dto

type SubmitInput struct {
	Title       string
	Description string
	Category    string
	PhotoName   string
	Photo       []byte
	Lat         *float64
	Lng         *float64
}

type ProblemOutput struct {
	ID          string
	Title       string
	Description string
	Category    string
	Status      string
	PhotoURL    string
	Lat         float64
	Lng         float64
	ReportedBy  string
	AssignedTo  string
	Points      int
}

type SubmitOutput struct {
	// Queued is true when the report could not reach the server and was
	// durably saved for a later sync pass.
	Queued  bool
	LocalID string
	Problem ProblemOutput
}

type PositionOutput struct {
	Lat float64
	Lng float64
}
