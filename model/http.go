package model

type ChordResult struct {
	Degree    int      `json:"degree"`
	Notes     []string `json:"notes"`
	Intervals []int    `json:"intervals"`
	Quality   string   `json:"quality"`
	Symbol    string   `json:"symbol"`
	Name      string   `json:"name"`
	Label     string   `json:"label"`
}

type AnalysisRequestBody struct {
	Root      string    `json:"root"`
	BaseScale BaseScale `json:"base_scale"`
	Mode      Mode      `json:"mode"`
	Seventh   bool      `json:"seventh"`
}

type AnalysisResponse struct {
	Root      string        `json:"root"`
	BaseScale string        `json:"base_scale"`
	Mode      string        `json:"mode"`
	Scale     []string      `json:"scale"`
	Chords    []ChordResult `json:"chords"`
	Text      string        `json:"text"`
}

type OptionsResponse struct {
	Roots      []string `json:"roots"`
	BaseScales []string `json:"base_scales"`
	Modes      []string `json:"modes"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error     string `json:"detail"`
	RequestId string `json:"request_id,omitempty"`
}
