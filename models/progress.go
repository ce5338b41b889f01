package models

// PeriodSummary is computed on read and never persisted. Labels is aligned
// 1:1 with each of the numeric slices so the same charting consumer works
// for every granularity.
type PeriodSummary struct {
	Period   string    `json:"period"`
	Labels   []string  `json:"labels"`
	Calories []float64 `json:"calories"`
	Protein  []float64 `json:"protein"`
	Carbs    []float64 `json:"carbs"`
	Fat      []float64 `json:"fat"`
	Fiber    []float64 `json:"fiber"`
}
