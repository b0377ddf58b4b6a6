package models

// Point is one linearized reading: x = 1/T_K, y = ln(I).
type Point struct {
	InvT float64 `json:"inv_t"`
	LnI  float64 `json:"ln_i"`
}

// BandGapResult is recomputed from the full reading log on every request.
type BandGapResult struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	BandGapEV float64 `json:"band_gap_eV"`
	RSquared  float64 `json:"r_squared"`
	Points    []Point `json:"points"`
	Used      int     `json:"used"`  // len(Points)
	Total     int     `json:"total"` // readings in the log at compute time
}

// Columns splits the working set into the x and y series.
func (r BandGapResult) Columns() (invT, lnI []float64) {
	invT = make([]float64, len(r.Points))
	lnI = make([]float64, len(r.Points))
	for i, p := range r.Points {
		invT[i] = p.InvT
		lnI[i] = p.LnI
	}
	return invT, lnI
}
