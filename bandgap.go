package bandgap_lab

// Physical constants shared by the estimator and the plot.
const (
	BoltzmannEV   = 8.617e-5 // eV/K
	KelvinOffset  = 273.15   // °C -> K
	MinCurrentA   = 1e-9     // readings at or below this are dropped before ln(I)
	MinFitPoints  = 2
	BandGapFactor = -2.0 // Eg = BandGapFactor * k_B * slope
)
