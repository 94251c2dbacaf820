package profiling

import (
	"math"

	"github.com/montanaflynn/stats"
)

// PayloadSummary holds the summary statistics of a set of payload masses.
type PayloadSummary struct {
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Median   float64 `json:"median"`
	Q25      float64 `json:"q25"`
	Q75      float64 `json:"q75"`
	Skewness float64 `json:"skewness"`
	Outliers int     `json:"outliers"`
}

// DistributionAnalyzer handles payload distribution analysis
type DistributionAnalyzer struct{}

// NewDistributionAnalyzer creates a new distribution analyzer
func NewDistributionAnalyzer() *DistributionAnalyzer {
	return &DistributionAnalyzer{}
}

// AnalyzeDistribution computes summary statistics for data. An empty input
// returns a zero summary rather than an error so empty filter results render.
func (da *DistributionAnalyzer) AnalyzeDistribution(data []float64) (PayloadSummary, error) {
	summary := PayloadSummary{Count: len(data)}
	if len(data) == 0 {
		return summary, nil
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return summary, err
	}

	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return summary, err
	}

	min, err := stats.Min(data)
	if err != nil {
		return summary, err
	}

	max, err := stats.Max(data)
	if err != nil {
		return summary, err
	}

	median, err := stats.Median(data)
	if err != nil {
		return summary, err
	}

	// Quartiles for IQR-based outlier detection
	q25, err := stats.Percentile(data, 25)
	if err != nil {
		return summary, err
	}

	q75, err := stats.Percentile(data, 75)
	if err != nil {
		return summary, err
	}

	summary.Mean = mean
	summary.StdDev = stdDev
	summary.Min = min
	summary.Max = max
	summary.Median = median
	summary.Q25 = q25
	summary.Q75 = q75
	summary.Skewness = calculateSkewness(data, mean, stdDev)
	summary.Outliers = detectOutliers(data, q25, q75)

	return summary, nil
}

// calculateSkewness computes sample skewness using the adjusted Fisher-Pearson coefficient
func calculateSkewness(data []float64, mean, stdDev float64) float64 {
	if len(data) < 3 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	sumCubedDeviations := 0.0

	for _, x := range data {
		deviation := (x - mean) / stdDev
		sumCubedDeviations += deviation * deviation * deviation
	}

	skewness := sumCubedDeviations / n

	// Bias correction for sample skewness
	correction := math.Sqrt(n*(n-1)) / (n - 2)
	return skewness * correction
}

// detectOutliers identifies outliers using IQR method
func detectOutliers(data []float64, q25, q75 float64) int {
	iqr := q75 - q25
	lowerBound := q25 - 1.5*iqr
	upperBound := q75 + 1.5*iqr

	outlierCount := 0
	for _, x := range data {
		if x < lowerBound || x > upperBound {
			outlierCount++
		}
	}

	return outlierCount
}
