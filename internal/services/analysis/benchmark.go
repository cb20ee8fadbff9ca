package analysis

import (
	"strings"

	"github.com/Pranav-1100/finagent/internal/models"
)

// sp500Returns is the reference index return table, percent per period.
var sp500Returns = map[string]float64{
	"1M":  2.1,
	"3M":  5.8,
	"6M":  8.2,
	"1Y":  10.5,
	"YTD": 7.3,
}

// defaultPeriod is the fallback for unrecognized period tokens. The
// comparison result reports both the requested and effective period so the
// fallback is never silent.
const defaultPeriod = "1Y"

// CompareBenchmark compares portfolio return against the S&P 500 reference
// table. A zero cost basis yields a 0% portfolio return rather than an
// error; an empty portfolio simply underperforms the index.
func CompareBenchmark(v *models.PortfolioValuation, period string) *models.BenchmarkComparison {
	requested := strings.ToUpper(strings.TrimSpace(period))
	effective := requested
	benchmarkReturn, ok := sp500Returns[effective]
	if !ok {
		effective = defaultPeriod
		benchmarkReturn = sp500Returns[defaultPeriod]
	}

	portfolioReturn := 0.0
	if v.TotalCost > 0 {
		portfolioReturn = (v.TotalValue - v.TotalCost) / v.TotalCost * 100
	}

	return &models.BenchmarkComparison{
		Period:          effective,
		RequestedPeriod: requested,
		PortfolioReturn: portfolioReturn,
		BenchmarkReturn: benchmarkReturn,
		Outperformance:  portfolioReturn - benchmarkReturn,
	}
}
