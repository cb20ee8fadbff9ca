package analysis

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/Pranav-1100/finagent/internal/models"
)

// RenderAllocationChart renders the current allocation as a PNG donut for
// the dashboard. Returns raw PNG bytes.
func RenderAllocationChart(v *models.PortfolioValuation) ([]byte, error) {
	if len(v.Holdings) == 0 || v.TotalValue <= 0 {
		return nil, fmt.Errorf("no holdings with market value to chart")
	}

	values := make([]chart.Value, 0, len(v.Holdings))
	for _, a := range Allocations(v) {
		if a.Value <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s %.1f%%", a.Symbol, a.Pct),
			Value: a.Value,
		})
	}

	graph := chart.DonutChart{
		Title:  fmt.Sprintf("%s allocation", v.PortfolioName),
		Width:  600,
		Height: 600,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
