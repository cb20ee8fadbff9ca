package app

import (
	"fmt"
	"strings"

	"github.com/Pranav-1100/finagent/internal/models"
)

// formatValuation renders a portfolio valuation as markdown for the chat
// agent to relay.
func formatValuation(v *models.PortfolioValuation) string {
	if len(v.Holdings) == 0 {
		return fmt.Sprintf("Portfolio '%s' is empty. Use add_stock to record a purchase.", v.PortfolioName)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Portfolio: %s\n\n", v.PortfolioName))
	sb.WriteString("| Symbol | Shares | Avg Cost | Price | Value | P/L | P/L % |\n")
	sb.WriteString("|--------|--------|----------|-------|-------|-----|-------|\n")

	unavailable := 0
	for _, h := range v.Holdings {
		priceCell := fmt.Sprintf("$%.2f", h.CurrentPrice)
		if h.QuoteUnavailable {
			priceCell += "*"
			unavailable++
		}
		sb.WriteString(fmt.Sprintf("| %s | %g | $%.2f | %s | $%.2f | %+.2f | %+.2f%% |\n",
			h.Symbol, h.Quantity, h.AverageCost, priceCell, h.TotalValue, h.ProfitLoss, h.ProfitLossPct))
	}

	sb.WriteString(fmt.Sprintf("\n**Total value:** $%.2f  \n", v.TotalValue))
	sb.WriteString(fmt.Sprintf("**Total cost:** $%.2f  \n", v.TotalCost))
	sb.WriteString(fmt.Sprintf("**Total P/L:** %+.2f (%+.2f%%)\n", v.TotalProfit, v.TotalProfitPct))

	if unavailable > 0 {
		sb.WriteString(fmt.Sprintf("\n*%d holding(s) had no live quote; shown at average cost with P/L of 0.\n", unavailable))
	}

	return sb.String()
}

// formatRiskReport renders a risk analysis as markdown.
func formatRiskReport(r *models.RiskReport) string {
	if r.HoldingCount == 0 {
		return fmt.Sprintf("Portfolio '%s' is empty - nothing to analyze.", r.PortfolioName)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Risk Analysis: %s\n\n", r.PortfolioName))
	sb.WriteString(fmt.Sprintf("**Rating:** %s\n\n", r.Rating))
	sb.WriteString(fmt.Sprintf("- Diversification score: %.0f/100 (%d holdings)\n", r.DiversificationScore, r.HoldingCount))
	sb.WriteString(fmt.Sprintf("- Risk score: %.0f/100\n", r.RiskScore))
	sb.WriteString(fmt.Sprintf("- Largest position: %.1f%% of portfolio\n", r.MaxConcentration))

	if len(r.Allocations) > 0 {
		sb.WriteString("\n## Allocation\n\n")
		for _, a := range r.Allocations {
			sb.WriteString(fmt.Sprintf("- %s: %.1f%% ($%.2f)\n", a.Symbol, a.Pct, a.Value))
		}
	}

	writeFindings := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		sb.WriteString(fmt.Sprintf("\n## %s\n\n", title))
		for _, item := range items {
			sb.WriteString(fmt.Sprintf("- %s\n", item))
		}
	}
	writeFindings("Strengths", r.Strengths)
	writeFindings("Weaknesses", r.Weaknesses)
	writeFindings("Suggested Actions", r.Actions)

	return sb.String()
}

// formatRebalancePlan renders a rebalance plan as markdown.
func formatRebalancePlan(p *models.RebalancePlan) string {
	if len(p.Allocations) == 0 {
		return fmt.Sprintf("Portfolio '%s' is empty - nothing to rebalance.", p.PortfolioName)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Rebalance Plan: %s\n\n", p.PortfolioName))
	sb.WriteString(fmt.Sprintf("Total value: $%.2f. Max deviation from target: %.1f percentage points.\n\n", p.TotalValue, p.MaxDeviation))

	if p.IsBalanced {
		sb.WriteString("Portfolio is balanced - every holding is within 10 percentage points of its target. No trades suggested.\n")
		return sb.String()
	}

	sb.WriteString("| Symbol | Action | Shares | Current | Target |\n")
	sb.WriteString("|--------|--------|--------|---------|--------|\n")
	for _, s := range p.Suggestions {
		sb.WriteString(fmt.Sprintf("| %s | %s | %d | %.1f%% | %.1f%% |\n",
			s.Symbol, s.Action, s.Shares, s.CurrentPct, s.TargetPct))
	}

	sb.WriteString("\nShare counts are rounded down for sells and up for buys. Review before trading.\n")
	return sb.String()
}

// formatBenchmark renders a benchmark comparison as markdown.
func formatBenchmark(b *models.BenchmarkComparison) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Benchmark Comparison (%s)\n\n", b.Period))

	if b.RequestedPeriod != b.Period {
		sb.WriteString(fmt.Sprintf("Requested period '%s' is not supported; using %s.\n\n", b.RequestedPeriod, b.Period))
	}

	sb.WriteString(fmt.Sprintf("- Portfolio return: %+.2f%%\n", b.PortfolioReturn))
	sb.WriteString(fmt.Sprintf("- S&P 500 return: %+.2f%%\n", b.BenchmarkReturn))
	sb.WriteString(fmt.Sprintf("- Outperformance: %+.2f%%\n\n", b.Outperformance))

	if b.Outperformance >= 0 {
		sb.WriteString("Your portfolio is beating the index over this period.\n")
	} else {
		sb.WriteString("Your portfolio is trailing the index over this period.\n")
	}

	sb.WriteString("\nNote: the portfolio return is measured against cost basis, not the start of the period, so this comparison is approximate.\n")
	return sb.String()
}

// formatAlertCheck renders an alert evaluation result as markdown.
func formatAlertCheck(r *models.AlertCheckResult) string {
	if r.Checked == 0 {
		return "No alerts are set. Use set_alert to create one."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Checked %d alert(s)", r.Checked))
	if r.Skipped > 0 {
		sb.WriteString(fmt.Sprintf(", %d skipped (no quote)", r.Skipped))
	}
	sb.WriteString(".\n\n")

	if len(r.Triggered) == 0 {
		sb.WriteString("No alerts triggered.\n")
		return sb.String()
	}

	sb.WriteString("## Triggered\n\n")
	for _, t := range r.Triggered {
		sb.WriteString(fmt.Sprintf("- **%s** is $%.2f, %s your target of $%.2f (id: %s)\n",
			t.Alert.Symbol, t.CurrentPrice, t.Alert.Condition, t.Alert.TargetPrice, t.Alert.ID))
	}

	return sb.String()
}

// formatExpenseSummary renders an expense summary as markdown.
func formatExpenseSummary(s *models.ExpenseSummary) string {
	if s.Count == 0 {
		return "No expenses recorded in this window."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Expenses: $%.2f across %d record(s)\n\n", s.Total, s.Count))

	for _, c := range s.Categories {
		sb.WriteString(fmt.Sprintf("- %s: $%.2f (%d)\n", c.Category, c.Total, c.Count))
	}

	return sb.String()
}

// formatSubscriptionSummary renders tracked subscriptions as markdown.
func formatSubscriptionSummary(s *models.SubscriptionSummary) string {
	if len(s.Subscriptions) == 0 {
		return "No subscriptions tracked. Use add_subscription to start."
	}

	var sb strings.Builder
	sb.WriteString("# Subscriptions\n\n")
	for _, sub := range s.Subscriptions {
		sb.WriteString(fmt.Sprintf("- %s: $%.2f/month (id: %s)\n", sub.Name, sub.MonthlyCost, sub.ID))
	}
	sb.WriteString(fmt.Sprintf("\n**Monthly total:** $%.2f  \n**Annual total:** $%.2f\n", s.MonthlyTotal, s.AnnualTotal))

	return sb.String()
}
