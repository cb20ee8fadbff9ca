package app

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Pranav-1100/finagent/internal/common"
	"github.com/Pranav-1100/finagent/internal/interfaces"
	"github.com/Pranav-1100/finagent/internal/models"
)

// textResult wraps plain text in a successful tool result.
func textResult(text string) *mcp.CallToolResult {
	return mcp.NewToolResultText(text)
}

// errorResult wraps a message in an error tool result. Tool errors are
// returned as results (not Go errors) so the agent can read and relay
// them.
func errorResult(message string) *mcp.CallToolResult {
	return mcp.NewToolResultError(message)
}

// portfolioName resolves the optional portfolio argument.
func portfolioName(request mcp.CallToolRequest) string {
	name := request.GetString("portfolio", DefaultPortfolio)
	if name == "" {
		return DefaultPortfolio
	}
	return name
}

// handleGetVersion implements the get_version tool
func handleGetVersion() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := fmt.Sprintf("finagent server\nVersion: %s\nBuild: %s\nCommit: %s\nStatus: OK",
			common.GetVersion(), common.GetBuild(), common.GetGitCommit())
		return textResult(result), nil
	}
}

// handleGetPortfolio implements the get_portfolio tool
func handleGetPortfolio(portfolios interfaces.PortfolioService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := portfolioName(request)

		valuation, err := portfolios.ValuePortfolio(ctx, name)
		if err != nil {
			logger.Error().Err(err).Str("portfolio", name).Msg("Portfolio valuation failed")
			return errorResult(fmt.Sprintf("Portfolio error: %v", err)), nil
		}

		return textResult(formatValuation(valuation)), nil
	}
}

// handleAddStock implements the add_stock tool
func handleAddStock(portfolios interfaces.PortfolioService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, err := request.RequireString("symbol")
		if err != nil || symbol == "" {
			return errorResult("Error: symbol parameter is required"), nil
		}
		quantity := request.GetFloat("quantity", 0)
		if quantity <= 0 {
			return errorResult("Error: quantity must be a positive number"), nil
		}
		price := request.GetFloat("price", 0)
		if price <= 0 {
			return errorResult("Error: price must be a positive number"), nil
		}

		holding, err := portfolios.AddStock(ctx, portfolioName(request), symbol, quantity, price)
		if err != nil {
			logger.Error().Err(err).Str("symbol", symbol).Msg("Add stock failed")
			return errorResult(fmt.Sprintf("Add stock error: %v", err)), nil
		}

		return textResult(fmt.Sprintf("Bought %g %s @ $%.2f. Position: %g shares, average cost $%.2f.",
			quantity, holding.Symbol, price, holding.TotalQuantity(), holding.AverageCost())), nil
	}
}

// handleRemoveStock implements the remove_stock tool
func handleRemoveStock(portfolios interfaces.PortfolioService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, err := request.RequireString("symbol")
		if err != nil || symbol == "" {
			return errorResult("Error: symbol parameter is required"), nil
		}
		quantity := request.GetFloat("quantity", 0)

		p, err := portfolios.RemoveStock(ctx, portfolioName(request), symbol, quantity)
		if err != nil {
			logger.Error().Err(err).Str("symbol", symbol).Msg("Remove stock failed")
			return errorResult(fmt.Sprintf("Remove stock error: %v", err)), nil
		}

		symbol = models.NormalizeSymbol(symbol)
		if remaining := p.FindHolding(symbol); remaining != nil {
			return textResult(fmt.Sprintf("Removed shares of %s. Remaining: %g shares.", symbol, remaining.TotalQuantity())), nil
		}
		return textResult(fmt.Sprintf("Position in %s fully closed.", symbol)), nil
	}
}

// handleGetQuote implements the get_quote tool
func handleGetQuote(gateway interfaces.QuoteGateway, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, err := request.RequireString("symbol")
		if err != nil || symbol == "" {
			return errorResult("Error: symbol parameter is required"), nil
		}
		if gateway == nil {
			return errorResult("Error: market data is not configured"), nil
		}

		quote, err := gateway.GetQuote(ctx, symbol)
		if err != nil {
			logger.Debug().Err(err).Str("symbol", symbol).Msg("Quote fetch failed")
			return errorResult(fmt.Sprintf("No quote available for %s", models.NormalizeSymbol(symbol))), nil
		}

		return textResult(fmt.Sprintf("%s: $%.2f (%+.2f, %+.2f%%)",
			quote.Symbol, quote.CurrentPrice, quote.Change, quote.ChangePct)), nil
	}
}

// handleAnalyzePortfolio implements the analyze_portfolio tool
func handleAnalyzePortfolio(analyses interfaces.AnalysisService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := portfolioName(request)

		report, err := analyses.AnalyzeRisk(ctx, name)
		if err != nil {
			logger.Error().Err(err).Str("portfolio", name).Msg("Risk analysis failed")
			return errorResult(fmt.Sprintf("Analysis error: %v", err)), nil
		}

		return textResult(formatRiskReport(report)), nil
	}
}

// handleRebalancePortfolio implements the rebalance_portfolio tool
func handleRebalancePortfolio(analyses interfaces.AnalysisService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := portfolioName(request)

		plan, err := analyses.PlanRebalance(ctx, name, nil)
		if err != nil {
			logger.Error().Err(err).Str("portfolio", name).Msg("Rebalance planning failed")
			return errorResult(fmt.Sprintf("Rebalance error: %v", err)), nil
		}

		return textResult(formatRebalancePlan(plan)), nil
	}
}

// handleCompareBenchmark implements the compare_benchmark tool
func handleCompareBenchmark(analyses interfaces.AnalysisService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := portfolioName(request)
		period := request.GetString("period", "1Y")

		comparison, err := analyses.CompareBenchmark(ctx, name, period)
		if err != nil {
			logger.Error().Err(err).Str("portfolio", name).Msg("Benchmark comparison failed")
			return errorResult(fmt.Sprintf("Benchmark error: %v", err)), nil
		}

		return textResult(formatBenchmark(comparison)), nil
	}
}

// handleSetAlert implements the set_alert tool
func handleSetAlert(alerts interfaces.AlertService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, err := request.RequireString("symbol")
		if err != nil || symbol == "" {
			return errorResult("Error: symbol parameter is required"), nil
		}
		condition, err := request.RequireString("condition")
		if err != nil {
			return errorResult("Error: condition parameter is required"), nil
		}
		target := request.GetFloat("target_price", 0)
		if target <= 0 {
			return errorResult("Error: target_price must be a positive number"), nil
		}

		a, err := alerts.SetAlert(ctx, symbol, models.AlertCondition(condition), target)
		if err != nil {
			logger.Error().Err(err).Str("symbol", symbol).Msg("Set alert failed")
			return errorResult(fmt.Sprintf("Set alert error: %v", err)), nil
		}

		return textResult(fmt.Sprintf("Alert set: %s %s $%.2f (id: %s)", a.Symbol, a.Condition, a.TargetPrice, a.ID)), nil
	}
}

// handleCheckAlerts implements the check_alerts tool
func handleCheckAlerts(alerts interfaces.AlertService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := alerts.CheckAlerts(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("Alert check failed")
			return errorResult(fmt.Sprintf("Alert check error: %v", err)), nil
		}

		return textResult(formatAlertCheck(result)), nil
	}
}

// handleRemoveAlert implements the remove_alert tool
func handleRemoveAlert(alerts interfaces.AlertService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil || id == "" {
			return errorResult("Error: id parameter is required"), nil
		}

		if err := alerts.RemoveAlert(ctx, id); err != nil {
			logger.Error().Err(err).Str("id", id).Msg("Remove alert failed")
			return errorResult(fmt.Sprintf("Remove alert error: %v", err)), nil
		}

		return textResult(fmt.Sprintf("Alert %s removed.", id)), nil
	}
}

// handleAddExpense implements the add_expense tool
func handleAddExpense(spendings interfaces.SpendingService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		amount := request.GetFloat("amount", 0)
		if amount <= 0 {
			return errorResult("Error: amount must be a positive number"), nil
		}
		category := request.GetString("category", "")
		note := request.GetString("note", "")

		expense, err := spendings.AddExpense(ctx, amount, category, note, time.Time{})
		if err != nil {
			logger.Error().Err(err).Msg("Add expense failed")
			return errorResult(fmt.Sprintf("Add expense error: %v", err)), nil
		}

		return textResult(fmt.Sprintf("Recorded $%.2f under '%s'.", expense.Amount, expense.Category)), nil
	}
}

// handleExpenseSummary implements the expense_summary tool
func handleExpenseSummary(spendings interfaces.SpendingService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		from, ok := parseDateArg(request.GetString("from", ""))
		if !ok {
			return errorResult("Error: from must be YYYY-MM-DD"), nil
		}
		to, ok := parseDateArg(request.GetString("to", ""))
		if !ok {
			return errorResult("Error: to must be YYYY-MM-DD"), nil
		}
		if !to.IsZero() {
			// Inclusive end of day
			to = to.Add(24*time.Hour - time.Nanosecond)
		}

		summary, err := spendings.ExpenseSummary(ctx, from, to)
		if err != nil {
			logger.Error().Err(err).Msg("Expense summary failed")
			return errorResult(fmt.Sprintf("Expense summary error: %v", err)), nil
		}

		return textResult(formatExpenseSummary(summary)), nil
	}
}

// handleAddSubscription implements the add_subscription tool
func handleAddSubscription(spendings interfaces.SpendingService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil || name == "" {
			return errorResult("Error: name parameter is required"), nil
		}
		cost := request.GetFloat("monthly_cost", 0)
		if cost <= 0 {
			return errorResult("Error: monthly_cost must be a positive number"), nil
		}

		sub, err := spendings.AddSubscription(ctx, name, cost)
		if err != nil {
			logger.Error().Err(err).Str("name", name).Msg("Add subscription failed")
			return errorResult(fmt.Sprintf("Add subscription error: %v", err)), nil
		}

		return textResult(fmt.Sprintf("Tracking %s at $%.2f/month ($%.2f/year).", sub.Name, sub.MonthlyCost, sub.MonthlyCost*12)), nil
	}
}

// handleListSubscriptions implements the list_subscriptions tool
func handleListSubscriptions(spendings interfaces.SpendingService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		summary, err := spendings.SubscriptionSummary(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("Subscription summary failed")
			return errorResult(fmt.Sprintf("Subscription error: %v", err)), nil
		}

		return textResult(formatSubscriptionSummary(summary)), nil
	}
}

// parseDateArg parses an optional YYYY-MM-DD argument. Empty input is
// valid and yields the zero time (unbounded).
func parseDateArg(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, true
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
