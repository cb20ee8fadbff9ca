package app

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createGetVersionTool returns the get_version tool definition
func createGetVersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the finagent server version and status. Use this to verify connectivity."),
	)
}

// createGetPortfolioTool returns the get_portfolio tool definition
func createGetPortfolioTool() mcp.Tool {
	return mcp.NewTool("get_portfolio",
		mcp.WithDescription("Get the user's portfolio with current prices, cost basis, and profit/loss per holding plus portfolio totals."),
		mcp.WithString("portfolio",
			mcp.Description("Portfolio name (default: 'default')"),
		),
	)
}

// createAddStockTool returns the add_stock tool definition
func createAddStockTool() mcp.Tool {
	return mcp.NewTool("add_stock",
		mcp.WithDescription("Record a stock purchase. Repeat buys of the same symbol are kept as separate lots and averaged by quantity, never overwritten."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Ticker symbol (e.g., 'AAPL')"),
		),
		mcp.WithNumber("quantity",
			mcp.Required(),
			mcp.Description("Number of shares purchased (must be positive)"),
		),
		mcp.WithNumber("price",
			mcp.Required(),
			mcp.Description("Purchase price per share (must be positive)"),
		),
		mcp.WithString("portfolio",
			mcp.Description("Portfolio name (default: 'default')"),
		),
	)
}

// createRemoveStockTool returns the remove_stock tool definition
func createRemoveStockTool() mcp.Tool {
	return mcp.NewTool("remove_stock",
		mcp.WithDescription("Sell or remove shares of a stock. Shares are removed from the oldest purchase lots first (FIFO). Omit quantity to remove the entire position."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Ticker symbol to reduce"),
		),
		mcp.WithNumber("quantity",
			mcp.Description("Number of shares to remove (default: all)"),
		),
		mcp.WithString("portfolio",
			mcp.Description("Portfolio name (default: 'default')"),
		),
	)
}

// createGetQuoteTool returns the get_quote tool definition
func createGetQuoteTool() mcp.Tool {
	return mcp.NewTool("get_quote",
		mcp.WithDescription("Get the current market price for a ticker symbol."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Ticker symbol (e.g., 'AAPL')"),
		),
	)
}

// createAnalyzePortfolioTool returns the analyze_portfolio tool definition
func createAnalyzePortfolioTool() mcp.Tool {
	return mcp.NewTool("analyze_portfolio",
		mcp.WithDescription("Analyze portfolio diversification and concentration risk. Returns scores, an overall rating, strengths, weaknesses, and suggested actions."),
		mcp.WithString("portfolio",
			mcp.Description("Portfolio name (default: 'default')"),
		),
	)
}

// createRebalancePortfolioTool returns the rebalance_portfolio tool definition
func createRebalancePortfolioTool() mcp.Tool {
	return mcp.NewTool("rebalance_portfolio",
		mcp.WithDescription("Propose buy/sell share counts to move the portfolio toward an equal-weight allocation. Holdings within 10 percentage points of target are left alone."),
		mcp.WithString("portfolio",
			mcp.Description("Portfolio name (default: 'default')"),
		),
	)
}

// createCompareBenchmarkTool returns the compare_benchmark tool definition
func createCompareBenchmarkTool() mcp.Tool {
	return mcp.NewTool("compare_benchmark",
		mcp.WithDescription("Compare portfolio return against the S&P 500 over a period."),
		mcp.WithString("period",
			mcp.Description("Comparison period: 1M, 3M, 6M, 1Y, or YTD (default: 1Y)"),
		),
		mcp.WithString("portfolio",
			mcp.Description("Portfolio name (default: 'default')"),
		),
	)
}

// createSetAlertTool returns the set_alert tool definition
func createSetAlertTool() mcp.Tool {
	return mcp.NewTool("set_alert",
		mcp.WithDescription("Set a price alert for a stock. The alert fires when the price moves strictly past the target."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Ticker symbol to watch"),
		),
		mcp.WithString("condition",
			mcp.Required(),
			mcp.Description("Trigger direction: 'above' or 'below'"),
		),
		mcp.WithNumber("target_price",
			mcp.Required(),
			mcp.Description("Threshold price (must be positive)"),
		),
	)
}

// createCheckAlertsTool returns the check_alerts tool definition
func createCheckAlertsTool() mcp.Tool {
	return mcp.NewTool("check_alerts",
		mcp.WithDescription("Check all price alerts against current market prices and list the ones that have triggered."),
	)
}

// createRemoveAlertTool returns the remove_alert tool definition
func createRemoveAlertTool() mcp.Tool {
	return mcp.NewTool("remove_alert",
		mcp.WithDescription("Remove a price alert by its ID (use check_alerts or get_portfolio to find IDs)."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Alert ID to remove"),
		),
	)
}

// createAddExpenseTool returns the add_expense tool definition
func createAddExpenseTool() mcp.Tool {
	return mcp.NewTool("add_expense",
		mcp.WithDescription("Record an expense with an amount and category."),
		mcp.WithNumber("amount",
			mcp.Required(),
			mcp.Description("Amount spent (must be positive)"),
		),
		mcp.WithString("category",
			mcp.Description("Expense category (e.g., 'food', 'rent')"),
		),
		mcp.WithString("note",
			mcp.Description("Optional note"),
		),
	)
}

// createExpenseSummaryTool returns the expense_summary tool definition
func createExpenseSummaryTool() mcp.Tool {
	return mcp.NewTool("expense_summary",
		mcp.WithDescription("Summarize expenses by category, optionally within a date range."),
		mcp.WithString("from",
			mcp.Description("Start date, YYYY-MM-DD (inclusive)"),
		),
		mcp.WithString("to",
			mcp.Description("End date, YYYY-MM-DD (inclusive)"),
		),
	)
}

// createAddSubscriptionTool returns the add_subscription tool definition
func createAddSubscriptionTool() mcp.Tool {
	return mcp.NewTool("add_subscription",
		mcp.WithDescription("Track a recurring monthly subscription."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Subscription name (e.g., 'Netflix')"),
		),
		mcp.WithNumber("monthly_cost",
			mcp.Required(),
			mcp.Description("Monthly cost (must be positive)"),
		),
	)
}

// createListSubscriptionsTool returns the list_subscriptions tool definition
func createListSubscriptionsTool() mcp.Tool {
	return mcp.NewTool("list_subscriptions",
		mcp.WithDescription("List tracked subscriptions with monthly and annual totals."),
	)
}
