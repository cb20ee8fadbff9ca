// Package app wires configuration, storage, clients, and services together
// and exposes the engine's operations as MCP tools for the chat agent.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/Pranav-1100/finagent/internal/clients/finnhub"
	"github.com/Pranav-1100/finagent/internal/common"
	"github.com/Pranav-1100/finagent/internal/interfaces"
	"github.com/Pranav-1100/finagent/internal/services/alert"
	"github.com/Pranav-1100/finagent/internal/services/analysis"
	"github.com/Pranav-1100/finagent/internal/services/portfolio"
	"github.com/Pranav-1100/finagent/internal/services/spending"
	"github.com/Pranav-1100/finagent/internal/storage"
)

// DefaultPortfolio is the portfolio name used when a tool call does not
// specify one. The chat flow is single-portfolio; named portfolios exist
// for the dashboard.
const DefaultPortfolio = "default"

// App holds all initialized services, clients, and the MCP server. It is
// the shared core used by cmd/finagent-server.
type App struct {
	Config           *common.Config
	Logger           *common.Logger
	Storage          interfaces.StorageManager
	QuoteGateway     interfaces.QuoteGateway
	PortfolioService interfaces.PortfolioService
	AnalysisService  interfaces.AnalysisService
	AlertService     interfaces.AlertService
	SpendingService  interfaces.SpendingService
	MCPServer        *server.MCPServer
	StartupTime      time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes all services, clients, storage, and the MCP server.
// configPath may be empty, in which case the default resolution logic is
// used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	binDir := getBinaryDir()

	// Load configuration - check provided path, FINAGENT_CONFIG, then
	// binary dir, then development fallback
	if configPath == "" {
		configPath = os.Getenv("FINAGENT_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "finagent.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/finagent.toml"
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Resolve relative storage path to binary directory
	if p := config.Storage.User.Path; p != "" && p != storage.MemoryPath && !filepath.IsAbs(p) {
		config.Storage.User.Path = filepath.Join(binDir, p)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	storageManager, err := storage.NewManager(logger, config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	var gateway interfaces.QuoteGateway
	if key := config.Clients.Finnhub.APIKey; key != "" {
		gateway = finnhub.NewClient(key,
			finnhub.WithBaseURL(config.Clients.Finnhub.BaseURL),
			finnhub.WithLogger(logger),
			finnhub.WithRateLimit(config.Clients.Finnhub.RateLimit),
			finnhub.WithTimeout(config.Clients.Finnhub.GetTimeout()),
		)
	} else {
		logger.Warn().Msg("Finnhub API key not configured - valuations will use average cost")
	}

	portfolioService := portfolio.NewService(storageManager, gateway, logger)
	analysisService := analysis.NewService(portfolioService, logger)
	alertService := alert.NewService(storageManager, gateway, logger)
	spendingService := spending.NewService(storageManager, logger)

	mcpServer := server.NewMCPServer(
		"finagent",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	a := &App{
		Config:           config,
		Logger:           logger,
		Storage:          storageManager,
		QuoteGateway:     gateway,
		PortfolioService: portfolioService,
		AnalysisService:  analysisService,
		AlertService:     alertService,
		SpendingService:  spendingService,
		MCPServer:        mcpServer,
		StartupTime:      startupStart,
	}

	a.registerTools()

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}

// Close releases all resources held by the App.
func (a *App) Close() {
	if a.Storage != nil {
		a.Storage.Close()
		a.Storage = nil
	}
}

// registerTools registers all MCP tools on the App's MCPServer.
func (a *App) registerTools() {
	s := a.MCPServer
	logger := a.Logger

	s.AddTool(createGetVersionTool(), handleGetVersion())
	s.AddTool(createGetPortfolioTool(), handleGetPortfolio(a.PortfolioService, logger))
	s.AddTool(createAddStockTool(), handleAddStock(a.PortfolioService, logger))
	s.AddTool(createRemoveStockTool(), handleRemoveStock(a.PortfolioService, logger))
	s.AddTool(createGetQuoteTool(), handleGetQuote(a.QuoteGateway, logger))
	s.AddTool(createAnalyzePortfolioTool(), handleAnalyzePortfolio(a.AnalysisService, logger))
	s.AddTool(createRebalancePortfolioTool(), handleRebalancePortfolio(a.AnalysisService, logger))
	s.AddTool(createCompareBenchmarkTool(), handleCompareBenchmark(a.AnalysisService, logger))
	s.AddTool(createSetAlertTool(), handleSetAlert(a.AlertService, logger))
	s.AddTool(createCheckAlertsTool(), handleCheckAlerts(a.AlertService, logger))
	s.AddTool(createRemoveAlertTool(), handleRemoveAlert(a.AlertService, logger))
	s.AddTool(createAddExpenseTool(), handleAddExpense(a.SpendingService, logger))
	s.AddTool(createExpenseSummaryTool(), handleExpenseSummary(a.SpendingService, logger))
	s.AddTool(createAddSubscriptionTool(), handleAddSubscription(a.SpendingService, logger))
	s.AddTool(createListSubscriptionsTool(), handleListSubscriptions(a.SpendingService, logger))
}
