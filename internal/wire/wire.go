// Package wire provides dependency injection for the geobridge application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"os"
	"sync"

	"github.com/example/geobridge/internal/adapters/arcgis"
	cliadapter "github.com/example/geobridge/internal/adapters/cli"
	"github.com/example/geobridge/internal/adapters/filesystem"
	"github.com/example/geobridge/internal/adapters/sqlite"
	"github.com/example/geobridge/internal/app"
	"github.com/example/geobridge/internal/config"
	"github.com/example/geobridge/internal/db"
	"github.com/example/geobridge/internal/ports/primary"
	"github.com/example/geobridge/internal/ports/secondary"
)

var (
	convertService   primary.ConvertService
	stockFlowService primary.StockFlowService
	causalService    primary.CausalService
	networkService   primary.NetworkService
	syncService      primary.SyncService
	historyService   primary.HistoryService
	pipelineService  primary.PipelineService
	cfg              *config.Config
	once             sync.Once
)

// ConvertService returns the singleton ConvertService instance.
func ConvertService() primary.ConvertService {
	once.Do(initServices)
	return convertService
}

// StockFlowService returns the singleton StockFlowService instance.
func StockFlowService() primary.StockFlowService {
	once.Do(initServices)
	return stockFlowService
}

// CausalService returns the singleton CausalService instance.
func CausalService() primary.CausalService {
	once.Do(initServices)
	return causalService
}

// NetworkService returns the singleton NetworkService instance.
func NetworkService() primary.NetworkService {
	once.Do(initServices)
	return networkService
}

// SyncService returns the singleton SyncService instance.
func SyncService() primary.SyncService {
	once.Do(initServices)
	return syncService
}

// HistoryService returns the singleton HistoryService instance.
func HistoryService() primary.HistoryService {
	once.Do(initServices)
	return historyService
}

// PipelineService returns the singleton PipelineService instance.
func PipelineService() primary.PipelineService {
	once.Do(initServices)
	return pipelineService
}

// Config returns the effective configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	loaded, err := config.LoadConfig(".")
	if err != nil {
		loaded = config.Default()
	}
	cfg = loaded

	// Run history is best-effort: when the database cannot be opened the
	// services run without a ledger rather than aborting the pipeline.
	var runRepo secondary.RunRepository
	if database, err := db.GetDB(); err == nil {
		runRepo = sqlite.NewRunRepository(database)
	}

	store := filesystem.NewFeatureStore()
	graphExporter := filesystem.NewGraphExporter()
	causalExporter := filesystem.NewCausalExporter()
	remote := arcgis.NewClient(cfg.ServiceURL, cfg.ServiceToken)

	convertService = app.NewConvertService(store, runRepo)
	stockFlowService = app.NewStockFlowService(store, store, runRepo)
	causalService = app.NewCausalService(store, store, causalExporter, runRepo)
	networkService = app.NewNetworkService(store, store, graphExporter, runRepo)
	syncService = app.NewSyncService(store, remote, runRepo)
	historyService = app.NewHistoryService(runRepo)
	pipelineService = app.NewPipelineService(convertService, stockFlowService, causalService, networkService)
}

// SimulateAdapter returns a new SimulateAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func SimulateAdapter() *cliadapter.SimulateAdapter {
	return SimulateAdapterWithOutput(os.Stdout)
}

// SimulateAdapterWithOutput returns a new SimulateAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func SimulateAdapterWithOutput(out io.Writer) *cliadapter.SimulateAdapter {
	once.Do(initServices)
	return cliadapter.NewSimulateAdapter(stockFlowService, out)
}

// NetworkAdapter returns a new NetworkAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func NetworkAdapter() *cliadapter.NetworkAdapter {
	return NetworkAdapterWithOutput(os.Stdout)
}

// NetworkAdapterWithOutput returns a new NetworkAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func NetworkAdapterWithOutput(out io.Writer) *cliadapter.NetworkAdapter {
	once.Do(initServices)
	return cliadapter.NewNetworkAdapter(networkService, out)
}
