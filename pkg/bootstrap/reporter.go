package bootstrap

import (
	"github.com/Goden-Gun/fault-lib/pkg/config"
	"github.com/Goden-Gun/fault-lib/pkg/reporter"
)

// InitReporter initializes the fault-event reporter for a service. Returns
// (nil, nil) when reporting is disabled so callers can skip wiring.
func InitReporter(cfg config.ReporterConfig, serviceName string) (*reporter.Reporter, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	producer, err := reporter.NewProducer(cfg)
	if err != nil {
		return nil, err
	}
	return reporter.New(producer, serviceName), nil
}
