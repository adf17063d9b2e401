package config

import (
	"flag"
	"fmt"
)

const HelpMessage = `
Ride lifecycle engine

Usage:
  ride [--mode=scenario|interactive] [--scenario=name[,name]] [--locale=en|ru] [--config-path=config.yaml]

Scenarios:
  normal-trip, cancel-before-confirm, cancel-after-arrival,
  confirm-from-idle, reselect-car, payment-retry

Environment (also readable from the YAML file and .env):
  APP_MODE, APP_LOCALE, LOG_LEVEL, SCENARIO_NAMES, SCENARIO_PARALLELISM,
  OBSERVABILITY_ADDR, OBSERVABILITY_SERVICE_NAME, OBSERVABILITY_SHUTDOWN_TIMEOUT,
  OBSERVABILITY_LINGER

Flags:
`

func PrintHelp() {
	fmt.Print(HelpMessage)
	flag.PrintDefaults()
}
