package keeper

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/cosmos/tokenfactory/x/tokenfactory/types"
)

var (
	commandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tokenfactory_contract_commands_total",
			Help: "Total number of dispatched tokenfactory commands by method and result",
		}, []string{"method", "result"})
	getDenomQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tokenfactory_contract_get_denom_queries_total",
			Help: "Total number of get_denom queries by result",
		}, []string{"result"})
)

func resultLabel(err error) string {
	if err != nil {
		return "rejected"
	}
	return "accepted"
}

func observeCommand(cmd types.Command, err error) {
	method := "unknown"
	if cmd != nil {
		method = cmd.Method()
	}
	commandsTotal.WithLabelValues(method, resultLabel(err)).Inc()
}
