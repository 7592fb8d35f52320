// Package monitoring exposes the server's prometheus metrics.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Monitor struct {
	onlinePlayers     prometheus.Gauge
	activeRooms       prometheus.Gauge
	commandsProcessed prometheus.Counter
	matchesFinished   prometheus.Counter
}

func NewMonitor(namespace string) *Monitor {
	m := &Monitor{
		onlinePlayers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "online_players",
			Help:      "Number of connected players",
		}),
		activeRooms: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_rooms",
			Help:      "Number of rooms currently held by the coordinator",
		}),
		commandsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_processed_total",
			Help:      "Total number of commands applied by the coordinator",
		}),
		matchesFinished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_finished_total",
			Help:      "Total number of matches that reached a terminal outcome",
		}),
	}

	prometheus.MustRegister(
		m.onlinePlayers,
		m.activeRooms,
		m.commandsProcessed,
		m.matchesFinished,
	)

	return m
}

func (that *Monitor) IncOnlinePlayers() {
	that.onlinePlayers.Inc()
}

func (that *Monitor) DecOnlinePlayers() {
	that.onlinePlayers.Dec()
}

func (that *Monitor) SetActiveRooms(count int) {
	that.activeRooms.Set(float64(count))
}

func (that *Monitor) IncCommandsProcessed() {
	that.commandsProcessed.Inc()
}

func (that *Monitor) IncMatchesFinished() {
	that.matchesFinished.Inc()
}
