package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"

	"consultation-lab/contract"
	"consultation-lab/observability"
)

// HeartbeatWorker periodically logs process health (CPU, RSS) together
// with the realtime-client counters and the channel state. It is the
// diagnostic pulse of a long-running console client.
type HeartbeatWorker struct {
	log      *slog.Logger
	channel  contract.RealtimeChannel
	stats    *observability.ConnectionStats
	interval time.Duration
}

func NewHeartbeatWorker(
	log *slog.Logger,
	channel contract.RealtimeChannel,
	stats *observability.ConnectionStats,
	interval time.Duration,
) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, channel: channel, stats: stats, interval: interval}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			rss, cpu, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			snapshot := w.stats.GetLatest()
			w.log.Info("Heartbeat",
				"state", w.channel.State().String(),
				"rss_mb", rss/1024/1024,
				"cpu_percent", cpu,
				"messages_received", snapshot.MessagesReceived,
				"messages_sent", snapshot.MessagesSent,
				"reconnects", snapshot.Reconnects,
				"group_errors", snapshot.GroupErrors,
			)
		}
	}
}

// selfStats retrieves memory and CPU usage of this process.
func selfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
