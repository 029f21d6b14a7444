package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/studyshare/campus-portal/internal/api/metrics"
	"github.com/studyshare/campus-portal/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// DownloadRecorder is the single owner of download-count mutations.
type DownloadRecorder interface {
	RecordDownload(ctx context.Context, fileID string) (int64, error)
}

// Dispatcher routes download commands to a fixed set of workers using
// consistent hashing on the file id, guaranteeing per-file ordering of
// counter increments. Presentation code never mutates a record directly; it
// enqueues a command here.
type Dispatcher struct {
	workers  []chan ports.DownloadCommand
	recorder DownloadRecorder
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, recorder DownloadRecorder, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan ports.DownloadCommand, numWorkers),
		recorder: recorder,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.DownloadCommand, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a command to the worker responsible for its file id.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(cmd ports.DownloadCommand) {
	i := d.shardIndex(cmd.FileID)
	d.workers[i] <- cmd
	metrics.DownloadQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps a file id deterministically to a worker index.
func (d *Dispatcher) shardIndex(fileID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(fileID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.DownloadCommand) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case cmd, ok := <-ch:
			if !ok {
				return
			}
			metrics.DownloadQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
			if _, err := d.recorder.RecordDownload(ctx, cmd.FileID); err != nil {
				d.log.Error().Err(err).
					Str("file_id", cmd.FileID).
					Int("worker_id", id).
					Msg("download command failed")
				continue
			}
			metrics.DownloadsRecordedTotal.Inc()
		}
	}
}
