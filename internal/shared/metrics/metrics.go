package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	editsAppliedTotal  atomic.Uint64
	editsRejectedTotal atomic.Uint64
	exportsTotal       atomic.Uint64
	exportsFailedTotal atomic.Uint64
	snapshotsSaved     atomic.Uint64

	rendersByTemplate = newLabeledCounter()

	renderDuration = newHistogram([]float64{1, 2, 5, 10, 25, 50, 100, 250, 500})
)

// IncEditApplied counts an edit that reached the mutation layer.
func IncEditApplied() {
	editsAppliedTotal.Add(1)
}

// IncEditRejected counts an edit refused at the boundary.
func IncEditRejected() {
	editsRejectedTotal.Add(1)
}

// IncExport counts a finished export.
func IncExport() {
	exportsTotal.Add(1)
}

// IncExportFailed counts an export the engine could not produce.
func IncExportFailed() {
	exportsFailedTotal.Add(1)
}

// IncSnapshotSaved counts a legacy snapshot write.
func IncSnapshotSaved() {
	snapshotsSaved.Add(1)
}

// ObserveRender records one render of template taking d.
func ObserveRender(template string, d time.Duration) {
	rendersByTemplate.Inc(template)
	ms := float64(d) / float64(time.Millisecond)
	if ms < 0 {
		ms = 0
	}
	renderDuration.Observe(ms)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "resume_edits_applied_total", "Edits applied to live documents", editsAppliedTotal.Load())
	writeCounter(&buf, "resume_edits_rejected_total", "Edits rejected as invalid", editsRejectedTotal.Load())
	writeCounter(&buf, "resume_exports_total", "Exports produced", exportsTotal.Load())
	writeCounter(&buf, "resume_exports_failed_total", "Exports that failed", exportsFailedTotal.Load())
	writeCounter(&buf, "resume_snapshots_saved_total", "Legacy snapshots saved", snapshotsSaved.Load())
	writeLabeledCounter(&buf, "resume_renders_total", "Renders by template", "template", rendersByTemplate.Snapshot())
	writeHistogram(&buf, "resume_render_duration_ms", "Render duration in milliseconds", renderDuration.Snapshot())
	return buf.String()
}

type labeledCounter struct {
	mu     sync.Mutex
	values map[string]uint64
}

func newLabeledCounter() *labeledCounter {
	return &labeledCounter{values: map[string]uint64{}}
}

func (l *labeledCounter) Inc(label string) {
	l.mu.Lock()
	l.values[label]++
	l.mu.Unlock()
}

func (l *labeledCounter) Snapshot() map[string]uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]uint64, len(l.values))
	for k, v := range l.values {
		out[k] = v
	}
	return out
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

// Observe files value under the first bucket that holds it; cumulative counts
// are computed when writing.
func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			return
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeLabeledCounter(buf *bytes.Buffer, name, help, label string, values map[string]uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(buf, "%s{%s=%q} %d\n", name, label, k, values[k])
	}
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
