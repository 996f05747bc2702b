package profiler

import (
	"log"
	"runtime"
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
)

// Profiler tracks frame rate, memory statistics and the camera pose.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	camera camera.OrbitCamera
	now    func() time.Time
	logf   func(format string, args ...any)
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often stats are logged. Values <= 0 keep the default.
//
// Parameters:
//   - d: the logging interval
//
// Returns:
//   - ProfilerOption: option function to apply
func WithInterval(d time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// WithCamera adds the camera pose to every stats line.
//
// Parameters:
//   - cam: the camera to report
//
// Returns:
//   - ProfilerOption: option function to apply
func WithCamera(cam camera.OrbitCamera) ProfilerOption {
	return func(p *Profiler) {
		p.camera = cam
	}
}

// WithClock replaces time.Now as the profiler's time source.
//
// Parameters:
//   - now: function returning the current time
//
// Returns:
//   - ProfilerOption: option function to apply
func WithClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		p.now = now
	}
}

// WithLogf replaces log.Printf as the output sink.
//
// Parameters:
//   - logf: printf-style function receiving each stats line
//
// Returns:
//   - ProfilerOption: option function to apply
func WithLogf(logf func(format string, args ...any)) ProfilerOption {
	return func(p *Profiler) {
		p.logf = logf
	}
}

// NewProfiler creates a new Profiler. Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		now:            time.Now,
		logf:           log.Printf,
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()
	gcCount := p.memStats.NumGC

	p.logf("[Profiler] FPS: %.2f | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d",
		fps, allocMB, allocRateMB, gcCount-p.lastGCCount)
	if p.camera != nil {
		eye := p.camera.Eye()
		p.logf("[Profiler] Camera: azimuth %.2f | elevation %.2f | distance %.2f | fovy %.2f | eye (%.2f, %.2f, %.2f)",
			p.camera.Azimuth(), p.camera.Elevation(), p.camera.Distance(), p.camera.Fovy(), eye[0], eye[1], eye[2])
	}

	p.frameCount = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
