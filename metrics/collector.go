package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Method    string
	StartTime time.Time
	Duration  time.Duration
	Depth     int // Deepest fully completed depth
	Nodes     int // Successor states forecast
	Cutoffs   int // Sibling moves skipped by pruning
	TimedOut  bool
}

type Collector interface {
	Start(method string)
	AddNode()
	AddCutoff(pruned int)
	CompleteDepth(depth int)
	TimedOut()
	Complete() SearchMetric
}

type collector struct {
	method    string
	startTime time.Time
	depth     atomic.Int32
	nodes     atomic.Int64
	cutoffs   atomic.Int64
	timedOut  atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search
func (m *collector) Start(method string) {
	m.method = method
	m.startTime = time.Now()
	m.depth.Store(0)
	m.nodes.Store(0)
	m.cutoffs.Store(0)
	m.timedOut.Store(false)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff(pruned int) {
	m.cutoffs.Add(int64(pruned))
}

func (m *collector) CompleteDepth(depth int) {
	m.depth.Store(int32(depth))
}

func (m *collector) TimedOut() {
	m.timedOut.Store(true)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Method:    m.method,
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Depth:     int(m.depth.Load()),
		Nodes:     int(m.nodes.Load()),
		Cutoffs:   int(m.cutoffs.Load()),
		TimedOut:  m.timedOut.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(method string)     {}
func (m *dummyCollector) AddNode()                {}
func (m *dummyCollector) AddCutoff(pruned int)    {}
func (m *dummyCollector) CompleteDepth(depth int) {}
func (m *dummyCollector) TimedOut()               {}
func (m *dummyCollector) Complete() SearchMetric  { return SearchMetric{} }
