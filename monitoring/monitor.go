// Package monitoring turns a simulation run into a small web server so that
// a host can watch and control it while it executes.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"sync"
	"time"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/Facsimiler/facsimile/sim"
)

// A Controller is the part of a run that the monitor drives: the run
// controller of the simulation.
type Controller interface {
	Pause()
	Continue()
	Stop()
	CurrentTime() sim.VTimeInSec
	Horizon() sim.VTimeInSec
	State() string
	SnapIndex() int
	EventsDispatched() int64
}

// Monitor exposes a running simulation over HTTP: progress, pause and
// continue, process resources, CPU profiles, and model state inspection.
type Monitor struct {
	controller Controller
	model      any
	portNumber int

	progressBarsLock sync.Mutex
	progressBars     []*ProgressBar
}

// NewMonitor creates a new Monitor
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n",
			portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterController registers the run controller to be monitored.
func (m *Monitor) RegisterController(c Controller) {
	m.controller = c
}

// RegisterModel registers the model state for inspection over the web API.
// The monitor only reads it.
func (m *Monitor) RegisterModel(model any) {
	m.model = model
}

// CreateProgressBar creates a new progress bar.
func (m *Monitor) CreateProgressBar(name string, total uint64) *ProgressBar {
	bar := &ProgressBar{
		Name:  name,
		Total: total,
	}

	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	m.progressBars = append(m.progressBars, bar)

	return bar
}

// CompleteProgressBar removes a bar to be shown on the webpage.
func (m *Monitor) CompleteProgressBar(pb *ProgressBar) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	newBars := make([]*ProgressBar, 0, len(m.progressBars)-1)
	for _, b := range m.progressBars {
		if b != pb {
			newBars = append(newBars, b)
		}
	}

	m.progressBars = newBars
}

// StartServer starts the monitor as a web server with a custom port if
// wanted. It returns the address the server listens on.
func (m *Monitor) StartServer() string {
	r := mux.NewRouter()
	r.HandleFunc("/api/pause", m.pauseRun)
	r.HandleFunc("/api/continue", m.continueRun)
	r.HandleFunc("/api/stop", m.stopRun)
	r.HandleFunc("/api/now", m.now)
	r.HandleFunc("/api/state", m.runState)
	r.HandleFunc("/api/progress", m.listProgressBars)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)
	r.HandleFunc("/api/model", m.inspectModel)

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring simulation with %s\n", url)

	go func() {
		err = http.Serve(listener, r)
		dieOnErr(err)
	}()

	return url
}

// OpenDashboard opens the monitor URL in the local browser.
func (m *Monitor) OpenDashboard(url string) {
	err := browser.OpenURL(url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open browser: %s\n", err)
	}
}

func (m *Monitor) pauseRun(w http.ResponseWriter, _ *http.Request) {
	m.controller.Pause()
	_, err := w.Write(nil)
	dieOnErr(err)
}

func (m *Monitor) continueRun(w http.ResponseWriter, _ *http.Request) {
	m.controller.Continue()
	_, err := w.Write(nil)
	dieOnErr(err)
}

func (m *Monitor) stopRun(w http.ResponseWriter, _ *http.Request) {
	m.controller.Stop()
	_, err := w.Write(nil)
	dieOnErr(err)
}

func (m *Monitor) now(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprintf(w, "{\"now\":%.10f}", m.controller.CurrentTime())
}

type runStateRsp struct {
	State            string  `json:"state"`
	Now              float64 `json:"now"`
	Horizon          float64 `json:"horizon"`
	SnapIndex        int     `json:"snap_index"`
	EventsDispatched int64   `json:"events_dispatched"`
}

func (m *Monitor) runState(w http.ResponseWriter, _ *http.Request) {
	rsp := runStateRsp{
		State:            m.controller.State(),
		Now:              float64(m.controller.CurrentTime()),
		Horizon:          float64(m.controller.Horizon()),
		SnapIndex:        m.controller.SnapIndex(),
		EventsDispatched: m.controller.EventsDispatched(),
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) listProgressBars(w http.ResponseWriter, _ *http.Request) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	bytes, err := json.Marshal(m.progressBars)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	proc, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := proc.CPUPercent()
	dieOnErr(err)

	memorySize, err := proc.MemoryInfo()
	dieOnErr(err)

	rsp := resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	dieOnErr(err)

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	bytes, err := json.Marshal(prof)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) inspectModel(w http.ResponseWriter, _ *http.Request) {
	if m.model == nil {
		w.WriteHeader(404)
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(m.model)
	serializer.SetMaxDepth(1)

	err := serializer.Serialize(w)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
