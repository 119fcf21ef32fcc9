package server

import (
	"runtime"
	"time"
)

// Metrics is a snapshot of the running process for the UI's system monitor
type Metrics struct {
	UptimeSeconds    float64 `json:"uptimeSeconds"`
	Goroutines       int     `json:"goroutines"`
	HeapAllocBytes   uint64  `json:"heapAllocBytes"`
	SysBytes         uint64  `json:"sysBytes"`
	NumGC            uint32  `json:"numGC"`
	CommandsExecuted uint64  `json:"commandsExecuted"`
	Sessions         int     `json:"sessions"`
}

// Metrics collects a fresh snapshot
func (s *Server) Metrics() Metrics {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return Metrics{
		UptimeSeconds:    time.Since(s.started).Seconds(),
		Goroutines:       runtime.NumGoroutine(),
		HeapAllocBytes:   mem.HeapAlloc,
		SysBytes:         mem.Sys,
		NumGC:            mem.NumGC,
		CommandsExecuted: s.dispatcher.Executed(),
		Sessions:         s.sessions.Size(),
	}
}
