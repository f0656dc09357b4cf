package service

import (
	"time"

	"techblog/config"
	"techblog/database"
	"techblog/database/model"
	"techblog/logger"
	"techblog/util/common"

	"github.com/goccy/go-json"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"go.uber.org/atomic"
)

var requestCount atomic.Int64

// CountRequest increments the served-request counter. Called by the stats
// middleware on every request.
func CountRequest() {
	requestCount.Inc()
}

// Status reports host and application state for the admin status endpoint.
type Status struct {
	T   time.Time `json:"-"`
	Cpu float64   `json:"cpu"`
	Mem struct {
		Current uint64 `json:"current"`
		Total   uint64 `json:"total"`
	} `json:"mem"`
	Uptime   uint64 `json:"uptime"`
	Requests int64  `json:"requests"`
	Version  string `json:"version"`
	Counts   struct {
		Users    int64 `json:"users"`
		Posts    int64 `json:"posts"`
		Comments int64 `json:"comments"`
		Votes    int64 `json:"votes"`
	} `json:"counts"`
}

// dbExport is the shape of the admin JSON export. User marshaling excludes the
// password hash, so an export never leaks credentials.
type dbExport struct {
	Users    []model.User    `json:"users"`
	Posts    []model.Post    `json:"posts"`
	Comments []model.Comment `json:"comments"`
	Votes    []model.Vote    `json:"votes"`
}

// ServerService exposes operational state of the running instance.
type ServerService struct{}

// GetStatus collects host metrics and table counts.
func (s *ServerService) GetStatus() *Status {
	status := &Status{
		T:        time.Now(),
		Requests: requestCount.Load(),
		Version:  config.GetVersion(),
	}

	if percents, err := cpu.Percent(0, false); err != nil {
		logger.Warning("get cpu percent failed:", err)
	} else if len(percents) > 0 {
		status.Cpu = percents[0]
	}

	if memInfo, err := mem.VirtualMemory(); err != nil {
		logger.Warning("get virtual memory failed:", err)
	} else {
		status.Mem.Current = memInfo.Used
		status.Mem.Total = memInfo.Total
	}

	if upTime, err := host.Uptime(); err != nil {
		logger.Warning("get uptime failed:", err)
	} else {
		status.Uptime = upTime
	}

	db := database.GetDB()
	db.Model(&model.User{}).Count(&status.Counts.Users)
	db.Model(&model.Post{}).Count(&status.Counts.Posts)
	db.Model(&model.Comment{}).Count(&status.Counts.Comments)
	db.Model(&model.Vote{}).Count(&status.Counts.Votes)

	return status
}

// GetDBExport serializes all tables to JSON for backup purposes.
func (s *ServerService) GetDBExport() ([]byte, error) {
	db := database.GetDB()

	export := dbExport{}
	if err := db.Find(&export.Users).Error; err != nil {
		return nil, common.NewErrorf("export users failed: %v", err)
	}
	if err := db.Find(&export.Posts).Error; err != nil {
		return nil, common.NewErrorf("export posts failed: %v", err)
	}
	if err := db.Find(&export.Comments).Error; err != nil {
		return nil, common.NewErrorf("export comments failed: %v", err)
	}
	if err := db.Find(&export.Votes).Error; err != nil {
		return nil, common.NewErrorf("export votes failed: %v", err)
	}
	return json.Marshal(export)
}

// GetLogs returns recent buffered log entries.
func (s *ServerService) GetLogs(count int, level string) []string {
	return logger.GetLogs(count, level)
}
