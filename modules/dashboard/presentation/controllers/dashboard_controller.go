package controllers

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/dashboard/services"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/application"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/notify"
)

const (
	Key        = "/dashboard"
	LoadFailed = "Failed to load dashboard"
)

type DashboardController struct {
	dashboardService *services.DashboardService
	notifier         notify.Notifier
	logger           *logrus.Logger

	mu         sync.RWMutex
	stats      services.Stats
	loaded     bool
	generation uint64
	closed     bool
}

func NewDashboardController(app application.Application) *DashboardController {
	return &DashboardController{
		dashboardService: app.Service(services.DashboardService{}).(*services.DashboardService),
		notifier:         app.Notifier(),
		logger:           app.Logger(),
	}
}

func (c *DashboardController) Key() string {
	return Key
}

// Load refreshes the totals. On failure the previous totals are kept. Only
// the latest call may store its result.
func (c *DashboardController) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.generation++
	gen := c.generation
	c.mu.Unlock()

	st, err := c.dashboardService.Stats(ctx)

	c.mu.Lock()
	if c.closed || gen != c.generation {
		c.mu.Unlock()
		c.logger.WithField("generation", gen).Debug("dropping stale dashboard response")
		return err
	}
	if err == nil {
		c.stats = st
		c.loaded = true
	}
	c.mu.Unlock()

	if err != nil {
		c.logger.WithError(err).Error("dashboard load failed")
		c.notifier.Error(LoadFailed)
		return err
	}
	return nil
}

// Close detaches the controller from its screen; later loads are no-ops.
func (c *DashboardController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// Stats returns the last loaded totals and whether any load has succeeded.
func (c *DashboardController) Stats() (services.Stats, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats, c.loaded
}
