/*
 * Radon
 *
 * Copyright 2018 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package coordinator

import (
	"os"
	"sync"

	"github.com/guojianwei001/h-store/catalog"
	"github.com/guojianwei001/h-store/config"
	"github.com/guojianwei001/h-store/router"

	"github.com/pkg/errors"
	"github.com/xelabs/go-mysqlstack/xlog"
)

// Coordinator owns the live partition plan of the server.
type Coordinator struct {
	mu       sync.Mutex
	log      *xlog.Log
	conf     *config.Config
	confPath string
	catalog  *catalog.Catalog
	plan     *router.Plan
}

// NewCoordinator creates the new coordinator.
func NewCoordinator(log *xlog.Log, path string, conf *config.Config) *Coordinator {
	return &Coordinator{
		log:      log,
		conf:     conf,
		confPath: path,
	}
}

// Init loads the catalog and the plan document, then restores the active
// phase persisted in the meta dir.
func (c *Coordinator) Init() error {
	log := c.log
	source := c.conf.Source
	metaDir := c.conf.Server.MetaDir

	if err := os.MkdirAll(metaDir, 0744); err != nil {
		return errors.WithStack(err)
	}

	cat, err := catalog.Load(source.CatalogFile)
	if err != nil {
		return errors.WithMessagef(err, "coordinator.load.catalog[%s]", source.CatalogFile)
	}
	pconf, err := config.LoadPlanConfig(source.PlanFile)
	if err != nil {
		return errors.WithMessagef(err, "coordinator.load.plan[%s]", source.PlanFile)
	}
	plan, err := router.NewPlan(log, cat, pconf)
	if err != nil {
		return errors.WithMessagef(err, "coordinator.build.plan[%s]", source.PlanFile)
	}

	state, err := config.ReadPhaseState(metaDir)
	if err != nil {
		return err
	}
	if state != nil && state.Phase != plan.ActivePhase().Name() {
		if err := plan.SetActivePhase(state.Phase); err != nil {
			log.Warning("coordinator.restore.phase[%s].error:%v, stay.at.phase[%s]", state.Phase, err, plan.ActivePhase().Name())
		} else {
			log.Info("coordinator.restore.phase[%s].done", state.Phase)
		}
	}

	c.mu.Lock()
	c.catalog = cat
	c.plan = plan
	c.mu.Unlock()
	return nil
}

// Start used to start the coordinator.
func (c *Coordinator) Start() {
	log := c.log

	log.Info("coordinator.server.config[%+v]...", c.conf.Server)
	log.Info("coordinator.source.config[%+v]...", c.conf.Source)
	if err := c.Init(); err != nil {
		log.Panic("coordinator.init.panic:%+v", err)
	}
	log.Info("coordinator.start.at.phase[%s]...", c.Plan().ActivePhase().Name())
}

// Stop used to stop the coordinator.
func (c *Coordinator) Stop() {
	c.log.Info("coordinator.shutdown.complete...")
}

// Config returns the config.
func (c *Coordinator) Config() *config.Config {
	return c.conf
}

// Catalog returns the catalog.
func (c *Coordinator) Catalog() *catalog.Catalog {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalog
}

// Plan returns the plan.
func (c *Coordinator) Plan() *router.Plan {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.plan
}

// SetActivePhase switches the active phase and persists it into the meta
// dir, the switch is reverted if it can not be persisted.
func (c *Coordinator) SetActivePhase(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	log := c.log
	plan := c.plan
	metaDir := c.conf.Server.MetaDir
	old := plan.ActivePhase().Name()

	if err := plan.SetActivePhase(name); err != nil {
		return err
	}
	if err := config.WritePhaseState(metaDir, name); err != nil {
		log.Error("coordinator.persist.phase[%s].error:%+v", name, err)
		if rerr := plan.SetActivePhase(old); rerr != nil {
			log.Error("coordinator.revert.phase[%s].error:%+v", old, rerr)
		}
		return err
	}
	if err := config.UpdateVersion(metaDir); err != nil {
		log.Error("coordinator.update.version.error:%+v", err)
	}
	log.Info("coordinator.phase.switch.from[%s].to[%s].done", old, name)
	return nil
}

// Reconfiguration computes the move list to switch between the phases, an
// empty from is the active phase.
func (c *Coordinator) Reconfiguration(from, to string) (*router.Reconfiguration, error) {
	plan := c.Plan()
	if from == "" {
		from = plan.ActivePhase().Name()
	}
	return plan.Reconfiguration(from, to)
}

// MetaVersion returns the meta version, bumped by every persisted switch.
func (c *Coordinator) MetaVersion() int64 {
	return config.ReadVersion(c.conf.Server.MetaDir)
}

// SetLogLevel used to set the log level.
func (c *Coordinator) SetLogLevel(level string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conf.Log.Level = level
	c.log.SetLevel(level)
}

// FlushConfig used to write the config to the file.
func (c *Coordinator) FlushConfig() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	log := c.log
	log.Warning("coordinator.flush.config.to.file:%v", c.confPath)
	if err := config.WriteConfig(c.confPath, c.conf); err != nil {
		log.Error("coordinator.flush.config.to.file[%v].error:%v", c.confPath, err)
		return err
	}
	return nil
}
