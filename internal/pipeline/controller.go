// Package pipeline owns the per-stage artifacts and the recompute logic
// that keeps them consistent with the current source revision.
package pipeline

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"stagehand/internal/toolchain"
)

// AdapterCrash reports an unexpected adapter panic. The pipeline state is
// rolled back to the last good revision.
type AdapterCrash struct {
	Stage toolchain.StageKind
	Value any
}

func (e *AdapterCrash) Error() string {
	return fmt.Sprintf("%s: adapter crashed: %v", e.Stage.Title(), e.Value)
}

// Controller recomputes every available stage when the source changes and
// publishes the results as one batch. All methods run on the UI thread;
// only the stage fan-out inside SetSource is concurrent.
type Controller struct {
	adapter   toolchain.Adapter
	caps      toolchain.StageSet
	artifacts [toolchain.NumStages]*Artifact
	revision  uint64
	src       string
	onPublish func()
}

// NewController creates a controller with no artifacts yet; call SetSource
// to populate it.
func NewController(adapter toolchain.Adapter, caps toolchain.StageSet) *Controller {
	return &Controller{adapter: adapter, caps: caps}
}

// OnPublish registers a hook run after every fully successful SetSource,
// once the new artifacts are visible. The explorer uses it to drop the
// current highlight.
func (c *Controller) OnPublish(fn func()) {
	c.onPublish = fn
}

// Capabilities returns the active stage set.
func (c *Controller) Capabilities() toolchain.StageSet {
	return c.caps
}

// Source returns the current source text.
func (c *Controller) Source() string {
	return c.src
}

// Revision returns the latest published revision counter.
func (c *Controller) Revision() uint64 {
	return c.revision
}

// Artifact returns the artifact for the stage, if one has been computed.
func (c *Controller) Artifact(kind toolchain.StageKind) (*Artifact, bool) {
	if int(kind) >= toolchain.NumStages || c.artifacts[kind] == nil {
		return nil, false
	}
	return c.artifacts[kind], true
}

type stageResult struct {
	items []toolchain.StageItem
	err   error
	crash *AdapterCrash
}

// SetSource recompiles every available stage for text.
//
// On full success all artifacts are replaced in one batch under a new
// revision. When a stage fails, stages before it in pipeline order are
// still refreshed; the failing stage and everything after keep their
// previous artifacts, flagged stale. An adapter panic rolls the whole call
// back.
func (c *Controller) SetSource(text string) error {
	var results [toolchain.NumStages]stageResult

	var g errgroup.Group
	for _, kind := range toolchain.Stages {
		if !c.caps.Has(kind) {
			continue
		}
		kind := kind
		g.Go(func() error {
			defer func() {
				if v := recover(); v != nil {
					results[kind].crash = &AdapterCrash{Stage: kind, Value: v}
				}
			}()
			items, err := c.adapter.Run(text, kind)
			results[kind] = stageResult{items: items, err: err}
			return nil
		})
	}
	// the goroutines never return errors; crashes land in results
	_ = g.Wait()

	for _, kind := range toolchain.Stages {
		if crash := results[kind].crash; crash != nil {
			return crash
		}
	}

	failing := toolchain.StageKind(0)
	failed := false
	var failure error
	for _, kind := range toolchain.Stages {
		if c.caps.Has(kind) && results[kind].err != nil {
			failing, failed, failure = kind, true, results[kind].err
			break
		}
	}

	rev := c.revision + 1
	for _, kind := range toolchain.Stages {
		if !c.caps.Has(kind) {
			continue
		}
		if failed && kind >= failing {
			if prev := c.artifacts[kind]; prev != nil {
				prev.Stale = true
			}
			continue
		}
		c.artifacts[kind] = newArtifact(kind, results[kind].items, rev)
	}
	c.revision = rev
	c.src = text

	if failed {
		return failure
	}
	if c.onPublish != nil {
		c.onPublish()
	}
	return nil
}
