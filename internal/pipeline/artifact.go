package pipeline

import (
	"stagehand/internal/toolchain"
)

// Artifact is the immutable result of one stage over one source revision.
// Stale marks an artifact that survived a failed recompute and still shows
// an earlier revision.
type Artifact struct {
	Kind     toolchain.StageKind
	Items    []toolchain.StageItem
	Index    PositionIndex
	Revision uint64
	Stale    bool
}

func newArtifact(kind toolchain.StageKind, items []toolchain.StageItem, revision uint64) *Artifact {
	return &Artifact{
		Kind:     kind,
		Items:    items,
		Index:    BuildIndex(items),
		Revision: revision,
	}
}
