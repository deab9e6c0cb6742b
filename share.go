package snapkit

import "context"

// ShareOutcome is the result of handing an artifact to a share sink.
type ShareOutcome int

const (
	// ShareShared means the sink accepted and delivered the artifact.
	ShareShared ShareOutcome = iota
	// ShareCancelled means the user dismissed the sink's chooser.
	ShareCancelled
	// ShareFailed means the sink errored while delivering.
	ShareFailed
	// ShareNotSupported means no sink could handle the artifact.
	ShareNotSupported
)

// String returns the outcome name.
func (o ShareOutcome) String() string {
	switch o {
	case ShareShared:
		return "shared"
	case ShareCancelled:
		return "cancelled"
	case ShareFailed:
		return "failed"
	case ShareNotSupported:
		return "not supported"
	default:
		return "unknown"
	}
}

// Sink is an external destination for composed artifacts, such as a
// platform share sheet or an upload endpoint. Implementations live in
// the host application; the core only defines the contract.
type Sink interface {
	// CanShare reports whether the sink can accept this artifact.
	CanShare(a *Artifact) bool

	// Share delivers the artifact under the given title. Cancellation by
	// the user is an outcome, not an error.
	Share(ctx context.Context, a *Artifact, title string) (ShareOutcome, error)
}

// ShareArtifact routes an artifact to a sink, mapping the no-sink and
// incapable-sink cases to ShareNotSupported. The artifact remains valid
// either way; callers typically fall back to a plain download.
func ShareArtifact(ctx context.Context, sink Sink, a *Artifact, title string) (ShareOutcome, error) {
	if sink == nil || !sink.CanShare(a) {
		return ShareNotSupported, ErrSinkUnavailable
	}
	return sink.Share(ctx, a, title)
}
