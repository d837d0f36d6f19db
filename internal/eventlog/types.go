// Package eventlog publishes the optional per-episode trace stream: five
// event kinds emitted as the Episode Engine drives one episode, so a
// connected caller can watch it live instead of only seeing the final
// EpisodeResult.
package eventlog

// Kind is one of the five event kinds the stream emits, in the order an
// episode produces them.
type Kind string

const (
	EpisodeStart Kind = "episode_start"
	Observation  Kind = "observation"
	Action       Kind = "action"
	Hint         Kind = "hint"
	EpisodeEnd   Kind = "episode_end"
)

// Event is one entry in the stream. EpisodeID is opaque and unique
// within a process run; TimestampMsRelative is milliseconds since the
// episode's EpisodeStart event.
type Event struct {
	EpisodeID           string `json:"episode_id"`
	Kind                Kind   `json:"kind"`
	TimestampMsRelative int64  `json:"timestamp_ms_relative"`
	Payload             any    `json:"payload,omitempty"`
}
