package web

import (
	"strings"

	"github.com/google/uuid"

	"mazeforge/internal/core"
	"mazeforge/internal/maze"
	"mazeforge/internal/segment"
)

// Envelope wraps every server to client message.
type Envelope struct {
	Sequence uint64 `json:"seq"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

// Message types sent to clients.
const (
	TypeSnapshot = "Snapshot"
	TypeError    = "Error"
)

// Intent is a client request on the stream. A nil Seed keeps the seed of
// the shared maze.
type Intent struct {
	Type   string `json:"type"`
	Seed   *int64 `json:"seed,omitempty"`
	Preset string `json:"preset,omitempty"`
}

// IntentRegenerate asks the server to build a new maze for every client.
const IntentRegenerate = "Regenerate"

// PointLite is a grid coordinate on the wire.
type PointLite struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// SegmentLite is a wall segment with its resolved texture variant.
type SegmentLite struct {
	X       int `json:"x"`
	Y       int `json:"y"`
	Length  int `json:"len"`
	Texture int `json:"tex"`
	Variant int `json:"variant"`
}

// Snapshot is a complete maze as sent to browsers. Cells holds one '0'
// (wall) or '1' (path) per cell in row-major order.
type Snapshot struct {
	ID       string        `json:"id"`
	Preset   string        `json:"preset"`
	Seed     int64         `json:"seed"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Cells    string        `json:"cells"`
	Start    PointLite     `json:"start"`
	End      PointLite     `json:"end"`
	Exit     *PointLite    `json:"exit,omitempty"`
	Segments []SegmentLite `json:"segments"`
	Stats    maze.Stats    `json:"stats"`
}

// ErrorPayload reports a failed request.
type ErrorPayload struct {
	Error string `json:"error"`
}

// textureVariants is how many looks the browser renderer has per bucket.
const textureVariants = 4

// SnapshotOf captures the current maze of l. l must have generated.
func SnapshotOf(l *maze.Level) Snapshot {
	g := l.Grid()
	res := l.Result()
	var cells strings.Builder
	cells.Grow(len(g.Cells()))
	for _, c := range g.Cells() {
		if core.Cell(c) == core.Path {
			cells.WriteByte('1')
		} else {
			cells.WriteByte('0')
		}
	}
	segs := l.Segments()
	lite := make([]SegmentLite, len(segs))
	for i, s := range segs {
		lite[i] = SegmentLite{
			X: s.StartX, Y: s.StartY, Length: s.Length, Texture: s.TextureIndex,
			Variant: segment.VariantFor(s, textureVariants),
		}
	}
	snap := Snapshot{
		ID:       uuid.NewString(),
		Preset:   l.Name(),
		Seed:     l.Seed(),
		Width:    g.W,
		Height:   g.H,
		Cells:    cells.String(),
		Start:    PointLite{X: res.Start.X, Y: res.Start.Y},
		End:      PointLite{X: res.End.X, Y: res.End.Y},
		Segments: lite,
		Stats:    res.Stats,
	}
	if door, ok := l.Exit(); ok {
		snap.Exit = &PointLite{X: door.X, Y: door.Y}
	}
	return snap
}
