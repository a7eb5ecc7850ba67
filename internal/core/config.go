package core

// RuntimeConfig is handed to a game on every Reset. It carries the
// terminal size, the tick rate and the options chosen on the command line.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock

	ConfigPath string // Custom YAML config, empty for the default search order
	Preset     string // Difficulty preset name, empty keeps the config value
	Only       string // Spawn just this kind (name or entry edge), empty for all
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 ticks/s.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the externally visible status of a running game.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// EventKind classifies something notable that happened during a tick.
type EventKind int

const (
	EventSpawn EventKind = iota
	EventDespawn
	EventWrap
	EventCollect
	EventCrash
)

// String returns the lowercase name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSpawn:
		return "spawn"
	case EventDespawn:
		return "despawn"
	case EventWrap:
		return "wrap"
	case EventCollect:
		return "collect"
	case EventCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// Event describes one notable occurrence, e.g. a diamond being collected.
type Event struct {
	Kind   EventKind
	Entity string // Entity kind name
	X, Y   int    // Entity center in viewport pixels
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
