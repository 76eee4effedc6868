package entity

// Behavior identifies an AI variant.
type Behavior int

const (
	// BehaviorNone never acts.
	BehaviorNone Behavior = iota
	// BehaviorBasicChase walks toward the player on sight and attacks when adjacent.
	BehaviorBasicChase
)

// String returns a human-readable behavior name.
func (b Behavior) String() string {
	switch b {
	case BehaviorNone:
		return "none"
	case BehaviorBasicChase:
		return "basic_chase"
	default:
		return "unknown"
	}
}

// AI is the behavior capability of an entity.
type AI struct {
	Behavior Behavior
	Alerted  bool // Set once the monster has first seen the player
}
