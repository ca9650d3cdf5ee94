package component

// WanderStrategy selects how a zombie chooses destinations.
type WanderStrategy int

const (
	// StrategyWander periodically picks a random navigable point nearby.
	StrategyWander WanderStrategy = iota
	// StrategyGoal walks to the world's shared goal, assigned once at spawn.
	StrategyGoal
)

func (s WanderStrategy) String() string {
	if s == StrategyGoal {
		return "goal"
	}
	return "wander"
}

// Wander holds the destination timer of a zombie.
type Wander struct {
	Strategy WanderStrategy
	Timer    float64 // counts up from zero, reset on every destination request
	Radius   float64
	Interval float64 // request threshold for Timer
}
