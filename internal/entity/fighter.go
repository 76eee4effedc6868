package entity

// DeathPolicy selects what happens when a fighter's hit points run out.
type DeathPolicy int

const (
	// DeathMonster turns the entity into inert remains.
	DeathMonster DeathPolicy = iota
	// DeathPlayer ends the game.
	DeathPlayer
)

// String returns a human-readable policy name.
func (p DeathPolicy) String() string {
	switch p {
	case DeathMonster:
		return "monster"
	case DeathPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// Fighter is the combat capability of an entity.
type Fighter struct {
	MaxHP   int
	HP      int
	Defense int
	Power   int
	Death   DeathPolicy
}

// NewFighter creates a fighter at full health.
func NewFighter(hp, defense, power int, death DeathPolicy) *Fighter {
	return &Fighter{
		MaxHP:   hp,
		HP:      hp,
		Defense: defense,
		Power:   power,
		Death:   death,
	}
}

// TakeDamage subtracts hit points. It returns true only when this hit takes
// the fighter from alive to dead, so death handling runs once.
func (f *Fighter) TakeDamage(amount int) bool {
	if amount <= 0 || f.HP <= 0 {
		return false
	}
	f.HP -= amount
	return f.HP <= 0
}
