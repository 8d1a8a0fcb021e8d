package souls

import "time"

// Kind identifies what was killed.
type Kind int

const (
	Mob Kind = iota
	Player
)

// Souls awarded per kind.
const (
	MobSouls    = 1
	PlayerSouls = 5
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == Mob || k == Player
}

// Souls returns the number of souls a kill of this kind is worth.
func (k Kind) Souls() int {
	switch k {
	case Mob:
		return MobSouls
	case Player:
		return PlayerSouls
	}
	return 0
}

func (k Kind) String() string {
	switch k {
	case Mob:
		return "mob"
	case Player:
		return "player"
	}
	return "unknown"
}

// KillEvent is one recorded kill.
type KillEvent struct {
	Kind        Kind
	Timestamp   time.Time
	SoulsGained int
}
