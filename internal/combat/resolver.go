// Package combat resolves melee attacks and death.
package combat

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/treasureshark/internal/entity"
	"github.com/samdwyer/treasureshark/internal/telemetry"
)

// Narrator receives human-readable combat events.
type Narrator interface {
	Narrate(text string)
}

// Outcome describes what a single attack did.
type Outcome struct {
	Damage     int  // Hit points removed; 0 when defense absorbed the blow
	Killed     bool // The defender died from this attack
	PlayerDied bool // The defender was the player
}

// Resolver applies attacks between entities. It owns death handling, which
// needs the entity list to move remains under the living.
type Resolver struct {
	entities *entity.List
	narrator Narrator
}

// NewResolver creates a resolver for the given entities.
func NewResolver(entities *entity.List, narrator Narrator) *Resolver {
	return &Resolver{
		entities: entities,
		narrator: narrator,
	}
}

// Damage returns how much an attack would deal. Defense can fully absorb a
// weak attack; there is no minimum damage.
func Damage(attacker, defender *entity.Fighter) int {
	damage := attacker.Power - defender.Defense
	if damage < 0 {
		return 0
	}
	return damage
}

// Attack resolves a melee attack. Attacks from or against an entity without a
// fighter do nothing.
func (r *Resolver) Attack(ctx context.Context, attacker, defender *entity.Entity) Outcome {
	if attacker.Fighter == nil || defender.Fighter == nil {
		return Outcome{}
	}

	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.attack")
	defer span.End()

	var out Outcome
	damage := Damage(attacker.Fighter, defender.Fighter)
	if damage > 0 {
		r.narrator.Narrate(fmt.Sprintf("%s attacks %s for %d hit points.",
			capitalize(attacker.Name), defender.Name, damage))
		out.Damage = damage
		if defender.Fighter.TakeDamage(damage) {
			out.Killed = true
			out.PlayerDied = r.die(defender)
		}
	} else {
		r.narrator.Narrate(fmt.Sprintf("%s attacks %s, to no effect.",
			capitalize(attacker.Name), defender.Name))
	}

	span.SetAttributes(
		attribute.String("attacker", attacker.Name),
		attribute.String("defender", defender.Name),
		attribute.Int("damage", out.Damage),
		attribute.Bool("killed", out.Killed),
	)
	return out
}

// die applies the defender's death policy and reports whether it was the player.
func (r *Resolver) die(e *entity.Entity) bool {
	switch e.Fighter.Death {
	case entity.DeathPlayer:
		r.narrator.Narrate("You died!")
		e.Glyph = entity.CorpseGlyph
		e.Color = entity.CorpseColor
		e.Fighter.HP = 0
		return true
	default:
		r.narrator.Narrate(fmt.Sprintf("%s is dead!", capitalize(e.Name)))
		e.Glyph = entity.CorpseGlyph
		e.Color = entity.CorpseColor
		e.BlocksMovement = false
		e.Fighter = nil
		e.AI = nil
		e.Name = "remains of " + e.Name
		r.entities.SendToBack(e)
		return false
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
