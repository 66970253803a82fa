package combat

// MinDamage is the floor applied to every hit so that no defense value can
// stall a duel.
const MinDamage = 1

// ResolveAttack applies one attack to defender and returns the resulting event.
//
// damage = max(attacker.Attack + ability.Power - defender.Defense, MinDamage)
//
// Only defender.HP is modified. The operation is total: large powers and
// negative defenses are accepted as is, and HP is allowed to go below zero.
func ResolveAttack(attacker Character, defender *Character, ability Ability) Event {
	raw := attacker.Stats.Attack + ability.Power
	damage := max(raw-defender.Stats.Defense, MinDamage)

	defender.HP -= damage

	return Event{
		Attacker:        attacker.Name,
		Defender:        defender.Name,
		Ability:         ability.Name,
		Damage:          damage,
		DefenderHPAfter: defender.HP,
	}
}
