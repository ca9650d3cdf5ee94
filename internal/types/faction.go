package types

import "fmt"

// Faction - категория сущности для фильтрации целей. Заменяет сравнение строковых тегов.
type Faction uint8

const (
	FactionNone Faction = iota
	FactionPlant
	FactionZombie
	FactionProjectile
	FactionCorpse // мёртвый зомби в состоянии рэгдолла, целью не является
)

var factionNames = map[Faction]string{
	FactionNone:       "none",
	FactionPlant:      "plant",
	FactionZombie:     "zombie",
	FactionProjectile: "projectile",
	FactionCorpse:     "corpse",
}

func (f Faction) String() string {
	if name, ok := factionNames[f]; ok {
		return name
	}
	return fmt.Sprintf("faction(%d)", uint8(f))
}

// ParseFaction maps a definition-file tag onto a Faction.
func ParseFaction(s string) (Faction, error) {
	for f, name := range factionNames {
		if name == s {
			return f, nil
		}
	}
	return FactionNone, fmt.Errorf("unknown faction %q", s)
}
