// Package spells holds the static spell catalog and the Book that resolves
// rune sequences and names to spells.
package spells

import "github.com/appengine-ltd/runecast/internal/runes"

// SpellID identifies a spell. The zero value is SpellNone.
type SpellID int

const (
	SpellNone SpellID = iota
	SpellCurse
	SpellFreezeTime
	SpellLowerArmor
	SpellSlowDown
	SpellHarm
	SpellConfuse
	SpellMassParalyse
	SpellArmor
	SpellMagicSight
	SpellHeal
	SpellSpeed
	SpellBless
	SpellEnchantWeapon
	SpellMassIncinerate
	SpellActivatePortal
	SpellLevitate
	SpellParalyse
	SpellCurePoison
	SpellDouse
	SpellDispellIllusion
	SpellNegateMagic
	SpellDispellField
	SpellDisarmTrap
	SpellInvisibility
	SpellFlyingEye
	SpellRepelUndead
	SpellDetectTrap
	SpellControlTarget
	SpellManaDrain
	SpellIncinerate
	SpellExplosion
	SpellCreateField
	SpellRaiseDead
	SpellRuneOfGuarding
	SpellSummonCreature
	SpellCreateFood
	SpellLightningStrike
	SpellMassLightningStrike
	SpellIgnit
	SpellFireField
	SpellFireball
	SpellIceField
	SpellIceProjectile
	SpellPoisonProjectile
	SpellMagicMissile
	SpellFireProtection
	SpellColdProtection
	SpellLifeDrain
	SpellTelekinesis
	SpellFakeSummon
)

// MaxSymbols is the longest rune sequence a spell can have.
const MaxSymbols = 6

// Definition ties a spell to its name and the runes that invoke it. An empty
// Runes slice registers the spell by name only.
type Definition struct {
	ID    SpellID
	Name  string
	Level int
	Runes []runes.Rune
}

func (id SpellID) String() string {
	if id == SpellNone {
		return "none"
	}
	for _, def := range catalog {
		if def.ID == id {
			return def.Name
		}
	}
	return "invalid"
}

type rs = []runes.Rune

const (
	aam     = runes.RuneAam
	cetrius = runes.RuneCetrius
	comun   = runes.RuneComunicatum
	cosum   = runes.RuneCosum
	folgora = runes.RuneFolgora
	fridd   = runes.RuneFridd
	kaom    = runes.RuneKaom
	mega    = runes.RuneMega
	morte   = runes.RuneMorte
	movis   = runes.RuneMovis
	nhi     = runes.RuneNhi
	rhaa    = runes.RuneRhaa
	spacium = runes.RuneSpacium
	stregum = runes.RuneStregum
	taar    = runes.RuneTaar
	tempus  = runes.RuneTempus
	tera    = runes.RuneTera
	vista   = runes.RuneVista
	vitae   = runes.RuneVitae
	yok     = runes.RuneYok
)

// Level 0 means the level is not known.
var catalog = []Definition{
	{SpellCurse, "curse", 4, rs{rhaa, stregum, vitae}},
	{SpellFreezeTime, "freeze_time", 10, rs{rhaa, tempus}},
	{SpellLowerArmor, "lower_armor", 2, rs{rhaa, kaom}},
	{SpellSlowDown, "slowdown", 6, rs{rhaa, movis}},
	{SpellHarm, "harm", 2, rs{rhaa, vitae}},
	{SpellConfuse, "confuse", 7, rs{rhaa, vista}},
	{SpellMassParalyse, "mass_paralyse", 9, rs{mega, nhi, movis}},
	{SpellArmor, "armor", 2, rs{mega, kaom}},
	{SpellMagicSight, "magic_sight", 1, rs{mega, vista}},
	{SpellHeal, "heal", 2, rs{mega, vitae}},
	{SpellSpeed, "speed", 3, rs{mega, movis}},
	{SpellBless, "bless", 4, rs{mega, stregum, vitae}},
	{SpellEnchantWeapon, "enchant_weapon", 8, rs{mega, stregum, cosum}},
	{SpellMassIncinerate, "mass_incinerate", 10, rs{mega, aam, mega, yok}},
	{SpellActivatePortal, "activate_portal", 0, rs{mega, spacium}},
	{SpellLevitate, "levitate", 5, rs{mega, spacium, movis}},
	{SpellParalyse, "paralyse", 6, rs{nhi, movis}},
	{SpellCurePoison, "cure_poison", 5, rs{nhi, cetrius}},
	{SpellDouse, "douse", 1, rs{nhi, yok}},
	{SpellDispellIllusion, "dispell_illusion", 3, rs{nhi, stregum, vista}},
	{SpellNegateMagic, "negate_magic", 9, rs{nhi, stregum, spacium}},
	{SpellDispellField, "dispell_field", 4, rs{nhi, spacium}},
	{SpellDisarmTrap, "disarm_trap", 6, rs{nhi, morte, cosum}},
	{SpellInvisibility, "invisibility", 0, rs{nhi, vista}},
	{SpellFlyingEye, "flying_eye", 7, rs{vista, movis}},
	{SpellRepelUndead, "repel_undead", 5, rs{morte, kaom}},
	{SpellDetectTrap, "detect_trap", 2, rs{morte, cosum, vista}},
	{SpellControlTarget, "control", 10, rs{movis, comun}},
	{SpellManaDrain, "mana_drain", 8, rs{stregum, movis}},
	{SpellIncinerate, "incinerate", 9, rs{aam, mega, yok}},
	{SpellExplosion, "explosion", 8, rs{aam, mega, morte}},
	{SpellCreateField, "create_field", 6, rs{aam, kaom, spacium}},
	{SpellRaiseDead, "raise_dead", 6, rs{aam, morte, vitae}},
	{SpellRuneOfGuarding, "rune_of_guarding", 5, rs{aam, morte, cosum}},
	{SpellSummonCreature, "summon_creature", 9, rs{aam, vitae, tera}},
	{SpellCreateFood, "create_food", 3, rs{aam, vitae, cosum}},
	{SpellLightningStrike, "lightning_strike", 7, rs{aam, folgora, taar}},
	{SpellMassLightningStrike, "mass_lightning_strike", 10, rs{aam, folgora, spacium}},
	{SpellIgnit, "ignit", 1, rs{aam, yok}},
	{SpellFireField, "fire_field", 7, rs{aam, yok, spacium}},
	{SpellFireball, "fireball", 3, rs{aam, yok, taar}},
	{SpellIceField, "ice_field", 7, rs{aam, fridd, spacium}},
	{SpellIceProjectile, "ice_projectile", 3, rs{aam, fridd, taar}},
	{SpellPoisonProjectile, "poison_projectile", 5, rs{aam, cetrius, taar}},
	{SpellMagicMissile, "magic_missile", 1, rs{aam, taar}},
	{SpellFireProtection, "fire_protection", 4, rs{yok, kaom}},
	{SpellColdProtection, "cold_protection", 4, rs{fridd, kaom}},
	{SpellLifeDrain, "life_drain", 8, rs{vitae, movis}},
	{SpellTelekinesis, "telekinesis", 4, rs{spacium, comun}},
	{SpellFakeSummon, "fake_summon", 0, nil},
}

// Catalog returns a copy of the built-in spell definitions.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	for i, def := range catalog {
		def.Runes = append(rs(nil), def.Runes...)
		out[i] = def
	}
	return out
}
