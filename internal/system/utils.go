// internal/system/utils.go
package system

import (
	"go-road-defense/internal/component"
	"go-road-defense/internal/defs"
)

// damageAfterArmor считает урон с учетом типа атаки и брони.
func damageAfterArmor(e *component.Enemy, damage int, attackType defs.AttackType) int {
	finalDamage := damage
	switch attackType {
	case defs.AttackPhysical:
		finalDamage -= e.PhysicalArmor
	case defs.AttackMagical:
		finalDamage -= e.MagicalArmor
	case defs.AttackPure:
		// Чистый урон не уменьшается
	}

	// Минимальный урон 1, если начальный урон был > 0
	if finalDamage < 1 && damage > 0 {
		finalDamage = 1
	} else if finalDamage < 0 {
		finalDamage = 0
	}
	return finalDamage
}

// applyDamage наносит урон врагу и возвращает нанесённый урон.
// Health never drops below zero.
func applyDamage(e *component.Enemy, damage int, attackType defs.AttackType) int {
	dealt := damageAfterArmor(e, damage, attackType)
	if dealt > e.Health {
		dealt = e.Health
	}
	e.Health -= dealt
	return dealt
}
