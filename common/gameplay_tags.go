package common

import "github.com/milk9111/warrior/input"

// Gameplay tags naming the hero's input concepts.
var (
	InputTagMove         = input.MustTag("Input.Move")
	InputTagJump         = input.MustTag("Input.Jump")
	InputTagLook         = input.MustTag("Input.Look")
	InputTagAbility      = input.MustTag("Input.Ability")
	InputTagAbilityRelax = input.MustTag("Input.Ability.Relax")
)
