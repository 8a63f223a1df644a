package game

import "math/rand/v2"

// dismissQuips are the button labels offered when a dialog is dismissed.
var dismissQuips = []string{
	"Fine!",
	"Dang it!",
	"Well that stinks...",
	"Oh good grief",
	"I'm smart, I promise!",
	"Okie dokie artichokie!",
	"Shore bud",
	"¡Cállate!",
	"Aw fetch!",
}

// Quip picks a dismiss label using rng.
func Quip(rng *rand.Rand) string {
	return dismissQuips[rng.IntN(len(dismissQuips))]
}
