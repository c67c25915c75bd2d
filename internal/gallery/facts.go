package gallery

import "math/rand/v2"

var facts = []string{
	"Did you know? A day on Venus is longer than a year on Venus!",
	"Did you know? Neutron stars can spin at a rate of 600 rotations per second.",
	"Did you know? There are more trees on Earth than stars in the Milky Way.",
	"Did you know? One million Earths could fit inside the Sun.",
	"Did you know? The footprints on the Moon will be there for millions of years.",
	"Did you know? Jupiter has the shortest day of all the planets.",
	"Did you know? Space is completely silent, there is no atmosphere to carry sound.",
	"Did you know? The hottest planet in our solar system is Venus.",
	"Did you know? There are more stars in the universe than grains of sand on Earth.",
	"Did you know? Saturn could float in water because it is mostly made of gas.",
}

// Facts returns a copy of the trivia list.
func Facts() []string {
	return append([]string(nil), facts...)
}

// RandomFact picks one fact. A nil source uses the global generator.
func RandomFact(r *rand.Rand) string {
	if r == nil {
		return facts[rand.IntN(len(facts))]
	}
	return facts[r.IntN(len(facts))]
}
