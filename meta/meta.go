// meta/meta.go
package meta

// GO_ROUTINES defines the default number of goroutines for root-parallel search.
const GO_ROUTINES = 1

// GAMES defines the number of games per experiment match-up.
const GAMES = 10

// MAX_TURNS caps a self-play game in plies.
const MAX_TURNS = 200

// SEED seeds random agents in experiments.
const SEED = 1
