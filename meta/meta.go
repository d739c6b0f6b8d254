// meta/meta.go
package meta

// Goroutines is the default number of workers searching root moves.
const Goroutines = 1

// MaxPasses ends a game after this many consecutive turns without a move.
const MaxPasses = 2

// ExperimentGames is the default number of games per experiment.
const ExperimentGames = 10

// ExperimentDir is where experiment records are written by default.
const ExperimentDir = "experiments"
