// Package value approximates counterfactual values at the depth limit of a
// re-solved subgame by querying pretrained value models instead of expanding
// the game tree past the round boundary.
//
// An Engine serves one round. Setup fixes a subgame (board, pot sizes, batch
// of states) and Evaluate is then called once per iteration of the outer
// re-solving loop. Early iterations may use a cheap leaf approximation on
// the current board; later iterations average a root approximation over
// every next-round board and feed a running accumulator, read back through
// RetrieveAccumulated when the subgame ends.
//
// Engines are not safe for concurrent use: the iteration counter, scratch
// buffers and accumulator are mutated in place. Engines for different
// rounds are independent.
package value
