// Package cube provides a 3x3x3 Rubik's cube model and, in the sibling
// solver package, a two-phase (Kociemba-style) solver for it.
//
// # Quick Start
//
//	c := cube.New()
//	c.ApplySequence(cube.ParseSequence("R U R' U' F2 L2 D B2 U2 R2"))
//	if !c.IsSolvable() {
//	    log.Fatal("unsolvable cube")
//	}
//	solution, err := solver.Solve(context.Background(), c, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cube.FormatMoves(solution))
//
// The cube model (this package) is the caller-owned state: a 54-facelet
// array, move application by face rotation, and queries that decode piece
// permutation, piece orientation, and the six solver coordinates. The
// solver (package solver, github.com/arjwilde/cubesolve/solver) never
// mutates a caller's *Cube; it snapshots the piece representation on entry
// and returns only a move list. This package has no dependency on solver,
// so importing it alone never pulls in the search engine or its
// precomputed tables.
//
// Everything outside the cube model and solver — the CLI, the SQLite-backed
// solve history, the live progress TUI, and the BLE smart-cube connector —
// is a narrow-interface collaborator layered on top, per the package
// boundaries described in the repository's design notes.
package cube
