package cube

// Predefined moves for convenience, in the style of a move-notation
// constant table.
var (
	U, UPrime, U2 = MoveU, MoveUPrime, MoveU2
	D, DPrime, D2 = MoveD, MoveDPrime, MoveD2
	L, LPrime, L2 = MoveL, MoveLPrime, MoveL2
	R, RPrime, R2 = MoveR, MoveRPrime, MoveR2
	F, FPrime, F2 = MoveF, MoveFPrime, MoveF2
	B, BPrime, B2 = MoveB, MoveBPrime, MoveB2
)

// SexyMove is the algorithm R U R' U', one of the most common triggers.
var SexyMove = []Move{R, U, RPrime, UPrime}

// Phase2Moves is the 10-move subgroup generator {U,D,L2,R2,F2,B2} that
// restores a cube already in G1 to solved without breaking edge/corner
// orientation or the slice partition.
var Phase2Moves = []Move{U, UPrime, U2, D, DPrime, D2, L2, R2, F2, B2}
