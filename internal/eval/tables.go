package eval

// Positional tables, one per (color, piece kind), each a flat 100-entry
// array addressed directly by board index (border entries are always 0).
// White's tables are Tomasz Michniewski's simplified-evaluation
// piece-square values, material-value subtracted and remapped to this
// board's indexing. Black's tables are White's vertical mirror, which
// makes evaluator symmetry hold by construction. The king table is
// hand-authored: home-row squares score 50, the two castled squares
// score 100, elsewhere 0. See DESIGN.md for the full derivation and the
// starting-position total.

var whitePositionalP = [100]int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 78, 83, 86, 73, 102, 82, 85, 90, 0,
	0, 7, 29, 21, 44, 40, 31, 44, 7, 0,
	0, 0, 16, 0, 15, 14, 0, 15, 0, 0,
	0, 0, 3, 10, 9, 6, 1, 0, 0, 0,
	0, 0, 9, 5, 0, 0, 0, 3, 0, 0,
	0, 0, 8, 0, 0, 0, 0, 3, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

var whitePositionalN = [100]int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 80, 0, 0, 42, 0, 0, 0,
	0, 0, 47, 0, 54, 53, 7, 42, 0, 0,
	0, 4, 4, 25, 17, 13, 21, 5, 0, 0,
	0, 0, 0, 11, 1, 2, 15, 0, 0, 0,
	0, 0, 0, 0, 2, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

var whitePositionalB = [100]int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 9, 40, 55, 0, 0, 51, 22, 0, 0,
	0, 11, 59, 0, 61, 72, 10, 48, 6, 0,
	0, 45, 37, 40, 54, 46, 45, 35, 30, 0,
	0, 33, 30, 37, 43, 37, 36, 0, 27, 0,
	0, 34, 45, 44, 35, 28, 45, 40, 35, 0,
	0, 39, 40, 31, 26, 27, 26, 40, 36, 0,
	0, 13, 22, 5, 8, 6, 5, 10, 10, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

var whitePositionalR = [100]int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 14, 8, 12, 0, 16, 12, 35, 29, 0,
	0, 34, 8, 35, 46, 34, 41, 13, 39, 0,
	0, 0, 14, 7, 12, 24, 6, 4, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

var whitePositionalQ = [100]int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 35, 30, 21, 0, 98, 53, 117, 55, 0,
	0, 43, 61, 89, 19, 49, 105, 86, 53, 0,
	0, 27, 72, 61, 89, 101, 92, 72, 31, 0,
	0, 30, 13, 51, 46, 54, 49, 16, 23, 0,
	0, 15, 14, 27, 24, 28, 19, 9, 7, 0,
	0, 0, 23, 16, 18, 13, 18, 13, 2, 0,
	0, 0, 11, 0, 10, 14, 14, 8, 0, 0,
	0, 0, 0, 0, 16, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

var whitePositionalK = [100]int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 50, 50, 100, 50, 50, 50, 100, 50, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

var blackPositionalP = [100]int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 8, 0, 0, 0, 0, 3, 0, 0,
	0, 0, 9, 5, 0, 0, 0, 3, 0, 0,
	0, 0, 3, 10, 9, 6, 1, 0, 0, 0,
	0, 0, 16, 0, 15, 14, 0, 15, 0, 0,
	0, 7, 29, 21, 44, 40, 31, 44, 7, 0,
	0, 78, 83, 86, 73, 102, 82, 85, 90, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

var blackPositionalN = [100]int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 2, 0, 0, 0, 0, 0,
	0, 0, 0, 11, 1, 2, 15, 0, 0, 0,
	0, 4, 4, 25, 17, 13, 21, 5, 0, 0,
	0, 0, 47, 0, 54, 53, 7, 42, 0, 0,
	0, 0, 0, 80, 0, 0, 42, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

var blackPositionalB = [100]int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 13, 22, 5, 8, 6, 5, 10, 10, 0,
	0, 39, 40, 31, 26, 27, 26, 40, 36, 0,
	0, 34, 45, 44, 35, 28, 45, 40, 35, 0,
	0, 33, 30, 37, 43, 37, 36, 0, 27, 0,
	0, 45, 37, 40, 54, 46, 45, 35, 30, 0,
	0, 11, 59, 0, 61, 72, 10, 48, 6, 0,
	0, 9, 40, 55, 0, 0, 51, 22, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

var blackPositionalR = [100]int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 14, 7, 12, 24, 6, 4, 0, 0,
	0, 34, 8, 35, 46, 34, 41, 13, 39, 0,
	0, 14, 8, 12, 0, 16, 12, 35, 29, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

var blackPositionalQ = [100]int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 16, 0, 0, 0, 0, 0,
	0, 0, 11, 0, 10, 14, 14, 8, 0, 0,
	0, 0, 23, 16, 18, 13, 18, 13, 2, 0,
	0, 15, 14, 27, 24, 28, 19, 9, 7, 0,
	0, 30, 13, 51, 46, 54, 49, 16, 23, 0,
	0, 27, 72, 61, 89, 101, 92, 72, 31, 0,
	0, 43, 61, 89, 19, 49, 105, 86, 53, 0,
	0, 35, 30, 21, 0, 98, 53, 117, 55, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

var blackPositionalK = [100]int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 50, 50, 100, 50, 50, 50, 100, 50, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}
