// squares.go enumerates the 64 named squares, in the internal a1=0..h8=63
// numbering (see Square in basic.go).

package engine

const (
	SquareA1 Square = 0
	SquareB1 Square = 1
	SquareC1 Square = 2
	SquareD1 Square = 3
	SquareE1 Square = 4
	SquareF1 Square = 5
	SquareG1 Square = 6
	SquareH1 Square = 7
	SquareA2 Square = 8
	SquareB2 Square = 9
	SquareC2 Square = 10
	SquareD2 Square = 11
	SquareE2 Square = 12
	SquareF2 Square = 13
	SquareG2 Square = 14
	SquareH2 Square = 15
	SquareA3 Square = 16
	SquareB3 Square = 17
	SquareC3 Square = 18
	SquareD3 Square = 19
	SquareE3 Square = 20
	SquareF3 Square = 21
	SquareG3 Square = 22
	SquareH3 Square = 23
	SquareA4 Square = 24
	SquareB4 Square = 25
	SquareC4 Square = 26
	SquareD4 Square = 27
	SquareE4 Square = 28
	SquareF4 Square = 29
	SquareG4 Square = 30
	SquareH4 Square = 31
	SquareA5 Square = 32
	SquareB5 Square = 33
	SquareC5 Square = 34
	SquareD5 Square = 35
	SquareE5 Square = 36
	SquareF5 Square = 37
	SquareG5 Square = 38
	SquareH5 Square = 39
	SquareA6 Square = 40
	SquareB6 Square = 41
	SquareC6 Square = 42
	SquareD6 Square = 43
	SquareE6 Square = 44
	SquareF6 Square = 45
	SquareG6 Square = 46
	SquareH6 Square = 47
	SquareA7 Square = 48
	SquareB7 Square = 49
	SquareC7 Square = 50
	SquareD7 Square = 51
	SquareE7 Square = 52
	SquareF7 Square = 53
	SquareG7 Square = 54
	SquareH7 Square = 55
	SquareA8 Square = 56
	SquareB8 Square = 57
	SquareC8 Square = 58
	SquareD8 Square = 59
	SquareE8 Square = 60
	SquareF8 Square = 61
	SquareG8 Square = 62
	SquareH8 Square = 63

	SquareMinValue  = SquareA1
	SquareMaxValue  = SquareH8
	SquareArraySize = int(SquareMaxValue) + 1
)
