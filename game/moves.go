package game

// LegalMoves returns every legal placement for color, scanning rows top to
// bottom and each row left to right. Search breaks ties by this order.
func LegalMoves(b *Board, color Color) []Move {
	var moves []Move
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			if b.at(row, col) != Empty {
				continue
			}
			if move, err := b.CheckMove(row, col, color); err == nil {
				moves = append(moves, move)
			}
		}
	}
	return moves
}
