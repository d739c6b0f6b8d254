package game

// Utility scores the board from Black's perspective as the unweighted sum of
// four differentials, each in [-1, 1]: discs, legal moves, corners held and
// stable discs. A differential whose two sides are both zero adds nothing.
func Utility(b *Board) float64 {
	discScore := normalize(float64(b.Count(Black)), float64(b.Count(White)))
	mobilityScore := normalize(float64(len(LegalMoves(b, Black))), float64(len(LegalMoves(b, White))))
	cornerScore, stableScore := b.calculatePositionScores()

	return discScore + mobilityScore + cornerScore + stableScore
}

// calculatePositionScores tallies corners held and stable discs by side.
// A corner disc counts once as a corner and once as stable.
func (b *Board) calculatePositionScores() (cornerScore, stableScore float64) {
	corners := make(map[Color]float64, 2)
	stable := make(map[Color]float64, 2)

	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			owner, ok := b.at(row, col).Color()
			if !ok {
				continue
			}
			if b.IsCorner(row, col) {
				corners[owner]++
			}
			if b.IsStable(row, col) {
				stable[owner]++
			}
		}
	}

	cornerScore = normalize(corners[Black], corners[White])
	stableScore = normalize(stable[Black], stable[White])
	return cornerScore, stableScore
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
