package standings

// pctScale sets the comparator granularity: win percentages closer than 1/pctScale
// compare as tied.
const pctScale = 1000

// Compare orders a ahead of b when it returns a negative value and behind b when it
// returns a positive one. Win percentage decides first, truncated to thousandths;
// head-to-head net breaks a tie. Conference and division records are not consulted,
// so teams level on both criteria compare as 0.
func Compare(a, b *TeamRecord) int {
	if diff := int((b.WinPct - a.WinPct) * pctScale); diff != 0 {
		return diff
	}
	return -a.HeadToHeadNet(b.Name)
}
