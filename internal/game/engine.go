// internal/game/engine.go
//
// Letter comparison between an attempt and the secret word.
//
// Notes:
//   - Compare is pure and safe for concurrent use.
//   - Both inputs are expected lowercase; Validate/NormalizeAttempt take care of that.

package game

// Compare scores attempt against answer using the two-pass algorithm.
//
// Pass 1:
//   - Mark exact matches as GoodPosition and consume the answer slot.
//
// Pass 2:
//   - For each remaining attempt letter, scan the still available answer
//     slots left to right; the first match becomes BadPosition and is consumed.
//   - No match leaves the letter NotPresent.
//
// Each answer letter is consumed at most once, so repeated letters never
// get more GoodPosition+BadPosition marks than the answer holds.
// Lengths may differ; only the overlapping prefix can be GoodPosition.
func Compare(attempt, answer string) Result {
	a := []rune(attempt)
	available := make([]rune, 0, len(answer))
	for _, r := range answer {
		available = append(available, r)
	}
	consumed := make([]bool, len(available))

	res := make(Result, len(a))
	for i := range res {
		res[i] = NotPresent
	}

	// First pass: good positions.
	for i, r := range a {
		if i < len(available) && available[i] == r {
			res[i] = GoodPosition
			consumed[i] = true
		}
	}

	// Second pass: bad positions, leftmost free slot first.
	for i, r := range a {
		if res[i] == GoodPosition {
			continue
		}
		for j, c := range available {
			if !consumed[j] && c == r {
				res[i] = BadPosition
				consumed[j] = true
				break
			}
		}
	}
	return res
}
