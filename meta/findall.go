package meta

// FindAllIndices returns the spans of successive non-overlapping matches.
// If n >= 0 at most n spans are returned; n < 0 means all.
//
// As in the standard library, an empty match that abuts the preceding match
// is skipped: "a*" on "ab" yields [0 1] and [2 2].
//
// results is reused when non-nil.
func (e *Engine) FindAllIndices(haystack []byte, n int, results [][2]int) [][2]int {
	if results == nil {
		initCap := len(haystack)/100 + 1
		if initCap > 256 {
			initCap = 256
		}
		results = make([][2]int, 0, initCap)
	} else {
		results = results[:0]
	}
	if n == 0 {
		return results
	}

	state := e.getState()
	defer e.putState(state)

	pos, prevEnd := 0, -1
	for pos <= len(haystack) && (n < 0 || len(results) < n) {
		r, err := e.execWithState(haystack, pos, state)
		if err != nil {
			break
		}
		accept := true
		if r.End == pos {
			// Empty match at pos.
			if r.Start == prevEnd {
				accept = false
			}
			pos++
		} else {
			pos = r.End
		}
		prevEnd = r.End
		if accept {
			results = append(results, [2]int{r.Start, r.End})
		}
	}
	return results
}

// FindAll returns successive non-overlapping matches, as FindAllIndices.
func (e *Engine) FindAll(haystack []byte, n int) []*Match {
	indices := e.FindAllIndices(haystack, n, nil)
	if len(indices) == 0 {
		return nil
	}
	matches := make([]*Match, len(indices))
	for i, idx := range indices {
		matches[i] = NewMatch(idx[0], idx[1], haystack)
	}
	return matches
}

// Count returns the number of non-overlapping matches, or at most n when
// n >= 0.
func (e *Engine) Count(haystack []byte, n int) int {
	return len(e.FindAllIndices(haystack, n, nil))
}
