package compose

import "cardsheet/pkg/card"

// GroupBySize partitions cards into groups that share an identical intrinsic
// size. Every input card lands in exactly one group. Groups appear in the
// order their size was first seen, and cards keep their input order within a
// group, so identical input always produces identical output.
func GroupBySize(cards []*card.Card) [][]*card.Card {
	var order []string
	bySize := make(map[string][]*card.Card)

	for _, c := range cards {
		key := c.Size.Key()
		if _, seen := bySize[key]; !seen {
			order = append(order, key)
		}
		bySize[key] = append(bySize[key], c)
	}

	groups := make([][]*card.Card, 0, len(order))
	for _, key := range order {
		groups = append(groups, bySize[key])
	}
	return groups
}
