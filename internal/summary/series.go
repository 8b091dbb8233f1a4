package summary

import (
	"github.com/varsha/glucolog/internal/model"
	"github.com/varsha/glucolog/internal/store"
)

// Recent returns up to n entries in the log's current order (newest
// first). The window is count-bounded, not date-bucketed: the last 7
// logged activities may span more or fewer than 7 calendar days.
func Recent[T model.Entry[T]](log *store.Log[T], n int) []T {
	all := log.All()
	if n < 0 {
		n = 0
	}
	if n > len(all) {
		n = len(all)
	}
	return all[:n]
}
