package provider

import "slices"

// Best list capacities of the b50 payload, per chart variant pool.
const (
	SDBestCapacity = 35
	DXBestCapacity = 15
)

// InsertRecord places a record on a fixed-capacity best list kept sorted by
// ra descending. On a tie the earlier record stays ahead, and the weakest
// record is evicted once the list is past capacity.
func InsertRecord(list []ScoreRecord, record ScoreRecord, capacity int) []ScoreRecord {
	pos := len(list)
	for i, existing := range list {
		if record.Ra > existing.Ra {
			pos = i
			break
		}
	}

	list = slices.Insert(list, pos, record)
	if len(list) > capacity {
		list = list[:capacity]
	}
	return list
}

// Insert routes a record to the pool matching its chart variant.
func (b *BestCharts) Insert(record ScoreRecord) {
	if record.Type == "DX" {
		b.DX = InsertRecord(b.DX, record, DXBestCapacity)
		return
	}
	b.SD = InsertRecord(b.SD, record, SDBestCapacity)
}
