package admin

import "dorata/models"

// Tally is the dashboard's running summary, recomputed from the full order
// list whenever it changes.
type Tally struct {
	Total        int                        `json:"total"`
	ByStatus     map[models.OrderStatus]int `json:"byStatus"`
	Revenue      float64                    `json:"revenue"`
	AverageOrder float64                    `json:"averageOrder"`
}

func ComputeTally(list []models.Order) Tally {
	t := Tally{
		ByStatus: map[models.OrderStatus]int{
			models.StatusPending:   0,
			models.StatusReady:     0,
			models.StatusCompleted: 0,
		},
	}
	for _, o := range list {
		t.Total++
		t.ByStatus[o.Status]++
		t.Revenue += o.Total
	}
	if t.Total > 0 {
		t.AverageOrder = t.Revenue / float64(t.Total)
	}
	return t
}
