package catalog

import (
	"fmt"

	"github.com/abyounis/biofilmwatch/internal/domain"
)

const highBiofilmOD = 0.3

var isolateLineages = []string{"ST5", "ST8", "ST22", "ST36", "ST45", "ST239", "ST398"}

// IsolateRepo serves the sample isolate collection with biofilm measurements.
type IsolateRepo struct{}

// Isolates returns 200 isolates whose OD590 values follow a bimodal
// distribution: weak formers around 0.15, strong formers around 0.45.
func (IsolateRepo) Isolates() []domain.Isolate {
	r := newRand()

	const n = 200
	isolates := make([]domain.Isolate, n)

	for i := 0; i < n; i++ {
		var od float64
		if i < n/2 {
			od = r.NormFloat64()*0.08 + 0.15
		} else {
			od = r.NormFloat64()*0.12 + 0.45
		}
		od = clamp(od, 0.01, 2.0)

		isolates[i] = domain.Isolate{
			Id:            fmt.Sprintf("MRSA_%04d", i+1),
			Lineage:       isolateLineages[r.Intn(len(isolateLineages))],
			BiofilmOD590:  od,
			IsHighBiofilm: od > highBiofilmOD,
		}
	}

	return isolates
}
