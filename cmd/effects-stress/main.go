// Stress test for the particle emitters: measures update throughput at each
// performance tier's budget so budget baselines can be tuned without a window.
package main

import (
	"fmt"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"qscientist/internal/effects"
	"qscientist/internal/perf"
)

const iterations = 200

func main() {
	rand.Seed(42)

	for _, tier := range []perf.Tier{perf.TierLow, perf.TierMedium, perf.TierHigh} {
		fmt.Printf("== %s ==\n", tier)
		for _, baseline := range []int{120, 500, 2000, 8000} {
			testEmitter(tier, baseline)
		}
		testZoneField(tier)
		fmt.Println()
	}
}

func testEmitter(tier perf.Tier, baseline int) {
	count := perf.Budget(tier, baseline)
	e := effects.NewEmitter(effects.EmitterConfig{
		Count: count,
		Bounds: effects.Box{
			Min: rl.Vector3{X: -40, Y: 0, Z: -40},
			Max: rl.Vector3{X: 40, Y: 10, Z: 40},
		},
		MinSpeed:  0.1,
		MaxSpeed:  1.5,
		MinSize:   0.03,
		MaxSize:   0.15,
		PhaseWave: 0.05,
	})
	defer e.Dispose()

	e.Update(1.0 / 60.0) // warm up

	start := time.Now()
	for i := 0; i < iterations; i++ {
		e.Update(1.0 / 60.0)
	}
	elapsed := time.Since(start) / iterations

	perParticle := time.Duration(0)
	if count > 0 {
		perParticle = elapsed / time.Duration(count)
	}
	fmt.Printf("  baseline %5d -> %5d particles | %8v/frame | %6v/particle\n",
		baseline, count, elapsed.Round(time.Microsecond), perParticle)
}

// testZoneField times a field of eight overlapping zones, the worst case a
// level is expected to ship.
func testZoneField(tier perf.Tier) {
	f := effects.NewRadiationField(tier)
	defer f.Dispose()

	for i := 0; i < 8; i++ {
		f.AddZone(effects.Zone{
			ID:        fmt.Sprintf("stress-%d", i),
			Center:    rl.Vector3{X: rand.Float32()*60 - 30, Y: 1, Z: rand.Float32()*60 - 30},
			Radius:    4 + rand.Float32()*6,
			Intensity: 0.5,
		})
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		f.Update(1.0 / 60.0)
	}
	elapsed := time.Since(start) / iterations
	fmt.Printf("  zone field (8 zones)            | %8v/frame\n", elapsed.Round(time.Microsecond))
}
