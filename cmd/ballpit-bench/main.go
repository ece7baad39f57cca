package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/lixenwraith/ballpit/engine"
	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/physics"
	"github.com/lixenwraith/ballpit/status"
	"github.com/lixenwraith/ballpit/vmath"
)

var (
	frames = flag.Int("frames", 10000, "Frames to simulate")
	count  = flag.Int("count", parameter.MaxBodyCount, "Body count")
	blocks = flag.Int("blocks", parameter.MaxObstacleCount, "Obstacle count")
	width  = flag.Float64("width", 400, "Arena width")
	height = flag.Float64("height", 600, "Arena height")
	seed   = flag.Uint64("seed", 1, "Radius seed")
)

func main() {
	flag.Parse()

	if *frames <= 0 {
		fmt.Fprintln(os.Stderr, "frames must be positive")
		os.Exit(2)
	}

	opts := engine.DefaultOptions()
	opts.Arena = physics.Arena{Width: *width, Height: *height}
	opts.TargetBodies = *count
	opts.TargetObstacles = *blocks
	opts.Seed = *seed
	sim := engine.NewSimulation(opts, nil)

	// Spread obstacles across the arena so bodies settle around them
	for i := 0; i < sim.Store().ObstacleCount(); i++ {
		x := *width * float64(i+1) / float64(sim.Store().ObstacleCount()+1)
		sim.DragObstacleBy(i, vmath.V2(x-*width/2, *height/6))
	}

	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	driver := engine.NewFrameDriver(sim, clock)
	spawner := engine.NewSpawner(sim, nil)

	metrics := status.NewRegistry()
	statFrames := metrics.Ints.Get("bench.frames")
	statBounces := metrics.Ints.Get("bench.bounces")
	statContacts := metrics.Ints.Get("bench.contacts")
	statMean := metrics.Floats.Get("bench.step_us_mean")
	statPeak := metrics.Floats.Get("bench.step_us_peak")

	spawnEvery := max(int(parameter.SpawnInterval/parameter.FrameUpdateInterval), 1)
	samples := make([]time.Duration, 0, *frames)

	start := time.Now()
	for f := 0; f < *frames; f++ {
		if f%spawnEvery == 0 {
			spawner.Fire()
		}
		clock.Advance(parameter.FrameUpdateInterval)

		t0 := time.Now()
		stats := driver.Tick()
		elapsed := time.Since(t0)

		samples = append(samples, elapsed)
		statFrames.Add(1)
		statBounces.Add(int64(stats.Contacts.Bounces))
		statContacts.Add(int64(stats.Contacts.Bodies + stats.Contacts.Obstacles))
		statPeak.SetMax(float64(elapsed.Nanoseconds()) / 1e3)
	}
	total := time.Since(start)
	statMean.Set(float64(total.Nanoseconds()) / 1e3 / float64(*frames))

	slices.Sort(samples)
	p99 := samples[len(samples)*99/100]

	fmt.Printf("=== ballpit step benchmark ===\n")
	fmt.Printf("arena %.0fx%.0f  bodies %d/%d  obstacles %d\n",
		*width, *height, sim.Store().BodyCount(), *count, sim.Store().ObstacleCount())
	fmt.Printf("frames %d in %v  (%.0f fps equivalent)\n", sim.Frame(), total, float64(*frames)/total.Seconds())
	fmt.Printf("p50 %v  p99 %v\n", samples[len(samples)/2], p99)

	values := metrics.Values()
	for _, k := range slices.Sorted(maps.Keys(values)) {
		fmt.Printf("%-22s %.2f\n", k, values[k])
	}
}
