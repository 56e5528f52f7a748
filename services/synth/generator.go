// Package synth turns generation parameters into a simulated buoy dataset.
// All randomness comes from the *rand.Rand handed to New, so a fixed seed
// reproduces a dataset exactly (apart from the caller-supplied clock).
package synth

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"reef-datagen/models"
	"reef-datagen/utils"
)

// Generator synthesises buoys and readings for one dataset type.
type Generator struct {
	rng     *rand.Rand
	profile *utils.GeneratorProfile
	epoch   time.Time
	dtype   models.DatasetType
}

// New binds a random source and a validated profile to a dataset type.
func New(rng *rand.Rand, profile *utils.GeneratorProfile, dtype models.DatasetType) (*Generator, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", models.ErrInvalidArgument)
	}
	if profile == nil {
		profile = utils.DefaultProfile()
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidArgument, err)
	}
	epoch, _ := profile.EpochTime()
	return &Generator{rng: rng, profile: profile, epoch: epoch, dtype: dtype}, nil
}

// Dataset builds the metadata block followed by numBuoys buoys of
// readingsPerBuoy readings each. ctx is checked between buoys.
func (g *Generator) Dataset(ctx context.Context, now time.Time, numBuoys, readingsPerBuoy int) (*models.Dataset, error) {
	if numBuoys < 0 || readingsPerBuoy < 0 {
		return nil, fmt.Errorf("%w: negative count (buoys=%d, readings=%d)",
			models.ErrInvalidArgument, numBuoys, readingsPerBuoy)
	}

	meta, err := g.Metadata(now)
	if err != nil {
		return nil, err
	}
	ds := &models.Dataset{
		Type:     g.dtype,
		Metadata: meta,
		Buoys:    make([]models.Buoy, 0, numBuoys),
	}
	for i := 0; i < numBuoys; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ds.Buoys = append(ds.Buoys, g.Buoy(i, readingsPerBuoy))
		utils.L().Debug("buoy %s generated (%d readings)", ds.Buoys[i].ID, readingsPerBuoy)
	}
	return ds, nil
}

// Buoy synthesises the identity, location, deployment and reading series
// of the buoy at zero-based index i.
func (g *Generator) Buoy(i, readingsPerBuoy int) models.Buoy {
	n := i + 1
	upper := strings.ToUpper(string(g.dtype))

	loc := g.profile.Location
	lat := loc.BaseLat + g.uniform(-loc.LatSpreadDeg, loc.LatSpreadDeg)
	lng := loc.BaseLng + g.uniform(-loc.LngSpreadDeg, loc.LngSpreadDeg)

	tl := g.profile.Timeline
	deployed := g.epoch.AddDate(0, 0, g.intn(0, tl.DeploymentWindowD))
	depth := g.intn(g.profile.Deployment.MinDepthM, g.profile.Deployment.MaxDepthM)
	platforms := append([]string{"REEFlect-Dummy-" + upper}, g.profile.Deployment.Platforms...)
	platform := platforms[g.rng.Intn(len(platforms))]

	start := g.epoch.Add(time.Duration(g.intn(0, tl.StartJitterHours)) * time.Hour)
	bases := g.Bases()

	return models.Buoy{
		ID:   fmt.Sprintf("DUMMY_%s_B%03d", upper, n),
		Name: fmt.Sprintf("Dummy Buoy Location %d (%s)", n, g.dtype),
		Location: models.Location{
			Lat:         models.Round(clamp(lat, -90, 90), 4),
			Lng:         models.Round(clamp(lng, -180, 180), 4),
			Description: fmt.Sprintf("Generated location %d for %s data", n, g.dtype),
		},
		Deployment: models.NewDeployment(deployed, depth, platform),
		Readings:   g.Readings(start, bases, readingsPerBuoy),
	}
}

// Bases draws one anchor value per parameter, in canonical parameter order.
func (g *Generator) Bases() Bases {
	b := make(Bases, len(models.Parameters))
	for _, p := range models.Parameters {
		s := baseSpans[p]
		b[p] = g.uniform(s.Min, s.Max)
	}
	return b
}

// Readings emits n readings after start. Every reading advances the clock
// by a positive step, so timestamps are strictly increasing.
func (g *Generator) Readings(start time.Time, bases Bases, n int) []models.Reading {
	out := make([]models.Reading, 0, n)
	ts := start.UTC()
	for r := 0; r < n; r++ {
		ts = ts.Add(g.step())
		rd := models.Reading{Timestamp: ts}
		for _, p := range models.Parameters {
			v := bases[p] + g.variation(p, r, n)
			if floor, ok := models.Floor[p]; ok {
				v = math.Max(floor, v)
			}
			rd.Set(p, models.Round(v, models.Precision[p]))
		}
		out = append(out, rd)
	}
	return out
}

// variation draws the offset from the base for parameter p at reading r of n.
func (g *Generator) variation(p models.Parameter, r, n int) float64 {
	b := bands[p]
	frac := progress(r, n)

	var v float64
	focus, hasFocus := g.dtype.Focus()
	switch {
	case !hasFocus:
		v = g.uniform(-b.Reef, b.Reef) + b.ReefDrift*frac
	case focus == p:
		v = g.uniform(-b.Focus, b.Focus)
	default:
		v = g.uniform(-b.Background, b.Background)
	}
	if g.profile.Trend != 0 {
		v += g.profile.Trend * (frac - 0.5) * b.Focus
	}
	return v
}

func (g *Generator) step() time.Duration {
	hours := g.profile.Timeline.StepHours
	h := hours[0]
	if len(hours) > 1 {
		h = hours[g.rng.Intn(len(hours))]
	}
	return time.Duration(h) * time.Hour
}

// uniform draws from [lo, hi).
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// intn draws an integer from the closed range [lo, hi].
func (g *Generator) intn(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
