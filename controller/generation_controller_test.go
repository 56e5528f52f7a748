package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"reef-datagen/controller"
	"reef-datagen/models"
	"reef-datagen/views"
)

type GenerationSuite struct {
	suite.Suite
	dir string
}

func (s *GenerationSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *GenerationSuite) run(raw controller.RawParams) (*controller.Summary, error) {
	params, err := controller.ResolveParams(raw)
	if err != nil {
		return nil, err
	}
	clock := func() time.Time { return time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC) }
	return controller.NewGenerationController(params, nil).WithClock(clock).Run(context.Background())
}

// TestTwoByThreeTemperature is the reference scenario: two buoys, three
// readings each, every reading carrying all seven parameters.
func (s *GenerationSuite) TestTwoByThreeTemperature() {
	out := filepath.Join(s.dir, "out.json")
	sum, err := s.run(controller.RawParams{
		NumBuoys: 2, ReadingsPerBuoy: 3, DatasetType: "temperature", OutputFile: out,
	})
	s.Require().NoError(err)
	s.Equal(2, sum.Buoys)
	s.Equal(6, sum.TotalReadings)
	s.Equal(models.TypeTemperature, sum.DatasetType)
	s.Equal(views.FormatJSON, sum.Format)
	s.NotZero(sum.Seed, "seed derived from the clock")

	raw, err := os.ReadFile(out)
	s.Require().NoError(err)
	var doc struct {
		Buoys []struct {
			Readings []map[string]interface{} `json:"readings"`
		} `json:"buoys"`
	}
	s.Require().NoError(json.Unmarshal(raw, &doc))
	s.Require().Len(doc.Buoys, 2)
	for _, b := range doc.Buoys {
		s.Require().Len(b.Readings, 3)
		for _, r := range b.Readings {
			s.Contains(r, "timestamp")
			for _, p := range models.Parameters {
				s.Contains(r, string(p))
			}
		}
	}
}

func (s *GenerationSuite) TestCreatesNestedOutputDir() {
	out := filepath.Join(s.dir, "public", "data", "large_reef_data.json")
	_, err := s.run(controller.RawParams{
		NumBuoys: 1, ReadingsPerBuoy: 2, DatasetType: "reef", OutputFile: out,
	})
	s.Require().NoError(err)
	s.FileExists(out)
}

func (s *GenerationSuite) TestInvalidTypeWritesNothing() {
	out := filepath.Join(s.dir, "sub", "out.json")
	_, err := s.run(controller.RawParams{
		NumBuoys: 2, ReadingsPerBuoy: 3, DatasetType: "bogus", OutputFile: out,
	})
	s.Require().Error(err)
	s.True(errors.Is(err, models.ErrInvalidArgument))
	s.NoFileExists(out)
	s.NoDirExists(filepath.Dir(out))
}

func (s *GenerationSuite) TestFixedSeedReproducesFile() {
	a := filepath.Join(s.dir, "a.json")
	b := filepath.Join(s.dir, "b.json")
	for _, out := range []string{a, b} {
		_, err := s.run(controller.RawParams{
			NumBuoys: 2, ReadingsPerBuoy: 10, DatasetType: "chlorophyll", OutputFile: out, Seed: 99,
		})
		s.Require().NoError(err)
	}
	ra, err := os.ReadFile(a)
	s.Require().NoError(err)
	rb, err := os.ReadFile(b)
	s.Require().NoError(err)
	s.Equal(ra, rb)
}

func (s *GenerationSuite) TestCSVFormat() {
	out := filepath.Join(s.dir, "out.csv")
	sum, err := s.run(controller.RawParams{
		NumBuoys: 2, ReadingsPerBuoy: 3, DatasetType: "ph", OutputFile: out, Format: "csv",
	})
	s.Require().NoError(err)
	s.Equal(views.FormatCSV, sum.Format)
	s.FileExists(out)
}

func (s *GenerationSuite) TestOutputParentIsFile() {
	blocker := filepath.Join(s.dir, "blocker")
	s.Require().NoError(os.WriteFile(blocker, []byte("x"), 0644))

	_, err := s.run(controller.RawParams{
		NumBuoys: 1, ReadingsPerBuoy: 1, DatasetType: "reef",
		OutputFile: filepath.Join(blocker, "out.json"),
	})
	s.Require().Error(err)
	s.True(errors.Is(err, models.ErrIO))
}

func TestGenerationSuite(t *testing.T) {
	suite.Run(t, new(GenerationSuite))
}

func TestResolveParams(t *testing.T) {
	p, err := controller.ResolveParams(controller.RawParams{
		NumBuoys: 5, ReadingsPerBuoy: 2000, DatasetType: "reef", OutputFile: "out.json",
	})
	require.NoError(t, err)
	require.Equal(t, models.TypeReef, p.DatasetType)
	require.Equal(t, views.FormatJSON, p.Format)

	bad := []controller.RawParams{
		{DatasetType: "bogus", OutputFile: "out.json"},
		{DatasetType: "reef"},
		{DatasetType: "reef", OutputFile: "out.json", NumBuoys: -1},
		{DatasetType: "reef", OutputFile: "out.json", ReadingsPerBuoy: -1},
		{DatasetType: "reef", OutputFile: "out.json", Format: "xlsx"},
	}
	for _, raw := range bad {
		_, err := controller.ResolveParams(raw)
		require.ErrorIs(t, err, models.ErrInvalidArgument, "%+v", raw)
	}
}

func TestEnsureOutputDir(t *testing.T) {
	created, err := controller.EnsureOutputDir("out.json")
	require.NoError(t, err)
	require.False(t, created)

	dir := filepath.Join(t.TempDir(), "a", "b")
	created, err = controller.EnsureOutputDir(filepath.Join(dir, "out.json"))
	require.NoError(t, err)
	require.True(t, created)
	require.DirExists(t, dir)

	created, err = controller.EnsureOutputDir(filepath.Join(dir, "again.json"))
	require.NoError(t, err)
	require.False(t, created)
}

func TestSummaryPrint(t *testing.T) {
	sum := &controller.Summary{
		RequestedBuoys: 2, ReadingsPerBuoy: 3, DatasetType: models.TypeTemperature,
		Buoys: 2, TotalReadings: 6, OutputFile: "out.json",
	}
	var buf bytes.Buffer
	require.NoError(t, sum.Print(&buf))
	require.Equal(t,
		"Generated 2 buoys with 3 readings each for dataset type 'temperature'.\n"+
			"Total 2 buoys and 6 total readings.\n"+
			"Dummy data saved to out.json\n",
		buf.String())
}
