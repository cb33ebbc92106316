package services

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"topo-schedule/internal/models"
)

// ElementGenerator produces the initial element tables of a session.
type ElementGenerator interface {
	Generate() map[models.ElementType][]models.SwitchingElement
}

// RandomGenerator builds synthetic tables: PerType elements named "<Type> <n>" with
// random service flag, group and hourly status.
type RandomGenerator struct {
	PerType int
	rnd     *rand.Rand
	newID   func() string
}

// NewRandomGenerator seeds the generator; a zero seed uses the current time.
func NewRandomGenerator(perType int, seed int64) *RandomGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomGenerator{
		PerType: perType,
		rnd:     rand.New(rand.NewSource(seed)),
		newID:   NewMRID,
	}
}

// WithIDFunc replaces the mRID source, mainly for deterministic tests.
func (g *RandomGenerator) WithIDFunc(fn func() string) *RandomGenerator {
	g.newID = fn
	return g
}

func (g *RandomGenerator) Generate() map[models.ElementType][]models.SwitchingElement {
	tables := make(map[models.ElementType][]models.SwitchingElement, len(models.ElementTypes))
	for _, t := range models.ElementTypes {
		rows := make([]models.SwitchingElement, 0, g.PerType)
		for i := 0; i < g.PerType; i++ {
			el := models.SwitchingElement{
				ElementName: fmt.Sprintf("%s %d", t, i+1),
				MRID:        g.newID(),
				InService:   g.rnd.Intn(2) == 1,
				Group:       models.Groups[g.rnd.Intn(len(models.Groups))],
				Schedule:    make(map[string]models.Status, len(models.Hours)),
			}
			for _, h := range models.Hours {
				el.Schedule[h] = models.Statuses[g.rnd.Intn(len(models.Statuses))]
			}
			rows = append(rows, el)
		}
		tables[t] = rows
	}
	return tables
}

// FixtureGenerator hands out fixed tables.
type FixtureGenerator map[models.ElementType][]models.SwitchingElement

func (f FixtureGenerator) Generate() map[models.ElementType][]models.SwitchingElement {
	return f
}

// NewMRID returns a fresh mRID in the "_<uuid>" form used by the CGMES exports.
func NewMRID() string {
	return "_" + uuid.NewString()
}
