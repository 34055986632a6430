package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rocket-dodge/internal/core"
)

type soloGame struct {
	id string
}

func (g *soloGame) ID() string                           { return g.id }
func (g *soloGame) Title() string                        { return "Stub " + g.id }
func (g *soloGame) Reset(core.RuntimeConfig)             {}
func (g *soloGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *soloGame) Render(*core.Screen)                  {}
func (g *soloGame) State() core.GameState                { return core.GameState{} }

type duoGame struct {
	soloGame
}

func (g *duoGame) Players() int { return 2 }

func (g *duoGame) StepMulti(core.MultiInputFrame) core.StepResult {
	return core.StepResult{}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_solo", func() Game { return &soloGame{id: "stub_solo"} })
	Register("stub_duo", func() Game { return &duoGame{soloGame{id: "stub_duo"}} })

	require.True(t, Exists("stub_solo"))
	g, err := Create("stub_duo")
	require.NoError(t, err)
	assert.Equal(t, "stub_duo", g.ID())

	_, isMulti := g.(MultiPlayerGame)
	assert.True(t, isMulti)

	infos := map[string]GameInfo{}
	for _, info := range List() {
		infos[info.ID] = info
	}
	assert.Equal(t, "Stub stub_solo", infos["stub_solo"].Title)
	assert.Equal(t, 1, infos["stub_solo"].Players)
	assert.Equal(t, 2, infos["stub_duo"].Players)
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_game")
	assert.Error(t, err)
	assert.False(t, Exists("no_such_game"))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &soloGame{id: "stub_dup"} })
	assert.Panics(t, func() {
		Register("stub_dup", func() Game { return &soloGame{id: "stub_dup"} })
	})
}

func TestListSorted(t *testing.T) {
	list := List()
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID, list[i].ID)
	}
}
