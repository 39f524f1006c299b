package handlers_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/arena/internal/config"
	"github.com/cory-johannsen/arena/internal/frontend/console"
	"github.com/cory-johannsen/arena/internal/frontend/handlers"
	"github.com/cory-johannsen/arena/internal/game/catalog"
	"github.com/cory-johannsen/arena/internal/game/dice"
	"github.com/cory-johannsen/arena/internal/game/draft"
)

const roster = "Grognak, Special\nA1, Warrior\nA2, Warrior\nM1, Mage\nM2, Mage\nR1, Rogue\nR2, Rogue\n"

// scriptedSource replays vals in order and then returns 0 forever.
type scriptedSource struct {
	vals []int
	i    int
}

func (s *scriptedSource) Intn(n int) int {
	if s.i >= len(s.vals) {
		return 0
	}
	v := s.vals[s.i]
	s.i++
	return v % n
}

func loaderFor(t require.TestingT, dir, content string) *catalog.Loader {
	path := filepath.Join(dir, "heroes.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	l := catalog.NewLoader(zap.NewNop())
	require.NoError(t, l.SetSourcePath(path))
	return l
}

func runFlow(t *testing.T, cfg config.DraftConfig, loader *catalog.Loader, src dice.Source, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	p := console.NewPrompter(strings.NewReader(input), &out, false)
	roller := dice.NewLoggedRoller(src, zap.NewNop())
	err := handlers.NewDraftFlow(cfg, loader, roller, p, zap.NewNop()).Run(context.Background())
	return out.String(), err
}

func TestDraftFlow_PromptsAndDrafts(t *testing.T) {
	cfg := config.DraftConfig{Special: config.SpecialAsk}
	out, err := runFlow(t, cfg, loaderFor(t, t.TempDir(), roster), &scriptedSource{vals: []int{9, 2}}, "3\ny\nAlice\nBob\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Welcome to the Arena!")
	assert.Contains(t, out, "Would you like to play with 3 or 4 heroes per team? ")
	assert.Contains(t, out, "Alice rolled a 10\nBob rolled a 3\n")
	assert.Contains(t, out, "Alice's team picks first.")
	assert.True(t, strings.HasSuffix(out, "\nAlice's team:\nGrognak\nA2\nM2\n\nBob's team:\nA1\nM1\nR1\n"), out)
}

func TestDraftFlow_ExcludesSpecialWhenDeclined(t *testing.T) {
	cfg := config.DraftConfig{Special: config.SpecialAsk}
	out, err := runFlow(t, cfg, loaderFor(t, t.TempDir(), roster), &scriptedSource{vals: []int{9, 2}}, "3\nno\nAlice\nBob\n")
	require.NoError(t, err)

	assert.NotContains(t, out, "Grognak")
	assert.True(t, strings.HasSuffix(out, "\nAlice's team:\nA1\nM1\nR1\n\nBob's team:\nA2\nM2\nR2\n"), out)
}

func TestDraftFlow_ConfiguredSettingsSkipPrompts(t *testing.T) {
	cfg := config.DraftConfig{TeamSize: 3, Special: config.SpecialNo}
	out, err := runFlow(t, cfg, loaderFor(t, t.TempDir(), roster), &scriptedSource{vals: []int{2, 9}}, "Alice\nBob\n")
	require.NoError(t, err)

	assert.NotContains(t, out, "heroes per team?")
	assert.NotContains(t, out, "special class")
	assert.Contains(t, out, "Bob's team picks first.")
	assert.True(t, strings.HasSuffix(out, "\nAlice's team:\nA2\nM2\nR2\n\nBob's team:\nA1\nM1\nR1\n"), out)
}

func TestDraftFlow_RerollsTies(t *testing.T) {
	cfg := config.DraftConfig{TeamSize: 3, Special: config.SpecialYes}
	out, err := runFlow(t, cfg, loaderFor(t, t.TempDir(), roster), &scriptedSource{vals: []int{7, 7, 0, 5}}, "Alice\nBob\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Alice rolled an 8\nBob rolled an 8\nOops. It's a tie! Rolling again...")
	assert.Contains(t, out, "Alice rolled a 1\nBob rolled a 6\n")
	assert.Contains(t, out, "Bob's team picks first.")
}

func TestDraftFlow_RepromptsEqualNames(t *testing.T) {
	cfg := config.DraftConfig{TeamSize: 3, Special: config.SpecialNo}
	out, err := runFlow(t, cfg, loaderFor(t, t.TempDir(), roster), &scriptedSource{vals: []int{9, 2}}, "Alice\nAlice\nAlice\nBob\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Please choose a different name for each team.")
	assert.Contains(t, out, "Bob's team:")
}

func TestDraftFlow_PathNotConfigured(t *testing.T) {
	cfg := config.DraftConfig{TeamSize: 3, Special: config.SpecialNo}
	_, err := runFlow(t, cfg, catalog.NewLoader(zap.NewNop()), dice.NewSeededSource(1), "Alice\nBob\n")
	assert.ErrorIs(t, err, catalog.ErrPathNotConfigured)
}

func TestDraftFlow_InputEndsEarly(t *testing.T) {
	cfg := config.DraftConfig{Special: config.SpecialAsk}
	_, err := runFlow(t, cfg, loaderFor(t, t.TempDir(), roster), dice.NewSeededSource(1), "3\n")
	assert.ErrorIs(t, err, io.EOF)
}

func TestDraftFlow_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := console.NewPrompter(strings.NewReader("Alice\nBob\n"), io.Discard, false)
	roller := dice.NewLoggedRoller(dice.NewSeededSource(1), zap.NewNop())
	cfg := config.DraftConfig{TeamSize: 3, Special: config.SpecialNo}

	err := handlers.NewDraftFlow(cfg, loaderFor(t, t.TempDir(), roster), roller, p, zap.NewNop()).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestProperty_DraftFlow_RostersDisjoint runs full drafts with random seeds and
// checks both printed rosters are full and share no hero.
func TestProperty_DraftFlow_RostersDisjoint(t *testing.T) {
	dir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		size := rapid.IntRange(3, 4).Draw(rt, "size")
		seed := rapid.Uint64().Draw(rt, "seed")
		content := roster + "C1, Cleric\nC2, Cleric\n"

		var out bytes.Buffer
		p := console.NewPrompter(strings.NewReader("Alice\nBob\n"), &out, false)
		roller := dice.NewLoggedRoller(dice.NewSeededSource(seed), zap.NewNop())
		cfg := config.DraftConfig{TeamSize: size, Special: config.SpecialNo}
		err := handlers.NewDraftFlow(cfg, loaderFor(rt, dir, content), roller, p, zap.NewNop()).Run(context.Background())
		require.NoError(rt, err)

		text := out.String()
		alice := text[strings.LastIndex(text, "Alice's team:\n")+len("Alice's team:\n") : strings.LastIndex(text, "\n\nBob's team:")]
		bob := strings.TrimSuffix(text[strings.LastIndex(text, "Bob's team:\n")+len("Bob's team:\n"):], "\n")
		aliceHeroes := strings.Split(alice, "\n")
		bobHeroes := strings.Split(bob, "\n")
		assert.Len(rt, aliceHeroes, size)
		assert.Len(rt, bobHeroes, size)
		for _, h := range aliceHeroes {
			assert.NotContains(rt, bobHeroes, h)
		}
	})
}

func TestRenderCatalog(t *testing.T) {
	c := catalog.New()
	c.Add("Warrior", "A")
	c.Add("Warrior", "B")
	c.Add("Mage", "C")
	p := console.NewPrompter(strings.NewReader(""), io.Discard, false)
	assert.Equal(t, "Warrior (2)\n  A\n  B\nMage (1)\n  C", handlers.RenderCatalog(p, c))
}

func TestRenderTeam(t *testing.T) {
	pool := catalog.New()
	pool.Add("Warrior", "A1")
	pool.Add("Mage", "M1")
	roller := dice.NewLoggedRoller(&scriptedSource{vals: []int{4, 0, 0, 0}}, zap.NewNop())
	team := draft.NewTeam("Alice", 3, pool, roller)

	plain := console.NewPrompter(strings.NewReader(""), io.Discard, false)
	colored := console.NewPrompter(strings.NewReader(""), io.Discard, true)
	assert.Equal(t, "Alice's team:", handlers.RenderTeam(plain, team))

	_, err := team.ChooseHero()
	require.NoError(t, err)
	_, err = team.ChooseHero()
	require.NoError(t, err)

	assert.Equal(t, team.String(), handlers.RenderTeam(plain, team))
	got := handlers.RenderTeam(colored, team)
	assert.True(t, strings.HasPrefix(got, console.BrightYellow+"Alice's team:"+console.Reset+"\n"), got)
	assert.Equal(t, team.String(), console.StripANSI(got))
}

func TestRenderCatalog_Colored(t *testing.T) {
	c := catalog.New()
	c.Add("Warrior", "A")
	c.Add("Mage", "C")
	p := console.NewPrompter(strings.NewReader(""), io.Discard, true)
	got := handlers.RenderCatalog(p, c)
	assert.Contains(t, got, console.Colorf(console.BrightYellow, "%s (%d)", "Warrior", 1))
	assert.Equal(t, "Warrior (1)\n  A\nMage (1)\n  C", console.StripANSI(got))
}
