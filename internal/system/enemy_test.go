package system

import (
	"errors"
	"testing"

	"go-road-defense/internal/component"
	"go-road-defense/internal/defs"
	"go-road-defense/internal/event"
	"go-road-defense/internal/utils"
	"go-road-defense/pkg/roadmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Speeds are chosen so one tick moves a whole number of world units:
// 1.5 tiles/s is 1 unit per tick.
var testStats = defs.StatTable{
	defs.EnemyRunner: {Health: 40, Speed: 3, Gold: 4, LifeCost: 1},
	defs.EnemyGrunt:  {Health: 100, Speed: 1.5, Gold: 6, LifeCost: 1, PhysicalArmor: 2, MagicalArmor: 1},
	defs.EnemyBrute:  {Health: 200, Speed: 1.5, Gold: 12, LifeCost: 2, PhysicalArmor: 5},
	defs.EnemyShade:  {Health: 60, Speed: 0.3, Gold: 10, LifeCost: 2, MagicalArmor: 4},
}

type fakeEnv struct {
	night   bool
	weather float64
}

func (f *fakeEnv) IsNight() bool { return f.night }

func (f *fakeEnv) WeatherMultiplier() float64 {
	if f.weather == 0 {
		return 1
	}
	return f.weather
}

type fakeLights bool

func (f fakeLights) IsLit(x, y float64) bool { return bool(f) }

func straightPath(n int) roadmap.Path {
	p := make(roadmap.Path, n)
	for i := range p {
		p[i] = roadmap.GridCell{Col: i, Row: 0}
	}
	return p
}

type simFixture struct {
	sim *EnemySimulator
	env *fakeEnv
	log *eventLog
}

func newSimFixture(path roadmap.Path, tune func(*SimulatorTuning)) simFixture {
	d := event.NewDispatcher()
	log := listen(d, event.EnemyKilled, event.EnemyReachedEnd, event.CollectibleDropped)
	env := &fakeEnv{}
	tuning := DefaultSimulatorTuning()
	tuning.DropChance = 0
	if tune != nil {
		tune(&tuning)
	}
	sim := NewEnemySimulator(SimulatorDeps{
		EventDispatcher: d,
		Environment:     env,
		PRNG:            utils.NewPRNGService(7),
		Stats:           testStats,
		Difficulty:      defs.Normal,
		Tuning:          tuning,
	}, path)
	return simFixture{sim: sim, env: env, log: log}
}

func (f simFixture) enemy(t *testing.T, id uint64) *component.Enemy {
	t.Helper()
	e, ok := f.sim.store.Get(id)
	require.True(t, ok, "enemy %d not live", id)
	return e
}

func (f simFixture) run(ticks int) {
	for i := 0; i < ticks; i++ {
		f.sim.Update(1)
	}
}

func TestSpawnPlacesEnemyAtPathStart(t *testing.T) {
	f := newSimFixture(straightPath(3), nil)
	id1, err := f.sim.Spawn(defs.EnemyGrunt)
	require.NoError(t, err)
	id2, err := f.sim.Spawn(defs.EnemyRunner)
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	e := f.enemy(t, id1)
	assert.Equal(t, 20.0, e.X)
	assert.Equal(t, 20.0, e.Y)
	assert.Equal(t, 100, e.Health)
	assert.Equal(t, 100, e.MaxHealth)
	assert.True(t, e.Alive)
	assert.Equal(t, 2, f.sim.LiveCount())

	snap := f.sim.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, id1, snap[0].ID)
	assert.Equal(t, id2, snap[1].ID)
	assert.True(t, snap[0].Targetable)
}

func TestSpawnFailures(t *testing.T) {
	f := newSimFixture(nil, nil)
	_, err := f.sim.Spawn(defs.EnemyGrunt)
	assert.True(t, errors.Is(err, ErrNoPath))

	f = newSimFixture(straightPath(2), nil)
	_, err = f.sim.Spawn(defs.EnemyType(200))
	assert.Error(t, err)
	assert.Zero(t, f.sim.LiveCount())
}

func TestMovementSnapsToWaypoints(t *testing.T) {
	f := newSimFixture(straightPath(4), nil)
	id, _ := f.sim.Spawn(defs.EnemyGrunt)

	f.run(39)
	e := f.enemy(t, id)
	assert.Equal(t, 0, e.PathIndex)
	assert.Equal(t, 59.0, e.X)

	f.run(1)
	e = f.enemy(t, id)
	assert.Equal(t, 1, e.PathIndex)
	assert.Equal(t, 60.0, e.X)
}

func TestMovementScalesWithSpeedAndWeather(t *testing.T) {
	f := newSimFixture(straightPath(4), nil)
	id, _ := f.sim.Spawn(defs.EnemyGrunt)

	f.sim.Update(2)
	assert.Equal(t, 22.0, f.enemy(t, id).X)

	f.env.weather = 0.5
	f.sim.Update(2)
	assert.Equal(t, 23.0, f.enemy(t, id).X)

	// pause
	f.sim.Update(0)
	assert.Equal(t, 23.0, f.enemy(t, id).X)
	assert.Equal(t, 4.0, f.sim.Now())
}

func TestReachedEndFiresOnce(t *testing.T) {
	f := newSimFixture(straightPath(2), nil)
	id, _ := f.sim.Spawn(defs.EnemyGrunt)

	f.run(40)
	assert.Equal(t, 1, f.enemy(t, id).PathIndex)
	assert.Zero(t, f.log.count(event.EnemyReachedEnd))

	f.run(5)
	assert.Equal(t, 1, f.log.count(event.EnemyReachedEnd))
	assert.Equal(t, event.EnemyReachedEndData{EnemyID: id, Type: defs.EnemyGrunt, LifeCost: 1}, f.log.events[0].Data)
	assert.Zero(t, f.sim.LiveCount())
	assert.Zero(t, f.log.count(event.EnemyKilled))
}

func TestKillRewardIsIdempotent(t *testing.T) {
	f := newSimFixture(straightPath(5), nil)
	id, _ := f.sim.Spawn(defs.EnemyGrunt)

	dealt, left, err := f.sim.ApplyDamage(id, 1000, defs.AttackPure)
	require.NoError(t, err)
	assert.Equal(t, 100, dealt)
	assert.Zero(t, left)

	// dead but not yet resolved: further hits are no-ops
	dealt, _, err = f.sim.ApplyDamage(id, 10, defs.AttackPure)
	require.NoError(t, err)
	assert.Zero(t, dealt)
	assert.False(t, f.sim.Snapshot()[0].Targetable)

	f.run(10)
	require.Equal(t, 1, f.log.count(event.EnemyKilled))
	data := f.log.events[0].Data.(event.EnemyKilledData)
	assert.Equal(t, id, data.EnemyID)
	assert.Equal(t, 6, data.Gold)
	assert.Zero(t, f.sim.LiveCount())

	_, _, err = f.sim.ApplyDamage(id, 10, defs.AttackPure)
	assert.True(t, errors.Is(err, ErrUnknownEnemy))
}

func TestDropChance(t *testing.T) {
	f := newSimFixture(straightPath(5), func(tu *SimulatorTuning) { tu.DropChance = 1 })
	for i := 0; i < 3; i++ {
		id, _ := f.sim.Spawn(defs.EnemyRunner)
		f.sim.ApplyDamage(id, 1000, defs.AttackPure)
	}
	f.sim.Update(1)
	assert.Equal(t, 3, f.log.count(event.EnemyKilled))
	assert.Equal(t, 3, f.log.count(event.CollectibleDropped))

	f = newSimFixture(straightPath(5), nil)
	id, _ := f.sim.Spawn(defs.EnemyRunner)
	f.sim.ApplyDamage(id, 1000, defs.AttackPure)
	f.sim.Update(1)
	assert.Equal(t, 1, f.log.count(event.EnemyKilled))
	assert.Zero(t, f.log.count(event.CollectibleDropped))
}

func TestApplyDamageArmor(t *testing.T) {
	tests := []struct {
		name   string
		damage int
		attack defs.AttackType
		want   int
	}{
		{"physical reduced", 12, defs.AttackPhysical, 7},
		{"minimum one", 3, defs.AttackPhysical, 1},
		{"magical unarmored", 12, defs.AttackMagical, 12},
		{"pure ignores armor", 12, defs.AttackPure, 12},
		{"zero stays zero", 0, defs.AttackPhysical, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSimFixture(straightPath(3), nil)
			id, _ := f.sim.Spawn(defs.EnemyBrute)
			dealt, left, err := f.sim.ApplyDamage(id, tt.damage, tt.attack)
			require.NoError(t, err)
			assert.Equal(t, tt.want, dealt)
			assert.Equal(t, 200-tt.want, left)
		})
	}
}

func TestFreezeStopsMovement(t *testing.T) {
	f := newSimFixture(straightPath(5), nil)
	id, _ := f.sim.Spawn(defs.EnemyGrunt)
	require.NoError(t, f.sim.ApplyFreeze(id, component.FreezeEffect{Duration: 0.5}))

	f.run(29)
	assert.Equal(t, 20.0, f.enemy(t, id).X)
	assert.True(t, f.sim.Snapshot()[0].Frozen)

	f.run(1)
	assert.Equal(t, 21.0, f.enemy(t, id).X)
	assert.False(t, f.sim.Snapshot()[0].Frozen)
}

func TestSlowHalvesSpeedUntilExpiry(t *testing.T) {
	f := newSimFixture(straightPath(5), nil)
	id, _ := f.sim.Spawn(defs.EnemyGrunt)
	require.NoError(t, f.sim.ApplySlow(id, component.SlowEffect{Duration: 1, Factor: 0.5}))
	// a weaker slow does not override the running one
	require.NoError(t, f.sim.ApplySlow(id, component.SlowEffect{Duration: 0.5, Factor: 0.8}))

	f.run(59)
	assert.Equal(t, 20+29.5, f.enemy(t, id).X)
	f.run(1)
	assert.Equal(t, 20+30.5, f.enemy(t, id).X)
	assert.Equal(t, 1.0, f.enemy(t, id).SlowFactor)

	err := f.sim.ApplySlow(999, component.SlowEffect{Duration: 1, Factor: 0.5})
	assert.True(t, errors.Is(err, ErrUnknownEnemy))
}

func TestSlowFactorIsClamped(t *testing.T) {
	f := newSimFixture(straightPath(5), nil)
	id, _ := f.sim.Spawn(defs.EnemyGrunt)
	require.NoError(t, f.sim.ApplySlow(id, component.SlowEffect{Duration: 1, Factor: 0}))
	assert.Equal(t, 0.1, f.enemy(t, id).SlowFactor)
}

func TestSynergyGrantAndRevoke(t *testing.T) {
	f := newSimFixture(straightPath(12), nil)
	brute, _ := f.sim.Spawn(defs.EnemyBrute)
	runner, _ := f.sim.Spawn(defs.EnemyRunner)

	f.sim.Update(1)
	assert.Equal(t, 0.75, f.enemy(t, brute).SynergyBonus)
	assert.Zero(t, f.enemy(t, runner).SynergyBonus)
	assert.True(t, f.sim.Snapshot()[0].Buffed)

	// runner moves 2 units per tick, buffed brute 1.5; the gap grows past a tile
	f.run(100)
	assert.Zero(t, f.enemy(t, brute).SynergyBonus)
	assert.False(t, f.sim.Snapshot()[0].Buffed)
}

func TestSynergyRaisesLifeCost(t *testing.T) {
	f := newSimFixture(straightPath(1), nil)
	f.sim.Spawn(defs.EnemyBrute)
	f.sim.Spawn(defs.EnemyRunner)
	f.sim.Spawn(defs.EnemyGrunt)

	f.sim.Update(1)
	require.Equal(t, 3, f.log.count(event.EnemyReachedEnd))
	costs := map[defs.EnemyType]int{}
	for _, e := range f.log.events {
		d := e.Data.(event.EnemyReachedEndData)
		costs[d.Type] = d.LifeCost
	}
	assert.Equal(t, map[defs.EnemyType]int{defs.EnemyBrute: 3, defs.EnemyRunner: 1, defs.EnemyGrunt: 1}, costs)
}

func TestStealthWindowIsExact(t *testing.T) {
	f := newSimFixture(straightPath(20), nil)
	f.env.night = true
	id, _ := f.sim.Spawn(defs.EnemyShade)
	grunt, _ := f.sim.Spawn(defs.EnemyGrunt)

	snap := f.sim.Snapshot()
	assert.True(t, snap[0].Invisible)
	assert.False(t, snap[0].Targetable)
	assert.True(t, snap[1].Targetable, "only shades hide")

	f.run(599)
	assert.True(t, f.enemy(t, id).Invisible)

	f.run(1)
	assert.False(t, f.enemy(t, id).Invisible)
	assert.True(t, f.enemy(t, id).Targetable())
	assert.True(t, f.enemy(t, grunt).Targetable())
}

func TestStealthStartsAtNightfall(t *testing.T) {
	f := newSimFixture(straightPath(10), nil)
	id, _ := f.sim.Spawn(defs.EnemyShade)
	f.run(100)
	assert.False(t, f.enemy(t, id).Invisible, "visible during the day")

	f.env.night = true
	f.run(1)
	assert.True(t, f.enemy(t, id).Invisible)

	f.run(599)
	assert.True(t, f.enemy(t, id).Invisible)
	f.run(1)
	assert.False(t, f.enemy(t, id).Invisible)
}

func TestLightRevealsStealth(t *testing.T) {
	f := newSimFixture(straightPath(10), nil)
	f.sim.SetLights(fakeLights(true))
	f.env.night = true
	id, _ := f.sim.Spawn(defs.EnemyShade)
	assert.False(t, f.enemy(t, id).Invisible)

	f.sim.SetLights(fakeLights(false))
	f.sim.Update(1)
	assert.True(t, f.enemy(t, id).Invisible)
}

func TestRefreshStatsKeepsHealthRatio(t *testing.T) {
	f := newSimFixture(straightPath(5), nil)
	id, _ := f.sim.Spawn(defs.EnemyGrunt)
	f.sim.ApplyDamage(id, 50, defs.AttackPure)

	hard := defs.Difficulty{Name: "hard", HealthMultiplier: 2, SpeedMultiplier: 2, GoldMultiplier: 1}
	f.sim.RefreshStats(nil, hard)

	e := f.enemy(t, id)
	assert.Equal(t, 200, e.MaxHealth)
	assert.Equal(t, 100, e.Health)
	assert.Equal(t, 3.0, e.Speed)
	assert.Equal(t, "hard", f.sim.Difficulty().Name)

	next, _ := f.sim.Spawn(defs.EnemyGrunt)
	assert.Equal(t, 200, f.enemy(t, next).Health)

	// invalid difficulty is ignored
	f.sim.RefreshStats(nil, defs.Difficulty{Name: "broken"})
	assert.Equal(t, "hard", f.sim.Difficulty().Name)
}

func TestSimulatorReset(t *testing.T) {
	f := newSimFixture(straightPath(5), nil)
	first, _ := f.sim.Spawn(defs.EnemyGrunt)
	f.run(10)

	f.sim.Reset()
	assert.Zero(t, f.sim.LiveCount())
	assert.Zero(t, f.sim.Now())
	assert.Empty(t, f.sim.Snapshot())

	next, _ := f.sim.Spawn(defs.EnemyGrunt)
	assert.Greater(t, next, first)
}

// Wave of two runners half a second apart walking a four-cell road.
func TestSchedulerAndSimulatorScenario(t *testing.T) {
	f := newSimFixture(straightPath(4), nil)
	d := event.NewDispatcher()
	waves := listen(d, event.AllWavesCompleted)
	sched := NewWaveScheduler(SchedulerConfig{
		Waves:     []defs.WaveConfig{waveOf(0.5, defs.SpawnCount{Type: defs.EnemyRunner, Count: 2})},
		AutoStart: true,
	}, d)

	spawnTicks := map[uint64]int{}
	doneTick := -1
	for tick := 0; tick < 300 && doneTick < 0; tick++ {
		for _, et := range sched.Update(1, f.sim.LiveCount()) {
			id, err := f.sim.Spawn(et)
			require.NoError(t, err)
			spawnTicks[id] = tick
		}
		f.sim.Update(1)
		if sched.Done() {
			doneTick = tick
			assert.Zero(t, f.sim.LiveCount())
			assert.Equal(t, 2, f.log.count(event.EnemyReachedEnd))
		}
	}

	require.Len(t, spawnTicks, 2)
	ticks := []int{}
	for _, tk := range spawnTicks {
		ticks = append(ticks, tk)
	}
	assert.ElementsMatch(t, []int{0, 30}, ticks)
	assert.Positive(t, doneTick)
	assert.Equal(t, 1, waves.count(event.AllWavesCompleted))
}
