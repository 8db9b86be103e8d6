// Package sim implements the lane runner simulation core: player motion,
// entity spawning and pruning, collisions, scoring, status effects and
// level progression. It has no rendering or input-device dependencies; hosts
// feed it intents and timestamps once per frame and consume the events it
// emits.
//
// A Simulation is not safe for concurrent use. Hosts must serialize ticks.
package sim

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-runner/internal/config"
)

// Phase is the session state.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns the name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Intent is a directive from the input collaborator, independent of its source.
type Intent int

const (
	IntentMoveLeft Intent = iota
	IntentMoveRight
	IntentJump
)

// String returns the name of the intent.
func (i Intent) String() string {
	switch i {
	case IntentMoveLeft:
		return "move_left"
	case IntentMoveRight:
		return "move_right"
	case IntentJump:
		return "jump"
	default:
		return "unknown"
	}
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithRand sets the random source for spawning and pickup bonuses.
func WithRand(r Rand) Option {
	return func(s *Simulation) { s.rng = r }
}

// WithSeed seeds a fresh random source.
func WithSeed(seed int64) Option {
	return func(s *Simulation) { s.rng = NewRand(seed) }
}

// WithLogger sets the logger for lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) { s.logger = l }
}

// state is everything a reset puts back to its initial value.
type state struct {
	phase       Phase
	clock       Clock
	motion      LaneMotion
	registry    Registry
	combo       ScoreCombo
	status      StatusEffects
	progression Progression
	health      Health
}

// Simulation owns one runner session.
type Simulation struct {
	cfg       config.RunnerConfig
	rng       Rand
	logger    *log.Logger
	spawner   Spawner
	collision CollisionSystem
	st        state
}

// New creates a simulation in the NotStarted phase.
func New(cfg config.RunnerConfig, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	s := &Simulation{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = NewRand(time.Now().UnixNano())
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	s.spawner = NewSpawner(cfg.Spawn, s.rng)
	s.collision = NewCollisionSystem(cfg.Physics.HitRadiusSq, cfg.Lanes.Positions)
	s.st = s.initialState()
	return s, nil
}

func (s *Simulation) initialState() state {
	return state{
		phase:       PhaseNotStarted,
		clock:       NewClock(s.cfg.Timing.NominalRate, s.cfg.Timing.MaxFrameDelta),
		motion:      NewLaneMotion(s.cfg.Physics, s.cfg.Lanes),
		registry:    NewRegistry(),
		combo:       NewScoreCombo(s.cfg.Scoring),
		status:      NewStatusEffects(s.cfg.Effects),
		progression: NewProgression(s.cfg.Progression),
		health:      NewHealth(s.cfg.Health.Max),
	}
}

// Start begins a session at now. Starting a running or finished session
// behaves like Reset.
func (s *Simulation) Start(now time.Duration) {
	s.Reset(now)
}

// Reset replaces all session state with initial values and enters Running.
// Pending deadlines are dropped with the old state.
func (s *Simulation) Reset(now time.Duration) {
	prev := s.st.phase
	s.st = s.initialState()
	s.st.clock.Reset(now)
	s.st.phase = PhaseRunning
	s.logger.Debug("session started", "previous", prev)
}

// Tick advances the simulation to now, applying intents first, and returns
// the events of this tick in order. Outside the Running phase it does nothing.
func (s *Simulation) Tick(intents []Intent, now time.Duration) []Event {
	st := &s.st
	if st.phase != PhaseRunning {
		return nil
	}

	st.clock.Advance(now)
	now = st.clock.Now()
	step := st.clock.Step()

	var events []Event

	// Input and motion
	s.applyIntents(intents)
	if st.motion.Advance(step) {
		events = append(events, Event{Kind: EventLanded, Position: s.playerPosition()})
	}

	// Deadlines
	if st.combo.Expire(now) {
		events = append(events, Event{Kind: EventComboReset})
	}
	powerUpEnded, invincibilityEnded := st.status.Expire(now)
	if powerUpEnded {
		events = append(events, Event{Kind: EventPowerUpEnded})
	}
	if invincibilityEnded {
		events = append(events, Event{Kind: EventInvincibilityEnded})
	}
	st.motion.setInvincible(st.status.Invincible())

	// Spawn, advance and prune
	for _, e := range s.spawner.Spawn(&st.registry, step, st.clock.Ticks()) {
		events = append(events, Event{Kind: EventSpawned, Entity: e})
	}
	// The world moves in slices no longer than the contact reach, each
	// followed by a collision pass, so no entity crosses the player unseen.
	delta := s.cfg.Spawn.BaseSpeed * st.progression.SpeedMultiplier() * step
	slices := max(1, int(math.Ceil(delta/s.collision.Reach())))
	part := delta / float64(slices)

	var contacts []Contact
	for i := 0; i < slices; i++ {
		for _, e := range st.registry.Advance(part, s.cfg.Spawn.ExitDistance) {
			events = append(events, Event{Kind: EventRemoved, Entity: e, Reason: RemovalExited})
		}
		contacts = append(contacts, s.collision.Resolve(s.playerPosition(), &st.registry, st.status.Invincible())...)
	}
	if slices > 1 {
		sortContacts(contacts)
	}

	// Collisions
	for _, c := range contacts {
		events = s.applyContact(events, c, now)
	}

	// Progression
	for _, level := range st.progression.Advance(st.combo.Score()) {
		events = append(events, Event{Kind: EventLevelUp, Level: level})
		s.logger.Info("level up", "level", level, "speed", st.progression.SpeedMultiplier())
	}

	if st.health.Dead() {
		st.phase = PhaseGameOver
		events = append(events, Event{
			Kind:         EventGameOver,
			FinalScore:   st.combo.Score(),
			HighestCombo: st.combo.HighestCombo(),
		})
		s.logger.Info("game over", "score", st.combo.Score(), "highest_combo", st.combo.HighestCombo(), "elapsed", st.clock.Elapsed())
	}

	return events
}

// applyIntents honours the first lateral intent and any jump.
func (s *Simulation) applyIntents(intents []Intent) {
	lateralDone := false
	for _, in := range intents {
		switch in {
		case IntentMoveLeft, IntentMoveRight:
			if lateralDone {
				continue
			}
			lateralDone = true
			dir := -1
			if in == IntentMoveRight {
				dir = 1
			}
			s.st.motion.RequestLaneChange(dir)
		case IntentJump:
			s.st.motion.RequestJump()
		}
	}
}

// applyContact turns one contact into events and state changes.
// Once the player is out of health, remaining contacts are only removed.
func (s *Simulation) applyContact(events []Event, c Contact, now time.Duration) []Event {
	st := &s.st
	events = append(events, Event{Kind: EventRemoved, Entity: c.Entity, Reason: RemovalConsumed})
	if st.health.Dead() {
		return events
	}

	switch c.Entity.Kind {
	case KindObstacle:
		if !c.Harmful {
			return events
		}
		if !st.status.Immune() {
			amount := s.cfg.Health.ObstacleDamage
			st.health.Damage(amount)
			events = append(events, Event{Kind: EventDamage, Amount: amount})
		}
		events = append(events, Event{Kind: EventCollisionFX, Position: c.Position})

	case KindCollectible:
		value, combo := st.combo.Pickup(now)
		events = append(events,
			Event{Kind: EventPickup, Value: value, Combo: combo},
			Event{Kind: EventCollectFX, Position: c.Position},
		)
		if s.rng.Float64() < s.cfg.Scoring.BonusPowerUpChance {
			st.status.Activate(now)
			events = append(events, Event{Kind: EventPowerUpActivated, Bonus: true})
		}

	case KindPowerUp:
		st.status.Activate(now)
		events = append(events,
			Event{Kind: EventPowerUpActivated},
			Event{Kind: EventPowerUpFX, Position: c.Position},
		)
	}

	st.motion.setInvincible(st.status.Invincible())
	return events
}

func (s *Simulation) playerPosition() Vec3 {
	p := s.st.motion.State()
	return Vec3{X: p.X, Y: p.Y}
}

// Config returns the configuration the simulation runs with.
func (s *Simulation) Config() config.RunnerConfig { return s.cfg }

// Phase returns the session phase.
func (s *Simulation) Phase() Phase { return s.st.phase }

// Score returns the current score.
func (s *Simulation) Score() int { return s.st.combo.Score() }

// Health returns the remaining health.
func (s *Simulation) Health() int { return s.st.health.Current() }

// Combo returns the current multiplier.
func (s *Simulation) Combo() int { return s.st.combo.Combo() }

// HighestCombo returns the highest multiplier reached this session.
func (s *Simulation) HighestCombo() int { return s.st.combo.HighestCombo() }

// Level returns the current level.
func (s *Simulation) Level() int { return s.st.progression.Level() }

// SpeedMultiplier returns the current world speed multiplier.
func (s *Simulation) SpeedMultiplier() float64 { return s.st.progression.SpeedMultiplier() }

// Player returns the player state.
func (s *Simulation) Player() PlayerState { return s.st.motion.State() }

// Entities returns a copy of the live entities.
func (s *Simulation) Entities() []Entity { return s.st.registry.Entities() }

// EntityPosition returns the world position of an entity.
func (s *Simulation) EntityPosition(e Entity) Vec3 { return s.collision.Position(e) }

// Elapsed returns session time since the last Start or Reset.
func (s *Simulation) Elapsed() time.Duration { return s.st.clock.Elapsed() }
