package runner_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

var _ = Describe("Session", func() {
	var (
		cfg     config.RunnerConfig
		cues    *core.CueRecorder
		session *runner.Session
		vp      core.Viewport
	)

	// runUntil ticks until cond holds or the limit is reached.
	runUntil := func(limit int, cond func() bool) int {
		for i := 0; i < limit; i++ {
			if cond() {
				return i
			}
			session.Tick(vp)
		}
		return limit
	}

	BeforeEach(func() {
		cfg = config.DefaultRunnerConfig()
		cues = &core.CueRecorder{}
		vp = core.Viewport{W: 80, H: 24}
	})

	JustBeforeEach(func() {
		session = runner.NewSession(cfg, 7, vp, cues)
	})

	Context("with spawning switched off", func() {
		BeforeEach(func() {
			cfg.Obstacles.SpawnChance = 0
			cfg.Coins.SpawnChance = 0
		})

		It("keeps running with an empty world", func() {
			runUntil(1000, func() bool { return false })

			Expect(session.Phase()).To(Equal(runner.PhaseRunning))
			Expect(session.Ticks()).To(Equal(1000))
			Expect(session.Score()).To(BeZero())
			Expect(session.Obstacles()).To(BeEmpty())
			Expect(session.Coins()).To(BeEmpty())
		})

		It("lands every jump back on the ground", func() {
			Expect(session.RequestJump()).To(BeTrue())
			Expect(session.RequestJump()).To(BeFalse())

			airtime := runUntil(100, func() bool { return session.Player().Grounded })

			Expect(airtime).To(BeNumerically("<", 100))
			p := session.Player()
			Expect(p.Y + p.H).To(Equal(session.GroundY()))
			Expect(cues.Count(core.CueJump)).To(Equal(1))
		})

		It("never lets the player sink below the ground", func() {
			for i := 0; i < 500; i++ {
				if i%25 == 0 {
					session.RequestJump()
				}
				session.Tick(vp)
				p := session.Player()
				Expect(p.Y + p.H).To(BeNumerically("<=", session.GroundY()))
			}
		})

		It("ignores restart while running", func() {
			Expect(session.RequestRestart()).To(BeFalse())
		})
	})

	Context("with obstacles spawning and no jumps", func() {
		BeforeEach(func() {
			cfg.Obstacles.SpawnChance = 1
			cfg.Coins.SpawnChance = 0
		})

		It("ends the round on the first obstacle", func() {
			n := runUntil(1000, session.GameOver)

			Expect(n).To(BeNumerically("<", 1000))
			Expect(session.Phase()).To(Equal(runner.PhaseGameOver))
			Expect(cues.Count(core.CueHit)).To(Equal(1))
		})

		It("freezes after game over and restarts cleanly", func() {
			runUntil(1000, session.GameOver)
			ticks := session.Ticks()

			session.Tick(vp)
			Expect(session.Ticks()).To(Equal(ticks))
			Expect(session.RequestJump()).To(BeFalse())

			Expect(session.RequestRestart()).To(BeTrue())
			Expect(session.Phase()).To(Equal(runner.PhaseRunning))
			Expect(session.Score()).To(BeZero())
			Expect(session.Ticks()).To(BeZero())
			Expect(session.Obstacles()).To(BeEmpty())
			Expect(session.Coins()).To(BeEmpty())
			Expect(session.Player().Grounded).To(BeTrue())
			Expect(session.Speed()).To(Equal(cfg.Physics.BaseSpeed))
		})
	})

	Context("with coins spawning", func() {
		BeforeEach(func() {
			cfg.Obstacles.SpawnChance = 0
			cfg.Coins.SpawnChance = 0.2
		})

		It("scores the coin value for every collected coin", func() {
			for i := 0; i < 3000; i++ {
				if i%20 == 0 {
					session.RequestJump()
				}
				session.Tick(vp)
			}

			Expect(session.CoinsCollected()).To(BeNumerically(">", 0))
			Expect(session.Score()).To(Equal(session.CoinsCollected() * cfg.Coins.Value))
			Expect(cues.Count(core.CueCoin)).To(Equal(session.CoinsCollected()))
		})

		It("keeps every live coin on screen until it scrolls out", func() {
			for i := 0; i < 1000; i++ {
				session.Tick(vp)
				for _, c := range session.Coins() {
					Expect(c.X + c.R).To(BeNumerically(">=", 0))
					Expect(c.X).To(BeNumerically("<=", float64(vp.W)))
					Expect(c.Collected).To(BeFalse())
				}
			}
		})

		It("raises the speed once per score step", func() {
			for i := 0; i < 3000; i++ {
				if i%20 == 0 {
					session.RequestJump()
				}
				session.Tick(vp)
			}

			steps := session.Score() / cfg.Physics.ScoreStep
			want := cfg.Physics.BaseSpeed + float64(steps)*cfg.Physics.SpeedIncrement
			Expect(session.Speed()).To(BeNumerically("~", want, 1e-9))
		})
	})

	Context("when the terminal is resized", func() {
		BeforeEach(func() {
			cfg.Obstacles.SpawnChance = 0
			cfg.Coins.SpawnChance = 0
		})

		It("drops the player onto a lowered ground", func() {
			vp = core.Viewport{W: 80, H: 24}
			taller := core.Viewport{W: 100, H: 40}

			session.Tick(taller)
			Expect(session.Player().Grounded).To(BeFalse())

			vp = taller
			runUntil(200, func() bool { return session.Player().Grounded })
			p := session.Player()
			Expect(p.Y + p.H).To(Equal(float64(40 - cfg.Player.GroundOffset)))
		})
	})
})
