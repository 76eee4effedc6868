package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/treasureshark/internal/config"
	"github.com/samdwyer/treasureshark/internal/gamedata"
	"github.com/samdwyer/treasureshark/internal/telemetry"
	"github.com/samdwyer/treasureshark/internal/ui"
)

// Game drives a session from terminal input.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	id       string
	cfg      config.Config
	registry *gamedata.MonsterRegistry
	logger   *zap.Logger
	running  bool
}

// New creates a game on the terminal. sessionID may be empty.
func New(sessionID string, cfg config.Config, registry *gamedata.MonsterRegistry, logger *zap.Logger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, sessionID, cfg, registry, logger), nil
}

// NewWithScreen creates a game drawing to an initialized screen.
func NewWithScreen(screen *ui.Screen, sessionID string, cfg config.Config, registry *gamedata.MonsterRegistry,
	logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		id:       sessionID,
		cfg:      cfg,
		registry: registry,
		logger:   logger,
		running:  true,
	}
}

// Session returns the running session, or nil before Run.
func (g *Game) Session() *Session {
	return g.session
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	if err := g.start(ctx); err != nil {
		return err
	}

	for g.running {
		g.step(ctx)
	}

	g.logger.Info("session ended",
		zap.Int("turns", g.session.Turn()),
		zap.Stringer("state", g.session.State()),
	)
	return nil
}

// start generates the session.
func (g *Game) start(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	session, err := NewSession(ctx, g.id, g.cfg, g.registry, g.logger)
	if err != nil {
		span.RecordError(err)
		return err
	}
	g.session = session

	span.SetAttributes(
		attribute.String("session.id", session.ID()),
		attribute.Int64("game.seed", session.Seed()),
		attribute.Int("dungeon.rooms", len(session.Dungeon().Rooms)),
		attribute.Int("entities.count", session.Entities().Len()),
	)
	return nil
}

// step runs one pass of the loop: refresh the view, draw, wait for input and
// resolve it. Fullscreen is handled here and never reaches the session.
func (g *Game) step(ctx context.Context) {
	g.session.RefreshVisibility(ctx)
	g.render()

	intent := g.nextIntent()
	if intent == IntentToggleFullscreen {
		g.logger.Debug("fullscreen toggled", zap.Bool("fullscreen", g.screen.ToggleFullscreen()))
		return
	}

	if g.session.Advance(ctx, intent).Quit {
		g.running = false
	}
}

func (g *Game) render() {
	stats := g.session.Stats()
	_, height := g.screen.Size()
	lines := height - g.session.Dungeon().Height - 1
	if lines > g.cfg.Screen.PanelHeight-1 {
		lines = g.cfg.Screen.PanelHeight - 1
	}

	g.renderer.Render(ui.Frame{
		Dungeon:  g.session.Dungeon(),
		Visible:  g.session.Field(),
		Entities: g.session.Entities().All(),
		HP:       stats.HP,
		MaxHP:    stats.MaxHP,
		Messages: g.session.Messages(lines),
		Dead:     g.session.State() == StateDead,
	})
}

// nextIntent blocks for the next input event.
func (g *Game) nextIntent() Intent {
	switch ev := g.screen.PollEvent().(type) {
	case *tcell.EventKey:
		return KeyIntent(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized.
		return IntentQuit
	}
	return IntentNone
}
