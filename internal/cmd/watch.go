package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"krakenmon/internal/hidraw"
	"krakenmon/internal/log"
	"krakenmon/pkg/hwmon"
	"krakenmon/pkg/kraken"
)

// Watch shows a live terminal view of the sensor channels.
type Watch struct {
	Device   string        `help:"Explicit hidraw device path (default: autodetect by vendor/product id)" type:"path" env:"KRAKENMON_DEVICE"`
	Interval time.Duration `help:"Refresh interval" default:"1s"`
	Mock     bool          `help:"Watch synthetic readings without hardware"`
}

func (w *Watch) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("watch needs a terminal; use 'krakenmon read' for scripted output")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var dev hwmon.Device
	if w.Mock {
		dev = kraken.New()
		go mockReports(ctx, dev.HandleReport)
	} else {
		conn, info, reg, err := attach(w.Device)
		if err != nil {
			return err
		}
		dev = reg.New()
		logger.Debug("device attached", "path", info.Path, "driver", reg.Name)
		go func() {
			// A transport failure surfaces in the next refresh; the view
			// keeps showing the last snapshot until then.
			if err := hidraw.Serve(ctx, conn, dev.HandleReport, rawLogger); err != nil {
				logger.Error("device transport failed", "error", err)
				stop()
			}
		}()
	}

	p := tea.NewProgram(newWatchModel(dev, w.Interval), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Width(10)
	valueStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

type watchModel struct {
	chip     hwmon.Chip
	interval time.Duration
	readings []hwmon.Reading
	err      error
	width    int
}

type tickMsg time.Time

func newWatchModel(chip hwmon.Chip, interval time.Duration) watchModel {
	m := watchModel{chip: chip, interval: interval}
	m.readings, m.err = hwmon.ReadAll(chip)
	return m
}

func (m watchModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m watchModel) Init() tea.Cmd {
	return m.tick()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tickMsg:
		m.readings, m.err = hwmon.ReadAll(m.chip)
		return m, m.tick()
	}
	return m, nil
}

func (m watchModel) View() string {
	var b []string
	b = append(b, titleStyle.Render(m.chip.Name()), "")

	if m.err != nil {
		b = append(b, fmt.Sprintf("error: %v", m.err))
	} else {
		for _, r := range m.readings {
			b = append(b, labelStyle.Render(r.Label)+valueStyle.Render(hwmon.FormatValue(r.Kind, r.Value)))
		}
	}

	b = append(b, "", faintStyle.Render("q to quit"))
	return lipgloss.JoinVertical(lipgloss.Left, b...)
}
