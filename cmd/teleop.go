// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Oxidized Robots

package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/Oxidized-Robots/go-rpi-4wd-car/pkg/hardware"
	"github.com/Oxidized-Robots/go-rpi-4wd-car/pkg/rr4c"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var teleopCmd = &cobra.Command{
	Use:   "teleop",
	Short: "Drive the robot from the keyboard",
	Long: `Interactive teleoperation TUI.

Keyboard input is turned into legacy-grammar frames and run through the
real decoder against the state-model drivers, so the panel shows exactly
what a live robot would do with the same frames.

Keys:
  arrows     drive (tab toggles spin steering for left/right)
  x          brake            space      horn
  + / -      speed up/down    l / o      LED next color / off
  f          fan toggle       0..6       mode commands (0 = stop)
  u/n g      front servo left/right, center
  j/k i/m    camera pan left/right, tilt up/down
  q          quit`,
	RunE: runTeleop,
}

func init() {
	rootCmd.AddCommand(teleopCmd)
}

const teleopLogLines = 200

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("24")).Padding(0, 1)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
)

type teleopModel struct {
	decoder *rr4c.Decoder
	motors  *hardware.Motors
	servos  *hardware.Servos
	hids    *hardware.HumanInterface

	log      viewport.Model
	logLines []string
	spin     bool
	ready    bool
	width    int
	height   int
}

func initialTeleopModel() (teleopModel, error) {
	noSleep := func(time.Duration) {}
	motors := hardware.NewMotors()
	servos := hardware.NewServos()
	hids := hardware.NewHumanInterface(hardware.WithSleep(noSleep))
	decoder, err := rr4c.New(motors, servos, hids, rr4c.WithSleep(noSleep))
	if err != nil {
		return teleopModel{}, err
	}
	return teleopModel{
		decoder: decoder,
		motors:  motors,
		servos:  servos,
		hids:    hids,
	}, nil
}

func runTeleop(cmd *cobra.Command, args []string) error {
	m, err := initialTeleopModel()
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %v", err)
	}
	return nil
}

func (m teleopModel) Init() tea.Cmd {
	return nil
}

// positionalFrame builds a legacy fixed-field body with the given offsets
// set and every other position zero.
func positionalFrame(set map[int]byte) string {
	body := []byte("00000000000000000")
	for off, ch := range set {
		body[off] = ch
	}
	return "$" + string(body) + "#"
}

// frameForKey maps one key press to the frame it sends, or "" for keys
// that are not bound.
func (m *teleopModel) frameForKey(key string) string {
	switch key {
	case "up", "w":
		return positionalFrame(map[int]byte{1: '1'})
	case "down":
		return positionalFrame(map[int]byte{1: '2'})
	case "left", "a":
		if m.spin {
			return positionalFrame(map[int]byte{2: '1'})
		}
		return positionalFrame(map[int]byte{1: '3'})
	case "right", "d":
		if m.spin {
			return positionalFrame(map[int]byte{2: '2'})
		}
		return positionalFrame(map[int]byte{1: '4'})
	case "x":
		return positionalFrame(nil)
	case " ":
		return positionalFrame(map[int]byte{4: '1'})
	case "+", "=":
		return positionalFrame(map[int]byte{6: '1'})
	case "-":
		return positionalFrame(map[int]byte{6: '2'})
	case "l":
		return positionalFrame(map[int]byte{12: '1'})
	case "o":
		return positionalFrame(map[int]byte{12: '0'})
	case "f":
		return positionalFrame(map[int]byte{14: '1'})
	case "u":
		return positionalFrame(map[int]byte{8: '1'})
	case "n":
		return positionalFrame(map[int]byte{8: '2'})
	case "g":
		return positionalFrame(map[int]byte{8: '9'})
	case "i":
		return positionalFrame(map[int]byte{8: '3'})
	case "m":
		return positionalFrame(map[int]byte{8: '4'})
	case "j":
		return positionalFrame(map[int]byte{8: '6'})
	case "k":
		return positionalFrame(map[int]byte{8: '7'})
	case "0", "1", "2", "3", "4", "5", "6":
		code := key + "0"
		if key != "0" {
			code = key + "1"
		}
		return "$4WD,MODE" + code + "#"
	}
	return ""
}

func (m teleopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.spin = !m.spin
			return m, nil
		}
		if frame := m.frameForKey(key); frame != "" {
			m.sendFrame(frame)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		logHeight := max(msg.Height-14, 3)
		if !m.ready {
			m.log = viewport.New(msg.Width-4, logHeight)
			m.ready = true
		} else {
			m.log.Width = msg.Width - 4
			m.log.Height = logHeight
		}
		m.refreshLog()
		return m, nil
	}
	return m, nil
}

// sendFrame runs one frame through the decoder and appends the outcome to
// the frame log.
func (m *teleopModel) sendFrame(frame string) {
	err := m.decoder.DecodeLegacy(frame)
	line := frame
	if err != nil {
		line += "  " + errorStyle.Render(err.Error())
	}
	m.logLines = append(m.logLines, line)
	if len(m.logLines) > teleopLogLines {
		m.logLines = m.logLines[len(m.logLines)-teleopLogLines:]
	}
	m.refreshLog()
}

func (m *teleopModel) refreshLog() {
	if !m.ready {
		return
	}
	m.log.SetContent(strings.Join(m.logLines, "\n"))
	m.log.GotoBottom()
}

func (m teleopModel) statusPanel() string {
	left, right := m.motors.Speeds()
	lights := m.hids.State()

	steering := "normal"
	if m.spin {
		steering = activeStyle.Render("spin")
	}
	fan := "off"
	if m.hids.FanOn() {
		fan = activeStyle.Render("on")
	}

	rows := []string{
		fmt.Sprintf("%s %s   %s %s",
			labelStyle.Render("Mode:"), valueStyle.Render(m.decoder.Mode().String()),
			labelStyle.Render("Steering:"), steering),
		fmt.Sprintf("%s %d   %s L=%d R=%d",
			labelStyle.Render("Speed:"), m.decoder.Speed(),
			labelStyle.Render("Motors:"), left, right),
		fmt.Sprintf("%s front=%d° pan=%d° tilt=%d°",
			labelStyle.Render("Servos:"),
			m.servos.Front(), m.servos.CameraPan(), m.servos.CameraTilt()),
		fmt.Sprintf("%s idx=%d rgb=(%d,%d,%d)   %s %s",
			labelStyle.Render("LED:"), m.decoder.LedColor(), lights.R, lights.G, lights.B,
			labelStyle.Render("Fan:"), fan),
	}
	return panelStyle.Render(strings.Join(rows, "\n"))
}

func (m teleopModel) View() string {
	if !m.ready {
		return "starting..."
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("RR4C Teleop"))
	b.WriteString("\n\n")
	b.WriteString(m.statusPanel())
	b.WriteString("\n")
	b.WriteString(panelStyle.Render(m.log.View()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("arrows drive · tab spin · x brake · space horn · +/- speed · l/o led · f fan · 0-6 mode · q quit"))
	return b.String()
}
