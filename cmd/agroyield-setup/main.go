// agroyield-setup is the first-run configuration tool: it collects the
// server settings interactively, writes them to .env and seeds the first
// user account in the database.
package main

import (
	"fmt"
	"os"
	"strings"

	"agroyield-server/entities"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type step int

const (
	stepEnteringListenAddr step = iota
	stepEnteringDBPath
	stepEnteringAPIKey
	stepEnteringJWTSecret
	stepEnteringAdminUsername
	stepEnteringAdminEmail
	stepEnteringAdminPassword
	stepApplying
	stepComplete
)

type model struct {
	step          step
	listenAddr    string
	dbPath        string
	apiKey        string
	jwtSecret     string
	adminUsername string
	adminEmail    string
	adminPassword string
	currentInput  string
	message       string
	quitting      bool
}

type setupDoneMsg struct{}
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	return model{step: stepEnteringListenAddr}
}

func (m model) Init() tea.Cmd {
	return nil
}

// orDefault keeps empty answers on their defaults.
func orDefault(input, fallback string) string {
	if input == "" {
		return fallback
	}
	return input
}

func applySetup(m model) tea.Cmd {
	return func() tea.Msg {
		env := strings.Join([]string{
			"LISTEN_ADDR=" + m.listenAddr,
			"DB_PATH=" + m.dbPath,
			"OPENWEATHER_API_KEY=" + m.apiKey,
			"JWT_SECRET=" + m.jwtSecret,
			"",
		}, "\n")
		if err := os.WriteFile(".env", []byte(env), 0o600); err != nil {
			return errMsg{fmt.Errorf("failed to write .env: %w", err)}
		}

		db, err := gorm.Open(sqlite.Open(m.dbPath), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return errMsg{fmt.Errorf("failed to open database: %w", err)}
		}
		if err := db.AutoMigrate(&entities.User{}, &entities.Prediction{}); err != nil {
			return errMsg{fmt.Errorf("failed to migrate database: %w", err)}
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(m.adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return errMsg{fmt.Errorf("failed to hash password: %w", err)}
		}

		user := entities.User{
			Username:     m.adminUsername,
			Email:        m.adminEmail,
			PasswordHash: string(hash),
		}
		if err := db.Create(&user).Error; err != nil {
			return errMsg{fmt.Errorf("failed to create account (already exists?): %w", err)}
		}

		return setupDoneMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		default:
			if m.step < stepApplying {
				m.currentInput += msg.String()
			}

		case "enter":
			switch m.step {
			case stepEnteringListenAddr:
				m.listenAddr = orDefault(m.currentInput, "0.0.0.0:3536")
				m.currentInput = ""
				m.step = stepEnteringDBPath

			case stepEnteringDBPath:
				m.dbPath = orDefault(m.currentInput, "agroyield.db")
				m.currentInput = ""
				m.step = stepEnteringAPIKey

			case stepEnteringAPIKey:
				m.apiKey = m.currentInput
				m.currentInput = ""
				m.step = stepEnteringJWTSecret

			case stepEnteringJWTSecret:
				if m.currentInput != "" {
					m.jwtSecret = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringAdminUsername
				}

			case stepEnteringAdminUsername:
				if m.currentInput != "" {
					m.adminUsername = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringAdminEmail
				}

			case stepEnteringAdminEmail:
				if strings.Contains(m.currentInput, "@") {
					m.adminEmail = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringAdminPassword
				}

			case stepEnteringAdminPassword:
				if len(m.currentInput) >= 6 {
					m.adminPassword = m.currentInput
					m.currentInput = ""
					m.step = stepApplying
					m.message = "Writing configuration..."
					return m, applySetup(m)
				}

			case stepComplete:
				m.quitting = true
				return m, tea.Quit
			}
		}

	case setupDoneMsg:
		m.step = stepComplete
		m.message = successStyle.Render("✓ Setup complete!\nConfiguration written to .env and account created.")

	case errMsg:
		m.message = errorStyle.Render("✗ " + msg.err.Error())
		m.step = stepEnteringListenAddr
		m.currentInput = ""
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("🌾 AgroYield Server Setup\n\n"))
	if m.message != "" && m.step != stepComplete && m.step != stepApplying {
		s.WriteString(m.message + "\n\n")
	}

	prompt := func(label, hint string, masked bool) {
		s.WriteString(promptStyle.Render(label + "\n"))
		if hint != "" {
			s.WriteString(hintStyle.Render(hint + "\n"))
		}
		shown := m.currentInput
		if masked {
			shown = strings.Repeat("•", len(m.currentInput))
		}
		s.WriteString(inputStyle.Render("> " + shown))
		s.WriteString("\n\nPress Enter\n")
	}

	switch m.step {
	case stepEnteringListenAddr:
		prompt("Listen address:", "(empty for 0.0.0.0:3536)", false)

	case stepEnteringDBPath:
		prompt("Database file:", "(empty for agroyield.db)", false)

	case stepEnteringAPIKey:
		prompt("OpenWeather API key:", "(empty disables weather lookups)", false)

	case stepEnteringJWTSecret:
		prompt("JWT signing secret:", "", true)

	case stepEnteringAdminUsername:
		prompt("First account username:", "", false)

	case stepEnteringAdminEmail:
		prompt("First account email:", "", false)

	case stepEnteringAdminPassword:
		prompt("First account password:", "(minimum 6 characters)", true)

	case stepApplying:
		s.WriteString(m.message + "\n")

	case stepComplete:
		s.WriteString(m.message + "\n")
		s.WriteString("\nPress Enter to exit\n")
	}

	return s.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
